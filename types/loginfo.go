// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"
)

// LogInfo receipt log payload type and name
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

// SystemLog logs produced by the account layer
var SystemLog = map[int64]*LogInfo{
	TyLogReserved:        {reflect.TypeOf(ReqNil{}), "LogReserved"},
	TyLogErr:             {nil, "LogErr"},
	TyLogTransfer:        {reflect.TypeOf(ReceiptAccountTransfer{}), "LogTransfer"},
	TyLogGenesis:         {nil, "LogGenesis"},
	TyLogDeposit:         {reflect.TypeOf(ReceiptAccountTransfer{}), "LogDeposit"},
	TyLogExecTransfer:    {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecTransfer"},
	TyLogExecWithdraw:    {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecWithdraw"},
	TyLogExecDeposit:     {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecDeposit"},
	TyLogExecFrozen:      {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecFrozen"},
	TyLogExecActive:      {reflect.TypeOf(ReceiptExecAccountTransfer{}), "LogExecActive"},
	TyLogGenesisTransfer: {reflect.TypeOf(ReceiptAccountTransfer{}), "LogGenesisTransfer"},
	TyLogGenesisDeposit:  {reflect.TypeOf(ReceiptAccountTransfer{}), "LogGenesisDeposit"},
}

// DecodeLog decode one receipt log with the executor log map, falling back
// to SystemLog. Unknown types decode to nil with name "LogUnknown".
func DecodeLog(logmap map[int64]*LogInfo, ty int32, data []byte) (string, Message, error) {
	info, ok := logmap[int64(ty)]
	if !ok {
		info, ok = SystemLog[int64(ty)]
	}
	if !ok {
		return "LogUnknown", nil, nil
	}
	if info.Ty == nil {
		return info.Name, nil, nil
	}
	msg, ok := reflect.New(info.Ty).Interface().(Message)
	if !ok {
		return info.Name, nil, ErrDecode
	}
	if err := Decode(data, msg); err != nil {
		return info.Name, nil, err
	}
	return info.Name, msg, nil
}
