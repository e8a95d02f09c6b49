// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/duel/types"
)

// action ids
const (
	CoinsActionTransfer = 1
	CoinsActionWithdraw = 3
)

// query names
const (
	FuncNameGetAddrReciver = "GetAddrReciver"
	FuncNameGetAddrBalance = "GetAddrBalance"
)

var (
	// CoinsX executor name
	CoinsX = types.CoinsX
	// ExecerCoins name bytes
	ExecerCoins = []byte(CoinsX)
	actionName  = map[string]int32{
		"Transfer": CoinsActionTransfer,
		"Withdraw": CoinsActionWithdraw,
	}
)

func init() {
	types.RegistorExecutor(CoinsX, NewType())
}

// CoinsType coins executor type
type CoinsType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *CoinsType {
	c := &CoinsType{}
	c.SetChild(c)
	return c
}

// GetName name
func (c *CoinsType) GetName() string {
	return CoinsX
}

// GetPayload empty action
func (c *CoinsType) GetPayload() types.Message {
	return &CoinsAction{}
}

// GetLogMap coins only emits account logs
func (c *CoinsType) GetLogMap() map[int64]*types.LogInfo {
	return nil
}

// GetTypeMap action name to id
func (c *CoinsType) GetTypeMap() map[string]int32 {
	return actionName
}

// CreateTransfer unsigned transfer of amount to addr
func CreateTransfer(to string, amount int64, note string) *types.Transaction {
	action := &CoinsAction{
		Ty:       CoinsActionTransfer,
		Transfer: &CoinsTransfer{To: to, Amount: amount, Note: note},
	}
	return types.CreateTx(CoinsX, action, 0)
}

// CreateWithdraw unsigned withdraw of amount from the exec account of execName
func CreateWithdraw(execName string, amount int64) *types.Transaction {
	action := &CoinsAction{
		Ty:       CoinsActionWithdraw,
		Withdraw: &CoinsWithdraw{ExecName: execName, Amount: amount},
	}
	return types.CreateTx(CoinsX, action, 0)
}
