// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/duel/common"
	"github.com/33cn/duel/types"
)

// DecodeLog decode the logs of a receipt with the log map of execer
func DecodeLog(execer []byte, rlog *types.ReceiptData) (*ReceiptDataResult, error) {
	var rTy string
	switch rlog.GetTy() {
	case types.ExecErr:
		rTy = "ExecErr"
	case types.ExecOk:
		rTy = "ExecOk"
	default:
		rTy = "Unknown"
	}
	var logmap map[int64]*types.LogInfo
	if ety := types.LoadExecutorType(string(execer)); ety != nil {
		logmap = ety.GetLogMap()
	}
	rd := &ReceiptDataResult{Ty: rlog.GetTy(), TyName: rTy}
	for _, l := range rlog.GetLogs() {
		name, msg, err := types.DecodeLog(logmap, l.Ty, l.Log)
		if err != nil {
			return nil, err
		}
		item := &ReceiptLogResult{Ty: l.Ty, TyName: name, RawLog: common.ToHex(l.Log)}
		if msg != nil {
			item.Log, err = types.PBToJSON(msg)
			if err != nil {
				return nil, err
			}
		}
		rd.Logs = append(rd.Logs, item)
	}
	return rd, nil
}

// DecodeTx render a tx, the payload stays raw when the execer is unknown
func DecodeTx(tx *types.Transaction) (*Transaction, error) {
	if tx == nil {
		return nil, types.ErrInvalidParam
	}
	result := &Transaction{
		Execer:     string(tx.Execer),
		RawPayload: common.ToHex(tx.GetPayload()),
		Amount:     tx.Amount,
		Nonce:      tx.Nonce,
		Hash:       common.ToHex(tx.Hash()),
	}
	if sig := tx.GetSignature(); sig != nil {
		result.Signature = &Signature{
			Ty:        sig.Ty,
			Pubkey:    common.ToHex(sig.Pubkey),
			Signature: common.ToHex(sig.Signature),
		}
		result.From = tx.From()
	}
	if ety := types.LoadExecutorType(result.Execer); ety != nil {
		result.ActionName = ety.ActionName(tx)
		if action, err := ety.DecodePayload(tx); err == nil {
			payload, err := types.PBToJSON(action)
			if err != nil {
				return nil, err
			}
			result.Payload = payload
		}
	}
	return result, nil
}

// DecodeTxResult render an executed tx
func DecodeTxResult(r *types.TxResult) (*TxResult, error) {
	tx, err := DecodeTx(r.GetTx())
	if err != nil {
		return nil, err
	}
	receipt, err := DecodeLog(r.GetTx().GetExecer(), r.GetReceipt())
	if err != nil {
		return nil, err
	}
	return &TxResult{
		Hash:      common.ToHex(r.GetHash()),
		Height:    r.GetHeight(),
		Blocktime: r.GetBlocktime(),
		Tx:        tx,
		Receipt:   receipt,
	}, nil
}

// ConvertAccounts accounts to json view
func ConvertAccounts(accs []*types.Account) []*Account {
	var result []*Account
	for _, acc := range accs {
		result = append(result, &Account{
			Currency: acc.GetCurrency(),
			Balance:  acc.GetBalance(),
			Frozen:   acc.GetFrozen(),
			Addr:     acc.GetAddr(),
		})
	}
	return result
}
