// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/duel/common/address"
	drivers "github.com/33cn/duel/system/dapp"
	cty "github.com/33cn/duel/system/dapp/coins/types"
	"github.com/33cn/duel/types"
)

// Exec_Transfer transfer, into the exec account when to is an executor
func (c *Coins) Exec_Transfer(transfer *cty.CoinsTransfer, tx *types.Transaction) (*types.Receipt, error) {
	from := tx.From()
	to := transfer.GetTo()
	if drivers.IsDriverAddress(to) {
		return c.GetCoinsAccount().TransferToExec(from, to, transfer.Amount)
	}
	if err := address.CheckAddress(to); err != nil {
		return nil, types.ErrInvalidAddress
	}
	return c.GetCoinsAccount().Transfer(from, to, transfer.Amount)
}

// Exec_Withdraw active balance in the exec account back to the coins balance
func (c *Coins) Exec_Withdraw(withdraw *cty.CoinsWithdraw, tx *types.Transaction) (*types.Receipt, error) {
	execaddr := drivers.ExecAddress(withdraw.GetExecName())
	if !drivers.IsDriverAddress(execaddr) {
		return nil, types.ErrExecNotFound
	}
	return c.GetCoinsAccount().TransferWithdraw(tx.From(), execaddr, withdraw.Amount)
}
