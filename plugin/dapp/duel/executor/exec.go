// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dty "github.com/33cn/duel/plugin/dapp/duel/types"
	"github.com/33cn/duel/types"
)

// Exec_Create create action
func (d *Duel) Exec_Create(payload *dty.DuelCreate, tx *types.Transaction) (*types.Receipt, error) {
	action := NewAction(d, tx)
	return action.DuelCreate(payload)
}

// Exec_Join join action
func (d *Duel) Exec_Join(payload *dty.DuelJoin, tx *types.Transaction) (*types.Receipt, error) {
	action := NewAction(d, tx)
	return action.DuelJoin(payload)
}

// Exec_Resolve resolve action
func (d *Duel) Exec_Resolve(payload *dty.DuelResolve, tx *types.Transaction) (*types.Receipt, error) {
	action := NewAction(d, tx)
	return action.DuelResolve(payload)
}
