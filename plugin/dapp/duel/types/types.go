// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"reflect"

	"github.com/33cn/duel/common/address"
	"github.com/33cn/duel/common/log"
	"github.com/33cn/duel/types"
)

var tlog = log.New("module", DuelX)

var actionName = map[string]int32{
	"Create":  DuelActionCreate,
	"Join":    DuelActionJoin,
	"Resolve": DuelActionResolve,
}

var logMap = map[int64]*types.LogInfo{
	TyLogDuelCreate:  {Ty: reflect.TypeOf(ReceiptDuel{}), Name: "LogDuelCreate"},
	TyLogDuelJoin:    {Ty: reflect.TypeOf(ReceiptDuel{}), Name: "LogDuelJoin"},
	TyLogDuelResolve: {Ty: reflect.TypeOf(ReceiptDuel{}), Name: "LogDuelResolve"},
}

func init() {
	// init executor type
	types.RegistorExecutor(DuelX, NewType())
}

// DuelType duel executor type
type DuelType struct {
	types.ExecTypeBase
}

// NewType new
func NewType() *DuelType {
	c := &DuelType{}
	c.SetChild(c)
	return c
}

// GetName name
func (d *DuelType) GetName() string {
	return DuelX
}

// GetLogMap receipt logs of duel
func (d *DuelType) GetLogMap() map[int64]*types.LogInfo {
	return logMap
}

// GetPayload empty action
func (d *DuelType) GetPayload() types.Message {
	return &DuelAction{}
}

// GetTypeMap action name to id
func (d *DuelType) GetTypeMap() map[string]int32 {
	return actionName
}

// CreateDuelCreateTx unsigned create tx, fee is attached as payment
func CreateDuelCreateTx(defense, attack uint32, fee int64) (*types.Transaction, error) {
	if fee <= 0 {
		tlog.Error("CreateDuelCreateTx", "fee", fee)
		return nil, types.ErrAmount
	}
	action := &DuelAction{
		Ty: DuelActionCreate,
		Create: &DuelCreate{
			Combatant: &Combatant{Defense: defense, Attack: attack},
			Fee:       fee,
		},
	}
	return types.CreateTx(DuelX, action, fee), nil
}

// CreateDuelJoinTx unsigned join tx, payment is the fee of the open game
func CreateDuelJoinTx(initiator string, defense, attack uint32, payment int64) (*types.Transaction, error) {
	if err := address.CheckAddress(initiator); err != nil {
		tlog.Error("CreateDuelJoinTx", "initiator", initiator, "err", err)
		return nil, types.ErrInvalidAddress
	}
	action := &DuelAction{
		Ty: DuelActionJoin,
		Join: &DuelJoin{
			Initiator: initiator,
			Combatant: &Combatant{Defense: defense, Attack: attack},
		},
	}
	return types.CreateTx(DuelX, action, payment), nil
}

// CreateDuelResolveTx unsigned resolve tx
func CreateDuelResolveTx(initiator string) (*types.Transaction, error) {
	if err := address.CheckAddress(initiator); err != nil {
		tlog.Error("CreateDuelResolveTx", "initiator", initiator, "err", err)
		return nil, types.ErrInvalidAddress
	}
	action := &DuelAction{
		Ty:      DuelActionResolve,
		Resolve: &DuelResolve{Initiator: initiator},
	}
	return types.CreateTx(DuelX, action, 0), nil
}
