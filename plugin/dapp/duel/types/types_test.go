// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/33cn/duel/common/address"
	"github.com/33cn/duel/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAddr = address.ExecAddress("someone")

func TestCreateDuelCreateTx(t *testing.T) {
	tx, err := CreateDuelCreateTx(60, 3, types.Coin)
	require.NoError(t, err)
	assert.Equal(t, ExecerDuel, tx.Execer)
	assert.Equal(t, types.Coin, tx.Amount)

	ety := types.LoadExecutorType(DuelX)
	require.NotNil(t, ety)
	name, value, err := ety.DecodePayloadValue(tx)
	require.NoError(t, err)
	assert.Equal(t, "Create", name)
	create := value.Interface().(*DuelCreate)
	assert.Equal(t, uint32(60), create.Combatant.Defense)
	assert.Equal(t, uint32(3), create.Combatant.Attack)
	assert.Equal(t, types.Coin, create.Fee)

	_, err = CreateDuelCreateTx(1, 1, 0)
	assert.Equal(t, types.ErrAmount, err)
}

func TestCreateDuelJoinTx(t *testing.T) {
	tx, err := CreateDuelJoinTx(testAddr, 40, 0, 2*types.Coin)
	require.NoError(t, err)
	assert.Equal(t, 2*types.Coin, tx.Amount)
	ety := types.LoadExecutorType(DuelX)
	assert.Equal(t, "Join", ety.ActionName(tx))
	var action DuelAction
	require.NoError(t, types.Decode(tx.Payload, &action))
	assert.Equal(t, int32(DuelActionJoin), action.Ty)
	assert.Equal(t, testAddr, action.Join.Initiator)
	assert.Equal(t, uint32(40), action.Join.Combatant.Defense)

	_, err = CreateDuelJoinTx("bad address", 1, 1, 1)
	assert.Equal(t, types.ErrInvalidAddress, err)
}

func TestCreateDuelResolveTx(t *testing.T) {
	tx, err := CreateDuelResolveTx(testAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(0), tx.Amount)
	assert.Equal(t, "Resolve", types.LoadExecutorType(DuelX).ActionName(tx))

	_, err = CreateDuelResolveTx("")
	assert.Equal(t, types.ErrInvalidAddress, err)
}

func TestCreateTxFromJSON(t *testing.T) {
	ety := types.LoadExecutorType(DuelX)
	tx, err := ety.CreateTx("Create", []byte(`{"combatant":{"defense":7,"attack":1},"fee":"100"}`), 100)
	require.NoError(t, err)
	name, value, err := ety.DecodePayloadValue(tx)
	require.NoError(t, err)
	assert.Equal(t, "Create", name)
	assert.Equal(t, uint32(7), value.Interface().(*DuelCreate).Combatant.Defense)
	assert.Equal(t, int64(100), value.Interface().(*DuelCreate).Fee)

	_, err = ety.CreateTx("Cancel", nil, 0)
	assert.Equal(t, types.ErrActionNotSupport, err)
	_, err = ety.CreateTx("Join", []byte(`{"nope":1}`), 0)
	assert.Error(t, err)
}

func TestActionNameUnknown(t *testing.T) {
	ety := types.LoadExecutorType(DuelX)
	tx := types.CreateTx(DuelX, &DuelAction{Ty: DuelActionResolve}, 0)
	assert.Equal(t, "unknown", ety.ActionName(tx))
	tx.Payload = []byte{0xff, 0xff}
	assert.Equal(t, "unknown", ety.ActionName(tx))
}

func TestGameJSON(t *testing.T) {
	game := &Game{
		Initiator:          testAddr,
		InitiatorCombatant: &Combatant{Defense: 3},
		Fee:                types.Coin,
		Status:             DuelStatusOpen,
	}
	data, err := types.PBToJSON(game)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"fee":"100000000"`)
	assert.Contains(t, string(data), `"competitor":""`)

	var back Game
	require.NoError(t, types.JSONToPB(data, &back))
	assert.Equal(t, game.Fee, back.Fee)
	assert.Equal(t, game.InitiatorCombatant.Defense, back.InitiatorCombatant.Defense)
}
