// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"os"
	"testing"

	"github.com/33cn/duel/common/address"
	"github.com/33cn/duel/common/crypto"
	"github.com/33cn/duel/common/crypto/secp256k1"
	dbm "github.com/33cn/duel/common/db"
	drivers "github.com/33cn/duel/system/dapp"
	cexec "github.com/33cn/duel/system/dapp/coins/executor"
	cty "github.com/33cn/duel/system/dapp/coins/types"
	"github.com/33cn/duel/types"
	"github.com/33cn/duel/util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	cexec.Init(cty.CoinsX, nil)
	os.Exit(m.Run())
}

func genKey(t *testing.T, seed byte) (crypto.PrivKey, string) {
	b := make([]byte, 32)
	for i := range b {
		b[i] = seed
	}
	priv, err := secp256k1.Driver{}.PrivKeyFromBytes(b)
	require.NoError(t, err)
	return priv, address.PubKeyToAddr(priv.PubKey().Bytes())
}

func newMemDB(t *testing.T) dbm.DB {
	db, err := dbm.NewGoMemDB("gomemdb", "test", 128)
	require.NoError(t, err)
	return db
}

func newTestExec(t *testing.T, addrs ...string) *Executor {
	exec := New(newMemDB(t), nil)
	var allocs []*types.GenesisAlloc
	for _, addr := range addrs {
		allocs = append(allocs, &types.GenesisAlloc{Addr: addr, Amount: 100})
	}
	require.NoError(t, exec.Genesis(allocs))
	return exec
}

func balance(t *testing.T, exec *Executor, addr, execer string) *types.Account {
	accs, err := exec.GetBalance(&types.ReqBalance{Addresses: []string{addr}, Execer: execer})
	require.NoError(t, err)
	require.Len(t, accs, 1)
	return accs[0]
}

func TestStateDBTx(t *testing.T) {
	s := NewStateDB(newMemDB(t))
	_, err := s.Get([]byte("k1"))
	assert.Equal(t, types.ErrNotFound, err)

	require.NoError(t, s.Set([]byte("k1"), []byte("v1")))
	s.Begin()
	require.NoError(t, s.Set([]byte("k1"), []byte("v2")))
	require.NoError(t, s.Set([]byte("k2"), []byte("v3")))
	v, err := s.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
	s.Rollback()

	v, err = s.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)
	_, err = s.Get([]byte("k2"))
	assert.Equal(t, types.ErrNotFound, err)

	s.Begin()
	require.NoError(t, s.Set([]byte("k1"), nil))
	require.NoError(t, s.Set([]byte("k2"), []byte("v3")))
	_, err = s.Get([]byte("k1"))
	assert.Equal(t, types.ErrNotFound, err)
	require.NoError(t, s.Commit())

	_, err = s.Get([]byte("k1"))
	assert.Equal(t, types.ErrNotFound, err)
	v, err = s.Get([]byte("k2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v3"), v)
}

func TestLocalDBList(t *testing.T) {
	l := NewLocalDB(newMemDB(t))
	l.Begin()
	for _, k := range []string{"idx:1", "idx:2", "idx:3"} {
		require.NoError(t, l.Set([]byte(k), []byte(k)))
	}
	// not committed yet
	_, err := l.List([]byte("idx:"), nil, 10, dbm.ListASC)
	assert.Equal(t, types.ErrNotFound, err)
	v, err := l.Get([]byte("idx:2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("idx:2"), v)
	require.NoError(t, l.Commit())

	values, err := l.List([]byte("idx:"), nil, 2, dbm.ListDESC)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("idx:3"), []byte("idx:2")}, values)
	values, err = l.List([]byte("idx:"), []byte("idx:1"), 10, dbm.ListASC)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("idx:2"), []byte("idx:3")}, values)

	l.Begin()
	require.NoError(t, l.Set([]byte("idx:2"), nil))
	require.NoError(t, l.Commit())
	_, err = l.Get([]byte("idx:2"))
	assert.Equal(t, types.ErrNotFound, err)
}

func TestGenesis(t *testing.T) {
	_, addr := genKey(t, 1)
	exec := newTestExec(t, addr)
	assert.Equal(t, 100*types.Coin, balance(t, exec, addr, "").Balance)

	err := exec.Genesis([]*types.GenesisAlloc{{Addr: addr, Amount: 1}})
	assert.Equal(t, types.ErrGenesisApplied, err)
	assert.Equal(t, 100*types.Coin, balance(t, exec, addr, "").Balance)

	exec = New(newMemDB(t), nil)
	err = exec.Genesis([]*types.GenesisAlloc{{Addr: addr, Amount: 1}, {Addr: "bad", Amount: 1}})
	assert.Equal(t, types.ErrInvalidAddress, errors.Cause(err))
	assert.Equal(t, int64(0), balance(t, exec, addr, "").Balance)
}

func TestExecTransfer(t *testing.T) {
	priv1, addr1 := genKey(t, 1)
	_, addr2 := genKey(t, 2)
	exec := newTestExec(t, addr1)

	tx := cty.CreateTransfer(addr2, 10*types.Coin, "hi")
	tx.Sign(types.SECP256K1, priv1)
	result, err := exec.ExecTx(tx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Height)
	assert.Equal(t, int64(1), exec.Height())
	assert.Equal(t, int32(types.ExecOk), result.Receipt.Ty)
	assert.Equal(t, 90*types.Coin, balance(t, exec, addr1, "").Balance)
	assert.Equal(t, 10*types.Coin, balance(t, exec, addr2, "").Balance)

	stored, err := exec.GetTxResult(result.Hash)
	require.NoError(t, err)
	assert.Equal(t, tx.Hash(), stored.Hash)
	assert.Equal(t, int64(1), stored.Height)
	_, err = exec.GetTxResult([]byte("missing"))
	assert.Equal(t, types.ErrNotFound, err)

	// same tx again
	_, err = exec.ExecTx(tx)
	assert.Equal(t, types.ErrTxDup, err)
	assert.Equal(t, int64(1), exec.Height())

	// index of the receiver, built by ExecLocal
	param, err := exec.NewQueryParam(cty.CoinsX, "GetAddrReciver")
	require.NoError(t, err)
	param.(*types.ReqAddr).Addr = addr2
	msg, err := exec.Query(cty.CoinsX, "GetAddrReciver", param)
	require.NoError(t, err)
	assert.Equal(t, 10*types.Coin, msg.(*types.Int64).Data)
}

func TestExecFailureKeepsState(t *testing.T) {
	priv1, addr1 := genKey(t, 1)
	_, addr2 := genKey(t, 2)
	exec := newTestExec(t, addr1)

	tx := cty.CreateTransfer(addr2, 1000*types.Coin, "")
	tx.Sign(types.SECP256K1, priv1)
	_, err := exec.ExecTx(tx)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, int64(0), exec.Height())
	assert.Equal(t, 100*types.Coin, balance(t, exec, addr1, "").Balance)
	_, err = exec.GetTxResult(tx.Hash())
	assert.Equal(t, types.ErrNotFound, err)

	// the same tx may be retried after a failure
	_, err = exec.ExecTx(tx)
	assert.Equal(t, types.ErrNoBalance, err)
}

func TestExecPaymentNotAllowed(t *testing.T) {
	priv1, addr1 := genKey(t, 1)
	_, addr2 := genKey(t, 2)
	exec := newTestExec(t, addr1)

	tx := cty.CreateTransfer(addr2, types.Coin, "")
	tx.Amount = types.Coin
	tx.Sign(types.SECP256K1, priv1)
	_, err := exec.ExecTx(tx)
	assert.Equal(t, types.ErrPaymentNotAllowed, err)
	assert.Equal(t, 100*types.Coin, balance(t, exec, addr1, "").Balance)
}

func TestExecCheckTx(t *testing.T) {
	priv1, addr1 := genKey(t, 1)
	_, addr2 := genKey(t, 2)
	exec := newTestExec(t, addr1)

	tx := cty.CreateTransfer(addr2, types.Coin, "")
	_, err := exec.ExecTx(tx)
	assert.Equal(t, types.ErrNoSignature, err)

	tx.Sign(types.SECP256K1, priv1)
	tx.Nonce++
	_, err = exec.ExecTx(tx)
	assert.Equal(t, types.ErrSign, err)

	tx = cty.CreateTransfer(addr2, types.Coin, "")
	tx.Amount = -1
	tx.Sign(types.SECP256K1, priv1)
	_, err = exec.ExecTx(tx)
	assert.Equal(t, types.ErrAmount, err)

	tx = types.CreateTx("nope", &types.ReqNil{}, 0)
	tx.Sign(types.SECP256K1, priv1)
	_, err = exec.ExecTx(tx)
	assert.Equal(t, types.ErrExecNotFound, err)
}

func TestExecEnable(t *testing.T) {
	priv1, addr1 := genKey(t, 1)
	_, addr2 := genKey(t, 2)
	exec := New(newMemDB(t), &types.Exec{Enable: []string{"other"}})
	require.NoError(t, exec.Genesis([]*types.GenesisAlloc{{Addr: addr1, Amount: 1}}))

	tx := cty.CreateTransfer(addr2, types.Coin, "")
	tx.Sign(types.SECP256K1, priv1)
	_, err := exec.ExecTx(tx)
	assert.Equal(t, types.ErrExecNotFound, err)
	_, err = exec.Query(cty.CoinsX, "GetAddrReciver", &types.ReqAddr{Addr: addr2})
	assert.Equal(t, types.ErrExecNotFound, err)
}

func TestExecAccountRoundTrip(t *testing.T) {
	priv1, addr1 := genKey(t, 1)
	exec := newTestExec(t, addr1)
	execaddr := drivers.ExecAddress(cty.CoinsX)

	tx := cty.CreateTransfer(execaddr, 30*types.Coin, "")
	tx.Sign(types.SECP256K1, priv1)
	_, err := exec.ExecTx(tx)
	require.NoError(t, err)
	assert.Equal(t, 70*types.Coin, balance(t, exec, addr1, "").Balance)
	assert.Equal(t, 30*types.Coin, balance(t, exec, addr1, cty.CoinsX).Balance)

	tx = cty.CreateWithdraw(cty.CoinsX, 20*types.Coin)
	tx.Sign(types.SECP256K1, priv1)
	_, err = exec.ExecTx(tx)
	require.NoError(t, err)
	assert.Equal(t, 90*types.Coin, balance(t, exec, addr1, "").Balance)
	assert.Equal(t, 10*types.Coin, balance(t, exec, addr1, cty.CoinsX).Balance)

	tx = cty.CreateWithdraw("nope", types.Coin)
	tx.Sign(types.SECP256K1, priv1)
	_, err = exec.ExecTx(tx)
	assert.Equal(t, types.ErrExecNotFound, err)
}

func TestExecReopen(t *testing.T) {
	priv1, addr1 := genKey(t, 1)
	_, addr2 := genKey(t, 2)
	db := newMemDB(t)
	exec := New(db, nil)
	require.NoError(t, exec.Genesis([]*types.GenesisAlloc{{Addr: addr1, Amount: 5}}))
	tx := cty.CreateTransfer(addr2, types.Coin, "")
	tx.Sign(types.SECP256K1, priv1)
	_, err := exec.ExecTx(tx)
	require.NoError(t, err)

	exec = New(db, nil)
	assert.Equal(t, int64(1), exec.Height())
	assert.Equal(t, types.ErrGenesisApplied, exec.Genesis([]*types.GenesisAlloc{{Addr: addr1, Amount: 5}}))
	_, err = exec.ExecTx(tx)
	assert.Equal(t, types.ErrTxDup, err)
}

func TestExecReopenLevelDB(t *testing.T) {
	priv1, addr1 := genKey(t, 1)
	_, addr2 := genKey(t, 2)
	dir, db := util.CreateTestDB()
	exec := New(db, nil)
	require.NoError(t, exec.Genesis([]*types.GenesisAlloc{{Addr: addr1, Amount: 5}}))
	tx := cty.CreateTransfer(addr2, types.Coin, "")
	tx.Sign(types.SECP256K1, priv1)
	res, err := exec.ExecTx(tx)
	require.NoError(t, err)
	util.JSONPrint(t, res)
	db.Close()

	db, err = dbm.NewGoLevelDB("goleveldb", dir, 128)
	require.NoError(t, err)
	defer util.CloseTestDB(dir, db)
	exec = New(db, nil)
	assert.Equal(t, int64(1), exec.Height())
	assert.Equal(t, types.Coin, balance(t, exec, addr2, "").Balance)
	_, err = exec.ExecTx(tx)
	assert.Equal(t, types.ErrTxDup, err)
}

func TestQueryErrors(t *testing.T) {
	exec := newTestExec(t)
	_, err := exec.NewQueryParam(cty.CoinsX, "Nope")
	assert.Equal(t, types.ErrQueryNotSupport, err)
	_, err = exec.Query(cty.CoinsX, "GetAddrReciver", &types.ReqBalance{})
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = exec.NewQueryParam("nope", "GetAddrReciver")
	assert.Equal(t, types.ErrExecNotFound, err)
}
