// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package executor runs transactions against the registered drivers.
//
// Transactions execute one at a time. Each one runs inside a StateDB
// transaction: the attached payment is moved into the exec account of the
// target executor, the driver runs, and either every write is committed in
// one batch or none is. Local indexes are built afterwards by ExecLocal.
package executor

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/33cn/duel/account"
	"github.com/33cn/duel/common"
	"github.com/33cn/duel/common/address"
	dbm "github.com/33cn/duel/common/db"
	"github.com/33cn/duel/common/log"
	drivers "github.com/33cn/duel/system/dapp"
	"github.com/33cn/duel/types"
	"github.com/pkg/errors"
	"github.com/rcrowley/go-metrics"
)

var elog = log.New("module", "execs")

var (
	heightKey   = []byte("mavl-exec-height")
	txDoneKeyPf = "mavl-exec-tx-"
)

// Executor 执行器
type Executor struct {
	mu      sync.Mutex
	statedb *StateDB
	localdb *LocalDB
	enabled map[string]bool
	height  int64

	txOk    metrics.Meter
	txErr   metrics.Meter
	txTimer metrics.Timer
}

// New executor over db. An empty enable list enables every registered driver.
func New(db dbm.DB, cfg *types.Exec) *Executor {
	exec := &Executor{
		statedb: NewStateDB(db),
		localdb: NewLocalDB(db),
		enabled: make(map[string]bool),
		txOk:    metrics.GetOrRegisterMeter("executor.tx.ok", nil),
		txErr:   metrics.GetOrRegisterMeter("executor.tx.err", nil),
		txTimer: metrics.GetOrRegisterTimer("executor.tx.time", nil),
	}
	var names []string
	if cfg != nil {
		names = cfg.Enable
	}
	if len(names) == 0 {
		names = drivers.GetDriverNames()
	}
	for _, name := range names {
		exec.enabled[name] = true
	}
	if v, err := exec.statedb.Get(heightKey); err == nil && len(v) == 8 {
		exec.height = int64(binary.BigEndian.Uint64(v))
	}
	return exec
}

// Height number of txs executed so far
func (exec *Executor) Height() int64 {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return exec.height
}

func (exec *Executor) loadDriver(name string) (drivers.Driver, error) {
	if !exec.enabled[name] {
		return nil, types.ErrExecNotFound
	}
	driver, err := drivers.LoadDriver(name)
	if err != nil {
		return nil, err
	}
	driver.SetStateDB(exec.statedb)
	driver.SetLocalDB(exec.localdb)
	return driver, nil
}

// ExecTx check and execute one signed tx, the state is unchanged on error
func (exec *Executor) ExecTx(tx *types.Transaction) (*types.TxResult, error) {
	start := time.Now()
	defer exec.txTimer.UpdateSince(start)
	result, err := exec.execTx(tx)
	if err != nil {
		exec.txErr.Mark(1)
		elog.Debug("ExecTx", "execer", string(tx.GetExecer()), "err", err)
		return nil, err
	}
	exec.txOk.Mark(1)
	elog.Info("ExecTx", "execer", string(tx.GetExecer()), "height", result.Height, "hash", common.ToHex(result.Hash))
	return result, nil
}

func checkTx(tx *types.Transaction) error {
	if tx.Size() > types.MaxTxSize {
		return types.ErrTxMsgSizeTooBig
	}
	if tx.GetSignature() == nil {
		return types.ErrNoSignature
	}
	if !tx.CheckSign() {
		return types.ErrSign
	}
	if tx.GetAmount() < 0 || tx.GetAmount() > types.MaxCoin {
		return types.ErrAmount
	}
	return nil
}

func (exec *Executor) execTx(tx *types.Transaction) (*types.TxResult, error) {
	if err := checkTx(tx); err != nil {
		return nil, err
	}
	driver, err := exec.loadDriver(string(tx.Execer))
	if err != nil {
		return nil, err
	}
	exec.mu.Lock()
	defer exec.mu.Unlock()

	hash := tx.Hash()
	txDoneKey := append([]byte(txDoneKeyPf), hash...)
	if _, err := exec.statedb.Get(txDoneKey); err == nil {
		return nil, types.ErrTxDup
	}
	height := exec.height + 1
	blocktime := time.Now().Unix()
	driver.SetEnv(height, blocktime)

	exec.statedb.Begin()
	receipt, err := exec.execTxDriver(driver, tx)
	if err != nil {
		exec.statedb.Rollback()
		return nil, err
	}
	var hb [8]byte
	binary.BigEndian.PutUint64(hb[:], uint64(height))
	exec.statedb.Set(heightKey, hb[:])
	exec.statedb.Set(txDoneKey, []byte{1})
	if err := exec.statedb.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit state")
	}
	exec.height = height

	result := &types.TxResult{
		Hash:      hash,
		Height:    height,
		Blocktime: blocktime,
		Tx:        tx,
		Receipt:   &types.ReceiptData{Ty: receipt.Ty, Logs: receipt.Logs},
	}
	exec.execLocal(driver, result)
	return result, nil
}

func (exec *Executor) execTxDriver(driver drivers.Driver, tx *types.Transaction) (*types.Receipt, error) {
	var receipt *types.Receipt
	if tx.GetAmount() > 0 {
		if !driver.AllowPayment() {
			return nil, types.ErrPaymentNotAllowed
		}
		r, err := driver.GetCoinsAccount().TransferToExec(tx.From(), drivers.ExecAddress(driver.GetName()), tx.GetAmount())
		if err != nil {
			return nil, err
		}
		receipt = r
	}
	r, err := driver.Exec(tx)
	if err != nil {
		return nil, err
	}
	receipt = types.MergeReceipt(receipt, r)
	if receipt == nil {
		receipt = &types.Receipt{}
	}
	receipt.Ty = types.ExecOk
	return receipt, nil
}

// execLocal the state is already committed, index errors are logged only
func (exec *Executor) execLocal(driver drivers.Driver, result *types.TxResult) {
	exec.localdb.Begin()
	set, err := driver.ExecLocal(result.Tx, result.Receipt)
	if err != nil {
		elog.Error("ExecLocal", "execer", driver.GetName(), "hash", common.ToHex(result.Hash), "err", err)
		exec.localdb.Rollback()
		exec.localdb.Begin()
		set = &types.LocalDBSet{}
	}
	for _, kv := range set.GetKV() {
		exec.localdb.Set(kv.Key, kv.Value)
	}
	exec.localdb.Set(types.CalcTxResultKey(result.Hash), types.Encode(result))
	if err := exec.localdb.Commit(); err != nil {
		elog.Error("ExecLocal commit", "hash", common.ToHex(result.Hash), "err", err)
	}
}

// GetTxResult result of an executed tx
func (exec *Executor) GetTxResult(hash []byte) (*types.TxResult, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	value, err := exec.localdb.Get(types.CalcTxResultKey(hash))
	if err != nil {
		return nil, err
	}
	var result types.TxResult
	if err := types.Decode(value, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// NewQueryParam empty request of execer.funcName
func (exec *Executor) NewQueryParam(execer, funcName string) (types.Message, error) {
	driver, err := exec.loadDriver(execer)
	if err != nil {
		return nil, err
	}
	return driver.NewQueryParam(funcName)
}

// Query read only call of execer.funcName
func (exec *Executor) Query(execer, funcName string, param types.Message) (types.Message, error) {
	driver, err := exec.loadDriver(execer)
	if err != nil {
		return nil, err
	}
	exec.mu.Lock()
	defer exec.mu.Unlock()
	driver.SetEnv(exec.height, time.Now().Unix())
	return driver.Query(funcName, param)
}

// GetBalance coins or exec accounts
func (exec *Executor) GetBalance(req *types.ReqBalance) ([]*types.Account, error) {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	return account.NewCoinsAccount().SetDB(exec.statedb).GetBalance(req)
}

// Genesis credit the allocations once, ErrGenesisApplied afterwards
func (exec *Executor) Genesis(allocs []*types.GenesisAlloc) error {
	exec.mu.Lock()
	defer exec.mu.Unlock()
	if _, err := exec.statedb.Get([]byte(types.GenesisKey)); err == nil {
		return types.ErrGenesisApplied
	}
	acc := account.NewCoinsAccount().SetDB(exec.statedb)
	exec.statedb.Begin()
	for _, alloc := range allocs {
		if err := address.CheckAddress(alloc.Addr); err != nil {
			exec.statedb.Rollback()
			return errors.Wrapf(types.ErrInvalidAddress, "genesis addr %s", alloc.Addr)
		}
		if _, err := acc.GenesisInit(alloc.Addr, alloc.Amount*types.Coin); err != nil {
			exec.statedb.Rollback()
			return errors.Wrapf(err, "genesis addr %s", alloc.Addr)
		}
		elog.Info("Genesis", "addr", alloc.Addr, "amount", alloc.Amount)
	}
	exec.statedb.Set([]byte(types.GenesisKey), []byte{1})
	return exec.statedb.Commit()
}
