// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp base of executor drivers.
//
// A driver handles the transactions of one executor name. DriverBase decodes
// the payload with the registered ExecutorType and calls the child method
// named after the action:
//
//	Exec_<Action>(payload, tx) (*types.Receipt, error)
//	ExecLocal_<Action>(payload, tx, receipt) (*types.LocalDBSet, error)
//	Query_<FuncName>(req) (types.Message, error)
package dapp

import (
	"reflect"
	"sync"

	"github.com/33cn/duel/account"
	dbm "github.com/33cn/duel/common/db"
	"github.com/33cn/duel/common/log"
	"github.com/33cn/duel/types"
)

var blog = log.New("module", "execs.base")

// Driver executor driver
type Driver interface {
	SetStateDB(dbm.KV)
	GetStateDB() dbm.KV
	SetLocalDB(dbm.KVDBList)
	GetLocalDB() dbm.KVDBList
	GetCoinsAccount() *account.DB
	GetName() string
	GetDriverName() string
	SetEnv(height, blocktime int64)
	AllowPayment() bool
	GetActionName(tx *types.Transaction) string
	GetExecutorType() types.ExecutorType
	GetPayloadValue() types.Message
	GetFuncMap() map[string]reflect.Method
	Exec(tx *types.Transaction) (*types.Receipt, error)
	ExecLocal(tx *types.Transaction, receipt *types.ReceiptData) (*types.LocalDBSet, error)
	NewQueryParam(funcName string) (types.Message, error)
	Query(funcName string, params types.Message) (types.Message, error)
}

var funcMapCache sync.Map

// DriverBase 执行器基类
type DriverBase struct {
	statedb      dbm.KV
	localdb      dbm.KVDBList
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	child        Driver
	childValue   reflect.Value
	ety          types.ExecutorType
	funcmap      map[string]reflect.Method
}

// SetChild bind the concrete driver, its exported methods are the dispatch table
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
	d.childValue = reflect.ValueOf(e)
	typ := reflect.TypeOf(e)
	if m, ok := funcMapCache.Load(typ); ok {
		d.funcmap = m.(map[string]reflect.Method)
		return
	}
	d.funcmap = types.ListMethodByType(typ)
	funcMapCache.Store(typ, d.funcmap)
}

// SetExecutorType payload description used to decode txs
func (d *DriverBase) SetExecutorType(e types.ExecutorType) {
	d.ety = e
}

// GetExecutorType get
func (d *DriverBase) GetExecutorType() types.ExecutorType {
	return d.ety
}

// GetPayloadValue new empty payload
func (d *DriverBase) GetPayloadValue() types.Message {
	if d.ety == nil {
		return nil
	}
	return d.ety.GetPayload()
}

// GetFuncMap methods of the child driver
func (d *DriverBase) GetFuncMap() map[string]reflect.Method {
	return d.funcmap
}

// GetActionName action name of tx
func (d *DriverBase) GetActionName(tx *types.Transaction) string {
	if d.ety == nil {
		return "unknown"
	}
	return d.ety.ActionName(tx)
}

// AllowPayment txs carrying Amount are rejected unless the child overrides
func (d *DriverBase) AllowPayment() bool {
	return false
}

// SetEnv height is the sequence of the tx being executed
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// GetHeight get
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime get
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// SetStateDB set state db, the coins ledger shares it
func (d *DriverBase) SetStateDB(db dbm.KV) {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
	}
	d.statedb = db
	d.coinsaccount.SetDB(db)
}

// GetStateDB get
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetLocalDB set
func (d *DriverBase) SetLocalDB(db dbm.KVDBList) {
	d.localdb = db
}

// GetLocalDB get
func (d *DriverBase) GetLocalDB() dbm.KVDBList {
	return d.localdb
}

// GetCoinsAccount coins ledger over the state db
func (d *DriverBase) GetCoinsAccount() *account.DB {
	if d.coinsaccount == nil {
		d.coinsaccount = account.NewCoinsAccount()
		d.coinsaccount.SetDB(d.statedb)
	}
	return d.coinsaccount
}

// GetName executor name
func (d *DriverBase) GetName() string {
	return d.child.GetDriverName()
}

// GetExecAddr address of this executor
func (d *DriverBase) GetExecAddr() string {
	return ExecAddress(d.child.GetDriverName())
}

// Exec call Exec_<Action> of the child
func (d *DriverBase) Exec(tx *types.Transaction) (receipt *types.Receipt, err error) {
	if d.ety == nil {
		return nil, types.ErrActionNotSupport
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call exec error", "tx.exec", string(tx.Execer), "info", r)
			err = types.ErrActionNotSupport
			receipt = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return nil, err
	}
	funcname := "Exec_" + name
	method, ok := d.funcmap[funcname]
	if !ok {
		return nil, types.ErrActionNotSupport
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	r1 := valueret[0].Interface()
	if r1 != nil {
		if r, ok := r1.(*types.Receipt); ok {
			receipt = r
		} else {
			return nil, types.ErrMethodReturnType
		}
	}
	return receipt, toError(valueret[1])
}

// ExecLocal call ExecLocal_<Action> of the child, missing handlers give an empty set
func (d *DriverBase) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData) (set *types.LocalDBSet, err error) {
	set = &types.LocalDBSet{}
	if d.ety == nil {
		return set, nil
	}
	defer func() {
		if r := recover(); r != nil {
			blog.Error("call localexec error", "tx.exec", string(tx.Execer), "info", r)
			err = types.ErrActionNotSupport
			set = nil
		}
	}()
	name, value, err := d.ety.DecodePayloadValue(tx)
	if err != nil {
		return set, nil
	}
	method, ok := d.funcmap["ExecLocal_"+name]
	if !ok {
		return set, nil
	}
	valueret := method.Func.Call([]reflect.Value{d.childValue, value, reflect.ValueOf(tx), reflect.ValueOf(receipt)})
	if !types.IsOK(valueret, 2) {
		return nil, types.ErrMethodReturnType
	}
	if r1 := valueret[0].Interface(); r1 != nil {
		lset, ok := r1.(*types.LocalDBSet)
		if !ok {
			return nil, types.ErrMethodReturnType
		}
		if lset != nil {
			set.KV = append(set.KV, lset.KV...)
		}
	}
	if err := toError(valueret[1]); err != nil {
		return nil, err
	}
	return set, nil
}

func toError(v reflect.Value) error {
	r2 := v.Interface()
	if r2 == nil {
		return nil
	}
	if r, ok := r2.(error); ok {
		return r
	}
	return types.ErrMethodReturnType
}
