// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package account coins ledger: balances of addresses and their escrow
accounts inside executors.

	LoadAccount / SaveAccount   coins balance
	Transfer                    coins balance -> coins balance
	TransferToExec              coins balance -> exec account balance
	ExecFrozen / ExecActive     exec account balance <-> frozen
	ExecTransferFrozen          frozen of one address -> balance of another
	TransferWithdraw            exec account balance -> coins balance
*/
package account

import (
	"fmt"
	"strings"

	"github.com/33cn/duel/common/address"
	dbm "github.com/33cn/duel/common/db"
	"github.com/33cn/duel/types"
	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var alog = log.New("module", "account")

// CoinSymbol symbol of the native coin
const CoinSymbol = "duel"

// DB for account
type DB struct {
	db                   dbm.KVDB
	accountKeyPerfix     []byte
	execAccountKeyPerfix []byte
	execer               string
	symbol               string
}

// NewCoinsAccount native coin ledger, SetDB before use
func NewCoinsAccount() *DB {
	prefix := SymbolPrefix(types.CoinsX, CoinSymbol)
	acc := newAccountDB(prefix)
	acc.execer = types.CoinsX
	acc.symbol = CoinSymbol
	return acc
}

// NewAccountDB ledger of symbol issued by execer
func NewAccountDB(execer string, symbol string, db dbm.KVDB) (*DB, error) {
	if strings.ContainsRune(execer, '-') {
		return nil, types.ErrExecNameNotAllow
	}
	if strings.ContainsRune(symbol, '-') {
		return nil, types.ErrInvalidParam
	}
	accDB := newAccountDB(SymbolPrefix(execer, symbol))
	accDB.execer = execer
	accDB.symbol = symbol
	accDB.SetDB(db)
	return accDB, nil
}

func newAccountDB(prefix string) *DB {
	acc := &DB{}
	acc.accountKeyPerfix = []byte(prefix)
	acc.execAccountKeyPerfix = append([]byte(prefix), []byte("exec-")...)
	return acc
}

// SetDB bind the ledger to a state db
func (acc *DB) SetDB(db dbm.KVDB) *DB {
	acc.db = db
	return acc
}

// LoadAccount missing accounts load as zero balance
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	err = types.Decode(value, &acc1)
	if err != nil {
		panic(err)
	}
	return &acc1
}

// LoadAccounts 批量载入
func (acc *DB) LoadAccounts(addrs []string) []*types.Account {
	accs := make([]*types.Account, 0, len(addrs))
	for i := 0; i < len(addrs); i++ {
		accs = append(accs, acc.LoadAccount(addrs[i]))
	}
	return accs
}

// CheckTransfer from has enough balance
func (acc *DB) CheckTransfer(from, to string, amount int64) error {
	if !types.CheckAmount(amount) {
		return types.ErrAmount
	}
	accFrom := acc.LoadAccount(from)
	b := accFrom.GetBalance() - amount
	if b < 0 {
		return types.ErrNoBalance
	}
	return nil
}

// Transfer coins between two addresses
func (acc *DB) Transfer(from, to string, amount int64) (*types.Receipt, error) {
	if !types.CheckAmount(amount) {
		return nil, types.ErrAmount
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	if accFrom.Addr == accTo.Addr {
		return nil, types.ErrSendSameToRecv
	}
	if accFrom.GetBalance()-amount >= 0 {
		copyfrom := *accFrom
		copyto := *accTo

		accFrom.Balance = accFrom.GetBalance() - amount
		accTo.Balance = accTo.GetBalance() + amount

		receiptBalanceFrom := &types.ReceiptAccountTransfer{
			Prev:    &copyfrom,
			Current: accFrom,
		}
		receiptBalanceTo := &types.ReceiptAccountTransfer{
			Prev:    &copyto,
			Current: accTo,
		}

		acc.SaveAccount(accFrom)
		acc.SaveAccount(accTo)
		return acc.transferReceipt(accFrom, accTo, receiptBalanceFrom, receiptBalanceTo), nil
	}
	alog.Debug("Transfer", "from", from, "balance", accFrom.GetBalance(), "amount", amount)
	return nil, types.ErrNoBalance
}

func (acc *DB) transferReceipt(accFrom, accTo *types.Account, receiptFrom, receiptTo proto.Message) *types.Receipt {
	ty := int32(types.TyLogTransfer)
	log1 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptFrom),
	}
	log2 := &types.ReceiptLog{
		Ty:  ty,
		Log: types.Encode(receiptTo),
	}
	kv := acc.GetKVSet(accFrom)
	kv = append(kv, acc.GetKVSet(accTo)...)
	return &types.Receipt{
		Ty:   types.ExecOk,
		KV:   kv,
		Logs: []*types.ReceiptLog{log1, log2},
	}
}

// SaveAccount write coins account to db
func (acc *DB) SaveAccount(acc1 *types.Account) {
	set := acc.GetKVSet(acc1)
	for i := 0; i < len(set); i++ {
		err := acc.db.Set(set[i].GetKey(), set[i].Value)
		if err != nil {
			panic(err)
		}
	}
}

// GetKVSet kv of a coins account
func (acc *DB) GetKVSet(acc1 *types.Account) (kvset []*types.KeyValue) {
	value := types.Encode(acc1)
	kvset = append(kvset, &types.KeyValue{
		Key:   acc.AccountKey(acc1.Addr),
		Value: value,
	})
	return kvset
}

// AccountKey return the key of address in DB
func (acc *DB) AccountKey(address string) (key []byte) {
	key = make([]byte, 0, len(acc.accountKeyPerfix)+len(address))
	key = append(key, acc.accountKeyPerfix...)
	key = append(key, []byte(address)...)
	return key
}

// GetBalance coins balances, or exec account balances when req.Execer is set
func (acc *DB) GetBalance(req *types.ReqBalance) ([]*types.Account, error) {
	for _, addr := range req.GetAddresses() {
		if err := address.CheckAddress(addr); err != nil {
			return nil, types.ErrInvalidAddress
		}
	}
	if req.GetExecer() == "" {
		return acc.LoadAccounts(req.GetAddresses()), nil
	}
	execaddr := address.ExecAddress(req.GetExecer())
	accs := make([]*types.Account, 0, len(req.GetAddresses()))
	for _, addr := range req.GetAddresses() {
		accs = append(accs, acc.LoadExecAccount(addr, execaddr))
	}
	return accs, nil
}

// SymbolPrefix key prefix of a symbol ledger
func SymbolPrefix(execer string, symbol string) string {
	return fmt.Sprintf("mavl-%s-%s-", execer, symbol)
}
