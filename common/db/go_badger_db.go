// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"
	"path"

	"github.com/dgraph-io/badger"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "db.badger")

func init() {
	dbCreator := func(name string, dir string, cache int32) (DB, error) {
		return NewGoBadgerDB(name, dir, cache)
	}
	registerDBCreator(BadgerBackendStr, dbCreator, false)
}

// badger logs through log15
type badgerLogger struct {
	log.Logger
}

func (l badgerLogger) Errorf(format string, v ...interface{}) {
	l.Error("badger", "msg", sprintf(format, v...))
}

func (l badgerLogger) Warningf(format string, v ...interface{}) {
	l.Warn("badger", "msg", sprintf(format, v...))
}

func (l badgerLogger) Infof(format string, v ...interface{}) {
	l.Debug("badger", "msg", sprintf(format, v...))
}

func (l badgerLogger) Debugf(format string, v ...interface{}) {
	l.Debug("badger", "msg", sprintf(format, v...))
}

//GoBadgerDB db
type GoBadgerDB struct {
	db *badger.DB
}

//NewGoBadgerDB open name.db under dir
func NewGoBadgerDB(name string, dir string, cache int32) (*GoBadgerDB, error) {
	dbPath := path.Join(dir, name+".db")
	opts := badger.DefaultOptions(dbPath).WithLogger(badgerLogger{blog})
	db, err := badger.Open(opts)
	if err != nil {
		blog.Error("NewGoBadgerDB", "error", err)
		return nil, err
	}
	return &GoBadgerDB{db: db}, nil
}

//Get get
func (db *GoBadgerDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := db.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFoundInDb
	}
	if err != nil {
		blog.Error("Get", "error", err)
		return nil, err
	}
	return val, nil
}

//Set set
func (db *GoBadgerDB) Set(key []byte, value []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		blog.Error("Set", "error", err)
	}
	return err
}

//SetSync badger syncs on commit by default
func (db *GoBadgerDB) SetSync(key []byte, value []byte) error {
	return db.Set(key, value)
}

//Delete 删除
func (db *GoBadgerDB) Delete(key []byte) error {
	err := db.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		blog.Error("Delete", "error", err)
	}
	return err
}

//DeleteSync 删除同步
func (db *GoBadgerDB) DeleteSync(key []byte) error {
	return db.Delete(key)
}

//DB raw badger
func (db *GoBadgerDB) DB() *badger.DB {
	return db.db
}

//Close 关闭
func (db *GoBadgerDB) Close() {
	if err := db.db.Close(); err != nil {
		blog.Error("Close", "error", err)
	}
}

//Stats lsm and value log sizes
func (db *GoBadgerDB) Stats() map[string]string {
	lsm, vlog := db.db.Size()
	return map[string]string{"badger.lsm": itoa64(lsm), "badger.vlog": itoa64(vlog)}
}

//Iterator 迭代器
func (db *GoBadgerDB) Iterator(start []byte, end []byte, reverse bool) Iterator {
	if end == nil {
		end = BytesPrefix(start)
	}
	txn := db.db.NewTransaction(false)
	opts := badger.DefaultIteratorOptions
	opts.Reverse = reverse
	it := txn.NewIterator(opts)
	return &goBadgerDBIt{
		ItBase: ItBase{Start: start, End: end, Reverse: reverse},
		txn:    txn,
		it:     it,
	}
}

type goBadgerDBIt struct {
	ItBase
	txn *badger.Txn
	it  *badger.Iterator
	err error
}

func (it *goBadgerDBIt) Rewind() bool {
	if !it.Reverse {
		it.it.Seek(it.Start)
		return it.Valid()
	}
	if len(it.End) == 0 {
		it.it.Rewind()
		return it.Valid()
	}
	it.it.Seek(it.End)
	if it.it.Valid() && bytes.Equal(it.it.Item().Key(), it.End) {
		it.it.Next()
	}
	return it.Valid()
}

func (it *goBadgerDBIt) Next() bool {
	it.it.Next()
	return it.Valid()
}

func (it *goBadgerDBIt) Seek(key []byte) bool {
	it.it.Seek(key)
	return it.Valid()
}

func (it *goBadgerDBIt) Valid() bool {
	return it.it.Valid() && it.checkKey(it.it.Item().Key())
}

func (it *goBadgerDBIt) Key() []byte {
	return it.it.Item().Key()
}

func (it *goBadgerDBIt) Value() []byte {
	value, err := it.it.Item().ValueCopy(nil)
	if err != nil {
		it.err = err
	}
	return value
}

func (it *goBadgerDBIt) ValueCopy() []byte {
	return it.Value()
}

func (it *goBadgerDBIt) Error() error {
	return it.err
}

func (it *goBadgerDBIt) Close() {
	it.it.Close()
	it.txn.Discard()
}

//NewBatch writes applied in one badger update txn
func (db *GoBadgerDB) NewBatch(sync bool) Batch {
	return &badgerBatch{db: db}
}

type badgerBatch struct {
	db     *GoBadgerDB
	writes []kv
	size   int
}

func (b *badgerBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{CloneByte(key), CloneByte(value)})
	b.size += len(key) + len(value)
}

func (b *badgerBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{CloneByte(key), nil})
	b.size += len(key)
}

func (b *badgerBatch) Write() error {
	err := b.db.db.Update(func(txn *badger.Txn) error {
		for _, kv := range b.writes {
			var err error
			if kv.v == nil {
				err = txn.Delete(kv.k)
			} else {
				err = txn.Set(kv.k, kv.v)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		blog.Error("Write", "error", err)
	}
	return err
}

func (b *badgerBatch) ValueSize() int {
	return b.size
}

func (b *badgerBatch) Reset() {
	b.writes = b.writes[:0]
	b.size = 0
}
