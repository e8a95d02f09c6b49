// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db key-value storage backends
package db

import (
	"bytes"
	"errors"

	pkgerr "github.com/pkg/errors"
)

//ErrNotFoundInDb error
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

//KV state access of executors, with transaction support
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) (err error)
	Begin()
	Rollback()
	Commit() error
}

//KVDB plain get and set
type KVDB interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) (err error)
}

//KVDBList local db of executors, with paging
type KVDBList interface {
	KVDB
	List(prefix, key []byte, count, direction int32) ([][]byte, error)
}

//IteratorDB iterator over [start, end), end nil means the prefix range of start
type IteratorDB interface {
	Iterator(start []byte, end []byte, reverse bool) Iterator
}

//DB backend interface
type DB interface {
	KVDB
	IteratorDB
	SetSync([]byte, []byte) error
	Delete([]byte) error
	DeleteSync([]byte) error
	Close()
	NewBatch(sync bool) Batch
	Stats() map[string]string
}

//Batch atomic write set
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
	ValueSize() int
	Reset()
}

//Iterator 迭代器
type Iterator interface {
	Rewind() bool
	Next() bool
	Valid() bool
	Seek(key []byte) bool
	Key() []byte
	Value() []byte
	ValueCopy() []byte
	Error() error
	Prefix() []byte
	Close()
}

//ItBase range of an iterator
type ItBase struct {
	Start   []byte
	End     []byte
	Reverse bool
}

func (it *ItBase) checkKey(key []byte) bool {
	if key == nil {
		return false
	}
	if len(it.Start) > 0 && bytes.Compare(key, it.Start) < 0 {
		return false
	}
	if len(it.End) > 0 && bytes.Compare(key, it.End) >= 0 {
		return false
	}
	return true
}

//Prefix start key of the iterator
func (it *ItBase) Prefix() []byte {
	return it.Start
}

// backend names
const (
	LevelDBBackendStr   = "leveldb"
	GoLevelDBBackendStr = "goleveldb"
	MemDBBackendStr     = "memdb"
	BadgerBackendStr    = "badger"
)

type dbCreator func(name string, dir string, cache int32) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB open db name under dir with backend
func NewDB(name string, backend string, dir string, cache int32) (DB, error) {
	creator, ok := backends[backend]
	if !ok {
		return nil, pkgerr.Errorf("unknown db backend %q", backend)
	}
	db, err := creator(name, dir, cache)
	if err != nil {
		return nil, pkgerr.Wrapf(err, "open %s db %s", backend, name)
	}
	return db, nil
}

//CloneByte 拷贝字节
func CloneByte(v []byte) []byte {
	if v == nil {
		return nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

//BytesPrefix smallest key greater than every key with the prefix, nil when none
func BytesPrefix(prefix []byte) []byte {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return limit
}
