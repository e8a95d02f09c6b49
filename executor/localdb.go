// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/duel/common/db"
	"github.com/33cn/duel/types"
)

// LocalDB query indexes built by ExecLocal. Same tx model as StateDB;
// List only sees committed keys.
type LocalDB struct {
	db      dbm.DB
	txcache map[string][]byte
	keys    []string
	intx    bool
}

// NewLocalDB local db over the store db
func NewLocalDB(db dbm.DB) *LocalDB {
	return &LocalDB{db: db}
}

// Begin 开始一个事务
func (l *LocalDB) Begin() {
	l.intx = true
	l.keys = nil
	l.txcache = make(map[string][]byte)
}

// Rollback 回滚修改
func (l *LocalDB) Rollback() {
	l.resetTx()
}

// Commit 提交一个事务
func (l *LocalDB) Commit() error {
	if !l.intx {
		return nil
	}
	batch := l.db.NewBatch(true)
	for _, k := range l.keys {
		v := l.txcache[k]
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	err := batch.Write()
	l.resetTx()
	return err
}

func (l *LocalDB) resetTx() {
	l.intx = false
	l.txcache = nil
	l.keys = nil
}

// Get 获取key
func (l *LocalDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if l.intx {
		if value, ok := l.txcache[skey]; ok {
			if value == nil {
				return nil, types.ErrNotFound
			}
			return value, nil
		}
	}
	value, err := l.db.Get(key)
	if err == dbm.ErrNotFoundInDb || (err == nil && value == nil) {
		return nil, types.ErrNotFound
	}
	return value, err
}

// Set 设置key
func (l *LocalDB) Set(key []byte, value []byte) error {
	if !l.intx {
		if value == nil {
			return l.db.Delete(key)
		}
		return l.db.Set(key, value)
	}
	skey := string(key)
	if _, ok := l.txcache[skey]; !ok {
		l.keys = append(l.keys, skey)
	}
	l.txcache[skey] = dbm.CloneByte(value)
	return nil
}

// List 从数据库中查询数据列表
func (l *LocalDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	values := dbm.NewListHelper(l.db).List(prefix, key, count, direction)
	if len(values) == 0 {
		return nil, types.ErrNotFound
	}
	return values, nil
}
