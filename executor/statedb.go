// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/duel/common/db"
	"github.com/33cn/duel/types"
)

// StateDB state of every executor. Writes between Begin and Commit are kept
// in txcache and reach the store in one batch; a nil value deletes the key.
type StateDB struct {
	db      dbm.DB
	txcache map[string][]byte
	keys    []string
	intx    bool
}

// NewStateDB state db over the store db
func NewStateDB(db dbm.DB) *StateDB {
	return &StateDB{db: db}
}

// Begin 开始一个事务
func (s *StateDB) Begin() {
	s.intx = true
	s.keys = nil
	s.txcache = make(map[string][]byte)
}

// Rollback drop every write since Begin
func (s *StateDB) Rollback() {
	s.resetTx()
}

// Commit write the tx cache atomically
func (s *StateDB) Commit() error {
	if !s.intx {
		return nil
	}
	batch := s.db.NewBatch(true)
	for _, k := range s.keys {
		v := s.txcache[k]
		if v == nil {
			batch.Delete([]byte(k))
		} else {
			batch.Set([]byte(k), v)
		}
	}
	err := batch.Write()
	s.resetTx()
	return err
}

func (s *StateDB) resetTx() {
	s.intx = false
	s.txcache = nil
	s.keys = nil
}

// Get types.ErrNotFound when missing or deleted in the current tx
func (s *StateDB) Get(key []byte) ([]byte, error) {
	skey := string(key)
	if s.intx {
		if value, ok := s.txcache[skey]; ok {
			if value == nil {
				return nil, types.ErrNotFound
			}
			return value, nil
		}
	}
	value, err := s.db.Get(key)
	if err == dbm.ErrNotFoundInDb || (err == nil && value == nil) {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set outside of a tx the write goes straight to the store
func (s *StateDB) Set(key []byte, value []byte) error {
	if !s.intx {
		if value == nil {
			return s.db.Delete(key)
		}
		return s.db.Set(key, value)
	}
	skey := string(key)
	if _, ok := s.txcache[skey]; !ok {
		s.keys = append(s.keys, skey)
	}
	s.txcache[skey] = dbm.CloneByte(value)
	return nil
}
