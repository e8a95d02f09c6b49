// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"bytes"

	log "github.com/inconshreveable/log15"
)

//ListHelper paging helper over an IteratorDB
type ListHelper struct {
	db IteratorDB
}

var listlog = log.New("module", "db.ListHelper")

//NewListHelper new
func NewListHelper(db IteratorDB) *ListHelper {
	return &ListHelper{db}
}

//const
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//PrefixScan all values under prefix, ascending
func (db *ListHelper) PrefixScan(prefix []byte) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, false)
	defer it.Close()
	for it.Rewind(); it.Valid(); it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("PrefixScan it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
	}
	return values
}

//List at most count values under prefix. An empty key starts from the
//first (ASC) or last (DESC) key; otherwise listing starts right after key.
func (db *ListHelper) List(prefix, key []byte, count, direction int32) (values [][]byte) {
	if len(key) == 0 {
		return db.IteratorScanFromFirst(prefix, count, direction)
	}
	return db.IteratorScan(prefix, key, count, direction)
}

//IteratorScan values after key
func (db *ListHelper) IteratorScan(prefix []byte, key []byte, count int32, direction int32) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, direction == ListDESC)
	defer it.Close()

	var i int32
	ok := it.Seek(key)
	if ok && bytes.Equal(it.Key(), key) {
		ok = it.Next()
	}
	for ; ok; ok = it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("IteratorScan it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return values
}

//IteratorScanFromFirst values from the start of the direction
func (db *ListHelper) IteratorScanFromFirst(prefix []byte, count int32, direction int32) (values [][]byte) {
	it := db.db.Iterator(prefix, nil, direction == ListDESC)
	defer it.Close()
	var i int32
	for ok := it.Rewind(); ok; ok = it.Next() {
		value := it.ValueCopy()
		if it.Error() != nil {
			listlog.Error("IteratorScanFromFirst it.Value()", "error", it.Error())
			return nil
		}
		values = append(values, value)
		i++
		if i == count {
			break
		}
	}
	return values
}
