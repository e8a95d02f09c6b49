// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"fmt"

	"github.com/33cn/duel/common/db"
	"github.com/33cn/duel/types"
)

// HeightIndexStr fixed width height string, keeps local index keys ordered
func HeightIndexStr(height int64) string {
	return fmt.Sprintf("%018d", height)
}

//KVCreator 创建KV的辅助工具
type KVCreator struct {
	kvs  []*types.KeyValue
	kvdb db.KVDB
}

//NewKVCreator 创建创建者
func NewKVCreator(kv db.KVDB) *KVCreator {
	return &KVCreator{kvdb: kv}
}

func (c *KVCreator) add(key, value []byte, set bool) error {
	c.kvs = append(c.kvs, &types.KeyValue{Key: key, Value: value})
	if set {
		return c.kvdb.Set(key, value)
	}
	return nil
}

//Add add and set to kvdb
func (c *KVCreator) Add(key, value []byte) error {
	return c.add(key, value, true)
}

//AddKV only add KV
func (c *KVCreator) AddKV(key, value []byte) {
	c.add(key, value, false)
}

//Del set nil to key, the key is removed when committed
func (c *KVCreator) Del(key []byte) error {
	return c.add(key, nil, true)
}

//DelKV only add a delete KV
func (c *KVCreator) DelKV(key []byte) {
	c.add(key, nil, false)
}

//KVList 读取所有的kv列表
func (c *KVCreator) KVList() []*types.KeyValue {
	return c.kvs
}
