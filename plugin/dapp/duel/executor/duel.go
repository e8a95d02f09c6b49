// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/json"
	"fmt"

	"github.com/33cn/duel/common/log"
	dty "github.com/33cn/duel/plugin/dapp/duel/types"
	drivers "github.com/33cn/duel/system/dapp"
	"github.com/33cn/duel/types"
	"github.com/rcrowley/go-metrics"
)

var dlog = log.New("module", "execs.duel")

var driverName = dty.DuelX

// DefaultListLimit page size of list queries when not configured
const DefaultListLimit = int32(20)

type subConfig struct {
	ListLimit int32 `json:"listLimit"`
}

var cfg = subConfig{ListLimit: DefaultListLimit}

var (
	createdCounter  = metrics.GetOrRegisterCounter("duel.created", nil)
	joinedCounter   = metrics.GetOrRegisterCounter("duel.joined", nil)
	resolvedCounter = metrics.GetOrRegisterCounter("duel.resolved", nil)
	payoutMeter     = metrics.GetOrRegisterMeter("duel.payout", nil)
)

// Init register the duel driver, sub is the json of [exec.sub.duel]
func Init(name string, sub []byte) {
	if name != driverName {
		panic("duel dapp can't be rename")
	}
	if sub != nil {
		var c subConfig
		if err := json.Unmarshal(sub, &c); err != nil {
			panic(err)
		}
		if c.ListLimit > 0 {
			cfg.ListLimit = c.ListLimit
		}
	}
	drivers.Register(driverName, newDuel)
}

// GetName executor name
func GetName() string {
	return newDuel().GetName()
}

// Duel escrow duel driver
type Duel struct {
	drivers.DriverBase
	rand RandSource
}

func newDuel() drivers.Driver {
	d := &Duel{rand: getRandSource()}
	d.SetChild(d)
	d.SetExecutorType(types.LoadExecutorType(driverName))
	return d
}

// GetDriverName driver name
func (d *Duel) GetDriverName() string {
	return driverName
}

// AllowPayment create and join carry the stake as the tx amount
func (d *Duel) AllowPayment() bool {
	return true
}

// ExecLocal maintain the status, address and record indexes from the duel logs
func (d *Duel) ExecLocal(tx *types.Transaction, receipt *types.ReceiptData) (*types.LocalDBSet, error) {
	set, err := d.DriverBase.ExecLocal(tx, receipt)
	if err != nil {
		return nil, err
	}
	if receipt.GetTy() != types.ExecOk {
		return set, nil
	}
	for _, item := range receipt.Logs {
		if item.Ty != dty.TyLogDuelCreate && item.Ty != dty.TyLogDuelJoin && item.Ty != dty.TyLogDuelResolve {
			continue
		}
		var duellog dty.ReceiptDuel
		if err := types.Decode(item.Log, &duellog); err != nil {
			panic(err) //数据错误了，已经被修改了
		}
		set.KV = append(set.KV, d.updateIndex(&duellog)...)
	}
	return set, nil
}

//更新索引, 同时删除老状态的索引
func (d *Duel) updateIndex(log *dty.ReceiptDuel) (kvs []*types.KeyValue) {
	switch log.Status {
	case dty.DuelStatusOpen:
		kvs = append(kvs, addDuelStatusIndex(log.Status, log.Initiator, log.Index))
		kvs = append(kvs, addDuelAddrIndex(log.Status, log.Initiator, log.Initiator, log.Index))
	case dty.DuelStatusMatched:
		kvs = append(kvs, addDuelStatusIndex(log.Status, log.Initiator, log.Index))
		kvs = append(kvs, addDuelAddrIndex(log.Status, log.Initiator, log.Initiator, log.Index))
		kvs = append(kvs, addDuelAddrIndex(log.Status, log.Initiator, log.Competitor, log.Index))
		kvs = append(kvs, delDuelStatusIndex(dty.DuelStatusOpen, log.PrevIndex))
		kvs = append(kvs, delDuelAddrIndex(dty.DuelStatusOpen, log.Initiator, log.PrevIndex))
	case dty.DuelStatusResolved:
		kvs = append(kvs, delDuelStatusIndex(dty.DuelStatusMatched, log.PrevIndex))
		kvs = append(kvs, delDuelAddrIndex(dty.DuelStatusMatched, log.Initiator, log.PrevIndex))
		kvs = append(kvs, delDuelAddrIndex(dty.DuelStatusMatched, log.Competitor, log.PrevIndex))
		if log.Record != nil {
			kvs = append(kvs, addDuelRecord("", log.Record, log.Index))
			kvs = append(kvs, addDuelRecord(log.Initiator, log.Record, log.Index))
			kvs = append(kvs, addDuelRecord(log.Competitor, log.Record, log.Index))
		}
	}
	return kvs
}

func calcDuelStatusIndexKey(status int32, index int64) []byte {
	return []byte(fmt.Sprintf(types.LocalPrefix+"duel-status:%d:%s", status, drivers.HeightIndexStr(index)))
}

func calcDuelStatusIndexPrefix(status int32) []byte {
	return []byte(fmt.Sprintf(types.LocalPrefix+"duel-status:%d:", status))
}

func calcDuelAddrIndexKey(status int32, addr string, index int64) []byte {
	return []byte(fmt.Sprintf(types.LocalPrefix+"duel-addr:%d:%s:%s", status, addr, drivers.HeightIndexStr(index)))
}

func calcDuelAddrIndexPrefix(status int32, addr string) []byte {
	return []byte(fmt.Sprintf(types.LocalPrefix+"duel-addr:%d:%s:", status, addr))
}

// addr empty is the index of every resolved duel
func calcDuelRecordKey(addr string, index int64) []byte {
	return []byte(fmt.Sprintf(types.LocalPrefix+"duel-record:%s:%s", addr, drivers.HeightIndexStr(index)))
}

func calcDuelRecordPrefix(addr string) []byte {
	return []byte(fmt.Sprintf(types.LocalPrefix+"duel-record:%s:", addr))
}

func addDuelStatusIndex(status int32, initiator string, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcDuelStatusIndexKey(status, index), Value: []byte(initiator)}
}

func addDuelAddrIndex(status int32, initiator, addr string, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcDuelAddrIndexKey(status, addr, index), Value: []byte(initiator)}
}

func addDuelRecord(addr string, record *dty.DuelRecord, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcDuelRecordKey(addr, index), Value: types.Encode(record)}
}

func delDuelStatusIndex(status int32, index int64) *types.KeyValue {
	return &types.KeyValue{Key: calcDuelStatusIndexKey(status, index)}
}

func delDuelAddrIndex(status int32, addr string, index int64) *types.KeyValue {
	//value置nil,提交时，会自动执行删除操作
	return &types.KeyValue{Key: calcDuelAddrIndexKey(status, addr, index)}
}
