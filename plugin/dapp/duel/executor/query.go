// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/33cn/duel/common/db"
	dty "github.com/33cn/duel/plugin/dapp/duel/types"
	"github.com/33cn/duel/types"
)

// Query_GetDuel open or matched game of the initiator
func (d *Duel) Query_GetDuel(in *dty.ReqDuel) (types.Message, error) {
	return readGame(d.GetStateDB(), in.GetInitiator())
}

// Query_ListDuels page of open or matched games, newest first by default
func (d *Duel) Query_ListDuels(in *dty.ReqDuelList) (types.Message, error) {
	if in.GetStatus() != dty.DuelStatusOpen && in.GetStatus() != dty.DuelStatusMatched {
		return nil, types.ErrInvalidParam
	}
	var prefix, key []byte
	if in.GetAddr() == "" {
		prefix = calcDuelStatusIndexPrefix(in.GetStatus())
		key = calcDuelStatusIndexKey(in.GetStatus(), in.GetIndex())
	} else {
		prefix = calcDuelAddrIndexPrefix(in.GetStatus(), in.GetAddr())
		key = calcDuelAddrIndexKey(in.GetStatus(), in.GetAddr(), in.GetIndex())
	}
	values, err := list(d.GetLocalDB(), prefix, key, in.GetIndex(), in.GetCount(), in.GetDirection())
	if err != nil {
		return nil, err
	}
	reply := &dty.ReplyDuelList{}
	statedb := d.GetStateDB()
	for _, value := range values {
		game, err := readGame(statedb, string(value))
		if err != nil {
			dlog.Debug("ListDuels", "initiator", string(value), "err", err)
			continue
		}
		reply.Games = append(reply.Games, game)
	}
	return reply, nil
}

// Query_ListDuelRecords page of resolved duels, Addr empty lists every duel
func (d *Duel) Query_ListDuelRecords(in *dty.ReqDuelRecords) (types.Message, error) {
	prefix := calcDuelRecordPrefix(in.GetAddr())
	key := calcDuelRecordKey(in.GetAddr(), in.GetIndex())
	values, err := list(d.GetLocalDB(), prefix, key, in.GetIndex(), in.GetCount(), in.GetDirection())
	if err != nil {
		return nil, err
	}
	reply := &dty.ReplyDuelRecords{}
	for _, value := range values {
		var record dty.DuelRecord
		if err := types.Decode(value, &record); err != nil {
			dlog.Error("ListDuelRecords", "decode", err)
			return nil, err
		}
		reply.Records = append(reply.Records, &record)
	}
	return reply, nil
}

// Query_GetDuelCount number of duels that reached a status
func (d *Duel) Query_GetDuelCount(in *dty.ReqDuelCount) (types.Message, error) {
	if in.GetStatus() < dty.DuelStatusOpen || in.GetStatus() > dty.DuelStatusResolved {
		return nil, types.ErrInvalidParam
	}
	count, err := queryCount(d.GetStateDB(), in.GetStatus(), in.GetAddr())
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: count}, nil
}

// index 0 starts from the first key of the direction, empty pages are not errors
func list(db dbm.KVDBList, prefix, key []byte, index int64, count, direction int32) ([][]byte, error) {
	if count <= 0 || count > cfg.ListLimit {
		count = cfg.ListLimit
	}
	if direction != dbm.ListASC {
		direction = dbm.ListDESC
	}
	if index == 0 {
		key = nil
	}
	values, err := db.List(prefix, key, count, direction)
	if err == types.ErrNotFound {
		return nil, nil
	}
	return values, err
}
