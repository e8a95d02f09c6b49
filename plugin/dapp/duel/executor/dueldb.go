// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

//database opeartion for executor duel
import (
	"fmt"
	"strconv"

	"github.com/33cn/duel/account"
	"github.com/33cn/duel/common"
	dbm "github.com/33cn/duel/common/db"
	dty "github.com/33cn/duel/plugin/dapp/duel/types"
	"github.com/33cn/duel/system/dapp"
	"github.com/33cn/duel/types"
)

/*
 duel 的状态变化：
  Open (create) -> Matched (join) -> 删除 (resolve)

 托管: 交易的 Amount 由运行时先存入发起人在 duel 执行器中的账户,
 create/join 冻结入场费, resolve 把输家冻结的入场费转给赢家, 解冻后
 2 倍入场费一起提回赢家的 coins 账户, 同时删除游戏。

 索引:
   status:HeightIndex        -> initiator
   status:addr:HeightIndex   -> initiator
   record:addr:HeightIndex   -> DuelRecord
*/

// Key state key of the game of initiator
func Key(initiator string) (key []byte) {
	key = append(key, []byte("mavl-"+dty.DuelX+"-")...)
	key = append(key, []byte(initiator)...)
	return key
}

// CalcCountKey state key of the number of duels that reached status, per address
func CalcCountKey(status int32, addr string) (key []byte) {
	key = append(key, []byte("mavl-"+dty.DuelX+"-")...)
	key = append(key, []byte(fmt.Sprintf("count:%d:%s", status, addr))...)
	return key
}

// Action one duel tx
type Action struct {
	coinsAccount *account.DB
	db           dbm.KV
	txhash       []byte
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
	payment      int64
	rand         RandSource
}

// NewAction new
func NewAction(d *Duel, tx *types.Transaction) *Action {
	return &Action{
		coinsAccount: d.GetCoinsAccount(),
		db:           d.GetStateDB(),
		txhash:       tx.Hash(),
		fromaddr:     tx.From(),
		blocktime:    d.GetBlockTime(),
		height:       d.GetHeight(),
		execaddr:     dapp.ExecAddress(string(tx.Execer)),
		payment:      tx.GetAmount(),
		rand:         d.rand,
	}
}

func (action *Action) receiptLog(ty int32, game *dty.Game, prevStatus int32) *types.ReceiptLog {
	r := &dty.ReceiptDuel{
		Initiator:  game.GetInitiator(),
		Competitor: game.GetCompetitor(),
		Addr:       action.fromaddr,
		Status:     game.GetStatus(),
		PrevStatus: prevStatus,
		Index:      game.GetIndex(),
		PrevIndex:  game.GetPrevIndex(),
		Fee:        game.GetFee(),
	}
	return &types.ReceiptLog{Ty: ty, Log: types.Encode(r)}
}

func (action *Action) incCount(kv *dapp.KVCreator, status int32, addrs ...string) error {
	for _, addr := range append([]string{""}, addrs...) {
		count, err := queryCount(action.db, status, addr)
		if err != nil {
			return err
		}
		if err := kv.Add(CalcCountKey(status, addr), []byte(strconv.FormatInt(count+1, 10))); err != nil {
			return err
		}
	}
	return nil
}

// DuelCreate open a game for the sender, freezing the fee paid with the tx
func (action *Action) DuelCreate(create *dty.DuelCreate) (*types.Receipt, error) {
	if create.GetCombatant() == nil {
		return nil, dty.ErrNoCombatant
	}
	fee := create.GetFee()
	if fee <= 0 || !types.CheckAmount(fee) {
		dlog.Error("DuelCreate", "addr", action.fromaddr, "fee", fee, "err", types.ErrAmount)
		return nil, types.ErrAmount
	}
	if action.payment != fee {
		dlog.Error("DuelCreate", "addr", action.fromaddr, "fee", fee, "payment", action.payment, "err", dty.ErrPaymentMismatch)
		return nil, dty.ErrPaymentMismatch
	}
	_, err := readGame(action.db, action.fromaddr)
	if err == nil {
		dlog.Error("DuelCreate", "addr", action.fromaddr, "err", dty.ErrGameExists)
		return nil, dty.ErrGameExists
	}
	if err != dty.ErrGameNotFound {
		return nil, err
	}
	//冻结子账户资金
	receipt, err := action.coinsAccount.ExecFrozen(action.fromaddr, action.execaddr, fee)
	if err != nil {
		dlog.Error("DuelCreate.ExecFrozen", "addr", action.fromaddr, "execaddr", action.execaddr, "amount", fee, "err", err)
		return nil, err
	}
	game := &dty.Game{
		Initiator:          action.fromaddr,
		InitiatorCombatant: create.GetCombatant(),
		Fee:                fee,
		Status:             dty.DuelStatusOpen,
		CreateTime:         action.blocktime,
		CreateTxHash:       common.ToHex(action.txhash),
		Index:              action.height,
	}
	kv := dapp.NewKVCreator(action.db)
	if err := kv.Add(Key(game.Initiator), types.Encode(game)); err != nil {
		return nil, err
	}
	if err := action.incCount(kv, game.Status, game.Initiator); err != nil {
		return nil, err
	}
	logs := []*types.ReceiptLog{action.receiptLog(dty.TyLogDuelCreate, game, 0)}
	logs = append(logs, receipt.Logs...)
	createdCounter.Inc(1)
	return &types.Receipt{Ty: types.ExecOk, KV: append(kv.KVList(), receipt.KV...), Logs: logs}, nil
}

// DuelJoin take the competitor seat of an open game, freezing the same fee
func (action *Action) DuelJoin(join *dty.DuelJoin) (*types.Receipt, error) {
	if join.GetCombatant() == nil {
		return nil, dty.ErrNoCombatant
	}
	game, err := readGame(action.db, join.GetInitiator())
	if err != nil {
		dlog.Error("DuelJoin", "addr", action.fromaddr, "initiator", join.GetInitiator(), "err", err)
		return nil, err
	}
	if game.GetCompetitor() != "" {
		dlog.Error("DuelJoin", "addr", action.fromaddr, "initiator", join.GetInitiator(), "err", dty.ErrGameAlreadyJoined)
		return nil, dty.ErrGameAlreadyJoined
	}
	if game.GetInitiator() == action.fromaddr {
		return nil, dty.ErrSelfJoin
	}
	if action.payment != game.GetFee() {
		dlog.Error("DuelJoin", "addr", action.fromaddr, "fee", game.GetFee(), "payment", action.payment, "err", dty.ErrPaymentMismatch)
		return nil, dty.ErrPaymentMismatch
	}
	receipt, err := action.coinsAccount.ExecFrozen(action.fromaddr, action.execaddr, game.GetFee())
	if err != nil {
		dlog.Error("DuelJoin.ExecFrozen", "addr", action.fromaddr, "execaddr", action.execaddr, "amount", game.GetFee(), "err", err)
		return nil, err
	}
	game.Competitor = action.fromaddr
	game.CompetitorCombatant = join.GetCombatant()
	game.Status = dty.DuelStatusMatched
	game.JoinTime = action.blocktime
	game.JoinTxHash = common.ToHex(action.txhash)
	game.PrevIndex = game.GetIndex()
	game.Index = action.height
	kv := dapp.NewKVCreator(action.db)
	if err := kv.Add(Key(game.Initiator), types.Encode(game)); err != nil {
		return nil, err
	}
	if err := action.incCount(kv, game.Status, game.Initiator, game.Competitor); err != nil {
		return nil, err
	}
	logs := []*types.ReceiptLog{action.receiptLog(dty.TyLogDuelJoin, game, dty.DuelStatusOpen)}
	logs = append(logs, receipt.Logs...)
	joinedCounter.Inc(1)
	return &types.Receipt{Ty: types.ExecOk, KV: append(kv.KVList(), receipt.KV...), Logs: logs}, nil
}

// DuelResolve draw the winner of a matched game, pay out 2 x fee and delete the game
func (action *Action) DuelResolve(resolve *dty.DuelResolve) (*types.Receipt, error) {
	game, err := readGame(action.db, resolve.GetInitiator())
	if err != nil {
		dlog.Error("DuelResolve", "addr", action.fromaddr, "initiator", resolve.GetInitiator(), "err", err)
		return nil, err
	}
	if game.GetCompetitor() == "" {
		return nil, dty.ErrNoCompetitor
	}
	if action.payment != 0 {
		return nil, dty.ErrPaymentMismatch
	}
	chance := WinChance(game.GetInitiatorCombatant(), game.GetCompetitorCombatant())
	draw, err := action.rand.Intn(dty.MaxWinChance)
	if err != nil {
		dlog.Error("DuelResolve.Intn", "initiator", game.Initiator, "err", err)
		return nil, err
	}
	winner, loser := game.Competitor, game.Initiator
	if draw < chance {
		winner, loser = game.Initiator, game.Competitor
	}
	fee := game.GetFee()
	prize := 2 * fee

	var logs []*types.ReceiptLog
	var kvs []*types.KeyValue
	//输家冻结的入场费转入赢家账户
	receipt, err := action.coinsAccount.ExecTransferFrozen(loser, winner, action.execaddr, fee)
	if err != nil {
		dlog.Error("DuelResolve.ExecTransferFrozen", "from", loser, "to", winner, "amount", fee, "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kvs = append(kvs, receipt.KV...)
	receipt, err = action.coinsAccount.ExecActive(winner, action.execaddr, fee)
	if err != nil {
		dlog.Error("DuelResolve.ExecActive", "addr", winner, "amount", fee, "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kvs = append(kvs, receipt.KV...)
	receipt, err = action.coinsAccount.TransferWithdraw(winner, action.execaddr, prize)
	if err != nil {
		dlog.Error("DuelResolve.TransferWithdraw", "addr", winner, "amount", prize, "err", err)
		return nil, err
	}
	logs = append(logs, receipt.Logs...)
	kvs = append(kvs, receipt.KV...)

	kv := dapp.NewKVCreator(action.db)
	if err := kv.Del(Key(game.Initiator)); err != nil {
		return nil, err
	}
	if err := action.incCount(kv, dty.DuelStatusResolved, game.Initiator, game.Competitor); err != nil {
		return nil, err
	}
	record := &dty.DuelRecord{
		Initiator:           game.Initiator,
		Competitor:          game.Competitor,
		InitiatorCombatant:  game.InitiatorCombatant,
		CompetitorCombatant: game.CompetitorCombatant,
		Winner:              winner,
		Fee:                 fee,
		Prize:               prize,
		WinChance:           int32(chance),
		Draw:                int32(draw),
		Index:               action.height,
		ResolveTime:         action.blocktime,
		TxHash:              common.ToHex(action.txhash),
	}
	game.Status = dty.DuelStatusResolved
	game.PrevIndex = game.GetIndex()
	game.Index = action.height
	rlog := &dty.ReceiptDuel{
		Initiator:  game.Initiator,
		Competitor: game.Competitor,
		Addr:       action.fromaddr,
		Status:     dty.DuelStatusResolved,
		PrevStatus: dty.DuelStatusMatched,
		Index:      game.Index,
		PrevIndex:  game.PrevIndex,
		Fee:        fee,
		Record:     record,
	}
	logs = append([]*types.ReceiptLog{{Ty: dty.TyLogDuelResolve, Log: types.Encode(rlog)}}, logs...)
	dlog.Info("DuelResolve", "initiator", game.Initiator, "winner", winner, "chance", chance, "draw", draw, "prize", prize)
	resolvedCounter.Inc(1)
	payoutMeter.Mark(prize)
	return &types.Receipt{Ty: types.ExecOk, KV: append(kv.KVList(), kvs...), Logs: logs}, nil
}

func readGame(db dbm.KVDB, initiator string) (*dty.Game, error) {
	data, err := db.Get(Key(initiator))
	if err == types.ErrNotFound || (err == nil && len(data) == 0) {
		return nil, dty.ErrGameNotFound
	}
	if err != nil {
		dlog.Error("readGame", "initiator", initiator, "err", err)
		return nil, err
	}
	var game dty.Game
	//decode
	if err := types.Decode(data, &game); err != nil {
		dlog.Error("readGame decode", "initiator", initiator, "err", err)
		return nil, err
	}
	return &game, nil
}

func queryCount(db dbm.KVDB, status int32, addr string) (int64, error) {
	data, err := db.Get(CalcCountKey(status, addr))
	if err == types.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(data) == 0 {
		return 0, nil
	}
	return strconv.ParseInt(string(data), 10, 64)
}
