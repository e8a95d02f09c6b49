// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	proto "github.com/golang/protobuf/proto"
)

// Combatant fighter of one side, Attack is kept but does not change the outcome
type Combatant struct {
	Defense uint32 `protobuf:"varint,1,opt,name=defense,proto3" json:"defense,omitempty"`
	Attack  uint32 `protobuf:"varint,2,opt,name=attack,proto3" json:"attack,omitempty"`
}

func (m *Combatant) Reset()         { *m = Combatant{} }
func (m *Combatant) String() string { return proto.CompactTextString(m) }
func (*Combatant) ProtoMessage()    {}

func (m *Combatant) GetDefense() uint32 {
	if m != nil {
		return m.Defense
	}
	return 0
}

func (m *Combatant) GetAttack() uint32 {
	if m != nil {
		return m.Attack
	}
	return 0
}

// Game open or matched duel, keyed by initiator
type Game struct {
	Initiator           string     `protobuf:"bytes,1,opt,name=initiator,proto3" json:"initiator,omitempty"`
	InitiatorCombatant  *Combatant `protobuf:"bytes,2,opt,name=initiatorCombatant,proto3" json:"initiatorCombatant,omitempty"`
	Competitor          string     `protobuf:"bytes,3,opt,name=competitor,proto3" json:"competitor,omitempty"`
	CompetitorCombatant *Combatant `protobuf:"bytes,4,opt,name=competitorCombatant,proto3" json:"competitorCombatant,omitempty"`
	Fee                 int64      `protobuf:"varint,5,opt,name=fee,proto3" json:"fee,omitempty"`
	Status              int32      `protobuf:"varint,6,opt,name=status,proto3" json:"status,omitempty"`
	CreateTime          int64      `protobuf:"varint,7,opt,name=createTime,proto3" json:"createTime,omitempty"`
	JoinTime            int64      `protobuf:"varint,8,opt,name=joinTime,proto3" json:"joinTime,omitempty"`
	CreateTxHash        string     `protobuf:"bytes,9,opt,name=createTxHash,proto3" json:"createTxHash,omitempty"`
	JoinTxHash          string     `protobuf:"bytes,10,opt,name=joinTxHash,proto3" json:"joinTxHash,omitempty"`
	Index               int64      `protobuf:"varint,11,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex           int64      `protobuf:"varint,12,opt,name=prevIndex,proto3" json:"prevIndex,omitempty"`
}

func (m *Game) Reset()         { *m = Game{} }
func (m *Game) String() string { return proto.CompactTextString(m) }
func (*Game) ProtoMessage()    {}

func (m *Game) GetInitiator() string {
	if m != nil {
		return m.Initiator
	}
	return ""
}

func (m *Game) GetInitiatorCombatant() *Combatant {
	if m != nil {
		return m.InitiatorCombatant
	}
	return nil
}

func (m *Game) GetCompetitor() string {
	if m != nil {
		return m.Competitor
	}
	return ""
}

func (m *Game) GetCompetitorCombatant() *Combatant {
	if m != nil {
		return m.CompetitorCombatant
	}
	return nil
}

func (m *Game) GetFee() int64 {
	if m != nil {
		return m.Fee
	}
	return 0
}

func (m *Game) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *Game) GetCreateTime() int64 {
	if m != nil {
		return m.CreateTime
	}
	return 0
}

func (m *Game) GetJoinTime() int64 {
	if m != nil {
		return m.JoinTime
	}
	return 0
}

func (m *Game) GetCreateTxHash() string {
	if m != nil {
		return m.CreateTxHash
	}
	return ""
}

func (m *Game) GetJoinTxHash() string {
	if m != nil {
		return m.JoinTxHash
	}
	return ""
}

func (m *Game) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

func (m *Game) GetPrevIndex() int64 {
	if m != nil {
		return m.PrevIndex
	}
	return 0
}

// DuelAction one duel action, Ty selects the field
type DuelAction struct {
	Create  *DuelCreate  `protobuf:"bytes,1,opt,name=create,proto3" json:"create,omitempty"`
	Join    *DuelJoin    `protobuf:"bytes,2,opt,name=join,proto3" json:"join,omitempty"`
	Resolve *DuelResolve `protobuf:"bytes,3,opt,name=resolve,proto3" json:"resolve,omitempty"`
	Ty      int32        `protobuf:"varint,4,opt,name=ty,proto3" json:"ty,omitempty"`
}

func (m *DuelAction) Reset()         { *m = DuelAction{} }
func (m *DuelAction) String() string { return proto.CompactTextString(m) }
func (*DuelAction) ProtoMessage()    {}

func (m *DuelAction) GetCreate() *DuelCreate {
	if m != nil {
		return m.Create
	}
	return nil
}

func (m *DuelAction) GetJoin() *DuelJoin {
	if m != nil {
		return m.Join
	}
	return nil
}

func (m *DuelAction) GetResolve() *DuelResolve {
	if m != nil {
		return m.Resolve
	}
	return nil
}

func (m *DuelAction) GetTy() int32 {
	if m != nil {
		return m.Ty
	}
	return 0
}

// DuelCreate open a duel, the tx amount must equal Fee
type DuelCreate struct {
	Combatant *Combatant `protobuf:"bytes,1,opt,name=combatant,proto3" json:"combatant,omitempty"`
	Fee       int64      `protobuf:"varint,2,opt,name=fee,proto3" json:"fee,omitempty"`
}

func (m *DuelCreate) Reset()         { *m = DuelCreate{} }
func (m *DuelCreate) String() string { return proto.CompactTextString(m) }
func (*DuelCreate) ProtoMessage()    {}

func (m *DuelCreate) GetCombatant() *Combatant {
	if m != nil {
		return m.Combatant
	}
	return nil
}

func (m *DuelCreate) GetFee() int64 {
	if m != nil {
		return m.Fee
	}
	return 0
}

// DuelJoin join the open duel of Initiator, the tx amount must equal its fee
type DuelJoin struct {
	Initiator string     `protobuf:"bytes,1,opt,name=initiator,proto3" json:"initiator,omitempty"`
	Combatant *Combatant `protobuf:"bytes,2,opt,name=combatant,proto3" json:"combatant,omitempty"`
}

func (m *DuelJoin) Reset()         { *m = DuelJoin{} }
func (m *DuelJoin) String() string { return proto.CompactTextString(m) }
func (*DuelJoin) ProtoMessage()    {}

func (m *DuelJoin) GetInitiator() string {
	if m != nil {
		return m.Initiator
	}
	return ""
}

func (m *DuelJoin) GetCombatant() *Combatant {
	if m != nil {
		return m.Combatant
	}
	return nil
}

// DuelResolve settle the matched duel of Initiator
type DuelResolve struct {
	Initiator string `protobuf:"bytes,1,opt,name=initiator,proto3" json:"initiator,omitempty"`
}

func (m *DuelResolve) Reset()         { *m = DuelResolve{} }
func (m *DuelResolve) String() string { return proto.CompactTextString(m) }
func (*DuelResolve) ProtoMessage()    {}

func (m *DuelResolve) GetInitiator() string {
	if m != nil {
		return m.Initiator
	}
	return ""
}

// ReceiptDuel log of one duel action
type ReceiptDuel struct {
	Initiator  string      `protobuf:"bytes,1,opt,name=initiator,proto3" json:"initiator,omitempty"`
	Competitor string      `protobuf:"bytes,2,opt,name=competitor,proto3" json:"competitor,omitempty"`
	Addr       string      `protobuf:"bytes,3,opt,name=addr,proto3" json:"addr,omitempty"`
	Status     int32       `protobuf:"varint,4,opt,name=status,proto3" json:"status,omitempty"`
	PrevStatus int32       `protobuf:"varint,5,opt,name=prevStatus,proto3" json:"prevStatus,omitempty"`
	Index      int64       `protobuf:"varint,6,opt,name=index,proto3" json:"index,omitempty"`
	PrevIndex  int64       `protobuf:"varint,7,opt,name=prevIndex,proto3" json:"prevIndex,omitempty"`
	Fee        int64       `protobuf:"varint,8,opt,name=fee,proto3" json:"fee,omitempty"`
	Record     *DuelRecord `protobuf:"bytes,9,opt,name=record,proto3" json:"record,omitempty"`
}

func (m *ReceiptDuel) Reset()         { *m = ReceiptDuel{} }
func (m *ReceiptDuel) String() string { return proto.CompactTextString(m) }
func (*ReceiptDuel) ProtoMessage()    {}

func (m *ReceiptDuel) GetInitiator() string {
	if m != nil {
		return m.Initiator
	}
	return ""
}

func (m *ReceiptDuel) GetCompetitor() string {
	if m != nil {
		return m.Competitor
	}
	return ""
}

func (m *ReceiptDuel) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *ReceiptDuel) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *ReceiptDuel) GetPrevStatus() int32 {
	if m != nil {
		return m.PrevStatus
	}
	return 0
}

func (m *ReceiptDuel) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

func (m *ReceiptDuel) GetPrevIndex() int64 {
	if m != nil {
		return m.PrevIndex
	}
	return 0
}

func (m *ReceiptDuel) GetFee() int64 {
	if m != nil {
		return m.Fee
	}
	return 0
}

func (m *ReceiptDuel) GetRecord() *DuelRecord {
	if m != nil {
		return m.Record
	}
	return nil
}

// DuelRecord result of a resolved duel
type DuelRecord struct {
	Initiator           string     `protobuf:"bytes,1,opt,name=initiator,proto3" json:"initiator,omitempty"`
	Competitor          string     `protobuf:"bytes,2,opt,name=competitor,proto3" json:"competitor,omitempty"`
	InitiatorCombatant  *Combatant `protobuf:"bytes,3,opt,name=initiatorCombatant,proto3" json:"initiatorCombatant,omitempty"`
	CompetitorCombatant *Combatant `protobuf:"bytes,4,opt,name=competitorCombatant,proto3" json:"competitorCombatant,omitempty"`
	Winner              string     `protobuf:"bytes,5,opt,name=winner,proto3" json:"winner,omitempty"`
	Fee                 int64      `protobuf:"varint,6,opt,name=fee,proto3" json:"fee,omitempty"`
	Prize               int64      `protobuf:"varint,7,opt,name=prize,proto3" json:"prize,omitempty"`
	WinChance           int32      `protobuf:"varint,8,opt,name=winChance,proto3" json:"winChance,omitempty"`
	Draw                int32      `protobuf:"varint,9,opt,name=draw,proto3" json:"draw,omitempty"`
	Index               int64      `protobuf:"varint,10,opt,name=index,proto3" json:"index,omitempty"`
	ResolveTime         int64      `protobuf:"varint,11,opt,name=resolveTime,proto3" json:"resolveTime,omitempty"`
	TxHash              string     `protobuf:"bytes,12,opt,name=txHash,proto3" json:"txHash,omitempty"`
}

func (m *DuelRecord) Reset()         { *m = DuelRecord{} }
func (m *DuelRecord) String() string { return proto.CompactTextString(m) }
func (*DuelRecord) ProtoMessage()    {}

func (m *DuelRecord) GetInitiator() string {
	if m != nil {
		return m.Initiator
	}
	return ""
}

func (m *DuelRecord) GetCompetitor() string {
	if m != nil {
		return m.Competitor
	}
	return ""
}

func (m *DuelRecord) GetInitiatorCombatant() *Combatant {
	if m != nil {
		return m.InitiatorCombatant
	}
	return nil
}

func (m *DuelRecord) GetCompetitorCombatant() *Combatant {
	if m != nil {
		return m.CompetitorCombatant
	}
	return nil
}

func (m *DuelRecord) GetWinner() string {
	if m != nil {
		return m.Winner
	}
	return ""
}

func (m *DuelRecord) GetFee() int64 {
	if m != nil {
		return m.Fee
	}
	return 0
}

func (m *DuelRecord) GetPrize() int64 {
	if m != nil {
		return m.Prize
	}
	return 0
}

func (m *DuelRecord) GetWinChance() int32 {
	if m != nil {
		return m.WinChance
	}
	return 0
}

func (m *DuelRecord) GetDraw() int32 {
	if m != nil {
		return m.Draw
	}
	return 0
}

func (m *DuelRecord) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

func (m *DuelRecord) GetResolveTime() int64 {
	if m != nil {
		return m.ResolveTime
	}
	return 0
}

func (m *DuelRecord) GetTxHash() string {
	if m != nil {
		return m.TxHash
	}
	return ""
}

// ReqDuel game of one initiator
type ReqDuel struct {
	Initiator string `protobuf:"bytes,1,opt,name=initiator,proto3" json:"initiator,omitempty"`
}

func (m *ReqDuel) Reset()         { *m = ReqDuel{} }
func (m *ReqDuel) String() string { return proto.CompactTextString(m) }
func (*ReqDuel) ProtoMessage()    {}

func (m *ReqDuel) GetInitiator() string {
	if m != nil {
		return m.Initiator
	}
	return ""
}

// ReqDuelList page of games by status, Addr narrows to one participant, Index is the cursor
type ReqDuelList struct {
	Status    int32  `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Addr      string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
	Count     int32  `protobuf:"varint,3,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,4,opt,name=direction,proto3" json:"direction,omitempty"`
	Index     int64  `protobuf:"varint,5,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqDuelList) Reset()         { *m = ReqDuelList{} }
func (m *ReqDuelList) String() string { return proto.CompactTextString(m) }
func (*ReqDuelList) ProtoMessage()    {}

func (m *ReqDuelList) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *ReqDuelList) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *ReqDuelList) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

func (m *ReqDuelList) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

func (m *ReqDuelList) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// ReplyDuelList games
type ReplyDuelList struct {
	Games []*Game `protobuf:"bytes,1,rep,name=games,proto3" json:"games,omitempty"`
}

func (m *ReplyDuelList) Reset()         { *m = ReplyDuelList{} }
func (m *ReplyDuelList) String() string { return proto.CompactTextString(m) }
func (*ReplyDuelList) ProtoMessage()    {}

func (m *ReplyDuelList) GetGames() []*Game {
	if m != nil {
		return m.Games
	}
	return nil
}

// ReqDuelRecords page of resolved duels of Addr
type ReqDuelRecords struct {
	Addr      string `protobuf:"bytes,1,opt,name=addr,proto3" json:"addr,omitempty"`
	Count     int32  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Direction int32  `protobuf:"varint,3,opt,name=direction,proto3" json:"direction,omitempty"`
	Index     int64  `protobuf:"varint,4,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *ReqDuelRecords) Reset()         { *m = ReqDuelRecords{} }
func (m *ReqDuelRecords) String() string { return proto.CompactTextString(m) }
func (*ReqDuelRecords) ProtoMessage()    {}

func (m *ReqDuelRecords) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}

func (m *ReqDuelRecords) GetCount() int32 {
	if m != nil {
		return m.Count
	}
	return 0
}

func (m *ReqDuelRecords) GetDirection() int32 {
	if m != nil {
		return m.Direction
	}
	return 0
}

func (m *ReqDuelRecords) GetIndex() int64 {
	if m != nil {
		return m.Index
	}
	return 0
}

// ReplyDuelRecords records
type ReplyDuelRecords struct {
	Records []*DuelRecord `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
}

func (m *ReplyDuelRecords) Reset()         { *m = ReplyDuelRecords{} }
func (m *ReplyDuelRecords) String() string { return proto.CompactTextString(m) }
func (*ReplyDuelRecords) ProtoMessage()    {}

func (m *ReplyDuelRecords) GetRecords() []*DuelRecord {
	if m != nil {
		return m.Records
	}
	return nil
}

// ReqDuelCount number of duels that reached Status, Addr empty means all
type ReqDuelCount struct {
	Status int32  `protobuf:"varint,1,opt,name=status,proto3" json:"status,omitempty"`
	Addr   string `protobuf:"bytes,2,opt,name=addr,proto3" json:"addr,omitempty"`
}

func (m *ReqDuelCount) Reset()         { *m = ReqDuelCount{} }
func (m *ReqDuelCount) String() string { return proto.CompactTextString(m) }
func (*ReqDuelCount) ProtoMessage()    {}

func (m *ReqDuelCount) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *ReqDuelCount) GetAddr() string {
	if m != nil {
		return m.Addr
	}
	return ""
}
