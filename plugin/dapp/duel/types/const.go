// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

//duel action ty
const (
	DuelActionCreate = iota + 1
	DuelActionJoin
	DuelActionResolve
)

//duel status, Resolved only appears in receipts and records
const (
	DuelStatusOpen = int32(iota + 1)
	DuelStatusMatched
	DuelStatusResolved
)

//duel log ty
const (
	TyLogDuelCreate  = 850
	TyLogDuelJoin    = 851
	TyLogDuelResolve = 852
)

const (
	// PackageName plugin package name
	PackageName = "duel"
	// DuelX executor name
	DuelX = "duel"
)

//query func names
const (
	FuncNameGetDuel         = "GetDuel"
	FuncNameListDuels       = "ListDuels"
	FuncNameListDuelRecords = "ListDuelRecords"
	FuncNameGetDuelCount    = "GetDuelCount"
)

//win chance bounds, in percent
const (
	BaseWinChance = 50
	MaxWinChance  = 100
)

var (
	// ExecerDuel name bytes
	ExecerDuel = []byte(DuelX)
)
