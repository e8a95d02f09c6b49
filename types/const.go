// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// coin conversation
const (
	Coin            int64 = 1e8
	MaxCoin         int64 = 1e17
	MaxTokenBalance int64 = 900 * 1e8 * Coin
	MaxTxSize             = 100000
	CoinPrecision         = 8
)

// executor names
const (
	CoinsX = "coins"
	NoneX  = "none"
)

// sign type
const (
	Invalid   = 0
	SECP256K1 = 1
)

// SignName secp256k1 driver name
const SignName = "secp256k1"

// exec result
const (
	ExecErr = 0
	ExecOk  = 2
)

// log type
const (
	TyLogReserved = 0
	TyLogErr      = 1

	TyLogTransfer        = 3
	TyLogGenesis         = 4
	TyLogDeposit         = 5
	TyLogExecTransfer    = 6
	TyLogExecWithdraw    = 7
	TyLogExecDeposit     = 8
	TyLogExecFrozen      = 9
	TyLogExecActive      = 10
	TyLogGenesisTransfer = 11
	TyLogGenesisDeposit  = 12
)

// key prefix
const (
	// LocalPrefix local db key prefix, query indexes only
	LocalPrefix = "LODB-"
	// TxResultPrefix receipt of an executed tx, keyed by tx hash
	TxResultPrefix = "TX-"
	// GenesisKey flag written once genesis allocations are applied
	GenesisKey = "mavl-genesis-done"
)

// Version of the duel node
const Version = "1.0.0"
