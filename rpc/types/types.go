// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types json parameters and replies of the duel json rpc
package types

import (
	"encoding/json"
)

// RawParm hex of a signed tx
type RawParm struct {
	Data string `json:"data"`
}

// QueryParm tx hash in hex
type QueryParm struct {
	Hash string `json:"hash"`
}

// Query4Jrpc read only call, Payload is the json of the request message
type Query4Jrpc struct {
	Execer   string          `json:"execer"`
	FuncName string          `json:"funcName"`
	Payload  json.RawMessage `json:"payload"`
}

// ReqBalance addresses of the coins table or of an exec table
type ReqBalance struct {
	Addresses []string `json:"addresses"`
	Execer    string   `json:"execer"`
}

// Account balance
type Account struct {
	Currency int32  `json:"currency"`
	Balance  int64  `json:"balance"`
	Frozen   int64  `json:"frozen"`
	Addr     string `json:"addr"`
}

// Signature of a tx
type Signature struct {
	Ty        int32  `json:"ty"`
	Pubkey    string `json:"pubkey"`
	Signature string `json:"signature"`
}

// Transaction rendered tx, Payload is the decoded action when the execer is known
type Transaction struct {
	Execer     string          `json:"execer"`
	Payload    json.RawMessage `json:"payload"`
	RawPayload string          `json:"rawPayload"`
	Signature  *Signature      `json:"signature"`
	Amount     int64           `json:"amount"`
	Nonce      int64           `json:"nonce"`
	From       string          `json:"from,omitempty"`
	ActionName string          `json:"actionName"`
	Hash       string          `json:"hash"`
}

// ReceiptLogResult decoded receipt log
type ReceiptLogResult struct {
	Ty     int32           `json:"ty"`
	TyName string          `json:"tyName"`
	Log    json.RawMessage `json:"log"`
	RawLog string          `json:"rawLog"`
}

// ReceiptDataResult decoded receipt
type ReceiptDataResult struct {
	Ty     int32               `json:"ty"`
	TyName string              `json:"tyName"`
	Logs   []*ReceiptLogResult `json:"logs"`
}

// TxResult executed tx with its receipt
type TxResult struct {
	Hash      string             `json:"hash"`
	Height    int64              `json:"height"`
	Blocktime int64              `json:"blocktime"`
	Tx        *Transaction       `json:"tx"`
	Receipt   *ReceiptDataResult `json:"receipt"`
}

// VersionInfo node version and number of executed txs
type VersionInfo struct {
	Version string `json:"version"`
	Height  int64  `json:"height"`
}
