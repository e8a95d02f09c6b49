// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types commands中结构体定义
package types

// AccountResult defines account result command
type AccountResult struct {
	Currency int32  `json:"currency,omitempty"`
	Balance  string `json:"balance"`
	Frozen   string `json:"frozen"`
	Addr     string `json:"addr,omitempty"`
}

// KeyResult generated key pair
type KeyResult struct {
	PrivKey string `json:"privKey"`
	PubKey  string `json:"pubKey"`
	Addr    string `json:"addr"`
}
