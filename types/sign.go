// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/33cn/duel/common/crypto"
	// register secp256k1
	_ "github.com/33cn/duel/common/crypto/secp256k1"
)

// GetSignName name of the crypto driver of sign type ty
func GetSignName(ty int32) string {
	return crypto.GetName(int(ty))
}

// CheckSign verify sign over data
func CheckSign(data []byte, sign *Signature) bool {
	c, err := crypto.New(GetSignName(sign.GetTy()))
	if err != nil {
		return false
	}
	pub, err := c.PubKeyFromBytes(sign.GetPubkey())
	if err != nil {
		return false
	}
	signbytes, err := c.SignatureFromBytes(sign.GetSignature())
	if err != nil {
		return false
	}
	return pub.VerifyBytes(data, signbytes)
}
