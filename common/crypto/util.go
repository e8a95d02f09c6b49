// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto

import (
	"errors"
	"strings"

	"github.com/33cn/duel/common"
	"github.com/mr-tron/base58"
)

// ErrPrivKeyText private key text is neither 0x hex nor base58
var ErrPrivKeyText = errors.New("ErrPrivKeyText")

// EncodePrivKey base58 text of a private key
func EncodePrivKey(priv PrivKey) string {
	return base58.Encode(priv.Bytes())
}

// DecodePrivKey accept 0x-prefixed hex or base58 text
func DecodePrivKey(c Crypto, text string) (PrivKey, error) {
	var b []byte
	var err error
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		b, err = common.FromHex(text)
	} else {
		b, err = base58.Decode(text)
	}
	if err != nil || len(b) == 0 {
		return nil, ErrPrivKeyText
	}
	return c.PrivKeyFromBytes(b)
}
