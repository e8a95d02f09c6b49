// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"testing"

	"github.com/33cn/duel/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecAddress(t *testing.T) {
	addr := ExecAddress("duel")
	assert.Nil(t, CheckAddress(addr))
	assert.Equal(t, addr, ExecAddress("duel"))
	assert.NotEqual(t, addr, ExecAddress("coins"))
	assert.Panics(t, func() { ExecPubKey(string(make([]byte, MaxExecNameLength+1))) })
}

func TestPubKeyToAddr(t *testing.T) {
	pub, err := common.FromHex("02504fa1c28caaf1d5a20fefb87c50a49724ff401043420cb3ba271997eb5a4387")
	require.Nil(t, err)
	addr := PubKeyToAddr(pub)
	assert.Equal(t, addr, PubKeyToAddress(pub).String())
	assert.Nil(t, CheckAddress(addr))

	a, err := NewAddrFromString(addr)
	require.Nil(t, err)
	assert.Equal(t, addr, a.String())
	assert.Equal(t, common.Rimp160AfterSha256(pub), a.Hash160)
}

func TestCheckAddressErrors(t *testing.T) {
	assert.Equal(t, ErrDecodeBase58, CheckAddress("0OIl"))
	assert.NotNil(t, CheckAddress("1"))

	addr := ExecAddress("coins")
	bad := []byte(addr)
	if bad[len(bad)-1] == 'a' {
		bad[len(bad)-1] = 'b'
	} else {
		bad[len(bad)-1] = 'a'
	}
	err := CheckAddress(string(bad))
	assert.NotNil(t, err)
	_, err = NewAddrFromString(string(bad))
	assert.NotNil(t, err)
}
