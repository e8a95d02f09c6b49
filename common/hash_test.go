// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
	assert.Equal(t, "0x0102ff", ToHex([]byte{1, 2, 255}))

	b, err := FromHex("0x0102ff")
	assert.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)

	b, err = FromHex("102ff")
	assert.Nil(t, err)
	assert.Equal(t, []byte{1, 2, 255}, b)

	_, err = FromHex("0xzz")
	assert.NotNil(t, err)
}

func TestHash(t *testing.T) {
	assert.Equal(t, "0xe3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ToHex(Sha256(nil)))
	sum := Sha2Sum([]byte("hello"))
	assert.Equal(t, Sha256(Sha256([]byte("hello"))), sum[:])
	r1 := Rimp160AfterSha256([]byte("hello"))
	r2 := Rimp160AfterSha256([]byte("hello"))
	assert.Equal(t, r1, r2)
	assert.Len(t, r1[:], 20)
	assert.Nil(t, CopyBytes(nil))
}
