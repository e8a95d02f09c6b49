// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRandBytes(t *testing.T) {
	a := CRandBytes(32)
	b := CRandBytes(32)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	MixEntropy([]byte("more"))
	assert.Len(t, CRandHex(24), 24)
	buf := make([]byte, 8)
	n, err := CReader().Read(buf)
	assert.Nil(t, err)
	assert.Equal(t, 8, n)
}
