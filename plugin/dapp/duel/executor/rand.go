// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"encoding/binary"
	"io"
	"math"
	"sync"

	"github.com/33cn/duel/common/crypto"
	dty "github.com/33cn/duel/plugin/dapp/duel/types"
	"github.com/33cn/duel/types"
)

// RandSource uniform integers for resolution
type RandSource interface {
	// Intn uniform in [0, n), n > 0
	Intn(n int64) (int64, error)
}

// CryptoRand RandSource reading the entropy mixer of common/crypto
type CryptoRand struct {
	reader io.Reader
}

// NewCryptoRand new
func NewCryptoRand() *CryptoRand {
	return &CryptoRand{reader: crypto.CReader()}
}

// Intn rejection sampling over 63 bit values, no modulo bias
func (r *CryptoRand) Intn(n int64) (int64, error) {
	if n <= 0 {
		return 0, types.ErrInvalidParam
	}
	max := uint64(math.MaxInt64)
	limit := max - max%uint64(n)
	var buf [8]byte
	for {
		if _, err := io.ReadFull(r.reader, buf[:]); err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint64(buf[:]) >> 1
		if v < limit {
			return int64(v % uint64(n)), nil
		}
	}
}

var (
	randMu     sync.RWMutex
	randSource RandSource = NewCryptoRand()
)

// SetRandSource replace the source used by new drivers, returns the old one
func SetRandSource(r RandSource) RandSource {
	randMu.Lock()
	defer randMu.Unlock()
	old := randSource
	randSource = r
	return old
}

func getRandSource() RandSource {
	randMu.RLock()
	defer randMu.RUnlock()
	return randSource
}

// WinChance percent chance of the initiator, 50 plus the defense advantage, clamped to [0, 100]
func WinChance(initiator, competitor *dty.Combatant) int64 {
	advantage := int64(initiator.GetDefense()) - int64(competitor.GetDefense())
	chance := dty.BaseWinChance + advantage
	if chance < 0 {
		return 0
	}
	if chance > dty.MaxWinChance {
		return dty.MaxWinChance
	}
	return chance
}
