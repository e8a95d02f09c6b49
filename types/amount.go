// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ParseCoins "1.5" -> 150000000, at most CoinPrecision decimals
func ParseCoins(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(ErrAmount, "parse %q", s)
	}
	v := d.Shift(CoinPrecision)
	if !v.Equal(v.Truncate(0)) {
		return 0, errors.Wrapf(ErrAmount, "%q has more than %d decimals", s, CoinPrecision)
	}
	if v.Sign() < 0 || v.GreaterThanOrEqual(decimal.New(MaxCoin, 0)) {
		return 0, errors.Wrapf(ErrAmount, "%q out of range", s)
	}
	return v.IntPart(), nil
}

// FormatCoins 150000000 -> "1.5000"
func FormatCoins(amount int64) string {
	return decimal.New(amount, -CoinPrecision).StringFixed(4)
}
