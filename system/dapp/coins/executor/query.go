// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/33cn/duel/types"
)

// Query_GetAddrReciver total amount an address has received
func (c *Coins) Query_GetAddrReciver(in *types.ReqAddr) (types.Message, error) {
	amount, err := getAddrReciver(c.GetLocalDB(), in.GetAddr())
	if err != nil {
		return nil, err
	}
	return &types.Int64{Data: amount}, nil
}

// Query_GetAddrBalance coins or exec accounts of addresses
func (c *Coins) Query_GetAddrBalance(in *types.ReqBalance) (types.Message, error) {
	accs, err := c.GetCoinsAccount().GetBalance(in)
	if err != nil {
		clog.Debug("GetAddrBalance", "err", err)
		return nil, err
	}
	return &types.Accounts{Acc: accs}, nil
}
