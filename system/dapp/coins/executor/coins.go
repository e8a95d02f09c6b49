// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

/*
coins 是一个货币的exec。内置货币的执行器。

主要提供两种操作：
Transfer -> 转移资产, 目标是执行器地址时存入执行器账户
Withdraw -> 从执行器账户取回
*/

import (
	"github.com/33cn/duel/common/log"
	drivers "github.com/33cn/duel/system/dapp"
	cty "github.com/33cn/duel/system/dapp/coins/types"
	"github.com/33cn/duel/types"
)

var clog = log.New("module", "execs.coins")

var driverName = cty.CoinsX

// Init register the coins driver
func Init(name string, sub []byte) {
	if name != driverName {
		panic("system dapp can't be rename")
	}
	drivers.Register(driverName, newCoins)
}

// GetName executor name
func GetName() string {
	return newCoins().GetName()
}

// Coins coins driver
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	c.SetExecutorType(types.LoadExecutorType(driverName))
	return c
}

// GetDriverName driver name
func (c *Coins) GetDriverName() string {
	return driverName
}
