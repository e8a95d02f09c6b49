// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system 系统级dapp的注册
package system

import (
	_ "github.com/33cn/duel/common/crypto/secp256k1" //register crypto
	_ "github.com/33cn/duel/system/dapp/coins"       //register coins
)
