// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plugin 注册所有的插件
package plugin

import (
	_ "github.com/33cn/duel/plugin/dapp/duel" //register duel
)
