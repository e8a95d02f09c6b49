// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"sort"
	"sync"

	"github.com/33cn/duel/common/address"
	"github.com/33cn/duel/common/log"
	"github.com/33cn/duel/types"
)

var elog = log.New("module", "execs")

// DriverCreate defines a drivercreate function
type DriverCreate func() Driver

var (
	registerMu         sync.RWMutex
	registedExecDriver = make(map[string]DriverCreate)
	execAddressNameMap = make(map[string]string)
)

// Register register driver create function by name, panic on duplicate
func Register(name string, create DriverCreate) {
	if create == nil {
		panic("Execute: Register driver is nil")
	}
	registerMu.Lock()
	defer registerMu.Unlock()
	if _, dup := registedExecDriver[name]; dup {
		panic("Execute: Register called twice for driver " + name)
	}
	registedExecDriver[name] = create
	execAddressNameMap[ExecAddress(name)] = name
}

// LoadDriver new driver instance of name
func LoadDriver(name string) (Driver, error) {
	registerMu.RLock()
	c, ok := registedExecDriver[name]
	registerMu.RUnlock()
	if !ok {
		elog.Debug("LoadDriver", "driver", name)
		return nil, types.ErrExecNotFound
	}
	return c(), nil
}

// IsDriverAddress address belongs to a registered driver
func IsDriverAddress(addr string) bool {
	registerMu.RLock()
	defer registerMu.RUnlock()
	_, ok := execAddressNameMap[addr]
	return ok
}

// GetDriverNames registered driver names, sorted
func GetDriverNames() []string {
	registerMu.RLock()
	defer registerMu.RUnlock()
	names := make([]string, 0, len(registedExecDriver))
	for name := range registedExecDriver {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExecAddress 根据执行器名称获取执行器地址
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}
