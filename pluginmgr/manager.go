// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"sort"
	"sync"

	"github.com/spf13/cobra"
)

var pluginItems = make(map[string]Plugin)

var once = &sync.Once{}

// InitExec init every registered executor once
func InitExec(sub map[string][]byte) {
	once.Do(func() {
		for _, name := range names() {
			pluginItems[name].InitExec(sub)
		}
	})
}

// HasExec check is have the name exec
func HasExec(name string) bool {
	for _, item := range pluginItems {
		if item.GetExecutorName() == name {
			return true
		}
	}
	return false
}

// Register plugin, panic on duplicate name
func Register(p Plugin) {
	if p == nil {
		panic("plugin param is nil")
	}
	packageName := p.GetName()
	if len(packageName) == 0 {
		panic("plugin package name is empty")
	}
	if _, ok := pluginItems[packageName]; ok {
		panic("execute plugin item is existed. name = " + packageName)
	}
	pluginItems[packageName] = p
}

// AddCmd add cmd of every plugin, in name order
func AddCmd(rootCmd *cobra.Command) {
	for _, name := range names() {
		pluginItems[name].AddCmd(rootCmd)
	}
}

func names() []string {
	var list []string
	for name := range pluginItems {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}
