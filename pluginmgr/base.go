// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"github.com/spf13/cobra"
)

// PluginBase plugin module base struct
type PluginBase struct {
	Name     string
	ExecName string
	Exec     func(name string, sub []byte)
	Cmd      func() *cobra.Command
}

// GetName 获取整个插件的包名
func (p *PluginBase) GetName() string {
	return p.Name
}

// GetExecutorName 获取插件中执行器名
func (p *PluginBase) GetExecutorName() string {
	return p.ExecName
}

// InitExec init exec with the [exec.sub.<name>] section, nil when absent
func (p *PluginBase) InitExec(sub map[string][]byte) {
	subcfg, ok := sub[p.ExecName]
	if !ok {
		subcfg = nil
	}
	p.Exec(p.ExecName, subcfg)
}

// AddCmd add Command for plugin
func (p *PluginBase) AddCmd(rootCmd *cobra.Command) {
	if p.Cmd != nil {
		cmd := p.Cmd()
		if cmd == nil {
			return
		}
		rootCmd.AddCommand(cmd)
	}
}
