// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/bountyd/fault"
)

// libraries visible to a configuration file, io and debug are left out
var libraries = []struct {
	name string
	open lua.LGFunction
}{
	{lua.LoadLibName, lua.OpenPackage},
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
	{lua.OsLibName, lua.OpenOs},
}

// ParseConfigurationFile - run a Lua file and map the table it
// returns onto a configuration structure
//
// the script sees arg[0] = file name and config_directory = the
// directory holding the file
func ParseConfigurationFile(fileName string, config interface{}) error {
	L, err := newState(fileName)
	if nil != err {
		return err
	}
	defer L.Close()

	if err := L.DoFile(fileName); nil != err {
		return err
	}
	return mapResult(L, config)
}

// ParseConfigurationString - as ParseConfigurationFile for a script
// already in memory, name only sets arg[0]
func ParseConfigurationString(name string, source string, config interface{}) error {
	L, err := newState(name)
	if nil != err {
		return err
	}
	defer L.Close()

	if err := L.DoString(source); nil != err {
		return err
	}
	return mapResult(L, config)
}

func newState(fileName string) (*lua.LState, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range libraries {
		err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if nil != err {
			L.Close()
			return nil, err
		}
	}

	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)
	L.SetGlobal("config_directory", lua.LString(filepath.Dir(fileName)))

	return L, nil
}

// the script must leave a table on the stack, keys map by gluamapper tag
func mapResult(L *lua.LState, config interface{}) error {
	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrConfigurationNotTable
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string {
				return s
			},
			TagName: "gluamapper",
		},
	}
	return mapper.Map(table, config)
}
