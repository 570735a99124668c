// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bountyd/configuration"
	"github.com/bitmark-inc/bountyd/fault"
)

type listen struct {
	Maximum int      `gluamapper:"maximum_connections"`
	Listen  []string `gluamapper:"listen"`
}

type settings struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Chain         string            `gluamapper:"chain"`
	Source        string            `gluamapper:"source"`
	RPC           listen            `gluamapper:"client_rpc"`
	Genesis       map[string]string `gluamapper:"genesis"`
}

const script = `
local M = {}
M.data_directory = config_directory
M.chain = "lo" .. "cal"
M.source = arg[0]
M.client_rpc = {
    maximum_connections = 5,
    listen = { "127.0.0.1:2130", "[::1]:2130" },
}
M.genesis = {
    ["alice"] = "1.5",
}
return M
`

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "luareader")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(script), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}

	s := settings{}
	err = configuration.ParseConfigurationFile(fileName, &s)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, dir, s.DataDirectory, "wrong config_directory")
	assert.Equal(t, "local", s.Chain, "wrong chain")
	assert.Equal(t, fileName, s.Source, "wrong arg[0]")
	assert.Equal(t, 5, s.RPC.Maximum, "wrong maximum")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, s.RPC.Listen, "wrong listen")
	assert.Equal(t, map[string]string{"alice": "1.5"}, s.Genesis, "wrong genesis")
}

func TestParseConfigurationErrors(t *testing.T) {
	s := settings{}

	err := configuration.ParseConfigurationString("test", `return 42`, &s)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "number accepted")

	err = configuration.ParseConfigurationString("test", `return {`, &s)
	assert.NotNil(t, err, "syntax error accepted")

	err = configuration.ParseConfigurationString("test", `return { x = io.open("x") }`, &s)
	assert.NotNil(t, err, "io library available")

	err = configuration.ParseConfigurationFile("/does/not/exist.conf", &s)
	assert.NotNil(t, err, "missing file accepted")
}
