// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names and per network defaults
package chain

// names of all chains
const (
	Live    = "live"
	Testing = "testing"
	Local   = "local"
)

type parameters struct {
	testing bool
	rpcPort int
}

var chains = map[string]parameters{
	Live:    {testing: false, rpcPort: 2130},
	Testing: {testing: true, rpcPort: 2230},
	Local:   {testing: true, rpcPort: 2330},
}

// Valid - validate a chain name
func Valid(name string) bool {
	_, ok := chains[name]
	return ok
}

// IsTesting - accounts on this chain must carry the test flag
//
// an unknown name is treated as a test chain
func IsTesting(name string) bool {
	p, ok := chains[name]
	return !ok || p.testing
}

// DatabaseName - default LevelDB directory name
func DatabaseName(name string) string {
	return name + ".leveldb"
}

// RPCPort - default client RPC port, zero for an unknown chain
func RPCPort(name string) int {
	return chains[name].rpcPort
}
