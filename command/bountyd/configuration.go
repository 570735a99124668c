// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/account"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/amount"
	"github.com/bitmark-inc/bountyd/chain"
	"github.com/bitmark-inc/bountyd/configuration"
	"github.com/bitmark-inc/bountyd/genesis"
	"github.com/bitmark-inc/bountyd/rpc/listeners"
	"github.com/bitmark-inc/bountyd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"

	defaultLogDirectory = "log"
	defaultLogFile      = "bountyd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients   = 10
	defaultRPCBandwidth = 25000000
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// a fresh map each time, the Lua mapper merges into an existing one
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "critical",
	}
}

// DatabaseType - location of the LevelDB store
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - everything read from the Lua configuration file
type Configuration struct {
	DataDirectory  string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile        string       `gluamapper:"pidfile" json:"pidfile"`
	Chain          string       `gluamapper:"chain" json:"chain"`
	ProgramId      string       `gluamapper:"program_id" json:"program_id"`
	DerivationHash string       `gluamapper:"derivation_hash" json:"derivation_hash"`
	Database       DatabaseType `gluamapper:"database" json:"database"`

	ClientRPC listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC  listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`

	// account (base58) → amount (decimal text)
	Genesis map[string]string `gluamapper:"genesis" json:"genesis"`

	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory:  defaultDataDirectory,
		PidFile:        "", // no PidFile by default
		Chain:          chain.Live,
		ProgramId:      address.DefaultProgramID,
		DerivationHash: address.SHA256.String(),

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "", // chosen after the chain is known
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Bandwidth:          defaultRPCBandwidth,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share certificate with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// abort if the chain name is not recognised, the default
	// database name depends on it
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	if "" == options.Database.Name {
		options.Database.Name = chain.DatabaseName(options.Chain)
	}
	if 0 == len(options.ClientRPC.Listen) {
		options.ClientRPC.Listen = []string{fmt.Sprintf("127.0.0.1:%d", chain.RPCPort(options.Chain))}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// the deriver fixed by program_id and derivation_hash
func (options *Configuration) deriver() (*address.Deriver, error) {
	strategy, err := address.HashStrategyFromName(options.DerivationHash)
	if nil != err {
		return nil, err
	}
	program, err := address.FromBase58(options.ProgramId)
	if nil != err {
		return nil, fmt.Errorf("program_id: %q error: %s", options.ProgramId, err)
	}
	return address.NewDeriver(strategy, program), nil
}

// decode the genesis table, every account must belong to the chain
func (options *Configuration) allocations() ([]genesis.Allocation, error) {
	testnet := chain.IsTesting(options.Chain)

	allocations := make([]genesis.Allocation, 0, len(options.Genesis))
	for text, value := range options.Genesis {
		acc, err := account.AccountFromBase58(text)
		if nil != err {
			return nil, fmt.Errorf("genesis account: %q error: %s", text, err)
		}
		if acc.IsTesting() != testnet {
			return nil, fmt.Errorf("genesis account: %q is not for chain: %s", text, options.Chain)
		}
		n, err := amount.Parse(value)
		if nil != err {
			return nil, fmt.Errorf("genesis amount: %q error: %s", value, err)
		}
		allocations = append(allocations, genesis.Allocation{
			Address: acc.Address(),
			Amount:  n,
		})
	}
	return allocations, nil
}
