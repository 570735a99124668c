// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - the bounty-cli identity file
//
// public data is kept in clear, private keys are encrypted with a key
// derived from the identity password
package configuration

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/bountyd/account"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `yaml:"default_identity" json:"default_identity"`
	TestNet         bool                `yaml:"testnet" json:"testnet"`
	Connections     []string            `yaml:"connections" json:"connections"`
	ProgramId       string              `yaml:"program_id" json:"program_id"`
	DerivationHash  string              `yaml:"derivation_hash" json:"derivation_hash"`
	Identities      map[string]Identity `yaml:"identities" json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string `yaml:"description" json:"description"`
	Account     string `yaml:"account" json:"account"`
	Data        string `yaml:"data,omitempty" json:"-"`
	Salt        string `yaml:"salt,omitempty" json:"-"`
}

// New - empty configuration for a network
func New(testnet bool, connections []string) *Configuration {
	return &Configuration{
		TestNet:        testnet,
		Connections:    connections,
		ProgramId:      address.DefaultProgramID,
		DerivationHash: address.SHA256.String(),
		Identities:     make(map[string]Identity),
	}
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {
	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	data, err := ioutil.ReadFile(filename)
	if nil != err {
		return nil, err
	}

	options := &Configuration{}
	err = yaml.Unmarshal(data, options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// Save - write via a temporary file, keeping the previous version as .bk
func Save(filename string, configuration *Configuration) error {
	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	data, err := yaml.Marshal(configuration)
	if nil != err {
		return err
	}

	err = os.MkdirAll(filepath.Dir(filename), 0700)
	if nil != err {
		return err
	}

	os.Remove(tempFile)
	err = ioutil.WriteFile(tempFile, data, 0600)
	if nil != err {
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(filename, previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}

// Names - identity names in order
func (config *Configuration) Names() []string {
	names := make([]string, 0, len(config.Identities))
	for name := range config.Identities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.ErrIdentityNameNotFound
	}
	return &id, nil
}

// Account - find identity for a given name and convert to an account
func (config *Configuration) Account(name string) (*account.Account, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return account.AccountFromBase58(id.Account)
}

// Private - find identity decrypt all data for a given name
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}
	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity
func (config *Configuration) AddIdentity(name string, description string, privateKey *account.PrivateKey, password string) error {
	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}
	if privateKey.IsTesting() != config.TestNet {
		return fault.ErrWrongNetworkForPublicKey
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(privateKey.String(), secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     privateKey.Account().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}
	if "" == config.DefaultIdentity {
		config.DefaultIdentity = name
	}
	return nil
}

// AddReceiveOnlyIdentity - store public-only identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {
	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}
	a, err := account.AccountFromBase58(acc)
	if nil != err {
		return err
	}
	if a.IsTesting() != config.TestNet {
		return fault.ErrWrongNetworkForPublicKey
	}
	config.Identities[name] = Identity{
		Description: description,
		Account:     acc,
	}
	return nil
}

// Deriver - address derivation matching the daemon
func (config *Configuration) Deriver() (*address.Deriver, error) {
	strategy, err := address.HashStrategyFromName(config.DerivationHash)
	if nil != err {
		return nil, err
	}
	program := address.Address{}
	if "" == config.ProgramId {
		program, err = address.FromBase58(address.DefaultProgramID)
	} else {
		program, err = address.FromBase58(config.ProgramId)
	}
	if nil != err {
		return nil, err
	}
	return address.NewDeriver(strategy, program), nil
}
