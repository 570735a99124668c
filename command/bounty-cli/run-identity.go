// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bountyd/account"
	"github.com/bitmark-inc/bountyd/chain"
	"github.com/bitmark-inc/bountyd/command/bounty-cli/configuration"
	"github.com/bitmark-inc/bountyd/fault"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewPrivateKey(m.testnet, rand.Reader)
	if nil != err {
		return err
	}

	type keyDisplay struct {
		Account    *account.Account    `json:"account"`
		Address    string              `json:"address"`
		PrivateKey *account.PrivateKey `json:"privateKey"`
	}
	printJson(m.w, keyDisplay{
		Account:    key.Account(),
		Address:    key.Account().Address().String(),
		PrivateKey: key,
	})
	return nil
}

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	connect := c.String("connect")
	if "" == connect {
		connect = fmt.Sprintf("127.0.0.1:%d", chain.RPCPort(m.network))
	}
	connect, err = checkConnect(connect)
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	key, err := privateKeyOrNew(c.String("key"), true, m.testnet)
	if nil != err {
		return err
	}

	config := configuration.New(m.testnet, []string{connect})
	if program := c.String("program"); "" != program {
		config.ProgramId = program
	}
	if hash := c.String("hash"); "" != hash {
		config.DerivationHash = hash
	}
	if _, err := config.Deriver(); nil != err {
		return err
	}

	password, err := newPassword(c)
	if nil != err {
		return err
	}

	err = config.AddIdentity(name, description, key, password)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s  account: %s\n", name, key.Account())
	}

	m.config = config
	m.save = true
	return nil
}

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	keyText := c.String("key")
	generate := c.Bool("new")
	acc := c.String("account")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "account: %s\n", acc)
		fmt.Fprintf(m.e, "new: %t\n", generate)
	}

	switch {
	case "" == acc && ("" != keyText) != generate:
		key, err := privateKeyOrNew(keyText, generate, m.testnet)
		if nil != err {
			return err
		}
		password, err := newPassword(c)
		if nil != err {
			return err
		}
		err = m.config.AddIdentity(name, description, key, password)
		if nil != err {
			return err
		}

	case "" != acc && "" == keyText && !generate:
		err = m.config.AddReceiveOnlyIdentity(name, description, acc)
		if nil != err {
			return err
		}

	default:
		return fault.ErrIncompatibleOptions
	}

	// require configuration update
	m.save = true
	return nil
}

// blank text makes a new key when allowed
func privateKeyOrNew(text string, allowNew bool, testnet bool) (*account.PrivateKey, error) {
	if "" == text {
		if !allowNew {
			return nil, fault.ErrNotPrivateKey
		}
		return account.NewPrivateKey(testnet, rand.Reader)
	}
	key, err := account.PrivateKeyFromBase58(text)
	if nil != err {
		return nil, err
	}
	if key.IsTesting() != testnet {
		return nil, fault.ErrWrongNetworkForPublicKey
	}
	return key, nil
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	type identityDisplay struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Account     string `json:"account"`
		Address     string `json:"address"`
		Default     bool   `json:"default,omitempty"`
		ReceiveOnly bool   `json:"receiveOnly,omitempty"`
	}

	identities := []identityDisplay{}
	for _, name := range m.config.Names() {
		id := m.config.Identities[name]
		acc, err := account.AccountFromBase58(id.Account)
		if nil != err {
			return err
		}
		identities = append(identities, identityDisplay{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			Address:     acc.Address().String(),
			Default:     name == m.config.DefaultIdentity,
			ReceiveOnly: "" == id.Data,
		})
	}

	printJson(m.w, struct {
		TestNet     bool              `json:"testnet"`
		Connections []string          `json:"connections"`
		ProgramId   string            `json:"programId"`
		Derivation  string            `json:"derivationHash"`
		Identities  []identityDisplay `json:"identities"`
	}{
		TestNet:     m.config.TestNet,
		Connections: m.config.Connections,
		ProgramId:   m.config.ProgramId,
		Derivation:  m.config.DerivationHash,
		Identities:  identities,
	})
	return nil
}
