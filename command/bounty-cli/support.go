// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/bountyd/account"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/command/bounty-cli/rpccalls"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/program"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

const minimumPasswordLength = 8

func printJson(w io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(w, "error: %s\n", err)
		return
	}
	fmt.Fprintf(w, "%s\n", b)
}

func checkName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if "" == name {
		return "", fmt.Errorf("identity name is required")
	}
	return name, nil
}

func checkDescription(description string) (string, error) {
	if "" == description {
		return "", fmt.Errorf("description is required")
	}
	return description, nil
}

func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", fmt.Errorf("connect is required")
	}
	host, port, err := net.SplitHostPort(connect)
	if nil != err {
		return "", err
	}
	if "" == host {
		return "", fault.ErrInvalidIpAddress
	}
	if n, err := strconv.Atoi(port); nil != err || n < 1 || n > 65535 {
		return "", fault.ErrInvalidPortNumber
	}
	return connect, nil
}

func checkRequired(name string, value string) (string, error) {
	if "" == value {
		return "", fmt.Errorf("%s is required", name)
	}
	return value, nil
}

// selected identity, falling back to the configured default
func identityName(c *cli.Context, m *metadata) (string, error) {
	name := c.GlobalString("identity")
	if "" == name {
		name = m.config.DefaultIdentity
	}
	return checkName(name)
}

// an identity name, an account or a plain address
func checkAccount(m *metadata, text string) (address.Address, error) {
	text = strings.TrimSpace(text)
	if "" == text {
		return address.Address{}, fault.ErrMissingParameters
	}
	if nil != m.config {
		if acc, err := m.config.Account(text); nil == err {
			return acc.Address(), nil
		}
	}
	if acc, err := account.AccountFromBase58(text); nil == err {
		if acc.IsTesting() != m.testnet {
			return address.Address{}, fault.ErrWrongNetworkForPublicKey
		}
		return acc.Address(), nil
	}
	return address.FromBase58(text)
}

// as checkAccount, blank selects the global identity
func checkAccountOrSelf(c *cli.Context, m *metadata, text string) (address.Address, error) {
	if "" == text {
		name, err := identityName(c, m)
		if nil != err {
			return address.Address{}, err
		}
		text = name
	}
	return checkAccount(m, text)
}

// accepts RFC3339, unix seconds or a duration from now
func parseDeadline(text string, now time.Time) (uint64, error) {
	text = strings.TrimSpace(text)
	if "" == text {
		return 0, fault.ErrDeadlineInvalid
	}
	if t, err := time.Parse(time.RFC3339, text); nil == err {
		if t.Unix() <= 0 {
			return 0, fault.ErrDeadlineInvalid
		}
		return uint64(t.Unix()), nil
	}
	if n, err := strconv.ParseUint(text, 10, 64); nil == err {
		return n, nil
	}
	if d, err := time.ParseDuration(strings.TrimPrefix(text, "+")); nil == err && d > 0 {
		return uint64(now.Add(d).Unix()), nil
	}
	return 0, fault.ErrDeadlineInvalid
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if nil != err {
		return "", err
	}
	return string(password), nil
}

// ask twice for a password for a new identity
func promptNewPassword() (string, error) {
	password, err := promptPassword("Set identity password (length >= 8): ")
	if nil != err {
		return "", err
	}
	if len(password) < minimumPasswordLength {
		return "", fault.ErrInvalidPasswordLength
	}
	verify, err := promptPassword("Verify password: ")
	if nil != err {
		return "", err
	}
	if password != verify {
		return "", fault.ErrPasswordMismatch
	}
	return password, nil
}

func newPassword(c *cli.Context) (string, error) {
	password := c.GlobalString("password")
	if "" != password {
		if len(password) < minimumPasswordLength {
			return "", fault.ErrInvalidPasswordLength
		}
		return password, nil
	}
	return promptNewPassword()
}

// decrypt the selected identity
func unlock(c *cli.Context, m *metadata) (*account.PrivateKey, error) {
	name, err := identityName(c, m)
	if nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword(fmt.Sprintf("password for %s: ", name))
		if nil != err {
			return nil, err
		}
	}

	private, err := m.config.Private(password, name)
	if nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "signer: %s (%s)\n", name, private.PrivateKey.Account())
	}
	return private.PrivateKey, nil
}

// first daemon that accepts a connection
func connect(m *metadata) (*rpccalls.Client, error) {
	if 0 == len(m.config.Connections) {
		return nil, fmt.Errorf("no connections configured")
	}
	var err error
	for _, hostPort := range m.config.Connections {
		var client *rpccalls.Client
		client, err = rpccalls.NewClient(hostPort, m.verbose, m.e)
		if nil == err {
			return client, nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s error: %s\n", hostPort, err)
		}
	}
	return nil, err
}

// fill the account list, sign and wait for the ledger result
func submit(c *cli.Context, m *metadata, instruction transactionrecord.Instruction) error {
	key, err := unlock(c, m)
	if nil != err {
		return err
	}

	packed, err := signInstruction(m, key, instruction, uint64(time.Now().UnixNano()))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "packed: %x\n", packed)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	result, err := client.Submit(packed)
	if nil != err {
		return err
	}
	printJson(m.w, result)
	return nil
}

func signInstruction(m *metadata, key *account.PrivateKey, instruction transactionrecord.Instruction, nonce uint64) (transactionrecord.Packed, error) {
	if key.IsTesting() != m.testnet {
		return nil, fault.ErrWrongNetworkForPublicKey
	}

	deriver, err := m.config.Deriver()
	if nil != err {
		return nil, err
	}

	accounts, err := program.AccountList(deriver, key.Account().Address(), instruction)
	if nil != err {
		return nil, err
	}
	instruction.GetHeader().Accounts = accounts

	return transactionrecord.Sign(instruction, key, nonce)
}
