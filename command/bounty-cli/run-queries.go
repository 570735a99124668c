// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/rpc/derive"
	"github.com/bitmark-inc/bountyd/rpc/records"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

func runInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetInfo()
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runTransactionStatus(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	var txId transactionrecord.TxId
	err := txId.UnmarshalText([]byte(c.String("txid")))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "txid: %s\n", txId)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetTransactionStatus(txId)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runBalance(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccountOrSelf(c, m, c.String("owner"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetBalance(owner)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runEscrow(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	creator, err := checkAccountOrSelf(c, m, c.String("creator"))
	if nil != err {
		return err
	}

	title, err := checkRequired("title", c.String("title"))
	if nil != err {
		return err
	}

	deriver, err := m.config.Deriver()
	if nil != err {
		return err
	}
	bounty, _, err := deriver.Bounty(title, creator)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetEscrow(bounty)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runRecord(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	a, err := address.FromBase58(c.String("address"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetRecord(c.String("kind"), a)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

// optional base58 address flag
func optionalAddress(c *cli.Context, name string) (*address.Address, error) {
	text := c.String(name)
	if "" == text {
		return nil, nil
	}
	a, err := address.FromBase58(text)
	if nil != err {
		return nil, err
	}
	return &a, nil
}

func startAndCount(c *cli.Context) (address.Address, int, error) {
	start := address.Address{}
	if p, err := optionalAddress(c, "start"); nil != err {
		return start, 0, err
	} else if nil != p {
		start = *p
	}
	count := c.Int("count")
	if count <= 0 {
		return start, 0, fault.ErrInvalidCount
	}
	return start, count, nil
}

func runListRecords(c *cli.Context, kind string) error {
	m := c.App.Metadata["config"].(*metadata)

	start, count, err := startAndCount(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	switch kind {
	case "clients":
		reply, err := client.ListClients(start, count)
		if nil != err {
			return err
		}
		printJson(m.w, reply)
	default:
		reply, err := client.ListUsers(start, count)
		if nil != err {
			return err
		}
		printJson(m.w, reply)
	}
	return nil
}

func runBounties(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	start, count, err := startAndCount(c)
	if nil != err {
		return err
	}

	arguments := records.BountiesArguments{
		Start: start,
		Count: count,
	}

	if text := c.String("creator"); "" != text {
		creator, err := checkAccount(m, text)
		if nil != err {
			return err
		}
		arguments.Creator = &creator
	}

	arguments.Client, err = optionalAddress(c, "client")
	if nil != err {
		return err
	}

	switch {
	case c.Bool("live") && c.Bool("closed"):
		return fault.ErrIncompatibleOptions
	case c.Bool("live"):
		live := true
		arguments.Live = &live
	case c.Bool("closed"):
		live := false
		arguments.Live = &live
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListBounties(arguments)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runSubmissions(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	start, count, err := startAndCount(c)
	if nil != err {
		return err
	}

	arguments := records.SubmissionsArguments{
		Start: start,
		Count: count,
	}
	arguments.Bounty, err = optionalAddress(c, "bounty")
	if nil != err {
		return err
	}
	arguments.User, err = optionalAddress(c, "user")
	if nil != err {
		return err
	}
	if (nil == arguments.Bounty) == (nil == arguments.User) {
		return fault.ErrIncompatibleOptions
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ListSubmissions(arguments)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}

func runDerive(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	arguments := derive.DeriveArguments{
		Kind:  c.String("kind"),
		Title: c.String("title"),
	}

	accounts := []struct {
		flag   string
		target *address.Address
	}{
		{"authority", &arguments.Authority},
		{"creator", &arguments.Creator},
		{"submitter", &arguments.Submitter},
	}
	for _, item := range accounts {
		if text := c.String(item.flag); "" != text {
			a, err := checkAccount(m, text)
			if nil != err {
				return err
			}
			*item.target = a
		}
	}

	if p, err := optionalAddress(c, "bounty"); nil != err {
		return err
	} else if nil != p {
		arguments.Bounty = *p
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Derive(arguments)
	if nil != err {
		return err
	}
	printJson(m.w, reply)
	return nil
}
