// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

const defaultListCount = 20

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a key pair, will not store in config file",
			Action: runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise bounty-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: " bountyd host/IP and port, `HOST:PORT`, default is the local port of the network",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " use an existing private `KEY`",
				},
				cli.StringFlag{
					Name:  "program",
					Value: "",
					Usage: " program `ADDRESS` used by the daemon",
				},
				cli.StringFlag{
					Name:  "hash",
					Value: "",
					Usage: " derivation `HASH` used by the daemon [sha256|sha3-256|blake3]",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "+use an existing private `KEY`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new private key",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive only `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "list",
			Usage:  "list identities in the config file",
			Action: runList,
		},
		{
			Name:   "info",
			Usage:  "display bountyd status",
			Action: runInfo,
		},
		{
			Name:  "create-client",
			Usage: "register the identity as a client",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "name", Usage: "*company `NAME`"},
				cli.StringFlag{Name: "email", Usage: " company `EMAIL`"},
				cli.StringFlag{Name: "link", Usage: " company `URL`"},
			},
			Action: runCreateClient,
		},
		{
			Name:  "update-client",
			Usage: "replace the client profile",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "name", Usage: "*company `NAME`"},
				cli.StringFlag{Name: "email", Usage: " company `EMAIL`"},
				cli.StringFlag{Name: "link", Usage: " company `URL`"},
				cli.StringFlag{Name: "bio", Usage: " company `TEXT`"},
			},
			Action: runUpdateClient,
		},
		{
			Name:   "delete-client",
			Usage:  "close the client profile",
			Action: runDeleteClient,
		},
		{
			Name:  "create-user",
			Usage: "register the identity as a user",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "name", Usage: "*user `NAME`"},
				cli.StringFlag{Name: "email", Usage: " user `EMAIL`"},
				cli.StringSliceFlag{Name: "skill, s", Usage: " a `SKILL`, may be repeated"},
			},
			Action: runCreateUser,
		},
		{
			Name:  "update-user",
			Usage: "replace the user profile",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "name", Usage: "*user `NAME`"},
				cli.StringFlag{Name: "email", Usage: " user `EMAIL`"},
				cli.StringFlag{Name: "bio", Usage: " user `TEXT`"},
				cli.StringSliceFlag{Name: "skill, s", Usage: " a `SKILL`, may be repeated"},
			},
			Action: runUpdateUser,
		},
		{
			Name:   "delete-user",
			Usage:  "close the user profile",
			Action: runDeleteUser,
		},
		{
			Name:  "create-bounty",
			Usage: "post a bounty, escrowing its reward",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "title, t", Usage: "*bounty `TITLE`"},
				cli.StringFlag{Name: "description, d", Usage: " `TEXT`"},
				cli.StringFlag{Name: "reward, r", Usage: "*reward `AMOUNT` e.g. 2.5"},
				cli.StringFlag{Name: "deadline", Usage: "*`WHEN` as RFC3339, unix seconds or a duration from now"},
				cli.StringSliceFlag{Name: "skill, s", Usage: " a required `SKILL`, may be repeated"},
			},
			Action: runCreateBounty,
		},
		{
			Name:  "update-bounty",
			Usage: "edit a bounty",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "title, t", Usage: "*current bounty `TITLE`"},
				cli.StringFlag{Name: "new-title", Usage: " new `TITLE`, only without submissions"},
				cli.StringFlag{Name: "description, d", Usage: " `TEXT`"},
				cli.StringFlag{Name: "deadline", Usage: "*`WHEN` as RFC3339, unix seconds or a duration from now"},
			},
			Action: runUpdateBounty,
		},
		{
			Name:  "delete-bounty",
			Usage: "withdraw a bounty without submissions, refunding its reward",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "title, t", Usage: "*bounty `TITLE`"},
			},
			Action: runDeleteBounty,
		},
		{
			Name:  "submit",
			Usage: "submit work to a bounty",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "creator", Usage: "*bounty creator `ACCOUNT` or identity"},
				cli.StringFlag{Name: "title, t", Usage: "*bounty `TITLE`"},
				cli.StringFlag{Name: "description, d", Usage: " `TEXT`"},
				cli.StringFlag{Name: "url, u", Usage: "*work `URL`"},
			},
			Action: runSubmit,
		},
		{
			Name:  "select",
			Usage: "choose the winning submission, releasing the reward",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "title, t", Usage: "*bounty `TITLE`"},
				cli.StringFlag{Name: "winner, w", Usage: "*winner `ACCOUNT` or identity"},
			},
			Action: runSelect,
		},
		{
			Name:  "status",
			Usage: "display the status of a transaction",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "txid, t", Usage: "*transaction id `TXID`"},
			},
			Action: runTransactionStatus,
		},
		{
			Name:  "balance",
			Usage: "display a wallet balance",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "owner, o", Usage: " `ACCOUNT` or identity, default is global identity"},
			},
			Action: runBalance,
		},
		{
			Name:  "escrow",
			Usage: "display where a bounty reward is held",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "creator", Usage: " bounty creator `ACCOUNT` or identity, default is global identity"},
				cli.StringFlag{Name: "title, t", Usage: "*bounty `TITLE`"},
			},
			Action: runEscrow,
		},
		{
			Name:  "record",
			Usage: "display the record at an address",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "address, a", Usage: "*record `ADDRESS`"},
				cli.StringFlag{Name: "kind, k", Usage: " `KIND` [client|user|bounty|submission|escrow]"},
			},
			Action: runRecord,
		},
		{
			Name:  "clients",
			Usage: "list clients",
			Flags: listFlags(),
			Action: func(c *cli.Context) error {
				return runListRecords(c, "clients")
			},
		},
		{
			Name:  "users",
			Usage: "list users",
			Flags: listFlags(),
			Action: func(c *cli.Context) error {
				return runListRecords(c, "users")
			},
		},
		{
			Name:  "bounties",
			Usage: "list bounties",
			Flags: append(listFlags(),
				cli.StringFlag{Name: "creator", Usage: " only bounties of creator `ACCOUNT` or identity"},
				cli.StringFlag{Name: "client", Usage: " only bounties of client record `ADDRESS`"},
				cli.BoolFlag{Name: "live", Usage: " only live bounties"},
				cli.BoolFlag{Name: "closed", Usage: " only closed bounties"},
			),
			Action: runBounties,
		},
		{
			Name:  "submissions",
			Usage: "list submissions to a bounty or by a user",
			Flags: append(listFlags(),
				cli.StringFlag{Name: "bounty", Usage: "+bounty `ADDRESS`"},
				cli.StringFlag{Name: "user", Usage: "+user record `ADDRESS`"},
			),
			Action: runSubmissions,
		},
		{
			Name:  "derive",
			Usage: "derive a record address",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "kind, k", Usage: "*`KIND` [client|user|bounty|submission|escrow]"},
				cli.StringFlag{Name: "authority", Usage: " client or user `ACCOUNT` or identity"},
				cli.StringFlag{Name: "title, t", Usage: " bounty `TITLE`"},
				cli.StringFlag{Name: "creator", Usage: " bounty creator `ACCOUNT` or identity"},
				cli.StringFlag{Name: "submitter", Usage: " submitter `ACCOUNT` or identity"},
				cli.StringFlag{Name: "bounty", Usage: " bounty `ADDRESS`"},
			},
			Action: runDerive,
		},
		{
			Name:  "version",
			Usage: "display bounty-cli version",
			Action: func(c *cli.Context) error {
				m := c.App.Metadata["config"].(*metadata)
				fmt.Fprintf(m.w, "%s\n", version)
				return nil
			},
		},
	}
}

func listFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{Name: "start", Usage: " continue after `ADDRESS`"},
		cli.IntFlag{Name: "count", Value: defaultListCount, Usage: " maximum records `COUNT`"},
	}
}
