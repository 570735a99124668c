// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bountyd/amount"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

func runCreateClient(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, err := checkRequired("name", c.String("name"))
	if nil != err {
		return err
	}

	return submit(c, m, &transactionrecord.CreateClient{
		CompanyName:  name,
		CompanyEmail: c.String("email"),
		CompanyLink:  c.String("link"),
	})
}

func runUpdateClient(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, err := checkRequired("name", c.String("name"))
	if nil != err {
		return err
	}

	return submit(c, m, &transactionrecord.UpdateClient{
		CompanyName:  name,
		CompanyEmail: c.String("email"),
		CompanyLink:  c.String("link"),
		CompanyBio:   c.String("bio"),
	})
}

func runDeleteClient(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return submit(c, m, &transactionrecord.DeleteClient{})
}

func runCreateUser(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, err := checkRequired("name", c.String("name"))
	if nil != err {
		return err
	}

	return submit(c, m, &transactionrecord.CreateUser{
		Name:   name,
		Email:  c.String("email"),
		Skills: c.StringSlice("skill"),
	})
}

func runUpdateUser(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, err := checkRequired("name", c.String("name"))
	if nil != err {
		return err
	}

	return submit(c, m, &transactionrecord.UpdateUser{
		Name:   name,
		Email:  c.String("email"),
		Bio:    c.String("bio"),
		Skills: c.StringSlice("skill"),
	})
}

func runDeleteUser(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return submit(c, m, &transactionrecord.DeleteUser{})
}

func runCreateBounty(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	title, err := checkRequired("title", c.String("title"))
	if nil != err {
		return err
	}

	rewardText, err := checkRequired("reward", c.String("reward"))
	if nil != err {
		return err
	}
	reward, err := amount.Parse(rewardText)
	if nil != err {
		return err
	}

	deadline, err := parseDeadline(c.String("deadline"), time.Now())
	if nil != err {
		return err
	}

	return submit(c, m, &transactionrecord.CreateBounty{
		Title:          title,
		Description:    c.String("description"),
		Reward:         reward,
		Deadline:       deadline,
		RequiredSkills: c.StringSlice("skill"),
	})
}

func runUpdateBounty(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	title, err := checkRequired("title", c.String("title"))
	if nil != err {
		return err
	}

	deadline, err := parseDeadline(c.String("deadline"), time.Now())
	if nil != err {
		return err
	}

	return submit(c, m, &transactionrecord.UpdateBounty{
		Title:       title,
		NewTitle:    c.String("new-title"),
		Description: c.String("description"),
		Deadline:    deadline,
	})
}

func runDeleteBounty(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	title, err := checkRequired("title", c.String("title"))
	if nil != err {
		return err
	}

	return submit(c, m, &transactionrecord.DeleteBounty{
		Title: title,
	})
}

func runSubmit(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	creator, err := checkAccount(m, c.String("creator"))
	if nil != err {
		return err
	}

	title, err := checkRequired("title", c.String("title"))
	if nil != err {
		return err
	}

	url, err := checkRequired("url", c.String("url"))
	if nil != err {
		return err
	}

	return submit(c, m, &transactionrecord.CreateSubmission{
		Creator:     creator,
		Title:       title,
		Description: c.String("description"),
		WorkUrl:     url,
	})
}

func runSelect(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	title, err := checkRequired("title", c.String("title"))
	if nil != err {
		return err
	}

	winner, err := checkAccount(m, c.String("winner"))
	if nil != err {
		return err
	}

	return submit(c, m, &transactionrecord.SelectSubmission{
		Title:  title,
		Winner: winner,
	})
}
