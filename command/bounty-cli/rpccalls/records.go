// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/rpc/balance"
	"github.com/bitmark-inc/bountyd/rpc/derive"
	"github.com/bitmark-inc/bountyd/rpc/records"
)

// Entry - a record as returned by the daemon, the body left as JSON
type Entry struct {
	Kind    string          `json:"kind"`
	Address address.Address `json:"address"`
	Balance uint64          `json:"balance,string"`
	Record  json.RawMessage `json:"record"`
}

// ListReply - a page of records
type ListReply struct {
	Records   []Entry         `json:"records"`
	NextStart address.Address `json:"nextStart"`
}

// GetRecord - fetch any record by address, kind may be empty
func (c *Client) GetRecord(kind string, a address.Address) (*Entry, error) {
	arguments := records.GetArguments{
		Kind:    kind,
		Address: a,
	}
	var reply Entry
	err := c.call("Records.Get", arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListClients - page through clients
func (c *Client) ListClients(start address.Address, count int) (*ListReply, error) {
	return c.list("Records.Clients", records.ListArguments{Start: start, Count: count})
}

// ListUsers - page through users
func (c *Client) ListUsers(start address.Address, count int) (*ListReply, error) {
	return c.list("Records.Users", records.ListArguments{Start: start, Count: count})
}

// ListBounties - bounties by creator, client or live flag
func (c *Client) ListBounties(arguments records.BountiesArguments) (*ListReply, error) {
	return c.list("Records.Bounties", arguments)
}

// ListSubmissions - submissions to a bounty or by a user
func (c *Client) ListSubmissions(arguments records.SubmissionsArguments) (*ListReply, error) {
	return c.list("Records.Submissions", arguments)
}

func (c *Client) list(method string, arguments interface{}) (*ListReply, error) {
	var reply ListReply
	err := c.call(method, arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetBalance - committed wallet balance
func (c *Client) GetBalance(a address.Address) (*balance.GetReply, error) {
	var reply balance.GetReply
	err := c.call("Balance.Get", balance.GetArguments{Address: a}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetEscrow - custody state of a bounty reward
func (c *Client) GetEscrow(bounty address.Address) (*balance.EscrowReply, error) {
	var reply balance.EscrowReply
	err := c.call("Balance.Escrow", balance.EscrowArguments{Bounty: bounty}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Derive - ask the daemon for a record address
func (c *Client) Derive(arguments derive.DeriveArguments) (*derive.DeriveReply, error) {
	var reply derive.DeriveReply
	err := c.call("Address.Derive", arguments, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
