// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package records

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/accountrecord"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/balance"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/ledger"
	"github.com/bitmark-inc/bountyd/program"
	"github.com/bitmark-inc/bountyd/rpc/ratelimit"
	"github.com/bitmark-inc/bountyd/storage"
)

const (
	rateLimitRecords = 200
	rateBurstRecords = 100

	maximumCount = 100
)

// Records - read-only queries over the committed records
type Records struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Pools   ledger.Handles
}

// New - record query service
func New(log *logger.L, pools ledger.Handles) *Records {
	return &Records{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitRecords, rateBurstRecords),
		Pools:   pools,
	}
}

// Entry - one record with the address holding it
type Entry struct {
	Kind    string               `json:"kind"`
	Address address.Address      `json:"address"`
	Balance uint64               `json:"balance,string"`
	Record  accountrecord.Record `json:"record"`
}

// GetArguments - fetch by address, an empty kind searches every kind
type GetArguments struct {
	Kind    string          `json:"kind"`
	Address address.Address `json:"address"`
}

// Get - the record stored at an address
func (records *Records) Get(arguments *GetArguments, reply *Entry) error {

	if err := ratelimit.Limit(records.Limiter); nil != err {
		return err
	}

	tags := []accountrecord.TagType{
		accountrecord.ClientTag,
		accountrecord.UserTag,
		accountrecord.BountyTag,
		accountrecord.SubmissionTag,
		accountrecord.EscrowTag,
	}
	if "" != arguments.Kind {
		tag, ok := accountrecord.TagFromName(arguments.Kind)
		if !ok {
			return fault.ErrMissingParameters
		}
		tags = []accountrecord.TagType{tag}
	}

	for _, tag := range tags {
		pool := records.pool(tag)
		if nil == pool {
			return fault.ErrDatabaseIsNotSet
		}
		entry, err := records.entry(pool, arguments.Address)
		if nil != err {
			return err
		}
		if nil != entry {
			*reply = *entry
			return nil
		}
	}
	return fault.ErrRecordNotFound
}

// ListArguments - page through one kind of record in address order
//
// Start is exclusive, zero starts from the beginning
type ListArguments struct {
	Start address.Address `json:"start"`
	Count int             `json:"count"`
}

// ListReply - a page of records
type ListReply struct {
	Records   []Entry         `json:"records"`
	NextStart address.Address `json:"nextStart"`
}

// Clients - list client records
func (records *Records) Clients(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(records.Limiter, arguments.Count, maximumCount); nil != err {
		return err
	}
	return records.scan(records.Pools.Clients, arguments.Start, arguments.Count, nil, reply)
}

// Users - list user records
func (records *Records) Users(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(records.Limiter, arguments.Count, maximumCount); nil != err {
		return err
	}
	return records.scan(records.Pools.Users, arguments.Start, arguments.Count, nil, reply)
}

// BountiesArguments - filters are combined, unset ones match everything
type BountiesArguments struct {
	Creator *address.Address `json:"creator,omitempty"`
	Client  *address.Address `json:"client,omitempty"`
	Live    *bool            `json:"live,omitempty"`
	Start   address.Address  `json:"start"`
	Count   int              `json:"count"`
}

// Bounties - list bounties
func (records *Records) Bounties(arguments *BountiesArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(records.Limiter, arguments.Count, maximumCount); nil != err {
		return err
	}

	match := func(record accountrecord.Record) bool {
		bounty := record.(*accountrecord.Bounty)
		if nil != arguments.Creator && *arguments.Creator != bounty.CreatorWalletKey {
			return false
		}
		if nil != arguments.Client && *arguments.Client != bounty.ClientKey {
			return false
		}
		if nil != arguments.Live && *arguments.Live != bounty.Live {
			return false
		}
		return true
	}

	// the client index avoids scanning every bounty
	if nil != arguments.Client {
		if nil == records.Pools.ClientBounties {
			return fault.ErrDatabaseIsNotSet
		}
		members, err := program.Members(records.Pools.ClientBounties, *arguments.Client)
		if nil != err {
			return err
		}
		return records.collect(records.Pools.Bounties, members, arguments.Start, arguments.Count, match, reply)
	}

	return records.scan(records.Pools.Bounties, arguments.Start, arguments.Count, match, reply)
}

// SubmissionsArguments - exactly one of bounty or user
type SubmissionsArguments struct {
	Bounty *address.Address `json:"bounty,omitempty"`
	User   *address.Address `json:"user,omitempty"`
	Start  address.Address  `json:"start"`
	Count  int              `json:"count"`
}

// Submissions - list the submissions to a bounty or by a user
func (records *Records) Submissions(arguments *SubmissionsArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(records.Limiter, arguments.Count, maximumCount); nil != err {
		return err
	}

	var index storage.Handle
	var owner address.Address
	switch {
	case nil != arguments.Bounty && nil == arguments.User:
		index = records.Pools.BountySubmissions
		owner = *arguments.Bounty
	case nil == arguments.Bounty && nil != arguments.User:
		index = records.Pools.UserSubmissions
		owner = *arguments.User
	default:
		return fault.ErrMissingParameters
	}
	if nil == index {
		return fault.ErrDatabaseIsNotSet
	}

	members, err := program.Members(index, owner)
	if nil != err {
		return err
	}
	return records.collect(records.Pools.Submissions, members, arguments.Start, arguments.Count, nil, reply)
}

func (records *Records) pool(tag accountrecord.TagType) storage.Handle {
	switch tag {
	case accountrecord.ClientTag:
		return records.Pools.Clients
	case accountrecord.UserTag:
		return records.Pools.Users
	case accountrecord.BountyTag:
		return records.Pools.Bounties
	case accountrecord.SubmissionTag:
		return records.Pools.Submissions
	case accountrecord.EscrowTag:
		return records.Pools.Escrows
	default:
		return nil
	}
}

// nil entry if the address holds nothing in this pool
func (records *Records) entry(pool storage.Handle, a address.Address) (*Entry, error) {
	packed := pool.Get(a[:])
	if nil == packed {
		return nil, nil
	}
	return records.decode(a, packed)
}

func (records *Records) decode(a address.Address, packed []byte) (*Entry, error) {
	record, err := accountrecord.Packed(packed).Unpack()
	if nil != err {
		records.Log.Errorf("record at: %s: unpack error: %s", a, err)
		return nil, err
	}
	entry := &Entry{
		Kind:    record.Tag().String(),
		Address: a,
		Record:  record,
	}
	if nil != records.Pools.Balances {
		entry.Balance = balance.Committed(records.Pools.Balances, a)
	}
	return entry, nil
}

// walk the pool in key order from just after start
func (records *Records) scan(pool storage.Handle, start address.Address, count int, match func(accountrecord.Record) bool, reply *ListReply) error {
	if nil == pool {
		return fault.ErrDatabaseIsNotSet
	}

	cursor := pool.NewFetchCursor()
	if !start.IsZero() {
		cursor.Seek(append(start.Bytes(), 0x00))
	}

	result := make([]Entry, 0, count)
	next := start

	for len(result) < count {
		elements, err := cursor.Fetch(count)
		if nil != err {
			return err
		}
		if 0 == len(elements) {
			break
		}
	page:
		for _, element := range elements {
			a, err := address.FromBytes(element.Key)
			if nil != err {
				return err
			}
			entry, err := records.decode(a, element.Value)
			if nil != err {
				return err
			}
			next = a
			if nil == match || match(entry.Record) {
				result = append(result, *entry)
				if len(result) >= count {
					break page
				}
			}
		}
	}

	reply.Records = result
	reply.NextStart = next
	return nil
}

// load indexed members in address order from just after start
func (records *Records) collect(pool storage.Handle, members []address.Address, start address.Address, count int, match func(accountrecord.Record) bool, reply *ListReply) error {
	if nil == pool {
		return fault.ErrDatabaseIsNotSet
	}

	result := make([]Entry, 0, count)
	next := start

loop:
	for _, a := range members {
		if !start.IsZero() && string(a[:]) <= string(start[:]) {
			continue loop
		}
		next = a
		entry, err := records.entry(pool, a)
		if nil != err {
			return err
		}
		// closed records keep their index entries
		if nil == entry {
			continue loop
		}
		if nil == match || match(entry.Record) {
			result = append(result, *entry)
			if len(result) >= count {
				break loop
			}
		}
	}

	reply.Records = result
	reply.NextStart = next
	return nil
}
