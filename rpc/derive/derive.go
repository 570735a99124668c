// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derive

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/rpc/ratelimit"
)

const (
	rateLimitAddress = 200
	rateBurstAddress = 100
)

// Address - derive record addresses without building an instruction
type Address struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Deriver *address.Deriver
}

// New - address derivation service
func New(log *logger.L, deriver *address.Deriver) *Address {
	return &Address{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAddress, rateBurstAddress),
		Deriver: deriver,
	}
}

// DeriveArguments - the seeds for one kind of record
//
//	client, user:  authority
//	bounty:        title, creator
//	submission:    submitter, bounty
//	escrow:        bounty
type DeriveArguments struct {
	Kind      string          `json:"kind"`
	Authority address.Address `json:"authority"`
	Title     string          `json:"title"`
	Creator   address.Address `json:"creator"`
	Submitter address.Address `json:"submitter"`
	Bounty    address.Address `json:"bounty"`
}

// DeriveReply - the derived address and its bump
type DeriveReply struct {
	Kind    string          `json:"kind"`
	Address address.Address `json:"address"`
	Bump    uint8           `json:"bump"`
}

// Derive - compute the address a record of this kind would have
func (a *Address) Derive(arguments *DeriveArguments, reply *DeriveReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	if nil == a.Deriver {
		return fault.ErrNotInitialised
	}

	var derived address.Address
	var bump uint8
	var err error

	switch arguments.Kind {
	case address.ClientTag:
		derived, bump, err = a.Deriver.Client(arguments.Authority)
	case address.UserTag:
		derived, bump, err = a.Deriver.User(arguments.Authority)
	case address.BountyTag:
		if "" == arguments.Title {
			return fault.ErrTitleInvalid
		}
		derived, bump, err = a.Deriver.Bounty(arguments.Title, arguments.Creator)
	case address.SubmissionTag:
		derived, bump, err = a.Deriver.Submission(arguments.Submitter, arguments.Bounty)
	case address.EscrowTag:
		derived, bump, err = a.Deriver.Escrow(arguments.Bounty)
	default:
		return fault.ErrMissingParameters
	}
	if nil != err {
		return err
	}

	reply.Kind = arguments.Kind
	reply.Address = derived
	reply.Bump = bump
	return nil
}
