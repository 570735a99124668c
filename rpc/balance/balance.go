// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/accountrecord"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/amount"
	stored "github.com/bitmark-inc/bountyd/balance"
	"github.com/bitmark-inc/bountyd/escrow"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/ledger"
	"github.com/bitmark-inc/bountyd/rpc/ratelimit"
	"github.com/bitmark-inc/bountyd/storage"
)

const (
	rateLimitBalance = 200
	rateBurstBalance = 100
)

// Balance - the RPC entry for wallet and escrow balances
type Balance struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	Deriver      *address.Deriver
	PoolBalances storage.Handle
	PoolBounties storage.Handle
	PoolEscrows  storage.Handle
}

// New - balance query service
func New(log *logger.L, pools ledger.Handles, deriver *address.Deriver) *Balance {
	return &Balance{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitBalance, rateBurstBalance),
		Deriver:      deriver,
		PoolBalances: pools.Balances,
		PoolBounties: pools.Bounties,
		PoolEscrows:  pools.Escrows,
	}
}

// GetArguments - the address to query
type GetArguments struct {
	Address address.Address `json:"address"`
}

// GetReply - committed balance
type GetReply struct {
	Address   address.Address `json:"address"`
	Balance   uint64          `json:"balance,string"`
	Formatted string          `json:"formatted"`
}

// Get - committed balance of any address
func (b *Balance) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	if nil == b.PoolBalances {
		return fault.ErrDatabaseIsNotSet
	}

	value := stored.Committed(b.PoolBalances, arguments.Address)

	reply.Address = arguments.Address
	reply.Balance = value
	reply.Formatted = amount.Format(value)
	return nil
}

// EscrowArguments - the bounty whose escrow is queried
type EscrowArguments struct {
	Bounty address.Address `json:"bounty"`
}

// EscrowReply - custody state of a bounty reward
type EscrowReply struct {
	Bounty  address.Address `json:"bounty"`
	Escrow  address.Address `json:"escrow"`
	State   string          `json:"state"`
	Reward  uint64          `json:"reward,string"`
	Balance uint64          `json:"balance,string"`
}

// Escrow - where the reward of a bounty is
func (b *Balance) Escrow(arguments *EscrowArguments, reply *EscrowReply) error {

	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	if nil == b.PoolBalances || nil == b.PoolBounties || nil == b.PoolEscrows {
		return fault.ErrDatabaseIsNotSet
	}
	if nil == b.Deriver {
		return fault.ErrNotInitialised
	}

	var bounty *accountrecord.Bounty
	if packed := b.PoolBounties.Get(arguments.Bounty[:]); nil != packed {
		record, err := accountrecord.Packed(packed).UnpackBounty()
		if nil != err {
			return err
		}
		bounty = record
	}

	escrowAddress, _, err := b.Deriver.Escrow(arguments.Bounty)
	if nil != err {
		return err
	}

	reply.Bounty = arguments.Bounty
	reply.Escrow = escrowAddress
	reply.State = escrow.CommittedState(b.PoolEscrows, escrowAddress, bounty).String()
	reply.Balance = stored.Committed(b.PoolBalances, escrowAddress)
	if nil != bounty {
		reply.Reward = bounty.Reward
	}
	return nil
}
