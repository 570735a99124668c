// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - custody of bounty rewards
//
//	Unfunded --Deposit--> Escrowed --Release--> Paid
//	                               --Refund---> Refunded
//
// Paid and Refunded are terminal: the escrow record is removed and its
// balance is zero.  Every operation runs inside the caller's storage
// transaction so a failure anywhere in the instruction leaves custody
// unchanged.
package escrow

import (
	"github.com/bitmark-inc/bountyd/accountrecord"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/balance"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/storage"
)

// State - custody state of a bounty's reward
type State int

// custody states
const (
	Unfunded State = iota
	Escrowed
	Paid
	Refunded
)

// String - state name
func (s State) String() string {
	switch s {
	case Unfunded:
		return "unfunded"
	case Escrowed:
		return "escrowed"
	case Paid:
		return "paid"
	case Refunded:
		return "refunded"
	default:
		return "unknown"
	}
}

// Load - read the escrow record
func Load(trx storage.Transaction, escrowAddress address.Address) (*accountrecord.Escrow, error) {
	packed := trx.Get(storage.Pool.Escrows, escrowAddress[:])
	if nil == packed {
		return nil, fault.ErrEscrowNotFound
	}
	return accountrecord.Packed(packed).UnpackEscrow()
}

// Deposit - Unfunded -> Escrowed
//
// moves exactly amount from the depositor into the escrow address and
// writes the custody record
func Deposit(trx storage.Transaction, escrowAddress address.Address, bump uint8, bountyAddress address.Address, depositor address.Address, amount uint64) error {
	if 0 == amount {
		return fault.ErrRewardInvalid
	}
	if trx.Has(storage.Pool.Escrows, escrowAddress[:]) || 0 != balance.Get(trx, escrowAddress) {
		return fault.ErrEscrowAlreadyExists
	}

	record := &accountrecord.Escrow{
		Bounty:    bountyAddress,
		Depositor: depositor,
		Amount:    amount,
		Bump:      bump,
	}
	packed, err := record.Pack()
	if nil != err {
		return err
	}

	err = balance.Transfer(trx, depositor, escrowAddress, amount)
	if nil != err {
		return err
	}

	trx.Put(storage.Pool.Escrows, escrowAddress[:], packed)
	return nil
}

// Release - Escrowed -> Paid
//
// the full escrowed amount goes to the winner wallet
func Release(trx storage.Transaction, escrowAddress address.Address, bountyAddress address.Address, winner address.Address) (uint64, error) {
	record, err := check(trx, escrowAddress, bountyAddress)
	if nil != err {
		return 0, err
	}
	return settle(trx, escrowAddress, record, winner)
}

// Refund - Escrowed -> Refunded
//
// the full escrowed amount returns to the depositor
func Refund(trx storage.Transaction, escrowAddress address.Address, bountyAddress address.Address) (uint64, error) {
	record, err := check(trx, escrowAddress, bountyAddress)
	if nil != err {
		return 0, err
	}
	return settle(trx, escrowAddress, record, record.Depositor)
}

// Move - re-key an escrow to a new address, used when a bounty is
// re-derived under a new title before any work is submitted
func Move(trx storage.Transaction, from address.Address, bountyFrom address.Address, to address.Address, bump uint8, bountyTo address.Address) error {
	record, err := check(trx, from, bountyFrom)
	if nil != err {
		return err
	}
	if trx.Has(storage.Pool.Escrows, to[:]) || 0 != balance.Get(trx, to) {
		return fault.ErrEscrowAlreadyExists
	}

	record.Bounty = bountyTo
	record.Bump = bump
	packed, err := record.Pack()
	if nil != err {
		return err
	}

	moved, err := balance.Drain(trx, from, to)
	if nil != err {
		return err
	}
	if moved != record.Amount {
		return fault.ErrEscrowUnderfunded
	}
	trx.Delete(storage.Pool.Escrows, from[:])
	trx.Put(storage.Pool.Escrows, to[:], packed)
	return nil
}

// StateOf - custody state from the escrow and bounty as stored
func StateOf(trx storage.Transaction, escrowAddress address.Address, bounty *accountrecord.Bounty) State {
	return stateOf(trx.Has(storage.Pool.Escrows, escrowAddress[:]), bounty)
}

// CommittedState - as StateOf but read outside any transaction
func CommittedState(pool storage.Handle, escrowAddress address.Address, bounty *accountrecord.Bounty) State {
	return stateOf(pool.Has(escrowAddress[:]), bounty)
}

func stateOf(held bool, bounty *accountrecord.Bounty) State {
	if held {
		return Escrowed
	}
	if nil == bounty {
		return Unfunded
	}
	if bounty.BountyRewarded {
		return Paid
	}
	return Refunded
}

// the record must belong to the bounty and hold exactly its amount
func check(trx storage.Transaction, escrowAddress address.Address, bountyAddress address.Address) (*accountrecord.Escrow, error) {
	record, err := Load(trx, escrowAddress)
	if nil != err {
		return nil, err
	}
	if record.Bounty != bountyAddress {
		return nil, fault.ErrEscrowMismatch
	}
	if balance.Get(trx, escrowAddress) != record.Amount {
		return nil, fault.ErrEscrowUnderfunded
	}
	return record, nil
}

func settle(trx storage.Transaction, escrowAddress address.Address, record *accountrecord.Escrow, to address.Address) (uint64, error) {
	amount, err := balance.Drain(trx, escrowAddress, to)
	if nil != err {
		return 0, err
	}
	if 0 != balance.Get(trx, escrowAddress) {
		return 0, fault.ErrEscrowResidue
	}
	trx.Delete(storage.Pool.Escrows, escrowAddress[:])
	return amount, nil
}
