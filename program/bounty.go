// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/bountyd/accountrecord"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/balance"
	"github.com/bitmark-inc/bountyd/escrow"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/storage"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

func (env *environment) createBounty(tx *transactionrecord.CreateBounty) error {
	if 0 == tx.Reward {
		return fault.ErrRewardInvalid
	}
	if tx.Deadline <= env.now {
		return fault.ErrDeadlineInvalid
	}

	client, err := env.client(env.signer)
	if nil != err {
		return err
	}
	bounty, err := env.bounty(tx.Title, env.signer)
	if nil != err {
		return err
	}
	custody, err := env.escrow(bounty.address)
	if nil != err {
		return err
	}
	err = env.expectAccounts(tx, env.signer, client.address, bounty.address, custody.address)
	if nil != err {
		return err
	}

	clientRecord := env.loadClient(client.address)
	if nil == clientRecord {
		return fault.ErrClientNotFound
	}
	err = env.expectAuthority(clientRecord.Authority)
	if nil != err {
		return err
	}

	record := &accountrecord.Bounty{
		CreatorWalletKey: env.signer,
		ClientKey:        client.address,
		Title:            tx.Title,
		Description:      tx.Description,
		Reward:           tx.Reward,
		Live:             true,
		CreatedAt:        env.now,
		Deadline:         tx.Deadline,
		RequiredSkills:   skillList(tx.RequiredSkills),
		EscrowAccount:    custody.address,
		Bump:             bounty.bump,
	}
	err = record.Validate()
	if nil != err {
		return err
	}

	if env.exists(accountrecord.BountyTag, bounty.address) {
		return fault.ErrTitleInUse
	}

	// reward and rent together, so a shortfall is reported before
	// anything moves
	required := tx.Reward + accountrecord.RentDeposit(accountrecord.BountyTag)
	if required < tx.Reward {
		return fault.ErrAmountOverflow
	}
	if balance.Get(env.trx, env.signer) < required {
		return fault.ErrInsufficientFunds
	}

	err = increment(&clientRecord.BountiesPosted, 1)
	if nil != err {
		return err
	}

	err = env.create(bounty.address, record, env.signer)
	if nil != err {
		return err
	}
	err = escrow.Deposit(env.trx, custody.address, custody.bump, bounty.address, env.signer, tx.Reward)
	if nil != err {
		return err
	}
	env.addIndex(storage.Pool.ClientBounties, client.address, bounty.address)

	return env.save(client.address, clientRecord)
}

// description and deadline may change while the bounty is live; a new
// title moves the bounty and its escrow to the addresses derived from
// it and is only possible before any work is submitted
func (env *environment) updateBounty(tx *transactionrecord.UpdateBounty) error {
	if tx.Deadline <= env.now {
		return fault.ErrDeadlineInvalid
	}
	newTitle := tx.NewTitle
	if "" == newTitle {
		newTitle = tx.Title
	}

	client, err := env.client(env.signer)
	if nil != err {
		return err
	}
	bounty, err := env.bounty(tx.Title, env.signer)
	if nil != err {
		return err
	}
	custody, err := env.escrow(bounty.address)
	if nil != err {
		return err
	}
	target, err := env.bounty(newTitle, env.signer)
	if nil != err {
		return err
	}
	targetCustody, err := env.escrow(target.address)
	if nil != err {
		return err
	}
	err = env.expectAccounts(tx,
		env.signer,
		client.address,
		bounty.address,
		custody.address,
		target.address,
		targetCustody.address,
	)
	if nil != err {
		return err
	}

	record, err := env.ownBounty(client.address, bounty.address)
	if nil != err {
		return err
	}
	if !record.Live {
		return fault.ErrBountyNotLive
	}

	record.Description = tx.Description
	record.Deadline = tx.Deadline

	retitle := target.address != bounty.address
	if retitle {
		if 0 != record.NoOfSubmissions {
			return fault.ErrBountyHasSubmissionsRetitle
		}
		if env.exists(accountrecord.BountyTag, target.address) {
			return fault.ErrTitleInUse
		}
		record.Title = newTitle
		record.EscrowAccount = targetCustody.address
		record.Bump = target.bump
	}

	err = record.Validate()
	if nil != err {
		return err
	}

	if !retitle {
		return env.save(bounty.address, record)
	}

	err = escrow.Move(env.trx, custody.address, bounty.address, targetCustody.address, targetCustody.bump, target.address)
	if nil != err {
		return err
	}
	_, err = balance.Drain(env.trx, bounty.address, target.address)
	if nil != err {
		return err
	}
	env.trx.Delete(storage.Pool.Bounties, bounty.address[:])
	env.removeIndex(storage.Pool.ClientBounties, client.address, bounty.address)
	env.addIndex(storage.Pool.ClientBounties, client.address, target.address)

	return env.save(target.address, record)
}

// only a bounty nobody has submitted to can be withdrawn, the reward
// returns to the creator and both records close
func (env *environment) deleteBounty(tx *transactionrecord.DeleteBounty) error {
	client, err := env.client(env.signer)
	if nil != err {
		return err
	}
	bounty, err := env.bounty(tx.Title, env.signer)
	if nil != err {
		return err
	}
	custody, err := env.escrow(bounty.address)
	if nil != err {
		return err
	}
	err = env.expectAccounts(tx, env.signer, client.address, bounty.address, custody.address)
	if nil != err {
		return err
	}

	record, err := env.ownBounty(client.address, bounty.address)
	if nil != err {
		return err
	}
	if 0 != record.NoOfSubmissions {
		return fault.ErrBountyHasSubmissions
	}
	if record.EscrowAccount != custody.address {
		return fault.ErrEscrowMismatch
	}

	_, err = escrow.Refund(env.trx, custody.address, bounty.address)
	if nil != err {
		return err
	}
	env.removeIndex(storage.Pool.ClientBounties, client.address, bounty.address)

	return env.close(accountrecord.BountyTag, bounty.address, env.signer)
}

// the signer's client record must exist and own the bounty
func (env *environment) ownBounty(client address.Address, bounty address.Address) (*accountrecord.Bounty, error) {
	clientRecord := env.loadClient(client)
	if nil == clientRecord {
		return nil, fault.ErrClientNotFound
	}
	err := env.expectAuthority(clientRecord.Authority)
	if nil != err {
		return nil, err
	}

	record := env.loadBounty(bounty)
	if nil == record {
		return nil, fault.ErrBountyNotFound
	}
	err = env.expectAuthority(record.CreatorWalletKey)
	if nil != err {
		return nil, err
	}
	if record.ClientKey != client {
		return nil, fault.ErrWrongAddress
	}
	return record, nil
}
