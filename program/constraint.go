// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/bountyd/accountrecord"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

// a derived account and the bump that produced it
type derived struct {
	address address.Address
	bump    uint8
}

// the supplied account list must be exactly the expected one
//
// the first entry is the signer's wallet, the rest are derived or
// named by the instruction's arguments
func (env *environment) expectAccounts(instruction transactionrecord.Instruction, expected ...address.Address) error {
	supplied := instruction.GetHeader().Accounts
	if len(supplied) != len(expected) || len(supplied) != instruction.Tag().AccountCount() {
		return fault.ErrAccountListMismatch
	}
	if supplied[0] != env.signer || expected[0] != env.signer {
		return fault.ErrSignerMismatch
	}
	for i := 1; i < len(expected); i += 1 {
		if supplied[i] != expected[i] {
			return fault.ErrWrongAddress
		}
	}
	return nil
}

// the stored authority must be the signer
func (env *environment) expectAuthority(authority address.Address) error {
	if authority != env.signer {
		return fault.ErrSignerMismatch
	}
	return nil
}

func (env *environment) client(authority address.Address) (derived, error) {
	a, bump, err := env.deriver.Client(authority)
	return derived{a, bump}, err
}

func (env *environment) user(authority address.Address) (derived, error) {
	a, bump, err := env.deriver.User(authority)
	return derived{a, bump}, err
}

// bounty titles are seeds so they are checked before derivation
func (env *environment) bounty(title string, creator address.Address) (derived, error) {
	if err := validTitle(title); nil != err {
		return derived{}, err
	}
	a, bump, err := env.deriver.Bounty(title, creator)
	return derived{a, bump}, err
}

func (env *environment) submission(submitter address.Address, bounty address.Address) (derived, error) {
	a, bump, err := env.deriver.Submission(submitter, bounty)
	return derived{a, bump}, err
}

func (env *environment) escrow(bounty address.Address) (derived, error) {
	a, bump, err := env.deriver.Escrow(bounty)
	return derived{a, bump}, err
}

func validTitle(title string) error {
	if 0 == len(title) || len(title) > accountrecord.MaxTitleLength {
		return fault.ErrTitleInvalid
	}
	return nil
}

// AccountList - the account list an instruction from signer must carry
//
// for clients building instructions; execution derives the same list
// independently and rejects any difference
func AccountList(deriver *address.Deriver, signer address.Address, instruction transactionrecord.Instruction) ([]address.Address, error) {
	env := &environment{
		deriver: deriver,
		signer:  signer,
	}

	switch tx := instruction.(type) {

	case *transactionrecord.CreateClient, *transactionrecord.UpdateClient, *transactionrecord.DeleteClient:
		client, err := env.client(signer)
		if nil != err {
			return nil, err
		}
		return []address.Address{signer, client.address}, nil

	case *transactionrecord.CreateUser, *transactionrecord.UpdateUser, *transactionrecord.DeleteUser:
		user, err := env.user(signer)
		if nil != err {
			return nil, err
		}
		return []address.Address{signer, user.address}, nil

	case *transactionrecord.CreateBounty:
		return env.bountyAccounts(tx.Title)

	case *transactionrecord.DeleteBounty:
		return env.bountyAccounts(tx.Title)

	case *transactionrecord.UpdateBounty:
		accounts, err := env.bountyAccounts(tx.Title)
		if nil != err {
			return nil, err
		}
		newTitle := tx.NewTitle
		if "" == newTitle {
			newTitle = tx.Title
		}
		target, err := env.bounty(newTitle, signer)
		if nil != err {
			return nil, err
		}
		targetCustody, err := env.escrow(target.address)
		if nil != err {
			return nil, err
		}
		return append(accounts, target.address, targetCustody.address), nil

	case *transactionrecord.CreateSubmission:
		user, err := env.user(signer)
		if nil != err {
			return nil, err
		}
		bounty, err := env.bounty(tx.Title, tx.Creator)
		if nil != err {
			return nil, err
		}
		submission, err := env.submission(signer, bounty.address)
		if nil != err {
			return nil, err
		}
		return []address.Address{signer, user.address, bounty.address, submission.address}, nil

	case *transactionrecord.SelectSubmission:
		accounts, err := env.bountyAccounts(tx.Title)
		if nil != err {
			return nil, err
		}
		client, bounty, custody := accounts[1], accounts[2], accounts[3]
		submission, err := env.submission(tx.Winner, bounty)
		if nil != err {
			return nil, err
		}
		winner, err := env.user(tx.Winner)
		if nil != err {
			return nil, err
		}
		return []address.Address{signer, client, bounty, submission.address, winner.address, custody, tx.Winner}, nil

	default:
		return nil, fault.ErrUnknownInstruction
	}
}

// signer, client, bounty, escrow
func (env *environment) bountyAccounts(title string) ([]address.Address, error) {
	client, err := env.client(env.signer)
	if nil != err {
		return nil, err
	}
	bounty, err := env.bounty(title, env.signer)
	if nil != err {
		return nil, err
	}
	custody, err := env.escrow(bounty.address)
	if nil != err {
		return nil, err
	}
	return []address.Address{env.signer, client.address, bounty.address, custody.address}, nil
}
