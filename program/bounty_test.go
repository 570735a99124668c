// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bountyd/accountrecord"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/program"
	"github.com/bitmark-inc/bountyd/storage"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

const title = "Build a bridge"

func TestCreateBounty(t *testing.T) {
	setup(t)
	defer teardown()

	assert.Equal(t, fault.ErrClientNotFound, run(creatorKey, newBounty(title, sol)), "no client")
	assert.Nil(t, run(creatorKey, newClient()), "client")

	before := committed(creator)
	assert.Nil(t, run(creatorKey, newBounty(title, 3*sol)), "bounty")

	b := bountyAddress(title, creator)
	e := escrowAddress(b)
	bounty := readBounty(t, b)
	assert.Equal(t, creator, bounty.CreatorWalletKey, "creator")
	assert.Equal(t, clientAddress(creator), bounty.ClientKey, "client")
	assert.Equal(t, title, bounty.Title, "title")
	assert.Equal(t, 3*sol, bounty.Reward, "reward")
	assert.True(t, bounty.Live, "live")
	assert.False(t, bounty.BountyRewarded, "not rewarded")
	assert.Equal(t, e, bounty.EscrowAccount, "escrow")
	assert.True(t, bounty.SelectedUserWalletKey.IsZero(), "no winner")
	assert.Equal(t, startTime, bounty.CreatedAt, "created")

	assert.Equal(t, 3*sol, committed(e), "escrow holds exactly the reward")
	assert.Equal(t, rent(accountrecord.BountyTag), committed(b), "bounty rent")
	assert.Equal(t, before-3*sol-rent(accountrecord.BountyTag), committed(creator), "creator paid")
	assert.Equal(t, uint64(1), readClient(t, clientAddress(creator)).BountiesPosted, "posted")

	members, err := program.Members(storage.Pool.ClientBounties, clientAddress(creator))
	assert.Nil(t, err, "members")
	assert.Equal(t, []address.Address{b}, members, "client index")

	err = run(creatorKey, newBounty(title, sol))
	assert.Equal(t, fault.ErrTitleInUse, err, "title collision")
	assert.True(t, fault.IsErrConflict(err), "conflict kind")
	assert.Equal(t, 3*sol, committed(e), "escrow untouched")
}

func TestCreateBountyPreconditions(t *testing.T) {
	setup(t)
	defer teardown()

	assert.Nil(t, run(creatorKey, newClient()), "client")
	balanceBefore := committed(creator)

	assert.Equal(t, fault.ErrRewardInvalid, run(creatorKey, newBounty(title, 0)), "zero reward")

	past := newBounty(title, sol)
	past.Deadline = now
	assert.Equal(t, fault.ErrDeadlineInvalid, run(creatorKey, past), "deadline not in future")

	assert.Equal(t, fault.ErrTitleInvalid, run(creatorKey, newBounty("", sol)), "empty title")
	assert.Equal(t, fault.ErrTitleInvalid, run(creatorKey, newBounty("a title longer than thirty two bytes", sol)), "long title")

	many := newBounty(title, sol)
	many.RequiredSkills = skills(11)
	assert.Equal(t, fault.ErrSkillsTooMany, run(creatorKey, many), "skills")

	// reward alone fits but not with the rent deposit
	err := run(creatorKey, newBounty(title, balanceBefore))
	assert.Equal(t, fault.ErrInsufficientFunds, err, "reward plus rent")
	assert.True(t, fault.IsErrResource(err), "resource kind")

	assert.Equal(t, balanceBefore, committed(creator), "nothing moved")
	assert.False(t, storage.Pool.Bounties.Has(bountyAddress(title, creator).Bytes()), "no bounty")
	assert.Equal(t, uint64(0), readClient(t, clientAddress(creator)).BountiesPosted, "posted unchanged")

	exact := newBounty(title, balanceBefore-rent(accountrecord.BountyTag))
	assert.Nil(t, run(creatorKey, exact), "exact funds")
	assert.Equal(t, uint64(0), committed(creator), "wallet emptied")
}

func TestBountyWrongEscrow(t *testing.T) {
	setup(t)
	defer teardown()

	assert.Nil(t, run(creatorKey, newClient()), "client")

	instruction := newBounty(title, sol)
	accounts, err := program.AccountList(deriver, creator, instruction)
	assert.Nil(t, err, "accounts")
	accounts[3] = other
	instruction.Accounts = accounts

	err = runAs(creatorKey, instruction)
	assert.Equal(t, fault.ErrWrongAddress, err, "escrow substitution")
	assert.Equal(t, 10*sol, committed(other), "nothing paid to substitute")
}

func TestUpdateBounty(t *testing.T) {
	setup(t)
	defer teardown()

	setupBounty(t, title, sol)
	b := bountyAddress(title, creator)

	err := run(creatorKey, &transactionrecord.UpdateBounty{
		Title:       title,
		Description: "span both rivers",
		Deadline:    now + 30*oneDay,
	})
	assert.Nil(t, err, "update")
	bounty := readBounty(t, b)
	assert.Equal(t, "span both rivers", bounty.Description, "description")
	assert.Equal(t, now+30*oneDay, bounty.Deadline, "deadline")
	assert.Equal(t, sol, bounty.Reward, "reward immutable")

	err = runAs(otherKey, &transactionrecord.UpdateBounty{
		Header: transactionrecord.Header{
			Accounts: []address.Address{
				other, clientAddress(other), b, escrowAddress(b), b, escrowAddress(b),
			},
		},
		Title:       title,
		Description: "mine now",
		Deadline:    now + oneDay,
	})
	assert.Equal(t, fault.ErrWrongAddress, err, "other signer")

	err = run(creatorKey, &transactionrecord.UpdateBounty{
		Title:       title,
		Description: "late",
		Deadline:    now - 1,
	})
	assert.Equal(t, fault.ErrDeadlineInvalid, err, "past deadline")

	err = run(creatorKey, &transactionrecord.UpdateBounty{
		Title:    "No such bounty",
		Deadline: now + oneDay,
	})
	assert.Equal(t, fault.ErrBountyNotFound, err, "absent bounty")
}

func TestRetitleBounty(t *testing.T) {
	setup(t)
	defer teardown()

	setupBounty(t, title, 2*sol)
	assert.Nil(t, run(creatorKey, newBounty("Second", sol)), "second bounty")

	oldBounty := bountyAddress(title, creator)
	oldEscrow := escrowAddress(oldBounty)
	newTitle := "Build a tunnel"
	moved := bountyAddress(newTitle, creator)
	movedEscrow := escrowAddress(moved)

	err := run(creatorKey, &transactionrecord.UpdateBounty{
		Title:       title,
		NewTitle:    "Second",
		Description: "clash",
		Deadline:    now + oneDay,
	})
	assert.Equal(t, fault.ErrTitleInUse, err, "title in use")

	err = run(creatorKey, &transactionrecord.UpdateBounty{
		Title:       title,
		NewTitle:    newTitle,
		Description: "under the river",
		Deadline:    now + oneDay,
	})
	assert.Nil(t, err, "retitle")

	assert.False(t, storage.Pool.Bounties.Has(oldBounty.Bytes()), "old bounty gone")
	assert.False(t, storage.Pool.Escrows.Has(oldEscrow.Bytes()), "old escrow gone")
	assert.Equal(t, uint64(0), committed(oldBounty), "old rent moved")
	assert.Equal(t, uint64(0), committed(oldEscrow), "old escrow emptied")

	bounty := readBounty(t, moved)
	assert.Equal(t, newTitle, bounty.Title, "title")
	assert.Equal(t, movedEscrow, bounty.EscrowAccount, "escrow account")
	assert.Equal(t, 2*sol, committed(movedEscrow), "reward moved")
	assert.Equal(t, rent(accountrecord.BountyTag), committed(moved), "rent moved")

	members, err := program.Members(storage.Pool.ClientBounties, clientAddress(creator))
	assert.Nil(t, err, "members")
	assert.Contains(t, members, moved, "index has new bounty")
	assert.NotContains(t, members, oldBounty, "index lost old bounty")

	// with a submission the title is fixed but the text can change
	assert.Nil(t, run(workerKey, newSubmission(newTitle, "https://work.test/t")), "submit")
	err = run(creatorKey, &transactionrecord.UpdateBounty{
		Title:       newTitle,
		NewTitle:    title,
		Description: "back again",
		Deadline:    now + oneDay,
	})
	assert.Equal(t, fault.ErrBountyHasSubmissionsRetitle, err, "retitle with submissions")

	err = run(creatorKey, &transactionrecord.UpdateBounty{
		Title:       newTitle,
		Description: "clarified",
		Deadline:    now + 2*oneDay,
	})
	assert.Nil(t, err, "edit with submissions")
	assert.Equal(t, "clarified", readBounty(t, moved).Description, "description")
}

func TestUpdateResolvedBounty(t *testing.T) {
	setup(t)
	defer teardown()

	setupBounty(t, title, sol)
	assert.Nil(t, run(workerKey, newSubmission(title, "https://work.test/1")), "submit")
	assert.Nil(t, run(creatorKey, selectWinner(title, worker)), "select")

	err := run(creatorKey, &transactionrecord.UpdateBounty{
		Title:       title,
		Description: "too late",
		Deadline:    now + oneDay,
	})
	assert.Equal(t, fault.ErrBountyNotLive, err, "resolved")
	assert.True(t, fault.IsErrPrecondition(err), "precondition kind")
}

func TestDeleteBounty(t *testing.T) {
	setup(t)
	defer teardown()

	setupBounty(t, title, 4*sol)
	b := bountyAddress(title, creator)
	e := escrowAddress(b)
	before := committed(creator)

	err := run(otherKey, &transactionrecord.DeleteBounty{Title: title})
	assert.Equal(t, fault.ErrClientNotFound, err, "other has no client")

	err = run(creatorKey, &transactionrecord.DeleteBounty{Title: title})
	assert.Nil(t, err, "delete")

	assert.False(t, storage.Pool.Bounties.Has(b.Bytes()), "bounty closed")
	assert.False(t, storage.Pool.Escrows.Has(e.Bytes()), "escrow closed")
	assert.Equal(t, uint64(0), committed(e), "escrow residue")
	assert.Equal(t, uint64(0), committed(b), "bounty residue")
	assert.Equal(t, before+4*sol+rent(accountrecord.BountyTag), committed(creator), "refund and rent")
	assert.Equal(t, uint64(1), readClient(t, clientAddress(creator)).BountiesPosted, "posted is a history count")

	err = run(creatorKey, &transactionrecord.DeleteBounty{Title: title})
	assert.Equal(t, fault.ErrBountyNotFound, err, "delete twice")
}

func TestDeleteGuard(t *testing.T) {
	setup(t)
	defer teardown()

	setupBounty(t, title, sol)
	assert.Nil(t, run(workerKey, newSubmission(title, "https://work.test/1")), "submit")

	err := run(creatorKey, &transactionrecord.DeleteBounty{Title: title})
	assert.Equal(t, fault.ErrBountyHasSubmissions, err, "submissions exist")
	assert.True(t, fault.IsErrPrecondition(err), "precondition kind")
	assert.Equal(t, sol, committed(escrowAddress(bountyAddress(title, creator))), "escrow intact")

	assert.Nil(t, run(creatorKey, selectWinner(title, worker)), "select")
	err = run(creatorKey, &transactionrecord.DeleteBounty{Title: title})
	assert.Equal(t, fault.ErrBountyHasSubmissions, err, "resolved bounty")
}
