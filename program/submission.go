// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/bountyd/accountrecord"
	"github.com/bitmark-inc/bountyd/escrow"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/storage"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

// one submission per user and bounty, the submission address is
// derived from both so a second attempt finds it occupied
func (env *environment) createSubmission(tx *transactionrecord.CreateSubmission) error {
	user, err := env.user(env.signer)
	if nil != err {
		return err
	}
	bounty, err := env.bounty(tx.Title, tx.Creator)
	if nil != err {
		return err
	}
	submission, err := env.submission(env.signer, bounty.address)
	if nil != err {
		return err
	}
	err = env.expectAccounts(tx, env.signer, user.address, bounty.address, submission.address)
	if nil != err {
		return err
	}

	userRecord := env.loadUser(user.address)
	if nil == userRecord {
		return fault.ErrUserNotFound
	}
	err = env.expectAuthority(userRecord.Authority)
	if nil != err {
		return err
	}

	bountyRecord := env.loadBounty(bounty.address)
	if nil == bountyRecord {
		return fault.ErrBountyNotFound
	}
	if !bountyRecord.Live {
		return fault.ErrBountyNotLive
	}
	if env.now > bountyRecord.Deadline {
		return fault.ErrBountyDeadlinePassed
	}

	record := &accountrecord.Submission{
		UserWalletKey: env.signer,
		UserKey:       user.address,
		BountyKey:     bounty.address,
		Description:   tx.Description,
		WorkUrl:       tx.WorkUrl,
		Bump:          submission.bump,
	}
	err = record.Validate()
	if nil != err {
		return err
	}

	if env.exists(accountrecord.SubmissionTag, submission.address) {
		return fault.ErrSubmissionAlreadyExists
	}

	err = increment(&bountyRecord.NoOfSubmissions, 1)
	if nil != err {
		return err
	}
	err = increment(&userRecord.BountiesSubmitted, 1)
	if nil != err {
		return err
	}

	err = env.create(submission.address, record, env.signer)
	if nil != err {
		return err
	}
	env.addIndex(storage.Pool.BountySubmissions, bounty.address, submission.address)
	env.addIndex(storage.Pool.UserSubmissions, user.address, submission.address)

	err = env.save(bounty.address, bountyRecord)
	if nil != err {
		return err
	}
	return env.save(user.address, userRecord)
}

// the bounty, the submission and the escrow are each re-derived and
// must all agree before the reward moves
func (env *environment) selectSubmission(tx *transactionrecord.SelectSubmission) error {
	client, err := env.client(env.signer)
	if nil != err {
		return err
	}
	bounty, err := env.bounty(tx.Title, env.signer)
	if nil != err {
		return err
	}
	submission, err := env.submission(tx.Winner, bounty.address)
	if nil != err {
		return err
	}
	winner, err := env.user(tx.Winner)
	if nil != err {
		return err
	}
	custody, err := env.escrow(bounty.address)
	if nil != err {
		return err
	}
	err = env.expectAccounts(tx,
		env.signer,
		client.address,
		bounty.address,
		submission.address,
		winner.address,
		custody.address,
		tx.Winner,
	)
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

	bountyRecord := env.loadBounty(bounty.address)
	if nil == bountyRecord {
		return fault.ErrBountyNotFound
	}
	err = env.expectAuthority(bountyRecord.CreatorWalletKey)
	if nil != err {
		return err
	}
	if bountyRecord.ClientKey != client.address {
		return fault.ErrWrongAddress
	}
	if bountyRecord.BountyRewarded {
		return fault.ErrBountyAlreadyRewarded
	}
	if !bountyRecord.Live {
		return fault.ErrBountyNotLive
	}
	if bountyRecord.EscrowAccount != custody.address {
		return fault.ErrEscrowMismatch
	}

	submissionRecord := env.loadSubmission(submission.address)
	if nil == submissionRecord {
		return fault.ErrSubmissionNotFound
	}
	if submissionRecord.BountyKey != bounty.address {
		return fault.ErrSubmissionMismatch
	}
	if submissionRecord.UserWalletKey != tx.Winner || submissionRecord.UserKey != winner.address {
		return fault.ErrWrongWinnerWallet
	}

	winnerRecord := env.loadUser(winner.address)
	if nil == winnerRecord {
		return fault.ErrUserNotFound
	}
	if winnerRecord.Authority != tx.Winner {
		return fault.ErrWrongWinnerWallet
	}

	reward := bountyRecord.Reward
	err = increment(&winnerRecord.Earned, reward)
	if nil != err {
		return err
	}
	err = increment(&winnerRecord.BountiesCompleted, 1)
	if nil != err {
		return err
	}
	err = increment(&clientRecord.Rewarded, reward)
	if nil != err {
		return err
	}

	paid, err := escrow.Release(env.trx, custody.address, bounty.address, tx.Winner)
	if nil != err {
		return err
	}
	if paid != reward {
		return fault.ErrEscrowUnderfunded
	}

	bountyRecord.SelectedSubmission = submission.address
	bountyRecord.SelectedUserWalletKey = tx.Winner
	bountyRecord.BountyRewarded = true
	bountyRecord.Live = false

	err = env.save(bounty.address, bountyRecord)
	if nil != err {
		return err
	}
	err = env.save(winner.address, winnerRecord)
	if nil != err {
		return err
	}
	return env.save(client.address, clientRecord)
}
