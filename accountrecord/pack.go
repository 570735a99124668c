// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accountrecord

import (
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/util"
)

func header(tag TagType) []byte {
	message := util.ToVarint64(uint64(tag))
	return util.AppendUint64(message, Version)
}

func appendAddress(buffer []byte, a address.Address) []byte {
	return util.AppendBytes(buffer, a[:])
}

// Pack - client record
func (client *Client) Pack() (Packed, error) {
	if err := client.Validate(); nil != err {
		return nil, err
	}

	message := header(ClientTag)
	message = appendAddress(message, client.Authority)
	message = util.AppendString(message, client.CompanyName)
	message = util.AppendString(message, client.CompanyEmail)
	message = util.AppendString(message, client.CompanyAvatar)
	message = util.AppendString(message, client.CompanyLink)
	message = util.AppendString(message, client.CompanyBio)
	message = util.AppendUint64(message, client.JoinedAt)
	message = util.AppendUint64(message, client.Rewarded)
	message = util.AppendUint64(message, client.BountiesPosted)
	message = util.AppendUint64(message, uint64(client.Bump))
	return message, nil
}

// Pack - user record
func (user *User) Pack() (Packed, error) {
	if err := user.Validate(); nil != err {
		return nil, err
	}

	message := header(UserTag)
	message = appendAddress(message, user.Authority)
	message = util.AppendString(message, user.Name)
	message = util.AppendString(message, user.Email)
	message = util.AppendString(message, user.Avatar)
	message = util.AppendString(message, user.Bio)
	message = util.AppendStrings(message, user.Skills)
	message = util.AppendUint64(message, user.JoinedAt)
	message = util.AppendUint64(message, user.Earned)
	message = util.AppendUint64(message, user.BountiesSubmitted)
	message = util.AppendUint64(message, user.BountiesCompleted)
	message = util.AppendUint64(message, uint64(user.Bump))
	return message, nil
}

// Pack - bounty record
func (bounty *Bounty) Pack() (Packed, error) {
	if err := bounty.Validate(); nil != err {
		return nil, err
	}

	message := header(BountyTag)
	message = appendAddress(message, bounty.CreatorWalletKey)
	message = appendAddress(message, bounty.ClientKey)
	message = util.AppendString(message, bounty.Title)
	message = util.AppendString(message, bounty.Description)
	message = util.AppendUint64(message, bounty.Reward)
	message = util.AppendBool(message, bounty.Live)
	message = util.AppendUint64(message, bounty.CreatedAt)
	message = util.AppendUint64(message, bounty.Deadline)
	message = util.AppendStrings(message, bounty.RequiredSkills)
	message = util.AppendUint64(message, bounty.NoOfSubmissions)
	message = appendAddress(message, bounty.SelectedSubmission)
	message = appendAddress(message, bounty.SelectedUserWalletKey)
	message = appendAddress(message, bounty.EscrowAccount)
	message = util.AppendBool(message, bounty.BountyRewarded)
	message = util.AppendUint64(message, uint64(bounty.Bump))
	return message, nil
}

// Pack - submission record
func (submission *Submission) Pack() (Packed, error) {
	if err := submission.Validate(); nil != err {
		return nil, err
	}

	message := header(SubmissionTag)
	message = appendAddress(message, submission.UserWalletKey)
	message = appendAddress(message, submission.UserKey)
	message = appendAddress(message, submission.BountyKey)
	message = util.AppendString(message, submission.Description)
	message = util.AppendString(message, submission.WorkUrl)
	message = util.AppendUint64(message, uint64(submission.Bump))
	return message, nil
}

// Pack - escrow record
func (escrow *Escrow) Pack() (Packed, error) {
	if err := escrow.Validate(); nil != err {
		return nil, err
	}

	message := header(EscrowTag)
	message = appendAddress(message, escrow.Bounty)
	message = appendAddress(message, escrow.Depositor)
	message = util.AppendUint64(message, escrow.Amount)
	message = util.AppendUint64(message, uint64(escrow.Bump))
	return message, nil
}
