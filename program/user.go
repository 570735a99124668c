// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/bountyd/accountrecord"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/storage"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

// empty and absent skill lists are both stored as empty
func skillList(skills []string) []string {
	if nil == skills {
		return []string{}
	}
	return skills
}

func (env *environment) createUser(tx *transactionrecord.CreateUser) error {
	user, err := env.user(env.signer)
	if nil != err {
		return err
	}
	err = env.expectAccounts(tx, env.signer, user.address)
	if nil != err {
		return err
	}

	record := &accountrecord.User{
		Authority: env.signer,
		Name:      tx.Name,
		Email:     tx.Email,
		Avatar:    accountrecord.Avatar(tx.Name),
		Bio:       accountrecord.DefaultUserBio,
		Skills:    skillList(tx.Skills),
		JoinedAt:  env.now,
		Bump:      user.bump,
	}
	err = record.Validate()
	if nil != err {
		return err
	}

	if env.exists(accountrecord.UserTag, user.address) {
		return fault.ErrUserAlreadyExists
	}

	return env.create(user.address, record, env.signer)
}

func (env *environment) updateUser(tx *transactionrecord.UpdateUser) error {
	user, err := env.user(env.signer)
	if nil != err {
		return err
	}
	err = env.expectAccounts(tx, env.signer, user.address)
	if nil != err {
		return err
	}

	record := env.loadUser(user.address)
	if nil == record {
		return fault.ErrUserNotFound
	}
	err = env.expectAuthority(record.Authority)
	if nil != err {
		return err
	}

	record.Name = tx.Name
	record.Email = tx.Email
	record.Avatar = accountrecord.Avatar(tx.Name)
	record.Bio = tx.Bio
	record.Skills = skillList(tx.Skills)

	err = record.Validate()
	if nil != err {
		return err
	}
	return env.save(user.address, record)
}

// closing is refused while any of the user's submissions is on a live
// bounty
func (env *environment) deleteUser(tx *transactionrecord.DeleteUser) error {
	user, err := env.user(env.signer)
	if nil != err {
		return err
	}
	err = env.expectAccounts(tx, env.signer, user.address)
	if nil != err {
		return err
	}

	record := env.loadUser(user.address)
	if nil == record {
		return fault.ErrUserNotFound
	}
	err = env.expectAuthority(record.Authority)
	if nil != err {
		return err
	}

	submissions, err := Members(storage.Pool.UserSubmissions, user.address)
	if nil != err {
		return err
	}
	for _, s := range submissions {
		submission := env.loadSubmission(s)
		if nil == submission {
			continue
		}
		bounty := env.loadBounty(submission.BountyKey)
		if nil != bounty && bounty.Live {
			return fault.ErrUserHasLiveSubmissions
		}
	}

	return env.close(accountrecord.UserTag, user.address, env.signer)
}
