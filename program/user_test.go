// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bountyd/accountrecord"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/storage"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

func skills(n int) []string {
	list := make([]string, n)
	for i := range list {
		list[i] = fmt.Sprintf("skill-%d", i)
	}
	return list
}

func TestUserAvatar(t *testing.T) {
	setup(t)
	defer teardown()

	items := []struct {
		name   string
		skills []string
		avatar string
	}{
		{"John Doe", []string{"go"}, "JD"},
		{"Alice", []string{"rust"}, "Al"},
		{"Bob Smith", nil, "BS"},
	}

	for i, item := range items {
		key := workerKey
		switch i {
		case 1:
			key = otherKey
		case 2:
			key = creatorKey
		}
		err := run(key, newUser(item.name, item.skills))
		if !assert.Nil(t, err, "create user: %s", item.name) {
			continue
		}
		user := readUser(t, userAddress(key.Account().Address()))
		assert.Equal(t, item.avatar, user.Avatar, "avatar: %s", item.name)
		assert.Equal(t, accountrecord.DefaultUserBio, user.Bio, "bio: %s", item.name)
		assert.Equal(t, key.Account().Address(), user.Authority, "authority: %s", item.name)
	}

	bob := readUser(t, userAddress(creator))
	assert.Equal(t, []string{}, bob.Skills, "empty skills")
	assert.Equal(t, uint64(0), bob.Earned, "earned")
	assert.Equal(t, uint64(0), bob.BountiesSubmitted, "submitted")
	assert.Equal(t, uint64(0), bob.BountiesCompleted, "completed")
}

func TestUserSkillBound(t *testing.T) {
	setup(t)
	defer teardown()

	err := run(workerKey, newUser("Too Many", skills(11)))
	assert.Equal(t, fault.ErrSkillsTooMany, err, "eleven skills")
	assert.True(t, fault.IsErrValidation(err), "validation kind")
	assert.False(t, storage.Pool.Users.Has(userAddress(worker).Bytes()), "nothing written")

	err = run(workerKey, newUser("Just Enough", skills(10)))
	assert.Nil(t, err, "ten skills")
	assert.Equal(t, skills(10), readUser(t, userAddress(worker)).Skills, "stored skills")

	err = run(workerKey, &transactionrecord.UpdateUser{
		Name:   "Just Enough",
		Email:  "j@e.test",
		Skills: skills(11),
	})
	assert.Equal(t, fault.ErrSkillsTooMany, err, "update to eleven skills")
	assert.Equal(t, skills(10), readUser(t, userAddress(worker)).Skills, "skills unchanged")
}

func TestCreateUserTwice(t *testing.T) {
	setup(t)
	defer teardown()

	assert.Nil(t, run(workerKey, newUser("John Doe", nil)), "first")
	err := run(workerKey, newUser("Johnny Doe", nil))
	assert.Equal(t, fault.ErrUserAlreadyExists, err, "second")
	assert.Equal(t, "John Doe", readUser(t, userAddress(worker)).Name, "first kept")

	err = run(otherKey, newUser("", nil))
	assert.Equal(t, fault.ErrNameInvalid, err, "empty name")

	err = run(otherKey, &transactionrecord.CreateUser{Name: "No Email"})
	assert.Equal(t, fault.ErrEmailInvalid, err, "empty email")
}

func TestUpdateUser(t *testing.T) {
	setup(t)
	defer teardown()

	assert.Nil(t, run(workerKey, newUser("John Doe", []string{"go"})), "create")

	err := run(workerKey, &transactionrecord.UpdateUser{
		Name:   "jane roe",
		Email:  "jane@roe.test",
		Bio:    "designer",
		Skills: []string{"figma", "css"},
	})
	assert.Nil(t, err, "update")

	user := readUser(t, userAddress(worker))
	assert.Equal(t, "jane roe", user.Name, "name")
	assert.Equal(t, "JR", user.Avatar, "avatar")
	assert.Equal(t, "designer", user.Bio, "bio")
	assert.Equal(t, []string{"figma", "css"}, user.Skills, "skills")
	assert.Equal(t, startTime, user.JoinedAt, "joined")

	err = run(otherKey, &transactionrecord.UpdateUser{Name: "Nobody", Email: "n@b.test"})
	assert.Equal(t, fault.ErrUserNotFound, err, "update absent")
}

func TestDeleteUser(t *testing.T) {
	setup(t)
	defer teardown()

	setupBounty(t, "Build a bridge", sol)
	assert.Nil(t, run(workerKey, newSubmission("Build a bridge", "https://work.test/1")), "submit")

	err := run(workerKey, &transactionrecord.DeleteUser{})
	assert.Equal(t, fault.ErrUserHasLiveSubmissions, err, "live submission")
	assert.True(t, fault.IsErrPrecondition(err), "precondition kind")

	assert.Nil(t, run(creatorKey, selectWinner("Build a bridge", worker)), "select")

	before := committed(worker)
	err = run(workerKey, &transactionrecord.DeleteUser{})
	assert.Nil(t, err, "delete after resolution")
	assert.False(t, storage.Pool.Users.Has(userAddress(worker).Bytes()), "closed")
	assert.Equal(t, before+rent(accountrecord.UserTag), committed(worker), "rent returned")

	assert.Equal(t, fault.ErrUserNotFound, run(workerKey, &transactionrecord.DeleteUser{}), "delete twice")
}
