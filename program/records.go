// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/bountyd/accountrecord"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/balance"
	"github.com/bitmark-inc/bountyd/storage"
	"github.com/bitmark-inc/logger"
)

// the pool holding each kind of record
func poolFor(tag accountrecord.TagType) *storage.PoolHandle {
	switch tag {
	case accountrecord.ClientTag:
		return storage.Pool.Clients
	case accountrecord.UserTag:
		return storage.Pool.Users
	case accountrecord.BountyTag:
		return storage.Pool.Bounties
	case accountrecord.SubmissionTag:
		return storage.Pool.Submissions
	case accountrecord.EscrowTag:
		return storage.Pool.Escrows
	default:
		logger.Panicf("program: no pool for record: %d", tag)
	}
	return nil
}

func (env *environment) exists(tag accountrecord.TagType, a address.Address) bool {
	return env.trx.Has(poolFor(tag), a[:])
}

// read and decode a record, nil if absent
//
// a record that fails to decode means the store is corrupt
func (env *environment) load(tag accountrecord.TagType, a address.Address) accountrecord.Record {
	packed := env.trx.Get(poolFor(tag), a[:])
	if nil == packed {
		return nil
	}
	record, err := accountrecord.Packed(packed).Unpack()
	logger.PanicIfError("program: unpack stored record", err)
	if record.Tag() != tag {
		logger.Panicf("program: record at: %s has tag: %s expected: %s", a, record.Tag(), tag)
	}
	return record
}

func (env *environment) loadClient(a address.Address) *accountrecord.Client {
	if record := env.load(accountrecord.ClientTag, a); nil != record {
		return record.(*accountrecord.Client)
	}
	return nil
}

func (env *environment) loadUser(a address.Address) *accountrecord.User {
	if record := env.load(accountrecord.UserTag, a); nil != record {
		return record.(*accountrecord.User)
	}
	return nil
}

func (env *environment) loadBounty(a address.Address) *accountrecord.Bounty {
	if record := env.load(accountrecord.BountyTag, a); nil != record {
		return record.(*accountrecord.Bounty)
	}
	return nil
}

func (env *environment) loadSubmission(a address.Address) *accountrecord.Submission {
	if record := env.load(accountrecord.SubmissionTag, a); nil != record {
		return record.(*accountrecord.Submission)
	}
	return nil
}

// overwrite a record in place
func (env *environment) save(a address.Address, record accountrecord.Record) error {
	packed, err := record.Pack()
	if nil != err {
		return err
	}
	env.trx.Put(poolFor(record.Tag()), a[:], packed)
	return nil
}

// write a new record and take its rent deposit from the payer
//
// the caller has already checked the address is free
func (env *environment) create(a address.Address, record accountrecord.Record, payer address.Address) error {
	packed, err := record.Pack()
	if nil != err {
		return err
	}
	err = balance.Transfer(env.trx, payer, a, accountrecord.RentDeposit(record.Tag()))
	if nil != err {
		return err
	}
	env.trx.Put(poolFor(record.Tag()), a[:], packed)
	return nil
}

// remove a record and return everything it holds to the recipient
func (env *environment) close(tag accountrecord.TagType, a address.Address, recipient address.Address) error {
	_, err := balance.Drain(env.trx, a, recipient)
	if nil != err {
		return err
	}
	env.trx.Delete(poolFor(tag), a[:])
	return nil
}

// index keys are owner ++ member
func indexKey(owner address.Address, member address.Address) []byte {
	key := make([]byte, 0, 2*address.Length)
	key = append(key, owner[:]...)
	return append(key, member[:]...)
}

func (env *environment) addIndex(pool *storage.PoolHandle, owner address.Address, member address.Address) {
	env.trx.Put(pool, indexKey(owner, member), []byte{})
}

func (env *environment) removeIndex(pool *storage.PoolHandle, owner address.Address, member address.Address) {
	env.trx.Delete(pool, indexKey(owner, member))
}

// Members - committed index entries for an owner
func Members(pool storage.Handle, owner address.Address) ([]address.Address, error) {
	members := []address.Address{}
	err := pool.MapPrefix(owner[:], func(key []byte, value []byte) error {
		if 2*address.Length != len(key) {
			return nil
		}
		member := address.Address{}
		copy(member[:], key[address.Length:])
		members = append(members, member)
		return nil
	})
	return members, err
}
