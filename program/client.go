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

func (env *environment) createClient(tx *transactionrecord.CreateClient) error {
	client, err := env.client(env.signer)
	if nil != err {
		return err
	}
	err = env.expectAccounts(tx, env.signer, client.address)
	if nil != err {
		return err
	}

	record := &accountrecord.Client{
		Authority:     env.signer,
		CompanyName:   tx.CompanyName,
		CompanyEmail:  tx.CompanyEmail,
		CompanyAvatar: accountrecord.Avatar(tx.CompanyName),
		CompanyLink:   tx.CompanyLink,
		CompanyBio:    accountrecord.DefaultClientBio,
		JoinedAt:      env.now,
		Bump:          client.bump,
	}
	err = record.Validate()
	if nil != err {
		return err
	}

	if env.exists(accountrecord.ClientTag, client.address) {
		return fault.ErrClientAlreadyExists
	}

	return env.create(client.address, record, env.signer)
}

func (env *environment) updateClient(tx *transactionrecord.UpdateClient) error {
	client, err := env.client(env.signer)
	if nil != err {
		return err
	}
	err = env.expectAccounts(tx, env.signer, client.address)
	if nil != err {
		return err
	}

	record := env.loadClient(client.address)
	if nil == record {
		return fault.ErrClientNotFound
	}
	err = env.expectAuthority(record.Authority)
	if nil != err {
		return err
	}

	record.CompanyName = tx.CompanyName
	record.CompanyEmail = tx.CompanyEmail
	record.CompanyAvatar = accountrecord.Avatar(tx.CompanyName)
	record.CompanyLink = tx.CompanyLink
	record.CompanyBio = tx.CompanyBio

	err = record.Validate()
	if nil != err {
		return err
	}
	return env.save(client.address, record)
}

// a client with a live bounty cannot be closed
func (env *environment) deleteClient(tx *transactionrecord.DeleteClient) error {
	client, err := env.client(env.signer)
	if nil != err {
		return err
	}
	err = env.expectAccounts(tx, env.signer, client.address)
	if nil != err {
		return err
	}

	record := env.loadClient(client.address)
	if nil == record {
		return fault.ErrClientNotFound
	}
	err = env.expectAuthority(record.Authority)
	if nil != err {
		return err
	}

	bounties, err := Members(storage.Pool.ClientBounties, client.address)
	if nil != err {
		return err
	}
	for _, b := range bounties {
		bounty := env.loadBounty(b)
		if nil != bounty && bounty.Live {
			return fault.ErrClientHasLiveBounties
		}
	}

	return env.close(accountrecord.ClientTag, client.address, env.signer)
}
