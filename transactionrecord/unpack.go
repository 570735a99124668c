// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/bountyd/account"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/util"
)

// Unpack - turn a byte slice into an instruction
//
// returns the instruction and the number of bytes consumed; the
// signature is NOT verified here, re-packing with the signer does that
//
// must cast result to correct type
//
// e.g.
//
//	switch tx := result.(type) {
//	case *transactionrecord.CreateBounty:
func (record Packed) Unpack(testnet bool) (t Instruction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.ErrNotInstructionPack
		}
	}()

	u := util.NewUnpacker(record)

	tag := TagType(u.Uint64())
	if nil != u.Err() {
		return nil, 0, fault.ErrNotInstructionPack
	}
	if NullTag == tag || tag >= InvalidTag {
		return nil, 0, fault.ErrUnknownInstruction
	}

	header, err := unpackHeader(u, tag, testnet)
	if nil != err {
		return nil, 0, err
	}

	switch tag {

	case CreateClientTag:
		instruction := &CreateClient{
			Header:       header,
			CompanyName:  u.String(maxStringLength),
			CompanyEmail: u.String(maxStringLength),
			CompanyLink:  u.String(maxStringLength),
		}
		t = instruction

	case UpdateClientTag:
		instruction := &UpdateClient{
			Header:       header,
			CompanyName:  u.String(maxStringLength),
			CompanyEmail: u.String(maxStringLength),
			CompanyLink:  u.String(maxStringLength),
			CompanyBio:   u.String(maxStringLength),
		}
		t = instruction

	case DeleteClientTag:
		t = &DeleteClient{
			Header: header,
		}

	case CreateUserTag:
		instruction := &CreateUser{
			Header: header,
			Name:   u.String(maxStringLength),
			Email:  u.String(maxStringLength),
			Skills: u.Strings(maxListCount, maxStringLength),
		}
		t = instruction

	case UpdateUserTag:
		instruction := &UpdateUser{
			Header: header,
			Name:   u.String(maxStringLength),
			Email:  u.String(maxStringLength),
			Bio:    u.String(maxStringLength),
			Skills: u.Strings(maxListCount, maxStringLength),
		}
		t = instruction

	case DeleteUserTag:
		t = &DeleteUser{
			Header: header,
		}

	case CreateBountyTag:
		instruction := &CreateBounty{
			Header:         header,
			Title:          u.String(maxStringLength),
			Description:    u.String(maxStringLength),
			Reward:         u.Uint64(),
			Deadline:       u.Uint64(),
			RequiredSkills: u.Strings(maxListCount, maxStringLength),
		}
		t = instruction

	case UpdateBountyTag:
		instruction := &UpdateBounty{
			Header:      header,
			Title:       u.String(maxStringLength),
			NewTitle:    u.String(maxStringLength),
			Description: u.String(maxStringLength),
			Deadline:    u.Uint64(),
		}
		t = instruction

	case DeleteBountyTag:
		t = &DeleteBounty{
			Header: header,
			Title:  u.String(maxStringLength),
		}

	case CreateSubmissionTag:
		instruction := &CreateSubmission{
			Header:      header,
			Creator:     unpackAddress(u),
			Title:       u.String(maxStringLength),
			Description: u.String(maxStringLength),
			WorkUrl:     u.String(maxStringLength),
		}
		t = instruction

	case SelectSubmissionTag:
		instruction := &SelectSubmission{
			Header: header,
			Title:  u.String(maxStringLength),
			Winner: unpackAddress(u),
		}
		t = instruction

	default: // also NullTag
		return nil, 0, fault.ErrUnknownInstruction
	}

	// signature is last and is over everything before it
	signature := u.Bytes(maxSignatureLength)
	if nil != u.Err() {
		return nil, 0, fault.ErrNotInstructionPack
	}
	t.GetHeader().Signature = signature

	return t, u.Offset(), nil
}

// signer, nonce and the account list
func unpackHeader(u *util.Unpacker, tag TagType, testnet bool) (Header, error) {
	signerBytes := u.Bytes(maxAccountLength)
	nonce := u.Uint64()
	count := u.Uint64()
	if nil != u.Err() {
		return Header{}, fault.ErrNotInstructionPack
	}

	signer, err := account.AccountFromBytes(signerBytes)
	if nil != err {
		return Header{}, err
	}
	if signer.IsTesting() != testnet {
		return Header{}, fault.ErrWrongNetworkForPublicKey
	}

	if uint64(tag.AccountCount()) != count {
		return Header{}, fault.ErrAccountListMismatch
	}
	accounts := make([]address.Address, count)
	for i := range accounts {
		accounts[i] = unpackAddress(u)
	}
	if nil != u.Err() {
		return Header{}, fault.ErrNotInstructionPack
	}

	return Header{
		Signer:   signer,
		Nonce:    nonce,
		Accounts: accounts,
	}, nil
}

func unpackAddress(u *util.Unpacker) address.Address {
	a := address.Address{}
	copy(a[:], u.Fixed(address.Length))
	return a
}
