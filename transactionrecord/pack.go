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

// every instruction packs as:
//
//   Varint64(tag) ++ signer ++ Varint64(nonce) ++ accounts ++ fields ++ signature
//
// with the signature over everything before it
//
// NOTE: Pack returns the "unsigned" message on signature failure - for
//       signing by a client and for debugging/testing

// start a message with the header fields
func (header *Header) pack(tag TagType) (Packed, error) {
	if len(header.Signature) > maxSignatureLength {
		return nil, fault.ErrSignatureTooLong
	}
	if nil == header.Signer {
		return nil, fault.ErrNotPublicKey
	}
	if tag.AccountCount() != len(header.Accounts) {
		return nil, fault.ErrAccountListMismatch
	}
	if header.Accounts[0] != header.Signer.Address() {
		return nil, fault.ErrSignerMismatch
	}

	message := util.ToVarint64(uint64(tag))
	message = appendAccount(message, header.Signer)
	message = util.AppendUint64(message, header.Nonce)
	message = util.AppendUint64(message, uint64(len(header.Accounts)))
	for _, a := range header.Accounts {
		message = appendAddress(message, a)
	}
	return message, nil
}

// check the signature and place it last
func (header *Header) sign(message Packed, signer *account.Account) (Packed, error) {
	if nil == signer {
		return message, fault.ErrNotPublicKey
	}
	if signer.Address() != header.Signer.Address() {
		return message, fault.ErrSignerMismatch
	}
	err := signer.CheckSignature(message, header.Signature)
	if nil != err {
		return message, err
	}
	return util.AppendBytes(message, header.Signature), nil
}

// Pack - CreateClient
func (instruction *CreateClient) Pack(signer *account.Account) (Packed, error) {
	message, err := instruction.pack(CreateClientTag)
	if nil != err {
		return nil, err
	}
	message, err = appendStrings(message,
		instruction.CompanyName,
		instruction.CompanyEmail,
		instruction.CompanyLink,
	)
	if nil != err {
		return nil, err
	}
	return instruction.sign(message, signer)
}

// Pack - UpdateClient
func (instruction *UpdateClient) Pack(signer *account.Account) (Packed, error) {
	message, err := instruction.pack(UpdateClientTag)
	if nil != err {
		return nil, err
	}
	message, err = appendStrings(message,
		instruction.CompanyName,
		instruction.CompanyEmail,
		instruction.CompanyLink,
		instruction.CompanyBio,
	)
	if nil != err {
		return nil, err
	}
	return instruction.sign(message, signer)
}

// Pack - DeleteClient
func (instruction *DeleteClient) Pack(signer *account.Account) (Packed, error) {
	message, err := instruction.pack(DeleteClientTag)
	if nil != err {
		return nil, err
	}
	return instruction.sign(message, signer)
}

// Pack - CreateUser
func (instruction *CreateUser) Pack(signer *account.Account) (Packed, error) {
	message, err := instruction.pack(CreateUserTag)
	if nil != err {
		return nil, err
	}
	message, err = appendStrings(message,
		instruction.Name,
		instruction.Email,
	)
	if nil != err {
		return nil, err
	}
	message, err = appendList(message, instruction.Skills)
	if nil != err {
		return nil, err
	}
	return instruction.sign(message, signer)
}

// Pack - UpdateUser
func (instruction *UpdateUser) Pack(signer *account.Account) (Packed, error) {
	message, err := instruction.pack(UpdateUserTag)
	if nil != err {
		return nil, err
	}
	message, err = appendStrings(message,
		instruction.Name,
		instruction.Email,
		instruction.Bio,
	)
	if nil != err {
		return nil, err
	}
	message, err = appendList(message, instruction.Skills)
	if nil != err {
		return nil, err
	}
	return instruction.sign(message, signer)
}

// Pack - DeleteUser
func (instruction *DeleteUser) Pack(signer *account.Account) (Packed, error) {
	message, err := instruction.pack(DeleteUserTag)
	if nil != err {
		return nil, err
	}
	return instruction.sign(message, signer)
}

// Pack - CreateBounty
func (instruction *CreateBounty) Pack(signer *account.Account) (Packed, error) {
	message, err := instruction.pack(CreateBountyTag)
	if nil != err {
		return nil, err
	}
	message, err = appendStrings(message,
		instruction.Title,
		instruction.Description,
	)
	if nil != err {
		return nil, err
	}
	message = util.AppendUint64(message, instruction.Reward)
	message = util.AppendUint64(message, instruction.Deadline)
	message, err = appendList(message, instruction.RequiredSkills)
	if nil != err {
		return nil, err
	}
	return instruction.sign(message, signer)
}

// Pack - UpdateBounty
func (instruction *UpdateBounty) Pack(signer *account.Account) (Packed, error) {
	message, err := instruction.pack(UpdateBountyTag)
	if nil != err {
		return nil, err
	}
	message, err = appendStrings(message,
		instruction.Title,
		instruction.NewTitle,
		instruction.Description,
	)
	if nil != err {
		return nil, err
	}
	message = util.AppendUint64(message, instruction.Deadline)
	return instruction.sign(message, signer)
}

// Pack - DeleteBounty
func (instruction *DeleteBounty) Pack(signer *account.Account) (Packed, error) {
	message, err := instruction.pack(DeleteBountyTag)
	if nil != err {
		return nil, err
	}
	message, err = appendStrings(message, instruction.Title)
	if nil != err {
		return nil, err
	}
	return instruction.sign(message, signer)
}

// Pack - CreateSubmission
func (instruction *CreateSubmission) Pack(signer *account.Account) (Packed, error) {
	message, err := instruction.pack(CreateSubmissionTag)
	if nil != err {
		return nil, err
	}
	message = appendAddress(message, instruction.Creator)
	message, err = appendStrings(message,
		instruction.Title,
		instruction.Description,
		instruction.WorkUrl,
	)
	if nil != err {
		return nil, err
	}
	return instruction.sign(message, signer)
}

// Pack - SelectSubmission
func (instruction *SelectSubmission) Pack(signer *account.Account) (Packed, error) {
	message, err := instruction.pack(SelectSubmissionTag)
	if nil != err {
		return nil, err
	}
	message, err = appendStrings(message, instruction.Title)
	if nil != err {
		return nil, err
	}
	message = appendAddress(message, instruction.Winner)
	return instruction.sign(message, signer)
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length)
func appendAccount(buffer Packed, a *account.Account) Packed {
	return util.AppendBytes(buffer, a.Bytes())
}

// append an address to a buffer
func appendAddress(buffer Packed, a address.Address) Packed {
	return util.AppendBytes(buffer, a[:])
}

// append strings checking the wire limit
func appendStrings(buffer Packed, items ...string) (Packed, error) {
	for _, s := range items {
		if len(s) > maxStringLength {
			return nil, fault.ErrFieldTooLong
		}
		buffer = util.AppendString(buffer, s)
	}
	return buffer, nil
}

// append a counted list of strings
func appendList(buffer Packed, items []string) (Packed, error) {
	if len(items) > maxListCount {
		return nil, fault.ErrCountTooLarge
	}
	for _, s := range items {
		if len(s) > maxStringLength {
			return nil, fault.ErrFieldTooLong
		}
	}
	return util.AppendStrings(buffer, items), nil
}
