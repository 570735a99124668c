// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/bountyd/account"
	"github.com/bitmark-inc/bountyd/address"
)

// TagType - type code for instructions
type TagType uint64

// enumerate the possible instruction types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	CreateClientTag     = TagType(iota) // register a client for the signer
	UpdateClientTag     = TagType(iota) // replace client profile fields
	DeleteClientTag     = TagType(iota) // close a client record
	CreateUserTag       = TagType(iota) // register a user for the signer
	UpdateUserTag       = TagType(iota) // replace user profile fields
	DeleteUserTag       = TagType(iota) // close a user record
	CreateBountyTag     = TagType(iota) // post and fund a bounty
	UpdateBountyTag     = TagType(iota) // edit or retitle a bounty
	DeleteBountyTag     = TagType(iota) // withdraw a bounty and refund
	CreateSubmissionTag = TagType(iota) // submit work to a bounty
	SelectSubmissionTag = TagType(iota) // pick the winner and pay out

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Instruction - generic instruction interface
type Instruction interface {
	Tag() TagType
	GetHeader() *Header
	Pack(signer *account.Account) (Packed, error)
}

// byte sizes for various fields
//
// these only bound the wire format, the record limits are enforced
// when the instruction is executed
const (
	maxStringLength    = 1024
	maxListCount       = 64
	maxSignatureLength = 1024
	maxAccountLength   = 64
)

// Header - fields common to every instruction
//
// Accounts is the ordered list of addresses the instruction touches,
// always starting with the signer's wallet
type Header struct {
	Signer    *account.Account  `json:"signer"`       // base58
	Nonce     uint64            `json:"nonce,string"` // to allow repeats of an identical instruction
	Accounts  []address.Address `json:"accounts"`     // base58
	Signature account.Signature `json:"signature"`    // hex
}

// GetHeader - access the common fields
func (header *Header) GetHeader() *Header {
	return header
}

// CreateClient - register a client profile
//
// accounts: signer, client
type CreateClient struct {
	Header
	CompanyName  string `json:"companyName"`
	CompanyEmail string `json:"companyEmail"`
	CompanyLink  string `json:"companyLink"`
}

// UpdateClient - replace a client profile
//
// accounts: signer, client
type UpdateClient struct {
	Header
	CompanyName  string `json:"companyName"`
	CompanyEmail string `json:"companyEmail"`
	CompanyLink  string `json:"companyLink"`
	CompanyBio   string `json:"companyBio"`
}

// DeleteClient - close a client profile
//
// accounts: signer, client
type DeleteClient struct {
	Header
}

// CreateUser - register a user profile
//
// accounts: signer, user
type CreateUser struct {
	Header
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Skills []string `json:"skills"`
}

// UpdateUser - replace a user profile
//
// accounts: signer, user
type UpdateUser struct {
	Header
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Bio    string   `json:"bio"`
	Skills []string `json:"skills"`
}

// DeleteUser - close a user profile
//
// accounts: signer, user
type DeleteUser struct {
	Header
}

// CreateBounty - post a bounty and escrow its reward
//
// accounts: signer, client, bounty, escrow
type CreateBounty struct {
	Header
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Reward         uint64   `json:"reward,string"`
	Deadline       uint64   `json:"deadline"`
	RequiredSkills []string `json:"requiredSkills"`
}

// UpdateBounty - edit description and deadline, optionally retitle
//
// accounts: signer, client, bounty, escrow, new bounty, new escrow
// (the last two repeat the current ones when the title is unchanged)
type UpdateBounty struct {
	Header
	Title       string `json:"title"`
	NewTitle    string `json:"newTitle"`
	Description string `json:"description"`
	Deadline    uint64 `json:"deadline"`
}

// DeleteBounty - withdraw an unanswered bounty
//
// accounts: signer, client, bounty, escrow
type DeleteBounty struct {
	Header
	Title string `json:"title"`
}

// CreateSubmission - submit work to a live bounty
//
// accounts: signer, user, bounty, submission
type CreateSubmission struct {
	Header
	Creator     address.Address `json:"creator"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	WorkUrl     string          `json:"workUrl"`
}

// SelectSubmission - choose the winning submission
//
// accounts: signer, client, bounty, submission, winner user, escrow,
// winner wallet
type SelectSubmission struct {
	Header
	Title  string          `json:"title"`
	Winner address.Address `json:"winner"`
}

// Tag - discriminant
func (*CreateClient) Tag() TagType { return CreateClientTag }

// Tag - discriminant
func (*UpdateClient) Tag() TagType { return UpdateClientTag }

// Tag - discriminant
func (*DeleteClient) Tag() TagType { return DeleteClientTag }

// Tag - discriminant
func (*CreateUser) Tag() TagType { return CreateUserTag }

// Tag - discriminant
func (*UpdateUser) Tag() TagType { return UpdateUserTag }

// Tag - discriminant
func (*DeleteUser) Tag() TagType { return DeleteUserTag }

// Tag - discriminant
func (*CreateBounty) Tag() TagType { return CreateBountyTag }

// Tag - discriminant
func (*UpdateBounty) Tag() TagType { return UpdateBountyTag }

// Tag - discriminant
func (*DeleteBounty) Tag() TagType { return DeleteBountyTag }

// Tag - discriminant
func (*CreateSubmission) Tag() TagType { return CreateSubmissionTag }

// Tag - discriminant
func (*SelectSubmission) Tag() TagType { return SelectSubmissionTag }

// AccountCount - length of the account list for an instruction type
func (t TagType) AccountCount() int {
	switch t {
	case CreateClientTag, UpdateClientTag, DeleteClientTag,
		CreateUserTag, UpdateUserTag, DeleteUserTag:
		return 2
	case CreateBountyTag, DeleteBountyTag, CreateSubmissionTag:
		return 4
	case UpdateBountyTag:
		return 6
	case SelectSubmissionTag:
		return 7
	default:
		return 0
	}
}

var tagNames = map[TagType]string{
	CreateClientTag:     "CreateClient",
	UpdateClientTag:     "UpdateClient",
	DeleteClientTag:     "DeleteClient",
	CreateUserTag:       "CreateUser",
	UpdateUserTag:       "UpdateUser",
	DeleteUserTag:       "DeleteUser",
	CreateBountyTag:     "CreateBounty",
	UpdateBountyTag:     "UpdateBounty",
	DeleteBountyTag:     "DeleteBounty",
	CreateSubmissionTag: "CreateSubmission",
	SelectSubmissionTag: "SelectSubmission",
}

// String - instruction name
func (t TagType) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "*unknown*"
}

// RecordName - the instruction type as text
func RecordName(instruction interface{}) (string, bool) {
	i, ok := instruction.(Instruction)
	if !ok {
		return "*unknown*", false
	}
	name, ok := tagNames[i.Tag()]
	return name, ok
}
