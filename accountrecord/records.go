// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accountrecord

import (
	"github.com/bitmark-inc/bountyd/address"
)

// TagType - record discriminant
type TagType uint64

// enumerate the possible records
// this is stored as the first byte of the packed record
const (
	NullTag       TagType = iota // 0 - not a record
	ClientTag     TagType = iota // 1
	UserTag       TagType = iota // 2
	BountyTag     TagType = iota // 3
	SubmissionTag TagType = iota // 4
	EscrowTag     TagType = iota // 5

	// this item must be last
	InvalidTag TagType = iota
)

// Version - layout revision written after the tag
const Version = 1

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Tag() TagType
	Pack() (Packed, error)
	Validate() error
}

// Client - a company posting bounties
type Client struct {
	Authority      address.Address `json:"authority"`
	CompanyName    string          `json:"companyName"`
	CompanyEmail   string          `json:"companyEmail"`
	CompanyAvatar  string          `json:"companyAvatar"`
	CompanyLink    string          `json:"companyLink"`
	CompanyBio     string          `json:"companyBio"`
	JoinedAt       uint64          `json:"joinedAt"`
	Rewarded       uint64          `json:"rewarded"`
	BountiesPosted uint64          `json:"bountiesPosted"`
	Bump           uint8           `json:"bump"`
}

// User - a creator submitting work
type User struct {
	Authority         address.Address `json:"authority"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Avatar            string          `json:"avatar"`
	Bio               string          `json:"bio"`
	Skills            []string        `json:"skills"`
	JoinedAt          uint64          `json:"joinedAt"`
	Earned            uint64          `json:"earned"`
	BountiesSubmitted uint64          `json:"bountiesSubmitted"`
	BountiesCompleted uint64          `json:"bountiesCompleted"`
	Bump              uint8           `json:"bump"`
}

// Bounty - a funded piece of work
//
// SelectedSubmission and SelectedUserWalletKey stay zero until the
// bounty is resolved
type Bounty struct {
	CreatorWalletKey      address.Address `json:"creatorWalletKey"`
	ClientKey             address.Address `json:"clientKey"`
	Title                 string          `json:"title"`
	Description           string          `json:"description"`
	Reward                uint64          `json:"reward"`
	Live                  bool            `json:"live"`
	CreatedAt             uint64          `json:"createdAt"`
	Deadline              uint64          `json:"deadline"`
	RequiredSkills        []string        `json:"requiredSkills"`
	NoOfSubmissions       uint64          `json:"noOfSubmissions"`
	SelectedSubmission    address.Address `json:"selectedSubmission"`
	SelectedUserWalletKey address.Address `json:"selectedUserWalletKey"`
	EscrowAccount         address.Address `json:"escrowAccount"`
	BountyRewarded        bool            `json:"bountyRewarded"`
	Bump                  uint8           `json:"bump"`
}

// Submission - one user's work for one bounty
type Submission struct {
	UserWalletKey address.Address `json:"userWalletKey"`
	UserKey       address.Address `json:"userKey"`
	BountyKey     address.Address `json:"bountyKey"`
	Description   string          `json:"description"`
	WorkUrl       string          `json:"workUrl"`
	Bump          uint8           `json:"bump"`
}

// Escrow - custody of a bounty reward
//
// the funds themselves are the balance of the escrow address, this
// record only ties the address to its bounty
type Escrow struct {
	Bounty    address.Address `json:"bounty"`
	Depositor address.Address `json:"depositor"`
	Amount    uint64          `json:"amount"`
	Bump      uint8           `json:"bump"`
}

// Tag - discriminant
func (*Client) Tag() TagType {
	return ClientTag
}

// Tag - discriminant
func (*User) Tag() TagType {
	return UserTag
}

// Tag - discriminant
func (*Bounty) Tag() TagType {
	return BountyTag
}

// Tag - discriminant
func (*Submission) Tag() TagType {
	return SubmissionTag
}

// Tag - discriminant
func (*Escrow) Tag() TagType {
	return EscrowTag
}

// String - name of the record kind
func (t TagType) String() string {
	switch t {
	case ClientTag:
		return "client"
	case UserTag:
		return "user"
	case BountyTag:
		return "bounty"
	case SubmissionTag:
		return "submission"
	case EscrowTag:
		return "escrow"
	default:
		return "*unknown*"
	}
}

// TagFromName - inverse of String
func TagFromName(name string) (TagType, bool) {
	for t := ClientTag; t < InvalidTag; t += 1 {
		if t.String() == name {
			return t, true
		}
	}
	return NullTag, false
}

// IsResolved - a winner has been paid
func (bounty *Bounty) IsResolved() bool {
	return bounty.BountyRewarded || !bounty.Live
}
