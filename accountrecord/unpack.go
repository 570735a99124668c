// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accountrecord

import (
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/util"
)

type reader struct {
	*util.Unpacker
}

func (r reader) address() address.Address {
	a := address.Address{}
	copy(a[:], r.Fixed(address.Length))
	return a
}

func (r reader) bump() uint8 {
	b := r.Uint64()
	if b > 255 {
		return 0
	}
	return uint8(b)
}

// Tag - discriminant of a packed record without decoding the rest
func (record Packed) Tag() TagType {
	tag, n := util.ClippedVarint64(record, 1, int(InvalidTag)-1)
	if 0 == n {
		return NullTag
	}
	return TagType(tag)
}

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//
//	switch r := result.(type) {
//	case *accountrecord.Bounty:
func (record Packed) Unpack() (Record, error) {

	r := reader{util.NewUnpacker(record)}

	tag := TagType(r.Uint64())
	version := r.Uint64()
	if nil != r.Err() || NullTag == tag || tag >= InvalidTag {
		return nil, fault.ErrNotRecordPack
	}
	if Version != version {
		return nil, fault.ErrRecordVersion
	}

	var result Record

	switch tag {
	case ClientTag:
		result = &Client{
			Authority:      r.address(),
			CompanyName:    r.String(MaxNameLength),
			CompanyEmail:   r.String(MaxEmailLength),
			CompanyAvatar:  r.String(MaxAvatarLength),
			CompanyLink:    r.String(MaxLinkLength),
			CompanyBio:     r.String(MaxBioLength),
			JoinedAt:       r.Uint64(),
			Rewarded:       r.Uint64(),
			BountiesPosted: r.Uint64(),
			Bump:           r.bump(),
		}

	case UserTag:
		result = &User{
			Authority:         r.address(),
			Name:              r.String(MaxNameLength),
			Email:             r.String(MaxEmailLength),
			Avatar:            r.String(MaxAvatarLength),
			Bio:               r.String(MaxBioLength),
			Skills:            r.Strings(MaxSkills, MaxSkillLength),
			JoinedAt:          r.Uint64(),
			Earned:            r.Uint64(),
			BountiesSubmitted: r.Uint64(),
			BountiesCompleted: r.Uint64(),
			Bump:              r.bump(),
		}

	case BountyTag:
		result = &Bounty{
			CreatorWalletKey:      r.address(),
			ClientKey:             r.address(),
			Title:                 r.String(MaxTitleLength),
			Description:           r.String(MaxBountyDescriptionLength),
			Reward:                r.Uint64(),
			Live:                  r.Bool(),
			CreatedAt:             r.Uint64(),
			Deadline:              r.Uint64(),
			RequiredSkills:        r.Strings(MaxSkills, MaxSkillLength),
			NoOfSubmissions:       r.Uint64(),
			SelectedSubmission:    r.address(),
			SelectedUserWalletKey: r.address(),
			EscrowAccount:         r.address(),
			BountyRewarded:        r.Bool(),
			Bump:                  r.bump(),
		}

	case SubmissionTag:
		result = &Submission{
			UserWalletKey: r.address(),
			UserKey:       r.address(),
			BountyKey:     r.address(),
			Description:   r.String(MaxSubmissionDescriptionLength),
			WorkUrl:       r.String(MaxWorkUrlLength),
			Bump:          r.bump(),
		}

	case EscrowTag:
		result = &Escrow{
			Bounty:    r.address(),
			Depositor: r.address(),
			Amount:    r.Uint64(),
			Bump:      r.bump(),
		}
	}

	if nil != r.Err() || 0 != r.Remaining() {
		return nil, fault.ErrNotRecordPack
	}
	return result, nil
}

// UnpackClient - unpack and check the kind
func (record Packed) UnpackClient() (*Client, error) {
	r, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	client, ok := r.(*Client)
	if !ok {
		return nil, fault.ErrNotRecordPack
	}
	return client, nil
}

// UnpackUser - unpack and check the kind
func (record Packed) UnpackUser() (*User, error) {
	r, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	user, ok := r.(*User)
	if !ok {
		return nil, fault.ErrNotRecordPack
	}
	return user, nil
}

// UnpackBounty - unpack and check the kind
func (record Packed) UnpackBounty() (*Bounty, error) {
	r, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	bounty, ok := r.(*Bounty)
	if !ok {
		return nil, fault.ErrNotRecordPack
	}
	return bounty, nil
}

// UnpackSubmission - unpack and check the kind
func (record Packed) UnpackSubmission() (*Submission, error) {
	r, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	submission, ok := r.(*Submission)
	if !ok {
		return nil, fault.ErrNotRecordPack
	}
	return submission, nil
}

// UnpackEscrow - unpack and check the kind
func (record Packed) UnpackEscrow() (*Escrow, error) {
	r, err := record.Unpack()
	if nil != err {
		return nil, err
	}
	escrow, ok := r.(*Escrow)
	if !ok {
		return nil, fault.ErrNotRecordPack
	}
	return escrow, nil
}
