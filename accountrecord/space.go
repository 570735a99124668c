// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accountrecord

import (
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/util"
)

// rent parameters, the deposit keeping a record of a given size alive
const (
	accountOverhead     = 128
	lamportsPerByteYear = 3480
	exemptionYears      = 2
)

func varintSpace(n int) int {
	return len(util.ToVarint64(uint64(n)))
}

func stringSpace(maximum int) int {
	return varintSpace(maximum) + maximum
}

func listSpace(count int, maximum int) int {
	return varintSpace(count) + count*stringSpace(maximum)
}

const (
	uint64Space = util.Varint64MaximumBytes
	boolSpace   = 1
	bumpSpace   = 2
)

var (
	addressSpace = varintSpace(address.Length) + address.Length
	headerSpace  = 2
)

// Space - largest packed size of a record kind
func Space(tag TagType) int {
	switch tag {
	case ClientTag:
		return headerSpace + addressSpace +
			stringSpace(MaxNameLength) + stringSpace(MaxEmailLength) +
			stringSpace(MaxAvatarLength) + stringSpace(MaxLinkLength) +
			stringSpace(MaxBioLength) +
			3*uint64Space + bumpSpace
	case UserTag:
		return headerSpace + addressSpace +
			stringSpace(MaxNameLength) + stringSpace(MaxEmailLength) +
			stringSpace(MaxAvatarLength) + stringSpace(MaxBioLength) +
			listSpace(MaxSkills, MaxSkillLength) +
			4*uint64Space + bumpSpace
	case BountyTag:
		return headerSpace + 5*addressSpace +
			stringSpace(MaxTitleLength) + stringSpace(MaxBountyDescriptionLength) +
			listSpace(MaxSkills, MaxSkillLength) +
			4*uint64Space + 2*boolSpace + bumpSpace
	case SubmissionTag:
		return headerSpace + 3*addressSpace +
			stringSpace(MaxSubmissionDescriptionLength) + stringSpace(MaxWorkUrlLength) +
			bumpSpace
	case EscrowTag:
		return headerSpace + 2*addressSpace + uint64Space + bumpSpace
	default:
		return 0
	}
}

// MinimumBalance - deposit needed to keep space bytes stored
func MinimumBalance(space int) uint64 {
	return uint64(accountOverhead+space) * lamportsPerByteYear * exemptionYears
}

// RentDeposit - deposit taken when a record of this kind is created
//
// escrow records carry none so their balance is exactly the reward
func RentDeposit(tag TagType) uint64 {
	switch tag {
	case ClientTag, UserTag, BountyTag, SubmissionTag:
		return MinimumBalance(Space(tag))
	default:
		return 0
	}
}
