// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accountrecord

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bitmark-inc/bountyd/fault"
)

// field length limits in bytes
const (
	MaxNameLength                  = 32
	MaxEmailLength                 = 100
	MaxAvatarLength                = 32
	MaxLinkLength                  = 100
	MaxBioLength                   = 280
	MaxTitleLength                 = 32
	MaxBountyDescriptionLength     = 500
	MaxSkills                      = 10
	MaxSkillLength                 = 32
	MaxSubmissionDescriptionLength = 500
	MaxWorkUrlLength               = 280
)

// default biographies for new records
const (
	DefaultClientBio = "Hi I'm a new client"
	DefaultUserBio   = "Hi I'm a new user"
)

// Avatar - initials shown in place of a picture
//
// the first letter of each of the first two words, upper-cased, or the
// first two characters of a single word name
func Avatar(name string) string {
	words := strings.FieldsFunc(strings.TrimSpace(name), func(r rune) bool {
		return ' ' == r
	})
	switch len(words) {
	case 0:
		return ""
	case 1:
		r := []rune(words[0])
		if len(r) > 2 {
			r = r[:2]
		}
		return string(r)
	default:
		a, _ := utf8.DecodeRuneInString(words[0])
		b, _ := utf8.DecodeRuneInString(words[1])
		return string([]rune{unicode.ToUpper(a), unicode.ToUpper(b)})
	}
}

// ValidateSkills - count and length of a skill list
func ValidateSkills(skills []string) error {
	if len(skills) > MaxSkills {
		return fault.ErrSkillsTooMany
	}
	for _, s := range skills {
		if len(s) > MaxSkillLength {
			return fault.ErrSkillTooLong
		}
	}
	return nil
}

func between(s string, minimum int, maximum int) bool {
	return len(s) >= minimum && len(s) <= maximum
}

// Validate - field bounds of a client
func (client *Client) Validate() error {
	if "" == strings.TrimSpace(client.CompanyName) || len(client.CompanyName) > MaxNameLength {
		return fault.ErrCompanyNameInvalid
	}
	if !between(client.CompanyEmail, 1, MaxEmailLength) {
		return fault.ErrCompanyEmailInvalid
	}
	if !between(client.CompanyLink, 1, MaxLinkLength) {
		return fault.ErrCompanyLinkInvalid
	}
	if len(client.CompanyAvatar) > MaxAvatarLength {
		return fault.ErrCompanyNameInvalid
	}
	if len(client.CompanyBio) > MaxBioLength {
		return fault.ErrBioTooLong
	}
	return nil
}

// Validate - field bounds of a user
func (user *User) Validate() error {
	if "" == strings.TrimSpace(user.Name) || len(user.Name) > MaxNameLength {
		return fault.ErrNameInvalid
	}
	if !between(user.Email, 1, MaxEmailLength) {
		return fault.ErrEmailInvalid
	}
	if len(user.Avatar) > MaxAvatarLength {
		return fault.ErrNameInvalid
	}
	if len(user.Bio) > MaxBioLength {
		return fault.ErrBioTooLong
	}
	return ValidateSkills(user.Skills)
}

// Validate - field bounds of a bounty
func (bounty *Bounty) Validate() error {
	if !between(bounty.Title, 1, MaxTitleLength) {
		return fault.ErrTitleInvalid
	}
	if len(bounty.Description) > MaxBountyDescriptionLength {
		return fault.ErrDescriptionTooLong
	}
	return ValidateSkills(bounty.RequiredSkills)
}

// Validate - field bounds of a submission
func (submission *Submission) Validate() error {
	if len(submission.Description) > MaxSubmissionDescriptionLength {
		return fault.ErrDescriptionTooLong
	}
	if !between(submission.WorkUrl, 1, MaxWorkUrlLength) {
		return fault.ErrWorkUrlInvalid
	}
	return nil
}

// Validate - an escrow must belong to a bounty
func (escrow *Escrow) Validate() error {
	if escrow.Bounty.IsZero() {
		return fault.ErrEscrowMismatch
	}
	return nil
}
