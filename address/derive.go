// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/bitmark-inc/bountyd/fault"
)

// DefaultProgramID - program id used when none is configured
const DefaultProgramID = "3J4pJELCCwVFjD58iBUUa46pmrZNXwkWGwQkYm8pAc4j"

// limits on the seed list
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

// role tags, the first seed of every derived address
const (
	ClientTag     = "client"
	UserTag       = "user"
	BountyTag     = "bounty"
	SubmissionTag = "submission"
	EscrowTag     = "escrow"
)

const marker = "ProgramDerivedAddress"

// Deriver - computes derived addresses for one program
type Deriver struct {
	strategy HashStrategy
	program  Address
}

// NewDeriver - create a deriver for a program id and strategy
func NewDeriver(strategy HashStrategy, program Address) *Deriver {
	return &Deriver{
		strategy: strategy,
		program:  program,
	}
}

// Program - id of the program owning the derived addresses
func (d *Deriver) Program() Address {
	return d.program
}

// Strategy - the hash in use
func (d *Deriver) Strategy() HashStrategy {
	return d.strategy
}

// Create - address for exactly these seeds (the bump, if any, is
// already the last seed)
//
// fails with ErrNoViableBump if the digest lies on the curve
func (d *Deriver) Create(seeds ...[]byte) (Address, error) {
	if len(seeds) > MaxSeeds {
		return Zero, fault.ErrSeedCountTooLarge
	}
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return Zero, fault.ErrInvalidSeedLength
		}
	}

	h := d.strategy.newHash()
	for _, seed := range seeds {
		h.Write(seed)
	}
	h.Write(d.program[:])
	h.Write([]byte(marker))
	digest := h.Sum(nil)

	if isOnCurve(digest[:Length]) {
		return Zero, fault.ErrNoViableBump
	}
	a := Address{}
	copy(a[:], digest)
	return a, nil
}

// Find - search bumps from 255 downwards for the first off curve address
func (d *Deriver) Find(seeds ...[]byte) (Address, uint8, error) {
	if len(seeds) >= MaxSeeds {
		return Zero, 0, fault.ErrSeedCountTooLarge
	}

	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	for bump := 255; bump >= 0; bump -= 1 {
		withBump[len(seeds)] = []byte{byte(bump)}
		a, err := d.Create(withBump...)
		if nil == err {
			return a, uint8(bump), nil
		}
		if fault.ErrNoViableBump != err {
			return Zero, 0, err
		}
	}
	return Zero, 0, fault.ErrNoViableBump
}

// Client - (client, authority)
func (d *Deriver) Client(authority Address) (Address, uint8, error) {
	return d.Find([]byte(ClientTag), authority[:])
}

// User - (user, authority)
func (d *Deriver) User(authority Address) (Address, uint8, error) {
	return d.Find([]byte(UserTag), authority[:])
}

// Bounty - (bounty, title, creator)
func (d *Deriver) Bounty(title string, creator Address) (Address, uint8, error) {
	return d.Find([]byte(BountyTag), []byte(title), creator[:])
}

// Submission - (submission, submitter, bounty)
func (d *Deriver) Submission(submitter Address, bounty Address) (Address, uint8, error) {
	return d.Find([]byte(SubmissionTag), submitter[:], bounty[:])
}

// Escrow - (escrow, bounty)
func (d *Deriver) Escrow(bounty Address) (Address, uint8, error) {
	return d.Find([]byte(EscrowTag), bounty[:])
}
