// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"crypto/sha256"
	"hash"
	"strings"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/bountyd/fault"
)

// HashStrategy - digest used for address derivation
type HashStrategy int

// available strategies
const (
	SHA256 HashStrategy = iota
	SHA3256
	BLAKE3
)

// names as used in configuration files
const (
	SHA256Name  = "sha256"
	SHA3256Name = "sha3-256"
	BLAKE3Name  = "blake3"
)

// HashStrategyFromName - parse a configured strategy name,
// empty selects the default
func HashStrategyFromName(name string) (HashStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SHA256Name:
		return SHA256, nil
	case SHA3256Name, "sha3":
		return SHA3256, nil
	case BLAKE3Name:
		return BLAKE3, nil
	default:
		return SHA256, fault.ErrInvalidHashStrategy
	}
}

// String - configuration name of the strategy
func (s HashStrategy) String() string {
	switch s {
	case SHA256:
		return SHA256Name
	case SHA3256:
		return SHA3256Name
	case BLAKE3:
		return BLAKE3Name
	default:
		return "unknown"
	}
}

func (s HashStrategy) newHash() hash.Hash {
	switch s {
	case SHA3256:
		return sha3.New256()
	case BLAKE3:
		return blake3.New()
	default:
		return sha256.New()
	}
}
