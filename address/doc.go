// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - 32 byte record and wallet addresses
//
// Wallet addresses are ed25519 public keys.  Record addresses are
// derived from a role tag, some seeds and the program id:
//
//	for bump = 255 down to 0:
//	    digest = H(seed[0] ++ ... ++ seed[n] ++ [bump] ++ programId ++ "ProgramDerivedAddress")
//	    if digest does not decode as an ed25519 point: return digest, bump
//
// so no private key can exist for a derived address and deriving from
// the same seeds always gives the same address.  H defaults to SHA-256
// which matches addresses produced by existing wallets; SHA3-256 and
// BLAKE3 are selectable for private chains.
package address
