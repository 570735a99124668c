// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
//  1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
//  2. ++       = concatenation of byte data
//  3. address  = 32 byte wallet key or derived record address
//  4. txId     = instruction digest as 32 byte SHA3-256(data)
//  5. amount   = big endian uint64 (8 bytes)
//  6. *record* = packed accountrecord data
//
// Records:
//
//	C ++ address           - client records          data: *record*
//	U ++ address           - user records            data: *record*
//	B ++ address           - bounty records          data: *record*
//	S ++ address           - submission records      data: *record*
//	E ++ address           - escrow records          data: *record*
//
// Balances:
//
//	W ++ address           - spendable balance of a wallet or a record (rent deposit or escrowed funds)
//	                         data: amount
//
// Indexes:
//
//	c ++ client ++ bounty          - bounties posted by a client          data: empty
//	d ++ bounty ++ submission      - submissions made to a bounty         data: empty
//	u ++ user ++ submission        - submissions made by a user           data: empty
//
// Instructions:
//
//	T ++ txId              - committed instructions
//	                         data: commit time(8 bytes) ++ packed instruction
//
// Settings:
//
//	G ++ name              - chain name, program id, genesis marker
//
// Testing:
//
//	Z ++ key               - testing data
//
// A Transaction stages every write in a LevelDB batch and commits it
// with a single Write, so readers of the pools never see part of an
// instruction's effects.
package storage
