// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring bountyd services
//
// standard golang RPC services can be used on the client side to
// access these services:
//
//	Node.Info             chain, counters and uptime
//	Instruction.Submit    commit one signed instruction
//	Transaction.Status    committed, rejected or unknown
//	Records.Get           any record by address
//	Records.Clients       page through clients
//	Records.Users         page through users
//	Records.Bounties      bounties by creator, client or live flag
//	Records.Submissions   submissions to a bounty or by a user
//	Balance.Get           committed wallet balance
//	Balance.Escrow        custody state of a bounty reward
//	Address.Derive        record address from its seeds
package rpc
