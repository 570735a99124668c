// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package program - the bounty instruction state machine
//
// Execute applies one verified instruction to a storage transaction.
// Every derived account in the instruction's account list is
// re-derived from its seeds and must match, records are unique by
// address so a create on an occupied address fails, and all
// preconditions are checked before the first write.  Any error leaves
// the caller to abort the transaction so nothing becomes visible.
//
// Funds move only through the balance and escrow packages:
//
//	createBounty:     creator --reward--> escrow   (plus rent deposits)
//	selectSubmission: escrow  --reward--> winner
//	deleteBounty:     escrow  --reward--> creator
package program
