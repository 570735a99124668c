// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - accepts signed instructions and commits them
//
// each submission:
//  1. is unpacked and its signature checked by re-packing
//  2. locks every account it names, failing at once if another
//     submission holds any of them
//  3. runs the program inside one storage transaction that also
//     records the transaction id
//  4. commits in a single batch write, then announces the result on
//     the committed message bus
package ledger
