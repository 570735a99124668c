// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queuing system for internally generated events
//
// the ledger announces each committed instruction here; listeners that
// fall behind lose messages rather than stall the ledger
package messagebus
