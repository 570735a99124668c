// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/bountyd/storage"
)

// Handles - read access to committed state for the query services
type Handles struct {
	Clients           storage.Handle
	Users             storage.Handle
	Bounties          storage.Handle
	Submissions       storage.Handle
	Escrows           storage.Handle
	Balances          storage.Handle
	ClientBounties    storage.Handle
	BountySubmissions storage.Handle
	UserSubmissions   storage.Handle
	Transactions      storage.Handle
}

// Pools - handles on the open database
func Pools() Handles {
	return Handles{
		Clients:           storage.Pool.Clients,
		Users:             storage.Pool.Users,
		Bounties:          storage.Pool.Bounties,
		Submissions:       storage.Pool.Submissions,
		Escrows:           storage.Pool.Escrows,
		Balances:          storage.Pool.Balances,
		ClientBounties:    storage.Pool.ClientBounties,
		BountySubmissions: storage.Pool.BountySubmissions,
		UserSubmissions:   storage.Pool.UserSubmissions,
		Transactions:      storage.Pool.Transactions,
	}
}
