// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/counter"
	"github.com/bitmark-inc/bountyd/ledger"
	"github.com/bitmark-inc/bountyd/rpc/balance"
	"github.com/bitmark-inc/bountyd/rpc/derive"
	"github.com/bitmark-inc/bountyd/rpc/instruction"
	"github.com/bitmark-inc/bountyd/rpc/node"
	"github.com/bitmark-inc/bountyd/rpc/records"
	"github.com/bitmark-inc/bountyd/rpc/transaction"
)

// Create - an RPC server with every client service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, deriver *address.Deriver, ldgr ledger.Ledger, pools ledger.Handles) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(node.New(log, start, version, rpcCount, ldgr))
	_ = server.Register(transaction.New(log, ldgr))
	_ = server.Register(instruction.New(log, ldgr))
	_ = server.Register(records.New(log, pools))
	_ = server.Register(balance.New(log, pools, deriver))
	_ = server.Register(derive.New(log, deriver))

	return server
}
