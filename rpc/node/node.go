// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/counter"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/ledger"
	"github.com/bitmark-inc/bountyd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Ledger  ledger.Ledger
	counter *counter.Counter
}

// New - node information service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, ldgr ledger.Ledger) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Ledger:  ldgr,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain    string          `json:"chain"`
	RPCs     uint64          `json:"rpcs"`
	Counters ledger.Counters `json:"counters"`
	Version  string          `json:"version"`
	Uptime   string          `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Ledger {
		return fault.ErrNotInitialised
	}

	reply.Chain = node.Ledger.Chain()
	reply.RPCs = node.counter.Uint64()
	reply.Counters = node.Ledger.ReadCounters()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
