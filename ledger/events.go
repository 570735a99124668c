// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/messagebus"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

// tallies committed instructions by kind
type eventData struct {
	sync.RWMutex
	log    *logger.L
	queue  <-chan messagebus.Message
	counts map[string]uint64
}

// Run - background process loop
func (state *eventData) Run(args interface{}, shutdown <-chan struct{}) {
	log := state.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case item, ok := <-state.queue:
			if !ok {
				break loop
			}
			state.process(item)
		}
	}

	log.Info("stopped")
}

// parameters are the transaction id followed by the accounts
func (state *eventData) process(item messagebus.Message) {
	state.Lock()
	state.counts[item.Command] += 1
	state.Unlock()

	if 0 == len(item.Parameters) {
		state.log.Warnf("%s: no transaction id", item.Command)
		return
	}

	txId := transactionrecord.TxId{}
	err := transactionrecord.TxIdFromBytes(&txId, item.Parameters[0])
	if nil != err {
		state.log.Warnf("%s: bad transaction id: %s", item.Command, err)
		return
	}
	state.log.Infof("committed: %s  id: %s  accounts: %d", item.Command, txId, len(item.Parameters)-1)
}

func (state *eventData) snapshot() map[string]uint64 {
	state.RLock()
	defer state.RUnlock()

	result := make(map[string]uint64, len(state.counts))
	for k, v := range state.counts {
		result[k] = v
	}
	return result
}
