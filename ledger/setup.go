// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/background"
	"github.com/bitmark-inc/bountyd/chain"
	"github.com/bitmark-inc/bountyd/counter"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/limitedset"
	"github.com/bitmark-inc/bountyd/messagebus"
	"github.com/bitmark-inc/bountyd/storage"
)

const (
	rejectedHistory = 1000 // recently rejected transaction ids kept for status queries
	eventQueueSize  = 1000
)

// keys in the settings pool
var (
	chainKey    = []byte("chain")
	programKey  = []byte("program")
	strategyKey = []byte("hash")
)

// Configuration - values fixed for the life of the ledger
type Configuration struct {
	Chain   string
	Deriver *address.Deriver
	Clock   func() time.Time // defaults to time.Now
}

// globals
type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	initialised bool

	chain   string
	testnet bool
	deriver *address.Deriver
	clock   func() time.Time

	locks    lockSet
	rejected *limitedset.LimitedSet

	accepted counter.Counter
	refused  counter.Counter

	events     eventData
	background *background.T
}

// gobal storage
var globalData globalDataType

// Initialise - check the database belongs to this chain and program,
// then start accepting instructions
func Initialise(configuration Configuration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}
	if !chain.Valid(configuration.Chain) {
		return fault.ErrInvalidChain
	}
	if nil == configuration.Deriver {
		return fault.ErrMissingParameters
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	err := checkSettings(configuration)
	if nil != err {
		globalData.log.Errorf("settings: %s", err)
		return err
	}

	globalData.chain = configuration.Chain
	globalData.testnet = chain.IsTesting(configuration.Chain)
	globalData.deriver = configuration.Deriver
	globalData.clock = configuration.Clock
	if nil == globalData.clock {
		globalData.clock = time.Now
	}

	globalData.locks = lockSet{
		accounts: make(map[address.Address]struct{}),
	}
	globalData.rejected = limitedset.New(rejectedHistory)
	globalData.accepted.Reset()
	globalData.refused.Reset()

	globalData.events = eventData{
		log:    logger.New("ledger-events"),
		queue:  messagebus.Bus.Committed.Chan(eventQueueSize),
		counts: make(map[string]uint64),
	}

	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.events,
	}
	globalData.background = background.Start(processes, &globalData)

	globalData.initialised = true
	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	// waits for running submissions as each holds the read lock
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	globalData.initialised = false

	globalData.log.Info("shutting down…")

	globalData.background.Stop()
	messagebus.Bus.Committed.Release(globalData.events.queue)

	globalData.log.Info("finished")
	return nil
}

// the first start records chain, program and hash strategy; every
// later start must match them
func checkSettings(configuration Configuration) error {
	expected := []struct {
		key   []byte
		value []byte
	}{
		{chainKey, []byte(configuration.Chain)},
		{programKey, configuration.Deriver.Program().Bytes()},
		{strategyKey, []byte(configuration.Deriver.Strategy().String())},
	}

	missing := 0
	for _, item := range expected {
		stored := storage.Pool.Settings.Get(item.key)
		if nil == stored {
			missing += 1
			continue
		}
		if !bytes.Equal(stored, item.value) {
			return fault.ErrSettingsMismatch
		}
	}
	if 0 == missing {
		return nil
	}
	if missing != len(expected) {
		return fault.ErrSettingsMismatch
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	for _, item := range expected {
		trx.Put(storage.Pool.Settings, item.key, item.value)
	}
	return trx.Commit()
}

// Counters - ledger activity since start
type Counters struct {
	Accepted       uint64            `json:"accepted"`
	Rejected       uint64            `json:"rejected"`
	InProgress     int               `json:"inProgress"`
	LockedAccounts int               `json:"lockedAccounts"`
	Instructions   map[string]uint64 `json:"instructions"`
}

// ReadCounters - snapshot of the counters
func ReadCounters() Counters {
	submissions, accounts := globalData.locks.size()
	return Counters{
		Accepted:       globalData.accepted.Uint64(),
		Rejected:       globalData.refused.Uint64(),
		InProgress:     submissions,
		LockedAccounts: accounts,
		Instructions:   globalData.events.snapshot(),
	}
}

// Chain - name of the chain in use
func Chain() string {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.chain
}
