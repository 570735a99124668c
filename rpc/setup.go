// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/counter"
	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/ledger"
	"github.com/bitmark-inc/bountyd/rpc/certificate"
	"github.com/bitmark-inc/bountyd/rpc/handler"
	"github.com/bitmark-inc/bountyd/rpc/listeners"
	"github.com/bitmark-inc/bountyd/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	connectionCount counter.Counter
	listeners       []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the JSON-RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, deriver *address.Deriver) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	ldgr := ledger.Get()
	pools := ledger.Pools()

	tlsConfig, fingerprint, err := certificate.GetFromFiles(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&globalData.connectionCount,
		server.Create(log, version, &globalData.connectionCount, deriver, ldgr, pools),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}

	var httpsListener listeners.Listener
	if 0 != len(httpsConfiguration.Listen) {
		httpsTLS, httpsFingerprint, err := certificate.GetFromFiles(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, httpsFingerprint)

		hdlr := handler.New(
			log,
			server.Create(log, version, &globalData.connectionCount, deriver, ldgr, pools),
			ldgr,
			time.Now(),
			version,
			httpsConfiguration.MaximumConnections,
		)
		httpsListener, err = listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, hdlr)
		if nil != err {
			return err
		}
	}

	globalData.listeners = []listeners.Listener{rpcListener}
	if nil != httpsListener {
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	for _, l := range globalData.listeners {
		if err := l.Serve(); nil != err {
			stopAll()
			return err
		}
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")

	stopAll()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")

	return nil
}

func stopAll() {
	for _, l := range globalData.listeners {
		_ = l.Stop()
	}
	globalData.listeners = nil
}
