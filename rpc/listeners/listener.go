// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - TLS endpoints for the client RPC services
package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/fault"
)

// Listener - a set of bound sockets serving requests
type Listener interface {
	Serve() error
	Stop() error
}

// "*:PORT" listens on tcp4 and tcp6 as "[::]:PORT"
func expandListen(listen string) string {
	if '*' == listen[0] {
		return "[::]" + ":" + strings.Split(listen, ":")[1]
	}
	return listen
}

// determine the network for each listen address, rewriting wildcards
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			return nil, fault.ErrInvalidIpAddress
		}
		if '*' == listen[0] {
			addrs[i] = expandListen(listen)
			listen = "::"
			parsed[i] = "tcp"
		} else if '[' == listen[0] {
			listen = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		} else {
			listen = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(listen); nil == ip {
			err := fault.ErrInvalidIpAddress
			log.Errorf("rpc server listen error: %s", err)
			return nil, err
		}
	}

	return parsed, nil
}
