// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package handler - HTTP endpoints of the RPC listener
package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/counter"
	"github.com/bitmark-inc/bountyd/ledger"
)

// Handler - the HTTP paths served
type Handler interface {
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Connections(http.ResponseWriter, *http.Request)
	Root(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

// adapts an http request to the rpc codec
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}

func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}

func (c *internalConnection) Close() error {
	return nil
}

type handler struct {
	log                *logger.L
	server             *rpc.Server
	ledger             ledger.Ledger
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	count              counter.Counter
	maximumConnections uint64
}

// New - create the HTTP handler
func New(log *logger.L, server *rpc.Server, ldgr ledger.Ledger, start time.Time, version string, maximumConnections uint64) Handler {
	return &handler{
		log:                log,
		server:             server,
		ledger:             ldgr,
		start:              start,
		version:            version,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
	}
}

// SetAllow - set the access control for each path
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// Root - anything not matched
func (h *handler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// RPC - a JSON-RPC request as an HTTP POST
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Debugf("serve request error: %s", err)
		sendInternalServerError(w)
	}
}

// Details - the same information as Node.Info for GET requests
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if !h.permitted("details", w, r) {
		return
	}
	defer h.count.Release()

	type reply struct {
		Chain    string          `json:"chain"`
		RPCs     uint64          `json:"rpcs"`
		Counters ledger.Counters `json:"counters"`
		Version  string          `json:"version"`
		Uptime   string          `json:"uptime"`
	}

	sendReply(w, reply{
		Chain:    h.ledger.Chain(),
		RPCs:     h.count.Uint64(),
		Counters: h.ledger.ReadCounters(),
		Version:  h.version,
		Uptime:   time.Since(h.start).String(),
	})
}

// Connections - current HTTP request load
func (h *handler) Connections(w http.ResponseWriter, r *http.Request) {
	if !h.permitted("connections", w, r) {
		return
	}
	defer h.count.Release()

	type reply struct {
		Active  uint64 `json:"active"`
		Maximum uint64 `json:"maximum"`
	}

	sendReply(w, reply{
		Active:  h.count.Uint64(),
		Maximum: h.maximumConnections,
	})
}

// check method and source address then count the request
//
// on true the caller must release the count
func (h *handler) permitted(path string, w http.ResponseWriter, r *http.Request) bool {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return false
	}

	if !h.allowed(path, r.RemoteAddr) {
		h.log.Warnf("deny access: %q to: %s", r.RemoteAddr, path)
		sendForbidden(w)
		return false
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return false
	}
	return true
}

func (h *handler) allowed(path string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, cidr := range h.allow[path] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

type errorReply struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func sendError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorReply{Code: code, Error: message})
}

func sendNotFound(w http.ResponseWriter) {
	sendError(w, http.StatusNotFound, "not found")
}

func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func sendForbidden(w http.ResponseWriter) {
	sendError(w, http.StatusForbidden, "forbidden")
}

func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests))
}

// the status header has already been written at this point
func sendInternalServerError(w http.ResponseWriter) {
	_ = json.NewEncoder(w).Encode(errorReply{Code: http.StatusInternalServerError, Error: "internal server error"})
}

func sendReply(w http.ResponseWriter, reply interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(reply)
}
