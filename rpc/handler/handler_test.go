// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net"
	"net/http"
	"net/http/httptest"
	"net/rpc"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/chain"
	"github.com/bitmark-inc/bountyd/ledger"
	"github.com/bitmark-inc/bountyd/rpc/fixtures"
	"github.com/bitmark-inc/bountyd/rpc/handler"
	"github.com/bitmark-inc/bountyd/rpc/mocks"
)

const (
	notAllowed      = "method not allowed"
	tooManyRequests = "Too Many Requests"
)

type eResp struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type jResp struct {
	ID     int         `json:"id"`
	Result int         `json:"result"`
	Error  interface{} `json:"error"`
}

type jReq struct {
	ID     int      `json:"id"`
	Method string   `json:"method"`
	Params []AddArg `json:"params"`
}

type Add struct{}
type AddArg struct {
	A int `json:"A"`
	B int `json:"B"`
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func newHandler(s *rpc.Server, l ledger.Ledger, maximum uint64) handler.Handler {
	return handler.New(
		logger.New(fixtures.LogCategory),
		s,
		l,
		time.Now(),
		"1.0",
		maximum,
	)
}

// httptest requests arrive from 192.0.2.1
func allowTest(h handler.Handler, path string) {
	allow := make(map[string][]*net.IPNet)
	_, ipNet, _ := net.ParseCIDR("192.0.2.1/32")
	allow[path] = []*net.IPNet{ipNet}
	h.SetAllow(allow)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) eResp {
	var j eResp
	err := json.NewDecoder(w.Result().Body).Decode(&j)
	assert.Nil(t, err, "wrong json")
	return j
}

func TestRoot(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(rpc.NewServer(), nil, 5)

	req := httptest.NewRequest("GET", "http://not.found", nil)
	w := httptest.NewRecorder()
	h.Root(w, req)

	j := decodeError(t, w)
	assert.Equal(t, "not found", j.Error, "wrong response")
	assert.Equal(t, http.StatusNotFound, j.Code, "wrong http code")
}

func TestRPC(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	s := rpc.NewServer()
	_ = s.Register(Add{})

	h := newHandler(s, nil, 5)

	add := AddArg{
		A: 1,
		B: 2,
	}
	data, _ := json.Marshal(jReq{
		ID:     5,
		Method: "Add.Add",
		Params: []AddArg{add},
	})

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	resp := w.Result()
	var j jResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, 5, j.ID, "wrong id")
	assert.Equal(t, add.A+add.B, j.Result, "wrong result")
	assert.Nil(t, j.Error, "wrong error")
}

func TestRPCWhenWrongHTTPMethod(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(rpc.NewServer(), nil, 5)

	req := httptest.NewRequest("GET", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.RPC(w, req)

	assert.Equal(t, notAllowed, decodeError(t, w).Error, "wrong method")
}

func TestRPCWhenTooManyConnections(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(rpc.NewServer(), nil, 0)

	req := httptest.NewRequest("POST", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.RPC(w, req)

	j := decodeError(t, w)
	assert.Equal(t, tooManyRequests, j.Error, "wrong error")
	assert.Equal(t, http.StatusTooManyRequests, j.Code, "wrong code")
}

func TestRPCWhenServeError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(rpc.NewServer(), nil, 5)

	data, _ := json.Marshal(jReq{})

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	b, _ := ioutil.ReadAll(w.Result().Body)
	assert.Contains(t, string(b), "internal server error", "wrong response")
}

func TestConnections(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(rpc.NewServer(), nil, 3)
	allowTest(h, "connections")

	req := httptest.NewRequest("GET", "http://test.com", nil)
	w := httptest.NewRecorder()
	h.Connections(w, req)

	var reply struct {
		Active  uint64 `json:"active"`
		Maximum uint64 `json:"maximum"`
	}
	err := json.NewDecoder(w.Result().Body).Decode(&reply)
	assert.Nil(t, err, "wrong json")
	assert.Equal(t, uint64(1), reply.Active, "wrong active count")
	assert.Equal(t, uint64(3), reply.Maximum, "wrong maximum")
}

func TestConnectionsWhenWrongHTTPMethod(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(rpc.NewServer(), nil, 5)
	allowTest(h, "connections")

	req := httptest.NewRequest("POST", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.Connections(w, req)

	assert.Equal(t, notAllowed, decodeError(t, w).Error, "wrong method")
}

func TestConnectionsWhenNotAllow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(rpc.NewServer(), nil, 5)
	allowTest(h, "details")

	req := httptest.NewRequest("GET", "http://test.com", nil)
	w := httptest.NewRecorder()
	h.Connections(w, req)

	assert.Equal(t, "forbidden", decodeError(t, w).Error, "wrong not allow")
}

func TestDetails(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().Chain().Return(chain.Local).Times(1)
	l.EXPECT().ReadCounters().Return(ledger.Counters{
		Accepted: 7,
		Rejected: 2,
		Instructions: map[string]uint64{
			"createBounty": 7,
		},
	}).Times(1)

	h := newHandler(rpc.NewServer(), l, 10)
	allowTest(h, "details")

	req := httptest.NewRequest("GET", "http://test.com", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	var reply struct {
		Chain    string          `json:"chain"`
		Counters ledger.Counters `json:"counters"`
		Version  string          `json:"version"`
	}
	err := json.NewDecoder(w.Result().Body).Decode(&reply)
	assert.Nil(t, err, "wrong json")
	assert.Equal(t, chain.Local, reply.Chain, "wrong chain")
	assert.Equal(t, uint64(7), reply.Counters.Accepted, "wrong accepted")
	assert.Equal(t, uint64(2), reply.Counters.Rejected, "wrong rejected")
	assert.Equal(t, uint64(7), reply.Counters.Instructions["createBounty"], "wrong instruction count")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
}

func TestDetailsWhenWrongHTTPMethod(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(rpc.NewServer(), nil, 5)

	req := httptest.NewRequest("POST", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	assert.Equal(t, notAllowed, decodeError(t, w).Error, "wrong method")
}

func TestDetailsWhenNotAllow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(rpc.NewServer(), nil, 5)

	req := httptest.NewRequest("GET", "http://test.com", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	assert.Equal(t, "forbidden", decodeError(t, w).Error, "wrong not allow")
}

func TestDetailsWhenTooManyConnections(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h := newHandler(rpc.NewServer(), nil, 0)
	allowTest(h, "details")

	req := httptest.NewRequest("GET", "http://not.exist", nil)
	w := httptest.NewRecorder()
	h.Details(w, req)

	assert.Equal(t, tooManyRequests, decodeError(t, w).Error, "wrong error")
}
