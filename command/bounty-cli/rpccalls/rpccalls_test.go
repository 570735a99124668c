// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"encoding/json"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/ledger"
	"github.com/bitmark-inc/bountyd/rpc/balance"
	"github.com/bitmark-inc/bountyd/rpc/instruction"
	"github.com/bitmark-inc/bountyd/rpc/node"
	"github.com/bitmark-inc/bountyd/rpc/records"
	"github.com/bitmark-inc/bountyd/rpc/transaction"
	"github.com/bitmark-inc/bountyd/transactionrecord"
)

type fakeNode struct{}

func (*fakeNode) Info(_ *node.InfoArguments, reply *node.InfoReply) error {
	reply.Chain = "local"
	reply.Version = "v1"
	return nil
}

type fakeRecords struct{}

// FakeBody - reply types must be exported for net/rpc
type FakeBody struct {
	Title string `json:"title"`
}

// FakeEntry - a record reply with a concrete body
type FakeEntry struct {
	Kind    string          `json:"kind"`
	Address address.Address `json:"address"`
	Balance uint64          `json:"balance,string"`
	Record  FakeBody        `json:"record"`
}

func (*fakeRecords) Get(arguments *records.GetArguments, reply *FakeEntry) error {
	reply.Kind = "bounty"
	reply.Address = arguments.Address
	reply.Balance = 42
	reply.Record = FakeBody{Title: "Logo"}
	return nil
}

func (*fakeRecords) Bounties(arguments *records.BountiesArguments, reply *struct {
	Records   []FakeEntry     `json:"records"`
	NextStart address.Address `json:"nextStart"`
}) error {
	reply.Records = []FakeEntry{{Kind: "bounty", Address: *arguments.Creator}}
	reply.NextStart = *arguments.Creator
	return nil
}

type fakeInstruction struct{}

func (*fakeInstruction) Submit(arguments *instruction.SubmitArguments, reply *instruction.SubmitReply) error {
	reply.TxId = arguments.Packed.MakeTxId()
	reply.Instruction = "CreateClient"
	return nil
}

type fakeTransaction struct{}

func (*fakeTransaction) Status(arguments *transaction.Arguments, reply *struct {
	Status ledger.TrackingStatus `json:"status"`
	Record FakeBody              `json:"record"`
}) error {
	reply.Status = ledger.TrackingCommitted
	reply.Record = FakeBody{Title: arguments.TxId.String()}
	return nil
}

type fakeBalance struct{}

func (*fakeBalance) Get(arguments *balance.GetArguments, reply *balance.GetReply) error {
	reply.Address = arguments.Address
	reply.Balance = 2500000000
	reply.Formatted = "2.5"
	return nil
}

func setupClient(t *testing.T, verbose bool) (*Client, *bytes.Buffer) {
	server := rpc.NewServer()
	for name, service := range map[string]interface{}{
		"Node":        &fakeNode{},
		"Records":     &fakeRecords{},
		"Instruction": &fakeInstruction{},
		"Transaction": &fakeTransaction{},
		"Balance":     &fakeBalance{},
	} {
		if err := server.RegisterName(name, service); nil != err {
			t.Fatalf("register: %s error: %s", name, err)
		}
	}

	serverConn, clientConn := net.Pipe()
	go server.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	buffer := &bytes.Buffer{}
	return newClient(clientConn, verbose, buffer), buffer
}

func TestGetInfo(t *testing.T) {
	client, buffer := setupClient(t, false)
	defer client.Close()

	reply, err := client.GetInfo()
	assert.Nil(t, err, "wrong GetInfo")
	assert.Equal(t, "local", reply.Chain, "wrong chain")
	assert.Equal(t, "v1", reply.Version, "wrong version")
	assert.Equal(t, 0, buffer.Len(), "output when not verbose")
}

func TestGetRecordVerbose(t *testing.T) {
	client, buffer := setupClient(t, true)
	defer client.Close()

	a := address.Address{1, 2, 3}
	reply, err := client.GetRecord("bounty", a)
	assert.Nil(t, err, "wrong GetRecord")
	assert.Equal(t, a, reply.Address, "wrong address")
	assert.Equal(t, uint64(42), reply.Balance, "wrong balance")

	body := FakeBody{}
	assert.Nil(t, json.Unmarshal(reply.Record, &body), "record not JSON")
	assert.Equal(t, "Logo", body.Title, "wrong record")

	assert.Contains(t, buffer.String(), "Records.Get Request:", "no request trace")
	assert.Contains(t, buffer.String(), "Records.Get Reply:", "no reply trace")
}

func TestListBounties(t *testing.T) {
	client, _ := setupClient(t, false)
	defer client.Close()

	creator := address.Address{9}
	reply, err := client.ListBounties(records.BountiesArguments{Creator: &creator, Count: 10})
	assert.Nil(t, err, "wrong ListBounties")
	assert.Equal(t, 1, len(reply.Records), "wrong count")
	assert.Equal(t, creator, reply.NextStart, "wrong next start")
}

func TestSubmitAndStatus(t *testing.T) {
	client, _ := setupClient(t, false)
	defer client.Close()

	packed := transactionrecord.Packed{1, 2, 3}
	result, err := client.Submit(packed)
	assert.Nil(t, err, "wrong Submit")
	assert.Equal(t, packed.MakeTxId(), result.TxId, "wrong txId")

	status, err := client.GetTransactionStatus(result.TxId)
	assert.Nil(t, err, "wrong GetTransactionStatus")
	assert.Equal(t, ledger.TrackingCommitted, status.Status, "wrong status")
	assert.Contains(t, string(status.Record), result.TxId.String(), "wrong record")
}

func TestGetBalance(t *testing.T) {
	client, _ := setupClient(t, false)
	defer client.Close()

	reply, err := client.GetBalance(address.Address{7})
	assert.Nil(t, err, "wrong GetBalance")
	assert.Equal(t, "2.5", reply.Formatted, "wrong formatted")
}

func TestUnknownMethod(t *testing.T) {
	client, _ := setupClient(t, false)
	defer client.Close()

	_, err := client.GetEscrow(address.Address{7})
	assert.NotNil(t, err, "call to missing service succeeded")
}
