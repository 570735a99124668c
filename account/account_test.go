// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bountyd/account"
	"github.com/bitmark-inc/bountyd/address"
	"github.com/bitmark-inc/bountyd/fault"
)

type accountTest struct {
	testnet       bool
	zero          bool
	publicKey     []byte
	base58Account string
}

var testAccount = []accountTest{
	{
		testnet:       false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e"),
		base58Account: "fUjtNvmUJn7yJ7PVP7NT2FZbKDrudFxLVBHkwLJFgKWmGsPNVi",
	},
	{
		testnet:       true,
		zero:          true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33",
	},
	{
		testnet:       false,
		zero:          true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "a3ezwdYVEVrHwszQrYzDTCAZwUD3yKtNsCq9YhEu97bPaGAKy1",
	},
}

var testInvalidAccountFromBase58 = []struct {
	str string
	err error
}{
	{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.ErrCannotDecodeAccount}, // invalid base58 string
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLDj", fault.ErrChecksumMismatch},    // checksum mismatch
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLC", fault.ErrChecksumMismatch},     // truncated
	{"27t9x9hU5EMi5ufKgsuyQjVpCKsC4TeBABoKpXGH3vMjUkHBdJB", fault.ErrInvalidKeyType},     // undefined key algorithm
	{"YqVxD4vazrrnxnLH2MzCHJedPPz1VKHnKbVfya39nF96ABAYes", fault.ErrNotPublicKey},        // private key variant
	{"8etgkPeUxrduy3W3QLFm6ByK1gagTzp2aTRDwfGtknS6sB8W1", fault.ErrInvalidKeyLength},     // short key
	{"2g", fault.ErrNotPublicKey}, // too short for a checksum
}

func TestValid(t *testing.T) {
	for index, test := range testAccount {
		testnet := byte(0x00)
		if test.testnet {
			testnet = 0x02
		}

		buffer := append([]byte{account.ED25519<<4 | 0x01 | testnet}, test.publicKey...)
		acc, err := account.AccountFromBytes(buffer)
		if !assert.Nil(t, err, "%d: from bytes", index) {
			continue
		}
		assert.Equal(t, buffer, acc.Bytes(), "%d: bytes", index)
		assert.Equal(t, test.base58Account, acc.String(), "%d: base58", index)
		assert.Equal(t, test.zero, acc.IsZero(), "%d: zero", index)
		assert.Equal(t, test.testnet, acc.IsTesting(), "%d: testnet", index)
	}
}

func TestValidBase58(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.AccountFromBase58(test.base58Account)
		if !assert.Nil(t, err, "%d: from base58", index) {
			continue
		}
		assert.Equal(t, test.testnet, acc.IsTesting(), "%d: testnet", index)
		assert.Equal(t, account.ED25519, acc.KeyType(), "%d: key type", index)
		assert.Equal(t, test.publicKey, []byte(acc.PublicKey), "%d: public key", index)
		assert.Equal(t, test.publicKey, acc.Address().Bytes(), "%d: address", index)

		j := `"` + test.base58Account + `"`
		var a account.Account
		err = json.Unmarshal([]byte(j), &a)
		assert.Nil(t, err, "%d: from JSON", index)

		buffer, err := json.Marshal(a)
		assert.Nil(t, err, "%d: to JSON", index)
		assert.Equal(t, j, string(buffer), "%d: JSON", index)
	}
}

func TestInvalidBase58(t *testing.T) {
	for index, test := range testInvalidAccountFromBase58 {
		_, err := account.AccountFromBase58(test.str)
		assert.Equal(t, test.err, err, "%d: %s", index, test.str)
	}
}

func TestFromAddress(t *testing.T) {
	a, err := address.FromBytes(testAccount[1].publicKey)
	assert.Nil(t, err, "address")

	acc := account.FromAddress(a, true)
	assert.Equal(t, testAccount[1].base58Account, acc.String(), "account text")
	assert.Equal(t, a, acc.Address(), "address round trip")
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}
