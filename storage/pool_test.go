// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/storage"
)

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

func fillPool(p *storage.PoolHandle) {
	p.Put([]byte("key-one"), []byte("data-one"))
	p.Put([]byte("key-two"), []byte("data-two"))
	p.Put([]byte("key-remove-me"), []byte("to be deleted"))
	p.Delete([]byte("key-remove-me"))
	p.Put([]byte("key-three"), []byte("data-three"))
	p.Put([]byte("key-four"), []byte("data-four"))
	p.Put([]byte("key-five"), []byte("data-five"))
	p.Put([]byte("key-six"), []byte("data-six"))
	p.Put([]byte("key-seven"), []byte("data-seven"))
	p.Put([]byte("key-one"), []byte("data-one(NEW)")) // duplicate
}

func TestPool(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	fillPool(p)

	data, err := p.NewFetchCursor().Fetch(20)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, expectedElements, data, "pool contents")

	assert.True(t, p.Has([]byte("key-two")), "has")
	assert.False(t, p.Has([]byte("key-remove-me")), "deleted key")
	assert.Nil(t, p.Get([]byte("/nonexistent")), "missing key")

	// other pools are not affected
	assert.Nil(t, storage.Pool.Clients.Get([]byte("key-two")), "wrong pool")

	// restart keeps data
	storage.Finalise()
	err = storage.Initialise(databaseFileName(), storage.ReadWrite)
	assert.Nil(t, err, "reopen")
	data, err = storage.Pool.TestData.NewFetchCursor().Fetch(20)
	assert.Nil(t, err, "fetch after reopen")
	assert.Equal(t, expectedElements, data, "pool contents after reopen")
}

func TestFetchInPages(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	fillPool(p)

	cursor := p.NewFetchCursor()
	all := []storage.Element{}
	for {
		page, err := cursor.Fetch(3)
		assert.Nil(t, err, "fetch")
		if 0 == len(page) {
			break
		}
		assert.True(t, len(page) <= 3, "page size")
		all = append(all, page...)
	}
	assert.Equal(t, expectedElements, all, "paged contents")

	_, err := cursor.Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")

	var nilCursor *storage.FetchCursor
	_, err = nilCursor.Fetch(1)
	assert.Equal(t, fault.ErrInvalidCursor, err, "nil cursor")
}

func TestSeekAndPrefix(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	fillPool(p)

	data, err := p.NewFetchCursor().Seek([]byte("key-s")).Fetch(2)
	assert.Nil(t, err, "seek")
	assert.Equal(t, expectedElements[3:5], data, "after seek")

	keys := []string{}
	err = p.MapPrefix([]byte("key-t"), func(key []byte, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	assert.Nil(t, err, "map prefix")
	assert.Equal(t, []string{"key-three", "key-two"}, keys, "prefix keys")

	count := 0
	err = p.Map(func(key []byte, value []byte) error {
		count += 1
		if 2 == count {
			return fault.ErrTooManyRecords
		}
		return nil
	})
	assert.Equal(t, fault.ErrTooManyRecords, err, "map error stops iteration")
	assert.Equal(t, 2, count, "map count")
}

func TestGetNB(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	p.Put([]byte("n"), []byte{0, 0, 0, 0, 0, 0, 1, 0, 'x', 'y'})
	n, rest := p.GetNB([]byte("n"))
	assert.Equal(t, uint64(256), n, "number")
	assert.Equal(t, []byte("xy"), rest, "remainder")

	n, ok := p.GetN([]byte("n"))
	assert.True(t, ok, "found")
	assert.Equal(t, uint64(256), n, "number")

	_, rest = p.GetNB([]byte("missing"))
	assert.Nil(t, rest, "missing")
}
