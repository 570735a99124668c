// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/logger"
)

// Transaction - a batch of writes to several pools
//
// reads see the transaction's own writes, nothing reaches the database
// until Commit
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Size() int
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	database *leveldb.DB
	batch    *leveldb.Batch
	cache    Cache
	finished bool
}

func newTransaction(database *leveldb.DB) Transaction {
	return &transaction{
		database: database,
		batch:    new(leveldb.Batch),
		cache:    newCache(),
	}
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()

	if t.finished {
		logger.Panicf("storage: put to finished transaction: %s: %x", handle.name, key)
	}
	k := handle.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)
	t.cache.Set(dbPut, string(k), v)
	t.batch.Put(k, v)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(handle, key, buffer)
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	t.Lock()
	defer t.Unlock()

	if t.finished {
		logger.Panicf("storage: delete in finished transaction: %s: %x", handle.name, key)
	}
	k := handle.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

// Get - read through the overlay
//
// nil if the key is not present
func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	t.Lock()
	value, found, deleted := t.cache.Get(string(handle.prefixKey(key)))
	t.Unlock()

	if deleted {
		return nil
	}
	if found {
		return value
	}
	return handle.Get(key)
}

func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(handle, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("storage: GetN truncated record: %s: %x: %x", handle.name, key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	return nil != t.Get(handle, key)
}

// Size - number of keys written or deleted
func (t *transaction) Size() int {
	t.Lock()
	defer t.Unlock()
	return t.cache.Count()
}

func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if t.finished {
		return fault.ErrTransactionInUse
	}
	t.finished = true

	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.database || poolData.database != t.database {
		return fault.ErrDatabaseIsNotSet
	}

	err := t.database.Write(t.batch, nil)
	t.batch.Reset()
	t.cache.Clear()
	return err
}

func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	t.finished = true
	t.batch.Reset()
	t.cache.Clear()
}
