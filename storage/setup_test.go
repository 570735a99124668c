// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bountyd/fault"
	"github.com/bitmark-inc/bountyd/storage"
)

const (
	testingDirName = "testing"
)

func databaseFileName() string {
	return filepath.Join(testingDirName, "test.leveldb")
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) {
	setupTestLogger()
	err := storage.Initialise(databaseFileName(), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Initialise(databaseFileName(), storage.ReadWrite)
	if fault.ErrAlreadyInitialised != err {
		t.Errorf("second initialise: expected: %s  actual: %v", fault.ErrAlreadyInitialised, err)
	}
}

func TestAllPools(t *testing.T) {
	setup(t)
	defer teardown()

	pools := storage.AllPools()
	if 12 != len(pools) {
		t.Fatalf("pool count: %d", len(pools))
	}
	if "Clients" != pools[0].Name || storage.Pool.Clients != pools[0].Handle {
		t.Errorf("first pool: %s", pools[0].Name)
	}
	if "TestData" != pools[len(pools)-1].Name {
		t.Errorf("last pool: %s", pools[len(pools)-1].Name)
	}
}

func TestReadOnly(t *testing.T) {
	setup(t)
	storage.Pool.TestData.Put([]byte("k"), []byte("v"))
	storage.Finalise()
	defer teardown()

	err := storage.Initialise(databaseFileName(), storage.ReadOnly)
	if nil != err {
		t.Fatalf("read only initialise error: %s", err)
	}
	if !storage.IsReadOnly() {
		t.Error("expected read only")
	}
	if "v" != string(storage.Pool.TestData.Get([]byte("k"))) {
		t.Error("data not preserved")
	}

	_, err = storage.NewDBTransaction()
	if fault.ErrNotAvailableInReadOnlyMode != err {
		t.Errorf("transaction in read only mode: %v", err)
	}
}

func TestNotInitialised(t *testing.T) {
	_, err := storage.NewDBTransaction()
	if fault.ErrDatabaseIsNotSet != err {
		t.Errorf("transaction without database: %v", err)
	}
}
