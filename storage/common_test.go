// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/inheritd/storage"
)

// set by setup, the leveldb directory is this name plus ".leveldb"
var (
	testDirectory    string
	databaseFileName string
)

// fresh database in its own temporary directory
func setup(t *testing.T) {
	dir, err := ioutil.TempDir("", "storage")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	testDirectory = dir
	databaseFileName = filepath.Join(dir, "test")

	err = storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	os.RemoveAll(testDirectory)
}

// account name => remark, in key order
func makeElements(input [][2]string) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e[0]),
			Value: []byte(e[1]),
		})
	}
	return output
}

var expectedElements = makeElements([][2]string{
	{"alice", "data-one(NEW)"},
	{"bob", "data-two"},
	{"carol", "data-three"},
	{"dave", "data-four"},
	{"erin", "data-five"},
	{"frank", "data-six"},
	{"grace", "data-seven"},
})

var nonExistantKey = []byte("/nonexistant")

var (
	testKey  = []byte("bob")
	testData = "data-two"
)
