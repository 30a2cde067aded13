// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setupTestCache() Cache {
	return newCache()
}

func TestWriteThenRead(t *testing.T) {
	cache := setupTestCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	actual, found := cache.Get(key)
	assert.False(t, found, "key already exists")
	assert.Nil(t, actual, "value for missing key")

	cache.Set(dbPut, key, expected)
	actual, found = cache.Get(key)
	assert.True(t, found, "key not cached")
	assert.Equal(t, expected, actual, "wrong cached value")
}

func TestSetCopiesValue(t *testing.T) {
	cache := setupTestCache()

	data := []byte{'a', 'b'}
	cache.Set(dbPut, "k", data)
	data[0] = 'z'

	actual, _ := cache.Get("k")
	assert.Equal(t, []byte{'a', 'b'}, actual, "cache shares caller buffer")
}

func TestClear(t *testing.T) {
	cache := setupTestCache()

	cache.Set(dbPut, "test", []byte{'a'})
	cache.Clear()

	_, found := cache.Get("test")
	assert.False(t, found, "Clear not working")
}

func TestReadDeleteOperation(t *testing.T) {
	cache := setupTestCache()

	key := "test"
	cache.Set(dbPut, key, []byte{'a'})
	cache.Set(dbDelete, key, nil)

	value, found := cache.Get(key)
	assert.True(t, found, "delete should be remembered")
	assert.Nil(t, value, "delete operation should get nothing")
}
