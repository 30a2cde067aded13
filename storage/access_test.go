// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/storage/mocks"
)

const (
	dbName     = "data-access"
	defaultKey = "key"
)

var defaultValue = []byte{'a'}

func setupTestDataAccess(t *testing.T, mockCache Cache) (Access, func()) {
	dirPath, _ := filepath.Abs(dbName)
	_ = os.RemoveAll(dirPath)

	db, err := leveldb.OpenFile(dirPath, nil)
	if nil != err {
		t.Fatalf("open database error: %s", err)
	}
	return newDA(db, new(leveldb.Batch), mockCache), func() {
		_ = db.Close()
		_ = os.RemoveAll(dirPath)
	}
}

func TestBeginShouldErrorWhenAlreadyInTransaction(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	da, done := setupTestDataAccess(t, mocks.NewMockCache(ctl))
	defer done()

	err := da.Begin()
	assert.Nil(t, err, "first time Begin should not error")

	err = da.Begin()
	assert.Equal(t, fault.ErrTransactionInUse, err, "second time Begin should return error")
}

func TestCommitWithoutBegin(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	da, done := setupTestDataAccess(t, mocks.NewMockCache(ctl))
	defer done()

	assert.Equal(t, fault.ErrTransactionNotInUse, da.Commit(), "commit without begin")
}

func TestPutActionCached(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Set(dbPut, defaultKey, defaultValue).Times(1)

	da, done := setupTestDataAccess(t, mc)
	defer done()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
}

func TestDeleteActionCached(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mc := mocks.NewMockCache(ctl)
	gomock.InOrder(
		mc.EXPECT().Set(dbPut, "a", []byte{'b'}).Times(1),
		mc.EXPECT().Set(dbDelete, "a", gomock.Nil()).Times(1),
	)

	da, done := setupTestDataAccess(t, mc)
	defer done()

	_ = da.Begin()
	da.Put([]byte{'a'}, []byte{'b'})
	da.Delete([]byte{'a'})
}

func TestCommitWriteToDB(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mc.EXPECT().Clear().Times(1)
	mc.EXPECT().Get(defaultKey).Return(nil, false).Times(1)

	da, done := setupTestDataAccess(t, mc)
	defer done()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	assert.Nil(t, da.Commit(), "commit error")
	da.Abort()

	actual, err := da.Get([]byte(defaultKey))
	assert.Nil(t, err, "get error")
	assert.Equal(t, defaultValue, actual, "commit not write to db")
	assert.Equal(t, 0, len(da.DumpTx()), "abort did not reset batch")
}

func TestGetActionReadsFromCache(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Get(defaultKey).Return(defaultValue, true).Times(1)

	da, done := setupTestDataAccess(t, mc)
	defer done()

	actual, err := da.Get([]byte(defaultKey))
	assert.Nil(t, err, "get error")
	assert.Equal(t, defaultValue, actual, "wrong cached value")
}

func TestGetCachedDeleteIsNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Get(defaultKey).Return(nil, true).Times(2)

	da, done := setupTestDataAccess(t, mc)
	defer done()

	_, err := da.Get([]byte(defaultKey))
	assert.Equal(t, leveldb.ErrNotFound, err, "deleted key found")

	has, err := da.Has([]byte(defaultKey))
	assert.Nil(t, err, "has error")
	assert.False(t, has, "deleted key present")
}

func TestHasNotCached(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Get(gomock.Any()).Return(nil, false).Times(1)

	da, done := setupTestDataAccess(t, mc)
	defer done()

	has, err := da.Has([]byte(defaultKey))
	assert.Nil(t, err, "has error")
	assert.False(t, has, "empty database has key")
}

func TestInUse(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	mc := mocks.NewMockCache(ctl)
	mc.EXPECT().Clear().Times(1)

	da, done := setupTestDataAccess(t, mc)
	defer done()

	assert.False(t, da.InUse(), "inUse default not false")

	_ = da.Begin()
	assert.True(t, da.InUse(), "inUse not set")

	da.Abort()
	assert.False(t, da.InUse(), "inUse not reset by abort")
}
