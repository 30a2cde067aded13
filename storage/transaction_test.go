// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/storage/mocks"
)

func setupTestTransaction(t *testing.T) (Transaction, *PoolHandle, *mocks.MockAccess, *gomock.Controller) {
	ctl := gomock.NewController(t)
	mock := mocks.NewMockAccess(ctl)
	p := &PoolHandle{
		prefix:     'Z',
		limit:      []byte{'Z' + 1},
		dataAccess: mock,
	}
	return newTransaction(mock), p, mock, ctl
}

func TestTransactionPutPrefixesKey(t *testing.T) {
	trx, p, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Put([]byte("Zkey"), []byte("value")).Times(1)
	trx.Put(p, []byte("key"), []byte("value"))
}

func TestTransactionPutN(t *testing.T) {
	trx, p, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Put([]byte("Zn"), []byte{0, 0, 0, 0, 0, 0, 0x01, 0x02}).Times(1)
	trx.PutN(p, []byte("n"), 0x0102)
}

func TestTransactionDelete(t *testing.T) {
	trx, p, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Delete([]byte("Zkey")).Times(1)
	trx.Delete(p, []byte("key"))
}

func TestTransactionGetN(t *testing.T) {
	trx, p, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	mock.EXPECT().Get([]byte("Zn")).Return([]byte{0, 0, 0, 0, 0, 0, 0, 0x07}, nil).Times(1)
	n, found := trx.GetN(p, []byte("n"))
	assert.True(t, found, "not found")
	assert.Equal(t, uint64(7), n, "wrong value")
}

func TestTransactionCommitAlwaysResets(t *testing.T) {
	trx, _, mock, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	failed := errors.New("disk full")
	gomock.InOrder(
		mock.EXPECT().Commit().Return(failed).Times(1),
		mock.EXPECT().Abort().Times(1),
	)
	assert.Equal(t, failed, trx.Commit(), "commit error lost")
}
