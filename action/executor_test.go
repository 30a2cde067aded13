// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package action_test

import (
	"testing"
	"time"

	"github.com/eoscanada/eos-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/action/mocks"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/fixtures"
	"github.com/bitmark-inc/inheritd/storage"
	"github.com/bitmark-inc/logger"
)

var testKey = []byte("executor")

func setupExecutor(t *testing.T, publisher action.Publisher) *action.Executor {
	err := fixtures.SetupTestStorage()
	if nil != err {
		t.Fatalf("storage setup error: %s", err)
	}
	e := action.NewExecutor(logger.New(fixtures.LogCategory), publisher)
	e.SetClock(func() time.Time {
		return time.Unix(86400, 0)
	})
	return e
}

func TestExecuteCommitsAndPublishes(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	publisher := mocks.NewMockPublisher(ctl)
	e := setupExecutor(t, publisher)
	defer fixtures.TeardownTestStorage()

	publisher.EXPECT().Send(action.KindBill, action.Event{
		Program: fixtures.Agent,
		Kind:    action.KindBill,
		Data:    "one",
	}).Times(1)

	err := e.Execute("test", []eos.AccountName{fixtures.Agent}, func(ctx *action.Context) error {
		assert.Equal(t, uint32(86400), ctx.Now(), "wrong time")
		assert.Nil(t, ctx.RequireAuth(fixtures.Agent), "auth missing")
		assert.Equal(t, fault.ErrMissingAuthority, ctx.RequireAuth(fixtures.Miner), "unexpected auth")
		ctx.Trx().PutN(storage.Pool.TestData, testKey, 1)
		ctx.Emit(fixtures.Agent, action.KindBill, "one")
		return nil
	})
	assert.Nil(t, err, "execute error")

	n, found := storage.Pool.TestData.GetN(testKey)
	assert.True(t, found, "value not committed")
	assert.Equal(t, uint64(1), n, "wrong value")
}

func TestExecuteErrorAborts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	publisher := mocks.NewMockPublisher(ctl)
	e := setupExecutor(t, publisher)
	defer fixtures.TeardownTestStorage()

	publisher.EXPECT().Send(gomock.Any(), gomock.Any()).Times(0)

	err := e.Execute("test", nil, func(ctx *action.Context) error {
		ctx.Trx().PutN(storage.Pool.TestData, testKey, 1)
		ctx.Emit(fixtures.Agent, action.KindBill, "dropped")
		return fault.ErrNothingToClaim
	})
	assert.Equal(t, fault.ErrNothingToClaim, err, "wrong error")
	assert.False(t, storage.Pool.TestData.Has(testKey), "aborted write committed")

	// the transaction is free again
	err = e.Execute("again", nil, func(ctx *action.Context) error {
		assert.False(t, ctx.Trx().Has(storage.Pool.TestData, testKey), "aborted write still cached")
		return nil
	})
	assert.Nil(t, err, "second execute error")
}

func TestExecutePanicAborts(t *testing.T) {
	e := setupExecutor(t, nil)
	defer fixtures.TeardownTestStorage()

	assert.Panics(t, func() {
		_ = e.Execute("panic", nil, func(ctx *action.Context) error {
			ctx.Trx().PutN(storage.Pool.TestData, testKey, 1)
			panic("boom")
		})
	}, "panic swallowed")

	assert.False(t, storage.Pool.TestData.Has(testKey), "write committed after panic")

	err := e.Execute("after", nil, func(ctx *action.Context) error {
		return nil
	})
	assert.Nil(t, err, "executor unusable after panic")
}

func TestContextAs(t *testing.T) {
	e := setupExecutor(t, nil)
	defer fixtures.TeardownTestStorage()

	err := e.Execute("as", []eos.AccountName{fixtures.Miner}, func(ctx *action.Context) error {
		inline := ctx.As(fixtures.Agent)
		assert.True(t, inline.HasAuth(fixtures.Agent), "inline missing own auth")
		assert.False(t, inline.HasAuth(fixtures.Miner), "inline kept caller auth")
		assert.Equal(t, ctx.Now(), inline.Now(), "inline time differs")
		assert.Equal(t, ctx.Trx(), inline.Trx(), "inline transaction differs")
		return nil
	})
	assert.Nil(t, err, "execute error")
}
