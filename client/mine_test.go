// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package client_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/fixtures"
	"github.com/bitmark-inc/inheritd/protocol"
	"github.com/bitmark-inc/inheritd/record"
)

func TestCooldownThenTransfer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := setupTestClient(t, ctl)
	defer fixtures.TeardownTestStorage()
	h.enable()

	assert.Nil(t, h.allocate(fixtures.Inheritor, 100, startTime), "allocate error")
	args := mineArguments(fixtures.Inheritor, 100)

	// too early, agent not told
	h.now = startTime - 1
	outcome, err := h.mine(args)
	assert.Nil(t, err, "early mine error")
	assert.Equal(t, protocol.ConditionUnmet, outcome, "early outcome")
	assert.Equal(t, record.Active, h.inheritance(fixtures.Inheritor).State, "early mine changed state")

	// cooldown start
	h.now = startTime
	h.observer.EXPECT().DidMine(gomock.Any(), fixtures.Client, args).Return(nil).Times(1)
	outcome, err = h.mine(args)
	assert.Nil(t, err, "cooldown mine error")
	assert.Equal(t, protocol.CooldownStarted, outcome, "cooldown outcome")
	i := h.inheritance(fixtures.Inheritor)
	assert.Equal(t, record.ActiveCooldownMined, i.State, "state after cooldown start")
	assert.Equal(t, uint32(startTime), i.CooldownBegan, "cooldown began")

	// still cooling down
	h.now = startTime + cooldown - 1
	outcome, err = h.mine(args)
	assert.Nil(t, err, "pending mine error")
	assert.Equal(t, protocol.CooldownPending, outcome, "pending outcome")

	// transfer
	h.now = startTime + cooldown
	h.observer.EXPECT().DidMine(gomock.Any(), fixtures.Client, args).Return(nil).Times(1)
	outcome, err = h.mine(args)
	assert.Nil(t, err, "transfer mine error")
	assert.Equal(t, protocol.Transferred, outcome, "transfer outcome")

	assert.Nil(t, h.inheritance(fixtures.Inheritor), "inheritance remains")
	assert.Equal(t, int64(100), balance(fixtures.Inheritor), "inheritor not paid")
	assert.Equal(t, int64(900), balance(fixtures.Client), "client not debited")

	a := h.allocation()
	assert.Equal(t, fixtures.Asset(0), a.Allocated, "allocated")
	assert.Equal(t, fixtures.Asset(900), a.Unallocated, "unallocated")
	assert.Equal(t, fixtures.Asset(100), a.Transferred, "transferred")
	assert.Equal(t, balance(fixtures.Client), int64(a.Allocated.Amount+a.Unallocated.Amount), "allocation does not match balance")

	transfers, next, err := h.client.Transfers(fixtures.Program, 0, 10)
	assert.Nil(t, err, "transfers error")
	assert.Equal(t, uint64(1), next, "next page")
	if assert.Equal(t, 1, len(transfers), "transfer count") {
		tr := transfers[0]
		assert.Equal(t, fixtures.Inheritor, tr.Receiver, "receiver")
		assert.Equal(t, fixtures.Asset(100), tr.Got.Asset, "got")
		assert.Equal(t, uint32(startTime), tr.ValidFrom, "valid from")
		assert.Equal(t, uint32(startTime), tr.CooldownBegan, "cooldown began")
		assert.Equal(t, uint32(cooldown), tr.CooldownDuration, "cooldown")
		assert.Equal(t, uint32(startTime+cooldown), tr.TransferredTime, "transferred time")
		assert.Equal(t, "for bob", tr.Remark, "remark")
	}

	// nothing left to mine
	_, err = h.mine(args)
	assert.Equal(t, fault.ErrInheritanceNotSpecified, err, "mined a completed inheritance")
}

func TestActiveAfterCooldownWindow(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := setupTestClient(t, ctl)
	defer fixtures.TeardownTestStorage()
	h.enable()

	assert.Nil(t, h.allocate(fixtures.Inheritor, 100, startTime), "allocate error")
	args := mineArguments(fixtures.Inheritor, 100)

	// long after validFrom + cooldown an active record still only
	// starts its cooldown
	h.now = startTime + 10*cooldown
	h.observer.EXPECT().DidMine(gomock.Any(), fixtures.Client, args).Return(nil).Times(1)
	outcome, err := h.mine(args)
	assert.Nil(t, err, "mine error")
	assert.Equal(t, protocol.CooldownStarted, outcome, "outcome")
	assert.Equal(t, uint32(startTime+10*cooldown), h.inheritance(fixtures.Inheritor).CooldownBegan, "cooldown began")
}

func TestTransferReplay(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := setupTestClient(t, ctl)
	defer fixtures.TeardownTestStorage()
	h.enable()

	assert.Nil(t, h.allocate(fixtures.Inheritor, 100, startTime), "allocate error")
	args := mineArguments(fixtures.Inheritor, 100)

	h.observer.EXPECT().DidMine(gomock.Any(), fixtures.Client, args).Return(nil).Times(3)

	h.now = startTime
	outcome, err := h.mine(args)
	assert.Nil(t, err, "cooldown mine error")
	assert.Equal(t, protocol.CooldownStarted, outcome, "first outcome")

	h.now = startTime + cooldown
	outcome, err = h.mine(args)
	assert.Nil(t, err, "transfer mine error")
	assert.Equal(t, protocol.Transferred, outcome, "second outcome")

	// the same grant again
	assert.Nil(t, h.allocate(fixtures.Inheritor, 100, startTime), "reallocate error")
	outcome, err = h.mine(args)
	assert.Nil(t, err, "cooldown mine error")
	assert.Equal(t, protocol.CooldownStarted, outcome, "third outcome")

	h.now = startTime + 2*cooldown
	outcome, err = h.mine(args)
	assert.Nil(t, err, "replay mine error")
	assert.Equal(t, protocol.Replayed, outcome, "replay outcome")

	assert.Equal(t, int64(100), balance(fixtures.Inheritor), "paid twice")
	transfers, _, err := h.client.Transfers(fixtures.Program, 0, 10)
	assert.Nil(t, err, "transfers error")
	assert.Equal(t, 1, len(transfers), "transfer recorded twice")
	assert.Equal(t, record.ActiveCooldownMined, h.inheritance(fixtures.Inheritor).State, "replay changed state")
}

func TestTransferReplayOfEarlierGrant(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := setupTestClient(t, ctl)
	defer fixtures.TeardownTestStorage()
	h.enable()

	argsA := mineArguments(fixtures.Inheritor, 100)
	argsB := mineArguments(fixtures.Inheritor, 200)
	h.observer.EXPECT().DidMine(gomock.Any(), fixtures.Client, argsA).Return(nil).Times(3)
	h.observer.EXPECT().DidMine(gomock.Any(), fixtures.Client, argsB).Return(nil).Times(2)

	// grant A paid
	assert.Nil(t, h.allocate(fixtures.Inheritor, 100, startTime), "allocate A error")
	h.now = startTime
	outcome, err := h.mine(argsA)
	assert.Nil(t, err, "A cooldown error")
	assert.Equal(t, protocol.CooldownStarted, outcome, "A cooldown outcome")
	h.now = startTime + cooldown
	outcome, err = h.mine(argsA)
	assert.Nil(t, err, "A transfer error")
	assert.Equal(t, protocol.Transferred, outcome, "A transfer outcome")

	// a different grant B paid after it
	assert.Nil(t, h.allocate(fixtures.Inheritor, 200, startTime), "allocate B error")
	outcome, err = h.mine(argsB)
	assert.Nil(t, err, "B cooldown error")
	assert.Equal(t, protocol.CooldownStarted, outcome, "B cooldown outcome")
	h.now = startTime + 2*cooldown
	outcome, err = h.mine(argsB)
	assert.Nil(t, err, "B transfer error")
	assert.Equal(t, protocol.Transferred, outcome, "B transfer outcome")

	// grant A again is still recognised
	assert.Nil(t, h.allocate(fixtures.Inheritor, 100, startTime), "reallocate A error")
	outcome, err = h.mine(argsA)
	assert.Nil(t, err, "A again cooldown error")
	assert.Equal(t, protocol.CooldownStarted, outcome, "A again cooldown outcome")
	h.now = startTime + 3*cooldown
	outcome, err = h.mine(argsA)
	assert.Nil(t, err, "A again replay error")
	assert.Equal(t, protocol.Replayed, outcome, "A again outcome")

	assert.Equal(t, int64(300), balance(fixtures.Inheritor), "earlier grant paid twice")
	transfers, _, err := h.client.Transfers(fixtures.Program, 0, 10)
	assert.Nil(t, err, "transfers error")
	assert.Equal(t, 2, len(transfers), "transfer count")
}

func TestOnAgentMineFailures(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := setupTestClient(t, ctl)
	defer fixtures.TeardownTestStorage()

	assert.Nil(t, h.allocate(fixtures.Inheritor, 100, startTime), "allocate error")
	args := mineArguments(fixtures.Inheritor, 100)

	_, err := h.mine(args)
	assert.Equal(t, fault.ErrMiningDisabled, err, "mined before init")

	h.enable()

	// agent acting without its authority
	err = h.execute(fixtures.Miner, func(ctx *action.Context) error {
		_, err := h.client.OnAgentMine(ctx, fixtures.Agent, args)
		return err
	})
	assert.Equal(t, fault.ErrMissingAuthority, err, "mined without agent auth")

	// an account the client does not trust
	err = h.execute(fixtures.Stranger, func(ctx *action.Context) error {
		_, err := h.client.OnAgentMine(ctx, fixtures.Stranger, args)
		return err
	})
	assert.Equal(t, fault.ErrNotTrustedAgent, err, "untrusted agent")

	other := args
	other.Client = fixtures.Stranger
	_, err = h.mine(other)
	assert.Equal(t, fault.ErrClientMismatch, err, "other client")

	other = mineArguments(fixtures.Miner2, 100)
	_, err = h.mine(other)
	assert.Equal(t, fault.ErrInheritanceNotSpecified, err, "unknown inheritance")

	other = mineArguments(fixtures.Inheritor, 99)
	_, err = h.mine(other)
	assert.Equal(t, fault.ErrQuantityMismatch, err, "wrong quantity")

	h.run(fixtures.Client, func(ctx *action.Context) error {
		return h.client.SetEnable(ctx, false)
	})
	_, err = h.mine(args)
	assert.Equal(t, fault.ErrMiningDisabled, err, "mined while disabled")
}

func TestObserverFailureAborts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := setupTestClient(t, ctl)
	defer fixtures.TeardownTestStorage()
	h.enable()

	assert.Nil(t, h.allocate(fixtures.Inheritor, 100, startTime), "allocate error")
	args := mineArguments(fixtures.Inheritor, 100)

	h.now = startTime
	h.observer.EXPECT().DidMine(gomock.Any(), fixtures.Client, args).Return(fault.ErrNotAcceptedNotification).Times(1)
	_, err := h.mine(args)
	assert.Equal(t, fault.ErrNotAcceptedNotification, err, "observer error lost")
	assert.Equal(t, record.Active, h.inheritance(fixtures.Inheritor).State, "transition committed")
}
