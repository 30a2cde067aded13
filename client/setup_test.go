// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package client_test

import (
	"testing"
	"time"

	"github.com/eoscanada/eos-go"
	"github.com/golang/mock/gomock"

	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/client"
	"github.com/bitmark-inc/inheritd/directory"
	"github.com/bitmark-inc/inheritd/fixtures"
	"github.com/bitmark-inc/inheritd/protocol"
	"github.com/bitmark-inc/inheritd/protocol/mocks"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
	"github.com/bitmark-inc/inheritd/token"
	"github.com/bitmark-inc/inheritd/trust"
	"github.com/bitmark-inc/logger"
)

const (
	startTime       = 1000000
	cooldown        = 86400
	clientHoldings  = 1000
	maximumSupplied = 1000000
)

type harness struct {
	t        *testing.T
	now      int64
	executor *action.Executor
	ledger   *token.Ledger
	trust    *trust.List
	observer *mocks.MockMiningObserver
	client   *client.Program
}

func setupTestClient(t *testing.T, ctl *gomock.Controller) *harness {
	err := fixtures.SetupTestAccounts()
	if nil != err {
		t.Fatalf("setup error: %s", err)
	}

	log := logger.New(fixtures.LogCategory)
	h := &harness{
		t:        t,
		now:      startTime,
		executor: action.NewExecutor(log, nil),
		ledger:   token.New(log),
		trust:    trust.New(log),
		observer: mocks.NewMockMiningObserver(ctl),
	}
	h.executor.SetClock(func() time.Time {
		return time.Unix(h.now, 0)
	})

	registry := protocol.NewRegistry()
	registry.AddAgent(fixtures.Agent, h.observer)
	_ = h.trust.Set(fixtures.Client, []eos.AccountName{fixtures.Agent})

	h.client, err = client.New(log, fixtures.Client, h.ledger, directory.Accounts{}, h.trust, registry)
	if nil != err {
		t.Fatalf("client error: %s", err)
	}

	h.run(fixtures.Program, func(ctx *action.Context) error {
		return h.ledger.Create(ctx, fixtures.Program, fixtures.Issuer, fixtures.Asset(maximumSupplied))
	})
	h.run(fixtures.Issuer, func(ctx *action.Context) error {
		return h.ledger.Issue(ctx, fixtures.Program, fixtures.Client, fixtures.Asset(clientHoldings), "")
	})
	return h
}

// run an action that must succeed
func (h *harness) run(actor eos.AccountName, f func(ctx *action.Context) error) {
	err := h.executor.Execute("test", []eos.AccountName{actor}, f)
	if nil != err {
		h.t.Fatalf("action by: %s  error: %s", actor, err)
	}
}

func (h *harness) execute(actor eos.AccountName, f func(ctx *action.Context) error) error {
	return h.executor.Execute("test", []eos.AccountName{actor}, f)
}

func (h *harness) enable() {
	h.run(fixtures.Client, h.client.Init)
	h.run(fixtures.Client, func(ctx *action.Context) error {
		return h.client.SetEnable(ctx, true)
	})
}

func (h *harness) allocate(inheritor eos.AccountName, amount int64, validFrom uint32) error {
	return h.execute(fixtures.Client, func(ctx *action.Context) error {
		return h.client.Allocate(ctx, client.Grant{
			Inheritor:        inheritor,
			Program:          fixtures.Program,
			Quantity:         fixtures.Asset(amount),
			ValidFrom:        validFrom,
			CooldownDuration: cooldown,
			Remark:           "for " + string(inheritor),
		})
	})
}

func (h *harness) mine(args protocol.MineArguments) (protocol.Outcome, error) {
	outcome := protocol.ConditionUnmet
	err := h.execute(fixtures.Agent, func(ctx *action.Context) error {
		var err error
		outcome, err = h.client.OnAgentMine(ctx, fixtures.Agent, args)
		return err
	})
	return outcome, err
}

func (h *harness) transferOut(to eos.AccountName, amount int64) {
	h.run(fixtures.Client, func(ctx *action.Context) error {
		return h.ledger.Transfer(ctx, fixtures.Program, fixtures.Client, to, fixtures.Asset(amount), "")
	})
}

// the single allocation of the test token, nil if none
func (h *harness) allocation() *record.Allocation {
	allocations, err := h.client.Allocations(fixtures.Program)
	if nil != err {
		h.t.Fatalf("allocations error: %s", err)
	}
	switch len(allocations) {
	case 0:
		return nil
	case 1:
		return &allocations[0]
	}
	h.t.Fatalf("too many allocations: %v", allocations)
	return nil
}

func (h *harness) inheritance(inheritor eos.AccountName) *record.Inheritance {
	i, err := h.client.Inheritance(storage.Committed, inheritor, fixtures.Program, fixtures.EOS)
	if nil != err {
		return nil
	}
	return i
}

func balance(owner eos.AccountName) int64 {
	b, _ := token.Balance(storage.Committed, fixtures.Program, owner, fixtures.EOS)
	return int64(b.Amount)
}

func mineArguments(inheritor eos.AccountName, amount int64) protocol.MineArguments {
	return protocol.MineArguments{
		Inheritor: inheritor,
		Program:   fixtures.Program,
		Quantity:  fixtures.Asset(amount),
		Client:    fixtures.Client,
		Miner:     fixtures.Miner,
	}
}
