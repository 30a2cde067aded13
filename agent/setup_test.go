// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agent_test

import (
	"testing"
	"time"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/agent"
	"github.com/bitmark-inc/inheritd/client"
	"github.com/bitmark-inc/inheritd/directory"
	"github.com/bitmark-inc/inheritd/fixtures"
	"github.com/bitmark-inc/inheritd/protocol"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
	"github.com/bitmark-inc/inheritd/token"
	"github.com/bitmark-inc/inheritd/trust"
	"github.com/bitmark-inc/logger"
)

// amounts in units of 0.0001 EOS
const (
	eos1     = 10000
	fine     = 1000
	cost     = 50000
	reward   = 10000
	cooldown = 86400

	startTime = 1000000
)

// keeps every published event
type recorder struct {
	events []action.Event
}

func (r *recorder) Send(kind string, item interface{}) {
	r.events = append(r.events, item.(action.Event))
}

// data of the most recent event of a kind, nil if none
func (r *recorder) last(kind string) interface{} {
	for i := len(r.events) - 1; i >= 0; i -= 1 {
		if kind == r.events[i].Kind {
			return r.events[i].Data
		}
	}
	return nil
}

type harness struct {
	t        *testing.T
	recorder *recorder
	now      int64
	executor *action.Executor
	ledger   *token.Ledger
	trust    *trust.List
	registry *protocol.Registry
	client   *client.Program
	agent    *agent.Program
}

// ledger with both programs running, the client holds 1000 EOS and
// each miner 10 EOS
func setupTestAgent(t *testing.T) *harness {
	err := fixtures.SetupTestAccounts()
	if nil != err {
		t.Fatalf("setup error: %s", err)
	}

	log := logger.New(fixtures.LogCategory)
	r := &recorder{}
	h := &harness{
		t:        t,
		recorder: r,
		now:      startTime,
		executor: action.NewExecutor(log, r),
		ledger:   token.New(log),
		trust:    trust.New(log),
		registry: protocol.NewRegistry(),
	}
	h.executor.SetClock(func() time.Time {
		return time.Unix(h.now, 0)
	})

	_ = h.trust.Set(fixtures.Client, []eos.AccountName{fixtures.Agent})
	_ = h.trust.Set(fixtures.Agent, []eos.AccountName{fixtures.Client})

	h.client, err = client.New(log, fixtures.Client, h.ledger, directory.Accounts{}, h.trust, h.registry)
	if nil != err {
		t.Fatalf("client error: %s", err)
	}
	h.agent, err = agent.New(log, fixtures.Agent, agent.DefaultEconomics(), h.ledger, directory.Accounts{}, h.trust, h.registry)
	if nil != err {
		t.Fatalf("agent error: %s", err)
	}
	h.registry.AddClient(fixtures.Client, h.client)
	h.registry.AddAgent(fixtures.Agent, h.agent)
	h.ledger.Register(fixtures.Agent, h.agent)

	h.run(fixtures.Program, func(ctx *action.Context) error {
		return h.ledger.Create(ctx, fixtures.Program, fixtures.Issuer, fixtures.Asset(1000000*eos1))
	})
	for name, amount := range map[eos.AccountName]int64{
		fixtures.Client: 1000 * eos1,
		fixtures.Miner:  10 * eos1,
		fixtures.Miner2: 10 * eos1,
	} {
		to := name
		q := fixtures.Asset(amount)
		h.run(fixtures.Issuer, func(ctx *action.Context) error {
			return h.ledger.Issue(ctx, fixtures.Program, to, q, "")
		})
	}
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

func (h *harness) initAgent() {
	h.run(fixtures.Agent, h.agent.Init)
}

// client enabled with a 100 EOS grant to bob
func (h *harness) setupClient(validFrom uint32) {
	h.run(fixtures.Client, h.client.Init)
	h.run(fixtures.Client, func(ctx *action.Context) error {
		return h.client.SetEnable(ctx, true)
	})
	h.run(fixtures.Client, func(ctx *action.Context) error {
		return h.client.Allocate(ctx, client.Grant{
			Inheritor:        fixtures.Inheritor,
			Program:          fixtures.Program,
			Quantity:         fixtures.Asset(100 * eos1),
			ValidFrom:        validFrom,
			CooldownDuration: cooldown,
			Remark:           "for bob",
		})
	})
}

func (h *harness) deposit(from eos.AccountName, amount int64, memo string) error {
	return h.execute(from, func(ctx *action.Context) error {
		return h.ledger.Transfer(ctx, fixtures.Program, from, fixtures.Agent, fixtures.Asset(amount), memo)
	})
}

func (h *harness) mineAs(actor eos.AccountName, args protocol.MineArguments) (protocol.Outcome, error) {
	outcome := protocol.ConditionUnmet
	err := h.execute(actor, func(ctx *action.Context) error {
		var err error
		outcome, err = h.agent.Mine(ctx, args)
		return err
	})
	return outcome, err
}

func (h *harness) mine(args protocol.MineArguments) (protocol.Outcome, error) {
	return h.mineAs(args.Miner, args)
}

func (h *harness) miner(name eos.AccountName) *record.Miner {
	m, err := h.agent.Miner(name)
	if nil != err {
		h.t.Fatalf("miner: %s  error: %s", name, err)
	}
	return m
}

func (h *harness) clientAccount(name eos.AccountName) *record.Client {
	c, err := h.agent.Client(name)
	if nil != err {
		h.t.Fatalf("client: %s  error: %s", name, err)
	}
	return c
}

func (h *harness) earnings() int64 {
	e, err := h.agent.Earnings(storage.Committed)
	if nil != err {
		h.t.Fatalf("earnings error: %s", err)
	}
	return int64(e.Amount)
}

func balance(owner eos.AccountName) int64 {
	b, _ := token.Balance(storage.Committed, fixtures.Program, owner, fixtures.EOS)
	return int64(b.Amount)
}

func mineArguments() protocol.MineArguments {
	return protocol.MineArguments{
		Inheritor: fixtures.Inheritor,
		Program:   fixtures.Program,
		Quantity:  fixtures.Asset(100 * eos1),
		Client:    fixtures.Client,
		Miner:     fixtures.Miner,
	}
}
