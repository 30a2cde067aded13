// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agent_test

import (
	"testing"

	"github.com/eoscanada/eos-go"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/agent"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/fixtures"
	"github.com/bitmark-inc/inheritd/storage"
	"github.com/bitmark-inc/inheritd/token"
)

func TestParseDeposit(t *testing.T) {
	assert.Equal(t, agent.DepositMiner, agent.ParseDeposit("miner"), "miner")
	assert.Equal(t, agent.DepositClient, agent.ParseDeposit("client"), "client")
	assert.Equal(t, agent.DepositUnknown, agent.ParseDeposit("Miner"), "case matters")
	assert.Equal(t, agent.DepositUnknown, agent.ParseDeposit(""), "empty memo")
	assert.Equal(t, "client", agent.DepositClient.String(), "string")
}

func TestMinerDeposit(t *testing.T) {
	h := setupTestAgent(t)
	defer fixtures.TeardownTestStorage()

	assert.Nil(t, h.deposit(fixtures.Miner, eos1, "miner"), "first deposit error")
	m := h.miner(fixtures.Miner)
	assert.Equal(t, fixtures.Miner, m.Miner, "miner name")
	assert.Equal(t, fixtures.Asset(eos1), m.Deposit, "first deposit")
	assert.Equal(t, fixtures.Asset(0), m.Fee, "fee")
	assert.Equal(t, fixtures.Asset(0), m.Reward, "reward")
	assert.Equal(t, uint8(0), m.TryCount, "try count")

	assert.Nil(t, h.deposit(fixtures.Miner, 2*eos1, "miner"), "second deposit error")
	assert.Equal(t, fixtures.Asset(3*eos1), h.miner(fixtures.Miner).Deposit, "total deposit")

	assert.Equal(t, int64(3*eos1), balance(fixtures.Agent), "agent balance")
	assert.Equal(t, int64(7*eos1), balance(fixtures.Miner), "miner balance")
}

func TestClientDeposit(t *testing.T) {
	h := setupTestAgent(t)
	defer fixtures.TeardownTestStorage()

	assert.Nil(t, h.deposit(fixtures.Client, 10*eos1, "client"), "first deposit error")
	c := h.clientAccount(fixtures.Client)
	assert.Equal(t, fixtures.Asset(10*eos1), c.Deposit, "deposit")
	assert.Equal(t, fixtures.Asset(10*eos1), c.Refund, "refund")
	assert.Equal(t, fixtures.Asset(0), c.Fee, "fee")

	assert.Nil(t, h.deposit(fixtures.Client, 5*eos1, "client"), "second deposit error")
	c = h.clientAccount(fixtures.Client)
	assert.Equal(t, fixtures.Asset(15*eos1), c.Deposit, "total deposit")
	assert.Equal(t, fixtures.Asset(15*eos1), c.Refund, "total refund")

	clients, err := h.agent.Clients()
	assert.Nil(t, err, "clients error")
	assert.Equal(t, 1, len(clients), "client count")
}

func TestDepositUnknownMemoRefunded(t *testing.T) {
	h := setupTestAgent(t)
	defer fixtures.TeardownTestStorage()

	assert.Nil(t, h.deposit(fixtures.Miner, eos1, "tip"), "refunded deposit error")
	assert.Equal(t, int64(10*eos1), balance(fixtures.Miner), "not refunded")
	assert.Equal(t, int64(0), balance(fixtures.Agent), "agent kept tokens")

	_, err := h.agent.Miner(fixtures.Miner)
	assert.Equal(t, fault.ErrMinerNotFound, err, "miner row created")
}

func TestDepositOtherToken(t *testing.T) {
	h := setupTestAgent(t)
	defer fixtures.TeardownTestStorage()

	sys := eos.Symbol{Precision: 4, Symbol: "SYS"}
	h.run(fixtures.Program, func(ctx *action.Context) error {
		return h.ledger.Create(ctx, fixtures.Program, fixtures.Issuer, eos.Asset{Amount: 1000 * eos1, Symbol: sys})
	})
	h.run(fixtures.Issuer, func(ctx *action.Context) error {
		return h.ledger.Issue(ctx, fixtures.Program, fixtures.Miner, eos.Asset{Amount: 10 * eos1, Symbol: sys}, "")
	})

	send := func(memo string) error {
		return h.execute(fixtures.Miner, func(ctx *action.Context) error {
			return h.ledger.Transfer(ctx, fixtures.Program, fixtures.Miner, fixtures.Agent, eos.Asset{Amount: eos1, Symbol: sys}, memo)
		})
	}

	assert.Equal(t, fault.ErrDepositSymbolMismatch, send("miner"), "deposit in another token")
	b, _ := token.Balance(storage.Committed, fixtures.Program, fixtures.Miner, sys)
	assert.Equal(t, eos.Int64(10*eos1), b.Amount, "aborted transfer moved tokens")

	// anything else is still returned
	assert.Nil(t, send("gift"), "refund error")
	b, _ = token.Balance(storage.Committed, fixtures.Program, fixtures.Miner, sys)
	assert.Equal(t, eos.Int64(10*eos1), b.Amount, "not refunded")
}

func TestTransfersFromAgentIgnored(t *testing.T) {
	h := setupTestAgent(t)
	defer fixtures.TeardownTestStorage()

	// the agent is the sender here, nothing is recorded
	err := h.execute(fixtures.Miner, func(ctx *action.Context) error {
		return h.agent.OnTransfer(ctx, fixtures.Program, fixtures.Agent, fixtures.Miner, fixtures.Asset(eos1), "miner")
	})
	assert.Nil(t, err, "outgoing transfer error")
	miners, err := h.agent.Miners()
	assert.Nil(t, err, "miners error")
	assert.Equal(t, 0, len(miners), "outgoing transfer recorded")
}
