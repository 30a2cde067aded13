// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agent

import (
	"fmt"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/quantity"
	"github.com/bitmark-inc/inheritd/storage"
)

// Claim - payload of a claim event
type Claim struct {
	Claimant eos.AccountName `json:"claimant"`
	To       eos.AccountName `json:"to"`
	Quantity eos.Asset       `json:"quantity"`
	Memo     string          `json:"memo"`
}

// SelfClaim - the operator takes the accumulated earnings
func (p *Program) SelfClaim(ctx *action.Context, to eos.AccountName) error {
	trx := ctx.Trx()
	if !p.accounts.Exists(trx, to) {
		return fault.ErrReceiverNotFound
	}
	if err := ctx.RequireAuth(p.self); nil != err {
		return err
	}
	state, err := getState(trx, p.selfKey)
	if nil != err {
		return err
	}
	if nil == state {
		return fault.ErrAgentNotInitialised
	}
	q := state.Earnings
	if q.Amount <= 0 {
		return fault.ErrNothingToClaim
	}
	state.Earnings = quantity.Zero(q.Symbol)
	err = putRecord(trx, storage.Pool.AgentState, p.selfKey, state)
	if nil != err {
		return err
	}
	return p.pay(ctx, p.self, to, q, "claim agent's total earnings: "+q.String())
}

// MinerClaim - a miner takes its rewards and remaining deposit
func (p *Program) MinerClaim(ctx *action.Context, miner eos.AccountName) error {
	trx := ctx.Trx()
	if !p.accounts.Exists(trx, miner) {
		return fault.ErrMinerAccountNotFound
	}
	if err := ctx.RequireAuth(miner); nil != err {
		return err
	}
	key, err := p.nameKey(miner)
	if nil != err {
		return err
	}
	m, err := getMiner(trx, key)
	if nil != err {
		return err
	}
	if nil == m {
		return fault.ErrMinerNotFound
	}
	q, err := quantity.Add(m.Deposit, m.Reward)
	if nil != err {
		return err
	}
	if q.Amount <= 0 {
		return fault.ErrMinerNothingToClaim
	}

	memo := fmt.Sprintf("reward: %s, deposit refund: %s", m.Reward, m.Deposit)
	m.Deposit = quantity.Zero(m.Deposit.Symbol)
	m.Reward = quantity.Zero(m.Reward.Symbol)
	m.LastClaimTime = ctx.Now()
	err = putRecord(trx, storage.Pool.Miners, key, m)
	if nil != err {
		return err
	}
	return p.pay(ctx, miner, miner, q, memo)
}

// ClientClaim - a client takes back the unused part of its deposit
func (p *Program) ClientClaim(ctx *action.Context, client eos.AccountName) error {
	trx := ctx.Trx()
	if !p.accounts.Exists(trx, client) {
		return fault.ErrClientAccountNotFound
	}
	if err := ctx.RequireAuth(client); nil != err {
		return err
	}
	key, err := p.nameKey(client)
	if nil != err {
		return err
	}
	c, err := getClient(trx, key)
	if nil != err {
		return err
	}
	if nil == c {
		return fault.ErrClientNotFound
	}
	q := c.Refund
	if q.Amount <= 0 {
		return fault.ErrClientNothingToClaim
	}

	c.Deposit = quantity.Zero(c.Deposit.Symbol)
	c.Refund = quantity.Zero(c.Refund.Symbol)
	c.LastClaimTime = ctx.Now()
	err = putRecord(trx, storage.Pool.Clients, key, c)
	if nil != err {
		return err
	}
	return p.pay(ctx, client, client, q, "deposit refund: "+q.String())
}

// transfer out of the agent in the fee token
func (p *Program) pay(ctx *action.Context, claimant eos.AccountName, to eos.AccountName, q eos.Asset, memo string) error {
	err := p.tokens.Transfer(ctx.As(p.self), p.economics.Program, p.self, to, q, memo)
	if nil != err {
		return err
	}
	p.log.Infof("claimant: %s  paid: %s  to: %s", claimant, q, to)
	ctx.Emit(p.self, action.KindClaim, Claim{
		Claimant: claimant,
		To:       to,
		Quantity: q,
		Memo:     memo,
	})
	return nil
}
