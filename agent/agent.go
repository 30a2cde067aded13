// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agent

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/protocol"
	"github.com/bitmark-inc/inheritd/quantity"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
	"github.com/bitmark-inc/inheritd/trust"
	"github.com/bitmark-inc/logger"
)

// Program - one agent account's mining program
type Program struct {
	log       *logger.L
	self      eos.AccountName
	selfKey   []byte
	economics Economics
	tokens    protocol.Tokens
	accounts  protocol.Accounts
	trust     trust.Checker
	clients   protocol.ClientLookup
}

// New - program for the agent account self
func New(log *logger.L, self eos.AccountName, economics Economics, tokens protocol.Tokens, accounts protocol.Accounts, checker trust.Checker, clients protocol.ClientLookup) (*Program, error) {
	selfKey, err := account.NameBytes(self)
	if nil != err {
		return nil, err
	}
	return &Program{
		log:       log,
		self:      self,
		selfKey:   selfKey,
		economics: economics,
		tokens:    tokens,
		accounts:  accounts,
		trust:     checker,
		clients:   clients,
	}, nil
}

// Name - the agent account
func (p *Program) Name() eos.AccountName {
	return p.self
}

// Economics - the configured amounts
func (p *Program) Economics() Economics {
	return p.economics
}

// Init - create the earnings row
func (p *Program) Init(ctx *action.Context) error {
	if err := ctx.RequireAuth(p.self); nil != err {
		return err
	}
	trx := ctx.Trx()
	if trx.Has(storage.Pool.AgentState, p.selfKey) {
		return fault.ErrAlreadyInitialised
	}
	err := putRecord(trx, storage.Pool.AgentState, p.selfKey, &record.AgentState{
		Earnings: quantity.Zero(p.economics.Symbol),
	})
	if nil != err {
		return err
	}
	p.log.Infof("agent: %s  initialised", p.self)
	return nil
}

// Earnings - the operator's unclaimed total
func (p *Program) Earnings(r storage.Reader) (eos.Asset, error) {
	state, err := getState(r, p.selfKey)
	if nil != err {
		return eos.Asset{}, err
	}
	if nil == state {
		return eos.Asset{}, fault.ErrAgentNotInitialised
	}
	return state.Earnings, nil
}

func (p *Program) earn(trx storage.Transaction, q eos.Asset) error {
	state, err := getState(trx, p.selfKey)
	if nil != err {
		return err
	}
	if nil == state {
		return fault.ErrAgentNotInitialised
	}
	state.Earnings, err = quantity.Add(state.Earnings, q)
	if nil != err {
		return err
	}
	p.log.Debugf("earn: %s  total: %s", q, state.Earnings)
	return putRecord(trx, storage.Pool.AgentState, p.selfKey, state)
}

func (p *Program) nameKey(name eos.AccountName) ([]byte, error) {
	rest, err := account.NameBytes(name)
	if nil != err {
		return nil, err
	}
	key := make([]byte, 0, len(p.selfKey)+len(rest))
	key = append(key, p.selfKey...)
	return append(key, rest...), nil
}

func (p *Program) sequenceKey(table string) []byte {
	key := make([]byte, 0, len(p.selfKey)+len(table))
	key = append(key, p.selfKey...)
	return append(key, table...)
}
