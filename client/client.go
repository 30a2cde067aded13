// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package client

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/protocol"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
	"github.com/bitmark-inc/inheritd/trust"
	"github.com/bitmark-inc/logger"
)

// Program - one client account's inheritance program
type Program struct {
	log      *logger.L
	self     eos.AccountName
	selfKey  []byte
	tokens   protocol.Tokens
	accounts protocol.Accounts
	trust    trust.Checker
	agents   protocol.AgentLookup
}

// Status - the init-once flag
type Status struct {
	Initialised   bool `json:"initialised"`
	MiningEnabled bool `json:"miningEnabled"`
}

// New - program for the client account self
func New(log *logger.L, self eos.AccountName, tokens protocol.Tokens, accounts protocol.Accounts, checker trust.Checker, agents protocol.AgentLookup) (*Program, error) {
	selfKey, err := account.NameBytes(self)
	if nil != err {
		return nil, err
	}
	return &Program{
		log:      log,
		self:     self,
		selfKey:  selfKey,
		tokens:   tokens,
		accounts: accounts,
		trust:    checker,
		agents:   agents,
	}, nil
}

// Name - the client account
func (p *Program) Name() eos.AccountName {
	return p.self
}

// Init - create the flag with mining disabled
func (p *Program) Init(ctx *action.Context) error {
	if err := ctx.RequireAuth(p.self); nil != err {
		return err
	}
	trx := ctx.Trx()
	if trx.Has(storage.Pool.ClientFlags, p.selfKey) {
		return fault.ErrAlreadyInitialised
	}
	err := putRecord(trx, storage.Pool.ClientFlags, p.selfKey, &record.ClientFlag{Enabled: false})
	if nil != err {
		return err
	}
	p.log.Infof("client: %s  initialised", p.self)
	return nil
}

// SetEnable - turn mining on or off
func (p *Program) SetEnable(ctx *action.Context, enabled bool) error {
	if err := ctx.RequireAuth(p.self); nil != err {
		return err
	}
	trx := ctx.Trx()
	flag, err := getFlag(trx, p.selfKey)
	if nil != err {
		return err
	}
	if nil == flag {
		return fault.ErrContractNotInitialised
	}
	if flag.Enabled == enabled {
		return nil
	}
	flag.Enabled = enabled
	err = putRecord(trx, storage.Pool.ClientFlags, p.selfKey, flag)
	if nil != err {
		return err
	}
	p.log.Infof("client: %s  mining enabled: %t", p.self, enabled)
	return nil
}

// Status - read the flag, an uninitialised client has mining disabled
func (p *Program) Status(r storage.Reader) (Status, error) {
	flag, err := getFlag(r, p.selfKey)
	if nil != err {
		return Status{}, err
	}
	if nil == flag {
		return Status{}, nil
	}
	return Status{
		Initialised:   true,
		MiningEnabled: flag.Enabled,
	}, nil
}

// Inheritance - implements protocol.InheritanceReader
func (p *Program) Inheritance(r storage.Reader, inheritor eos.AccountName, program eos.AccountName, symbol eos.Symbol) (*record.Inheritance, error) {
	i, _, err := p.findInheritance(r, inheritor, program, symbol)
	if nil != err {
		return nil, err
	}
	if nil == i {
		return nil, fault.ErrInheritanceNotSpecified
	}
	return i, nil
}

// look up through the unique (program, symbol) index, nil if absent
func (p *Program) findInheritance(r storage.Reader, inheritor eos.AccountName, program eos.AccountName, symbol eos.Symbol) (*record.Inheritance, []byte, error) {
	indexKey, err := p.inheritanceIndexKey(inheritor, program, symbol)
	if nil != err {
		return nil, nil, err
	}
	id, found := r.GetN(storage.Pool.InheritanceTokens, indexKey)
	if !found {
		return nil, nil, nil
	}
	key, err := p.idKey(inheritor, id)
	if nil != err {
		return nil, nil, err
	}
	i, err := getInheritance(r, key)
	if nil != err {
		return nil, nil, err
	}
	if nil == i {
		return nil, nil, fault.ErrAllocationOutOfSync
	}
	return i, key, nil
}
