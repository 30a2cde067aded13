// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agent

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/quantity"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
)

// DepositFor - what an incoming transfer pays for
type DepositFor uint8

// deposit kinds, selected by the transfer memo
const (
	DepositUnknown DepositFor = iota
	DepositMiner
	DepositClient
)

// memo returned with a refunded transfer
const refundMemo = "only accept memo: 'miner' or 'client'"

// ParseDeposit - decode a transfer memo
func ParseDeposit(memo string) DepositFor {
	switch memo {
	case "miner":
		return DepositMiner
	case "client":
		return DepositClient
	default:
		return DepositUnknown
	}
}

func (d DepositFor) String() string {
	switch d {
	case DepositMiner:
		return "miner"
	case DepositClient:
		return "client"
	default:
		return "*unknown*"
	}
}

// MarshalText - for JSON
func (d DepositFor) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Deposit - payload of a deposit event
type Deposit struct {
	From     eos.AccountName `json:"from"`
	For      DepositFor      `json:"for"`
	Quantity eos.Asset       `json:"quantity"`
}

// OnTransfer - implements token.Notifiable
//
// only transfers to the agent are handled, an unrecognised memo sends
// the tokens straight back
func (p *Program) OnTransfer(ctx *action.Context, program eos.AccountName, from eos.AccountName, to eos.AccountName, q eos.Asset, memo string) error {
	if to != p.self {
		return nil
	}

	kind := ParseDeposit(memo)
	if DepositUnknown == kind {
		p.log.Warnf("refund: %s@%s  to: %s  memo: %q", q, program, from, memo)
		return p.tokens.Transfer(ctx.As(p.self), program, p.self, from, q, refundMemo)
	}

	if program != p.economics.Program || !quantity.SameSymbol(q.Symbol, p.economics.Symbol) {
		return fault.ErrDepositSymbolMismatch
	}

	trx := ctx.Trx()
	key, err := p.nameKey(from)
	if nil != err {
		return err
	}

	switch kind {
	case DepositMiner:
		err = p.depositMiner(trx, key, from, q)
	case DepositClient:
		err = p.depositClient(trx, key, from, q)
	}
	if nil != err {
		return err
	}

	p.log.Infof("deposit: %s  from: %s  for: %s", q, from, kind)
	ctx.Emit(p.self, action.KindDeposit, Deposit{
		From:     from,
		For:      kind,
		Quantity: q,
	})
	return nil
}

func (p *Program) depositMiner(trx storage.Transaction, key []byte, from eos.AccountName, q eos.Asset) error {
	m, err := getMiner(trx, key)
	if nil != err {
		return err
	}
	if nil == m {
		m = &record.Miner{
			Miner:   from,
			Deposit: q,
			Fee:     quantity.Zero(q.Symbol),
			Reward:  quantity.Zero(q.Symbol),
		}
	} else {
		m.Deposit, err = quantity.Add(m.Deposit, q)
		if nil != err {
			return err
		}
	}
	return putRecord(trx, storage.Pool.Miners, key, m)
}

func (p *Program) depositClient(trx storage.Transaction, key []byte, from eos.AccountName, q eos.Asset) error {
	c, err := getClient(trx, key)
	if nil != err {
		return err
	}
	if nil == c {
		c = &record.Client{
			Client:  from,
			Deposit: q,
			Fee:     quantity.Zero(q.Symbol),
			Refund:  q,
		}
	} else {
		c.Deposit, err = quantity.Add(c.Deposit, q)
		if nil != err {
			return err
		}
		c.Refund, err = quantity.Add(c.Refund, q)
		if nil != err {
			return err
		}
	}
	return putRecord(trx, storage.Pool.Clients, key, c)
}
