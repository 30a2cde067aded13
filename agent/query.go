// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agent

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
)

// Miner - one miner's account, committed data
func (p *Program) Miner(name eos.AccountName) (*record.Miner, error) {
	key, err := p.nameKey(name)
	if nil != err {
		return nil, err
	}
	m, err := getMiner(storage.Committed, key)
	if nil != err {
		return nil, err
	}
	if nil == m {
		return nil, fault.ErrMinerNotFound
	}
	return m, nil
}

// Client - one client's account, committed data
func (p *Program) Client(name eos.AccountName) (*record.Client, error) {
	key, err := p.nameKey(name)
	if nil != err {
		return nil, err
	}
	c, err := getClient(storage.Committed, key)
	if nil != err {
		return nil, err
	}
	if nil == c {
		return nil, fault.ErrClientNotFound
	}
	return c, nil
}

// Miners - every miner account in name order
func (p *Program) Miners() ([]record.Miner, error) {
	miners := make([]record.Miner, 0, 8)
	err := storage.Pool.Miners.NewPrefixCursor(p.selfKey).Map(func(key []byte, value []byte) error {
		item, _, err := record.Packed(value).Unpack()
		if nil != err {
			return err
		}
		m, ok := item.(*record.Miner)
		if !ok {
			return fault.ErrWrongRecordType
		}
		miners = append(miners, *m)
		return nil
	})
	return miners, err
}

// Clients - every client account in name order
func (p *Program) Clients() ([]record.Client, error) {
	clients := make([]record.Client, 0, 8)
	err := storage.Pool.Clients.NewPrefixCursor(p.selfKey).Map(func(key []byte, value []byte) error {
		item, _, err := record.Packed(value).Unpack()
		if nil != err {
			return err
		}
		c, ok := item.(*record.Client)
		if !ok {
			return fault.ErrWrongRecordType
		}
		clients = append(clients, *c)
		return nil
	})
	return clients, err
}
