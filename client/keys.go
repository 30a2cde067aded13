// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package client

import (
	"encoding/binary"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/quantity"
)

const (
	inheritanceSequence = "inheritance"
	transferSequence    = "transfer"
)

func (p *Program) namesKey(names ...eos.AccountName) ([]byte, error) {
	rest, err := account.NamesKey(names...)
	if nil != err {
		return nil, err
	}
	key := make([]byte, 0, len(p.selfKey)+len(rest)+8)
	key = append(key, p.selfKey...)
	return append(key, rest...), nil
}

func (p *Program) symbolKey(symbol eos.Symbol, names ...eos.AccountName) ([]byte, error) {
	key, err := p.namesKey(names...)
	if nil != err {
		return nil, err
	}
	code, err := quantity.CodeBytes(symbol)
	if nil != err {
		return nil, err
	}
	return append(key, code...), nil
}

func (p *Program) allocationKey(program eos.AccountName, symbol eos.Symbol) ([]byte, error) {
	return p.symbolKey(symbol, program)
}

func (p *Program) inheritanceIndexKey(inheritor eos.AccountName, program eos.AccountName, symbol eos.Symbol) ([]byte, error) {
	return p.symbolKey(symbol, inheritor, program)
}

// one key per distinct grant paid to a receiver: a later grant that
// differs in amount, start or cooldown gets its own key
func (p *Program) grantKey(program eos.AccountName, receiver eos.AccountName, grant eos.Asset, validFrom uint32, cooldownDuration uint32) ([]byte, error) {
	key, err := p.symbolKey(grant.Symbol, program, receiver)
	if nil != err {
		return nil, err
	}
	buffer := make([]byte, 16)
	binary.BigEndian.PutUint64(buffer[0:8], uint64(grant.Amount))
	binary.BigEndian.PutUint32(buffer[8:12], validFrom)
	binary.BigEndian.PutUint32(buffer[12:16], cooldownDuration)
	return append(key, buffer...), nil
}

func (p *Program) idKey(name eos.AccountName, id uint64) ([]byte, error) {
	key, err := p.namesKey(name)
	if nil != err {
		return nil, err
	}
	return appendID(key, id), nil
}

func (p *Program) sequenceKey(table string) []byte {
	key := make([]byte, 0, len(p.selfKey)+len(table))
	key = append(key, p.selfKey...)
	return append(key, table...)
}

func appendID(key []byte, id uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, id)
	return append(key, buffer...)
}
