// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package client

import (
	"encoding/binary"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
)

// Allocations - every allocation in one token program, committed data
func (p *Program) Allocations(program eos.AccountName) ([]record.Allocation, error) {
	prefix, err := p.namesKey(program)
	if nil != err {
		return nil, err
	}
	allocations := make([]record.Allocation, 0, 4)
	err = storage.Pool.Allocations.NewPrefixCursor(prefix).Map(func(key []byte, value []byte) error {
		item, _, err := record.Packed(value).Unpack()
		if nil != err {
			return err
		}
		a, ok := item.(*record.Allocation)
		if !ok {
			return fault.ErrWrongRecordType
		}
		allocations = append(allocations, *a)
		return nil
	})
	return allocations, err
}

// Inheritances - every live inheritance for one inheritor, committed data
func (p *Program) Inheritances(inheritor eos.AccountName) ([]record.Inheritance, error) {
	prefix, err := p.namesKey(inheritor)
	if nil != err {
		return nil, err
	}
	inheritances := make([]record.Inheritance, 0, 4)
	err = storage.Pool.Inheritances.NewPrefixCursor(prefix).Map(func(key []byte, value []byte) error {
		item, _, err := record.Packed(value).Unpack()
		if nil != err {
			return err
		}
		i, ok := item.(*record.Inheritance)
		if !ok {
			return fault.ErrWrongRecordType
		}
		inheritances = append(inheritances, *i)
		return nil
	})
	return inheritances, err
}

// Transfers - page of the transfer history for one token program
//
// returns the id to start the next page from
func (p *Program) Transfers(program eos.AccountName, start uint64, count int) ([]record.Transfer, uint64, error) {
	prefix, err := p.namesKey(program)
	if nil != err {
		return nil, 0, err
	}
	cursor := storage.Pool.Transfers.NewPrefixCursor(prefix).Seek(appendID(prefix, start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, 0, err
	}

	next := start
	transfers := make([]record.Transfer, 0, len(elements))
	for _, e := range elements {
		item, _, err := record.Packed(e.Value).Unpack()
		if nil != err {
			return nil, 0, err
		}
		t, ok := item.(*record.Transfer)
		if !ok {
			return nil, 0, fault.ErrWrongRecordType
		}
		transfers = append(transfers, *t)
		next = binary.BigEndian.Uint64(e.Key[len(e.Key)-8:]) + 1
	}
	return transfers, next, nil
}
