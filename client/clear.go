// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package client

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
)

// maintenance operations, only for use on a stopped node
//
// each one removes committed rows through trx and returns the number
// of rows removed

// ClearInheritances - remove all of an inheritor's inheritances
func (p *Program) ClearInheritances(trx storage.Transaction, inheritor eos.AccountName) (int, error) {
	prefix, err := p.namesKey(inheritor)
	if nil != err {
		return 0, err
	}
	n := 0
	err = storage.Pool.Inheritances.NewPrefixCursor(prefix).Map(func(key []byte, value []byte) error {
		item, _, err := record.Packed(value).Unpack()
		if nil != err {
			return err
		}
		i, ok := item.(*record.Inheritance)
		if !ok {
			return fault.ErrWrongRecordType
		}
		n += 1
		return p.deleteInheritance(trx, inheritor, key, i)
	})
	if nil == err {
		p.log.Warnf("client: %s  cleared: %d inheritances of: %s", p.self, n, inheritor)
	}
	return n, err
}

// ClearAllocations - remove all allocations in a token program
func (p *Program) ClearAllocations(trx storage.Transaction, program eos.AccountName) (int, error) {
	prefix, err := p.namesKey(program)
	if nil != err {
		return 0, err
	}
	n, err := deleteAll(trx, storage.Pool.Allocations, prefix)
	if nil == err {
		p.log.Warnf("client: %s  cleared: %d allocations in: %s", p.self, n, program)
	}
	return n, err
}

// ClearTransfers - remove the transfer history of a token program
func (p *Program) ClearTransfers(trx storage.Transaction, program eos.AccountName) (int, error) {
	prefix, err := p.namesKey(program)
	if nil != err {
		return 0, err
	}
	n, err := deleteAll(trx, storage.Pool.Transfers, prefix)
	if nil != err {
		return n, err
	}
	_, err = deleteAll(trx, storage.Pool.TransferReceivers, prefix)
	if nil == err {
		p.log.Warnf("client: %s  cleared: %d transfers in: %s", p.self, n, program)
	}
	return n, err
}

func deleteAll(trx storage.Transaction, pool *storage.PoolHandle, prefix []byte) (int, error) {
	n := 0
	err := pool.NewPrefixCursor(prefix).Map(func(key []byte, value []byte) error {
		trx.Delete(pool, key)
		n += 1
		return nil
	})
	return n, err
}
