// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agent

import (
	"encoding/binary"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
)

// the two audit logs
type billLog int

const (
	minerBills billLog = iota
	clientBills
)

func (l billLog) pool() *storage.PoolHandle {
	if minerBills == l {
		return storage.Pool.MinerBills
	}
	return storage.Pool.ClientBills
}

func (l billLog) sequence() string {
	if minerBills == l {
		return "minerbill"
	}
	return "clientbill"
}

// append a bill and publish it
func (p *Program) addBill(ctx *action.Context, log billLog, payer eos.AccountName, payee eos.AccountName, q eos.Asset, kind record.BillType) error {
	trx := ctx.Trx()
	id := storage.NextSequence(trx, p.sequenceKey(log.sequence()))
	bill := &record.Bill{
		ID:        id,
		Payer:     payer,
		Payee:     payee,
		Quantity:  q,
		Kind:      kind,
		Timestamp: ctx.Now(),
	}
	err := putRecord(trx, log.pool(), p.billKey(id), bill)
	if nil != err {
		return err
	}
	p.log.Debugf("bill: %d  %s  payer: %s  payee: %s  quantity: %s", id, kind, payer, payee, q)
	ctx.Emit(p.self, action.KindBill, *bill)
	return nil
}

func (p *Program) billKey(id uint64) []byte {
	key := make([]byte, len(p.selfKey)+8)
	copy(key, p.selfKey)
	binary.BigEndian.PutUint64(key[len(p.selfKey):], id)
	return key
}

// MinerBills - page of the miner audit log, committed data
//
// returns the id to start the next page from
func (p *Program) MinerBills(start uint64, count int) ([]record.Bill, uint64, error) {
	return p.bills(minerBills, start, count)
}

// ClientBills - page of the client audit log, committed data
func (p *Program) ClientBills(start uint64, count int) ([]record.Bill, uint64, error) {
	return p.bills(clientBills, start, count)
}

func (p *Program) bills(log billLog, start uint64, count int) ([]record.Bill, uint64, error) {
	cursor := log.pool().NewPrefixCursor(p.selfKey).Seek(p.billKey(start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, 0, err
	}

	next := start
	bills := make([]record.Bill, 0, len(elements))
	for _, e := range elements {
		item, _, err := record.Packed(e.Value).Unpack()
		if nil != err {
			return nil, 0, err
		}
		b, ok := item.(*record.Bill)
		if !ok {
			return nil, 0, fault.ErrWrongRecordType
		}
		bills = append(bills, *b)
		next = b.ID + 1
	}
	return bills, next, nil
}
