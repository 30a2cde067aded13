// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package client

import (
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
)

// nil record and nil error if the key is absent
func getRecord(r storage.Reader, pool *storage.PoolHandle, key []byte) (record.Record, error) {
	packed := r.Get(pool, key)
	if nil == packed {
		return nil, nil
	}
	unpacked, _, err := record.Packed(packed).Unpack()
	return unpacked, err
}

func getFlag(r storage.Reader, key []byte) (*record.ClientFlag, error) {
	item, err := getRecord(r, storage.Pool.ClientFlags, key)
	if nil != err || nil == item {
		return nil, err
	}
	f, ok := item.(*record.ClientFlag)
	if !ok {
		return nil, fault.ErrWrongRecordType
	}
	return f, nil
}

func getAllocation(r storage.Reader, key []byte) (*record.Allocation, error) {
	item, err := getRecord(r, storage.Pool.Allocations, key)
	if nil != err || nil == item {
		return nil, err
	}
	a, ok := item.(*record.Allocation)
	if !ok {
		return nil, fault.ErrWrongRecordType
	}
	return a, nil
}

func getInheritance(r storage.Reader, key []byte) (*record.Inheritance, error) {
	item, err := getRecord(r, storage.Pool.Inheritances, key)
	if nil != err || nil == item {
		return nil, err
	}
	i, ok := item.(*record.Inheritance)
	if !ok {
		return nil, fault.ErrWrongRecordType
	}
	return i, nil
}

func getTransfer(r storage.Reader, key []byte) (*record.Transfer, error) {
	item, err := getRecord(r, storage.Pool.Transfers, key)
	if nil != err || nil == item {
		return nil, err
	}
	t, ok := item.(*record.Transfer)
	if !ok {
		return nil, fault.ErrWrongRecordType
	}
	return t, nil
}

func putRecord(trx storage.Transaction, pool *storage.PoolHandle, key []byte, r record.Record) error {
	packed, err := r.Pack()
	if nil != err {
		return err
	}
	trx.Put(pool, key, packed)
	return nil
}
