// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agent

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

func getState(r storage.Reader, key []byte) (*record.AgentState, error) {
	item, err := getRecord(r, storage.Pool.AgentState, key)
	if nil != err || nil == item {
		return nil, err
	}
	s, ok := item.(*record.AgentState)
	if !ok {
		return nil, fault.ErrWrongRecordType
	}
	return s, nil
}

func getMiner(r storage.Reader, key []byte) (*record.Miner, error) {
	item, err := getRecord(r, storage.Pool.Miners, key)
	if nil != err || nil == item {
		return nil, err
	}
	m, ok := item.(*record.Miner)
	if !ok {
		return nil, fault.ErrWrongRecordType
	}
	return m, nil
}

func getClient(r storage.Reader, key []byte) (*record.Client, error) {
	item, err := getRecord(r, storage.Pool.Clients, key)
	if nil != err || nil == item {
		return nil, err
	}
	c, ok := item.(*record.Client)
	if !ok {
		return nil, fault.ErrWrongRecordType
	}
	return c, nil
}

func putRecord(trx storage.Transaction, pool *storage.PoolHandle, key []byte, r record.Record) error {
	packed, err := r.Pack()
	if nil != err {
		return err
	}
	trx.Put(pool, key, packed)
	return nil
}
