// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - a single atomic batch of writes across all pools
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

// TransactionData - Transaction over one Access
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - start collecting writes
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - store a key/value pair
func (t *TransactionData) Put(p *PoolHandle, key []byte, value []byte) {
	p.put(key, value)
}

// PutN - store a big endian uint64
func (t *TransactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	p.putN(key, value)
}

// Delete - remove a key
func (t *TransactionData) Delete(p *PoolHandle, key []byte) {
	p.remove(key)
}

// Get - value including this transaction's changes, nil if absent
func (t *TransactionData) Get(p *PoolHandle, key []byte) []byte {
	return p.get(key)
}

// GetN - big endian uint64 including this transaction's changes
func (t *TransactionData) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return p.getN(key)
}

// Has - presence including this transaction's changes
func (t *TransactionData) Has(p *PoolHandle, key []byte) bool {
	return p.has(key)
}

// Commit - write everything then reset for the next Begin
func (t *TransactionData) Commit() error {
	err := t.access.Commit()
	t.access.Abort()
	return err
}

// Abort - drop everything
func (t *TransactionData) Abort() {
	t.access.Abort()
}

// InUse - between Begin and Commit/Abort
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}
