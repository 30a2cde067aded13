// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package directory - the set of known accounts and their public keys
package directory

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
)

// Entry - one account to create at start up
type Entry struct {
	Name      eos.AccountName
	PublicKey account.PublicKey
}

// Accounts - the directory as a value, for callers that take an
// interface
type Accounts struct{}

// Exists - implements protocol.Accounts
func (Accounts) Exists(r storage.Reader, name eos.AccountName) bool {
	return Exists(r, name)
}

// PublicKey - implements the RPC key lookup
func (Accounts) PublicKey(r storage.Reader, name eos.AccountName) (account.PublicKey, error) {
	return PublicKey(r, name)
}

// UseNonce - implements the RPC replay check
func (Accounts) UseNonce(trx storage.Transaction, name eos.AccountName, nonce uint64) error {
	return UseNonce(trx, name, nonce)
}

// Create - add a new account
func Create(trx storage.Transaction, name eos.AccountName, publicKey account.PublicKey, now uint32) error {
	key, err := account.NameBytes(name)
	if nil != err {
		return err
	}
	if trx.Has(storage.Pool.Accounts, key) {
		return fault.ErrAccountAlreadyExists
	}

	r := &record.Account{
		Name:      name,
		PublicKey: publicKey,
		Created:   now,
	}
	packed, err := r.Pack()
	if nil != err {
		return err
	}
	trx.Put(storage.Pool.Accounts, key, packed)
	return nil
}

// Exists - true if the account has been created
func Exists(r storage.Reader, name eos.AccountName) bool {
	key, err := account.NameBytes(name)
	if nil != err {
		return false
	}
	return r.Has(storage.Pool.Accounts, key)
}

// Get - the account record
func Get(r storage.Reader, name eos.AccountName) (*record.Account, error) {
	key, err := account.NameBytes(name)
	if nil != err {
		return nil, err
	}
	packed := r.Get(storage.Pool.Accounts, key)
	if nil == packed {
		return nil, fault.ErrUnknownAccount
	}
	unpacked, _, err := record.Packed(packed).Unpack()
	if nil != err {
		return nil, err
	}
	a, ok := unpacked.(*record.Account)
	if !ok {
		return nil, fault.ErrWrongRecordType
	}
	return a, nil
}

// PublicKey - key used to verify the account's requests
func PublicKey(r storage.Reader, name eos.AccountName) (account.PublicKey, error) {
	a, err := Get(r, name)
	if nil != err {
		return nil, err
	}
	return account.PublicKey(a.PublicKey), nil
}

// UseNonce - record the nonce of an accepted request, a nonce that
// does not exceed the last one recorded for the account is refused
func UseNonce(trx storage.Transaction, name eos.AccountName, nonce uint64) error {
	key, err := account.NameBytes(name)
	if nil != err {
		return err
	}
	if !trx.Has(storage.Pool.Accounts, key) {
		return fault.ErrUnknownAccount
	}
	last, found := trx.GetN(storage.Pool.Nonces, key)
	if found && nonce <= last {
		return fault.ErrNonceReused
	}
	trx.PutN(storage.Pool.Nonces, key, nonce)
	return nil
}

// Load - create any configured accounts that do not yet exist
//
// an existing account keeps its stored key
func Load(trx storage.Transaction, entries []Entry, now uint32) (int, error) {
	created := 0
	for _, e := range entries {
		if Exists(trx, e.Name) {
			continue
		}
		err := Create(trx, e.Name, e.PublicKey, now)
		if nil != err {
			return created, err
		}
		created += 1
	}
	return created, nil
}
