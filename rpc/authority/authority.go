// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authority - turn a signed RPC request into the set of
// accounts that authorised it
package authority

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/storage"
)

// KeyLookup - public key of an account and its record of used nonces
type KeyLookup interface {
	PublicKey(storage.Reader, eos.AccountName) (account.PublicKey, error)
	UseNonce(storage.Transaction, eos.AccountName, uint64) error
}

// Check - verify the request signature against the actor's stored
// key and return the actor as the only authority
func Check(keys KeyLookup, method string, args account.Signable) ([]eos.AccountName, error) {
	auth := args.Authority()
	if nil == auth || "" == auth.Actor {
		return nil, fault.ErrMissingAuthority
	}

	publicKey, err := keys.PublicKey(storage.Committed, auth.Actor)
	if nil != err {
		return nil, fault.ErrUnknownAccount
	}

	err = account.Verify(method, args, publicKey)
	if nil != err {
		return nil, err
	}
	return []eos.AccountName{auth.Actor}, nil
}

// Execute - Check then run f as one action authorised by the actor
//
// an expired request or one whose nonce the actor already used is
// refused inside the action's transaction, so the nonce is only
// consumed when f succeeds
func Execute(executor *action.Executor, keys KeyLookup, method string, args account.Signable, f func(*action.Context) error) error {
	auths, err := Check(keys, method, args)
	if nil != err {
		return err
	}
	auth := args.Authority()
	return executor.Execute(method, auths, func(ctx *action.Context) error {
		if ctx.Now() > auth.Expires {
			return fault.ErrRequestExpired
		}
		err := keys.UseNonce(ctx.Trx(), auth.Actor, auth.Nonce)
		if nil != err {
			return err
		}
		return f(ctx)
	})
}
