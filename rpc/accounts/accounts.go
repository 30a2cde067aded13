// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package accounts - RPC access to the account directory
package accounts

import (
	"github.com/eoscanada/eos-go"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/directory"
	"github.com/bitmark-inc/inheritd/rpc/authority"
	"github.com/bitmark-inc/inheritd/rpc/ratelimit"
	"github.com/bitmark-inc/inheritd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitAccounts = 200
	rateBurstAccounts = 100
)

// MethodCreate - name signed by a create request
const MethodCreate = "Accounts.Create"

// Accounts - type for the RPC
type Accounts struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Executor *action.Executor
	Keys     authority.KeyLookup
}

// New - account RPC
func New(log *logger.L, executor *action.Executor, keys authority.KeyLookup) *Accounts {
	return &Accounts{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitAccounts, rateBurstAccounts),
		Executor: executor,
		Keys:     keys,
	}
}

// CreateArguments - an existing account sponsors a new one
type CreateArguments struct {
	account.Authorisation
	Name      string            `json:"name"`
	PublicKey account.PublicKey `json:"publicKey"`
}

// CreateReply - the new account
type CreateReply struct {
	Name eos.AccountName `json:"name"`
}

// Create - add an account to the directory
func (accounts *Accounts) Create(arguments *CreateArguments, reply *CreateReply) error {

	if err := ratelimit.Limit(accounts.Limiter); nil != err {
		return err
	}

	name, err := account.ParseName(arguments.Name)
	if nil != err {
		return err
	}

	err = authority.Execute(accounts.Executor, accounts.Keys, MethodCreate, arguments, func(ctx *action.Context) error {
		return directory.Create(ctx.Trx(), name, arguments.PublicKey, ctx.Now())
	})
	if nil != err {
		return err
	}

	accounts.Log.Infof("created: %s  by: %s", name, arguments.Actor)

	reply.Name = name
	return nil
}

// GetArguments - account to look up
type GetArguments struct {
	Name string `json:"name"`
}

// GetReply - public details of an account
type GetReply struct {
	Name      eos.AccountName   `json:"name"`
	PublicKey account.PublicKey `json:"publicKey"`
	Created   uint32            `json:"created"`
}

// Get - fetch an account
func (accounts *Accounts) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(accounts.Limiter); nil != err {
		return err
	}

	name, err := account.ParseName(arguments.Name)
	if nil != err {
		return err
	}

	a, err := directory.Get(storage.Committed, name)
	if nil != err {
		return err
	}

	reply.Name = a.Name
	reply.PublicKey = account.PublicKey(a.PublicKey)
	reply.Created = a.Created
	return nil
}
