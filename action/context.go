// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package action

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/storage"
)

// kinds of event
const (
	KindBill       = "bill"
	KindClaim      = "claim"
	KindDeposit    = "deposit"
	KindMine       = "mine"
	KindTransfer   = "transfer"
	KindTransition = "transition"
)

// Event - something that happened during an action
type Event struct {
	Program eos.AccountName `json:"program"`
	Kind    string          `json:"kind"`
	Data    interface{}     `json:"data"`
}

// Context - state shared by one top level call and all of its inline
// calls and notifications
type Context struct {
	trx    storage.Transaction
	now    uint32
	auths  []eos.AccountName
	events *[]Event
}

// Trx - the open transaction
func (ctx *Context) Trx() storage.Transaction {
	return ctx.trx
}

// Now - seconds since the epoch, fixed for the whole call
func (ctx *Context) Now() uint32 {
	return ctx.now
}

// HasAuth - true if name authorised this call
func (ctx *Context) HasAuth(name eos.AccountName) bool {
	for _, a := range ctx.auths {
		if a == name {
			return true
		}
	}
	return false
}

// RequireAuth - fail unless name authorised this call
func (ctx *Context) RequireAuth(name eos.AccountName) error {
	if !ctx.HasAuth(name) {
		return fault.ErrMissingAuthority
	}
	return nil
}

// As - context for an inline call made by a program with its own
// authority
func (ctx *Context) As(actor eos.AccountName) *Context {
	return &Context{
		trx:    ctx.trx,
		now:    ctx.now,
		auths:  []eos.AccountName{actor},
		events: ctx.events,
	}
}

// Emit - record an event for publication after commit
func (ctx *Context) Emit(program eos.AccountName, kind string, data interface{}) {
	*ctx.events = append(*ctx.events, Event{
		Program: program,
		Kind:    kind,
		Data:    data,
	})
}
