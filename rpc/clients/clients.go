// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package clients - RPC access to the client inheritance programs
//
// state changing calls act on the program of the signing account
package clients

import (
	"github.com/eoscanada/eos-go"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/client"
	"github.com/bitmark-inc/inheritd/constants"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/quantity"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/rpc/authority"
	"github.com/bitmark-inc/inheritd/rpc/ratelimit"
	"github.com/bitmark-inc/inheritd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitClients = 200
	rateBurstClients = 100
)

// method names covered by request signatures
const (
	MethodInit       = "Clients.Init"
	MethodSetEnable  = "Clients.SetEnable"
	MethodAllocate   = "Clients.Allocate"
	MethodUnallocate = "Clients.Unallocate"
	MethodFreeze     = "Clients.Freeze"
)

// Clients - type for the RPC
type Clients struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Executor *action.Executor
	Keys     authority.KeyLookup
	Programs map[eos.AccountName]*client.Program
}

// New - client RPC over the hosted programs
func New(log *logger.L, executor *action.Executor, keys authority.KeyLookup, programs map[eos.AccountName]*client.Program) *Clients {
	return &Clients{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitClients, rateBurstClients),
		Executor: executor,
		Keys:     keys,
		Programs: programs,
	}
}

func (clients *Clients) program(name eos.AccountName) (*client.Program, error) {
	p, ok := clients.Programs[name]
	if !ok {
		return nil, fault.ErrNoClientProgram
	}
	return p, nil
}

// run f against the signer's own program
func (clients *Clients) execute(method string, arguments account.Signable, f func(*action.Context, *client.Program) error) error {
	if err := ratelimit.Limit(clients.Limiter); nil != err {
		return err
	}
	return authority.Execute(clients.Executor, clients.Keys, method, arguments, func(ctx *action.Context) error {
		p, err := clients.program(arguments.Authority().Actor)
		if nil != err {
			return err
		}
		return f(ctx, p)
	})
}

// Reply - result of a state changing call
type Reply struct {
	Ok bool `json:"ok"`
}

// ---

// InitArguments - signed by the client
type InitArguments struct {
	account.Authorisation
}

// Init - create the client's flag row
func (clients *Clients) Init(arguments *InitArguments, reply *Reply) error {
	err := clients.execute(MethodInit, arguments, func(ctx *action.Context, p *client.Program) error {
		return p.Init(ctx)
	})
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// SetEnableArguments - signed by the client
type SetEnableArguments struct {
	account.Authorisation
	Enabled bool `json:"enabled"`
}

// SetEnable - allow or stop mining against the client
func (clients *Clients) SetEnable(arguments *SetEnableArguments, reply *Reply) error {
	err := clients.execute(MethodSetEnable, arguments, func(ctx *action.Context, p *client.Program) error {
		return p.SetEnable(ctx, arguments.Enabled)
	})
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// AllocateArguments - signed by the client
type AllocateArguments struct {
	account.Authorisation
	Inheritor        eos.AccountName `json:"inheritor"`
	Program          eos.AccountName `json:"program"`
	Quantity         string          `json:"quantity"`
	ValidFrom        uint32          `json:"validFrom"`
	CooldownDuration uint32          `json:"cooldownDuration"`
	Remark           string          `json:"remark"`
}

// Allocate - reserve part of the client's balance for an inheritor
func (clients *Clients) Allocate(arguments *AllocateArguments, reply *Reply) error {
	q, err := quantity.Parse(arguments.Quantity)
	if nil != err {
		return err
	}
	grant := client.Grant{
		Inheritor:        arguments.Inheritor,
		Program:          arguments.Program,
		Quantity:         q,
		ValidFrom:        arguments.ValidFrom,
		CooldownDuration: arguments.CooldownDuration,
		Remark:           arguments.Remark,
	}
	err = clients.execute(MethodAllocate, arguments, func(ctx *action.Context, p *client.Program) error {
		return p.Allocate(ctx, grant)
	})
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// TargetArguments - one inheritance, signed by the client
type TargetArguments struct {
	account.Authorisation
	Inheritor eos.AccountName `json:"inheritor"`
	Program   eos.AccountName `json:"program"`
	Symbol    string          `json:"symbol"`
}

// Unallocate - cancel an inheritance and release its reservation
func (clients *Clients) Unallocate(arguments *TargetArguments, reply *Reply) error {
	symbol, err := quantity.ParseSymbol(arguments.Symbol)
	if nil != err {
		return err
	}
	err = clients.execute(MethodUnallocate, arguments, func(ctx *action.Context, p *client.Program) error {
		return p.Unallocate(ctx, arguments.Inheritor, arguments.Program, symbol)
	})
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// Freeze - stop an inheritance from being mined
func (clients *Clients) Freeze(arguments *TargetArguments, reply *Reply) error {
	symbol, err := quantity.ParseSymbol(arguments.Symbol)
	if nil != err {
		return err
	}
	err = clients.execute(MethodFreeze, arguments, func(ctx *action.Context, p *client.Program) error {
		return p.Freeze(ctx, arguments.Inheritor, arguments.Program, symbol)
	})
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// ---

// StatusArguments - client to query
type StatusArguments struct {
	Client eos.AccountName `json:"client"`
}

// Status - the client's init and enable flags
func (clients *Clients) Status(arguments *StatusArguments, reply *client.Status) error {
	if err := ratelimit.Limit(clients.Limiter); nil != err {
		return err
	}
	p, err := clients.program(arguments.Client)
	if nil != err {
		return err
	}
	status, err := p.Status(storage.Committed)
	if nil != err {
		return err
	}
	*reply = status
	return nil
}

// AllocationsArguments - client and token program to query
type AllocationsArguments struct {
	Client  eos.AccountName `json:"client"`
	Program eos.AccountName `json:"program"`
}

// AllocationsReply - every allocation of the program
type AllocationsReply struct {
	Allocations []record.Allocation `json:"allocations"`
}

// Allocations - the client's allocation rows for one token program
func (clients *Clients) Allocations(arguments *AllocationsArguments, reply *AllocationsReply) error {
	if err := ratelimit.Limit(clients.Limiter); nil != err {
		return err
	}
	p, err := clients.program(arguments.Client)
	if nil != err {
		return err
	}
	allocations, err := p.Allocations(arguments.Program)
	if nil != err {
		return err
	}
	reply.Allocations = allocations
	return nil
}

// InheritancesArguments - client and inheritor to query
type InheritancesArguments struct {
	Client    eos.AccountName `json:"client"`
	Inheritor eos.AccountName `json:"inheritor"`
}

// InheritancesReply - live inheritances
type InheritancesReply struct {
	Inheritances []record.Inheritance `json:"inheritances"`
}

// Inheritances - what one inheritor will get from the client
func (clients *Clients) Inheritances(arguments *InheritancesArguments, reply *InheritancesReply) error {
	if err := ratelimit.Limit(clients.Limiter); nil != err {
		return err
	}
	p, err := clients.program(arguments.Client)
	if nil != err {
		return err
	}
	inheritances, err := p.Inheritances(arguments.Inheritor)
	if nil != err {
		return err
	}
	reply.Inheritances = inheritances
	return nil
}

// TransfersArguments - page of the transfer history
type TransfersArguments struct {
	Client  eos.AccountName `json:"client"`
	Program eos.AccountName `json:"program"`
	Start   uint64          `json:"start,string"`
	Count   int             `json:"count"`
}

// TransfersReply - one page and where the next starts
type TransfersReply struct {
	Next      uint64            `json:"next,string"`
	Transfers []record.Transfer `json:"transfers"`
}

// Transfers - completed inheritances of one token program
func (clients *Clients) Transfers(arguments *TransfersArguments, reply *TransfersReply) error {
	if err := ratelimit.LimitN(clients.Limiter, arguments.Count, constants.MaximumQueryItemsCount); nil != err {
		return err
	}
	p, err := clients.program(arguments.Client)
	if nil != err {
		return err
	}
	transfers, next, err := p.Transfers(arguments.Program, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Transfers = transfers
	reply.Next = next
	return nil
}
