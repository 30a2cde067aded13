// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tokens - RPC access to the token ledger
//
// quantities travel as text e.g. "1.0000 EOS" and symbols as
// "precision,TICKER" e.g. "4,EOS"
package tokens

import (
	"github.com/eoscanada/eos-go"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/quantity"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/rpc/authority"
	"github.com/bitmark-inc/inheritd/rpc/ratelimit"
	"github.com/bitmark-inc/inheritd/storage"
	"github.com/bitmark-inc/inheritd/token"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitTokens = 200
	rateBurstTokens = 100
)

// method names covered by request signatures
const (
	MethodCreate   = "Tokens.Create"
	MethodIssue    = "Tokens.Issue"
	MethodTransfer = "Tokens.Transfer"
)

// Tokens - type for the RPC
type Tokens struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Executor *action.Executor
	Ledger   *token.Ledger
	Keys     authority.KeyLookup
}

// New - token RPC
func New(log *logger.L, executor *action.Executor, ledger *token.Ledger, keys authority.KeyLookup) *Tokens {
	return &Tokens{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitTokens, rateBurstTokens),
		Executor: executor,
		Ledger:   ledger,
		Keys:     keys,
	}
}

// Reply - result of a state changing call
type Reply struct {
	Ok bool `json:"ok"`
}

// ---

// CreateArguments - signed by the token program account
type CreateArguments struct {
	account.Authorisation
	Issuer        eos.AccountName `json:"issuer"`
	MaximumSupply string          `json:"maximumSupply"`
}

// Create - new symbol in the actor's program
func (tokens *Tokens) Create(arguments *CreateArguments, reply *Reply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	maximumSupply, err := quantity.Parse(arguments.MaximumSupply)
	if nil != err {
		return err
	}

	err = authority.Execute(tokens.Executor, tokens.Keys, MethodCreate, arguments, func(ctx *action.Context) error {
		return tokens.Ledger.Create(ctx, arguments.Actor, arguments.Issuer, maximumSupply)
	})
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// ---

// MoveArguments - Issue (signed by the issuer) and Transfer (signed by
// the sender)
type MoveArguments struct {
	account.Authorisation
	Program  eos.AccountName `json:"program"`
	To       eos.AccountName `json:"to"`
	Quantity string          `json:"quantity"`
	Memo     string          `json:"memo"`
}

// Issue - mint tokens and pass them to "to"
func (tokens *Tokens) Issue(arguments *MoveArguments, reply *Reply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	q, err := quantity.Parse(arguments.Quantity)
	if nil != err {
		return err
	}

	err = authority.Execute(tokens.Executor, tokens.Keys, MethodIssue, arguments, func(ctx *action.Context) error {
		return tokens.Ledger.Issue(ctx, arguments.Program, arguments.To, q, arguments.Memo)
	})
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// Transfer - move the actor's tokens, the memo of a transfer to an
// agent selects the deposit: "miner" or "client"
func (tokens *Tokens) Transfer(arguments *MoveArguments, reply *Reply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	q, err := quantity.Parse(arguments.Quantity)
	if nil != err {
		return err
	}

	err = authority.Execute(tokens.Executor, tokens.Keys, MethodTransfer, arguments, func(ctx *action.Context) error {
		return tokens.Ledger.Transfer(ctx, arguments.Program, arguments.Actor, arguments.To, q, arguments.Memo)
	})
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// ---

// BalanceArguments - holding to look up
type BalanceArguments struct {
	Program eos.AccountName `json:"program"`
	Owner   eos.AccountName `json:"owner"`
	Symbol  string          `json:"symbol"`
}

// BalanceReply - the holding
type BalanceReply struct {
	Balance eos.Asset `json:"balance"`
}

// Balance - an owner's holding of a symbol, never held is zero
func (tokens *Tokens) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	symbol, err := quantity.ParseSymbol(arguments.Symbol)
	if nil != err {
		return err
	}

	balance, ok := token.Balance(storage.Committed, arguments.Program, arguments.Owner, symbol)
	if !ok {
		balance = quantity.Zero(symbol)
	}
	reply.Balance = balance
	return nil
}

// StatsArguments - symbol to look up
type StatsArguments struct {
	Program eos.AccountName `json:"program"`
	Symbol  string          `json:"symbol"`
}

// StatsReply - issuer and supply
type StatsReply struct {
	Stats record.TokenStats `json:"stats"`
}

// Stats - issuer and supply of a symbol
func (tokens *Tokens) Stats(arguments *StatsArguments, reply *StatsReply) error {

	if err := ratelimit.Limit(tokens.Limiter); nil != err {
		return err
	}

	symbol, err := quantity.ParseSymbol(arguments.Symbol)
	if nil != err {
		return err
	}

	stats, err := token.Stats(storage.Committed, arguments.Program, symbol)
	if nil != err {
		return err
	}
	reply.Stats = *stats
	return nil
}
