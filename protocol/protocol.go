// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package protocol - the calls that pass between an agent program and
// the client programs it mines for
//
// a miner calls the agent, the agent calls the client's OnAgentMine
// and on success the client notifies the agent's DidMine, all inside
// one transaction
package protocol

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
)

// MineArguments - the tuple carried through every mining call
type MineArguments struct {
	Inheritor eos.AccountName `json:"inheritor"`
	Program   eos.AccountName `json:"program"`
	Quantity  eos.Asset       `json:"quantity"`
	Client    eos.AccountName `json:"client"`
	Miner     eos.AccountName `json:"miner"`
}

// MiningAdvancer - the client side of a mining attempt
type MiningAdvancer interface {
	OnAgentMine(ctx *action.Context, agent eos.AccountName, args MineArguments) (Outcome, error)
}

// MiningObserver - receives the client's notification after a
// successful transition
type MiningObserver interface {
	DidMine(ctx *action.Context, notifier eos.AccountName, args MineArguments) error
}

// InheritanceReader - read access to a client's inheritance registry
type InheritanceReader interface {
	Inheritance(r storage.Reader, inheritor eos.AccountName, program eos.AccountName, symbol eos.Symbol) (*record.Inheritance, error)
}

// Client - what an agent needs from a client program
type Client interface {
	MiningAdvancer
	InheritanceReader
}

// Tokens - the token ledger as seen by the programs
type Tokens interface {
	Transfer(ctx *action.Context, program eos.AccountName, from eos.AccountName, to eos.AccountName, quantity eos.Asset, memo string) error
	Balance(r storage.Reader, program eos.AccountName, owner eos.AccountName, symbol eos.Symbol) (eos.Asset, bool)
}

// Accounts - the account directory as seen by the programs
type Accounts interface {
	Exists(r storage.Reader, name eos.AccountName) bool
}

// ClientLookup - find a client program by account
type ClientLookup interface {
	Client(name eos.AccountName) (Client, bool)
}

// AgentLookup - find an agent program by account
type AgentLookup interface {
	Agent(name eos.AccountName) (MiningObserver, bool)
}
