// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - registration of every RPC service
package server

import (
	"net/rpc"
	"sort"
	"time"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/agent"
	"github.com/bitmark-inc/inheritd/client"
	"github.com/bitmark-inc/inheritd/counter"
	"github.com/bitmark-inc/inheritd/rpc/accounts"
	"github.com/bitmark-inc/inheritd/rpc/agents"
	"github.com/bitmark-inc/inheritd/rpc/authority"
	"github.com/bitmark-inc/inheritd/rpc/clients"
	"github.com/bitmark-inc/inheritd/rpc/node"
	"github.com/bitmark-inc/inheritd/rpc/tokens"
	"github.com/bitmark-inc/inheritd/token"
	"github.com/bitmark-inc/logger"
)

// Services - the running state the RPC services act on
type Services struct {
	Executor *action.Executor
	Ledger   *token.Ledger
	Keys     authority.KeyLookup
	Clients  map[eos.AccountName]*client.Program
	Agents   map[eos.AccountName]*agent.Program
}

// Create - a server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, services Services) *rpc.Server {

	start := time.Now().UTC()

	clientNames := make([]eos.AccountName, 0, len(services.Clients))
	for name := range services.Clients {
		clientNames = append(clientNames, name)
	}
	agentNames := make([]eos.AccountName, 0, len(services.Agents))
	for name := range services.Agents {
		agentNames = append(agentNames, name)
	}
	sortNames(clientNames)
	sortNames(agentNames)

	server := rpc.NewServer()

	_ = server.Register(node.New(log, start, version, rpcCount, clientNames, agentNames))
	_ = server.Register(accounts.New(log, services.Executor, services.Keys))
	_ = server.Register(tokens.New(log, services.Executor, services.Ledger, services.Keys))
	_ = server.Register(clients.New(log, services.Executor, services.Keys, services.Clients))
	_ = server.Register(agents.New(log, services.Executor, services.Keys, services.Agents))

	return server
}

func sortNames(names []eos.AccountName) {
	sort.Slice(names, func(i, j int) bool {
		return names[i] < names[j]
	})
}
