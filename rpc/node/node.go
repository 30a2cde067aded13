// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/eoscanada/eos-go"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/inheritd/counter"
	"github.com/bitmark-inc/inheritd/mode"
	"github.com/bitmark-inc/inheritd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Clients []eos.AccountName
	Agents  []eos.AccountName
	counter *counter.Counter
}

// New - node RPC for the programs hosted by this daemon
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, clients []eos.AccountName, agents []eos.AccountName) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Clients: clients,
		Agents:  agents,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string            `json:"chain"`
	Mode    string            `json:"mode"`
	RPCs    uint64            `json:"rpcs"`
	Version string            `json:"version"`
	Uptime  string            `json:"uptime"`
	Clients []eos.AccountName `json:"clients"`
	Agents  []eos.AccountName `json:"agents"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Clients = node.Clients
	reply.Agents = node.Agents
	return nil
}
