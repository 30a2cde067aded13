// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package agents - RPC access to the mining agents
//
// deposits are token transfers to the agent with the memo "miner" or
// "client", see the Tokens.Transfer call
package agents

import (
	"github.com/eoscanada/eos-go"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/agent"
	"github.com/bitmark-inc/inheritd/constants"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/protocol"
	"github.com/bitmark-inc/inheritd/quantity"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/rpc/authority"
	"github.com/bitmark-inc/inheritd/rpc/ratelimit"
	"github.com/bitmark-inc/inheritd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitAgents = 200
	rateBurstAgents = 100
)

// method names covered by request signatures
const (
	MethodInit        = "Agents.Init"
	MethodMine        = "Agents.Mine"
	MethodSelfClaim   = "Agents.SelfClaim"
	MethodMinerClaim  = "Agents.MinerClaim"
	MethodClientClaim = "Agents.ClientClaim"
)

// Agents - type for the RPC
type Agents struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Executor *action.Executor
	Keys     authority.KeyLookup
	Programs map[eos.AccountName]*agent.Program
}

// New - agent RPC over the hosted programs
func New(log *logger.L, executor *action.Executor, keys authority.KeyLookup, programs map[eos.AccountName]*agent.Program) *Agents {
	return &Agents{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitAgents, rateBurstAgents),
		Executor: executor,
		Keys:     keys,
		Programs: programs,
	}
}

func (agents *Agents) program(name eos.AccountName) (*agent.Program, error) {
	p, ok := agents.Programs[name]
	if !ok {
		return nil, fault.ErrAgentNotRegistered
	}
	return p, nil
}

// verify the signature then run f against the named agent, the empty
// name selects the signer's own agent
func (agents *Agents) execute(method string, name eos.AccountName, arguments account.Signable, f func(*action.Context, *agent.Program) error) error {
	if err := ratelimit.Limit(agents.Limiter); nil != err {
		return err
	}
	if "" == name {
		name = arguments.Authority().Actor
	}
	return authority.Execute(agents.Executor, agents.Keys, method, arguments, func(ctx *action.Context) error {
		p, err := agents.program(name)
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

// InitArguments - signed by the agent
type InitArguments struct {
	account.Authorisation
}

// Init - create the agent's earnings row
func (agents *Agents) Init(arguments *InitArguments, reply *Reply) error {
	err := agents.execute(MethodInit, "", arguments, func(ctx *action.Context, p *agent.Program) error {
		return p.Init(ctx)
	})
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// MineArguments - signed by the miner
type MineArguments struct {
	account.Authorisation
	Agent     eos.AccountName `json:"agent"`
	Inheritor eos.AccountName `json:"inheritor"`
	Program   eos.AccountName `json:"program"`
	Quantity  string          `json:"quantity"`
	Client    eos.AccountName `json:"client"`
}

// MineReply - what the attempt did
type MineReply struct {
	Outcome protocol.Outcome `json:"outcome"`
}

// Mine - try to advance an inheritance, the signer is the miner
func (agents *Agents) Mine(arguments *MineArguments, reply *MineReply) error {
	q, err := quantity.Parse(arguments.Quantity)
	if nil != err {
		return err
	}
	if "" == arguments.Agent {
		return fault.ErrMissingParameters
	}

	outcome := protocol.ConditionUnmet
	err = agents.execute(MethodMine, arguments.Agent, arguments, func(ctx *action.Context, p *agent.Program) error {
		var err error
		outcome, err = p.Mine(ctx, protocol.MineArguments{
			Inheritor: arguments.Inheritor,
			Program:   arguments.Program,
			Quantity:  q,
			Client:    arguments.Client,
			Miner:     arguments.Actor,
		})
		return err
	})
	if nil != err {
		return err
	}
	reply.Outcome = outcome
	return nil
}

// SelfClaimArguments - signed by the agent
type SelfClaimArguments struct {
	account.Authorisation
	To eos.AccountName `json:"to"`
}

// SelfClaim - pay out the agent's earnings
func (agents *Agents) SelfClaim(arguments *SelfClaimArguments, reply *Reply) error {
	err := agents.execute(MethodSelfClaim, "", arguments, func(ctx *action.Context, p *agent.Program) error {
		return p.SelfClaim(ctx, arguments.To)
	})
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// ClaimArguments - signed by the miner or client claiming
type ClaimArguments struct {
	account.Authorisation
	Agent eos.AccountName `json:"agent"`
}

// MinerClaim - pay the signer's rewards and deposit back
func (agents *Agents) MinerClaim(arguments *ClaimArguments, reply *Reply) error {
	if "" == arguments.Agent {
		return fault.ErrMissingParameters
	}
	err := agents.execute(MethodMinerClaim, arguments.Agent, arguments, func(ctx *action.Context, p *agent.Program) error {
		return p.MinerClaim(ctx, arguments.Actor)
	})
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// ClientClaim - pay the signer's refund back
func (agents *Agents) ClientClaim(arguments *ClaimArguments, reply *Reply) error {
	if "" == arguments.Agent {
		return fault.ErrMissingParameters
	}
	err := agents.execute(MethodClientClaim, arguments.Agent, arguments, func(ctx *action.Context, p *agent.Program) error {
		return p.ClientClaim(ctx, arguments.Actor)
	})
	if nil != err {
		return err
	}
	reply.Ok = true
	return nil
}

// ---

// AccountArguments - one miner or client of an agent
type AccountArguments struct {
	Agent eos.AccountName `json:"agent"`
	Name  eos.AccountName `json:"name"`
}

// Miner - the agent's record of a miner
func (agents *Agents) Miner(arguments *AccountArguments, reply *record.Miner) error {
	if err := ratelimit.Limit(agents.Limiter); nil != err {
		return err
	}
	p, err := agents.program(arguments.Agent)
	if nil != err {
		return err
	}
	m, err := p.Miner(arguments.Name)
	if nil != err {
		return err
	}
	*reply = *m
	return nil
}

// Client - the agent's record of a client
func (agents *Agents) Client(arguments *AccountArguments, reply *record.Client) error {
	if err := ratelimit.Limit(agents.Limiter); nil != err {
		return err
	}
	p, err := agents.program(arguments.Agent)
	if nil != err {
		return err
	}
	c, err := p.Client(arguments.Name)
	if nil != err {
		return err
	}
	*reply = *c
	return nil
}

// AgentArguments - agent to query
type AgentArguments struct {
	Agent eos.AccountName `json:"agent"`
}

// InfoReply - economics and earnings of an agent
type InfoReply struct {
	Program           eos.AccountName `json:"program"`
	Earnings          eos.Asset       `json:"earnings"`
	MiningFine        eos.Asset       `json:"miningFine"`
	ClientServiceCost eos.Asset       `json:"clientServiceCost"`
	CooldownReward    eos.Asset       `json:"cooldownReward"`
	TransferReward    eos.Asset       `json:"transferReward"`
	AllowedTryCount   uint8           `json:"allowedTryCount"`
	FreeTryCooldown   uint32          `json:"freeTryCooldown"`
	Miners            int             `json:"miners"`
	Clients           int             `json:"clients"`
}

// Info - economics, earnings and account counts
func (agents *Agents) Info(arguments *AgentArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(agents.Limiter); nil != err {
		return err
	}
	p, err := agents.program(arguments.Agent)
	if nil != err {
		return err
	}
	earnings, err := p.Earnings(storage.Committed)
	if nil != err {
		return err
	}
	miners, err := p.Miners()
	if nil != err {
		return err
	}
	clients, err := p.Clients()
	if nil != err {
		return err
	}

	e := p.Economics()
	reply.Program = e.Program
	reply.Earnings = earnings
	reply.MiningFine = e.MiningFine
	reply.ClientServiceCost = e.ClientServiceCost
	reply.CooldownReward = e.CooldownReward
	reply.TransferReward = e.TransferReward
	reply.AllowedTryCount = e.AllowedTryCount
	reply.FreeTryCooldown = e.FreeTryCooldown
	reply.Miners = len(miners)
	reply.Clients = len(clients)
	return nil
}

// BillsArguments - page of a bill log
type BillsArguments struct {
	Agent eos.AccountName `json:"agent"`
	Start uint64          `json:"start,string"`
	Count int             `json:"count"`
}

// BillsReply - one page and where the next starts
type BillsReply struct {
	Next  uint64        `json:"next,string"`
	Bills []record.Bill `json:"bills"`
}

// MinerBills - fines and rewards
func (agents *Agents) MinerBills(arguments *BillsArguments, reply *BillsReply) error {
	return agents.bills(arguments, reply, (*agent.Program).MinerBills)
}

// ClientBills - service charges
func (agents *Agents) ClientBills(arguments *BillsArguments, reply *BillsReply) error {
	return agents.bills(arguments, reply, (*agent.Program).ClientBills)
}

func (agents *Agents) bills(arguments *BillsArguments, reply *BillsReply, fetch func(*agent.Program, uint64, int) ([]record.Bill, uint64, error)) error {
	if err := ratelimit.LimitN(agents.Limiter, arguments.Count, constants.MaximumQueryItemsCount); nil != err {
		return err
	}
	p, err := agents.program(arguments.Agent)
	if nil != err {
		return err
	}
	bills, next, err := fetch(p, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Bills = bills
	reply.Next = next
	return nil
}
