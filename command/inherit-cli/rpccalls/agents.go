// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/rpc/agents"
)

// MineData - the inheritance a miner tries to advance
type MineData struct {
	Agent     eos.AccountName
	Client    eos.AccountName
	Inheritor eos.AccountName
	Program   eos.AccountName
	Quantity  string
}

// AgentInit - the signer is the agent
func (client *Client) AgentInit(signer *Signer) (*agents.Reply, error) {
	var reply agents.Reply
	if err := client.call(agents.MethodInit, signer, &agents.InitArguments{}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Mine - the signer is the miner
func (client *Client) Mine(signer *Signer, data *MineData) (*agents.MineReply, error) {
	args := &agents.MineArguments{
		Agent:     data.Agent,
		Inheritor: data.Inheritor,
		Program:   data.Program,
		Quantity:  data.Quantity,
		Client:    data.Client,
	}
	var reply agents.MineReply
	if err := client.call(agents.MethodMine, signer, args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// SelfClaim - the agent pays its earnings to "to"
func (client *Client) SelfClaim(signer *Signer, to eos.AccountName) (*agents.Reply, error) {
	var reply agents.Reply
	if err := client.call(agents.MethodSelfClaim, signer, &agents.SelfClaimArguments{To: to}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// MinerClaim - the signing miner collects from an agent
func (client *Client) MinerClaim(signer *Signer, agent eos.AccountName) (*agents.Reply, error) {
	var reply agents.Reply
	if err := client.call(agents.MethodMinerClaim, signer, &agents.ClaimArguments{Agent: agent}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ClientClaim - the signing client collects its refund from an agent
func (client *Client) ClientClaim(signer *Signer, agent eos.AccountName) (*agents.Reply, error) {
	var reply agents.Reply
	if err := client.call(agents.MethodClientClaim, signer, &agents.ClaimArguments{Agent: agent}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// AgentInfo - economics and earnings
func (client *Client) AgentInfo(agent eos.AccountName) (*agents.InfoReply, error) {
	var reply agents.InfoReply
	if err := client.call("Agents.Info", nil, &agents.AgentArguments{Agent: agent}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Miner - an agent's miner account
func (client *Client) Miner(agent eos.AccountName, name eos.AccountName) (*record.Miner, error) {
	var reply record.Miner
	if err := client.call("Agents.Miner", nil, &agents.AccountArguments{Agent: agent, Name: name}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// AgentClient - an agent's client account
func (client *Client) AgentClient(agent eos.AccountName, name eos.AccountName) (*record.Client, error) {
	var reply record.Client
	if err := client.call("Agents.Client", nil, &agents.AccountArguments{Agent: agent, Name: name}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Bills - one page of the miner or client bill log
func (client *Client) Bills(miner bool, agent eos.AccountName, start uint64, count int) (*agents.BillsReply, error) {
	method := "Agents.ClientBills"
	if miner {
		method = "Agents.MinerBills"
	}
	args := &agents.BillsArguments{
		Agent: agent,
		Start: start,
		Count: count,
	}
	var reply agents.BillsReply
	if err := client.call(method, nil, args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
