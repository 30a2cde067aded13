// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agent

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/protocol"
	"github.com/bitmark-inc/inheritd/quantity"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
)

// Mined - payload of a mine event
type Mined struct {
	protocol.MineArguments
	Outcome protocol.Outcome `json:"outcome"`
}

// Mine - a miner asks the agent to advance one inheritance
//
// the miner pays a fine instead if it tries too often
func (p *Program) Mine(ctx *action.Context, args protocol.MineArguments) (protocol.Outcome, error) {
	if err := p.checkMineArguments(ctx, args); nil != err {
		return protocol.ConditionUnmet, err
	}

	trx := ctx.Trx()
	if !trx.Has(storage.Pool.AgentState, p.selfKey) {
		return protocol.ConditionUnmet, fault.ErrAgentNotInitialised
	}

	minerKey, err := p.nameKey(args.Miner)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	miner, err := getMiner(trx, minerKey)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	if nil == miner {
		return protocol.ConditionUnmet, fault.ErrMinerNotDeposited
	}
	if short, err := quantity.Less(miner.Deposit, p.economics.MiningFine); nil != err {
		return protocol.ConditionUnmet, err
	} else if short {
		return protocol.ConditionUnmet, fault.ErrMinerNotDeposited
	}

	clientKey, err := p.nameKey(args.Client)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	client, err := getClient(trx, clientKey)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	if nil == client {
		return protocol.ConditionUnmet, fault.ErrNoInheritanceForClient
	}
	if short, err := quantity.Less(client.Deposit, p.economics.ClientServiceCost); nil != err {
		return protocol.ConditionUnmet, err
	} else if short {
		return protocol.ConditionUnmet, fault.ErrClientNotDeposited
	}

	now := ctx.Now()
	allowed := true
	switch {
	case miner.TryCount < p.economics.AllowedTryCount:
		miner.TryCount += 1
		miner.LastTryTime = now

	case uint64(now) > uint64(miner.LastTryTime)+uint64(p.economics.FreeTryCooldown):
		miner.TryCount = 1
		miner.LastTryTime = now

	default:
		allowed = false
		err = p.fine(ctx, miner)
	}
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	err = putRecord(trx, storage.Pool.Miners, minerKey, miner)
	if nil != err {
		return protocol.ConditionUnmet, err
	}

	outcome := protocol.Fined
	if allowed {
		c, ok := p.clients.Client(args.Client)
		if !ok {
			return protocol.ConditionUnmet, fault.ErrNoClientProgram
		}
		outcome, err = c.OnAgentMine(ctx.As(p.self), p.self, args)
		if nil != err {
			return protocol.ConditionUnmet, err
		}
	}

	p.log.Infof("miner: %s  client: %s  inheritor: %s  outcome: %s  tries: %d", args.Miner, args.Client, args.Inheritor, outcome, miner.TryCount)
	ctx.Emit(p.self, action.KindMine, Mined{
		MineArguments: args,
		Outcome:       outcome,
	})
	return outcome, nil
}

func (p *Program) checkMineArguments(ctx *action.Context, args protocol.MineArguments) error {
	if err := ctx.RequireAuth(args.Miner); nil != err {
		return err
	}
	trx := ctx.Trx()
	if !p.accounts.Exists(trx, args.Inheritor) {
		return fault.ErrInheritorNotFound
	}
	if !p.accounts.Exists(trx, args.Program) {
		return fault.ErrTokenContractNotFound
	}
	if !p.accounts.Exists(trx, args.Client) {
		return fault.ErrClientAccountNotFound
	}
	if !p.accounts.Exists(trx, args.Miner) {
		return fault.ErrMinerAccountNotFound
	}
	if args.Inheritor == args.Client {
		return fault.ErrClientIsInheritor
	}
	if args.Client == args.Miner {
		return fault.ErrClientIsMiner
	}
	if err := quantity.ValidatePositive(args.Quantity); nil != err {
		return fault.ErrInvalidQuantity
	}
	return nil
}

// punish a miner that tries too often, the caller stores the miner
func (p *Program) fine(ctx *action.Context, miner *record.Miner) error {
	fine := p.economics.MiningFine
	var err error
	miner.Deposit, err = quantity.Sub(miner.Deposit, fine)
	if nil != err {
		return err
	}
	miner.Fee, err = quantity.Add(miner.Fee, fine)
	if nil != err {
		return err
	}
	miner.TryCount = 0

	err = p.addBill(ctx, minerBills, miner.Miner, p.self, quantity.New(-int64(fine.Amount), fine.Symbol), record.MiningFine)
	if nil != err {
		return err
	}
	p.log.Warnf("miner: %s  fined: %s  for mining too often", miner.Miner, fine)
	return p.earn(ctx.Trx(), fine)
}

// DidMine - implements protocol.MiningObserver
//
// rows that are missing or under funded are skipped without error
func (p *Program) DidMine(ctx *action.Context, notifier eos.AccountName, args protocol.MineArguments) error {
	if notifier != args.Client || !p.trust.IsTrusted(p.self, notifier) {
		return fault.ErrNotAcceptedNotification
	}
	if err := ctx.RequireAuth(notifier); nil != err {
		return err
	}

	trx := ctx.Trx()
	minerKey, err := p.nameKey(args.Miner)
	if nil != err {
		return err
	}
	miner, err := getMiner(trx, minerKey)
	if nil != err {
		return err
	}
	clientKey, err := p.nameKey(args.Client)
	if nil != err {
		return err
	}
	client, err := getClient(trx, clientKey)
	if nil != err {
		return err
	}
	if nil == miner || nil == client {
		p.log.Debugf("notification: %s  skipped: miner or client row missing", notifier)
		return nil
	}
	short, err := quantity.Less(client.Deposit, p.economics.ClientServiceCost)
	if nil != err {
		return err
	}
	if short || miner.Deposit.Amount <= 0 {
		p.log.Debugf("notification: %s  skipped: deposit too low", notifier)
		return nil
	}

	c, ok := p.clients.Client(notifier)
	if !ok {
		return fault.ErrNoClientProgram
	}
	cooldownStarted := false
	inheritance, err := c.Inheritance(trx, args.Inheritor, args.Program, args.Quantity.Symbol)
	switch err {
	case nil:
		cooldownStarted = record.ActiveCooldownMined == inheritance.State
	case fault.ErrInheritanceNotSpecified:
	default:
		return err
	}

	cost := p.economics.ClientServiceCost
	reward := p.economics.TransferReward
	kind := record.TRMiningReward
	if cooldownStarted {
		reward = p.economics.CooldownReward
		kind = record.CDMiningReward

		client.Refund, err = quantity.Sub(client.Refund, cost)
		if nil != err {
			return err
		}
		client.Fee, err = quantity.Add(client.Fee, cost)
		if nil != err {
			return err
		}
		err = p.addBill(ctx, clientBills, args.Client, p.self, quantity.New(-int64(cost.Amount), cost.Symbol), record.ClientService)
		if nil != err {
			return err
		}
		err = p.earn(trx, p.economics.serviceMargin())
		if nil != err {
			return err
		}
	} else {
		client.Deposit, err = quantity.Sub(client.Deposit, cost)
		if nil != err {
			return err
		}
	}
	err = putRecord(trx, storage.Pool.Clients, clientKey, client)
	if nil != err {
		return err
	}

	miner.Reward, err = quantity.Add(miner.Reward, reward)
	if nil != err {
		return err
	}
	miner.TryCount = 0
	err = putRecord(trx, storage.Pool.Miners, minerKey, miner)
	if nil != err {
		return err
	}

	p.log.Infof("miner: %s  reward: %s  %s  client: %s", args.Miner, reward, kind, args.Client)
	return p.addBill(ctx, minerBills, p.self, args.Miner, reward, kind)
}
