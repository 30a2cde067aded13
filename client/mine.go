// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package client

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/protocol"
	"github.com/bitmark-inc/inheritd/quantity"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
)

// Transition - payload of a transition event
type Transition struct {
	Inheritor   eos.AccountName    `json:"inheritor"`
	Miner       eos.AccountName    `json:"miner"`
	Outcome     protocol.Outcome   `json:"outcome"`
	Inheritance record.Inheritance `json:"inheritance"`
}

// OnAgentMine - implements protocol.MiningAdvancer
//
// called by a trusted agent on behalf of a miner; a completed
// transition is reported back to the agent before returning
func (p *Program) OnAgentMine(ctx *action.Context, agent eos.AccountName, args protocol.MineArguments) (protocol.Outcome, error) {
	if err := ctx.RequireAuth(agent); nil != err {
		return protocol.ConditionUnmet, err
	}
	if !p.trust.IsTrusted(p.self, agent) {
		return protocol.ConditionUnmet, fault.ErrNotTrustedAgent
	}
	if p.self != args.Client {
		return protocol.ConditionUnmet, fault.ErrClientMismatch
	}

	trx := ctx.Trx()
	status, err := p.Status(trx)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	if !status.MiningEnabled {
		return protocol.ConditionUnmet, fault.ErrMiningDisabled
	}

	inheritance, key, err := p.findInheritance(trx, args.Inheritor, args.Program, args.Quantity.Symbol)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	if nil == inheritance {
		return protocol.ConditionUnmet, fault.ErrInheritanceNotSpecified
	}
	if record.Frozen == inheritance.State {
		return protocol.ConditionUnmet, fault.ErrInheritanceFrozen
	}
	if !quantity.Equal(inheritance.WillGet.Asset, args.Quantity) {
		return protocol.ConditionUnmet, fault.ErrQuantityMismatch
	}

	// 64 bit so the sum cannot wrap
	now := uint64(ctx.Now())
	cooldownEnd := uint64(inheritance.CooldownBegan) + uint64(inheritance.CooldownDuration)

	outcome := protocol.ConditionUnmet
	switch {
	case now >= cooldownEnd && record.Active == inheritance.State:
		outcome, err = p.startCooldown(ctx, key, inheritance)

	case now >= cooldownEnd:
		outcome, err = p.transfer(ctx, args.Inheritor, key, inheritance)

	case now >= uint64(inheritance.ValidFrom) && record.Active == inheritance.State:
		outcome, err = p.startCooldown(ctx, key, inheritance)

	case now >= uint64(inheritance.ValidFrom):
		outcome = protocol.CooldownPending
	}
	if nil != err {
		return protocol.ConditionUnmet, err
	}

	p.log.Infof("client: %s  inheritor: %s  quantity: %s@%s  miner: %s  outcome: %s", p.self, args.Inheritor, args.Quantity, args.Program, args.Miner, outcome)

	if !outcome.Notified() {
		return outcome, nil
	}

	ctx.Emit(p.self, action.KindTransition, Transition{
		Inheritor:   args.Inheritor,
		Miner:       args.Miner,
		Outcome:     outcome,
		Inheritance: *inheritance,
	})

	observer, ok := p.agents.Agent(agent)
	if !ok {
		return protocol.ConditionUnmet, fault.ErrAgentNotRegistered
	}
	err = observer.DidMine(ctx.As(p.self), p.self, args)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	return outcome, nil
}

// ACTIVE -> ACTIVE_CD_MINED, the cooldown restarts now
func (p *Program) startCooldown(ctx *action.Context, key []byte, inheritance *record.Inheritance) (protocol.Outcome, error) {
	inheritance.State = record.ActiveCooldownMined
	inheritance.CooldownBegan = ctx.Now()
	err := putRecord(ctx.Trx(), storage.Pool.Inheritances, key, inheritance)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	return protocol.CooldownStarted, nil
}

// pay the inheritor, record the transfer and delete the inheritance
func (p *Program) transfer(ctx *action.Context, inheritor eos.AccountName, key []byte, inheritance *record.Inheritance) (protocol.Outcome, error) {
	trx := ctx.Trx()
	program := inheritance.WillGet.Contract
	q := inheritance.WillGet.Asset

	replayed, err := p.isReplay(trx, inheritor, inheritance)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	if replayed {
		return protocol.Replayed, nil
	}

	allocationKey, err := p.allocationKey(program, q.Symbol)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	allocation, err := getAllocation(trx, allocationKey)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	if nil == allocation {
		return protocol.ConditionUnmet, fault.ErrAllocationOutOfSync
	}
	allocation.Allocated, err = quantity.Sub(allocation.Allocated, q)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	allocation.Transferred, err = quantity.Add(allocation.Transferred, q)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	err = putRecord(trx, storage.Pool.Allocations, allocationKey, allocation)
	if nil != err {
		return protocol.ConditionUnmet, err
	}

	err = p.tokens.Transfer(ctx.As(p.self), program, p.self, inheritor, q, inheritance.Remark)
	if nil != err {
		return protocol.ConditionUnmet, err
	}

	id := storage.NextSequence(trx, p.sequenceKey(transferSequence))
	transferKey, err := p.idKey(program, id)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	t := &record.Transfer{
		ID:               id,
		Receiver:         inheritor,
		Got:              inheritance.WillGet,
		ValidFrom:        inheritance.ValidFrom,
		CooldownBegan:    inheritance.CooldownBegan,
		CooldownDuration: inheritance.CooldownDuration,
		TransferredTime:  ctx.Now(),
		Remark:           inheritance.Remark,
	}
	err = putRecord(trx, storage.Pool.Transfers, transferKey, t)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	grantKey, err := p.grantKey(program, inheritor, q, inheritance.ValidFrom, inheritance.CooldownDuration)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	trx.PutN(storage.Pool.TransferReceivers, grantKey, id)

	err = p.deleteInheritance(trx, inheritor, key, inheritance)
	if nil != err {
		return protocol.ConditionUnmet, err
	}
	return protocol.Transferred, nil
}

// some earlier transfer to the inheritor paid this same grant
func (p *Program) isReplay(r storage.Reader, inheritor eos.AccountName, inheritance *record.Inheritance) (bool, error) {
	program := inheritance.WillGet.Contract
	grantKey, err := p.grantKey(program, inheritor, inheritance.WillGet.Asset, inheritance.ValidFrom, inheritance.CooldownDuration)
	if nil != err {
		return false, err
	}
	id, found := r.GetN(storage.Pool.TransferReceivers, grantKey)
	if !found {
		return false, nil
	}
	key, err := p.idKey(program, id)
	if nil != err {
		return false, err
	}
	t, err := getTransfer(r, key)
	if nil != err || nil == t {
		return false, err
	}
	return quantity.Equal(t.Got.Asset, inheritance.WillGet.Asset) &&
		t.ValidFrom == inheritance.ValidFrom &&
		t.CooldownDuration == inheritance.CooldownDuration, nil
}
