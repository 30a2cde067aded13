// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package client

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/quantity"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
)

// Grant - arguments of Allocate
type Grant struct {
	Inheritor        eos.AccountName `json:"inheritor"`
	Program          eos.AccountName `json:"program"`
	Quantity         eos.Asset       `json:"quantity"`
	ValidFrom        uint32          `json:"validFrom"`
	CooldownDuration uint32          `json:"cooldownDuration"`
	Remark           string          `json:"remark"`
}

// Allocate - reserve part of the client's balance for an inheritor
//
// a second grant of the same token to the same inheritor replaces the
// first and resets it to active
func (p *Program) Allocate(ctx *action.Context, g Grant) error {
	if p.self == g.Inheritor {
		return fault.ErrAssignToSelf
	}
	if err := ctx.RequireAuth(p.self); nil != err {
		return err
	}
	trx := ctx.Trx()
	if !p.accounts.Exists(trx, g.Inheritor) {
		return fault.ErrInheritorNotFound
	}
	if !p.accounts.Exists(trx, g.Program) {
		return fault.ErrTokenContractNotFound
	}
	if !quantity.IsValid(g.Quantity) {
		return fault.ErrInvalidQuantity
	}
	if g.Quantity.Amount <= 0 {
		return fault.ErrZeroQuantity
	}
	if len(g.Remark) > record.MaxRemarkLength {
		return fault.ErrRemarkTooLong
	}

	balance, ok := p.tokens.Balance(trx, g.Program, p.self, g.Quantity.Symbol)
	if !ok {
		return fault.ErrTokenNotOwned
	}
	if !quantity.SameSymbol(g.Quantity.Symbol, balance.Symbol) {
		return fault.ErrSymbolMismatch
	}

	allocationKey, err := p.allocationKey(g.Program, g.Quantity.Symbol)
	if nil != err {
		return err
	}
	allocation, err := getAllocation(trx, allocationKey)
	if nil != err {
		return err
	}
	allocatedBefore := nil != allocation
	if !allocatedBefore {
		if g.Quantity.Amount > balance.Amount {
			return fault.ErrAllocationExceedsOwned
		}
		unallocated, err := quantity.Sub(balance, g.Quantity)
		if nil != err {
			return err
		}
		allocation = &record.Allocation{
			Allocated:   g.Quantity,
			Unallocated: unallocated,
			Transferred: quantity.Zero(g.Quantity.Symbol),
		}
		err = putRecord(trx, storage.Pool.Allocations, allocationKey, allocation)
		if nil != err {
			return err
		}
	} else if balance.Amount < allocation.Allocated.Amount {
		return fault.ErrAllocationInvalidated
	}

	inheritance, key, err := p.findInheritance(trx, g.Inheritor, g.Program, g.Quantity.Symbol)
	if nil != err {
		return err
	}
	delta := g.Quantity
	if nil == inheritance {
		id := storage.NextSequence(trx, p.sequenceKey(inheritanceSequence))
		key, err = p.idKey(g.Inheritor, id)
		if nil != err {
			return err
		}
		indexKey, err := p.inheritanceIndexKey(g.Inheritor, g.Program, g.Quantity.Symbol)
		if nil != err {
			return err
		}
		trx.PutN(storage.Pool.InheritanceTokens, indexKey, id)
		inheritance = &record.Inheritance{
			ID: id,
			WillGet: eos.ExtendedAsset{
				Asset:    g.Quantity,
				Contract: g.Program,
			},
		}
	} else {
		delta, err = quantity.Sub(g.Quantity, inheritance.WillGet.Asset)
		if nil != err {
			return err
		}
		inheritance.WillGet.Asset = g.Quantity
	}

	// the cooldown window is first measured from validFrom
	inheritance.State = record.Active
	inheritance.ValidFrom = g.ValidFrom
	inheritance.CooldownBegan = g.ValidFrom
	inheritance.CooldownDuration = g.CooldownDuration
	inheritance.Remark = g.Remark
	err = putRecord(trx, storage.Pool.Inheritances, key, inheritance)
	if nil != err {
		return err
	}

	if allocatedBefore {
		if delta.Amount > allocation.Unallocated.Amount {
			return fault.ErrAllocationExceedsAvailable
		}
		allocation.Allocated, err = quantity.Add(allocation.Allocated, delta)
		if nil != err {
			return err
		}
		allocation.Unallocated, err = quantity.Sub(balance, allocation.Allocated)
		if nil != err {
			return err
		}
		err = putRecord(trx, storage.Pool.Allocations, allocationKey, allocation)
		if nil != err {
			return err
		}
	}

	p.log.Infof("client: %s  allocate: %s@%s  to: %s  valid from: %d  cooldown: %d", p.self, g.Quantity, g.Program, g.Inheritor, g.ValidFrom, g.CooldownDuration)
	p.log.Debugf("allocation: %+v", allocation)
	return nil
}

// Unallocate - cancel an inheritance and release its reservation
func (p *Program) Unallocate(ctx *action.Context, inheritor eos.AccountName, program eos.AccountName, symbol eos.Symbol) error {
	if err := ctx.RequireAuth(p.self); nil != err {
		return err
	}
	trx := ctx.Trx()
	if err := p.checkTarget(trx, inheritor, program, symbol); nil != err {
		return err
	}

	allocationKey, err := p.allocationKey(program, symbol)
	if nil != err {
		return err
	}
	allocation, err := getAllocation(trx, allocationKey)
	if nil != err {
		return err
	}
	if nil == allocation {
		return fault.ErrAllocationNotFound
	}

	inheritance, key, err := p.findInheritance(trx, inheritor, program, symbol)
	if nil != err {
		return err
	}
	if nil == inheritance {
		return fault.ErrInheritanceNotFound
	}
	q := inheritance.WillGet.Asset

	if quantity.Equal(allocation.Allocated, q) {
		trx.Delete(storage.Pool.Allocations, allocationKey)
	} else {
		if allocation.Allocated.Amount < q.Amount {
			return fault.ErrAllocationOutOfSync
		}
		allocation.Allocated, err = quantity.Sub(allocation.Allocated, q)
		if nil != err {
			return err
		}

		// recompute from the live balance unless it no longer covers
		// what is still allocated
		balance, ok := p.tokens.Balance(trx, program, p.self, symbol)
		if ok && quantity.SameSymbol(balance.Symbol, allocation.Allocated.Symbol) && balance.Amount >= allocation.Allocated.Amount {
			allocation.Unallocated, err = quantity.Sub(balance, allocation.Allocated)
		} else {
			allocation.Unallocated, err = quantity.Add(allocation.Unallocated, q)
		}
		if nil != err {
			return err
		}
		err = putRecord(trx, storage.Pool.Allocations, allocationKey, allocation)
		if nil != err {
			return err
		}
	}

	err = p.deleteInheritance(trx, inheritor, key, inheritance)
	if nil != err {
		return err
	}

	p.log.Infof("client: %s  unallocate: %s@%s  from: %s", p.self, q, program, inheritor)
	return nil
}

// Freeze - stop an inheritance from being mined, the reservation stays
func (p *Program) Freeze(ctx *action.Context, inheritor eos.AccountName, program eos.AccountName, symbol eos.Symbol) error {
	if err := ctx.RequireAuth(p.self); nil != err {
		return err
	}
	trx := ctx.Trx()
	if err := p.checkTarget(trx, inheritor, program, symbol); nil != err {
		return err
	}

	inheritance, key, err := p.findInheritance(trx, inheritor, program, symbol)
	if nil != err {
		return err
	}
	if nil == inheritance {
		return fault.ErrAllocationNotFound
	}
	inheritance.State = record.Frozen
	err = putRecord(trx, storage.Pool.Inheritances, key, inheritance)
	if nil != err {
		return err
	}

	p.log.Infof("client: %s  freeze: %s@%s  for: %s", p.self, inheritance.WillGet.Asset, program, inheritor)
	return nil
}

func (p *Program) checkTarget(r storage.Reader, inheritor eos.AccountName, program eos.AccountName, symbol eos.Symbol) error {
	if !p.accounts.Exists(r, inheritor) {
		return fault.ErrInheritorNotFound
	}
	if !p.accounts.Exists(r, program) {
		return fault.ErrTokenContractNotFound
	}
	if !quantity.ValidSymbol(symbol) {
		return fault.ErrInvalidSymbol
	}
	return nil
}

func (p *Program) deleteInheritance(trx storage.Transaction, inheritor eos.AccountName, key []byte, inheritance *record.Inheritance) error {
	indexKey, err := p.inheritanceIndexKey(inheritor, inheritance.WillGet.Contract, inheritance.WillGet.Asset.Symbol)
	if nil != err {
		return err
	}
	trx.Delete(storage.Pool.InheritanceTokens, indexKey)
	trx.Delete(storage.Pool.Inheritances, key)
	return nil
}
