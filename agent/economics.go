// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agent

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/constants"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/quantity"
)

// Economics - the fee token and the amounts charged and paid
//
// every amount is in the fee symbol
type Economics struct {
	Program           eos.AccountName
	Symbol            eos.Symbol
	MiningFine        eos.Asset
	ClientServiceCost eos.Asset
	CooldownReward    eos.Asset
	TransferReward    eos.Asset
	AllowedTryCount   uint8
	FreeTryCooldown   uint32
}

// EconomicsConfiguration - decimal form as read from configuration
type EconomicsConfiguration struct {
	Program           string `gluamapper:"program" json:"program"`
	Ticker            string `gluamapper:"ticker" json:"ticker"`
	Precision         uint8  `gluamapper:"precision" json:"precision"`
	MiningFine        string `gluamapper:"mining_fine" json:"mining_fine"`
	ClientServiceCost string `gluamapper:"client_service_cost" json:"client_service_cost"`
	CooldownReward    string `gluamapper:"cooldown_reward" json:"cooldown_reward"`
	TransferReward    string `gluamapper:"transfer_reward" json:"transfer_reward"`
	AllowedTryCount   uint8  `gluamapper:"allowed_try_count" json:"allowed_try_count"`
	FreeTryCooldown   uint32 `gluamapper:"free_try_cooldown" json:"free_try_cooldown"`
}

// DefaultEconomicsConfiguration - the built in values
func DefaultEconomicsConfiguration() EconomicsConfiguration {
	return EconomicsConfiguration{
		Program:           constants.FeeProgram,
		Ticker:            constants.FeeTicker,
		Precision:         constants.FeePrecision,
		MiningFine:        constants.MiningFine,
		ClientServiceCost: constants.ClientServiceCost,
		CooldownReward:    constants.CooldownMiningReward,
		TransferReward:    constants.TransferMiningReward,
		AllowedTryCount:   constants.AllowedMiningTryCount,
		FreeTryCooldown:   constants.FreeTryCooldownDuration,
	}
}

// NewEconomics - convert and validate a configuration
func NewEconomics(c EconomicsConfiguration) (Economics, error) {
	symbol := eos.Symbol{Precision: c.Precision, Symbol: c.Ticker}
	if !quantity.ValidSymbol(symbol) {
		return Economics{}, fault.ErrInvalidSymbol
	}
	if "" == c.Program {
		return Economics{}, fault.ErrTokenContractNotFound
	}

	e := Economics{
		Program:         eos.AccountName(c.Program),
		Symbol:          symbol,
		AllowedTryCount: c.AllowedTryCount,
		FreeTryCooldown: c.FreeTryCooldown,
	}

	amounts := []struct {
		text   string
		target *eos.Asset
	}{
		{c.MiningFine, &e.MiningFine},
		{c.ClientServiceCost, &e.ClientServiceCost},
		{c.CooldownReward, &e.CooldownReward},
		{c.TransferReward, &e.TransferReward},
	}
	for _, a := range amounts {
		q, err := quantity.FromDecimal(a.text, symbol)
		if nil != err {
			return Economics{}, err
		}
		if q.Amount < 0 {
			return Economics{}, fault.ErrInvalidQuantity
		}
		*a.target = q
	}

	if e.MiningFine.Amount <= 0 || e.ClientServiceCost.Amount <= 0 || e.AllowedTryCount < 1 {
		return Economics{}, fault.ErrZeroQuantity
	}

	// the service cost has to cover both rewards
	if e.CooldownReward.Amount+e.TransferReward.Amount > e.ClientServiceCost.Amount {
		return Economics{}, fault.ErrInvalidQuantity
	}
	return e, nil
}

// DefaultEconomics - the built in values, converted
func DefaultEconomics() Economics {
	e, err := NewEconomics(DefaultEconomicsConfiguration())
	if nil != err {
		panic("default economics: " + err.Error())
	}
	return e
}

// margin kept by the operator on each cooldown start
func (e Economics) serviceMargin() eos.Asset {
	margin := int64(e.ClientServiceCost.Amount) - int64(e.CooldownReward.Amount) - int64(e.TransferReward.Amount)
	return quantity.New(margin, e.Symbol)
}
