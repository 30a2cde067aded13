// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package constants - default economics of the mining protocol
//
// amounts are decimal strings in whole tokens of the fee symbol, the
// agent configuration may override any of them
package constants

// mining throttle
const (
	AllowedMiningTryCount   = 3
	FreeTryCooldownDuration = 24 * 60 * 60 // seconds
)

// fee token
const (
	FeeProgram   = "eosio.token"
	FeeTicker    = "EOS"
	FeePrecision = 4
)

// fines, charges and rewards
const (
	MiningFine             = "0.1"
	ClientServiceCost      = "5"
	CooldownMiningReward   = "1"
	TransferMiningReward   = "1"
	MaximumMemoLength      = 256
	MaximumRemarkLength    = 256
	MaximumQueryItemsCount = 100
)

// signed requests
const (
	RequestLifetime = 10 * 60 // seconds from signing to expiry
)
