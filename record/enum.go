// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/json"

	"github.com/bitmark-inc/inheritd/fault"
)

// State - release state of an inheritance
type State uint8

// the stored values must never change
const (
	Frozen              State = 0
	Active              State = 1
	ActiveCooldownMined State = 2
	stateLimit          State = 3
)

var stateNames = []string{
	Frozen:              "frozen",
	Active:              "active",
	ActiveCooldownMined: "active-cd-mined",
}

// String - lower case name
func (s State) String() string {
	if s < stateLimit {
		return stateNames[s]
	}
	return "invalid"
}

// IsValid - one of the defined states
func (s State) IsValid() bool {
	return s < stateLimit
}

// MarshalJSON - as its name
func (s State) MarshalJSON() ([]byte, error) {
	if !s.IsValid() {
		return nil, fault.ErrInvalidState
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON - from its name
func (s *State) UnmarshalJSON(b []byte) error {
	name := ""
	if err := json.Unmarshal(b, &name); nil != err {
		return err
	}
	for i, n := range stateNames {
		if n == name {
			*s = State(i)
			return nil
		}
	}
	return fault.ErrInvalidState
}

// BillType - kind of an audit log entry
type BillType uint8

// the stored values must never change
const (
	MiningFine     BillType = 0
	MiningReward   BillType = 1
	CDMiningReward BillType = 2
	TRMiningReward BillType = 3
	ClientService  BillType = 4
	MinerDeposit   BillType = 5
	MinerClaim     BillType = 6
	ClientDeposit  BillType = 7
	ClientClaim    BillType = 8
	billTypeLimit  BillType = 9
)

var billTypeNames = []string{
	MiningFine:     "mining-fine",
	MiningReward:   "mining-reward",
	CDMiningReward: "cd-mining-reward",
	TRMiningReward: "tr-mining-reward",
	ClientService:  "client-service",
	MinerDeposit:   "miner-deposit",
	MinerClaim:     "miner-claim",
	ClientDeposit:  "client-deposit",
	ClientClaim:    "client-claim",
}

// String - lower case name
func (b BillType) String() string {
	if b < billTypeLimit {
		return billTypeNames[b]
	}
	return "invalid"
}

// IsValid - one of the defined kinds
func (b BillType) IsValid() bool {
	return b < billTypeLimit
}

// MarshalJSON - as its name
func (b BillType) MarshalJSON() ([]byte, error) {
	if !b.IsValid() {
		return nil, fault.ErrInvalidBillType
	}
	return json.Marshal(b.String())
}

// UnmarshalJSON - from its name
func (b *BillType) UnmarshalJSON(buffer []byte) error {
	name := ""
	if err := json.Unmarshal(buffer, &name); nil != err {
		return err
	}
	for i, n := range billTypeNames {
		if n == name {
			*b = BillType(i)
			return nil
		}
	}
	return fault.ErrInvalidBillType
}
