// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/eoscanada/eos-go"
)

// TagType - type code for records
type TagType uint64

// enumerate the possible record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	AccountTag     = TagType(iota) // account directory entry
	BalanceTag     = TagType(iota) // token balance
	TokenStatsTag  = TagType(iota) // token issuer and supply
	ClientFlagTag  = TagType(iota) // client init-once flag
	AllocationTag  = TagType(iota) // client allocation ledger
	InheritanceTag = TagType(iota) // client inheritance registry
	TransferTag    = TagType(iota) // client transfer history
	AgentStateTag  = TagType(iota) // agent earnings singleton
	MinerTag       = TagType(iota) // agent miner ledger
	ClientTag      = TagType(iota) // agent client ledger
	BillTag        = TagType(iota) // agent bill log entry

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack() (Packed, error)
}

// byte sizes for various fields
const (
	MaxRemarkLength    = 256
	maxPublicKeyLength = 64
)

// Account - an entry in the account directory
type Account struct {
	Name      eos.AccountName `json:"name"`
	PublicKey []byte          `json:"publicKey"`
	Created   uint32          `json:"created"`
}

// Balance - a token balance
type Balance struct {
	Amount eos.Asset `json:"amount"`
}

// TokenStats - a token created in a token program
type TokenStats struct {
	Issuer        eos.AccountName `json:"issuer"`
	Supply        eos.Asset       `json:"supply"`
	MaximumSupply eos.Asset       `json:"maximumSupply"`
}

// ClientFlag - present once a client program has been initialised
type ClientFlag struct {
	Enabled bool `json:"enabled"`
}

// Allocation - split of a client's balance of one token
//
// allocated + unallocated equals the client's balance
type Allocation struct {
	Allocated   eos.Asset `json:"allocated"`
	Unallocated eos.Asset `json:"unallocated"`
	Transferred eos.Asset `json:"transferred"`
}

// Inheritance - a pending grant of one token to one inheritor
type Inheritance struct {
	ID               uint64            `json:"id"`
	State            State             `json:"state"`
	WillGet          eos.ExtendedAsset `json:"willGet"`
	ValidFrom        uint32            `json:"validFrom"`
	CooldownBegan    uint32            `json:"cooldownBegan"`
	CooldownDuration uint32            `json:"cooldownDuration"`
	Remark           string            `json:"remark"`
}

// Transfer - a completed release, never modified
type Transfer struct {
	ID               uint64            `json:"id"`
	Receiver         eos.AccountName   `json:"receiver"`
	Got              eos.ExtendedAsset `json:"got"`
	ValidFrom        uint32            `json:"validFrom"`
	CooldownBegan    uint32            `json:"cooldownBegan"`
	CooldownDuration uint32            `json:"cooldownDuration"`
	TransferredTime  uint32            `json:"transferredTime"`
	Remark           string            `json:"remark"`
}

// AgentState - operator earnings, present once the agent is initialised
type AgentState struct {
	Earnings eos.Asset `json:"earnings"`
}

// Miner - per miner deposit, fines, rewards and throttle
type Miner struct {
	Miner         eos.AccountName `json:"miner"`
	Deposit       eos.Asset       `json:"deposit"`
	Fee           eos.Asset       `json:"fee"`
	Reward        eos.Asset       `json:"reward"`
	TryCount      uint8           `json:"tryCount"`
	LastTryTime   uint32          `json:"lastTryTime"`
	LastClaimTime uint32          `json:"lastClaimTime"`
}

// Client - per client deposit, fees and refundable balance
type Client struct {
	Client        eos.AccountName `json:"client"`
	Deposit       eos.Asset       `json:"deposit"`
	Fee           eos.Asset       `json:"fee"`
	Refund        eos.Asset       `json:"refund"`
	LastClaimTime uint32          `json:"lastClaimTime"`
}

// Bill - one line of an audit log, quantity is signed
type Bill struct {
	ID        uint64          `json:"id"`
	Payer     eos.AccountName `json:"payer"`
	Payee     eos.AccountName `json:"payee"`
	Quantity  eos.Asset       `json:"quantity"`
	Kind      BillType        `json:"kind"`
	Timestamp uint32          `json:"timestamp"`
}
