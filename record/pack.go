// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/eoscanada/eos-go"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/quantity"
	"github.com/bitmark-inc/inheritd/util"
)

// every record packs as Varint64(tag) followed by its fields in
// struct order

// Pack - account directory entry
func (a *Account) Pack() (Packed, error) {
	if ed25519.PublicKeySize != len(a.PublicKey) {
		return nil, fault.ErrInvalidPublicKey
	}
	message := util.ToVarint64(uint64(AccountTag))
	message, err := appendName(message, a.Name)
	if nil != err {
		return nil, err
	}
	message = appendBytes(message, a.PublicKey)
	return appendUint64(message, uint64(a.Created)), nil
}

// Pack - token balance
func (b *Balance) Pack() (Packed, error) {
	return appendAsset(util.ToVarint64(uint64(BalanceTag)), b.Amount)
}

// Pack - token statistics
func (s *TokenStats) Pack() (Packed, error) {
	if !quantity.SameSymbol(s.Supply.Symbol, s.MaximumSupply.Symbol) {
		return nil, fault.ErrSymbolMismatch
	}
	message := util.ToVarint64(uint64(TokenStatsTag))
	message, err := appendName(message, s.Issuer)
	if nil != err {
		return nil, err
	}
	message, err = appendAsset(message, s.Supply)
	if nil != err {
		return nil, err
	}
	return appendAsset(message, s.MaximumSupply)
}

// Pack - client flag
func (f *ClientFlag) Pack() (Packed, error) {
	return appendBool(util.ToVarint64(uint64(ClientFlagTag)), f.Enabled), nil
}

// Pack - allocation; all three amounts share one symbol
func (a *Allocation) Pack() (Packed, error) {
	if !quantity.SameSymbol(a.Allocated.Symbol, a.Unallocated.Symbol) || !quantity.SameSymbol(a.Allocated.Symbol, a.Transferred.Symbol) {
		return nil, fault.ErrSymbolMismatch
	}
	return appendAssets(util.ToVarint64(uint64(AllocationTag)), a.Allocated, a.Unallocated, a.Transferred)
}

// Pack - inheritance
func (i *Inheritance) Pack() (Packed, error) {
	if !i.State.IsValid() {
		return nil, fault.ErrInvalidState
	}
	if len(i.Remark) > MaxRemarkLength {
		return nil, fault.ErrRemarkTooLong
	}
	message := util.ToVarint64(uint64(InheritanceTag))
	message = appendUint64(message, i.ID)
	message = appendUint64(message, uint64(i.State))
	message, err := appendExtended(message, i.WillGet)
	if nil != err {
		return nil, err
	}
	message = appendUint64(message, uint64(i.ValidFrom))
	message = appendUint64(message, uint64(i.CooldownBegan))
	message = appendUint64(message, uint64(i.CooldownDuration))
	return appendString(message, i.Remark), nil
}

// Pack - transfer history entry
func (t *Transfer) Pack() (Packed, error) {
	if len(t.Remark) > MaxRemarkLength {
		return nil, fault.ErrRemarkTooLong
	}
	message := util.ToVarint64(uint64(TransferTag))
	message = appendUint64(message, t.ID)
	message, err := appendName(message, t.Receiver)
	if nil != err {
		return nil, err
	}
	message, err = appendExtended(message, t.Got)
	if nil != err {
		return nil, err
	}
	message = appendUint64(message, uint64(t.ValidFrom))
	message = appendUint64(message, uint64(t.CooldownBegan))
	message = appendUint64(message, uint64(t.CooldownDuration))
	message = appendUint64(message, uint64(t.TransferredTime))
	return appendString(message, t.Remark), nil
}

// Pack - agent singleton
func (s *AgentState) Pack() (Packed, error) {
	return appendAsset(util.ToVarint64(uint64(AgentStateTag)), s.Earnings)
}

// Pack - miner ledger row
func (m *Miner) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(MinerTag))
	message, err := appendName(message, m.Miner)
	if nil != err {
		return nil, err
	}
	message, err = appendAssets(message, m.Deposit, m.Fee, m.Reward)
	if nil != err {
		return nil, err
	}
	message = appendUint64(message, uint64(m.TryCount))
	message = appendUint64(message, uint64(m.LastTryTime))
	return appendUint64(message, uint64(m.LastClaimTime)), nil
}

// Pack - client ledger row
func (c *Client) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(ClientTag))
	message, err := appendName(message, c.Client)
	if nil != err {
		return nil, err
	}
	message, err = appendAssets(message, c.Deposit, c.Fee, c.Refund)
	if nil != err {
		return nil, err
	}
	return appendUint64(message, uint64(c.LastClaimTime)), nil
}

// Pack - bill log entry
func (b *Bill) Pack() (Packed, error) {
	if !b.Kind.IsValid() {
		return nil, fault.ErrInvalidBillType
	}
	message := util.ToVarint64(uint64(BillTag))
	message = appendUint64(message, b.ID)
	message, err := appendName(message, b.Payer)
	if nil != err {
		return nil, err
	}
	message, err = appendName(message, b.Payee)
	if nil != err {
		return nil, err
	}
	message, err = appendAsset(message, b.Quantity)
	if nil != err {
		return nil, err
	}
	message = appendUint64(message, uint64(b.Kind))
	return appendUint64(message, uint64(b.Timestamp)), nil
}

// internal routines below here

// append a single field to a buffer
//
// field is Varint64(length) ++ data
func appendString(buffer Packed, s string) Packed {
	return appendBytes(buffer, []byte(s))
}

func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	return append(buffer, data...)
}

// field is Varint64(value)
func appendUint64(buffer Packed, value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}

func appendBool(buffer Packed, value bool) Packed {
	if value {
		return appendUint64(buffer, 1)
	}
	return appendUint64(buffer, 0)
}

// field is Varint64(name as uint64)
func appendName(buffer Packed, name eos.AccountName) (Packed, error) {
	n, err := account.NameToUint64(name)
	if nil != err {
		return nil, err
	}
	return appendUint64(buffer, n), nil
}

// field is SignedVarint64(amount) ++ Varint64(packed symbol)
func appendAsset(buffer Packed, a eos.Asset) (Packed, error) {
	if !quantity.IsValid(a) {
		return nil, fault.ErrInvalidQuantity
	}
	symbol, err := quantity.PackSymbol(a.Symbol)
	if nil != err {
		return nil, err
	}
	buffer = append(buffer, util.ToSignedVarint64(int64(a.Amount))...)
	return appendUint64(buffer, symbol), nil
}

func appendAssets(buffer Packed, assets ...eos.Asset) (Packed, error) {
	var err error
	for _, a := range assets {
		buffer, err = appendAsset(buffer, a)
		if nil != err {
			return nil, err
		}
	}
	return buffer, nil
}

// field is asset ++ contract name
func appendExtended(buffer Packed, e eos.ExtendedAsset) (Packed, error) {
	buffer, err := appendAsset(buffer, e.Asset)
	if nil != err {
		return nil, err
	}
	return appendName(buffer, e.Contract)
}
