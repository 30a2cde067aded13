// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/quantity"
	"github.com/bitmark-inc/inheritd/util"
)

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//   switch r := result.(type) {
//   case *record.Inheritance:
func (record Packed) Unpack() (r Record, n int, e error) {

	defer func() {
		if x := recover(); nil != x {
			r, n, e = nil, 0, fault.ErrRecordTruncated
		}
	}()

	recordType, n := util.ClippedVarint64(record, 1, 8192)
	if 0 == n {
		return nil, 0, fault.ErrUnknownRecordType
	}

	u := &unpacker{buffer: record, n: n}

	switch TagType(recordType) {

	case AccountTag:
		a := &Account{}
		a.Name = u.name()
		a.PublicKey = u.bytes(maxPublicKeyLength)
		a.Created = u.uint32()
		r = a

	case BalanceTag:
		r = &Balance{
			Amount: u.asset(),
		}

	case TokenStatsTag:
		s := &TokenStats{}
		s.Issuer = u.name()
		s.Supply = u.asset()
		s.MaximumSupply = u.asset()
		r = s

	case ClientFlagTag:
		r = &ClientFlag{
			Enabled: 0 != u.uint64(),
		}

	case AllocationTag:
		a := &Allocation{}
		a.Allocated = u.asset()
		a.Unallocated = u.asset()
		a.Transferred = u.asset()
		r = a

	case InheritanceTag:
		i := &Inheritance{}
		i.ID = u.uint64()
		i.State = State(u.uint64())
		i.WillGet = u.extended()
		i.ValidFrom = u.uint32()
		i.CooldownBegan = u.uint32()
		i.CooldownDuration = u.uint32()
		i.Remark = string(u.bytes(MaxRemarkLength))
		if nil == u.err && !i.State.IsValid() {
			u.err = fault.ErrInvalidState
		}
		r = i

	case TransferTag:
		t := &Transfer{}
		t.ID = u.uint64()
		t.Receiver = u.name()
		t.Got = u.extended()
		t.ValidFrom = u.uint32()
		t.CooldownBegan = u.uint32()
		t.CooldownDuration = u.uint32()
		t.TransferredTime = u.uint32()
		t.Remark = string(u.bytes(MaxRemarkLength))
		r = t

	case AgentStateTag:
		r = &AgentState{
			Earnings: u.asset(),
		}

	case MinerTag:
		m := &Miner{}
		m.Miner = u.name()
		m.Deposit = u.asset()
		m.Fee = u.asset()
		m.Reward = u.asset()
		m.TryCount = uint8(u.uint64())
		m.LastTryTime = u.uint32()
		m.LastClaimTime = u.uint32()
		r = m

	case ClientTag:
		c := &Client{}
		c.Client = u.name()
		c.Deposit = u.asset()
		c.Fee = u.asset()
		c.Refund = u.asset()
		c.LastClaimTime = u.uint32()
		r = c

	case BillTag:
		b := &Bill{}
		b.ID = u.uint64()
		b.Payer = u.name()
		b.Payee = u.name()
		b.Quantity = u.asset()
		b.Kind = BillType(u.uint64())
		b.Timestamp = u.uint32()
		if nil == u.err && !b.Kind.IsValid() {
			u.err = fault.ErrInvalidBillType
		}
		r = b

	default: // also NullTag
		return nil, 0, fault.ErrUnknownRecordType
	}

	if nil != u.err {
		return nil, 0, u.err
	}
	return r, u.n, nil
}

// sequential field decoder, the first error sticks and all later
// fields decode as zero
type unpacker struct {
	buffer []byte
	n      int
	err    error
}

func (u *unpacker) uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, count := util.FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.err = fault.ErrRecordTruncated
		return 0
	}
	u.n += count
	return value
}

func (u *unpacker) uint32() uint32 {
	value := u.uint64()
	if value > 0xffffffff && nil == u.err {
		u.err = fault.ErrRecordTruncated
	}
	return uint32(value)
}

func (u *unpacker) bytes(maximum int) []byte {
	length := u.uint64()
	if nil != u.err {
		return nil
	}
	if length > uint64(maximum) || u.n+int(length) > len(u.buffer) {
		u.err = fault.ErrRecordTruncated
		return nil
	}
	data := make([]byte, length)
	copy(data, u.buffer[u.n:])
	u.n += int(length)
	return data
}

func (u *unpacker) name() eos.AccountName {
	value := u.uint64()
	if nil != u.err {
		return ""
	}
	name, err := account.NameFromUint64(value)
	if nil != err {
		u.err = err
	}
	return name
}

func (u *unpacker) asset() eos.Asset {
	if nil != u.err {
		return eos.Asset{}
	}
	amount, count := util.FromSignedVarint64(u.buffer[u.n:])
	if 0 == count {
		u.err = fault.ErrRecordTruncated
		return eos.Asset{}
	}
	u.n += count

	packed := u.uint64()
	if nil != u.err {
		return eos.Asset{}
	}
	symbol, err := quantity.UnpackSymbol(packed)
	if nil != err {
		u.err = err
		return eos.Asset{}
	}
	a := quantity.New(amount, symbol)
	if !quantity.IsValid(a) {
		u.err = fault.ErrInvalidQuantity
	}
	return a
}

func (u *unpacker) extended() eos.ExtendedAsset {
	a := u.asset()
	contract := u.name()
	return eos.ExtendedAsset{
		Asset:    a,
		Contract: contract,
	}
}
