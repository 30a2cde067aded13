// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"sync"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/directory"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/quantity"
	"github.com/bitmark-inc/inheritd/record"
	"github.com/bitmark-inc/inheritd/storage"
	"github.com/bitmark-inc/logger"
)

// MaximumMemoLength - bytes in a transfer memo
const MaximumMemoLength = 256

// Notifiable - a program that wants to see its transfers
type Notifiable interface {
	OnTransfer(ctx *action.Context, program eos.AccountName, from eos.AccountName, to eos.AccountName, quantity eos.Asset, memo string) error
}

// Transfer - payload of a transfer event
type Transfer struct {
	From     eos.AccountName `json:"from"`
	To       eos.AccountName `json:"to"`
	Quantity eos.Asset       `json:"quantity"`
	Memo     string          `json:"memo"`
}

// Ledger - the token programs
type Ledger struct {
	sync.RWMutex
	log      *logger.L
	watchers map[eos.AccountName]Notifiable
}

// New - create a ledger
func New(log *logger.L) *Ledger {
	return &Ledger{
		log:      log,
		watchers: make(map[eos.AccountName]Notifiable),
	}
}

// Register - send transfer notifications for name to n
func (l *Ledger) Register(name eos.AccountName, n Notifiable) {
	l.Lock()
	l.watchers[name] = n
	l.Unlock()
}

// Create - a new symbol in program
func (l *Ledger) Create(ctx *action.Context, program eos.AccountName, issuer eos.AccountName, maximumSupply eos.Asset) error {
	if err := ctx.RequireAuth(program); nil != err {
		return err
	}
	if !directory.Exists(ctx.Trx(), issuer) {
		return fault.ErrUnknownAccount
	}
	if err := quantity.ValidatePositive(maximumSupply); nil != err {
		return err
	}

	key, err := statsKey(program, maximumSupply.Symbol)
	if nil != err {
		return err
	}
	if ctx.Trx().Has(storage.Pool.TokenStats, key) {
		return fault.ErrTokenExists
	}

	stats := &record.TokenStats{
		Issuer:        issuer,
		Supply:        quantity.Zero(maximumSupply.Symbol),
		MaximumSupply: maximumSupply,
	}
	err = putRecord(ctx.Trx(), storage.Pool.TokenStats, key, stats)
	if nil != err {
		return err
	}

	l.log.Infof("program: %s  create: %s  issuer: %s", program, maximumSupply, issuer)
	return nil
}

// Issue - new tokens to the issuer, then passed on to "to"
func (l *Ledger) Issue(ctx *action.Context, program eos.AccountName, to eos.AccountName, q eos.Asset, memo string) error {
	if len(memo) > MaximumMemoLength {
		return fault.ErrInvalidMemo
	}
	if err := quantity.ValidatePositive(q); nil != err {
		return err
	}

	trx := ctx.Trx()
	key, err := statsKey(program, q.Symbol)
	if nil != err {
		return err
	}
	stats, err := getStats(trx, key)
	if nil != err {
		return err
	}
	if err := ctx.RequireAuth(stats.Issuer); nil != err {
		return err
	}
	if !quantity.SameSymbol(stats.Supply.Symbol, q.Symbol) {
		return fault.ErrSymbolMismatch
	}

	available, err := quantity.Sub(stats.MaximumSupply, stats.Supply)
	if nil != err {
		return err
	}
	if q.Amount > available.Amount {
		return fault.ErrMaximumSupplyExceeded
	}
	stats.Supply, err = quantity.Add(stats.Supply, q)
	if nil != err {
		return err
	}
	err = putRecord(trx, storage.Pool.TokenStats, key, stats)
	if nil != err {
		return err
	}

	err = addBalance(trx, program, stats.Issuer, q)
	if nil != err {
		return err
	}
	l.log.Infof("program: %s  issue: %s  to: %s", program, q, stats.Issuer)

	if to != stats.Issuer {
		return l.Transfer(ctx, program, stats.Issuer, to, q, memo)
	}
	return nil
}

// Transfer - move tokens between accounts and notify both sides
func (l *Ledger) Transfer(ctx *action.Context, program eos.AccountName, from eos.AccountName, to eos.AccountName, q eos.Asset, memo string) error {
	if from == to {
		return fault.ErrSelfTransfer
	}
	if err := ctx.RequireAuth(from); nil != err {
		return err
	}
	trx := ctx.Trx()
	if !directory.Exists(trx, to) {
		return fault.ErrReceiverNotFound
	}
	if err := quantity.ValidatePositive(q); nil != err {
		return err
	}
	if len(memo) > MaximumMemoLength {
		return fault.ErrInvalidMemo
	}

	key, err := statsKey(program, q.Symbol)
	if nil != err {
		return err
	}
	stats, err := getStats(trx, key)
	if nil != err {
		return err
	}
	if !quantity.SameSymbol(stats.Supply.Symbol, q.Symbol) {
		return fault.ErrSymbolMismatch
	}

	err = subBalance(trx, program, from, q)
	if nil != err {
		return err
	}
	err = addBalance(trx, program, to, q)
	if nil != err {
		return err
	}

	l.log.Infof("program: %s  transfer: %s  from: %s  to: %s", program, q, from, to)
	l.log.Debugf("memo: %q", memo)

	ctx.Emit(program, action.KindTransfer, Transfer{
		From:     from,
		To:       to,
		Quantity: q,
		Memo:     memo,
	})

	for _, name := range []eos.AccountName{from, to} {
		l.RLock()
		n, ok := l.watchers[name]
		l.RUnlock()
		if !ok {
			continue
		}
		err := n.OnTransfer(ctx, program, from, to, q, memo)
		if nil != err {
			return err
		}
	}
	return nil
}

// Balance - implements protocol.Tokens
func (l *Ledger) Balance(r storage.Reader, program eos.AccountName, owner eos.AccountName, symbol eos.Symbol) (eos.Asset, bool) {
	return Balance(r, program, owner, symbol)
}

// Balance - owner's holding of a symbol, false if never held
//
// only the symbol code is compared, the returned amount carries the
// stored precision
func Balance(r storage.Reader, program eos.AccountName, owner eos.AccountName, symbol eos.Symbol) (eos.Asset, bool) {
	key, err := balanceKey(program, owner, symbol)
	if nil != err {
		return eos.Asset{}, false
	}
	b, err := getBalance(r, key)
	if nil != err {
		return eos.Asset{}, false
	}
	return b.Amount, true
}

// Stats - issuer and supply of a symbol
func Stats(r storage.Reader, program eos.AccountName, symbol eos.Symbol) (*record.TokenStats, error) {
	key, err := statsKey(program, symbol)
	if nil != err {
		return nil, err
	}
	return getStats(r, key)
}

func addBalance(trx storage.Transaction, program eos.AccountName, owner eos.AccountName, q eos.Asset) error {
	key, err := balanceKey(program, owner, q.Symbol)
	if nil != err {
		return err
	}
	b, err := getBalance(trx, key)
	if fault.ErrTokenNotOwned == err {
		b = &record.Balance{Amount: quantity.Zero(q.Symbol)}
	} else if nil != err {
		return err
	}
	b.Amount, err = quantity.Add(b.Amount, q)
	if nil != err {
		return err
	}
	return putRecord(trx, storage.Pool.Balances, key, b)
}

func subBalance(trx storage.Transaction, program eos.AccountName, owner eos.AccountName, q eos.Asset) error {
	key, err := balanceKey(program, owner, q.Symbol)
	if nil != err {
		return err
	}
	b, err := getBalance(trx, key)
	if fault.ErrTokenNotOwned == err {
		return fault.ErrInsufficientBalance
	} else if nil != err {
		return err
	}
	if b.Amount.Amount < q.Amount {
		return fault.ErrInsufficientBalance
	}
	b.Amount, err = quantity.Sub(b.Amount, q)
	if nil != err {
		return err
	}
	return putRecord(trx, storage.Pool.Balances, key, b)
}

func statsKey(program eos.AccountName, symbol eos.Symbol) ([]byte, error) {
	key, err := account.NameBytes(program)
	if nil != err {
		return nil, err
	}
	code, err := quantity.CodeBytes(symbol)
	if nil != err {
		return nil, err
	}
	return append(key, code...), nil
}

func balanceKey(program eos.AccountName, owner eos.AccountName, symbol eos.Symbol) ([]byte, error) {
	key, err := account.NamesKey(program, owner)
	if nil != err {
		return nil, err
	}
	code, err := quantity.CodeBytes(symbol)
	if nil != err {
		return nil, err
	}
	return append(key, code...), nil
}

func getStats(r storage.Reader, key []byte) (*record.TokenStats, error) {
	packed := r.Get(storage.Pool.TokenStats, key)
	if nil == packed {
		return nil, fault.ErrTokenNotFound
	}
	unpacked, _, err := record.Packed(packed).Unpack()
	if nil != err {
		return nil, err
	}
	stats, ok := unpacked.(*record.TokenStats)
	if !ok {
		return nil, fault.ErrWrongRecordType
	}
	return stats, nil
}

func getBalance(r storage.Reader, key []byte) (*record.Balance, error) {
	packed := r.Get(storage.Pool.Balances, key)
	if nil == packed {
		return nil, fault.ErrTokenNotOwned
	}
	unpacked, _, err := record.Packed(packed).Unpack()
	if nil != err {
		return nil, err
	}
	b, ok := unpacked.(*record.Balance)
	if !ok {
		return nil, fault.ErrWrongRecordType
	}
	return b, nil
}

func putRecord(trx storage.Transaction, pool *storage.PoolHandle, key []byte, r record.Record) error {
	packed, err := r.Pack()
	if nil != err {
		return err
	}
	trx.Put(pool, key, packed)
	return nil
}
