// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package quantity

import (
	"strings"

	"github.com/eoscanada/eos-go"
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/inheritd/fault"
)

// MaximumAmount - largest magnitude an amount may hold
const MaximumAmount = int64(1)<<62 - 1

// limits on the symbol
const (
	MaximumPrecision    = 18
	maximumTickerLength = 7
)

// Zero - a zero amount in the given symbol
func Zero(symbol eos.Symbol) eos.Asset {
	return eos.Asset{
		Amount: 0,
		Symbol: eos.Symbol{Precision: symbol.Precision, Symbol: symbol.Symbol},
	}
}

// New - amount in smallest units of the given symbol
func New(amount int64, symbol eos.Symbol) eos.Asset {
	a := Zero(symbol)
	a.Amount = eos.Int64(amount)
	return a
}

// SameSymbol - precision and ticker both match
func SameSymbol(a eos.Symbol, b eos.Symbol) bool {
	return a.Precision == b.Precision && a.Symbol == b.Symbol
}

// Equal - same symbol and same amount
func Equal(a eos.Asset, b eos.Asset) bool {
	return SameSymbol(a.Symbol, b.Symbol) && a.Amount == b.Amount
}

// ValidSymbol - ticker is 1..7 upper case letters and the precision is in range
func ValidSymbol(symbol eos.Symbol) bool {
	n := len(symbol.Symbol)
	if n < 1 || n > maximumTickerLength || symbol.Precision > MaximumPrecision {
		return false
	}
	for _, c := range symbol.Symbol {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// IsValid - symbol is well formed and the magnitude is representable
func IsValid(a eos.Asset) bool {
	amount := int64(a.Amount)
	return ValidSymbol(a.Symbol) && amount <= MaximumAmount && amount >= -MaximumAmount
}

// Validate - IsValid as an error
func Validate(a eos.Asset) error {
	if !IsValid(a) {
		return fault.ErrInvalidQuantity
	}
	return nil
}

// ValidatePositive - valid and strictly greater than zero
func ValidatePositive(a eos.Asset) error {
	if !IsValid(a) {
		return fault.ErrInvalidQuantity
	}
	if a.Amount <= 0 {
		return fault.ErrZeroQuantity
	}
	return nil
}

// Add - a + b, both in the same symbol
func Add(a eos.Asset, b eos.Asset) (eos.Asset, error) {
	if !SameSymbol(a.Symbol, b.Symbol) {
		return eos.Asset{}, fault.ErrSymbolMismatch
	}
	result := New(int64(a.Amount)+int64(b.Amount), a.Symbol)
	if !IsValid(result) {
		return eos.Asset{}, fault.ErrOverflow
	}
	return result, nil
}

// Sub - a - b, both in the same symbol
func Sub(a eos.Asset, b eos.Asset) (eos.Asset, error) {
	if !SameSymbol(a.Symbol, b.Symbol) {
		return eos.Asset{}, fault.ErrSymbolMismatch
	}
	result := New(int64(a.Amount)-int64(b.Amount), a.Symbol)
	if !IsValid(result) {
		return eos.Asset{}, fault.ErrOverflow
	}
	return result, nil
}

// Less - a < b, both in the same symbol
func Less(a eos.Asset, b eos.Asset) (bool, error) {
	if !SameSymbol(a.Symbol, b.Symbol) {
		return false, fault.ErrSymbolMismatch
	}
	return a.Amount < b.Amount, nil
}

// Parse - decode a string like "1.0000 EOS"
//
// the number of decimals sets the precision
func Parse(s string) (eos.Asset, error) {
	a, err := eos.NewAssetFromString(strings.TrimSpace(s))
	if nil != err {
		return eos.Asset{}, fault.ErrInvalidQuantity
	}
	a = New(int64(a.Amount), a.Symbol)
	if !IsValid(a) {
		return eos.Asset{}, fault.ErrInvalidQuantity
	}
	return a, nil
}

// FromDecimal - convert a decimal string like "0.1" into the symbol's
// smallest units, digits beyond the precision are an error
func FromDecimal(s string, symbol eos.Symbol) (eos.Asset, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if nil != err {
		return eos.Asset{}, fault.ErrInvalidQuantity
	}
	scaled := d.Mul(decimal.New(1, int32(symbol.Precision)))
	if !scaled.Equal(scaled.Truncate(0)) {
		return eos.Asset{}, fault.ErrInvalidQuantity
	}
	limit := decimal.New(MaximumAmount, 0)
	if scaled.Abs().GreaterThan(limit) {
		return eos.Asset{}, fault.ErrOverflow
	}
	a := New(scaled.IntPart(), symbol)
	if !IsValid(a) {
		return eos.Asset{}, fault.ErrInvalidQuantity
	}
	return a, nil
}

// ToDecimal - the amount as a decimal number of whole tokens
func ToDecimal(a eos.Asset) decimal.Decimal {
	return decimal.New(int64(a.Amount), -int32(a.Symbol.Precision))
}
