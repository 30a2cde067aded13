// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package quantity

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/fault"
)

// SymbolCode - ticker packed into a uint64, first character in the
// lowest byte; precision is not part of the code
func SymbolCode(symbol eos.Symbol) (uint64, error) {
	if !ValidSymbol(symbol) {
		return 0, fault.ErrInvalidSymbol
	}
	code := uint64(0)
	for i := len(symbol.Symbol) - 1; i >= 0; i -= 1 {
		code = code<<8 | uint64(symbol.Symbol[i])
	}
	return code, nil
}

// TickerFromCode - reverse of SymbolCode
func TickerFromCode(code uint64) (string, error) {
	b := make([]byte, 0, maximumTickerLength)
	for ; 0 != code; code >>= 8 {
		c := byte(code)
		if c < 'A' || c > 'Z' || len(b) == maximumTickerLength {
			return "", fault.ErrInvalidSymbol
		}
		b = append(b, c)
	}
	if 0 == len(b) {
		return "", fault.ErrInvalidSymbol
	}
	return string(b), nil
}

// PackSymbol - precision in the low byte, code above it
func PackSymbol(symbol eos.Symbol) (uint64, error) {
	code, err := SymbolCode(symbol)
	if nil != err {
		return 0, err
	}
	return code<<8 | uint64(symbol.Precision), nil
}

// UnpackSymbol - reverse of PackSymbol
func UnpackSymbol(packed uint64) (eos.Symbol, error) {
	ticker, err := TickerFromCode(packed >> 8)
	if nil != err {
		return eos.Symbol{}, err
	}
	symbol := eos.Symbol{
		Precision: uint8(packed),
		Symbol:    ticker,
	}
	if !ValidSymbol(symbol) {
		return eos.Symbol{}, fault.ErrInvalidSymbol
	}
	return symbol, nil
}

// CodeBytes - big endian SymbolCode, for storage keys
func CodeBytes(symbol eos.Symbol) ([]byte, error) {
	code, err := SymbolCode(symbol)
	if nil != err {
		return nil, err
	}
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, code)
	return buffer, nil
}

// ParseSymbol - decode "precision,TICKER" e.g. "4,EOS"
func ParseSymbol(s string) (eos.Symbol, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if 2 != len(parts) {
		return eos.Symbol{}, fault.ErrInvalidSymbol
	}
	precision, err := strconv.ParseUint(parts[0], 10, 8)
	if nil != err {
		return eos.Symbol{}, fault.ErrInvalidSymbol
	}
	symbol := eos.Symbol{Precision: uint8(precision), Symbol: parts[1]}
	if !ValidSymbol(symbol) {
		return eos.Symbol{}, fault.ErrInvalidSymbol
	}
	return symbol, nil
}

// FormatSymbol - inverse of ParseSymbol
func FormatSymbol(symbol eos.Symbol) string {
	return strconv.Itoa(int(symbol.Precision)) + "," + symbol.Symbol
}
