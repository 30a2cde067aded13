// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/binary"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/fault"
)

// MaximumNameLength - characters in an account name
const MaximumNameLength = 12

// ValidName - check the characters and that the name survives
// conversion to its numeric form unchanged
func ValidName(name string) bool {
	n := len(name)
	if n < 1 || n > MaximumNameLength || '.' == name[n-1] {
		return false
	}
	for i := 0; i < n; i += 1 {
		c := name[i]
		if !(c >= 'a' && c <= 'z' || c >= '1' && c <= '5' || '.' == c) {
			return false
		}
	}
	v, err := eos.StringToName(name)
	if nil != err {
		return false
	}
	return eos.NameToString(v) == name
}

// ParseName - validated account name
func ParseName(name string) (eos.AccountName, error) {
	if !ValidName(name) {
		return "", fault.ErrInvalidAccountName
	}
	return eos.AN(name), nil
}

// NameToUint64 - numeric form of a valid name
func NameToUint64(name eos.AccountName) (uint64, error) {
	if !ValidName(string(name)) {
		return 0, fault.ErrInvalidAccountName
	}
	return eos.StringToName(string(name))
}

// NameFromUint64 - reverse of NameToUint64
func NameFromUint64(value uint64) (eos.AccountName, error) {
	return ParseName(eos.NameToString(value))
}

// NameBytes - big endian numeric form, for storage keys
func NameBytes(name eos.AccountName) ([]byte, error) {
	v, err := NameToUint64(name)
	if nil != err {
		return nil, err
	}
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, v)
	return buffer, nil
}

// NameFromBytes - reverse of NameBytes, reads the first 8 bytes
func NameFromBytes(buffer []byte) (eos.AccountName, error) {
	if len(buffer) < 8 {
		return "", fault.ErrInvalidKeyLength
	}
	return NameFromUint64(binary.BigEndian.Uint64(buffer[:8]))
}

// NamesKey - concatenated NameBytes of each name
func NamesKey(names ...eos.AccountName) ([]byte, error) {
	key := make([]byte, 0, 8*len(names))
	for _, name := range names {
		b, err := NameBytes(name)
		if nil != err {
			return nil, err
		}
		key = append(key, b...)
	}
	return key, nil
}
