// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/inheritd/fault"
)

// Signature - ed25519 signature over a request, base58 as text
//
// an unsigned request carries the empty string
type Signature []byte

// String - base58 for use by the fmt package (for %s)
func (signature Signature) String() string {
	return base58.Encode(signature)
}

// GoString - for %#v
func (signature Signature) GoString() string {
	return "<signature:" + base58.Encode(signature) + ">"
}

// MarshalText - convert signature to base58 text
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(base58.Encode(signature)), nil
}

// UnmarshalText - convert base58 text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	if 0 == len(s) {
		*signature = nil
		return nil
	}
	sig, err := base58.Decode(string(s))
	if nil != err {
		return fault.ErrInvalidSignature
	}
	*signature = sig
	return nil
}
