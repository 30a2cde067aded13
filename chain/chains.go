// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the ledgers a node can host programs for
package chain

// names of all chains
const (
	Live    = "live"
	Testing = "testing"
	Local   = "local"
)

// chain name => debug data commands are permitted
var chains = map[string]bool{
	Live:    false,
	Testing: true,
	Local:   true,
}

// Valid - validate a chain name
func Valid(name string) bool {
	_, ok := chains[name]
	return ok
}

// IsTesting - a chain whose program data may be cleared
func IsTesting(name string) bool {
	return chains[name]
}
