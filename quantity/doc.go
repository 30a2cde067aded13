// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package quantity - fixed point token amounts
//
// Amounts are eos.Asset values: a signed 64 bit integer count of the
// smallest unit plus a symbol carrying the precision and ticker.
// Arithmetic here never panics, mixing symbols or leaving the
// representable range returns a fault error instead.
//
// Where the issuing token program matters an eos.ExtendedAsset is
// used, the program being the contract account that holds balances.
package quantity
