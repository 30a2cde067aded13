// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - fungible token ledger
//
// each token program keeps its own set of symbols, every symbol has
// an issuer and a maximum supply; balances are keyed by
// program ++ owner ++ symbol code
//
// programs registered with the ledger are told about every transfer
// that they send or receive, in the same transaction as the transfer
package token
