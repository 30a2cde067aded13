// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package client - the program run by an account that leaves tokens
// to inheritors
//
// storage keys, all prefixed by the client account:
//
//   F client                               flag
//   A client program code                  allocation
//   I client inheritor id                  inheritance
//   J client inheritor program code        -> inheritance id
//   T client program id                    transfer
//   R client program receiver code         -> latest transfer id
//   N client "inheritance" | "transfer"    next id
//
// names are 8 byte big endian, code is the 8 byte symbol code and
// ids are 8 byte big endian
package client
