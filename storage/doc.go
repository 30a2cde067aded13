// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk table store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Writes only happen through a Transaction: puts and deletes are
// collected in a leveldb batch and mirrored in a read-through cache so
// reads inside the transaction see its own changes.  Commit writes the
// batch atomically, Abort discards batch and cache together.  Direct
// PoolHandle reads and cursors only ever see committed data.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++        = concatenation of byte data
// 3. name      = account name as 8 byte big endian uint64 (eos name encoding)
// 4. symbol    = packed symbol as 8 byte big endian uint64 (code << 8 | precision)
// 5. code      = symbol code as 8 byte big endian uint64 (no precision)
// 6. id        = sequence value as 8 byte big endian uint64
// 7. count     = 8 byte big endian uint64
// 8. *record*  = packed record, first varint is the record tag
//
// Accounts:
//
//   U ++ name                              - account directory
//                                            data: packed account record
//
// Token ledger:
//
//   S ++ program ++ code                   - token statistics (issuer, supply, maximum)
//   K ++ program ++ owner ++ code          - balance
//                                            data: packed balance
//
// Client program (scope is the client account):
//
//   F ++ client                            - init-once flag
//                                            data: packed client flag
//   A ++ client ++ program ++ code         - allocation
//   I ++ client ++ inheritor ++ id         - inheritance
//   J ++ client ++ inheritor ++ program ++ code
//                                          - unique index into I
//                                            data: id
//   T ++ client ++ program ++ id           - transfer history
//   R ++ client ++ program ++ receiver ++ code
//                                          - latest transfer to receiver
//                                            data: id
//
// Agent program (scope is the agent account):
//
//   V ++ agent                             - earnings, absent before init
//   M ++ agent ++ miner                    - miner ledger
//   C ++ agent ++ client                   - client ledger
//   B ++ agent ++ miner ++ id              - miner bill log
//   L ++ agent ++ client ++ id             - client bill log
//
// Sequences:
//
//   N ++ owner ++ table                    - next id for a synthetic key
//                                            data: count
//
// Testing:
//   Z ++ key                               - testing data
package storage
