// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package agent - the program that pays miners to advance client
// inheritances and bills the clients for the service
//
// storage keys, all prefixed by the agent account:
//
//   V agent                                 earnings
//   M agent miner                           miner account
//   C agent client                          client account
//   B agent id                              miner bill
//   L agent id                              client bill
//   N agent "minerbill" | "clientbill"      next id
//
// names are 8 byte big endian and ids are 8 byte big endian
package agent
