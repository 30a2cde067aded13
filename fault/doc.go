// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - shared error values
//
// Every failure a program action or RPC call can report is a single
// typed value here, so callers compare with == and the RPC layer can
// send the message text unchanged.
package fault
