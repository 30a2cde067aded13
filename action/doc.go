// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package action - the single writer transaction boundary
//
// Every state changing call runs inside Executor.Execute: the
// executor lock is held, one storage transaction is open, and the
// current time is fixed for the whole call.  Inline calls between
// programs and notifications all share the same Context, so an error
// anywhere aborts everything.  Events emitted during the call are
// published only after a successful commit.
package action
