// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package events - background consumer of committed action events
//
// every event is logged and counted; the counters are served in
// Prometheus text format from /metrics on each configured listener
package events
