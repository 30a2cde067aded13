// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/agent"
	"github.com/bitmark-inc/inheritd/events"
	"github.com/bitmark-inc/inheritd/fixtures"
	"github.com/bitmark-inc/inheritd/messagebus"
	"github.com/bitmark-inc/inheritd/protocol"
	"github.com/bitmark-inc/inheritd/record"
)

func TestQueueSummary(t *testing.T) {
	queue := messagebus.NewQueue(2)
	queue.Send("a", nil)

	assert.Equal(t, "queued: 1  dropped: 0  events: none", queueSummary(nil, queue), "no metrics")

	queue.Send("b", nil)
	queue.Send("c", nil)

	m := events.NewMetrics(queue)
	m.Observe(action.Event{
		Program: fixtures.Agent,
		Kind:    action.KindBill,
		Data:    record.Bill{ID: 1, Kind: record.ClientService},
	})
	m.Observe(action.Event{
		Program: fixtures.Agent,
		Kind:    action.KindMine,
		Data:    agent.Mined{Outcome: protocol.Transferred},
	})

	expected := "queued: 2  dropped: 1  events: 2  bills: 1  mined: 1  transitions: 0  deposits: 0"
	assert.Equal(t, expected, queueSummary(m, queue), "with metrics")
}
