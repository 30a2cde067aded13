// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/inheritd/events"
	"github.com/bitmark-inc/inheritd/messagebus"
	"github.com/bitmark-inc/inheritd/mode"
	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodic report of committed actions, the event queue and the heap
func memstats() {
	log := logger.New("stats")

	for {
		log.Infof("mode: %s  %s", mode.String(), queueSummary(events.CurrentMetrics(), messagebus.Bus.Events))

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		log.Infof("heap: %d M  OS virtual: %d M  goroutines: %d", m.HeapAlloc/mega, m.Sys/mega, runtime.NumGoroutine())

		time.Sleep(statsDelay)
	}
}

// one line of event counts, queue depth and drops
func queueSummary(metrics *events.Metrics, queue *messagebus.QueueT) string {
	s := fmt.Sprintf("queued: %d  dropped: %d", queue.Pending(), queue.Dropped())
	if nil == metrics {
		return s + "  events: none"
	}

	totals, err := metrics.Totals()
	if nil != err {
		return fmt.Sprintf("%s  metrics error: %s", s, err)
	}
	return fmt.Sprintf("%s  events: %.0f  bills: %.0f  mined: %.0f  transitions: %.0f  deposits: %.0f",
		s,
		totals["events_total"],
		totals["bills_total"],
		totals["mining_outcomes_total"],
		totals["inheritance_transitions_total"],
		totals["deposits_total"],
	)
}
