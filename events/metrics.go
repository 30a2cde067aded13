// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/agent"
	"github.com/bitmark-inc/inheritd/client"
	"github.com/bitmark-inc/inheritd/messagebus"
	"github.com/bitmark-inc/inheritd/record"
)

const namespace = "inheritd"

// Metrics - counters maintained from the event stream
type Metrics struct {
	registry    *prometheus.Registry
	events      *prometheus.CounterVec
	bills       *prometheus.CounterVec
	outcomes    *prometheus.CounterVec
	transitions *prometheus.CounterVec
	deposits    *prometheus.CounterVec
}

// NewMetrics - create a registry holding all event counters
//
// the dropped gauge reads the queue's own drop count
func NewMetrics(queue *messagebus.QueueT) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Committed events by program and kind.",
		}, []string{"program", "kind"}),
		bills: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bills_total",
			Help:      "Bills written to the agent logs by bill type.",
		}, []string{"type"}),
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mining_outcomes_total",
			Help:      "Completed mining attempts by outcome.",
		}, []string{"outcome"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inheritance_transitions_total",
			Help:      "Inheritance state transitions by outcome.",
		}, []string{"outcome"}),
		deposits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deposits_total",
			Help:      "Accepted agent deposits by purpose.",
		}, []string{"for"}),
	}

	m.registry.MustRegister(m.events, m.bills, m.outcomes, m.transitions, m.deposits)

	if nil != queue {
		m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "events_dropped",
			Help:      "Events discarded because the queue was full.",
		}, func() float64 {
			return float64(queue.Dropped())
		}))
	}
	return m
}

// Registry - the gatherer to serve
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Totals - every metric summed over its labels, keyed by name
// without the namespace prefix
func (m *Metrics) Totals() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if nil != err {
		return nil, err
	}

	totals := make(map[string]float64, len(families))
	for _, f := range families {
		total := 0.0
		for _, metric := range f.GetMetric() {
			switch {
			case nil != metric.GetCounter():
				total += metric.GetCounter().GetValue()
			case nil != metric.GetGauge():
				total += metric.GetGauge().GetValue()
			}
		}
		totals[strings.TrimPrefix(f.GetName(), namespace+"_")] = total
	}
	return totals, nil
}

// Observe - count one event
func (m *Metrics) Observe(event action.Event) {
	m.events.WithLabelValues(string(event.Program), event.Kind).Inc()

	switch data := event.Data.(type) {
	case record.Bill:
		m.bills.WithLabelValues(data.Kind.String()).Inc()
	case agent.Mined:
		m.outcomes.WithLabelValues(data.Outcome.String()).Inc()
	case client.Transition:
		m.transitions.WithLabelValues(data.Outcome.String()).Inc()
	case agent.Deposit:
		m.deposits.WithLabelValues(data.For.String()).Inc()
	}
}
