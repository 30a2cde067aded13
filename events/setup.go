// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/inheritd/background"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/messagebus"
	"github.com/bitmark-inc/logger"
)

const (
	metricsPath     = "/metrics"
	shutdownTimeout = 5 * time.Second
)

// Configuration - metrics listeners
type Configuration struct {
	Listen []string `gluamapper:"listen" json:"listen"`
}

// globals for background process
type eventsData struct {
	sync.RWMutex // to allow locking

	log *logger.L

	metrics *Metrics
	servers []*http.Server

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData eventsData

// Initialise - start consuming the queue and serving metrics
func Initialise(configuration *Configuration, queue *messagebus.QueueT) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("events")
	globalData.log = log
	log.Info("starting…")

	globalData.metrics = NewMetrics(queue)

	mux := http.NewServeMux()
	mux.Handle(metricsPath, promhttp.HandlerFor(globalData.metrics.Registry(), promhttp.HandlerOpts{}))

	globalData.servers = nil
	for _, address := range configuration.Listen {
		l, err := net.Listen("tcp", address)
		if nil != err {
			log.Errorf("metrics listen: %q  error: %s", address, err)
			globalData.stopServers()
			return err
		}
		server := &http.Server{
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}
		globalData.servers = append(globalData.servers, server)

		log.Infof("metrics listening on: %q", address)
		go func(server *http.Server, l net.Listener) {
			err := server.Serve(l)
			if nil != err && http.ErrServerClosed != err {
				log.Errorf("metrics server error: %s", err)
			}
		}(server, l)
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	log.Info("start background…")

	processes := background.Processes{
		&consumer{
			log:     log,
			queue:   queue,
			metrics: globalData.metrics,
		},
	}

	globalData.background = background.Start(processes, log)

	return nil
}

// Finalise - stop the consumer and the metrics listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()
	globalData.stopServers()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// CurrentMetrics - counters of the running consumer, nil before Initialise
func CurrentMetrics() *Metrics {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.metrics
}

func (d *eventsData) stopServers() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, server := range d.servers {
		_ = server.Shutdown(ctx)
	}
	d.servers = nil
}
