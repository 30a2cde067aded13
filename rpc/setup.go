// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/inheritd/counter"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/rpc/certificate"
	"github.com/bitmark-inc/inheritd/rpc/handler"
	"github.com/bitmark-inc/inheritd/rpc/listeners"
	"github.com/bitmark-inc/inheritd/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex

	log *logger.L

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// counts both listener types
var connectionCount counter.Counter

// Initialise - start the JSON-RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, services server.Services) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	s := server.Create(log, version, &connectionCount, services)

	tlsConfig, fingerprint, err := certificate.Load(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}
	rpcListener, err := listeners.NewRPC(rpcConfiguration, log, &connectionCount, s, tlsConfig, fingerprint)
	if nil != err {
		return err
	}

	var httpsListener listeners.Listener
	if 0 != len(httpsConfiguration.Listen) {
		tlsConfig, fingerprint, err := certificate.Load(log, httpsName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

		h := handler.New(log, s, time.Now(), version, &connectionCount, httpsConfiguration.MaximumConnections)
		httpsListener, err = listeners.NewHTTPS(httpsConfiguration, log, tlsConfig, h)
		if nil != err {
			return err
		}
	} else {
		log.Infof("disable: %s", httpsName)
	}

	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	if nil != httpsListener {
		err = httpsListener.Serve()
		if nil != err {
			rpcListener.Stop()
			globalData.listeners = nil
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	for _, l := range globalData.listeners {
		l.Stop()
	}
	globalData.listeners = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
