// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mode - the run state of the node and the chain it serves
//
// Data commands run in Maintenance, the daemon enters Normal once its
// RPC listeners are up.
package mode

import (
	"sync"

	"github.com/bitmark-inc/inheritd/chain"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/logger"
)

// Mode - run state
type Mode int

// all possible modes
const (
	Stopped Mode = iota
	Starting
	Maintenance
	Normal
	maximum
)

var node struct {
	sync.RWMutex
	log   *logger.L
	mode  Mode
	chain string

	initialised bool
}

// Initialise - select the chain and enter Starting
func Initialise(chainName string) error {

	node.Lock()
	defer node.Unlock()

	if node.initialised {
		return fault.ErrAlreadyInitialised
	}

	node.log = logger.New("mode")

	if !chain.Valid(chainName) {
		node.log.Criticalf("invalid chain: %q", chainName)
		return fault.ErrInvalidChain
	}

	node.chain = chainName
	node.mode = Starting
	node.initialised = true

	node.log.Infof("chain: %s  testing: %t", chainName, chain.IsTesting(chainName))

	return nil
}

// Finalise - stop and forget the chain
func Finalise() error {

	node.Lock()
	if !node.initialised {
		node.Unlock()
		return fault.ErrNotInitialised
	}
	node.mode = Stopped
	node.initialised = false
	node.Unlock()

	node.log.Info("finished")
	node.log.Flush()

	return nil
}

// Set - change mode, out of range values are ignored
func Set(mode Mode) {
	if mode < Stopped || mode >= maximum {
		node.log.Errorf("ignore invalid set: %d", mode)
		return
	}

	node.Lock()
	previous := node.mode
	node.mode = mode
	node.Unlock()

	node.log.Infof("set: %s => %s", previous, mode)
}

// Is - detect mode
func Is(mode Mode) bool {
	node.RLock()
	defer node.RUnlock()
	return mode == node.mode
}

// IsTesting - program data may be cleared
func IsTesting() bool {
	node.RLock()
	defer node.RUnlock()
	return chain.IsTesting(node.chain)
}

// ChainName - name of the current chain
func ChainName() string {
	node.RLock()
	defer node.RUnlock()
	return node.chain
}

// String - current mode represented as a string
func String() string {
	node.RLock()
	defer node.RUnlock()
	return node.mode.String()
}

func (m Mode) String() string {
	switch m {
	case Stopped:
		return "Stopped"
	case Starting:
		return "Starting"
	case Maintenance:
		return "Maintenance"
	case Normal:
		return "Normal"
	default:
		return "*Unknown*"
	}
}
