// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"sync"

	"github.com/eoscanada/eos-go"
)

// Registry - the running programs, by account
type Registry struct {
	sync.RWMutex
	clients map[eos.AccountName]Client
	agents  map[eos.AccountName]MiningObserver
}

// NewRegistry - empty registry
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[eos.AccountName]Client),
		agents:  make(map[eos.AccountName]MiningObserver),
	}
}

// AddClient - register a client program
func (r *Registry) AddClient(name eos.AccountName, c Client) {
	r.Lock()
	r.clients[name] = c
	r.Unlock()
}

// AddAgent - register an agent program
func (r *Registry) AddAgent(name eos.AccountName, a MiningObserver) {
	r.Lock()
	r.agents[name] = a
	r.Unlock()
}

// Client - implements ClientLookup
func (r *Registry) Client(name eos.AccountName) (Client, bool) {
	r.RLock()
	defer r.RUnlock()
	c, ok := r.clients[name]
	return c, ok
}

// Agent - implements AgentLookup
func (r *Registry) Agent(name eos.AccountName) (MiningObserver, bool) {
	r.RLock()
	defer r.RUnlock()
	a, ok := r.agents[name]
	return a, ok
}
