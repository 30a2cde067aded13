// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package trust - allow-lists of peer programs
//
// a client program trusts the agents that may drive its mining and an
// agent trusts the clients whose notifications it accepts
package trust

import (
	"encoding/json"
	"io/ioutil"
	"sort"
	"sync"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/logger"
)

// Checker - answers whether owner trusts peer
type Checker interface {
	IsTrusted(owner eos.AccountName, peer eos.AccountName) bool
}

// List - mutable allow-lists keyed by owner
type List struct {
	sync.RWMutex
	log     *logger.L
	entries map[eos.AccountName]map[eos.AccountName]struct{}
}

// New - empty list
func New(log *logger.L) *List {
	return &List{
		log:     log,
		entries: make(map[eos.AccountName]map[eos.AccountName]struct{}),
	}
}

// IsTrusted - as its name
func (l *List) IsTrusted(owner eos.AccountName, peer eos.AccountName) bool {
	l.RLock()
	defer l.RUnlock()
	_, ok := l.entries[owner][peer]
	return ok
}

// Set - replace the peers trusted by owner
func (l *List) Set(owner eos.AccountName, peers []eos.AccountName) error {
	set, err := makeSet(owner, peers)
	if nil != err {
		return err
	}

	l.Lock()
	l.entries[owner] = set
	l.Unlock()

	l.log.Infof("owner: %s  trusts: %v", owner, peers)
	return nil
}

// Add - trust one more peer
func (l *List) Add(owner eos.AccountName, peer eos.AccountName) error {
	if _, err := makeSet(owner, []eos.AccountName{peer}); nil != err {
		return err
	}

	l.Lock()
	defer l.Unlock()

	set, ok := l.entries[owner]
	if !ok {
		set = make(map[eos.AccountName]struct{})
		l.entries[owner] = set
	}
	set[peer] = struct{}{}

	l.log.Infof("owner: %s  add: %s", owner, peer)
	return nil
}

// Remove - stop trusting a peer
func (l *List) Remove(owner eos.AccountName, peer eos.AccountName) {
	l.Lock()
	defer l.Unlock()

	delete(l.entries[owner], peer)
	l.log.Infof("owner: %s  remove: %s", owner, peer)
}

// Trusted - sorted peers trusted by owner
func (l *List) Trusted(owner eos.AccountName) []eos.AccountName {
	l.RLock()
	defer l.RUnlock()

	peers := make([]eos.AccountName, 0, len(l.entries[owner]))
	for peer := range l.entries[owner] {
		peers = append(peers, peer)
	}
	sort.Slice(peers, func(i, j int) bool {
		return peers[i] < peers[j]
	})
	return peers
}

// Load - merge a JSON file of the form {"owner": ["peer", ...]}
//
// owners named in the file are replaced, others are kept
func (l *List) Load(fileName string) error {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return err
	}

	var content map[eos.AccountName][]eos.AccountName
	err = json.Unmarshal(data, &content)
	if nil != err {
		return err
	}

	// validate everything before changing anything
	sets := make(map[eos.AccountName]map[eos.AccountName]struct{})
	for owner, peers := range content {
		set, err := makeSet(owner, peers)
		if nil != err {
			return err
		}
		sets[owner] = set
	}

	l.Lock()
	for owner, set := range sets {
		l.entries[owner] = set
	}
	l.Unlock()

	l.log.Infof("loaded: %d owners from: %q", len(sets), fileName)
	return nil
}

func makeSet(owner eos.AccountName, peers []eos.AccountName) (map[eos.AccountName]struct{}, error) {
	if _, err := account.ParseName(string(owner)); nil != err {
		return nil, err
	}
	set := make(map[eos.AccountName]struct{}, len(peers))
	for _, peer := range peers {
		if _, err := account.ParseName(string(peer)); nil != err {
			return nil, err
		}
		set[peer] = struct{}{}
	}
	return set, nil
}
