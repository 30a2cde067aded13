// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trust_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/eoscanada/eos-go"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/background"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/fixtures"
	"github.com/bitmark-inc/inheritd/trust"
	"github.com/bitmark-inc/logger"
)

func setupTestList(t *testing.T) *trust.List {
	fixtures.SetupTestLogger()
	return trust.New(logger.New(fixtures.LogCategory))
}

func TestSetAddRemove(t *testing.T) {
	l := setupTestList(t)
	defer fixtures.TeardownTestLogger()

	assert.False(t, l.IsTrusted(fixtures.Client, fixtures.Agent), "trusted before set")

	err := l.Set(fixtures.Client, []eos.AccountName{fixtures.Agent, fixtures.Miner})
	assert.Nil(t, err, "set error")
	assert.True(t, l.IsTrusted(fixtures.Client, fixtures.Agent), "agent not trusted")
	assert.False(t, l.IsTrusted(fixtures.Agent, fixtures.Client), "trust is not symmetric")

	err = l.Add(fixtures.Client, fixtures.Stranger)
	assert.Nil(t, err, "add error")
	assert.Equal(t, []eos.AccountName{fixtures.Agent, fixtures.Stranger, fixtures.Miner}, l.Trusted(fixtures.Client), "wrong peers")

	l.Remove(fixtures.Client, fixtures.Stranger)
	assert.False(t, l.IsTrusted(fixtures.Client, fixtures.Stranger), "removed peer trusted")

	// replacing drops the old peers
	err = l.Set(fixtures.Client, []eos.AccountName{fixtures.Miner2})
	assert.Nil(t, err, "set error")
	assert.Equal(t, []eos.AccountName{fixtures.Miner2}, l.Trusted(fixtures.Client), "wrong peers")

	assert.Equal(t, fault.ErrInvalidAccountName, l.Add(fixtures.Client, "Not.Valid"), "bad peer added")
	assert.Equal(t, fault.ErrInvalidAccountName, l.Set("", nil), "bad owner set")
}

func TestLoad(t *testing.T) {
	l := setupTestList(t)
	defer fixtures.TeardownTestLogger()

	fileName := filepath.Join("testing", "trust.json")
	err := ioutil.WriteFile(fileName, []byte(`{"alice": ["inheritagent"], "inheritagent": ["alice"]}`), 0600)
	assert.Nil(t, err, "write error")

	l.Set(fixtures.Miner, []eos.AccountName{fixtures.Stranger})

	err = l.Load(fileName)
	assert.Nil(t, err, "load error")
	assert.True(t, l.IsTrusted(fixtures.Client, fixtures.Agent), "client list not loaded")
	assert.True(t, l.IsTrusted(fixtures.Agent, fixtures.Client), "agent list not loaded")
	assert.True(t, l.IsTrusted(fixtures.Miner, fixtures.Stranger), "unlisted owner replaced")

	// an invalid file changes nothing
	err = ioutil.WriteFile(fileName, []byte(`{"alice": ["BAD"]}`), 0600)
	assert.Nil(t, err, "write error")
	assert.Equal(t, fault.ErrInvalidAccountName, l.Load(fileName), "bad file loaded")
	assert.True(t, l.IsTrusted(fixtures.Client, fixtures.Agent), "list changed by bad file")
}

func TestWatcher(t *testing.T) {
	l := setupTestList(t)
	defer fixtures.TeardownTestLogger()

	fileName := filepath.Join("testing", "trust.json")
	err := ioutil.WriteFile(fileName, []byte(`{"alice": ["inheritagent"]}`), 0600)
	assert.Nil(t, err, "write error")

	w, err := trust.NewWatcher(logger.New(fixtures.LogCategory), l, fileName)
	assert.Nil(t, err, "watcher error")
	assert.True(t, l.IsTrusted(fixtures.Client, fixtures.Agent), "not loaded at start")

	processes := background.Start(background.Processes{w}, nil)
	defer processes.Stop()

	err = ioutil.WriteFile(fileName, []byte(`{"alice": ["miner2"]}`), 0600)
	assert.Nil(t, err, "rewrite error")

	select {
	case <-w.Reloaded():
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
	assert.True(t, l.IsTrusted(fixtures.Client, fixtures.Miner2), "new peer not trusted")
	assert.False(t, l.IsTrusted(fixtures.Client, fixtures.Agent), "old peer still trusted")
}
