// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for package tests
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/directory"
	"github.com/bitmark-inc/inheritd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	database    = "test"
	LogCategory = "testing"
)

// well known test accounts
const (
	Agent     = eos.AccountName("inheritagent")
	Client    = eos.AccountName("alice")
	Inheritor = eos.AccountName("bob")
	Miner     = eos.AccountName("miner1")
	Miner2    = eos.AccountName("miner2")
	Program   = eos.AccountName("eosio.token")
	Issuer    = eos.AccountName("eosio")
	Stranger  = eos.AccountName("mallory")
)

// EOS - the fee token symbol used by tests
var EOS = eos.Symbol{Precision: 4, Symbol: "EOS"}

// Asset - amount of EOS in its smallest unit
func Asset(amount int64) eos.Asset {
	return eos.Asset{Amount: eos.Int64(amount), Symbol: EOS}
}

// Names - every test account
var Names = []eos.AccountName{Agent, Client, Inheritor, Miner, Miner2, Program, Issuer, Stranger}

// Keys - one key pair per test account, generated once
var Keys = map[eos.AccountName]account.PrivateKey{}

func init() {
	for _, name := range Names {
		_, privateKey, err := account.NewKeyPair()
		if nil != err {
			panic(err)
		}
		Keys[name] = privateKey
	}
}

// SetupTestLogger - log to a scratch directory
func SetupTestLogger() {
	removeErr := removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)

	if nil != removeErr {
		logger.New(LogCategory).Criticalf("stale test directory: %s", removeErr)
	}
}

// TeardownTestLogger - remove the scratch directory then stop logging
//
// a failed removal is logged to the surviving test log and returned
func TeardownTestLogger() error {
	err := removeFiles()
	if nil != err {
		logger.New(LogCategory).Criticalf("remove test directory error: %s", err)
	}
	logger.Finalise()
	return err
}

// SetupTestStorage - logger plus an empty database in the scratch directory
func SetupTestStorage() error {
	SetupTestLogger()
	return storage.Initialise(filepath.Join(dir, database), storage.ReadWrite)
}

// SetupTestAccounts - empty database holding every test account
func SetupTestAccounts() error {
	err := SetupTestStorage()
	if nil != err {
		return err
	}
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	entries := make([]directory.Entry, 0, len(Names))
	for _, name := range Names {
		entries = append(entries, directory.Entry{
			Name:      name,
			PublicKey: Keys[name].Public(),
		})
	}
	_, err = directory.Load(trx, entries, 0)
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

// TeardownTestStorage - close the database then remove everything
func TeardownTestStorage() error {
	storage.Finalise()
	return TeardownTestLogger()
}

func removeFiles() error {
	return os.RemoveAll(dir)
}
