// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/inheritd/agent"
	"github.com/bitmark-inc/inheritd/chain"
	"github.com/bitmark-inc/inheritd/configuration"
	"github.com/bitmark-inc/inheritd/events"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/rpc/listeners"
	"github.com/bitmark-inc/inheritd/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = chain.Live

	defaultLogDirectory = "log"
	defaultLogFile      = "inheritd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - leveldb location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// AgentType - one hosted agent program
type AgentType struct {
	Account        string                       `gluamapper:"account" json:"account"`
	Economics      agent.EconomicsConfiguration `gluamapper:"economics" json:"economics"`
	TrustedClients []string                     `gluamapper:"trusted_clients" json:"trusted_clients"`
}

// ClientType - one hosted client program
type ClientType struct {
	Account       string   `gluamapper:"account" json:"account"`
	TrustedAgents []string `gluamapper:"trusted_agents" json:"trusted_agents"`
}

// TokenType - a token created at start up if missing
type TokenType struct {
	Program       string `gluamapper:"program" json:"program"`
	Issuer        string `gluamapper:"issuer" json:"issuer"`
	MaximumSupply string `gluamapper:"maximum_supply" json:"maximum_supply"`
}

// AccountType - an account created at start up if missing
type AccountType struct {
	Name      string `gluamapper:"name" json:"name"`
	PublicKey string `gluamapper:"public_key" json:"public_key"`
}

// Configuration - the daemon configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	Accounts  []AccountType `gluamapper:"accounts" json:"accounts"`
	Tokens    []TokenType   `gluamapper:"tokens" json:"tokens"`
	Clients   []ClientType  `gluamapper:"clients" json:"clients"`
	Agents    []AgentType   `gluamapper:"agents" json:"agents"`
	TrustFile string        `gluamapper:"trust_file" json:"trust_file"`

	ClientRPC listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC  listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Metrics   events.Configuration         `gluamapper:"metrics" json:"metrics"`
	Logging   logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Live,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share certificate with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// abort if the chain name is not recognised
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default use the chain name
	if defaultDatabase == options.Database.Name {
		options.Database.Name = options.Chain
	}

	// agent economics not given in the file take the built in values
	for i := range options.Agents {
		fillEconomics(&options.Agents[i].Economics)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q  error: %s", options.DataDirectory, fault.ErrInvalidDataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.TrustFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// simple file names only, placed in their directory
	database, err := util.InDirectory(options.Database.Directory, options.Database.Name)
	if nil != err {
		return nil, fmt.Errorf("file: %q  error: %s", options.Database.Name, err)
	}
	options.Database.Name = database

	if _, err := util.InDirectory("", options.Logging.File); nil != err {
		return nil, fmt.Errorf("file: %q  error: %s", options.Logging.File, err)
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// blank fields take the built in values
func fillEconomics(e *agent.EconomicsConfiguration) {
	d := agent.DefaultEconomicsConfiguration()
	if "" == e.Program {
		e.Program = d.Program
	}
	if "" == e.Ticker {
		e.Ticker = d.Ticker
		e.Precision = d.Precision
	}
	if "" == e.MiningFine {
		e.MiningFine = d.MiningFine
	}
	if "" == e.ClientServiceCost {
		e.ClientServiceCost = d.ClientServiceCost
	}
	if "" == e.CooldownReward {
		e.CooldownReward = d.CooldownReward
	}
	if "" == e.TransferReward {
		e.TransferReward = d.TransferReward
	}
	if 0 == e.AllowedTryCount {
		e.AllowedTryCount = d.AllowedTryCount
	}
	if 0 == e.FreeTryCooldown {
		e.FreeTryCooldown = d.FreeTryCooldown
	}
}
