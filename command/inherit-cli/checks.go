// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/eoscanada/eos-go"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/chain"
	"github.com/bitmark-inc/inheritd/command/inherit-cli/configuration"
	"github.com/bitmark-inc/inheritd/command/inherit-cli/rpccalls"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/quantity"
)

// chain name from the network flag
func checkNetwork(network string) (string, error) {
	switch strings.ToLower(network) {
	case "", "testing", "test":
		return chain.Testing, nil
	case "live", "production":
		return chain.Live, nil
	case "local", "regression":
		return chain.Local, nil
	default:
		return "", fmt.Errorf("network: %q can only be live/testing/local", network)
	}
}

// true if the path is a directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

// identity is required, but not check the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", fault.ErrRequiredIdentity
	}
	return name, nil
}

// connect is required
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", fault.ErrRequiredConnect
	}
	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", fault.ErrRequiredDescription
	}
	return description, nil
}

// a required account flag: an identity name or an account name
func checkAccount(c *cli.Context, flag string, config *configuration.Configuration) (eos.AccountName, error) {
	s := strings.TrimSpace(c.String(flag))
	if "" == s {
		return "", fmt.Errorf("--%s is required", flag)
	}
	if nil == config {
		return account.ParseName(s)
	}
	return config.Account(s)
}

// an optional account flag, blank is the current identity's account
func checkOptionalAccount(c *cli.Context, flag string, m *metadata) (eos.AccountName, error) {
	if "" == strings.TrimSpace(c.String(flag)) {
		name := currentIdentity(c, m.config)
		return m.config.Account(name)
	}
	return checkAccount(c, flag, m.config)
}

// a required quantity such as "10.0000 EOS"
func checkQuantity(c *cli.Context, flag string) (string, error) {
	s := strings.TrimSpace(c.String(flag))
	if "" == s {
		return "", fmt.Errorf("--%s is required", flag)
	}
	if _, err := quantity.Parse(s); nil != err {
		return "", err
	}
	return s, nil
}

// a required symbol such as "4,EOS"
func checkSymbol(c *cli.Context, flag string) (string, error) {
	s := strings.TrimSpace(c.String(flag))
	if _, err := quantity.ParseSymbol(s); nil != err {
		return "", err
	}
	return s, nil
}

func checkCount(count int) (int, error) {
	if count <= 0 {
		return 0, fault.ErrInvalidCount
	}
	return count, nil
}

func currentIdentity(c *cli.Context, config *configuration.Configuration) string {
	name := c.GlobalString("identity")
	if "" == name {
		name = config.DefaultIdentity
	}
	return name
}

// decrypt the current identity, prompting for the password when no
// password flag was given
func checkSigner(c *cli.Context, m *metadata) (*rpccalls.Signer, error) {
	name := currentIdentity(c, m.config)
	id, err := m.config.Identity(name)
	if nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword()
		if nil != err {
			return nil, err
		}
	}

	privateKey, err := m.config.Private(password, name)
	if nil != err {
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s  account: %s\n", name, id.Account)
	}

	return &rpccalls.Signer{
		Name:       id.Account,
		PrivateKey: privateKey,
	}, nil
}

// connect to the flag override or the first configured connection
func connect(c *cli.Context, m *metadata) (*rpccalls.Client, error) {
	address := c.GlobalString("connect")
	if "" == address {
		if 0 == len(m.config.Connections) {
			return nil, fault.ErrRequiredConnect
		}
		address = m.config.Connections[0]
	}
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", address)
	}
	return rpccalls.NewClient(address, m.verbose, m.e)
}
