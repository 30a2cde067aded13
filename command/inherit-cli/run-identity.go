// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/command/inherit-cli/configuration"
	"github.com/bitmark-inc/inheritd/command/inherit-cli/rpccalls"
)

func identityCommands() []cli.Command {
	return []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate key pair, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "initialise inherit-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*inheritd host/IP and port, `HOST:PORT[,HOST:PORT...]`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*on chain account name `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " using existing base58 private `KEY`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "*on chain account name `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " using existing base58 private `KEY`",
				},
				cli.BoolFlag{
					Name:  "receive-only, r",
					Usage: " store only the account name",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "info",
			Usage:  "display inherit-cli identities",
			Action: runInfo,
		},
		{
			Name:   "password",
			Usage:  "change identity password",
			Action: runChangePassword,
		},
		{
			Name:   "nodeinfo",
			Usage:  "display inheritd status",
			Action: runNodeInfo,
		},
		{
			Name:      "create-account",
			Usage:     "sponsor a new on chain account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, a",
					Value: "",
					Usage: "*new account `NAME`",
				},
				cli.StringFlag{
					Name:  "publickey, k",
					Value: "",
					Usage: "*base58 public `KEY`",
				},
			},
			Action: runCreateAccount,
		},
		{
			Name:      "account",
			Usage:     "display an on chain account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, a",
					Value: "",
					Usage: " account or identity `NAME` default is current identity",
				},
			},
			Action: runAccount,
		},
	}
}

func runGenerate(c *cli.Context) error {

	publicKey, privateKey, err := account.NewKeyPair()
	if nil != err {
		return err
	}

	type keyPair struct {
		PublicKey  string `json:"public_key"`
		PrivateKey string `json:"private_key"`
	}

	return rpccalls.PrintJson(c.App.Writer, keyPair{
		PublicKey:  publicKey.String(),
		PrivateKey: privateKey.String(),
	})
}

// existing key or a new one
func checkPrivateKey(key string) (account.PrivateKey, error) {
	if "" == key {
		_, privateKey, err := account.NewKeyPair()
		return privateKey, err
	}
	return account.PrivateKeyFromBase58(key)
}

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	connect, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	accountName, err := account.ParseName(c.String("account"))
	if nil != err {
		return err
	}

	privateKey, err := checkPrivateKey(c.String("key"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "chain: %s\n", m.chain)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// Create the folder hierarchy for configuration if not existing
	configDir := path.Dir(m.file)
	d, err := checkFileExists(configDir)
	if nil != err {
		if err := os.MkdirAll(configDir, 0750); nil != err {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	config := &configuration.Configuration{
		DefaultIdentity: name,
		Chain:           m.chain,
		Connections:     strings.Split(connect, ","),
		Identities:      make(map[string]configuration.Identity),
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	} else if err := checkPasswordLength(password); nil != err {
		return err
	}

	err = config.AddIdentity(name, description, accountName, privateKey, password)
	if nil != err {
		return err
	}

	m.config = config
	m.save = true

	// the public key is needed to create the on chain account
	return rpccalls.PrintJson(m.w, config.Info())
}

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	accountName, err := account.ParseName(c.String("account"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "account: %s\n", accountName)
	}

	if c.Bool("receive-only") {
		err = m.config.AddReceiveOnlyIdentity(name, description, accountName)
		if nil != err {
			return err
		}
	} else {
		privateKey, err := checkPrivateKey(c.String("key"))
		if nil != err {
			return err
		}

		password := c.GlobalString("password")
		if "" == password {
			password, err = promptNewPassword()
			if nil != err {
				return err
			}
		} else if err := checkPasswordLength(password); nil != err {
			return err
		}

		err = m.config.AddIdentity(name, description, accountName, privateKey, password)
		if nil != err {
			return err
		}
	}

	// require configuration update
	m.save = true
	return nil
}

func runInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	type info struct {
		DefaultIdentity string                       `json:"default_identity"`
		Chain           string                       `json:"chain"`
		Connections     []string                     `json:"connections"`
		Identities      []configuration.InfoIdentity `json:"identities"`
	}

	return rpccalls.PrintJson(m.w, info{
		DefaultIdentity: m.config.DefaultIdentity,
		Chain:           m.config.Chain,
		Connections:     m.config.Connections,
		Identities:      m.config.Info(),
	})
}

func runChangePassword(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name := currentIdentity(c, m.config)

	oldPassword := c.GlobalString("password")
	var err error
	if "" == oldPassword {
		oldPassword, err = promptPassword()
		if nil != err {
			return err
		}
	}

	// prompt new password and pwd confirm for private key encryption
	newPassword, err := promptNewPassword()
	if nil != err {
		return err
	}

	err = m.config.ChangePassword(name, oldPassword, newPassword)
	if nil != err {
		return err
	}

	m.save = true
	return nil
}

func runNodeInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetInfo()
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runCreateAccount(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name := strings.TrimSpace(c.String("name"))
	if _, err := account.ParseName(name); nil != err {
		return err
	}
	publicKey, err := account.PublicKeyFromBase58(c.String("publickey"))
	if nil != err {
		return err
	}

	signer, err := checkSigner(c, m)
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateAccount(signer, name, publicKey)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runAccount(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, err := checkOptionalAccount(c, "name", m)
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetAccount(name)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}
