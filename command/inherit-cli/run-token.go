// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/inheritd/agent"
	"github.com/bitmark-inc/inheritd/command/inherit-cli/rpccalls"
	"github.com/bitmark-inc/inheritd/constants"
)

var programFlag = cli.StringFlag{
	Name:  "program, P",
	Value: constants.FeeProgram,
	Usage: " token program `ACCOUNT`",
}

func tokenCommands() []cli.Command {
	return []cli.Command{
		{
			Name:      "create-token",
			Usage:     "create a symbol, the identity is the token program",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "issuer, r",
					Value: "",
					Usage: "*issuer `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "maximum, m",
					Value: "",
					Usage: "*maximum supply `QUANTITY` e.g. \"1000000.0000 EOS\"",
				},
			},
			Action: runCreateToken,
		},
		{
			Name:      "issue",
			Usage:     "mint tokens, the identity is the issuer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				programFlag,
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*amount `QUANTITY`",
				},
				cli.StringFlag{
					Name:  "memo, m",
					Value: "",
					Usage: " `MEMO`",
				},
			},
			Action: runIssue,
		},
		{
			Name:      "transfer",
			Usage:     "send tokens to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				programFlag,
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*amount `QUANTITY`",
				},
				cli.StringFlag{
					Name:  "memo, m",
					Value: "",
					Usage: " `MEMO`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "deposit",
			Usage:     "pay a deposit to an agent as a miner or a client",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				programFlag,
				cli.StringFlag{
					Name:  "agent, a",
					Value: "",
					Usage: "*agent `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*amount `QUANTITY`",
				},
				cli.BoolFlag{
					Name:  "miner",
					Usage: " deposit as a miner (default is as a client)",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "balance",
			Usage:     "display a token balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				programFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ACCOUNT` default is current identity",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "4,EOS",
					Usage: " `PRECISION,TICKER`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "stats",
			Usage:     "display issuer and supply of a token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				programFlag,
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "4,EOS",
					Usage: " `PRECISION,TICKER`",
				},
			},
			Action: runStats,
		},
	}
}

func runCreateToken(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	issuer, err := checkAccount(c, "issuer", m.config)
	if nil != err {
		return err
	}
	maximum, err := checkQuantity(c, "maximum")
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

	reply, err := client.CreateToken(signer, issuer, maximum)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runIssue(c *cli.Context) error {
	return move(c, false)
}

func runTransfer(c *cli.Context) error {
	return move(c, true)
}

func move(c *cli.Context, transfer bool) error {
	m := c.App.Metadata["config"].(*metadata)

	program, err := checkAccount(c, "program", m.config)
	if nil != err {
		return err
	}
	to, err := checkAccount(c, "to", m.config)
	if nil != err {
		return err
	}
	q, err := checkQuantity(c, "quantity")
	if nil != err {
		return err
	}

	data := &rpccalls.MoveData{
		Program:  program,
		To:       to,
		Quantity: q,
		Memo:     c.String("memo"),
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

	var reply interface{}
	if transfer {
		reply, err = client.Transfer(signer, data)
	} else {
		reply, err = client.Issue(signer, data)
	}
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runDeposit(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	program, err := checkAccount(c, "program", m.config)
	if nil != err {
		return err
	}
	agentName, err := checkAccount(c, "agent", m.config)
	if nil != err {
		return err
	}
	q, err := checkQuantity(c, "quantity")
	if nil != err {
		return err
	}

	memo := agent.DepositClient.String()
	if c.Bool("miner") {
		memo = agent.DepositMiner.String()
	}

	if m.verbose {
		fmt.Fprintf(m.e, "deposit: %s  to: %s  as: %s\n", q, agentName, memo)
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

	reply, err := client.Transfer(signer, &rpccalls.MoveData{
		Program:  program,
		To:       agentName,
		Quantity: q,
		Memo:     memo,
	})
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runBalance(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	program, err := checkAccount(c, "program", m.config)
	if nil != err {
		return err
	}
	owner, err := checkOptionalAccount(c, "owner", m)
	if nil != err {
		return err
	}
	symbol, err := checkSymbol(c, "symbol")
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Balance(program, owner, symbol)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runStats(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	program, err := checkAccount(c, "program", m.config)
	if nil != err {
		return err
	}
	symbol, err := checkSymbol(c, "symbol")
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Stats(program, symbol)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}
