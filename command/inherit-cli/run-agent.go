// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/inheritd/command/inherit-cli/rpccalls"
)

var agentFlag = cli.StringFlag{
	Name:  "agent, a",
	Value: "",
	Usage: "*agent `ACCOUNT`",
}

func agentCommands() []cli.Command {
	return []cli.Command{
		{
			Name:   "agent-init",
			Usage:  "initialise the current identity's agent program",
			Action: runAgentInit,
		},
		{
			Name:      "mine",
			Usage:     "try to advance an inheritance, the identity is the miner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				agentFlag,
				programFlag,
				inheritorFlag,
				cli.StringFlag{
					Name:  "client, C",
					Value: "",
					Usage: "*client `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*amount the inheritor expects `QUANTITY`",
				},
			},
			Action: runMine,
		},
		{
			Name:      "claim",
			Usage:     "collect rewards or refund from an agent",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				agentFlag,
				cli.BoolFlag{
					Name:  "client",
					Usage: " claim as a client (default is as a miner)",
				},
			},
			Action: runClaim,
		},
		{
			Name:      "self-claim",
			Usage:     "pay out the current identity's agent earnings",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
			},
			Action: runSelfClaim,
		},
		{
			Name:      "agent-info",
			Usage:     "display an agent's economics and earnings",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{agentFlag},
			Action:    runAgentInfo,
		},
		{
			Name:      "agent-account",
			Usage:     "display an agent's miner or client account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				agentFlag,
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: " `ACCOUNT` default is current identity",
				},
				cli.BoolFlag{
					Name:  "client",
					Usage: " client account (default is miner)",
				},
			},
			Action: runAgentAccount,
		},
		{
			Name:      "bills",
			Usage:     "display an agent's bills",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				agentFlag,
				cli.BoolFlag{
					Name:  "client",
					Usage: " client bills (default is miner bills)",
				},
				cli.Uint64Flag{
					Name:  "start, S",
					Value: 0,
					Usage: " start point `NUMBER`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runBills,
		},
	}
}

func runAgentInit(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	signer, err := checkSigner(c, m)
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.AgentInit(signer)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runMine(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	agent, err := checkAccount(c, "agent", m.config)
	if nil != err {
		return err
	}
	program, err := checkAccount(c, "program", m.config)
	if nil != err {
		return err
	}
	inheritor, err := checkAccount(c, "inheritor", m.config)
	if nil != err {
		return err
	}
	owner, err := checkAccount(c, "client", m.config)
	if nil != err {
		return err
	}
	q, err := checkQuantity(c, "quantity")
	if nil != err {
		return err
	}

	data := &rpccalls.MineData{
		Agent:     agent,
		Client:    owner,
		Inheritor: inheritor,
		Program:   program,
		Quantity:  q,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "mine: %s  of: %s  for: %s  via: %s\n", q, owner, inheritor, agent)
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

	reply, err := client.Mine(signer, data)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runClaim(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	agent, err := checkAccount(c, "agent", m.config)
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

	var reply interface{}
	if c.Bool("client") {
		reply, err = client.ClientClaim(signer, agent)
	} else {
		reply, err = client.MinerClaim(signer, agent)
	}
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runSelfClaim(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	to, err := checkAccount(c, "to", m.config)
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

	reply, err := client.SelfClaim(signer, to)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runAgentInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	agent, err := checkAccount(c, "agent", m.config)
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.AgentInfo(agent)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runAgentAccount(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	agent, err := checkAccount(c, "agent", m.config)
	if nil != err {
		return err
	}
	name, err := checkOptionalAccount(c, "name", m)
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	var reply interface{}
	if c.Bool("client") {
		reply, err = client.AgentClient(agent, name)
	} else {
		reply, err = client.Miner(agent, name)
	}
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runBills(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	agent, err := checkAccount(c, "agent", m.config)
	if nil != err {
		return err
	}
	count, err := checkCount(c.Int("count"))
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Bills(!c.Bool("client"), agent, c.Uint64("start"), count)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}
