// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/inheritd/command/inherit-cli/rpccalls"
)

var (
	inheritorFlag = cli.StringFlag{
		Name:  "inheritor, r",
		Value: "",
		Usage: "*inheritor `ACCOUNT`",
	}
	symbolFlag = cli.StringFlag{
		Name:  "symbol, s",
		Value: "4,EOS",
		Usage: " `PRECISION,TICKER`",
	}
	clientFlag = cli.StringFlag{
		Name:  "client, C",
		Value: "",
		Usage: " client `ACCOUNT` default is current identity",
	}
)

func clientCommands() []cli.Command {
	return []cli.Command{
		{
			Name:   "client-init",
			Usage:  "initialise the current identity's client program",
			Action: runClientInit,
		},
		{
			Name:      "mining",
			Usage:     "allow or stop mining of the current identity's inheritances",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "disable, d",
					Usage: " stop mining (default is to allow)",
				},
			},
			Action: runMining,
		},
		{
			Name:      "allocate",
			Usage:     "leave tokens to an inheritor",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				programFlag,
				inheritorFlag,
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*amount `QUANTITY`",
				},
				cli.Uint64Flag{
					Name:  "valid-from, f",
					Value: 0,
					Usage: " earliest start of cooldown `UNIX-TIME`",
				},
				cli.Uint64Flag{
					Name:  "cooldown, d",
					Value: 0,
					Usage: " cooldown `SECONDS` before transfer",
				},
				cli.StringFlag{
					Name:  "remark, m",
					Value: "",
					Usage: " `REMARK`",
				},
			},
			Action: runAllocate,
		},
		{
			Name:      "unallocate",
			Usage:     "cancel an inheritance",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{programFlag, inheritorFlag, symbolFlag},
			Action:    runUnallocate,
		},
		{
			Name:      "freeze",
			Usage:     "stop an inheritance from being mined",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{programFlag, inheritorFlag, symbolFlag},
			Action:    runFreeze,
		},
		{
			Name:   "client-status",
			Usage:  "display a client program's flags",
			Flags:  []cli.Flag{clientFlag},
			Action: runClientStatus,
		},
		{
			Name:   "allocations",
			Usage:  "display a client's totals for a token program",
			Flags:  []cli.Flag{clientFlag, programFlag},
			Action: runAllocations,
		},
		{
			Name:      "inheritances",
			Usage:     "display what an inheritor will get from a client",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{clientFlag, inheritorFlag},
			Action:    runInheritances,
		},
		{
			Name:  "transfers",
			Usage: "display completed inheritances",
			Flags: []cli.Flag{
				clientFlag,
				programFlag,
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
			Action: runTransfers,
		},
	}
}

func runClientInit(c *cli.Context) error {
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

	reply, err := client.ClientInit(signer)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runMining(c *cli.Context) error {
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

	reply, err := client.SetEnable(signer, !c.Bool("disable"))
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runAllocate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	program, err := checkAccount(c, "program", m.config)
	if nil != err {
		return err
	}
	inheritor, err := checkAccount(c, "inheritor", m.config)
	if nil != err {
		return err
	}
	q, err := checkQuantity(c, "quantity")
	if nil != err {
		return err
	}

	data := &rpccalls.AllocateData{
		Inheritor:        inheritor,
		Program:          program,
		Quantity:         q,
		ValidFrom:        uint32(c.Uint64("valid-from")),
		CooldownDuration: uint32(c.Uint64("cooldown")),
		Remark:           c.String("remark"),
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

	reply, err := client.Allocate(signer, data)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runUnallocate(c *cli.Context) error {
	return target(c, false)
}

func runFreeze(c *cli.Context) error {
	return target(c, true)
}

func target(c *cli.Context, freeze bool) error {
	m := c.App.Metadata["config"].(*metadata)

	program, err := checkAccount(c, "program", m.config)
	if nil != err {
		return err
	}
	inheritor, err := checkAccount(c, "inheritor", m.config)
	if nil != err {
		return err
	}
	symbol, err := checkSymbol(c, "symbol")
	if nil != err {
		return err
	}

	data := &rpccalls.TargetData{
		Inheritor: inheritor,
		Program:   program,
		Symbol:    symbol,
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
	if freeze {
		reply, err = client.Freeze(signer, data)
	} else {
		reply, err = client.Unallocate(signer, data)
	}
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runClientStatus(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, err := checkOptionalAccount(c, "client", m)
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ClientStatus(name)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runAllocations(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, err := checkOptionalAccount(c, "client", m)
	if nil != err {
		return err
	}
	program, err := checkAccount(c, "program", m.config)
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Allocations(name, program)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runInheritances(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, err := checkOptionalAccount(c, "client", m)
	if nil != err {
		return err
	}
	inheritor, err := checkAccount(c, "inheritor", m.config)
	if nil != err {
		return err
	}

	client, err := connect(c, m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Inheritances(name, inheritor)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}

func runTransfers(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, err := checkOptionalAccount(c, "client", m)
	if nil != err {
		return err
	}
	program, err := checkAccount(c, "program", m.config)
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

	reply, err := client.Transfers(name, program, c.Uint64("start"), count)
	if nil != err {
		return err
	}
	return rpccalls.PrintJson(m.w, reply)
}
