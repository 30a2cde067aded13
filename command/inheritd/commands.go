// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/constants"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/mode"
	"github.com/bitmark-inc/inheritd/rpc/certificate"
	"github.com/bitmark-inc/inheritd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.Generate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-key", "key":
		publicKey, privateKey, err := account.NewKeyPair()
		if nil != err {
			exitwithstatus.Message("generate key error: %s", err)
		}
		fmt.Printf("public_key:  %s\n", publicKey)
		fmt.Printf("private_key: %s\n", privateKey)

	case "start", "run":
		return false // continue processing

	case "dump", "clear":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-key                    (key)    - print a new account key pair\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  dump agent NAME                     - print an agent's accounts and bills as JSON\n")
		fmt.Printf("  dump client NAME PROGRAM [INHERITOR...]\n")
		fmt.Printf("                                      - print a client's allocations, transfers and inheritances\n")
		fmt.Printf("\n")

		fmt.Printf("  clear agent NAME                    - remove miner and client rows and bills\n")
		fmt.Printf("  clear client NAME inheritances INHERITOR\n")
		fmt.Printf("  clear client NAME allocations PROGRAM\n")
		fmt.Printf("  clear client NAME transfers PROGRAM\n")
		fmt.Printf("                                      - remove client rows, not on the live chain\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		_ = json.Indent(&out, b, "", "  ")
		_, _ = out.WriteTo(os.Stdout)
		_, _ = os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage and programs are set up so these commands can access
// and/or change the database
func processDataCommand(log *logger.L, arguments []string, p *programs) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "dump":
		if err := dump(os.Stdout, p, arguments); nil != err {
			exitwithstatus.Message("dump error: %s", err)
		}

	case "clear":
		if !mode.IsTesting() {
			exitwithstatus.Message("clear error: %s", fault.ErrClearNotAllowed)
		}
		n, err := clear(p, arguments)
		if nil != err {
			exitwithstatus.Message("clear error: %s", err)
		}
		log.Warnf("clear: %v  removed: %d", arguments, n)
		fmt.Printf("removed: %d\n", n)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

type agentDump struct {
	Agent       eos.AccountName `json:"agent"`
	Earnings    eos.Asset       `json:"earnings"`
	Miners      interface{}     `json:"miners"`
	Clients     interface{}     `json:"clients"`
	MinerBills  interface{}     `json:"minerBills"`
	ClientBills interface{}     `json:"clientBills"`
}

type clientDump struct {
	Client       eos.AccountName `json:"client"`
	Status       interface{}     `json:"status"`
	Allocations  interface{}     `json:"allocations"`
	Transfers    interface{}     `json:"transfers"`
	Inheritances interface{}     `json:"inheritances"`
}

func dump(w io.Writer, p *programs, arguments []string) error {
	if len(arguments) < 2 {
		return fault.ErrMissingParameters
	}
	name, err := account.ParseName(arguments[1])
	if nil != err {
		return err
	}

	var result interface{}

	switch arguments[0] {
	case "agent":
		a, ok := p.agents[name]
		if !ok {
			return fault.ErrAgentNotRegistered
		}
		d := agentDump{Agent: name}
		if d.Earnings, err = a.Earnings(storage.Committed); nil != err {
			return err
		}
		if d.Miners, err = a.Miners(); nil != err {
			return err
		}
		if d.Clients, err = a.Clients(); nil != err {
			return err
		}
		if d.MinerBills, _, err = a.MinerBills(0, constants.MaximumQueryItemsCount); nil != err {
			return err
		}
		if d.ClientBills, _, err = a.ClientBills(0, constants.MaximumQueryItemsCount); nil != err {
			return err
		}
		result = d

	case "client":
		if len(arguments) < 3 {
			return fault.ErrMissingParameters
		}
		c, ok := p.clients[name]
		if !ok {
			return fault.ErrNoClientProgram
		}
		program, err := account.ParseName(arguments[2])
		if nil != err {
			return err
		}
		d := clientDump{Client: name}
		if d.Status, err = c.Status(storage.Committed); nil != err {
			return err
		}
		if d.Allocations, err = c.Allocations(program); nil != err {
			return err
		}
		if d.Transfers, _, err = c.Transfers(program, 0, constants.MaximumQueryItemsCount); nil != err {
			return err
		}
		inheritances := make(map[eos.AccountName]interface{})
		for _, s := range arguments[3:] {
			inheritor, err := account.ParseName(s)
			if nil != err {
				return err
			}
			if inheritances[inheritor], err = c.Inheritances(inheritor); nil != err {
				return err
			}
		}
		d.Inheritances = inheritances
		result = d

	default:
		return fault.ErrMissingParameters
	}

	b, err := json.MarshalIndent(result, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// run one clear operation in its own transaction
func clear(p *programs, arguments []string) (int, error) {
	if len(arguments) < 2 {
		return 0, fault.ErrMissingParameters
	}
	name, err := account.ParseName(arguments[1])
	if nil != err {
		return 0, err
	}

	var f func(storage.Transaction) (int, error)

	switch arguments[0] {
	case "agent":
		a, ok := p.agents[name]
		if !ok {
			return 0, fault.ErrAgentNotRegistered
		}
		f = a.ClearData

	case "client":
		if len(arguments) < 4 {
			return 0, fault.ErrMissingParameters
		}
		c, ok := p.clients[name]
		if !ok {
			return 0, fault.ErrNoClientProgram
		}
		target, err := account.ParseName(arguments[3])
		if nil != err {
			return 0, err
		}
		switch arguments[2] {
		case "inheritances":
			f = func(trx storage.Transaction) (int, error) {
				return c.ClearInheritances(trx, target)
			}
		case "allocations":
			f = func(trx storage.Transaction) (int, error) {
				return c.ClearAllocations(trx, target)
			}
		case "transfers":
			f = func(trx storage.Transaction) (int, error) {
				return c.ClearTransfers(trx, target)
			}
		default:
			return 0, fault.ErrMissingParameters
		}

	default:
		return 0, fault.ErrMissingParameters
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}
	n, err := f(trx)
	if nil != err {
		trx.Abort()
		return 0, err
	}
	return n, trx.Commit()
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
