// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/agent"
	"github.com/bitmark-inc/inheritd/client"
	"github.com/bitmark-inc/inheritd/directory"
	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/protocol"
	"github.com/bitmark-inc/inheritd/quantity"
	"github.com/bitmark-inc/inheritd/rpc/server"
	"github.com/bitmark-inc/inheritd/storage"
	"github.com/bitmark-inc/inheritd/token"
	"github.com/bitmark-inc/inheritd/trust"
	"github.com/bitmark-inc/logger"
)

// the hosted programs and everything they share
type programs struct {
	executor *action.Executor
	ledger   *token.Ledger
	trust    *trust.List
	registry *protocol.Registry
	clients  map[eos.AccountName]*client.Program
	agents   map[eos.AccountName]*agent.Program
}

// build every configured program, storage must be initialised
func setupPrograms(log *logger.L, options *Configuration, publisher action.Publisher) (*programs, error) {

	p := &programs{
		executor: action.NewExecutor(logger.New("executor"), publisher),
		ledger:   token.New(logger.New("token")),
		trust:    trust.New(logger.New("trust")),
		registry: protocol.NewRegistry(),
		clients:  make(map[eos.AccountName]*client.Program),
		agents:   make(map[eos.AccountName]*agent.Program),
	}
	accounts := directory.Accounts{}

	for _, c := range options.Clients {
		name, err := account.ParseName(c.Account)
		if nil != err {
			log.Errorf("client: %q  error: %s", c.Account, err)
			return nil, err
		}
		if _, ok := p.clients[name]; ok {
			return nil, fault.ErrDuplicateProgram
		}
		peers, err := parseNames(c.TrustedAgents)
		if nil != err {
			log.Errorf("client: %s  trusted agents error: %s", name, err)
			return nil, err
		}
		if err := p.trust.Set(name, peers); nil != err {
			return nil, err
		}

		program, err := client.New(logger.New("client"), name, p.ledger, accounts, p.trust, p.registry)
		if nil != err {
			return nil, err
		}
		p.clients[name] = program
		p.registry.AddClient(name, program)
		log.Infof("client: %s  trusted agents: %v", name, peers)
	}

	for _, a := range options.Agents {
		name, err := account.ParseName(a.Account)
		if nil != err {
			log.Errorf("agent: %q  error: %s", a.Account, err)
			return nil, err
		}
		if _, ok := p.agents[name]; ok {
			return nil, fault.ErrDuplicateProgram
		}
		peers, err := parseNames(a.TrustedClients)
		if nil != err {
			log.Errorf("agent: %s  trusted clients error: %s", name, err)
			return nil, err
		}
		if err := p.trust.Set(name, peers); nil != err {
			return nil, err
		}

		economics, err := agent.NewEconomics(a.Economics)
		if nil != err {
			log.Errorf("agent: %s  economics error: %s", name, err)
			return nil, err
		}
		program, err := agent.New(logger.New("agent"), name, economics, p.ledger, accounts, p.trust, p.registry)
		if nil != err {
			return nil, err
		}
		p.agents[name] = program
		p.registry.AddAgent(name, program)
		p.ledger.Register(name, program)
		log.Infof("agent: %s  fee: %s  trusted clients: %v", name, economics.Symbol, peers)
	}

	return p, nil
}

// create the configured accounts and tokens that are not yet stored
func (p *programs) genesis(log *logger.L, options *Configuration) error {

	entries := make([]directory.Entry, 0, len(options.Accounts))
	for _, a := range options.Accounts {
		name, err := account.ParseName(a.Name)
		if nil != err {
			log.Errorf("account: %q  error: %s", a.Name, err)
			return err
		}
		publicKey, err := account.PublicKeyFromBase58(a.PublicKey)
		if nil != err {
			log.Errorf("account: %s  public key error: %s", name, err)
			return err
		}
		entries = append(entries, directory.Entry{
			Name:      name,
			PublicKey: publicKey,
		})
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	n, err := directory.Load(trx, entries, uint32(time.Now().Unix()))
	if nil != err {
		trx.Abort()
		return err
	}
	err = trx.Commit()
	if nil != err {
		return err
	}
	log.Infof("accounts created: %d of: %d", n, len(entries))

	for _, t := range options.Tokens {
		program, err := account.ParseName(t.Program)
		if nil != err {
			return err
		}
		issuer, err := account.ParseName(t.Issuer)
		if nil != err {
			return err
		}
		maximum, err := quantity.Parse(t.MaximumSupply)
		if nil != err {
			log.Errorf("token: %s  maximum supply: %q  error: %s", program, t.MaximumSupply, err)
			return err
		}
		_, err = token.Stats(storage.Committed, program, maximum.Symbol)
		if nil == err {
			continue
		} else if fault.ErrTokenNotFound != err {
			return err
		}

		err = p.executor.Execute("genesis", []eos.AccountName{program}, func(ctx *action.Context) error {
			return p.ledger.Create(ctx, program, issuer, maximum)
		})
		if nil != err {
			log.Errorf("token: %s  create error: %s", program, err)
			return err
		}
		log.Infof("token: %s  created: %s  issuer: %s", program, maximum.Symbol.Symbol, issuer)
	}
	return nil
}

// RPC view of the programs
func (p *programs) services() server.Services {
	return server.Services{
		Executor: p.executor,
		Ledger:   p.ledger,
		Keys:     directory.Accounts{},
		Clients:  p.clients,
		Agents:   p.agents,
	}
}

func parseNames(names []string) ([]eos.AccountName, error) {
	result := make([]eos.AccountName, 0, len(names))
	for _, s := range names {
		name, err := account.ParseName(s)
		if nil != err {
			return nil, err
		}
		result = append(result, name)
	}
	return result, nil
}
