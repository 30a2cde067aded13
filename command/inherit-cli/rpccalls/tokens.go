// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/rpc/tokens"
)

// MoveData - fields for issue and transfer
type MoveData struct {
	Program  eos.AccountName
	To       eos.AccountName
	Quantity string
	Memo     string
}

// CreateToken - the signer is the token program
func (client *Client) CreateToken(signer *Signer, issuer eos.AccountName, maximumSupply string) (*tokens.Reply, error) {
	args := &tokens.CreateArguments{
		Issuer:        issuer,
		MaximumSupply: maximumSupply,
	}
	var reply tokens.Reply
	if err := client.call(tokens.MethodCreate, signer, args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Issue - the signer is the issuer
func (client *Client) Issue(signer *Signer, data *MoveData) (*tokens.Reply, error) {
	return client.move(tokens.MethodIssue, signer, data)
}

// Transfer - the signer is the sender, a memo of "client" or
// "miner" sent to an agent is a deposit
func (client *Client) Transfer(signer *Signer, data *MoveData) (*tokens.Reply, error) {
	return client.move(tokens.MethodTransfer, signer, data)
}

func (client *Client) move(method string, signer *Signer, data *MoveData) (*tokens.Reply, error) {
	args := &tokens.MoveArguments{
		Program:  data.Program,
		To:       data.To,
		Quantity: data.Quantity,
		Memo:     data.Memo,
	}
	var reply tokens.Reply
	if err := client.call(method, signer, args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Balance - an owner's holding of a symbol
func (client *Client) Balance(program eos.AccountName, owner eos.AccountName, symbol string) (*tokens.BalanceReply, error) {
	args := &tokens.BalanceArguments{
		Program: program,
		Owner:   owner,
		Symbol:  symbol,
	}
	var reply tokens.BalanceReply
	if err := client.call("Tokens.Balance", nil, args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Stats - issuer and supply of a symbol
func (client *Client) Stats(program eos.AccountName, symbol string) (*tokens.StatsReply, error) {
	args := &tokens.StatsArguments{
		Program: program,
		Symbol:  symbol,
	}
	var reply tokens.StatsReply
	if err := client.call("Tokens.Stats", nil, args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
