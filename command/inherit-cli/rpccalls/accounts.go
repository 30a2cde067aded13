// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/rpc/accounts"
)

// CreateAccount - the signer sponsors a new account
func (client *Client) CreateAccount(signer *Signer, name string, publicKey account.PublicKey) (*accounts.CreateReply, error) {
	args := &accounts.CreateArguments{
		Name:      name,
		PublicKey: publicKey,
	}
	var reply accounts.CreateReply
	if err := client.call(accounts.MethodCreate, signer, args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetAccount - public details of an account
func (client *Client) GetAccount(name eos.AccountName) (*accounts.GetReply, error) {
	args := &accounts.GetArguments{
		Name: string(name),
	}
	var reply accounts.GetReply
	if err := client.call("Accounts.Get", nil, args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
