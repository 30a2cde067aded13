// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - typed JSON RPC calls to inheritd
package rpccalls

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/account"
)

// Signer - the account that authorises state changing calls
type Signer struct {
	Name       eos.AccountName
	PrivateKey account.PrivateKey
}

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to an inheritd
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, verbose, handle), nil
}

func newClient(conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the inheritd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// sign if a signer is given then make the call
func (client *Client) call(method string, signer *Signer, args interface{}, reply interface{}) error {
	if nil != signer {
		signable, ok := args.(account.Signable)
		if !ok {
			return fmt.Errorf("method: %s  arguments cannot be signed", method)
		}
		err := account.Sign(method, signer.Name, signable, signer.PrivateKey)
		if nil != err {
			return err
		}
	}

	if client.verbose {
		client.printJson(method, args)
	}

	err := client.client.Call(method, args, reply)
	if nil != err {
		return err
	}

	if client.verbose {
		client.printJson("reply", reply)
	}
	return nil
}
