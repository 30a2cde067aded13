// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/eoscanada/eos-go"

	program "github.com/bitmark-inc/inheritd/client"
	"github.com/bitmark-inc/inheritd/rpc/clients"
)

// AllocateData - one inheritance grant
type AllocateData struct {
	Inheritor        eos.AccountName
	Program          eos.AccountName
	Quantity         string
	ValidFrom        uint32
	CooldownDuration uint32
	Remark           string
}

// TargetData - selects one inheritance
type TargetData struct {
	Inheritor eos.AccountName
	Program   eos.AccountName
	Symbol    string
}

// ClientInit - the signer is the client
func (client *Client) ClientInit(signer *Signer) (*clients.Reply, error) {
	var reply clients.Reply
	if err := client.call(clients.MethodInit, signer, &clients.InitArguments{}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// SetEnable - switch mining for the signer's client
func (client *Client) SetEnable(signer *Signer, enabled bool) (*clients.Reply, error) {
	args := &clients.SetEnableArguments{
		Enabled: enabled,
	}
	var reply clients.Reply
	if err := client.call(clients.MethodSetEnable, signer, args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Allocate - create or extend an inheritance
func (client *Client) Allocate(signer *Signer, data *AllocateData) (*clients.Reply, error) {
	args := &clients.AllocateArguments{
		Inheritor:        data.Inheritor,
		Program:          data.Program,
		Quantity:         data.Quantity,
		ValidFrom:        data.ValidFrom,
		CooldownDuration: data.CooldownDuration,
		Remark:           data.Remark,
	}
	var reply clients.Reply
	if err := client.call(clients.MethodAllocate, signer, args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Unallocate - cancel an inheritance
func (client *Client) Unallocate(signer *Signer, data *TargetData) (*clients.Reply, error) {
	return client.target(clients.MethodUnallocate, signer, data)
}

// Freeze - stop an inheritance from being mined
func (client *Client) Freeze(signer *Signer, data *TargetData) (*clients.Reply, error) {
	return client.target(clients.MethodFreeze, signer, data)
}

func (client *Client) target(method string, signer *Signer, data *TargetData) (*clients.Reply, error) {
	args := &clients.TargetArguments{
		Inheritor: data.Inheritor,
		Program:   data.Program,
		Symbol:    data.Symbol,
	}
	var reply clients.Reply
	if err := client.call(method, signer, args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ClientStatus - initialised and mining flags
func (client *Client) ClientStatus(name eos.AccountName) (*program.Status, error) {
	var reply program.Status
	if err := client.call("Clients.Status", nil, &clients.StatusArguments{Client: name}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Allocations - a client's totals for one token program
func (client *Client) Allocations(name eos.AccountName, program eos.AccountName) (*clients.AllocationsReply, error) {
	args := &clients.AllocationsArguments{
		Client:  name,
		Program: program,
	}
	var reply clients.AllocationsReply
	if err := client.call("Clients.Allocations", nil, args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Inheritances - what an inheritor will get from a client
func (client *Client) Inheritances(name eos.AccountName, inheritor eos.AccountName) (*clients.InheritancesReply, error) {
	args := &clients.InheritancesArguments{
		Client:    name,
		Inheritor: inheritor,
	}
	var reply clients.InheritancesReply
	if err := client.call("Clients.Inheritances", nil, args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// Transfers - one page of completed inheritances
func (client *Client) Transfers(name eos.AccountName, program eos.AccountName, start uint64, count int) (*clients.TransfersReply, error) {
	args := &clients.TransfersArguments{
		Client:  name,
		Program: program,
		Start:   start,
		Count:   count,
	}
	var reply clients.TransfersReply
	if err := client.call("Clients.Transfers", nil, args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
