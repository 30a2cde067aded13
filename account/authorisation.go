// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/constants"
	"github.com/bitmark-inc/inheritd/fault"
)

// Authorisation - the account acting in a request and its signature
// over the request
//
// embed this in the request arguments
//
// Nonce must exceed every nonce the actor used before, Expires is the
// last second (Unix time) at which the request is accepted
type Authorisation struct {
	Actor     eos.AccountName `json:"actor"`
	Nonce     uint64          `json:"nonce"`
	Expires   uint32          `json:"expires"`
	Signature Signature       `json:"signature"`
}

// Signable - request arguments that embed an Authorisation
type Signable interface {
	Authority() *Authorisation
}

// Authority - access the embedded authorisation
func (a *Authorisation) Authority() *Authorisation {
	return a
}

// SigningBytes - the message that is signed: method name, a newline
// then the JSON of the arguments with the signature field empty
func SigningBytes(method string, args Signable) ([]byte, error) {
	auth := args.Authority()
	if nil == auth {
		return nil, fault.ErrMissingAuthority
	}

	saved := auth.Signature
	auth.Signature = nil
	payload, err := json.Marshal(args)
	auth.Signature = saved
	if nil != err {
		return nil, err
	}

	message := make([]byte, 0, len(method)+1+len(payload))
	message = append(message, method...)
	message = append(message, '\n')
	return append(message, payload...), nil
}

// Sign - fill in a fresh nonce, the default expiry and the signature
// for actor
func Sign(method string, actor eos.AccountName, args Signable, privateKey PrivateKey) error {
	expires := uint32(time.Now().Unix()) + constants.RequestLifetime
	return SignUntil(method, actor, args, privateKey, expires)
}

// SignUntil - Sign with an explicit expiry
func SignUntil(method string, actor eos.AccountName, args Signable, privateKey PrivateKey, expires uint32) error {
	auth := args.Authority()
	if nil == auth {
		return fault.ErrMissingAuthority
	}
	auth.Actor = actor
	auth.Nonce = NextNonce()
	auth.Expires = expires

	message, err := SigningBytes(method, args)
	if nil != err {
		return err
	}
	auth.Signature = privateKey.Sign(message)
	return nil
}

var nonces struct {
	sync.Mutex
	last uint64
}

// NextNonce - strictly increasing within the process, follows the
// clock in nanoseconds so a restarted signer still moves forward
func NextNonce() uint64 {
	nonces.Lock()
	defer nonces.Unlock()
	n := uint64(time.Now().UnixNano())
	if n <= nonces.last {
		n = nonces.last + 1
	}
	nonces.last = n
	return n
}

// Verify - check the signature against the actor's key
func Verify(method string, args Signable, publicKey PublicKey) error {
	auth := args.Authority()
	if nil == auth || "" == auth.Actor {
		return fault.ErrMissingAuthority
	}
	message, err := SigningBytes(method, args)
	if nil != err {
		return err
	}
	return publicKey.CheckSignature(message, auth.Signature)
}
