// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/eoscanada/eos-go"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/account"
	"github.com/bitmark-inc/inheritd/constants"
	"github.com/bitmark-inc/inheritd/fault"
)

func TestValidName(t *testing.T) {
	valid := []string{"alice", "eosio.token", "a", "inheritagent", "z1.2"}
	for _, name := range valid {
		assert.True(t, account.ValidName(name), "rejected: %q", name)
	}

	invalid := []string{"", "Alice", "bob6", "toolongaccount", "ends.", "space name", "under_score"}
	for _, name := range invalid {
		assert.False(t, account.ValidName(name), "accepted: %q", name)
	}
}

func TestNameBytes(t *testing.T) {
	b, err := account.NameBytes("eosio.token")
	assert.Nil(t, err, "encode error")
	assert.Equal(t, 8, len(b), "wrong length")

	name, err := account.NameFromBytes(b)
	assert.Nil(t, err, "decode error")
	assert.Equal(t, eos.AccountName("eosio.token"), name, "round trip mismatch")

	_, err = account.NameBytes("BAD")
	assert.Equal(t, fault.ErrInvalidAccountName, err, "bad name encoded")

	_, err = account.NameFromBytes([]byte{1, 2})
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short buffer decoded")
}

func TestKeyText(t *testing.T) {
	publicKey, privateKey, err := account.NewKeyPair()
	assert.Nil(t, err, "generate error")
	assert.Equal(t, publicKey, privateKey.Public(), "public key mismatch")

	decodedPublic, err := account.PublicKeyFromBase58(publicKey.String())
	assert.Nil(t, err, "public decode error")
	assert.Equal(t, publicKey, decodedPublic, "public round trip")

	decodedPrivate, err := account.PrivateKeyFromBase58(privateKey.String())
	assert.Nil(t, err, "private decode error")
	assert.Equal(t, privateKey, decodedPrivate, "private round trip")

	_, err = account.PublicKeyFromBase58(privateKey.String())
	assert.Equal(t, fault.ErrInvalidPublicKey, err, "private key accepted as public")

	s := []byte(publicKey.String())
	s[len(s)-1] ^= 0x01
	_, err = account.PublicKeyFromBase58(string(s))
	assert.NotNil(t, err, "corrupted key accepted")
}

type testArguments struct {
	account.Authorisation
	Inheritor eos.AccountName `json:"inheritor"`
	Amount    uint64          `json:"amount"`
}

func TestSignVerify(t *testing.T) {
	publicKey, privateKey, err := account.NewKeyPair()
	assert.Nil(t, err, "generate error")

	args := &testArguments{
		Inheritor: "bob",
		Amount:    5,
	}
	err = account.Sign("Client.Allocate", "alice", args, privateKey)
	assert.Nil(t, err, "sign error")
	assert.Equal(t, eos.AccountName("alice"), args.Actor, "actor not set")

	// transport round trip keeps the signature valid
	buffer, err := json.Marshal(args)
	assert.Nil(t, err, "marshal error")
	received := &testArguments{}
	assert.Nil(t, json.Unmarshal(buffer, received), "unmarshal error")

	assert.Nil(t, account.Verify("Client.Allocate", received, publicKey), "valid signature rejected")

	received.Amount = 6
	assert.Equal(t, fault.ErrInvalidSignature, account.Verify("Client.Allocate", received, publicKey), "tampered request accepted")

	received.Amount = 5
	assert.Equal(t, fault.ErrInvalidSignature, account.Verify("Client.Freeze", received, publicKey), "signature reused for another method")

	received.Nonce += 1
	assert.Equal(t, fault.ErrInvalidSignature, account.Verify("Client.Allocate", received, publicKey), "altered nonce accepted")
	received.Nonce -= 1

	received.Expires += 1
	assert.Equal(t, fault.ErrInvalidSignature, account.Verify("Client.Allocate", received, publicKey), "extended expiry accepted")
	received.Expires -= 1
	assert.Nil(t, account.Verify("Client.Allocate", received, publicKey), "restored request rejected")

	received.Actor = ""
	assert.Equal(t, fault.ErrMissingAuthority, account.Verify("Client.Allocate", received, publicKey), "missing actor accepted")
}

func TestSignSetsNonceAndExpiry(t *testing.T) {
	_, privateKey, err := account.NewKeyPair()
	assert.Nil(t, err, "generate error")

	before := uint32(time.Now().Unix())
	first := &testArguments{}
	assert.Nil(t, account.Sign("Client.Init", "alice", first, privateKey), "sign error")
	second := &testArguments{}
	assert.Nil(t, account.Sign("Client.Init", "alice", second, privateKey), "sign error")

	assert.True(t, second.Nonce > first.Nonce, "nonce did not increase: %d  %d", first.Nonce, second.Nonce)
	assert.True(t, first.Expires >= before+constants.RequestLifetime, "expiry too early: %d", first.Expires)

	err = account.SignUntil("Client.Init", "alice", first, privateKey, 1234)
	assert.Nil(t, err, "sign error")
	assert.Equal(t, uint32(1234), first.Expires, "explicit expiry not set")
	assert.True(t, first.Nonce > second.Nonce, "re-signing kept an old nonce")
}

func TestNextNonce(t *testing.T) {
	last := account.NextNonce()
	for i := 0; i < 1000; i += 1 {
		n := account.NextNonce()
		if n <= last {
			t.Fatalf("nonce: %d  follows: %d", n, last)
		}
		last = n
	}
}

func TestNamesKey(t *testing.T) {
	key, err := account.NamesKey("alice", "eosio.token")
	assert.Nil(t, err, "key error")
	assert.Equal(t, 16, len(key), "wrong length")

	second, err := account.NameFromBytes(key[8:])
	assert.Nil(t, err, "decode error")
	assert.Equal(t, eos.AccountName("eosio.token"), second, "wrong second name")

	_, err = account.NamesKey("alice", "Bad")
	assert.Equal(t, fault.ErrInvalidAccountName, err, "bad name accepted")
}
