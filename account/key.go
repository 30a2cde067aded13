// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/inheritd/fault"
)

// enumeration of supported key algorithms
const (
	// zero is not a valid algorithm
	ED25519 = 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode  = 0x01
	privateKeyCode = 0x00

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// PublicKey - ed25519 public key of an account
type PublicKey []byte

// PrivateKey - ed25519 private key, seed followed by public key
type PrivateKey []byte

// NewKeyPair - generate a random key pair
func NewKeyPair() (PublicKey, PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, nil, err
	}
	return PublicKey(publicKey), PrivateKey(privateKey), nil
}

// Public - the public half of a private key
func (privateKey PrivateKey) Public() PublicKey {
	return PublicKey(ed25519.PrivateKey(privateKey).Public().(ed25519.PublicKey))
}

// Sign - sign a message
func (privateKey PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(ed25519.PrivateKey(privateKey), message))
}

// CheckSignature - verify a message against this key
func (publicKey PublicKey) CheckSignature(message []byte, signature Signature) error {
	if ed25519.PublicKeySize != len(publicKey) || ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(publicKey), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// String - Base58 with variant and checksum
func (publicKey PublicKey) String() string {
	return encodeKey(publicKeyCode, publicKey)
}

// MarshalText - as String
func (publicKey PublicKey) MarshalText() ([]byte, error) {
	return []byte(publicKey.String()), nil
}

// UnmarshalText - from the Base58 form
func (publicKey *PublicKey) UnmarshalText(s []byte) error {
	k, err := PublicKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*publicKey = k
	return nil
}

// String - Base58 with variant and checksum
func (privateKey PrivateKey) String() string {
	return encodeKey(privateKeyCode, privateKey)
}

// PublicKeyFromBase58 - decode and check a public key
func PublicKeyFromBase58(s string) (PublicKey, error) {
	key, err := decodeKey(s, publicKeyCode, ed25519.PublicKeySize)
	if nil != err {
		return nil, fault.ErrInvalidPublicKey
	}
	return PublicKey(key), nil
}

// PrivateKeyFromBase58 - decode and check a private key
func PrivateKeyFromBase58(s string) (PrivateKey, error) {
	key, err := decodeKey(s, privateKeyCode, ed25519.PrivateKeySize)
	if nil != err {
		return nil, fault.ErrInvalidPrivateKey
	}
	return PrivateKey(key), nil
}

func encodeKey(code byte, key []byte) string {
	buffer := append([]byte{byte(ED25519<<algorithmShift) | code}, key...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

func decodeKey(s string, code byte, size int) ([]byte, error) {
	decoded, err := base58.Decode(s)
	if nil != err {
		return nil, err
	}
	if 1+size+checksumLength != len(decoded) {
		return nil, fault.ErrInvalidKeyLength
	}

	variant := decoded[0]
	if variant>>algorithmShift != ED25519 || variant&publicKeyCode != code {
		return nil, fault.ErrInvalidKeyType
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	key := make([]byte, size)
	copy(key, decoded[1:checksumStart])
	return key, nil
}
