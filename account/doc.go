// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - account names, keys and request signatures
//
// Names follow the EOS rules: up to twelve characters from
// "abcdefghijklmnopqrstuvwxyz12345." not ending in a dot; each maps
// one to one onto a uint64 which is what the storage keys use.
//
// Every account in the directory carries an ed25519 public key.  Keys
// are shown as Base58 of a key variant byte, the raw key and a four
// byte SHA3 checksum.
package account
