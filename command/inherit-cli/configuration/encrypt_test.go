// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/fault"
)

// test encrypt and decrypt one string with various passwords
func TestEncryptDecrypt(t *testing.T) {

	plainText := "The Quick Brown Fox Jumps Over The Lazy Dog"

	passwords := []string{"test", "123", "444", "m,erRGhtk%$33ug62sd al/fajfb.adv"}

	for _, password := range passwords {
		salt, key, err := hashPassword(password)
		if nil != err {
			t.Fatalf("hash error: %s", err)
		}

		encrypted, err := encryptData(plainText, key)
		if nil != err {
			t.Fatalf("encrypt error: %s", err)
		}

		key2, err := generateKey(password, salt)
		if nil != err {
			t.Fatalf("generateKey error: %s", err)
		}

		decrypted, err := decryptData(encrypted, key2)
		if nil != err {
			t.Fatalf("decrypt error: %s", err)
		}
		assert.Equal(t, plainText, decrypted, "password: %q", password)
	}
}

func TestEncryptDifferentNonce(t *testing.T) {
	_, key, err := hashPassword("password")
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}

	plainText := "This is some text for testing 1234567890"
	first, err := encryptData(plainText, key)
	assert.Nil(t, err, "first encrypt error")
	second, err := encryptData(plainText, key)
	assert.Nil(t, err, "second encrypt error")
	assert.NotEqual(t, first, second, "same ciphertext twice")
}

func TestEncryptErrors(t *testing.T) {
	_, key, err := hashPassword("password")
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}

	_, err = encryptData("short", key)
	assert.Equal(t, fault.ErrCryptoFailed, err, "short data encrypted")

	_, err = decryptData("", key)
	assert.Equal(t, fault.ErrCryptoFailed, err, "empty data decrypted")

	_, err = decryptData("0011", key)
	assert.Equal(t, fault.ErrCryptoFailed, err, "data shorter than nonce decrypted")

	encrypted, err := encryptData("This is some text for testing 1234567890", key)
	assert.Nil(t, err, "encrypt error")

	_, other, err := hashPassword("different")
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}
	_, err = decryptData(encrypted, other)
	assert.Equal(t, fault.ErrCryptoFailed, err, "wrong key decrypted")
}

func TestSalt(t *testing.T) {
	salt, err := MakeSalt()
	assert.Nil(t, err, "make salt error")

	var decoded Salt
	err = decoded.UnmarshalText([]byte(salt.String()))
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, *salt, decoded, "salt changed")

	err = decoded.UnmarshalText([]byte("0102"))
	assert.Equal(t, fault.ErrInvalidSalt, err, "short salt accepted")
}
