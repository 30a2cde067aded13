// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"crypto/tls"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/rpc/certificate"
	"github.com/bitmark-inc/inheritd/rpc/fixtures"
	"github.com/bitmark-inc/logger"
)

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	cer, key := fixtures.CertificatePair()

	tlsConfig, fingerprint, err := certificate.Get(
		logger.New(fixtures.LogCategory),
		"test",
		cer,
		key,
	)
	assert.Nil(t, err, "wrong Get")

	pair, _ := tls.X509KeyPair([]byte(cer), []byte(key))

	assert.Equal(t, sha3.Sum256(pair.Certificate[0]), fingerprint, "wrong fingerprint")
	assert.Equal(t, pair, tlsConfig.Certificates[0], "wrong config")
}

func TestGetInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	_, _, err := certificate.Get(logger.New(fixtures.LogCategory), "test", "junk", "junk")
	assert.NotNil(t, err, "junk certificate accepted")
}

func TestGenerateAndLoad(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir, err := ioutil.TempDir("", "certificate")
	assert.Nil(t, err, "temp dir error")
	defer os.RemoveAll(dir)

	cert := filepath.Join(dir, "rpc.crt")
	key := filepath.Join(dir, "rpc.key")

	err = certificate.Generate("test", cert, key, false, nil)
	assert.Nil(t, err, "generate error")

	err = certificate.Generate("test", cert, key, false, nil)
	assert.Equal(t, fault.ErrCertificateFileExists, err, "certificate overwritten")

	_, fingerprint, err := certificate.Load(logger.New(fixtures.LogCategory), "test", cert, key)
	assert.Nil(t, err, "load error")

	pair, err := tls.LoadX509KeyPair(cert, key)
	assert.Nil(t, err, "stdlib load error")
	assert.Equal(t, certificate.Fingerprint(pair.Certificate[0]), fingerprint, "wrong fingerprint")

	_, _, err = certificate.Load(logger.New(fixtures.LogCategory), "test", filepath.Join(dir, "none.crt"), key)
	assert.NotNil(t, err, "missing file loaded")
}
