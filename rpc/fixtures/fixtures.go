// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared set up for the RPC package tests
package fixtures

import (
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/inheritd/fixtures"
)

// LogCategory - the test logging channel
const LogCategory = fixtures.LogCategory

// SetupTestLogger - log to a scratch directory
func SetupTestLogger() {
	fixtures.SetupTestLogger()
}

// TeardownTestLogger - remove the scratch directory
func TeardownTestLogger() error {
	return fixtures.TeardownTestLogger()
}

// CertificatePair - a fresh self-signed PEM certificate and key for
// localhost
func CertificatePair() (string, string) {
	cert, key, err := certgen.NewTLSCertPair("inheritd test", time.Now().Add(time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	return string(cert), string(key)
}
