// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/directory"
	"github.com/bitmark-inc/inheritd/storage"
)

func TestSetupAndTeardown(t *testing.T) {
	err := SetupTestAccounts()
	assert.Nil(t, err, "setup error")

	for _, name := range Names {
		assert.True(t, directory.Exists(storage.Committed, name), "account missing: %s", name)
	}

	_, err = os.Stat(dir)
	assert.Nil(t, err, "scratch directory missing")

	assert.Nil(t, TeardownTestStorage(), "teardown error")

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "scratch directory kept")

	// nothing left to remove
	SetupTestLogger()
	assert.Nil(t, removeFiles(), "second removal error")
	assert.Nil(t, TeardownTestLogger(), "teardown without files error")
}
