// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/chain"
)

func TestValid(t *testing.T) {
	for _, name := range []string{chain.Live, chain.Testing, chain.Local} {
		assert.True(t, chain.Valid(name), "%q rejected", name)
	}
	for _, name := range []string{"", "bitmark", "LIVE"} {
		assert.False(t, chain.Valid(name), "%q accepted", name)
	}
}

func TestIsTesting(t *testing.T) {
	assert.False(t, chain.IsTesting(chain.Live), "live chain is testing")
	assert.True(t, chain.IsTesting(chain.Testing), "testing chain")
	assert.True(t, chain.IsTesting(chain.Local), "local chain")
	assert.False(t, chain.IsTesting("eos"), "unknown chain is testing")
}
