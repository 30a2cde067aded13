// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	assert.True(t, c1.IsZero(), "counter is not zero at start")

	for i := 0; i < 5; i += 1 {
		c1.Increment()
	}
	assert.Equal(t, uint64(5), c1.Uint64(), "wrong value after incrementing")

	c1.Decrement()
	assert.Equal(t, uint64(4), c1.Uint64(), "wrong value after decrementing")

	assert.Equal(t, uint64(14), c1.Add(10), "wrong value after add")

	for i := 0; i < 14; i += 1 {
		c1.Decrement()
	}
	assert.True(t, c1.IsZero(), "counter did not return to zero")

	// underflow is twos complement -1
	c1.Decrement()
	assert.Equal(t, ^uint64(0), c1.Uint64(), "counter did not underflow")
}

func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	const workers = 8
	const loops = 1000

	for i := 0; i < workers; i += 1 {
		wg.Add(1)
		go func() {
			for j := 0; j < loops; j += 1 {
				c.Increment()
			}
			wg.Done()
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(workers*loops), c.Uint64(), "lost increments")
}
