// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	assert.Nil(t, ratelimit.Limit(limiter), "single request limited")

	closed := rate.NewLimiter(0, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(closed), "closed limiter passed")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 100)

	assert.Nil(t, ratelimit.LimitN(limiter, 10, 100), "valid count limited")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 100), "zero count accepted")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 101, 100), "large count accepted")

	small := rate.NewLimiter(1000, 5)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(small, 10, 100), "count above burst passed")
}
