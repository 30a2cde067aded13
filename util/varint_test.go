// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16383, []byte{0xff, 0x7f}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{86400, []byte{0x80, 0xa3, 0x05}},
	{0x7fffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	{0x8000000000000000, []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestToVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		if result := util.ToVarint64(item.value); !bytes.Equal(result, item.encoded) {
			t.Errorf("%d: ToVarint64(%x) -> %x  expected: %x", i, item.value, result, item.encoded)
		}
	}
}

func TestFromVarint64(t *testing.T) {
	suffix := []byte{0xff, 0x97, 0x23}

	for i, item := range varint64Tests {
		b := append(append([]byte{}, item.encoded...), suffix...)

		result, count := util.FromVarint64(b)
		if result != item.value || count != len(item.encoded) {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: %d, %d", i, b, result, count, item.value, len(item.encoded))
		}
		if !bytes.Equal(suffix, b[count:]) {
			t.Errorf("%d: suffix: %x  expected: %x", i, b[count:], suffix)
		}
	}
}

func TestFromVarint64Truncated(t *testing.T) {
	truncated := [][]byte{
		{},
		{0x80},
		{0xff, 0xff},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	}
	for i, item := range truncated {
		result, count := util.FromVarint64(item)
		if 0 != result || 0 != count {
			t.Errorf("%d: FromVarint64(%x) -> %d, %d  expected: 0, 0", i, item, result, count)
		}
	}
}

func TestClippedVarint64(t *testing.T) {
	v, n := util.ClippedVarint64([]byte{0x05}, 1, 10)
	assert.Equal(t, 5, v, "wrong value")
	assert.Equal(t, 1, n, "wrong count")

	v, n = util.ClippedVarint64([]byte{0x80, 0x01}, 1, 10)
	assert.Equal(t, 0, v, "out of range accepted")
	assert.Equal(t, 0, n, "out of range accepted")

	_, n = util.ClippedVarint64([]byte{0x00}, 1, 10)
	assert.Equal(t, 0, n, "below minimum accepted")

	_, n = util.ClippedVarint64([]byte{0x05}, 10, 1)
	assert.Equal(t, 0, n, "inverted range accepted")
}

func TestSignedVarint64(t *testing.T) {
	values := []int64{0, 1, -1, 63, -64, 64, 50000, -50000, 1<<62 - 1, -(1 << 62), 1<<63 - 1, -1 << 63}
	for _, value := range values {
		b := util.ToSignedVarint64(value)
		result, count := util.FromSignedVarint64(b)
		assert.Equal(t, value, result, "value mismatch")
		assert.Equal(t, len(b), count, "count mismatch")
	}

	assert.Equal(t, []byte{0x01}, util.ToSignedVarint64(-1), "zigzag -1")
	assert.Equal(t, []byte{0x02}, util.ToSignedVarint64(1), "zigzag 1")
}
