// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// NextSequence - take the next value of a counter, starting at zero
//
// values are never reused, even after the rows using them are deleted
func NextSequence(trx Transaction, key []byte) uint64 {
	n, _ := trx.GetN(Pool.Sequences, key)
	trx.PutN(Pool.Sequences, key, n+1)
	return n
}
