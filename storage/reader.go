// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Reader - the read side shared by a Transaction and committed data
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
}

type committed struct{}

// Committed - Reader that only sees committed data
var Committed Reader = committed{}

func (committed) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

func (committed) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return p.GetN(key)
}

func (committed) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}
