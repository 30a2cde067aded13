// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package agent

import (
	"github.com/bitmark-inc/inheritd/storage"
)

// ClearData - remove every miner and client account and both bill
// logs, only for use on a stopped node
//
// earnings and the bill id sequences are kept
func (p *Program) ClearData(trx storage.Transaction) (int, error) {
	total := 0
	for _, pool := range []*storage.PoolHandle{
		storage.Pool.Miners,
		storage.Pool.MinerBills,
		storage.Pool.Clients,
		storage.Pool.ClientBills,
	} {
		err := pool.NewPrefixCursor(p.selfKey).Map(func(key []byte, value []byte) error {
			trx.Delete(pool, key)
			total += 1
			return nil
		})
		if nil != err {
			return total, err
		}
	}
	p.log.Warnf("agent: %s  cleared: %d rows", p.self, total)
	return total, nil
}
