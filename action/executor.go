// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package action

import (
	"sync"
	"time"

	"github.com/eoscanada/eos-go"

	"github.com/bitmark-inc/inheritd/storage"
	"github.com/bitmark-inc/logger"
)

// Publisher - receives events after their action committed
type Publisher interface {
	Send(command string, item interface{})
}

// Executor - runs actions one at a time
type Executor struct {
	sync.Mutex
	log       *logger.L
	clock     func() time.Time
	publisher Publisher
}

// NewExecutor - create an executor using the system clock
//
// publisher may be nil
func NewExecutor(log *logger.L, publisher Publisher) *Executor {
	return &Executor{
		log:       log,
		clock:     time.Now,
		publisher: publisher,
	}
}

// SetClock - replace the time source
func (e *Executor) SetClock(clock func() time.Time) {
	e.Lock()
	e.clock = clock
	e.Unlock()
}

// Execute - run f in a new transaction authorised by auths
//
// the transaction commits only if f returns nil
func (e *Executor) Execute(name string, auths []eos.AccountName, f func(*Context) error) error {
	e.Lock()
	defer e.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		e.log.Errorf("%s: transaction error: %s", name, err)
		return err
	}

	// covers both an error return and a panic inside f
	committed := false
	defer func() {
		if !committed {
			trx.Abort()
		}
	}()

	events := make([]Event, 0, 4)
	ctx := &Context{
		trx:    trx,
		now:    uint32(e.clock().Unix()),
		auths:  auths,
		events: &events,
	}

	e.log.Debugf("%s: auths: %v  time: %d", name, auths, ctx.now)

	err = f(ctx)
	if nil != err {
		e.log.Warnf("%s: aborted: %s", name, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		e.log.Errorf("%s: commit error: %s", name, err)
		return err
	}
	committed = true

	e.log.Infof("%s: committed with %d events", name, len(events))

	if nil != e.publisher {
		for _, event := range events {
			e.publisher.Send(event.Kind, event)
		}
	}
	return nil
}
