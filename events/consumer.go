// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"github.com/bitmark-inc/inheritd/action"
	"github.com/bitmark-inc/inheritd/messagebus"
	"github.com/bitmark-inc/logger"
)

type consumer struct {
	log     *logger.L
	queue   *messagebus.QueueT
	metrics *Metrics
}

// Run - drain the queue until shutdown
func (c *consumer) Run(args interface{}, shutdown <-chan struct{}) {

	log := c.log

	log.Info("starting…")

	queue := c.queue.Chan()
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			c.process(item)
		}
	}

	log.Info("stopped")
}

func (c *consumer) process(item messagebus.Message) {
	event, ok := item.Item.(action.Event)
	if !ok {
		c.log.Warnf("discard command: %q  item: %T", item.Command, item.Item)
		return
	}

	c.log.Infof("program: %s  kind: %s", event.Program, event.Kind)
	c.log.Debugf("data: %+v", event.Data)

	c.metrics.Observe(event)
}
