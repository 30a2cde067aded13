// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/inheritd/counter"
)

// internal constants
const (
	queueSize = 1000
)

// Message - an item on a queue
type Message struct {
	Command string      // type of item
	Item    interface{} // the item itself
}

// QueueT - a single buffered queue
//
// senders never block: when the queue is full the message is dropped
// and counted
type QueueT struct {
	c       chan Message
	dropped counter.Counter
}

// BusType - the set of queues
type BusType struct {
	Events    *QueueT // committed action events
	TestQueue *QueueT // for testing use
}

// Bus - all available queues
var Bus = BusType{
	Events:    NewQueue(queueSize),
	TestQueue: NewQueue(queueSize),
}

// NewQueue - create a queue that holds up to size messages
func NewQueue(size int) *QueueT {
	return &QueueT{
		c: make(chan Message, size),
	}
}

// Send - queue a message
func (queue *QueueT) Send(command string, item interface{}) {
	m := Message{
		Command: command,
		Item:    item,
	}
	select {
	case queue.c <- m:
	default:
		queue.dropped.Increment()
	}
}

// Chan - channel to read from
func (queue *QueueT) Chan() <-chan Message {
	return queue.c
}

// Pending - number of messages waiting to be read
func (queue *QueueT) Pending() int {
	return len(queue.c)
}

// Dropped - number of messages discarded because the queue was full
func (queue *QueueT) Dropped() uint64 {
	return queue.dropped.Uint64()
}
