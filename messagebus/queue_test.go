// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/messagebus"
)

func TestQueue(t *testing.T) {

	items := []messagebus.Message{
		{
			Command: "c1",
			Item:    nil,
		},
		{
			Command: "c2",
			Item:    1,
		},
		{
			Command: "c3",
			Item:    "three",
		},
	}

	for _, item := range items {
		messagebus.Bus.TestQueue.Send(item.Command, item.Item)
	}

	queue := messagebus.Bus.TestQueue.Chan()
	for _, item := range items {
		received := <-queue
		assert.Equal(t, item, received, "wrong message")
	}
}

func TestQueueFullDrops(t *testing.T) {
	queue := messagebus.NewQueue(2)

	queue.Send("a", nil)
	queue.Send("b", nil)
	queue.Send("c", nil)
	queue.Send("d", nil)

	assert.Equal(t, uint64(2), queue.Dropped(), "wrong drop count")
	assert.Equal(t, 2, queue.Pending(), "wrong pending count")

	c := queue.Chan()
	assert.Equal(t, "a", (<-c).Command, "first message lost")
	assert.Equal(t, 1, queue.Pending(), "pending after read")
	assert.Equal(t, "b", (<-c).Command, "second message lost")

	select {
	case m := <-c:
		t.Errorf("unexpected message: %+v", m)
	default:
	}
}
