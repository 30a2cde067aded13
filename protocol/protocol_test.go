// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/inheritd/fault"
	"github.com/bitmark-inc/inheritd/fixtures"
	"github.com/bitmark-inc/inheritd/protocol"
	"github.com/bitmark-inc/inheritd/protocol/mocks"
)

func TestOutcomeJSON(t *testing.T) {
	outcomes := map[protocol.Outcome]string{
		protocol.ConditionUnmet:  "condition-unmet",
		protocol.Fined:           "fined",
		protocol.CooldownStarted: "cooldown-started",
		protocol.CooldownPending: "cooldown-pending",
		protocol.Transferred:     "transferred",
		protocol.Replayed:        "replayed",
	}

	for o, name := range outcomes {
		assert.Equal(t, name, o.String(), "wrong name")

		buffer, err := json.Marshal(o)
		assert.Nil(t, err, "marshal error")
		assert.Equal(t, `"`+name+`"`, string(buffer), "wrong JSON")

		var decoded protocol.Outcome
		err = json.Unmarshal(buffer, &decoded)
		assert.Nil(t, err, "unmarshal error")
		assert.Equal(t, o, decoded, "round trip")
	}

	var o protocol.Outcome
	assert.Equal(t, fault.ErrInvalidOutcome, json.Unmarshal([]byte(`"won"`), &o), "unknown outcome decoded")
	assert.Equal(t, "*unknown*", protocol.Outcome(99).String(), "out of range name")
}

func TestOutcomeNotified(t *testing.T) {
	assert.True(t, protocol.CooldownStarted.Notified(), "cooldown start not notified")
	assert.True(t, protocol.Transferred.Notified(), "transfer not notified")
	assert.False(t, protocol.Replayed.Notified(), "replay notified")
	assert.False(t, protocol.Fined.Notified(), "fine notified")
	assert.False(t, protocol.CooldownPending.Notified(), "pending notified")
	assert.False(t, protocol.ConditionUnmet.Notified(), "unmet notified")
}

func TestRegistry(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := protocol.NewRegistry()

	_, ok := r.Client(fixtures.Client)
	assert.False(t, ok, "client found in empty registry")
	_, ok = r.Agent(fixtures.Agent)
	assert.False(t, ok, "agent found in empty registry")

	c := mocks.NewMockClient(ctl)
	a := mocks.NewMockMiningObserver(ctl)
	r.AddClient(fixtures.Client, c)
	r.AddAgent(fixtures.Agent, a)

	foundClient, ok := r.Client(fixtures.Client)
	assert.True(t, ok, "client missing")
	assert.Equal(t, c, foundClient, "wrong client")

	foundAgent, ok := r.Agent(fixtures.Agent)
	assert.True(t, ok, "agent missing")
	assert.Equal(t, a, foundAgent, "wrong agent")

	var _ protocol.ClientLookup = r
	var _ protocol.AgentLookup = r
}
