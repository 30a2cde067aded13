// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"encoding/json"

	"github.com/bitmark-inc/inheritd/fault"
)

// Outcome - result of a mining attempt that did not fail
type Outcome uint8

// possible outcomes
const (
	ConditionUnmet  Outcome = iota // before validFrom
	Fined                          // throttle exceeded, client not called
	CooldownStarted                // ACTIVE -> ACTIVE_CD_MINED
	CooldownPending                // ACTIVE_CD_MINED and cooldown not over
	Transferred                    // inheritance paid out and deleted
	Replayed                       // transfer already recorded
	maximumOutcome
)

var outcomeNames = []string{
	"condition-unmet",
	"fined",
	"cooldown-started",
	"cooldown-pending",
	"transferred",
	"replayed",
}

// String - as its name
func (o Outcome) String() string {
	if o >= maximumOutcome {
		return "*unknown*"
	}
	return outcomeNames[o]
}

// Notified - true if the client notified the agent
func (o Outcome) Notified() bool {
	return CooldownStarted == o || Transferred == o
}

// MarshalJSON - as a string
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON - from a string
func (o *Outcome) UnmarshalJSON(b []byte) error {
	s := ""
	err := json.Unmarshal(b, &s)
	if nil != err {
		return err
	}
	for i, name := range outcomeNames {
		if name == s {
			*o = Outcome(i)
			return nil
		}
	}
	return fault.ErrInvalidOutcome
}
