/*
 * Copyright 2020 grant@lastweekend.com.au
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package stubcall

import (
	"context"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/gcustom"
	"github.com/onsi/gomega/types"
	"github.com/pkg/errors"
)

// Matchers over the delivery of a *Producer[V]. Each match starts a fresh delivery with a background context.

// SendValue succeeds when the last value sent matches expected, a gomega matcher or a value compared with Equal.
func SendValue[V any](expected interface{}) types.GomegaMatcher {
	m := asMatcher(expected)
	return gcustom.MakeMatcher(func(p *Producer[V]) (bool, error) {
		events, err := deliver(p)
		if err != nil {
			return false, err
		}
		value, sent := lastValue(events)
		if !sent {
			return false, nil
		}
		return m.Match(value)
	}).WithTemplate("Expected:\n{{.FormattedActual}}\n{{.To}} send a value matching\n{{format .Data 1}}", m)
}

// SendValueAndComplete is SendValue for a delivery that also completes successfully
func SendValueAndComplete[V any](expected interface{}) types.GomegaMatcher {
	m := asMatcher(expected)
	return gcustom.MakeMatcher(func(p *Producer[V]) (bool, error) {
		events, err := deliver(p)
		if err != nil {
			return false, err
		}
		value, sent := lastValue(events)
		if !sent || events[len(events)-1].Kind != CompletedEvent {
			return false, nil
		}
		return m.Match(value)
	}).WithTemplate("Expected:\n{{.FormattedActual}}\n{{.To}} send a value matching\n{{format .Data 1}}\nand complete", m)
}

// Complete succeeds when the delivery completes successfully
func Complete[V any]() types.GomegaMatcher {
	return terminateWith[V](CompletedEvent)
}

// BeCancelled succeeds when the delivery ends with a Cancelled event
func BeCancelled[V any]() types.GomegaMatcher {
	return terminateWith[V](CancelledEvent)
}

// FailWith succeeds when the delivery fails with an error satisfying gomega's MatchError(expected)
func FailWith[V any](expected interface{}) types.GomegaMatcher {
	m := gomega.MatchError(expected)
	return gcustom.MakeMatcher(func(p *Producer[V]) (bool, error) {
		events, err := deliver(p)
		if err != nil {
			return false, err
		}
		terminal := events[len(events)-1]
		if terminal.Kind != FailedEvent {
			return false, nil
		}
		return m.Match(terminal.Err)
	}).WithTemplate("Expected:\n{{.FormattedActual}}\n{{.To}} fail with\n{{format .Data 1}}", expected)
}

func terminateWith[V any](kind EventKind) types.GomegaMatcher {
	return gcustom.MakeMatcher(func(p *Producer[V]) (bool, error) {
		events, err := deliver(p)
		if err != nil {
			return false, err
		}
		return events[len(events)-1].Kind == kind, nil
	}).WithTemplate("Expected:\n{{.FormattedActual}}\n{{.To}} terminate with {{.Data}}", kind)
}

func deliver[V any](p *Producer[V]) ([]Event[V], error) {
	if p == nil {
		return nil, errors.Errorf("expected a %T, got nil", p)
	}
	return p.Collect(context.Background()), nil
}

func asMatcher(expected interface{}) types.GomegaMatcher {
	if m, ok := expected.(types.GomegaMatcher); ok {
		return m
	}
	return gomega.Equal(expected)
}

func lastValue[V any](events []Event[V]) (value V, sent bool) {
	for _, ev := range events {
		if ev.Kind == ValueEvent {
			value, sent = ev.Value, true
		}
	}
	return value, sent
}
