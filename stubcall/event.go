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
	"fmt"

	"github.com/pkg/errors"
)

// EventKind discriminates the signals delivered by a Producer
type EventKind int

const (
	ValueEvent EventKind = iota
	FailedEvent
	CompletedEvent
	CancelledEvent
)

func (k EventKind) String() string {
	switch k {
	case ValueEvent:
		return "value"
	case FailedEvent:
		return "failed"
	case CompletedEvent:
		return "completed"
	case CancelledEvent:
		return "cancelled"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a single signal of an asynchronous response: a value, or one of the terminal signals
type Event[V any] struct {
	Kind  EventKind
	Value V
	Err   error
}

// Next is a value event
func Next[V any](value V) Event[V] {
	return Event[V]{Kind: ValueEvent, Value: value}
}

// Failed is a terminal event carrying err
func Failed[V any](err error) Event[V] {
	return Event[V]{Kind: FailedEvent, Err: err}
}

// Completed is the terminal event for successful completion
func Completed[V any]() Event[V] {
	return Event[V]{Kind: CompletedEvent}
}

// Cancelled is the terminal event delivered when the consumer cancels before replay finishes
func Cancelled[V any]() Event[V] {
	return Event[V]{Kind: CancelledEvent}
}

// IsTerminal is true for completed, failed and cancelled events
func (e Event[V]) IsTerminal() bool {
	return e.Kind != ValueEvent
}

func (e Event[V]) String() string {
	switch e.Kind {
	case ValueEvent:
		return fmt.Sprintf("value(%v)", e.Value)
	case FailedEvent:
		return fmt.Sprintf("failed(%v)", e.Err)
	default:
		return e.Kind.String()
	}
}

// ErrNilFailure stands in for the error of a Failure(nil)
var ErrNilFailure = errors.New("stubcall: failure without an error")

// Result is a deferred response, either a value or an error
type Result[V any] struct {
	value V
	err   error
}

// Success is a Result holding value
func Success[V any](value V) Result[V] {
	return Result[V]{value: value}
}

// Failure is a Result holding err. A nil err is replaced by ErrNilFailure.
func Failure[V any](err error) Result[V] {
	if err == nil {
		err = ErrNilFailure
	}
	return Result[V]{err: err}
}

// Get returns the value, or the error of a failed Result
func (r Result[V]) Get() (V, error) {
	return r.value, r.err
}

// IsFailure is true for a Result created with Failure
func (r Result[V]) IsFailure() bool {
	return r.err != nil
}

func (r Result[V]) String() string {
	if r.err != nil {
		return fmt.Sprintf("failure(%v)", r.err)
	}
	return fmt.Sprintf("success(%v)", r.value)
}
