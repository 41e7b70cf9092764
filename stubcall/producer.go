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

	"github.com/pkg/errors"
)

// ErrNoValue is returned by Await when a delivery completes without emitting a value
var ErrNoValue = errors.New("stubcall: completed without a value")

/*
Producer replays an already resolved asynchronous response.

A delivery emits zero or more value events followed by exactly one terminal event (completed, failed or cancelled).
The Producer is cold, every Start or Events replays from the beginning.
*/
type Producer[V any] struct {
	events []Event[V]
}

/*
Replay creates a Producer for events.

Events after the first terminal event are dropped, and a completion is appended if there is no terminal event,
so a delivery always ends with exactly one terminal signal.
*/
func Replay[V any](events ...Event[V]) *Producer[V] {
	normalised := make([]Event[V], 0, len(events)+1)
	for _, ev := range events {
		normalised = append(normalised, ev)
		if ev.IsTerminal() {
			return &Producer[V]{events: normalised}
		}
	}
	return &Producer[V]{events: append(normalised, Completed[V]())}
}

// Empty completes without emitting any value
func Empty[V any]() *Producer[V] {
	return Replay[V]()
}

// Just emits value then completes
func Just[V any](value V) *Producer[V] {
	return Replay(Next(value))
}

// Fail terminates with err without emitting any value
func Fail[V any](err error) *Producer[V] {
	return Replay(Failed[V](err))
}

// FromResult emits the value of a successful Result and completes, or fails with its error
func FromResult[V any](r Result[V]) *Producer[V] {
	value, err := r.Get()
	if err != nil {
		return Fail[V](err)
	}
	return Just(value)
}

/*
Start delivers the events synchronously to observer and returns the terminal event.

ctx is checked before each event. Once it is done, a single Cancelled event is delivered in place of
whatever remained. observer may cancel ctx itself.
*/
func (p *Producer[V]) Start(ctx context.Context, observer func(Event[V])) Event[V] {
	return p.replay(ctx,
		func(ev Event[V]) bool {
			observer(ev)
			return true
		},
		observer)
}

/*
Events delivers the events over a channel from a new goroutine, closing it after the terminal event.

The channel holds at most one undelivered event. Cancelling ctx stops further emission: a value the consumer has not
yet received is withdrawn and replaced by the Cancelled event, so the goroutine exits whether or not the consumer
keeps reading.
*/
func (p *Producer[V]) Events(ctx context.Context) <-chan Event[V] {
	ch := make(chan Event[V], 1)
	go func() {
		defer close(ch)
		p.replay(ctx,
			func(ev Event[V]) bool {
				if ctx.Err() != nil {
					return false
				}
				select {
				case ch <- ev:
					return true
				case <-ctx.Done():
					return false
				}
			},
			func(terminal Event[V]) {
				if ctx.Err() == nil {
					select {
					case ch <- terminal:
						return
					case <-ctx.Done():
					}
				}
				select {
				case <-ch:
				default:
				}
				// only this goroutine sends, so the emptied slot is free
				ch <- Cancelled[V]()
			})
	}()
	return ch
}

// Collect returns all events of a single delivery, terminal event last
func (p *Producer[V]) Collect(ctx context.Context) []Event[V] {
	var collected []Event[V]
	p.Start(ctx, func(ev Event[V]) {
		collected = append(collected, ev)
	})
	return collected
}

/*
Await returns the first value of a delivery, typically of a deferred result.

Returns the error of a failed delivery, ErrNoValue for a completion without value,
or the wrapped ctx error when cancelled.
*/
func (p *Producer[V]) Await(ctx context.Context) (result V, err error) {
	var zero V
	got := false
	terminal := p.Start(ctx, func(ev Event[V]) {
		if ev.Kind == ValueEvent && !got {
			result, got = ev.Value, true
		}
	})
	switch terminal.Kind {
	case FailedEvent:
		return zero, terminal.Err
	case CancelledEvent:
		return zero, errors.Wrap(ctx.Err(), "stubcall: delivery cancelled")
	}
	if !got {
		return zero, ErrNoValue
	}
	return result, nil
}

func (p *Producer[V]) replay(ctx context.Context, send func(Event[V]) bool, finish func(Event[V])) Event[V] {
	events := p.events
	if len(events) == 0 {
		events = []Event[V]{Completed[V]()}
	}
	last := len(events) - 1
	terminal := events[last]
	for _, ev := range events[:last] {
		if ctx.Err() != nil || !send(ev) {
			break
		}
	}
	if ctx.Err() != nil {
		terminal = Cancelled[V]()
	}
	finish(terminal)
	return terminal
}
