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

/*
ReactiveCall is a Call for a method whose real implementation delivers a deferred result asynchronously.

Stub with Returns(Success(v)), Returns(Failure(err)), Fails(err), Performs or On as for any Call.
Invoke resolves at call time and returns a Producer replaying the result.

Unlike Call.Invoke, an unstubbed ReactiveCall does not fail the test: it yields a Producer that completes
without a value, since the code under test may never await it.
*/
type ReactiveCall[A, V any] struct {
	*Call[A, Result[V]]
}

// NewReactiveCall creates a ReactiveCall receiving an argument of type A and delivering a Result[V]
func NewReactiveCall[A, V any](t T, opts ...Option) *ReactiveCall[A, V] {
	return &ReactiveCall[A, V]{Call: NewCall[A, Result[V]](t, opts...)}
}

// Succeeds is shorthand for Returns(Success(value))
func (c *ReactiveCall[A, V]) Succeeds(value V) *ReactiveCall[A, V] {
	c.Returns(Success(value))
	return c
}

// Fails is shorthand for Returns(Failure(err))
func (c *ReactiveCall[A, V]) Fails(err error) *ReactiveCall[A, V] {
	c.Returns(Failure[V](err))
	return c
}

// Invoke records the call and returns a Producer for the stubbed result, or an empty Producer if nothing is stubbed
func (c *ReactiveCall[A, V]) Invoke(arg A) *Producer[V] {
	c.t.Helper()
	result, ok := c.resolve(arg)
	if !ok {
		c.traceCall(arg, "empty")
		return Empty[V]()
	}
	c.traceCall(arg, result)
	return FromResult(result)
}

// InvokeOr records the call and returns a Producer for the stubbed result, or for def if nothing is stubbed
func (c *ReactiveCall[A, V]) InvokeOr(arg A, def Result[V]) *Producer[V] {
	c.t.Helper()
	return FromResult(c.Call.InvokeOr(arg, def))
}

// InvokeReactiveVoid is Invoke for a ReactiveCall that takes no arguments
func InvokeReactiveVoid[V any](c *ReactiveCall[Void, V]) *Producer[V] {
	c.t.Helper()
	return c.Invoke(Void{})
}

/*
StreamCall is a Call for a method whose real implementation delivers a sequence of events asynchronously.

The stubbed response is the list of events to replay. A completion is appended when the list holds
no terminal event. An unstubbed StreamCall yields a Producer that completes without a value.
*/
type StreamCall[A, V any] struct {
	*Call[A, []Event[V]]
}

// NewStreamCall creates a StreamCall receiving an argument of type A and delivering events of V
func NewStreamCall[A, V any](t T, opts ...Option) *StreamCall[A, V] {
	return &StreamCall[A, V]{Call: NewCall[A, []Event[V]](t, opts...)}
}

// Emits is shorthand for Returns(events)
func (c *StreamCall[A, V]) Emits(events ...Event[V]) *StreamCall[A, V] {
	c.Returns(events)
	return c
}

// Invoke records the call and returns a Producer replaying the stubbed events, or an empty Producer if nothing is stubbed
func (c *StreamCall[A, V]) Invoke(arg A) *Producer[V] {
	c.t.Helper()
	events, ok := c.resolve(arg)
	if !ok {
		c.traceCall(arg, "empty")
		return Empty[V]()
	}
	c.traceCall(arg, events)
	return Replay(events...)
}

// InvokeOr records the call and returns a Producer replaying the stubbed events, or def if nothing is stubbed
func (c *StreamCall[A, V]) InvokeOr(arg A, def []Event[V]) *Producer[V] {
	c.t.Helper()
	return Replay(c.Call.InvokeOr(arg, def)...)
}

// InvokeStreamVoid is Invoke for a StreamCall that takes no arguments
func InvokeStreamVoid[V any](c *StreamCall[Void, V]) *Producer[V] {
	c.t.Helper()
	return c.Invoke(Void{})
}
