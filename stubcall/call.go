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
Call is the test double for a single method of a faked interface, typically one field per method
on a hand-written fake.

Setup phase

Stub responses with Returns (a fixed value), Performs (logic computing the response from the argument)
and On (a conditional stub for arguments satisfying a predicate).

Exercise phase

The fake's method body delegates to Invoke or InvokeOr, which record the argument and resolve the response.

Verify phase

Assert on Called, CallsCount, CapturedArgument, CapturedArguments or the Recorded calls.
*/
type Call[A, V any] struct {
	*Recorder[A]
	opts     options
	seq      uint64
	rules    []*rule[A, V]
	fallback response[A, V]
}

// NewCall creates a Call receiving an argument of type A and responding with type V
func NewCall[A, V any](t T, opts ...Option) *Call[A, V] {
	if t == nil {
		panic("stubcall: NewCall requires a non nil T")
	}
	o := newOptions(opts)
	return &Call[A, V]{
		Recorder: newRecorder[A](t, o.name),
		opts:     o,
	}
}

func (c *Call[A, V]) nextSeq() uint64 {
	c.seq++
	return c.seq
}

// Returns stubs value for any call not handled by a conditional stub
func (c *Call[A, V]) Returns(value V) *Call[A, V] {
	c.fallback.setValue(value, c.nextSeq())
	return c
}

// Performs stubs logic for any call not handled by a conditional stub. A nil fn removes the logic stub.
func (c *Call[A, V]) Performs(fn func(A) V) *Call[A, V] {
	c.fallback.setFunc(fn, c.nextSeq())
	return c
}

/*
On registers a conditional stub for calls whose argument satisfies predicate.

Conditional stubs are evaluated in the order they were registered, before the unconditional Returns and Performs.
The returned ReturnContext must be completed with Returns or Performs, otherwise the stub never matches.
*/
func (c *Call[A, V]) On(predicate Predicate[A]) *ReturnContext[A, V] {
	c.t.Helper()
	if predicate == nil {
		c.t.Fatalf("%s.On() requires a non nil predicate", c)
		predicate = Not(Any[A]())
	}
	r := &rule[A, V]{predicate: predicate}
	c.rules = append(c.rules, r)
	return &ReturnContext[A, V]{call: c, rule: r}
}

// Invoke records the call and returns the stubbed response.
//
// Fatally fails the test if no stub is configured for arg.
func (c *Call[A, V]) Invoke(arg A) V {
	c.t.Helper()
	result, ok := c.resolve(arg)
	if !ok {
		c.t.Fatalf("no stub configured for %s(%v)", c, arg)
		return result
	}
	c.traceCall(arg, result)
	return result
}

// InvokeOr records the call and returns the stubbed response, or def if no stub is configured for arg.
func (c *Call[A, V]) InvokeOr(arg A, def V) V {
	c.t.Helper()
	result, ok := c.resolve(arg)
	if !ok {
		result = def
	}
	c.traceCall(arg, result)
	return result
}

func (c *Call[A, V]) traceCall(arg A, result interface{}) {
	if c.opts.trace {
		c.t.Helper()
		c.t.Logf("Called %s(%v) => %v", c, arg, result)
	}
}

func (c *Call[A, V]) String() string {
	return c.opts.name
}

// Void is the argument type for methods that take no arguments
type Void = struct{}

// NewVoidCall creates a Call for a method that takes no arguments
func NewVoidCall[V any](t T, opts ...Option) *Call[Void, V] {
	return NewCall[Void, V](t, opts...)
}

// InvokeVoid is Invoke for a Call that takes no arguments
func InvokeVoid[V any](c *Call[Void, V]) V {
	c.t.Helper()
	return c.Invoke(Void{})
}

// InvokeVoidOr is InvokeOr for a Call that takes no arguments
func InvokeVoidOr[V any](c *Call[Void, V], def V) V {
	c.t.Helper()
	return c.InvokeOr(Void{}, def)
}
