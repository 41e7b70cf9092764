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
	"slices"
	"strings"
)

// Recorder spies on a single faked method, capturing the argument of every invocation in call order.
//
// The zero value is not usable; a Recorder is created as part of a Call.
type Recorder[A any] struct {
	t    T
	name string
	args []A
}

func newRecorder[A any](t T, name string) *Recorder[A] {
	return &Recorder[A]{t: t, name: name}
}

func (r *Recorder[A]) capture(arg A) {
	r.args = append(r.args, arg)
}

// Called reports whether there has been at least one invocation
func (r *Recorder[A]) Called() bool {
	return len(r.args) > 0
}

// CallsCount is the number of invocations so far
func (r *Recorder[A]) CallsCount() int {
	return len(r.args)
}

// CapturedArgument returns the argument of the most recent invocation, ok is false if there has been none
func (r *Recorder[A]) CapturedArgument() (arg A, ok bool) {
	if len(r.args) == 0 {
		return arg, false
	}
	return r.args[len(r.args)-1], true
}

// CapturedArguments returns a copy of all captured arguments in invocation order
func (r *Recorder[A]) CapturedArguments() []A {
	return slices.Clone(r.args)
}

// Recorded returns the full set of recorded calls, available to be verified
func (r *Recorder[A]) Recorded() RecordedCalls[A] {
	return RecordedCalls[A]{
		t:       r.t,
		args:    r.args,
		subsets: []string{fmt.Sprintf("all calls to %s", r.name)},
	}
}

// RecordedCalls represents a set of recorded invocations to be verified
type RecordedCalls[A any] struct {
	t       T
	args    []A
	subsets []string
}

/*
Matching returns the subset of calls whose argument satisfies p.

Optionally include an explanation that will be formatted to string to describe what is being matched
*/
func (c RecordedCalls[A]) Matching(p Predicate[A], explanation ...interface{}) RecordedCalls[A] {
	var subset []A
	for _, arg := range c.args {
		if p(arg) {
			subset = append(subset, arg)
		}
	}
	explain := "predicate"
	if len(explanation) > 0 {
		explain = fmt.Sprint(explanation...)
	}
	return c.newSubset(subset, fmt.Sprintf("calls matching %s within", explain))
}

/*
Slice returns a subset of these calls, including call at index from, excluding call at index to (like go slice)

If necessary use NumCalls() to reference calls from the end of the slice.
eg to get the last 3 calls - r.Slice(r.NumCalls() -3, r.NumCalls())
*/
func (c RecordedCalls[A]) Slice(from int, to int) RecordedCalls[A] {
	c.t.Helper()
	l := len(c.args)
	var subset []A
	var sliceDesc string
	if from < 0 || to < 0 || from > to {
		c.t.Fatalf("Invalid Slice of RecordedCalls %v[%d>:%d]", c, from, to)
		return c.newSubset(nil, "invalid slice of")
	}
	if from > l {
		sliceDesc = fmt.Sprintf("[%d>=len():]", from)
	} else if to > l {
		sliceDesc = fmt.Sprintf("[%d:]", from)
		subset = c.args[from:]
	} else {
		sliceDesc = fmt.Sprintf("[%d:%d]", from, to)
		subset = c.args[from:to]
	}
	return c.newSubset(subset, fmt.Sprintf("slice%s of", sliceDesc))
}

// Expect asserts the number of calls in this set
func (c RecordedCalls[A]) Expect(expect Expectation) {
	c.t.Helper()
	count := c.NumCalls()
	if !expect.Met(count) {
		c.t.Errorf("%v expected %v, found %d calls", c, expect, count)
	}
}

// NumCalls returns the number of calls in this set.
// Prefer to use Expect() rather than asserting the result of NumCalls()
func (c RecordedCalls[A]) NumCalls() int {
	return len(c.args)
}

// Args returns a copy of the captured arguments in this set
func (c RecordedCalls[A]) Args() []A {
	return slices.Clone(c.args)
}

func (c RecordedCalls[A]) String() string {
	sb := strings.Builder{}
	for depth, desc := range c.subsets {
		if depth > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(desc)
	}
	return sb.String()
}

func (c RecordedCalls[A]) newSubset(args []A, desc string) RecordedCalls[A] {
	return RecordedCalls[A]{
		t:       c.t,
		args:    args,
		subsets: append([]string{desc}, c.subsets...),
	}
}
