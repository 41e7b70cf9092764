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

// response holds a fixed value and a function, each stamped with the configuration sequence that set it.
// A zero sequence means unset.
type response[A, V any] struct {
	value    V
	valueSeq uint64
	fn       func(A) V
	fnSeq    uint64
}

func (r *response[A, V]) setValue(value V, seq uint64) {
	r.value = value
	r.valueSeq = seq
}

func (r *response[A, V]) setFunc(fn func(A) V, seq uint64) {
	if fn == nil {
		r.fn, r.fnSeq = nil, 0
		return
	}
	r.fn = fn
	r.fnSeq = seq
}

func (r *response[A, V]) configured() bool {
	return r.valueSeq > 0 || r.fnSeq > 0
}

func (r *response[A, V]) respond(arg A, precedence Precedence) (result V, ok bool) {
	useFunc := r.fnSeq > 0 && (r.valueSeq == 0 || (precedence == LatestWins && r.fnSeq > r.valueSeq))
	switch {
	case useFunc:
		return r.fn(arg), true
	case r.valueSeq > 0:
		return r.value, true
	}
	return result, false
}

// resolve records the call and picks the response for arg.
//
// Conditional rules are tried in registration order, and a matching rule with nothing configured is skipped.
// Then the unconditional function and value. ok is false if nothing is stubbed.
func (c *Call[A, V]) resolve(arg A) (result V, ok bool) {
	c.capture(arg)

	for _, r := range c.rules {
		if r.configured() && r.predicate(arg) {
			return r.respond(arg, c.opts.precedence)
		}
	}
	return c.fallback.respond(arg, c.opts.precedence)
}
