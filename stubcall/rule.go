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

// rule is a conditional stub, registered via Call.On()
type rule[A, V any] struct {
	predicate Predicate[A]
	response[A, V]
}

/*
ReturnContext configures the response of a single conditional stub registered via Call.On().

It deliberately offers nothing but Returns and Performs, so every On() is completed by exactly one of them.
Both hand back the owning Call to continue configuring it.
*/
type ReturnContext[A, V any] struct {
	call *Call[A, V]
	rule *rule[A, V]
}

// Returns stubs value for calls whose argument satisfies the predicate
func (rc *ReturnContext[A, V]) Returns(value V) *Call[A, V] {
	rc.rule.setValue(value, rc.call.nextSeq())
	return rc.call
}

// Performs stubs logic for calls whose argument satisfies the predicate
func (rc *ReturnContext[A, V]) Performs(fn func(A) V) *Call[A, V] {
	rc.rule.setFunc(fn, rc.call.nextSeq())
	return rc.call
}
