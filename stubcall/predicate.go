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
	"github.com/stretchr/testify/assert"
)

// A Predicate selects call arguments, eg for a conditional stub via On()
type Predicate[A any] func(arg A) bool

// Any matches every argument
func Any[A any]() Predicate[A] {
	return func(A) bool { return true }
}

// Eql matches an argument equal to v, with the same equality rules as testify's assert.Equal
func Eql[A any](v A) Predicate[A] {
	return func(arg A) bool {
		return assert.ObjectsAreEqual(v, arg)
	}
}

// Not negates p
func Not[A any](p Predicate[A]) Predicate[A] {
	return func(arg A) bool {
		return !p(arg)
	}
}

// AllOf matches if all the predicates match (returns true for no predicates)
func AllOf[A any](predicates ...Predicate[A]) Predicate[A] {
	return func(arg A) bool {
		for _, p := range predicates {
			if !p(arg) {
				return false
			}
		}
		return true
	}
}

// AnyOf matches if any one of predicates match (returns false for no predicates)
func AnyOf[A any](predicates ...Predicate[A]) Predicate[A] {
	return func(arg A) bool {
		for _, p := range predicates {
			if p(arg) {
				return true
			}
		}
		return false
	}
}
