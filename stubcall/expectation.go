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

import "fmt"

// Expectation is the range of call counts a RecordedCalls is expected to have
type Expectation struct {
	atLeast   int
	atMost    int
	unbounded bool
}

// Met is true when count falls within the expected range
func (e Expectation) Met(count int) bool {
	if count < e.atLeast {
		return false
	}
	return e.unbounded || count <= e.atMost
}

func (e Expectation) String() string {
	switch {
	case e.unbounded:
		return fmt.Sprintf("at least %d", e.atLeast)
	case e.atMost == 0:
		return "never"
	case e.atLeast == e.atMost:
		return fmt.Sprintf("exactly %d", e.atMost)
	case e.atLeast <= 0:
		return fmt.Sprintf("at most %d", e.atMost)
	}
	return fmt.Sprintf("between %d and %d", e.atLeast, e.atMost)
}

// Exactly expects n calls
func Exactly(n int) Expectation {
	return Between(n, n)
}

// Once is Exactly(1)
func Once() Expectation {
	return Exactly(1)
}

// Twice is Exactly(2)
func Twice() Expectation {
	return Exactly(2)
}

// Never expects no calls
func Never() Expectation {
	return Exactly(0)
}

// AtLeast expects n or more calls
func AtLeast(n int) Expectation {
	return Expectation{atLeast: n, unbounded: true}
}

// AtMost expects no more than n calls
func AtMost(n int) Expectation {
	return Between(0, n)
}

// Between expects from atLeast to atMost calls inclusive
func Between(atLeast int, atMost int) Expectation {
	return Expectation{atLeast: atLeast, atMost: atMost}
}
