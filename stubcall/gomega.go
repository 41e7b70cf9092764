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
	"github.com/onsi/gomega/types"
)

/*
Satisfies integrates gomega matchers as a Predicate.

 canJump.On(Satisfies[Point](HaveField("X", BeNumerically(">", 10)))).Returns(false)

A matcher that errors (eg because of an incompatible argument type) does not match.
*/
func Satisfies[A any](matcher types.GomegaMatcher) Predicate[A] {
	return func(arg A) bool {
		matched, err := matcher.Match(arg)
		return err == nil && matched
	}
}
