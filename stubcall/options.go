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

//T is compatible with builtin testing.T
type T interface {
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
	Helper()
}

/*
Precedence decides which of a fixed value and a response function wins when both are configured
at the same level (the unconditional fallbacks of a Call, or a single On() rule).
*/
type Precedence int

const (
	// LatestWins uses whichever of Returns or Performs was configured most recently.
	LatestWins Precedence = iota

	// ValueFirst always prefers a fixed value over a function, regardless of configuration order.
	ValueFirst
)

func (p Precedence) String() string {
	switch p {
	case LatestWins:
		return "latest wins"
	case ValueFirst:
		return "value first"
	default:
		return fmt.Sprintf("Precedence(%d)", int(p))
	}
}

type options struct {
	name       string
	trace      bool
	precedence Precedence
}

// Option configures a Call at construction
type Option func(*options)

// WithName sets the name used when tracing and reporting failures, typically the faked method name
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithTrace enables tracing of all received calls (via T.Logf)
func WithTrace() Option {
	return func(o *options) {
		o.trace = true
	}
}

// WithPrecedence overrides the default LatestWins precedence
func WithPrecedence(p Precedence) Option {
	return func(o *options) {
		o.precedence = p
	}
}

func newOptions(opts []Option) options {
	o := options{name: "call", precedence: LatestWins}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
