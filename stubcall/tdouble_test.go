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
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

type printf struct {
	format string
	args   []interface{}
}

func (p printf) String() string {
	return fmt.Sprintf(p.format, p.args...)
}

type fatal string

// TDouble is a T built from Calls, whose Fatalf panics so fatal failures can be recovered and verified
type TDouble struct {
	ErrorfCall *Call[printf, Void]
	FatalfCall *Call[printf, Void]
	LogfCall   *Call[printf, Void]
}

func NewTDouble(t *testing.T) *TDouble {
	d := &TDouble{
		ErrorfCall: NewCall[printf, Void](t, WithName("Errorf")),
		FatalfCall: NewCall[printf, Void](t, WithName("Fatalf")),
		LogfCall:   NewCall[printf, Void](t, WithName("Logf")),
	}
	d.ErrorfCall.Returns(Void{})
	d.LogfCall.Returns(Void{})
	d.FatalfCall.Performs(func(p printf) Void {
		panic(fatal(p.String()))
	})
	return d
}

func (d *TDouble) Errorf(format string, args ...interface{}) {
	d.ErrorfCall.Invoke(printf{format, args})
}

func (d *TDouble) Fatalf(format string, args ...interface{}) {
	d.FatalfCall.Invoke(printf{format, args})
}

func (d *TDouble) Logf(format string, args ...interface{}) {
	d.LogfCall.Invoke(printf{format, args})
}

func (d *TDouble) Helper() {}

func printfMatcher(re string) Predicate[printf] {
	exp := regexp.MustCompile(re)
	return func(p printf) bool {
		return exp.MatchString(p.String())
	}
}

// expectFatal runs f, which must fatally fail tDouble once with a message matching re
func expectFatal(t *testing.T, tDouble *TDouble, re string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if _, isFatal := r.(fatal); r != nil && !isFatal {
			panic(r)
		}
		require.NotNil(t, r, "expected a fatal failure matching /%s/", re)
		tDouble.FatalfCall.Recorded().Matching(printfMatcher(re), "/", re, "/").Expect(Once())
	}()
	f()
}
