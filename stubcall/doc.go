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

/*
Package stubcall is a toolkit for hand-written test doubles in Go.

A fake implementation of an interface holds one Call per method, and each method body delegates to it.
The Call records every invocation (a Spy) and resolves a pre-programmed response (a Stub).

See the canonical sources...

* http://xunitpatterns.com/Test%20Double.html

* https://martinfowler.com/articles/mocksArentStubs.html


Faking an interface

 type Calculator interface {
	Sum(left, right int) int
 }

 type Operands struct{ Left, Right int }

 type CalculatorFake struct {
	SumCall *stubcall.Call[Operands, int]
 }

 func NewCalculatorFake(t stubcall.T) *CalculatorFake {
	return &CalculatorFake{SumCall: stubcall.NewCall[Operands, int](t, stubcall.WithName("Sum"))}
 }

 func (f *CalculatorFake) Sum(left, right int) int {
	return f.SumCall.Invoke(Operands{left, right})
 }


Stubs

Returns stubs a fixed value, Performs stubs logic computed from the argument. When both are set the one
configured most recently wins, unless the Call was created WithPrecedence(ValueFirst).

On registers conditional stubs, tried in registration order before Returns and Performs.
The first matching stub that has been completed with Returns or Performs provides the response.

 fake.SumCall.Returns(10)
 fake.SumCall.
	On(func(o Operands) bool { return o.Left == 12 }).Returns(0).
	On(stubcall.Satisfies[Operands](HaveField("Right", 15))).Returns(7)

Invoke fatally fails the test when nothing is stubbed for an argument, InvokeOr returns a default instead.


Spies

 if !fake.SumCall.Called() { ... }
 fake.SumCall.CallsCount()
 fake.SumCall.CapturedArgument()
 fake.SumCall.Recorded().Matching(stubcall.Eql(Operands{1, 2})).Expect(stubcall.Once())


Asynchronous responses

ReactiveCall stubs a deferred Result and StreamCall a sequence of Events. Both resolve at invocation time
and return a Producer that replays the response: zero or more values, then exactly one terminal event
(completed, failed or cancelled). An unstubbed asynchronous call yields an empty completion rather than
failing the test.

Producers can be verified directly with the gomega matchers SendValue, SendValueAndComplete, Complete, FailWith
and BeCancelled.

 Expect(fake.FetchCall.Invoke("ball")).To(stubcall.SendValueAndComplete[Toy](HaveField("Name", "ball")))
*/
package stubcall
