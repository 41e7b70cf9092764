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
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type testError struct {
	id int
}

func (e testError) Error() string {
	return "test error"
}

func newReactiveSum(t T, opts ...Option) *ReactiveCall[operands, int] {
	return NewReactiveCall[operands, int](t, append([]Option{WithName("sum")}, opts...)...)
}

func collect(p *Producer[int]) []Event[int] {
	return p.Collect(context.Background())
}

func TestReactiveCall_UnstubbedCompletesEmpty(t *testing.T) {
	sum := newReactiveSum(t)

	assert.Equal(t, []Event[int]{Completed[int]()}, collect(sum.Invoke(operands{1, 2})))
	assert.Equal(t, 1, sum.CallsCount())
}

func TestReactiveCall_Stubs(t *testing.T) {
	tests := []struct {
		name      string
		configure func(c *ReactiveCall[operands, int])
		expected  []Event[int]
	}{
		{"Value", func(c *ReactiveCall[operands, int]) {
			c.Returns(Success(12))
		}, []Event[int]{Next(12), Completed[int]()}},
		{"Succeeds", func(c *ReactiveCall[operands, int]) {
			c.Succeeds(12)
		}, []Event[int]{Next(12), Completed[int]()}},
		{"Failure", func(c *ReactiveCall[operands, int]) {
			c.Returns(Failure[int](testError{}))
		}, []Event[int]{Failed[int](testError{})}},
		{"Fails", func(c *ReactiveCall[operands, int]) {
			c.Fails(testError{})
		}, []Event[int]{Failed[int](testError{})}},
		{"Logic", func(c *ReactiveCall[operands, int]) {
			c.Performs(func(o operands) Result[int] { return Success(o.left - o.right) })
		}, []Event[int]{Next(3), Completed[int]()}},
		{"ValueAndLogic", func(c *ReactiveCall[operands, int]) {
			c.Succeeds(12)
			c.Performs(func(o operands) Result[int] { return Success(o.left + o.right) })
		}, []Event[int]{Next(27), Completed[int]()}},
		{"ValueAndFailureLogic", func(c *ReactiveCall[operands, int]) {
			c.Succeeds(12)
			c.Performs(func(operands) Result[int] { return Failure[int](testError{}) })
		}, []Event[int]{Failed[int](testError{})}},
		{"FailureValueAndFailureLogic", func(c *ReactiveCall[operands, int]) {
			c.Fails(testError{id: 0})
			c.Performs(func(operands) Result[int] { return Failure[int](testError{id: 1}) })
		}, []Event[int]{Failed[int](testError{id: 1})}},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			sum := newReactiveSum(t)
			test.configure(sum)
			assert.Equal(t, test.expected, collect(sum.Invoke(operands{15, 12})))
		})
	}
}

func TestReactiveCall_On(t *testing.T) {
	sum := newReactiveSum(t).Succeeds(10)
	sum.On(func(o operands) bool { return o.left == 12 }).Returns(Success(0))
	sum.On(func(o operands) bool { return o.right == 15 }).Returns(Success(7))
	sum.On(func(o operands) bool { return o.right == 42 }).Returns(Failure[int](testError{}))

	assert.Equal(t, []Event[int]{Next(0), Completed[int]()}, collect(sum.Invoke(operands{12, 2})))
	assert.Equal(t, []Event[int]{Next(7), Completed[int]()}, collect(sum.Invoke(operands{0, 15})))
	assert.Equal(t, []Event[int]{Failed[int](testError{})}, collect(sum.Invoke(operands{23, 42})))
	assert.Equal(t, []Event[int]{Next(10), Completed[int]()}, collect(sum.Invoke(operands{13, 2})))
}

func TestReactiveCall_InvokeOr(t *testing.T) {
	sum := newReactiveSum(t)

	value, err := sum.InvokeOr(operands{1, 2}, Success(99)).Await(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 99, value)
}

func TestReactiveCall_ResolvesAtInvocation(t *testing.T) {
	sum := newReactiveSum(t).Succeeds(1)

	p := sum.Invoke(operands{1, 2})
	sum.Succeeds(2)

	value, err := p.Await(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, value)
}

func TestReactiveCall_CancellationStillRecordsCall(t *testing.T) {
	sum := newReactiveSum(t).Succeeds(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sum.Invoke(operands{1, 2}).Await(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, sum.Called())
	assert.Equal(t, []operands{{1, 2}}, sum.CapturedArguments())
}

func TestReactiveCall_Trace(t *testing.T) {
	tDouble := NewTDouble(t)
	sum := newReactiveSum(tDouble, WithTrace())

	sum.Invoke(operands{1, 2})

	tDouble.LogfCall.Recorded().Matching(printfMatcher(`Called sum\(\{1 2\}\) => empty`)).Expect(Once())
}

func TestInvokeReactiveVoid(t *testing.T) {
	rest := NewReactiveCall[Void, bool](t).Succeeds(true)

	value, err := InvokeReactiveVoid(rest).Await(context.Background())
	assert.NoError(t, err)
	assert.True(t, value)
}

func TestStreamCall(t *testing.T) {
	tests := []struct {
		name      string
		configure func(c *StreamCall[string, int])
		expected  []Event[int]
	}{
		{"Unstubbed", func(*StreamCall[string, int]) {}, []Event[int]{Completed[int]()}},
		{"AppendsCompletion", func(c *StreamCall[string, int]) {
			c.Emits(Next(1), Next(2))
		}, []Event[int]{Next(1), Next(2), Completed[int]()}},
		{"KeepsFailure", func(c *StreamCall[string, int]) {
			c.Emits(Next(1), Failed[int](testError{}))
		}, []Event[int]{Next(1), Failed[int](testError{})}},
		{"KeepsCancellation", func(c *StreamCall[string, int]) {
			c.Emits(Next(1), Cancelled[int](), Next(2))
		}, []Event[int]{Next(1), Cancelled[int]()}},
		{"EmptyList", func(c *StreamCall[string, int]) {
			c.Emits()
		}, []Event[int]{Completed[int]()}},
		{"Conditional", func(c *StreamCall[string, int]) {
			c.Emits(Next(1))
			c.On(Eql("count")).Performs(func(in string) []Event[int] {
				return []Event[int]{Next(len(in))}
			})
		}, []Event[int]{Next(5), Completed[int]()}},
	}

	for _, tt := range tests {
		test := tt
		t.Run(test.name, func(t *testing.T) {
			stream := NewStreamCall[string, int](t)
			test.configure(stream)
			assert.Equal(t, test.expected, collect(stream.Invoke("count")))
			assert.Equal(t, 1, stream.CallsCount())
		})
	}
}

func TestStreamCall_InvokeOr(t *testing.T) {
	stream := NewStreamCall[string, int](t)

	events := collect(stream.InvokeOr("x", []Event[int]{Next(9)}))

	assert.Equal(t, []Event[int]{Next(9), Completed[int]()}, events)
}

func TestInvokeStreamVoid(t *testing.T) {
	patrol := NewStreamCall[Void, string](t).Emits(Next("north"), Next("south"))

	events := InvokeStreamVoid(patrol).Collect(context.Background())

	assert.Equal(t, []Event[string]{Next("north"), Next("south"), Completed[string]()}, events)
}
