// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package assert

import (
	"fmt"
	"math"
	"strings"
)

// OnInteger is the result of calling ThatInteger on an Assertion.
type OnInteger struct {
	*Assertion
	value int
}

// ThatInteger starts an assertion on an int.
func (a *Assertion) ThatInteger(value int) OnInteger { return OnInteger{a, value} }

// Equals asserts that the value is == expect.
func (o OnInteger) Equals(expect int) bool {
	return o.compare(o.value, "==", expect).test(o.value == expect)
}

// NotEquals asserts that the value is != test.
func (o OnInteger) NotEquals(test int) bool {
	return o.compare(o.value, "!=", test).test(o.value != test)
}

// IsAtLeast asserts that the value is >= min.
func (o OnInteger) IsAtLeast(min int) bool {
	return o.compare(o.value, ">=", min).test(o.value >= min)
}

// IsAtMost asserts that the value is <= max.
func (o OnInteger) IsAtMost(max int) bool {
	return o.compare(o.value, "<=", max).test(o.value <= max)
}

// OnFloat is the result of calling ThatFloat on an Assertion.
type OnFloat struct {
	*Assertion
	value float64
}

// ThatFloat starts an assertion on a float64.
func (a *Assertion) ThatFloat(value float64) OnFloat { return OnFloat{a, value} }

// Equals asserts that the value is within tolerance of expect.
func (o OnFloat) Equals(expect, tolerance float64) bool {
	return o.compare(o.value, "==", fmt.Sprintf("%v ± %v", expect, tolerance)).
		test(math.Abs(o.value-expect) <= tolerance)
}

// OnBoolean is the result of calling ThatBoolean on an Assertion.
type OnBoolean struct {
	*Assertion
	value bool
}

// ThatBoolean starts an assertion on a bool.
func (a *Assertion) ThatBoolean(value bool) OnBoolean { return OnBoolean{a, value} }

// Equals asserts that the value is expect.
func (o OnBoolean) Equals(expect bool) bool {
	return o.compare(o.value, "==", expect).test(o.value == expect)
}

// IsTrue asserts that the value is true.
func (o OnBoolean) IsTrue() bool { return o.Equals(true) }

// IsFalse asserts that the value is false.
func (o OnBoolean) IsFalse() bool { return o.Equals(false) }

// OnString is the result of calling ThatString on an Assertion.
type OnString struct {
	*Assertion
	value string
}

// ThatString starts an assertion on a string, or on the String() of a
// fmt.Stringer.
func (a *Assertion) ThatString(value interface{}) OnString {
	switch v := value.(type) {
	case string:
		return OnString{a, v}
	case fmt.Stringer:
		return OnString{a, v.String()}
	default:
		return OnString{a, fmt.Sprint(v)}
	}
}

// Equals asserts that the string is expect.
func (o OnString) Equals(expect string) bool {
	return o.compare(o.value, "==", expect).test(o.value == expect)
}

// Contains asserts that the string contains substr.
func (o OnString) Contains(substr string) bool {
	return o.compare(o.value, "contains", substr).test(strings.Contains(o.value, substr))
}

// DoesNotContain asserts that the string does not contain substr.
func (o OnString) DoesNotContain(substr string) bool {
	return o.compare(o.value, "does not contain", substr).test(!strings.Contains(o.value, substr))
}

// HasPrefix asserts that the string starts with prefix.
func (o OnString) HasPrefix(prefix string) bool {
	return o.compare(o.value, "starts with", prefix).test(strings.HasPrefix(o.value, prefix))
}
