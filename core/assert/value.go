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
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// OnValue is the result of calling That on an Assertion.
type OnValue struct {
	*Assertion
	value interface{}
}

// That starts an assertion on an arbitrary value.
func (a *Assertion) That(value interface{}) OnValue {
	return OnValue{Assertion: a, value: value}
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	switch r := reflect.ValueOf(v); r.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return r.IsNil()
	}
	return false
}

// IsNil asserts that the value is nil.
func (o OnValue) IsNil() bool {
	return o.compare(o.value, "==", "nil").test(isNil(o.value))
}

// IsNotNil asserts that the value is not nil.
func (o OnValue) IsNotNil() bool {
	return o.compare(o.value, "!=", "nil").test(!isNil(o.value))
}

// Equals asserts that the value is == expect.
func (o OnValue) Equals(expect interface{}) bool {
	return o.compare(o.value, "==", expect).test(o.value == expect)
}

// NotEquals asserts that the value is != test.
func (o OnValue) NotEquals(test interface{}) bool {
	return o.compare(o.value, "!=", test).test(o.value != test)
}

// DeepEquals asserts that the value and expect are equal according to
// cmp.Equal, printing a diff if they are not. Unexported fields are compared
// and nil and empty slices and maps are treated as equal.
func (o OnValue) DeepEquals(expect interface{}, opts ...cmp.Option) bool {
	return o.deepDiff(o.value, expect, opts...)
}

func (a *Assertion) deepDiff(got, expect interface{}, opts ...cmp.Option) bool {
	opts = append(opts, cmpopts.EquateEmpty(), cmp.Exporter(func(reflect.Type) bool { return true }))
	diff := cmp.Diff(expect, got, opts...)
	if diff == "" {
		return true
	}
	a.add("Diff", "(-expect +got)")
	a.out.WriteString(diff)
	a.commit()
	return false
}
