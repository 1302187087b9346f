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
	"strings"

	"github.com/pkg/errors"
)

// OnError is the result of calling ThatError on an Assertion.
type OnError struct {
	*Assertion
	err error
}

// ThatError starts an assertion on an error.
func (a *Assertion) ThatError(err error) OnError { return OnError{a, err} }

// Succeeded asserts that the error is nil.
func (o OnError) Succeeded() bool {
	return o.compare(o.err, "==", "success").test(o.err == nil)
}

// Failed asserts that the error is not nil.
func (o OnError) Failed() bool {
	return o.compare(o.err, "!=", "success").test(o.err != nil)
}

// Equals asserts that the error is expect.
func (o OnError) Equals(expect error) bool {
	return o.compare(o.err, "==", expect).test(o.err == expect)
}

// HasCause asserts that errors.Cause of the error is expect.
func (o OnError) HasCause(expect error) bool {
	cause := errors.Cause(o.err)
	return o.compare(cause, "cause ==", expect).test(cause == expect)
}

// HasMessage asserts that the error text contains msg.
func (o OnError) HasMessage(msg string) bool {
	text := ""
	if o.err != nil {
		text = o.err.Error()
	}
	return o.compare(text, "contains", msg).test(strings.Contains(text, msg))
}

// OnSlice is the result of calling ThatSlice on an Assertion.
type OnSlice struct {
	*Assertion
	slice interface{}
}

// ThatSlice starts an assertion on a slice or array.
func (a *Assertion) ThatSlice(slice interface{}) OnSlice { return OnSlice{a, slice} }

func (o OnSlice) length() int {
	if o.slice == nil {
		return 0
	}
	return reflect.ValueOf(o.slice).Len()
}

// IsEmpty asserts that the slice has no elements.
func (o OnSlice) IsEmpty() bool {
	return o.compare(o.slice, "is", "empty").test(o.length() == 0)
}

// IsNotEmpty asserts that the slice has at least one element.
func (o OnSlice) IsNotEmpty() bool {
	return o.compare(o.slice, "is not", "empty").test(o.length() != 0)
}

// IsLength asserts that the slice has exactly length elements.
func (o OnSlice) IsLength(length int) bool {
	return o.compare(o.length(), "length ==", length).test(o.length() == length)
}

// Equals asserts that the slice matches expected element by element.
func (o OnSlice) Equals(expected interface{}) bool {
	return o.deepDiff(o.slice, expected)
}
