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

package assert_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/fault"
	"github.com/pkg/errors"
)

// recorder captures assertion output instead of failing the test.
type recorder struct {
	errors []string
	logs   []string
}

func (r *recorder) Fatal(args ...interface{}) { r.errors = append(r.errors, fmt.Sprint(args...)) }
func (r *recorder) Error(args ...interface{}) { r.errors = append(r.errors, fmt.Sprint(args...)) }
func (r *recorder) Log(args ...interface{})   { r.logs = append(r.logs, fmt.Sprint(args...)) }

func expectPass(t *testing.T, name string, r *recorder, ok bool) {
	if !ok || len(r.errors) != 0 {
		t.Errorf("%s: expected pass, got %v", name, r.errors)
	}
}

func expectFail(t *testing.T, name string, r *recorder, ok bool, contains string) {
	if ok || len(r.errors) != 1 {
		t.Errorf("%s: expected one failure, got %v", name, r.errors)
		return
	}
	if !strings.Contains(r.errors[0], contains) {
		t.Errorf("%s: failure %q does not contain %q", name, r.errors[0], contains)
	}
}

func TestIntegers(t *testing.T) {
	r := &recorder{}
	expectPass(t, "equals", r, assert.For(r, "handle").ThatInteger(3).Equals(3))
	r = &recorder{}
	expectFail(t, "mismatch", r, assert.For(r, "handle").ThatInteger(3).Equals(7), "handle")
	r = &recorder{}
	expectPass(t, "at least", r, assert.For(r, "n").ThatInteger(5).IsAtLeast(5))
}

func TestStrings(t *testing.T) {
	r := &recorder{}
	expectPass(t, "contains", r, assert.For(r, "s").ThatString("glBindTexture").Contains("Bind"))
	r = &recorder{}
	expectFail(t, "equals", r, assert.For(r, "s").ThatString("a").Equals("b"), "`b`")
}

func TestErrors(t *testing.T) {
	const errMiss = fault.Const("miss")
	wrapped := errors.Wrap(errMiss, "remap")
	r := &recorder{}
	expectPass(t, "cause", r, assert.For(r, "err").ThatError(wrapped).HasCause(errMiss))
	r = &recorder{}
	expectPass(t, "failed", r, assert.For(r, "err").ThatError(wrapped).Failed())
	r = &recorder{}
	expectFail(t, "succeeded", r, assert.For(r, "err").ThatError(wrapped).Succeeded(), "remap")
}

func TestDeepEquals(t *testing.T) {
	type entry struct {
		trace, replay uint64
		target        uint32
	}
	r := &recorder{}
	expectPass(t, "deep", r, assert.For(r, "v").That([]entry{{7, 3, 1}}).DeepEquals([]entry{{7, 3, 1}}))
	r = &recorder{}
	expectFail(t, "deep diff", r, assert.For(r, "v").That([]entry{{7, 3, 1}}).DeepEquals([]entry{{7, 4, 1}}), "Diff")
	r = &recorder{}
	expectPass(t, "nil vs empty", r, assert.For(r, "v").ThatSlice([]int(nil)).Equals([]int{}))
}

func TestSlices(t *testing.T) {
	r := &recorder{}
	expectPass(t, "length", r, assert.For(r, "s").ThatSlice([]int{1, 2}).IsLength(2))
	r = &recorder{}
	expectFail(t, "empty", r, assert.For(r, "s").ThatSlice([]int{1}).IsEmpty(), "empty")
}

func TestNil(t *testing.T) {
	var p *recorder
	r := &recorder{}
	expectPass(t, "typed nil", r, assert.For(r, "p").That(p).IsNil())
	r = &recorder{}
	expectFail(t, "not nil", r, assert.For(r, "p").That(r).IsNil(), "nil")
}
