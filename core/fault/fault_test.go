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

package fault_test

import (
	"fmt"
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/fault"
)

const (
	errRemap = fault.Const("remap failed")
	errLink  = fault.Const("link failed")
)

func TestFrom(t *testing.T) {
	if err := fault.From(nil); err != nil {
		t.Errorf("From(nil) returned %v", err)
	}
	if err := fault.From(errRemap); err != errRemap {
		t.Errorf("From(errRemap) returned %v", err)
	}
	if err := fault.From(fmt.Errorf("ctx %d", 3)); err.Error() != "ctx 3" {
		t.Errorf("From changed a formatted error: %v", err)
	}
	if err := fault.From(42); err != fault.NotAnError {
		t.Errorf("From(42) returned %v", err)
	}
}

func TestList(t *testing.T) {
	l := fault.List{}
	if l.Err() != nil || l.First() != nil {
		t.Errorf("empty list reported an error")
	}
	l.Collect(nil)
	l.Collect(errRemap)
	if l.Err() != errRemap {
		t.Errorf("single entry list returned %v", l.Err())
	}
	l.Collect(errLink)
	if len(l) != 2 || l.First() != errRemap {
		t.Errorf("unexpected list %v", l)
	}
	if got, expect := l.Err().Error(), "remap failed; link failed"; got != expect {
		t.Errorf("got %q, expected %q", got, expect)
	}
}

func TestOne(t *testing.T) {
	o := fault.One{}
	if o.First() != nil {
		t.Errorf("empty One reported an error")
	}
	o.Collect(errRemap)
	o.Collect(errLink)
	if o.First() != errRemap {
		t.Errorf("One kept %v", o.First())
	}
}
