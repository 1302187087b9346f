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

package keys_test

import (
	"context"
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/context/keys"
)

type keyTy string

func TestGetEmpty(t *testing.T) {
	if got := keys.Get(context.Background()); len(got) != 0 {
		t.Errorf("background context reported keys %v", got)
	}
}

func TestGetOrderAndOverride(t *testing.T) {
	ctx := context.Background()
	ctx = keys.WithValue(ctx, keyTy("a"), 1)
	ctx = keys.WithValue(ctx, keyTy("b"), 2)
	ctx = keys.WithValue(ctx, keyTy("a"), 3)
	got := keys.Get(ctx)
	if len(got) != 2 || got[0] != keyTy("a") || got[1] != keyTy("b") {
		t.Errorf("unexpected keys %v", got)
	}
	if v := ctx.Value(keyTy("a")); v != 3 {
		t.Errorf("override lost, got %v", v)
	}
}

func TestClone(t *testing.T) {
	from, cancel := context.WithCancel(context.Background())
	from = keys.WithValue(from, keyTy("tag"), "replay")
	cancel()
	ctx := keys.Clone(context.Background(), from)
	if ctx.Value(keyTy("tag")) != "replay" {
		t.Errorf("value not cloned")
	}
	if ctx.Err() != nil {
		t.Errorf("clone inherited cancellation")
	}
}
