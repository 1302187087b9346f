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

package app_test

import (
	"context"
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/app"
	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/log"
)

type fakeAction struct {
	Frames   int `help:"frames to run"`
	prepared []string
	args     []string
}

func (a *fakeAction) Prepare(ctx context.Context, args []string) error {
	a.prepared = args
	a.Frames = 7
	return nil
}

func (a *fakeAction) Run(ctx context.Context, args []string) error {
	a.args = args
	return nil
}

func TestInvoke(t *testing.T) {
	ctx := log.Testing(t)
	replay, trim := &fakeAction{}, &fakeAction{}
	root := &app.Verb{Name: "root"}
	root.Add(&app.Verb{Name: "replay", Action: replay})
	root.Add(&app.Verb{Name: "remote", Action: &fakeAction{}})
	root.Add(&app.Verb{Name: "trim", Action: trim})

	err := root.Invoke(ctx, []string{"rep", "-frames", "3", "a.trace"})
	assert.For(ctx, "invoke").ThatError(err).Succeeded()
	assert.For(ctx, "prepared").ThatSlice(replay.prepared).Equals([]string{"-frames", "3", "a.trace"})
	assert.For(ctx, "frames").ThatInteger(replay.Frames).Equals(3)
	assert.For(ctx, "args").ThatSlice(replay.args).Equals([]string{"a.trace"})

	assert.For(ctx, "defaults from prepare").ThatError(root.Invoke(ctx, []string{"trim"})).Succeeded()
	assert.For(ctx, "prepared frames").ThatInteger(trim.Frames).Equals(7)

	assert.For(ctx, "ambiguous").ThatError(root.Invoke(ctx, []string{"re"})).HasCause(app.ErrUsage)
	assert.For(ctx, "unknown").ThatError(root.Invoke(ctx, []string{"seek"})).HasCause(app.ErrUsage)
	assert.For(ctx, "bad flag").ThatError(root.Invoke(ctx, []string{"trim", "-nope"})).HasCause(app.ErrUsage)
	assert.For(ctx, "empty").ThatError(root.Invoke(ctx, nil)).HasCause(app.ErrUsage)
}

func TestDuplicateVerbPanics(t *testing.T) {
	ctx := log.Testing(t)
	root := &app.Verb{Name: "root"}
	root.Add(&app.Verb{Name: "replay"})
	defer func() {
		assert.For(ctx, "panic").That(recover()).IsNotNil()
	}()
	root.Add(&app.Verb{Name: "replay"})
}
