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

package replay_test

import (
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/ValveSoftware/vogl-sub002/replay"
)

func TestTrackerInsert(t *testing.T) {
	ctx := log.Testing(t)
	tr := replay.NewHandleTracker(gl.Textures)
	assert.For(ctx, "insert").ThatError(tr.Insert(7, 3, gl.TEXTURE_2D)).Succeeded()
	r, ok := tr.MapToReplay(7)
	assert.For(ctx, "found").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "replay").That(r).Equals(uint64(3))
	h, ok := tr.MapToTrace(3)
	assert.For(ctx, "inverse found").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "trace").That(h).Equals(uint64(7))
	assert.For(ctx, "target").That(tr.Target(7)).Equals(gl.TEXTURE_2D)
	assert.For(ctx, "inverse target").That(tr.TargetInv(3)).Equals(gl.TEXTURE_2D)
	assert.For(ctx, "missing target").That(tr.Target(8)).Equals(gl.NONE)

	assert.For(ctx, "trace conflict").ThatError(tr.Insert(7, 4, gl.NONE)).HasCause(replay.ErrHandleConflict)
	assert.For(ctx, "replay conflict").ThatError(tr.Insert(8, 3, gl.NONE)).HasCause(replay.ErrHandleConflict)
	assert.For(ctx, "same pair").ThatError(tr.Insert(7, 3, gl.NONE)).Succeeded()
	assert.For(ctx, "zero").ThatError(tr.Insert(0, 5, gl.NONE)).Equals(replay.ErrZeroHandle)
	assert.For(ctx, "len").ThatInteger(tr.Len()).Equals(1)
	assert.For(ctx, "check").ThatError(tr.Check()).Succeeded()
}

func TestTrackerTargets(t *testing.T) {
	ctx := log.Testing(t)
	tr := replay.NewHandleTracker(gl.Buffers)
	assert.For(ctx, "insert").ThatError(tr.Insert(1, 10, gl.NONE)).Succeeded()
	assert.For(ctx, "set").ThatError(tr.SetTarget(1, gl.ARRAY_BUFFER)).Succeeded()
	assert.For(ctx, "set none").ThatError(tr.SetTarget(1, gl.NONE)).Succeeded()
	assert.For(ctx, "kept").That(tr.Target(1)).Equals(gl.ARRAY_BUFFER)
	assert.For(ctx, "overwrite").ThatError(tr.SetTarget(1, gl.UNIFORM_BUFFER)).HasCause(replay.ErrTargetMismatch)
	assert.For(ctx, "not overwritten").That(tr.Target(1)).Equals(gl.ARRAY_BUFFER)

	assert.For(ctx, "conditional").ThatError(tr.ConditionalUpdate(1, 10, gl.UNIFORM_BUFFER)).Succeeded()
	assert.For(ctx, "conditional kept").That(tr.Target(1)).Equals(gl.ARRAY_BUFFER)
	assert.For(ctx, "update mismatch").ThatError(tr.Update(1, 11, gl.UNIFORM_BUFFER)).HasCause(replay.ErrTargetMismatch)
	r, _ := tr.MapToReplay(1)
	assert.For(ctx, "updated anyway").That(r).Equals(uint64(11))
	assert.For(ctx, "old inverse gone").ThatBoolean(tr.ContainsInv(10)).IsFalse()
	assert.For(ctx, "check").ThatError(tr.Check()).Succeeded()
}

func TestTrackerErase(t *testing.T) {
	ctx := log.Testing(t)
	tr := replay.NewHandleTracker(gl.Queries)
	tr.Insert(1, 100, gl.NONE)
	tr.Insert(2, 200, gl.NONE)
	assert.For(ctx, "erase").ThatBoolean(tr.Erase(1)).IsTrue()
	assert.For(ctx, "erase again").ThatBoolean(tr.Erase(1)).IsFalse()
	assert.For(ctx, "left").ThatInteger(tr.Len()).Equals(1)
	assert.For(ctx, "reuse replay").ThatError(tr.Insert(3, 100, gl.NONE)).Succeeded()
}

func TestTrackerRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	tr := replay.NewHandleTracker(gl.Renderbuffers)
	for i := uint64(1); i <= 50; i++ {
		assert.For(ctx, "insert %d", i).ThatError(tr.Insert(i, 1000-i*3, gl.RENDERBUFFER)).Succeeded()
	}
	seen := map[uint64]bool{}
	for _, h := range tr.Handles() {
		r, _ := tr.MapToReplay(h)
		back, ok := tr.MapToTrace(r)
		assert.For(ctx, "round trip %d", h).That(back).Equals(h)
		assert.For(ctx, "round trip %d ok", h).ThatBoolean(ok).IsTrue()
		assert.For(ctx, "unique %d", r).ThatBoolean(seen[r]).IsFalse()
		seen[r] = true
	}
	assert.For(ctx, "check").ThatError(tr.Check()).Succeeded()
	tr.Clear()
	assert.For(ctx, "cleared").ThatInteger(tr.Len()).Equals(0)
}

func TestTrackerTokens(t *testing.T) {
	ctx := log.Testing(t)
	tr := replay.NewHandleTracker(gl.Samplers)
	tr.Insert(5, 50, gl.NONE)
	tok, ok := tr.Token(5)
	assert.For(ctx, "token").ThatBoolean(ok).IsTrue()
	r, ok := tr.Resolve(tok)
	assert.For(ctx, "resolve").That(r).Equals(uint64(50))
	assert.For(ctx, "resolve ok").ThatBoolean(ok).IsTrue()

	tr.Update(5, 51, gl.NONE)
	r, _ = tr.Resolve(tok)
	assert.For(ctx, "stale token").That(r).Equals(uint64(51))
	tr.Erase(5)
	_, ok = tr.Resolve(tok)
	assert.For(ctx, "erased").ThatBoolean(ok).IsFalse()
	_, ok = tr.Token(6)
	assert.For(ctx, "missing").ThatBoolean(ok).IsFalse()

	other := replay.NewHandleTracker(gl.Samplers)
	other.Insert(7, 70, gl.NONE)
	tr.Insert(7, 71, gl.NONE)
	tok, _ = other.Token(7)
	assert.For(ctx, "token handle").That(tok.Handle()).Equals(uint64(7))
	r, _ = tr.Resolve(tok)
	assert.For(ctx, "foreign token").That(r).Equals(uint64(71))
}
