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
	"bytes"
	"context"
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/ValveSoftware/vogl-sub002/gl/fakegl"
	"github.com/ValveSoftware/vogl-sub002/replay"
	"github.com/ValveSoftware/vogl-sub002/replay/snapshot"
	"github.com/ValveSoftware/vogl-sub002/trace"
)

func pixels(n int, seed byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = seed + byte(i)
	}
	return out
}

func texImage(b *builder, w, h int64, data []byte) {
	b.gl(gl.TexImage2D, gl.E(gl.TEXTURE_2D), gl.Int(0), gl.Int(int64(gl.RGBA8)), gl.Int(w), gl.Int(h), gl.Int(0),
		gl.E(gl.RGBA), gl.E(gl.UNSIGNED_BYTE), gl.Mem(data))
}

// restored applies s to a fresh replayer over an empty trace.
func restored(ctx context.Context, s *snapshot.Snapshot, fopts fakegl.Options) *harness {
	h := newHarness(ctx, &builder{}, fopts, replay.DefaultOptions())
	assert.For(ctx, "apply").ThatError(h.r.BeginApplyingSnapshot(ctx, s)).Succeeded()
	assert.For(ctx, "restore").That(h.r.ProcessPendingPackets(ctx)).Equals(replay.OK)
	return h
}

func capture(ctx context.Context, h *harness) *snapshot.Snapshot {
	s, err := h.r.SnapshotState(ctx)
	assert.For(ctx, "snapshot").ThatError(err).Succeeded()
	assert.For(ctx, "restorable").ThatBoolean(s.Restorable).IsTrue()
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.gl(gl.GenTextures, gl.Int(2), names(7, 9))
	b.gl(gl.BindTexture, gl.E(gl.TEXTURE_2D), gl.Uint(7))
	texImage(b, 2, 2, pixels(16, 1))
	b.gl(gl.BindTexture, gl.E(gl.TEXTURE_2D), gl.Uint(9))
	texImage(b, 4, 4, pixels(64, 100))
	b.gl(gl.GenFramebuffers, gl.Int(1), names(5))
	b.gl(gl.BindFramebuffer, gl.E(gl.FRAMEBUFFER), gl.Uint(5))
	b.gl(gl.FramebufferTexture2D, gl.E(gl.FRAMEBUFFER), gl.E(gl.COLOR_ATTACHMENT0), gl.E(gl.TEXTURE_2D), gl.Uint(9), gl.Int(0))
	b.gl(gl.BindFramebuffer, gl.E(gl.FRAMEBUFFER), gl.Uint(0))
	b.clear(1, 0, 0, 1)
	src := newHarness(ctx, b, fakegl.Options{NameBase: 3}, replay.DefaultOptions())
	src.run()
	before := capture(ctx, src)
	assert.For(ctx, "textures").ThatSlice(before.Contexts[0].Shared.Textures).IsLength(2)
	assert.For(ctx, "framebuffers").ThatSlice(before.Contexts[0].Framebuffers).IsLength(1)

	dst := restored(ctx, before, fakegl.Options{NameBase: 50})
	assert.For(ctx, "live textures").ThatInteger(dst.d.ObjectCount(gl.Textures)).Equals(2)
	assert.For(ctx, "live framebuffers").ThatInteger(dst.d.ObjectCount(gl.Framebuffers)).Equals(1)
	tr := replay.TrackerOf(dst.r, 1, gl.Textures)
	for _, h := range []uint64{7, 9} {
		assert.For(ctx, "texture %d", h).ThatBoolean(tr.Contains(h)).IsTrue()
		assert.For(ctx, "texture %d target", h).That(tr.Target(h)).Equals(gl.TEXTURE_2D)
	}
	assert.For(ctx, "backbuffer").ThatSlice(dst.d.Backbuffer()).Equals(src.d.Backbuffer())
	assert.For(ctx, "frame").That(dst.r.Frame()).Equals(before.Frame)

	after := capture(ctx, dst)
	assert.For(ctx, "shared").That(after.Contexts[0].Shared).DeepEquals(before.Contexts[0].Shared)
	assert.For(ctx, "framebuffer state").That(after.Contexts[0].Framebuffers).DeepEquals(before.Contexts[0].Framebuffers)
	assert.For(ctx, "restored backbuffer").ThatSlice(after.Backbuffer).Equals(before.Backbuffer)
}

func TestSnapshotMappedBuffer(t *testing.T) {
	ctx := log.Testing(t)
	data := pixels(16, 0)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.gl(gl.GenBuffers, gl.Int(1), names(30))
	b.gl(gl.BindBuffer, gl.E(gl.ARRAY_BUFFER), gl.Uint(30))
	b.gl(gl.BufferData, gl.E(gl.ARRAY_BUFFER), gl.Int(16), gl.Mem(data), gl.E(gl.DYNAMIC_DRAW))
	b.ret(gl.Ptr(0x1000), gl.MapBufferRange, gl.E(gl.ARRAY_BUFFER), gl.Int(4), gl.Int(8), gl.Int(gl.MAP_READ_BIT|gl.MAP_WRITE_BIT))
	src := newHarness(ctx, b, fakegl.Options{NameBase: 3}, replay.DefaultOptions())
	src.run()

	s := capture(ctx, src)
	mapped := s.Contexts[0].Shared.Mapped
	assert.For(ctx, "mapped").ThatSlice(mapped).IsLength(1)
	assert.For(ctx, "mapped buffer").That(mapped[0].Buffer).Equals(uint64(30))
	_, _, mem, ok := replay.MappedRegion(src.r, 1, 30)
	assert.For(ctx, "still mapped at source").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "source mapping").ThatSlice(mem).Equals(data[4:12])

	dst := restored(ctx, s, fakegl.Options{NameBase: 70})
	offset, length, mem, ok := replay.MappedRegion(dst.r, 1, 30)
	assert.For(ctx, "restored mapping").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "offset").That(offset).Equals(int64(4))
	assert.For(ctx, "length").That(length).Equals(int64(8))
	assert.For(ctx, "contents").ThatSlice(mem).Equals(data[4:12])
	isMapped := dst.d.Procs().QueryInts(gl.GetBufferParameteriv, 1, gl.E(gl.ARRAY_BUFFER), gl.E(gl.BUFFER_MAPPED))
	assert.For(ctx, "driver mapped").ThatInteger(int(isMapped[0])).Equals(1)
}

func TestSnapshotInvalidatingMap(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.gl(gl.GenBuffers, gl.Int(1), names(30))
	b.gl(gl.BindBuffer, gl.E(gl.ARRAY_BUFFER), gl.Uint(30))
	b.gl(gl.BufferData, gl.E(gl.ARRAY_BUFFER), gl.Int(16), gl.Mem(pixels(16, 9)), gl.E(gl.DYNAMIC_DRAW))
	b.ret(gl.Ptr(0x1000), gl.MapBufferRange, gl.E(gl.ARRAY_BUFFER), gl.Int(4), gl.Int(8), gl.Int(gl.MAP_WRITE_BIT|gl.MAP_INVALIDATE_RANGE_BIT))
	src := newHarness(ctx, b, fakegl.Options{NameBase: 3}, replay.DefaultOptions())
	src.run()

	_, _, mem, ok := replay.MappedRegion(src.r, 1, 30)
	assert.For(ctx, "mapped").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "invalidated").ThatSlice(mem).Equals(make([]byte, 8))
	written := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	copy(mem, written)

	s := capture(ctx, src)
	_, _, mem, _ = replay.MappedRegion(src.r, 1, 30)
	assert.For(ctx, "source mapping after capture").ThatSlice(mem).Equals(written)

	dst := restored(ctx, s, fakegl.Options{NameBase: 70})
	offset, length, mem, ok := replay.MappedRegion(dst.r, 1, 30)
	assert.For(ctx, "restored mapping").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "offset").That(offset).Equals(int64(4))
	assert.For(ctx, "length").That(length).Equals(int64(8))
	assert.For(ctx, "contents").ThatSlice(mem).Equals(written)
}

func TestSnapshotPrograms(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.program(5, 4, vertexSource)
	b.ret(gl.Int(10), gl.GetUniformLocation, gl.Uint(5), gl.Mem([]byte("tint\x00")))
	b.gl(gl.UseProgram, gl.Uint(5))
	b.gl(gl.Uniform4f, gl.Int(10), gl.Float(0.25), gl.Float(0.5), gl.Float(0.75), gl.Float(1))
	src := newHarness(ctx, b, fakegl.Options{LocationBase: 3}, replay.DefaultOptions())
	src.run()
	toReplay, _ := replay.RemappersOf(src.r, 1)
	srcLoc := toReplay.RemapLocation(ctx, 5, 10)
	assert.For(ctx, "source location").ThatInteger(int(srcLoc)).NotEquals(10)

	s := capture(ctx, src)
	programs := s.Contexts[0].Shared.Programs
	assert.For(ctx, "programs").ThatSlice(programs).IsLength(1)
	assert.For(ctx, "linked").ThatBoolean(programs[0].Linked).IsTrue()

	dst := restored(ctx, s, fakegl.Options{LocationBase: 40, NameBase: 9})
	assert.For(ctx, "bound program").That(replay.CurrentProgram(dst.r, 1)).Equals(uint64(5))
	toReplay, _ = replay.RemappersOf(dst.r, 1)
	live := dst.live(1, gl.Programs, 5)
	want := dst.d.Procs().UniformLocation(uint32(live), "tint")
	assert.For(ctx, "restored location").ThatInteger(int(toReplay.RemapLocation(ctx, 5, 10))).Equals(int(want))
	assert.For(ctx, "driver program").ThatInteger(int(dst.d.Procs().GetInteger(gl.CURRENT_PROGRAM))).Equals(int(live))

	after := capture(ctx, dst)
	assert.For(ctx, "program state").That(after.Contexts[0].Shared.Programs).DeepEquals(programs)
	assert.For(ctx, "shader state").That(after.Contexts[0].Shared.Shaders).DeepEquals(s.Contexts[0].Shared.Shaders)
}

func sharedPair() *builder {
	b := &builder{}
	b.create(1, 0)
	b.create(2, 1)
	b.makeCurrent(2, 0, 0)
	b.gl(gl.GenTextures, gl.Int(1), names(7))
	b.gl(gl.BindTexture, gl.E(gl.TEXTURE_2D), gl.Uint(7))
	texImage(b, 2, 2, pixels(16, 9))
	return b
}

func TestRestoreSharedOutOfOrder(t *testing.T) {
	ctx := log.Testing(t)
	src := newHarness(ctx, sharedPair(), fakegl.Options{}, replay.DefaultOptions())
	src.run()
	s := capture(ctx, src)
	assert.For(ctx, "contexts").ThatSlice(s.Contexts).IsLength(2)
	assert.For(ctx, "root first").That(s.Contexts[0].Handle).Equals(uint64(1))
	s.Contexts[0], s.Contexts[1] = s.Contexts[1], s.Contexts[0]

	dst := restored(ctx, s, fakegl.Options{NameBase: 20})
	assert.For(ctx, "shared tracker").That(replay.TrackerOf(dst.r, 2, gl.Textures)).Equals(replay.TrackerOf(dst.r, 1, gl.Textures))
	assert.For(ctx, "texture").ThatBoolean(replay.TrackerOf(dst.r, 1, gl.Textures).Contains(7)).IsTrue()
	assert.For(ctx, "live contexts").ThatSlice(dst.d.Contexts()).IsLength(2)
	assert.For(ctx, "current").That(dst.d.Current()).NotEquals(gl.NativeContext(0))
}

func TestRestoreMissingRoot(t *testing.T) {
	ctx := log.Testing(t)
	src := newHarness(ctx, sharedPair(), fakegl.Options{}, replay.DefaultOptions())
	src.run()
	s := capture(ctx, src)
	s.Contexts = s.Contexts[1:]

	quiet := log.PutFilter(ctx, log.SeverityFilter(log.Fatal))
	dst := newHarness(ctx, &builder{}, fakegl.Options{}, replay.DefaultOptions())
	assert.For(ctx, "apply").ThatError(dst.r.BeginApplyingSnapshot(quiet, s)).Succeeded()
	assert.For(ctx, "restore").That(dst.r.ProcessPendingPackets(quiet)).Equals(replay.HardFailure)
}

func TestRestoreNotRestorable(t *testing.T) {
	ctx := log.Testing(t)
	src := newHarness(ctx, sharedPair(), fakegl.Options{}, replay.DefaultOptions())
	src.run()
	s := capture(ctx, src)
	s.Restorable = false
	quiet := log.PutFilter(ctx, log.SeverityFilter(log.Fatal))
	err := src.r.BeginApplyingSnapshot(quiet, s)
	assert.For(ctx, "apply").ThatError(err).HasCause(replay.ErrNotRestorable)
}

func TestTrim(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.gl(gl.GenTextures, gl.Int(1), names(7))
	b.gl(gl.BindTexture, gl.E(gl.TEXTURE_2D), gl.Uint(7))
	texImage(b, 2, 2, pixels(16, 3))
	b.clear(1, 0, 0, 1)
	b.swap()
	b.clear(0, 1, 0, 1)
	b.swap()
	b.clear(0, 0, 1, 1)
	b.swap()
	src := newHarness(ctx, b, fakegl.Options{}, replay.DefaultOptions())
	assert.For(ctx, "first frame").That(src.r.ProcessFrame(ctx)).Equals(replay.NextFrame)

	buf := &bytes.Buffer{}
	blobs := trace.NewMemoryBlobs()
	assert.For(ctx, "trim").ThatError(src.r.WriteTrimFile(ctx, buf, blobs, 2)).Succeeded()
	src.run()
	assert.For(ctx, "source frames").That(src.r.Frame()).Equals(int64(3))

	reader, err := trace.NewReader(ctx, bytes.NewReader(buf.Bytes()))
	assert.For(ctx, "open").ThatError(err).Succeeded()
	d := fakegl.New(fakegl.Options{NameBase: 11})
	r := replay.New(ctx, d, reader, blobs, replay.DefaultOptions())
	frames := 0
	for status := r.ProcessFrame(ctx); status != replay.AtEOF; status = r.ProcessFrame(ctx) {
		assert.For(ctx, "trimmed frame %d", frames).That(status).Equals(replay.NextFrame)
		frames++
	}
	assert.For(ctx, "trimmed frames").ThatInteger(frames).Equals(2)
	assert.For(ctx, "frame").That(r.Frame()).Equals(int64(3))
	assert.For(ctx, "restores").That(r.Counters().Restores).Equals(uint64(1))
	assert.For(ctx, "texture").ThatBoolean(replay.TrackerOf(r, 1, gl.Textures).Contains(7)).IsTrue()
	assert.For(ctx, "backbuffer").ThatSlice(d.Backbuffer()).Equals(src.d.Backbuffer())
}

func TestTrimInsideFrame(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.clear(1, 0, 0, 1)
	h := newHarness(ctx, b, fakegl.Options{}, replay.DefaultOptions())
	h.run()
	quiet := log.PutFilter(ctx, log.SeverityFilter(log.Fatal))
	err := h.r.WriteTrimFile(quiet, &bytes.Buffer{}, trace.NewMemoryBlobs(), 1)
	assert.For(ctx, "trim").ThatError(err).Failed()
}

func TestSeekWithSnapshotCache(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	for i := 0; i < 4; i++ {
		b.clear(float64(i)/4, 0, 0, 1)
		b.swap()
	}
	opts := replay.DefaultOptions()
	opts.SnapshotCaching = true
	h := newHarness(ctx, b, fakegl.Options{}, opts)
	h.run()
	final := h.d.Backbuffer()
	assert.For(ctx, "cached").ThatInteger(h.r.Cache().Len()).Equals(4)

	assert.For(ctx, "seek").ThatError(h.r.SeekToFrame(ctx, 2)).Succeeded()
	assert.For(ctx, "frame").That(h.r.Frame()).Equals(int64(2))
	h.run()
	assert.For(ctx, "frame after").That(h.r.Frame()).Equals(int64(4))
	assert.For(ctx, "backbuffer").ThatSlice(h.d.Backbuffer()).Equals(final)
}

func TestRestorePendingDeletes(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.program(5, 4, vertexSource)
	b.gl(gl.UseProgram, gl.Uint(5))
	b.gl(gl.DeleteProgram, gl.Uint(5))
	b.gl(gl.DeleteShader, gl.Uint(4))
	b.ret(gl.Uint(6), gl.CreateShader, gl.E(gl.FRAGMENT_SHADER))
	src := newHarness(ctx, b, fakegl.Options{}, replay.DefaultOptions())
	src.run()
	s := capture(ctx, src)
	shared := s.Contexts[0].Shared
	assert.For(ctx, "program pending").ThatBoolean(shared.Programs[0].PendingDelete).IsTrue()

	clean := restored(ctx, s, fakegl.Options{NameBase: 40})
	live := clean.live(1, gl.Programs, 5)
	assert.For(ctx, "still a program").ThatBoolean(clean.d.Procs().IsName(gl.IsProgram, live)).IsTrue()
	assert.For(ctx, "still tracked").ThatBoolean(replay.TrackerOf(clean.r, 1, gl.Programs).Contains(4)).IsTrue()

	// Nothing holds shader 6, so deleting it again releases it.
	for _, sh := range shared.Shaders {
		if sh.Handle == 6 {
			sh.PendingDelete = true
		}
	}
	dst := restored(ctx, s, fakegl.Options{NameBase: 40})
	assert.For(ctx, "divergence").That(dst.r.Counters().Divergences).Equals(clean.r.Counters().Divergences + 1)
	assert.For(ctx, "released").ThatBoolean(replay.TrackerOf(dst.r, 1, gl.Programs).Contains(6)).IsFalse()
}
