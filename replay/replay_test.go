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
	"time"

	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/ValveSoftware/vogl-sub002/gl/fakegl"
	"github.com/ValveSoftware/vogl-sub002/replay"
	"github.com/ValveSoftware/vogl-sub002/trace"
)

// builder records a trace packet by packet.
type builder struct {
	call    uint64
	current uint64
	packets []*trace.Packet
}

func (b *builder) add(p *trace.Packet) *trace.Packet {
	b.call++
	p.Call = b.call
	b.packets = append(b.packets, p)
	return p
}

func (b *builder) create(h, share uint64) {
	p := trace.NewCall(gl.XCreateContext, 0, 0, gl.Ptr(1), gl.Ptr(2), gl.Uint(share), gl.Int(1))
	p.Return = gl.Uint(h)
	b.add(p)
}

func (b *builder) makeCurrent(h uint64, w, ht int64) {
	p := trace.NewCall(gl.XMakeCurrent, 0, 0, gl.Ptr(1), gl.Ptr(3), gl.Uint(h))
	p.Return = gl.Int(1)
	if w > 0 && ht > 0 {
		p.KVM.SetInt(trace.StringKey(trace.KeyWinWidth), w)
		p.KVM.SetInt(trace.StringKey(trace.KeyWinHeight), ht)
	}
	b.add(p)
	b.current = h
}

func (b *builder) gl(e gl.Entrypoint, args ...gl.Value) *trace.Packet {
	return b.add(trace.NewCall(e, b.current, 0, args...))
}

func (b *builder) ret(v gl.Value, e gl.Entrypoint, args ...gl.Value) *trace.Packet {
	p := b.gl(e, args...)
	p.Return = v
	return p
}

func (b *builder) swap() {
	b.add(trace.NewCall(gl.XSwapBuffers, b.current, 0, gl.Ptr(1), gl.Ptr(3)))
}

func (b *builder) clear(r, g, bl, a float64) {
	b.gl(gl.ClearColor, gl.Float(r), gl.Float(g), gl.Float(bl), gl.Float(a))
	b.gl(gl.Clear, gl.Int(gl.COLOR_BUFFER_BIT))
}

// program records a linked program with one vertex shader.
func (b *builder) program(prog, shader uint64, source string) {
	b.ret(gl.Uint(shader), gl.CreateShader, gl.E(gl.VERTEX_SHADER))
	b.gl(gl.ShaderSource, gl.Uint(shader), gl.Int(1), gl.Mem(gl.JoinSources(source)), gl.Mem(nil))
	b.gl(gl.CompileShader, gl.Uint(shader))
	b.ret(gl.Uint(prog), gl.CreateProgram)
	b.gl(gl.AttachShader, gl.Uint(prog), gl.Uint(shader))
	b.gl(gl.LinkProgram, gl.Uint(prog))
}

func names(h ...uint32) gl.Value { return gl.Mem(gl.PutU32s(h...)) }

const vertexSource = "uniform vec4 tint;\nuniform mat4 mvp;\nvoid main() {}\n"

type harness struct {
	ctx context.Context
	d   *fakegl.Driver
	src *trace.MemorySource
	r   *replay.Replayer
}

func newHarness(ctx context.Context, b *builder, fopts fakegl.Options, opts replay.Options) *harness {
	d := fakegl.New(fopts)
	src := trace.NewMemorySource(b.packets...)
	return &harness{ctx: ctx, d: d, src: src, r: replay.New(ctx, d, src, nil, opts)}
}

// run replays the rest of the source. Fatal statuses fail the test.
func (h *harness) run() {
	for i := 0; i < 10000; i++ {
		switch status := h.r.ProcessNextPacket(h.ctx); {
		case status == replay.AtEOF:
			return
		case status.Fatal():
			assert.For(h.ctx, "status").That(status).NotEquals(replay.HardFailure)
			return
		}
	}
	assert.For(h.ctx, "trace ended").ThatBoolean(false).IsTrue()
}

func (h *harness) live(ctx uint64, ns gl.Namespace, handle uint64) uint64 {
	t := replay.TrackerOf(h.r, ctx, ns)
	if t == nil {
		return 0
	}
	live, _ := t.MapToReplay(handle)
	return live
}

func TestTextureRemap(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.gl(gl.GenTextures, gl.Int(1), names(7))
	b.gl(gl.BindTexture, gl.E(gl.TEXTURE_2D), gl.Uint(7))
	b.gl(gl.BindTexture, gl.E(gl.TEXTURE_2D), gl.Uint(0))
	b.gl(gl.BindTexture, gl.E(gl.TEXTURE_2D), gl.Uint(7))
	h := newHarness(ctx, b, fakegl.Options{NameBase: 3}, replay.DefaultOptions())
	h.run()

	tr := replay.TrackerOf(h.r, 1, gl.Textures)
	assert.For(ctx, "tracker").That(tr).IsNotNil()
	live, ok := tr.MapToReplay(7)
	assert.For(ctx, "mapped").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "live").That(live).Equals(uint64(3))
	assert.For(ctx, "target").That(tr.Target(7)).Equals(gl.TEXTURE_2D)
	assert.For(ctx, "bound").ThatInteger(int(h.d.Procs().GetInteger(gl.TEXTURE_BINDING_2D))).Equals(3)
	assert.For(ctx, "soft failures").That(h.r.Counters().SoftFailures).Equals(uint64(0))
}

func TestRebindAfterRecreate(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.gl(gl.GenTextures, gl.Int(1), names(7))
	b.gl(gl.BindTexture, gl.E(gl.TEXTURE_2D), gl.Uint(7))
	b.gl(gl.BindTexture, gl.E(gl.TEXTURE_2D), gl.Uint(7))
	b.gl(gl.DeleteTextures, gl.Int(1), names(7))
	b.gl(gl.GenTextures, gl.Int(1), names(7))
	b.gl(gl.BindTexture, gl.E(gl.TEXTURE_2D), gl.Uint(7))
	b.gl(gl.GenBuffers, gl.Int(1), names(30))
	b.gl(gl.BindBuffer, gl.E(gl.ARRAY_BUFFER), gl.Uint(30))
	b.gl(gl.BindBuffer, gl.E(gl.ELEMENT_ARRAY_BUFFER), gl.Uint(30))
	h := newHarness(ctx, b, fakegl.Options{NameBase: 3}, replay.DefaultOptions())
	h.run()

	live, _ := replay.TrackerOf(h.r, 1, gl.Textures).MapToReplay(7)
	assert.For(ctx, "recreated").That(live).Equals(uint64(4))
	assert.For(ctx, "bound").ThatInteger(int(h.d.Procs().GetInteger(gl.TEXTURE_BINDING_2D))).Equals(4)
	buffers := replay.TrackerOf(h.r, 1, gl.Buffers)
	assert.For(ctx, "buffer target").That(buffers.Target(30)).Equals(gl.ARRAY_BUFFER)
	assert.For(ctx, "element binding").ThatInteger(int(h.d.Procs().GetInteger(gl.ELEMENT_ARRAY_BUFFER_BINDING))).Equals(3)
	assert.For(ctx, "soft failures").That(h.r.Counters().SoftFailures).Equals(uint64(0))
}

func TestRemapRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.gl(gl.GenTextures, gl.Int(2), names(7, 9))
	b.gl(gl.GenBuffers, gl.Int(1), names(30))
	b.gl(gl.GenFramebuffers, gl.Int(1), names(5))
	h := newHarness(ctx, b, fakegl.Options{NameBase: 100}, replay.DefaultOptions())
	h.run()

	toReplay, toTrace := replay.RemappersOf(h.r, 1)
	for _, test := range []struct {
		ns gl.Namespace
		h  uint64
	}{
		{gl.Textures, 7},
		{gl.Textures, 9},
		{gl.Buffers, 30},
		{gl.Framebuffers, 5},
	} {
		live, err := toReplay.RemapHandle(test.ns, test.h)
		assert.For(ctx, "%v %d", test.ns, test.h).ThatError(err).Succeeded()
		back, err := toTrace.RemapHandle(test.ns, live)
		assert.For(ctx, "%v %d inverse", test.ns, test.h).ThatError(err).Succeeded()
		assert.For(ctx, "%v %d round trip", test.ns, test.h).That(back).Equals(test.h)
	}
	for _, ns := range []gl.Namespace{gl.Textures, gl.Buffers, gl.Programs, gl.Lists, gl.Syncs} {
		for _, m := range []replay.Remapper{toReplay, toTrace} {
			out, err := m.RemapHandle(ns, 0)
			assert.For(ctx, "%v zero", ns).ThatError(err).Succeeded()
			assert.For(ctx, "%v zero", ns).That(out).Equals(uint64(0))
		}
	}
	_, err := toReplay.RemapHandle(gl.Textures, 8)
	assert.For(ctx, "unmapped").ThatError(err).HasCause(replay.ErrUnmapped)
}

func TestDeleteBoundProgram(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.program(5, 4, vertexSource)
	b.gl(gl.UseProgram, gl.Uint(5))
	b.gl(gl.DeleteProgram, gl.Uint(5))
	h := newHarness(ctx, b, fakegl.Options{}, replay.DefaultOptions())
	h.run()

	tr := replay.TrackerOf(h.r, 1, gl.Programs)
	assert.For(ctx, "kept while bound").ThatBoolean(tr.Contains(5)).IsTrue()
	live := h.live(1, gl.Programs, 5)
	assert.For(ctx, "still a program").ThatBoolean(h.d.Procs().IsName(gl.IsProgram, live)).IsTrue()

	status := h.r.ProcessPacket(ctx, trace.NewCall(gl.UseProgram, 1, 100, gl.Uint(0)))
	assert.For(ctx, "unbind").That(status).Equals(replay.OK)
	assert.For(ctx, "released").ThatBoolean(tr.Contains(5)).IsFalse()
	assert.For(ctx, "no longer a program").ThatBoolean(h.d.Procs().IsName(gl.IsProgram, live)).IsFalse()
}

func TestWindowResize(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 1024, 768)
	b.clear(0, 0, 1, 1)
	h := newHarness(ctx, b, fakegl.Options{Width: 800, Height: 600, ResizeDelay: 2}, replay.DefaultOptions())

	assert.For(ctx, "create").That(h.r.ProcessNextPacket(ctx)).Equals(replay.OK)
	assert.For(ctx, "make current").That(h.r.ProcessNextPacket(ctx)).Equals(replay.ResizeWindow)
	assert.For(ctx, "deferred").That(h.d.Current()).Equals(gl.NativeContext(0))
	assert.For(ctx, "pending").ThatBoolean(h.r.HasPendingPackets()).IsTrue()
	waits := 0
	for h.r.ProcessPendingPackets(ctx) == replay.ResizeWindow {
		waits++
		assert.For(ctx, "still deferred").That(h.d.Current()).Equals(gl.NativeContext(0))
	}
	assert.For(ctx, "waits").ThatInteger(waits).Equals(2)
	w, ht := h.d.Dimensions()
	assert.For(ctx, "width").ThatInteger(w).Equals(1024)
	assert.For(ctx, "height").ThatInteger(ht).Equals(768)
	assert.For(ctx, "current").That(h.d.Current()).NotEquals(gl.NativeContext(0))
	h.run()
}

func TestWindowResizeTimeout(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 1024, 768)
	h := newHarness(ctx, b, fakegl.Options{Width: 800, Height: 600, ResizeDelay: -1}, replay.DefaultOptions())
	now := time.Unix(1000, 0)
	replay.SetClock(h.r, func() time.Time { return now }, func(d time.Duration) { now = now.Add(d) })

	h.r.ProcessNextPacket(ctx)
	assert.For(ctx, "make current").That(h.r.ProcessNextPacket(ctx)).Equals(replay.ResizeWindow)
	now = now.Add(4 * time.Second)
	assert.For(ctx, "before timeout").That(h.r.ProcessPendingPackets(ctx)).Equals(replay.ResizeWindow)
	now = now.Add(2 * time.Second)
	assert.For(ctx, "after timeout").That(h.r.ProcessPendingPackets(ctx)).Equals(replay.OK)
	w, _ := h.d.Dimensions()
	assert.For(ctx, "unchanged").ThatInteger(w).Equals(800)
	assert.For(ctx, "current").That(h.d.Current()).NotEquals(gl.NativeContext(0))
}

func TestLockWindowDimensions(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 1024, 768)
	opts := replay.DefaultOptions()
	opts.LockWindowDimensions = true
	h := newHarness(ctx, b, fakegl.Options{Width: 800, Height: 600}, opts)
	h.r.ProcessNextPacket(ctx)
	assert.For(ctx, "make current").That(h.r.ProcessNextPacket(ctx)).Equals(replay.OK)
	w, _ := h.d.Dimensions()
	assert.For(ctx, "unchanged").ThatInteger(w).Equals(800)
}

func TestPendingDrainIdempotent(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.gl(gl.GenTextures, gl.Int(1), names(7))
	b.gl(gl.BindTexture, gl.E(gl.TEXTURE_2D), gl.Uint(7))
	h := newHarness(ctx, b, fakegl.Options{}, replay.DefaultOptions())
	assert.For(ctx, "empty drain").That(h.r.ProcessPendingPackets(ctx)).Equals(replay.OK)
	h.run()

	s, err := h.r.SnapshotState(ctx)
	assert.For(ctx, "snapshot").ThatError(err).Succeeded()
	assert.For(ctx, "apply").ThatError(h.r.BeginApplyingSnapshot(ctx, s)).Succeeded()
	assert.For(ctx, "second apply").ThatError(h.r.BeginApplyingSnapshot(ctx, s)).HasCause(replay.ErrSnapshotPending)
	assert.For(ctx, "first drain").That(h.r.ProcessPendingPackets(ctx)).Equals(replay.OK)
	assert.For(ctx, "restores").That(h.r.Counters().Restores).Equals(uint64(1))
	assert.For(ctx, "second drain").That(h.r.ProcessPendingPackets(ctx)).Equals(replay.OK)
	assert.For(ctx, "restored once").That(h.r.Counters().Restores).Equals(uint64(1))
	assert.For(ctx, "nothing pending").ThatBoolean(h.r.HasPendingPackets()).IsFalse()
}

func TestGetErrorReportsDeferredErrors(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.gl(gl.GenTextures, gl.Int(1), names(7))
	b.gl(gl.BindTexture, gl.E(gl.TEXTURE_2D), gl.Uint(7))
	b.gl(gl.BindTexture, gl.E(gl.TEXTURE_3D), gl.Uint(7))
	b.ret(gl.E(gl.INVALID_OPERATION), gl.GetError)
	b.ret(gl.E(gl.NO_ERROR), gl.GetError)
	h := newHarness(ctx, b, fakegl.Options{}, replay.DefaultOptions())
	h.run()
	c := h.r.Counters()
	assert.For(ctx, "gl errors").That(c.GLErrors).Equals(uint64(1))
	assert.For(ctx, "divergences").That(c.Divergences).Equals(uint64(0))

	status := h.r.ProcessPacket(ctx, &trace.Packet{Entrypoint: gl.GetError, Context: 1, Call: 100, Return: gl.E(gl.INVALID_ENUM)})
	assert.For(ctx, "status").That(status).Equals(replay.OK)
	assert.For(ctx, "diverged").That(h.r.Counters().Divergences).Equals(uint64(1))
}

func TestFrames(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	for i := 0; i < 3; i++ {
		b.clear(float64(i), 0, 0, 1)
		b.swap()
	}
	opts := replay.DefaultOptions()
	opts.HashBackbuffer = true
	h := newHarness(ctx, b, fakegl.Options{}, opts)
	for i := 0; i < 3; i++ {
		assert.For(ctx, "frame %d", i).That(h.r.ProcessFrame(ctx)).Equals(replay.NextFrame)
	}
	assert.For(ctx, "eof").That(h.r.ProcessFrame(ctx)).Equals(replay.AtEOF)
	assert.For(ctx, "frame").That(h.r.Frame()).Equals(int64(3))
	assert.For(ctx, "swaps").ThatInteger(h.d.Swaps()).Equals(3)
	hashes := h.r.Hashes()
	assert.For(ctx, "hashes").ThatSlice(hashes).IsLength(3)
	assert.For(ctx, "distinct").That(hashes[0]).NotEquals(hashes[1])
}

func TestDisplayLists(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.ret(gl.Uint(40), gl.GenLists, gl.Int(1))
	b.gl(gl.NewList, gl.Uint(40), gl.E(gl.COMPILE))
	b.gl(gl.ClearColor, gl.Float(0), gl.Float(1), gl.Float(0), gl.Float(1))
	b.gl(gl.EndList)
	b.gl(gl.ClearColor, gl.Float(0), gl.Float(0), gl.Float(0), gl.Float(1))
	h := newHarness(ctx, b, fakegl.Options{NameBase: 200}, replay.DefaultOptions())
	h.run()

	s, err := h.r.SnapshotState(ctx)
	assert.For(ctx, "snapshot").ThatError(err).Succeeded()
	lists := s.Contexts[0].Shared.Lists
	assert.For(ctx, "lists").ThatSlice(lists).IsLength(1)
	assert.For(ctx, "list handle").That(lists[0].Handle).Equals(uint64(40))
	assert.For(ctx, "list packets").ThatSlice(lists[0].Packets).IsLength(1)

	assert.For(ctx, "apply").ThatError(h.r.BeginApplyingSnapshot(ctx, s)).Succeeded()
	assert.For(ctx, "restore").That(h.r.ProcessPendingPackets(ctx)).Equals(replay.OK)
	assert.For(ctx, "calls untouched").That(h.r.Counters().Calls).Equals(uint64(len(b.packets)))
	assert.For(ctx, "list mapped").ThatBoolean(replay.TrackerOf(h.r, 1, gl.Lists).Contains(40)).IsTrue()

	for _, p := range []*trace.Packet{
		trace.NewCall(gl.CallList, 1, 100, gl.Uint(40)),
		trace.NewCall(gl.Clear, 1, 101, gl.Int(gl.COLOR_BUFFER_BIT)),
	} {
		assert.For(ctx, "%v", p.Entrypoint).That(h.r.ProcessPacket(ctx, p)).Equals(replay.OK)
	}
	bb := h.d.Backbuffer()
	assert.For(ctx, "green").ThatSlice(bb[:4]).Equals([]byte{0, 255, 0, 255})
}

func TestExplicitFlushKeepsUnflushedBytes(t *testing.T) {
	ctx := log.Testing(t)
	mapData := trace.StringKey(trace.KeyMapData)
	initial := make([]byte, 16)
	for i := range initial {
		initial[i] = byte(i)
	}
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.gl(gl.GenBuffers, gl.Int(1), names(30))
	b.gl(gl.BindBuffer, gl.E(gl.ARRAY_BUFFER), gl.Uint(30))
	b.gl(gl.BufferData, gl.E(gl.ARRAY_BUFFER), gl.Int(16), gl.Mem(initial), gl.E(gl.DYNAMIC_DRAW))
	b.ret(gl.Ptr(0x1000), gl.MapBufferRange, gl.E(gl.ARRAY_BUFFER), gl.Int(4), gl.Int(8), gl.Int(gl.MAP_WRITE_BIT|gl.MAP_FLUSH_EXPLICIT_BIT))
	flush := b.gl(gl.FlushMappedBufferRange, gl.E(gl.ARRAY_BUFFER), gl.Int(0), gl.Int(2))
	flush.KVM.SetBytes(mapData, []byte{0xa0, 0xa1})
	unmap := b.ret(gl.Bool(true), gl.UnmapBuffer, gl.E(gl.ARRAY_BUFFER))
	unmap.KVM.SetBytes(mapData, []byte{0xee, 0xee, 0xee, 0xee, 0xee, 0xee, 0xee, 0xee})
	h := newHarness(ctx, b, fakegl.Options{NameBase: 3}, replay.DefaultOptions())
	h.run()

	got := make([]byte, 16)
	_, err := h.d.Procs().Call(gl.GetBufferSubData, gl.E(gl.ARRAY_BUFFER), gl.Int(0), gl.Int(16), gl.Mem(got))
	assert.For(ctx, "read").ThatError(err).Succeeded()
	assert.For(ctx, "contents").ThatSlice(got).Equals([]byte{0, 1, 2, 3, 0xee, 0xee, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})
	assert.For(ctx, "soft failures").That(h.r.Counters().SoftFailures).Equals(uint64(0))
}

const blockSource = "uniform ivec3 cell;\nuniform vec3 light;\nuniform mat3 normals;\n" +
	"uniform Lights { vec4 color; };\nvoid main() {}\n"

func TestDecodedCallsReplay(t *testing.T) {
	ctx := log.Testing(t)
	b := &builder{}
	b.create(1, 0)
	b.makeCurrent(1, 0, 0)
	b.gl(gl.StencilOp, gl.E(gl.KEEP), gl.E(gl.INCR), gl.E(gl.REPLACE))
	b.gl(gl.StencilMask, gl.Uint(0xf0))
	b.gl(gl.BlendFuncSeparate, gl.E(gl.SRC_ALPHA), gl.E(gl.ONE_MINUS_SRC_ALPHA), gl.E(gl.ONE), gl.E(gl.ZERO))
	b.gl(gl.BlendColor, gl.Float(0.5), gl.Float(0.5), gl.Float(0.5), gl.Float(1))
	b.gl(gl.PolygonOffset, gl.Float(1), gl.Float(2))
	b.gl(gl.DepthRange, gl.Float(0.25), gl.Float(0.75))
	b.program(5, 4, blockSource)
	b.ret(gl.Int(10), gl.GetUniformLocation, gl.Uint(5), gl.Mem(gl.CString("cell")))
	b.ret(gl.Int(11), gl.GetUniformLocation, gl.Uint(5), gl.Mem(gl.CString("light")))
	b.ret(gl.Int(12), gl.GetUniformLocation, gl.Uint(5), gl.Mem(gl.CString("normals")))
	b.gl(gl.UseProgram, gl.Uint(5))
	b.gl(gl.Uniform3i, gl.Int(10), gl.Int(1), gl.Int(2), gl.Int(3))
	b.gl(gl.Uniform3fv, gl.Int(11), gl.Int(1), gl.Mem(gl.PutF32s(0.5, 0.25, 1)))
	normals := []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
	b.gl(gl.UniformMatrix3fv, gl.Int(12), gl.Int(1), gl.Int(0), gl.Mem(gl.PutF32s(normals...)))
	b.ret(gl.Int(0), gl.GetUniformBlockIndex, gl.Uint(5), gl.Mem(gl.CString("Lights")))
	b.gl(gl.UniformBlockBinding, gl.Uint(5), gl.Int(0), gl.Int(2))
	b.gl(gl.GenTextures, gl.Int(2), names(7, 8))
	b.gl(gl.BindTexture, gl.E(gl.TEXTURE_3D), gl.Uint(7))
	b.gl(gl.TexImage3D, gl.E(gl.TEXTURE_3D), gl.Int(0), gl.Int(int64(gl.RGBA8)), gl.Int(2), gl.Int(2), gl.Int(2),
		gl.Int(0), gl.E(gl.RGBA), gl.E(gl.UNSIGNED_BYTE), gl.Mem(make([]byte, 32)))
	b.gl(gl.TexSubImage3D, gl.E(gl.TEXTURE_3D), gl.Int(0), gl.Int(1), gl.Int(1), gl.Int(1), gl.Int(1), gl.Int(1), gl.Int(1),
		gl.E(gl.RGBA), gl.E(gl.UNSIGNED_BYTE), gl.Mem([]byte{9, 8, 7, 6}))
	b.gl(gl.BindTexture, gl.E(gl.TEXTURE_2D), gl.Uint(8))
	b.gl(gl.CompressedTexImage2D, gl.E(gl.TEXTURE_2D), gl.Int(0), gl.E(gl.COMPRESSED_RGBA_S3TC_DXT1_EXT),
		gl.Int(4), gl.Int(4), gl.Int(0), gl.Int(8), gl.Mem(make([]byte, 8)))
	b.swap()

	buf := &bytes.Buffer{}
	w, err := trace.NewWriter(buf, trace.Header{Description: "decoded calls"})
	assert.For(ctx, "NewWriter").ThatError(err).Succeeded()
	for _, p := range b.packets {
		assert.For(ctx, "Write %v", p).ThatError(w.Write(p)).Succeeded()
	}
	assert.For(ctx, "Close").ThatError(w.Close()).Succeeded()
	reader, err := trace.NewReader(ctx, bytes.NewReader(buf.Bytes()))
	assert.For(ctx, "NewReader").ThatError(err).Succeeded()

	d := fakegl.New(fakegl.Options{NameBase: 20, LocationBase: 3})
	h := &harness{ctx: ctx, d: d, r: replay.New(ctx, d, reader, nil, replay.DefaultOptions())}
	h.run()

	counters := h.r.Counters()
	assert.For(ctx, "soft failures").That(counters.SoftFailures).Equals(uint64(0))
	assert.For(ctx, "gl errors").That(counters.GLErrors).Equals(uint64(0))
	assert.For(ctx, "divergences").That(counters.Divergences).Equals(uint64(0))

	p := d.Procs()
	assert.For(ctx, "stencil pass").ThatInteger(int(p.GetInteger(gl.STENCIL_PASS_DEPTH_PASS))).Equals(int(gl.REPLACE))
	assert.For(ctx, "stencil back fail").ThatInteger(int(p.GetInteger(gl.STENCIL_BACK_PASS_DEPTH_FAIL))).Equals(int(gl.INCR))
	assert.For(ctx, "stencil mask").ThatInteger(int(p.GetInteger(gl.STENCIL_WRITEMASK))).Equals(0xf0)
	assert.For(ctx, "blend alpha").ThatInteger(int(p.GetInteger(gl.BLEND_SRC_ALPHA))).Equals(int(gl.ONE))
	assert.For(ctx, "offset").ThatSlice(p.GetFloats(gl.POLYGON_OFFSET_UNITS, 1)).Equals([]float32{2})
	assert.For(ctx, "depth range").ThatSlice(p.GetFloats(gl.DEPTH_RANGE, 2)).Equals([]float32{0.25, 0.75})

	live := uint32(h.live(1, gl.Programs, 5))
	loc := func(name string) gl.Value { return gl.Int(int64(p.UniformLocation(live, name))) }
	assert.For(ctx, "cell").ThatSlice(p.QueryInts(gl.GetUniformiv, 3, gl.Uint(uint64(live)), loc("cell"))).
		Equals([]int32{1, 2, 3})
	assert.For(ctx, "light").ThatSlice(p.QueryFloats(gl.GetUniformfv, 3, gl.Uint(uint64(live)), loc("light"))).
		Equals([]float32{0.5, 0.25, 1})
	assert.For(ctx, "normals").ThatSlice(p.QueryFloats(gl.GetUniformfv, 9, gl.Uint(uint64(live)), loc("normals"))).
		Equals(normals)

	voxels := p.Query(gl.GetTexImage, 32, gl.E(gl.TEXTURE_3D), gl.Int(0), gl.E(gl.RGBA), gl.E(gl.UNSIGNED_BYTE))
	assert.For(ctx, "last voxel").ThatSlice(voxels[28:]).Equals([]byte{9, 8, 7, 6})
	width := p.QueryInts(gl.GetTexLevelParameteriv, 1, gl.E(gl.TEXTURE_2D), gl.Int(0), gl.E(gl.TEXTURE_WIDTH))
	assert.For(ctx, "compressed width").ThatSlice(width).Equals([]int32{4})
}
