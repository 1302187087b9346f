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

package fakegl_test

import (
	"context"
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/ValveSoftware/vogl-sub002/gl/fakegl"
)

type harness struct {
	ctx context.Context
	d   *fakegl.Driver
	p   *gl.Procs
}

func newHarness(t *testing.T, opts fakegl.Options) *harness {
	ctx := log.Testing(t)
	d := fakegl.New(opts)
	c, err := d.CreateContext(ctx, gl.ContextDesc{})
	assert.For(ctx, "create").ThatError(err).Succeeded()
	assert.For(ctx, "make current").ThatError(d.MakeCurrent(ctx, c)).Succeeded()
	return &harness{ctx: ctx, d: d, p: d.Procs()}
}

func (h *harness) call(e gl.Entrypoint, args ...gl.Value) gl.Value {
	v, err := h.p.Call(e, args...)
	assert.For(h.ctx, "%v", e).ThatError(err).Succeeded()
	return v
}

func u(v uint32) gl.Value { return gl.Uint(uint64(v)) }
func i(v int) gl.Value    { return gl.Int(int64(v)) }

func (h *harness) noError(what string) {
	assert.For(h.ctx, "%s: error", what).That(h.p.GetError()).Equals(gl.NO_ERROR)
}

func TestNames(t *testing.T) {
	h := newHarness(t, fakegl.Options{NameBase: 100})
	names := h.p.GenNames(gl.GenTextures, 3)
	assert.For(h.ctx, "names").ThatSlice(names).Equals([]uint32{100, 101, 102})
	assert.For(h.ctx, "not yet a texture").ThatBoolean(h.p.IsName(gl.IsTexture, 100)).IsFalse()
	h.call(gl.BindTexture, gl.E(gl.TEXTURE_2D), u(100))
	assert.For(h.ctx, "bound texture").ThatBoolean(h.p.IsName(gl.IsTexture, 100)).IsTrue()
	assert.For(h.ctx, "binding").ThatInteger(int(h.p.GetInteger(gl.TEXTURE_BINDING_2D))).Equals(100)
	h.call(gl.BindTexture, gl.E(gl.TEXTURE_3D), u(100))
	assert.For(h.ctx, "target mismatch").That(h.p.GetError()).Equals(gl.INVALID_OPERATION)
	h.p.DeleteNames(gl.DeleteTextures, 100)
	assert.For(h.ctx, "deleted").ThatBoolean(h.p.IsName(gl.IsTexture, 100)).IsFalse()
	assert.For(h.ctx, "unbound").ThatInteger(int(h.p.GetInteger(gl.TEXTURE_BINDING_2D))).Equals(0)
	assert.For(h.ctx, "reused").ThatInteger(int(h.p.GenName(gl.GenTextures))).Equals(103)
}

func TestSharedObjects(t *testing.T) {
	h := newHarness(t, fakegl.Options{})
	first := h.d.Current()
	second, err := h.d.CreateContext(h.ctx, gl.ContextDesc{Share: first})
	assert.For(h.ctx, "share").ThatError(err).Succeeded()
	buf := h.p.GenName(gl.GenBuffers)
	h.call(gl.BindBuffer, gl.E(gl.ARRAY_BUFFER), u(buf))
	fb := h.p.GenName(gl.GenFramebuffers)
	h.call(gl.BindFramebuffer, gl.E(gl.FRAMEBUFFER), u(fb))

	assert.For(h.ctx, "switch").ThatError(h.d.MakeCurrent(h.ctx, second)).Succeeded()
	assert.For(h.ctx, "buffer shared").ThatBoolean(h.p.IsName(gl.IsBuffer, uint64(buf))).IsTrue()
	assert.For(h.ctx, "framebuffer per context").ThatBoolean(h.p.IsName(gl.IsFramebuffer, uint64(fb))).IsFalse()
	assert.For(h.ctx, "binding per context").ThatInteger(int(h.p.GetInteger(gl.ARRAY_BUFFER_BINDING))).Equals(0)

	_, err = h.d.CreateContext(h.ctx, gl.ContextDesc{Share: 0x9999})
	assert.For(h.ctx, "bad share").ThatError(err).Failed()
	assert.For(h.ctx, "destroy").ThatError(h.d.DestroyContext(h.ctx, second)).Succeeded()
	assert.For(h.ctx, "no current").That(h.d.Current()).Equals(gl.NativeContext(0))
	assert.For(h.ctx, "contexts").ThatSlice(h.d.Contexts()).Equals([]gl.NativeContext{first})
}

func TestTextureImage(t *testing.T) {
	h := newHarness(t, fakegl.Options{})
	tex := h.p.GenName(gl.GenTextures)
	h.call(gl.BindTexture, gl.E(gl.TEXTURE_2D), u(tex))
	h.call(gl.PixelStorei, gl.E(gl.UNPACK_ALIGNMENT), i(1))
	pixels := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	h.call(gl.TexImage2D, gl.E(gl.TEXTURE_2D), i(0), i(int(gl.RGBA8)), i(2), i(2), i(0), gl.E(gl.RGBA), gl.E(gl.UNSIGNED_BYTE), gl.Mem(pixels))
	h.call(gl.TexParameteri, gl.E(gl.TEXTURE_2D), gl.E(gl.TEXTURE_MAG_FILTER), i(int(gl.NEAREST)))
	h.noError("upload")

	w := h.p.QueryInts(gl.GetTexLevelParameteriv, 1, gl.E(gl.TEXTURE_2D), i(0), gl.E(gl.TEXTURE_WIDTH))
	assert.For(h.ctx, "width").ThatInteger(int(w[0])).Equals(2)
	got := h.p.Query(gl.GetTexImage, 16, gl.E(gl.TEXTURE_2D), i(0), gl.E(gl.RGBA), gl.E(gl.UNSIGNED_BYTE))
	assert.For(h.ctx, "pixels").ThatSlice(got).Equals(pixels)
	mag := h.p.QueryInts(gl.GetTexParameteriv, 1, gl.E(gl.TEXTURE_2D), gl.E(gl.TEXTURE_MAG_FILTER))
	assert.For(h.ctx, "mag filter").That(gl.Enum(mag[0])).Equals(gl.NEAREST)
	wrap := h.p.QueryInts(gl.GetTexParameteriv, 1, gl.E(gl.TEXTURE_2D), gl.E(gl.TEXTURE_WRAP_S))
	assert.For(h.ctx, "default wrap").That(gl.Enum(wrap[0])).Equals(gl.REPEAT)

	h.call(gl.GetTexImage, gl.E(gl.TEXTURE_2D), i(3), gl.E(gl.RGBA), gl.E(gl.UNSIGNED_BYTE), gl.Mem(make([]byte, 16)))
	assert.For(h.ctx, "missing level").That(h.p.GetError()).Equals(gl.INVALID_VALUE)
}

func TestBufferMapping(t *testing.T) {
	h := newHarness(t, fakegl.Options{})
	buf := h.p.GenName(gl.GenBuffers)
	h.call(gl.BindBuffer, gl.E(gl.ARRAY_BUFFER), u(buf))
	h.call(gl.BufferData, gl.E(gl.ARRAY_BUFFER), i(8), gl.Mem([]byte{1, 2, 3, 4, 5, 6, 7, 8}), gl.E(gl.STATIC_DRAW))

	m := h.call(gl.MapBufferRange, gl.E(gl.ARRAY_BUFFER), i(2), i(4), i(gl.MAP_WRITE_BIT|gl.MAP_FLUSH_EXPLICIT_BIT))
	assert.For(h.ctx, "mapped length").ThatInteger(len(m.Mem)).Equals(4)
	copy(m.Mem, []byte{9, 9, 9, 9})
	mapped := h.p.QueryInts(gl.GetBufferParameteriv, 1, gl.E(gl.ARRAY_BUFFER), gl.E(gl.BUFFER_MAPPED))
	assert.For(h.ctx, "mapped").ThatInteger(int(mapped[0])).Equals(1)
	h.call(gl.FlushMappedBufferRange, gl.E(gl.ARRAY_BUFFER), i(0), i(4))
	h.noError("flush")
	h.call(gl.GetBufferSubData, gl.E(gl.ARRAY_BUFFER), i(0), i(8), gl.Mem(make([]byte, 8)))
	assert.For(h.ctx, "read while mapped").That(h.p.GetError()).Equals(gl.INVALID_OPERATION)

	assert.For(h.ctx, "unmap").ThatBoolean(h.call(gl.UnmapBuffer, gl.E(gl.ARRAY_BUFFER)).Bool()).IsTrue()
	got := h.p.Query(gl.GetBufferSubData, 8, gl.E(gl.ARRAY_BUFFER), i(0), i(8))
	assert.For(h.ctx, "contents").ThatSlice(got).Equals([]byte{1, 2, 9, 9, 9, 9, 7, 8})
	assert.For(h.ctx, "unmap twice").ThatBoolean(h.call(gl.UnmapBuffer, gl.E(gl.ARRAY_BUFFER)).Bool()).IsFalse()
	assert.For(h.ctx, "unmap error").That(h.p.GetError()).Equals(gl.INVALID_OPERATION)
}

const vertexShader = `
uniform mat4 mvp;
uniform vec4 tint;
uniform float weights[3];
in vec4 position;
void main() {}
`

func (h *harness) program(srcs ...string) (uint32, []uint32) {
	prog := h.call(gl.CreateProgram).Uint32()
	var shaders []uint32
	for _, src := range srcs {
		s := h.call(gl.CreateShader, gl.E(gl.VERTEX_SHADER)).Uint32()
		h.call(gl.ShaderSource, u(s), i(1), gl.Mem(gl.JoinSources(src)), gl.Mem(nil))
		h.call(gl.CompileShader, u(s))
		h.call(gl.AttachShader, u(prog), u(s))
		shaders = append(shaders, s)
	}
	h.call(gl.LinkProgram, u(prog))
	return prog, shaders
}

func TestProgram(t *testing.T) {
	h := newHarness(t, fakegl.Options{LocationBase: 10})
	prog, shaders := h.program(vertexShader)
	h.noError("build")
	status := h.p.QueryInts(gl.GetProgramiv, 1, u(prog), gl.E(gl.LINK_STATUS))
	assert.For(h.ctx, "linked").ThatInteger(int(status[0])).Equals(1)
	assert.For(h.ctx, "source").ThatString(h.p.ShaderSource(shaders[0])).Equals(vertexShader)
	assert.For(h.ctx, "attached").ThatSlice(h.p.AttachedShaders(prog)).Equals(shaders)
	assert.For(h.ctx, "uniforms").That(h.p.ActiveUniforms(prog)).DeepEquals([]gl.ActiveUniform{
		{Name: "mvp", Size: 1, Type: gl.FLOAT_MAT4},
		{Name: "tint", Size: 1, Type: gl.FLOAT_VEC4},
		{Name: "weights[0]", Size: 3, Type: gl.FLOAT},
	})
	assert.For(h.ctx, "mvp").ThatInteger(int(h.p.UniformLocation(prog, "mvp"))).Equals(10)
	assert.For(h.ctx, "tint").ThatInteger(int(h.p.UniformLocation(prog, "tint"))).Equals(11)
	assert.For(h.ctx, "weights[2]").ThatInteger(int(h.p.UniformLocation(prog, "weights[2]"))).Equals(14)
	assert.For(h.ctx, "unknown").ThatInteger(int(h.p.UniformLocation(prog, "nope"))).Equals(-1)
	attrib := h.call(gl.GetAttribLocation, u(prog), gl.Mem(gl.CString("position")))
	assert.For(h.ctx, "attrib").ThatInteger(int(attrib.Int())).Equals(0)

	h.call(gl.UseProgram, u(prog))
	h.call(gl.Uniform4f, i(11), gl.Float(1), gl.Float(2), gl.Float(3), gl.Float(4))
	h.call(gl.ProgramUniform1fv, u(prog), i(13), i(2), gl.Mem(gl.PutF32s(5, 6)))
	h.noError("set")
	tint := h.p.QueryFloats(gl.GetUniformfv, 4, u(prog), i(11))
	assert.For(h.ctx, "tint value").ThatSlice(tint).Equals([]float32{1, 2, 3, 4})
	w := h.p.QueryFloats(gl.GetUniformfv, 1, u(prog), i(14))
	assert.For(h.ctx, "weights[2] value").ThatSlice(w).Equals([]float32{6})

	// Deleting the current program only flags it.
	h.call(gl.DeleteShader, u(shaders[0]))
	h.call(gl.DeleteProgram, u(prog))
	assert.For(h.ctx, "program pending").ThatBoolean(h.p.IsName(gl.IsProgram, uint64(prog))).IsTrue()
	assert.For(h.ctx, "shader pending").ThatBoolean(h.p.IsName(gl.IsShader, uint64(shaders[0]))).IsTrue()
	deleted := h.p.QueryInts(gl.GetProgramiv, 1, u(prog), gl.E(gl.DELETE_STATUS))
	assert.For(h.ctx, "delete status").ThatInteger(int(deleted[0])).Equals(1)
	h.call(gl.UseProgram, u(0))
	assert.For(h.ctx, "program gone").ThatBoolean(h.p.IsName(gl.IsProgram, uint64(prog))).IsFalse()
	assert.For(h.ctx, "shader gone").ThatBoolean(h.p.IsName(gl.IsShader, uint64(shaders[0]))).IsFalse()
}

func TestCompileFailure(t *testing.T) {
	h := newHarness(t, fakegl.Options{})
	prog, shaders := h.program("uniform float x;")
	compiled := h.p.QueryInts(gl.GetShaderiv, 1, u(shaders[0]), gl.E(gl.COMPILE_STATUS))
	assert.For(h.ctx, "compiled").ThatInteger(int(compiled[0])).Equals(0)
	linked := h.p.QueryInts(gl.GetProgramiv, 1, u(prog), gl.E(gl.LINK_STATUS))
	assert.For(h.ctx, "linked").ThatInteger(int(linked[0])).Equals(0)
	h.call(gl.UseProgram, u(prog))
	assert.For(h.ctx, "use unlinked").That(h.p.GetError()).Equals(gl.INVALID_OPERATION)
}

func TestDisplayLists(t *testing.T) {
	h := newHarness(t, fakegl.Options{Width: 2, Height: 2})
	list := h.call(gl.GenLists, i(1)).Uint32()
	assert.For(h.ctx, "list exists").ThatBoolean(h.p.IsName(gl.IsList, uint64(list))).IsTrue()
	h.call(gl.NewList, u(list), gl.E(gl.COMPILE))
	h.call(gl.ClearColor, gl.Float(1), gl.Float(0), gl.Float(0), gl.Float(1))
	h.call(gl.Clear, i(gl.COLOR_BUFFER_BIT))
	h.call(gl.EndList)
	assert.For(h.ctx, "compile only").ThatSlice(h.d.Backbuffer()).Equals(make([]byte, 16))

	h.call(gl.CallList, u(list))
	red := []byte{255, 0, 0, 255, 255, 0, 0, 255, 255, 0, 0, 255, 255, 0, 0, 255}
	assert.For(h.ctx, "executed").ThatSlice(h.d.Backbuffer()).Equals(red)
	got := h.p.Query(gl.ReadPixels, 4, i(1), i(1), i(1), i(1), gl.E(gl.RGBA), gl.E(gl.UNSIGNED_BYTE))
	assert.For(h.ctx, "read").ThatSlice(got).Equals([]byte{255, 0, 0, 255})

	h.call(gl.DeleteLists, u(list), i(1))
	assert.For(h.ctx, "list deleted").ThatBoolean(h.p.IsName(gl.IsList, uint64(list))).IsFalse()
	h.call(gl.EndList)
	assert.For(h.ctx, "end without new").That(h.p.GetError()).Equals(gl.INVALID_OPERATION)
}

func TestSelection(t *testing.T) {
	h := newHarness(t, fakegl.Options{})
	h.call(gl.SelectBuffer, i(16), gl.Ptr(0))
	assert.For(h.ctx, "render").ThatInteger(int(h.call(gl.RenderMode, gl.E(gl.SELECT)).Int())).Equals(0)
	h.call(gl.InitNames)
	h.call(gl.PushName, i(7))
	h.call(gl.DrawArrays, gl.E(gl.TRIANGLES), i(0), i(3))
	h.call(gl.LoadName, i(8))
	h.call(gl.DrawArrays, gl.E(gl.TRIANGLES), i(0), i(3))
	assert.For(h.ctx, "hits").ThatInteger(int(h.call(gl.RenderMode, gl.E(gl.RENDER)).Int())).Equals(2)
	h.call(gl.PopName)
	h.call(gl.PopName)
	assert.For(h.ctx, "underflow").That(h.p.GetError()).Equals(gl.STACK_UNDERFLOW)
}

func TestClientArrays(t *testing.T) {
	h := newHarness(t, fakegl.Options{})
	data := gl.PutF32s(0, 0, 1, 0, 0, 1)
	h.call(gl.VertexAttribPointer, i(2), i(2), gl.E(gl.FLOAT), i(0), i(0), gl.Mem(data))
	h.call(gl.EnableVertexAttribArray, i(2))
	h.call(gl.DrawArrays, gl.E(gl.TRIANGLES), i(0), i(3))
	assert.For(h.ctx, "fetched").ThatSlice(h.d.Fetched()[2]).Equals(data)
	ptr := h.p.Query(gl.GetVertexAttribPointerv, 8, i(2), gl.E(gl.VERTEX_ATTRIB_ARRAY_POINTER))
	assert.For(h.ctx, "client pointer").ThatSlice(gl.U64s(ptr)).Equals([]uint64{0})
}

func TestResize(t *testing.T) {
	h := newHarness(t, fakegl.Options{Width: 8, Height: 8, ResizeDelay: 2})
	h.d.RequestResize(h.ctx, 16, 4)
	h.d.Pump(h.ctx)
	w, _ := h.d.Dimensions()
	assert.For(h.ctx, "pending").ThatInteger(w).Equals(8)
	h.d.Pump(h.ctx)
	h.d.Pump(h.ctx)
	w, ht := h.d.Dimensions()
	assert.For(h.ctx, "width").ThatInteger(w).Equals(16)
	assert.For(h.ctx, "height").ThatInteger(ht).Equals(4)
	assert.For(h.ctx, "backbuffer").ThatInteger(len(h.d.Backbuffer())).Equals(16 * 4 * 4)

	fixed := fakegl.New(fakegl.Options{Width: 8, Height: 8, ResizeDelay: -1})
	fixed.RequestResize(h.ctx, 16, 16)
	fixed.Pump(h.ctx)
	w, _ = fixed.Dimensions()
	assert.For(h.ctx, "locked").ThatInteger(w).Equals(8)
}

func TestSyncs(t *testing.T) {
	h := newHarness(t, fakegl.Options{})
	s := h.call(gl.FenceSync, gl.E(gl.SYNC_GPU_COMMANDS_COMPLETE), i(0)).Uint()
	assert.For(h.ctx, "sync").ThatBoolean(h.p.IsName(gl.IsSync, s)).IsTrue()
	assert.For(h.ctx, "status").That(h.p.SyncStatus(s)).Equals(gl.SIGNALED)
	h.call(gl.DeleteSync, gl.Uint(s))
	assert.For(h.ctx, "deleted").ThatBoolean(h.p.IsName(gl.IsSync, s)).IsFalse()
}
