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

package gl_test

import (
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/gl"
)

func TestEntrypointTable(t *testing.T) {
	ctx := log.Testing(t)
	seen := map[string]bool{}
	for _, e := range gl.Entrypoints() {
		d := e.Describe()
		if !assert.For(ctx, "%d described", e).That(d).IsNotNil() {
			continue
		}
		assert.For(ctx, "%v id", e).That(d.ID).Equals(e)
		assert.For(ctx, "%v unique", e).ThatBoolean(seen[d.Name]).IsFalse()
		seen[d.Name] = true
		got, ok := gl.Lookup(d.Name)
		assert.For(ctx, "%v lookup", e).ThatBoolean(ok).IsTrue()
		assert.For(ctx, "%v lookup id", e).That(got).Equals(e)
		for _, p := range d.Params {
			switch p.Kind {
			case gl.ParamHandle, gl.ParamHandles, gl.ParamHandlesOut, gl.ParamLocation, gl.ParamContext:
				assert.For(ctx, "%v.%s namespace", e, p.Name).ThatBoolean(p.Namespace.IsValid()).IsTrue()
			}
		}
		if d.Flags.Has(gl.FlagGen) {
			assert.For(ctx, "%v gen output", e).That(d.Params[len(d.Params)-1].Kind).Equals(gl.ParamHandlesOut)
		}
	}
	assert.For(ctx, "count").ThatInteger(len(seen)).Equals(int(gl.EntrypointCount) - 1)
}

func TestDescriptor(t *testing.T) {
	ctx := log.Testing(t)
	d := gl.BindTexture.Describe()
	assert.For(ctx, "name").ThatString(d.Name).Equals("glBindTexture")
	assert.For(ctx, "target").ThatInteger(d.Target()).Equals(0)
	assert.For(ctx, "handle").ThatInteger(d.Handle()).Equals(1)
	assert.For(ctx, "namespace").That(d.Params[1].Namespace).Equals(gl.Textures)
	assert.For(ctx, "bind").ThatBoolean(d.Flags.Has(gl.FlagBind | gl.FlagListable)).IsTrue()

	loc := gl.ProgramUniform1i.Describe().Params[1]
	assert.For(ctx, "location kind").That(loc.Kind).Equals(gl.ParamLocation)
	assert.For(ctx, "location program").ThatInteger(loc.Program).Equals(0)
	assert.For(ctx, "current program").ThatInteger(gl.Uniform1i.Describe().Params[0].Program).Equals(-1)

	assert.For(ctx, "create return").That(gl.CreateProgram.Describe().ReturnNamespace).Equals(gl.Programs)
	assert.For(ctx, "plain return").That(gl.GetError.Describe().ReturnNamespace).Equals(gl.InvalidNamespace)
	assert.For(ctx, "glx").ThatBoolean(gl.XSwapBuffers.Describe().IsGLX()).IsTrue()
	assert.For(ctx, "draw").ThatBoolean(gl.DrawElements.Describe().IsDraw()).IsTrue()
	assert.For(ctx, "invalid").That(gl.InvalidEntrypoint.Describe()).IsNil()
	assert.For(ctx, "invalid name").ThatString(gl.Entrypoint(60000).String()).Equals("Entrypoint(60000)")
}

func TestEnumNames(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "texture").ThatString(gl.TEXTURE_2D.String()).Equals("GL_TEXTURE_2D")
	assert.For(ctx, "shared value").ThatString(gl.Enum(0).String()).Equals("GL_NONE")
	assert.For(ctx, "unknown").ThatString(gl.Enum(0x1234567).String()).Equals("GL_ENUM_0x1234567")
	b, ok := gl.TextureBinding(gl.TEXTURE_CUBE_MAP)
	assert.For(ctx, "binding").That(b).Equals(gl.TEXTURE_BINDING_CUBE_MAP)
	assert.For(ctx, "binding ok").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "binding ns").That(gl.BindingNamespaces[gl.CURRENT_PROGRAM]).Equals(gl.Programs)
}

func TestNamespaces(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "textures shared").ThatBoolean(gl.Textures.Shared()).IsTrue()
	assert.For(ctx, "framebuffers").ThatBoolean(gl.Framebuffers.Shared()).IsFalse()
	assert.For(ctx, "vertex arrays").ThatBoolean(gl.VertexArrays.Shared()).IsFalse()
	assert.For(ctx, "name").ThatString(gl.ProgramsARB.String()).Equals("arb_programs")
	assert.For(ctx, "invalid").ThatString(gl.InvalidNamespace.String()).Equals("invalid")
}

func TestValues(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "int").ThatInteger(int(gl.Int(-3).Int32())).Equals(-3)
	assert.For(ctx, "float").ThatFloat(gl.Float(1.5).Float()).Equals(1.5, 0)
	assert.For(ctx, "enum").That(gl.E(gl.TEXTURE_2D).Enum()).Equals(gl.TEXTURE_2D)
	assert.For(ctx, "null mem").ThatBoolean(gl.Mem(nil).IsNull()).IsTrue()
	assert.For(ctx, "null ptr").ThatBoolean(gl.Ptr(0).IsNull()).IsTrue()
	assert.For(ctx, "int not null").ThatBoolean(gl.Int(0).IsNull()).IsFalse()
	assert.For(ctx, "mem equal").ThatBoolean(gl.Mem([]byte{1, 2}).Equal(gl.Mem([]byte{1, 2}))).IsTrue()
	assert.For(ctx, "mem differ").ThatBoolean(gl.Mem([]byte{1, 2}).Equal(gl.Mem([]byte{1, 3}))).IsFalse()
	assert.For(ctx, "kind differ").ThatBoolean(gl.Int(1).Equal(gl.Uint(1))).IsFalse()
	assert.For(ctx, "string").ThatString(gl.Mem(make([]byte, 8)).String()).Equals("<8 bytes>")
}

func TestMemory(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "u32").That(gl.U32s(gl.PutU32s(1, 0xffffffff))).DeepEquals([]uint32{1, 0xffffffff})
	assert.For(ctx, "f32").That(gl.F32s(gl.PutF32s(0.5, -2))).DeepEquals([]float32{0.5, -2})
	assert.For(ctx, "u64").That(gl.U64s(gl.PutU64s(1 << 40))).DeepEquals([]uint64{1 << 40})
	assert.For(ctx, "rgba").ThatInteger(gl.ImageSize(3, 2, 1, gl.RGBA, gl.UNSIGNED_BYTE, 4)).Equals(24)
	assert.For(ctx, "rgb aligned").ThatInteger(gl.ImageSize(3, 2, 1, gl.RGB, gl.UNSIGNED_BYTE, 4)).Equals(24)
	assert.For(ctx, "rgb packed").ThatInteger(gl.ImageSize(3, 2, 1, gl.RGB, gl.UNSIGNED_BYTE, 1)).Equals(18)
	assert.For(ctx, "cstring").ThatString(gl.GoString(gl.CString("abc"))).Equals("abc")
}

func TestProcs(t *testing.T) {
	ctx := log.Testing(t)
	p := gl.NewProcs()
	_, err := p.Call(gl.Finish)
	assert.For(ctx, "unresolved").ThatError(err).HasCause(gl.ErrUnresolved)
	assert.For(ctx, "unresolved error").That(p.GetError()).Equals(gl.NO_ERROR)

	var got []gl.Value
	p.Set(gl.GenTextures, func(args []gl.Value) gl.Value {
		got = args
		copy(args[1].Mem, gl.PutU32s(5, 6))
		return gl.Void
	})
	assert.For(ctx, "resolved").ThatBoolean(p.Resolved(gl.GenTextures)).IsTrue()
	assert.For(ctx, "count").ThatInteger(p.Count()).Equals(1)
	assert.For(ctx, "gen").That(p.GenNames(gl.GenTextures, 2)).DeepEquals([]uint32{5, 6})
	assert.For(ctx, "gen count").ThatInteger(int(got[0].Int())).Equals(2)

	_, err = p.Call(gl.GenTextures, gl.Int(1))
	assert.For(ctx, "arity").ThatError(err).Failed()

	var deleted []uint32
	p.Set(gl.DeleteTextures, func(args []gl.Value) gl.Value {
		deleted = gl.U32s(args[1].Mem)
		return gl.Void
	})
	p.DeleteNames(gl.DeleteTextures, 5, 6)
	assert.For(ctx, "deleted").That(deleted).DeepEquals([]uint32{5, 6})

	p.Reset()
	assert.For(ctx, "reset").ThatInteger(p.Count()).Equals(0)
}
