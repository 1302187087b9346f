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

package replay

import (
	"context"

	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/ValveSoftware/vogl-sub002/replay/snapshot"
)

// stateValue is a glGet value saved in snapshots and the call that sets it.
type stateValue struct {
	pname gl.Enum
	n     int
	set   func(r *Replayer, v []float32)
}

func ints(v []float32) []gl.Value {
	out := make([]gl.Value, len(v))
	for i, f := range v {
		out[i] = gl.Int(int64(f))
	}
	return out
}

func floats(v []float32) []gl.Value {
	out := make([]gl.Value, len(v))
	for i, f := range v {
		out[i] = gl.Float(float64(f))
	}
	return out
}

func enum(v []float32) gl.Value { return gl.E(gl.Enum(v[0])) }

func setter(e gl.Entrypoint, conv func([]float32) []gl.Value) func(r *Replayer, v []float32) {
	return func(r *Replayer, v []float32) { r.invoke(e, conv(v)...) }
}

func enumSetter(e gl.Entrypoint) func(r *Replayer, v []float32) {
	return func(r *Replayer, v []float32) { r.invoke(e, enum(v)) }
}

func pixelStore(pname gl.Enum) func(r *Replayer, v []float32) {
	return func(r *Replayer, v []float32) { r.invoke(gl.PixelStorei, gl.E(pname), gl.Int(int64(v[0]))) }
}

// stateValues are restored in order. BLEND_SRC and BLEND_DST are restored
// together after the table.
var stateValues = []stateValue{
	{gl.VIEWPORT, 4, setter(gl.Viewport, ints)},
	{gl.SCISSOR_BOX, 4, setter(gl.Scissor, ints)},
	{gl.COLOR_CLEAR_VALUE, 4, setter(gl.ClearColor, floats)},
	{gl.DEPTH_CLEAR_VALUE, 1, setter(gl.ClearDepth, floats)},
	{gl.STENCIL_CLEAR_VALUE, 1, setter(gl.ClearStencil, ints)},
	{gl.DEPTH_FUNC, 1, enumSetter(gl.DepthFunc)},
	{gl.DEPTH_WRITEMASK, 1, setter(gl.DepthMask, ints)},
	{gl.COLOR_WRITEMASK, 4, setter(gl.ColorMask, ints)},
	{gl.BLEND_SRC, 1, nil},
	{gl.BLEND_DST, 1, nil},
	{gl.BLEND_EQUATION, 1, enumSetter(gl.BlendEquation)},
	{gl.STENCIL_FUNC, 1, func(r *Replayer, v []float32) {
		r.invoke(gl.StencilFunc, enum(v), gl.Int(0), gl.Uint(0xffffffff))
	}},
	{gl.CULL_FACE_MODE, 1, enumSetter(gl.CullFace)},
	{gl.FRONT_FACE, 1, enumSetter(gl.FrontFace)},
	{gl.LINE_WIDTH, 1, setter(gl.LineWidth, floats)},
	{gl.POINT_SIZE, 1, setter(gl.PointSize, floats)},
	{gl.POLYGON_MODE, 2, func(r *Replayer, v []float32) {
		r.invoke(gl.PolygonMode, gl.E(gl.FRONT_AND_BACK), enum(v))
	}},
	{gl.SHADE_MODEL, 1, enumSetter(gl.ShadeModel)},
	{gl.UNPACK_ALIGNMENT, 1, pixelStore(gl.UNPACK_ALIGNMENT)},
	{gl.PACK_ALIGNMENT, 1, pixelStore(gl.PACK_ALIGNMENT)},
	{gl.UNPACK_ROW_LENGTH, 1, pixelStore(gl.UNPACK_ROW_LENGTH)},
	{gl.PACK_ROW_LENGTH, 1, pixelStore(gl.PACK_ROW_LENGTH)},
	{gl.DRAW_BUFFER, 1, enumSetter(gl.DrawBuffer)},
	{gl.READ_BUFFER, 1, enumSetter(gl.ReadBuffer)},
	{gl.CURRENT_COLOR, 4, setter(gl.Color4f, floats)},
	{gl.CURRENT_NORMAL, 3, setter(gl.Normal3f, floats)},
	{gl.CURRENT_TEXTURE_COORDS, 4, func(r *Replayer, v []float32) {
		r.invoke(gl.TexCoord2f, floats(v[:2])...)
	}},
	{gl.CURRENT_RASTER_POSITION, 4, func(r *Replayer, v []float32) {
		r.invoke(gl.RasterPos2i, ints(v[:2])...)
	}},
	{gl.LIST_BASE, 1, setter(gl.ListBase, ints)},
	{gl.LIGHT_MODEL_AMBIENT, 4, func(r *Replayer, v []float32) {
		r.invoke(gl.LightModelfv, gl.E(gl.LIGHT_MODEL_AMBIENT), gl.Mem(gl.PutF32s(v...)))
	}},
}

var capturedCaps = []gl.Enum{
	gl.DEPTH_TEST, gl.BLEND, gl.CULL_FACE, gl.SCISSOR_TEST, gl.STENCIL_TEST,
	gl.DITHER, gl.LIGHTING, gl.NORMALIZE, gl.COLOR_MATERIAL, gl.POLYGON_OFFSET_FILL,
	gl.FOG, gl.TEXTURE_1D, gl.TEXTURE_2D, gl.TEXTURE_3D, gl.TEXTURE_CUBE_MAP,
	gl.VERTEX_PROGRAM_ARB, gl.FRAGMENT_PROGRAM_ARB,
}

var matrixQueries = map[gl.Enum]gl.Enum{
	gl.MODELVIEW:  gl.MODELVIEW_MATRIX,
	gl.PROJECTION: gl.PROJECTION_MATRIX,
	gl.TEXTURE:    gl.TEXTURE_MATRIX,
}

var lightParams = []gl.Enum{gl.AMBIENT, gl.DIFFUSE, gl.SPECULAR, gl.POSITION}

var materialParams = map[gl.Enum]int{
	gl.AMBIENT:   4,
	gl.DIFFUSE:   4,
	gl.SPECULAR:  4,
	gl.EMISSION:  4,
	gl.SHININESS: 1,
}

var texEnvParams = map[gl.Enum]int{
	gl.TEXTURE_ENV_MODE:  1,
	gl.TEXTURE_ENV_COLOR: 4,
}

var arbTargets = []gl.Enum{gl.VERTEX_PROGRAM_ARB, gl.FRAGMENT_PROGRAM_ARB}

// mapped translates the handle h of ns with m. Unmapped handles are logged
// and translate to zero.
func mapped(ctx context.Context, m Remapper, ns gl.Namespace, h uint64) uint64 {
	out, err := m.RemapHandle(ns, h)
	if err != nil {
		log.W(ctx, "Dropping %v reference: %v", ns, err)
		return 0
	}
	return out
}

// binding returns the trace handle of the object bound to a glGet binding.
func (r *Replayer) binding(ctx context.Context, m Remapper, ns gl.Namespace, pname gl.Enum) uint64 {
	return mapped(ctx, m, ns, uint64(uint32(r.procs.GetInteger(pname))))
}

func isZero(v []float32) bool {
	for _, f := range v {
		if f != 0 {
			return false
		}
	}
	return true
}

// captureGeneral reads the non-object state of the current context.
func (r *Replayer) captureGeneral(ctx context.Context, m Remapper) *snapshot.General {
	p := r.procs
	g := &snapshot.General{
		Caps:           map[gl.Enum]bool{},
		Values:         map[gl.Enum][]float32{},
		Matrices:       map[gl.Enum][]float32{},
		Buffers:        map[gl.Enum]uint64{},
		ARBBindings:    map[gl.Enum]uint64{},
		CurrentAttribs: map[uint32][]float32{},
	}
	for _, e := range capturedCaps {
		g.Caps[e] = p.IsEnabled(e)
	}
	for _, v := range stateValues {
		g.Values[v.pname] = p.GetFloats(v.pname, v.n)
	}
	g.MatrixMode = gl.Enum(p.GetInteger(gl.MATRIX_MODE))
	for mode, q := range matrixQueries {
		g.Matrices[mode] = p.GetFloats(q, 16)
	}
	for i := int32(0); i < p.GetInteger(gl.MAX_LIGHTS); i++ {
		light := gl.LIGHT0 + gl.Enum(i)
		b := &snapshot.ParamBlock{Key: light, Params: map[gl.Enum][]float32{}}
		for _, pname := range lightParams {
			b.Params[pname] = p.QueryFloats(gl.GetLightfv, 4, gl.E(light), gl.E(pname))
		}
		g.Lights = append(g.Lights, b)
	}
	for _, face := range []gl.Enum{gl.FRONT, gl.BACK} {
		b := &snapshot.ParamBlock{Key: face, Params: map[gl.Enum][]float32{}}
		for pname, n := range materialParams {
			b.Params[pname] = p.QueryFloats(gl.GetMaterialfv, n, gl.E(face), gl.E(pname))
		}
		g.Materials = append(g.Materials, b)
	}

	g.ActiveTexture = gl.Enum(p.GetInteger(gl.ACTIVE_TEXTURE))
	g.ClientActiveTexture = gl.Enum(p.GetInteger(gl.CLIENT_ACTIVE_TEXTURE))
	for u := int32(0); u < p.GetInteger(gl.MAX_TEXTURE_UNITS); u++ {
		r.invoke(gl.ActiveTexture, gl.E(gl.TEXTURE0+gl.Enum(u)))
		tu := &snapshot.TextureUnit{Unit: uint32(u), Bindings: map[gl.Enum]uint64{}, Env: map[gl.Enum][]float32{}}
		for _, t := range gl.TextureTargets {
			b, _ := gl.TextureBinding(t)
			if h := r.binding(ctx, m, gl.Textures, b); h != 0 {
				tu.Bindings[t] = h
			}
		}
		tu.Sampler = r.binding(ctx, m, gl.Samplers, gl.SAMPLER_BINDING)
		for pname, n := range texEnvParams {
			tu.Env[pname] = p.QueryFloats(gl.GetTexEnvfv, n, gl.E(gl.TEXTURE_ENV), gl.E(pname))
		}
		g.TextureUnits = append(g.TextureUnits, tu)
	}
	r.invoke(gl.ActiveTexture, gl.E(g.ActiveTexture))

	for _, t := range gl.BufferTargets {
		b, _ := gl.BufferBinding(t)
		if h := r.binding(ctx, m, gl.Buffers, b); h != 0 {
			g.Buffers[t] = h
		}
	}
	g.DrawFramebuffer = r.binding(ctx, m, gl.Framebuffers, gl.FRAMEBUFFER_BINDING)
	g.ReadFramebuffer = r.binding(ctx, m, gl.Framebuffers, gl.READ_FRAMEBUFFER_BINDING)
	g.Renderbuffer = r.binding(ctx, m, gl.Renderbuffers, gl.RENDERBUFFER_BINDING)
	g.VertexArray = r.binding(ctx, m, gl.VertexArrays, gl.VERTEX_ARRAY_BINDING)
	g.Program = r.binding(ctx, m, gl.Programs, gl.CURRENT_PROGRAM)
	g.Pipeline = r.binding(ctx, m, gl.Pipelines, gl.PROGRAM_PIPELINE_BINDING)

	for _, t := range arbTargets {
		bound := p.QueryInts(gl.GetProgramivARB, 1, gl.E(t), gl.E(gl.PROGRAM_BINDING_ARB))[0]
		if h := mapped(ctx, m, gl.ProgramsARB, uint64(uint32(bound))); h != 0 {
			g.ARBBindings[t] = h
		}
		n := p.QueryInts(gl.GetProgramivARB, 1, gl.E(t), gl.E(gl.MAX_PROGRAM_ENV_PARAMETERS_ARB))[0]
		for i := int32(0); i < n; i++ {
			v := p.QueryFloats(gl.GetProgramEnvParameterfvARB, 4, gl.E(t), gl.Uint(uint64(i)))
			if !isZero(v) {
				g.ARBEnv = append(g.ARBEnv, &snapshot.ARBParam{Target: t, Index: uint32(i), Value: v})
			}
		}
	}
	for i := int32(0); i < p.GetInteger(gl.MAX_VERTEX_ATTRIBS); i++ {
		v := p.QueryFloats(gl.GetVertexAttribfv, 4, gl.Uint(uint64(i)), gl.E(gl.CURRENT_VERTEX_ATTRIB))
		if v[0] != 0 || v[1] != 0 || v[2] != 0 || v[3] != 1 {
			g.CurrentAttribs[uint32(i)] = v
		}
	}
	return g
}

// restoreGeneral applies g to the current context. Lights are set before
// the matrices so positions are not transformed twice.
func (r *Replayer) restoreGeneral(ctx context.Context, g *snapshot.General, m Remapper) {
	p := r.procs
	for e, on := range g.Caps {
		p.SetEnabled(e, on)
	}
	for _, v := range stateValues {
		if val, ok := g.Values[v.pname]; ok && v.set != nil && len(val) >= v.n {
			v.set(r, val)
		}
	}
	if src, dst := g.Values[gl.BLEND_SRC], g.Values[gl.BLEND_DST]; len(src) > 0 && len(dst) > 0 {
		r.invoke(gl.BlendFunc, enum(src), enum(dst))
	}
	for _, b := range g.Lights {
		for pname, v := range b.Params {
			r.invoke(gl.Lightfv, gl.E(b.Key), gl.E(pname), gl.Mem(gl.PutF32s(v...)))
		}
	}
	for _, b := range g.Materials {
		for pname, v := range b.Params {
			r.invoke(gl.Materialfv, gl.E(b.Key), gl.E(pname), gl.Mem(gl.PutF32s(v...)))
		}
	}
	for mode, mat := range g.Matrices {
		r.invoke(gl.MatrixMode, gl.E(mode))
		r.invoke(gl.LoadMatrixf, gl.Mem(gl.PutF32s(mat...)))
	}
	if g.MatrixMode != 0 {
		r.invoke(gl.MatrixMode, gl.E(g.MatrixMode))
	}

	for _, tu := range g.TextureUnits {
		r.invoke(gl.ActiveTexture, gl.E(gl.TEXTURE0+gl.Enum(tu.Unit)))
		for t, h := range tu.Bindings {
			r.invoke(gl.BindTexture, gl.E(t), gl.Uint(mapped(ctx, m, gl.Textures, h)))
		}
		if tu.Sampler != 0 {
			r.invoke(gl.BindSampler, gl.Uint(uint64(tu.Unit)), gl.Uint(mapped(ctx, m, gl.Samplers, tu.Sampler)))
		}
		for pname, v := range tu.Env {
			r.invoke(gl.TexEnvfv, gl.E(gl.TEXTURE_ENV), gl.E(pname), gl.Mem(gl.PutF32s(v...)))
		}
	}
	if g.ActiveTexture != 0 {
		r.invoke(gl.ActiveTexture, gl.E(g.ActiveTexture))
	}
	if g.ClientActiveTexture != 0 {
		r.invoke(gl.ClientActiveTexture, gl.E(g.ClientActiveTexture))
	}

	for _, t := range gl.BufferTargets {
		r.invoke(gl.BindBuffer, gl.E(t), gl.Uint(mapped(ctx, m, gl.Buffers, g.Buffers[t])))
	}
	r.invoke(gl.BindFramebuffer, gl.E(gl.DRAW_FRAMEBUFFER), gl.Uint(mapped(ctx, m, gl.Framebuffers, g.DrawFramebuffer)))
	r.invoke(gl.BindFramebuffer, gl.E(gl.READ_FRAMEBUFFER), gl.Uint(mapped(ctx, m, gl.Framebuffers, g.ReadFramebuffer)))
	r.invoke(gl.BindRenderbuffer, gl.E(gl.RENDERBUFFER), gl.Uint(mapped(ctx, m, gl.Renderbuffers, g.Renderbuffer)))
	r.invoke(gl.BindVertexArray, gl.Uint(mapped(ctx, m, gl.VertexArrays, g.VertexArray)))
	r.invoke(gl.UseProgram, gl.Uint(mapped(ctx, m, gl.Programs, g.Program)))
	if g.Pipeline != 0 {
		r.invoke(gl.BindProgramPipeline, gl.Uint(mapped(ctx, m, gl.Pipelines, g.Pipeline)))
	}
	for t, h := range g.ARBBindings {
		r.invoke(gl.BindProgramARB, gl.E(t), gl.Uint(mapped(ctx, m, gl.ProgramsARB, h)))
	}
	for _, e := range g.ARBEnv {
		args := append([]gl.Value{gl.E(e.Target), gl.Uint(uint64(e.Index))}, floats(e.Value)...)
		r.invoke(gl.ProgramEnvParameter4fARB, args...)
	}
	for i, v := range g.CurrentAttribs {
		r.invoke(gl.VertexAttrib4f, append([]gl.Value{gl.Uint(uint64(i))}, floats(v)...)...)
	}
}
