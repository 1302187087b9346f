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

package fakegl

import (
	"math"

	"github.com/ValveSoftware/vogl-sub002/gl"
)

func (d *Driver) registerState(p map[gl.Entrypoint]proc) {
	p[gl.GetError] = func(c *glContext, a []gl.Value) gl.Value {
		if len(c.errors) == 0 {
			return gl.E(gl.NO_ERROR)
		}
		err := c.errors[0]
		c.errors = c.errors[1:]
		return gl.E(err)
	}
	p[gl.GetIntegerv] = func(c *glContext, a []gl.Value) gl.Value {
		v, ok := d.get(c, a[0].Enum())
		if !ok {
			return c.fail(gl.INVALID_ENUM)
		}
		out := make([]int32, len(v))
		for i, f := range v {
			out[i] = int32(f)
		}
		put32(a[1], out...)
		return gl.Void
	}
	p[gl.GetFloatv] = func(c *glContext, a []gl.Value) gl.Value {
		v, ok := d.get(c, a[0].Enum())
		if !ok {
			return c.fail(gl.INVALID_ENUM)
		}
		putF32(a[1], v...)
		return gl.Void
	}
	p[gl.GetBooleanv] = func(c *glContext, a []gl.Value) gl.Value {
		v, ok := d.get(c, a[0].Enum())
		if !ok {
			return c.fail(gl.INVALID_ENUM)
		}
		for i := 0; i < len(v) && i < len(a[1].Mem); i++ {
			if v[i] != 0 {
				a[1].Mem[i] = 1
			} else {
				a[1].Mem[i] = 0
			}
		}
		return gl.Void
	}
	p[gl.GetString] = func(c *glContext, a []gl.Value) gl.Value {
		switch a[0].Enum() {
		case gl.VENDOR:
			return gl.Mem(gl.CString("fakegl"))
		case gl.RENDERER:
			return gl.Mem(gl.CString("in-memory"))
		case gl.VERSION:
			return gl.Mem(gl.CString("4.5 fakegl"))
		}
		return gl.Mem(nil)
	}
	p[gl.IsEnabled] = func(c *glContext, a []gl.Value) gl.Value {
		e := a[0].Enum()
		if at, ok := c.vao().fixed[e]; ok {
			return gl.Bool(at.enabled)
		}
		return gl.Bool(c.caps[e])
	}
	p[gl.Enable] = func(c *glContext, a []gl.Value) gl.Value {
		c.caps[a[0].Enum()] = true
		return gl.Void
	}
	p[gl.Disable] = func(c *glContext, a []gl.Value) gl.Value {
		delete(c.caps, a[0].Enum())
		return gl.Void
	}
	p[gl.Finish] = func(c *glContext, a []gl.Value) gl.Value { return gl.Void }
	p[gl.Flush] = p[gl.Finish]

	set := func(pname gl.Enum) proc {
		return func(c *glContext, a []gl.Value) gl.Value {
			v := make([]float32, len(a))
			for i, x := range a {
				v[i] = float32(x.Float())
			}
			c.state[pname] = v
			return gl.Void
		}
	}
	p[gl.Viewport] = set(gl.VIEWPORT)
	p[gl.Scissor] = set(gl.SCISSOR_BOX)
	p[gl.ClearColor] = set(gl.COLOR_CLEAR_VALUE)
	p[gl.ClearDepth] = set(gl.DEPTH_CLEAR_VALUE)
	p[gl.ClearStencil] = set(gl.STENCIL_CLEAR_VALUE)
	p[gl.DepthFunc] = set(gl.DEPTH_FUNC)
	p[gl.DepthMask] = set(gl.DEPTH_WRITEMASK)
	p[gl.ColorMask] = set(gl.COLOR_WRITEMASK)
	p[gl.CullFace] = set(gl.CULL_FACE_MODE)
	p[gl.FrontFace] = set(gl.FRONT_FACE)
	p[gl.LineWidth] = set(gl.LINE_WIDTH)
	p[gl.PointSize] = set(gl.POINT_SIZE)
	p[gl.ShadeModel] = set(gl.SHADE_MODEL)
	p[gl.DrawBuffer] = set(gl.DRAW_BUFFER)
	p[gl.ReadBuffer] = set(gl.READ_BUFFER)
	p[gl.BlendEquation] = set(gl.BLEND_EQUATION)
	p[gl.StencilFunc] = set(gl.STENCIL_FUNC)
	p[gl.ListBase] = set(gl.LIST_BASE)
	p[gl.BlendColor] = set(gl.BLEND_COLOR)
	p[gl.DepthRange] = set(gl.DEPTH_RANGE)
	p[gl.DepthRangef] = set(gl.DEPTH_RANGE)
	p[gl.ClearDepthf] = set(gl.DEPTH_CLEAR_VALUE)
	p[gl.LogicOp] = set(gl.LOGIC_OP_MODE)
	p[gl.PrimitiveRestartIndex] = set(gl.PRIMITIVE_RESTART_INDEX)
	// split stores its arguments one per pname.
	split := func(pnames ...gl.Enum) proc {
		return func(c *glContext, a []gl.Value) gl.Value {
			for i, pname := range pnames {
				c.state[pname] = []float32{float32(a[i].Float())}
			}
			return gl.Void
		}
	}
	p[gl.BlendFunc] = split(gl.BLEND_SRC, gl.BLEND_DST)
	p[gl.BlendFuncSeparate] = func(c *glContext, a []gl.Value) gl.Value {
		split(gl.BLEND_SRC, gl.BLEND_DST)(c, a)
		return split(gl.BLEND_SRC_RGB, gl.BLEND_DST_RGB, gl.BLEND_SRC_ALPHA, gl.BLEND_DST_ALPHA)(c, a)
	}
	p[gl.BlendEquationSeparate] = split(gl.BLEND_EQUATION, gl.BLEND_EQUATION_ALPHA)
	p[gl.PolygonOffset] = split(gl.POLYGON_OFFSET_FACTOR, gl.POLYGON_OFFSET_UNITS)
	p[gl.SampleCoverage] = split(gl.SAMPLE_COVERAGE_VALUE, gl.SAMPLE_COVERAGE_INVERT)
	p[gl.PointParameterf] = func(c *glContext, a []gl.Value) gl.Value {
		if a[0].Enum() != gl.POINT_FADE_THRESHOLD_SIZE {
			return c.fail(gl.INVALID_ENUM)
		}
		return split(gl.POINT_FADE_THRESHOLD_SIZE)(c, a[1:])
	}
	front := []gl.Enum{gl.STENCIL_FAIL, gl.STENCIL_PASS_DEPTH_FAIL, gl.STENCIL_PASS_DEPTH_PASS, gl.STENCIL_WRITEMASK}
	back := []gl.Enum{gl.STENCIL_BACK_FAIL, gl.STENCIL_BACK_PASS_DEPTH_FAIL, gl.STENCIL_BACK_PASS_DEPTH_PASS, gl.STENCIL_BACK_WRITEMASK}
	stencil := func(c *glContext, face gl.Enum, a []gl.Value, first int) gl.Value {
		var sides [][]gl.Enum
		switch face {
		case gl.FRONT:
			sides = [][]gl.Enum{front}
		case gl.BACK:
			sides = [][]gl.Enum{back}
		case gl.FRONT_AND_BACK:
			sides = [][]gl.Enum{front, back}
		default:
			return c.fail(gl.INVALID_ENUM)
		}
		for _, side := range sides {
			split(side[first : first+len(a)]...)(c, a)
		}
		return gl.Void
	}
	p[gl.StencilOp] = func(c *glContext, a []gl.Value) gl.Value { return stencil(c, gl.FRONT_AND_BACK, a, 0) }
	p[gl.StencilOpSeparate] = func(c *glContext, a []gl.Value) gl.Value { return stencil(c, a[0].Enum(), a[1:], 0) }
	p[gl.StencilMask] = func(c *glContext, a []gl.Value) gl.Value { return stencil(c, gl.FRONT_AND_BACK, a, 3) }
	p[gl.StencilMaskSeparate] = func(c *glContext, a []gl.Value) gl.Value { return stencil(c, a[0].Enum(), a[1:], 3) }
	p[gl.StencilFuncSeparate] = func(c *glContext, a []gl.Value) gl.Value {
		switch a[0].Enum() {
		case gl.FRONT, gl.FRONT_AND_BACK:
			set(gl.STENCIL_FUNC)(c, a[1:])
			if a[0].Enum() == gl.FRONT {
				return gl.Void
			}
			fallthrough
		case gl.BACK:
			return set(gl.STENCIL_BACK_FUNC)(c, a[1:])
		}
		return c.fail(gl.INVALID_ENUM)
	}
	p[gl.PolygonMode] = func(c *glContext, a []gl.Value) gl.Value {
		m := float32(a[1].Uint())
		c.state[gl.POLYGON_MODE] = []float32{m, m}
		return gl.Void
	}
	p[gl.PolygonStipple] = func(c *glContext, a []gl.Value) gl.Value { return gl.Void }
	p[gl.Hint] = func(c *glContext, a []gl.Value) gl.Value {
		c.state[a[0].Enum()] = []float32{float32(a[1].Uint())}
		return gl.Void
	}
	p[gl.PixelStorei] = func(c *glContext, a []gl.Value) gl.Value {
		switch pname := a[0].Enum(); pname {
		case gl.UNPACK_ALIGNMENT, gl.PACK_ALIGNMENT:
			switch a[1].Int() {
			case 1, 2, 4, 8:
			default:
				return c.fail(gl.INVALID_VALUE)
			}
			c.state[pname] = []float32{float32(a[1].Int())}
		case gl.UNPACK_ROW_LENGTH, gl.PACK_ROW_LENGTH:
			c.state[pname] = []float32{float32(a[1].Int())}
		default:
			return c.fail(gl.INVALID_ENUM)
		}
		return gl.Void
	}
	p[gl.DrawBuffers] = func(c *glContext, a []gl.Value) gl.Value {
		if bufs := gl.U32s(a[1].Mem); len(bufs) > 0 {
			c.state[gl.DRAW_BUFFER] = []float32{float32(bufs[0])}
		}
		return gl.Void
	}
	p[gl.ActiveTexture] = func(c *glContext, a []gl.Value) gl.Value {
		u := int(a[0].Uint()) - int(gl.TEXTURE0)
		if u < 0 || u >= maxTextureUnits {
			return c.fail(gl.INVALID_ENUM)
		}
		c.activeTexture = u
		return gl.Void
	}
	p[gl.ClientActiveTexture] = func(c *glContext, a []gl.Value) gl.Value {
		u := int(a[0].Uint()) - int(gl.TEXTURE0)
		if u < 0 || u >= maxTextureUnits {
			return c.fail(gl.INVALID_ENUM)
		}
		c.clientActiveTexture = u
		return gl.Void
	}

	d.registerMatrices(p)
	d.registerLighting(p)
	d.registerImmediate(p)
}

func (d *Driver) registerMatrices(p map[gl.Entrypoint]proc) {
	p[gl.MatrixMode] = func(c *glContext, a []gl.Value) gl.Value {
		m := a[0].Enum()
		if _, ok := c.stacks[m]; !ok {
			return c.fail(gl.INVALID_ENUM)
		}
		c.state[gl.MATRIX_MODE] = []float32{float32(m)}
		return gl.Void
	}
	p[gl.LoadIdentity] = func(c *glContext, a []gl.Value) gl.Value {
		*c.matrix() = identity()
		return gl.Void
	}
	p[gl.LoadMatrixf] = func(c *glContext, a []gl.Value) gl.Value {
		copy(c.matrix()[:], gl.F32s(a[0].Mem))
		return gl.Void
	}
	p[gl.MultMatrixf] = func(c *glContext, a []gl.Value) gl.Value {
		var m [16]float32
		copy(m[:], gl.F32s(a[0].Mem))
		c.mult(m)
		return gl.Void
	}
	p[gl.PushMatrix] = func(c *glContext, a []gl.Value) gl.Value {
		mode := c.matrixMode()
		s := c.stacks[mode]
		if len(s) >= 32 {
			return c.fail(gl.STACK_OVERFLOW)
		}
		c.stacks[mode] = append(s, s[len(s)-1])
		return gl.Void
	}
	p[gl.PopMatrix] = func(c *glContext, a []gl.Value) gl.Value {
		mode := c.matrixMode()
		s := c.stacks[mode]
		if len(s) <= 1 {
			return c.fail(gl.STACK_UNDERFLOW)
		}
		c.stacks[mode] = s[:len(s)-1]
		return gl.Void
	}
	p[gl.Translatef] = func(c *glContext, a []gl.Value) gl.Value {
		m := identity()
		m[12], m[13], m[14] = a[0].Float32(), a[1].Float32(), a[2].Float32()
		c.mult(m)
		return gl.Void
	}
	p[gl.Scalef] = func(c *glContext, a []gl.Value) gl.Value {
		m := identity()
		m[0], m[5], m[10] = a[0].Float32(), a[1].Float32(), a[2].Float32()
		c.mult(m)
		return gl.Void
	}
	p[gl.Rotatef] = func(c *glContext, a []gl.Value) gl.Value {
		c.mult(rotation(a[0].Float(), a[1].Float(), a[2].Float(), a[3].Float()))
		return gl.Void
	}
	p[gl.Ortho] = func(c *glContext, a []gl.Value) gl.Value {
		l, r, b, t, n, f := a[0].Float(), a[1].Float(), a[2].Float(), a[3].Float(), a[4].Float(), a[5].Float()
		if l == r || b == t || n == f {
			return c.fail(gl.INVALID_VALUE)
		}
		m := identity()
		m[0] = float32(2 / (r - l))
		m[5] = float32(2 / (t - b))
		m[10] = float32(-2 / (f - n))
		m[12] = float32(-(r + l) / (r - l))
		m[13] = float32(-(t + b) / (t - b))
		m[14] = float32(-(f + n) / (f - n))
		c.mult(m)
		return gl.Void
	}
	p[gl.Frustum] = func(c *glContext, a []gl.Value) gl.Value {
		l, r, b, t, n, f := a[0].Float(), a[1].Float(), a[2].Float(), a[3].Float(), a[4].Float(), a[5].Float()
		if n <= 0 || f <= 0 || l == r || b == t || n == f {
			return c.fail(gl.INVALID_VALUE)
		}
		var m [16]float32
		m[0] = float32(2 * n / (r - l))
		m[5] = float32(2 * n / (t - b))
		m[8] = float32((r + l) / (r - l))
		m[9] = float32((t + b) / (t - b))
		m[10] = float32(-(f + n) / (f - n))
		m[11] = -1
		m[14] = float32(-2 * f * n / (f - n))
		c.mult(m)
		return gl.Void
	}
}

// mult post-multiplies the current matrix by m. Matrices are column major.
func (c *glContext) mult(m [16]float32) {
	cur := c.matrix()
	var out [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += cur[k*4+row] * m[col*4+k]
			}
			out[col*4+row] = s
		}
	}
	*cur = out
}

func rotation(angle, x, y, z float64) [16]float32 {
	l := math.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return identity()
	}
	x, y, z = x/l, y/l, z/l
	r := angle * math.Pi / 180
	s, co := math.Sin(r), math.Cos(r)
	ic := 1 - co
	return [16]float32{
		float32(x*x*ic + co), float32(y*x*ic + z*s), float32(x*z*ic - y*s), 0,
		float32(x*y*ic - z*s), float32(y*y*ic + co), float32(y*z*ic + x*s), 0,
		float32(x*z*ic + y*s), float32(y*z*ic - x*s), float32(z*z*ic + co), 0,
		0, 0, 0, 1,
	}
}

func defaultLight(light, pname gl.Enum) []float32 {
	switch pname {
	case gl.AMBIENT:
		return []float32{0, 0, 0, 1}
	case gl.DIFFUSE, gl.SPECULAR:
		if light == gl.LIGHT0 {
			return []float32{1, 1, 1, 1}
		}
		return []float32{0, 0, 0, 1}
	case gl.POSITION:
		return []float32{0, 0, 1, 0}
	}
	return []float32{0}
}

func defaultMaterial(pname gl.Enum) []float32 {
	switch pname {
	case gl.AMBIENT:
		return []float32{0.2, 0.2, 0.2, 1}
	case gl.DIFFUSE:
		return []float32{0.8, 0.8, 0.8, 1}
	case gl.SPECULAR, gl.EMISSION:
		return []float32{0, 0, 0, 1}
	}
	return []float32{0}
}

func defaultTexEnv(pname gl.Enum) []float32 {
	switch pname {
	case gl.TEXTURE_ENV_MODE:
		return []float32{float32(gl.MODULATE)}
	case gl.TEXTURE_ENV_COLOR:
		return []float32{0, 0, 0, 0}
	}
	return nil
}

func storeIn(m map[gl.Enum]map[gl.Enum][]float32, key, pname gl.Enum, v []float32) {
	if m[key] == nil {
		m[key] = map[gl.Enum][]float32{}
	}
	m[key][pname] = v
}

func (d *Driver) registerLighting(p map[gl.Entrypoint]proc) {
	validLight := func(l gl.Enum) bool { return l >= gl.LIGHT0 && l < gl.LIGHT0+maxLights }
	p[gl.Lightf] = func(c *glContext, a []gl.Value) gl.Value {
		if !validLight(a[0].Enum()) {
			return c.fail(gl.INVALID_ENUM)
		}
		storeIn(c.lights, a[0].Enum(), a[1].Enum(), []float32{a[2].Float32()})
		return gl.Void
	}
	p[gl.Lightfv] = func(c *glContext, a []gl.Value) gl.Value {
		if !validLight(a[0].Enum()) {
			return c.fail(gl.INVALID_ENUM)
		}
		storeIn(c.lights, a[0].Enum(), a[1].Enum(), gl.F32s(a[2].Mem))
		return gl.Void
	}
	p[gl.GetLightfv] = func(c *glContext, a []gl.Value) gl.Value {
		l, pname := a[0].Enum(), a[1].Enum()
		if !validLight(l) {
			return c.fail(gl.INVALID_ENUM)
		}
		v, ok := c.lights[l][pname]
		if !ok {
			v = defaultLight(l, pname)
		}
		putF32(a[2], v...)
		return gl.Void
	}
	p[gl.LightModelf] = func(c *glContext, a []gl.Value) gl.Value {
		c.state[a[0].Enum()] = []float32{a[1].Float32()}
		return gl.Void
	}
	p[gl.LightModelfv] = func(c *glContext, a []gl.Value) gl.Value {
		c.state[a[0].Enum()] = gl.F32s(a[1].Mem)
		return gl.Void
	}
	material := func(c *glContext, face, pname gl.Enum, v []float32) gl.Value {
		faces := []gl.Enum{face}
		switch face {
		case gl.FRONT_AND_BACK:
			faces = []gl.Enum{gl.FRONT, gl.BACK}
		case gl.FRONT, gl.BACK:
		default:
			return c.fail(gl.INVALID_ENUM)
		}
		for _, f := range faces {
			if pname == gl.AMBIENT_AND_DIFFUSE {
				storeIn(c.materials, f, gl.AMBIENT, v)
				storeIn(c.materials, f, gl.DIFFUSE, v)
			} else {
				storeIn(c.materials, f, pname, v)
			}
		}
		return gl.Void
	}
	p[gl.Materialf] = func(c *glContext, a []gl.Value) gl.Value {
		return material(c, a[0].Enum(), a[1].Enum(), []float32{a[2].Float32()})
	}
	p[gl.Materialfv] = func(c *glContext, a []gl.Value) gl.Value {
		return material(c, a[0].Enum(), a[1].Enum(), gl.F32s(a[2].Mem))
	}
	p[gl.GetMaterialfv] = func(c *glContext, a []gl.Value) gl.Value {
		face, pname := a[0].Enum(), a[1].Enum()
		if face != gl.FRONT && face != gl.BACK {
			return c.fail(gl.INVALID_ENUM)
		}
		v, ok := c.materials[face][pname]
		if !ok {
			v = defaultMaterial(pname)
		}
		putF32(a[2], v...)
		return gl.Void
	}
	texEnv := func(c *glContext, target, pname gl.Enum, v []float32) gl.Value {
		if target != gl.TEXTURE_ENV {
			return c.fail(gl.INVALID_ENUM)
		}
		c.texEnv[c.activeTexture][pname] = v
		return gl.Void
	}
	p[gl.TexEnvi] = func(c *glContext, a []gl.Value) gl.Value {
		return texEnv(c, a[0].Enum(), a[1].Enum(), []float32{float32(a[2].Int())})
	}
	p[gl.TexEnvf] = func(c *glContext, a []gl.Value) gl.Value {
		return texEnv(c, a[0].Enum(), a[1].Enum(), []float32{a[2].Float32()})
	}
	p[gl.TexEnvfv] = func(c *glContext, a []gl.Value) gl.Value {
		return texEnv(c, a[0].Enum(), a[1].Enum(), gl.F32s(a[2].Mem))
	}
	p[gl.GetTexEnvfv] = func(c *glContext, a []gl.Value) gl.Value {
		if a[0].Enum() != gl.TEXTURE_ENV {
			return c.fail(gl.INVALID_ENUM)
		}
		v, ok := c.texEnv[c.activeTexture][a[1].Enum()]
		if !ok {
			v = defaultTexEnv(a[1].Enum())
		}
		putF32(a[2], v...)
		return gl.Void
	}
}

func (d *Driver) registerImmediate(p map[gl.Entrypoint]proc) {
	current := func(pname gl.Enum, n int) proc {
		return func(c *glContext, a []gl.Value) gl.Value {
			v := append([]float32(nil), c.state[pname]...)
			for i := 0; i < n && i < len(a); i++ {
				v[i] = a[i].Float32()
			}
			c.state[pname] = v
			return gl.Void
		}
	}
	p[gl.Color3f] = current(gl.CURRENT_COLOR, 3)
	p[gl.Color4f] = current(gl.CURRENT_COLOR, 4)
	p[gl.Color4ub] = func(c *glContext, a []gl.Value) gl.Value {
		v := make([]float32, 4)
		for i := range v {
			v[i] = float32(a[i].Uint()&0xff) / 255
		}
		c.state[gl.CURRENT_COLOR] = v
		return gl.Void
	}
	p[gl.Normal3f] = current(gl.CURRENT_NORMAL, 3)
	p[gl.RasterPos2i] = current(gl.CURRENT_RASTER_POSITION, 2)
	p[gl.TexCoord2f] = current(gl.CURRENT_TEXTURE_COORDS, 2)
	p[gl.MultiTexCoord2f] = func(c *glContext, a []gl.Value) gl.Value {
		if a[0].Enum() == gl.TEXTURE0 {
			return current(gl.CURRENT_TEXTURE_COORDS, 2)(c, a[1:])
		}
		return gl.Void
	}
	p[gl.VertexAttrib4f] = func(c *glContext, a []gl.Value) gl.Value {
		i := a[0].Uint()
		if i >= maxAttribs {
			return c.fail(gl.INVALID_VALUE)
		}
		c.currentAttrib[i] = [4]float32{a[1].Float32(), a[2].Float32(), a[3].Float32(), a[4].Float32()}
		return gl.Void
	}
	p[gl.GetVertexAttribfv] = func(c *glContext, a []gl.Value) gl.Value {
		i := a[0].Uint()
		if i >= maxAttribs || a[1].Enum() != gl.CURRENT_VERTEX_ATTRIB {
			return c.fail(gl.INVALID_VALUE)
		}
		putF32(a[2], c.currentAttrib[i][:]...)
		return gl.Void
	}
	p[gl.Begin] = func(c *glContext, a []gl.Value) gl.Value {
		if c.insideBegin {
			return c.fail(gl.INVALID_OPERATION)
		}
		c.insideBegin = true
		c.beginMode = a[0].Enum()
		c.vertices = 0
		return gl.Void
	}
	p[gl.End] = func(c *glContext, a []gl.Value) gl.Value {
		if !c.insideBegin {
			return c.fail(gl.INVALID_OPERATION)
		}
		c.insideBegin = false
		d.rasterize(c, c.vertices)
		return gl.Void
	}
	vertex := func(c *glContext, a []gl.Value) gl.Value {
		if !c.insideBegin {
			return gl.Void
		}
		c.vertices++
		return gl.Void
	}
	p[gl.Vertex2f] = vertex
	p[gl.Vertex3f] = vertex
	p[gl.Vertex3fv] = unpacked(vertex)
	p[gl.Color4fv] = unpacked(p[gl.Color4f])
	p[gl.Normal3fv] = unpacked(p[gl.Normal3f])
	p[gl.VertexAttrib4fv] = unpacked(p[gl.VertexAttrib4f])
}

// get answers glGet queries.
func (d *Driver) get(c *glContext, pname gl.Enum) ([]float32, bool) {
	u := func(v uint32) ([]float32, bool) { return []float32{float32(v)}, true }
	if ns, ok := gl.BindingNamespaces[pname]; ok && ns == gl.Textures {
		for _, t := range gl.TextureTargets {
			if b, _ := gl.TextureBinding(t); b == pname {
				return u(c.unit()[t])
			}
		}
	}
	switch pname {
	case gl.ARRAY_BUFFER_BINDING:
		return u(c.bufferBindings[gl.ARRAY_BUFFER])
	case gl.PIXEL_PACK_BUFFER_BINDING:
		return u(c.bufferBindings[gl.PIXEL_PACK_BUFFER])
	case gl.PIXEL_UNPACK_BUFFER_BINDING:
		return u(c.bufferBindings[gl.PIXEL_UNPACK_BUFFER])
	case gl.UNIFORM_BUFFER_BINDING:
		return u(c.bufferBindings[gl.UNIFORM_BUFFER])
	case gl.ELEMENT_ARRAY_BUFFER_BINDING:
		return u(c.vao().elementBuffer)
	case gl.FRAMEBUFFER_BINDING:
		return u(c.drawFramebuffer)
	case gl.READ_FRAMEBUFFER_BINDING:
		return u(c.readFramebuffer)
	case gl.RENDERBUFFER_BINDING:
		return u(c.renderbuffer)
	case gl.VERTEX_ARRAY_BINDING:
		return u(c.vertexArray)
	case gl.CURRENT_PROGRAM:
		return u(c.program)
	case gl.PROGRAM_PIPELINE_BINDING:
		return u(c.pipeline)
	case gl.SAMPLER_BINDING:
		return u(c.samplerUnits[c.activeTexture])
	case gl.ACTIVE_TEXTURE:
		return u(uint32(gl.TEXTURE0) + uint32(c.activeTexture))
	case gl.CLIENT_ACTIVE_TEXTURE:
		return u(uint32(gl.TEXTURE0) + uint32(c.clientActiveTexture))
	case gl.LIST_INDEX:
		return u(c.listName)
	case gl.LIST_MODE:
		return u(uint32(c.listMode))
	case gl.RENDER_MODE:
		return u(uint32(c.renderMode))
	case gl.FEEDBACK_BUFFER_SIZE:
		return u(uint32(len(c.feedback) / 4))
	case gl.SELECTION_BUFFER_SIZE:
		return u(uint32(len(c.selection) / 4))
	case gl.NAME_STACK_DEPTH:
		return u(uint32(len(c.nameStack)))
	case gl.MODELVIEW_STACK_DEPTH:
		return u(uint32(len(c.stacks[gl.MODELVIEW])))
	case gl.MODELVIEW_MATRIX:
		return top(c.stacks[gl.MODELVIEW]), true
	case gl.PROJECTION_MATRIX:
		return top(c.stacks[gl.PROJECTION]), true
	case gl.TEXTURE_MATRIX:
		return top(c.stacks[gl.TEXTURE]), true
	case gl.SAMPLES:
		return u(uint32(c.samples))
	}
	if v, ok := fixedArrayQuery(c, pname); ok {
		return v, true
	}
	if v, ok := c.state[pname]; ok {
		return v, true
	}
	return nil, false
}

// unpacked adapts the scalar form of a vector entrypoint to take its
// components from the trailing memory argument.
func unpacked(scalar proc) proc {
	return func(c *glContext, a []gl.Value) gl.Value {
		last := len(a) - 1
		args := append([]gl.Value(nil), a[:last]...)
		for _, f := range gl.F32s(a[last].Mem) {
			args = append(args, gl.Float(float64(f)))
		}
		return scalar(c, args)
	}
}

func top(s [][16]float32) []float32 {
	m := s[len(s)-1]
	return m[:]
}

var fixedArrayQueries = map[gl.Enum]struct {
	array gl.Enum
	field int
}{
	gl.VERTEX_ARRAY_SIZE:                  {gl.VERTEX_ARRAY, 0},
	gl.VERTEX_ARRAY_TYPE:                  {gl.VERTEX_ARRAY, 1},
	gl.VERTEX_ARRAY_STRIDE:                {gl.VERTEX_ARRAY, 2},
	gl.VERTEX_ARRAY_BUFFER_BINDING:        {gl.VERTEX_ARRAY, 3},
	gl.NORMAL_ARRAY_TYPE:                  {gl.NORMAL_ARRAY, 1},
	gl.NORMAL_ARRAY_STRIDE:                {gl.NORMAL_ARRAY, 2},
	gl.NORMAL_ARRAY_BUFFER_BINDING:        {gl.NORMAL_ARRAY, 3},
	gl.COLOR_ARRAY_SIZE:                   {gl.COLOR_ARRAY, 0},
	gl.COLOR_ARRAY_TYPE:                   {gl.COLOR_ARRAY, 1},
	gl.COLOR_ARRAY_STRIDE:                 {gl.COLOR_ARRAY, 2},
	gl.COLOR_ARRAY_BUFFER_BINDING:         {gl.COLOR_ARRAY, 3},
	gl.TEXTURE_COORD_ARRAY_SIZE:           {gl.TEXTURE_COORD_ARRAY, 0},
	gl.TEXTURE_COORD_ARRAY_TYPE:           {gl.TEXTURE_COORD_ARRAY, 1},
	gl.TEXTURE_COORD_ARRAY_STRIDE:         {gl.TEXTURE_COORD_ARRAY, 2},
	gl.TEXTURE_COORD_ARRAY_BUFFER_BINDING: {gl.TEXTURE_COORD_ARRAY, 3},
}

func fixedArrayQuery(c *glContext, pname gl.Enum) ([]float32, bool) {
	q, ok := fixedArrayQueries[pname]
	if !ok {
		return nil, false
	}
	a := c.vao().fixed[q.array]
	switch q.field {
	case 0:
		return []float32{float32(a.size)}, true
	case 1:
		return []float32{float32(a.typ)}, true
	case 2:
		return []float32{float32(a.stride)}, true
	}
	return []float32{float32(a.buffer)}, true
}
