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
	"regexp"
	"strconv"
	"strings"

	"github.com/ValveSoftware/vogl-sub002/gl"
)

const maxARBParams = 16

// object is an entry of the namespace shared by shaders and programs.
type object struct {
	shader        *shaderObject
	program       *programObject
	deletePending bool
}

type shaderObject struct {
	typ         gl.Enum
	source      string
	compiled    bool
	infoLog     string
	attachments int
}

type programObject struct {
	shaders      []uint32
	linked       bool
	validated    bool
	separable    bool
	infoLog      string
	uniforms     []*uniform
	blocks       []*uniformBlock
	boundAttribs map[string]int32
	attribs      map[string]int32
}

type uniform struct {
	name     string
	typ      gl.Enum
	size     int32
	location int32
	data     []byte
}

type uniformBlock struct {
	name    string
	binding uint32
}

type arbProgram struct {
	target gl.Enum
	format gl.Enum
	source []byte
	local  map[uint32][4]float32
}

type pipeline struct {
	stages map[uint32]uint32
	active uint32
}

var (
	uniformDecl = regexp.MustCompile(`uniform\s+(\w+)\s+(\w+)(\s*\[(\d+)\])?\s*;`)
	blockDecl   = regexp.MustCompile(`uniform\s+(\w+)\s*\{`)
	attribDecl  = regexp.MustCompile(`\b(?:in|attribute)\s+\w+\s+(\w+)\s*;`)
	uniformRef  = regexp.MustCompile(`^(\w+)(\[(\d+)\])?$`)
)

var uniformTypes = map[string]gl.Enum{
	"float":     gl.FLOAT,
	"vec2":      gl.FLOAT_VEC2,
	"vec3":      gl.FLOAT_VEC3,
	"vec4":      gl.FLOAT_VEC4,
	"int":       gl.INT,
	"ivec2":     gl.INT_VEC2,
	"ivec3":     gl.INT_VEC3,
	"ivec4":     gl.INT_VEC4,
	"bool":      gl.BOOL,
	"mat3":      gl.FLOAT_MAT3,
	"mat4":      gl.FLOAT_MAT4,
	"sampler2D": gl.SAMPLER_2D,
}

var stageBits = map[gl.Enum]uint32{
	gl.VERTEX_SHADER:   gl.VERTEX_SHADER_BIT,
	gl.FRAGMENT_SHADER: gl.FRAGMENT_SHADER_BIT,
	gl.GEOMETRY_SHADER: gl.GEOMETRY_SHADER_BIT,
}

func (p *programObject) uniformAt(loc int32) (*uniform, int) {
	for _, u := range p.uniforms {
		if loc >= u.location && loc < u.location+u.size {
			return u, int(loc-u.location) * gl.UniformSize(u.typ)
		}
	}
	return nil, 0
}

func (g *group) shader(n uint32) *shaderObject {
	if o := g.objects[n]; o != nil {
		return o.shader
	}
	return nil
}

func (g *group) program(n uint32) *programObject {
	if o := g.objects[n]; o != nil {
		return o.program
	}
	return nil
}

// programInUse returns true if any context of g has program n current.
func (d *Driver) programInUse(g *group, n uint32) bool {
	for _, c := range d.contexts {
		if c.group == g && c.program == n {
			return true
		}
	}
	return false
}

func (d *Driver) releaseShader(g *group, n uint32) {
	o := g.objects[n]
	if o == nil || o.shader == nil {
		return
	}
	o.shader.attachments--
	if o.deletePending && o.shader.attachments <= 0 {
		delete(g.objects, n)
		g.objectNames.free(n)
	}
}

func (d *Driver) releaseProgram(g *group, n uint32) {
	o := g.objects[n]
	if o == nil || o.program == nil || !o.deletePending || d.programInUse(g, n) {
		return
	}
	for _, s := range o.program.shaders {
		d.releaseShader(g, s)
	}
	delete(g.objects, n)
	g.objectNames.free(n)
}

func (d *Driver) link(p *programObject, g *group) {
	p.linked, p.validated, p.uniforms, p.blocks, p.infoLog = false, false, nil, nil, ""
	if len(p.shaders) == 0 {
		p.infoLog = "error: no shaders attached"
		return
	}
	seen := map[string]bool{}
	var attribs []string
	for _, n := range p.shaders {
		s := g.shader(n)
		if s == nil || !s.compiled {
			p.infoLog = "error: shader " + strconv.Itoa(int(n)) + " is not compiled"
			return
		}
		for _, m := range blockDecl.FindAllStringSubmatch(s.source, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				p.blocks = append(p.blocks, &uniformBlock{name: m[1]})
			}
		}
		for _, m := range uniformDecl.FindAllStringSubmatch(s.source, -1) {
			typ, ok := uniformTypes[m[1]]
			if !ok || seen[m[2]] {
				continue
			}
			seen[m[2]] = true
			size := int32(1)
			if m[4] != "" {
				v, _ := strconv.Atoi(m[4])
				size = int32(v)
			}
			p.uniforms = append(p.uniforms, &uniform{name: m[2], typ: typ, size: size})
		}
		if s.typ == gl.VERTEX_SHADER {
			for _, m := range attribDecl.FindAllStringSubmatch(s.source, -1) {
				attribs = append(attribs, m[1])
			}
		}
	}
	loc := d.opts.LocationBase
	for _, u := range p.uniforms {
		u.location = loc
		u.data = make([]byte, int(u.size)*gl.UniformSize(u.typ))
		loc += u.size
	}
	p.attribs = map[string]int32{}
	next := int32(0)
	used := map[int32]bool{}
	for _, v := range p.boundAttribs {
		used[v] = true
	}
	for _, a := range attribs {
		if l, ok := p.boundAttribs[a]; ok {
			p.attribs[a] = l
			continue
		}
		for used[next] {
			next++
		}
		p.attribs[a] = next
		used[next] = true
	}
	p.linked = true
}

func (d *Driver) registerPrograms(p map[gl.Entrypoint]proc) {
	d.registerShaders(p)
	d.registerUniforms(p)
	d.registerPipelines(p)
	d.registerARBPrograms(p)
}

func (d *Driver) registerShaders(p map[gl.Entrypoint]proc) {
	p[gl.CreateShader] = func(c *glContext, a []gl.Value) gl.Value {
		typ := a[0].Enum()
		if !typ.IsShaderType() {
			c.fail(gl.INVALID_ENUM)
			return gl.Uint(0)
		}
		n := c.group.objectNames.gen()
		c.group.objects[n] = &object{shader: &shaderObject{typ: typ}}
		return gl.Uint(uint64(n))
	}
	p[gl.ShaderSource] = func(c *glContext, a []gl.Value) gl.Value {
		s := c.group.shader(handle(a[0]))
		if s == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		var lengths []int32
		if a[3].Kind == gl.KindMem && a[3].Mem != nil {
			lengths = gl.I32s(a[3].Mem)
		}
		s.source = strings.Join(gl.SplitSources(a[2].Mem, int(a[1].Int()), lengths), "")
		return gl.Void
	}
	p[gl.CompileShader] = func(c *glContext, a []gl.Value) gl.Value {
		s := c.group.shader(handle(a[0]))
		if s == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		s.compiled = strings.Contains(s.source, "void main")
		s.infoLog = ""
		if !s.compiled {
			s.infoLog = "error: no entry point"
		}
		return gl.Void
	}
	p[gl.DeleteShader] = func(c *glContext, a []gl.Value) gl.Value {
		n := handle(a[0])
		if n == 0 {
			return gl.Void
		}
		o := c.group.objects[n]
		if o == nil || o.shader == nil {
			return c.fail(gl.INVALID_VALUE)
		}
		if o.shader.attachments > 0 {
			o.deletePending = true
			return gl.Void
		}
		delete(c.group.objects, n)
		c.group.objectNames.free(n)
		return gl.Void
	}
	p[gl.IsShader] = func(c *glContext, a []gl.Value) gl.Value {
		return gl.Bool(c.group.shader(handle(a[0])) != nil)
	}
	p[gl.GetShaderiv] = func(c *glContext, a []gl.Value) gl.Value {
		o := c.group.objects[handle(a[0])]
		if o == nil || o.shader == nil {
			return c.fail(gl.INVALID_VALUE)
		}
		s := o.shader
		var v int32
		switch a[1].Enum() {
		case gl.SHADER_TYPE:
			v = int32(s.typ)
		case gl.DELETE_STATUS:
			v = boolInt(o.deletePending)
		case gl.COMPILE_STATUS:
			v = boolInt(s.compiled)
		case gl.INFO_LOG_LENGTH:
			v = strLen(s.infoLog)
		case gl.SHADER_SOURCE_LENGTH:
			v = strLen(s.source)
		default:
			return c.fail(gl.INVALID_ENUM)
		}
		put32(a[2], v)
		return gl.Void
	}
	p[gl.GetShaderSource] = func(c *glContext, a []gl.Value) gl.Value {
		s := c.group.shader(handle(a[0]))
		if s == nil {
			return c.fail(gl.INVALID_VALUE)
		}
		put32(a[2], putString(a[3], s.source, int(a[1].Int())))
		return gl.Void
	}
	p[gl.GetShaderInfoLog] = func(c *glContext, a []gl.Value) gl.Value {
		s := c.group.shader(handle(a[0]))
		if s == nil {
			return c.fail(gl.INVALID_VALUE)
		}
		put32(a[2], putString(a[3], s.infoLog, int(a[1].Int())))
		return gl.Void
	}
	p[gl.GetProgramInfoLog] = func(c *glContext, a []gl.Value) gl.Value {
		prog := c.group.program(handle(a[0]))
		if prog == nil {
			return c.fail(gl.INVALID_VALUE)
		}
		put32(a[2], putString(a[3], prog.infoLog, int(a[1].Int())))
		return gl.Void
	}

	p[gl.CreateProgram] = func(c *glContext, a []gl.Value) gl.Value {
		n := c.group.objectNames.gen()
		c.group.objects[n] = &object{program: &programObject{boundAttribs: map[string]int32{}}}
		return gl.Uint(uint64(n))
	}
	p[gl.CreateShaderProgramv] = func(c *glContext, a []gl.Value) gl.Value {
		typ := a[0].Enum()
		if !typ.IsShaderType() {
			c.fail(gl.INVALID_ENUM)
			return gl.Uint(0)
		}
		g := c.group
		sn := g.objectNames.gen()
		s := &shaderObject{typ: typ, source: strings.Join(gl.SplitSources(a[2].Mem, int(a[1].Int()), nil), "")}
		s.compiled = strings.Contains(s.source, "void main")
		g.objects[sn] = &object{shader: s, deletePending: true}
		pn := g.objectNames.gen()
		prog := &programObject{shaders: []uint32{sn}, separable: true, boundAttribs: map[string]int32{}}
		g.objects[pn] = &object{program: prog}
		s.attachments++
		d.link(prog, g)
		prog.shaders = nil
		d.releaseShader(g, sn)
		return gl.Uint(uint64(pn))
	}
	p[gl.AttachShader] = func(c *glContext, a []gl.Value) gl.Value {
		prog, s := c.group.program(handle(a[0])), c.group.shader(handle(a[1]))
		if prog == nil || s == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		for _, n := range prog.shaders {
			if n == handle(a[1]) {
				return c.fail(gl.INVALID_OPERATION)
			}
		}
		prog.shaders = append(prog.shaders, handle(a[1]))
		s.attachments++
		return gl.Void
	}
	p[gl.DetachShader] = func(c *glContext, a []gl.Value) gl.Value {
		prog := c.group.program(handle(a[0]))
		if prog == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		n := handle(a[1])
		for i, s := range prog.shaders {
			if s == n {
				prog.shaders = append(prog.shaders[:i], prog.shaders[i+1:]...)
				d.releaseShader(c.group, n)
				return gl.Void
			}
		}
		return c.fail(gl.INVALID_OPERATION)
	}
	p[gl.BindAttribLocation] = func(c *glContext, a []gl.Value) gl.Value {
		prog := c.group.program(handle(a[0]))
		if prog == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		if a[1].Uint() >= maxAttribs {
			return c.fail(gl.INVALID_VALUE)
		}
		prog.boundAttribs[gl.GoString(a[2].Mem)] = a[1].Int32()
		return gl.Void
	}
	p[gl.BindFragDataLocation] = func(c *glContext, a []gl.Value) gl.Value {
		if c.group.program(handle(a[0])) == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		return gl.Void
	}
	p[gl.GetAttribLocation] = func(c *glContext, a []gl.Value) gl.Value {
		prog := c.group.program(handle(a[0]))
		if prog == nil || !prog.linked {
			c.fail(gl.INVALID_OPERATION)
			return gl.Int(-1)
		}
		if l, ok := prog.attribs[gl.GoString(a[1].Mem)]; ok {
			return gl.Int(int64(l))
		}
		return gl.Int(-1)
	}
	p[gl.LinkProgram] = func(c *glContext, a []gl.Value) gl.Value {
		prog := c.group.program(handle(a[0]))
		if prog == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		d.link(prog, c.group)
		return gl.Void
	}
	p[gl.ValidateProgram] = func(c *glContext, a []gl.Value) gl.Value {
		prog := c.group.program(handle(a[0]))
		if prog == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		prog.validated = prog.linked
		return gl.Void
	}
	p[gl.UseProgram] = func(c *glContext, a []gl.Value) gl.Value {
		n := handle(a[0])
		if n != 0 {
			prog := c.group.program(n)
			if prog == nil || !prog.linked {
				return c.fail(gl.INVALID_OPERATION)
			}
		}
		old := c.program
		c.program = n
		if old != n {
			d.releaseProgram(c.group, old)
		}
		return gl.Void
	}
	p[gl.DeleteProgram] = func(c *glContext, a []gl.Value) gl.Value {
		n := handle(a[0])
		if n == 0 {
			return gl.Void
		}
		o := c.group.objects[n]
		if o == nil || o.program == nil {
			return c.fail(gl.INVALID_VALUE)
		}
		o.deletePending = true
		d.releaseProgram(c.group, n)
		return gl.Void
	}
	p[gl.IsProgram] = func(c *glContext, a []gl.Value) gl.Value {
		return gl.Bool(c.group.program(handle(a[0])) != nil)
	}
	p[gl.ProgramParameteri] = func(c *glContext, a []gl.Value) gl.Value {
		prog := c.group.program(handle(a[0]))
		if prog == nil {
			return c.fail(gl.INVALID_VALUE)
		}
		if a[1].Enum() != gl.PROGRAM_SEPARABLE {
			return c.fail(gl.INVALID_ENUM)
		}
		prog.separable = a[2].Bool()
		return gl.Void
	}
	p[gl.GetProgramiv] = func(c *glContext, a []gl.Value) gl.Value {
		o := c.group.objects[handle(a[0])]
		if o == nil || o.program == nil {
			return c.fail(gl.INVALID_VALUE)
		}
		prog := o.program
		var v int32
		switch a[1].Enum() {
		case gl.DELETE_STATUS:
			v = boolInt(o.deletePending)
		case gl.LINK_STATUS:
			v = boolInt(prog.linked)
		case gl.VALIDATE_STATUS:
			v = boolInt(prog.validated)
		case gl.ATTACHED_SHADERS:
			v = int32(len(prog.shaders))
		case gl.ACTIVE_UNIFORMS:
			v = int32(len(prog.uniforms))
		case gl.ACTIVE_UNIFORM_MAX_LENGTH:
			for _, u := range prog.uniforms {
				if l := strLen(u.activeName()); l > v {
					v = l
				}
			}
		case gl.ACTIVE_ATTRIBUTES:
			v = int32(len(prog.attribs))
		case gl.ACTIVE_UNIFORM_BLOCKS:
			v = int32(len(prog.blocks))
		case gl.INFO_LOG_LENGTH:
			v = strLen(prog.infoLog)
		case gl.PROGRAM_SEPARABLE:
			v = boolInt(prog.separable)
		default:
			return c.fail(gl.INVALID_ENUM)
		}
		put32(a[2], v)
		return gl.Void
	}
	p[gl.GetAttachedShaders] = func(c *glContext, a []gl.Value) gl.Value {
		prog := c.group.program(handle(a[0]))
		if prog == nil {
			return c.fail(gl.INVALID_VALUE)
		}
		n := len(prog.shaders)
		if m := int(a[1].Int()); m < n {
			n = m
		}
		put32(a[2], int32(n))
		copy(a[3].Mem, gl.PutU32s(prog.shaders[:n]...))
		return gl.Void
	}
}

func (u *uniform) activeName() string {
	if u.size > 1 {
		return u.name + "[0]"
	}
	return u.name
}

func (d *Driver) registerUniforms(p map[gl.Entrypoint]proc) {
	p[gl.GetUniformLocation] = func(c *glContext, a []gl.Value) gl.Value {
		prog := c.group.program(handle(a[0]))
		if prog == nil || !prog.linked {
			c.fail(gl.INVALID_OPERATION)
			return gl.Int(-1)
		}
		m := uniformRef.FindStringSubmatch(gl.GoString(a[1].Mem))
		if m == nil {
			return gl.Int(-1)
		}
		index := 0
		if m[3] != "" {
			index, _ = strconv.Atoi(m[3])
		}
		for _, u := range prog.uniforms {
			if u.name == m[1] && int32(index) < u.size {
				return gl.Int(int64(u.location) + int64(index))
			}
		}
		return gl.Int(-1)
	}
	p[gl.GetActiveUniform] = func(c *glContext, a []gl.Value) gl.Value {
		prog := c.group.program(handle(a[0]))
		if prog == nil {
			return c.fail(gl.INVALID_VALUE)
		}
		i := int(a[1].Int())
		if i < 0 || i >= len(prog.uniforms) {
			return c.fail(gl.INVALID_VALUE)
		}
		u := prog.uniforms[i]
		put32(a[3], putString(a[6], u.activeName(), int(a[2].Int())))
		put32(a[4], u.size)
		put32(a[5], int32(u.typ))
		return gl.Void
	}
	set := func(c *glContext, n uint32, loc int32, data []byte) gl.Value {
		if loc == -1 {
			return gl.Void
		}
		prog := c.group.program(n)
		if prog == nil || !prog.linked {
			return c.fail(gl.INVALID_OPERATION)
		}
		u, off := prog.uniformAt(loc)
		if u == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		copy(u.data[off:], data)
		return gl.Void
	}
	vec := func(c *glContext, n uint32, loc int32, count int64, value []byte) gl.Value {
		if count < 0 {
			return c.fail(gl.INVALID_VALUE)
		}
		if prog := c.group.program(n); prog != nil {
			if u, _ := prog.uniformAt(loc); u != nil {
				if size := int(count) * gl.UniformSize(u.typ); size < len(value) {
					value = value[:size]
				}
			}
		}
		return set(c, n, loc, value)
	}
	current := func(c *glContext) uint32 {
		if c.program == 0 && c.pipeline != 0 {
			if pl := c.group.pipelines[c.pipeline]; pl != nil {
				return pl.active
			}
		}
		return c.program
	}
	ints := func(a []gl.Value) []byte {
		v := make([]int32, len(a))
		for i, x := range a {
			v[i] = x.Int32()
		}
		return gl.PutI32s(v...)
	}
	floats := func(a []gl.Value) []byte {
		v := make([]float32, len(a))
		for i, x := range a {
			v[i] = x.Float32()
		}
		return gl.PutF32s(v...)
	}
	for _, e := range []gl.Entrypoint{gl.Uniform1i, gl.Uniform2i, gl.Uniform3i, gl.Uniform4i} {
		p[e] = func(c *glContext, a []gl.Value) gl.Value {
			return set(c, current(c), a[0].Int32(), ints(a[1:]))
		}
	}
	for _, e := range []gl.Entrypoint{gl.Uniform1f, gl.Uniform2f, gl.Uniform3f, gl.Uniform4f} {
		p[e] = func(c *glContext, a []gl.Value) gl.Value {
			return set(c, current(c), a[0].Int32(), floats(a[1:]))
		}
	}
	for _, e := range []gl.Entrypoint{gl.Uniform1iv, gl.Uniform2iv, gl.Uniform3iv, gl.Uniform4iv, gl.Uniform1fv, gl.Uniform2fv, gl.Uniform3fv, gl.Uniform4fv} {
		p[e] = func(c *glContext, a []gl.Value) gl.Value {
			return vec(c, current(c), a[0].Int32(), a[1].Int(), a[2].Mem)
		}
	}
	for _, e := range []gl.Entrypoint{gl.UniformMatrix2fv, gl.UniformMatrix3fv, gl.UniformMatrix4fv} {
		p[e] = func(c *glContext, a []gl.Value) gl.Value {
			return vec(c, current(c), a[0].Int32(), a[1].Int(), a[3].Mem)
		}
	}
	p[gl.ProgramUniform1i] = func(c *glContext, a []gl.Value) gl.Value {
		return set(c, handle(a[0]), a[1].Int32(), ints(a[2:]))
	}
	for _, e := range []gl.Entrypoint{gl.ProgramUniform1iv, gl.ProgramUniform1fv, gl.ProgramUniform2fv, gl.ProgramUniform3fv, gl.ProgramUniform4fv} {
		p[e] = func(c *glContext, a []gl.Value) gl.Value {
			return vec(c, handle(a[0]), a[1].Int32(), a[2].Int(), a[3].Mem)
		}
	}
	for _, e := range []gl.Entrypoint{gl.ProgramUniformMatrix3fv, gl.ProgramUniformMatrix4fv} {
		p[e] = func(c *glContext, a []gl.Value) gl.Value {
			return vec(c, handle(a[0]), a[1].Int32(), a[2].Int(), a[4].Mem)
		}
	}
	p[gl.GetUniformBlockIndex] = func(c *glContext, a []gl.Value) gl.Value {
		prog := c.group.program(handle(a[0]))
		if prog == nil || !prog.linked {
			c.fail(gl.INVALID_OPERATION)
			return gl.Uint(gl.INVALID_INDEX)
		}
		name := gl.GoString(a[1].Mem)
		for i, b := range prog.blocks {
			if b.name == name {
				return gl.Uint(uint64(i))
			}
		}
		return gl.Uint(gl.INVALID_INDEX)
	}
	p[gl.UniformBlockBinding] = func(c *glContext, a []gl.Value) gl.Value {
		prog := c.group.program(handle(a[0]))
		if prog == nil || !prog.linked {
			return c.fail(gl.INVALID_OPERATION)
		}
		i := a[1].Uint()
		if i >= uint64(len(prog.blocks)) {
			return c.fail(gl.INVALID_VALUE)
		}
		prog.blocks[i].binding = a[2].Uint32()
		return gl.Void
	}
	get := func(c *glContext, a []gl.Value) gl.Value {
		prog := c.group.program(handle(a[0]))
		if prog == nil || !prog.linked {
			return c.fail(gl.INVALID_OPERATION)
		}
		u, off := prog.uniformAt(a[1].Int32())
		if u == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		copy(a[2].Mem, u.data[off:off+gl.UniformSize(u.typ)])
		return gl.Void
	}
	p[gl.GetUniformiv] = get
	p[gl.GetUniformfv] = get
}

func (d *Driver) registerPipelines(p map[gl.Entrypoint]proc) {
	lookup := func(c *glContext, n uint32) *pipeline {
		pl := c.group.pipelines[n]
		if pl == nil && c.group.pipelineNames.isUsed(n) {
			pl = &pipeline{stages: map[uint32]uint32{}}
			c.group.pipelines[n] = pl
		}
		return pl
	}
	p[gl.GenProgramPipelines] = func(c *glContext, a []gl.Value) gl.Value {
		genInto(&c.group.pipelineNames, a[0], a[1])
		return gl.Void
	}
	p[gl.DeleteProgramPipelines] = func(c *glContext, a []gl.Value) gl.Value {
		for _, n := range gl.U32s(a[1].Mem) {
			delete(c.group.pipelines, n)
			c.group.pipelineNames.free(n)
			if c.pipeline == n {
				c.pipeline = 0
			}
		}
		return gl.Void
	}
	p[gl.BindProgramPipeline] = func(c *glContext, a []gl.Value) gl.Value {
		n := handle(a[0])
		if n != 0 && lookup(c, n) == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		c.pipeline = n
		return gl.Void
	}
	p[gl.IsProgramPipeline] = func(c *glContext, a []gl.Value) gl.Value {
		_, ok := c.group.pipelines[handle(a[0])]
		return gl.Bool(ok)
	}
	p[gl.UseProgramStages] = func(c *glContext, a []gl.Value) gl.Value {
		pl := lookup(c, handle(a[0]))
		if pl == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		stages, n := a[1].Uint32(), handle(a[2])
		if n != 0 {
			prog := c.group.program(n)
			if prog == nil || !prog.linked || !prog.separable {
				return c.fail(gl.INVALID_OPERATION)
			}
		}
		for _, bit := range stageBits {
			if stages&bit != 0 {
				if n == 0 {
					delete(pl.stages, bit)
				} else {
					pl.stages[bit] = n
				}
			}
		}
		return gl.Void
	}
	p[gl.ActiveShaderProgram] = func(c *glContext, a []gl.Value) gl.Value {
		pl := lookup(c, handle(a[0]))
		if pl == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		pl.active = handle(a[1])
		return gl.Void
	}
	p[gl.GetProgramPipelineiv] = func(c *glContext, a []gl.Value) gl.Value {
		pl := c.group.pipelines[handle(a[0])]
		if pl == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		pname := a[1].Enum()
		if pname == gl.ACTIVE_PROGRAM {
			put32(a[2], int32(pl.active))
			return gl.Void
		}
		bit, ok := stageBits[pname]
		if !ok {
			return c.fail(gl.INVALID_ENUM)
		}
		put32(a[2], int32(pl.stages[bit]))
		return gl.Void
	}
}

func (d *Driver) registerARBPrograms(p map[gl.Entrypoint]proc) {
	bound := func(c *glContext, target gl.Enum) *arbProgram {
		return c.group.arbPrograms[c.arbBindings[target]]
	}
	validTarget := func(t gl.Enum) bool { return t == gl.VERTEX_PROGRAM_ARB || t == gl.FRAGMENT_PROGRAM_ARB }
	p[gl.GenProgramsARB] = func(c *glContext, a []gl.Value) gl.Value {
		genInto(&c.group.arbNames, a[0], a[1])
		return gl.Void
	}
	p[gl.DeleteProgramsARB] = func(c *glContext, a []gl.Value) gl.Value {
		for _, n := range gl.U32s(a[1].Mem) {
			delete(c.group.arbPrograms, n)
			c.group.arbNames.free(n)
			for t, b := range c.arbBindings {
				if b == n {
					delete(c.arbBindings, t)
				}
			}
		}
		return gl.Void
	}
	p[gl.BindProgramARB] = func(c *glContext, a []gl.Value) gl.Value {
		target, n := a[0].Enum(), handle(a[1])
		if !validTarget(target) {
			return c.fail(gl.INVALID_ENUM)
		}
		if n != 0 {
			prog, ok := c.group.arbPrograms[n]
			switch {
			case !ok:
				c.group.arbNames.reserve(n)
				c.group.arbPrograms[n] = &arbProgram{target: target, format: gl.PROGRAM_FORMAT_ASCII_ARB, local: map[uint32][4]float32{}}
			case prog.target != target:
				return c.fail(gl.INVALID_OPERATION)
			}
		}
		c.arbBindings[target] = n
		return gl.Void
	}
	p[gl.IsProgramARB] = func(c *glContext, a []gl.Value) gl.Value {
		_, ok := c.group.arbPrograms[handle(a[0])]
		return gl.Bool(ok)
	}
	p[gl.ProgramStringARB] = func(c *glContext, a []gl.Value) gl.Value {
		prog := bound(c, a[0].Enum())
		if prog == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		if a[1].Enum() != gl.PROGRAM_FORMAT_ASCII_ARB {
			return c.fail(gl.INVALID_ENUM)
		}
		src := a[3].Mem
		if n := int(a[2].Int()); n < len(src) {
			src = src[:n]
		}
		if !strings.HasPrefix(string(src), "!!ARB") {
			return c.fail(gl.INVALID_OPERATION)
		}
		prog.source = append([]byte(nil), src...)
		return gl.Void
	}
	p[gl.ProgramEnvParameter4fARB] = func(c *glContext, a []gl.Value) gl.Value {
		target, index := a[0].Enum(), a[1].Uint32()
		if !validTarget(target) || index >= maxARBParams {
			return c.fail(gl.INVALID_VALUE)
		}
		if c.arbEnv[target] == nil {
			c.arbEnv[target] = map[uint32][4]float32{}
		}
		c.arbEnv[target][index] = [4]float32{a[2].Float32(), a[3].Float32(), a[4].Float32(), a[5].Float32()}
		return gl.Void
	}
	p[gl.ProgramLocalParameter4fARB] = func(c *glContext, a []gl.Value) gl.Value {
		prog := bound(c, a[0].Enum())
		if prog == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		index := a[1].Uint32()
		if index >= maxARBParams {
			return c.fail(gl.INVALID_VALUE)
		}
		prog.local[index] = [4]float32{a[2].Float32(), a[3].Float32(), a[4].Float32(), a[5].Float32()}
		return gl.Void
	}
	p[gl.GetProgramivARB] = func(c *glContext, a []gl.Value) gl.Value {
		target := a[0].Enum()
		if !validTarget(target) {
			return c.fail(gl.INVALID_ENUM)
		}
		prog := bound(c, target)
		var v int32
		switch a[1].Enum() {
		case gl.PROGRAM_BINDING_ARB:
			v = int32(c.arbBindings[target])
		case gl.PROGRAM_LENGTH_ARB:
			if prog != nil {
				v = int32(len(prog.source))
			}
		case gl.PROGRAM_FORMAT_ARB:
			v = int32(gl.PROGRAM_FORMAT_ASCII_ARB)
		case gl.MAX_PROGRAM_LOCAL_PARAMETERS_ARB, gl.MAX_PROGRAM_ENV_PARAMETERS_ARB:
			v = maxARBParams
		default:
			return c.fail(gl.INVALID_ENUM)
		}
		put32(a[2], v)
		return gl.Void
	}
	p[gl.GetProgramStringARB] = func(c *glContext, a []gl.Value) gl.Value {
		prog := bound(c, a[0].Enum())
		if prog == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		if a[1].Enum() != gl.PROGRAM_STRING_ARB {
			return c.fail(gl.INVALID_ENUM)
		}
		copy(a[2].Mem, prog.source)
		return gl.Void
	}
	p[gl.GetProgramLocalParameterfvARB] = func(c *glContext, a []gl.Value) gl.Value {
		prog := bound(c, a[0].Enum())
		if prog == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		v := prog.local[a[1].Uint32()]
		putF32(a[2], v[:]...)
		return gl.Void
	}
	p[gl.GetProgramEnvParameterfvARB] = func(c *glContext, a []gl.Value) gl.Value {
		v := c.arbEnv[a[0].Enum()][a[1].Uint32()]
		putF32(a[2], v[:]...)
		return gl.Void
	}
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// strLen is the length of s including its terminator, or zero for an
// empty string.
func strLen(s string) int32 {
	if s == "" {
		return 0
	}
	return int32(len(s) + 1)
}

// putString writes s into out as a NUL terminated string of at most
// bufSize bytes and returns the length written excluding the terminator.
func putString(out gl.Value, s string, bufSize int) int32 {
	if bufSize <= 0 {
		return 0
	}
	if len(s) > bufSize-1 {
		s = s[:bufSize-1]
	}
	n := copy(out.Mem, s)
	if n < len(out.Mem) {
		out.Mem[n] = 0
	}
	return int32(n)
}
