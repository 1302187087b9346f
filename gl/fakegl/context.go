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
	"github.com/ValveSoftware/vogl-sub002/gl"
)

type proc func(c *glContext, a []gl.Value) gl.Value

// call is a recorded display list entry.
type call struct {
	ep   gl.Entrypoint
	fn   proc
	args []gl.Value
}

// group holds the objects shared by every context of a share-group.
type group struct {
	refs          int
	textureNames  namer
	bufferNames   namer
	rbNames       namer
	samplerNames  namer
	queryNames    namer
	objectNames   namer
	arbNames      namer
	pipelineNames namer
	listNames     namer
	nextSync      uint64

	textures      map[uint32]*texture
	buffers       map[uint32]*buffer
	renderbuffers map[uint32]*renderbuffer
	samplers      map[uint32]*sampler
	queries       map[uint32]*query
	objects       map[uint32]*object
	arbPrograms   map[uint32]*arbProgram
	pipelines     map[uint32]*pipeline
	syncs         map[uint64]*syncObject
	lists         map[uint32][]call
}

func newGroup(base uint32) *group {
	return &group{
		textureNames:  newNamer(base),
		bufferNames:   newNamer(base),
		rbNames:       newNamer(base),
		samplerNames:  newNamer(base),
		queryNames:    newNamer(base),
		objectNames:   newNamer(base),
		arbNames:      newNamer(base),
		pipelineNames: newNamer(base),
		listNames:     newNamer(base),
		nextSync:      0x5000,
		textures:      map[uint32]*texture{},
		buffers:       map[uint32]*buffer{},
		renderbuffers: map[uint32]*renderbuffer{},
		samplers:      map[uint32]*sampler{},
		queries:       map[uint32]*query{},
		objects:       map[uint32]*object{},
		arbPrograms:   map[uint32]*arbProgram{},
		pipelines:     map[uint32]*pipeline{},
		syncs:         map[uint64]*syncObject{},
		lists:         map[uint32][]call{},
	}
}

type attrib struct {
	enabled    bool
	size       int32
	typ        gl.Enum
	normalized bool
	integer    bool
	stride     int32
	buffer     uint32
	pointer    gl.Value
	divisor    uint32
}

func defaultAttrib() attrib { return attrib{size: 4, typ: gl.FLOAT, pointer: gl.Uint(0)} }

type vertexArray struct {
	attribs       [maxAttribs]attrib
	fixed         map[gl.Enum]*attrib
	elementBuffer uint32
}

func newVertexArray() *vertexArray {
	v := &vertexArray{fixed: map[gl.Enum]*attrib{}}
	for i := range v.attribs {
		v.attribs[i] = defaultAttrib()
	}
	for _, a := range []gl.Enum{gl.VERTEX_ARRAY, gl.NORMAL_ARRAY, gl.COLOR_ARRAY, gl.TEXTURE_COORD_ARRAY} {
		at := defaultAttrib()
		if a == gl.NORMAL_ARRAY {
			at.size = 3
		}
		v.fixed[a] = &at
	}
	return v
}

// glContext is the per-context state of the driver.
type glContext struct {
	id     gl.NativeContext
	group  *group
	made   bool
	errors []gl.Enum

	caps  map[gl.Enum]bool
	state map[gl.Enum][]float32

	stacks map[gl.Enum][][16]float32

	activeTexture       int
	clientActiveTexture int
	textureUnits        [maxTextureUnits]map[gl.Enum]uint32
	samplerUnits        [maxTextureUnits]uint32
	texEnv              [maxTextureUnits]map[gl.Enum][]float32
	bufferBindings      map[gl.Enum]uint32
	indexedBuffers      map[gl.Enum]map[uint32]uint32

	fbNames         namer
	framebuffers    map[uint32]*framebuffer
	drawFramebuffer uint32
	readFramebuffer uint32
	renderbuffer    uint32

	vaoNames     namer
	vertexArrays map[uint32]*vertexArray
	defaultVAO   *vertexArray
	vertexArray  uint32

	program     uint32
	pipeline    uint32
	arbBindings map[gl.Enum]uint32
	arbEnv      map[gl.Enum]map[uint32][4]float32
	activeQuery map[gl.Enum]uint32

	lights        map[gl.Enum]map[gl.Enum][]float32
	materials     map[gl.Enum]map[gl.Enum][]float32
	currentAttrib [maxAttribs][4]float32

	listName  uint32
	listMode  gl.Enum
	listCalls []call
	listDepth int

	renderMode    gl.Enum
	feedback      []byte
	feedbackCount int
	selection     []byte
	hits          int
	nameStack     []uint32

	insideBegin bool
	beginMode   gl.Enum
	vertices    int
	draws       int
	samples     int
}

func identity() [16]float32 {
	return [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

func newContext(id gl.NativeContext, g *group, base uint32) *glContext {
	c := &glContext{
		id:             id,
		group:          g,
		caps:           map[gl.Enum]bool{gl.DITHER: true},
		stacks:         map[gl.Enum][][16]float32{},
		bufferBindings: map[gl.Enum]uint32{},
		indexedBuffers: map[gl.Enum]map[uint32]uint32{},
		fbNames:        newNamer(base),
		framebuffers:   map[uint32]*framebuffer{},
		vaoNames:       newNamer(base),
		vertexArrays:   map[uint32]*vertexArray{},
		defaultVAO:     newVertexArray(),
		arbBindings:    map[gl.Enum]uint32{},
		arbEnv:         map[gl.Enum]map[uint32][4]float32{},
		activeQuery:    map[gl.Enum]uint32{},
		lights:         map[gl.Enum]map[gl.Enum][]float32{},
		materials:      map[gl.Enum]map[gl.Enum][]float32{},
		renderMode:     gl.RENDER,
		state: map[gl.Enum][]float32{
			gl.COLOR_CLEAR_VALUE:       {0, 0, 0, 0},
			gl.DEPTH_CLEAR_VALUE:       {1},
			gl.STENCIL_CLEAR_VALUE:     {0},
			gl.DEPTH_FUNC:              {float32(gl.LESS)},
			gl.BLEND_SRC:               {float32(gl.ONE)},
			gl.BLEND_DST:               {float32(gl.ZERO)},
			gl.BLEND_EQUATION:          {0x8006},
			gl.STENCIL_FUNC:            {float32(gl.ALWAYS)},
			gl.CULL_FACE_MODE:          {float32(gl.BACK)},
			gl.FRONT_FACE:              {float32(gl.CCW)},
			gl.LINE_WIDTH:              {1},
			gl.POINT_SIZE:              {1},
			gl.POLYGON_MODE:            {0x1b02, 0x1b02},
			gl.SHADE_MODEL:             {float32(gl.SMOOTH)},
			gl.MATRIX_MODE:             {float32(gl.MODELVIEW)},
			gl.UNPACK_ALIGNMENT:        {4},
			gl.PACK_ALIGNMENT:          {4},
			gl.UNPACK_ROW_LENGTH:       {0},
			gl.PACK_ROW_LENGTH:         {0},
			gl.DRAW_BUFFER:             {float32(gl.BACK)},
			gl.READ_BUFFER:             {float32(gl.BACK)},
			gl.CURRENT_COLOR:           {1, 1, 1, 1},
			gl.CURRENT_NORMAL:          {0, 0, 1},
			gl.CURRENT_TEXTURE_COORDS:  {0, 0, 0, 1},
			gl.CURRENT_RASTER_POSITION: {0, 0, 0, 1},
			gl.DEPTH_WRITEMASK:         {1},
			gl.COLOR_WRITEMASK:         {1, 1, 1, 1},
			gl.LIST_BASE:               {0},
			gl.LIGHT_MODEL_AMBIENT:     {0.2, 0.2, 0.2, 1},
			gl.MAX_TEXTURE_UNITS:       {maxTextureUnits},
			gl.MAX_VERTEX_ATTRIBS:      {maxAttribs},
			gl.MAX_LIGHTS:              {maxLights},
		},
	}
	for _, m := range []gl.Enum{gl.MODELVIEW, gl.PROJECTION, gl.TEXTURE} {
		c.stacks[m] = [][16]float32{identity()}
	}
	for i := range c.textureUnits {
		c.textureUnits[i] = map[gl.Enum]uint32{}
		c.texEnv[i] = map[gl.Enum][]float32{}
	}
	for i := range c.currentAttrib {
		c.currentAttrib[i] = [4]float32{0, 0, 0, 1}
	}
	return c
}

func (c *glContext) fail(err gl.Enum) gl.Value {
	c.errors = append(c.errors, err)
	return gl.Void
}

// succeeds runs f and reports whether it raised no error.
func (c *glContext) succeeds(f func()) bool {
	n := len(c.errors)
	f()
	return len(c.errors) == n
}

func (c *glContext) vao() *vertexArray {
	if c.vertexArray == 0 {
		return c.defaultVAO
	}
	return c.vertexArrays[c.vertexArray]
}

func (c *glContext) unit() map[gl.Enum]uint32 { return c.textureUnits[c.activeTexture] }

func (c *glContext) matrixMode() gl.Enum { return gl.Enum(c.state[gl.MATRIX_MODE][0]) }

func (c *glContext) matrix() *[16]float32 {
	s := c.stacks[c.matrixMode()]
	return &s[len(s)-1]
}

func (d *Driver) wrap(e gl.Entrypoint, p proc) gl.Proc {
	listable := e.Describe().Flags.Has(gl.FlagListable)
	return func(args []gl.Value) gl.Value {
		d.Calls++
		c := d.current
		if c == nil {
			return gl.Void
		}
		if listable && c.listName != 0 {
			c.listCalls = append(c.listCalls, call{ep: e, fn: p, args: cloneArgs(args)})
			if c.listMode == gl.COMPILE {
				return gl.Void
			}
		}
		return p(c, args)
	}
}

func cloneArgs(args []gl.Value) []gl.Value {
	out := make([]gl.Value, len(args))
	for i, a := range args {
		if a.Kind == gl.KindMem && a.Mem != nil {
			a = gl.Mem(append([]byte(nil), a.Mem...))
		}
		out[i] = a
	}
	return out
}

func (d *Driver) register() {
	procs := map[gl.Entrypoint]proc{}
	d.registerState(procs)
	d.registerObjects(procs)
	d.registerPrograms(procs)
	d.registerDraw(procs)
	for e, p := range procs {
		d.procs.Set(e, d.wrap(e, p))
	}
}

func put32(out gl.Value, v ...int32) {
	copy(out.Mem, gl.PutI32s(v...))
}

func putF32(out gl.Value, v ...float32) {
	copy(out.Mem, gl.PutF32s(v...))
}

func putU64(out gl.Value, v ...uint64) {
	copy(out.Mem, gl.PutU64s(v...))
}

func handle(v gl.Value) uint32 { return v.Uint32() }
