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

const minFilterDefault = 0x2702 // GL_NEAREST_MIPMAP_LINEAR

type image struct {
	width, height, depth int32
	internalFormat       int32
	format, typ          gl.Enum
	// data is tightly packed.
	data       []byte
	compressed []byte
}

func (i *image) pixelSize() int { return gl.ImageSize(1, 1, 1, i.format, i.typ, 1) }

type levelKey struct {
	face  gl.Enum
	level int32
}

type texture struct {
	target    gl.Enum
	levels    map[levelKey]*image
	params    map[gl.Enum][]float32
	immutable bool
	storage   int32
}

type buffer struct {
	data        []byte
	usage       gl.Enum
	mapped      bool
	mapOffset   int
	mapLength   int
	access      gl.Enum
	accessFlags uint32
}

type renderbuffer struct {
	internalFormat gl.Enum
	width, height  int32
	samples        int32
	data           []byte
}

type attachment struct {
	typ   gl.Enum
	name  uint32
	level int32
	layer int32
	face  gl.Enum
}

type framebuffer struct {
	attachments map[gl.Enum]attachment
}

type sampler struct {
	params map[gl.Enum][]float32
}

type query struct {
	target gl.Enum
	active bool
	start  int
	result int64
}

type syncObject struct {
	condition gl.Enum
}

var textureParams = map[gl.Enum]float32{
	gl.TEXTURE_MIN_FILTER:  minFilterDefault,
	gl.TEXTURE_MAG_FILTER:  float32(gl.LINEAR),
	gl.TEXTURE_WRAP_S:      float32(gl.REPEAT),
	gl.TEXTURE_WRAP_T:      float32(gl.REPEAT),
	gl.TEXTURE_WRAP_R:      float32(gl.REPEAT),
	gl.TEXTURE_BASE_LEVEL:  0,
	gl.TEXTURE_MAX_LEVEL:   1000,
}

func bindTarget(target gl.Enum) gl.Enum {
	if target >= gl.TEXTURE_CUBE_MAP_POSITIVE_X && target < gl.TEXTURE_CUBE_MAP_POSITIVE_X+6 {
		return gl.TEXTURE_CUBE_MAP
	}
	return target
}

func (c *glContext) boundTexture(target gl.Enum) *texture {
	return c.group.textures[c.unit()[bindTarget(target)]]
}

func (c *glContext) boundBuffer(target gl.Enum) (uint32, *buffer) {
	var name uint32
	if target == gl.ELEMENT_ARRAY_BUFFER {
		name = c.vao().elementBuffer
	} else {
		name = c.bufferBindings[target]
	}
	return name, c.group.buffers[name]
}

// clientData resolves a data argument: client memory, or an offset into the
// buffer bound to target.
func (c *glContext) clientData(target gl.Enum, v gl.Value, size int) []byte {
	if v.Kind == gl.KindMem {
		return v.Mem
	}
	if _, b := c.boundBuffer(target); b != nil {
		off := int(v.Uint())
		if off <= len(b.data) {
			end := off + size
			if end > len(b.data) {
				end = len(b.data)
			}
			return b.data[off:end]
		}
	}
	return nil
}

// unpackRows strips the row padding of an aligned client image.
func unpackRows(src []byte, width, rows, pixel, align int) []byte {
	packed := width * pixel
	stride := packed
	if align > 1 {
		stride = (packed + align - 1) / align * align
	}
	out := make([]byte, packed*rows)
	for r := 0; r < rows; r++ {
		if r*stride >= len(src) {
			break
		}
		end := r*stride + packed
		if end > len(src) {
			end = len(src)
		}
		copy(out[r*packed:], src[r*stride:end])
	}
	return out
}

// packRows pads a tightly packed image to align.
func packRows(dst, src []byte, width, rows, pixel, align int) {
	packed := width * pixel
	stride := packed
	if align > 1 {
		stride = (packed + align - 1) / align * align
	}
	for r := 0; r < rows && r*stride < len(dst); r++ {
		copy(dst[r*stride:], src[r*packed:(r+1)*packed])
	}
}

func (d *Driver) registerObjects(p map[gl.Entrypoint]proc) {
	d.registerTextures(p)
	d.registerBuffers(p)
	d.registerFramebuffers(p)
	d.registerSamplersAndQueries(p)
	d.registerVertexArrays(p)
	d.registerSyncs(p)
}

func genInto(n *namer, count gl.Value, out gl.Value) []uint32 {
	names := make([]uint32, count.Int())
	for i := range names {
		names[i] = n.gen()
	}
	copy(out.Mem, gl.PutU32s(names...))
	return names
}

func (d *Driver) registerTextures(p map[gl.Entrypoint]proc) {
	p[gl.GenTextures] = func(c *glContext, a []gl.Value) gl.Value {
		if a[0].Int() < 0 {
			return c.fail(gl.INVALID_VALUE)
		}
		genInto(&c.group.textureNames, a[0], a[1])
		return gl.Void
	}
	p[gl.CreateTextures] = func(c *glContext, a []gl.Value) gl.Value {
		for _, n := range genInto(&c.group.textureNames, a[1], a[2]) {
			c.group.textures[n] = &texture{target: a[0].Enum(), levels: map[levelKey]*image{}, params: map[gl.Enum][]float32{}}
		}
		return gl.Void
	}
	p[gl.DeleteTextures] = func(c *glContext, a []gl.Value) gl.Value {
		for _, n := range gl.U32s(a[1].Mem) {
			if n == 0 {
				continue
			}
			delete(c.group.textures, n)
			c.group.textureNames.free(n)
			for _, u := range c.textureUnits {
				for t, b := range u {
					if b == n {
						delete(u, t)
					}
				}
			}
		}
		return gl.Void
	}
	p[gl.BindTexture] = func(c *glContext, a []gl.Value) gl.Value {
		target, n := a[0].Enum(), handle(a[1])
		if n != 0 {
			t, ok := c.group.textures[n]
			switch {
			case !ok:
				c.group.textureNames.reserve(n)
				c.group.textures[n] = &texture{target: target, levels: map[levelKey]*image{}, params: map[gl.Enum][]float32{}}
			case t.target != target:
				return c.fail(gl.INVALID_OPERATION)
			}
		}
		if n == 0 {
			delete(c.unit(), target)
		} else {
			c.unit()[target] = n
		}
		return gl.Void
	}
	p[gl.IsTexture] = func(c *glContext, a []gl.Value) gl.Value {
		_, ok := c.group.textures[handle(a[0])]
		return gl.Bool(ok)
	}
	texImage := func(c *glContext, target gl.Enum, level, internal, w, h, depth int32, format, typ gl.Enum, pixels gl.Value) gl.Value {
		t := c.boundTexture(target)
		if t == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		if t.immutable {
			return c.fail(gl.INVALID_OPERATION)
		}
		if w < 0 || h < 0 || level < 0 {
			return c.fail(gl.INVALID_VALUE)
		}
		img := &image{width: w, height: h, depth: depth, internalFormat: internal, format: format, typ: typ}
		pixel := img.pixelSize()
		align := int(c.state[gl.UNPACK_ALIGNMENT][0])
		size := gl.ImageSize(int(w), int(h), int(depth), format, typ, align)
		if src := c.clientData(gl.PIXEL_UNPACK_BUFFER, pixels, size); src != nil {
			img.data = unpackRows(src, int(w), int(h*depth), pixel, align)
		} else {
			img.data = make([]byte, int(w*h*depth)*pixel)
		}
		t.levels[levelKey{target, level}] = img
		return gl.Void
	}
	p[gl.TexImage2D] = func(c *glContext, a []gl.Value) gl.Value {
		return texImage(c, a[0].Enum(), a[1].Int32(), a[2].Int32(), a[3].Int32(), a[4].Int32(), 1, a[6].Enum(), a[7].Enum(), a[8])
	}
	p[gl.TexImage3D] = func(c *glContext, a []gl.Value) gl.Value {
		return texImage(c, a[0].Enum(), a[1].Int32(), a[2].Int32(), a[3].Int32(), a[4].Int32(), a[5].Int32(), a[7].Enum(), a[8].Enum(), a[9])
	}
	subImage := func(c *glContext, target gl.Enum, level int32, x, y, z, w, h, dd int, format, typ gl.Enum, pixels gl.Value) gl.Value {
		t := c.boundTexture(target)
		if t == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		img, ok := t.levels[levelKey{target, level}]
		if !ok || img.format != format || img.typ != typ {
			return c.fail(gl.INVALID_OPERATION)
		}
		if x < 0 || y < 0 || z < 0 || x+w > int(img.width) || y+h > int(img.height) || z+dd > int(max1(img.depth)) {
			return c.fail(gl.INVALID_VALUE)
		}
		pixel := img.pixelSize()
		align := int(c.state[gl.UNPACK_ALIGNMENT][0])
		src := c.clientData(gl.PIXEL_UNPACK_BUFFER, pixels, gl.ImageSize(w, h, dd, format, typ, align))
		if src == nil {
			return gl.Void
		}
		rows := unpackRows(src, w, h*dd, pixel, align)
		for r := 0; r < h*dd; r++ {
			slice, row := z+r/h, y+r%h
			dst := ((slice*int(img.height)+row)*int(img.width) + x) * pixel
			copy(img.data[dst:dst+w*pixel], rows[r*w*pixel:])
		}
		return gl.Void
	}
	p[gl.TexSubImage2D] = func(c *glContext, a []gl.Value) gl.Value {
		return subImage(c, a[0].Enum(), a[1].Int32(), int(a[2].Int()), int(a[3].Int()), 0,
			int(a[4].Int()), int(a[5].Int()), 1, a[6].Enum(), a[7].Enum(), a[8])
	}
	p[gl.TexSubImage3D] = func(c *glContext, a []gl.Value) gl.Value {
		return subImage(c, a[0].Enum(), a[1].Int32(), int(a[2].Int()), int(a[3].Int()), int(a[4].Int()),
			int(a[5].Int()), int(a[6].Int()), int(a[7].Int()), a[8].Enum(), a[9].Enum(), a[10])
	}
	// Compressed images are kept as opaque blocks. Reads see zeros in the
	// uncompressed format the internal format maps to.
	p[gl.CompressedTexImage2D] = func(c *glContext, a []gl.Value) gl.Value {
		target, level, internal := a[0].Enum(), a[1].Int32(), a[2].Enum()
		w, h, size := a[3].Int32(), a[4].Int32(), int(a[6].Int())
		if size < 0 {
			return c.fail(gl.INVALID_VALUE)
		}
		format, typ := gl.StorageFormat(internal)
		if !c.succeeds(func() { texImage(c, target, level, int32(internal), w, h, 1, format, typ, gl.Mem(nil)) }) {
			return gl.Void
		}
		img := c.boundTexture(target).levels[levelKey{target, level}]
		img.compressed = append([]byte(nil), c.clientData(gl.PIXEL_UNPACK_BUFFER, a[7], size)...)
		return gl.Void
	}
	p[gl.CompressedTexSubImage2D] = func(c *glContext, a []gl.Value) gl.Value {
		target, level := a[0].Enum(), a[1].Int32()
		t := c.boundTexture(target)
		if t == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		img, ok := t.levels[levelKey{target, level}]
		if !ok || img.compressed == nil || a[6].Enum() != gl.Enum(img.internalFormat) {
			return c.fail(gl.INVALID_OPERATION)
		}
		return gl.Void
	}
	copyImage := func(c *glContext, img *image, x, y, dx, dy, w, h int) gl.Value {
		s := d.colorSurface(c, c.readFramebuffer)
		if s == nil {
			return c.fail(gl.INVALID_FRAMEBUFFER_OPERATION)
		}
		pixel := img.pixelSize()
		for r := 0; r < h; r++ {
			for col := 0; col < w; col++ {
				sx, sy := x+col, y+r
				if sx < 0 || sy < 0 || sx >= s.width || sy >= s.height {
					continue
				}
				src := (sy*s.width + sx) * 4
				dst := ((dy+r)*int(img.width) + dx + col) * pixel
				copy(img.data[dst:dst+pixel], s.data[src:src+4])
			}
		}
		return gl.Void
	}
	p[gl.CopyTexImage2D] = func(c *glContext, a []gl.Value) gl.Value {
		target, level := a[0].Enum(), a[1].Int32()
		w, h := a[5].Int32(), a[6].Int32()
		if !c.succeeds(func() { texImage(c, target, level, int32(gl.RGBA8), w, h, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Mem(nil)) }) {
			return gl.Void
		}
		img := c.boundTexture(target).levels[levelKey{target, level}]
		return copyImage(c, img, int(a[3].Int()), int(a[4].Int()), 0, 0, int(w), int(h))
	}
	p[gl.CopyTexSubImage2D] = func(c *glContext, a []gl.Value) gl.Value {
		target, level := a[0].Enum(), a[1].Int32()
		t := c.boundTexture(target)
		if t == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		img, ok := t.levels[levelKey{target, level}]
		if !ok || img.format != gl.RGBA || img.typ != gl.UNSIGNED_BYTE {
			return c.fail(gl.INVALID_OPERATION)
		}
		dx, dy, w, h := int(a[2].Int()), int(a[3].Int()), int(a[6].Int()), int(a[7].Int())
		if dx < 0 || dy < 0 || dx+w > int(img.width) || dy+h > int(img.height) {
			return c.fail(gl.INVALID_VALUE)
		}
		return copyImage(c, img, int(a[4].Int()), int(a[5].Int()), dx, dy, w, h)
	}
	p[gl.TexStorage2D] = func(c *glContext, a []gl.Value) gl.Value {
		target, levels, internal := a[0].Enum(), a[1].Int32(), a[2].Enum()
		w, h := a[3].Int32(), a[4].Int32()
		t := c.boundTexture(target)
		if t == nil || t.immutable {
			return c.fail(gl.INVALID_OPERATION)
		}
		if levels < 1 || w < 1 || h < 1 {
			return c.fail(gl.INVALID_VALUE)
		}
		format, typ := gl.StorageFormat(internal)
		faces := []gl.Enum{target}
		if target == gl.TEXTURE_CUBE_MAP {
			faces = faces[:0]
			for i := gl.Enum(0); i < 6; i++ {
				faces = append(faces, gl.TEXTURE_CUBE_MAP_POSITIVE_X+i)
			}
		}
		for l := int32(0); l < levels; l++ {
			for _, f := range faces {
				img := &image{width: w, height: h, depth: 1, internalFormat: int32(internal), format: format, typ: typ}
				img.data = make([]byte, int(w*h)*img.pixelSize())
				t.levels[levelKey{f, l}] = img
			}
			w, h = max1(w/2), max1(h/2)
		}
		t.immutable, t.storage = true, levels
		return gl.Void
	}
	p[gl.TexStorage3D] = func(c *glContext, a []gl.Value) gl.Value {
		target, levels, internal := a[0].Enum(), a[1].Int32(), a[2].Enum()
		w, h, dd := a[3].Int32(), a[4].Int32(), a[5].Int32()
		t := c.boundTexture(target)
		if t == nil || t.immutable {
			return c.fail(gl.INVALID_OPERATION)
		}
		if levels < 1 || w < 1 || h < 1 || dd < 1 {
			return c.fail(gl.INVALID_VALUE)
		}
		format, typ := gl.StorageFormat(internal)
		for l := int32(0); l < levels; l++ {
			img := &image{width: w, height: h, depth: dd, internalFormat: int32(internal), format: format, typ: typ}
			img.data = make([]byte, int(w*h*dd)*img.pixelSize())
			t.levels[levelKey{target, l}] = img
			w, h = max1(w/2), max1(h/2)
			if target == gl.TEXTURE_3D {
				dd = max1(dd / 2)
			}
		}
		t.immutable, t.storage = true, levels
		return gl.Void
	}
	texParam := func(c *glContext, params map[gl.Enum][]float32, pname gl.Enum, v []float32) gl.Value {
		if _, ok := textureParams[pname]; !ok {
			return c.fail(gl.INVALID_ENUM)
		}
		params[pname] = v
		return gl.Void
	}
	texParams := func(c *glContext, target gl.Enum) map[gl.Enum][]float32 {
		if t := c.boundTexture(target); t != nil {
			return t.params
		}
		return nil
	}
	p[gl.TexParameteri] = func(c *glContext, a []gl.Value) gl.Value {
		params := texParams(c, a[0].Enum())
		if params == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		return texParam(c, params, a[1].Enum(), []float32{float32(a[2].Int())})
	}
	p[gl.TexParameterf] = func(c *glContext, a []gl.Value) gl.Value {
		params := texParams(c, a[0].Enum())
		if params == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		return texParam(c, params, a[1].Enum(), []float32{a[2].Float32()})
	}
	p[gl.TexParameteriv] = func(c *glContext, a []gl.Value) gl.Value {
		params := texParams(c, a[0].Enum())
		if params == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		v := gl.I32s(a[2].Mem)
		f := make([]float32, len(v))
		for i, x := range v {
			f[i] = float32(x)
		}
		return texParam(c, params, a[1].Enum(), f)
	}
	p[gl.TexParameterfv] = func(c *glContext, a []gl.Value) gl.Value {
		params := texParams(c, a[0].Enum())
		if params == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		return texParam(c, params, a[1].Enum(), gl.F32s(a[2].Mem))
	}
	p[gl.GetTexParameteriv] = func(c *glContext, a []gl.Value) gl.Value {
		t := c.boundTexture(a[0].Enum())
		if t == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		switch a[1].Enum() {
		case gl.TEXTURE_IMMUTABLE_FORMAT:
			put32(a[2], boolInt(t.immutable))
			return gl.Void
		case gl.TEXTURE_IMMUTABLE_LEVELS:
			put32(a[2], t.storage)
			return gl.Void
		}
		return getParam(c, t.params, a[1].Enum(), a[2])
	}
	p[gl.GetTexLevelParameteriv] = func(c *glContext, a []gl.Value) gl.Value {
		target, level, pname := a[0].Enum(), a[1].Int32(), a[2].Enum()
		t := c.boundTexture(target)
		if t == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		img := t.levels[levelKey{target, level}]
		if img == nil {
			img = &image{}
		}
		switch pname {
		case gl.TEXTURE_WIDTH:
			put32(a[3], img.width)
		case gl.TEXTURE_HEIGHT:
			put32(a[3], img.height)
		case gl.TEXTURE_DEPTH:
			put32(a[3], img.depth)
		case gl.TEXTURE_INTERNAL_FORMAT:
			put32(a[3], img.internalFormat)
		default:
			return c.fail(gl.INVALID_ENUM)
		}
		return gl.Void
	}
	p[gl.GetTexImage] = func(c *glContext, a []gl.Value) gl.Value {
		target, level := a[0].Enum(), a[1].Int32()
		t := c.boundTexture(target)
		if t == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		img, ok := t.levels[levelKey{target, level}]
		if !ok {
			return c.fail(gl.INVALID_VALUE)
		}
		if img.format != a[2].Enum() || img.typ != a[3].Enum() {
			return c.fail(gl.INVALID_OPERATION)
		}
		align := int(c.state[gl.PACK_ALIGNMENT][0])
		packRows(a[4].Mem, img.data, int(img.width), int(img.height*max1(img.depth)), img.pixelSize(), align)
		return gl.Void
	}
	p[gl.GenerateMipmap] = func(c *glContext, a []gl.Value) gl.Value {
		target := a[0].Enum()
		t := c.boundTexture(target)
		if t == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		base, ok := t.levels[levelKey{target, 0}]
		if !ok {
			return c.fail(gl.INVALID_OPERATION)
		}
		w, h := base.width, base.height
		for l := int32(1); w > 1 || h > 1; l++ {
			w, h = max1(w/2), max1(h/2)
			img := &image{width: w, height: h, depth: 1, internalFormat: base.internalFormat, format: base.format, typ: base.typ}
			img.data = make([]byte, int(w*h)*img.pixelSize())
			t.levels[levelKey{target, l}] = img
		}
		return gl.Void
	}
}

func max1(v int32) int32 {
	if v < 1 {
		return 1
	}
	return v
}

func getParam(c *glContext, params map[gl.Enum][]float32, pname gl.Enum, out gl.Value) gl.Value {
	def, ok := textureParams[pname]
	if !ok {
		return c.fail(gl.INVALID_ENUM)
	}
	v, ok := params[pname]
	if !ok {
		v = []float32{def}
	}
	ints := make([]int32, len(v))
	for i, f := range v {
		ints[i] = int32(f)
	}
	put32(out, ints...)
	return gl.Void
}

func (d *Driver) registerBuffers(p map[gl.Entrypoint]proc) {
	g := func(c *glContext) *group { return c.group }
	p[gl.GenBuffers] = func(c *glContext, a []gl.Value) gl.Value {
		genInto(&g(c).bufferNames, a[0], a[1])
		return gl.Void
	}
	p[gl.CreateBuffers] = func(c *glContext, a []gl.Value) gl.Value {
		for _, n := range genInto(&g(c).bufferNames, a[0], a[1]) {
			g(c).buffers[n] = &buffer{usage: gl.STATIC_DRAW}
		}
		return gl.Void
	}
	p[gl.DeleteBuffers] = func(c *glContext, a []gl.Value) gl.Value {
		for _, n := range gl.U32s(a[1].Mem) {
			if n == 0 {
				continue
			}
			delete(g(c).buffers, n)
			g(c).bufferNames.free(n)
			for t, b := range c.bufferBindings {
				if b == n {
					delete(c.bufferBindings, t)
				}
			}
			if v := c.vao(); v.elementBuffer == n {
				v.elementBuffer = 0
			}
		}
		return gl.Void
	}
	bind := func(c *glContext, target gl.Enum, n uint32) {
		if n != 0 {
			if _, ok := g(c).buffers[n]; !ok {
				g(c).bufferNames.reserve(n)
				g(c).buffers[n] = &buffer{usage: gl.STATIC_DRAW}
			}
		}
		if target == gl.ELEMENT_ARRAY_BUFFER {
			c.vao().elementBuffer = n
		} else if n == 0 {
			delete(c.bufferBindings, target)
		} else {
			c.bufferBindings[target] = n
		}
	}
	p[gl.BindBuffer] = func(c *glContext, a []gl.Value) gl.Value {
		bind(c, a[0].Enum(), handle(a[1]))
		return gl.Void
	}
	indexed := func(c *glContext, a []gl.Value) gl.Value {
		target, index, n := a[0].Enum(), a[1].Uint32(), handle(a[2])
		bind(c, target, n)
		if c.indexedBuffers[target] == nil {
			c.indexedBuffers[target] = map[uint32]uint32{}
		}
		c.indexedBuffers[target][index] = n
		return gl.Void
	}
	p[gl.BindBufferBase] = indexed
	p[gl.BindBufferRange] = indexed
	p[gl.IsBuffer] = func(c *glContext, a []gl.Value) gl.Value {
		_, ok := g(c).buffers[handle(a[0])]
		return gl.Bool(ok)
	}
	p[gl.BufferData] = func(c *glContext, a []gl.Value) gl.Value {
		_, b := c.boundBuffer(a[0].Enum())
		if b == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		size := int(a[1].Int())
		if size < 0 {
			return c.fail(gl.INVALID_VALUE)
		}
		b.mapped = false
		b.data = make([]byte, size)
		copy(b.data, a[2].Mem)
		b.usage = a[3].Enum()
		return gl.Void
	}
	p[gl.BufferSubData] = func(c *glContext, a []gl.Value) gl.Value {
		_, b := c.boundBuffer(a[0].Enum())
		if b == nil || b.mapped {
			return c.fail(gl.INVALID_OPERATION)
		}
		off, size := int(a[1].Int()), int(a[2].Int())
		if off < 0 || size < 0 || off+size > len(b.data) {
			return c.fail(gl.INVALID_VALUE)
		}
		copy(b.data[off:off+size], a[3].Mem)
		return gl.Void
	}
	p[gl.GetBufferSubData] = func(c *glContext, a []gl.Value) gl.Value {
		_, b := c.boundBuffer(a[0].Enum())
		if b == nil || b.mapped {
			return c.fail(gl.INVALID_OPERATION)
		}
		off, size := int(a[1].Int()), int(a[2].Int())
		if off < 0 || size < 0 || off+size > len(b.data) {
			return c.fail(gl.INVALID_VALUE)
		}
		copy(a[3].Mem, b.data[off:off+size])
		return gl.Void
	}
	mapRange := func(c *glContext, target gl.Enum, off, length int, access gl.Enum, flags uint32) gl.Value {
		_, b := c.boundBuffer(target)
		if b == nil || b.mapped {
			c.fail(gl.INVALID_OPERATION)
			return gl.Mem(nil)
		}
		if off < 0 || length < 0 || off+length > len(b.data) {
			c.fail(gl.INVALID_VALUE)
			return gl.Mem(nil)
		}
		switch {
		case flags&gl.MAP_INVALIDATE_BUFFER_BIT != 0:
			clear(b.data)
		case flags&gl.MAP_INVALIDATE_RANGE_BIT != 0:
			clear(b.data[off : off+length])
		}
		b.mapped, b.mapOffset, b.mapLength = true, off, length
		b.access, b.accessFlags = access, flags
		return gl.Mem(b.data[off : off+length])
	}
	p[gl.MapBuffer] = func(c *glContext, a []gl.Value) gl.Value {
		_, b := c.boundBuffer(a[0].Enum())
		if b == nil {
			c.fail(gl.INVALID_OPERATION)
			return gl.Mem(nil)
		}
		var flags uint32
		switch a[1].Enum() {
		case gl.READ_ONLY:
			flags = gl.MAP_READ_BIT
		case gl.WRITE_ONLY:
			flags = gl.MAP_WRITE_BIT
		case gl.READ_WRITE:
			flags = gl.MAP_READ_BIT | gl.MAP_WRITE_BIT
		default:
			c.fail(gl.INVALID_ENUM)
			return gl.Mem(nil)
		}
		return mapRange(c, a[0].Enum(), 0, len(b.data), a[1].Enum(), flags)
	}
	p[gl.MapBufferRange] = func(c *glContext, a []gl.Value) gl.Value {
		flags := a[3].Uint32()
		if flags&(gl.MAP_READ_BIT|gl.MAP_WRITE_BIT) == 0 {
			c.fail(gl.INVALID_OPERATION)
			return gl.Mem(nil)
		}
		access := gl.READ_WRITE
		switch flags & (gl.MAP_READ_BIT | gl.MAP_WRITE_BIT) {
		case gl.MAP_READ_BIT:
			access = gl.READ_ONLY
		case gl.MAP_WRITE_BIT:
			access = gl.WRITE_ONLY
		}
		return mapRange(c, a[0].Enum(), int(a[1].Int()), int(a[2].Int()), access, flags)
	}
	p[gl.UnmapBuffer] = func(c *glContext, a []gl.Value) gl.Value {
		_, b := c.boundBuffer(a[0].Enum())
		if b == nil || !b.mapped {
			c.fail(gl.INVALID_OPERATION)
			return gl.Bool(false)
		}
		b.mapped, b.mapOffset, b.mapLength, b.access, b.accessFlags = false, 0, 0, 0, 0
		return gl.Bool(true)
	}
	p[gl.FlushMappedBufferRange] = func(c *glContext, a []gl.Value) gl.Value {
		_, b := c.boundBuffer(a[0].Enum())
		if b == nil || !b.mapped || b.accessFlags&gl.MAP_FLUSH_EXPLICIT_BIT == 0 {
			return c.fail(gl.INVALID_OPERATION)
		}
		if off, l := int(a[1].Int()), int(a[2].Int()); off < 0 || l < 0 || off+l > b.mapLength {
			return c.fail(gl.INVALID_VALUE)
		}
		return gl.Void
	}
	p[gl.GetBufferParameteriv] = func(c *glContext, a []gl.Value) gl.Value {
		_, b := c.boundBuffer(a[0].Enum())
		if b == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		var v int32
		switch a[1].Enum() {
		case gl.BUFFER_SIZE:
			v = int32(len(b.data))
		case gl.BUFFER_USAGE:
			v = int32(b.usage)
		case gl.BUFFER_MAPPED:
			if b.mapped {
				v = 1
			}
		case gl.BUFFER_ACCESS:
			v = int32(b.access)
			if !b.mapped {
				v = int32(gl.READ_WRITE)
			}
		case gl.BUFFER_ACCESS_FLAGS:
			v = int32(b.accessFlags)
		case gl.BUFFER_MAP_OFFSET:
			v = int32(b.mapOffset)
		case gl.BUFFER_MAP_LENGTH:
			v = int32(b.mapLength)
		default:
			return c.fail(gl.INVALID_ENUM)
		}
		put32(a[2], v)
		return gl.Void
	}
	p[gl.CopyBufferSubData] = func(c *glContext, a []gl.Value) gl.Value {
		_, src := c.boundBuffer(a[0].Enum())
		_, dst := c.boundBuffer(a[1].Enum())
		if src == nil || dst == nil || src.mapped || dst.mapped {
			return c.fail(gl.INVALID_OPERATION)
		}
		ro, wo, size := int(a[2].Int()), int(a[3].Int()), int(a[4].Int())
		if ro < 0 || wo < 0 || size < 0 || ro+size > len(src.data) || wo+size > len(dst.data) {
			return c.fail(gl.INVALID_VALUE)
		}
		copy(dst.data[wo:wo+size], src.data[ro:ro+size])
		return gl.Void
	}
}

func (c *glContext) framebufferFor(target gl.Enum) (uint32, bool) {
	switch target {
	case gl.FRAMEBUFFER, gl.DRAW_FRAMEBUFFER:
		return c.drawFramebuffer, true
	case gl.READ_FRAMEBUFFER:
		return c.readFramebuffer, true
	}
	return 0, false
}

func (d *Driver) registerFramebuffers(p map[gl.Entrypoint]proc) {
	p[gl.GenFramebuffers] = func(c *glContext, a []gl.Value) gl.Value {
		genInto(&c.fbNames, a[0], a[1])
		return gl.Void
	}
	p[gl.DeleteFramebuffers] = func(c *glContext, a []gl.Value) gl.Value {
		for _, n := range gl.U32s(a[1].Mem) {
			if n == 0 {
				continue
			}
			delete(c.framebuffers, n)
			c.fbNames.free(n)
			if c.drawFramebuffer == n {
				c.drawFramebuffer = 0
			}
			if c.readFramebuffer == n {
				c.readFramebuffer = 0
			}
		}
		return gl.Void
	}
	p[gl.BindFramebuffer] = func(c *glContext, a []gl.Value) gl.Value {
		target, n := a[0].Enum(), handle(a[1])
		if _, ok := c.framebufferFor(target); !ok {
			return c.fail(gl.INVALID_ENUM)
		}
		if n != 0 {
			if _, ok := c.framebuffers[n]; !ok {
				c.fbNames.reserve(n)
				c.framebuffers[n] = &framebuffer{attachments: map[gl.Enum]attachment{}}
			}
		}
		switch target {
		case gl.FRAMEBUFFER:
			c.drawFramebuffer, c.readFramebuffer = n, n
		case gl.DRAW_FRAMEBUFFER:
			c.drawFramebuffer = n
		case gl.READ_FRAMEBUFFER:
			c.readFramebuffer = n
		}
		return gl.Void
	}
	p[gl.IsFramebuffer] = func(c *glContext, a []gl.Value) gl.Value {
		_, ok := c.framebuffers[handle(a[0])]
		return gl.Bool(ok)
	}
	p[gl.CheckFramebufferStatus] = func(c *glContext, a []gl.Value) gl.Value {
		n, ok := c.framebufferFor(a[0].Enum())
		if !ok {
			c.fail(gl.INVALID_ENUM)
			return gl.E(gl.NONE)
		}
		return gl.E(d.framebufferStatus(c, n))
	}
	attach := func(c *glContext, target, point gl.Enum, at attachment) gl.Value {
		n, ok := c.framebufferFor(target)
		if !ok {
			return c.fail(gl.INVALID_ENUM)
		}
		fb := c.framebuffers[n]
		if fb == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		if at.name == 0 {
			delete(fb.attachments, point)
		} else {
			fb.attachments[point] = at
		}
		return gl.Void
	}
	p[gl.FramebufferTexture] = func(c *glContext, a []gl.Value) gl.Value {
		return attach(c, a[0].Enum(), a[1].Enum(), attachment{typ: gl.TEXTURE, name: handle(a[2]), level: a[3].Int32()})
	}
	p[gl.FramebufferTexture2D] = func(c *glContext, a []gl.Value) gl.Value {
		return attach(c, a[0].Enum(), a[1].Enum(), attachment{typ: gl.TEXTURE, face: a[2].Enum(), name: handle(a[3]), level: a[4].Int32()})
	}
	p[gl.FramebufferTextureLayer] = func(c *glContext, a []gl.Value) gl.Value {
		return attach(c, a[0].Enum(), a[1].Enum(), attachment{typ: gl.TEXTURE, name: handle(a[2]), level: a[3].Int32(), layer: a[4].Int32()})
	}
	p[gl.FramebufferRenderbuffer] = func(c *glContext, a []gl.Value) gl.Value {
		return attach(c, a[0].Enum(), a[1].Enum(), attachment{typ: gl.RENDERBUFFER, name: handle(a[3])})
	}
	p[gl.GetFramebufferAttachmentParameteriv] = func(c *glContext, a []gl.Value) gl.Value {
		n, ok := c.framebufferFor(a[0].Enum())
		if !ok {
			return c.fail(gl.INVALID_ENUM)
		}
		if n == 0 {
			if a[2].Enum() == gl.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE {
				put32(a[3], int32(gl.FRAMEBUFFER_DEFAULT))
				return gl.Void
			}
			return c.fail(gl.INVALID_OPERATION)
		}
		at, attached := c.framebuffers[n].attachments[a[1].Enum()]
		switch a[2].Enum() {
		case gl.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE:
			if !attached {
				put32(a[3], int32(gl.NONE))
			} else {
				put32(a[3], int32(at.typ))
			}
		case gl.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME:
			put32(a[3], int32(at.name))
		case gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL:
			if !attached || at.typ != gl.TEXTURE {
				return c.fail(gl.INVALID_OPERATION)
			}
			put32(a[3], at.level)
		case gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE:
			if !attached || at.typ != gl.TEXTURE {
				return c.fail(gl.INVALID_OPERATION)
			}
			put32(a[3], int32(at.face))
		case gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_LAYER:
			if !attached || at.typ != gl.TEXTURE {
				return c.fail(gl.INVALID_OPERATION)
			}
			put32(a[3], at.layer)
		default:
			return c.fail(gl.INVALID_ENUM)
		}
		return gl.Void
	}
	p[gl.GenRenderbuffers] = func(c *glContext, a []gl.Value) gl.Value {
		genInto(&c.group.rbNames, a[0], a[1])
		return gl.Void
	}
	p[gl.DeleteRenderbuffers] = func(c *glContext, a []gl.Value) gl.Value {
		for _, n := range gl.U32s(a[1].Mem) {
			if n == 0 {
				continue
			}
			delete(c.group.renderbuffers, n)
			c.group.rbNames.free(n)
			if c.renderbuffer == n {
				c.renderbuffer = 0
			}
		}
		return gl.Void
	}
	p[gl.BindRenderbuffer] = func(c *glContext, a []gl.Value) gl.Value {
		if a[0].Enum() != gl.RENDERBUFFER {
			return c.fail(gl.INVALID_ENUM)
		}
		n := handle(a[1])
		if n != 0 {
			if _, ok := c.group.renderbuffers[n]; !ok {
				c.group.rbNames.reserve(n)
				c.group.renderbuffers[n] = &renderbuffer{internalFormat: gl.RGBA}
			}
		}
		c.renderbuffer = n
		return gl.Void
	}
	p[gl.IsRenderbuffer] = func(c *glContext, a []gl.Value) gl.Value {
		_, ok := c.group.renderbuffers[handle(a[0])]
		return gl.Bool(ok)
	}
	storage := func(c *glContext, samples int32, internal gl.Enum, w, h int32) gl.Value {
		rb := c.group.renderbuffers[c.renderbuffer]
		if rb == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		if w < 0 || h < 0 || samples < 0 {
			return c.fail(gl.INVALID_VALUE)
		}
		rb.internalFormat, rb.width, rb.height, rb.samples = internal, w, h, samples
		rb.data = make([]byte, int(w*h)*4)
		return gl.Void
	}
	p[gl.RenderbufferStorage] = func(c *glContext, a []gl.Value) gl.Value {
		return storage(c, 0, a[1].Enum(), a[2].Int32(), a[3].Int32())
	}
	p[gl.RenderbufferStorageMultisample] = func(c *glContext, a []gl.Value) gl.Value {
		return storage(c, a[1].Int32(), a[2].Enum(), a[3].Int32(), a[4].Int32())
	}
	p[gl.GetRenderbufferParameteriv] = func(c *glContext, a []gl.Value) gl.Value {
		rb := c.group.renderbuffers[c.renderbuffer]
		if rb == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		switch a[1].Enum() {
		case gl.RENDERBUFFER_WIDTH:
			put32(a[2], rb.width)
		case gl.RENDERBUFFER_HEIGHT:
			put32(a[2], rb.height)
		case gl.RENDERBUFFER_INTERNAL_FORMAT:
			put32(a[2], int32(rb.internalFormat))
		case gl.RENDERBUFFER_SAMPLES:
			put32(a[2], rb.samples)
		default:
			return c.fail(gl.INVALID_ENUM)
		}
		return gl.Void
	}
}

func (d *Driver) framebufferStatus(c *glContext, n uint32) gl.Enum {
	if n == 0 {
		return gl.FRAMEBUFFER_COMPLETE
	}
	fb := c.framebuffers[n]
	if fb == nil {
		return gl.FRAMEBUFFER_UNDEFINED
	}
	if len(fb.attachments) == 0 {
		return gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	for _, at := range fb.attachments {
		if s := d.attachmentSurface(c, at); s == nil || s.width == 0 || s.height == 0 {
			return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
	}
	return gl.FRAMEBUFFER_COMPLETE
}

func (d *Driver) registerSamplersAndQueries(p map[gl.Entrypoint]proc) {
	p[gl.GenSamplers] = func(c *glContext, a []gl.Value) gl.Value {
		for _, n := range genInto(&c.group.samplerNames, a[0], a[1]) {
			c.group.samplers[n] = &sampler{params: map[gl.Enum][]float32{}}
		}
		return gl.Void
	}
	p[gl.DeleteSamplers] = func(c *glContext, a []gl.Value) gl.Value {
		for _, n := range gl.U32s(a[1].Mem) {
			if n == 0 {
				continue
			}
			delete(c.group.samplers, n)
			c.group.samplerNames.free(n)
			for i, s := range c.samplerUnits {
				if s == n {
					c.samplerUnits[i] = 0
				}
			}
		}
		return gl.Void
	}
	p[gl.BindSampler] = func(c *glContext, a []gl.Value) gl.Value {
		unit, n := a[0].Uint(), handle(a[1])
		if unit >= maxTextureUnits {
			return c.fail(gl.INVALID_VALUE)
		}
		if _, ok := c.group.samplers[n]; n != 0 && !ok {
			return c.fail(gl.INVALID_OPERATION)
		}
		c.samplerUnits[unit] = n
		return gl.Void
	}
	p[gl.IsSampler] = func(c *glContext, a []gl.Value) gl.Value {
		_, ok := c.group.samplers[handle(a[0])]
		return gl.Bool(ok)
	}
	samplerParam := func(c *glContext, n uint32, pname gl.Enum, v float32) gl.Value {
		s := c.group.samplers[n]
		if s == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		if _, ok := textureParams[pname]; !ok || pname == gl.TEXTURE_BASE_LEVEL || pname == gl.TEXTURE_MAX_LEVEL {
			return c.fail(gl.INVALID_ENUM)
		}
		s.params[pname] = []float32{v}
		return gl.Void
	}
	p[gl.SamplerParameteri] = func(c *glContext, a []gl.Value) gl.Value {
		return samplerParam(c, handle(a[0]), a[1].Enum(), float32(a[2].Int()))
	}
	p[gl.SamplerParameterf] = func(c *glContext, a []gl.Value) gl.Value {
		return samplerParam(c, handle(a[0]), a[1].Enum(), a[2].Float32())
	}
	p[gl.GetSamplerParameteriv] = func(c *glContext, a []gl.Value) gl.Value {
		s := c.group.samplers[handle(a[0])]
		if s == nil {
			return c.fail(gl.INVALID_OPERATION)
		}
		return getParam(c, s.params, a[1].Enum(), a[2])
	}

	p[gl.GenQueries] = func(c *glContext, a []gl.Value) gl.Value {
		genInto(&c.group.queryNames, a[0], a[1])
		return gl.Void
	}
	p[gl.DeleteQueries] = func(c *glContext, a []gl.Value) gl.Value {
		for _, n := range gl.U32s(a[1].Mem) {
			if q := c.group.queries[n]; q != nil && q.active {
				delete(c.activeQuery, q.target)
			}
			delete(c.group.queries, n)
			c.group.queryNames.free(n)
		}
		return gl.Void
	}
	p[gl.BeginQuery] = func(c *glContext, a []gl.Value) gl.Value {
		target, n := a[0].Enum(), handle(a[1])
		if n == 0 || c.activeQuery[target] != 0 {
			return c.fail(gl.INVALID_OPERATION)
		}
		q := c.group.queries[n]
		switch {
		case q == nil:
			c.group.queryNames.reserve(n)
			q = &query{target: target}
			c.group.queries[n] = q
		case q.target != target || q.active:
			return c.fail(gl.INVALID_OPERATION)
		}
		q.active, q.start = true, c.draws
		c.activeQuery[target] = n
		return gl.Void
	}
	p[gl.EndQuery] = func(c *glContext, a []gl.Value) gl.Value {
		target := a[0].Enum()
		n := c.activeQuery[target]
		if n == 0 {
			return c.fail(gl.INVALID_OPERATION)
		}
		q := c.group.queries[n]
		q.active = false
		q.result = int64(c.draws - q.start)
		if target == gl.TIME_ELAPSED {
			q.result *= 1000
		}
		delete(c.activeQuery, target)
		return gl.Void
	}
	p[gl.QueryCounter] = func(c *glContext, a []gl.Value) gl.Value {
		n := handle(a[0])
		if a[1].Enum() != gl.TIMESTAMP {
			return c.fail(gl.INVALID_ENUM)
		}
		q := c.group.queries[n]
		if q == nil {
			c.group.queryNames.reserve(n)
			q = &query{target: gl.TIMESTAMP}
			c.group.queries[n] = q
		}
		q.result = int64(d.Calls)
		return gl.Void
	}
	p[gl.IsQuery] = func(c *glContext, a []gl.Value) gl.Value {
		_, ok := c.group.queries[handle(a[0])]
		return gl.Bool(ok)
	}
	getQuery := func(c *glContext, a []gl.Value) gl.Value {
		q := c.group.queries[handle(a[0])]
		if q == nil || q.active {
			return c.fail(gl.INVALID_OPERATION)
		}
		switch a[1].Enum() {
		case gl.QUERY_RESULT:
			put32(a[2], int32(q.result))
		case gl.QUERY_RESULT_AVAILABLE:
			put32(a[2], 1)
		default:
			return c.fail(gl.INVALID_ENUM)
		}
		return gl.Void
	}
	p[gl.GetQueryObjectiv] = getQuery
	p[gl.GetQueryObjectuiv] = getQuery
}

func (d *Driver) registerVertexArrays(p map[gl.Entrypoint]proc) {
	p[gl.GenVertexArrays] = func(c *glContext, a []gl.Value) gl.Value {
		genInto(&c.vaoNames, a[0], a[1])
		return gl.Void
	}
	p[gl.DeleteVertexArrays] = func(c *glContext, a []gl.Value) gl.Value {
		for _, n := range gl.U32s(a[1].Mem) {
			if n == 0 {
				continue
			}
			delete(c.vertexArrays, n)
			c.vaoNames.free(n)
			if c.vertexArray == n {
				c.vertexArray = 0
			}
		}
		return gl.Void
	}
	p[gl.BindVertexArray] = func(c *glContext, a []gl.Value) gl.Value {
		n := handle(a[0])
		if n != 0 {
			if _, ok := c.vertexArrays[n]; !ok {
				if !c.vaoNames.isUsed(n) {
					return c.fail(gl.INVALID_OPERATION)
				}
				c.vertexArrays[n] = newVertexArray()
			}
		}
		c.vertexArray = n
		return gl.Void
	}
	p[gl.IsVertexArray] = func(c *glContext, a []gl.Value) gl.Value {
		_, ok := c.vertexArrays[handle(a[0])]
		return gl.Bool(ok)
	}
	pointer := func(at *attrib, c *glContext, size int32, typ gl.Enum, normalized, integer bool, stride int32, ptr gl.Value) {
		at.size, at.typ, at.normalized, at.integer, at.stride = size, typ, normalized, integer, stride
		at.buffer = c.bufferBindings[gl.ARRAY_BUFFER]
		at.pointer = ptr
	}
	attribAt := func(c *glContext, index uint64) *attrib {
		if index >= maxAttribs {
			c.fail(gl.INVALID_VALUE)
			return nil
		}
		return &c.vao().attribs[index]
	}
	p[gl.VertexAttribPointer] = func(c *glContext, a []gl.Value) gl.Value {
		if at := attribAt(c, a[0].Uint()); at != nil {
			pointer(at, c, a[1].Int32(), a[2].Enum(), a[3].Bool(), false, a[4].Int32(), a[5])
		}
		return gl.Void
	}
	p[gl.VertexAttribIPointer] = func(c *glContext, a []gl.Value) gl.Value {
		if at := attribAt(c, a[0].Uint()); at != nil {
			pointer(at, c, a[1].Int32(), a[2].Enum(), false, true, a[3].Int32(), a[4])
		}
		return gl.Void
	}
	p[gl.EnableVertexAttribArray] = func(c *glContext, a []gl.Value) gl.Value {
		if at := attribAt(c, a[0].Uint()); at != nil {
			at.enabled = true
		}
		return gl.Void
	}
	p[gl.DisableVertexAttribArray] = func(c *glContext, a []gl.Value) gl.Value {
		if at := attribAt(c, a[0].Uint()); at != nil {
			at.enabled = false
		}
		return gl.Void
	}
	p[gl.VertexAttribDivisor] = func(c *glContext, a []gl.Value) gl.Value {
		if at := attribAt(c, a[0].Uint()); at != nil {
			at.divisor = a[1].Uint32()
		}
		return gl.Void
	}
	p[gl.GetVertexAttribiv] = func(c *glContext, a []gl.Value) gl.Value {
		at := attribAt(c, a[0].Uint())
		if at == nil {
			return gl.Void
		}
		b := func(v bool) int32 {
			if v {
				return 1
			}
			return 0
		}
		switch a[1].Enum() {
		case gl.VERTEX_ATTRIB_ARRAY_ENABLED:
			put32(a[2], b(at.enabled))
		case gl.VERTEX_ATTRIB_ARRAY_SIZE:
			put32(a[2], at.size)
		case gl.VERTEX_ATTRIB_ARRAY_STRIDE:
			put32(a[2], at.stride)
		case gl.VERTEX_ATTRIB_ARRAY_TYPE:
			put32(a[2], int32(at.typ))
		case gl.VERTEX_ATTRIB_ARRAY_NORMALIZED:
			put32(a[2], b(at.normalized))
		case gl.VERTEX_ATTRIB_ARRAY_INTEGER:
			put32(a[2], b(at.integer))
		case gl.VERTEX_ATTRIB_ARRAY_DIVISOR:
			put32(a[2], int32(at.divisor))
		case gl.VERTEX_ATTRIB_ARRAY_BUFFER_BINDING:
			put32(a[2], int32(at.buffer))
		case gl.CURRENT_VERTEX_ATTRIB:
			put32(a[2], int32(c.currentAttrib[a[0].Uint()][0]))
		default:
			return c.fail(gl.INVALID_ENUM)
		}
		return gl.Void
	}
	p[gl.GetVertexAttribPointerv] = func(c *glContext, a []gl.Value) gl.Value {
		at := attribAt(c, a[0].Uint())
		if at == nil {
			return gl.Void
		}
		if a[1].Enum() != gl.VERTEX_ATTRIB_ARRAY_POINTER {
			return c.fail(gl.INVALID_ENUM)
		}
		putU64(a[2], pointerValue(at))
		return gl.Void
	}
	fixed := func(array gl.Enum) func(c *glContext, size int32, typ gl.Enum, stride int32, ptr gl.Value) gl.Value {
		return func(c *glContext, size int32, typ gl.Enum, stride int32, ptr gl.Value) gl.Value {
			pointer(c.vao().fixed[array], c, size, typ, array == gl.COLOR_ARRAY, false, stride, ptr)
			return gl.Void
		}
	}
	p[gl.VertexPointer] = func(c *glContext, a []gl.Value) gl.Value {
		return fixed(gl.VERTEX_ARRAY)(c, a[0].Int32(), a[1].Enum(), a[2].Int32(), a[3])
	}
	p[gl.NormalPointer] = func(c *glContext, a []gl.Value) gl.Value {
		return fixed(gl.NORMAL_ARRAY)(c, 3, a[0].Enum(), a[1].Int32(), a[2])
	}
	p[gl.ColorPointer] = func(c *glContext, a []gl.Value) gl.Value {
		return fixed(gl.COLOR_ARRAY)(c, a[0].Int32(), a[1].Enum(), a[2].Int32(), a[3])
	}
	p[gl.TexCoordPointer] = func(c *glContext, a []gl.Value) gl.Value {
		if c.clientActiveTexture != 0 {
			return gl.Void
		}
		return fixed(gl.TEXTURE_COORD_ARRAY)(c, a[0].Int32(), a[1].Enum(), a[2].Int32(), a[3])
	}
	clientState := func(on bool) proc {
		return func(c *glContext, a []gl.Value) gl.Value {
			at, ok := c.vao().fixed[a[0].Enum()]
			if !ok {
				return c.fail(gl.INVALID_ENUM)
			}
			at.enabled = on
			return gl.Void
		}
	}
	p[gl.EnableClientState] = clientState(true)
	p[gl.DisableClientState] = clientState(false)
	p[gl.GetPointerv] = func(c *glContext, a []gl.Value) gl.Value {
		array, ok := map[gl.Enum]gl.Enum{
			gl.VERTEX_ARRAY_POINTER:        gl.VERTEX_ARRAY,
			gl.NORMAL_ARRAY_POINTER:        gl.NORMAL_ARRAY,
			gl.COLOR_ARRAY_POINTER:         gl.COLOR_ARRAY,
			gl.TEXTURE_COORD_ARRAY_POINTER: gl.TEXTURE_COORD_ARRAY,
		}[a[0].Enum()]
		if !ok {
			return c.fail(gl.INVALID_ENUM)
		}
		putU64(a[1], pointerValue(c.vao().fixed[array]))
		return gl.Void
	}
}

// pointerValue is the queryable value of an array pointer. Client memory
// has no address in the fake driver and reads as zero.
func pointerValue(at *attrib) uint64 {
	if at.pointer.Kind == gl.KindMem {
		return 0
	}
	return at.pointer.Uint()
}

func (d *Driver) registerSyncs(p map[gl.Entrypoint]proc) {
	p[gl.FenceSync] = func(c *glContext, a []gl.Value) gl.Value {
		if a[0].Enum() != gl.SYNC_GPU_COMMANDS_COMPLETE {
			c.fail(gl.INVALID_ENUM)
			return gl.Uint(0)
		}
		s := c.group.nextSync
		c.group.nextSync++
		c.group.syncs[s] = &syncObject{condition: a[0].Enum()}
		return gl.Uint(s)
	}
	p[gl.DeleteSync] = func(c *glContext, a []gl.Value) gl.Value {
		s := a[0].Uint()
		if _, ok := c.group.syncs[s]; s != 0 && !ok {
			return c.fail(gl.INVALID_VALUE)
		}
		delete(c.group.syncs, s)
		return gl.Void
	}
	p[gl.IsSync] = func(c *glContext, a []gl.Value) gl.Value {
		_, ok := c.group.syncs[a[0].Uint()]
		return gl.Bool(ok)
	}
	p[gl.ClientWaitSync] = func(c *glContext, a []gl.Value) gl.Value {
		if _, ok := c.group.syncs[a[0].Uint()]; !ok {
			c.fail(gl.INVALID_VALUE)
			return gl.E(gl.WAIT_FAILED)
		}
		return gl.E(gl.ALREADY_SIGNALED)
	}
	p[gl.WaitSync] = func(c *glContext, a []gl.Value) gl.Value {
		if _, ok := c.group.syncs[a[0].Uint()]; !ok {
			return c.fail(gl.INVALID_VALUE)
		}
		return gl.Void
	}
	p[gl.GetSynciv] = func(c *glContext, a []gl.Value) gl.Value {
		s, ok := c.group.syncs[a[0].Uint()]
		if !ok {
			return c.fail(gl.INVALID_VALUE)
		}
		var v int32
		switch a[1].Enum() {
		case gl.OBJECT_TYPE:
			v = int32(gl.SYNC_FENCE)
		case gl.SYNC_STATUS:
			v = int32(gl.SIGNALED)
		case gl.SYNC_CONDITION:
			v = int32(s.condition)
		case gl.SYNC_FLAGS:
		default:
			return c.fail(gl.INVALID_ENUM)
		}
		put32(a[3], 1)
		put32(a[4], v)
		return gl.Void
	}
}
