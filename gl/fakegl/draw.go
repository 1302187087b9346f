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

const maxNameStack = 64

// surface is an RGBA8 color target.
type surface struct {
	width, height int
	data          []byte
	samples       int32
}

func (d *Driver) windowSurface() *surface {
	return &surface{width: d.window.width, height: d.window.height, data: d.window.color}
}

func (d *Driver) attachmentSurface(c *glContext, at attachment) *surface {
	switch at.typ {
	case gl.TEXTURE:
		t := c.group.textures[at.name]
		if t == nil {
			return nil
		}
		face := at.face
		if face == 0 {
			face = t.target
		}
		img := t.levels[levelKey{face, at.level}]
		if img == nil {
			return nil
		}
		return &surface{width: int(img.width), height: int(img.height), data: img.data}
	case gl.RENDERBUFFER:
		rb := c.group.renderbuffers[at.name]
		if rb == nil {
			return nil
		}
		return &surface{width: int(rb.width), height: int(rb.height), data: rb.data, samples: rb.samples}
	}
	return nil
}

// colorSurface returns the first color target of framebuffer n.
func (d *Driver) colorSurface(c *glContext, n uint32) *surface {
	if n == 0 {
		return d.windowSurface()
	}
	fb := c.framebuffers[n]
	if fb == nil {
		return nil
	}
	at, ok := fb.attachments[gl.COLOR_ATTACHMENT0]
	if !ok {
		return nil
	}
	s := d.attachmentSurface(c, at)
	if s == nil || len(s.data) < s.width*s.height*4 {
		return nil
	}
	return s
}

func colorBytes(v []float32) [4]byte {
	var out [4]byte
	for i := range out {
		f := v[i]
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		out[i] = byte(f*255 + 0.5)
	}
	return out
}

// rasterize consumes a primitive of vertices vertices. In render mode it
// paints the current color into one pixel of the draw target, chosen by the
// number of draws so far.
func (d *Driver) rasterize(c *glContext, vertices int) {
	if vertices <= 0 {
		return
	}
	c.draws++
	switch c.renderMode {
	case gl.FEEDBACK:
		d.feedbackVertices(c, vertices)
		return
	case gl.SELECT:
		d.selectHit(c)
		return
	}
	s := d.colorSurface(c, c.drawFramebuffer)
	if s == nil || s.width*s.height == 0 {
		return
	}
	px := (c.draws - 1) % (s.width * s.height)
	color := colorBytes(c.state[gl.CURRENT_COLOR])
	copy(s.data[px*4:], color[:])
}

func (d *Driver) feedbackVertices(c *glContext, vertices int) {
	for i := 0; i < vertices; i++ {
		for _, v := range []float32{float32(gl.POINT_TOKEN), float32(i), 0} {
			if (c.feedbackCount+1)*4 > len(c.feedback) {
				return
			}
			copy(c.feedback[c.feedbackCount*4:], gl.PutF32s(v))
			c.feedbackCount++
		}
	}
}

func (d *Driver) selectHit(c *glContext) {
	record := append([]uint32{uint32(len(c.nameStack)), 0, 0xffffffff}, c.nameStack...)
	used := 0
	for i := 0; i < c.hits; i++ {
		n := int(gl.U32s(c.selection[used*4:])[0])
		used += 3 + n
	}
	if (used+len(record))*4 > len(c.selection) {
		return
	}
	copy(c.selection[used*4:], gl.PutU32s(record...))
	c.hits++
}

// fetch records the client memory of every enabled client side array.
func (d *Driver) fetch(c *glContext) {
	d.fetched = map[int][]byte{}
	v := c.vao()
	for i := range v.attribs {
		at := &v.attribs[i]
		if at.enabled && at.buffer == 0 && at.pointer.Kind == gl.KindMem {
			d.fetched[i] = append([]byte(nil), at.pointer.Mem...)
		}
	}
	for array, at := range v.fixed {
		if at.enabled && at.buffer == 0 && at.pointer.Kind == gl.KindMem {
			d.fetched[int(array)] = append([]byte(nil), at.pointer.Mem...)
		}
	}
}

// Fetched returns the client array memory read by the last draw, keyed by
// attribute index or fixed function array enum.
func (d *Driver) Fetched() map[int][]byte { return d.fetched }

func (d *Driver) registerDraw(p map[gl.Entrypoint]proc) {
	draw := func(c *glContext, count int64, indices *gl.Value) gl.Value {
		if c.insideBegin {
			return c.fail(gl.INVALID_OPERATION)
		}
		if count < 0 {
			return c.fail(gl.INVALID_VALUE)
		}
		if indices != nil && indices.Kind != gl.KindMem && c.vao().elementBuffer == 0 {
			return c.fail(gl.INVALID_OPERATION)
		}
		d.fetch(c)
		d.rasterize(c, int(count))
		return gl.Void
	}
	p[gl.DrawArrays] = func(c *glContext, a []gl.Value) gl.Value { return draw(c, a[2].Int(), nil) }
	p[gl.DrawArraysInstanced] = func(c *glContext, a []gl.Value) gl.Value { return draw(c, a[2].Int(), nil) }
	p[gl.DrawElements] = func(c *glContext, a []gl.Value) gl.Value { return draw(c, a[1].Int(), &a[3]) }
	p[gl.DrawElementsInstanced] = func(c *glContext, a []gl.Value) gl.Value { return draw(c, a[1].Int(), &a[3]) }
	p[gl.DrawElementsBaseVertex] = func(c *glContext, a []gl.Value) gl.Value { return draw(c, a[1].Int(), &a[3]) }
	p[gl.DrawRangeElements] = func(c *glContext, a []gl.Value) gl.Value {
		if a[2].Int() < a[1].Int() {
			return c.fail(gl.INVALID_VALUE)
		}
		return draw(c, a[3].Int(), &a[5])
	}
	p[gl.Clear] = func(c *glContext, a []gl.Value) gl.Value {
		mask := a[0].Uint32()
		if mask&^(gl.COLOR_BUFFER_BIT|gl.DEPTH_BUFFER_BIT|gl.STENCIL_BUFFER_BIT) != 0 {
			return c.fail(gl.INVALID_VALUE)
		}
		if c.insideBegin {
			return c.fail(gl.INVALID_OPERATION)
		}
		if mask&gl.COLOR_BUFFER_BIT == 0 {
			return gl.Void
		}
		s := d.colorSurface(c, c.drawFramebuffer)
		if s == nil {
			return gl.Void
		}
		color := colorBytes(c.state[gl.COLOR_CLEAR_VALUE])
		for i := 0; i+4 <= len(s.data); i += 4 {
			copy(s.data[i:], color[:])
		}
		return gl.Void
	}
	p[gl.ClearBufferfv] = func(c *glContext, a []gl.Value) gl.Value {
		switch a[0].Enum() {
		case gl.COLOR:
		case gl.DEPTH:
			return gl.Void
		default:
			return c.fail(gl.INVALID_ENUM)
		}
		v := gl.F32s(a[2].Mem)
		if len(v) < 4 {
			return c.fail(gl.INVALID_VALUE)
		}
		if a[1].Int() != 0 {
			return gl.Void
		}
		s := d.colorSurface(c, c.drawFramebuffer)
		if s == nil {
			return gl.Void
		}
		color := colorBytes(v)
		for i := 0; i+4 <= len(s.data); i += 4 {
			copy(s.data[i:], color[:])
		}
		return gl.Void
	}
	p[gl.ReadPixels] = func(c *glContext, a []gl.Value) gl.Value {
		x, y, w, h := int(a[0].Int()), int(a[1].Int()), int(a[2].Int()), int(a[3].Int())
		format, typ := a[4].Enum(), a[5].Enum()
		if w < 0 || h < 0 {
			return c.fail(gl.INVALID_VALUE)
		}
		s := d.colorSurface(c, c.readFramebuffer)
		if s == nil || s.samples > 0 {
			return c.fail(gl.INVALID_OPERATION)
		}
		if typ != gl.UNSIGNED_BYTE || (format != gl.RGBA && format != gl.RGB) {
			return c.fail(gl.INVALID_OPERATION)
		}
		comps := gl.FormatComponents(format)
		packed := make([]byte, w*h*comps)
		for r := 0; r < h; r++ {
			for col := 0; col < w; col++ {
				sx, sy := x+col, y+r
				if sx < 0 || sy < 0 || sx >= s.width || sy >= s.height {
					continue
				}
				src := (sy*s.width + sx) * 4
				copy(packed[(r*w+col)*comps:], s.data[src:src+comps])
			}
		}
		packRows(a[6].Mem, packed, w, h, comps, int(c.state[gl.PACK_ALIGNMENT][0]))
		return gl.Void
	}
	p[gl.DrawPixels] = func(c *glContext, a []gl.Value) gl.Value {
		w, h, format, typ := int(a[0].Int()), int(a[1].Int()), a[2].Enum(), a[3].Enum()
		if w < 0 || h < 0 {
			return c.fail(gl.INVALID_VALUE)
		}
		if typ != gl.UNSIGNED_BYTE || format != gl.RGBA {
			return c.fail(gl.INVALID_OPERATION)
		}
		s := d.colorSurface(c, c.drawFramebuffer)
		if s == nil {
			return c.fail(gl.INVALID_FRAMEBUFFER_OPERATION)
		}
		align := int(c.state[gl.UNPACK_ALIGNMENT][0])
		src := c.clientData(gl.PIXEL_UNPACK_BUFFER, a[4], gl.ImageSize(w, h, 1, format, typ, align))
		if src == nil {
			return gl.Void
		}
		pixels := unpackRows(src, w, h, 4, align)
		pos := c.state[gl.CURRENT_RASTER_POSITION]
		x0, y0 := int(pos[0]), int(pos[1])
		for r := 0; r < h; r++ {
			for col := 0; col < w; col++ {
				dx, dy := x0+col, y0+r
				if dx < 0 || dy < 0 || dx >= s.width || dy >= s.height {
					continue
				}
				copy(s.data[(dy*s.width+dx)*4:], pixels[(r*w+col)*4:(r*w+col+1)*4])
			}
		}
		return gl.Void
	}
	p[gl.BlitFramebuffer] = func(c *glContext, a []gl.Value) gl.Value {
		var v [8]int
		for i := range v {
			v[i] = int(a[i].Int())
		}
		mask := a[8].Uint32()
		if mask&gl.COLOR_BUFFER_BIT == 0 {
			return gl.Void
		}
		src := d.colorSurface(c, c.readFramebuffer)
		dst := d.colorSurface(c, c.drawFramebuffer)
		if src == nil || dst == nil {
			return c.fail(gl.INVALID_FRAMEBUFFER_OPERATION)
		}
		sw, sh, dw, dh := v[2]-v[0], v[3]-v[1], v[6]-v[4], v[7]-v[5]
		if src.samples > 0 && (sw != dw || sh != dh) {
			return c.fail(gl.INVALID_OPERATION)
		}
		if dw <= 0 || dh <= 0 || sw <= 0 || sh <= 0 {
			return gl.Void
		}
		for y := 0; y < dh; y++ {
			for x := 0; x < dw; x++ {
				sx, sy := v[0]+x*sw/dw, v[1]+y*sh/dh
				dx, dy := v[4]+x, v[5]+y
				if sx < 0 || sy < 0 || sx >= src.width || sy >= src.height ||
					dx < 0 || dy < 0 || dx >= dst.width || dy >= dst.height {
					continue
				}
				s := (sy*src.width + sx) * 4
				copy(dst.data[(dy*dst.width+dx)*4:], src.data[s:s+4])
			}
		}
		return gl.Void
	}
	p[gl.InternalTraceCommandRAD] = func(c *glContext, a []gl.Value) gl.Value { return gl.Void }
	d.registerLists(p)
	d.registerSelection(p)
}

func (d *Driver) registerLists(p map[gl.Entrypoint]proc) {
	p[gl.GenLists] = func(c *glContext, a []gl.Value) gl.Value {
		n := a[0].Int()
		if n < 0 {
			c.fail(gl.INVALID_VALUE)
			return gl.Uint(0)
		}
		if n == 0 {
			return gl.Uint(0)
		}
		first := c.group.listNames.genRange(uint32(n))
		for i := uint32(0); i < uint32(n); i++ {
			c.group.lists[first+i] = nil
		}
		return gl.Uint(uint64(first))
	}
	p[gl.NewList] = func(c *glContext, a []gl.Value) gl.Value {
		n, mode := handle(a[0]), a[1].Enum()
		if n == 0 {
			return c.fail(gl.INVALID_VALUE)
		}
		if mode != gl.COMPILE && mode != gl.COMPILE_AND_EXECUTE {
			return c.fail(gl.INVALID_ENUM)
		}
		if c.listName != 0 {
			return c.fail(gl.INVALID_OPERATION)
		}
		c.listName, c.listMode, c.listCalls = n, mode, nil
		return gl.Void
	}
	p[gl.EndList] = func(c *glContext, a []gl.Value) gl.Value {
		if c.listName == 0 {
			return c.fail(gl.INVALID_OPERATION)
		}
		c.group.listNames.reserve(c.listName)
		c.group.lists[c.listName] = c.listCalls
		c.listName, c.listMode, c.listCalls = 0, 0, nil
		return gl.Void
	}
	p[gl.CallList] = func(c *glContext, a []gl.Value) gl.Value {
		d.callList(c, handle(a[0]))
		return gl.Void
	}
	p[gl.CallLists] = func(c *glContext, a []gl.Value) gl.Value {
		if a[1].Enum() != gl.UNSIGNED_INT {
			return c.fail(gl.INVALID_ENUM)
		}
		base := uint32(c.state[gl.LIST_BASE][0])
		names := gl.U32s(a[2].Mem)
		if n := int(a[0].Int()); n < len(names) {
			names = names[:n]
		}
		for _, n := range names {
			d.callList(c, base+n)
		}
		return gl.Void
	}
	p[gl.DeleteLists] = func(c *glContext, a []gl.Value) gl.Value {
		first, n := handle(a[0]), a[1].Int()
		if n < 0 {
			return c.fail(gl.INVALID_VALUE)
		}
		for i := uint32(0); i < uint32(n); i++ {
			delete(c.group.lists, first+i)
			c.group.listNames.free(first + i)
		}
		return gl.Void
	}
	p[gl.IsList] = func(c *glContext, a []gl.Value) gl.Value {
		_, ok := c.group.lists[handle(a[0])]
		return gl.Bool(ok)
	}
}

func (d *Driver) callList(c *glContext, n uint32) {
	calls, ok := c.group.lists[n]
	if !ok {
		return
	}
	if c.listDepth >= maxListNesting {
		return
	}
	c.listDepth++
	defer func() { c.listDepth-- }()
	for _, call := range calls {
		call.fn(c, call.args)
	}
}

func (d *Driver) registerSelection(p map[gl.Entrypoint]proc) {
	p[gl.FeedbackBuffer] = func(c *glContext, a []gl.Value) gl.Value {
		if c.renderMode == gl.FEEDBACK {
			return c.fail(gl.INVALID_OPERATION)
		}
		if a[0].Int() < 0 {
			return c.fail(gl.INVALID_VALUE)
		}
		c.feedback = make([]byte, a[0].Int()*4)
		return gl.Void
	}
	p[gl.SelectBuffer] = func(c *glContext, a []gl.Value) gl.Value {
		if c.renderMode == gl.SELECT {
			return c.fail(gl.INVALID_OPERATION)
		}
		if a[0].Int() < 0 {
			return c.fail(gl.INVALID_VALUE)
		}
		c.selection = make([]byte, a[0].Int()*4)
		return gl.Void
	}
	p[gl.RenderMode] = func(c *glContext, a []gl.Value) gl.Value {
		mode := a[0].Enum()
		switch mode {
		case gl.RENDER, gl.FEEDBACK, gl.SELECT:
		default:
			c.fail(gl.INVALID_ENUM)
			return gl.Int(0)
		}
		if (mode == gl.FEEDBACK && c.feedback == nil) || (mode == gl.SELECT && c.selection == nil) {
			c.fail(gl.INVALID_OPERATION)
			return gl.Int(0)
		}
		var result int64
		switch c.renderMode {
		case gl.FEEDBACK:
			result = int64(c.feedbackCount)
		case gl.SELECT:
			result = int64(c.hits)
		}
		c.renderMode, c.feedbackCount, c.hits = mode, 0, 0
		if mode == gl.SELECT {
			c.nameStack = nil
		}
		return gl.Int(result)
	}
	p[gl.InitNames] = func(c *glContext, a []gl.Value) gl.Value {
		c.nameStack = nil
		return gl.Void
	}
	p[gl.PushName] = func(c *glContext, a []gl.Value) gl.Value {
		if len(c.nameStack) >= maxNameStack {
			return c.fail(gl.STACK_OVERFLOW)
		}
		c.nameStack = append(c.nameStack, a[0].Uint32())
		return gl.Void
	}
	p[gl.PopName] = func(c *glContext, a []gl.Value) gl.Value {
		if len(c.nameStack) == 0 {
			return c.fail(gl.STACK_UNDERFLOW)
		}
		c.nameStack = c.nameStack[:len(c.nameStack)-1]
		return gl.Void
	}
	p[gl.LoadName] = func(c *glContext, a []gl.Value) gl.Value {
		if len(c.nameStack) == 0 {
			return c.fail(gl.INVALID_OPERATION)
		}
		c.nameStack[len(c.nameStack)-1] = a[0].Uint32()
		return gl.Void
	}
}
