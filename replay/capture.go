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
	"fmt"
	"sort"
	"strings"

	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/ValveSoftware/vogl-sub002/replay/snapshot"
)

// maxTextureLevels bounds the mip chain walked when capturing a texture.
const maxTextureLevels = 16

var samplerParams = []gl.Enum{
	gl.TEXTURE_MIN_FILTER,
	gl.TEXTURE_MAG_FILTER,
	gl.TEXTURE_WRAP_S,
	gl.TEXTURE_WRAP_T,
	gl.TEXTURE_WRAP_R,
}

var textureParams = append([]gl.Enum{gl.TEXTURE_BASE_LEVEL, gl.TEXTURE_MAX_LEVEL}, samplerParams...)

var attachmentPoints = []gl.Enum{
	gl.COLOR_ATTACHMENT0,
	gl.COLOR_ATTACHMENT1,
	gl.DEPTH_ATTACHMENT,
	gl.STENCIL_ATTACHMENT,
}

var shaderStageBits = map[gl.Enum]uint32{
	gl.VERTEX_SHADER:   gl.VERTEX_SHADER_BIT,
	gl.FRAGMENT_SHADER: gl.FRAGMENT_SHADER_BIT,
	gl.GEOMETRY_SHADER: gl.GEOMETRY_SHADER_BIT,
}

// fixedArray describes the queries of one fixed-function vertex array.
type fixedArray struct {
	array, size, typ, stride, buffer, pointer gl.Enum
}

var fixedArrayState = []fixedArray{
	{gl.VERTEX_ARRAY, gl.VERTEX_ARRAY_SIZE, gl.VERTEX_ARRAY_TYPE, gl.VERTEX_ARRAY_STRIDE, gl.VERTEX_ARRAY_BUFFER_BINDING, gl.VERTEX_ARRAY_POINTER},
	{gl.NORMAL_ARRAY, gl.NONE, gl.NORMAL_ARRAY_TYPE, gl.NORMAL_ARRAY_STRIDE, gl.NORMAL_ARRAY_BUFFER_BINDING, gl.NORMAL_ARRAY_POINTER},
	{gl.COLOR_ARRAY, gl.COLOR_ARRAY_SIZE, gl.COLOR_ARRAY_TYPE, gl.COLOR_ARRAY_STRIDE, gl.COLOR_ARRAY_BUFFER_BINDING, gl.COLOR_ARRAY_POINTER},
	{gl.TEXTURE_COORD_ARRAY, gl.TEXTURE_COORD_ARRAY_SIZE, gl.TEXTURE_COORD_ARRAY_TYPE, gl.TEXTURE_COORD_ARRAY_STRIDE, gl.TEXTURE_COORD_ARRAY_BUFFER_BINDING, gl.TEXTURE_COORD_ARRAY_POINTER},
}

func isDepthFormat(f gl.Enum) bool {
	switch f {
	case gl.DEPTH_COMPONENT, gl.DEPTH_COMPONENT24, gl.DEPTH_STENCIL, gl.DEPTH24_STENCIL8:
		return true
	}
	return false
}

// cubeFaces returns the image targets of a texture target.
func cubeFaces(target gl.Enum) []gl.Enum {
	if target != gl.TEXTURE_CUBE_MAP {
		return []gl.Enum{target}
	}
	faces := make([]gl.Enum, 6)
	for i := range faces {
		faces[i] = gl.TEXTURE_CUBE_MAP_POSITIVE_X + gl.Enum(i)
	}
	return faces
}

// withPixelStore runs f with tightly packed pixel transfers from and to
// client memory. The pixel store state it changes is restored.
func (r *Replayer) withPixelStore(f func()) {
	p := r.procs
	saved := map[gl.Enum]int32{}
	for _, pname := range []gl.Enum{gl.PACK_ALIGNMENT, gl.UNPACK_ALIGNMENT, gl.PACK_ROW_LENGTH, gl.UNPACK_ROW_LENGTH} {
		saved[pname] = p.GetInteger(pname)
		v := int64(0)
		if pname == gl.PACK_ALIGNMENT || pname == gl.UNPACK_ALIGNMENT {
			v = 1
		}
		r.invoke(gl.PixelStorei, gl.E(pname), gl.Int(v))
	}
	pack, unpack := p.GetInteger(gl.PIXEL_PACK_BUFFER_BINDING), p.GetInteger(gl.PIXEL_UNPACK_BUFFER_BINDING)
	r.invoke(gl.BindBuffer, gl.E(gl.PIXEL_PACK_BUFFER), gl.Uint(0))
	r.invoke(gl.BindBuffer, gl.E(gl.PIXEL_UNPACK_BUFFER), gl.Uint(0))
	f()
	r.invoke(gl.BindBuffer, gl.E(gl.PIXEL_PACK_BUFFER), gl.Uint(uint64(uint32(pack))))
	r.invoke(gl.BindBuffer, gl.E(gl.PIXEL_UNPACK_BUFFER), gl.Uint(uint64(uint32(unpack))))
	for pname, v := range saved {
		r.invoke(gl.PixelStorei, gl.E(pname), gl.Int(int64(v)))
	}
}

// withTexture runs f with the live texture bound to target on the active
// unit.
func (r *Replayer) withTexture(target gl.Enum, live uint64, f func()) {
	prev := int32(0)
	binding, ok := gl.TextureBinding(target)
	if ok {
		prev = r.procs.GetInteger(binding)
	}
	r.invoke(gl.BindTexture, gl.E(target), gl.Uint(live))
	f()
	r.invoke(gl.BindTexture, gl.E(target), gl.Uint(uint64(uint32(prev))))
}

// SnapshotState captures the state of every context into a snapshot in
// the trace domain. Objects are read back through the live driver, so the
// current context changes during the capture and is restored afterwards.
func (r *Replayer) SnapshotState(ctx context.Context) (*snapshot.Snapshot, error) {
	ctx = log.Enter(ctx, "SnapshotState")
	if r.HasPendingPackets() {
		return nil, log.Err(ctx, nil, "Pending packets must be processed before a snapshot")
	}
	w, h := r.backend.Dimensions()
	s := &snapshot.Snapshot{
		Version:         snapshot.Version,
		WindowWidth:     int32(w),
		WindowHeight:    int32(h),
		Frame:           r.frame,
		Call:            r.call,
		AtFrameBoundary: r.atFrameBoundary,
		Restorable:      true,
	}
	saved := r.current
	if saved != nil {
		s.CurrentContext = saved.trace
	}

	roots := map[int]*contextState{}
	for _, c := range r.contexts {
		if c == nil {
			continue
		}
		if c.insideBegin || c.list != nil {
			log.W(ctx, "Context %d is inside glBegin or a display list, snapshot is not restorable", c.trace)
			s.Restorable = false
		}
		sc := &snapshot.Context{
			Handle:           c.trace,
			CreatedBy:        c.createdBy.String(),
			Attribs:          c.attribs,
			Direct:           c.direct,
			MadeCurrent:      c.madeCurrent,
			InsideBegin:      c.insideBegin,
			ClientArraySizes: map[uint32]uint32{},
		}
		for k, a := range c.clientArrays {
			sc.ClientArraySizes[uint32(k)] = uint32(len(a.data))
		}
		if root, ok := roots[c.group]; ok {
			sc.Share = root.trace
		} else {
			roots[c.group] = c
			sc.Shared = &snapshot.Shared{}
			if m := r.currentMember(c.group); m != nil {
				if status := r.activate(ctx, m); status != OK {
					return nil, log.Errf(ctx, nil, "Activating context %d: %v", m.trace, status)
				}
				sc.Shared = r.captureShared(ctx, m)
			}
		}
		if c.madeCurrent {
			if status := r.activate(ctx, c); status != OK {
				return nil, log.Errf(ctx, nil, "Activating context %d: %v", c.trace, status)
			}
			m := replayToTrace{r, c}
			sc.General = r.captureGeneral(ctx, m)
			sc.Framebuffers = r.captureFramebuffers(ctx, c, m)
			sc.VertexArrays, sc.General.DefaultVertexArray = r.captureVertexArrays(ctx, c, m)
			r.procs.ClearErrors()
		}
		s.Contexts = append(s.Contexts, sc)
	}

	if status := r.activate(ctx, saved); status != OK {
		return nil, log.Errf(ctx, nil, "Restoring current context: %v", status)
	}
	if saved != nil {
		s.Backbuffer = r.readFramebuffer(0, w, h)
	}
	log.D(ctx, "Captured %d contexts at frame %d", len(s.Contexts), s.Frame)
	return s, nil
}

// currentMember returns the first member of group g that has been made
// current.
func (r *Replayer) currentMember(g int) *contextState {
	for _, c := range r.members(g) {
		if c.madeCurrent {
			return c
		}
	}
	return nil
}

// captureShared reads the objects of the share-group of c, which must be
// current. Mapped buffers are unmapped for the read and mapped again.
func (r *Replayer) captureShared(ctx context.Context, c *contextState) *snapshot.Shared {
	m := replayToTrace{r, c}
	g := r.groups[c.group]
	r.unmapAll(ctx, c)
	s := &snapshot.Shared{
		Buffers:       r.captureBuffers(ctx, c),
		Samplers:      r.captureSamplers(ctx, c),
		Queries:       r.captureQueries(ctx, c),
		Renderbuffers: r.captureRenderbuffers(ctx, c),
		Textures:      r.captureTextures(ctx, c),
		Syncs:         r.captureSyncs(ctx, c),
		ARBPrograms:   r.captureARBPrograms(ctx, c),
		Pipelines:     r.capturePipelines(ctx, c, m),
	}
	s.Shaders, s.Programs = r.captureObjects(ctx, c, m)
	for _, h := range r.tracker(c, gl.Lists).Handles() {
		s.Lists = append(s.Lists, &snapshot.List{Handle: h, Packets: g.lists[h]})
	}
	for _, h := range sortedKeys(g.mapped) {
		mr := g.mapped[h]
		s.Mapped = append(s.Mapped, &snapshot.MappedBuffer{
			Buffer: mr.buffer,
			Target: mr.target,
			Offset: mr.offset,
			Length: mr.length,
			Access: mr.access,
			Flags:  mr.flags,
			Range:  mr.rangeMapped,
		})
	}
	if status := r.remapAll(ctx, c); status != OK {
		log.W(ctx, "Buffers could not be mapped again after the capture: %v", status)
	}
	r.procs.ClearErrors()
	return s
}

func sortedKeys(m map[uint64]*mappedRegion) []uint64 {
	out := make([]uint64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r *Replayer) captureBuffers(ctx context.Context, c *contextState) []*snapshot.Buffer {
	p, t := r.procs, r.tracker(c, gl.Buffers)
	prev := p.GetInteger(gl.ARRAY_BUFFER_BINDING)
	out := []*snapshot.Buffer{}
	for _, h := range t.Handles() {
		live, _ := t.MapToReplay(h)
		b := &snapshot.Buffer{Handle: h, Target: t.Target(h)}
		out = append(out, b)
		if !r.isLive(gl.Buffers, live) {
			continue
		}
		r.invoke(gl.BindBuffer, gl.E(gl.ARRAY_BUFFER), gl.Uint(live))
		size := p.QueryInts(gl.GetBufferParameteriv, 1, gl.E(gl.ARRAY_BUFFER), gl.E(gl.BUFFER_SIZE))[0]
		b.Usage = gl.Enum(p.QueryInts(gl.GetBufferParameteriv, 1, gl.E(gl.ARRAY_BUFFER), gl.E(gl.BUFFER_USAGE))[0])
		if size > 0 {
			b.Data = make([]byte, size)
			r.invoke(gl.GetBufferSubData, gl.E(gl.ARRAY_BUFFER), gl.Int(0), gl.Int(int64(size)), gl.Mem(b.Data))
		}
	}
	r.invoke(gl.BindBuffer, gl.E(gl.ARRAY_BUFFER), gl.Uint(uint64(uint32(prev))))
	return out
}

func (r *Replayer) captureSamplers(ctx context.Context, c *contextState) []*snapshot.Sampler {
	p, t := r.procs, r.tracker(c, gl.Samplers)
	out := []*snapshot.Sampler{}
	for _, h := range t.Handles() {
		live, _ := t.MapToReplay(h)
		s := &snapshot.Sampler{Handle: h, Params: map[gl.Enum][]float32{}}
		if r.isLive(gl.Samplers, live) {
			for _, pname := range samplerParams {
				v := p.QueryInts(gl.GetSamplerParameteriv, 1, gl.Uint(live), gl.E(pname))
				s.Params[pname] = []float32{float32(v[0])}
			}
		}
		out = append(out, s)
	}
	return out
}

func (r *Replayer) captureQueries(ctx context.Context, c *contextState) []*snapshot.Query {
	p, t := r.procs, r.tracker(c, gl.Queries)
	out := []*snapshot.Query{}
	for _, h := range t.Handles() {
		live, _ := t.MapToReplay(h)
		q := &snapshot.Query{Handle: h, Target: t.Target(h)}
		if q.Target != gl.NONE && r.isLive(gl.Queries, live) {
			q.Result = int64(p.QueryInts(gl.GetQueryObjectiv, 1, gl.Uint(live), gl.E(gl.QUERY_RESULT))[0])
		}
		out = append(out, q)
	}
	return out
}

func (r *Replayer) captureRenderbuffers(ctx context.Context, c *contextState) []*snapshot.Renderbuffer {
	p, t := r.procs, r.tracker(c, gl.Renderbuffers)
	prev := p.GetInteger(gl.RENDERBUFFER_BINDING)
	out := []*snapshot.Renderbuffer{}
	for _, h := range t.Handles() {
		live, _ := t.MapToReplay(h)
		rb := &snapshot.Renderbuffer{Handle: h}
		out = append(out, rb)
		if !r.isLive(gl.Renderbuffers, live) {
			continue
		}
		r.invoke(gl.BindRenderbuffer, gl.E(gl.RENDERBUFFER), gl.Uint(live))
		param := func(pname gl.Enum) int32 {
			return p.QueryInts(gl.GetRenderbufferParameteriv, 1, gl.E(gl.RENDERBUFFER), gl.E(pname))[0]
		}
		rb.Width, rb.Height = param(gl.RENDERBUFFER_WIDTH), param(gl.RENDERBUFFER_HEIGHT)
		rb.InternalFormat = gl.Enum(param(gl.RENDERBUFFER_INTERNAL_FORMAT))
		rb.Samples = param(gl.RENDERBUFFER_SAMPLES)
		r.invoke(gl.BindRenderbuffer, gl.E(gl.RENDERBUFFER), gl.Uint(uint64(uint32(prev))))
		if rb.Width > 0 && rb.Height > 0 && !isDepthFormat(rb.InternalFormat) {
			rb.Pixels = r.readRenderbuffer(live, rb)
		}
	}
	return out
}

// readRenderbuffer reads the color contents of a renderbuffer through a
// temporary framebuffer. Multisampled storage is resolved first.
func (r *Replayer) readRenderbuffer(live uint64, rb *snapshot.Renderbuffer) []byte {
	p := r.procs
	w, h := int64(rb.Width), int64(rb.Height)
	draw, read := p.GetInteger(gl.FRAMEBUFFER_BINDING), p.GetInteger(gl.READ_FRAMEBUFFER_BINDING)
	prevRB := p.GetInteger(gl.RENDERBUFFER_BINDING)
	defer func() {
		r.invoke(gl.BindFramebuffer, gl.E(gl.DRAW_FRAMEBUFFER), gl.Uint(uint64(uint32(draw))))
		r.invoke(gl.BindFramebuffer, gl.E(gl.READ_FRAMEBUFFER), gl.Uint(uint64(uint32(read))))
		r.invoke(gl.BindRenderbuffer, gl.E(gl.RENDERBUFFER), gl.Uint(uint64(uint32(prevRB))))
	}()

	fb := p.GenName(gl.GenFramebuffers)
	defer p.DeleteNames(gl.DeleteFramebuffers, fb)
	r.invoke(gl.BindFramebuffer, gl.E(gl.FRAMEBUFFER), gl.Uint(uint64(fb)))
	r.invoke(gl.FramebufferRenderbuffer, gl.E(gl.FRAMEBUFFER), gl.E(gl.COLOR_ATTACHMENT0), gl.E(gl.RENDERBUFFER), gl.Uint(live))
	src := fb
	if rb.Samples > 0 {
		resolveRB := p.GenName(gl.GenRenderbuffers)
		defer p.DeleteNames(gl.DeleteRenderbuffers, resolveRB)
		resolveFB := p.GenName(gl.GenFramebuffers)
		defer p.DeleteNames(gl.DeleteFramebuffers, resolveFB)
		r.invoke(gl.BindRenderbuffer, gl.E(gl.RENDERBUFFER), gl.Uint(uint64(resolveRB)))
		r.invoke(gl.RenderbufferStorage, gl.E(gl.RENDERBUFFER), gl.E(gl.RGBA8), gl.Int(w), gl.Int(h))
		r.invoke(gl.BindFramebuffer, gl.E(gl.DRAW_FRAMEBUFFER), gl.Uint(uint64(resolveFB)))
		r.invoke(gl.FramebufferRenderbuffer, gl.E(gl.DRAW_FRAMEBUFFER), gl.E(gl.COLOR_ATTACHMENT0), gl.E(gl.RENDERBUFFER), gl.Uint(uint64(resolveRB)))
		r.invoke(gl.BindFramebuffer, gl.E(gl.READ_FRAMEBUFFER), gl.Uint(uint64(fb)))
		r.invoke(gl.BlitFramebuffer, gl.Int(0), gl.Int(0), gl.Int(w), gl.Int(h), gl.Int(0), gl.Int(0), gl.Int(w), gl.Int(h),
			gl.Uint(gl.COLOR_BUFFER_BIT), gl.E(gl.NEAREST))
		src = resolveFB
	}
	return r.readFramebuffer(src, int(w), int(h))
}

func (r *Replayer) captureTextures(ctx context.Context, c *contextState) []*snapshot.Texture {
	t := r.tracker(c, gl.Textures)
	out := []*snapshot.Texture{}
	for _, h := range t.Handles() {
		live, _ := t.MapToReplay(h)
		tex := &snapshot.Texture{Handle: h, Target: t.Target(h), Params: map[gl.Enum][]float32{}}
		out = append(out, tex)
		if tex.Target == gl.NONE || !r.isLive(gl.Textures, live) {
			continue
		}
		r.withTexture(tex.Target, live, func() {
			r.withPixelStore(func() { r.captureTexture(tex) })
		})
	}
	return out
}

// captureTexture reads the bound texture of tex.Target.
func (r *Replayer) captureTexture(tex *snapshot.Texture) {
	p, target := r.procs, gl.E(tex.Target)
	for _, pname := range textureParams {
		v := p.QueryInts(gl.GetTexParameteriv, 1, target, gl.E(pname))
		tex.Params[pname] = []float32{float32(v[0])}
	}
	tex.Immutable = p.QueryInts(gl.GetTexParameteriv, 1, target, gl.E(gl.TEXTURE_IMMUTABLE_FORMAT))[0] != 0
	if tex.Immutable {
		tex.StorageLevels = p.QueryInts(gl.GetTexParameteriv, 1, target, gl.E(gl.TEXTURE_IMMUTABLE_LEVELS))[0]
	}
	for level := int32(0); level < maxTextureLevels; level++ {
		found := false
		for _, face := range cubeFaces(tex.Target) {
			param := func(pname gl.Enum) int32 {
				return p.QueryInts(gl.GetTexLevelParameteriv, 1, gl.E(face), gl.Int(int64(level)), gl.E(pname))[0]
			}
			l := &snapshot.TextureLevel{Face: face, Level: level, Width: param(gl.TEXTURE_WIDTH)}
			if l.Width == 0 {
				continue
			}
			found = true
			l.Height, l.Depth = param(gl.TEXTURE_HEIGHT), param(gl.TEXTURE_DEPTH)
			l.InternalFormat = param(gl.TEXTURE_INTERNAL_FORMAT)
			l.Format, l.Type = gl.StorageFormat(gl.Enum(l.InternalFormat))
			depth := int(l.Depth)
			if depth < 1 {
				depth = 1
			}
			l.Pixels = make([]byte, gl.ImageSize(int(l.Width), int(l.Height), depth, l.Format, l.Type, 1))
			r.invoke(gl.GetTexImage, gl.E(face), gl.Int(int64(level)), gl.E(l.Format), gl.E(l.Type), gl.Mem(l.Pixels))
			tex.Levels = append(tex.Levels, l)
		}
		if !found {
			break
		}
	}
}

// captureObjects reads the shaders and programs, which share one handle
// space.
func (r *Replayer) captureObjects(ctx context.Context, c *contextState, m Remapper) ([]*snapshot.Shader, []*snapshot.Program) {
	p, t, g := r.procs, r.tracker(c, gl.Programs), r.groups[c.group]
	shaders := []*snapshot.Shader{}
	for _, h := range t.HandlesWithTarget(gl.SHADER) {
		live, _ := t.MapToReplay(h)
		s := &snapshot.Shader{Handle: h, PendingDelete: g.pendingDeletes[h]}
		if r.isLive(gl.Shaders, live) {
			s.Type = gl.Enum(p.QueryInts(gl.GetShaderiv, 1, gl.Uint(live), gl.E(gl.SHADER_TYPE))[0])
			s.Compiled = p.QueryInts(gl.GetShaderiv, 1, gl.Uint(live), gl.E(gl.COMPILE_STATUS))[0] != 0
			s.Source = p.ShaderSource(uint32(live))
		}
		shaders = append(shaders, s)
	}
	programs := []*snapshot.Program{}
	for _, h := range t.HandlesWithTarget(gl.PROGRAM) {
		live, _ := t.MapToReplay(h)
		prog := &snapshot.Program{Handle: h, PendingDelete: g.pendingDeletes[h]}
		programs = append(programs, prog)
		if !r.isLive(gl.Programs, live) {
			continue
		}
		prog.Linked = p.QueryInts(gl.GetProgramiv, 1, gl.Uint(live), gl.E(gl.LINK_STATUS))[0] != 0
		prog.Separable = p.QueryInts(gl.GetProgramiv, 1, gl.Uint(live), gl.E(gl.PROGRAM_SEPARABLE))[0] != 0
		for _, s := range p.AttachedShaders(uint32(live)) {
			if h := mapped(ctx, m, gl.Shaders, uint64(s)); h != 0 {
				prog.Attached = append(prog.Attached, h)
			}
		}
		for _, st := range g.stages[h] {
			prog.Stages = append(prog.Stages, &snapshot.Stage{Type: st.typ, Source: st.source})
		}
		if prog.Linked {
			prog.Uniforms = r.captureUniforms(uint32(live), g.locations[h])
		}
	}
	return shaders, programs
}

// uniformElement returns the name of element i of a uniform.
func uniformElement(name string, size int32, i int) string {
	if size <= 1 {
		return name
	}
	return fmt.Sprintf("%s[%d]", name, i)
}

// captureUniforms reads the values of the active uniforms of a linked
// program. Locations are recorded in the trace domain, -1 where the trace
// never queried them.
func (r *Replayer) captureUniforms(live uint32, locs *locationMap) []*snapshot.Uniform {
	p := r.procs
	out := []*snapshot.Uniform{}
	for _, au := range p.ActiveUniforms(live) {
		u := &snapshot.Uniform{Name: strings.TrimSuffix(au.Name, "[0]"), Type: au.Type, Size: au.Size}
		elem := gl.UniformSize(au.Type)
		for i := 0; i < int(au.Size); i++ {
			loc := p.UniformLocation(live, uniformElement(u.Name, u.Size, i))
			traceLoc := int32(-1)
			if locs != nil {
				if t, ok := locs.inv[loc]; ok && loc >= 0 {
					traceLoc = t
				}
			}
			u.Locations = append(u.Locations, traceLoc)
			data := make([]byte, elem)
			if loc >= 0 && elem > 0 {
				r.invoke(gl.GetUniformfv, gl.Uint(uint64(live)), gl.Int(int64(loc)), gl.Mem(data))
			}
			u.Data = append(u.Data, data...)
		}
		out = append(out, u)
	}
	return out
}

func (r *Replayer) captureSyncs(ctx context.Context, c *contextState) []*snapshot.Sync {
	p, t := r.procs, r.tracker(c, gl.Syncs)
	out := []*snapshot.Sync{}
	for _, h := range t.Handles() {
		live, _ := t.MapToReplay(h)
		s := &snapshot.Sync{Handle: h, Condition: gl.SYNC_GPU_COMMANDS_COMPLETE}
		if r.isLive(gl.Syncs, live) {
			param := func(pname gl.Enum) int32 {
				return p.QueryInts(gl.GetSynciv, 1, gl.Uint(live), gl.E(pname), gl.Int(1), gl.Mem(make([]byte, 4)))[0]
			}
			s.Condition = gl.Enum(param(gl.SYNC_CONDITION))
			s.Flags = uint32(param(gl.SYNC_FLAGS))
			s.Signaled = p.SyncStatus(live) == gl.SIGNALED
		}
		out = append(out, s)
	}
	return out
}

func (r *Replayer) captureARBPrograms(ctx context.Context, c *contextState) []*snapshot.ARBProgram {
	p, t := r.procs, r.tracker(c, gl.ProgramsARB)
	out := []*snapshot.ARBProgram{}
	for _, h := range t.Handles() {
		live, _ := t.MapToReplay(h)
		a := &snapshot.ARBProgram{Handle: h, Target: t.Target(h)}
		out = append(out, a)
		if a.Target == gl.NONE || !r.isLive(gl.ProgramsARB, live) {
			continue
		}
		target := gl.E(a.Target)
		query := func(pname gl.Enum) int32 { return p.QueryInts(gl.GetProgramivARB, 1, target, gl.E(pname))[0] }
		prev := query(gl.PROGRAM_BINDING_ARB)
		r.invoke(gl.BindProgramARB, target, gl.Uint(live))
		a.Format = gl.Enum(query(gl.PROGRAM_FORMAT_ARB))
		if n := query(gl.PROGRAM_LENGTH_ARB); n > 0 {
			a.Source = string(p.Query(gl.GetProgramStringARB, int(n), target, gl.E(gl.PROGRAM_STRING_ARB)))
		}
		for i := int32(0); i < query(gl.MAX_PROGRAM_LOCAL_PARAMETERS_ARB); i++ {
			v := p.QueryFloats(gl.GetProgramLocalParameterfvARB, 4, target, gl.Uint(uint64(i)))
			if !isZero(v) {
				a.Locals = append(a.Locals, &snapshot.ARBParam{Target: a.Target, Index: uint32(i), Value: v})
			}
		}
		r.invoke(gl.BindProgramARB, target, gl.Uint(uint64(uint32(prev))))
	}
	return out
}

func (r *Replayer) capturePipelines(ctx context.Context, c *contextState, m Remapper) []*snapshot.Pipeline {
	p, t := r.procs, r.tracker(c, gl.Pipelines)
	out := []*snapshot.Pipeline{}
	for _, h := range t.Handles() {
		live, _ := t.MapToReplay(h)
		pl := &snapshot.Pipeline{Handle: h, Stages: map[gl.Enum]uint64{}}
		out = append(out, pl)
		if !r.isLive(gl.Pipelines, live) {
			continue
		}
		query := func(pname gl.Enum) uint64 {
			return uint64(uint32(p.QueryInts(gl.GetProgramPipelineiv, 1, gl.Uint(live), gl.E(pname))[0]))
		}
		for typ := range shaderStageBits {
			if prog := mapped(ctx, m, gl.Programs, query(typ)); prog != 0 {
				pl.Stages[typ] = prog
			}
		}
		pl.ActiveProgram = mapped(ctx, m, gl.Programs, query(gl.ACTIVE_PROGRAM))
	}
	return out
}

func (r *Replayer) captureFramebuffers(ctx context.Context, c *contextState, m Remapper) []*snapshot.Framebuffer {
	p, t := r.procs, c.framebuffers
	prev := p.GetInteger(gl.READ_FRAMEBUFFER_BINDING)
	out := []*snapshot.Framebuffer{}
	for _, h := range t.Handles() {
		live, _ := t.MapToReplay(h)
		fb := &snapshot.Framebuffer{Handle: h}
		out = append(out, fb)
		if !r.isLive(gl.Framebuffers, live) {
			continue
		}
		r.invoke(gl.BindFramebuffer, gl.E(gl.READ_FRAMEBUFFER), gl.Uint(live))
		for _, point := range attachmentPoints {
			param := func(pname gl.Enum) int32 {
				return p.QueryInts(gl.GetFramebufferAttachmentParameteriv, 1, gl.E(gl.READ_FRAMEBUFFER), gl.E(point), gl.E(pname))[0]
			}
			a := &snapshot.Attachment{Point: point, Type: gl.Enum(param(gl.FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE))}
			name := uint64(uint32(param(gl.FRAMEBUFFER_ATTACHMENT_OBJECT_NAME)))
			switch a.Type {
			case gl.TEXTURE:
				a.Handle = mapped(ctx, m, gl.Textures, name)
				a.Level = param(gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL)
				a.Face = gl.Enum(param(gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE))
				a.Layer = param(gl.FRAMEBUFFER_ATTACHMENT_TEXTURE_LAYER)
			case gl.RENDERBUFFER:
				a.Handle = mapped(ctx, m, gl.Renderbuffers, name)
			default:
				continue
			}
			fb.Attachments = append(fb.Attachments, a)
		}
	}
	r.invoke(gl.BindFramebuffer, gl.E(gl.READ_FRAMEBUFFER), gl.Uint(uint64(uint32(prev))))
	return out
}

// captureVertexArrays returns the vertex array objects of c and the state
// of its default vertex array.
func (r *Replayer) captureVertexArrays(ctx context.Context, c *contextState, m Remapper) ([]*snapshot.VertexArray, *snapshot.VertexArray) {
	p, t := r.procs, c.vertexArrays
	prev := p.GetInteger(gl.VERTEX_ARRAY_BINDING)
	r.invoke(gl.BindVertexArray, gl.Uint(0))
	def := r.captureVertexArray(ctx, 0, m)
	out := []*snapshot.VertexArray{}
	for _, h := range t.Handles() {
		live, _ := t.MapToReplay(h)
		if !r.isLive(gl.VertexArrays, live) {
			out = append(out, &snapshot.VertexArray{Handle: h})
			continue
		}
		r.invoke(gl.BindVertexArray, gl.Uint(live))
		out = append(out, r.captureVertexArray(ctx, h, m))
	}
	r.invoke(gl.BindVertexArray, gl.Uint(uint64(uint32(prev))))
	return out, def
}

// captureVertexArray reads the bound vertex array. Only arrays that are
// enabled or refer to a buffer are recorded.
func (r *Replayer) captureVertexArray(ctx context.Context, h uint64, m Remapper) *snapshot.VertexArray {
	p := r.procs
	va := &snapshot.VertexArray{Handle: h, ElementBuffer: r.binding(ctx, m, gl.Buffers, gl.ELEMENT_ARRAY_BUFFER_BINDING)}
	for i := int32(0); i < p.GetInteger(gl.MAX_VERTEX_ATTRIBS); i++ {
		index := gl.Uint(uint64(i))
		q := func(pname gl.Enum) int32 { return p.QueryInts(gl.GetVertexAttribiv, 1, index, gl.E(pname))[0] }
		a := &snapshot.VertexAttrib{
			Index:      uint32(i),
			Enabled:    q(gl.VERTEX_ATTRIB_ARRAY_ENABLED) != 0,
			Size:       q(gl.VERTEX_ATTRIB_ARRAY_SIZE),
			Type:       gl.Enum(q(gl.VERTEX_ATTRIB_ARRAY_TYPE)),
			Normalized: q(gl.VERTEX_ATTRIB_ARRAY_NORMALIZED) != 0,
			Integer:    q(gl.VERTEX_ATTRIB_ARRAY_INTEGER) != 0,
			Stride:     q(gl.VERTEX_ATTRIB_ARRAY_STRIDE),
			Buffer:     mapped(ctx, m, gl.Buffers, uint64(uint32(q(gl.VERTEX_ATTRIB_ARRAY_BUFFER_BINDING)))),
			Divisor:    uint32(q(gl.VERTEX_ATTRIB_ARRAY_DIVISOR)),
		}
		if !a.Enabled && a.Buffer == 0 && a.Divisor == 0 {
			continue
		}
		if a.Buffer != 0 {
			a.Offset = gl.U64s(p.Query(gl.GetVertexAttribPointerv, 8, index, gl.E(gl.VERTEX_ATTRIB_ARRAY_POINTER)))[0]
		}
		va.Attribs = append(va.Attribs, a)
	}
	for _, f := range fixedArrayState {
		a := &snapshot.VertexAttrib{
			Index:   uint32(f.array),
			Enabled: p.IsEnabled(f.array),
			Size:    3,
			Type:    gl.Enum(p.GetInteger(f.typ)),
			Stride:  p.GetInteger(f.stride),
			Buffer:  r.binding(ctx, m, gl.Buffers, f.buffer),
		}
		if f.size != gl.NONE {
			a.Size = p.GetInteger(f.size)
		}
		if !a.Enabled && a.Buffer == 0 {
			continue
		}
		if a.Buffer != 0 {
			a.Offset = gl.U64s(p.Query(gl.GetPointerv, 8, gl.E(f.pointer)))[0]
		}
		va.Fixed = append(va.Fixed, a)
	}
	return va
}
