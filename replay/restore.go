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
	"github.com/ValveSoftware/vogl-sub002/trace"
)

// restore replaces every context with the contexts of s. Objects are
// recreated under new live names and declared to the trackers with their
// trace handles, so packets following the snapshot replay unchanged.
func (r *Replayer) restore(ctx context.Context, s *snapshot.Snapshot) Status {
	ctx = log.Enter(ctx, "restore")
	if !s.Restorable {
		log.E(ctx, "Snapshot of frame %d is not restorable", s.Frame)
		return HardFailure
	}
	r.destroyAll(ctx)
	w, h := int(s.WindowWidth), int(s.WindowHeight)
	if cw, ch := r.backend.Dimensions(); !r.opts.LockWindowDimensions && w > 0 && h > 0 && (cw != w || ch != h) {
		r.requestResize(ctx, w, h, nil)
	}
	if status := r.restoreContexts(ctx, s); status != OK {
		return status
	}

	for _, sc := range s.Contexts {
		if sc.Shared == nil {
			continue
		}
		m := r.firstCurrent(s, sc)
		if m == nil {
			if sc.Shared.Count(gl.Buffers)+sc.Shared.Count(gl.Textures)+sc.Shared.Count(gl.Programs) > 0 {
				log.W(ctx, "Share-group of context %d was never made current, objects are not restored", sc.Handle)
			}
			continue
		}
		if status := r.activate(ctx, m); status != OK {
			return status
		}
		var status Status
		r.withPixelStore(func() { status = r.restoreShared(ctx, m, sc.Shared) })
		if status.Fatal() {
			return status
		}
	}

	for _, sc := range s.Contexts {
		if !sc.MadeCurrent {
			continue
		}
		c := r.context(sc.Handle)
		if status := r.activate(ctx, c); status != OK {
			return status
		}
		for k, n := range sc.ClientArraySizes {
			c.clientArray(int(k), int(n))
		}
		if sc.Handle == s.CurrentContext && !r.opts.DisableRestoreFrontBuffer && len(s.Backbuffer) > 0 {
			r.withPixelStore(func() { r.drawPixels(0, w, h, s.Backbuffer) })
		}
		// Framebuffers and vertex arrays belong to the context but point at
		// share-group objects, which are restored above.
		m := traceToReplay{r, c}
		r.restoreFramebuffers(ctx, c, sc.Framebuffers)
		r.restoreVertexArrays(ctx, c, sc.VertexArrays, m)
		if sc.General != nil {
			if va := sc.General.DefaultVertexArray; va != nil {
				r.invoke(gl.BindVertexArray, gl.Uint(0))
				r.restoreVertexArray(ctx, c, va, m)
			}
			r.restoreGeneral(ctx, sc.General, m)
		}
		c.program = r.binding(ctx, replayToTrace{r, c}, gl.Programs, gl.CURRENT_PROGRAM)
		if err := r.procs.ClearErrors(); err != gl.NO_ERROR {
			log.W(ctx, "Restoring context %d raised %v", sc.Handle, err)
		}
	}

	for _, sc := range s.Contexts {
		if sc.Shared == nil {
			continue
		}
		m := r.firstCurrent(s, sc)
		if m == nil {
			continue
		}
		if status := r.activate(ctx, m); status != OK {
			return status
		}
		r.restorePendingDeletes(ctx, m, sc.Shared)
		r.restoreMapped(ctx, m, sc.Shared.Mapped)
		if status := r.remapAll(ctx, m); status.Fatal() {
			return status
		}
	}

	var current *contextState
	if s.CurrentContext != 0 {
		if current = r.context(s.CurrentContext); current == nil {
			log.E(ctx, "Snapshot current context %d was not restored", s.CurrentContext)
			return HardFailure
		}
	}
	if status := r.activate(ctx, current); status != OK {
		return status
	}
	r.frame, r.call, r.atFrameBoundary, r.frameDraws = s.Frame, s.Call, s.AtFrameBoundary, 0
	r.counters.Restores++
	if r.opts.CheckTrackers {
		for _, c := range r.contexts {
			if c == nil {
				continue
			}
			if err := r.checkTrackers(c); err != nil {
				log.E(ctx, "Trackers inconsistent after restore: %v", err)
				return HardFailure
			}
		}
	}
	log.D(ctx, "Restored %d contexts at frame %d", len(s.Contexts), s.Frame)
	return OK
}

// restoreContexts creates the contexts of s. A context that shares with a
// context listed after it is deferred to a later pass.
func (r *Replayer) restoreContexts(ctx context.Context, s *snapshot.Snapshot) Status {
	pending := s.Contexts
	for len(pending) > 0 {
		var next []*snapshot.Context
		for _, sc := range pending {
			if sc.Share != 0 && r.context(sc.Share) == nil {
				next = append(next, sc)
				continue
			}
			createdBy, ok := gl.Lookup(sc.CreatedBy)
			if !ok {
				createdBy = gl.XCreateContext
			}
			if status := r.createContext(ctx, sc.Handle, sc.Share, createdBy, sc.Attribs, sc.Direct); status != OK {
				return status
			}
		}
		if len(next) == len(pending) {
			log.E(ctx, "Context %d shares with a context missing from the snapshot", next[0].Handle)
			return HardFailure
		}
		pending = next
	}
	return OK
}

// firstCurrent returns the first member of the share-group of root that
// had been made current.
func (r *Replayer) firstCurrent(s *snapshot.Snapshot, root *snapshot.Context) *contextState {
	for _, sc := range s.Contexts {
		if sc.MadeCurrent && s.Root(sc) == root {
			return r.context(sc.Handle)
		}
	}
	return nil
}

// genDeclare creates a live object of ns and maps the trace handle h to
// it.
func (r *Replayer) genDeclare(ctx context.Context, c *contextState, ns gl.Namespace, h uint64, target gl.Enum) (uint64, Status) {
	live := uint64(r.procs.GenName(namespaceProcs[ns].gen))
	return live, r.declare(ctx, c, ns, h, live, target)
}

func (r *Replayer) restoreShared(ctx context.Context, c *contextState, s *snapshot.Shared) Status {
	steps := []func(context.Context, *contextState, *snapshot.Shared) Status{
		r.restoreBuffers,
		r.restoreSamplers,
		r.restoreQueries,
		r.restoreRenderbuffers,
		r.restoreTextures,
		r.restoreShaders,
		r.restorePrograms,
		r.restoreSyncs,
		r.restoreARBPrograms,
		r.restorePipelines,
		r.restoreLists,
	}
	for _, step := range steps {
		if status := step(ctx, c, s); status.Fatal() {
			return status
		}
	}
	r.procs.ClearErrors()
	return OK
}

func (r *Replayer) restoreBuffers(ctx context.Context, c *contextState, s *snapshot.Shared) Status {
	for _, b := range s.Buffers {
		live, status := r.genDeclare(ctx, c, gl.Buffers, b.Handle, b.Target)
		if status.Fatal() {
			return status
		}
		r.invoke(gl.BindBuffer, gl.E(gl.ARRAY_BUFFER), gl.Uint(live))
		if b.Usage != 0 {
			r.invoke(gl.BufferData, gl.E(gl.ARRAY_BUFFER), gl.Int(int64(len(b.Data))), gl.Mem(b.Data), gl.E(b.Usage))
		}
	}
	r.invoke(gl.BindBuffer, gl.E(gl.ARRAY_BUFFER), gl.Uint(0))
	return OK
}

func (r *Replayer) restoreSamplers(ctx context.Context, c *contextState, s *snapshot.Shared) Status {
	for _, sm := range s.Samplers {
		live, status := r.genDeclare(ctx, c, gl.Samplers, sm.Handle, gl.NONE)
		if status.Fatal() {
			return status
		}
		for _, pname := range samplerParams {
			if v, ok := sm.Params[pname]; ok && len(v) > 0 {
				r.invoke(gl.SamplerParameterf, gl.Uint(live), gl.E(pname), gl.Float(float64(v[0])))
			}
		}
	}
	return OK
}

// restoreQueries recreates query objects. Their results are those of an
// empty query, not the captured ones.
func (r *Replayer) restoreQueries(ctx context.Context, c *contextState, s *snapshot.Shared) Status {
	for _, q := range s.Queries {
		live, status := r.genDeclare(ctx, c, gl.Queries, q.Handle, q.Target)
		if status.Fatal() {
			return status
		}
		switch q.Target {
		case gl.NONE:
		case gl.TIMESTAMP:
			r.invoke(gl.QueryCounter, gl.Uint(live), gl.E(gl.TIMESTAMP))
		default:
			r.invoke(gl.BeginQuery, gl.E(q.Target), gl.Uint(live))
			r.invoke(gl.EndQuery, gl.E(q.Target))
		}
	}
	return OK
}

func (r *Replayer) restoreRenderbuffers(ctx context.Context, c *contextState, s *snapshot.Shared) Status {
	for _, rb := range s.Renderbuffers {
		live, status := r.genDeclare(ctx, c, gl.Renderbuffers, rb.Handle, gl.NONE)
		if status.Fatal() {
			return status
		}
		r.invoke(gl.BindRenderbuffer, gl.E(gl.RENDERBUFFER), gl.Uint(live))
		if rb.Width == 0 || rb.Height == 0 {
			continue
		}
		w, h := gl.Int(int64(rb.Width)), gl.Int(int64(rb.Height))
		if rb.Samples > 0 {
			r.invoke(gl.RenderbufferStorageMultisample, gl.E(gl.RENDERBUFFER), gl.Int(int64(rb.Samples)), gl.E(rb.InternalFormat), w, h)
		} else {
			r.invoke(gl.RenderbufferStorage, gl.E(gl.RENDERBUFFER), gl.E(rb.InternalFormat), w, h)
		}
		if len(rb.Pixels) > 0 {
			r.writeRenderbuffer(live, rb)
		}
	}
	r.invoke(gl.BindRenderbuffer, gl.E(gl.RENDERBUFFER), gl.Uint(0))
	return OK
}

// writeRenderbuffer draws the captured pixels of rb into its live
// renderbuffer. Multisampled storage is filled by a blit from a single
// sampled copy.
func (r *Replayer) writeRenderbuffer(live uint64, rb *snapshot.Renderbuffer) {
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
	if rb.Samples == 0 {
		r.drawPixels(fb, int(w), int(h), rb.Pixels)
		return
	}
	srcRB := p.GenName(gl.GenRenderbuffers)
	defer p.DeleteNames(gl.DeleteRenderbuffers, srcRB)
	srcFB := p.GenName(gl.GenFramebuffers)
	defer p.DeleteNames(gl.DeleteFramebuffers, srcFB)
	r.invoke(gl.BindRenderbuffer, gl.E(gl.RENDERBUFFER), gl.Uint(uint64(srcRB)))
	r.invoke(gl.RenderbufferStorage, gl.E(gl.RENDERBUFFER), gl.E(gl.RGBA8), gl.Int(w), gl.Int(h))
	r.invoke(gl.BindFramebuffer, gl.E(gl.FRAMEBUFFER), gl.Uint(uint64(srcFB)))
	r.invoke(gl.FramebufferRenderbuffer, gl.E(gl.FRAMEBUFFER), gl.E(gl.COLOR_ATTACHMENT0), gl.E(gl.RENDERBUFFER), gl.Uint(uint64(srcRB)))
	r.drawPixels(srcFB, int(w), int(h), rb.Pixels)
	r.invoke(gl.BindFramebuffer, gl.E(gl.READ_FRAMEBUFFER), gl.Uint(uint64(srcFB)))
	r.invoke(gl.BindFramebuffer, gl.E(gl.DRAW_FRAMEBUFFER), gl.Uint(uint64(fb)))
	r.invoke(gl.BlitFramebuffer, gl.Int(0), gl.Int(0), gl.Int(w), gl.Int(h), gl.Int(0), gl.Int(0), gl.Int(w), gl.Int(h),
		gl.Uint(gl.COLOR_BUFFER_BIT), gl.E(gl.NEAREST))
}

// drawPixels writes RGBA8 pixels to the lower left corner of framebuffer
// fb. The draw framebuffer binding and raster position are not restored.
func (r *Replayer) drawPixels(fb uint32, w, h int, pixels []byte) {
	r.invoke(gl.BindFramebuffer, gl.E(gl.DRAW_FRAMEBUFFER), gl.Uint(uint64(fb)))
	r.invoke(gl.RasterPos2i, gl.Int(0), gl.Int(0))
	r.invoke(gl.DrawPixels, gl.Int(int64(w)), gl.Int(int64(h)), gl.E(gl.RGBA), gl.E(gl.UNSIGNED_BYTE), gl.Mem(pixels))
}

func (r *Replayer) restoreTextures(ctx context.Context, c *contextState, s *snapshot.Shared) Status {
	for _, tex := range s.Textures {
		live, status := r.genDeclare(ctx, c, gl.Textures, tex.Handle, tex.Target)
		if status.Fatal() {
			return status
		}
		if tex.Target == gl.NONE {
			continue
		}
		r.withTexture(tex.Target, live, func() { r.restoreTexture(ctx, tex) })
	}
	return OK
}

// restoreTexture specifies the images and parameters of the bound texture.
func (r *Replayer) restoreTexture(ctx context.Context, tex *snapshot.Texture) {
	target := gl.E(tex.Target)
	immutable := tex.Immutable && len(tex.Levels) > 0 &&
		(tex.Target == gl.TEXTURE_2D || tex.Target == gl.TEXTURE_CUBE_MAP)
	if immutable {
		base := tex.Levels[0]
		r.invoke(gl.TexStorage2D, target, gl.Int(int64(tex.StorageLevels)), gl.E(gl.Enum(base.InternalFormat)),
			gl.Int(int64(base.Width)), gl.Int(int64(base.Height)))
	}
	for _, l := range tex.Levels {
		pixels := gl.Mem(l.Pixels)
		switch {
		case immutable:
			if l.Pixels != nil {
				r.invoke(gl.TexSubImage2D, gl.E(l.Face), gl.Int(int64(l.Level)), gl.Int(0), gl.Int(0),
					gl.Int(int64(l.Width)), gl.Int(int64(l.Height)), gl.E(l.Format), gl.E(l.Type), pixels)
			}
		case tex.Target == gl.TEXTURE_3D || tex.Target == gl.TEXTURE_2D_ARRAY:
			r.invoke(gl.TexImage3D, gl.E(l.Face), gl.Int(int64(l.Level)), gl.Int(int64(l.InternalFormat)),
				gl.Int(int64(l.Width)), gl.Int(int64(l.Height)), gl.Int(int64(l.Depth)), gl.Int(0),
				gl.E(l.Format), gl.E(l.Type), pixels)
		case tex.Target == gl.TEXTURE_1D:
			log.W(ctx, "Level %d of 1D texture %d is not restored", l.Level, tex.Handle)
		default:
			r.invoke(gl.TexImage2D, gl.E(l.Face), gl.Int(int64(l.Level)), gl.Int(int64(l.InternalFormat)),
				gl.Int(int64(l.Width)), gl.Int(int64(l.Height)), gl.Int(0), gl.E(l.Format), gl.E(l.Type), pixels)
		}
	}
	for _, pname := range textureParams {
		if v, ok := tex.Params[pname]; ok && len(v) > 0 {
			r.invoke(gl.TexParameterfv, target, gl.E(pname), gl.Mem(gl.PutF32s(v...)))
		}
	}
}

// compileShader creates and compiles a live shader from source.
func (r *Replayer) compileShader(typ gl.Enum, source string, compile bool) uint64 {
	live := r.invoke(gl.CreateShader, gl.E(typ)).Uint()
	if live == 0 {
		return 0
	}
	r.invoke(gl.ShaderSource, gl.Uint(live), gl.Int(1), gl.Mem(gl.JoinSources(source)), gl.Mem(nil))
	if compile {
		r.invoke(gl.CompileShader, gl.Uint(live))
	}
	return live
}

func (r *Replayer) restoreShaders(ctx context.Context, c *contextState, s *snapshot.Shared) Status {
	for _, sh := range s.Shaders {
		live := r.compileShader(sh.Type, sh.Source, sh.Compiled)
		if status := r.declare(ctx, c, gl.Shaders, sh.Handle, live, gl.SHADER); status.Fatal() {
			return status
		}
	}
	return OK
}

func (r *Replayer) restorePrograms(ctx context.Context, c *contextState, s *snapshot.Shared) Status {
	g := r.groups[c.group]
	shaders := r.tracker(c, gl.Shaders)
	for _, prog := range s.Programs {
		live := r.invoke(gl.CreateProgram).Uint()
		if status := r.declare(ctx, c, gl.Programs, prog.Handle, live, gl.PROGRAM); status.Fatal() {
			return status
		}
		if live == 0 {
			continue
		}
		if prog.Separable {
			r.invoke(gl.ProgramParameteri, gl.Uint(live), gl.E(gl.PROGRAM_SEPARABLE), gl.Int(1))
		}
		if prog.Linked && len(prog.Stages) > 0 {
			var temps []uint64
			for _, st := range prog.Stages {
				sh := r.compileShader(st.Type, st.Source, true)
				r.invoke(gl.AttachShader, gl.Uint(live), gl.Uint(sh))
				temps = append(temps, sh)
			}
			r.invoke(gl.LinkProgram, gl.Uint(live))
			for _, sh := range temps {
				r.invoke(gl.DetachShader, gl.Uint(live), gl.Uint(sh))
				r.invoke(gl.DeleteShader, gl.Uint(sh))
			}
			if r.procs.QueryInts(gl.GetProgramiv, 1, gl.Uint(live), gl.E(gl.LINK_STATUS))[0] == 0 {
				log.W(ctx, "Program %d failed to link on restore", prog.Handle)
			}
			stages := make([]stage, len(prog.Stages))
			for i, st := range prog.Stages {
				stages[i] = stage{typ: st.Type, source: st.Source}
			}
			g.stages[prog.Handle] = stages
			g.locations[prog.Handle] = r.restoreUniforms(ctx, uint32(live), prog.Uniforms)
		}
		for _, h := range prog.Attached {
			if sh, ok := shaders.MapToReplay(h); ok {
				r.invoke(gl.AttachShader, gl.Uint(live), gl.Uint(sh))
			} else {
				log.W(ctx, "Program %d has unknown shader %d attached", prog.Handle, h)
			}
		}
	}
	return OK
}

// restoreUniforms sets the captured uniform values of a linked program and
// returns the location map of the elements the trace queried.
func (r *Replayer) restoreUniforms(ctx context.Context, live uint32, uniforms []*snapshot.Uniform) *locationMap {
	p, m := r.procs, newLocationMap()
	for _, u := range uniforms {
		elem := gl.UniformSize(u.Type)
		for i := 0; i < int(u.Size); i++ {
			loc := p.UniformLocation(live, uniformElement(u.Name, u.Size, i))
			if loc < 0 {
				log.W(ctx, "Uniform %s is not active after restore", uniformElement(u.Name, u.Size, i))
				continue
			}
			if i < len(u.Locations) && u.Locations[i] >= 0 {
				m.add(u.Locations[i], loc)
			}
			if end := (i + 1) * elem; elem > 0 && end <= len(u.Data) {
				r.setUniform(live, loc, u.Type, u.Data[i*elem:end])
			}
		}
	}
	return m
}

// setUniform writes one element of a uniform.
func (r *Replayer) setUniform(prog uint32, loc int32, typ gl.Enum, data []byte) {
	args := []gl.Value{gl.Uint(uint64(prog)), gl.Int(int64(loc)), gl.Int(1)}
	switch {
	case typ == gl.FLOAT_MAT4:
		r.invoke(gl.ProgramUniformMatrix4fv, append(args, gl.Bool(false), gl.Mem(data))...)
	case typ == gl.FLOAT_MAT3:
		r.invoke(gl.ProgramUniformMatrix3fv, append(args, gl.Bool(false), gl.Mem(data))...)
	case gl.IsIntUniform(typ):
		r.invoke(gl.ProgramUniform1iv, append(args, gl.Mem(data))...)
	default:
		setters := map[int]gl.Entrypoint{
			4:  gl.ProgramUniform1fv,
			8:  gl.ProgramUniform2fv,
			12: gl.ProgramUniform3fv,
			16: gl.ProgramUniform4fv,
		}
		if e, ok := setters[len(data)]; ok {
			r.invoke(e, append(args, gl.Mem(data))...)
		}
	}
}

func (r *Replayer) restoreSyncs(ctx context.Context, c *contextState, s *snapshot.Shared) Status {
	for _, sy := range s.Syncs {
		cond := sy.Condition
		if cond == gl.NONE {
			cond = gl.SYNC_GPU_COMMANDS_COMPLETE
		}
		live := r.invoke(gl.FenceSync, gl.E(cond), gl.Uint(uint64(sy.Flags))).Uint()
		if status := r.declare(ctx, c, gl.Syncs, sy.Handle, live, gl.NONE); status.Fatal() {
			return status
		}
	}
	return OK
}

func (r *Replayer) restoreARBPrograms(ctx context.Context, c *contextState, s *snapshot.Shared) Status {
	p := r.procs
	for _, a := range s.ARBPrograms {
		live, status := r.genDeclare(ctx, c, gl.ProgramsARB, a.Handle, a.Target)
		if status.Fatal() {
			return status
		}
		if a.Target == gl.NONE {
			continue
		}
		target := gl.E(a.Target)
		prev := p.QueryInts(gl.GetProgramivARB, 1, target, gl.E(gl.PROGRAM_BINDING_ARB))[0]
		r.invoke(gl.BindProgramARB, target, gl.Uint(live))
		if a.Source != "" {
			r.invoke(gl.ProgramStringARB, target, gl.E(a.Format), gl.Int(int64(len(a.Source))), gl.Mem([]byte(a.Source)))
		}
		for _, l := range a.Locals {
			args := []gl.Value{target, gl.Uint(uint64(l.Index))}
			for _, v := range l.Value {
				args = append(args, gl.Float(float64(v)))
			}
			r.invoke(gl.ProgramLocalParameter4fARB, args...)
		}
		r.invoke(gl.BindProgramARB, target, gl.Uint(uint64(uint32(prev))))
	}
	return OK
}

func (r *Replayer) restorePipelines(ctx context.Context, c *contextState, s *snapshot.Shared) Status {
	programs := r.tracker(c, gl.Programs)
	for _, pl := range s.Pipelines {
		live, status := r.genDeclare(ctx, c, gl.Pipelines, pl.Handle, gl.NONE)
		if status.Fatal() {
			return status
		}
		bits := map[uint64]uint32{}
		for typ, prog := range pl.Stages {
			bits[prog] |= shaderStageBits[typ]
		}
		for prog, b := range bits {
			lp, ok := programs.MapToReplay(prog)
			if !ok {
				log.W(ctx, "Pipeline %d uses unknown program %d", pl.Handle, prog)
				continue
			}
			r.invoke(gl.UseProgramStages, gl.Uint(live), gl.Uint(uint64(b)), gl.Uint(lp))
		}
		if lp, ok := programs.MapToReplay(pl.ActiveProgram); ok {
			r.invoke(gl.ActiveShaderProgram, gl.Uint(live), gl.Uint(lp))
		}
	}
	return OK
}

// restoreLists compiles every display list again from its recorded
// packets.
func (r *Replayer) restoreLists(ctx context.Context, c *contextState, s *snapshot.Shared) Status {
	r.nested++
	defer func() { r.nested-- }()
	for _, l := range s.Lists {
		live := r.invoke(gl.GenLists, gl.Int(1)).Uint()
		if status := r.declare(ctx, c, gl.Lists, l.Handle, live, gl.NONE); status.Fatal() {
			return status
		}
		if len(l.Packets) == 0 {
			continue
		}
		packets := []*trace.Packet{trace.NewCall(gl.NewList, c.trace, 0, gl.Uint(l.Handle), gl.E(gl.COMPILE))}
		for _, data := range l.Packets {
			p, err := trace.DecodePacket(data)
			if err != nil {
				log.E(ctx, "Corrupt packet in list %d: %v", l.Handle, err)
				return HardFailure
			}
			p.Context = c.trace
			packets = append(packets, p)
		}
		packets = append(packets, trace.NewCall(gl.EndList, c.trace, 0))
		for _, p := range packets {
			if status := r.dispatch(ctx, p); status.Fatal() {
				return status
			}
		}
	}
	return OK
}

func (r *Replayer) restoreFramebuffers(ctx context.Context, c *contextState, fbs []*snapshot.Framebuffer) {
	textures, renderbuffers := r.tracker(c, gl.Textures), r.tracker(c, gl.Renderbuffers)
	for _, fb := range fbs {
		live, status := r.genDeclare(ctx, c, gl.Framebuffers, fb.Handle, gl.NONE)
		if status != OK {
			continue
		}
		r.invoke(gl.BindFramebuffer, gl.E(gl.FRAMEBUFFER), gl.Uint(live))
		for _, a := range fb.Attachments {
			point := gl.E(a.Point)
			switch a.Type {
			case gl.RENDERBUFFER:
				if lr, ok := renderbuffers.MapToReplay(a.Handle); ok {
					r.invoke(gl.FramebufferRenderbuffer, gl.E(gl.FRAMEBUFFER), point, gl.E(gl.RENDERBUFFER), gl.Uint(lr))
				}
			case gl.TEXTURE:
				lt, ok := textures.MapToReplay(a.Handle)
				if !ok {
					log.W(ctx, "Framebuffer %d has unknown texture %d attached", fb.Handle, a.Handle)
					continue
				}
				target := textures.Target(a.Handle)
				switch {
				case target == gl.TEXTURE_3D || target == gl.TEXTURE_2D_ARRAY:
					r.invoke(gl.FramebufferTextureLayer, gl.E(gl.FRAMEBUFFER), point, gl.Uint(lt), gl.Int(int64(a.Level)), gl.Int(int64(a.Layer)))
				case a.Face != gl.NONE:
					r.invoke(gl.FramebufferTexture2D, gl.E(gl.FRAMEBUFFER), point, gl.E(a.Face), gl.Uint(lt), gl.Int(int64(a.Level)))
				default:
					r.invoke(gl.FramebufferTexture2D, gl.E(gl.FRAMEBUFFER), point, gl.E(target), gl.Uint(lt), gl.Int(int64(a.Level)))
				}
			}
		}
	}
	r.invoke(gl.BindFramebuffer, gl.E(gl.FRAMEBUFFER), gl.Uint(0))
}

func (r *Replayer) restoreVertexArrays(ctx context.Context, c *contextState, vas []*snapshot.VertexArray, m Remapper) {
	for _, va := range vas {
		live, status := r.genDeclare(ctx, c, gl.VertexArrays, va.Handle, gl.NONE)
		if status != OK {
			continue
		}
		r.invoke(gl.BindVertexArray, gl.Uint(live))
		r.restoreVertexArray(ctx, c, va, m)
	}
	r.invoke(gl.BindVertexArray, gl.Uint(0))
}

// restoreVertexArray specifies the arrays of the bound vertex array.
// Arrays in client memory point at the scratch buffers filled at draws.
func (r *Replayer) restoreVertexArray(ctx context.Context, c *contextState, va *snapshot.VertexArray, m Remapper) {
	buffer := func(h uint64) gl.Value { return gl.Uint(mapped(ctx, m, gl.Buffers, h)) }
	pointer := func(key int, a *snapshot.VertexAttrib) gl.Value {
		switch {
		case a.Buffer != 0:
			return gl.Uint(a.Offset)
		case a.Enabled:
			return gl.Mem(c.clientArray(key, r.opts.ClientArraySize).data)
		}
		return gl.Mem(nil)
	}
	r.invoke(gl.BindBuffer, gl.E(gl.ELEMENT_ARRAY_BUFFER), buffer(va.ElementBuffer))
	for _, a := range va.Attribs {
		index := gl.Uint(uint64(a.Index))
		r.invoke(gl.BindBuffer, gl.E(gl.ARRAY_BUFFER), buffer(a.Buffer))
		ptr := pointer(int(a.Index), a)
		if a.Integer {
			r.invoke(gl.VertexAttribIPointer, index, gl.Int(int64(a.Size)), gl.E(a.Type), gl.Int(int64(a.Stride)), ptr)
		} else {
			r.invoke(gl.VertexAttribPointer, index, gl.Int(int64(a.Size)), gl.E(a.Type), gl.Bool(a.Normalized), gl.Int(int64(a.Stride)), ptr)
		}
		if a.Enabled {
			r.invoke(gl.EnableVertexAttribArray, index)
		} else {
			r.invoke(gl.DisableVertexAttribArray, index)
		}
		r.invoke(gl.VertexAttribDivisor, index, gl.Uint(uint64(a.Divisor)))
	}
	r.invoke(gl.ClientActiveTexture, gl.E(gl.TEXTURE0))
	for _, a := range va.Fixed {
		array := gl.Enum(a.Index)
		r.invoke(gl.BindBuffer, gl.E(gl.ARRAY_BUFFER), buffer(a.Buffer))
		ptr := pointer(int(array), a)
		size, typ, stride := gl.Int(int64(a.Size)), gl.E(a.Type), gl.Int(int64(a.Stride))
		switch array {
		case gl.VERTEX_ARRAY:
			r.invoke(gl.VertexPointer, size, typ, stride, ptr)
		case gl.NORMAL_ARRAY:
			r.invoke(gl.NormalPointer, typ, stride, ptr)
		case gl.COLOR_ARRAY:
			r.invoke(gl.ColorPointer, size, typ, stride, ptr)
		case gl.TEXTURE_COORD_ARRAY:
			r.invoke(gl.TexCoordPointer, size, typ, stride, ptr)
		default:
			log.W(ctx, "Unknown fixed function array %v", array)
			continue
		}
		if a.Enabled {
			r.invoke(gl.EnableClientState, gl.E(array))
		} else {
			r.invoke(gl.DisableClientState, gl.E(array))
		}
	}
	r.invoke(gl.BindBuffer, gl.E(gl.ARRAY_BUFFER), gl.Uint(0))
}

// restorePendingDeletes deletes the programs and shaders that were pending
// deletion at capture. They stay tracked until the driver releases them.
func (r *Replayer) restorePendingDeletes(ctx context.Context, c *contextState, s *snapshot.Shared) {
	t := r.tracker(c, gl.Programs)
	del := func(ns gl.Namespace, h uint64) {
		live, ok := t.MapToReplay(h)
		if !ok {
			return
		}
		r.deleteLive(ns, live)
		// Whatever kept it alive at capture is restored by now.
		if !r.isLive(ns, live) {
			r.diverged(ctx, "%v %d pending deletion was released on restore", ns, h)
		}
		r.deleted(ctx, c, ns, h)
	}
	for _, p := range s.Programs {
		if p.PendingDelete {
			del(gl.Programs, p.Handle)
		}
	}
	for _, sh := range s.Shaders {
		if sh.PendingDelete {
			del(gl.Shaders, sh.Handle)
		}
	}
}

// restoreMapped maps the buffer regions that were mapped at capture.
func (r *Replayer) restoreMapped(ctx context.Context, c *contextState, regions []*snapshot.MappedBuffer) {
	g := r.groups[c.group]
	for _, mb := range regions {
		g.mapped[mb.Buffer] = &mappedRegion{
			buffer:      mb.Buffer,
			target:      mb.Target,
			offset:      mb.Offset,
			length:      mb.Length,
			access:      mb.Access,
			flags:       mb.Flags,
			rangeMapped: mb.Range,
		}
	}
}
