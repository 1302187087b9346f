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
	"bytes"
	"context"

	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/ValveSoftware/vogl-sub002/trace"
)

// defaultOutSize is the size of the out buffer passed for an out parameter
// the trace recorded no data for.
const defaultOutSize = 64

// handler replays one packet on the current context c.
type handler func(ctx context.Context, r *Replayer, c *contextState, p *trace.Packet) Status

// hook runs before or after the live call of a packet replayed by replay.
type hook func(ctx context.Context, r *Replayer, c *contextState, l *liveCall) Status

// liveCall is a packet being replayed: the trace packet, its translated
// arguments and the live result.
type liveCall struct {
	p    *trace.Packet
	d    *gl.Descriptor
	args []gl.Value
	ret  gl.Value
	// skip suppresses the live call. The after hook still runs.
	skip bool
}

// handlers are the entrypoints that need more than the table driven path.
// Entrypoints without a handler are replayed by replay.
var handlers [gl.EntrypointCount]handler

// contextless are the window-system entrypoints, which run before a
// context is selected.
var contextless = map[gl.Entrypoint]func(ctx context.Context, r *Replayer, p *trace.Packet) Status{}

// withHooks returns a handler replaying through replay with before and
// after.
func withHooks(before, after hook) handler {
	return func(ctx context.Context, r *Replayer, c *contextState, p *trace.Packet) Status {
		return r.replay(ctx, c, p, before, after)
	}
}

// fixedArrays maps the fixed-function pointer calls to their array.
var fixedArrays = map[gl.Entrypoint]gl.Enum{
	gl.VertexPointer:   gl.VERTEX_ARRAY,
	gl.NormalPointer:   gl.NORMAL_ARRAY,
	gl.ColorPointer:    gl.COLOR_ARRAY,
	gl.TexCoordPointer: gl.TEXTURE_COORD_ARRAY,
}

// rawHandles are entrypoints whose handle arrays are interpreted by their
// handler.
var rawHandles = map[gl.Entrypoint]bool{
	gl.CallLists:   true,
	gl.DeleteLists: true,
}

// sweeps are the calls after which deferred program and shader deletes may
// have completed.
var sweeps = map[gl.Entrypoint]bool{
	gl.UseProgram:    true,
	gl.DetachShader:  true,
	gl.DeleteProgram: true,
	gl.DeleteShader:  true,
}

func (r *Replayer) dispatch(ctx context.Context, p *trace.Packet) Status {
	if !p.Valid() {
		log.E(ctx, "Invalid packet: entrypoint %d with %d arguments", p.Entrypoint, len(p.Args))
		return HardFailure
	}
	if p.IsInternal() {
		return r.processInternal(ctx, p)
	}
	if h, ok := contextless[p.Entrypoint]; ok {
		return h(ctx, r, p)
	}
	if p.Context == 0 {
		log.W(ctx, "%v called with no current context", p.Entrypoint)
		return SoftFailure
	}
	c, status := r.switchTo(ctx, p.Context)
	if status != OK {
		return status
	}
	if c.list != nil && p.Describe().Flags.Has(gl.FlagListable) {
		data, err := trace.EncodePacket(p)
		if err != nil {
			log.W(ctx, "Cannot record %v into list %d: %v", p.Entrypoint, c.list.handle, err)
		} else {
			c.list.packets = append(c.list.packets, data)
		}
	}
	if h := handlers[p.Entrypoint]; h != nil {
		return h(ctx, r, c, p)
	}
	return r.replay(ctx, c, p, nil, nil)
}

// replay is the table driven path: translate the arguments, issue the live
// call, then update the trackers and compare the results with the trace.
func (r *Replayer) replay(ctx context.Context, c *contextState, p *trace.Packet, before, after hook) Status {
	l := &liveCall{p: p, d: p.Describe()}
	if status := r.translate(ctx, c, l); status != OK {
		return status
	}
	if before != nil {
		if status := before(ctx, r, c, l); status != OK {
			return status
		}
	}
	status := OK
	if !l.skip {
		ret, err := r.procs.Call(p.Entrypoint, l.args...)
		if err != nil {
			log.W(ctx, "Cannot replay %v: %v", l.d.Name, err)
			return SoftFailure
		}
		l.ret = ret
		if !r.opts.Benchmark {
			status = r.checkErrors(ctx, c, l)
		}
		s := r.track(ctx, c, l)
		if s.Fatal() {
			return s
		}
		status = worst(status, s)
	}
	if after != nil {
		status = worst(status, after(ctx, r, c, l))
	}
	if !l.skip && !r.opts.Benchmark {
		r.checkDivergence(ctx, c, l)
	}
	return status
}

// translate builds the live arguments of l.
func (r *Replayer) translate(ctx context.Context, c *contextState, l *liveCall) Status {
	m := traceToReplay{r, c}
	p := l.p
	l.args = make([]gl.Value, len(p.Args))
	for i, prm := range l.d.Params {
		v := p.Args[i]
		switch prm.Kind {
		case gl.ParamHandle, gl.ParamContext:
			h, status := r.translateHandle(ctx, c, l, prm.Namespace, v.Uint())
			if status != OK {
				return status
			}
			l.args[i] = gl.Uint(h)
		case gl.ParamHandles:
			if rawHandles[p.Entrypoint] {
				l.args[i] = v
				continue
			}
			in := gl.U32s(v.Mem)
			out := make([]uint32, len(in))
			for j, h := range in {
				live, status := r.translateHandle(ctx, c, l, prm.Namespace, uint64(h))
				if status != OK {
					return status
				}
				out[j] = uint32(live)
			}
			l.args[i] = gl.Mem(gl.PutU32s(out...))
		case gl.ParamHandlesOut, gl.ParamOut:
			n := len(v.Mem)
			if n == 0 {
				n = defaultOutSize
				if prm.Kind == gl.ParamHandlesOut && i > 0 {
					n = int(p.Args[i-1].Int()) * 4
				}
			}
			l.args[i] = gl.Mem(make([]byte, n))
		case gl.ParamLocation:
			program := c.program
			if prm.Program >= 0 {
				program = p.Args[prm.Program].Uint()
			}
			l.args[i] = gl.Int(int64(m.RemapLocation(ctx, program, v.Int32())))
		case gl.ParamClient:
			if array, ok := fixedArrays[p.Entrypoint]; ok {
				l.args[i] = m.RemapVertexArrayPtr(array, v)
			} else {
				l.args[i] = m.RemapVertexAttribPtr(p.Args[0].Uint32(), v)
			}
		default:
			l.args[i] = v
		}
	}
	return OK
}

// translateHandle maps the trace handle h of ns to its live handle. Traces
// rebind the same object over and over, so the last lookup of each
// namespace is kept as a tracker token.
func (r *Replayer) translateHandle(ctx context.Context, c *contextState, l *liveCall, ns gl.Namespace, h uint64) (uint64, Status) {
	t := r.tracker(c, ns)
	if tok, ok := c.lastHandle[ns]; ok && h != 0 && t != nil && tok.Handle() == h {
		if live, ok := t.Resolve(tok); ok {
			return live, OK
		}
	}
	live, err := traceToReplay{r, c}.RemapHandle(ns, h)
	if err == nil {
		if t != nil && h != 0 {
			if tok, ok := t.Token(h); ok {
				c.lastHandle[ns] = tok
			}
		}
		return live, OK
	}
	f := l.d.Flags
	switch {
	case f.Has(gl.FlagBind) && !ns.IsGenericObject():
		return r.genOnDemand(ctx, c, ns, h)
	case f.Has(gl.FlagDelete), f.Has(gl.FlagCheckReturn), l.p.Entrypoint == gl.CallList:
		log.D(ctx, "%v: unknown %v handle %d passed as 0", l.d.Name, ns, h)
		return 0, OK
	case r.opts.StrictRemap:
		log.E(ctx, "Failed remapping %v handle %d: %v", ns, h, err)
		return 0, HardFailure
	}
	log.W(ctx, "Failed remapping %v handle %d: %v", ns, h, err)
	return 0, SoftFailure
}

// genOnDemand creates a live object for a trace handle bound without ever
// being generated, which the compatibility profile allows.
func (r *Replayer) genOnDemand(ctx context.Context, c *contextState, ns gl.Namespace, h uint64) (uint64, Status) {
	procs, ok := namespaceProcs[ns]
	if !ok || ns == gl.Lists || ns == gl.Syncs {
		log.E(ctx, "Cannot create %v handle %d on bind", ns, h)
		return 0, HardFailure
	}
	live := uint64(r.procs.GenName(procs.gen))
	if live == 0 {
		log.E(ctx, "%v returned no name for %v handle %d", procs.gen, ns, h)
		return 0, HardFailure
	}
	if status := r.declare(ctx, c, ns, h, live, gl.NONE); status != OK {
		return 0, status
	}
	return live, OK
}

// declare records that the trace handle h of ns is the live object live.
func (r *Replayer) declare(ctx context.Context, c *contextState, ns gl.Namespace, h, live uint64, target gl.Enum) Status {
	if h == 0 || live == 0 {
		log.W(ctx, "Cannot map %v handle %d to %d", ns, h, live)
		return SoftFailure
	}
	t := r.tracker(c, ns)
	if other, ok := t.MapToTrace(live); ok && other != h {
		log.W(ctx, "Driver reissued %v name %d, dropping stale trace handle %d", ns, live, other)
		r.forgetHandle(c, ns, other)
	}
	if old, ok := t.MapToReplay(h); ok {
		log.W(ctx, "%v trace handle %d reused without a delete, was %d", ns, h, old)
		r.forgetHandle(c, ns, h)
	}
	if err := (traceToReplay{r, c}).DeclareHandle(ctx, ns, h, live, target); err != nil {
		log.E(ctx, "Failed to track %v handle %d: %v", ns, h, err)
		return HardFailure
	}
	if r.opts.Verbose {
		log.I(ctx, "%v handle %d is %d", ns, h, live)
	}
	return OK
}

// forgetHandle erases the mapping of the trace handle h and its shadows.
func (r *Replayer) forgetHandle(c *contextState, ns gl.Namespace, h uint64) {
	r.tracker(c, ns).Erase(h)
	if ns.Shared() {
		r.groups[c.group].forget(ns, h)
	}
}

// track updates the trackers after the live call of l.
func (r *Replayer) track(ctx context.Context, c *contextState, l *liveCall) Status {
	status := OK
	f := l.d.Flags
	switch {
	case f.Has(gl.FlagGen):
		status = r.trackGen(ctx, c, l)
	case f.Has(gl.FlagCreate):
		status = r.trackCreate(ctx, c, l)
	case f.Has(gl.FlagDelete):
		r.trackDelete(ctx, c, l)
	case f.Has(gl.FlagBind) && c.listMode() != gl.COMPILE:
		r.trackBind(ctx, c, l)
	}
	if l.d.Return == gl.ParamLocation {
		r.trackLocation(ctx, c, l)
	}
	if sweeps[l.p.Entrypoint] {
		r.sweepPendingDeletes(ctx, c)
	}
	return status
}

func (r *Replayer) trackGen(ctx context.Context, c *contextState, l *liveCall) Status {
	status := OK
	for i, prm := range l.d.Params {
		if prm.Kind != gl.ParamHandlesOut {
			continue
		}
		target := gl.NONE
		if l.p.Entrypoint == gl.CreateTextures {
			target = l.p.Args[0].Enum()
		}
		traced, live := gl.U32s(l.p.Args[i].Mem), gl.U32s(l.args[i].Mem)
		if len(traced) > len(live) {
			log.W(ctx, "%v recorded %d names, driver returned %d", l.d.Name, len(traced), len(live))
			traced, status = traced[:len(live)], SoftFailure
		}
		for j, h := range traced {
			if h == 0 {
				continue
			}
			if s := r.declare(ctx, c, prm.Namespace, uint64(h), uint64(live[j]), target); s != OK {
				status = worst(status, s)
			}
		}
	}
	return status
}

func (r *Replayer) trackCreate(ctx context.Context, c *contextState, l *liveCall) Status {
	ns := l.d.ReturnNamespace
	h, live := l.p.Return.Uint(), l.ret.Uint()
	switch {
	case h == 0:
		if live != 0 {
			log.W(ctx, "%v failed at capture but returned %d", l.d.Name, live)
		}
		return OK
	case live == 0:
		log.W(ctx, "%v failed, trace handle %d left unmapped", l.d.Name, h)
		return SoftFailure
	}
	if l.p.Entrypoint == gl.GenLists {
		status := OK
		for i := uint64(0); i < l.p.Args[0].Uint(); i++ {
			status = worst(status, r.declare(ctx, c, ns, h+i, live+i, gl.NONE))
		}
		return status
	}
	target := gl.NONE
	if ns.IsGenericObject() {
		target = ns.ObjectType()
	}
	return r.declare(ctx, c, ns, h, live, target)
}

func (r *Replayer) trackDelete(ctx context.Context, c *contextState, l *liveCall) {
	for i, prm := range l.d.Params {
		switch prm.Kind {
		case gl.ParamHandles:
			for _, h := range gl.U32s(l.p.Args[i].Mem) {
				r.deleted(ctx, c, prm.Namespace, uint64(h))
			}
		case gl.ParamHandle:
			r.deleted(ctx, c, prm.Namespace, l.p.Args[i].Uint())
		}
	}
}

// deleted drops the mapping of a deleted trace handle. Programs and shaders
// the driver keeps alive stay mapped until the driver releases them.
func (r *Replayer) deleted(ctx context.Context, c *contextState, ns gl.Namespace, h uint64) {
	if h == 0 {
		return
	}
	live, ok := r.tracker(c, ns).MapToReplay(h)
	if !ok {
		return
	}
	if ns.IsGenericObject() && r.isLive(ns, live) {
		log.D(ctx, "%v %d deleted while in use", ns, h)
		r.groups[c.group].pendingDeletes[h] = true
		return
	}
	r.forgetHandle(c, ns, h)
}

// sweepPendingDeletes forgets the programs and shaders pending deletion
// that the driver has released.
func (r *Replayer) sweepPendingDeletes(ctx context.Context, c *contextState) {
	g := r.groups[c.group]
	t := g.trackers[gl.Programs]
	for _, h := range g.pendingHandles() {
		ns := gl.Programs
		if t.Target(h) == gl.SHADER {
			ns = gl.Shaders
		}
		if live, ok := t.MapToReplay(h); ok && r.isLive(ns, live) {
			continue
		}
		log.D(ctx, "Deferred delete of %v %d completed", ns, h)
		r.forgetHandle(c, ns, h)
	}
}

func (r *Replayer) trackBind(ctx context.Context, c *contextState, l *liveCall) {
	if l.p.Entrypoint == gl.UseProgram {
		c.program = l.p.Args[0].Uint()
		return
	}
	hi, ti := l.d.Handle(), l.d.Target()
	if hi < 0 || ti < 0 {
		return
	}
	ns, h := l.d.Params[hi].Namespace, l.p.Args[hi].Uint()
	if h == 0 {
		return
	}
	live := l.args[hi].Uint()
	if live == 0 {
		return
	}
	target, t := l.p.Args[ti].Enum(), r.tracker(c, ns)
	switch ns {
	case gl.Textures, gl.Queries, gl.ProgramsARB:
		if err := t.Update(h, live, target); err != nil {
			log.W(ctx, "Binding %v %d to %v: %v", ns, h, target, err)
		}
	case gl.Buffers:
		// A buffer may be bound to any target. The first one is kept.
		if err := t.ConditionalUpdate(h, live, target); err != nil {
			log.W(ctx, "Binding %v %d to %v: %v", ns, h, target, err)
		}
	}
}

// trackLocation records the location returned by glGetUniformLocation.
func (r *Replayer) trackLocation(ctx context.Context, c *contextState, l *liveCall) {
	program := l.p.Args[0].Uint()
	traced, live := l.p.Return.Int32(), l.ret.Int32()
	name := gl.GoString(l.p.Args[1].Mem)
	switch {
	case traced == -1:
		if live != -1 {
			log.D(ctx, "Uniform %q of program %d is active at replay only", name, program)
		}
		return
	case live == -1:
		log.W(ctx, "Uniform %q of program %d is inactive at replay", name, program)
		return
	}
	r.locations(c, program).add(traced, live)
}

// locations returns the location shadow of the trace program h.
func (r *Replayer) locations(c *contextState, h uint64) *locationMap {
	g := r.groups[c.group]
	m, ok := g.locations[h]
	if !ok {
		m = newLocationMap()
		g.locations[h] = m
	}
	return m
}

// checkErrors drains the driver error queue after the live call of l.
func (r *Replayer) checkErrors(ctx context.Context, c *contextState, l *liveCall) Status {
	if c.insideBegin || l.d.Flags.Has(gl.FlagBegin) || l.p.Entrypoint == gl.GetError {
		return OK
	}
	err := r.procs.ClearErrors()
	if err == gl.NO_ERROR {
		return OK
	}
	if c.pendingError == gl.NO_ERROR {
		c.pendingError = err
	}
	log.W(ctx, "%v raised %v", l.d.Name, err)
	return GLError
}

// handleOutputs maps the query results holding object handles to their
// namespace.
var handleOutputs = map[gl.Entrypoint]map[gl.Enum]gl.Namespace{
	gl.GetIntegerv:       gl.BindingNamespaces,
	gl.GetVertexAttribiv: {gl.VERTEX_ATTRIB_ARRAY_BUFFER_BINDING: gl.Buffers},
}

// checkDivergence compares the return value and outputs of l with the
// values recorded in the trace.
func (r *Replayer) checkDivergence(ctx context.Context, c *contextState, l *liveCall) {
	f, p := l.d.Flags, l.p
	if f.Has(gl.FlagCheckReturn) && p.Return.Kind != gl.KindVoid && p.Entrypoint != gl.GetError {
		if p.Return.Uint() != l.ret.Uint() {
			r.diverged(ctx, "%v returned %v, trace recorded %v", l.d.Name, l.ret, p.Return)
		}
	}
	if !f.Has(gl.FlagCheckOutputs) {
		return
	}
	for i, prm := range l.d.Params {
		want := p.Args[i].Mem
		if prm.Kind != gl.ParamOut || len(want) == 0 {
			continue
		}
		got := l.args[i].Mem
		if ns, ok := r.outputNamespace(l); ok && len(got) >= 4 {
			if h, err := (replayToTrace{r, c}).RemapHandle(ns, uint64(gl.U32s(got)[0])); err == nil {
				got = append(gl.PutU32s(uint32(h)), got[4:]...)
			}
		}
		if len(got) > len(want) {
			got = got[:len(want)]
		}
		if !bytes.Equal(got, want) {
			r.diverged(ctx, "%v output %v is %v, trace recorded %v", l.d.Name, prm.Name, got, want)
		}
	}
}

// outputNamespace returns the namespace of the handle a query of l writes.
func (r *Replayer) outputNamespace(l *liveCall) (gl.Namespace, bool) {
	pnames, ok := handleOutputs[l.p.Entrypoint]
	if !ok {
		return gl.InvalidNamespace, false
	}
	ns, ok := pnames[l.p.Arg("pname").Enum()]
	return ns, ok
}

func (r *Replayer) diverged(ctx context.Context, f string, args ...interface{}) {
	if r.nested == 0 {
		r.counters.Divergences++
	}
	log.W(ctx, "Divergence: "+f, args...)
}
