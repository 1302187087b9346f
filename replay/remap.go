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

	"github.com/ValveSoftware/vogl-sub002/core/fault"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/pkg/errors"
)

// ErrUnmapped is returned when a non-zero handle has no mapping in the
// requested direction.
const ErrUnmapped = fault.Const("Handle not mapped")

// Remapper translates handles between the trace and replay domains. The
// replayer uses a trace to replay remapper while dispatching packets and a
// replay to trace remapper while capturing snapshots, so the object
// serialization code is shared by both directions.
type Remapper interface {
	// IsValidHandle returns true if h is a non-zero handle tracked in ns.
	IsValidHandle(ns gl.Namespace, h uint64) bool
	// RemapHandle translates h. Zero translates to zero. A non-zero handle
	// with no mapping fails with ErrUnmapped.
	RemapHandle(ns gl.Namespace, h uint64) (uint64, error)
	// RemapLocation translates a uniform location of program. -1 and
	// unknown locations are returned unchanged.
	RemapLocation(ctx context.Context, program uint64, loc int32) int32
	// DeclareHandle records that from translates to to.
	DeclareHandle(ctx context.Context, ns gl.Namespace, from, to uint64, target gl.Enum) error
	// DeleteHandleAndObject drops the mapping of a trace handle and deletes
	// the live object behind it.
	DeleteHandleAndObject(ctx context.Context, ns gl.Namespace, traceHandle, replayHandle uint64) error
	// RemapVertexAttribPtr translates the pointer of a generic attribute.
	RemapVertexAttribPtr(index uint32, ptr gl.Value) gl.Value
	// RemapVertexArrayPtr translates the pointer of a fixed function array.
	RemapVertexArrayPtr(array gl.Enum, ptr gl.Value) gl.Value
}

// objectProcs are the entrypoints that create, delete and test the objects
// of a namespace.
type objectProcs struct {
	gen, del, is gl.Entrypoint
}

var namespaceProcs = map[gl.Namespace]objectProcs{
	gl.Textures:      {gl.GenTextures, gl.DeleteTextures, gl.IsTexture},
	gl.Buffers:       {gl.GenBuffers, gl.DeleteBuffers, gl.IsBuffer},
	gl.Framebuffers:  {gl.GenFramebuffers, gl.DeleteFramebuffers, gl.IsFramebuffer},
	gl.Renderbuffers: {gl.GenRenderbuffers, gl.DeleteRenderbuffers, gl.IsRenderbuffer},
	gl.Samplers:      {gl.GenSamplers, gl.DeleteSamplers, gl.IsSampler},
	gl.Queries:       {gl.GenQueries, gl.DeleteQueries, gl.IsQuery},
	gl.VertexArrays:  {gl.GenVertexArrays, gl.DeleteVertexArrays, gl.IsVertexArray},
	gl.Pipelines:     {gl.GenProgramPipelines, gl.DeleteProgramPipelines, gl.IsProgramPipeline},
	gl.ProgramsARB:   {gl.GenProgramsARB, gl.DeleteProgramsARB, gl.IsProgramARB},
	gl.Lists:         {gl.GenLists, gl.DeleteLists, gl.IsList},
	gl.Programs:      {gl.CreateProgram, gl.DeleteProgram, gl.IsProgram},
	gl.Shaders:       {gl.CreateShader, gl.DeleteShader, gl.IsShader},
	gl.Syncs:         {gl.FenceSync, gl.DeleteSync, gl.IsSync},
}

// tracker returns the tracker backing ns for context c.
func (r *Replayer) tracker(c *contextState, ns gl.Namespace) *HandleTracker {
	switch ns {
	case gl.Framebuffers:
		return c.framebuffers
	case gl.VertexArrays:
		return c.vertexArrays
	case gl.Contexts:
		return r.contextHandles
	}
	if !ns.IsValid() {
		return nil
	}
	return r.groups[c.group].trackers[ns]
}

// genericTargetOK returns true if a program or shader handle tagged with
// target belongs to ns.
func genericTargetOK(ns gl.Namespace, target gl.Enum) bool {
	return !ns.IsGenericObject() || target == gl.NONE || target == ns.ObjectType()
}

// deleteLive deletes the live object h of ns.
func (r *Replayer) deleteLive(ns gl.Namespace, h uint64) {
	p, ok := namespaceProcs[ns]
	if !ok || h == 0 {
		return
	}
	if ns == gl.Syncs {
		r.procs.Call(p.del, gl.Uint(h))
		return
	}
	r.procs.DeleteNames(p.del, uint32(h))
}

// isLive returns true if the live driver reports h as an object of ns.
func (r *Replayer) isLive(ns gl.Namespace, h uint64) bool {
	p, ok := namespaceProcs[ns]
	if !ok || h == 0 {
		return false
	}
	return r.procs.IsName(p.is, h)
}

// traceToReplay is the Remapper used during playback.
type traceToReplay struct {
	r *Replayer
	c *contextState
}

func (m traceToReplay) IsValidHandle(ns gl.Namespace, h uint64) bool {
	t := m.r.tracker(m.c, ns)
	if h == 0 || t == nil || !t.Contains(h) {
		return false
	}
	return genericTargetOK(ns, t.Target(h))
}

func (m traceToReplay) RemapHandle(ns gl.Namespace, h uint64) (uint64, error) {
	if h == 0 {
		return 0, nil
	}
	t := m.r.tracker(m.c, ns)
	if t == nil {
		return h, errors.Errorf("No tracker for namespace %v", ns)
	}
	out, ok := t.MapToReplay(h)
	if !ok {
		return h, errors.Wrapf(ErrUnmapped, "%v trace handle %d", ns, h)
	}
	return out, nil
}

func (m traceToReplay) RemapLocation(ctx context.Context, program uint64, loc int32) int32 {
	if loc == -1 {
		return loc
	}
	if l, ok := m.r.groups[m.c.group].locations[program]; ok {
		if out, ok := l.fwd[loc]; ok {
			return out
		}
	}
	log.W(ctx, "No replay location for trace location %d of program %d", loc, program)
	return loc
}

func (m traceToReplay) DeclareHandle(ctx context.Context, ns gl.Namespace, from, to uint64, target gl.Enum) error {
	t := m.r.tracker(m.c, ns)
	if t == nil {
		return errors.Errorf("No tracker for namespace %v", ns)
	}
	return t.Insert(from, to, target)
}

func (m traceToReplay) DeleteHandleAndObject(ctx context.Context, ns gl.Namespace, traceHandle, replayHandle uint64) error {
	t := m.r.tracker(m.c, ns)
	if t == nil {
		return errors.Errorf("No tracker for namespace %v", ns)
	}
	if !t.Erase(traceHandle) {
		return errors.Wrapf(ErrUnmapped, "%v trace handle %d", ns, traceHandle)
	}
	if ns.Shared() {
		m.r.groups[m.c.group].forget(ns, traceHandle)
	}
	m.r.deleteLive(ns, replayHandle)
	return nil
}

func (m traceToReplay) RemapVertexAttribPtr(index uint32, ptr gl.Value) gl.Value {
	return m.r.clientPointer(m.c, int(index), ptr)
}

func (m traceToReplay) RemapVertexArrayPtr(array gl.Enum, ptr gl.Value) gl.Value {
	return m.r.clientPointer(m.c, int(array), ptr)
}

// replayToTrace is the Remapper used while capturing snapshots.
type replayToTrace struct {
	r *Replayer
	c *contextState
}

func (m replayToTrace) IsValidHandle(ns gl.Namespace, h uint64) bool {
	t := m.r.tracker(m.c, ns)
	if h == 0 || t == nil || !t.ContainsInv(h) {
		return false
	}
	return genericTargetOK(ns, t.TargetInv(h))
}

func (m replayToTrace) RemapHandle(ns gl.Namespace, h uint64) (uint64, error) {
	if h == 0 {
		return 0, nil
	}
	t := m.r.tracker(m.c, ns)
	if t == nil {
		return h, errors.Errorf("No tracker for namespace %v", ns)
	}
	out, ok := t.MapToTrace(h)
	if !ok {
		return h, errors.Wrapf(ErrUnmapped, "%v replay handle %d", ns, h)
	}
	return out, nil
}

func (m replayToTrace) RemapLocation(ctx context.Context, program uint64, loc int32) int32 {
	if loc == -1 {
		return loc
	}
	g := m.r.groups[m.c.group]
	if tp, ok := g.trackers[gl.Programs].MapToTrace(program); ok {
		if l, ok := g.locations[tp]; ok {
			if out, ok := l.inv[loc]; ok {
				return out
			}
		}
	}
	log.W(ctx, "No trace location for replay location %d of program %d", loc, program)
	return loc
}

func (m replayToTrace) DeclareHandle(ctx context.Context, ns gl.Namespace, from, to uint64, target gl.Enum) error {
	t := m.r.tracker(m.c, ns)
	if t == nil {
		return errors.Errorf("No tracker for namespace %v", ns)
	}
	return t.Insert(to, from, target)
}

func (m replayToTrace) DeleteHandleAndObject(ctx context.Context, ns gl.Namespace, traceHandle, replayHandle uint64) error {
	return traceToReplay(m).DeleteHandleAndObject(ctx, ns, traceHandle, replayHandle)
}

// Client memory has no trace domain address. Scratch pointers translate to
// zero and buffer offsets pass through.
func (m replayToTrace) RemapVertexAttribPtr(index uint32, ptr gl.Value) gl.Value {
	if ptr.Kind == gl.KindMem {
		return gl.Ptr(0)
	}
	return ptr
}

func (m replayToTrace) RemapVertexArrayPtr(array gl.Enum, ptr gl.Value) gl.Value {
	return m.RemapVertexAttribPtr(0, ptr)
}

// remapper returns the Remapper of c for the given direction.
func (r *Replayer) remapper(c *contextState, toTrace bool) Remapper {
	if toTrace {
		return replayToTrace{r, c}
	}
	return traceToReplay{r, c}
}
