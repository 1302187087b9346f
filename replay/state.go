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
	"sort"

	"github.com/ValveSoftware/vogl-sub002/core/math/interval"
	"github.com/ValveSoftware/vogl-sub002/gl"
)

// clientArray is the scratch memory that stands in for one client side
// vertex array.
type clientArray struct {
	data []byte
}

// listState is the display list being composed by a context.
type listState struct {
	handle  uint64
	mode    gl.Enum
	packets [][]byte
}

// contextState is the replayer's view of one trace context. Contexts live
// in the Replayer's arena and refer to their share-group by index.
type contextState struct {
	index     int
	trace     uint64
	native    gl.NativeContext
	group     int
	share     uint64
	createdBy gl.Entrypoint
	attribs   []int32
	direct    bool
	debug     bool

	madeCurrent bool
	insideBegin bool

	framebuffers *HandleTracker
	vertexArrays *HandleTracker

	// program is the trace handle of the program in use.
	program uint64
	list    *listState

	clientArrays map[int]*clientArray
	// lastHandle caches the last handle translated in each namespace.
	lastHandle map[gl.Namespace]Token
	// pendingError is the driver error raised since the last replayed
	// glGetError.
	pendingError gl.Enum
}

func newContextState(index int, trace uint64, native gl.NativeContext, group int) *contextState {
	return &contextState{
		index:        index,
		trace:        trace,
		native:       native,
		group:        group,
		framebuffers: NewHandleTracker(gl.Framebuffers),
		vertexArrays: NewHandleTracker(gl.VertexArrays),
		clientArrays: map[int]*clientArray{},
		lastHandle:   map[gl.Namespace]Token{},
		pendingError: gl.NO_ERROR,
	}
}

// listMode returns the mode of the list being composed, or NONE.
func (c *contextState) listMode() gl.Enum {
	if c.list == nil {
		return gl.NONE
	}
	return c.list.mode
}

// clientArray returns the scratch array for key, allocating size bytes on
// first use.
func (c *contextState) clientArray(key, size int) *clientArray {
	a, ok := c.clientArrays[key]
	if !ok {
		a = &clientArray{data: make([]byte, size)}
		c.clientArrays[key] = a
	}
	return a
}

// locationMap is the uniform location shadow of one program.
type locationMap struct {
	fwd map[int32]int32
	inv map[int32]int32
}

func newLocationMap() *locationMap {
	return &locationMap{fwd: map[int32]int32{}, inv: map[int32]int32{}}
}

func (m *locationMap) add(trace, replay int32) {
	if old, ok := m.fwd[trace]; ok {
		delete(m.inv, old)
	}
	m.fwd[trace] = replay
	m.inv[replay] = trace
}

// mappedRegion is a buffer range mapped through the replayer.
type mappedRegion struct {
	buffer      uint64
	target      gl.Enum
	offset      int64
	length      int64
	access      gl.Enum
	flags       uint32
	rangeMapped bool
	mem         []byte
	// flushed holds the ranges, relative to offset, passed to
	// glFlushMappedBufferRange since the buffer was mapped.
	flushed interval.U64SpanList
}

// sharedState is the state owned by a share-group: the trackers of every
// shared namespace and the shadows kept for them.
type sharedState struct {
	index    int
	refs     int
	trackers [gl.NamespaceCount]*HandleTracker

	// locations are keyed by trace program handle.
	locations map[uint64]*locationMap
	// mapped are keyed by trace buffer handle.
	mapped map[uint64]*mappedRegion
	// lists are the packets of compiled display lists, by trace handle.
	lists map[uint64][][]byte
	// stages are the sources programs were last linked with.
	stages map[uint64][]stage
	// pendingDeletes are trace program and shader handles deleted while
	// still in use.
	pendingDeletes map[uint64]bool
}

type stage struct {
	typ    gl.Enum
	source string
}

func newSharedState(index int) *sharedState {
	s := &sharedState{
		index:          index,
		locations:      map[uint64]*locationMap{},
		mapped:         map[uint64]*mappedRegion{},
		lists:          map[uint64][][]byte{},
		stages:         map[uint64][]stage{},
		pendingDeletes: map[uint64]bool{},
	}
	objects := NewHandleTracker(gl.Programs)
	for ns := gl.Namespace(0); ns < gl.NamespaceCount; ns++ {
		switch {
		case !ns.Shared(), ns == gl.Locations:
		case ns.IsGenericObject():
			s.trackers[ns] = objects
		default:
			s.trackers[ns] = NewHandleTracker(ns)
		}
	}
	return s
}

// pendingHandles returns the pending deletes in ascending order.
func (s *sharedState) pendingHandles() []uint64 {
	out := make([]uint64, 0, len(s.pendingDeletes))
	for h := range s.pendingDeletes {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// forget drops every shadow of the trace object h in ns.
func (s *sharedState) forget(ns gl.Namespace, h uint64) {
	switch ns {
	case gl.Programs:
		delete(s.locations, h)
		delete(s.stages, h)
		delete(s.pendingDeletes, h)
	case gl.Shaders:
		delete(s.pendingDeletes, h)
	case gl.Buffers:
		delete(s.mapped, h)
	case gl.Lists:
		delete(s.lists, h)
	}
}
