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
	"github.com/ValveSoftware/vogl-sub002/core/math/interval"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/ValveSoftware/vogl-sub002/trace"
)

func init() {
	handlers[gl.MapBuffer] = withHooks(nil, afterMap)
	handlers[gl.MapBufferRange] = withHooks(nil, afterMap)
	handlers[gl.UnmapBuffer] = withHooks(beforeUnmap, afterUnmap)
	handlers[gl.FlushMappedBufferRange] = withHooks(beforeFlush, nil)
}

// boundBuffer returns the trace handle of the buffer bound to target.
func (r *Replayer) boundBuffer(ctx context.Context, c *contextState, target gl.Enum) (uint64, bool) {
	binding, ok := gl.BufferBinding(target)
	if !ok {
		log.W(ctx, "No binding query for buffer target %v", target)
		return 0, false
	}
	live := r.procs.GetInteger(binding)
	if live == 0 {
		return 0, false
	}
	h, err := replayToTrace{r, c}.RemapHandle(gl.Buffers, uint64(live))
	if err != nil {
		log.W(ctx, "Buffer bound to %v: %v", target, err)
		return 0, false
	}
	return h, true
}

// afterMap records the live mapping so the data written through the
// trace's mapping can be copied in at unmap or flush.
func afterMap(ctx context.Context, r *Replayer, c *contextState, l *liveCall) Status {
	if l.ret.Kind != gl.KindMem || l.ret.Mem == nil {
		log.W(ctx, "%v returned no mapping", l.d.Name)
		return SoftFailure
	}
	target := l.p.Args[0].Enum()
	h, ok := r.boundBuffer(ctx, c, target)
	if !ok {
		return SoftFailure
	}
	g := r.groups[c.group]
	if _, dup := g.mapped[h]; dup {
		log.W(ctx, "Buffer %d is already mapped", h)
		return SoftFailure
	}
	m := &mappedRegion{buffer: h, target: target, length: int64(len(l.ret.Mem)), mem: l.ret.Mem}
	if l.p.Entrypoint == gl.MapBufferRange {
		m.offset, m.length = l.p.Args[1].Int(), l.p.Args[2].Int()
		m.flags, m.rangeMapped = l.p.Args[3].Uint32(), true
	} else {
		m.access = l.p.Args[1].Enum()
	}
	g.mapped[h] = m
	return OK
}

// mappedData copies the map_data sidecar of p into the mapping at offset.
func (r *Replayer) mappedData(ctx context.Context, m *mappedRegion, p *trace.Packet, offset int64) Status {
	data, ok := p.KVM.Bytes(trace.StringKey(trace.KeyMapData))
	if !ok {
		return OK
	}
	if offset < 0 || offset > int64(len(m.mem)) {
		log.W(ctx, "Mapped data at %d outside mapping of %d bytes", offset, len(m.mem))
		return SoftFailure
	}
	if n := copy(m.mem[offset:], data); n < len(data) {
		log.W(ctx, "Mapped data of buffer %d truncated from %d to %d bytes", m.buffer, len(data), n)
		return SoftFailure
	}
	return OK
}

// region returns the mapping of the buffer bound to target.
func (r *Replayer) region(ctx context.Context, c *contextState, target gl.Enum) *mappedRegion {
	h, ok := r.boundBuffer(ctx, c, target)
	if !ok {
		return nil
	}
	return r.groups[c.group].mapped[h]
}

func beforeUnmap(ctx context.Context, r *Replayer, c *contextState, l *liveCall) Status {
	m := r.region(ctx, c, l.p.Args[0].Enum())
	if m == nil {
		log.W(ctx, "%v of a buffer that is not mapped", l.d.Name)
		return OK
	}
	if m.flags&gl.MAP_FLUSH_EXPLICIT_BIT != 0 {
		return r.flushedData(ctx, m, l.p)
	}
	return r.mappedData(ctx, m, l.p, 0)
}

// flushedData copies the parts of the map_data sidecar of p that fall in
// the flushed ranges of an explicitly flushed mapping. Writes outside them
// are undefined and dropped.
func (r *Replayer) flushedData(ctx context.Context, m *mappedRegion, p *trace.Packet) Status {
	data, ok := p.KVM.Bytes(trace.StringKey(trace.KeyMapData))
	if !ok {
		return OK
	}
	limit := uint64(len(data))
	if n := uint64(len(m.mem)); n < limit {
		limit = n
	}
	for _, span := range m.flushed.Intersect(interval.U64Span{Start: 0, End: limit}) {
		copy(m.mem[span.Start:span.End], data[span.Start:span.End])
	}
	return OK
}

func afterUnmap(ctx context.Context, r *Replayer, c *contextState, l *liveCall) Status {
	if h, ok := r.boundBuffer(ctx, c, l.p.Args[0].Enum()); ok {
		delete(r.groups[c.group].mapped, h)
	}
	return OK
}

func beforeFlush(ctx context.Context, r *Replayer, c *contextState, l *liveCall) Status {
	m := r.region(ctx, c, l.p.Args[0].Enum())
	if m == nil {
		log.W(ctx, "%v of a buffer that is not mapped", l.d.Name)
		return SoftFailure
	}
	offset, length := l.p.Args[1].Int(), l.p.Args[2].Int()
	if offset < 0 || length < 0 || offset+length > m.length {
		log.W(ctx, "Flush of [%d, %d) outside mapping of %d bytes", offset, offset+length, m.length)
		return SoftFailure
	}
	m.flushed.Merge(interval.U64Span{Start: uint64(offset), End: uint64(offset + length)})
	return r.mappedData(ctx, m, l.p, offset)
}

// unmapAll unmaps every mapped buffer of c's share-group. The mappings are
// kept so remapAll can restore them.
func (r *Replayer) unmapAll(ctx context.Context, c *contextState) {
	for _, m := range r.groups[c.group].mapped {
		r.withBuffer(c, m, func() {
			r.invoke(gl.UnmapBuffer, gl.E(m.target))
		})
		m.mem = nil
	}
}

// remapDiscardBits are the map flags that let a driver throw away the
// contents or synchronization of a mapping. They applied to the first map
// only.
const remapDiscardBits = gl.MAP_INVALIDATE_RANGE_BIT | gl.MAP_INVALIDATE_BUFFER_BIT | gl.MAP_UNSYNCHRONIZED_BIT

// remapAll maps every recorded mapping of c's group again, keeping the
// buffer contents.
func (r *Replayer) remapAll(ctx context.Context, c *contextState) Status {
	status := OK
	for h, m := range r.groups[c.group].mapped {
		r.withBuffer(c, m, func() {
			if m.rangeMapped {
				m.mem = r.invoke(gl.MapBufferRange, gl.E(m.target), gl.Int(m.offset), gl.Int(m.length), gl.Uint(uint64(m.flags&^remapDiscardBits))).Mem
			} else {
				m.mem = r.invoke(gl.MapBuffer, gl.E(m.target), gl.E(m.access)).Mem
			}
		})
		if m.mem == nil {
			log.W(ctx, "Cannot map buffer %d again", h)
			status = SoftFailure
		}
	}
	return status
}

// withBuffer runs f with the buffer of m bound to its mapping target.
func (r *Replayer) withBuffer(c *contextState, m *mappedRegion, f func()) {
	binding, ok := gl.BufferBinding(m.target)
	live, err := traceToReplay{r, c}.RemapHandle(gl.Buffers, m.buffer)
	if !ok || err != nil {
		return
	}
	prev := r.procs.GetInteger(binding)
	r.invoke(gl.BindBuffer, gl.E(m.target), gl.Uint(live))
	f()
	r.invoke(gl.BindBuffer, gl.E(m.target), gl.Uint(uint64(prev)))
}
