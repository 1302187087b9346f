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
	"github.com/ValveSoftware/vogl-sub002/trace"
)

func init() {
	handlers[gl.NewList] = newList
	handlers[gl.EndList] = endList
	handlers[gl.CallLists] = withHooks(beforeCallLists, nil)
	handlers[gl.DeleteLists] = deleteLists
}

// newList starts composing a display list. The trace may name a list it
// never generated, in which case a live list is created for it.
func newList(ctx context.Context, r *Replayer, c *contextState, p *trace.Packet) Status {
	if c.list != nil {
		log.W(ctx, "glNewList while list %d is being composed", c.list.handle)
		return SoftFailure
	}
	h := p.Args[0].Uint()
	if h == 0 {
		log.W(ctx, "glNewList with list 0")
		return SoftFailure
	}
	if !r.tracker(c, gl.Lists).Contains(h) {
		ret, err := r.procs.Call(gl.GenLists, gl.Int(1))
		if err != nil {
			log.W(ctx, "Cannot create list %d: %v", h, err)
			return SoftFailure
		}
		if status := r.declare(ctx, c, gl.Lists, h, ret.Uint(), gl.NONE); status != OK {
			return status
		}
	}
	return r.replay(ctx, c, p, nil, func(ctx context.Context, r *Replayer, c *contextState, l *liveCall) Status {
		c.list = &listState{handle: h, mode: l.p.Args[1].Enum()}
		return OK
	})
}

// endList stores the packets of the composed list in the share-group.
func endList(ctx context.Context, r *Replayer, c *contextState, p *trace.Packet) Status {
	status := r.replay(ctx, c, p, nil, nil)
	if c.list == nil {
		log.W(ctx, "glEndList with no list being composed")
		return worst(status, SoftFailure)
	}
	r.groups[c.group].lists[c.list.handle] = c.list.packets
	if r.opts.Verbose {
		log.I(ctx, "List %d composed with %d calls", c.list.handle, len(c.list.packets))
	}
	c.list = nil
	return status
}

// beforeCallLists translates the list offsets of glCallLists. Each offset
// is relative to LIST_BASE, which is the same value in both domains.
func beforeCallLists(ctx context.Context, r *Replayer, c *contextState, l *liveCall) Status {
	if typ := l.p.Args[1].Enum(); typ != gl.UNSIGNED_INT {
		log.W(ctx, "glCallLists with list type %v is not supported", typ)
		l.skip = true
		return SoftFailure
	}
	base := uint32(r.procs.GetInteger(gl.LIST_BASE))
	names := gl.U32s(l.p.Args[2].Mem)
	if n := int(l.p.Args[0].Int()); n < len(names) {
		names = names[:n]
	}
	t, status := r.tracker(c, gl.Lists), OK
	out := make([]uint32, 0, len(names))
	for _, n := range names {
		live, ok := t.MapToReplay(uint64(base + n))
		if !ok {
			log.W(ctx, "glCallLists: unknown list %d", base+n)
			status = SoftFailure
			continue
		}
		out = append(out, uint32(live)-base)
	}
	l.args[0] = gl.Int(int64(len(out)))
	l.args[2] = gl.Mem(gl.PutU32s(out...))
	return status
}

// deleteLists deletes the mapped lists in the range. Unmapped names in the
// range are ignored.
func deleteLists(ctx context.Context, r *Replayer, c *contextState, p *trace.Packet) Status {
	first, n := p.Args[0].Uint(), p.Args[1].Uint()
	if p.Args[1].Int() < 0 {
		log.W(ctx, "glDeleteLists with negative range")
		return SoftFailure
	}
	t := r.tracker(c, gl.Lists)
	for _, h := range t.Handles() {
		if h < first || h >= first+n {
			continue
		}
		live, _ := t.MapToReplay(h)
		if _, err := r.procs.Call(gl.DeleteLists, gl.Uint(live), gl.Int(1)); err != nil {
			log.W(ctx, "Cannot delete list %d: %v", h, err)
			return SoftFailure
		}
		r.forgetHandle(c, gl.Lists, h)
	}
	if c.list != nil && c.list.handle >= first && c.list.handle < first+n {
		log.W(ctx, "List %d deleted while being composed", c.list.handle)
	}
	return OK
}
