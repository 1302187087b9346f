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
	"time"

	"github.com/ValveSoftware/vogl-sub002/gl"
)

// SetClock replaces the clock used for resize timeouts.
func SetClock(r *Replayer, now func() time.Time, sleep func(time.Duration)) {
	r.now, r.sleep = now, sleep
}

// TrackerOf returns the tracker of ns as seen from the trace context h.
func TrackerOf(r *Replayer, h uint64, ns gl.Namespace) *HandleTracker {
	c := r.context(h)
	if c == nil {
		return nil
	}
	return r.tracker(c, ns)
}

// RemappersOf returns the trace to replay and replay to trace remappers of
// the trace context h.
func RemappersOf(r *Replayer, h uint64) (toReplay, toTrace Remapper) {
	c := r.context(h)
	if c == nil {
		return nil, nil
	}
	return r.remapper(c, false), r.remapper(c, true)
}

// MappedRegion returns the live mapping of the trace buffer h.
func MappedRegion(r *Replayer, ctx, h uint64) (offset, length int64, mem []byte, ok bool) {
	c := r.context(ctx)
	if c == nil {
		return 0, 0, nil, false
	}
	m, ok := r.groups[c.group].mapped[h]
	if !ok {
		return 0, 0, nil, false
	}
	return m.offset, m.length, m.mem, true
}

// CurrentProgram returns the trace program bound in the trace context h.
func CurrentProgram(r *Replayer, h uint64) uint64 {
	if c := r.context(h); c != nil {
		return c.program
	}
	return 0
}
