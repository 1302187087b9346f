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
	for _, e := range gl.Entrypoints() {
		if f := e.Describe().Flags; f.Has(gl.FlagDraw) || f.Has(gl.FlagClear) {
			handlers[e] = withHooks(beforeDraw, afterDraw)
		}
	}
	handlers[gl.Begin] = withHooks(nil, func(ctx context.Context, r *Replayer, c *contextState, l *liveCall) Status {
		if c.listMode() != gl.COMPILE {
			c.insideBegin = true
		}
		return OK
	})
	handlers[gl.End] = withHooks(nil, func(ctx context.Context, r *Replayer, c *contextState, l *liveCall) Status {
		if c.listMode() == gl.COMPILE || !c.insideBegin {
			return OK
		}
		c.insideBegin = false
		return afterDraw(ctx, r, c, l)
	})
	handlers[gl.GetError] = getError
}

// beforeDraw applies the kill threshold and uploads the client arrays
// captured with a draw.
func beforeDraw(ctx context.Context, r *Replayer, c *contextState, l *liveCall) Status {
	if c.listMode() == gl.COMPILE || !l.d.IsDraw() {
		return OK
	}
	if t := r.opts.KillThreshold; t >= 0 && r.frameDraws >= t && r.nested == 0 {
		if r.opts.Verbose {
			log.I(ctx, "Skipping draw %d of frame %d", r.frameDraws, r.frame)
		}
		l.skip = true
		r.counters.Skipped++
		return OK
	}
	return r.fillClientArrays(ctx, c, l.p)
}

// afterDraw counts a draw and runs the per draw dumps.
func afterDraw(ctx context.Context, r *Replayer, c *contextState, l *liveCall) Status {
	if c.insideBegin || c.listMode() == gl.COMPILE || r.nested > 0 {
		return OK
	}
	if !l.skip {
		if r.opts.DumpShadersOnDraw {
			r.dumpShaders(ctx, c)
		}
		if r.opts.DumpFramebufferOnDraws {
			r.dumpFramebuffer(ctx)
		}
	}
	r.frameDraws++
	r.counters.Draws++
	return OK
}

// fillClientArrays copies the vertex data a draw packet carries for each
// client array into the context's scratch memory. Integer keys are the
// generic attribute index or the fixed function array enum.
func (r *Replayer) fillClientArrays(ctx context.Context, c *contextState, p *trace.Packet) Status {
	status := OK
	for _, k := range p.KVM.Keys() {
		if k.IsString() {
			continue
		}
		data, ok := p.KVM.Bytes(k)
		if !ok {
			continue
		}
		a := c.clientArray(int(k.Index), r.opts.ClientArraySize)
		if r.opts.ClearUninitializedBuffers {
			for i := range a.data {
				a.data[i] = 0
			}
		}
		if len(data) > len(a.data) {
			log.W(ctx, "Client array %d holds %d bytes, scratch has %d", k.Index, len(data), len(a.data))
			data, status = data[:len(a.data)], SoftFailure
		}
		copy(a.data, data)
	}
	return status
}

// clientPointer returns the live pointer for a vertex array pointer. With
// an array buffer bound the pointer is a buffer offset. Otherwise it is the
// scratch memory filled at each draw.
func (r *Replayer) clientPointer(c *contextState, key int, ptr gl.Value) gl.Value {
	if r.procs.GetInteger(gl.ARRAY_BUFFER_BINDING) != 0 {
		return gl.Uint(ptr.Uint())
	}
	if ptr.Kind != gl.KindMem && ptr.Uint() == 0 {
		return gl.Mem(nil)
	}
	return gl.Mem(c.clientArray(key, r.opts.ClientArraySize).data)
}

// getError reports the first error raised since the last glGetError. Errors
// are drained after every call, so the live glGetError would always return
// NO_ERROR.
func getError(ctx context.Context, r *Replayer, c *contextState, p *trace.Packet) Status {
	if r.opts.Benchmark {
		return r.replay(ctx, c, p, nil, nil)
	}
	err := c.pendingError
	c.pendingError = gl.NO_ERROR
	if live := r.procs.ClearErrors(); err == gl.NO_ERROR {
		err = live
	}
	if want := p.Return.Enum(); p.Return.Kind != gl.KindVoid && err != want {
		r.diverged(ctx, "glGetError returned %v, trace recorded %v", err, want)
	}
	return OK
}
