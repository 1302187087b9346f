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
	for _, e := range []gl.Entrypoint{gl.XCreateContext, gl.XCreateContextAttribsARB, gl.XCreateNewContext} {
		contextless[e] = createContext
	}
	contextless[gl.XMakeCurrent] = makeCurrent
	contextless[gl.XMakeContextCurrent] = makeCurrent
	contextless[gl.XDestroyContext] = destroyContext
	contextless[gl.XSwapBuffers] = swapBuffers
}

func createContext(ctx context.Context, r *Replayer, p *trace.Packet) Status {
	d := p.Describe()
	h := p.Return.Uint()
	if h == 0 {
		log.W(ctx, "%v failed at capture, skipped", d.Name)
		return OK
	}
	share := uint64(0)
	for i, prm := range d.Params {
		if prm.Kind == gl.ParamContext {
			share = p.Args[i].Uint()
		}
	}
	var attribs []int32
	if a := p.Arg("attrib_list"); a.Kind == gl.KindMem {
		attribs = gl.I32s(a.Mem)
	}
	return r.createContext(ctx, h, share, p.Entrypoint, attribs, p.Arg("direct").Bool())
}

// createContext creates the native context for the trace context h. A
// non-zero share joins the share-group of that context.
func (r *Replayer) createContext(ctx context.Context, h, share uint64, createdBy gl.Entrypoint, attribs []int32, direct bool) Status {
	if r.context(h) != nil {
		log.E(ctx, "Context %d already exists", h)
		return HardFailure
	}
	desc := gl.ContextDesc{Attribs: attribs, Direct: direct, Debug: r.opts.ForceDebugContext}
	group := -1
	if share != 0 {
		sc := r.context(share)
		if sc == nil {
			log.E(ctx, "Context %d shares with unknown context %d", h, share)
			return HardFailure
		}
		desc.Share, group = sc.native, sc.group
	}
	native, err := r.backend.CreateContext(ctx, desc)
	if err != nil {
		log.E(ctx, "Failed to create context %d: %v", h, err)
		return HardFailure
	}
	if err := r.contextHandles.Insert(h, uint64(native), gl.NONE); err != nil {
		log.E(ctx, "Failed to track context %d: %v", h, err)
		r.backend.DestroyContext(ctx, native)
		return HardFailure
	}
	if group < 0 {
		group = len(r.groups)
		r.groups = append(r.groups, newSharedState(group))
	}
	r.groups[group].refs++
	c := newContextState(len(r.contexts), h, native, group)
	c.share, c.createdBy, c.attribs, c.direct, c.debug = share, createdBy, attribs, direct, desc.Debug
	r.contexts = append(r.contexts, c)
	r.byTrace[h] = c.index
	if r.opts.Verbose {
		log.I(ctx, "Created context %d in share-group %d", h, group)
	}
	return OK
}

func makeCurrent(ctx context.Context, r *Replayer, p *trace.Packet) Status {
	h := p.Arg("ctx").Uint()
	if h != 0 && r.context(h) == nil {
		log.E(ctx, "Making unknown context %d current", h)
		return HardFailure
	}
	if h != 0 && !r.opts.LockWindowDimensions {
		if w, h, ok := windowSize(p); ok {
			if cw, ch := r.backend.Dimensions(); cw != w || ch != h {
				return r.requestResize(ctx, w, h, p)
			}
		}
	}
	return r.makeCurrent(ctx, p)
}

// makeCurrent switches to the context of a make current packet.
func (r *Replayer) makeCurrent(ctx context.Context, p *trace.Packet) Status {
	h := p.Arg("ctx").Uint()
	if h == 0 {
		return r.activate(ctx, nil)
	}
	c := r.context(h)
	if c == nil {
		log.E(ctx, "Context %d was destroyed while a resize was pending", h)
		return HardFailure
	}
	return r.activate(ctx, c)
}

// windowSize returns the window size recorded with p.
func windowSize(p *trace.Packet) (int, int, bool) {
	w, okw := p.KVM.Int(trace.StringKey(trace.KeyWinWidth))
	h, okh := p.KVM.Int(trace.StringKey(trace.KeyWinHeight))
	if !okw || !okh || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return int(w), int(h), true
}

func destroyContext(ctx context.Context, r *Replayer, p *trace.Packet) Status {
	h := p.Arg("ctx").Uint()
	c := r.context(h)
	if c == nil {
		log.W(ctx, "Destroying unknown context %d", h)
		return SoftFailure
	}
	return r.destroyContext(ctx, c)
}

// destroyContext destroys c and releases its share-group reference.
func (r *Replayer) destroyContext(ctx context.Context, c *contextState) Status {
	status := OK
	if r.current == c {
		if s := r.activate(ctx, nil); s != OK {
			return s
		}
	}
	if err := r.backend.DestroyContext(ctx, c.native); err != nil {
		log.W(ctx, "Failed to destroy context %d: %v", c.trace, err)
		status = SoftFailure
	}
	r.contexts[c.index] = nil
	delete(r.byTrace, c.trace)
	r.contextHandles.Erase(c.trace)
	if g := r.groups[c.group]; g != nil {
		g.refs--
		if g.refs == 0 {
			r.groups[c.group] = nil
		}
	}
	if r.opts.Verbose {
		log.I(ctx, "Destroyed context %d", c.trace)
	}
	return status
}

func swapBuffers(ctx context.Context, r *Replayer, p *trace.Packet) Status {
	c := r.current
	if c == nil {
		log.W(ctx, "Swap with no current context")
		return SoftFailure
	}
	if r.opts.HashBackbuffer || r.opts.DumpScreenshots {
		w, h := r.backend.Dimensions()
		pixels := r.readFramebuffer(0, w, h)
		if r.opts.HashBackbuffer {
			r.hashes = append(r.hashes, r.hashPixels(pixels))
		}
		if r.opts.DumpScreenshots {
			r.writeScreenshot(ctx, r.screenshotPath("frame", r.frame), w, h, pixels)
		}
	}
	if err := r.backend.SwapBuffers(ctx); err != nil {
		log.W(ctx, "Swap failed: %v", err)
		return SoftFailure
	}
	if r.nested > 0 {
		return NextFrame
	}
	r.frame++
	r.frameDraws = 0
	r.counters.Swaps++
	r.call, r.atFrameBoundary = p.Call, true
	if r.cache != nil {
		if s, err := r.SnapshotState(ctx); err != nil {
			log.W(ctx, "Failed to cache snapshot of frame %d: %v", r.frame, err)
		} else {
			r.cache.Put(r.frame, s)
		}
	}
	if w, h, ok := windowSize(p); ok && !r.opts.LockWindowDimensions {
		if cw, ch := r.backend.Dimensions(); cw != w || ch != h {
			r.requestResize(ctx, w, h, nil)
		}
	}
	return NextFrame
}
