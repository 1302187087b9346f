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

// Package fakegl is a deterministic in-memory OpenGL driver and window
// backend. It implements enough of the API for the replayer to create,
// bind, query, snapshot and restore every object kind it tracks, without
// a GPU.
package fakegl

import (
	"context"
	"sort"

	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/pkg/errors"
)

const (
	maxTextureUnits = 8
	maxAttribs      = 16
	maxLights       = 8
	maxListNesting  = 64
)

// Options configure a Driver.
type Options struct {
	// Width and Height are the initial window size.
	Width, Height int
	// NameBase is the first name handed out by every glGen* call. Use a base
	// that differs from the trace to exercise remapping.
	NameBase uint32
	// LocationBase is the first uniform location assigned at link time.
	LocationBase int32
	// ResizeDelay is the number of Pump calls before a requested resize
	// takes effect. A negative delay ignores resize requests.
	ResizeDelay int
}

// Driver is an in-memory GL driver and window.
type Driver struct {
	opts        Options
	procs       *gl.Procs
	contexts    map[gl.NativeContext]*glContext
	nextContext gl.NativeContext
	current     *glContext
	fetched     map[int][]byte
	window      window
	// Resolves counts how often the entrypoint table was handed out.
	Resolves int
	// Calls counts every live call.
	Calls int
}

type window struct {
	width, height int
	color         []byte
	pending       bool
	pendingW      int
	pendingH      int
	wait          int
	swaps         int
}

// New returns a Driver with a window of the configured size.
func New(opts Options) *Driver {
	if opts.Width <= 0 {
		opts.Width = 64
	}
	if opts.Height <= 0 {
		opts.Height = 64
	}
	if opts.NameBase == 0 {
		opts.NameBase = 1
	}
	d := &Driver{
		opts:        opts,
		procs:       gl.NewProcs(),
		contexts:    map[gl.NativeContext]*glContext{},
		nextContext: 0x1000,
	}
	d.window.resize(opts.Width, opts.Height)
	d.register()
	return d
}

func (w *window) resize(width, height int) {
	w.width, w.height = width, height
	w.color = make([]byte, width*height*4)
}

// CreateContext implements gl.Backend.
func (d *Driver) CreateContext(ctx context.Context, desc gl.ContextDesc) (gl.NativeContext, error) {
	var g *group
	if desc.Share != 0 {
		share, ok := d.contexts[desc.Share]
		if !ok {
			return 0, errors.Errorf("Share context %#x does not exist", uint64(desc.Share))
		}
		g = share.group
	} else {
		g = newGroup(d.opts.NameBase)
	}
	id := d.nextContext
	d.nextContext++
	g.refs++
	d.contexts[id] = newContext(id, g, d.opts.NameBase)
	log.D(ctx, "fakegl: created context %#x", uint64(id))
	return id, nil
}

// DestroyContext implements gl.Backend.
func (d *Driver) DestroyContext(ctx context.Context, c gl.NativeContext) error {
	gc, ok := d.contexts[c]
	if !ok {
		return errors.Errorf("Context %#x does not exist", uint64(c))
	}
	if d.current == gc {
		d.current = nil
	}
	gc.group.refs--
	delete(d.contexts, c)
	d.releaseProgram(gc.group, gc.program)
	return nil
}

// MakeCurrent implements gl.Backend.
func (d *Driver) MakeCurrent(ctx context.Context, c gl.NativeContext) error {
	if c == 0 {
		d.current = nil
		return nil
	}
	gc, ok := d.contexts[c]
	if !ok {
		return errors.Errorf("Context %#x does not exist", uint64(c))
	}
	if !gc.made {
		gc.made = true
		gc.state[gl.VIEWPORT] = []float32{0, 0, float32(d.window.width), float32(d.window.height)}
		gc.state[gl.SCISSOR_BOX] = []float32{0, 0, float32(d.window.width), float32(d.window.height)}
	}
	d.current = gc
	return nil
}

// SwapBuffers implements gl.Backend.
func (d *Driver) SwapBuffers(ctx context.Context) error {
	if d.current == nil {
		return errors.New("No current context")
	}
	d.window.swaps++
	return nil
}

// RequestResize implements gl.Backend.
func (d *Driver) RequestResize(ctx context.Context, width, height int) {
	if d.opts.ResizeDelay < 0 || (width == d.window.width && height == d.window.height) {
		return
	}
	d.window.pending = true
	d.window.pendingW, d.window.pendingH = width, height
	d.window.wait = d.opts.ResizeDelay
	if d.window.wait == 0 {
		d.Pump(ctx)
	}
}

// Pump services the window system. A pending resize lands once its delay
// has elapsed.
func (d *Driver) Pump(ctx context.Context) {
	if !d.window.pending {
		return
	}
	if d.window.wait > 0 {
		d.window.wait--
		return
	}
	d.window.pending = false
	d.window.resize(d.window.pendingW, d.window.pendingH)
	log.D(ctx, "fakegl: window resized to %dx%d", d.window.width, d.window.height)
}

// Dimensions implements gl.Backend.
func (d *Driver) Dimensions() (int, int) { return d.window.width, d.window.height }

// Procs implements gl.Backend.
func (d *Driver) Procs() *gl.Procs {
	d.Resolves++
	return d.procs
}

// Swaps returns the number of presented frames.
func (d *Driver) Swaps() int { return d.window.swaps }

// Current returns the current native context.
func (d *Driver) Current() gl.NativeContext {
	if d.current == nil {
		return 0
	}
	return d.current.id
}

// Contexts returns the live native contexts in creation order.
func (d *Driver) Contexts() []gl.NativeContext {
	out := make([]gl.NativeContext, 0, len(d.contexts))
	for id := range d.contexts {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Backbuffer returns a copy of the window's RGBA8 color buffer.
func (d *Driver) Backbuffer() []byte { return append([]byte(nil), d.window.color...) }

// ObjectCount returns the number of live objects of ns visible to the
// current context.
func (d *Driver) ObjectCount(ns gl.Namespace) int {
	c := d.current
	if c == nil {
		return 0
	}
	g := c.group
	switch ns {
	case gl.Textures:
		return len(g.textures)
	case gl.Buffers:
		return len(g.buffers)
	case gl.Renderbuffers:
		return len(g.renderbuffers)
	case gl.Samplers:
		return len(g.samplers)
	case gl.Queries:
		return len(g.queries)
	case gl.Programs, gl.Shaders:
		n := 0
		for _, o := range g.objects {
			if (ns == gl.Programs) == (o.program != nil) {
				n++
			}
		}
		return n
	case gl.ProgramsARB:
		return len(g.arbPrograms)
	case gl.Pipelines:
		return len(g.pipelines)
	case gl.Syncs:
		return len(g.syncs)
	case gl.Lists:
		return len(g.lists)
	case gl.Framebuffers:
		return len(c.framebuffers)
	case gl.VertexArrays:
		return len(c.vertexArrays)
	}
	return 0
}

// namer hands out object names.
type namer struct {
	next uint32
	used map[uint32]bool
}

func newNamer(base uint32) namer { return namer{next: base, used: map[uint32]bool{}} }

func (n *namer) gen() uint32 {
	for n.used[n.next] || n.next == 0 {
		n.next++
	}
	name := n.next
	n.used[name] = true
	n.next++
	return name
}

// genRange reserves count consecutive names.
func (n *namer) genRange(count uint32) uint32 {
	first := n.next
	if first == 0 {
		first = 1
	}
	for {
		free := true
		for i := uint32(0); i < count; i++ {
			if n.used[first+i] {
				free = false
				first += i + 1
				break
			}
		}
		if free {
			break
		}
	}
	for i := uint32(0); i < count; i++ {
		n.used[first+i] = true
	}
	n.next = first + count
	return first
}

func (n *namer) reserve(name uint32) { n.used[name] = true }
func (n *namer) free(name uint32)    { delete(n.used, name) }
func (n *namer) isUsed(name uint32) bool {
	return n.used[name]
}
