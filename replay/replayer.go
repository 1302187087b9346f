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
	"io"
	"time"

	"github.com/ValveSoftware/vogl-sub002/core/fault"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/ValveSoftware/vogl-sub002/replay/snapshot"
	"github.com/ValveSoftware/vogl-sub002/trace"
	"github.com/pkg/errors"
)

const (
	// ErrNotRestorable is returned when applying a snapshot captured inside
	// glBegin/glEnd or while a display list was being composed.
	ErrNotRestorable = fault.Const("Snapshot is not restorable")
	// ErrSnapshotPending is returned when a snapshot is applied while
	// another is still waiting to be processed.
	ErrSnapshotPending = fault.Const("A snapshot is already pending")
	// ErrNotSeekable is returned by SeekToFrame for sources that cannot be
	// repositioned.
	ErrNotSeekable = fault.Const("Packet source is not seekable")
)

// Counters are the running totals of a replay session.
type Counters struct {
	Packets      uint64
	Calls        uint64
	Draws        uint64
	Swaps        uint64
	Divergences  uint64
	GLErrors     uint64
	SoftFailures uint64
	Skipped      uint64
	Restores     uint64
	Frame        int64
}

// pendingResize is a window resize in flight. packet is the make current
// call that waits for it, nil for resizes requested at a swap.
type pendingResize struct {
	width, height int
	deadline      time.Time
	packet        *trace.Packet
}

// Replayer replays trace packets against a live backend.
//
// A Replayer is not safe for concurrent use. Packets are processed one at
// a time in trace order.
type Replayer struct {
	backend gl.Backend
	procs   *gl.Procs
	opts    Options
	source  trace.Source
	blobs   trace.BlobStore

	// contexts is the context arena. Destroyed contexts leave a nil slot.
	contexts []*contextState
	// groups is the share-group arena. A group is released when its last
	// context is destroyed.
	groups []*sharedState
	// byTrace maps trace context handles to arena indices.
	byTrace map[uint64]int
	// contextHandles maps trace context handles to native contexts.
	contextHandles *HandleTracker
	current        *contextState

	pendingSnapshot *snapshot.Snapshot
	pendingResize   *pendingResize

	now   func() time.Time
	sleep func(time.Duration)

	frame           int64
	call            uint64
	frameDraws      int64
	atFrameBoundary bool
	counters        Counters
	hashes          []uint64
	cache           *snapshot.Cache
	// nested is non-zero while packets are dispatched on behalf of a
	// restore.
	nested int
}

// New returns a Replayer reading packets from source and rendering through
// backend. blobs may be nil when the trace carries no blob references.
func New(ctx context.Context, backend gl.Backend, source trace.Source, blobs trace.BlobStore, opts Options) *Replayer {
	if blobs == nil {
		blobs = trace.NewMemoryBlobs()
	}
	r := &Replayer{
		backend:         backend,
		procs:           backend.Procs(),
		opts:            opts,
		source:          source,
		blobs:           blobs,
		byTrace:         map[uint64]int{},
		contextHandles:  NewHandleTracker(gl.Contexts),
		now:             time.Now,
		sleep:           time.Sleep,
		atFrameBoundary: true,
	}
	if opts.SnapshotCaching {
		r.cache = snapshot.NewCache(opts.SnapshotCacheSize)
	}
	if opts.ClientArraySize <= 0 {
		r.opts.ClientArraySize = DefaultOptions().ClientArraySize
	}
	if opts.ResizeTimeout <= 0 {
		r.opts.ResizeTimeout = DefaultOptions().ResizeTimeout
	}
	log.D(ctx, "Replayer created: %+v", r.opts)
	return r
}

// Options returns the options the replayer was created with.
func (r *Replayer) Options() Options { return r.opts }

// Frame returns the index of the frame being replayed.
func (r *Replayer) Frame() int64 { return r.frame }

// Counters returns the running totals.
func (r *Replayer) Counters() Counters {
	out := r.counters
	out.Frame = r.frame
	return out
}

// Hashes returns the backbuffer hashes recorded at each swap.
func (r *Replayer) Hashes() []uint64 {
	return append([]uint64(nil), r.hashes...)
}

// Cache returns the snapshot cache, or nil if snapshot caching is off.
func (r *Replayer) Cache() *snapshot.Cache { return r.cache }

// ProcessNextPacket drains any pending work, then reads and processes the
// next packet of the source.
func (r *Replayer) ProcessNextPacket(ctx context.Context) Status {
	if r.HasPendingPackets() {
		if status := r.ProcessPendingPackets(ctx); status != OK {
			return status
		}
	}
	p, err := r.source.Next(ctx)
	switch {
	case err == io.EOF:
		return AtEOF
	case err != nil:
		log.E(ctx, "Failed to read packet after call %d: %v", r.call, err)
		return HardFailure
	}
	return r.ProcessPacket(ctx, p)
}

// ProcessPacket replays a single packet.
func (r *Replayer) ProcessPacket(ctx context.Context, p *trace.Packet) Status {
	ctx = r.bind(ctx, p)
	if r.opts.DumpAllPackets {
		log.I(ctx, "%v", p)
	}
	status := r.dispatch(ctx, p)
	if r.nested > 0 {
		return status
	}
	r.counters.Packets++
	if !p.IsInternal() {
		r.counters.Calls++
		r.atFrameBoundary = status == NextFrame
	}
	r.call = p.Call
	switch status {
	case SoftFailure:
		r.counters.SoftFailures++
	case GLError:
		r.counters.GLErrors++
	}
	if status.Failed() && r.opts.DumpPacketsOnError && !r.opts.DumpAllPackets {
		log.I(ctx, "Failed packet: %v", p)
	}
	return status
}

// bind annotates ctx with the identity of packet p.
func (r *Replayer) bind(ctx context.Context, p *trace.Packet) context.Context {
	return log.V{
		"call":       p.Call,
		"ctx":        p.Context,
		"frame":      r.frame,
		"entrypoint": p.Entrypoint.String(),
	}.Bind(ctx)
}

// HasPendingPackets returns true if a snapshot or a window resize is
// waiting to be processed.
func (r *Replayer) HasPendingPackets() bool {
	return r.pendingSnapshot != nil || r.pendingResize != nil
}

// ProcessPendingPackets applies the pending snapshot, then services the
// pending window resize. It returns OK when nothing is pending.
func (r *Replayer) ProcessPendingPackets(ctx context.Context) Status {
	status := OK
	if s := r.pendingSnapshot; s != nil {
		r.pendingSnapshot = nil
		status = r.restore(ctx, s)
		if status.Fatal() {
			return status
		}
	}
	resize := r.ProcessPendingWindowResize(ctx)
	if status == OK {
		return resize
	}
	return worst(status, resize)
}

// ProcessPendingWindowResize completes a pending resize once the window
// reports the requested size or the resize timeout has passed. The make
// current call waiting for the resize is then replayed. ResizeWindow is
// returned while the resize is still in flight.
func (r *Replayer) ProcessPendingWindowResize(ctx context.Context) Status {
	pr := r.pendingResize
	if pr == nil {
		return OK
	}
	if pump, ok := r.backend.(gl.EventPump); ok {
		pump.Pump(ctx)
	}
	if w, h := r.backend.Dimensions(); w != pr.width || h != pr.height {
		if r.now().Before(pr.deadline) {
			return ResizeWindow
		}
		log.W(ctx, "Window resize to %dx%d timed out, continuing at %dx%d", pr.width, pr.height, w, h)
	}
	r.pendingResize = nil
	if pr.packet == nil {
		return OK
	}
	ctx = r.bind(ctx, pr.packet)
	return r.makeCurrent(ctx, pr.packet)
}

// requestResize asks the backend for a window of w by h and queues p until
// the resize completes.
func (r *Replayer) requestResize(ctx context.Context, w, h int, p *trace.Packet) Status {
	log.D(ctx, "Resizing window to %dx%d", w, h)
	r.backend.RequestResize(ctx, w, h)
	r.pendingResize = &pendingResize{
		width:    w,
		height:   h,
		deadline: r.now().Add(r.opts.ResizeTimeout),
		packet:   p,
	}
	return ResizeWindow
}

// ProcessFrame processes packets up to and including the next swap. It
// returns NextFrame, AtEOF, or HardFailure.
func (r *Replayer) ProcessFrame(ctx context.Context) Status {
	for {
		if err := ctx.Err(); err != nil {
			log.W(ctx, "Replay cancelled: %v", err)
			return HardFailure
		}
		switch status := r.ProcessNextPacket(ctx); {
		case status == ResizeWindow:
			r.sleep(10 * time.Millisecond)
		case status == NextFrame, status == AtEOF, status.Fatal():
			return status
		}
	}
}

// BeginApplyingSnapshot queues s to be restored before the next packet is
// processed.
func (r *Replayer) BeginApplyingSnapshot(ctx context.Context, s *snapshot.Snapshot) error {
	switch {
	case s == nil:
		return log.Err(ctx, nil, "Nil snapshot")
	case r.pendingSnapshot != nil:
		return log.Err(ctx, ErrSnapshotPending, "Cannot apply snapshot")
	case s.Version != snapshot.Version:
		return log.Errf(ctx, snapshot.ErrVersion, "Snapshot version %d", s.Version)
	case !s.Restorable:
		return log.Errf(ctx, ErrNotRestorable, "Snapshot of frame %d", s.Frame)
	}
	r.pendingSnapshot = s
	return nil
}

// SeekToFrame repositions the replay at the start of frame. The nearest
// cached snapshot at or before the frame is restored when available,
// otherwise replay restarts from the beginning of the trace. Packets are
// then replayed up to the requested frame.
func (r *Replayer) SeekToFrame(ctx context.Context, frame int64) error {
	ctx = log.Enter(ctx, "SeekToFrame")
	fs, ok := r.source.(trace.FrameSource)
	if !ok {
		return ErrNotSeekable
	}
	if frame < 0 {
		return errors.Errorf("Frame %d out of range", frame)
	}
	forward := frame >= r.frame && r.atFrameBoundary && !r.HasPendingPackets()
	var s *snapshot.Snapshot
	start := int64(0)
	if r.cache != nil {
		if cs, f, ok := r.cache.Nearest(frame); ok && (!forward || f > r.frame) {
			s, start = cs, f
		}
	}
	switch {
	case s != nil:
		if err := fs.SeekToFrame(ctx, int(start)); err != nil {
			return errors.Wrapf(err, "Seeking source to frame %d", start)
		}
		r.pendingSnapshot, r.pendingResize = nil, nil
		if err := r.BeginApplyingSnapshot(ctx, s); err != nil {
			return err
		}
		if status := r.ProcessPendingPackets(ctx); status.Failed() {
			return log.Errf(ctx, nil, "Restoring snapshot of frame %d: %v", start, status)
		}
	case !forward:
		if err := fs.SeekToFrame(ctx, 0); err != nil {
			return errors.Wrap(err, "Rewinding source")
		}
		r.Reset(ctx)
	}
	log.D(ctx, "Seeking from frame %d to frame %d", r.frame, frame)
	for r.frame < frame {
		switch status := r.ProcessFrame(ctx); status {
		case AtEOF:
			return errors.Errorf("Frame %d out of range, trace ends at frame %d", frame, r.frame)
		case HardFailure:
			return log.Errf(ctx, nil, "Replay failed in frame %d", r.frame)
		}
	}
	return nil
}

// Reset destroys every context and returns the replayer to its initial
// state. The packet source is not repositioned.
func (r *Replayer) Reset(ctx context.Context) {
	r.destroyAll(ctx)
	r.pendingSnapshot, r.pendingResize = nil, nil
	r.frame, r.call, r.frameDraws = 0, 0, 0
	r.atFrameBoundary = true
	r.hashes = nil
}

// Close releases every native context.
func (r *Replayer) Close(ctx context.Context) {
	r.destroyAll(ctx)
}

// destroyAll destroys every live context and empties the arenas.
func (r *Replayer) destroyAll(ctx context.Context) {
	if r.current != nil {
		if err := r.backend.MakeCurrent(ctx, 0); err != nil {
			log.W(ctx, "Failed to release context: %v", err)
		}
		r.current = nil
	}
	for _, c := range r.contexts {
		if c == nil {
			continue
		}
		if err := r.backend.DestroyContext(ctx, c.native); err != nil {
			log.W(ctx, "Failed to destroy context %d: %v", c.trace, err)
		}
	}
	r.contexts, r.groups = nil, nil
	r.byTrace = map[uint64]int{}
	r.contextHandles.Clear()
	r.procs = r.backend.Procs()
}

// context returns the live context with trace handle h.
func (r *Replayer) context(h uint64) *contextState {
	if i, ok := r.byTrace[h]; ok {
		return r.contexts[i]
	}
	return nil
}

// members returns the live contexts of share-group g in creation order.
func (r *Replayer) members(g int) []*contextState {
	out := []*contextState{}
	for _, c := range r.contexts {
		if c != nil && c.group == g {
			out = append(out, c)
		}
	}
	return out
}

// switchTo makes the context with trace handle h current if it is not
// already.
func (r *Replayer) switchTo(ctx context.Context, h uint64) (*contextState, Status) {
	if r.current != nil && r.current.trace == h {
		return r.current, OK
	}
	c := r.context(h)
	if c == nil {
		log.E(ctx, "Packet refers to unknown context %d", h)
		return nil, HardFailure
	}
	if status := r.activate(ctx, c); status != OK {
		return nil, status
	}
	return c, OK
}

// activate binds c through the backend and refreshes the live entrypoints.
// A nil c releases the current context.
func (r *Replayer) activate(ctx context.Context, c *contextState) Status {
	var native gl.NativeContext
	if c != nil {
		native = c.native
	}
	if err := r.backend.MakeCurrent(ctx, native); err != nil {
		log.E(ctx, "Failed to make context current: %v", err)
		return HardFailure
	}
	r.procs = r.backend.Procs()
	r.current = c
	if c == nil {
		return OK
	}
	if !c.madeCurrent && r.opts.Verbose {
		log.I(ctx, "Context %d made current for the first time", c.trace)
	}
	c.madeCurrent = true
	if r.opts.CheckTrackers {
		if err := r.checkTrackers(c); err != nil {
			log.E(ctx, "Handle tracker corrupt: %v", err)
			return HardFailure
		}
	}
	return OK
}

// checkTrackers runs the consistency check of every tracker visible to c.
func (r *Replayer) checkTrackers(c *contextState) error {
	var errs fault.List
	errs.Collect(c.framebuffers.Check())
	errs.Collect(c.vertexArrays.Check())
	errs.Collect(r.contextHandles.Check())
	seen := map[*HandleTracker]bool{}
	for _, t := range r.groups[c.group].trackers {
		if t != nil && !seen[t] {
			seen[t] = true
			errs.Collect(t.Check())
		}
	}
	return errs.Err()
}
