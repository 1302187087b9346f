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
	"fmt"
	"sort"

	"github.com/ValveSoftware/vogl-sub002/core/fault"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/pkg/errors"
)

const (
	// ErrHandleConflict is returned when an insert would map a handle that
	// is already mapped to something else.
	ErrHandleConflict = fault.Const("Handle already mapped")
	// ErrTargetMismatch is returned when a handle is given a target that
	// differs from the one it already has.
	ErrTargetMismatch = fault.Const("Handle target mismatch")
	// ErrZeroHandle is returned when the null handle is inserted.
	ErrZeroHandle = fault.Const("The null handle cannot be tracked")
)

type trackerEntry struct {
	replay uint64
	target gl.Enum
}

// HandleTracker is a bidirectional map between trace and replay handles of
// one namespace. Both sides are unique. Each entry carries an optional
// target, NONE until set.
type HandleTracker struct {
	ns  gl.Namespace
	fwd map[uint64]trackerEntry
	inv map[uint64]uint64
	gen uint64
}

// Token is a cached lookup of a trace handle. It stays valid until the
// tracker that made it changes a mapping.
type Token struct {
	owner  *HandleTracker
	trace  uint64
	replay uint64
	gen    uint64
}

// Handle returns the trace handle the token was made for.
func (tok Token) Handle() uint64 { return tok.trace }

// NewHandleTracker returns an empty tracker for ns.
func NewHandleTracker(ns gl.Namespace) *HandleTracker {
	return &HandleTracker{ns: ns, fwd: map[uint64]trackerEntry{}, inv: map[uint64]uint64{}}
}

// Namespace returns the namespace of the tracker.
func (t *HandleTracker) Namespace() gl.Namespace { return t.ns }

// Len returns the number of mappings.
func (t *HandleTracker) Len() int { return len(t.fwd) }

// Insert adds the mapping trace <-> replay. It fails if either handle is
// already mapped to a different handle. Inserting an existing pair only
// sets its target.
func (t *HandleTracker) Insert(trace, replay uint64, target gl.Enum) error {
	if trace == 0 || replay == 0 {
		return ErrZeroHandle
	}
	if e, ok := t.fwd[trace]; ok {
		if e.replay != replay {
			return errors.Wrapf(ErrHandleConflict, "%v trace handle %d is mapped to %d, not %d", t.ns, trace, e.replay, replay)
		}
		return t.SetTarget(trace, target)
	}
	if other, ok := t.inv[replay]; ok {
		return errors.Wrapf(ErrHandleConflict, "%v replay handle %d is mapped from %d, not %d", t.ns, replay, other, trace)
	}
	t.fwd[trace] = trackerEntry{replay: replay, target: target}
	t.inv[replay] = trace
	t.gen++
	return nil
}

// Update creates or updates the mapping of trace. An existing mapping of
// trace is replaced, keeping its target. It fails if replay is mapped from
// another trace handle, or with ErrTargetMismatch if target differs from a
// target already set. The mapping is updated even when the targets
// mismatch.
func (t *HandleTracker) Update(trace, replay uint64, target gl.Enum) error {
	if trace == 0 || replay == 0 {
		return ErrZeroHandle
	}
	if other, ok := t.inv[replay]; ok && other != trace {
		return errors.Wrapf(ErrHandleConflict, "%v replay handle %d is mapped from %d, not %d", t.ns, replay, other, trace)
	}
	e, ok := t.fwd[trace]
	if ok && e.replay != replay {
		delete(t.inv, e.replay)
		t.gen++
	}
	if !ok {
		t.gen++
	}
	var err error
	switch {
	case target == gl.NONE:
	case e.target == gl.NONE:
		e.target = target
	case e.target != target:
		err = errors.Wrapf(ErrTargetMismatch, "%v handle %d has target %v, not %v", t.ns, trace, e.target, target)
	}
	e.replay = replay
	t.fwd[trace] = e
	t.inv[replay] = trace
	return err
}

// ConditionalUpdate is Update that only sets the target if none is set.
func (t *HandleTracker) ConditionalUpdate(trace, replay uint64, target gl.Enum) error {
	if e, ok := t.fwd[trace]; ok && e.target != gl.NONE {
		target = gl.NONE
	}
	return t.Update(trace, replay, target)
}

// SetTarget sets the target of a mapped trace handle. A target, once set,
// is never overwritten.
func (t *HandleTracker) SetTarget(trace uint64, target gl.Enum) error {
	e, ok := t.fwd[trace]
	switch {
	case !ok:
		return errors.Errorf("%v handle %d is not tracked", t.ns, trace)
	case target == gl.NONE || e.target == target:
		return nil
	case e.target != gl.NONE:
		return errors.Wrapf(ErrTargetMismatch, "%v handle %d has target %v, not %v", t.ns, trace, e.target, target)
	}
	e.target = target
	t.fwd[trace] = e
	return nil
}

// Erase removes the mapping of a trace handle.
func (t *HandleTracker) Erase(trace uint64) bool {
	e, ok := t.fwd[trace]
	if !ok {
		return false
	}
	delete(t.fwd, trace)
	delete(t.inv, e.replay)
	t.gen++
	return true
}

// Target returns the target of a trace handle, or NONE.
func (t *HandleTracker) Target(trace uint64) gl.Enum {
	if e, ok := t.fwd[trace]; ok {
		return e.target
	}
	return gl.NONE
}

// TargetInv returns the target of a replay handle, or NONE.
func (t *HandleTracker) TargetInv(replay uint64) gl.Enum {
	if trace, ok := t.inv[replay]; ok {
		return t.fwd[trace].target
	}
	return gl.NONE
}

// MapToReplay returns the replay handle of trace.
func (t *HandleTracker) MapToReplay(trace uint64) (uint64, bool) {
	e, ok := t.fwd[trace]
	return e.replay, ok
}

// MapToTrace returns the trace handle of replay.
func (t *HandleTracker) MapToTrace(replay uint64) (uint64, bool) {
	trace, ok := t.inv[replay]
	return trace, ok
}

// Contains returns true if trace is mapped.
func (t *HandleTracker) Contains(trace uint64) bool {
	_, ok := t.fwd[trace]
	return ok
}

// ContainsInv returns true if replay is mapped.
func (t *HandleTracker) ContainsInv(replay uint64) bool {
	_, ok := t.inv[replay]
	return ok
}

// Handles returns the mapped trace handles in ascending order.
func (t *HandleTracker) Handles() []uint64 {
	out := make([]uint64, 0, len(t.fwd))
	for h := range t.fwd {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HandlesWithTarget returns the mapped trace handles whose target is
// target, in ascending order.
func (t *HandleTracker) HandlesWithTarget(target gl.Enum) []uint64 {
	out := []uint64{}
	for _, h := range t.Handles() {
		if t.fwd[h].target == target {
			out = append(out, h)
		}
	}
	return out
}

// Check verifies that the forward and inverse maps agree.
func (t *HandleTracker) Check() error {
	var l fault.List
	if len(t.fwd) != len(t.inv) {
		l.Collect(fmt.Errorf("%v: %d forward entries, %d inverse entries", t.ns, len(t.fwd), len(t.inv)))
	}
	for trace, e := range t.fwd {
		if back, ok := t.inv[e.replay]; !ok || back != trace {
			l.Collect(fmt.Errorf("%v: %d -> %d has no matching inverse", t.ns, trace, e.replay))
		}
	}
	for replay, trace := range t.inv {
		if e, ok := t.fwd[trace]; !ok || e.replay != replay {
			l.Collect(fmt.Errorf("%v: inverse %d -> %d has no matching forward entry", t.ns, replay, trace))
		}
	}
	return l.Err()
}

// Token returns a cached lookup of trace.
func (t *HandleTracker) Token(trace uint64) (Token, bool) {
	e, ok := t.fwd[trace]
	if !ok {
		return Token{}, false
	}
	return Token{owner: t, trace: trace, replay: e.replay, gen: t.gen}, true
}

// Resolve returns the replay handle of a token, looking it up again if the
// tracker changed since the token was made. Tokens of other trackers are
// always looked up again.
func (t *HandleTracker) Resolve(tok Token) (uint64, bool) {
	if tok.owner == t && tok.gen == t.gen && tok.trace != 0 {
		return tok.replay, true
	}
	return t.MapToReplay(tok.trace)
}

// Clear removes every mapping.
func (t *HandleTracker) Clear() {
	t.fwd = map[uint64]trackerEntry{}
	t.inv = map[uint64]uint64{}
	t.gen++
}
