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
	"github.com/ValveSoftware/vogl-sub002/replay/snapshot"
	"github.com/ValveSoftware/vogl-sub002/trace"
)

// processInternal handles the trace's own command packets.
func (r *Replayer) processInternal(ctx context.Context, p *trace.Packet) Status {
	if p.Processed || p.Command() == trace.CommandDemarcation {
		return OK
	}
	switch typ := p.CommandType(); typ {
	case trace.CommandStateSnapshot:
		s, err := r.loadSnapshot(ctx, p)
		if err == nil {
			err = r.BeginApplyingSnapshot(ctx, s)
		}
		if err != nil {
			log.E(ctx, "Cannot apply state snapshot: %v", err)
			return HardFailure
		}
		p.Processed = true
	case trace.CommandCTypes:
		log.D(ctx, "Trace ctypes table with %d entries", p.KVM.Len())
	case trace.CommandEntrypoints:
		r.checkEntrypoints(ctx, p)
	default:
		log.W(ctx, "Unknown trace command %q", typ)
	}
	return OK
}

// loadSnapshot reads the snapshot a state_snapshot command refers to.
func (r *Replayer) loadSnapshot(ctx context.Context, p *trace.Packet) (*snapshot.Snapshot, error) {
	if i, ok := p.KVM.Blob(trace.StringKey(trace.KeyBinaryID)); ok {
		data, err := r.blobs.Get(ctx, i)
		if err != nil {
			return nil, err
		}
		return snapshot.Unmarshal(ctx, data)
	}
	if i, ok := p.KVM.Blob(trace.StringKey(trace.KeyJSONID)); ok {
		data, err := r.blobs.Get(ctx, i)
		if err != nil {
			return nil, err
		}
		return snapshot.UnmarshalText(ctx, data)
	}
	return nil, log.Err(ctx, nil, "State snapshot command carries no blob")
}

// checkEntrypoints compares the entrypoint table of the tracer with ours.
func (r *Replayer) checkEntrypoints(ctx context.Context, p *trace.Packet) {
	for _, k := range p.KVM.Keys() {
		if k.IsString() {
			continue
		}
		name, _ := p.KVM.String(k)
		e, ok := gl.Lookup(name)
		switch {
		case !ok:
			log.W(ctx, "Trace entrypoint %q (%d) is not supported", name, k.Index)
		case int64(e) != k.Index:
			log.W(ctx, "Trace entrypoint %q has id %d, expected %d", name, k.Index, e)
		}
	}
}
