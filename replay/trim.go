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
	"fmt"
	"io"

	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/replay/snapshot"
	"github.com/ValveSoftware/vogl-sub002/trace"
	"github.com/pkg/errors"
)

// WriteTrimFile writes a trace that starts with a snapshot of the current
// state and continues with the next frames frames of the source. The
// snapshot is stored in blobs and referenced by id. The source is left
// positioned where it was, so replay can continue afterwards.
func (r *Replayer) WriteTrimFile(ctx context.Context, out io.Writer, blobs trace.BlobStore, frames int) error {
	ctx = log.Enter(ctx, "WriteTrimFile")
	if frames < 0 {
		return log.Errf(ctx, nil, "Invalid frame count %d", frames)
	}
	fs, ok := r.source.(trace.FrameSource)
	if !ok {
		return log.Err(ctx, ErrNotSeekable, "Trimming")
	}
	if !r.atFrameBoundary {
		return log.Errf(ctx, nil, "Trimming must start at a frame boundary, call %d is inside frame %d", r.call, r.frame)
	}
	s, err := r.SnapshotState(ctx)
	if err != nil {
		return err
	}
	if !s.Restorable {
		return log.Err(ctx, ErrNotRestorable, "Trimming")
	}
	data, err := snapshot.Marshal(ctx, s)
	if err != nil {
		return err
	}
	blob, err := blobs.Put(ctx, data)
	if err != nil {
		return errors.Wrap(err, "Storing snapshot")
	}

	start := fs.Frame()
	packets, err := fs.ReadFrames(ctx, frames)
	if err != nil {
		return errors.Wrapf(err, "Reading %d frames from frame %d", frames, start)
	}
	if err := fs.SeekToFrame(ctx, start); err != nil {
		return errors.Wrapf(err, "Returning to frame %d", start)
	}

	w, err := trace.NewWriter(out, trace.Header{Description: fmt.Sprintf("trimmed at frame %d", r.frame)})
	if err != nil {
		return err
	}
	cmd := trace.NewKeyValueCommand(0, s.Call, trace.CommandStateSnapshot)
	cmd.KVM.SetBlob(trace.StringKey(trace.KeyBinaryID), blob)
	if err := w.Write(cmd); err != nil {
		return err
	}
	for _, p := range packets {
		if p.IsInternal() && p.CommandType() == trace.CommandStateSnapshot {
			continue
		}
		if err := w.Write(p); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	log.I(ctx, "Trimmed %d packets of %d frames from frame %d", len(packets), frames, r.frame)
	return nil
}
