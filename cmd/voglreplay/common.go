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

package main

import (
	"context"
	"os"

	"github.com/ValveSoftware/vogl-sub002/core/app"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/core/os/file"
	"github.com/ValveSoftware/vogl-sub002/gl/fakegl"
	"github.com/ValveSoftware/vogl-sub002/replay"
	"github.com/ValveSoftware/vogl-sub002/trace"
	"github.com/pkg/errors"
)

// session is an open trace and the replayer driving it.
type session struct {
	file     *os.File
	reader   *trace.Reader
	blobs    trace.BlobStore
	driver   *fakegl.Driver
	replayer *replay.Replayer
}

func traceArg(args []string) (file.Path, error) {
	if len(args) != 1 {
		return file.Path{}, errors.Wrapf(app.ErrUsage, "Exactly one trace file expected, got %d", len(args))
	}
	return file.Abs(args[0]), nil
}

func blobStore(flags *ReplayFlags, tracePath file.Path) (trace.BlobStore, error) {
	dir := flags.Blobs
	if dir.IsEmpty() {
		dir = tracePath.ChangeExt(".blobs")
		if !dir.Exists() {
			return trace.NewMemoryBlobs(), nil
		}
	}
	blobs, err := trace.NewDirBlobs(dir)
	if err != nil {
		return nil, err
	}
	return blobs, nil
}

// open opens the trace at path and creates a replayer over it.
func open(ctx context.Context, flags *ReplayFlags, path file.Path) (*session, error) {
	f, err := file.Open(path)
	if err != nil {
		return nil, log.Errf(ctx, err, "Opening trace %v", path)
	}
	reader, err := trace.NewReader(ctx, f)
	if err != nil {
		f.Close()
		return nil, log.Errf(ctx, err, "Reading trace %v", path)
	}
	h := reader.Header()
	log.I(ctx, "Trace %v: version 0x%x, %d bit pointers, %q", path.Basename(), h.Version, h.PointerSize*8, h.Description)
	blobs, err := blobStore(flags, path)
	if err != nil {
		f.Close()
		return nil, err
	}
	driver := fakegl.New(fakegl.Options{Width: flags.Window.Width, Height: flags.Window.Height})
	return &session{
		file:     f,
		reader:   reader,
		blobs:    blobs,
		driver:   driver,
		replayer: replay.New(ctx, driver, reader, blobs, flags.Options),
	}, nil
}

func (s *session) close(ctx context.Context) {
	s.replayer.Close(ctx)
	s.file.Close()
}

// playTo replays until the replayer reaches frame, or to the end of the
// trace when frame is negative.
func (s *session) playTo(ctx context.Context, frame int64) error {
	for frame < 0 || s.replayer.Frame() < frame {
		switch status := s.replayer.ProcessFrame(ctx); {
		case status == replay.AtEOF:
			if frame >= 0 {
				return errors.Errorf("Frame %d out of range, trace ends at frame %d", frame, s.replayer.Frame())
			}
			return nil
		case status.Fatal():
			return errors.Errorf("Replay failed in frame %d", s.replayer.Frame())
		}
	}
	return nil
}

func logCounters(ctx context.Context, r *replay.Replayer) {
	c := r.Counters()
	log.I(ctx, "Replayed %d frames, %d calls (%d packets), %d draws", c.Frame, c.Calls, c.Packets, c.Draws)
	if c.Divergences+c.GLErrors+c.SoftFailures+c.Skipped > 0 {
		log.W(ctx, "%d divergences, %d GL errors, %d soft failures, %d skipped draws", c.Divergences, c.GLErrors, c.SoftFailures, c.Skipped)
	}
}
