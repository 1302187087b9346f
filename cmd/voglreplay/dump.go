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
	"github.com/ValveSoftware/vogl-sub002/replay/snapshot"
	"github.com/pkg/errors"
)

type dumpVerb struct {
	ReplayFlags
	Frame  int       `help:"Frame at whose start the state is captured"`
	Out    file.Path `help:"Output file, stdout when empty"`
	Binary bool      `help:"Write the binary protobuf encoding instead of JSON"`
}

func init() {
	verb := &dumpVerb{ReplayFlags: defaultReplayFlags()}
	app.AddVerb(&app.Verb{
		Name:       "dump",
		ShortHelp:  "Captures the GL state at the start of a frame",
		ShortUsage: "<trace>",
		Action:     verb,
	})
}

func (verb *dumpVerb) Run(ctx context.Context, args []string) error {
	path, err := traceArg(args)
	if err != nil {
		return err
	}
	if verb.Frame < 0 {
		return errors.Wrapf(app.ErrUsage, "Invalid frame %d", verb.Frame)
	}
	if verb.Binary && verb.Out.IsEmpty() {
		return errors.Wrap(app.ErrUsage, "Binary output needs -out")
	}
	s, err := open(ctx, &verb.ReplayFlags, path)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	if err := s.playTo(ctx, int64(verb.Frame)); err != nil {
		return log.Err(ctx, err, "Replay")
	}
	snap, err := s.replayer.SnapshotState(ctx)
	if err != nil {
		return log.Err(ctx, err, "Capturing state")
	}
	if !snap.Restorable {
		log.W(ctx, "Snapshot of frame %d is not restorable", verb.Frame)
	}

	var data []byte
	if verb.Binary {
		data, err = snapshot.Marshal(ctx, snap)
	} else {
		data, err = snapshot.MarshalText(ctx, snap)
	}
	if err != nil {
		return log.Err(ctx, err, "Encoding snapshot")
	}
	if verb.Out.IsEmpty() {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := file.WriteAtomic(verb.Out, data); err != nil {
		return log.Errf(ctx, err, "Writing %v", verb.Out)
	}
	log.I(ctx, "Wrote snapshot of %d contexts to %v", len(snap.Contexts), verb.Out)
	return nil
}
