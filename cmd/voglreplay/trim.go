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

	"github.com/ValveSoftware/vogl-sub002/core/app"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/core/os/file"
	"github.com/ValveSoftware/vogl-sub002/trace"
	"github.com/pkg/errors"
)

type trimVerb struct {
	ReplayFlags
	Frame    int       `help:"First frame kept in the trimmed trace"`
	Count    int       `help:"Number of frames kept"`
	Out      file.Path `help:"Trimmed trace file"`
	OutBlobs file.Path `name:"out-blobs" help:"Blob directory of the trimmed trace, defaults next to -out"`
}

func init() {
	verb := &trimVerb{ReplayFlags: defaultReplayFlags(), Count: 1}
	app.AddVerb(&app.Verb{
		Name:       "trim",
		ShortHelp:  "Writes a trace that starts from a captured state",
		ShortUsage: "<trace>",
		Action:     verb,
	})
}

func (verb *trimVerb) Run(ctx context.Context, args []string) error {
	path, err := traceArg(args)
	if err != nil {
		return err
	}
	switch {
	case verb.Out.IsEmpty():
		return errors.Wrap(app.ErrUsage, "Trim needs -out")
	case verb.Frame < 0:
		return errors.Wrapf(app.ErrUsage, "Invalid frame %d", verb.Frame)
	case verb.Count < 1:
		return errors.Wrapf(app.ErrUsage, "Invalid frame count %d", verb.Count)
	}
	outBlobs := verb.OutBlobs
	if outBlobs.IsEmpty() {
		outBlobs = verb.Out.ChangeExt(".blobs")
	}
	blobs, err := trace.NewDirBlobs(outBlobs)
	if err != nil {
		return log.Errf(ctx, err, "Opening blob directory %v", outBlobs)
	}

	s, err := open(ctx, &verb.ReplayFlags, path)
	if err != nil {
		return err
	}
	defer s.close(ctx)
	if err := s.playTo(ctx, int64(verb.Frame)); err != nil {
		return log.Err(ctx, err, "Replay")
	}

	out, err := file.Create(verb.Out)
	if err != nil {
		return log.Errf(ctx, err, "Creating %v", verb.Out)
	}
	if err := s.replayer.WriteTrimFile(ctx, out, blobs, verb.Count); err != nil {
		out.Close()
		return log.Err(ctx, err, "Trimming")
	}
	if err := out.Close(); err != nil {
		return err
	}
	log.I(ctx, "Wrote frames %d to %d to %v", verb.Frame, verb.Frame+verb.Count-1, verb.Out)
	return nil
}
