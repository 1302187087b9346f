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
	"fmt"
	"os"

	"github.com/ValveSoftware/vogl-sub002/core/app"
	"github.com/ValveSoftware/vogl-sub002/core/log"
)

type replayVerb struct {
	ReplayFlags
	Frames int  `help:"Stop after this many frames, 0 for the whole trace"`
	Hashes bool `help:"Print the backbuffer hash of every frame"`
}

func init() {
	verb := &replayVerb{ReplayFlags: defaultReplayFlags()}
	app.AddVerb(&app.Verb{
		Name:       "replay",
		ShortHelp:  "Replays a trace",
		ShortUsage: "<trace>",
		Action:     verb,
	})
}

func (verb *replayVerb) Run(ctx context.Context, args []string) error {
	path, err := traceArg(args)
	if err != nil {
		return err
	}
	s, err := open(ctx, &verb.ReplayFlags, path)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	end := int64(-1)
	if verb.Frames > 0 {
		end = int64(verb.Frames)
	}
	err = s.playTo(ctx, end)
	logCounters(ctx, s.replayer)
	if verb.Hashes {
		for i, h := range s.replayer.Hashes() {
			fmt.Fprintf(os.Stdout, "%6d %016x\n", i, h)
		}
	}
	if err != nil {
		return log.Err(ctx, err, "Replay")
	}
	return nil
}
