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
	"github.com/ValveSoftware/vogl-sub002/remote"
)

type serveVerb struct {
	ReplayFlags
	Addr string `help:"Address the replay service listens on"`
}

func init() {
	verb := &serveVerb{ReplayFlags: defaultReplayFlags(), Addr: "localhost:8484"}
	app.AddVerb(&app.Verb{
		Name:       "serve",
		ShortHelp:  "Serves remote replay control of a trace over gRPC",
		ShortUsage: "<trace>",
		Action:     verb,
	})
}

func (verb *serveVerb) Run(ctx context.Context, args []string) error {
	path, err := traceArg(args)
	if err != nil {
		return err
	}
	s, err := open(ctx, &verb.ReplayFlags, path)
	if err != nil {
		return err
	}
	defer s.close(ctx)
	if err := s.reader.Index(ctx); err != nil {
		return log.Errf(ctx, err, "Indexing %v", path)
	}
	log.I(ctx, "Serving %v", path.Basename())
	return remote.Listen(ctx, verb.Addr, s.replayer)
}
