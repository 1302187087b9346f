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
	"github.com/ValveSoftware/vogl-sub002/core/os/file"
	"github.com/ValveSoftware/vogl-sub002/remote"
	"github.com/ValveSoftware/vogl-sub002/replay/snapshot"
	"github.com/pkg/errors"
)

type controlVerb struct {
	Addr    string    `help:"Address of a running serve verb"`
	Packets int       `help:"Process this many packets"`
	Frames  int       `help:"Process this many frames"`
	Seek    int       `help:"Seek to this frame first, -1 to stay"`
	Save    file.Path `help:"Write the remote state to this JSON file"`
	Apply   file.Path `help:"Restore the remote replayer from this JSON snapshot file"`
}

func init() {
	verb := &controlVerb{Addr: "localhost:8484", Seek: -1}
	app.AddVerb(&app.Verb{
		Name:      "control",
		ShortHelp: "Drives a replay started with the serve verb",
		Action:    verb,
	})
}

func (verb *controlVerb) Run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.Wrapf(app.ErrUsage, "Unexpected arguments %v", args)
	}
	c, err := remote.Dial(ctx, verb.Addr)
	if err != nil {
		return log.Errf(ctx, err, "Connecting to %v", verb.Addr)
	}
	defer c.Close()

	state, err := c.Status(ctx)
	if err != nil {
		return err
	}
	if !verb.Apply.IsEmpty() {
		data, err := file.Read(verb.Apply)
		if err != nil {
			return err
		}
		snap, err := snapshot.UnmarshalText(ctx, data)
		if err != nil {
			return log.Errf(ctx, err, "Decoding %v", verb.Apply)
		}
		if state, err = c.Apply(ctx, snap); err != nil {
			return err
		}
	}
	if verb.Seek >= 0 {
		if state, err = c.Seek(ctx, int64(verb.Seek)); err != nil {
			return err
		}
	}
	for i := 0; i < verb.Frames; i++ {
		if state, err = c.StepFrame(ctx); err != nil {
			return err
		}
	}
	if verb.Packets > 0 {
		if state, err = c.Step(ctx, verb.Packets); err != nil {
			return err
		}
	}
	if !verb.Save.IsEmpty() {
		snap, err := c.Snapshot(ctx)
		if err != nil {
			return err
		}
		data, err := snapshot.MarshalText(ctx, snap)
		if err != nil {
			return err
		}
		if err := file.WriteAtomic(verb.Save, data); err != nil {
			return err
		}
	}
	fmt.Fprintf(os.Stdout, "frame %d: %d calls, %d draws, %d swaps, last status %v\n",
		state.Frame, state.Calls, state.Draws, state.Swaps, state.Last)
	return nil
}
