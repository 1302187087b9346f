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
	"strings"

	"github.com/ValveSoftware/vogl-sub002/core/os/file"
	"github.com/ValveSoftware/vogl-sub002/replay"
)

// WindowFlags size the headless window.
type WindowFlags struct {
	Width  int `help:"Initial window width"`
	Height int `help:"Initial window height"`
}

// ReplayFlags are shared by every verb that replays a trace.
type ReplayFlags struct {
	replay.Options
	Window WindowFlags
	// OptionsFile is read by Prepare, before the flags are parsed.
	OptionsFile string    `name:"options" help:"YAML file of replay options, overridden by flags"`
	Blobs       file.Path `help:"Directory of the blob store referenced by the trace"`
}

// Prepare loads the options file named on the command line so that the
// flags parsed next override it.
func (f *ReplayFlags) Prepare(ctx context.Context, args []string) error {
	path := optionsArg(args)
	if path == "" {
		return nil
	}
	return replay.LoadOptionsFile(ctx, path, &f.Options)
}

// optionsArg returns the value of the -options flag in args, or "".
func optionsArg(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		name := strings.TrimLeft(a, "-")
		if name == a {
			continue
		}
		switch {
		case name == "options" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(name, "options="):
			return strings.TrimPrefix(name, "options=")
		}
	}
	return ""
}

func defaultReplayFlags() ReplayFlags {
	return ReplayFlags{
		Options: replay.DefaultOptions(),
		Window:  WindowFlags{Width: 1024, Height: 768},
	}
}
