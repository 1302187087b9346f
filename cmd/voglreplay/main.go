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

// The voglreplay command replays, inspects and trims GL traces.
//
// Replay runs against the in-memory GL driver, so it needs no display.
package main

import (
	"os"

	"github.com/ValveSoftware/vogl-sub002/core/app"
)

func main() {
	app.ShortHelp = "voglreplay replays, dumps and trims GL traces"
	app.UsageFooter = "\nReplay options can also be set in a YAML file passed with -options.\nFlags override the file.\n"
	app.Run(os.Args[1:])
}
