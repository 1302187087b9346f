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

package app

import (
	"context"
	"os"

	"github.com/ValveSoftware/vogl-sub002/core/log"
)

const logChanBufferSize = 100

// LogHandler is the primary application logger target.
// It is assigned to the main context on startup and is closed on shutdown.
var LogHandler log.Indirect

// LogFlags configure the application logger.
type LogFlags struct {
	Level log.Severity `help:"The severity to enable logs at"`
	Style log.Style    `help:"The style of log output"`
	File  string       `help:"Also write logs to this file"`
}

func logDefaults() LogFlags {
	return LogFlags{
		Level: log.Info,
		Style: log.Normal,
	}
}

func prepareContext(ctx context.Context, flags *LogFlags) context.Context {
	handler := flags.Style.Handler(log.Std())
	if flags.File != "" {
		if file, err := os.Create(flags.File); err == nil {
			toFile := flags.Style.Handler(log.To(file))
			handler = log.Broadcast(handler, log.NewHandler(toFile.Handle, func() {
				toFile.Close()
				file.Close()
			}))
		} else {
			os.Stderr.WriteString("Failed to create log file " + flags.File + ": " + err.Error() + "\n")
		}
	}
	LogHandler.SetTarget(log.Channel(handler, logChanBufferSize))
	ctx = log.PutTag(ctx, Name)
	ctx = log.PutFilter(ctx, log.SeverityFilter(flags.Level))
	return log.PutHandler(ctx, &LogHandler)
}
