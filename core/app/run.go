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

// Package app runs command line tools built from verbs.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ValveSoftware/vogl-sub002/core/fault"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/pkg/errors"
)

var (
	// Name is the name of the application.
	Name = strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
	// ShortHelp is printed at the top of the usage text.
	ShortHelp = ""
	// UsageFooter is printed at the bottom of the usage text.
	UsageFooter = ""
	// ExitFuncForTesting is called with the exit code. It defaults to
	// os.Exit.
	ExitFuncForTesting = os.Exit
)

// ExitCode is the process exit status.
type ExitCode int

const (
	// SuccessExit is the exit code for a successful run.
	SuccessExit ExitCode = iota
	// FatalExit is the exit code when the main task fails.
	FatalExit
	// UsageExit is the exit code when the command line is invalid.
	UsageExit
)

// ErrUsage is returned by verbs given invalid arguments.
const ErrUsage = fault.Const("Invalid command line")

// AppFlags are the flags shared by every verb.
type AppFlags struct {
	Log LogFlags
}

// Run parses the command line, builds the root context and runs the
// selected verb. The context is cancelled on SIGINT or SIGTERM.
func Run(args []string) {
	ExitFuncForTesting(int(run(args)))
}

func run(args []string) ExitCode {
	flags := &AppFlags{Log: logDefaults()}
	globalVerbs.Name = Name
	globalVerbs.ShortHelp = ShortHelp
	globalVerbs.Flags.Bind("", flags, "")
	if err := globalVerbs.Flags.Parse(args...); err != nil {
		return UsageExit
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = prepareContext(ctx, &flags.Log)
	defer LogHandler.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		select {
		case sig := <-signals:
			log.W(ctx, "Received %v, stopping", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	err := globalVerbs.Invoke(ctx, globalVerbs.Flags.Args())
	switch {
	case err == nil:
		return SuccessExit
	case errors.Cause(err) == ErrUsage:
		Usage(ctx, "%v", err)
		return UsageExit
	default:
		log.E(ctx, "Main failed\nError: %v", err)
		fmt.Fprintln(os.Stderr)
		return FatalExit
	}
}
