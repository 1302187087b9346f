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

package flags_test

import (
	"testing"
	"time"

	"github.com/ValveSoftware/vogl-sub002/core/app/flags"
	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/log"
)

type dumpOptions struct {
	Shaders bool `help:"dump shaders on draw"`
	Dir     string
}

type testOptions struct {
	Benchmark     bool          `help:"disable glGetError checks"`
	KillThreshold uint64        `name:"kill-threshold"`
	ResizeTimeout time.Duration `name:"resize-timeout"`
	Dump          dumpOptions
	internal      int
}

func TestBindStruct(t *testing.T) {
	ctx := log.Testing(t)
	o := testOptions{ResizeTimeout: 5 * time.Second}
	s := flags.NewSet("replay", nil)
	s.Bind("", &o, "")
	err := s.Parse("-benchmark", "-kill-threshold", "12", "-dump-shaders", "-dump-dir", "/tmp/x", "trace.bin")
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "benchmark").ThatBoolean(o.Benchmark).IsTrue()
	assert.For(ctx, "kill").ThatInteger(int(o.KillThreshold)).Equals(12)
	assert.For(ctx, "timeout").That(o.ResizeTimeout).Equals(5 * time.Second)
	assert.For(ctx, "shaders").ThatBoolean(o.Dump.Shaders).IsTrue()
	assert.For(ctx, "dir").ThatString(o.Dump.Dir).Equals("/tmp/x")
	assert.For(ctx, "args").ThatSlice(s.Args()).Equals([]string{"trace.bin"})
	assert.For(ctx, "visited").ThatSlice(s.Visited()).IsLength(4)
	assert.For(ctx, "usage").ThatString(s.Usage()).Contains("dump shaders on draw")
}

func TestChooser(t *testing.T) {
	ctx := log.Testing(t)
	style := log.Brief
	s := flags.NewSet("replay", nil)
	s.Bind("log-style", &style, "log output style")
	assert.For(ctx, "err").ThatError(s.Parse("-log-style", "Detailed")).Succeeded()
	assert.For(ctx, "style").ThatString(style.Name).Equals("detailed")
	assert.For(ctx, "bad").ThatError(s.Parse("-log-style", "loud")).Failed()
}
