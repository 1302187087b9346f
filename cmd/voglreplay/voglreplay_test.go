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
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/app"
	"github.com/ValveSoftware/vogl-sub002/core/app/flags"
	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/core/os/file"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/ValveSoftware/vogl-sub002/replay/snapshot"
	"github.com/ValveSoftware/vogl-sub002/trace"
)

// writeTrace writes a trace of n cleared and swapped frames to path.
func writeTrace(ctx context.Context, path string, n int) {
	f, err := os.Create(path)
	assert.For(ctx, "create").ThatError(err).Succeeded()
	defer f.Close()
	w, err := trace.NewWriter(f, trace.Header{Description: "test"})
	assert.For(ctx, "writer").ThatError(err).Succeeded()

	create := trace.NewCall(gl.XCreateContext, 0, 1, gl.Ptr(1), gl.Ptr(2), gl.Uint(0), gl.Int(1))
	create.Return = gl.Uint(1)
	current := trace.NewCall(gl.XMakeCurrent, 0, 2, gl.Ptr(1), gl.Ptr(3), gl.Uint(1))
	current.Return = gl.Int(1)
	packets := []*trace.Packet{create, current}
	call := uint64(3)
	next := func(e gl.Entrypoint, args ...gl.Value) {
		packets = append(packets, trace.NewCall(e, 1, call, args...))
		call++
	}
	for i := 0; i < n; i++ {
		next(gl.ClearColor, gl.Float(float64(i)/float64(n)), gl.Float(0), gl.Float(0), gl.Float(1))
		next(gl.Clear, gl.Int(gl.COLOR_BUFFER_BIT))
		next(gl.XSwapBuffers, gl.Ptr(1), gl.Ptr(3))
	}
	for _, p := range packets {
		assert.For(ctx, "write").ThatError(w.Write(p)).Succeeded()
	}
	assert.For(ctx, "close").ThatError(w.Close()).Succeeded()
}

func TestOptionsArg(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		args   []string
		expect string
	}{
		{nil, ""},
		{[]string{"-options", "a.yaml", "x.trace"}, "a.yaml"},
		{[]string{"--options=b.yaml"}, "b.yaml"},
		{[]string{"-benchmark", "-options"}, ""},
		{[]string{"--", "-options", "c.yaml"}, ""},
		{[]string{"options", "d.yaml"}, ""},
	} {
		assert.For(ctx, "%v", test.args).ThatString(optionsArg(test.args)).Equals(test.expect)
	}
}

func TestFlagsOverrideOptionsFile(t *testing.T) {
	ctx := log.Testing(t)
	path := filepath.Join(t.TempDir(), "opts.yaml")
	assert.For(ctx, "write").ThatError(ioutil.WriteFile(path, []byte("benchmark: true\nkill_threshold: 4\n"), 0666)).Succeeded()

	verb := &replayVerb{ReplayFlags: defaultReplayFlags()}
	set := flags.NewSet("replay", nil)
	set.Bind("", verb, "")
	args := []string{"-options", path, "-kill-threshold", "2", "-width", "320", "x.trace"}
	assert.For(ctx, "prepare").ThatError(verb.Prepare(ctx, args)).Succeeded()
	assert.For(ctx, "parse").ThatError(set.Parse(args...)).Succeeded()

	assert.For(ctx, "benchmark").ThatBoolean(verb.Benchmark).IsTrue()
	assert.For(ctx, "kill threshold").That(verb.KillThreshold).Equals(int64(2))
	assert.For(ctx, "cache size").ThatInteger(verb.SnapshotCacheSize).Equals(8)
	assert.For(ctx, "width").ThatInteger(verb.Window.Width).Equals(320)
	assert.For(ctx, "args").ThatSlice(set.Args()).Equals([]string{"x.trace"})
}

func TestTraceArgUsage(t *testing.T) {
	ctx := log.Testing(t)
	_, err := traceArg(nil)
	assert.For(ctx, "no trace").ThatError(err).HasCause(app.ErrUsage)
	_, err = traceArg([]string{"a", "b"})
	assert.For(ctx, "two traces").ThatError(err).HasCause(app.ErrUsage)
}

func TestReplayVerb(t *testing.T) {
	ctx := log.Testing(t)
	in := filepath.Join(t.TempDir(), "in.trace")
	writeTrace(ctx, in, 3)
	verb := &replayVerb{ReplayFlags: defaultReplayFlags(), Frames: 2}
	assert.For(ctx, "replay").ThatError(verb.Run(ctx, []string{in})).Succeeded()

	rf := defaultReplayFlags()
	s, err := open(ctx, &rf, file.Abs(in))
	assert.For(ctx, "open").ThatError(err).Succeeded()
	defer s.close(ctx)
	assert.For(ctx, "play").ThatError(s.playTo(ctx, -1)).Succeeded()
	assert.For(ctx, "frames").That(s.replayer.Frame()).Equals(int64(3))
	assert.For(ctx, "past end").ThatError(s.playTo(ctx, 5)).Failed()
}

func TestDumpVerb(t *testing.T) {
	ctx := log.Testing(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.trace")
	writeTrace(ctx, in, 3)
	out := file.Abs(filepath.Join(dir, "state.json"))
	verb := &dumpVerb{ReplayFlags: defaultReplayFlags(), Frame: 1, Out: out}
	assert.For(ctx, "dump").ThatError(verb.Run(ctx, []string{in})).Succeeded()

	data, err := file.Read(out)
	assert.For(ctx, "read").ThatError(err).Succeeded()
	snap, err := snapshot.UnmarshalText(ctx, data)
	assert.For(ctx, "decode").ThatError(err).Succeeded()
	assert.For(ctx, "frame").That(snap.Frame).Equals(int64(1))
	assert.For(ctx, "restorable").ThatBoolean(snap.Restorable).IsTrue()
	assert.For(ctx, "contexts").ThatSlice(snap.Contexts).IsLength(1)

	binary := &dumpVerb{ReplayFlags: defaultReplayFlags(), Binary: true}
	assert.For(ctx, "binary to stdout").ThatError(binary.Run(ctx, []string{in})).HasCause(app.ErrUsage)
}

func TestTrimVerb(t *testing.T) {
	ctx := log.Testing(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.trace")
	writeTrace(ctx, in, 3)
	out := file.Abs(filepath.Join(dir, "out.trace"))
	verb := &trimVerb{ReplayFlags: defaultReplayFlags(), Frame: 1, Count: 2, Out: out}
	assert.For(ctx, "trim").ThatError(verb.Run(ctx, []string{in})).Succeeded()
	assert.For(ctx, "blobs").ThatBoolean(out.ChangeExt(".blobs").Exists()).IsTrue()

	rf := defaultReplayFlags()
	s, err := open(ctx, &rf, out)
	assert.For(ctx, "open").ThatError(err).Succeeded()
	defer s.close(ctx)
	assert.For(ctx, "play").ThatError(s.playTo(ctx, -1)).Succeeded()
	assert.For(ctx, "frame").That(s.replayer.Frame()).Equals(int64(3))
	assert.For(ctx, "restores").That(s.replayer.Counters().Restores).Equals(uint64(1))

	missing := &trimVerb{ReplayFlags: defaultReplayFlags(), Count: 1}
	assert.For(ctx, "no out").ThatError(missing.Run(ctx, []string{in})).HasCause(app.ErrUsage)
}
