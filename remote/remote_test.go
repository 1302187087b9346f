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

package remote_test

import (
	"context"
	"net"
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/ValveSoftware/vogl-sub002/gl/fakegl"
	"github.com/ValveSoftware/vogl-sub002/remote"
	"github.com/ValveSoftware/vogl-sub002/replay"
	"github.com/ValveSoftware/vogl-sub002/replay/snapshot"
	"github.com/ValveSoftware/vogl-sub002/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func frames(n int) []*trace.Packet {
	create := trace.NewCall(gl.XCreateContext, 0, 1, gl.Ptr(1), gl.Ptr(2), gl.Uint(0), gl.Int(1))
	create.Return = gl.Uint(1)
	current := trace.NewCall(gl.XMakeCurrent, 0, 2, gl.Ptr(1), gl.Ptr(3), gl.Uint(1))
	current.Return = gl.Int(1)
	out := []*trace.Packet{create, current}
	call := uint64(3)
	next := func(e gl.Entrypoint, args ...gl.Value) {
		out = append(out, trace.NewCall(e, 1, call, args...))
		call++
	}
	for i := 0; i < n; i++ {
		next(gl.ClearColor, gl.Float(float64(i)/float64(n)), gl.Float(0), gl.Float(0), gl.Float(1))
		next(gl.Clear, gl.Int(gl.COLOR_BUFFER_BIT))
		next(gl.XSwapBuffers, gl.Ptr(1), gl.Ptr(3))
	}
	return out
}

// serve starts a server over an in-memory listener and returns a connected
// client. The returned function stops both.
func serve(ctx context.Context, r *replay.Replayer) (*remote.Client, func()) {
	lis := bufconn.Listen(1 << 20)
	sctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- remote.NewWithListener(sctx, lis, r, nil) }()
	client, err := remote.Dial(ctx, "bufnet", grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	assert.For(ctx, "dial").ThatError(err).Succeeded()
	return client, func() {
		client.Close()
		cancel()
		assert.For(ctx, "serve").ThatError(<-done).Succeeded()
	}
}

func TestRemoteControl(t *testing.T) {
	ctx := log.Testing(t)
	r := replay.New(ctx, fakegl.New(fakegl.Options{}), trace.NewMemorySource(frames(3)...), nil, replay.DefaultOptions())
	client, stop := serve(ctx, r)
	defer stop()

	st, err := client.Status(ctx)
	assert.For(ctx, "status").ThatError(err).Succeeded()
	assert.For(ctx, "initial frame").That(st.Frame).Equals(int64(0))
	assert.For(ctx, "in flight").ThatInteger(st.InFlight).Equals(1)

	st, err = client.StepFrame(ctx)
	assert.For(ctx, "step frame").ThatError(err).Succeeded()
	assert.For(ctx, "step frame status").That(st.Last).Equals(replay.NextFrame)
	assert.For(ctx, "frame").That(st.Frame).Equals(int64(1))
	assert.For(ctx, "swaps").That(st.Swaps).Equals(uint64(1))

	st, err = client.Step(ctx, 2)
	assert.For(ctx, "step").ThatError(err).Succeeded()
	assert.For(ctx, "steps").ThatInteger(st.Steps).Equals(2)
	assert.For(ctx, "calls").That(st.Calls).Equals(uint64(7))

	snap, err := client.Snapshot(ctx)
	assert.For(ctx, "snapshot").ThatError(err).Succeeded()
	assert.For(ctx, "contexts").ThatSlice(snap.Contexts).IsLength(1)
	assert.For(ctx, "snapshot frame").That(snap.Frame).Equals(int64(1))
	assert.For(ctx, "backbuffer").ThatSlice(snap.Backbuffer).IsNotEmpty()

	st, err = client.Apply(ctx, snap)
	assert.For(ctx, "apply").ThatError(err).Succeeded()
	assert.For(ctx, "restores").That(st.Restores).Equals(uint64(1))
	assert.For(ctx, "pending").ThatBoolean(st.Pending).IsFalse()

	st, err = client.Step(ctx, 100)
	assert.For(ctx, "step to end").ThatError(err).Succeeded()
	assert.For(ctx, "eof").That(st.Last).Equals(replay.AtEOF)
	assert.For(ctx, "final frame").That(st.Frame).Equals(int64(3))

	st, err = client.Seek(ctx, 1)
	assert.For(ctx, "seek").ThatError(err).Succeeded()
	assert.For(ctx, "seek frame").That(st.Frame).Equals(int64(1))

	_, err = client.Seek(ctx, -1)
	assert.For(ctx, "bad seek").That(status.Code(err)).Equals(codes.InvalidArgument)
	_, err = client.Step(ctx, 0)
	assert.For(ctx, "bad step").That(status.Code(err)).Equals(codes.InvalidArgument)
}

func TestRemoteApplyRejectsBadSnapshots(t *testing.T) {
	ctx := log.Testing(t)
	r := replay.New(ctx, fakegl.New(fakegl.Options{}), trace.NewMemorySource(frames(1)...), nil, replay.DefaultOptions())
	client, stop := serve(ctx, r)
	defer stop()

	st, err := client.StepFrame(ctx)
	assert.For(ctx, "step frame").ThatError(err).Succeeded()
	assert.For(ctx, "frame").That(st.Frame).Equals(int64(1))
	snap, err := client.Snapshot(ctx)
	assert.For(ctx, "snapshot").ThatError(err).Succeeded()

	snap.Restorable = false
	_, err = client.Apply(ctx, snap)
	assert.For(ctx, "not restorable").That(status.Code(err)).Equals(codes.FailedPrecondition)

	snap.Restorable, snap.Version = true, snapshot.Version+1
	_, err = client.Apply(ctx, snap)
	assert.For(ctx, "wrong version").That(status.Code(err)).Equals(codes.InvalidArgument)

	st, err = client.Status(ctx)
	assert.For(ctx, "status").ThatError(err).Succeeded()
	assert.For(ctx, "no restores").That(st.Restores).Equals(uint64(0))
	assert.For(ctx, "close unowned").ThatError(remote.NewClient(nil).Close()).Succeeded()
}
