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

package remote

import (
	"context"
	"net"
	"sync"
	"sync/atomic"

	"github.com/ValveSoftware/vogl-sub002/core/context/keys"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/core/net/grpcutil"
	"github.com/ValveSoftware/vogl-sub002/replay"
	"github.com/ValveSoftware/vogl-sub002/replay/snapshot"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Listen serves r on the TCP address addr.
// This is a blocking call.
func Listen(ctx context.Context, addr string, r *replay.Replayer) error {
	return grpcutil.Serve(ctx, addr, register(ctx, r, nil))
}

// NewWithListener serves r on l. The grpc server is sent to srvChan, if
// not nil, once the service is registered.
// This is a blocking call.
func NewWithListener(ctx context.Context, l net.Listener, r *replay.Replayer, srvChan chan<- *grpc.Server) error {
	return grpcutil.ServeWithListener(ctx, l, register(ctx, r, srvChan))
}

func register(ctx context.Context, r *replay.Replayer, srvChan chan<- *grpc.Server) grpcutil.PrepareTask {
	s := New(ctx, r)
	return func(ctx context.Context, listener net.Listener, server *grpc.Server) error {
		Register(server, s)
		if srvChan != nil {
			srvChan <- server
		}
		return nil
	}
}

// New returns a Service driving r. Calls are serialized, the replayer is
// never used concurrently. Request contexts inherit the logging setup of
// ctx.
func New(ctx context.Context, r *replay.Replayer) Service {
	return &server{
		replayer: r,
		bindCtx:  func(c context.Context) context.Context { return keys.Clone(c, ctx) },
	}
}

type server struct {
	mutex        sync.Mutex
	replayer     *replay.Replayer
	bindCtx      func(context.Context) context.Context
	inFlightRPCs uint32
}

// enter binds ctx, takes the replayer lock and returns the function that
// releases it.
func (s *server) enter(ctx context.Context, name string) (context.Context, func()) {
	atomic.AddUint32(&s.inFlightRPCs, 1)
	s.mutex.Lock()
	return log.Enter(s.bindCtx(ctx), name), func() {
		s.mutex.Unlock()
		atomic.AddUint32(&s.inFlightRPCs, ^uint32(0))
	}
}

func (s *server) Status(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ctx, done := s.enter(ctx, "Status")
	defer done()
	return s.counters(), nil
}

func (s *server) counters() *structpb.Struct {
	c := s.replayer.Counters()
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"frame":         structpb.NewNumberValue(float64(c.Frame)),
		"packets":       structpb.NewNumberValue(float64(c.Packets)),
		"calls":         structpb.NewNumberValue(float64(c.Calls)),
		"draws":         structpb.NewNumberValue(float64(c.Draws)),
		"swaps":         structpb.NewNumberValue(float64(c.Swaps)),
		"divergences":   structpb.NewNumberValue(float64(c.Divergences)),
		"gl_errors":     structpb.NewNumberValue(float64(c.GLErrors)),
		"soft_failures": structpb.NewNumberValue(float64(c.SoftFailures)),
		"skipped":       structpb.NewNumberValue(float64(c.Skipped)),
		"restores":      structpb.NewNumberValue(float64(c.Restores)),
		"pending":       structpb.NewBoolValue(s.replayer.HasPendingPackets()),
		"in_flight":     structpb.NewNumberValue(float64(atomic.LoadUint32(&s.inFlightRPCs))),
	}}
}

func (s *server) Step(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ctx, done := s.enter(ctx, "Step")
	defer done()
	result, steps := replay.OK, 0
	if boolean(req, "frame") {
		result, steps = s.replayer.ProcessFrame(ctx), 1
	} else {
		count := int(number(req, "packets", 1))
		if count < 1 {
			return nil, status.Errorf(codes.InvalidArgument, "Invalid packet count %d", count)
		}
		for steps < count {
			result = s.replayer.ProcessNextPacket(ctx)
			if result == replay.AtEOF || result.Fatal() {
				break
			}
			steps++
		}
	}
	if result.Fatal() {
		return nil, status.Errorf(codes.Aborted, "Replay failed at frame %d", s.replayer.Frame())
	}
	out := s.counters()
	out.Fields["status"] = structpb.NewNumberValue(float64(result))
	out.Fields["steps"] = structpb.NewNumberValue(float64(steps))
	return out, nil
}

func (s *server) Snapshot(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ctx, done := s.enter(ctx, "Snapshot")
	defer done()
	snap, err := s.replayer.SnapshotState(ctx)
	if err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "%v", err)
	}
	doc, err := snapshot.ToProto(ctx, snap)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"snapshot": structpb.NewStructValue(doc),
	}}, nil
}

func (s *server) Apply(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ctx, done := s.enter(ctx, "Apply")
	defer done()
	snap, err := snapshot.FromProto(ctx, req.GetFields()["snapshot"].GetStructValue())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}
	if err := s.replayer.BeginApplyingSnapshot(ctx, snap); err != nil {
		return nil, status.Errorf(codes.FailedPrecondition, "%v", err)
	}
	result := s.replayer.ProcessPendingPackets(ctx)
	if result.Failed() {
		return nil, status.Errorf(codes.Aborted, "Restoring snapshot of frame %d: %v", snap.Frame, result)
	}
	out := s.counters()
	out.Fields["status"] = structpb.NewNumberValue(float64(result))
	return out, nil
}

func (s *server) Seek(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	ctx, done := s.enter(ctx, "Seek")
	defer done()
	frame := number(req, "frame", -1)
	if frame < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Invalid frame %v", frame)
	}
	if err := s.replayer.SeekToFrame(ctx, int64(frame)); err != nil {
		if errors.Cause(err) == replay.ErrNotSeekable {
			return nil, status.Errorf(codes.FailedPrecondition, "%v", err)
		}
		return nil, status.Errorf(codes.Aborted, "%v", err)
	}
	return s.counters(), nil
}
