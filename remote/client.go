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

	"github.com/ValveSoftware/vogl-sub002/core/net/grpcutil"
	"github.com/ValveSoftware/vogl-sub002/replay"
	"github.com/ValveSoftware/vogl-sub002/replay/snapshot"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// State is the replay progress reported by the server.
type State struct {
	replay.Counters
	// Pending is true when a snapshot or window resize is waiting.
	Pending bool
	// Last is the status of the last processed packet of a Step or Apply.
	Last replay.Status
	// Steps is the number of packets or frames a Step processed.
	Steps int
	// InFlight counts the requests the server was handling, this one
	// included.
	InFlight int
}

// Client talks to a replay control server.
type Client struct {
	conn grpc.ClientConnInterface
	// closer is nil when the connection is owned by the caller.
	closer func() error
}

// NewClient returns a client using conn. Closing the client does not close
// conn.
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

// Dial connects to the server at target.
func Dial(ctx context.Context, target string, options ...grpc.DialOption) (*Client, error) {
	conn, err := grpcutil.Dial(ctx, target, options...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, closer: conn.Close}, nil
}

// Close closes the connection opened by Dial.
func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

func (c *Client) call(ctx context.Context, name string, fields map[string]*structpb.Value) (State, *structpb.Struct, error) {
	out, err := invoke(ctx, c.conn, name, &structpb.Struct{Fields: fields})
	if err != nil {
		return State{}, nil, err
	}
	u := func(n string) uint64 { return uint64(number(out, n, 0)) }
	return State{
		Counters: replay.Counters{
			Frame:        int64(number(out, "frame", 0)),
			Packets:      u("packets"),
			Calls:        u("calls"),
			Draws:        u("draws"),
			Swaps:        u("swaps"),
			Divergences:  u("divergences"),
			GLErrors:     u("gl_errors"),
			SoftFailures: u("soft_failures"),
			Skipped:      u("skipped"),
			Restores:     u("restores"),
		},
		Pending:  boolean(out, "pending"),
		Last:     replay.Status(number(out, "status", 0)),
		Steps:    int(number(out, "steps", 0)),
		InFlight: int(number(out, "in_flight", 0)),
	}, out, nil
}

// Status returns the replay progress.
func (c *Client) Status(ctx context.Context) (State, error) {
	s, _, err := c.call(ctx, "Status", nil)
	return s, err
}

// Step processes up to count packets. It stops early at the end of the
// trace.
func (c *Client) Step(ctx context.Context, count int) (State, error) {
	s, _, err := c.call(ctx, "Step", map[string]*structpb.Value{
		"packets": structpb.NewNumberValue(float64(count)),
	})
	return s, err
}

// StepFrame processes packets up to and including the next swap.
func (c *Client) StepFrame(ctx context.Context) (State, error) {
	s, _, err := c.call(ctx, "Step", map[string]*structpb.Value{
		"frame": structpb.NewBoolValue(true),
	})
	return s, err
}

// Snapshot captures the state of the remote replayer.
func (c *Client) Snapshot(ctx context.Context) (*snapshot.Snapshot, error) {
	_, out, err := c.call(ctx, "Snapshot", nil)
	if err != nil {
		return nil, err
	}
	return snapshot.FromProto(ctx, out.GetFields()["snapshot"].GetStructValue())
}

// Apply restores snap on the remote replayer.
func (c *Client) Apply(ctx context.Context, snap *snapshot.Snapshot) (State, error) {
	doc, err := snapshot.ToProto(ctx, snap)
	if err != nil {
		return State{}, err
	}
	s, _, err := c.call(ctx, "Apply", map[string]*structpb.Value{
		"snapshot": structpb.NewStructValue(doc),
	})
	return s, err
}

// Seek repositions the remote replay at the start of frame.
func (c *Client) Seek(ctx context.Context, frame int64) (State, error) {
	s, _, err := c.call(ctx, "Seek", map[string]*structpb.Value{
		"frame": structpb.NewNumberValue(float64(frame)),
	})
	return s, err
}
