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

// Package grpcutil holds the shared setup of replay control servers and
// clients.
package grpcutil

import (
	"context"
	"math"
	"net"

	"github.com/ValveSoftware/vogl-sub002/core/log"
	"google.golang.org/grpc"
	_ "google.golang.org/grpc/encoding/gzip" // registers the gzip compressor
)

// PrepareTask is called with the listener and server before the server
// starts accepting connections. Services are registered here.
type PrepareTask func(context.Context, net.Listener, *grpc.Server) error

// Serve listens on the TCP address and serves until the server stops.
func Serve(ctx context.Context, address string, prepare PrepareTask, options ...grpc.ServerOption) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return log.Errf(ctx, err, "Could not start grpc server at %v", address)
	}
	return ServeWithListener(ctx, listener, prepare, options...)
}

// ServeWithListener serves on listener until the server stops. The server is
// stopped when ctx is cancelled.
func ServeWithListener(ctx context.Context, listener net.Listener, prepare PrepareTask, options ...grpc.ServerOption) error {
	options = append([]grpc.ServerOption{
		grpc.MaxRecvMsgSize(math.MaxInt32),
		grpc.MaxSendMsgSize(math.MaxInt32),
	}, options...)
	defer listener.Close()
	server := grpc.NewServer(options...)
	if err := prepare(ctx, listener, server); err != nil {
		return err
	}
	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			server.GracefulStop()
		case <-stopped:
		}
	}()
	log.I(ctx, "Serving on %v", listener.Addr())
	if err := server.Serve(listener); err != nil {
		return log.Errf(ctx, err, "Abort running grpc server: %v", listener.Addr())
	}
	log.I(ctx, "Shutting down grpc server")
	return nil
}
