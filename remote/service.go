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

// Package remote exposes a running replayer over gRPC.
//
// Requests and responses are structpb.Struct documents so the service needs
// no generated code. The method set is Status, Step, Snapshot, Apply and
// Seek.
package remote

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified name of the replay control service.
const ServiceName = "vogl.replay.Replay"

// Service is the replay control service.
type Service interface {
	// Status returns the replay counters and whether work is pending.
	Status(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// Step processes the requested number of packets, or a whole frame.
	Step(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// Snapshot captures the current state.
	Snapshot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// Apply restores a snapshot.
	Apply(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// Seek repositions the replay at the start of a frame.
	Seek(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type method func(Service, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(name string, m method) grpc.MethodDesc {
	full := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := &structpb.Struct{}
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return m(srv.(Service), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
			return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
				return m(srv.(Service), ctx, req.(*structpb.Struct))
			})
		},
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*Service)(nil),
	Methods: []grpc.MethodDesc{
		unary("Status", Service.Status),
		unary("Step", Service.Step),
		unary("Snapshot", Service.Snapshot),
		unary("Apply", Service.Apply),
		unary("Seek", Service.Seek),
	},
	Metadata: "vogl/replay/service",
}

// Register adds s to server.
func Register(server *grpc.Server, s Service) {
	server.RegisterService(&serviceDesc, s)
}

func invoke(ctx context.Context, conn grpc.ClientConnInterface, name string, in *structpb.Struct) (*structpb.Struct, error) {
	out := &structpb.Struct{}
	if err := conn.Invoke(ctx, "/"+ServiceName+"/"+name, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// number returns the numeric field name of s, or def.
func number(s *structpb.Struct, name string, def float64) float64 {
	if v, ok := s.GetFields()[name]; ok {
		if _, isNum := v.GetKind().(*structpb.Value_NumberValue); isNum {
			return v.GetNumberValue()
		}
	}
	return def
}

func boolean(s *structpb.Struct, name string) bool {
	return s.GetFields()[name].GetBoolValue()
}
