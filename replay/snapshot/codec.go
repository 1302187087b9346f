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

package snapshot

import (
	"bytes"
	"context"

	"github.com/ValveSoftware/vogl-sub002/core/data/protoconv"
	"github.com/ValveSoftware/vogl-sub002/core/fault"
	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/proto"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// ErrVersion is returned when decoding a document of another version.
	ErrVersion = fault.Const("Unsupported snapshot version")
	// ErrEmpty is returned when decoding an empty document.
	ErrEmpty = fault.Const("Empty snapshot document")
)

func init() {
	protoconv.Register(
		func(ctx context.Context, s *Snapshot) (*structpb.Struct, error) {
			return protoconv.ToStruct(s)
		},
		func(ctx context.Context, msg *structpb.Struct) (*Snapshot, error) {
			s := &Snapshot{}
			if err := protoconv.FromStruct(msg, s); err != nil {
				return nil, err
			}
			if s.Version != Version {
				return nil, errors.Wrapf(ErrVersion, "got %d, expected %d", s.Version, Version)
			}
			return s, nil
		},
	)
}

// ToProto converts s to its document tree.
func ToProto(ctx context.Context, s *Snapshot) (*structpb.Struct, error) {
	msg, err := protoconv.ToProto(ctx, s)
	if err != nil {
		return nil, err
	}
	return msg.(*structpb.Struct), nil
}

// FromProto converts a document tree to a snapshot.
func FromProto(ctx context.Context, msg *structpb.Struct) (*Snapshot, error) {
	if msg == nil || len(msg.Fields) == 0 {
		return nil, ErrEmpty
	}
	obj, err := protoconv.ToObject(ctx, msg)
	if err != nil {
		return nil, err
	}
	return obj.(*Snapshot), nil
}

// Marshal returns the binary encoding of s. The encoding is deterministic,
// equal snapshots produce equal bytes.
func Marshal(ctx context.Context, s *Snapshot) ([]byte, error) {
	msg, err := ToProto(ctx, s)
	if err != nil {
		return nil, err
	}
	buf := proto.NewBuffer(nil)
	buf.SetDeterministic(true)
	if err := buf.Marshal(msg); err != nil {
		return nil, errors.Wrap(err, "Encoding snapshot")
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a snapshot written by Marshal.
func Unmarshal(ctx context.Context, data []byte) (*Snapshot, error) {
	msg := &structpb.Struct{}
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, errors.Wrap(err, "Decoding snapshot")
	}
	return FromProto(ctx, msg)
}

// MarshalText returns the human readable JSON encoding of s.
func MarshalText(ctx context.Context, s *Snapshot) ([]byte, error) {
	msg, err := ToProto(ctx, s)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	m := jsonpb.Marshaler{Indent: "  ", OrigName: true}
	if err := m.Marshal(buf, msg); err != nil {
		return nil, errors.Wrap(err, "Encoding snapshot JSON")
	}
	return buf.Bytes(), nil
}

// UnmarshalText decodes a snapshot written by MarshalText.
func UnmarshalText(ctx context.Context, data []byte) (*Snapshot, error) {
	msg := &structpb.Struct{}
	if err := jsonpb.Unmarshal(bytes.NewReader(data), msg); err != nil {
		return nil, errors.Wrap(err, "Decoding snapshot JSON")
	}
	return FromProto(ctx, msg)
}
