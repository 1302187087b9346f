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

package protoconv_test

import (
	"context"
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/data/protoconv"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"google.golang.org/protobuf/types/known/structpb"
)

type leaf struct {
	Name  string
	Value float32
}

type doc struct {
	ID          uint64
	Offset      int64
	Size        int32
	Enum        uint32
	Ratio       float64
	Enabled     bool
	Data        []byte
	Empty       []byte
	Missing     []byte
	Leaves      []*leaf
	ByKey       map[uint32][]float32
	Named       map[string]bool
	Child       *leaf
	NilChild    *leaf
	ARBBindings map[uint32]uint64
}

type withPrivate struct {
	Public  int32
	private int32
}

func TestStructRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	in := &doc{
		ID:          0xfedcba9876543210,
		Offset:      -42,
		Size:        7,
		Enum:        0x0de1,
		Ratio:       0.25,
		Enabled:     true,
		Data:        []byte{1, 2, 3, 0xff},
		Empty:       []byte{},
		Leaves:      []*leaf{{"a", 1}, {"b", 2.5}},
		ByKey:       map[uint32][]float32{0x0b21: {1, 2}, 7: {}},
		Named:       map[string]bool{"x": true},
		Child:       &leaf{"c", -1},
		ARBBindings: map[uint32]uint64{0x8620: 1 << 40},
	}
	s, err := protoconv.ToStruct(in)
	assert.For(ctx, "ToStruct").ThatError(err).Succeeded()
	assert.For(ctx, "id field").That(s.Fields["id"].GetStringValue()).Equals("18364758544493064720")
	assert.For(ctx, "size field").That(s.Fields["size"].GetNumberValue()).Equals(7.0)
	assert.For(ctx, "snake case").That(s.Fields["arb_bindings"]).IsNotNil()
	_, isNull := s.Fields["nil_child"].GetKind().(*structpb.Value_NullValue)
	assert.For(ctx, "nil child").ThatBoolean(isNull).IsTrue()

	out := &doc{}
	err = protoconv.FromStruct(s, out)
	assert.For(ctx, "FromStruct").ThatError(err).Succeeded()
	assert.For(ctx, "round trip").That(out).DeepEquals(in)
}

func TestStructSkipsUnexported(t *testing.T) {
	ctx := log.Testing(t)
	s, err := protoconv.ToStruct(withPrivate{Public: 1, private: 2})
	assert.For(ctx, "ToStruct").ThatError(err).Succeeded()
	assert.For(ctx, "fields").ThatInteger(len(s.Fields)).Equals(1)
}

func TestFieldName(t *testing.T) {
	ctx := log.Testing(t)
	for name, expect := range map[string]string{
		"Handle":          "handle",
		"WindowWidth":     "window_width",
		"ARBEnv":          "arb_env",
		"InternalFormat":  "internal_format",
		"AtFrameBoundary": "at_frame_boundary",
		"Matrix4":         "matrix4",
	} {
		assert.For(ctx, name).ThatString(protoconv.FieldName(name)).Equals(expect)
	}
}

func TestFromStructTypeMismatch(t *testing.T) {
	ctx := log.Testing(t)
	s := &structpb.Struct{Fields: map[string]*structpb.Value{
		"enabled": structpb.NewStringValue("yes"),
	}}
	err := protoconv.FromStruct(s, &doc{})
	assert.For(ctx, "err").ThatError(err).Failed()
	err = protoconv.FromStruct(s, doc{})
	assert.For(ctx, "non pointer").ThatError(err).Failed()
}

func TestRegisteredConverters(t *testing.T) {
	ctx := log.Testing(t)
	protoconv.Register(
		func(ctx context.Context, l *leaf) (*structpb.Struct, error) { return protoconv.ToStruct(l) },
		func(ctx context.Context, s *structpb.Struct) (*leaf, error) {
			l := &leaf{}
			return l, protoconv.FromStruct(s, l)
		},
	)
	msg, err := protoconv.ToProto(ctx, &leaf{"z", 3})
	assert.For(ctx, "ToProto").ThatError(err).Succeeded()
	obj, err := protoconv.ToObject(ctx, msg)
	assert.For(ctx, "ToObject").ThatError(err).Succeeded()
	assert.For(ctx, "object").That(obj).DeepEquals(&leaf{"z", 3})

	_, err = protoconv.ToProto(ctx, 12)
	assert.For(ctx, "unregistered").That(err).Equals(protoconv.ErrNoConverterRegistered{Object: 12})
}
