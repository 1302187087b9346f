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

package snapshot_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/ValveSoftware/vogl-sub002/replay/snapshot"
	"github.com/pkg/errors"
)

func sample() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Version:         snapshot.Version,
		WindowWidth:     64,
		WindowHeight:    32,
		CurrentContext:  0x7f0000001000,
		Frame:           3,
		Call:            1234,
		AtFrameBoundary: true,
		Restorable:      true,
		Backbuffer:      []byte{1, 2, 3, 4},
		Contexts: []*snapshot.Context{
			{
				Handle:           0x7f0000001000,
				CreatedBy:        "glXCreateContext",
				MadeCurrent:      true,
				ClientArraySizes: map[uint32]uint32{0: 256},
				General: &snapshot.General{
					Caps:     map[gl.Enum]bool{gl.DEPTH_TEST: true, gl.BLEND: false},
					Values:   map[gl.Enum][]float32{gl.COLOR_CLEAR_VALUE: {0.25, 0.5, 0.75, 1}},
					Buffers:  map[gl.Enum]uint64{gl.ARRAY_BUFFER: 5},
					Program:  9,
					Matrices: map[gl.Enum][]float32{gl.MODELVIEW: make([]float32, 16)},
					TextureUnits: []*snapshot.TextureUnit{
						{Unit: 0, Bindings: map[gl.Enum]uint64{gl.TEXTURE_2D: 7}},
					},
				},
				Framebuffers: []*snapshot.Framebuffer{
					{Handle: 2, Attachments: []*snapshot.Attachment{
						{Point: gl.COLOR_ATTACHMENT0, Type: gl.TEXTURE, Handle: 7, Face: gl.TEXTURE_2D},
					}},
				},
				Shared: &snapshot.Shared{
					Buffers: []*snapshot.Buffer{{Handle: 5, Target: gl.ARRAY_BUFFER, Usage: gl.STATIC_DRAW, Data: []byte{9, 8, 7}}},
					Textures: []*snapshot.Texture{{
						Handle: 7,
						Target: gl.TEXTURE_2D,
						Params: map[gl.Enum][]float32{gl.TEXTURE_MIN_FILTER: {float32(gl.NEAREST)}},
						Levels: []*snapshot.TextureLevel{{Face: gl.TEXTURE_2D, Width: 1, Height: 1, Depth: 1, Format: gl.RGBA, Type: gl.UNSIGNED_BYTE, Pixels: []byte{1, 1, 1, 1}}},
					}},
					Programs: []*snapshot.Program{{
						Handle: 9, Linked: true,
						Stages:   []*snapshot.Stage{{Type: gl.VERTEX_SHADER, Source: "void main() {}"}},
						Uniforms: []*snapshot.Uniform{{Name: "u", Type: gl.FLOAT_VEC4, Size: 1, Locations: []int32{3}, Data: make([]byte, 16)}},
					}},
					Lists:  []*snapshot.List{{Handle: 1, Packets: [][]byte{{1, 2}, {3}}}},
					Mapped: []*snapshot.MappedBuffer{{Buffer: 5, Target: gl.ARRAY_BUFFER, Offset: 1, Length: 2, Access: gl.READ_WRITE}},
				},
			},
			{Handle: 0x7f0000002000, Share: 0x7f0000001000, CreatedBy: "glXCreateContextAttribsARB", Attribs: []int32{1, 2, 0}},
		},
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	s := sample()
	data, err := snapshot.Marshal(ctx, s)
	assert.For(ctx, "Marshal").ThatError(err).Succeeded()
	again, err := snapshot.Marshal(ctx, s)
	assert.For(ctx, "Marshal again").ThatError(err).Succeeded()
	assert.For(ctx, "deterministic").ThatBoolean(bytes.Equal(data, again)).IsTrue()

	got, err := snapshot.Unmarshal(ctx, data)
	assert.For(ctx, "Unmarshal").ThatError(err).Succeeded()
	assert.For(ctx, "snapshot").That(got).DeepEquals(s)
}

func TestTextRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	s := sample()
	text, err := snapshot.MarshalText(ctx, s)
	assert.For(ctx, "MarshalText").ThatError(err).Succeeded()
	assert.For(ctx, "json").ThatString(string(text)).Contains(`"window_width": 64`)
	assert.For(ctx, "64 bit").ThatString(string(text)).Contains(`"current_context": "139637976731648"`)

	got, err := snapshot.UnmarshalText(ctx, text)
	assert.For(ctx, "UnmarshalText").ThatError(err).Succeeded()
	assert.For(ctx, "snapshot").That(got).DeepEquals(s)
}

func TestVersionMismatch(t *testing.T) {
	ctx := log.Testing(t)
	s := sample()
	s.Version = snapshot.Version + 1
	text, err := snapshot.MarshalText(ctx, s)
	assert.For(ctx, "MarshalText").ThatError(err).Succeeded()
	_, err = snapshot.UnmarshalText(ctx, text)
	assert.For(ctx, "version").ThatBoolean(errors.Cause(err) == snapshot.ErrVersion).IsTrue()

	_, err = snapshot.UnmarshalText(ctx, []byte("{}"))
	assert.For(ctx, "empty").ThatError(err).Equals(snapshot.ErrEmpty)
	_, err = snapshot.UnmarshalText(ctx, []byte(strings.Repeat("{", 3)))
	assert.For(ctx, "malformed").ThatError(err).Failed()
}

func TestRoot(t *testing.T) {
	ctx := log.Testing(t)
	s := sample()
	shared := s.Contexts[1]
	assert.For(ctx, "root").That(s.Root(shared)).Equals(s.Contexts[0])
	assert.For(ctx, "root of root").That(s.Root(s.Contexts[0])).Equals(s.Contexts[0])
	assert.For(ctx, "missing").That(s.Context(42)).IsNil()
	assert.For(ctx, "count").ThatInteger(s.Contexts[0].Shared.Count(gl.Textures)).Equals(1)
	assert.For(ctx, "nil count").ThatInteger(shared.Shared.Count(gl.Textures)).Equals(0)
}

func TestCache(t *testing.T) {
	ctx := log.Testing(t)
	c := snapshot.NewCache(2)
	a, b, d := sample(), sample(), sample()
	c.Put(1, a)
	c.Put(5, b)
	_, ok := c.Get(1)
	assert.For(ctx, "get 1").ThatBoolean(ok).IsTrue()
	c.Put(9, d)
	assert.For(ctx, "len").ThatInteger(c.Len()).Equals(2)
	_, ok = c.Get(5)
	assert.For(ctx, "5 evicted").ThatBoolean(ok).IsFalse()

	got, frame, ok := c.Nearest(7)
	assert.For(ctx, "nearest ok").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "nearest frame").That(frame).Equals(int64(1))
	assert.For(ctx, "nearest").That(got).Equals(a)
	_, _, ok = c.Nearest(0)
	assert.For(ctx, "none before").ThatBoolean(ok).IsFalse()

	c.Put(11, sample())
	_, ok = c.Get(9)
	assert.For(ctx, "9 evicted after nearest used 1").ThatBoolean(ok).IsFalse()
	_, ok = c.Get(1)
	assert.For(ctx, "1 kept").ThatBoolean(ok).IsTrue()

	c.Clear()
	assert.For(ctx, "cleared").ThatInteger(c.Len()).Equals(0)
}
