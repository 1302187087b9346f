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

package trace

import (
	"context"
	"io"

	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/pkg/errors"
)

// Source produces packets in trace order. Next returns io.EOF once the
// trace is exhausted.
type Source interface {
	Next(ctx context.Context) (*Packet, error)
}

// FrameSource is a Source that can reposition itself at frame boundaries.
type FrameSource interface {
	Source
	// Frame returns the index of the frame the next packet belongs to.
	Frame() int
	// SeekToFrame positions the source at the first packet of frame.
	SeekToFrame(ctx context.Context, frame int) error
	// ReadFrames reads the packets of the next count frames.
	ReadFrames(ctx context.Context, count int) ([]*Packet, error)
}

// MemorySource is a FrameSource over a packet list. Packets are cloned as
// they are read, so the list can be replayed more than once.
type MemorySource struct {
	Packets []*Packet
	pos     int
	frame   int
}

// NewMemorySource returns a source reading packets.
func NewMemorySource(packets ...*Packet) *MemorySource {
	return &MemorySource{Packets: packets}
}

// Next implements Source.
func (s *MemorySource) Next(ctx context.Context) (*Packet, error) {
	if s.pos >= len(s.Packets) {
		return nil, io.EOF
	}
	p := s.Packets[s.pos].Clone()
	s.pos++
	if d := p.Describe(); d != nil && d.Flags.Has(gl.FlagSwap) {
		s.frame++
	}
	return p, nil
}

// Frame implements FrameSource.
func (s *MemorySource) Frame() int { return s.frame }

// SeekToFrame implements FrameSource.
func (s *MemorySource) SeekToFrame(ctx context.Context, frame int) error {
	if frame < 0 {
		return errors.Errorf("Frame %d out of range", frame)
	}
	pos, f := 0, 0
	for ; pos < len(s.Packets) && f < frame; pos++ {
		if d := s.Packets[pos].Describe(); d != nil && d.Flags.Has(gl.FlagSwap) {
			f++
		}
	}
	if f < frame {
		return errors.Errorf("Frame %d out of range [0, %d]", frame, f)
	}
	s.pos, s.frame = pos, frame
	return nil
}

// ReadFrames implements FrameSource.
func (s *MemorySource) ReadFrames(ctx context.Context, count int) ([]*Packet, error) {
	return readFrames(ctx, s, count)
}

// ReadAll drains s.
func ReadAll(ctx context.Context, s Source) ([]*Packet, error) {
	out := []*Packet{}
	for {
		p, err := s.Next(ctx)
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
}
