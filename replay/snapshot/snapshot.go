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

// Package snapshot holds the serializable form of a complete GL state
// capture: every context, every live object of every namespace and the
// default framebuffer contents. All object handles are trace-domain
// handles.
package snapshot

import (
	"github.com/ValveSoftware/vogl-sub002/gl"
)

// Version is the document version written by this package.
const Version = 1

// Snapshot is a point in time capture of the whole API state.
type Snapshot struct {
	Version      int32
	WindowWidth  int32
	WindowHeight int32
	// CurrentContext is the trace handle of the context current at capture.
	CurrentContext uint64
	// Frame is the index of the frame being replayed at capture.
	Frame int64
	// Call is the call counter of the last processed packet.
	Call uint64
	// AtFrameBoundary is true when no packet of Frame has been processed.
	AtFrameBoundary bool
	// Restorable is false when a context was captured inside glBegin/glEnd.
	Restorable bool
	// Contexts are ordered share-group roots first.
	Contexts []*Context
	// Backbuffer is the RGBA8 contents of the default framebuffer.
	Backbuffer []byte
}

// Context is one trace context.
type Context struct {
	Handle uint64
	// Share is the trace handle of the share-group root, 0 for roots.
	Share uint64
	// CreatedBy is the name of the entrypoint that created the context.
	CreatedBy   string
	Attribs     []int32
	Direct      bool
	MadeCurrent bool
	InsideBegin bool
	// ClientArraySizes are the sizes of the client side vertex array
	// scratch buffers, by attribute index.
	ClientArraySizes map[uint32]uint32
	General          *General
	Framebuffers     []*Framebuffer
	VertexArrays     []*VertexArray
	// Shared is only set on share-group roots.
	Shared *Shared
}

// General is the non-object state of a context.
type General struct {
	Caps                map[gl.Enum]bool
	Values              map[gl.Enum][]float32
	MatrixMode          gl.Enum
	Matrices            map[gl.Enum][]float32
	Lights              []*ParamBlock
	Materials           []*ParamBlock
	TextureUnits        []*TextureUnit
	ActiveTexture       gl.Enum
	ClientActiveTexture gl.Enum
	// Buffers are the generic buffer bindings by target.
	Buffers         map[gl.Enum]uint64
	DrawFramebuffer uint64
	ReadFramebuffer uint64
	Renderbuffer    uint64
	VertexArray     uint64
	Program         uint64
	Pipeline        uint64
	ARBBindings     map[gl.Enum]uint64
	ARBEnv          []*ARBParam
	CurrentAttribs  map[uint32][]float32
	// DefaultVertexArray is the state of vertex array object 0.
	DefaultVertexArray *VertexArray
}

// ParamBlock is a set of float parameters of a light or material face.
type ParamBlock struct {
	Key    gl.Enum
	Params map[gl.Enum][]float32
}

// TextureUnit is the per unit binding and environment state.
type TextureUnit struct {
	Unit     uint32
	Bindings map[gl.Enum]uint64
	Sampler  uint64
	Env      map[gl.Enum][]float32
}

// ARBParam is one program environment or local parameter.
type ARBParam struct {
	Target gl.Enum
	Index  uint32
	Value  []float32
}

// Framebuffer is a framebuffer object and its attachments.
type Framebuffer struct {
	Handle      uint64
	Attachments []*Attachment
}

// Attachment is one framebuffer attachment point.
type Attachment struct {
	Point gl.Enum
	// Type is TEXTURE or RENDERBUFFER.
	Type   gl.Enum
	Handle uint64
	Level  int32
	Layer  int32
	Face   gl.Enum
}

// VertexArray is a vertex array object.
type VertexArray struct {
	Handle        uint64
	ElementBuffer uint64
	Attribs       []*VertexAttrib
	// Fixed are the fixed-function arrays keyed by their array enum.
	Fixed []*VertexAttrib
}

// VertexAttrib is one generic or fixed-function array.
type VertexAttrib struct {
	Index      uint32
	Enabled    bool
	Size       int32
	Type       gl.Enum
	Normalized bool
	Integer    bool
	Stride     int32
	Buffer     uint64
	Offset     uint64
	Divisor    uint32
}

// Shared is the state owned by a share-group.
type Shared struct {
	Buffers       []*Buffer
	Samplers      []*Sampler
	Queries       []*Query
	Renderbuffers []*Renderbuffer
	Textures      []*Texture
	Shaders       []*Shader
	Programs      []*Program
	Syncs         []*Sync
	ARBPrograms   []*ARBProgram
	Pipelines     []*Pipeline
	Lists         []*List
	// Mapped are the buffer regions mapped at capture.
	Mapped []*MappedBuffer
}

// Buffer is a buffer object.
type Buffer struct {
	Handle uint64
	// Target is the first target the buffer was bound to.
	Target gl.Enum
	Usage  gl.Enum
	// Data is nil for buffers without a data store.
	Data []byte
}

// MappedBuffer is a mapped region of a buffer.
type MappedBuffer struct {
	Buffer uint64
	Target gl.Enum
	Offset int64
	Length int64
	Access gl.Enum
	Flags  uint32
	// Range is true for regions mapped with glMapBufferRange.
	Range bool
}

// Sampler is a sampler object.
type Sampler struct {
	Handle uint64
	Params map[gl.Enum][]float32
}

// Query is a query object.
type Query struct {
	Handle uint64
	Target gl.Enum
	Result int64
}

// Renderbuffer is a renderbuffer object and its contents.
type Renderbuffer struct {
	Handle         uint64
	InternalFormat gl.Enum
	Width          int32
	Height         int32
	Samples        int32
	// Pixels is the RGBA8 contents, resolved for multisample storage.
	Pixels []byte
}

// Texture is a texture object.
type Texture struct {
	Handle    uint64
	Target    gl.Enum
	Immutable bool
	// StorageLevels is the level count of immutable storage.
	StorageLevels int32
	Params        map[gl.Enum][]float32
	Levels        []*TextureLevel
}

// TextureLevel is one face and mip level of a texture.
type TextureLevel struct {
	Face           gl.Enum
	Level          int32
	Width          int32
	Height         int32
	Depth          int32
	InternalFormat int32
	Format         gl.Enum
	Type           gl.Enum
	// Pixels is nil when the image could not be read back.
	Pixels []byte
}

// Shader is a shader object.
type Shader struct {
	Handle        uint64
	Type          gl.Enum
	Source        string
	Compiled      bool
	PendingDelete bool
}

// Program is a GLSL program object.
type Program struct {
	Handle        uint64
	Separable     bool
	Linked        bool
	PendingDelete bool
	// Attached are the trace handles of the attached shaders.
	Attached []uint64
	// Stages are the shader sources the program was last linked with.
	Stages   []*Stage
	Uniforms []*Uniform
}

// Stage is one shader stage of a linked program.
type Stage struct {
	Type   gl.Enum
	Source string
}

// Uniform is an active uniform and its value.
type Uniform struct {
	Name string
	Type gl.Enum
	Size int32
	// Locations are the trace locations of each element.
	Locations []int32
	// Data is the value of every element, tightly packed.
	Data []byte
}

// Sync is a fence sync object.
type Sync struct {
	Handle    uint64
	Condition gl.Enum
	Flags     uint32
	Signaled  bool
}

// ARBProgram is an ARB assembly program.
type ARBProgram struct {
	Handle uint64
	Target gl.Enum
	Format gl.Enum
	Source string
	Locals []*ARBParam
}

// Pipeline is a program pipeline object.
type Pipeline struct {
	Handle uint64
	// Stages maps shader type to the trace program handle of the stage.
	Stages        map[gl.Enum]uint64
	ActiveProgram uint64
}

// List is a display list and the packets it was compiled from.
type List struct {
	Handle uint64
	// Packets are encoded with trace.EncodePacket.
	Packets [][]byte
}

// Context returns the context with trace handle h, or nil.
func (s *Snapshot) Context(h uint64) *Context {
	for _, c := range s.Contexts {
		if c.Handle == h {
			return c
		}
	}
	return nil
}

// Root returns the share-group root of c.
func (s *Snapshot) Root(c *Context) *Context {
	if c.Share == 0 {
		return c
	}
	if r := s.Context(c.Share); r != nil {
		return r
	}
	return c
}

// Count returns the number of objects in the share-group of s for ns.
func (s *Shared) Count(ns gl.Namespace) int {
	if s == nil {
		return 0
	}
	switch ns {
	case gl.Buffers:
		return len(s.Buffers)
	case gl.Samplers:
		return len(s.Samplers)
	case gl.Queries:
		return len(s.Queries)
	case gl.Renderbuffers:
		return len(s.Renderbuffers)
	case gl.Textures:
		return len(s.Textures)
	case gl.Shaders:
		return len(s.Shaders)
	case gl.Programs:
		return len(s.Programs)
	case gl.Syncs:
		return len(s.Syncs)
	case gl.ProgramsARB:
		return len(s.ARBPrograms)
	case gl.Pipelines:
		return len(s.Pipelines)
	case gl.Lists:
		return len(s.Lists)
	}
	return 0
}
