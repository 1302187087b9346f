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

// Package gl describes the OpenGL API surface the replayer drives: enums,
// handle namespaces, the entrypoint descriptor table, argument values and
// the backend interfaces through which the live driver is reached.
package gl

import "fmt"

var enumsByValue = func() map[Enum]string {
	m := make(map[Enum]string, len(enumNames))
	for _, e := range enumNames {
		if _, dup := m[e.value]; !dup {
			m[e.value] = e.name
		}
	}
	return m
}()

func (e Enum) String() string {
	if n, ok := enumsByValue[e]; ok {
		return n
	}
	return fmt.Sprintf("GL_ENUM_%#x", uint32(e))
}

// IsShaderType returns true for the shader stage enumerants that tag
// shaders in the generic object namespace.
func (e Enum) IsShaderType() bool {
	switch e {
	case VERTEX_SHADER, FRAGMENT_SHADER, GEOMETRY_SHADER, COMPUTE_SHADER:
		return true
	}
	return false
}

// TextureBinding returns the binding query for a texture target.
func TextureBinding(target Enum) (Enum, bool) {
	switch target {
	case TEXTURE_1D:
		return TEXTURE_BINDING_1D, true
	case TEXTURE_2D:
		return TEXTURE_BINDING_2D, true
	case TEXTURE_3D:
		return TEXTURE_BINDING_3D, true
	case TEXTURE_CUBE_MAP:
		return TEXTURE_BINDING_CUBE_MAP, true
	}
	return NONE, false
}

// BufferBinding returns the binding query for a buffer target.
func BufferBinding(target Enum) (Enum, bool) {
	switch target {
	case ARRAY_BUFFER:
		return ARRAY_BUFFER_BINDING, true
	case ELEMENT_ARRAY_BUFFER:
		return ELEMENT_ARRAY_BUFFER_BINDING, true
	case PIXEL_PACK_BUFFER:
		return PIXEL_PACK_BUFFER_BINDING, true
	case PIXEL_UNPACK_BUFFER:
		return PIXEL_UNPACK_BUFFER_BINDING, true
	case UNIFORM_BUFFER:
		return UNIFORM_BUFFER_BINDING, true
	}
	return NONE, false
}

// TextureTargets lists the texture targets whose bindings are tracked per
// texture unit.
var TextureTargets = []Enum{TEXTURE_1D, TEXTURE_2D, TEXTURE_3D, TEXTURE_CUBE_MAP}

// BufferTargets lists the buffer targets whose bindings are tracked.
var BufferTargets = []Enum{ARRAY_BUFFER, PIXEL_PACK_BUFFER, PIXEL_UNPACK_BUFFER, UNIFORM_BUFFER}

// BindingNamespaces maps the glGet binding queries whose results are object
// handles to the namespace of the handle.
var BindingNamespaces = map[Enum]Namespace{
	TEXTURE_BINDING_1D:           Textures,
	TEXTURE_BINDING_2D:           Textures,
	TEXTURE_BINDING_3D:           Textures,
	TEXTURE_BINDING_CUBE_MAP:     Textures,
	ARRAY_BUFFER_BINDING:         Buffers,
	ELEMENT_ARRAY_BUFFER_BINDING: Buffers,
	PIXEL_PACK_BUFFER_BINDING:    Buffers,
	PIXEL_UNPACK_BUFFER_BINDING:  Buffers,
	UNIFORM_BUFFER_BINDING:       Buffers,
	FRAMEBUFFER_BINDING:          Framebuffers,
	READ_FRAMEBUFFER_BINDING:     Framebuffers,
	RENDERBUFFER_BINDING:         Renderbuffers,
	VERTEX_ARRAY_BINDING:         VertexArrays,
	CURRENT_PROGRAM:              Programs,
	SAMPLER_BINDING:              Samplers,
	PROGRAM_PIPELINE_BINDING:     Pipelines,
	PROGRAM_BINDING_ARB:          ProgramsARB,
	LIST_INDEX:                   Lists,
}

// UniformSize returns the byte size of one element of a uniform type.
func UniformSize(t Enum) int {
	switch t {
	case FLOAT, INT, BOOL, SAMPLER_2D:
		return 4
	case FLOAT_VEC2, INT_VEC2:
		return 8
	case FLOAT_VEC3, INT_VEC3:
		return 12
	case FLOAT_VEC4, INT_VEC4:
		return 16
	case FLOAT_MAT3:
		return 36
	case FLOAT_MAT4:
		return 64
	}
	return 0
}

// IsIntUniform returns true for uniform types set through the integer
// entrypoints.
func IsIntUniform(t Enum) bool {
	switch t {
	case INT, INT_VEC2, INT_VEC3, INT_VEC4, BOOL, SAMPLER_2D:
		return true
	}
	return false
}

// StorageFormat returns the client format and type that transfer the
// pixels of an image with the given internal format without conversion.
func StorageFormat(internal Enum) (format, typ Enum) {
	switch internal {
	case RGB8, RGB:
		return RGB, UNSIGNED_BYTE
	case DEPTH_COMPONENT24, DEPTH_COMPONENT:
		return DEPTH_COMPONENT, UNSIGNED_INT
	case DEPTH24_STENCIL8, DEPTH_STENCIL:
		return DEPTH_STENCIL, UNSIGNED_INT
	}
	return RGBA, UNSIGNED_BYTE
}
