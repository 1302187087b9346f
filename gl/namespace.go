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

package gl

// Namespace partitions the handle space. Every handle argument belongs to
// exactly one namespace.
type Namespace int

const (
	InvalidNamespace Namespace = iota - 1
	Framebuffers
	Textures
	Renderbuffers
	Queries
	Samplers
	ProgramsARB
	Programs
	Shaders
	VertexArrays
	Lists
	Locations
	Syncs
	Pipelines
	Buffers
	Contexts

	NamespaceCount = iota - 1
)

var namespaceNames = [NamespaceCount]string{
	Framebuffers:  "framebuffers",
	Textures:      "textures",
	Renderbuffers: "renderbuffers",
	Queries:       "queries",
	Samplers:      "samplers",
	ProgramsARB:   "arb_programs",
	Programs:      "programs",
	Shaders:       "shaders",
	VertexArrays:  "vertex_arrays",
	Lists:         "lists",
	Locations:     "locations",
	Syncs:         "syncs",
	Pipelines:     "pipelines",
	Buffers:       "buffers",
	Contexts:      "contexts",
}

func (n Namespace) String() string {
	if n < 0 || n >= NamespaceCount {
		return "invalid"
	}
	return namespaceNames[n]
}

// IsValid returns true for the namespaces that hold handles.
func (n Namespace) IsValid() bool { return n >= 0 && n < NamespaceCount }

// Shared returns true if objects of the namespace belong to the share-group
// rather than to a single context. Framebuffers and vertex arrays are
// container objects and are never shared. Locations are keyed by program and
// follow the program's share-group.
func (n Namespace) Shared() bool {
	switch n {
	case Framebuffers, VertexArrays, Contexts:
		return false
	}
	return n.IsValid()
}

// IsGenericObject returns true for the namespaces that alias the single
// shader and program handle space.
func (n Namespace) IsGenericObject() bool { return n == Programs || n == Shaders }

// ObjectType returns the GL object-type enum used to tag entries of the
// namespace, or NONE.
func (n Namespace) ObjectType() Enum {
	switch n {
	case Buffers:
		return BUFFER
	case Programs:
		return PROGRAM
	case Shaders:
		return SHADER
	case Queries:
		return QUERY
	case Pipelines:
		return PROGRAM_PIPELINE
	case Samplers:
		return SAMPLER
	case Lists:
		return DISPLAY_LIST
	case Textures:
		return TEXTURE
	case Renderbuffers:
		return RENDERBUFFER
	case Framebuffers:
		return FRAMEBUFFER
	case VertexArrays:
		return VERTEX_ARRAY
	case Syncs:
		return SYNC_FENCE
	}
	return NONE
}
