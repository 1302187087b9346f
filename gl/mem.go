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

import (
	"encoding/binary"
	"math"
)

// Client memory blobs are little-endian, as recorded on the capture host.

// U32s decodes b as a list of uint32.
func U32s(b []byte) []uint32 {
	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return out
}

// I32s decodes b as a list of int32.
func I32s(b []byte) []int32 {
	out := make([]int32, len(b)/4)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}

// F32s decodes b as a list of float32.
func F32s(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}

// U64s decodes b as a list of uint64.
func U64s(b []byte) []uint64 {
	out := make([]uint64, len(b)/8)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return out
}

// PutU32s encodes v as client memory.
func PutU32s(v ...uint32) []byte {
	out := make([]byte, len(v)*4)
	for i, x := range v {
		binary.LittleEndian.PutUint32(out[i*4:], x)
	}
	return out
}

// PutI32s encodes v as client memory.
func PutI32s(v ...int32) []byte {
	out := make([]byte, len(v)*4)
	for i, x := range v {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(x))
	}
	return out
}

// PutF32s encodes v as client memory.
func PutF32s(v ...float32) []byte {
	out := make([]byte, len(v)*4)
	for i, x := range v {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(x))
	}
	return out
}

// PutU64s encodes v as client memory.
func PutU64s(v ...uint64) []byte {
	out := make([]byte, len(v)*8)
	for i, x := range v {
		binary.LittleEndian.PutUint64(out[i*8:], x)
	}
	return out
}

// TypeSize returns the size in bytes of a GL component type.
func TypeSize(t Enum) int {
	switch t {
	case BYTE, UNSIGNED_BYTE:
		return 1
	case SHORT, UNSIGNED_SHORT:
		return 2
	case INT, UNSIGNED_INT, FLOAT:
		return 4
	case DOUBLE:
		return 8
	}
	return 0
}

// FormatComponents returns the number of components of a pixel format.
func FormatComponents(f Enum) int {
	switch f {
	case RED, DEPTH_COMPONENT:
		return 1
	case DEPTH_STENCIL:
		return 1
	case RGB:
		return 3
	case RGBA:
		return 4
	}
	return 4
}

// ImageSize returns the byte size of a width by height by depth image.
// Rows are padded to alignment.
func ImageSize(width, height, depth int, format, typ Enum, alignment int) int {
	pixel := FormatComponents(format) * TypeSize(typ)
	if format == DEPTH_STENCIL {
		pixel = 4
	}
	row := width * pixel
	if alignment > 1 {
		row = (row + alignment - 1) / alignment * alignment
	}
	if depth < 1 {
		depth = 1
	}
	return row * height * depth
}
