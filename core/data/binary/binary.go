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

// Package binary declares the value-level reader and writer interfaces used
// by the trace stream codec.
package binary

import "io"

// Reader decodes values from a stream.
//
// After the first error every method returns the zero value and Error
// returns that error, so a sequence of reads can be checked once at the end.
type Reader interface {
	io.Reader
	// Data fills p from the stream.
	Data(p []byte)
	Bool() bool
	Uint8() uint8
	Uint16() uint16
	Int32() int32
	Uint32() uint32
	Int64() int64
	Uint64() uint64
	Float32() float32
	Float64() float64
	// String decodes a uint32 length followed by that many bytes.
	String() string
	// Bytes decodes a uint32 length followed by that many bytes.
	Bytes() []byte
	Error() error
	SetError(error)
}

// Writer encodes values to a stream. Errors are sticky as for Reader.
type Writer interface {
	Data([]byte)
	Bool(bool)
	Uint8(uint8)
	Uint16(uint16)
	Int32(int32)
	Uint32(uint32)
	Int64(int64)
	Uint64(uint64)
	Float32(float32)
	Float64(float64)
	String(string)
	Bytes([]byte)
	Error() error
	SetError(error)
}

// MaxBytes bounds the length prefix accepted by Reader.Bytes and
// Reader.String implementations, so a corrupt stream can not request an
// arbitrarily large allocation.
const MaxBytes = 1 << 30
