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

// Package endian implements binary.Reader and binary.Writer for a fixed byte
// order.
package endian

import (
	eb "encoding/binary"
	"io"
	"math"

	"github.com/ValveSoftware/vogl-sub002/core/data/binary"
	"github.com/pkg/errors"
)

// Reader returns a binary.Reader that reads from r in the given byte order.
func Reader(r io.Reader, order eb.ByteOrder) binary.Reader {
	return &reader{r: r, order: order}
}

// Writer returns a binary.Writer that writes to w in the given byte order.
func Writer(w io.Writer, order eb.ByteOrder) binary.Writer {
	return &writer{w: w, order: order}
}

type reader struct {
	r     io.Reader
	order eb.ByteOrder
	tmp   [8]byte
	err   error
}

func (r *reader) Read(p []byte) (int, error) { return r.r.Read(p) }

func (r *reader) fill(n int) []byte {
	b := r.tmp[:n]
	if r.err == nil {
		_, r.err = io.ReadFull(r.r, b)
	}
	if r.err != nil {
		for i := range b {
			b[i] = 0
		}
	}
	return b
}

func (r *reader) Data(p []byte) {
	if r.err != nil {
		return
	}
	_, r.err = io.ReadFull(r.r, p)
}

func (r *reader) Bool() bool       { return r.Uint8() != 0 }
func (r *reader) Uint8() uint8     { return r.fill(1)[0] }
func (r *reader) Uint16() uint16   { return r.order.Uint16(r.fill(2)) }
func (r *reader) Int32() int32     { return int32(r.Uint32()) }
func (r *reader) Uint32() uint32   { return r.order.Uint32(r.fill(4)) }
func (r *reader) Int64() int64     { return int64(r.Uint64()) }
func (r *reader) Uint64() uint64   { return r.order.Uint64(r.fill(8)) }
func (r *reader) Float32() float32 { return math.Float32frombits(r.Uint32()) }
func (r *reader) Float64() float64 { return math.Float64frombits(r.Uint64()) }
func (r *reader) String() string   { return string(r.Bytes()) }

func (r *reader) Bytes() []byte {
	n := r.Uint32()
	if r.err != nil {
		return nil
	}
	if n > binary.MaxBytes {
		r.err = errors.Errorf("Length prefix %d exceeds limit", n)
		return nil
	}
	out := make([]byte, n)
	r.Data(out)
	if r.err != nil {
		return nil
	}
	return out
}

func (r *reader) Error() error { return r.err }

func (r *reader) SetError(err error) {
	if r.err == nil {
		r.err = err
	}
}

type writer struct {
	w     io.Writer
	order eb.ByteOrder
	tmp   [8]byte
	err   error
}

func (w *writer) Data(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.w.Write(p)
	switch {
	case err != nil:
		w.err = err
	case n != len(p):
		w.err = io.ErrShortWrite
	}
}

func (w *writer) Bool(v bool) {
	if v {
		w.Uint8(1)
	} else {
		w.Uint8(0)
	}
}

func (w *writer) Uint8(v uint8) {
	w.tmp[0] = v
	w.Data(w.tmp[:1])
}

func (w *writer) Uint16(v uint16) {
	w.order.PutUint16(w.tmp[:], v)
	w.Data(w.tmp[:2])
}

func (w *writer) Int32(v int32) { w.Uint32(uint32(v)) }

func (w *writer) Uint32(v uint32) {
	w.order.PutUint32(w.tmp[:], v)
	w.Data(w.tmp[:4])
}

func (w *writer) Int64(v int64) { w.Uint64(uint64(v)) }

func (w *writer) Uint64(v uint64) {
	w.order.PutUint64(w.tmp[:], v)
	w.Data(w.tmp[:8])
}

func (w *writer) Float32(v float32) { w.Uint32(math.Float32bits(v)) }
func (w *writer) Float64(v float64) { w.Uint64(math.Float64bits(v)) }
func (w *writer) String(v string)   { w.Bytes([]byte(v)) }

func (w *writer) Bytes(v []byte) {
	w.Uint32(uint32(len(v)))
	w.Data(v)
}

func (w *writer) Error() error { return w.err }

func (w *writer) SetError(err error) {
	if w.err == nil {
		w.err = err
	}
}
