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

package endian_test

import (
	"bytes"
	eb "encoding/binary"
	"io"
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/data/endian"
	"github.com/ValveSoftware/vogl-sub002/core/log"
)

func TestLittleEndianLayout(t *testing.T) {
	ctx := log.Testing(t)
	buf := &bytes.Buffer{}
	w := endian.Writer(buf, eb.LittleEndian)
	w.Uint32(0xD1C71602)
	w.Uint16(0x0106)
	w.Bool(true)
	assert.For(ctx, "err").ThatError(w.Error()).Succeeded()
	assert.For(ctx, "bytes").ThatSlice(buf.Bytes()).Equals([]byte{0x02, 0x16, 0xC7, 0xD1, 0x06, 0x01, 0x01})
}

func TestRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	buf := &bytes.Buffer{}
	w := endian.Writer(buf, eb.BigEndian)
	w.Int32(-5)
	w.Uint64(1 << 40)
	w.Float32(0.5)
	w.Float64(-2.25)
	w.String("glBindTexture")
	w.Bytes([]byte{1, 2, 3})

	r := endian.Reader(buf, eb.BigEndian)
	assert.For(ctx, "int32").ThatInteger(int(r.Int32())).Equals(-5)
	assert.For(ctx, "uint64").That(r.Uint64()).Equals(uint64(1 << 40))
	assert.For(ctx, "float32").That(r.Float32()).Equals(float32(0.5))
	assert.For(ctx, "float64").That(r.Float64()).Equals(-2.25)
	assert.For(ctx, "string").ThatString(r.String()).Equals("glBindTexture")
	assert.For(ctx, "bytes").ThatSlice(r.Bytes()).Equals([]byte{1, 2, 3})
	assert.For(ctx, "err").ThatError(r.Error()).Succeeded()
}

func TestStickyError(t *testing.T) {
	ctx := log.Testing(t)
	r := endian.Reader(bytes.NewReader([]byte{1, 2}), eb.LittleEndian)
	assert.For(ctx, "short read").That(r.Uint32()).Equals(uint32(0))
	assert.For(ctx, "after error").That(r.Uint8()).Equals(uint8(0))
	assert.For(ctx, "err").ThatError(r.Error()).Equals(io.ErrUnexpectedEOF)
}
