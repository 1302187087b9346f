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

package trace_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/data/id"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/core/os/file"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/ValveSoftware/vogl-sub002/trace"
)

const ctxHandle = 0xc0

func frames() []*trace.Packet {
	snap := trace.NewKeyValueCommand(ctxHandle, 3, trace.CommandStateSnapshot)
	snap.KVM.SetBlob(trace.StringKey(trace.KeyBinaryID), id.OfString("snapshot"))
	snap.KVM.SetInt(trace.IntKey(7), -3)
	snap.KVM.SetFloat(trace.StringKey("scale"), 0.5)
	snap.KVM.SetBytes(trace.StringKey("raw"), []byte{1, 2, 3})
	snap.KVM.SetBool(trace.StringKey("flag"), true)
	snap.KVM.SetUint(trace.StringKey(trace.KeyWinWidth), 640)
	return []*trace.Packet{
		trace.NewCall(gl.XMakeCurrent, ctxHandle, 1, gl.Ptr(0xd1), gl.Ptr(0xd2), gl.Uint(ctxHandle)),
		trace.NewCall(gl.GenTextures, ctxHandle, 2, gl.Int(1), gl.Mem(gl.PutU32s(7))),
		snap,
		trace.NewCall(gl.ClearColor, ctxHandle, 4, gl.Float(1), gl.Float(0), gl.Float(0.25), gl.Float(1)),
		trace.NewCall(gl.XSwapBuffers, ctxHandle, 5, gl.Ptr(0xd1), gl.Ptr(0xd2)),
		trace.NewCall(gl.BindTexture, ctxHandle, 6, gl.E(gl.TEXTURE_2D), gl.Uint(7)),
		trace.NewCall(gl.XSwapBuffers, ctxHandle, 7, gl.Ptr(0xd1), gl.Ptr(0xd2)),
		trace.NewCall(gl.BufferData, ctxHandle, 8, gl.E(gl.ARRAY_BUFFER), gl.Int(0), gl.Mem(nil), gl.E(gl.STATIC_DRAW)),
	}
}

func encode(ctx context.Context, packets []*trace.Packet) []byte {
	buf := &bytes.Buffer{}
	w, err := trace.NewWriter(buf, trace.Header{Description: "test"})
	assert.For(ctx, "NewWriter").ThatError(err).Succeeded()
	for _, p := range packets {
		assert.For(ctx, "Write %v", p).ThatError(w.Write(p)).Succeeded()
	}
	assert.For(ctx, "Close").ThatError(w.Close()).Succeeded()
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	ctx := log.Testing(t)
	in := frames()
	in[1].Return = gl.Void
	in[0].Return = gl.Uint(1)
	in[0].Thread = 42
	r, err := trace.NewReader(ctx, bytes.NewReader(encode(ctx, in)))
	assert.For(ctx, "NewReader").ThatError(err).Succeeded()
	assert.For(ctx, "version").ThatInteger(int(r.Header().Version)).Equals(trace.Version)
	assert.For(ctx, "description").ThatString(r.Header().Description).Equals("test")

	out, err := trace.ReadAll(ctx, r)
	assert.For(ctx, "ReadAll").ThatError(err).Succeeded()
	assert.For(ctx, "packets").ThatSlice(out).Equals(in)
	assert.For(ctx, "null memory").ThatBoolean(out[7].Args[2].IsNull()).IsTrue()
	assert.For(ctx, "command").ThatString(out[2].CommandType()).Equals(trace.CommandStateSnapshot)

	_, err = r.Next(ctx)
	assert.For(ctx, "after eof").ThatError(err).Equals(io.EOF)
}

func TestCorruptPacket(t *testing.T) {
	ctx := log.Testing(t)
	data := encode(ctx, frames())
	data[len(data)-20] ^= 0xff
	r, err := trace.NewReader(ctx, bytes.NewReader(data))
	assert.For(ctx, "NewReader").ThatError(err).Succeeded()
	_, err = trace.ReadAll(ctx, r)
	assert.For(ctx, "ReadAll").ThatError(err).HasCause(trace.ErrCorrupt)

	_, err = trace.NewReader(ctx, bytes.NewReader([]byte{1, 2, 3}))
	assert.For(ctx, "short stream").ThatError(err).HasCause(trace.ErrCorrupt)
}

func TestFrames(t *testing.T) {
	ctx := log.Testing(t)
	in := frames()
	r, err := trace.NewReader(ctx, bytes.NewReader(encode(ctx, in)))
	assert.For(ctx, "NewReader").ThatError(err).Succeeded()
	for _, s := range []trace.FrameSource{r, trace.NewMemorySource(in...)} {
		name := fmt.Sprintf("%T", s)
		assert.For(ctx, "%s: seek", name).ThatError(s.SeekToFrame(ctx, 1)).Succeeded()
		assert.For(ctx, "%s: frame", name).ThatInteger(s.Frame()).Equals(1)
		got, err := s.ReadFrames(ctx, 1)
		assert.For(ctx, "%s: ReadFrames", name).ThatError(err).Succeeded()
		assert.For(ctx, "%s: packets", name).ThatSlice(got).Equals(in[5:7])
		assert.For(ctx, "%s: frame after", name).ThatInteger(s.Frame()).Equals(2)

		assert.For(ctx, "%s: seek back", name).ThatError(s.SeekToFrame(ctx, 0)).Succeeded()
		got, err = s.ReadFrames(ctx, 10)
		assert.For(ctx, "%s: ReadFrames all", name).ThatError(err).Succeeded()
		assert.For(ctx, "%s: all packets", name).ThatSlice(got).Equals(in)
		assert.For(ctx, "%s: seek past end", name).ThatError(s.SeekToFrame(ctx, 4)).Failed()
	}
	n, err := r.FrameCount(ctx)
	assert.For(ctx, "FrameCount").ThatError(err).Succeeded()
	assert.For(ctx, "frame count").ThatInteger(n).Equals(3)
}

func TestMemorySourceClones(t *testing.T) {
	ctx := log.Testing(t)
	in := frames()
	s := trace.NewMemorySource(in...)
	s.Next(ctx)
	p, _ := s.Next(ctx)
	p.Args[1].Mem[0] = 0xff
	p.Processed = true
	assert.For(ctx, "source unchanged").ThatSlice(gl.U32s(in[1].Args[1].Mem)).Equals([]uint32{7})
	assert.For(ctx, "processed").ThatBoolean(in[1].Processed).IsFalse()
}

func TestKeyValueMap(t *testing.T) {
	ctx := log.Testing(t)
	m := trace.KeyValueMap{}
	assert.For(ctx, "empty").ThatInteger(m.Len()).Equals(0)
	m.SetString(trace.StringKey("b"), "x")
	m.SetUint(trace.StringKey("a"), 9)
	m.SetInt(trace.IntKey(2), 1)
	m.SetBool(trace.IntKey(1), true)
	assert.For(ctx, "keys").That(fmt.Sprint(m.Keys())).Equals("[1 2 a b]")
	v, ok := m.Int(trace.StringKey("a"))
	assert.For(ctx, "uint as int").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "uint value").ThatInteger(int(v)).Equals(9)
	v, _ = m.Int(trace.IntKey(1))
	assert.For(ctx, "bool as int").ThatInteger(int(v)).Equals(1)
	_, ok = m.Int(trace.StringKey("b"))
	assert.For(ctx, "string as int").ThatBoolean(ok).IsFalse()

	blob := id.OfString("data")
	m.SetString(trace.StringKey(trace.KeyJSONID), blob.String())
	got, ok := m.Blob(trace.StringKey(trace.KeyJSONID))
	assert.For(ctx, "blob from string").ThatBoolean(ok).IsTrue()
	assert.For(ctx, "blob").That(got).Equals(blob)

	c := m.Clone()
	c.Delete(trace.StringKey("b"))
	assert.For(ctx, "clone independent").ThatBoolean(m.Has(trace.StringKey("b"))).IsTrue()
}

func TestFormat(t *testing.T) {
	ctx := log.Testing(t)
	in := frames()
	assert.For(ctx, "bind").ThatString(fmt.Sprint(in[5])).Equals("glBindTexture(GL_TEXTURE_2D, 7)")
	p := trace.NewCall(gl.GetUniformLocation, ctxHandle, 9, gl.Uint(3), gl.Mem(gl.CString("mvp")))
	p.Return = gl.Int(2)
	assert.For(ctx, "string arg").ThatString(fmt.Sprint(p)).Equals(`glGetUniformLocation(3, "mvp") = 2`)
	assert.For(ctx, "verbose").ThatString(fmt.Sprintf("%+v", in[2])).Contains("command_type: \"state_snapshot\"")
}

func TestBlobStores(t *testing.T) {
	ctx := log.Testing(t)
	dir, err := ioutil.TempDir("", "blobs")
	assert.For(ctx, "tempdir").ThatError(err).Succeeded()
	defer os.RemoveAll(dir)
	disk, err := trace.NewDirBlobs(file.Abs(dir))
	assert.For(ctx, "NewDirBlobs").ThatError(err).Succeeded()

	for _, s := range []trace.BlobStore{trace.NewMemoryBlobs(), disk} {
		name := fmt.Sprintf("%T", s)
		data := []byte("texture level 0")
		i, err := s.Put(ctx, data)
		assert.For(ctx, "%s: put", name).ThatError(err).Succeeded()
		assert.For(ctx, "%s: id", name).That(i).Equals(id.OfBytes(data))
		again, _ := s.Put(ctx, data)
		assert.For(ctx, "%s: stable id", name).That(again).Equals(i)
		got, err := s.Get(ctx, i)
		assert.For(ctx, "%s: get", name).ThatError(err).Succeeded()
		assert.For(ctx, "%s: data", name).ThatString(string(got)).Equals(string(data))
		_, err = s.Get(ctx, id.OfString("missing"))
		assert.For(ctx, "%s: missing", name).ThatError(err).HasCause(trace.ErrBlobNotFound)
	}
}

func TestFrameLayout(t *testing.T) {
	ctx := log.Testing(t)
	data := encode(ctx, nil)
	le := binary.LittleEndian
	assert.For(ctx, "sof prefix").That(le.Uint32(data)).Equals(uint32(trace.SOFPacketPrefix))
	assert.For(ctx, "sof type").That(data[4]).Equals(byte(1))
	sof := 13 + int(le.Uint32(data[5:]))
	eof := data[sof:]
	assert.For(ctx, "eof size").ThatSlice(eof).IsLength(13)
	assert.For(ctx, "eof prefix").That(le.Uint32(eof)).Equals(uint32(trace.PacketPrefix))
	assert.For(ctx, "eof type").That(eof[4]).Equals(byte(4))
	assert.For(ctx, "eof payload").That(le.Uint32(eof[5:])).Equals(uint32(0))
	assert.For(ctx, "eof crc").That(le.Uint32(eof[9:])).Equals(uint32(0))
}
