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
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"io"
	"math"

	bin "github.com/ValveSoftware/vogl-sub002/core/data/binary"
	"github.com/ValveSoftware/vogl-sub002/core/data/endian"
	"github.com/ValveSoftware/vogl-sub002/core/data/id"
	"github.com/ValveSoftware/vogl-sub002/core/fault"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/gl"
	"github.com/pkg/errors"
)

// Stream framing constants. Each packet is a 13 byte little-endian header
// holding the prefix, the packet type, the payload size and the CRC32 of the
// payload. The prefixes and version are those of vogl streams but the header
// has no rnd/inv_rnd check words, no rdtsc timestamp and no 64 bit start of
// file size, so vogl tools cannot read these streams and vice versa.
const (
	PacketPrefix    = 0xD1C71602
	SOFPacketPrefix = 0xD1C71601
	Version         = 0x0106

	packetSOF        = 1
	packetEntrypoint = 3
	packetEOF        = 4

	frameHeaderSize = 13
)

const (
	// ErrCorrupt is returned for packets whose framing or checksum is bad.
	ErrCorrupt = fault.Const("Corrupt trace packet")
	// ErrVersion is returned for streams of an unsupported version.
	ErrVersion = fault.Const("Unsupported trace version")
	// ErrClosed is returned when writing to a closed Writer.
	ErrClosed = fault.Const("Trace writer closed")
)

// Header is the start of file packet.
type Header struct {
	Version     uint16
	PointerSize uint8
	// Description is free form text, usually the capturing tool and
	// application.
	Description string
}

// Writer encodes packets to a trace stream.
type Writer struct {
	out    io.Writer
	closed bool
	// Packets counts the entrypoint packets written.
	Packets int
}

// NewWriter writes the start of file packet and returns a Writer for the
// rest of the stream.
func NewWriter(out io.Writer, h Header) (*Writer, error) {
	if h.Version == 0 {
		h.Version = Version
	}
	if h.PointerSize == 0 {
		h.PointerSize = 8
	}
	w := &Writer{out: out}
	err := w.frame(SOFPacketPrefix, packetSOF, func(e bin.Writer) {
		e.Uint16(h.Version)
		e.Uint8(h.PointerSize)
		e.String(h.Description)
	})
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (w *Writer) frame(prefix uint32, typ uint8, body func(bin.Writer)) error {
	payload := &bytes.Buffer{}
	e := endian.Writer(payload, binary.LittleEndian)
	body(e)
	if err := e.Error(); err != nil {
		return err
	}
	hdr := [frameHeaderSize]byte{}
	binary.LittleEndian.PutUint32(hdr[0:], prefix)
	hdr[4] = typ
	binary.LittleEndian.PutUint32(hdr[5:], uint32(payload.Len()))
	binary.LittleEndian.PutUint32(hdr[9:], crc32.ChecksumIEEE(payload.Bytes()))
	if _, err := w.out.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.out.Write(payload.Bytes())
	return err
}

// Write appends p to the stream.
func (w *Writer) Write(p *Packet) error {
	if w.closed {
		return ErrClosed
	}
	if !p.Entrypoint.IsValid() {
		return errors.Errorf("Cannot write packet with unknown entrypoint %d", p.Entrypoint)
	}
	w.Packets++
	return w.frame(PacketPrefix, packetEntrypoint, func(e bin.Writer) { encodePacket(e, p) })
}

// Close writes the end of file packet. It does not close the underlying
// writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.frame(PacketPrefix, packetEOF, func(bin.Writer) {})
}

func encodePacket(e bin.Writer, p *Packet) {
	e.Uint16(uint16(p.Entrypoint))
	e.Uint64(p.Context)
	e.Uint64(p.Call)
	e.Uint64(p.Thread)
	e.Uint16(uint16(len(p.Args)))
	for _, a := range p.Args {
		encodeValue(e, a)
	}
	encodeValue(e, p.Return)
	encodeKVM(e, p.KVM)
}

func encodeValue(e bin.Writer, v gl.Value) {
	e.Uint8(uint8(v.Kind))
	switch v.Kind {
	case gl.KindVoid:
	case gl.KindMem:
		e.Bool(v.Mem != nil)
		if v.Mem != nil {
			e.Bytes(v.Mem)
		}
	default:
		e.Uint64(v.Bits())
	}
}

func encodeKVM(e bin.Writer, m KeyValueMap) {
	keys := m.Keys()
	e.Uint32(uint32(len(keys)))
	for _, k := range keys {
		e.Bool(k.IsString())
		if k.IsString() {
			e.String(k.Name)
		} else {
			e.Int64(k.Index)
		}
		v, _ := m.Get(k)
		e.Uint8(uint8(v.Kind))
		switch v.Kind {
		case KindInt:
			e.Int64(v.Int)
		case KindUint:
			e.Uint64(v.Uint)
		case KindFloat:
			e.Float64(v.Float)
		case KindString:
			e.String(v.Str)
		case KindBytes:
			e.Bytes(v.Bytes)
		case KindBlob:
			e.Data(v.Blob[:])
		case KindBool:
			e.Bool(v.Bool)
		}
	}
}

func decodePacket(d bin.Reader) *Packet {
	p := &Packet{
		Entrypoint: gl.Entrypoint(d.Uint16()),
		Context:    d.Uint64(),
		Call:       d.Uint64(),
		Thread:     d.Uint64(),
	}
	n := int(d.Uint16())
	if d.Error() != nil {
		return nil
	}
	p.Args = make([]gl.Value, 0, n)
	for i := 0; i < n && d.Error() == nil; i++ {
		p.Args = append(p.Args, decodeValue(d))
	}
	p.Return = decodeValue(d)
	p.KVM = decodeKVM(d)
	return p
}

func decodeValue(d bin.Reader) gl.Value {
	kind := gl.Kind(d.Uint8())
	switch kind {
	case gl.KindVoid:
		return gl.Void
	case gl.KindMem:
		if !d.Bool() {
			return gl.Mem(nil)
		}
		b := d.Bytes()
		if b == nil {
			b = []byte{}
		}
		return gl.Mem(b)
	}
	bits := d.Uint64()
	switch kind {
	case gl.KindInt:
		return gl.Int(int64(bits))
	case gl.KindUint:
		return gl.Uint(bits)
	case gl.KindFloat:
		return gl.Float(math.Float64frombits(bits))
	case gl.KindPtr:
		return gl.Ptr(bits)
	}
	d.SetError(errors.Wrapf(ErrCorrupt, "Unknown value kind %d", kind))
	return gl.Void
}

func decodeKVM(d bin.Reader) KeyValueMap {
	m := KeyValueMap{}
	n := int(d.Uint32())
	for i := 0; i < n && d.Error() == nil; i++ {
		var k Key
		if d.Bool() {
			k = StringKey(d.String())
		} else {
			k = IntKey(d.Int64())
		}
		switch ValueKind(d.Uint8()) {
		case KindInt:
			m.SetInt(k, d.Int64())
		case KindUint:
			m.SetUint(k, d.Uint64())
		case KindFloat:
			m.SetFloat(k, d.Float64())
		case KindString:
			m.SetString(k, d.String())
		case KindBytes:
			m.SetBytes(k, d.Bytes())
		case KindBlob:
			var b id.ID
			d.Data(b[:])
			m.SetBlob(k, b)
		case KindBool:
			m.SetBool(k, d.Bool())
		default:
			d.SetError(errors.Wrapf(ErrCorrupt, "Unknown key/value kind for %v", k))
		}
	}
	return m
}

// Reader decodes a trace stream. It implements FrameSource.
type Reader struct {
	in      io.ReadSeeker
	header  Header
	start   int64
	frame   int
	frames  []int64
	indexed bool
	eof     bool
}

// NewReader reads the start of file packet of in.
func NewReader(ctx context.Context, in io.ReadSeeker) (*Reader, error) {
	r := &Reader{in: in}
	typ, payload, err := r.readFrame()
	if err != nil {
		return nil, err
	}
	if typ != packetSOF {
		return nil, errors.Wrap(ErrCorrupt, "Stream does not start with a start of file packet")
	}
	d := endian.Reader(bytes.NewReader(payload), binary.LittleEndian)
	r.header = Header{Version: d.Uint16(), PointerSize: d.Uint8(), Description: d.String()}
	if err := d.Error(); err != nil {
		return nil, errors.Wrap(ErrCorrupt, err.Error())
	}
	if r.header.Version > Version {
		return nil, errors.Wrapf(ErrVersion, "%#x", r.header.Version)
	}
	if r.start, err = in.Seek(0, io.SeekCurrent); err != nil {
		return nil, err
	}
	log.D(ctx, "Trace version %#x: %s", r.header.Version, r.header.Description)
	return r, nil
}

// Header returns the start of file packet.
func (r *Reader) Header() Header { return r.header }

func (r *Reader) readFrame() (uint8, []byte, error) {
	hdr := [frameHeaderSize]byte{}
	if _, err := io.ReadFull(r.in, hdr[:]); err != nil {
		if err == io.EOF {
			return 0, nil, io.EOF
		}
		return 0, nil, errors.Wrap(ErrCorrupt, err.Error())
	}
	prefix := binary.LittleEndian.Uint32(hdr[0:])
	if prefix != PacketPrefix && prefix != SOFPacketPrefix {
		return 0, nil, errors.Wrapf(ErrCorrupt, "Bad packet prefix %#x", prefix)
	}
	size := binary.LittleEndian.Uint32(hdr[5:])
	if size > bin.MaxBytes {
		return 0, nil, errors.Wrapf(ErrCorrupt, "Packet size %d exceeds limit", size)
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(r.in, payload); err != nil {
		return 0, nil, errors.Wrap(ErrCorrupt, "Truncated packet")
	}
	if crc := crc32.ChecksumIEEE(payload); crc != binary.LittleEndian.Uint32(hdr[9:]) {
		return 0, nil, errors.Wrapf(ErrCorrupt, "Checksum mismatch %#x", crc)
	}
	return hdr[4], payload, nil
}

// Next implements Source.
func (r *Reader) Next(ctx context.Context) (*Packet, error) {
	if r.eof {
		return nil, io.EOF
	}
	for {
		typ, payload, err := r.readFrame()
		if err == io.EOF {
			r.eof = true
			log.W(ctx, "Trace ended without an end of file packet")
			return nil, io.EOF
		}
		if err != nil {
			return nil, err
		}
		switch typ {
		case packetEOF:
			r.eof = true
			return nil, io.EOF
		case packetSOF:
			continue
		case packetEntrypoint:
			d := endian.Reader(bytes.NewReader(payload), binary.LittleEndian)
			p := decodePacket(d)
			if err := d.Error(); err != nil {
				return nil, errors.Wrap(ErrCorrupt, err.Error())
			}
			if !p.Valid() {
				return nil, errors.Wrapf(ErrCorrupt, "Packet %d: bad entrypoint %d or argument count %d", p.Call, p.Entrypoint, len(p.Args))
			}
			if d := p.Describe(); d.Flags.Has(gl.FlagSwap) {
				r.frame++
			}
			return p, nil
		default:
			log.W(ctx, "Skipping packet of unknown type %d", typ)
		}
	}
}

// Frame returns the index of the frame the next packet belongs to.
func (r *Reader) Frame() int { return r.frame }

// Index scans the stream once and records where every frame starts. The
// read position is restored afterwards.
func (r *Reader) Index(ctx context.Context) error {
	if r.indexed {
		return nil
	}
	pos, err := r.in.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	frame, eof := r.frame, r.eof
	if _, err := r.in.Seek(r.start, io.SeekStart); err != nil {
		return err
	}
	r.eof = false
	r.frames = []int64{r.start}
	for {
		p, err := r.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if p.Describe().Flags.Has(gl.FlagSwap) {
			off, err := r.in.Seek(0, io.SeekCurrent)
			if err != nil {
				return err
			}
			r.frames = append(r.frames, off)
		}
	}
	r.indexed = true
	r.frame, r.eof = frame, eof
	_, err = r.in.Seek(pos, io.SeekStart)
	return err
}

// FrameCount returns the number of frame starts, including the partial
// frame after the last swap.
func (r *Reader) FrameCount(ctx context.Context) (int, error) {
	if err := r.Index(ctx); err != nil {
		return 0, err
	}
	return len(r.frames), nil
}

// SeekToFrame implements FrameSource.
func (r *Reader) SeekToFrame(ctx context.Context, frame int) error {
	if err := r.Index(ctx); err != nil {
		return err
	}
	if frame < 0 || frame >= len(r.frames) {
		return errors.Errorf("Frame %d out of range [0, %d)", frame, len(r.frames))
	}
	if _, err := r.in.Seek(r.frames[frame], io.SeekStart); err != nil {
		return err
	}
	r.frame, r.eof = frame, false
	return nil
}

// ReadFrames implements FrameSource.
func (r *Reader) ReadFrames(ctx context.Context, count int) ([]*Packet, error) {
	return readFrames(ctx, r, count)
}

func readFrames(ctx context.Context, s Source, count int) ([]*Packet, error) {
	out := []*Packet{}
	for frames := 0; frames < count; {
		p, err := s.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return out, err
		}
		out = append(out, p)
		if p.Describe().Flags.Has(gl.FlagSwap) {
			frames++
		}
	}
	return out, nil
}

// EncodePacket returns the payload encoding of a single packet, without
// stream framing.
func EncodePacket(p *Packet) ([]byte, error) {
	buf := &bytes.Buffer{}
	e := endian.Writer(buf, binary.LittleEndian)
	encodePacket(e, p)
	if err := e.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodePacket decodes a payload produced by EncodePacket.
func DecodePacket(data []byte) (*Packet, error) {
	d := endian.Reader(bytes.NewReader(data), binary.LittleEndian)
	p := decodePacket(d)
	if err := d.Error(); err != nil || p == nil {
		return nil, errors.Wrap(ErrCorrupt, "decoding packet")
	}
	if !p.Entrypoint.IsValid() {
		return nil, errors.Wrapf(ErrCorrupt, "unknown entrypoint %d", p.Entrypoint)
	}
	return p, nil
}
