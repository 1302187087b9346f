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

// Package trace holds the recorded form of an OpenGL session: packets, their
// key/value sidecars, the binary stream codec, packet sources and the blob
// store that holds large payloads by content id.
package trace

import (
	"github.com/ValveSoftware/vogl-sub002/gl"
)

// Internal trace command types, carried as the first argument of
// glInternalTraceCommandRAD.
const (
	CommandDemarcation = 0
	CommandKeyValueMap = 1
)

// Well known sidecar keys.
const (
	KeyCommandType = "command_type"
	KeyBinaryID    = "binary_id"
	KeyJSONID      = "json_id"
	KeyWinWidth    = "win_width"
	KeyWinHeight   = "win_height"
	KeyMapData     = "map_data"
	KeyFrame       = "frame"

	// KeyUniformPrefix prefixes the uniform name keys of a link packet. The
	// value is the location the uniform had at capture.
	KeyUniformPrefix = "uniform."
)

// Internal command_type values.
const (
	CommandStateSnapshot = "state_snapshot"
	CommandCTypes        = "ctypes"
	CommandEntrypoints   = "entrypoints"
)

// Packet is one recorded API call.
type Packet struct {
	// Entrypoint is the called function.
	Entrypoint gl.Entrypoint
	// Context is the trace-domain handle of the context current on the
	// recording thread.
	Context uint64
	// Call is the call counter. It strictly increases within a capture.
	Call uint64
	// Thread identifies the recording thread. It is diagnostic only.
	Thread uint64
	// Args holds one value per descriptor parameter.
	Args []gl.Value
	// Return is the recorded return value.
	Return gl.Value
	// KVM is the sidecar for data that does not fit the argument model.
	KVM KeyValueMap
	// Processed marks internal packets that have already been applied.
	Processed bool
}

// Describe returns the descriptor of the packet's entrypoint.
func (p *Packet) Describe() *gl.Descriptor { return p.Entrypoint.Describe() }

// Arg returns the named argument, or Void if the entrypoint has no such
// parameter.
func (p *Packet) Arg(name string) gl.Value {
	d := p.Describe()
	if d == nil {
		return gl.Void
	}
	if i := d.Param(name); i >= 0 && i < len(p.Args) {
		return p.Args[i]
	}
	return gl.Void
}

// Valid returns true if the entrypoint is known and the argument count
// matches its descriptor.
func (p *Packet) Valid() bool {
	d := p.Describe()
	return d != nil && len(d.Params) == len(p.Args)
}

// IsInternal returns true for internal trace commands.
func (p *Packet) IsInternal() bool { return p.Entrypoint == gl.InternalTraceCommandRAD }

// Command returns the internal command type of an internal packet.
func (p *Packet) Command() int {
	if !p.IsInternal() || len(p.Args) == 0 {
		return -1
	}
	return int(p.Args[0].Int())
}

// CommandType returns the command_type of a key/value map command.
func (p *Packet) CommandType() string {
	if p.Command() != CommandKeyValueMap {
		return ""
	}
	s, _ := p.KVM.String(StringKey(KeyCommandType))
	return s
}

// Clone returns a deep copy of p.
func (p *Packet) Clone() *Packet {
	out := *p
	out.Args = make([]gl.Value, len(p.Args))
	for i, a := range p.Args {
		out.Args[i] = cloneValue(a)
	}
	out.Return = cloneValue(p.Return)
	out.KVM = p.KVM.Clone()
	return &out
}

func cloneValue(v gl.Value) gl.Value {
	if v.Kind == gl.KindMem && v.Mem != nil {
		return gl.Mem(append([]byte(nil), v.Mem...))
	}
	return v
}

// NewCall returns a packet for a call of e.
func NewCall(e gl.Entrypoint, context, call uint64, args ...gl.Value) *Packet {
	return &Packet{Entrypoint: e, Context: context, Call: call, Args: args}
}

// NewKeyValueCommand returns an internal key/value map command of the given
// command_type. Further keys can be added to the returned packet's KVM.
func NewKeyValueCommand(context, call uint64, commandType string) *Packet {
	p := NewCall(gl.InternalTraceCommandRAD, context, call, gl.Int(CommandKeyValueMap), gl.Int(0), gl.Mem(nil))
	p.KVM.SetString(StringKey(KeyCommandType), commandType)
	return p
}
