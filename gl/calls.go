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

import "bytes"

// Typed wrappers over the live entrypoint table. An unresolved entrypoint
// reads as zero.

// Query calls e with args followed by a size byte out buffer and returns
// the buffer.
func (p *Procs) Query(e Entrypoint, size int, args ...Value) []byte {
	out := make([]byte, size)
	p.call(e, append(args, Mem(out))...)
	return out
}

// QueryInts is Query for n 32 bit integers.
func (p *Procs) QueryInts(e Entrypoint, n int, args ...Value) []int32 {
	return I32s(p.Query(e, n*4, args...))
}

// QueryFloats is Query for n 32 bit floats.
func (p *Procs) QueryFloats(e Entrypoint, n int, args ...Value) []float32 {
	return F32s(p.Query(e, n*4, args...))
}

// GetError pops the oldest driver error.
func (p *Procs) GetError() Enum { return p.call(GetError).Enum() }

// ClearErrors drains the driver error queue and returns the first error.
func (p *Procs) ClearErrors() Enum {
	first := NO_ERROR
	for i := 0; i < 16; i++ {
		err := p.GetError()
		if err == NO_ERROR {
			break
		}
		if first == NO_ERROR {
			first = err
		}
	}
	return first
}

func (p *Procs) GetInteger(pname Enum) int32 { return p.GetIntegers(pname, 1)[0] }

func (p *Procs) GetIntegers(pname Enum, n int) []int32 {
	return p.QueryInts(GetIntegerv, n, E(pname))
}

func (p *Procs) GetFloats(pname Enum, n int) []float32 {
	return p.QueryFloats(GetFloatv, n, E(pname))
}

func (p *Procs) IsEnabled(cap Enum) bool { return p.call(IsEnabled, E(cap)).Bool() }

// SetEnabled enables or disables cap.
func (p *Procs) SetEnabled(cap Enum, on bool) {
	if on {
		p.call(Enable, E(cap))
	} else {
		p.call(Disable, E(cap))
	}
}

// GenNames calls a glGen* style entrypoint for n names.
func (p *Procs) GenNames(gen Entrypoint, n int) []uint32 {
	return U32s(p.Query(gen, n*4, Int(int64(n))))
}

// GenName calls a glGen* style entrypoint for one name.
func (p *Procs) GenName(gen Entrypoint) uint32 { return p.GenNames(gen, 1)[0] }

// DeleteNames calls a delete entrypoint for names. It handles the
// (count, names), (name) and (first, range) forms.
func (p *Procs) DeleteNames(del Entrypoint, names ...uint32) {
	d := del.Describe()
	if d == nil || len(names) == 0 {
		return
	}
	switch {
	case len(d.Params) == 2 && d.Params[1].Kind == ParamHandles:
		p.call(del, Int(int64(len(names))), Mem(PutU32s(names...)))
	case len(d.Params) == 2:
		for _, n := range names {
			p.call(del, Uint(uint64(n)), Int(1))
		}
	default:
		for _, n := range names {
			p.call(del, Uint(uint64(n)))
		}
	}
}

// IsName calls a glIs* entrypoint.
func (p *Procs) IsName(is Entrypoint, name uint64) bool {
	return p.call(is, Uint(name)).Bool()
}

// ShaderSource returns the source of a shader.
func (p *Procs) ShaderSource(shader uint32) string {
	n := p.QueryInts(GetShaderiv, 1, Uint(uint64(shader)), E(SHADER_SOURCE_LENGTH))[0]
	if n <= 0 {
		return ""
	}
	src := make([]byte, n)
	p.call(GetShaderSource, Uint(uint64(shader)), Int(int64(n)), Mem(make([]byte, 4)), Mem(src))
	return GoString(src)
}

// AttachedShaders returns the shaders attached to a program.
func (p *Procs) AttachedShaders(program uint32) []uint32 {
	n := p.QueryInts(GetProgramiv, 1, Uint(uint64(program)), E(ATTACHED_SHADERS))[0]
	if n <= 0 {
		return nil
	}
	count := make([]byte, 4)
	out := make([]byte, n*4)
	p.call(GetAttachedShaders, Uint(uint64(program)), Int(int64(n)), Mem(count), Mem(out))
	return U32s(out)[:I32s(count)[0]]
}

// ActiveUniform describes a uniform of a linked program.
type ActiveUniform struct {
	Name string
	Size int32
	Type Enum
}

// ActiveUniforms lists the active uniforms of a program.
func (p *Procs) ActiveUniforms(program uint32) []ActiveUniform {
	prog := Uint(uint64(program))
	count := p.QueryInts(GetProgramiv, 1, prog, E(ACTIVE_UNIFORMS))[0]
	maxLen := p.QueryInts(GetProgramiv, 1, prog, E(ACTIVE_UNIFORM_MAX_LENGTH))[0]
	out := make([]ActiveUniform, 0, count)
	for i := int32(0); i < count; i++ {
		size, typ, name := make([]byte, 4), make([]byte, 4), make([]byte, maxLen+1)
		p.call(GetActiveUniform, prog, Int(int64(i)), Int(int64(len(name))), Mem(make([]byte, 4)), Mem(size), Mem(typ), Mem(name))
		out = append(out, ActiveUniform{Name: GoString(name), Size: I32s(size)[0], Type: Enum(U32s(typ)[0])})
	}
	return out
}

// UniformLocation returns the location of a named uniform.
func (p *Procs) UniformLocation(program uint32, name string) int32 {
	return p.call(GetUniformLocation, Uint(uint64(program)), Mem(CString(name))).Int32()
}

// SyncStatus returns the SYNC_STATUS of a sync object.
func (p *Procs) SyncStatus(sync uint64) Enum {
	out := make([]byte, 4)
	p.call(GetSynciv, Uint(sync), E(SYNC_STATUS), Int(1), Mem(make([]byte, 4)), Mem(out))
	return Enum(U32s(out)[0])
}

// CString returns s as NUL terminated client memory.
func CString(s string) []byte { return append([]byte(s), 0) }

// GoString returns the bytes of b up to the first NUL.
func GoString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// JoinSources encodes shader source strings as the string argument of
// glShaderSource: each string NUL terminated, back to back.
func JoinSources(srcs ...string) []byte {
	var out []byte
	for _, s := range srcs {
		out = append(out, CString(s)...)
	}
	return out
}

// SplitSources decodes count strings from the string argument of
// glShaderSource. A non-nil lengths truncates each string.
func SplitSources(b []byte, count int, lengths []int32) []string {
	out := make([]string, 0, count)
	for i := 0; i < count && len(b) > 0; i++ {
		end := bytes.IndexByte(b, 0)
		if end < 0 {
			end = len(b)
		}
		s := b[:end]
		if i < len(lengths) && lengths[i] >= 0 && int(lengths[i]) < len(s) {
			s = s[:lengths[i]]
		}
		out = append(out, string(s))
		if end < len(b) {
			end++
		}
		b = b[end:]
	}
	return out
}
