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

import "fmt"

// Entrypoint identifies a GL or GLX function.
type Entrypoint uint16

// ParamKind describes how the replayer treats an argument or return value.
type ParamKind uint8

const (
	// ParamVoid is the return kind of functions that return nothing.
	ParamVoid ParamKind = iota
	// ParamInt is an integer passed through unchanged.
	ParamInt
	// ParamEnum is a GLenum passed through unchanged.
	ParamEnum
	// ParamFloat is a floating point value passed through unchanged.
	ParamFloat
	// ParamPtr is an opaque pointer (display, drawable, visual).
	ParamPtr
	// ParamContext is a trace context handle.
	ParamContext
	// ParamHandle is a single object handle of the param's namespace.
	ParamHandle
	// ParamHandles is client memory holding handles read by the call.
	ParamHandles
	// ParamHandlesOut is client memory receiving newly generated handles.
	ParamHandlesOut
	// ParamLocation is a uniform location of the param's program.
	ParamLocation
	// ParamIn is client memory read by the call.
	ParamIn
	// ParamOut is client memory written by the call.
	ParamOut
	// ParamData is client memory, or a buffer offset when a buffer is bound.
	ParamData
	// ParamClient is a vertex array pointer. Client memory is captured at draw
	// time, so the value is an offset or an unresolved client address.
	ParamClient
)

var paramKindNames = [...]string{
	ParamVoid:       "void",
	ParamInt:        "int",
	ParamEnum:       "enum",
	ParamFloat:      "float",
	ParamPtr:        "ptr",
	ParamContext:    "context",
	ParamHandle:     "handle",
	ParamHandles:    "handles",
	ParamHandlesOut: "handles_out",
	ParamLocation:   "location",
	ParamIn:         "in",
	ParamOut:        "out",
	ParamData:       "data",
	ParamClient:     "client",
}

func (k ParamKind) String() string {
	if int(k) < len(paramKindNames) {
		return paramKindNames[k]
	}
	return fmt.Sprintf("ParamKind(%d)", uint8(k))
}

// IsMemory returns true if the kind is carried as client memory.
func (k ParamKind) IsMemory() bool {
	switch k {
	case ParamHandles, ParamHandlesOut, ParamIn, ParamOut, ParamData:
		return true
	}
	return false
}

// Param describes one argument.
type Param struct {
	Name      string
	Kind      ParamKind
	Namespace Namespace
	// Program is the index of the program argument a location belongs to, or
	// -1 if it belongs to the current program.
	Program int
}

func pInt(name string) Param     { return Param{Name: name, Kind: ParamInt, Namespace: InvalidNamespace} }
func pEnum(name string) Param    { return Param{Name: name, Kind: ParamEnum, Namespace: InvalidNamespace} }
func pFloat(name string) Param   { return Param{Name: name, Kind: ParamFloat, Namespace: InvalidNamespace} }
func pPtr(name string) Param     { return Param{Name: name, Kind: ParamPtr, Namespace: InvalidNamespace} }
func pIn(name string) Param      { return Param{Name: name, Kind: ParamIn, Namespace: InvalidNamespace} }
func pOut(name string) Param     { return Param{Name: name, Kind: ParamOut, Namespace: InvalidNamespace} }
func pData(name string) Param    { return Param{Name: name, Kind: ParamData, Namespace: InvalidNamespace} }
func pClient(name string) Param  { return Param{Name: name, Kind: ParamClient, Namespace: InvalidNamespace} }
func pContext(name string) Param { return Param{Name: name, Kind: ParamContext, Namespace: Contexts} }

func pHandle(name string, ns Namespace) Param {
	return Param{Name: name, Kind: ParamHandle, Namespace: ns}
}

func pHandles(name string, ns Namespace) Param {
	return Param{Name: name, Kind: ParamHandles, Namespace: ns}
}

func pHandlesOut(name string, ns Namespace) Param {
	return Param{Name: name, Kind: ParamHandlesOut, Namespace: ns}
}

func pLocation(name string, program int) Param {
	return Param{Name: name, Kind: ParamLocation, Namespace: Locations, Program: program}
}

// Flags classify an entrypoint.
type Flags uint32

const (
	FlagDraw Flags = 1 << iota
	FlagClear
	FlagSwap
	FlagMakeCurrent
	FlagCreateContext
	FlagDestroyContext
	// FlagGen marks glGen* style calls that write new handles to memory.
	FlagGen
	// FlagCreate marks calls that return a new handle.
	FlagCreate
	FlagDelete
	FlagBind
	// FlagListable marks calls that may be recorded into a display list.
	FlagListable
	// FlagCheckReturn marks calls whose return value is compared against the
	// trace.
	FlagCheckReturn
	// FlagCheckOutputs marks calls whose output memory is compared against
	// the trace.
	FlagCheckOutputs
	FlagInternal
	FlagBegin
	FlagEnd
)

// Has returns true if every bit of o is set in f.
func (f Flags) Has(o Flags) bool { return f&o == o }

// Descriptor describes an entrypoint.
type Descriptor struct {
	ID              Entrypoint
	Name            string
	Params          []Param
	Return          ParamKind
	ReturnNamespace Namespace
	Flags           Flags
}

// Param returns the index of the named parameter, or -1.
func (d *Descriptor) Param(name string) int {
	for i, p := range d.Params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// Target returns the index of the target parameter, or -1.
func (d *Descriptor) Target() int { return d.Param("target") }

// Handle returns the index of the first single handle parameter, or -1.
func (d *Descriptor) Handle() int {
	for i, p := range d.Params {
		if p.Kind == ParamHandle {
			return i
		}
	}
	return -1
}

// IsDraw returns true for calls that rasterize primitives.
func (d *Descriptor) IsDraw() bool { return d.Flags.Has(FlagDraw) }

// IsGLX returns true for window-system calls.
func (d *Descriptor) IsGLX() bool { return len(d.Name) > 3 && d.Name[:3] == "glX" }

var byName map[string]Entrypoint

func init() {
	byName = make(map[string]Entrypoint, EntrypointCount)
	for i := range descriptors {
		d := &descriptors[i]
		if d.Name == "" {
			continue
		}
		d.ID = Entrypoint(i)
		if d.Return != ParamHandle && d.Return != ParamContext && d.Return != ParamLocation {
			d.ReturnNamespace = InvalidNamespace
		}
		byName[d.Name] = Entrypoint(i)
	}
}

// Describe returns the descriptor of e, or nil for unknown entrypoints.
func (e Entrypoint) Describe() *Descriptor {
	if e == InvalidEntrypoint || e >= EntrypointCount {
		return nil
	}
	return &descriptors[e]
}

// IsValid returns true for entrypoints in the table.
func (e Entrypoint) IsValid() bool { return e.Describe() != nil }

func (e Entrypoint) String() string {
	if d := e.Describe(); d != nil {
		return d.Name
	}
	return fmt.Sprintf("Entrypoint(%d)", uint16(e))
}

// Lookup returns the entrypoint with the given name.
func Lookup(name string) (Entrypoint, bool) {
	e, ok := byName[name]
	return e, ok
}

// Entrypoints returns every valid entrypoint in id order.
func Entrypoints() []Entrypoint {
	out := make([]Entrypoint, 0, EntrypointCount-1)
	for e := InvalidEntrypoint + 1; e < EntrypointCount; e++ {
		out = append(out, e)
	}
	return out
}
