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
	"fmt"
	"strings"

	"github.com/ValveSoftware/vogl-sub002/gl"
)

const maxInlineBytes = 16

// Format implements fmt.Formatter. %v prints the call as a function call,
// %+v adds the context, call counter and sidecar.
func (p *Packet) Format(f fmt.State, r rune) {
	fmt.Fprint(f, p.call())
	if f.Flag('+') {
		fmt.Fprintf(f, " [ctx %#x call %d thread %d]", p.Context, p.Call, p.Thread)
		for _, k := range p.KVM.Keys() {
			v, _ := p.KVM.Get(k)
			fmt.Fprintf(f, "\n    %v: %v", k, v)
		}
	}
}

func (p *Packet) call() string {
	d := p.Describe()
	if d == nil {
		return fmt.Sprintf("<entrypoint %d>(...)", p.Entrypoint)
	}
	b := &strings.Builder{}
	b.WriteString(d.Name)
	b.WriteByte('(')
	for i, a := range p.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		if i < len(d.Params) {
			b.WriteString(formatArg(d.Params[i], a))
		} else {
			b.WriteString(a.String())
		}
	}
	b.WriteByte(')')
	if d.Return != gl.ParamVoid {
		b.WriteString(" = ")
		b.WriteString(formatArg(gl.Param{Kind: d.Return, Namespace: d.ReturnNamespace}, p.Return))
	}
	return b.String()
}

func formatArg(p gl.Param, v gl.Value) string {
	switch {
	case p.Kind == gl.ParamEnum && v.Kind != gl.KindMem:
		return v.Enum().String()
	case p.Kind == gl.ParamContext, p.Kind == gl.ParamPtr:
		return fmt.Sprintf("%#x", v.Uint())
	case v.Kind == gl.KindMem && v.Mem != nil:
		return formatMem(v.Mem)
	}
	return v.String()
}

func formatMem(b []byte) string {
	if n := bytes.IndexByte(b, 0); n > 0 && n == len(b)-1 && printable(b[:n]) {
		return fmt.Sprintf("%q", b[:n])
	}
	if len(b) <= maxInlineBytes {
		return fmt.Sprintf("[% x]", b)
	}
	return fmt.Sprintf("<%d bytes>", len(b))
}

func printable(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			if c != '\n' && c != '\t' {
				return false
			}
		}
	}
	return true
}
