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
	"github.com/ValveSoftware/vogl-sub002/core/fault"
	"github.com/pkg/errors"
)

// ErrUnresolved is returned when calling an entrypoint the backend has not
// resolved for the current context.
const ErrUnresolved = fault.Const("Entrypoint not resolved")

// Proc is a resolved live entrypoint. Out parameters are Mem values the
// proc writes into.
type Proc func(args []Value) Value

// Procs is the live entrypoint table. A backend repopulates it after every
// context creation or switch because resolved addresses may change.
type Procs struct {
	procs [EntrypointCount]Proc
}

// NewProcs returns an empty table.
func NewProcs() *Procs { return &Procs{} }

// Set resolves e to f. A nil f unresolves it.
func (p *Procs) Set(e Entrypoint, f Proc) { p.procs[e] = f }

// Resolved returns true if e has a live implementation.
func (p *Procs) Resolved(e Entrypoint) bool {
	return e < EntrypointCount && p.procs[e] != nil
}

// Reset unresolves every entrypoint.
func (p *Procs) Reset() { p.procs = [EntrypointCount]Proc{} }

// Count returns the number of resolved entrypoints.
func (p *Procs) Count() int {
	n := 0
	for _, f := range p.procs {
		if f != nil {
			n++
		}
	}
	return n
}

// Call invokes e with args.
func (p *Procs) Call(e Entrypoint, args ...Value) (Value, error) {
	if !p.Resolved(e) {
		return Void, errors.Wrap(ErrUnresolved, e.String())
	}
	if d := e.Describe(); d != nil && len(args) != len(d.Params) {
		return Void, errors.Errorf("%v: got %d arguments, expected %d", e, len(args), len(d.Params))
	}
	return p.procs[e](args), nil
}

// call is Call for the typed helpers, where an unresolved entrypoint reads
// as a zero result.
func (p *Procs) call(e Entrypoint, args ...Value) Value {
	v, _ := p.Call(e, args...)
	return v
}
