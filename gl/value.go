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
	"fmt"
	"math"
)

// Kind is the type tag of a Value.
type Kind uint8

const (
	KindVoid Kind = iota
	KindInt
	KindUint
	KindFloat
	KindPtr
	KindMem
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindPtr:
		return "ptr"
	case KindMem:
		return "mem"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is one argument or return value of a call: an integer, a float, a
// pointer-sized integer or a block of client memory.
type Value struct {
	Kind Kind
	bits uint64
	// Mem is the client memory of a KindMem value. nil is a null pointer.
	Mem []byte
}

// Void is the return value of a void function.
var Void = Value{}

func Int(v int64) Value     { return Value{Kind: KindInt, bits: uint64(v)} }
func Uint(v uint64) Value   { return Value{Kind: KindUint, bits: v} }
func Float(v float64) Value { return Value{Kind: KindFloat, bits: math.Float64bits(v)} }
func Ptr(v uint64) Value    { return Value{Kind: KindPtr, bits: v} }
func Mem(b []byte) Value    { return Value{Kind: KindMem, Mem: b} }
func E(e Enum) Value        { return Uint(uint64(e)) }

func Bool(b bool) Value {
	if b {
		return Uint(1)
	}
	return Uint(0)
}

// Bits returns the raw 64 bits of a scalar value.
func (v Value) Bits() uint64 { return v.bits }

func (v Value) Int() int64 {
	if v.Kind == KindFloat {
		return int64(v.Float())
	}
	return int64(v.bits)
}

func (v Value) Uint() uint64 {
	if v.Kind == KindFloat {
		return uint64(v.Float())
	}
	return v.bits
}

func (v Value) Float() float64 {
	switch v.Kind {
	case KindFloat:
		return math.Float64frombits(v.bits)
	case KindInt:
		return float64(int64(v.bits))
	}
	return float64(v.bits)
}

func (v Value) Int32() int32     { return int32(v.Int()) }
func (v Value) Uint32() uint32   { return uint32(v.Uint()) }
func (v Value) Float32() float32 { return float32(v.Float()) }
func (v Value) Enum() Enum       { return Enum(v.Uint()) }
func (v Value) Bool() bool       { return v.Kind != KindMem && v.bits != 0 }

// IsNull returns true for a null pointer or null client memory.
func (v Value) IsNull() bool {
	switch v.Kind {
	case KindMem:
		return v.Mem == nil
	case KindPtr:
		return v.bits == 0
	}
	return false
}

// Equal returns true if both values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.Kind != KindMem {
		return v.bits == o.bits
	}
	if len(v.Mem) != len(o.Mem) || (v.Mem == nil) != (o.Mem == nil) {
		return false
	}
	for i := range v.Mem {
		if v.Mem[i] != o.Mem[i] {
			return false
		}
	}
	return true
}

func (v Value) String() string {
	switch v.Kind {
	case KindVoid:
		return "void"
	case KindInt:
		return fmt.Sprint(v.Int())
	case KindUint:
		return fmt.Sprint(v.bits)
	case KindFloat:
		return fmt.Sprint(v.Float())
	case KindPtr:
		return fmt.Sprintf("%#x", v.bits)
	case KindMem:
		if v.Mem == nil {
			return "NULL"
		}
		return fmt.Sprintf("<%d bytes>", len(v.Mem))
	}
	return "?"
}
