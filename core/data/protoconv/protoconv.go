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

// Package protoconv converts Go values to and from proto messages.
//
// Converters for specific types are registered with Register. Plain structs
// of scalars, slices, maps and pointers can be converted to a
// structpb.Struct document without a converter using ToStruct and
// FromStruct.
package protoconv

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/ValveSoftware/vogl-sub002/core/fault"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/golang/protobuf/proto"
)

// converters holds the registered conversion functions keyed by the type
// they accept.
var converters = struct {
	sync.RWMutex
	toProto  map[reflect.Type]reflect.Value
	toObject map[reflect.Type]reflect.Value
}{
	toProto:  map[reflect.Type]reflect.Value{},
	toObject: map[reflect.Type]reflect.Value{},
}

var (
	tyContext = reflect.TypeOf((*context.Context)(nil)).Elem()
	tyError   = reflect.TypeOf((*error)(nil)).Elem()
	tyMessage = reflect.TypeOf((*proto.Message)(nil)).Elem()
)

// ErrNoConverterRegistered is returned from ToProto or ToObject for a value
// whose type has no registered converter.
type ErrNoConverterRegistered struct {
	Object interface{}
}

func (e ErrNoConverterRegistered) Error() string {
	return fmt.Sprintf("No converter registered for type %T", e.Object)
}

// Register registers a pair of converters between an object type O and a
// proto message type P. toProto must be a
//
//	func(context.Context, O) (P, error)
//
// and toObject the inverse
//
//	func(context.Context, P) (O, error)
//
// Register panics if the functions do not have these shapes.
func Register(toProto, toObject interface{}) {
	toP, toO := reflect.TypeOf(toProto), reflect.TypeOf(toObject)
	if err := checkConverter(toP); err != nil {
		panic(fmt.Errorf("Bad toProto converter %v: %v", toP, err))
	}
	if err := checkConverter(toO); err != nil {
		panic(fmt.Errorf("Bad toObject converter %v: %v", toO, err))
	}
	objTy, protoTy := toP.In(1), toO.In(1)
	if objTy != toO.Out(0) || protoTy != toP.Out(0) {
		panic(fmt.Errorf("Converters %v and %v are not inverses", toP, toO))
	}
	if !protoTy.Implements(tyMessage) {
		panic(fmt.Errorf("%v is not a proto.Message", protoTy))
	}
	converters.Lock()
	defer converters.Unlock()
	converters.toProto[objTy] = reflect.ValueOf(toProto)
	converters.toObject[protoTy] = reflect.ValueOf(toObject)
}

// ToProto converts obj with its registered converter.
func ToProto(ctx context.Context, obj interface{}) (proto.Message, error) {
	out, err := convert(ctx, converters.toProto, obj)
	if err != nil {
		return nil, err
	}
	return out.(proto.Message), nil
}

// ToObject converts msg with its registered converter.
func ToObject(ctx context.Context, msg proto.Message) (interface{}, error) {
	return convert(ctx, converters.toObject, msg)
}

func convert(ctx context.Context, table map[reflect.Type]reflect.Value, in interface{}) (interface{}, error) {
	converters.RLock()
	f, ok := table[reflect.TypeOf(in)]
	converters.RUnlock()
	if !ok {
		return nil, ErrNoConverterRegistered{in}
	}
	out := f.Call([]reflect.Value{reflect.ValueOf(ctx), reflect.ValueOf(in)})
	if err, _ := out[1].Interface().(error); err != nil {
		return nil, log.Errf(ctx, err, "Converting %T to %v", in, f.Type().Out(0))
	}
	return out[0].Interface(), nil
}

func checkConverter(f reflect.Type) error {
	switch {
	case f == nil || f.Kind() != reflect.Func:
		return fault.Const("Not a function")
	case f.NumIn() != 2 || f.NumOut() != 2:
		return fault.Const("Want two parameters and two results")
	case f.In(0) != tyContext:
		return fault.Const("First parameter is not a context.Context")
	case f.Out(1) != tyError:
		return fault.Const("Second result is not an error")
	}
	return nil
}
