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

package protoconv

import (
	"encoding/base64"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/structpb"
)

var tyBytes = reflect.TypeOf([]byte(nil))

// ToStruct converts the exported fields of the struct pointed to by obj to
// a structpb.Struct. Field names are converted to snake_case.
//
// 64 bit integers are stored as decimal strings so they survive the double
// precision number representation. Byte slices are stored as base64
// strings. Map keys must be integers or strings. Nil pointers, slices and
// maps are stored as null.
func ToStruct(obj interface{}) (*structpb.Struct, error) {
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, errors.Errorf("Cannot convert nil %T", obj)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, errors.Errorf("Cannot convert %T to a struct", obj)
	}
	return structOf(v, "")
}

// FromStruct populates the struct pointed to by obj from s. It is the
// inverse of ToStruct. Fields missing from s are left unchanged.
func FromStruct(s *structpb.Struct, obj interface{}) error {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return errors.Errorf("Cannot populate %T, expected a pointer to struct", obj)
	}
	return fromStructValue(s, v.Elem(), "")
}

// FieldName returns the snake_case name used for a Go field name.
func FieldName(name string) string {
	r := []rune(name)
	b := strings.Builder{}
	for i, c := range r {
		if unicode.IsUpper(c) {
			prevLower := i > 0 && (unicode.IsLower(r[i-1]) || unicode.IsDigit(r[i-1]))
			nextLower := i > 0 && i+1 < len(r) && unicode.IsLower(r[i+1]) && unicode.IsUpper(r[i-1])
			if prevLower || nextLower {
				b.WriteRune('_')
			}
			c = unicode.ToLower(c)
		}
		b.WriteRune(c)
	}
	return b.String()
}

func structOf(v reflect.Value, path string) (*structpb.Struct, error) {
	t := v.Type()
	out := &structpb.Struct{Fields: map[string]*structpb.Value{}}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		name := FieldName(f.Name)
		fv, err := valueOf(v.Field(i), path+"."+name)
		if err != nil {
			return nil, err
		}
		out.Fields[name] = fv
	}
	return out, nil
}

func valueOf(v reflect.Value, path string) (*structpb.Value, error) {
	switch v.Kind() {
	case reflect.Bool:
		return structpb.NewBoolValue(v.Bool()), nil
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return structpb.NewNumberValue(float64(v.Int())), nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return structpb.NewNumberValue(float64(v.Uint())), nil
	case reflect.Int, reflect.Int64:
		return structpb.NewStringValue(strconv.FormatInt(v.Int(), 10)), nil
	case reflect.Uint, reflect.Uint64:
		return structpb.NewStringValue(strconv.FormatUint(v.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		return structpb.NewNumberValue(v.Float()), nil
	case reflect.String:
		return structpb.NewStringValue(v.String()), nil
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return structpb.NewNullValue(), nil
		}
		return valueOf(v.Elem(), path)
	case reflect.Struct:
		s, err := structOf(v, path)
		if err != nil {
			return nil, err
		}
		return structpb.NewStructValue(s), nil
	case reflect.Slice:
		if v.IsNil() {
			return structpb.NewNullValue(), nil
		}
		if v.Type() == tyBytes {
			return structpb.NewStringValue(base64.StdEncoding.EncodeToString(v.Bytes())), nil
		}
		l := &structpb.ListValue{Values: make([]*structpb.Value, v.Len())}
		for i := range l.Values {
			e, err := valueOf(v.Index(i), fmt.Sprintf("%v[%d]", path, i))
			if err != nil {
				return nil, err
			}
			l.Values[i] = e
		}
		return structpb.NewListValue(l), nil
	case reflect.Map:
		if v.IsNil() {
			return structpb.NewNullValue(), nil
		}
		s := &structpb.Struct{Fields: make(map[string]*structpb.Value, v.Len())}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j]) })
		for _, k := range keys {
			key, err := mapKey(k, path)
			if err != nil {
				return nil, err
			}
			e, err := valueOf(v.MapIndex(k), path+"."+key)
			if err != nil {
				return nil, err
			}
			s.Fields[key] = e
		}
		return structpb.NewStructValue(s), nil
	}
	return nil, errors.Errorf("%v: unsupported kind %v", path, v.Kind())
}

func mapKey(k reflect.Value, path string) (string, error) {
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10), nil
	case reflect.String:
		return k.String(), nil
	}
	return "", errors.Errorf("%v: unsupported map key kind %v", path, k.Kind())
}

func fromStructValue(s *structpb.Struct, v reflect.Value, path string) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		name := FieldName(f.Name)
		fv, ok := s.GetFields()[name]
		if !ok {
			continue
		}
		if err := fromValue(fv, v.Field(i), path+"."+name); err != nil {
			return err
		}
	}
	return nil
}

func fromValue(in *structpb.Value, v reflect.Value, path string) error {
	if _, isNull := in.GetKind().(*structpb.Value_NullValue); isNull {
		v.Set(reflect.Zero(v.Type()))
		return nil
	}
	switch v.Kind() {
	case reflect.Bool:
		b, ok := in.GetKind().(*structpb.Value_BoolValue)
		if !ok {
			return mismatch(path, "bool", in)
		}
		v.SetBool(b.BoolValue)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int, reflect.Int64:
		i, err := intOf(in, path)
		if err != nil {
			return err
		}
		if v.OverflowInt(i) {
			return errors.Errorf("%v: %d overflows %v", path, i, v.Type())
		}
		v.SetInt(i)
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint, reflect.Uint64:
		u, err := uintOf(in, path)
		if err != nil {
			return err
		}
		if v.OverflowUint(u) {
			return errors.Errorf("%v: %d overflows %v", path, u, v.Type())
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		n, ok := in.GetKind().(*structpb.Value_NumberValue)
		if !ok {
			return mismatch(path, "number", in)
		}
		v.SetFloat(n.NumberValue)
	case reflect.String:
		s, ok := in.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return mismatch(path, "string", in)
		}
		v.SetString(s.StringValue)
	case reflect.Ptr:
		p := reflect.New(v.Type().Elem())
		if err := fromValue(in, p.Elem(), path); err != nil {
			return err
		}
		v.Set(p)
	case reflect.Struct:
		s, ok := in.GetKind().(*structpb.Value_StructValue)
		if !ok {
			return mismatch(path, "struct", in)
		}
		return fromStructValue(s.StructValue, v, path)
	case reflect.Slice:
		if v.Type() == tyBytes {
			s, ok := in.GetKind().(*structpb.Value_StringValue)
			if !ok {
				return mismatch(path, "base64 string", in)
			}
			b, err := base64.StdEncoding.DecodeString(s.StringValue)
			if err != nil {
				return errors.Wrapf(err, "%v", path)
			}
			if b == nil {
				b = []byte{}
			}
			v.SetBytes(b)
			return nil
		}
		l, ok := in.GetKind().(*structpb.Value_ListValue)
		if !ok {
			return mismatch(path, "list", in)
		}
		values := l.ListValue.GetValues()
		out := reflect.MakeSlice(v.Type(), len(values), len(values))
		for i, e := range values {
			if err := fromValue(e, out.Index(i), fmt.Sprintf("%v[%d]", path, i)); err != nil {
				return err
			}
		}
		v.Set(out)
	case reflect.Map:
		s, ok := in.GetKind().(*structpb.Value_StructValue)
		if !ok {
			return mismatch(path, "map", in)
		}
		out := reflect.MakeMapWithSize(v.Type(), len(s.StructValue.GetFields()))
		for key, e := range s.StructValue.GetFields() {
			k := reflect.New(v.Type().Key()).Elem()
			if err := parseKey(key, k, path); err != nil {
				return err
			}
			elem := reflect.New(v.Type().Elem()).Elem()
			if err := fromValue(e, elem, path+"."+key); err != nil {
				return err
			}
			out.SetMapIndex(k, elem)
		}
		v.Set(out)
	default:
		return errors.Errorf("%v: unsupported kind %v", path, v.Kind())
	}
	return nil
}

func intOf(in *structpb.Value, path string) (int64, error) {
	switch k := in.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return int64(k.NumberValue), nil
	case *structpb.Value_StringValue:
		i, err := strconv.ParseInt(k.StringValue, 10, 64)
		return i, errors.Wrapf(err, "%v", path)
	}
	return 0, mismatch(path, "integer", in)
}

func uintOf(in *structpb.Value, path string) (uint64, error) {
	switch k := in.GetKind().(type) {
	case *structpb.Value_NumberValue:
		if k.NumberValue < 0 {
			return 0, errors.Errorf("%v: negative value %v", path, k.NumberValue)
		}
		return uint64(k.NumberValue), nil
	case *structpb.Value_StringValue:
		u, err := strconv.ParseUint(k.StringValue, 10, 64)
		return u, errors.Wrapf(err, "%v", path)
	}
	return 0, mismatch(path, "unsigned integer", in)
}

func parseKey(key string, k reflect.Value, path string) error {
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%v: map key", path)
		}
		k.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(key, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%v: map key", path)
		}
		k.SetUint(u)
	case reflect.String:
		k.SetString(key)
	default:
		return errors.Errorf("%v: unsupported map key kind %v", path, k.Kind())
	}
	return nil
}

func mismatch(path, want string, got *structpb.Value) error {
	return errors.Errorf("%v: expected %v, got %T", path, want, got.GetKind())
}
