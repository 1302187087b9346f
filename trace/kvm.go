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
	"fmt"
	"sort"

	"github.com/ValveSoftware/vogl-sub002/core/data/id"
)

// Key is a sidecar key: a string, or an integer when Name is empty.
type Key struct {
	Name  string
	Index int64
}

// StringKey returns a named key.
func StringKey(name string) Key { return Key{Name: name} }

// IntKey returns an integer key.
func IntKey(i int64) Key { return Key{Index: i} }

// IsString returns true for named keys.
func (k Key) IsString() bool { return k.Name != "" }

func (k Key) String() string {
	if k.IsString() {
		return k.Name
	}
	return fmt.Sprint(k.Index)
}

func (k Key) less(o Key) bool {
	if k.IsString() != o.IsString() {
		return !k.IsString()
	}
	if k.IsString() {
		return k.Name < o.Name
	}
	return k.Index < o.Index
}

// ValueKind is the type of a sidecar value.
type ValueKind uint8

const (
	KindInt ValueKind = iota + 1
	KindUint
	KindFloat
	KindString
	KindBytes
	KindBlob
	KindBool
)

// Entry is one sidecar value.
type Entry struct {
	Kind  ValueKind
	Int   int64
	Uint  uint64
	Float float64
	Str   string
	Bytes []byte
	Blob  id.ID
	Bool  bool
}

func (e Entry) String() string {
	switch e.Kind {
	case KindInt:
		return fmt.Sprint(e.Int)
	case KindUint:
		return fmt.Sprint(e.Uint)
	case KindFloat:
		return fmt.Sprint(e.Float)
	case KindString:
		return fmt.Sprintf("%q", e.Str)
	case KindBytes:
		return fmt.Sprintf("<%d bytes>", len(e.Bytes))
	case KindBlob:
		return "blob:" + e.Blob.String()
	case KindBool:
		return fmt.Sprint(e.Bool)
	}
	return "?"
}

// KeyValueMap is the sidecar of a packet. The zero value is an empty map.
type KeyValueMap struct {
	entries map[Key]Entry
}

func (m *KeyValueMap) set(k Key, e Entry) {
	if m.entries == nil {
		m.entries = map[Key]Entry{}
	}
	m.entries[k] = e
}

func (m *KeyValueMap) SetInt(k Key, v int64)     { m.set(k, Entry{Kind: KindInt, Int: v}) }
func (m *KeyValueMap) SetUint(k Key, v uint64)   { m.set(k, Entry{Kind: KindUint, Uint: v}) }
func (m *KeyValueMap) SetFloat(k Key, v float64) { m.set(k, Entry{Kind: KindFloat, Float: v}) }
func (m *KeyValueMap) SetString(k Key, v string) { m.set(k, Entry{Kind: KindString, Str: v}) }
func (m *KeyValueMap) SetBytes(k Key, v []byte)  { m.set(k, Entry{Kind: KindBytes, Bytes: v}) }
func (m *KeyValueMap) SetBlob(k Key, v id.ID)    { m.set(k, Entry{Kind: KindBlob, Blob: v}) }
func (m *KeyValueMap) SetBool(k Key, v bool)     { m.set(k, Entry{Kind: KindBool, Bool: v}) }

// Get returns the entry for k.
func (m KeyValueMap) Get(k Key) (Entry, bool) {
	e, ok := m.entries[k]
	return e, ok
}

// Has returns true if k is present.
func (m KeyValueMap) Has(k Key) bool {
	_, ok := m.entries[k]
	return ok
}

// Int returns an integer value of k, converting from the unsigned and
// boolean kinds.
func (m KeyValueMap) Int(k Key) (int64, bool) {
	e, ok := m.entries[k]
	switch {
	case !ok:
		return 0, false
	case e.Kind == KindInt:
		return e.Int, true
	case e.Kind == KindUint:
		return int64(e.Uint), true
	case e.Kind == KindBool:
		if e.Bool {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

// String returns the string value of k.
func (m KeyValueMap) String(k Key) (string, bool) {
	e, ok := m.entries[k]
	if !ok || e.Kind != KindString {
		return "", false
	}
	return e.Str, true
}

// Bytes returns the bytes value of k.
func (m KeyValueMap) Bytes(k Key) ([]byte, bool) {
	e, ok := m.entries[k]
	if !ok || e.Kind != KindBytes {
		return nil, false
	}
	return e.Bytes, true
}

// Blob returns the blob id value of k. A string value holding a hex id is
// also accepted.
func (m KeyValueMap) Blob(k Key) (id.ID, bool) {
	e, ok := m.entries[k]
	switch {
	case !ok:
		return id.ID{}, false
	case e.Kind == KindBlob:
		return e.Blob, true
	case e.Kind == KindString:
		i, err := id.Parse(e.Str)
		return i, err == nil
	}
	return id.ID{}, false
}

// Delete removes k.
func (m *KeyValueMap) Delete(k Key) { delete(m.entries, k) }

// Len returns the number of entries.
func (m KeyValueMap) Len() int { return len(m.entries) }

// Keys returns the keys in order: integer keys first, then names.
func (m KeyValueMap) Keys() []Key {
	out := make([]Key, 0, len(m.entries))
	for k := range m.entries {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}

// Clone returns a deep copy of m.
func (m KeyValueMap) Clone() KeyValueMap {
	if m.entries == nil {
		return KeyValueMap{}
	}
	out := KeyValueMap{entries: make(map[Key]Entry, len(m.entries))}
	for k, e := range m.entries {
		if e.Bytes != nil {
			e.Bytes = append([]byte(nil), e.Bytes...)
		}
		out.entries[k] = e
	}
	return out
}
