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

// Package id provides the content identifiers used to address blobs.
package id

import (
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Size is the size of an ID in bytes.
const Size = 20

// ID is a 20 byte identifier, normally the SHA-1 of the content it names.
type ID [Size]byte

// IsValid returns true if the id is not the zero value.
func (i ID) IsValid() bool { return i != ID{} }

func (i ID) String() string { return hex.EncodeToString(i[:]) }

// Format implements fmt.Formatter, printing the id in hex.
func (i ID) Format(f fmt.State, c rune) { fmt.Fprintf(f, "%x", i[:]) }

// Parse parses s as a hex encoded ID.
func Parse(s string) (ID, error) {
	out := ID{}
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, err
	}
	if len(b) != Size {
		return out, errors.Errorf("Invalid ID size: got %d, expected %d", len(b), Size)
	}
	copy(out[:], b)
	return out, nil
}

// OfBytes returns the ID of the given content.
func OfBytes(data ...[]byte) ID {
	h := sha1.New()
	for _, d := range data {
		h.Write(d)
	}
	out := ID{}
	copy(out[:], h.Sum(nil))
	return out
}

// OfString returns the ID of the given string content.
func OfString(s string) ID { return OfBytes([]byte(s)) }

// Unique returns a random ID, used for snapshot UUIDs.
func Unique() ID {
	out := ID{}
	if _, err := io.ReadFull(rand.Reader, out[:]); err != nil {
		panic(err)
	}
	return out
}

// MarshalText encodes the ID as hex, for YAML and JSON.
func (i ID) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText decodes a hex ID.
func (i *ID) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
