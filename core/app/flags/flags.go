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

// Package flags binds command line flags to the fields of a struct.
//
// Each exported field becomes a flag named after the lower-cased field name,
// prefixed by the names of enclosing structs. The `name:` tag overrides the
// field part of the name and the `help:` tag supplies the usage text.
package flags

import (
	"flag"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"
)

// Set is a set of bound flags.
type Set struct {
	raw flag.FlagSet
}

// NewSet returns an empty Set with the given name. Parse errors are returned
// rather than exiting the process.
func NewSet(name string, usageOut io.Writer) *Set {
	s := &Set{}
	s.raw.Init(name, flag.ContinueOnError)
	if usageOut != nil {
		s.raw.SetOutput(usageOut)
	}
	return s
}

// Bind binds value, which must be a pointer, to flags named from name.
// Structs are walked recursively. The current value of each field is the
// flag default.
func (s *Set) Bind(name string, value interface{}, help string) {
	switch v := value.(type) {
	case *bool:
		s.raw.BoolVar(v, name, *v, help)
		return
	case *int:
		s.raw.IntVar(v, name, *v, help)
		return
	case *int64:
		s.raw.Int64Var(v, name, *v, help)
		return
	case *uint:
		s.raw.UintVar(v, name, *v, help)
		return
	case *uint64:
		s.raw.Uint64Var(v, name, *v, help)
		return
	case *float64:
		s.raw.Float64Var(v, name, *v, help)
		return
	case *string:
		s.raw.StringVar(v, name, *v, help)
		return
	case *time.Duration:
		s.raw.DurationVar(v, name, *v, help)
		return
	case Choosable:
		c := v.Chooser()
		s.raw.Var(c, name, fmt.Sprintf("%s [one of: %s]", help, c.Choices))
		return
	case flag.Value:
		s.raw.Var(v, name, help)
		return
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("Unhandled flag type: %T", value))
	}
	e := rv.Elem()
	t := e.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" || f.Tag.Get("name") == "-" {
			continue
		}
		part := strings.ToLower(f.Name)
		if n := f.Tag.Get("name"); n != "" {
			part = n
		}
		if f.Anonymous {
			part = ""
		}
		full := part
		switch {
		case part == "":
			full = name
		case name != "":
			full = name + "-" + part
		}
		s.Bind(full, e.Field(i).Addr().Interface(), f.Tag.Get("help"))
	}
}

// Parse processes args, returning the first parse error.
func (s *Set) Parse(args ...string) error { return s.raw.Parse(args) }

// Args returns the arguments left over after Parse.
func (s *Set) Args() []string { return s.raw.Args() }

// Visited returns the names of the flags set on the command line.
func (s *Set) Visited() []string {
	var out []string
	s.raw.Visit(func(f *flag.Flag) { out = append(out, f.Name) })
	return out
}

// Usage returns one line per bound flag.
func (s *Set) Usage() string {
	var lines []string
	s.raw.VisitAll(func(f *flag.Flag) {
		name, usage := flag.UnquoteUsage(f)
		line := "  -" + f.Name
		if name != "" {
			line += " " + name
		}
		line += "\n\t" + usage
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			line += fmt.Sprintf(" (default %v)", f.DefValue)
		}
		lines = append(lines, line)
	})
	return strings.Join(lines, "\n")
}
