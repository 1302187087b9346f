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

package flags

import (
	"fmt"
	"strings"
)

// Choice is one value of an enumerated flag.
type Choice interface {
	String() string
}

// Choices is the set of values an enumerated flag accepts.
type Choices []Choice

// Enum is a value that can be set from a Choice.
type Enum interface {
	String() string
	Choose(interface{})
}

// Choosable is anything that can supply a Chooser for itself.
type Choosable interface {
	Chooser() Chooser
}

// Chooser is a flag.Value that selects among Choices by name.
type Chooser struct {
	Value   Enum
	Choices Choices
}

func (c Chooser) String() string {
	if c.Value == nil {
		return ""
	}
	return c.Value.String()
}

// Set chooses the choice whose name matches value, ignoring case.
func (c Chooser) Set(value string) error {
	for _, e := range c.Choices {
		if strings.EqualFold(e.String(), value) {
			c.Value.Choose(e)
			return nil
		}
	}
	return fmt.Errorf("Unknown value %q, valid options are: %s", value, c.Choices)
}

func (c Choices) String() string {
	names := make([]string, len(c))
	for i, e := range c {
		names[i] = fmt.Sprintf("%q", e.String())
	}
	return strings.Join(names, ", ")
}
