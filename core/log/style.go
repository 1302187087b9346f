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

package log

import (
	"fmt"
	"strings"
	"time"

	"github.com/ValveSoftware/vogl-sub002/core/app/flags"
)

// Style controls how a Message is formatted.
type Style struct {
	Name      string        // Name of the style.
	Timestamp bool          // Print the timestamp.
	Tag       bool          // Print the tag.
	Trace     bool          // Print the trace stack.
	Severity  SeverityStyle // How to print the severity.
	Values    ValueStyle    // How to print bound values.
}

// SeverityStyle selects how the severity is printed.
type SeverityStyle int

const (
	NoSeverity SeverityStyle = iota
	SeverityShort
	SeverityLong
)

// ValueStyle selects how bound values are printed.
type ValueStyle int

const (
	NoValues ValueStyle = iota
	ValuesSingleLine
	ValuesMultiLine
)

var (
	// Raw prints only the text.
	Raw = Style{Name: "raw"}
	// Brief prints the short severity and the text.
	Brief = Style{Name: "brief", Severity: SeverityShort}
	// Normal prints timestamp, tag, trace, short severity, text and values on
	// one line.
	Normal = Style{Name: "normal", Timestamp: true, Tag: true, Trace: true, Severity: SeverityShort, Values: ValuesSingleLine}
	// Detailed prints everything, one value per line.
	Detailed = Style{Name: "detailed", Timestamp: true, Tag: true, Trace: true, Severity: SeverityLong, Values: ValuesMultiLine}

	styles = flags.Choices{Raw, Brief, Normal, Detailed}
)

func (s Style) String() string { return s.Name }

// Choose implements flags.Choosable.
func (s *Style) Choose(v interface{}) { *s = v.(Style) }

// Chooser returns a flags.Chooser for selecting a style by name.
func (s *Style) Chooser() flags.Chooser { return flags.Chooser{Value: s, Choices: styles} }

// Handler returns a Handler that formats messages with s and writes them to w.
func (s Style) Handler(w Writer) Handler {
	return handler{handle: func(m *Message) { w(s.Print(m), m.Severity) }}
}

// Print formats m.
func (s Style) Print(m *Message) string {
	parts := make([]string, 0, 6)
	if s.Timestamp && !m.Time.IsZero() {
		parts = append(parts, HHMMSSsss(m.Time))
	}
	switch s.Severity {
	case SeverityShort:
		parts = append(parts, m.Severity.Short()+":")
	case SeverityLong:
		parts = append(parts, m.Severity.String()+":")
	}
	if s.Tag && m.Tag != "" {
		parts = append(parts, "["+m.Tag+"]")
	}
	if s.Trace && len(m.Trace) > 0 {
		parts = append(parts, "<"+strings.Join(m.Trace, ".")+">")
	}
	parts = append(parts, m.Text)
	out := strings.Join(parts, " ")
	if len(m.Values) == 0 {
		return out
	}
	switch s.Values {
	case ValuesSingleLine:
		vs := make([]string, len(m.Values))
		for i, v := range m.Values {
			vs[i] = fmt.Sprintf("%v: %v", v.Name, v.Value)
		}
		out += " (" + strings.Join(vs, ", ") + ")"
	case ValuesMultiLine:
		for _, v := range m.Values {
			out += fmt.Sprintf("\n  %v: %v", v.Name, v.Value)
		}
	}
	return out
}

// HHMMSSsss formats t as hours:minutes:seconds.milliseconds.
func HHMMSSsss(t time.Time) string {
	return fmt.Sprintf("%.2d:%.2d:%.2d.%.3d", t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1e6)
}
