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

import "fmt"

// Severity orders log messages by importance.
type Severity int

const (
	// Verbose is for per-packet chatter.
	Verbose Severity = iota
	// Debug is for diagnostics useful while investigating a replay.
	Debug
	// Info is for progress messages.
	Info
	// Warning is for divergences and recoverable problems.
	Warning
	// Error is for failures of a single operation.
	Error
	// Fatal is for failures that end the replay.
	Fatal
)

var severityNames = [...]struct{ long, short string }{
	Verbose: {"Verbose", "V"},
	Debug:   {"Debug", "D"},
	Info:    {"Info", "I"},
	Warning: {"Warning", "W"},
	Error:   {"Error", "E"},
	Fatal:   {"Fatal", "F"},
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "Unknown"
	}
	return severityNames[s].long
}

// Short returns the single character form of the severity.
func (s Severity) Short() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "?"
	}
	return severityNames[s].short
}

// ParseSeverity returns the severity with the given long or short name.
func ParseSeverity(name string) (Severity, bool) {
	for i, n := range severityNames {
		if n.long == name || n.short == name {
			return Severity(i), true
		}
	}
	return Info, false
}

// Set implements flag.Value.
func (s *Severity) Set(name string) error {
	v, ok := ParseSeverity(name)
	if !ok {
		return fmt.Errorf("Unknown severity %q", name)
	}
	*s = v
	return nil
}
