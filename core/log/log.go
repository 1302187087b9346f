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

// Package log is a context-carried structured logger.
//
// Everything a logger needs (handler, filter, clock, tag, trace stack and
// bound values) is stored on the context, so a function logs with whatever
// its caller set up:
//
//	ctx = log.V{"frame": 12}.Bind(ctx)
//	log.W(ctx, "Couldn't map handle %v", h)
package log

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Logger emits messages to a Handler.
type Logger struct {
	handler Handler
	filter  Filter
	clock   Clock
	tag     string
	trace   []string
	values  *values
}

// From returns a new Logger from the context ctx.
func From(ctx context.Context) *Logger {
	return &Logger{
		handler: GetHandler(ctx),
		filter:  GetFilter(ctx),
		clock:   GetClock(ctx),
		tag:     GetTag(ctx),
		trace:   GetTrace(ctx),
		values:  getValues(ctx),
	}
}

// Bind returns a Logger from ctx with the additional values in v.
func Bind(ctx context.Context, v V) *Logger { return From(v.Bind(ctx)) }

// Verbosef logs a verbose message.
func Verbosef(ctx context.Context, fmt string, args ...interface{}) { From(ctx).Logf(Verbose, fmt, args...) }

// D logs a debug message.
func D(ctx context.Context, fmt string, args ...interface{}) { From(ctx).Logf(Debug, fmt, args...) }

// I logs an info message.
func I(ctx context.Context, fmt string, args ...interface{}) { From(ctx).Logf(Info, fmt, args...) }

// W logs a warning message.
func W(ctx context.Context, fmt string, args ...interface{}) { From(ctx).Logf(Warning, fmt, args...) }

// E logs an error message.
func E(ctx context.Context, fmt string, args ...interface{}) { From(ctx).Logf(Error, fmt, args...) }

// F logs a fatal message. Handlers decide what fatal means; the test handler
// fails the test.
func F(ctx context.Context, fmt string, args ...interface{}) { From(ctx).Logf(Fatal, fmt, args...) }

// D logs a debug message.
func (l *Logger) D(fmt string, args ...interface{}) { l.Logf(Debug, fmt, args...) }

// I logs an info message.
func (l *Logger) I(fmt string, args ...interface{}) { l.Logf(Info, fmt, args...) }

// W logs a warning message.
func (l *Logger) W(fmt string, args ...interface{}) { l.Logf(Warning, fmt, args...) }

// E logs an error message.
func (l *Logger) E(fmt string, args ...interface{}) { l.Logf(Error, fmt, args...) }

// Active returns true if a message of severity s would reach a handler.
// Use it to skip building expensive log text.
func (l *Logger) Active(s Severity) bool {
	if l.handler == nil {
		return false
	}
	return l.filter == nil || l.filter.ShowSeverity(s)
}

// Logf logs a printf-style message at severity s.
func (l *Logger) Logf(s Severity, f string, args ...interface{}) {
	if !l.Active(s) {
		return
	}
	l.handler.Handle(l.Message(s, fmt.Sprintf(f, args...)))
}

// Log logs text at severity s.
func (l *Logger) Log(s Severity, text string) {
	if !l.Active(s) {
		return
	}
	l.handler.Handle(l.Message(s, text))
}

// Message returns a new Message with the given severity and text, stamped
// with the logger's clock, tag, trace and values.
func (l *Logger) Message(s Severity, text string) *Message {
	var t time.Time
	if l.clock != nil {
		t = l.clock.Time()
	} else {
		t = time.Now()
	}
	m := &Message{
		Text:     text,
		Time:     t,
		Severity: s,
		Tag:      l.tag,
		Trace:    l.trace,
	}
	seen := map[string]bool{}
	for n := l.values; n != nil; n = n.parent {
		for name, value := range n.v {
			if seen[name] {
				continue
			}
			seen[name] = true
			m.Values = append(m.Values, &Value{Name: name, Value: value})
		}
	}
	sort.Sort(m.Values)
	return m
}
