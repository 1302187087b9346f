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
	"context"
	"fmt"
)

// Err returns an error wrapping cause that carries the logger's values.
func (l *Logger) Err(cause error, msg string) error {
	return &err{cause: cause, msg: l.Message(Error, msg)}
}

// Errf is Err with printf-style formatting.
func (l *Logger) Errf(cause error, f string, args ...interface{}) error {
	return l.Err(cause, fmt.Sprintf(f, args...))
}

// Err returns an error wrapping cause with the values bound to ctx.
func Err(ctx context.Context, cause error, msg string) error {
	return From(ctx).Err(cause, msg)
}

// Errf is Err with printf-style formatting.
func Errf(ctx context.Context, cause error, f string, args ...interface{}) error {
	return From(ctx).Errf(cause, f, args...)
}

type err struct {
	cause error
	msg   *Message
}

// Cause lets errors.Cause find the wrapped error.
func (e *err) Cause() error { return e.cause }

func (e *err) Unwrap() error { return e.cause }

func (e *err) Error() string {
	text := Style{Values: ValuesSingleLine}.Print(e.msg)
	if e.cause == nil {
		return text
	}
	return fmt.Sprintf("%v: %v", text, e.cause)
}
