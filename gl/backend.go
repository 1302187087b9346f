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

package gl

import "context"

// NativeContext is an opaque backend context handle. Zero is no context.
type NativeContext uint64

// ContextDesc describes a context to create.
type ContextDesc struct {
	// Share is the native context whose share-group the new context joins.
	Share NativeContext
	// Attribs is the zero terminated attribute list, if any.
	Attribs []int32
	Direct  bool
	// Debug requests a debug context.
	Debug bool
}

// Backend is the window-system layer the replayer renders through.
type Backend interface {
	// CreateContext creates a native context.
	CreateContext(ctx context.Context, desc ContextDesc) (NativeContext, error)
	// DestroyContext destroys a native context.
	DestroyContext(ctx context.Context, c NativeContext) error
	// MakeCurrent binds c to the window. Zero releases the current context.
	MakeCurrent(ctx context.Context, c NativeContext) error
	// SwapBuffers presents the window's back buffer.
	SwapBuffers(ctx context.Context) error
	// RequestResize asks the window system for a new window size. The
	// resize completes asynchronously, observe it through Dimensions.
	RequestResize(ctx context.Context, width, height int)
	// Dimensions returns the current window size.
	Dimensions() (width, height int)
	// Procs returns the entrypoint table of the current context.
	Procs() *Procs
}

// EventPump is implemented by backends whose window system needs to be
// serviced while the replayer waits for a resize.
type EventPump interface {
	Pump(ctx context.Context)
}
