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

import "sync"

// Handler receives log messages.
type Handler interface {
	Handle(*Message)
	Close()
}

type handler struct {
	handle func(*Message)
	close  func()
}

func (h handler) Handle(m *Message) { h.handle(m) }
func (h handler) Close() {
	if h.close != nil {
		h.close()
	}
}

// NewHandler returns a Handler built from the two functions. close may be nil.
func NewHandler(handle func(*Message), close func()) Handler {
	return handler{handle: handle, close: close}
}

// Broadcast returns a Handler that forwards every message to all of to.
func Broadcast(to ...Handler) Handler {
	return handler{
		handle: func(m *Message) {
			for _, h := range to {
				h.Handle(m)
			}
		},
		close: func() {
			for _, h := range to {
				h.Close()
			}
		},
	}
}

// Channel returns a Handler that passes messages to to on a separate
// goroutine through a buffered chan of the given size. Close flushes
// outstanding messages and closes to.
func Channel(to Handler, size int) Handler {
	c := make(chan *Message, size)
	done := make(chan struct{})
	go func() {
		defer func() {
			to.Close()
			close(done)
		}()
		for m := range c {
			if m == nil {
				return
			}
			to.Handle(m)
		}
	}()
	var once sync.Once
	return handler{
		handle: func(m *Message) {
			if m == nil {
				return
			}
			select {
			case c <- m:
			case <-done:
			}
		},
		close: func() {
			once.Do(func() {
				c <- nil
				<-done
			})
		},
	}
}

// Indirect is a Handler that forwards to a target which can be swapped at
// any time.
type Indirect struct {
	mutex  sync.RWMutex
	target Handler
}

// SetTarget replaces the target, returning the previous one.
func (i *Indirect) SetTarget(h Handler) Handler {
	i.mutex.Lock()
	defer i.mutex.Unlock()
	old := i.target
	i.target = h
	return old
}

// Target returns the current target.
func (i *Indirect) Target() Handler {
	i.mutex.RLock()
	defer i.mutex.RUnlock()
	return i.target
}

func (i *Indirect) Handle(m *Message) {
	if t := i.Target(); t != nil {
		t.Handle(m)
	}
}

func (i *Indirect) Close() {
	if t := i.Target(); t != nil {
		t.Close()
	}
}
