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

package snapshot

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a least recently used set of snapshots keyed by frame index.
// It is safe for concurrent use.
type Cache struct {
	entries *lru.Cache[int64, *Snapshot]
}

// NewCache returns a cache holding at most capacity snapshots.
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	entries, err := lru.New[int64, *Snapshot](capacity)
	if err != nil {
		// Only a non-positive size is rejected.
		panic(err)
	}
	return &Cache{entries: entries}
}

// Put adds s as the snapshot of frame, evicting the least recently used
// entry when full.
func (c *Cache) Put(frame int64, s *Snapshot) { c.entries.Add(frame, s) }

// Get returns the snapshot of frame.
func (c *Cache) Get(frame int64) (*Snapshot, bool) { return c.entries.Get(frame) }

// Nearest returns the cached snapshot with the highest frame at or before
// frame.
func (c *Cache) Nearest(frame int64) (*Snapshot, int64, bool) {
	best, found := int64(0), false
	for _, f := range c.entries.Keys() {
		if f <= frame && (!found || f > best) {
			best, found = f, true
		}
	}
	if !found {
		return nil, 0, false
	}
	s, ok := c.entries.Get(best)
	return s, best, ok
}

// Len returns the number of cached snapshots.
func (c *Cache) Len() int { return c.entries.Len() }

// Clear drops every snapshot.
func (c *Cache) Clear() { c.entries.Purge() }
