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

// Package keys records which context keys have been set so that a set of
// values can be copied onto a detached context.
package keys

import "context"

type keyListTy int

const keyList = keyListTy(0)

type link struct {
	key  interface{}
	next *link
}

// WithValue is context.WithValue that also remembers key for Get and Clone.
func WithValue(ctx context.Context, key, value interface{}) context.Context {
	prev, _ := ctx.Value(keyList).(*link)
	ctx = context.WithValue(ctx, key, value)
	return context.WithValue(ctx, keyList, &link{key: key, next: prev})
}

// Get returns the keys registered on ctx, oldest first, without duplicates.
func Get(ctx context.Context) []interface{} {
	var rev []interface{}
	for l, _ := ctx.Value(keyList).(*link); l != nil; l = l.next {
		rev = append(rev, l.key)
	}
	seen := map[interface{}]bool{}
	out := make([]interface{}, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		if k := rev[i]; !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// Clone copies every registered value of from onto ctx.
// The remote service uses this to give request handlers the server's logging
// setup without inheriting the server context's cancellation.
func Clone(ctx, from context.Context) context.Context {
	for _, k := range Get(from) {
		ctx = WithValue(ctx, k, from.Value(k))
	}
	return ctx
}
