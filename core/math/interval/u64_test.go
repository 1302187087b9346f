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

package interval_test

import (
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/core/math/interval"
)

type S = interval.U64Span
type L = interval.U64SpanList

func TestMerge(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name   string
		list   L
		with   S
		expect L
	}{
		{"empty", L{}, S{0, 4}, L{{0, 4}}},
		{"between", L{{0, 10}, {40, 50}}, S{20, 30}, L{{0, 10}, {20, 30}, {40, 50}}},
		{"before", L{{10, 20}}, S{0, 5}, L{{0, 5}, {10, 20}}},
		{"after", L{{10, 20}}, S{30, 40}, L{{10, 20}, {30, 40}}},
		{"touching", L{{0, 10}, {20, 30}}, S{10, 20}, L{{0, 30}}},
		{"overlap low", L{{10, 20}}, S{5, 15}, L{{5, 20}}},
		{"overlap high", L{{10, 20}}, S{15, 25}, L{{10, 25}}},
		{"swallow", L{{10, 12}, {14, 16}, {30, 40}}, S{0, 20}, L{{0, 20}, {30, 40}}},
		{"inside", L{{0, 100}}, S{10, 20}, L{{0, 100}}},
	} {
		l := append(L{}, test.list...)
		l.Merge(test.with)
		assert.For(ctx, test.name).That(l).DeepEquals(test.expect)
	}
}

func TestRemove(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		name   string
		list   L
		cut    S
		expect L
	}{
		{"miss", L{{0, 10}}, S{20, 30}, L{{0, 10}}},
		{"split", L{{0, 30}}, S{10, 20}, L{{0, 10}, {20, 30}}},
		{"trim both", L{{0, 15}, {18, 30}}, S{10, 20}, L{{0, 10}, {20, 30}}},
		{"all", L{{10, 20}, {30, 40}}, S{0, 50}, L{}},
	} {
		l := append(L{}, test.list...)
		l.Remove(test.cut)
		assert.For(ctx, test.name).That(l).DeepEquals(test.expect)
	}
}

func TestQueries(t *testing.T) {
	ctx := log.Testing(t)
	l := L{{0, 10}, {20, 30}}
	assert.For(ctx, "index 5").ThatInteger(l.IndexOf(5)).Equals(0)
	assert.For(ctx, "index 10").ThatInteger(l.IndexOf(10)).Equals(-1)
	assert.For(ctx, "index 29").ThatInteger(l.IndexOf(29)).Equals(1)
	assert.For(ctx, "intersect").That(l.Intersect(S{5, 25})).DeepEquals(L{{5, 10}, {20, 25}})
	assert.For(ctx, "bounds").That(l.Bounds()).Equals(S{0, 30})
	assert.For(ctx, "range").That(S{4, 10}.Range()).Equals(interval.U64Range{First: 4, Count: 6})
}
