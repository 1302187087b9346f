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

package log_test

import (
	"context"
	"testing"
	"time"

	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/fault"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/pkg/errors"
)

var testClock = log.FixedClock(time.Date(2000, 1, 22, 12, 34, 56, 789e6, time.UTC))

type messages []*log.Message

func (l *messages) Handle(m *log.Message) { *l = append(*l, m) }
func (l *messages) Close()                {}

func TestStyles(t *testing.T) {
	assertCtx := log.Testing(t)
	for _, test := range []struct {
		style  log.Style
		expect string
	}{
		{log.Raw, "Couldn't map handle 7"},
		{log.Brief, "W: Couldn't map handle 7"},
		{log.Normal, "12:34:56.789 W: [replay] <frame.packet> Couldn't map handle 7 (call: 42, ns: textures)"},
		{log.Detailed, "12:34:56.789 Warning: [replay] <frame.packet> Couldn't map handle 7\n  call: 42\n  ns: textures"},
	} {
		w, buf := log.Buffer()
		ctx := context.Background()
		ctx = log.PutHandler(ctx, test.style.Handler(w))
		ctx = log.PutClock(ctx, testClock)
		ctx = log.PutTag(ctx, "replay")
		ctx = log.Enter(ctx, "frame")
		ctx = log.Enter(ctx, "packet")
		ctx = log.V{"ns": "textures", "call": 42}.Bind(ctx)
		log.W(ctx, "Couldn't map handle %v", 7)
		assert.For(assertCtx, "style %v", test.style).ThatString(buf.String()).Equals(test.expect)
	}
}

func TestFilter(t *testing.T) {
	assertCtx := log.Testing(t)
	got := messages{}
	ctx := log.PutHandler(context.Background(), &got)
	ctx = log.PutFilter(ctx, log.SeverityFilter(log.Warning))
	log.D(ctx, "dropped")
	log.I(ctx, "dropped")
	log.W(ctx, "kept")
	log.E(ctx, "kept")
	assert.For(assertCtx, "messages").ThatSlice(got).IsLength(2)
	assert.For(assertCtx, "active").ThatBoolean(log.From(ctx).Active(log.Debug)).IsFalse()
}

func TestValuesShadow(t *testing.T) {
	assertCtx := log.Testing(t)
	got := messages{}
	ctx := log.PutHandler(context.Background(), &got)
	ctx = log.V{"ctx": 1, "frame": 3}.Bind(ctx)
	ctx = log.V{"ctx": 2}.Bind(ctx)
	log.I(ctx, "switch")
	assert.For(assertCtx, "values").ThatSlice(got[0].Values).IsLength(2)
	assert.For(assertCtx, "ctx").That(got[0].Values.Get("ctx")).Equals(2)
	assert.For(assertCtx, "frame").That(got[0].Values.Get("frame")).Equals(3)
}

func TestErr(t *testing.T) {
	assertCtx := log.Testing(t)
	const errMiss = fault.Const("not tracked")
	ctx := log.V{"handle": 7}.Bind(context.Background())
	err := log.Errf(ctx, errMiss, "remap %s", "texture")
	assert.For(assertCtx, "text").ThatString(err.Error()).Equals("remap texture (handle: 7): not tracked")
	assert.For(assertCtx, "cause").ThatError(err).HasCause(errMiss)
	assert.For(assertCtx, "wrapped cause").ThatError(errors.Wrap(err, "restore")).HasCause(errMiss)
}

func TestChannel(t *testing.T) {
	assertCtx := log.Testing(t)
	got := messages{}
	h := log.Channel(&got, 4)
	ctx := log.PutHandler(context.Background(), h)
	for i := 0; i < 10; i++ {
		log.I(ctx, "packet %d", i)
	}
	h.Close()
	assert.For(assertCtx, "delivered").ThatSlice(got).IsLength(10)
	assert.For(assertCtx, "order").ThatString(got[9].Text).Equals("packet 9")
}

func TestIndirect(t *testing.T) {
	assertCtx := log.Testing(t)
	a, b := messages{}, messages{}
	i := &log.Indirect{}
	ctx := log.PutHandler(context.Background(), i)
	log.I(ctx, "nowhere")
	i.SetTarget(&a)
	log.I(ctx, "to a")
	old := i.SetTarget(log.Broadcast(&a, &b))
	log.I(ctx, "to both")
	assert.For(assertCtx, "old").That(old).Equals(log.Handler(&a))
	assert.For(assertCtx, "a").ThatSlice(a).IsLength(2)
	assert.For(assertCtx, "b").ThatSlice(b).IsLength(1)
}

func TestParseSeverity(t *testing.T) {
	assertCtx := log.Testing(t)
	s, ok := log.ParseSeverity("W")
	assert.For(assertCtx, "ok").ThatBoolean(ok).IsTrue()
	assert.For(assertCtx, "severity").That(s).Equals(log.Warning)
	_, ok = log.ParseSeverity("loud")
	assert.For(assertCtx, "unknown").ThatBoolean(ok).IsFalse()
}
