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

package id_test

import (
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/data/id"
	"github.com/ValveSoftware/vogl-sub002/core/log"
)

func TestOfBytes(t *testing.T) {
	ctx := log.Testing(t)
	a := id.OfString("void main() {}")
	b := id.OfBytes([]byte("void main"), []byte("() {}"))
	assert.For(ctx, "split content").That(a).Equals(b)
	assert.For(ctx, "sha1").ThatString(id.OfString("").String()).Equals("da39a3ee5e6b4b0d3255bfef95601890afd80709")
	assert.For(ctx, "valid").ThatBoolean(a.IsValid()).IsTrue()
	assert.For(ctx, "zero").ThatBoolean(id.ID{}.IsValid()).IsFalse()
}

func TestParse(t *testing.T) {
	ctx := log.Testing(t)
	a := id.OfString("texture level 0")
	b, err := id.Parse(a.String())
	assert.For(ctx, "err").ThatError(err).Succeeded()
	assert.For(ctx, "round trip").That(b).Equals(a)
	_, err = id.Parse("abcd")
	assert.For(ctx, "short").ThatError(err).Failed()
	_, err = id.Parse("zz")
	assert.For(ctx, "not hex").ThatError(err).Failed()
}

func TestUnique(t *testing.T) {
	ctx := log.Testing(t)
	assert.For(ctx, "unique").That(id.Unique()).NotEquals(id.Unique())
}
