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

package file_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/ValveSoftware/vogl-sub002/core/assert"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/core/os/file"
)

func TestPathContains(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		dir      file.Path
		file     file.Path
		expected bool
	}{
		{file.Abs("foo").Join("bar"), file.Abs("foo").Join("bar", "cat"), true},
		{file.Abs("foo").Join("bar"), file.Abs("foo").Join("bar"), false},
		{file.Abs("foo").Join("bar"), file.Abs("foo").Join("barn"), false},
		{file.Abs("foo").Join("bar", "cat"), file.Abs("foo").Join("bar"), false},
	} {
		assert.For(ctx, "%v contains %v", test.dir, test.file).
			ThatBoolean(test.dir.Contains(test.file)).Equals(test.expected)
	}
}

func TestChangeExt(t *testing.T) {
	ctx := log.Testing(t)
	p := file.Abs("trace").Join("frame_0001.bin")
	assert.For(ctx, "ext").ThatString(p.Ext()).Equals(".bin")
	assert.For(ctx, "changed").ThatString(p.ChangeExt(".png").Basename()).Equals("frame_0001.png")
}

func TestWriteAtomic(t *testing.T) {
	ctx := log.Testing(t)
	dir, err := ioutil.TempDir("", "file_test")
	assert.For(ctx, "tempdir").ThatError(err).Succeeded()
	defer os.RemoveAll(dir)

	f := file.Abs(dir).Join("nested", "blob")
	assert.For(ctx, "write").ThatError(file.WriteAtomic(f, []byte("hello"))).Succeeded()
	got, err := file.Read(f)
	assert.For(ctx, "read").ThatError(err).Succeeded()
	assert.For(ctx, "data").ThatString(string(got)).Equals("hello")
	assert.For(ctx, "exists").ThatBoolean(f.Exists()).IsTrue()
	assert.For(ctx, "no temporaries").ThatSlice(f.Parent().Glob(".*")).IsEmpty()
}
