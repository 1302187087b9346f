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

package file

import (
	"os"
	"path/filepath"
	"strings"
)

// Path is a clean absolute path with platform specific separators.
type Path struct{ value string }

// Abs returns the absolute form of path. Either separator is accepted.
func Abs(path string) Path {
	if path == "" {
		return Path{}
	}
	abs, err := filepath.Abs(filepath.FromSlash(path))
	if err != nil {
		return Path{path}
	}
	return Path{filepath.Clean(abs)}
}

// IsEmpty returns true if the path has no value.
func (p Path) IsEmpty() bool { return p.value == "" }

// IsDir returns true if the path exists and is a directory.
func (p Path) IsDir() bool {
	info := p.Info()
	return info != nil && info.IsDir()
}

// System returns the path using the system separator.
func (p Path) System() string { return p.value }

func (p Path) String() string { return p.value }

// Set assigns the path. It implements flag.Value.
func (p *Path) Set(value string) error {
	*p = Abs(value)
	return nil
}

// Parent returns the directory holding the path.
func (p Path) Parent() Path { return Path{filepath.Dir(p.value)} }

// Basename returns the final element of the path.
func (p Path) Basename() string { return filepath.Base(p.value) }

// Ext returns the extension of the path including the '.', or "".
func (p Path) Ext() string { return filepath.Ext(p.value) }

// ChangeExt returns p with its extension replaced by ext.
func (p Path) ChangeExt(ext string) Path {
	prev := filepath.Ext(p.value)
	return Path{p.value[:len(p.value)-len(prev)] + ext}
}

// Join returns p with the child elements appended. / separators in the
// elements are converted.
func (p Path) Join(join ...string) Path {
	if len(join) == 0 {
		return p
	}
	return Path{filepath.Clean(filepath.Join(p.value, filepath.FromSlash(filepath.Join(join...))))}
}

// Glob returns the files below p matching the patterns.
func (p Path) Glob(pattern ...string) []Path {
	list := []Path{}
	for _, test := range pattern {
		matches, err := filepath.Glob(filepath.Join(p.value, test))
		if err != nil {
			return nil
		}
		for _, match := range matches {
			list = append(list, Path{match})
		}
	}
	return list
}

// Info returns the file information for the path, or nil.
func (p Path) Info() os.FileInfo {
	info, _ := os.Stat(p.value)
	return info
}

// Exists returns true if the path exists.
func (p Path) Exists() bool { return p.Info() != nil }

// Contains returns true if p is a strict parent of other.
func (p Path) Contains(other Path) bool {
	if len(p.value) >= len(other.value) {
		return false
	}
	return strings.HasPrefix(other.value, p.value+string(filepath.Separator))
}
