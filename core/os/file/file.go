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

// Package file holds path and file helpers for trace, blob and screenshot
// output.
package file

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// Mkdir creates dir and any missing parents.
func Mkdir(dir Path) error {
	if dir.IsEmpty() {
		return nil
	}
	return os.MkdirAll(dir.value, os.ModePerm)
}

// Remove deletes the file at f.
func Remove(f Path) error { return os.Remove(f.value) }

// Read returns the contents of f.
func Read(f Path) ([]byte, error) { return ioutil.ReadFile(f.value) }

// Create creates or truncates f, creating its directory first.
func Create(f Path) (*os.File, error) {
	if err := Mkdir(f.Parent()); err != nil {
		return nil, err
	}
	return os.Create(f.value)
}

// Open opens f for reading.
func Open(f Path) (*os.File, error) { return os.Open(f.value) }

// WriteAtomic writes data to f through a temporary file in the same
// directory, so readers never see a partial file.
func WriteAtomic(f Path, data []byte) error {
	dir := f.Parent()
	if err := Mkdir(dir); err != nil {
		return errors.Wrapf(err, "Creating %v", dir)
	}
	tmp, err := ioutil.TempFile(dir.value, "."+f.Basename())
	if err != nil {
		return errors.Wrap(err, "Creating temporary file")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "Writing %v", f)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.value)
}
