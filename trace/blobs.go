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

package trace

import (
	"context"
	"os"
	"sync"

	"github.com/ValveSoftware/vogl-sub002/core/data/id"
	"github.com/ValveSoftware/vogl-sub002/core/fault"
	"github.com/ValveSoftware/vogl-sub002/core/log"
	"github.com/ValveSoftware/vogl-sub002/core/os/file"
	"github.com/pkg/errors"
)

// ErrBlobNotFound is returned by BlobStore.Get for unknown ids.
const ErrBlobNotFound = fault.Const("Blob not found")

// BlobStore holds large payloads by content id.
type BlobStore interface {
	Get(ctx context.Context, i id.ID) ([]byte, error)
	Put(ctx context.Context, data []byte) (id.ID, error)
}

// MemoryBlobs is an in-memory BlobStore. It is safe for concurrent use.
type MemoryBlobs struct {
	mu    sync.RWMutex
	blobs map[id.ID][]byte
}

// NewMemoryBlobs returns an empty store.
func NewMemoryBlobs() *MemoryBlobs { return &MemoryBlobs{blobs: map[id.ID][]byte{}} }

// Get implements BlobStore.
func (s *MemoryBlobs) Get(ctx context.Context, i id.ID) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[i]
	if !ok {
		return nil, errors.Wrap(ErrBlobNotFound, i.String())
	}
	return b, nil
}

// Put implements BlobStore.
func (s *MemoryBlobs) Put(ctx context.Context, data []byte) (id.ID, error) {
	i := id.OfBytes(data)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[i]; !ok {
		s.blobs[i] = append([]byte(nil), data...)
	}
	return i, nil
}

// Len returns the number of stored blobs.
func (s *MemoryBlobs) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}

// DirBlobs is a BlobStore keeping one file per blob, named by id, below a
// directory. Stored files are never rewritten.
type DirBlobs struct {
	Dir file.Path
}

// NewDirBlobs returns a store in dir, creating it if needed.
func NewDirBlobs(dir file.Path) (*DirBlobs, error) {
	if err := file.Mkdir(dir); err != nil {
		return nil, errors.Wrapf(err, "Creating blob directory %v", dir)
	}
	return &DirBlobs{Dir: dir}, nil
}

func (s *DirBlobs) path(i id.ID) file.Path {
	str := i.String()
	return s.Dir.Join(str[:2], str)
}

// Get implements BlobStore.
func (s *DirBlobs) Get(ctx context.Context, i id.ID) ([]byte, error) {
	b, err := file.Read(s.path(i))
	if os.IsNotExist(err) {
		return nil, errors.Wrap(ErrBlobNotFound, i.String())
	}
	if err != nil {
		return nil, err
	}
	if got := id.OfBytes(b); got != i {
		log.W(ctx, "Blob %v is corrupt, content hashes to %v", i, got)
		return nil, errors.Wrapf(ErrBlobNotFound, "%v corrupt", i)
	}
	return b, nil
}

// Put implements BlobStore.
func (s *DirBlobs) Put(ctx context.Context, data []byte) (id.ID, error) {
	i := id.OfBytes(data)
	p := s.path(i)
	if p.Exists() {
		return i, nil
	}
	if err := file.WriteAtomic(p, data); err != nil {
		return id.ID{}, err
	}
	return i, nil
}
