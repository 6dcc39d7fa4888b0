/*
 Chunkgen, an orchestrator for automated Minecraft world chunk generation.
 Copyright (C) 2026 Chunkgen Authors

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as published by
 the Free Software Foundation, either version 3 of the License, or
 (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package fsadapter

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/spacechunks/chunkgen/cgerrors"
)

type memFile struct {
	data []byte
	perm fs.FileMode
}

// MemFS is an in-memory FS used by tests that don't want to touch disk.
type MemFS struct {
	mu    sync.RWMutex
	files map[string]memFile
}

func NewMemFS() *MemFS {
	return &MemFS{files: map[string]memFile{}}
}

func clean(p string) string {
	return strings.TrimPrefix(path.Clean("/"+p), "/")
}

func (m *MemFS) ReadFile(_ context.Context, p string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[clean(p)]
	if !ok {
		return nil, cgerrors.New(cgerrors.KindFilesystemIO, fmt.Sprintf("read %s: not found", p))
	}
	out := make([]byte, len(f.data))
	copy(out, f.data)
	return out, nil
}

func (m *MemFS) WriteFile(_ context.Context, p string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.files[clean(p)] = memFile{data: cp, perm: perm}
	return nil
}

func (m *MemFS) MkdirAll(_ context.Context, _ string, _ fs.FileMode) error {
	// directories are implicit in the key namespace; nothing to record.
	return nil
}

func (m *MemFS) List(_ context.Context, p string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	prefix := clean(p)
	seen := map[string]struct{}{}
	for k := range m.files {
		if prefix != "" && !strings.HasPrefix(k, prefix+"/") {
			continue
		}
		rest := strings.TrimPrefix(k, prefix+"/")
		if prefix == "" {
			rest = k
		}
		first := strings.SplitN(rest, "/", 2)[0]
		if first != "" {
			seen[first] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemFS) Chmod(_ context.Context, p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := clean(p)
	f, ok := m.files[key]
	if !ok {
		return cgerrors.New(cgerrors.KindFilesystemIO, fmt.Sprintf("chmod %s: not found", p))
	}
	f.perm = perm
	m.files[key] = f
	return nil
}

func (m *MemFS) Exists(_ context.Context, p string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[clean(p)]
	return ok, nil
}

// Perm returns the permission bits recorded for p, for assertions in tests.
func (m *MemFS) Perm(p string) (fs.FileMode, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[clean(p)]
	return f.perm, ok
}

// Snapshot returns a copy of the full path->bytes multimap, for the
// mount-round-trip property in spec.md section 8.
func (m *MemFS) Snapshot() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string][]byte, len(m.files))
	for k, f := range m.files {
		cp := make([]byte, len(f.data))
		copy(cp, f.data)
		out[k] = cp
	}
	return out
}

var _ FS = (*MemFS)(nil)
var _ FS = OSFS{}
