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

// Package fsadapter is the filesystem capability injected into the tree
// mounter and resolvers (spec.md section 9: "Pluggable adapters -> capability
// objects"). It exists so the core can run deterministically under tests
// without touching a real disk.
package fsadapter

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spacechunks/chunkgen/cgerrors"
)

// FS is the narrow set of filesystem operations the core needs.
type FS interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte, perm fs.FileMode) error
	MkdirAll(ctx context.Context, path string, perm fs.FileMode) error
	List(ctx context.Context, path string) ([]string, error)
	Chmod(ctx context.Context, path string, perm fs.FileMode) error
	Exists(ctx context.Context, path string) (bool, error)
}

// OSFS implements FS against the real filesystem.
type OSFS struct{}

func NewOSFS() OSFS { return OSFS{} }

func (OSFS) ReadFile(_ context.Context, path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, cgerrors.New(cgerrors.KindFilesystemIO, fmt.Sprintf("read %s", path), err)
	}
	return b, nil
}

func (OSFS) WriteFile(_ context.Context, path string, data []byte, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return cgerrors.New(cgerrors.KindFilesystemIO, fmt.Sprintf("mkdir for %s", path), err)
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return cgerrors.New(cgerrors.KindFilesystemIO, fmt.Sprintf("write %s", path), err)
	}
	return nil
}

func (OSFS) MkdirAll(_ context.Context, path string, perm fs.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return cgerrors.New(cgerrors.KindFilesystemIO, fmt.Sprintf("mkdir %s", path), err)
	}
	return nil
}

func (OSFS) List(_ context.Context, path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, cgerrors.New(cgerrors.KindFilesystemIO, fmt.Sprintf("list %s", path), err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

func (OSFS) Chmod(_ context.Context, path string, perm fs.FileMode) error {
	if err := os.Chmod(path, perm); err != nil {
		return cgerrors.New(cgerrors.KindFilesystemIO, fmt.Sprintf("chmod %s", path), err)
	}
	return nil
}

func (OSFS) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, cgerrors.New(cgerrors.KindFilesystemIO, fmt.Sprintf("stat %s", path), err)
}
