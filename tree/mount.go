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

package tree

import (
	"context"
	"path"

	"golang.org/x/sync/errgroup"

	"github.com/spacechunks/chunkgen/cgerrors"
	"github.com/spacechunks/chunkgen/fetch"
	"github.com/spacechunks/chunkgen/fsadapter"
)

// MountOptions bounds how many leaves are resolved concurrently. Grounded
// on internal/tarhelper/tar.go's directories-before-files staging
// discipline, generalised from a single-threaded tar walk to a bounded
// fan-out over the three leaf kinds.
type MountOptions struct {
	// MaxConcurrency caps simultaneous file resolutions. Zero means 8.
	MaxConcurrency int
}

// Mount materialises every leaf in t under baseDir, via fsys for directory
// creation/writes and fetcher for KindRemote leaves. Directories are
// created first and serially, because writes beneath them fan out
// concurrently afterwards; a single failed leaf aborts the remaining
// in-flight work (errgroup.WithContext cancellation), and the first error
// observed is returned.
func Mount(ctx context.Context, t *Tree, baseDir string, fsys fsadapter.FS, fetcher fetch.Fetcher, opts MountOptions) error {
	leaves := t.flatten("")

	dirSet := map[string]struct{}{}
	for _, l := range leaves {
		dirSet[path.Dir(l.path)] = struct{}{}
	}
	for dir := range dirSet {
		full := path.Join(baseDir, dir)
		if err := fsys.MkdirAll(ctx, full, 0o755); err != nil {
			return cgerrors.New(cgerrors.KindFilesystemIO, "mkdir", err, map[string]any{"dir": full})
		}
	}

	limit := opts.MaxConcurrency
	if limit <= 0 {
		limit = 8
	}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	for _, l := range leaves {
		l := l
		group.Go(func() error {
			return mountLeaf(gctx, fsys, fetcher, path.Join(baseDir, l.path), l.node)
		})
	}
	return group.Wait()
}

func mountLeaf(ctx context.Context, fsys fsadapter.FS, fetcher fetch.Fetcher, dest string, node FileNode) error {
	var data []byte

	switch node.Kind {
	case KindInline:
		data = node.Data
	case KindLocal:
		b, err := fsys.ReadFile(ctx, node.LocalPath)
		if err != nil {
			return cgerrors.New(cgerrors.KindFilesystemIO, "read local leaf", err, map[string]any{"path": node.LocalPath})
		}
		data = b
	case KindRemote:
		b, err := fetcher.Fetch(ctx, node.URL)
		if err != nil {
			return cgerrors.New(cgerrors.KindNetworkFetch, "fetch remote leaf", err, map[string]any{"url": node.URL})
		}
		data = b
	default:
		return cgerrors.New(cgerrors.KindPathConflict, "unknown leaf kind", map[string]any{"dest": dest})
	}

	perm := node.Perm
	if perm == 0 {
		perm = 0o644
	}
	if err := fsys.WriteFile(ctx, dest, data, perm); err != nil {
		return cgerrors.New(cgerrors.KindFilesystemIO, "write leaf", err, map[string]any{"dest": dest})
	}
	return nil
}

// LoadFromFS is Mount's inverse: it walks baseDir and rebuilds a Tree of
// KindInline leaves with the bytes found on disk. Mounting a tree and
// loading it back yields leaves with identical paths and bytes; file
// modes are not carried over (see below).
func LoadFromFS(ctx context.Context, fsys fsadapter.FS, baseDir string) (*Tree, error) {
	names, err := fsys.List(ctx, baseDir)
	if err != nil {
		return nil, cgerrors.New(cgerrors.KindFilesystemIO, "list", err, map[string]any{"dir": baseDir})
	}

	out := New()
	for _, name := range names {
		full := path.Join(baseDir, name)
		isDir, data, err := statOrRead(ctx, fsys, full)
		if err != nil {
			return nil, err
		}
		if isDir {
			sub, err := LoadFromFS(ctx, fsys, full)
			if err != nil {
				return nil, err
			}
			if err := out.PutTree(name, sub); err != nil {
				return nil, err
			}
			continue
		}
		// fsadapter.FS has no stat-permission query, so a round-tripped
		// leaf always carries the default file mode rather than whatever
		// mode Mount originally wrote; an execute bit on disk is not
		// reflected in the loaded tree.
		if err := out.Put(name, Inline(data, 0o644)); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// statOrRead distinguishes a directory entry from a file entry using only
// the fsadapter.FS surface: a successful ReadFile means it's a file, since
// both backing adapters key file content by its exact path. Anything else
// is assumed to be a directory and is listed instead.
func statOrRead(ctx context.Context, fsys fsadapter.FS, full string) (isDir bool, data []byte, err error) {
	if b, rerr := fsys.ReadFile(ctx, full); rerr == nil {
		return false, b, nil
	}
	if _, lerr := fsys.List(ctx, full); lerr != nil {
		return false, nil, cgerrors.New(cgerrors.KindFilesystemIO, "stat", lerr, map[string]any{"path": full})
	}
	return true, nil, nil
}
