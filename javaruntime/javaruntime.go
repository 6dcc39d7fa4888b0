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

// Package javaruntime resolves a JVM distribution for the running
// (os, arch) pair and installs it under a cache directory (spec.md
// section 4.2).
package javaruntime

import (
	"context"
	"encoding/json"
	"io/fs"
	"log/slog"
	"path"
	"runtime"

	"golang.org/x/sync/singleflight"

	"github.com/spacechunks/chunkgen/cgerrors"
	"github.com/spacechunks/chunkgen/fetch"
	"github.com/spacechunks/chunkgen/fsadapter"
	"github.com/spacechunks/chunkgen/internal/cachekey"
	"github.com/spacechunks/chunkgen/tree"
)

// platformManifest mirrors the well-known runtimes manifest: a map from
// platform key ("linux", "mac-os-arm64", ...) to a map from runtime id to
// the list of available versions, newest first.
type platformManifest map[string]map[string][]runtimeVersion

type runtimeVersion struct {
	Manifest struct {
		URL  string `json:"url"`
		Sha1 string `json:"sha1"`
		Size int64  `json:"size"`
	} `json:"manifest"`
	Version struct {
		Name string `json:"name"`
	} `json:"version"`
}

type filesManifest struct {
	Files map[string]fileEntry `json:"files"`
}

type fileEntry struct {
	Type       string `json:"type"`
	Executable bool   `json:"executable"`
	Downloads  struct {
		Raw struct {
			URL  string `json:"url"`
			Sha1 string `json:"sha1"`
			Size int64  `json:"size"`
		} `json:"raw"`
	} `json:"downloads"`
}

// Resolver installs a named JVM runtime under CacheDir and returns the
// path to its java executable. One Resolver is shared across concurrent
// callers; concurrent requests for the same runtime id collapse into a
// single fetch+mount via singleflight.
type Resolver struct {
	fetcher     fetch.Fetcher
	fsys        fsadapter.FS
	cacheDir    string
	manifestURL string
	logger      *slog.Logger

	group singleflight.Group
}

func NewResolver(fetcher fetch.Fetcher, fsys fsadapter.FS, cacheDir, manifestURL string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		fetcher:     fetcher,
		fsys:        fsys,
		cacheDir:    cacheDir,
		manifestURL: manifestURL,
		logger:      logger,
	}
}

// Resolve returns the absolute path to bin/java (bin/java.exe on Windows)
// for runtimeID, installing it first if the cache is cold.
func (r *Resolver) Resolve(ctx context.Context, runtimeID string) (string, error) {
	v, err, _ := r.group.Do(runtimeID, func() (any, error) {
		return r.resolve(ctx, runtimeID)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (r *Resolver) resolve(ctx context.Context, runtimeID string) (string, error) {
	javaPath := path.Join(r.cacheDir, runtimeID, "bin", javaBinaryName())

	exists, err := r.fsys.Exists(ctx, javaPath)
	if err != nil {
		return "", err
	}
	if exists {
		r.logger.Debug("runtime cache hit", "runtime_id", runtimeID, "path", javaPath)
		return javaPath, nil
	}

	manifestBytes, err := r.fetcher.Fetch(ctx, r.manifestURL)
	if err != nil {
		return "", cgerrors.New(cgerrors.KindNetworkFetch, "fetch runtimes manifest", err)
	}
	r.logger.Debug("fetched runtimes manifest", "xxh3", cachekey.Sum(manifestBytes))

	var manifest platformManifest
	if err := json.Unmarshal(manifestBytes, &manifest); err != nil {
		return "", cgerrors.New(cgerrors.KindDeserialisation, "parse runtimes manifest", err)
	}

	platformKey := currentPlatformKey()
	platform, ok := manifest[platformKey]
	if !ok {
		return "", cgerrors.New(cgerrors.KindRuntimeUnavailable, "no platform entry", map[string]any{"platform": platformKey})
	}
	versions, ok := platform[runtimeID]
	if !ok || len(versions) == 0 {
		return "", cgerrors.New(cgerrors.KindRuntimeUnavailable, "no runtime entry", map[string]any{"runtime_id": runtimeID, "platform": platformKey})
	}

	filesBytes, err := r.fetcher.Fetch(ctx, versions[0].Manifest.URL)
	if err != nil {
		return "", cgerrors.New(cgerrors.KindNetworkFetch, "fetch files manifest", err, map[string]any{"runtime_id": runtimeID})
	}

	var fm filesManifest
	if err := json.Unmarshal(filesBytes, &fm); err != nil {
		return "", cgerrors.New(cgerrors.KindDeserialisation, "parse files manifest", err)
	}

	t := translateFilesManifest(fm)

	dest := path.Join(r.cacheDir, runtimeID)
	if err := tree.Mount(ctx, t, dest, r.fsys, r.fetcher, tree.MountOptions{}); err != nil {
		return "", err
	}

	r.logger.Info("installed java runtime", "runtime_id", runtimeID, "platform", platformKey)
	return javaPath, nil
}

func translateFilesManifest(fm filesManifest) *tree.Tree {
	t := tree.New()
	for p, entry := range fm.Files {
		if entry.Type != "file" {
			continue
		}
		perm := fs.FileMode(0o644)
		if entry.Executable {
			perm = 0o755
		}
		_ = t.Put(p, tree.Remote(entry.Downloads.Raw.URL, perm))
	}
	return t
}

func currentPlatformKey() string {
	switch runtime.GOOS {
	case "linux":
		if runtime.GOARCH == "386" {
			return "linux-i386"
		}
		return "linux"
	case "darwin":
		if runtime.GOARCH == "arm64" {
			return "mac-os-arm64"
		}
		return "mac-os"
	case "windows":
		switch runtime.GOARCH {
		case "386":
			return "windows-x86"
		case "arm64":
			return "windows-arm64"
		default:
			return "windows-x64"
		}
	default:
		return runtime.GOOS
	}
}

func javaBinaryName() string {
	if runtime.GOOS == "windows" {
		return "java.exe"
	}
	return "java"
}
