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

// Package serverasset resolves a game version to a staged server jar plus
// a launch-command factory (spec.md section 4.3).
package serverasset

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/spacechunks/chunkgen/cgerrors"
	"github.com/spacechunks/chunkgen/fetch"
	"github.com/spacechunks/chunkgen/internal/cachekey"
	"github.com/spacechunks/chunkgen/javaruntime"
	"github.com/spacechunks/chunkgen/tree"
)

const defaultJavaComponent = "jre-legacy"

type versionManifest struct {
	Versions []struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"versions"`
}

type versionDoc struct {
	Downloads struct {
		Server struct {
			URL string `json:"url"`
		} `json:"server"`
	} `json:"downloads"`
	JavaVersion struct {
		Component string `json:"component"`
	} `json:"javaVersion"`
}

// RunOptions parameterises the launch command the factory builds.
type RunOptions struct {
	MaxMemoryMB     int
	InitialMemoryMB int
}

// LaunchCommand is a pure description of how to start the server; the
// caller owns picking the working directory.
type LaunchCommand struct {
	Path string
	Args []string
}

// CommandFactory is captured by value: calling it twice with the same
// RunOptions produces an identical LaunchCommand.
type CommandFactory func(RunOptions) LaunchCommand

type resolved struct {
	serverURL     string
	javaComponent string
}

// Resolver stages a server jar into a caller-supplied world Tree and
// produces a command factory for launching it.
type Resolver struct {
	fetcher     fetch.Fetcher
	runtimes    *javaruntime.Resolver
	manifestURL string
	logger      *slog.Logger

	group singleflight.Group
}

func NewResolver(fetcher fetch.Fetcher, runtimes *javaruntime.Resolver, manifestURL string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		fetcher:     fetcher,
		runtimes:    runtimes,
		manifestURL: manifestURL,
		logger:      logger,
	}
}

// Resolve stages server.jar into world as a Remote leaf and returns a
// command factory bound to the installed Java path for javaComponent.
func (r *Resolver) Resolve(ctx context.Context, versionID string, world *tree.Tree) (CommandFactory, error) {
	v, err, _ := r.group.Do(versionID, func() (any, error) {
		return r.resolveVersion(ctx, versionID)
	})
	if err != nil {
		return nil, err
	}
	res := v.(resolved)

	if err := world.Put("server.jar", tree.Remote(res.serverURL, 0o644)); err != nil {
		return nil, err
	}

	javaPath, err := r.runtimes.Resolve(ctx, res.javaComponent)
	if err != nil {
		return nil, err
	}

	return func(opts RunOptions) LaunchCommand {
		var args []string
		if opts.MaxMemoryMB > 0 {
			args = append(args, fmt.Sprintf("-Xmx%dM", opts.MaxMemoryMB))
		}
		if opts.InitialMemoryMB > 0 {
			args = append(args, fmt.Sprintf("-Xms%dM", opts.InitialMemoryMB))
		}
		args = append(args, "-jar", "server.jar", "nogui")
		return LaunchCommand{Path: javaPath, Args: args}
	}, nil
}

func (r *Resolver) resolveVersion(ctx context.Context, versionID string) (resolved, error) {
	manifestBytes, err := r.fetcher.Fetch(ctx, r.manifestURL)
	if err != nil {
		return resolved{}, cgerrors.New(cgerrors.KindNetworkFetch, "fetch version manifest", err)
	}
	r.logger.Debug("fetched version manifest", "xxh3", cachekey.Sum(manifestBytes))

	var vm versionManifest
	if err := json.Unmarshal(manifestBytes, &vm); err != nil {
		return resolved{}, cgerrors.New(cgerrors.KindDeserialisation, "parse version manifest", err)
	}

	var docURL string
	for _, v := range vm.Versions {
		if v.ID == versionID {
			docURL = v.URL
			break
		}
	}
	if docURL == "" {
		return resolved{}, cgerrors.New(cgerrors.KindVersionUnknown, "unknown version", map[string]any{"version_id": versionID})
	}

	docBytes, err := r.fetcher.Fetch(ctx, docURL)
	if err != nil {
		return resolved{}, cgerrors.New(cgerrors.KindNetworkFetch, "fetch version document", err, map[string]any{"version_id": versionID})
	}

	var doc versionDoc
	if err := json.Unmarshal(docBytes, &doc); err != nil {
		return resolved{}, cgerrors.New(cgerrors.KindDeserialisation, "parse version document", err)
	}
	if doc.Downloads.Server.URL == "" {
		return resolved{}, cgerrors.New(cgerrors.KindServerAssetMissing, "no server download", map[string]any{"version_id": versionID})
	}

	component := doc.JavaVersion.Component
	if component == "" {
		component = defaultJavaComponent
	}

	return resolved{serverURL: doc.Downloads.Server.URL, javaComponent: component}, nil
}
