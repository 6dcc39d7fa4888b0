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

// Package generator is the orchestrator: it stages a server, launches it,
// drives bot workers against a PendingSet of chunks, and tears down
// (spec.md section 4.5). Grounded on original_source/flex-mc's
// DefaultChunkGenerator.generate_chunks for the four-phase shape, and on
// cmd/platformd/main.go for the teardown-always / surface-errors-after
// discipline.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/spacechunks/chunkgen/bot"
	"github.com/spacechunks/chunkgen/cgerrors"
	"github.com/spacechunks/chunkgen/fetch"
	"github.com/spacechunks/chunkgen/fsadapter"
	"github.com/spacechunks/chunkgen/javaprops"
	"github.com/spacechunks/chunkgen/portfinder"
	"github.com/spacechunks/chunkgen/serverasset"
	"github.com/spacechunks/chunkgen/tree"
	"github.com/spacechunks/chunkgen/worldpos"
)

// defaultEventWindow is the bounded per-bot event-receive window between
// teleports (spec.md section 4.5, Phase C step 3).
const defaultEventWindow = 5 * time.Second

// eventPollSlice is how often the window is re-checked against the
// deadline, so a silent bot's worker still wakes up to notice the window
// has elapsed (section 5, "Timeouts").
const eventPollSlice = 250 * time.Millisecond

// Request describes one chunk generation job.
type Request struct {
	VersionID    string
	World        *tree.Tree
	Chunks       []worldpos.ChunkPos
	BotCount     int
	ViewDistance int
	MaxPlayers   int

	// WorkDir is the base directory the server is staged and launched
	// under; the server itself runs in WorkDir/server. If empty, a
	// directory named after a fresh run ID is used under the OS temp
	// root.
	WorkDir string

	RunOptions serverasset.RunOptions

	// EventWindow overrides defaultEventWindow; zero means the default.
	EventWindow time.Duration
}

// BotSpawner is the subset of *bot.Spawner the orchestrator depends on,
// narrowed to an interface so tests can substitute internal/mock's
// MockBotSpawner instead of driving a real subprocess.
type BotSpawner interface {
	Spawn(ctx context.Context, host string, port int, version, name string) (bot.Handle, <-chan bot.ChunkEvent, error)
}

// Generator wires together the capabilities a generation run needs.
type Generator struct {
	servers *serverasset.Resolver
	bots    BotSpawner
	ports   portfinder.Finder
	fsys    fsadapter.FS
	fetcher fetch.Fetcher
	logger  *slog.Logger
}

func New(
	servers *serverasset.Resolver,
	bots BotSpawner,
	ports portfinder.Finder,
	fsys fsadapter.FS,
	fetcher fetch.Fetcher,
	logger *slog.Logger,
) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{servers: servers, bots: bots, ports: ports, fsys: fsys, fetcher: fetcher, logger: logger}
}

// Generate runs one generation job to completion: stage, launch, schedule,
// teardown. It returns once every requested chunk has been confirmed
// loaded (or every worker has given up trying), with the server always
// stopped and reaped regardless of worker outcome.
func (g *Generator) Generate(ctx context.Context, req Request) error {
	runID := uuid.New().String()
	logger := g.logger.With("run_id", runID, "version", req.VersionID)

	workDir := req.WorkDir
	if workDir == "" {
		workDir = path.Join(os.TempDir(), "chunkgen-run-"+runID)
	}
	serverDir := path.Join(workDir, "server")

	handle, port, err := g.stage(ctx, req, serverDir, logger)
	if err != nil {
		return err
	}

	logger.Info("launching server", "dir", serverDir)
	if err := handle.waitReady(); err != nil {
		_ = handle.wait()
		return err
	}
	logger.Info("server ready")

	workerErr := g.schedule(ctx, req, handle, port, logger)

	logger.Info("stopping server")
	stopErr := handle.writeCommand("stop")
	if stopErr != nil {
		logger.Error("stop command failed", "err", stopErr)
	}
	waitErr := handle.wait()

	if workerErr != nil {
		return workerErr
	}
	if stopErr != nil {
		return stopErr
	}
	return waitErr
}

// stage implements Phase A and starts the Phase B process, returning the
// running handle.
func (g *Generator) stage(ctx context.Context, req Request, serverDir string, logger *slog.Logger) (*serverHandle, int, error) {
	factory, err := g.servers.Resolve(ctx, req.VersionID, req.World)
	if err != nil {
		return nil, 0, err
	}

	port, err := g.ports.FindFreePort()
	if err != nil {
		return nil, 0, cgerrors.New(cgerrors.KindRuntimeUnavailable, "find free port", err)
	}

	maxPlayers := req.MaxPlayers
	if maxPlayers < req.BotCount {
		maxPlayers = req.BotCount
	}
	if maxPlayers <= 0 {
		maxPlayers = 1000
	}

	var existing []byte
	if node, ok := req.World.Get("server.properties"); ok {
		existing = node.Data
	}

	props, err := javaprops.Apply(existing, javaprops.Overlay{
		Port:         port,
		MaxPlayers:   maxPlayers,
		ViewDistance: req.ViewDistance,
	})
	if err != nil {
		return nil, 0, err
	}
	if err := req.World.Put("server.properties", tree.Inline(props, 0o644)); err != nil {
		return nil, 0, err
	}
	if err := req.World.Put("eula.txt", tree.Inline(javaprops.Eula(), 0o644)); err != nil {
		return nil, 0, err
	}

	logger.Info("mounting server tree", "dir", serverDir, "port", port)
	if err := tree.Mount(ctx, req.World, serverDir, g.fsys, g.fetcher, tree.MountOptions{}); err != nil {
		return nil, 0, err
	}

	cmd := factory(req.RunOptions)
	handle, err := startServer(ctx, cmd.Path, cmd.Args, serverDir)
	if err != nil {
		return nil, 0, err
	}
	return handle, port, nil
}

// schedule implements Phase C: it spawns req.BotCount workers against a
// PendingSet seeded from req.Chunks and waits for them all to finish.
// Worker failures are collected, not surfaced eagerly, and teardown (the
// caller's responsibility) always runs regardless of what this returns.
func (g *Generator) schedule(ctx context.Context, req Request, handle *serverHandle, port int, logger *slog.Logger) error {
	pending := NewPendingSet(req.Chunks)
	window := req.EventWindow
	if window <= 0 {
		window = defaultEventWindow
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)

	botCount := req.BotCount
	if botCount <= 0 {
		botCount = 1
	}

	for i := 0; i < botCount; i++ {
		name := fmt.Sprintf("bot%02d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := g.runWorker(ctx, name, pending, handle, port, window, req.VersionID, logger); err != nil {
				mu.Lock()
				errs = multierror.Append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errs
}

// runWorker is one bot's loop: spawn, then repeatedly sample a pending
// chunk, teleport to it, and drain confirmations for a bounded window
// (spec.md section 4.5, Phase C steps 1-5).
func (g *Generator) runWorker(
	ctx context.Context,
	name string,
	pending *PendingSet,
	handle *serverHandle,
	port int,
	window time.Duration,
	version string,
	logger *slog.Logger,
) error {
	botHandle, chunkRx, err := g.bots.Spawn(ctx, "127.0.0.1", port, version, name)
	if err != nil {
		return err
	}
	defer func() { _ = botHandle.Stop() }()

	for {
		target, ok := pending.SampleRandom()
		if !ok {
			return nil
		}

		bx, bz := target.CenterBlock()
		cmd := fmt.Sprintf("tp %s %d 100 %d", name, bx, bz)
		if err := handle.writeCommand(cmd); err != nil {
			return err
		}

		drainConfirmations(ctx, chunkRx, pending, window)

		select {
		case <-ctx.Done():
			logger.Info("worker cancelled", "bot", name, "remaining", pending.Len())
			return ctx.Err()
		default:
		}
	}
}

// drainConfirmations consumes chunkRx for up to window, polled in
// eventPollSlice steps so a silent bot still lets the worker notice the
// deadline has passed (section 5, "Timeouts").
func drainConfirmations(ctx context.Context, chunkRx <-chan bot.ChunkEvent, pending *PendingSet, window time.Duration) {
	deadline := time.Now().Add(window)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}
		slice := eventPollSlice
		if remaining < slice {
			slice = remaining
		}

		select {
		case ev, ok := <-chunkRx:
			if !ok {
				return
			}
			pending.Remove(worldpos.ChunkPos{X: ev.X, Z: ev.Z})
		case <-time.After(slice):
		case <-ctx.Done():
			return
		}
	}
}
