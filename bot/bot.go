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

// Package bot provisions and drives the autonomous client bot subprocesses
// that join the staged server (spec.md section 4.4). Grounded on
// original_source/flex-mc/src/infra/bot_spawner.rs: download-on-miss
// binary provisioning, a process-owning handle with best-effort kill, and
// an os x arch filename matrix carried over from that file's
// download_bot_executable/get_os_and_arch.
package bot

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"path"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/spacechunks/chunkgen/cgerrors"
	"github.com/spacechunks/chunkgen/fetch"
	"github.com/spacechunks/chunkgen/fsadapter"
	"github.com/spacechunks/chunkgen/internal/cachekey"
)

// ChunkEvent is a loaded-chunk notification forwarded from the bot's event
// stream (spec.md section 3, BotEvent.Chunk).
type ChunkEvent struct {
	X int32
	Z int32
}

// wireEvent is the JSON-lines shape the bot binary emits on stdout.
type wireEvent struct {
	Type   string `json:"type"`
	Reason string `json:"reason,omitempty"`
	X      int32  `json:"x,omitempty"`
	Z      int32  `json:"z,omitempty"`
}

const (
	eventSpawn      = "spawn"
	eventDisconnect = "disconnect"
	eventChunk      = "chunk"
)

// Options configures binary provisioning and the login retry policy.
// Defaults match spec.md section 4.4: 3 attempts, 5s between attempts.
type Options struct {
	CacheDir       string
	ReleaseBaseURL string
	MaxAttempts    int
	RetryDelay     time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = 5 * time.Second
	}
	return o
}

// Spawner provisions the bot binary on first use and launches bot
// subprocesses against a running server.
type Spawner struct {
	fetcher fetch.Fetcher
	fsys    fsadapter.FS
	opts    Options
	logger  *slog.Logger
}

func NewSpawner(fetcher fetch.Fetcher, fsys fsadapter.FS, opts Options, logger *slog.Logger) *Spawner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Spawner{fetcher: fetcher, fsys: fsys, opts: opts.withDefaults(), logger: logger}
}

// Handle is the caller-facing contract for a running bot subprocess,
// narrowed to an interface so orchestration code (generator.BotSpawner)
// can be driven against a fake in tests without a real child process.
type Handle interface {
	Name() string
	Stop() error
}

// processHandle is Handle's only real implementation: a live subprocess
// plus the cancellation needed to unwind its detached event reader.
type processHandle struct {
	name   string
	cmd    *exec.Cmd
	cancel context.CancelFunc

	mu      sync.Mutex
	stopped bool
}

func (h *processHandle) Name() string { return h.name }

// Stop kills the subprocess and reaps it. Idempotent: calling Stop on an
// already-stopped handle is a no-op.
func (h *processHandle) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return nil
	}
	h.stopped = true

	h.cancel()
	if h.cmd.Process != nil {
		_ = h.cmd.Process.Kill()
	}
	_ = h.cmd.Wait()
	return nil
}

// Spawn starts a bot subprocess, waits for it to log in (retrying on
// disconnect per Options), and returns a handle plus a channel of chunk
// load events. Once Spawn returns successfully a detached goroutine keeps
// draining the event stream until the handle is stopped or the stream
// closes.
func (s *Spawner) Spawn(ctx context.Context, host string, port int, version, name string) (Handle, <-chan ChunkEvent, error) {
	botPath, err := s.ensureBinary(ctx, version)
	if err != nil {
		return nil, nil, err
	}

	chunkCh := make(chan ChunkEvent, 64)

	for attempt := 1; ; attempt++ {
		cctx, cancel := context.WithCancel(ctx)
		cmd := exec.CommandContext(cctx, botPath, "--username", name, "--host", host, "--port", strconv.Itoa(port))

		stdout, err := cmd.StdoutPipe()
		if err != nil {
			cancel()
			return nil, nil, cgerrors.New(cgerrors.KindProcessSpawn, "stdout pipe", err)
		}
		if err := cmd.Start(); err != nil {
			cancel()
			return nil, nil, cgerrors.New(cgerrors.KindProcessSpawn, "start bot process", err, map[string]any{"name": name})
		}

		scanner := bufio.NewScanner(stdout)
		spawned, disconnectReason, streamErr := loginHandshake(cctx, scanner, chunkCh)

		if spawned {
			h := &processHandle{name: name, cmd: cmd, cancel: cancel}
			go drainEvents(cctx, scanner, chunkCh, cancel)
			return h, chunkCh, nil
		}

		cancel()
		_ = cmd.Wait()

		if streamErr != nil {
			s.logger.Warn("bot stdout stream error", "name", name, "attempt", attempt, "err", streamErr)
		}

		if attempt >= s.opts.MaxAttempts {
			close(chunkCh)
			return nil, nil, cgerrors.New(cgerrors.KindBotLoginFailed, "login failed",
				map[string]any{"attempts": attempt, "name": name, "reason": disconnectReason})
		}

		s.logger.Info("bot disconnected before login, retrying", "name", name, "attempt", attempt, "reason", disconnectReason)
		select {
		case <-time.After(s.opts.RetryDelay):
		case <-ctx.Done():
			close(chunkCh)
			return nil, nil, ctx.Err()
		}
	}
}

// loginHandshake reads pre-login events: Chunk events are forwarded,
// Spawn ends the handshake successfully, Disconnect or stream EOF ends it
// unsuccessfully.
func loginHandshake(ctx context.Context, scanner *bufio.Scanner, chunkCh chan<- ChunkEvent) (spawned bool, disconnectReason string, err error) {
	for scanner.Scan() {
		var we wireEvent
		if jerr := json.Unmarshal(scanner.Bytes(), &we); jerr != nil {
			continue
		}
		switch we.Type {
		case eventSpawn:
			return true, "", nil
		case eventDisconnect:
			return false, we.Reason, nil
		case eventChunk:
			select {
			case chunkCh <- ChunkEvent{X: we.X, Z: we.Z}:
			case <-ctx.Done():
				return false, "", ctx.Err()
			}
		default:
			continue
		}
	}
	return false, "", scanner.Err()
}

// drainEvents is the detached post-login reader. Chunk events are
// forwarded to chunkCh; Disconnect or EOF ends the reader and closes the
// channel; Spawn is ignored (login already completed).
func drainEvents(ctx context.Context, scanner *bufio.Scanner, chunkCh chan ChunkEvent, cancel context.CancelFunc) {
	defer cancel()
	defer close(chunkCh)

	for scanner.Scan() {
		var we wireEvent
		if err := json.Unmarshal(scanner.Bytes(), &we); err != nil {
			continue
		}
		switch we.Type {
		case eventChunk:
			select {
			case chunkCh <- ChunkEvent{X: we.X, Z: we.Z}:
			case <-ctx.Done():
				return
			}
		case eventDisconnect:
			return
		case eventSpawn:
			continue
		default:
			continue
		}
	}
}

func (s *Spawner) ensureBinary(ctx context.Context, version string) (string, error) {
	botPath := path.Join(s.opts.CacheDir, "bot-exe")

	exists, err := s.fsys.Exists(ctx, botPath)
	if err != nil {
		return "", err
	}
	if exists {
		return botPath, nil
	}

	osKey, archKey, err := platformKeys()
	if err != nil {
		return "", cgerrors.New(cgerrors.KindRuntimeUnavailable, "unsupported platform", err)
	}

	filename := fmt.Sprintf("flex-update-mc-bot-%s-%s-%s%s", version, osKey, archKey, exeSuffix())
	url := fmt.Sprintf("%s/mc-%s/%s", s.opts.ReleaseBaseURL, version, filename)

	data, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", cgerrors.New(cgerrors.KindNetworkFetch, "download bot binary", err, map[string]any{"url": url})
	}
	s.logger.Debug("downloaded bot binary", "xxh3", cachekey.Sum(data), "version", version)

	if err := s.fsys.WriteFile(ctx, botPath, data, 0o755); err != nil {
		return "", err
	}
	if runtime.GOOS != "windows" {
		if err := s.fsys.Chmod(ctx, botPath, 0o755); err != nil {
			return "", err
		}
	}
	return botPath, nil
}

func platformKeys() (os, arch string, err error) {
	switch runtime.GOOS {
	case "linux":
		os = "linux"
	case "darwin":
		os = "macos"
	case "windows":
		os = "windows"
	default:
		return "", "", fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}

	switch runtime.GOARCH {
	case "amd64":
		arch = "x64"
	case "arm64":
		arch = "arm64"
	default:
		return "", "", fmt.Errorf("unsupported architecture: %s", runtime.GOARCH)
	}
	return os, arch, nil
}

func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
