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

package generator

import (
	"bufio"
	"context"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/spacechunks/chunkgen/cgerrors"
)

// readyMarker is the suffix that closes the server's startup banner
// (spec.md section 6).
const readyMarker = `For help, type "help"`

// serverHandle owns the staged server's subprocess: its stdin under an
// exclusive mutex (section 5, "Server stdin") and the single stdout
// reader used during Phase B's readiness wait. Grounded on
// platformd/checkpoint/log_reader.go's line-scanning wait-for-marker
// shape, generalised from a Kubernetes exec stream to a plain child
// process pipe.
type serverHandle struct {
	cmd    *exec.Cmd
	stdout *bufio.Scanner

	stdinMu sync.Mutex
	stdin   io.WriteCloser
}

// startServer launches cmd with stdin/stdout piped and dir as its working
// directory, per Phase B.
func startServer(ctx context.Context, path string, args []string, dir string) (*serverHandle, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = dir

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, cgerrors.New(cgerrors.KindProcessSpawn, "server stdin pipe", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, cgerrors.New(cgerrors.KindProcessSpawn, "server stdout pipe", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, cgerrors.New(cgerrors.KindProcessSpawn, "start server process", err, map[string]any{"path": path})
	}

	return &serverHandle{cmd: cmd, stdin: stdin, stdout: bufio.NewScanner(stdout)}, nil
}

// waitReady reads stdout lines until one ends with readyMarker. It is the
// only reader of stdout allowed to run concurrently with anything else,
// since Phase C onward leaves stdout unconsumed by design (section 5).
func (h *serverHandle) waitReady() error {
	for h.stdout.Scan() {
		if strings.HasSuffix(h.stdout.Text(), readyMarker) {
			return nil
		}
	}
	if err := h.stdout.Err(); err != nil {
		return cgerrors.New(cgerrors.KindProcessPipeLost, "read server stdout", err)
	}
	return cgerrors.New(cgerrors.KindProcessPipeLost, "server exited before signalling readiness")
}

// writeCommand sends a single whole console command, newline-terminated
// and flushed, under the stdin mutex. No caller may interleave a partial
// line.
func (h *serverHandle) writeCommand(cmd string) error {
	h.stdinMu.Lock()
	defer h.stdinMu.Unlock()

	if _, err := io.WriteString(h.stdin, cmd+"\n"); err != nil {
		return cgerrors.New(cgerrors.KindProcessPipeLost, "write server stdin", err, map[string]any{"cmd": cmd})
	}
	if f, ok := h.stdin.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// wait blocks until the server child has exited.
func (h *serverHandle) wait() error {
	return h.cmd.Wait()
}
