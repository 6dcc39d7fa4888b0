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

package generator_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spacechunks/chunkgen/bot"
	"github.com/spacechunks/chunkgen/fetch"
	"github.com/spacechunks/chunkgen/fsadapter"
	"github.com/spacechunks/chunkgen/generator"
	"github.com/spacechunks/chunkgen/javaruntime"
	"github.com/spacechunks/chunkgen/portfinder"
	"github.com/spacechunks/chunkgen/serverasset"
	"github.com/spacechunks/chunkgen/tree"
	"github.com/spacechunks/chunkgen/worldpos"
)

// writeScript drops an executable shell script at dir/name; used to stand
// in for both the java launcher and the bot binary, since exec.Command
// needs a real file on disk (fsadapter.MemFS cannot serve this).
func writeScript(t *testing.T, path, script string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
}

const fakeServerScript = `
echo "Starting minecraft server version 1.21.7"
echo 'Done (1.0s)! For help, type "help"'
while read -r line; do
  if [ "$line" = "stop" ]; then
    exit 0
  fi
done
`

// fakeBotScript reports every chunk in chunks as loaded immediately after
// spawning, then idles until killed by Handle.Stop.
func fakeBotScript(chunks []worldpos.ChunkPos) string {
	s := "echo '{\"type\":\"spawn\"}'\n"
	for _, c := range chunks {
		s += fmtChunkEventEcho(c)
	}
	s += "sleep 5\n"
	return s
}

func fmtChunkEventEcho(c worldpos.ChunkPos) string {
	return fmt.Sprintf("echo '{\"type\":\"chunk\",\"x\":%d,\"z\":%d}'\n", c.X, c.Z)
}

func newTestGenerator(t *testing.T, chunks []worldpos.ChunkPos) (*generator.Generator, string) {
	t.Helper()
	root := t.TempDir()

	javaCacheDir := filepath.Join(root, "java-cache")
	require.NoError(t, os.MkdirAll(filepath.Join(javaCacheDir, "jre-legacy", "bin"), 0o755))
	writeScript(t, filepath.Join(javaCacheDir, "jre-legacy", "bin", "java"), fakeServerScript)

	botCacheDir := filepath.Join(root, "bot-cache")
	require.NoError(t, os.MkdirAll(botCacheDir, 0o755))
	writeScript(t, filepath.Join(botCacheDir, "bot-exe"), fakeBotScript(chunks))

	mf := fetch.NewMemFetcher()
	mf.Blobs["https://versions.test/manifest.json"] = []byte(`{
		"versions": [{"id": "1.21.7", "url": "https://versions.test/1.21.7.json"}]
	}`)
	mf.Blobs["https://versions.test/1.21.7.json"] = []byte(`{
		"downloads": {"server": {"url": "https://versions.test/server-1.21.7.jar"}}
	}`)
	mf.Blobs["https://versions.test/server-1.21.7.jar"] = []byte("fake jar bytes")

	osfs := fsadapter.NewOSFS()
	runtimes := javaruntime.NewResolver(mf, osfs, javaCacheDir, "https://runtimes.test/manifest.json", nil)
	servers := serverasset.NewResolver(mf, runtimes, "https://versions.test/manifest.json", nil)
	bots := bot.NewSpawner(fetch.NewMemFetcher(), osfs, bot.Options{CacheDir: botCacheDir}, nil)

	g := generator.New(servers, bots, portfinder.Default{}, osfs, mf, nil)
	return g, root
}

func TestGenerateSingleChunkSingleBot(t *testing.T) {
	chunks := []worldpos.ChunkPos{{X: 1, Z: 1}}
	g, root := newTestGenerator(t, chunks)

	req := generator.Request{
		VersionID:    "1.21.7",
		World:        tree.New(),
		Chunks:       chunks,
		BotCount:     1,
		ViewDistance: 5,
		WorkDir:      filepath.Join(root, "work"),
		EventWindow:  300 * time.Millisecond,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, g.Generate(ctx, req))
}

func TestGenerateChunksAcrossMultipleRegions(t *testing.T) {
	chunks := []worldpos.ChunkPos{{X: 1, Z: 1}, {X: 40, Z: -40}}
	g, root := newTestGenerator(t, chunks)

	req := generator.Request{
		VersionID:    "1.21.7",
		World:        tree.New(),
		Chunks:       chunks,
		BotCount:     2,
		ViewDistance: 5,
		WorkDir:      filepath.Join(root, "work"),
		EventWindow:  300 * time.Millisecond,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, g.Generate(ctx, req))
}
