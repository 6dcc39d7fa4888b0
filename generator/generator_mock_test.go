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
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	mocky "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/spacechunks/chunkgen/bot"
	"github.com/spacechunks/chunkgen/fetch"
	"github.com/spacechunks/chunkgen/fsadapter"
	"github.com/spacechunks/chunkgen/generator"
	"github.com/spacechunks/chunkgen/internal/mock"
	"github.com/spacechunks/chunkgen/javaruntime"
	"github.com/spacechunks/chunkgen/portfinder"
	"github.com/spacechunks/chunkgen/serverasset"
	"github.com/spacechunks/chunkgen/tree"
	"github.com/spacechunks/chunkgen/worldpos"
)

// fakeBotHandle stands in for bot.Handle without a backing subprocess.
type fakeBotHandle struct{ name string }

func (h *fakeBotHandle) Name() string { return h.name }
func (h *fakeBotHandle) Stop() error  { return nil }

// newStagingFixture wires a real serverasset.Resolver + a fake java
// launcher script against OSFS, so Phase A/B run for real while Phase C's
// bot spawner is swapped per test.
func newStagingFixture(t *testing.T) (*serverasset.Resolver, *fetch.MemFetcher, string) {
	t.Helper()
	root := t.TempDir()

	javaCacheDir := filepath.Join(root, "java-cache")
	require.NoError(t, os.MkdirAll(filepath.Join(javaCacheDir, "jre-legacy", "bin"), 0o755))
	writeScript(t, filepath.Join(javaCacheDir, "jre-legacy", "bin", "java"), fakeServerScript)

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
	return serverasset.NewResolver(mf, runtimes, "https://versions.test/manifest.json", nil), mf, root
}

func TestGenerateSurfacesWorkerFailureAfterTeardown(t *testing.T) {
	servers, mf, root := newStagingFixture(t)

	chunks := []worldpos.ChunkPos{{X: 0, Z: 0}, {X: 1, Z: 1}}

	okChunkCh := make(chan bot.ChunkEvent, len(chunks))
	for _, c := range chunks {
		okChunkCh <- bot.ChunkEvent{X: c.X, Z: c.Z}
	}

	bots := mock.NewMockBotSpawner(t)
	bots.EXPECT().
		Spawn(mocky.Anything, mocky.Anything, mocky.Anything, mocky.Anything, "bot00").
		Return(&fakeBotHandle{name: "bot00"}, okChunkCh, nil)
	bots.EXPECT().
		Spawn(mocky.Anything, mocky.Anything, mocky.Anything, mocky.Anything, "bot01").
		Return(nil, nil, errors.New("login failed: banned"))

	g := generator.New(servers, bots, portfinder.Default{}, fsadapter.NewOSFS(), mf, nil)

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

	err := g.Generate(ctx, req)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bot01")
	require.Contains(t, err.Error(), "login failed")
}

func TestGenerateAllBotsSucceedDrainsPendingSet(t *testing.T) {
	servers, mf, root := newStagingFixture(t)

	chunks := []worldpos.ChunkPos{{X: 3, Z: 3}}
	chunkCh := make(chan bot.ChunkEvent, 1)
	chunkCh <- bot.ChunkEvent{X: 3, Z: 3}

	bots := mock.NewMockBotSpawner(t)
	bots.EXPECT().
		Spawn(mocky.Anything, mocky.Anything, mocky.Anything, mocky.Anything, "bot00").
		Return(&fakeBotHandle{name: "bot00"}, chunkCh, nil)

	g := generator.New(servers, bots, portfinder.Default{}, fsadapter.NewOSFS(), mf, nil)

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
