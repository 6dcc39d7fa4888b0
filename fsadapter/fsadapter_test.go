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

package fsadapter_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spacechunks/chunkgen/fsadapter"
	"github.com/stretchr/testify/require"
)

func TestOSFSRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	fsys := fsadapter.NewOSFS()

	p := filepath.Join(dir, "sub", "a.txt")
	require.NoError(t, fsys.WriteFile(ctx, p, []byte("hi"), 0o644))

	ok, err := fsys.Exists(ctx, p)
	require.NoError(t, err)
	require.True(t, ok)

	data, err := fsys.ReadFile(ctx, p)
	require.NoError(t, err)
	require.Equal(t, []byte("hi"), data)

	names, err := fsys.List(ctx, filepath.Join(dir, "sub"))
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt"}, names)
}

func TestMemFSRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := fsadapter.NewMemFS()

	require.NoError(t, m.WriteFile(ctx, "a/b.txt", []byte("there"), 0o644))

	ok, err := m.Exists(ctx, "a/b.txt")
	require.NoError(t, err)
	require.True(t, ok)

	data, err := m.ReadFile(ctx, "a/b.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("there"), data)

	names, err := m.List(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, []string{"b.txt"}, names)
}

func TestMemFSMissing(t *testing.T) {
	ctx := context.Background()
	m := fsadapter.NewMemFS()
	_, err := m.ReadFile(ctx, "nope.txt")
	require.Error(t, err)
}
