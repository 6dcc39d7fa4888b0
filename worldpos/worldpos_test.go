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

package worldpos_test

import (
	"testing"

	"github.com/spacechunks/chunkgen/worldpos"
	"github.com/stretchr/testify/require"
)

func TestRegionOfNegatives(t *testing.T) {
	require.Equal(t, worldpos.RegionPos{X: -1, Z: -1}, worldpos.ChunkPos{X: -1, Z: -1}.RegionOf())
	require.Equal(t, worldpos.RegionPos{X: -2, Z: -2}, worldpos.ChunkPos{X: -33, Z: -33}.RegionOf())
	require.Equal(t, worldpos.RegionPos{X: 0, Z: 0}, worldpos.ChunkPos{X: 0, Z: 0}.RegionOf())
	require.Equal(t, worldpos.RegionPos{X: 0, Z: 0}, worldpos.ChunkPos{X: 31, Z: 31}.RegionOf())
	require.Equal(t, worldpos.RegionPos{X: 1, Z: 1}, worldpos.ChunkPos{X: 32, Z: 32}.RegionOf())
}

func TestRegionOffset(t *testing.T) {
	x, z := worldpos.ChunkPos{X: -1, Z: -1}.RegionOffset()
	require.Equal(t, 31, x)
	require.Equal(t, 31, z)

	x, z = worldpos.ChunkPos{X: 33, Z: 1}.RegionOffset()
	require.Equal(t, 1, x)
	require.Equal(t, 1, z)
}

func TestFileName(t *testing.T) {
	require.Equal(t, "r.-2.-2.mca", worldpos.RegionPos{X: -2, Z: -2}.FileName())
}

func TestCenterBlock(t *testing.T) {
	bx, bz := worldpos.ChunkPos{X: 0, Z: 0}.CenterBlock()
	require.Equal(t, int32(8), bx)
	require.Equal(t, int32(8), bz)
}

func TestDimensionRegionDir(t *testing.T) {
	require.Equal(t, "region", worldpos.Overworld.RegionDir())
	require.Equal(t, "DIM-1/region", worldpos.Nether.RegionDir())
	require.Equal(t, "DIM1/region", worldpos.TheEnd.RegionDir())
}
