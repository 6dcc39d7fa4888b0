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

package region_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/spacechunks/chunkgen/fsadapter"
	"github.com/spacechunks/chunkgen/region"
	"github.com/spacechunks/chunkgen/region/nbt"
	"github.com/spacechunks/chunkgen/worldpos"
	"github.com/stretchr/testify/require"
)

// buildFakeRegion assembles a minimal but valid ".mca" byte layout
// holding a single chunk at local offset (ox,oz): an 8KiB header (sector
// table + timestamps) followed by one zlib-compressed NBT chunk payload.
func buildFakeRegion(t *testing.T, ox, oz int, chunkNBT nbt.Compound) []byte {
	t.Helper()

	var nbtBuf bytes.Buffer
	require.NoError(t, nbt.Encode(&nbtBuf, "", chunkNBT))

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	_, err := zw.Write(nbtBuf.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	payload := compressed.Bytes()

	var sector bytes.Buffer
	require.NoError(t, binary.Write(&sector, binary.BigEndian, uint32(len(payload)+1)))
	sector.WriteByte(2) // zlib
	sector.Write(payload)

	// pad sector to a 4096 multiple
	for sector.Len()%4096 != 0 {
		sector.WriteByte(0)
	}
	sectorCount := sector.Len() / 4096

	header := make([]byte, 8192)
	index := 4 * (ox + oz*32)
	entry := uint32(2)<<8 | uint32(sectorCount) // starts at sector 2 (after the 2-sector header)
	binary.BigEndian.PutUint32(header[index:index+4], entry)

	return append(header, sector.Bytes()...)
}

func TestParseRegionLoadsChunk(t *testing.T) {
	chunkNBT := nbt.Compound{
		"Status": "full",
		"sections": []any{
			nbt.Compound{
				"Y": int8(0),
				"block_states": nbt.Compound{
					"palette": []any{
						nbt.Compound{"Name": "minecraft:air"},
						nbt.Compound{"Name": "minecraft:stone"},
					},
					"data": []int64{int64(0x1111111111111111)},
				},
			},
		},
	}

	data := buildFakeRegion(t, 0, 0, chunkNBT)
	r, err := region.ParseRegion(worldpos.RegionPos{X: 0, Z: 0}, data)
	require.NoError(t, err)

	rec, err := r.LoadChunk(0, 0)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "full", rec.Attrs["Status"])
	require.Len(t, rec.Sections, 1)

	block, err := rec.GetBlock(0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, "minecraft:stone", block.Name)
}

func TestLoadChunkMissingReturnsNil(t *testing.T) {
	data := make([]byte, 8192)
	r, err := region.ParseRegion(worldpos.RegionPos{X: 0, Z: 0}, data)
	require.NoError(t, err)

	rec, err := r.LoadChunk(5, 5)
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestOpenDimensionListsRegionFiles(t *testing.T) {
	fs := fsadapter.NewMemFS()
	ctx := context.Background()
	require.NoError(t, fs.WriteFile(ctx, "/world/region/r.0.0.mca", make([]byte, 8192), 0o644))
	require.NoError(t, fs.WriteFile(ctx, "/world/region/r.1.0.mca", make([]byte, 8192), 0o644))

	dim := region.OpenDimension(fs, "/world", worldpos.Overworld)
	names, err := dim.ListRegionFiles(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"r.0.0.mca", "r.1.0.mca"}, names)
}

func TestGetBlockOutOfBounds(t *testing.T) {
	rec := &region.ChunkRecord{}
	_, err := rec.GetBlock(16, 0, 0)
	require.Error(t, err)
}
