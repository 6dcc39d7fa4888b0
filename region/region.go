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

// Package region reads vanilla ".mca" region files for post-hoc
// verification of generated chunks (spec.md section 4.6 / "Region
// reader" in the system overview). Grounded on
// original_source/flex-mc/src/infra/region_loader.rs's Dimension/Region
// split and fastanvil's sector-table contract, reimplemented against the
// raw anvil byte layout since no pack library wraps it.
package region

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"path"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/spacechunks/chunkgen/cgerrors"
	"github.com/spacechunks/chunkgen/fsadapter"
	"github.com/spacechunks/chunkgen/region/nbt"
	"github.com/spacechunks/chunkgen/worldpos"
)

const (
	sectorSize   = 4096
	headerLength = 2 * sectorSize
)

type compressionScheme byte

const (
	compressionGzip compressionScheme = 1
	compressionZlib compressionScheme = 2
	compressionNone compressionScheme = 3
)

// Dimension opens the on-disk "region" directory for one of the three
// vanilla dimensions beneath a world root.
type Dimension struct {
	worldRoot string
	dim       worldpos.Dimension
	fsys      fsadapter.FS
}

func OpenDimension(fsys fsadapter.FS, worldRoot string, dim worldpos.Dimension) *Dimension {
	return &Dimension{worldRoot: worldRoot, dim: dim, fsys: fsys}
}

func (d *Dimension) regionDir() string {
	return path.Join(d.worldRoot, d.dim.RegionDir())
}

// ListRegionFiles returns every "r.<x>.<z>.mca" file name present.
func (d *Dimension) ListRegionFiles(ctx context.Context) ([]string, error) {
	names, err := d.fsys.List(ctx, d.regionDir())
	if err != nil {
		return nil, err
	}
	out := names[:0:0]
	for _, n := range names {
		var x, z int32
		if _, err := fmt.Sscanf(n, "r.%d.%d.mca", &x, &z); err != nil {
			continue
		}
		if (worldpos.RegionPos{X: x, Z: z}).FileName() == n {
			out = append(out, n)
		}
	}
	return out, nil
}

// LoadRegion reads and parses the region file for pos.
func (d *Dimension) LoadRegion(ctx context.Context, pos worldpos.RegionPos) (*Region, error) {
	full := path.Join(d.regionDir(), pos.FileName())
	data, err := d.fsys.ReadFile(ctx, full)
	if err != nil {
		return nil, cgerrors.New(cgerrors.KindFilesystemIO, "read region file", err, map[string]any{"path": full})
	}
	return ParseRegion(pos, data)
}

// Region is a parsed ".mca" file: the sector table plus the raw bytes it
// indexes into, parsed lazily per chunk.
type Region struct {
	pos  worldpos.RegionPos
	data []byte
}

// ParseRegion validates the sector table header and wraps data for
// per-chunk decoding; chunk payloads are decompressed on demand by
// LoadChunk, not eagerly.
func ParseRegion(pos worldpos.RegionPos, data []byte) (*Region, error) {
	if len(data) < headerLength {
		return nil, cgerrors.New(cgerrors.KindDeserialisation, "region file shorter than header", map[string]any{"len": len(data)})
	}
	return &Region{pos: pos, data: data}, nil
}

// sectorEntry returns (sectorOffset, sectorCount) for chunk offset
// (ox, oz) within the region, both in [0,32).
func (r *Region) sectorEntry(ox, oz int) (offset, count uint32) {
	index := 4 * (ox + oz*32)
	raw := binary.BigEndian.Uint32(r.data[index : index+4])
	return raw >> 8, raw & 0xff
}

// LoadChunk parses the chunk payload at chunk-local offset (ox, oz),
// returning nil if the chunk has never been generated (sector entry is
// zero).
func (r *Region) LoadChunk(ox, oz int) (*ChunkRecord, error) {
	if ox < 0 || ox >= 32 || oz < 0 || oz >= 32 {
		return nil, cgerrors.New(cgerrors.KindOutOfBounds, "chunk offset out of range", map[string]any{"ox": ox, "oz": oz})
	}

	offset, count := r.sectorEntry(ox, oz)
	if offset == 0 && count == 0 {
		return nil, nil
	}

	start := int(offset) * sectorSize
	end := start + int(count)*sectorSize
	if start < headerLength || end > len(r.data) {
		return nil, cgerrors.New(cgerrors.KindDeserialisation, "sector range out of file bounds",
			map[string]any{"start": start, "end": end, "file_len": len(r.data)})
	}

	sector := r.data[start:end]
	if len(sector) < 5 {
		return nil, cgerrors.New(cgerrors.KindDeserialisation, "chunk sector too short")
	}

	length := binary.BigEndian.Uint32(sector[0:4])
	scheme := compressionScheme(sector[4])
	payload := sector[5:]
	if uint32(len(payload)) < length-1 {
		return nil, cgerrors.New(cgerrors.KindDeserialisation, "chunk payload shorter than declared length")
	}
	payload = payload[:length-1]

	raw, err := decompress(scheme, payload)
	if err != nil {
		return nil, cgerrors.New(cgerrors.KindDeserialisation, "decompress chunk payload", err)
	}

	_, value, err := nbt.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, cgerrors.New(cgerrors.KindDeserialisation, "decode chunk nbt", err)
	}

	root, ok := value.(nbt.Compound)
	if !ok {
		return nil, cgerrors.New(cgerrors.KindDeserialisation, "chunk root tag is not a compound")
	}
	return newChunkRecord(root)
}

func decompress(scheme compressionScheme, payload []byte) ([]byte, error) {
	switch scheme {
	case compressionGzip:
		zr, err := gzip.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case compressionZlib:
		zr, err := zlib.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case compressionNone:
		return payload, nil
	default:
		return nil, fmt.Errorf("unknown compression scheme %d", scheme)
	}
}
