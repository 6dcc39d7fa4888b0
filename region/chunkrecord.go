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

package region

import (
	"sync"

	"github.com/spacechunks/chunkgen/cgerrors"
	"github.com/spacechunks/chunkgen/region/nbt"
)

// Block is one palette entry: a block state name plus its properties.
type Block struct {
	Name       string
	Properties map[string]string
}

// Section is one 16x16x16 vertical slice of a chunk, holding its own
// block-state palette and bit-packed index data. Grounded on
// original_source/flex-mc/src/infra/region_loader.rs's Blockstates, with
// its bits_per_block memoization kept (there: RwLock<Option<u32>>; here:
// sync.Once, since a Section is read by at most one orchestrator/verifier
// goroutine at a time once parsed).
type Section struct {
	Y       int8
	Palette []Block
	Data    []int64

	bitsOnce sync.Once
	bits     int
}

// ChunkRecord is a parsed chunk payload: its vertical sections plus every
// other top-level NBT key the spec treats as free-form attributes.
type ChunkRecord struct {
	Sections []Section
	Attrs    map[string]any
}

func newChunkRecord(root nbt.Compound) (*ChunkRecord, error) {
	rec := &ChunkRecord{Attrs: map[string]any{}}
	for k, v := range root {
		if k == "sections" {
			continue
		}
		rec.Attrs[k] = v
	}

	rawSections, _ := root["sections"].([]any)
	for _, rs := range rawSections {
		sc, ok := rs.(nbt.Compound)
		if !ok {
			continue
		}
		sec, err := newSection(sc)
		if err != nil {
			return nil, err
		}
		rec.Sections = append(rec.Sections, sec)
	}
	return rec, nil
}

func newSection(c nbt.Compound) (Section, error) {
	var sec Section
	if y, ok := c["Y"].(int8); ok {
		sec.Y = y
	}

	blockStates, _ := c["block_states"].(nbt.Compound)
	rawPalette, _ := blockStates["palette"].([]any)
	for _, rp := range rawPalette {
		bc, ok := rp.(nbt.Compound)
		if !ok {
			continue
		}
		b := Block{Properties: map[string]string{}}
		if name, ok := bc["Name"].(string); ok {
			b.Name = name
		}
		if props, ok := bc["Properties"].(nbt.Compound); ok {
			for k, v := range props {
				if s, ok := v.(string); ok {
					b.Properties[k] = s
				}
			}
		}
		sec.Palette = append(sec.Palette, b)
	}

	if data, ok := blockStates["data"].([]int64); ok {
		sec.Data = data
	}

	return sec, nil
}

// bitsPerBlock is the number of bits used per block index in Data,
// memoized on first computation: ceil(log2(len(palette))), floored at 4,
// matching vanilla's adaptive section palette encoding.
func (s *Section) bitsPerBlock() int {
	s.bitsOnce.Do(func() {
		n := len(s.Palette)
		bits := 0
		for (1 << bits) < n {
			bits++
		}
		if bits < 4 {
			bits = 4
		}
		s.bits = bits
	})
	return s.bits
}

// GetBlock returns the palette entry at local coordinates (x, y, z),
// 0<=x,y,z<16, within this section.
func (s *Section) GetBlock(x, y, z int) (Block, error) {
	if x < 0 || x >= 16 || y < 0 || y >= 16 || z < 0 || z >= 16 {
		return Block{}, cgerrors.New(cgerrors.KindOutOfBounds, "section-local coordinate out of bounds",
			map[string]any{"x": x, "y": y, "z": z})
	}
	if len(s.Palette) == 0 {
		return Block{}, cgerrors.New(cgerrors.KindOutOfBounds, "section has no palette")
	}

	bits := s.bitsPerBlock()
	if bits == 0 || len(s.Data) == 0 {
		return s.Palette[0], nil
	}

	blockIndex := (y*16+z)*16 + x
	blocksPerLong := 64 / bits
	dataIndex := blockIndex / blocksPerLong
	bitOffset := (blockIndex % blocksPerLong) * bits

	if dataIndex >= len(s.Data) {
		return Block{}, cgerrors.New(cgerrors.KindOutOfBounds, "block index beyond section data")
	}

	word := uint64(s.Data[dataIndex])
	mask := uint64(1)<<uint(bits) - 1
	paletteIndex := int((word >> uint(bitOffset)) & mask)

	if paletteIndex >= len(s.Palette) {
		return Block{}, cgerrors.New(cgerrors.KindOutOfBounds, "palette index out of range",
			map[string]any{"index": paletteIndex, "palette_len": len(s.Palette)})
	}
	return s.Palette[paletteIndex], nil
}

// GetBlock resolves global chunk-local coordinates (0<=x,z<16, y in the
// world's vertical range) to the section that contains y and delegates.
func (c *ChunkRecord) GetBlock(x, y, z int) (Block, error) {
	if x < 0 || x >= 16 || z < 0 || z >= 16 {
		return Block{}, cgerrors.New(cgerrors.KindOutOfBounds, "x/z coordinate out of bounds", map[string]any{"x": x, "z": z})
	}

	sectionY := floorDivInt(y, 16)
	localY := floorModInt(y, 16)

	for i := range c.Sections {
		if int(c.Sections[i].Y) == sectionY {
			return c.Sections[i].GetBlock(x, localY, z)
		}
	}
	return Block{}, cgerrors.New(cgerrors.KindOutOfBounds, "no section for y", map[string]any{"y": y})
}

func floorDivInt(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorModInt(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
