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

// Package worldpos holds the chunk/region coordinate types shared by the
// region reader and the orchestrator (spec.md section 3).
package worldpos

import "fmt"

// ChunkPos is a signed chunk coordinate pair (16 blocks per axis).
type ChunkPos struct {
	X, Z int32
}

// RegionPos is a signed region coordinate pair (32x32 chunks per region).
type RegionPos struct {
	X, Z int32
}

// FileName returns the vanilla "r.<x>.<z>.mca" region file name.
func (r RegionPos) FileName() string {
	return fmt.Sprintf("r.%d.%d.mca", r.X, r.Z)
}

// RegionOf computes the region a chunk belongs to, using floored division
// so negative coordinates behave like spec.md section 8 requires:
// ChunkPos{-1,-1}.RegionOf() == RegionPos{-1,-1} and
// ChunkPos{-33,-33}.RegionOf() == RegionPos{-2,-2}.
func (c ChunkPos) RegionOf() RegionPos {
	return RegionPos{
		X: floorDiv(c.X, 32),
		Z: floorDiv(c.Z, 32),
	}
}

// RegionOffset computes the chunk's position within its region, in [0,32).
func (c ChunkPos) RegionOffset() (x, z int) {
	return int(floorMod(c.X, 32)), int(floorMod(c.Z, 32))
}

// CenterBlock returns the block coordinates of the chunk's horizontal
// center, used by the orchestrator to build "tp" commands (spec.md 4.5).
func (c ChunkPos) CenterBlock() (bx, bz int32) {
	return c.X*16 + 8, c.Z*16 + 8
}

// floorDiv performs floored integer division, unlike Go's native "/" which
// truncates toward zero. Go's and Rust's division agree here: Rust's
// integer "/" also truncates, which is why the original source needed
// div_euclid explicitly (see original_source/.../region_loader.rs); this
// is the Go equivalent of that call, not a straight port of "/".
func floorDiv(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int32) int32 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// Dimension is the closed set of vanilla world dimensions, used by the
// region reader to locate the right on-disk region subdirectory. The
// orchestrator itself never passes one through: spec.md 4.5's scheduler
// only ever teleports bots into the Overworld (see SPEC_FULL.md's Open
// Questions decisions).
type Dimension int

const (
	Overworld Dimension = iota
	Nether
	TheEnd
)

// RegionDir returns the region directory for this dimension, relative to
// the world root (spec.md section 6).
func (d Dimension) RegionDir() string {
	switch d {
	case Nether:
		return "DIM-1/region"
	case TheEnd:
		return "DIM1/region"
	default:
		return "region"
	}
}

func (d Dimension) String() string {
	switch d {
	case Nether:
		return "nether"
	case TheEnd:
		return "the_end"
	default:
		return "overworld"
	}
}
