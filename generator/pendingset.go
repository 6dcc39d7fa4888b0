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
	"sync"

	"github.com/spacechunks/chunkgen/worldpos"
)

// PendingSet is the single source of truth for which chunks still need a
// bot teleport (spec.md section 4.5, Phase C). All operations are O(1)
// amortised under one mutex; the set shrinks monotonically, so workers
// never need to reconcile conflicting views of remaining work.
type PendingSet struct {
	mu  sync.Mutex
	set map[worldpos.ChunkPos]struct{}
}

// NewPendingSet seeds the set from the requested chunk list, de-duplicating
// any repeats.
func NewPendingSet(chunks []worldpos.ChunkPos) *PendingSet {
	set := make(map[worldpos.ChunkPos]struct{}, len(chunks))
	for _, c := range chunks {
		set[c] = struct{}{}
	}
	return &PendingSet{set: set}
}

// SampleRandom returns an arbitrary remaining chunk. Go's map iteration
// order already starts at a randomised bucket per the runtime, so a single
// range step is both O(1) and an adequate source of "random" for the
// amortising effect spec.md section 4.5 describes — this isn't a fair
// uniform sample, just enough to spread bots across different corners of
// the set.
func (p *PendingSet) SampleRandom() (worldpos.ChunkPos, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for c := range p.set {
		return c, true
	}
	return worldpos.ChunkPos{}, false
}

// Remove is a no-op if c is absent, which is the common case once a bot
// reports chunks outside the worker's own current target.
func (p *PendingSet) Remove(c worldpos.ChunkPos) {
	p.mu.Lock()
	delete(p.set, c)
	p.mu.Unlock()
}

// Len returns the number of chunks still pending.
func (p *PendingSet) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.set)
}

// Empty reports whether every requested chunk has been confirmed loaded.
func (p *PendingSet) Empty() bool {
	return p.Len() == 0
}
