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
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacechunks/chunkgen/generator"
	"github.com/spacechunks/chunkgen/worldpos"
)

func TestPendingSetDrainsToEmpty(t *testing.T) {
	chunks := []worldpos.ChunkPos{{X: 0, Z: 0}, {X: 1, Z: 0}, {X: 0, Z: 1}}
	p := generator.NewPendingSet(chunks)
	require.Equal(t, 3, p.Len())

	for !p.Empty() {
		c, ok := p.SampleRandom()
		require.True(t, ok)
		p.Remove(c)
	}

	_, ok := p.SampleRandom()
	require.False(t, ok)
}

func TestPendingSetRemoveAbsentIsNoop(t *testing.T) {
	p := generator.NewPendingSet([]worldpos.ChunkPos{{X: 0, Z: 0}})
	p.Remove(worldpos.ChunkPos{X: 99, Z: 99})
	require.Equal(t, 1, p.Len())
}

func TestPendingSetConcurrentDrainIsRaceFree(t *testing.T) {
	const n = 200
	chunks := make([]worldpos.ChunkPos, n)
	for i := range chunks {
		chunks[i] = worldpos.ChunkPos{X: int32(i), Z: int32(i)}
	}
	p := generator.NewPendingSet(chunks)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				c, ok := p.SampleRandom()
				if !ok {
					return
				}
				p.Remove(c)
			}
		}()
	}
	wg.Wait()

	require.True(t, p.Empty())
}
