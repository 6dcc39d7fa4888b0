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

package fetch

import (
	"context"

	"github.com/spacechunks/chunkgen/cgerrors"
)

// MemFetcher serves byte blobs from an in-memory map, keyed by URL, for
// tests that need a Fetcher without a network round trip.
type MemFetcher struct {
	Blobs map[string][]byte
}

func NewMemFetcher() *MemFetcher {
	return &MemFetcher{Blobs: map[string][]byte{}}
}

func (f *MemFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	b, ok := f.Blobs[url]
	if !ok {
		return nil, cgerrors.New(cgerrors.KindNetworkFetch, "no such blob", map[string]any{"url": url})
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

var _ Fetcher = (*MemFetcher)(nil)
