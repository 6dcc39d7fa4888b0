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

// Package fetch is the URL-fetching capability injected into the resolvers
// and the tree mounter (spec.md section 9). Network HTTP fetching itself is
// out of this module's core scope (spec.md section 1); this package exists
// only to give that external collaborator a narrow, injectable interface.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/spacechunks/chunkgen/cgerrors"
)

// Fetcher returns the bytes at a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches over plain HTTP(S).
type HTTPFetcher struct {
	Client *http.Client
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{Client: http.DefaultClient}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, cgerrors.New(cgerrors.KindNetworkFetch, "build request", err, map[string]any{"url": url})
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, cgerrors.New(cgerrors.KindNetworkFetch, "do request", err, map[string]any{"url": url})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, cgerrors.New(
			cgerrors.KindNetworkFetch,
			fmt.Sprintf("unexpected status %d", resp.StatusCode),
			map[string]any{"url": url, "status": resp.StatusCode},
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cgerrors.New(cgerrors.KindNetworkFetch, "read body", err, map[string]any{"url": url})
	}
	return body, nil
}

var _ Fetcher = (*HTTPFetcher)(nil)
