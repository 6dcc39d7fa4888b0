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

// Package cachekey computes the xxh3 digest that the runtime, server asset
// and bot binary resolvers write to their debug logs for the manifests and
// binary they fetch; no cache decision depends on it. Grounded on
// internal/file.ComputeHashStr, adapted from a streaming ReadSeekCloser
// hash to an in-memory byte slice since all three callers already hold
// their manifest/binary bytes in memory.
package cachekey

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// Sum returns the hex-encoded xxh3 digest of data.
func Sum(data []byte) string {
	h := xxh3.New()
	_, _ = h.Write(data)
	return fmt.Sprintf("%x", h.Sum(nil))
}
