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

package nbt_test

import (
	"bytes"
	"testing"

	"github.com/spacechunks/chunkgen/region/nbt"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	root := nbt.Compound{
		"Status": "full",
		"xPos":   int32(4),
		"zPos":   int32(-2),
		"sections": []any{
			nbt.Compound{
				"Y": int8(0),
				"palette": []any{
					nbt.Compound{"Name": "minecraft:stone"},
					nbt.Compound{"Name": "minecraft:air"},
				},
				"data": []int64{1, 2, 3},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, nbt.Encode(&buf, "", root))

	name, value, err := nbt.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, "", name)

	got, ok := value.(nbt.Compound)
	require.True(t, ok)
	require.Equal(t, "full", got["Status"])
	require.Equal(t, int32(4), got["xPos"])

	sections, ok := got["sections"].([]any)
	require.True(t, ok)
	require.Len(t, sections, 1)

	section := sections[0].(nbt.Compound)
	require.Equal(t, int8(0), section["Y"])
	palette := section["palette"].([]any)
	require.Len(t, palette, 2)
	require.Equal(t, "minecraft:stone", palette[0].(nbt.Compound)["Name"])
}
