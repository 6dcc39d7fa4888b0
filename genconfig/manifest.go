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

package genconfig

import (
	"time"

	"github.com/goccy/go-yaml"

	"github.com/spacechunks/chunkgen/cgerrors"
	"github.com/spacechunks/chunkgen/generator"
	"github.com/spacechunks/chunkgen/worldpos"
)

// manifestDoc is the on-disk shape of a generation request: everything
// generator.Request needs that isn't already fixed by Config.
type manifestDoc struct {
	VersionID    string `yaml:"version_id"`
	BotCount     int    `yaml:"bot_count"`
	ViewDistance int    `yaml:"view_distance"`
	MaxPlayers   int    `yaml:"max_players"`
	EventWindow  string `yaml:"event_window"`
	Chunks       []struct {
		X int32 `yaml:"x"`
		Z int32 `yaml:"z"`
	} `yaml:"chunks"`
}

// LoadRequest parses a YAML generation-request manifest (version id, chunk
// list, bot count) into the parts of a generator.Request a manifest can
// describe. The caller still supplies World, WorkDir and RunOptions, since
// those depend on capabilities LoadRequest has no access to.
func LoadRequest(data []byte) (generator.Request, error) {
	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return generator.Request{}, cgerrors.New(cgerrors.KindDeserialisation, "parse generation request manifest", err)
	}
	if doc.VersionID == "" {
		return generator.Request{}, cgerrors.New(cgerrors.KindVersionUnknown, "manifest missing version_id")
	}

	req := generator.Request{
		VersionID:    doc.VersionID,
		BotCount:     doc.BotCount,
		ViewDistance: doc.ViewDistance,
		MaxPlayers:   doc.MaxPlayers,
	}

	if doc.EventWindow != "" {
		d, err := time.ParseDuration(doc.EventWindow)
		if err != nil {
			return generator.Request{}, cgerrors.New(cgerrors.KindDeserialisation, "parse event_window", err)
		}
		req.EventWindow = d
	}

	req.Chunks = make([]worldpos.ChunkPos, 0, len(doc.Chunks))
	for _, c := range doc.Chunks {
		req.Chunks = append(req.Chunks, worldpos.ChunkPos{X: c.X, Z: c.Z})
	}
	return req, nil
}
