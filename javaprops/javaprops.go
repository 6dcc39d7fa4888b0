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

// Package javaprops overlays the fixed set of server.properties keys the
// orchestrator requires onto whatever properties file ships with a given
// server version (spec.md section 4.5, Phase A), leaving every other key
// untouched. Properties files are standard Java properties syntax and are
// read and written as ISO-8859-1, matching the encoding the Java
// properties format itself specifies (spec.md section 6).
package javaprops

import (
	"bytes"
	"strconv"

	"github.com/magiconair/properties"

	"github.com/spacechunks/chunkgen/cgerrors"
)

// Overlay is the fixed key/value table Phase A writes over whatever
// server.properties shipped with the jar.
type Overlay struct {
	Port         int
	MaxPlayers   int
	ViewDistance int
}

// Apply parses existing (the tree's current server.properties, or empty if
// none shipped), overlays the fixed keys and returns the re-serialised
// file. Unrecognised keys already present are preserved verbatim, and
// applying the same overlay twice is a no-op on the second pass (spec.md
// section 8's properties round-trip invariant).
func Apply(existing []byte, o Overlay) ([]byte, error) {
	p, err := properties.LoadBytes(existing, properties.ISO_8859_1)
	if err != nil {
		return nil, cgerrors.New(cgerrors.KindDeserialisation, "parse server.properties", err)
	}

	overlay := map[string]string{
		"online-mode":   "false",
		"max-players":   strconv.Itoa(o.MaxPlayers),
		"server-port":   strconv.Itoa(o.Port),
		"view-distance": strconv.Itoa(o.ViewDistance),
		"gamemode":      "creative",
		"allow-flight":  "true",
	}

	for k, v := range overlay {
		if _, _, err := p.Set(k, v); err != nil {
			return nil, cgerrors.New(cgerrors.KindDeserialisation, "set "+k, err)
		}
	}

	var buf bytes.Buffer
	if _, err := p.Write(&buf, properties.ISO_8859_1); err != nil {
		return nil, cgerrors.New(cgerrors.KindDeserialisation, "write server.properties", err)
	}
	return buf.Bytes(), nil
}

// Eula returns the contents of a server's eula.txt once the operator has
// accepted the Minecraft EULA out of band (spec.md section 4.5, Phase A:
// "write eula.txt"); chunk generation never proceeds without it.
func Eula() []byte {
	return []byte("eula=true\n")
}
