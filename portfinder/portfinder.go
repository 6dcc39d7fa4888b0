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

// Package portfinder picks a free TCP port on the loopback interface by
// binding ephemeral and releasing, grounded on
// original_source/flex-mc/src/infra/free_port_finder.rs.
package portfinder

import (
	"fmt"
	"net"
)

// Finder selects free TCP ports, an interface so the orchestrator can be
// tested against a deterministic fake.
type Finder interface {
	FindFreePort() (int, error)
}

// Default binds an ephemeral listener on 127.0.0.1:0 and immediately
// releases it. There is an inherent TOCTOU race between release and the
// caller's own bind; nothing in this package's narrow interface can close
// it, and the generator's server launch does not retry on a bind failure.
type Default struct{}

func (Default) FindFreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("listen: %w", err)
	}
	defer l.Close()

	addr, ok := l.Addr().(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("unexpected listener address type %T", l.Addr())
	}
	return addr.Port, nil
}

var _ Finder = Default{}
