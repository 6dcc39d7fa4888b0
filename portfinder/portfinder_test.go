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

package portfinder_test

import (
	"net"
	"strconv"
	"testing"

	"github.com/spacechunks/chunkgen/portfinder"
	"github.com/stretchr/testify/require"
)

func TestFindFreePortIsBindable(t *testing.T) {
	f := portfinder.Default{}
	port, err := f.FindFreePort()
	require.NoError(t, err)
	require.Greater(t, port, 0)

	l, err := net.Listen("tcp", "127.0.0.1:"+strconv.Itoa(port))
	require.NoError(t, err)
	l.Close()
}

func TestFindFreePortRepeatedCallsSucceed(t *testing.T) {
	f := portfinder.Default{}
	seen := map[int]struct{}{}
	for i := 0; i < 5; i++ {
		port, err := f.FindFreePort()
		require.NoError(t, err)
		seen[port] = struct{}{}
	}
	require.NotEmpty(t, seen)
}
