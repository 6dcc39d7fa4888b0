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

package genconfig_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spacechunks/chunkgen/genconfig"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := genconfig.ParseFlags("chunkgen", nil)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.MaxBotLoginAttempts)
	require.Equal(t, 5*time.Second, cfg.BotLoginRetryDelay)
	require.NotEmpty(t, cfg.JavaCacheDir)
}

func TestParseFlagsOverridesViaArgs(t *testing.T) {
	cfg, err := genconfig.ParseFlags("chunkgen", []string{
		"-bot-cache-dir", "/tmp/bots",
		"-max-bot-login-attempts", "7",
	})
	require.NoError(t, err)
	require.Equal(t, "/tmp/bots", cfg.BotCacheDir)
	require.Equal(t, 7, cfg.MaxBotLoginAttempts)
}

func TestParseFlagsOverridesViaEnv(t *testing.T) {
	t.Setenv("CHUNKGEN_WORK_DIR", "/tmp/chunkgen-work")

	cfg, err := genconfig.ParseFlags("chunkgen", nil)
	require.NoError(t, err)
	require.Equal(t, "/tmp/chunkgen-work", cfg.WorkDir)
}
