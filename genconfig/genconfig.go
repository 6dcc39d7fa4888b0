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

// Package genconfig is the ambient config-loading layer a caller's own
// driver uses to build a generator.Request without hand-assembling flags
// or a manifest parser. Both ParseFlags and LoadRequest are exported
// entry points, used by this module's own cmd/chunkgen driver and
// available to any other caller, in the same flag-block shape as
// cmd/platformd/main.go.
package genconfig

import (
	"flag"
	"time"

	"github.com/peterbourgon/ff/v3"

	"github.com/spacechunks/chunkgen/cgerrors"
)

// Config is the flag-derived surface a driver needs to wire up a
// generator.Generator. It deliberately excludes the chunk list and bot
// count, which come from a per-run manifest via LoadRequest instead.
type Config struct {
	VersionManifestURL  string
	RuntimeManifestURL  string
	JavaCacheDir        string
	BotReleaseBaseURL   string
	BotCacheDir         string
	WorkDir             string
	WorldTemplateDir    string
	ManifestPath        string
	MaxBotLoginAttempts int
	BotLoginRetryDelay  time.Duration
}

// ParseFlags parses args (typically os.Args[1:]) into a Config, honoring
// environment variables prefixed "CHUNKGEN_" and an optional JSON config
// file named by "-config", mirroring cmd/platformd/main.go's ff.Parse
// block.
func ParseFlags(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	var (
		versionManifestURL  = fs.String("version-manifest-url", "https://launchermeta.mojang.com/mc/game/version_manifest.json", "mojang version manifest URL")      //nolint:lll
		runtimeManifestURL  = fs.String("runtime-manifest-url", "https://launchermeta.mojang.com/v1/products/java-runtime/manifest.json", "mojang java runtime manifest URL") //nolint:lll
		javaCacheDir        = fs.String("java-cache-dir", "/var/cache/chunkgen/java", "directory java runtimes are installed under")                                 //nolint:lll
		botReleaseBaseURL   = fs.String("bot-release-base-url", "", "base URL bot binaries are downloaded from")                                                     //nolint:lll
		botCacheDir         = fs.String("bot-cache-dir", "/var/cache/chunkgen/bot", "directory the bot binary is cached under")                                      //nolint:lll
		workDir             = fs.String("work-dir", "/var/run/chunkgen", "base directory staged servers are run under")                                             //nolint:lll
		worldTemplateDir    = fs.String("world-template-dir", "", "directory holding the seed world copied into every generation run")                              //nolint:lll
		manifestPath        = fs.String("manifest", "", "path to the YAML generation request manifest")                                                             //nolint:lll
		maxBotLoginAttempts = fs.Uint("max-bot-login-attempts", 3, "maximum bot login attempts before giving up")                                                    //nolint:lll
		botLoginRetryDelay  = fs.Duration("bot-login-retry-delay", 5*time.Second, "delay between bot login attempts")                                                //nolint:lll
		_                   = fs.String("config", "", "path to a JSON config file")                                                                                  //nolint:lll
	)

	if err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("CHUNKGEN"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithAllowMissingConfigFile(true),
	); err != nil {
		return Config{}, cgerrors.New(cgerrors.KindDeserialisation, "parse flags", err)
	}

	return Config{
		VersionManifestURL:  *versionManifestURL,
		RuntimeManifestURL:  *runtimeManifestURL,
		JavaCacheDir:        *javaCacheDir,
		BotReleaseBaseURL:   *botReleaseBaseURL,
		BotCacheDir:         *botCacheDir,
		WorkDir:             *workDir,
		WorldTemplateDir:    *worldTemplateDir,
		ManifestPath:        *manifestPath,
		MaxBotLoginAttempts: int(*maxBotLoginAttempts),
		BotLoginRetryDelay:  *botLoginRetryDelay,
	}, nil
}
