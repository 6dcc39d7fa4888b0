package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spacechunks/chunkgen/bot"
	"github.com/spacechunks/chunkgen/fetch"
	"github.com/spacechunks/chunkgen/fsadapter"
	"github.com/spacechunks/chunkgen/genconfig"
	"github.com/spacechunks/chunkgen/generator"
	"github.com/spacechunks/chunkgen/javaruntime"
	"github.com/spacechunks/chunkgen/portfinder"
	"github.com/spacechunks/chunkgen/serverasset"
	"github.com/spacechunks/chunkgen/tree"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := genconfig.ParseFlags("chunkgen", os.Args[1:])
	if err != nil {
		die(logger, "failed to parse config", err)
	}

	if cfg.ManifestPath == "" {
		die(logger, "missing generation request manifest", errors.New("-manifest is required"))
	}
	manifestData, err := os.ReadFile(cfg.ManifestPath)
	if err != nil {
		die(logger, "failed to read manifest", err)
	}
	req, err := genconfig.LoadRequest(manifestData)
	if err != nil {
		die(logger, "failed to parse manifest", err)
	}

	fsys := fsadapter.NewOSFS()
	fetcher := fetch.NewHTTPFetcher()

	ctx := context.Background()
	world, err := tree.LoadFromFS(ctx, fsys, cfg.WorldTemplateDir)
	if err != nil {
		die(logger, "failed to load world template", err)
	}
	req.World = world
	req.WorkDir = cfg.WorkDir

	runtimes := javaruntime.NewResolver(fetcher, fsys, cfg.JavaCacheDir, cfg.RuntimeManifestURL, logger)
	servers := serverasset.NewResolver(fetcher, runtimes, cfg.VersionManifestURL, logger)
	bots := bot.NewSpawner(fetcher, fsys, bot.Options{
		CacheDir:       cfg.BotCacheDir,
		ReleaseBaseURL: cfg.BotReleaseBaseURL,
		MaxAttempts:    cfg.MaxBotLoginAttempts,
		RetryDelay:     cfg.BotLoginRetryDelay,
	}, logger)

	gen := generator.New(servers, bots, portfinder.Default{}, fsys, fetcher, logger)

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		s := <-c
		logger.Info("received shutdown signal", "signal", s)
		cancel()
	}()

	if err := gen.Generate(ctx, req); err != nil {
		die(logger, "generation run failed", err)
	}
	logger.Info("generation run complete")
}

func die(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
