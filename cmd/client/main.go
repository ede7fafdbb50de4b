package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/cardconnect/internal/client/ai"
	"github.com/iudanet/cardconnect/internal/client/api"
	"github.com/iudanet/cardconnect/internal/client/auth"
	"github.com/iudanet/cardconnect/internal/client/cli"
	"github.com/iudanet/cardconnect/internal/client/ingest"
	"github.com/iudanet/cardconnect/internal/client/iocli"
	"github.com/iudanet/cardconnect/internal/client/remote"
	"github.com/iudanet/cardconnect/internal/client/storage/boltdb"
	"github.com/iudanet/cardconnect/internal/client/sync"
	"github.com/iudanet/cardconnect/internal/config"
	"github.com/iudanet/cardconnect/internal/logging"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	version := fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit)
	root, closeFn := cli.NewRootCommand(build, version)

	code := cli.Execute(ctx, root, closeFn)
	stop()
	os.Exit(code)
}

// build собирает сервисы клиента по конфигурации
func build(ctx context.Context, cfg *config.Client) (*cli.Cli, func() error, error) {
	logger, closeLog, err := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return nil, nil, err
	}

	// Открываем BoltDB storage
	store, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		_ = closeLog()
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	apiClient := api.NewClient(cfg.ServerURL)
	authService := auth.NewService(apiClient, store, logger)

	documents := api.NewDocumentClient(apiClient, authService)
	repo := remote.NewRepository(documents, authService, cfg.ImageOptions(), logger)
	engine := sync.NewEngine(repo, authService, store, store, sync.NewSession(), sync.Config{Workers: cfg.PushWorkers}, logger)

	if cfg.AnthropicAPIKey == "" {
		logger.Debug("anthropic_api_key is not set, scanning will fail")
	}
	aiClient := ai.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel, logger)
	pipeline := ingest.NewPipeline(aiClient, aiClient, store, authService, engine, logger)

	c := cli.New(cli.Deps{
		IO:     iocli.NewStdio(),
		Auth:   authService,
		Engine: engine,
		Ingest: pipeline,
		Cards:  store,
		Logger: logger,
	})

	cleanup := func() error {
		pipeline.Wait()
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
			_ = closeLog()
			return err
		}
		return closeLog()
	}
	return c, cleanup, nil
}
