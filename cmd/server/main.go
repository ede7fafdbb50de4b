package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iudanet/cardconnect/internal/config"
	"github.com/iudanet/cardconnect/internal/logging"
	"github.com/iudanet/cardconnect/internal/server"
	"github.com/iudanet/cardconnect/internal/server/handlers"
	"github.com/iudanet/cardconnect/internal/server/middleware"
	"github.com/iudanet/cardconnect/internal/server/storage"
	"github.com/iudanet/cardconnect/internal/server/storage/s3store"
	"github.com/iudanet/cardconnect/internal/server/storage/sqldb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configFile string
		envFile    string
	)

	cmd := &cobra.Command{
		Use:           "cardconnect-server",
		Short:         "CardConnect document server",
		Version:       fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServer(config.Source{
				Flags:      cmd.Flags(),
				ConfigFile: configFile,
				EnvFile:    envFile,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := run(ctx, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "Path to YAML config file")
	flags.StringVar(&envFile, "env-file", ".env", "Path to .env file")
	flags.String("address", "", "Listen address")
	flags.String("db-driver", "", "Database driver: sqlite or postgres")
	flags.String("db-dsn", "", "Database DSN (file path for sqlite)")
	flags.String("doc-backend", "", "Card document backend: sql or s3")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("log-format", "", "Log format: text or json")

	return cmd
}

func run(ctx context.Context, cfg *config.Server) error {
	logger, closeLog, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()
	slog.SetDefault(logger)

	logger.Info("starting cardconnect server",
		slog.String("version", Version),
		slog.String("db_driver", cfg.DBDriver),
		slog.String("doc_backend", cfg.DocBackend))

	db, err := sqldb.New(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	var docs storage.DocumentStorage = db
	if cfg.DocBackend == config.DocBackendS3 {
		docs, err = s3store.New(ctx, s3store.Config{
			Endpoint:     cfg.S3.Endpoint,
			Region:       cfg.S3.Region,
			Bucket:       cfg.S3.Bucket,
			AccessKey:    cfg.S3.AccessKey,
			SecretKey:    cfg.S3.SecretKey,
			UsePathStyle: cfg.S3.UsePathStyle,
		}, logger)
		if err != nil {
			return fmt.Errorf("failed to create s3 document store: %w", err)
		}
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, logger)
	defer limiter.Stop()

	router := server.NewRouter(server.Deps{
		Logger:      logger,
		Users:       db,
		Tokens:      db,
		Documents:   docs,
		DB:          db,
		RateLimiter: limiter,
		Version:     Version,
		JWT: handlers.JWTConfig{
			Secret:          []byte(cfg.JWTSecret),
			AccessTokenTTL:  cfg.AccessTTL,
			RefreshTokenTTL: cfg.RefreshTTL,
		},
		MaxDocBytes: cfg.MaxDocumentBytes,
	})

	return server.New(cfg.Address, router, db, logger).Run(ctx)
}
