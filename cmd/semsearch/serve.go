package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/agenticlabs/semsearch"
	"github.com/agenticlabs/semsearch/infrastructure/api"
	"github.com/agenticlabs/semsearch/internal/config"
	"github.com/agenticlabs/semsearch/internal/log"
)

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  HOST                         Server host to bind to (default: 0.0.0.0)
  PORT                         Server port to listen on (default: 8080)
  LOG_LEVEL                    Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT                   Log format: pretty, json (default: pretty)
  SEARCH_LIMIT                 Default result limit (default: 5)
  SEARCH_THRESHOLD             Default similarity threshold (default: 0.6)
  HTTP_CACHE_DIR               Directory for caching embedding responses
  CORS_ORIGINS                 Comma-separated allowed origins (default: *)

  EMBEDDING_ENDPOINT_*         Embedding AI service configuration
    BASE_URL                   Base URL (e.g., https://api.openai.com/v1)
    MODEL                      Model identifier (default: text-embedding-3-small)
    API_KEY                    API key for authentication
    TIMEOUT                    Request timeout in seconds (default: 8)
    MAX_INPUT_TOKENS           Input token limit per text (default: 8191)
    NUM_PARALLEL_TASKS         Concurrent warming requests (default: 4)

Without EMBEDDING_ENDPOINT_API_KEY the server starts in degraded mode and
returns sample results with an explanatory status.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	// Flags take precedence over env vars.
	if host != "" {
		cfg = cfg.Apply(config.WithHost(host))
	}
	if port > 0 {
		cfg = cfg.Apply(config.WithPort(port))
	}

	logger := log.Configure(cfg)

	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	logger.Slog().LogAttrs(context.Background(), slog.LevelInfo, "starting semsearch", attrs...)

	client, err := semsearch.New(
		semsearch.WithConfig(cfg),
		semsearch.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create semsearch client: %w", err)
	}

	apiServer := api.NewAPIServer(client, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("shutdown signal received")

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 10*time.Second)
		defer shutdownCancel()

		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
		cancel()
	}()

	return apiServer.ListenAndServe(cfg.Addr())
}
