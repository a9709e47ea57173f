package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agenticlabs/semsearch"
	"github.com/agenticlabs/semsearch/internal/log"
	"github.com/agenticlabs/semsearch/internal/mcp"
)

func stdioCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "stdio",
		Short: "Start MCP server on stdio",
		Long: `Start the MCP (Model Context Protocol) server on stdio.

This lets AI assistants search the content corpus through the search and
get_content tools. Configuration is loaded from environment variables and
an optional .env file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStdio(envFile)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file")

	return cmd
}

func runStdio(envFile string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	// Stdout carries the MCP protocol; logs must go to stderr.
	logger := log.NewLoggerWithWriter(os.Stderr, cfg.LogFormat(), cfg.LogLevel())

	client, err := semsearch.New(
		semsearch.WithConfig(cfg),
		semsearch.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create semsearch client: %w", err)
	}

	logger.Info("starting MCP server on stdio", "version", version)

	srv := mcp.NewServer(client.Search, client.Corpus(), version, logger)
	return srv.ServeStdio()
}
