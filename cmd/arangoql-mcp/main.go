// Command arangoql-mcp serves AQL query tools over the Model Context
// Protocol on stdio. Configuration comes from the ARANGO_* environment
// variables.
package main

import (
	"log/slog"
	"os"

	"github.com/arangoql/arangoql/internal/config"
	"github.com/arangoql/arangoql/internal/server"
	"github.com/arangoql/arangoql/internal/tools/saved"
	"github.com/arangoql/arangoql/queries"
)

func main() {
	// stdout carries the MCP protocol, so logs go to stderr.
	logLevel := slog.LevelInfo
	if os.Getenv("ARANGO_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	// Saved query definitions ship embedded in the binary; a queries
	// directory on disk takes over during development.
	saved.EmbeddedFS = queries.ConfigFiles

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		slog.Error("failed to initialize server", "error", err)
		os.Exit(1)
	}

	if err := srv.ServeStdio(); err != nil {
		slog.Error("server terminated", "error", err)
		os.Exit(1)
	}
}
