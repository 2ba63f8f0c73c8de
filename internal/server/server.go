// Package server assembles the MCP server: it connects the database
// client, registers the tools allowed by the configuration and serves
// the MCP protocol over stdio.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"github.com/arangoql/arangoql/aql"
	"github.com/arangoql/arangoql/arango"
	"github.com/arangoql/arangoql/internal/config"
)

const (
	serverName    = "arangoql-mcp"
	serverVersion = "0.1.0"
)

// ArangoMCPServer wires the ArangoDB client into an MCP server
// instance.
type ArangoMCPServer struct {
	MCPServer *server.MCPServer
	config    *config.Config
	db        aql.Executor
}

// NewServer builds the MCP server from the given configuration,
// connecting to ArangoDB with a client honoring the configured
// credentials and timeout.
func NewServer(cfg *config.Config) (*ArangoMCPServer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}

	client := arango.NewClient(arango.Config{
		Endpoint:   cfg.Endpoint,
		Database:   cfg.Database,
		Username:   cfg.Username,
		Password:   cfg.Password,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})

	return NewServerWithExecutor(cfg, client)
}

// NewServerWithExecutor builds the MCP server around an existing
// executor. Tests use it to substitute a mock database.
func NewServerWithExecutor(cfg *config.Config, db aql.Executor) (*ArangoMCPServer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database executor is required")
	}

	s := &ArangoMCPServer{
		MCPServer: server.NewMCPServer(
			serverName,
			serverVersion,
			server.WithToolCapabilities(true),
			server.WithLogging(),
		),
		config: cfg,
		db:     db,
	}

	if err := s.registerTools(); err != nil {
		return nil, fmt.Errorf("registering tools: %w", err)
	}

	slog.Info("mcp server initialized",
		"name", serverName,
		"version", serverVersion,
		"database", cfg.Database,
		"readOnly", cfg.ReadOnly)

	return s, nil
}

// ServeStdio serves the MCP protocol on stdin/stdout until the client
// disconnects.
func (s *ArangoMCPServer) ServeStdio() error {
	slog.Info("serving mcp over stdio")
	return server.ServeStdio(s.MCPServer)
}
