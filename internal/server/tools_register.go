package server

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/arangoql/arangoql/internal/tools"
	"github.com/arangoql/arangoql/internal/tools/aqlquery"
	"github.com/arangoql/arangoql/internal/tools/find"
	"github.com/arangoql/arangoql/internal/tools/saved"
)

// registerTools registers all enabled MCP tools and adds them to the provided MCP server.
// Tools are filtered according to the server configuration. For example, when the read-only
// mode is enabled (e.g. via the ARANGO_READ_ONLY environment variable or the Config.ReadOnly flag),
// any tool that performs state mutation will be excluded; only tools annotated as read-only will be registered.
// Note: this read-only filtering relies on the tool annotation "readonly" (ReadOnlyHint). If the annotation
// is not defined or is set to false, the tool will be added (i.e., only tools with readonly=true are filtered in read-only mode).
func (s *ArangoMCPServer) registerTools() error {
	filteredTools := s.getEnabledTools()
	s.MCPServer.AddTools(filteredTools...)
	return nil
}

type toolFilter func(tools []ToolDefinition) []ToolDefinition

type toolCategory int

const (
	queryCategory toolCategory = 0 // Raw and structured AQL execution
	savedCategory toolCategory = 1 // Saved queries loaded from YAML definitions
)

type ToolDefinition struct {
	category   toolCategory
	definition server.ServerTool
	readonly   bool
}

func (s *ArangoMCPServer) getEnabledTools() []server.ServerTool {
	filters := make([]toolFilter, 0)

	// If read-only mode is enabled, expose only tools annotated as read-only.
	if s.config != nil && s.config.ReadOnly {
		filters = append(filters, filterWriteTools)
	}
	deps := &tools.ToolDependencies{
		DB:               s.db,
		DefaultBatchSize: s.config.DefaultBatchSize,
	}
	toolDefs := s.getAllToolsDefs(deps)

	for _, filter := range filters {
		toolDefs = filter(toolDefs)
	}
	enabledTools := make([]server.ServerTool, 0)
	for _, toolDef := range toolDefs {
		enabledTools = append(enabledTools, toolDef.definition)
	}
	return enabledTools
}

func filterWriteTools(tools []ToolDefinition) []ToolDefinition {
	readOnlyTools := make([]ToolDefinition, 0, len(tools))
	for _, t := range tools {
		if t.readonly {
			readOnlyTools = append(readOnlyTools, t)
		}
	}
	return readOnlyTools
}

// getAllToolsDefs returns all available tools with their specs and handlers
func (s *ArangoMCPServer) getAllToolsDefs(deps *tools.ToolDependencies) []ToolDefinition {
	toolDefs := []ToolDefinition{
		{
			category: queryCategory,
			definition: server.ServerTool{
				Tool:    aqlquery.ReadAQLSpec(),
				Handler: aqlquery.ReadAQLHandler(deps),
			},
			readonly: true,
		},
		{
			category: queryCategory,
			definition: server.ServerTool{
				Tool:    find.FindDocumentsSpec(),
				Handler: find.FindDocumentsHandler(deps),
			},
			readonly: true,
		},
	}

	// Load saved queries from the queries config directory
	savedTools := s.loadSavedQueries(deps)
	toolDefs = append(toolDefs, savedTools...)

	return toolDefs
}

// loadSavedQueries loads tools from YAML definitions in queries/config/
func (s *ArangoMCPServer) loadSavedQueries(deps *tools.ToolDependencies) []ToolDefinition {
	registry := saved.NewQueryRegistry("queries/config")

	if err := registry.LoadQueries(); err != nil {
		slog.Error("failed to load saved queries", "error", err)
		return []ToolDefinition{}
	}

	if registry.GetQueryCount() == 0 {
		slog.Info("no saved queries found in config directory")
		return []ToolDefinition{}
	}

	slog.Info("loaded saved queries", "count", registry.GetQueryCount())

	serverTools := registry.GetServerTools(deps)
	toolDefs := make([]ToolDefinition, 0, len(serverTools))

	for _, serverTool := range serverTools {
		// Saved queries compile through the query builder, so they are
		// read-only by construction.
		toolDef := ToolDefinition{
			category:   savedCategory,
			definition: serverTool,
			readonly:   true,
		}
		toolDefs = append(toolDefs, toolDef)
	}

	return toolDefs
}
