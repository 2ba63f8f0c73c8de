package saved

import (
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/arangoql/arangoql/internal/tools"
)

// QueryRegistry manages the loading and registration of saved query tools
type QueryRegistry struct {
	queryDir string
	configs  []*QueryConfig
}

// NewQueryRegistry creates a new saved query registry
func NewQueryRegistry(queryDir string) *QueryRegistry {
	return &QueryRegistry{
		queryDir: queryDir,
		configs:  make([]*QueryConfig, 0),
	}
}

// LoadQueries loads all saved query definitions from the query directory
func (r *QueryRegistry) LoadQueries() error {
	configs, err := WalkQueryDirectory(r.queryDir)
	if err != nil {
		return fmt.Errorf("failed to load saved queries: %w", err)
	}

	r.configs = configs
	slog.Info("loaded saved queries", "count", len(configs), "queryDir", r.queryDir)

	return nil
}

// GetQueryCount returns the number of loaded saved queries
func (r *QueryRegistry) GetQueryCount() int {
	return len(r.configs)
}

// GetQueries returns all loaded saved query definitions
func (r *QueryRegistry) GetQueries() []*QueryConfig {
	return r.configs
}

// GetServerTools converts all loaded definitions into MCP server tools
func (r *QueryRegistry) GetServerTools(deps *tools.ToolDependencies) []server.ServerTool {
	serverTools := make([]server.ServerTool, 0, len(r.configs))

	for _, config := range r.configs {
		tool := r.buildServerTool(config, deps)
		serverTools = append(serverTools, tool)
	}

	return serverTools
}

// buildServerTool creates an MCP server tool from a saved query definition
func (r *QueryRegistry) buildServerTool(config *QueryConfig, deps *tools.ToolDependencies) server.ServerTool {
	description := buildEnrichedDescription(config)

	options := []mcp.ToolOption{
		mcp.WithDescription(description),
		mcp.WithTitleAnnotation(config.Name),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	}
	options = append(options, parameterOptions(config.Parameters)...)

	mcpTool := mcp.NewTool(config.Name, options...)

	slog.Debug("built saved query tool", "name", config.Name, "category", config.Category)

	return server.ServerTool{
		Tool:    mcpTool,
		Handler: NewSavedQueryHandler(config, deps),
	}
}

// parameterOptions maps declared parameters onto tool input schema
// properties.
func parameterOptions(params []ParameterConfig) []mcp.ToolOption {
	options := make([]mcp.ToolOption, 0, len(params))
	for _, param := range params {
		var propOptions []mcp.PropertyOption
		if param.Description != "" {
			propOptions = append(propOptions, mcp.Description(param.Description))
		}
		if param.Required {
			propOptions = append(propOptions, mcp.Required())
		}

		switch param.Type {
		case "integer", "number":
			options = append(options, mcp.WithNumber(param.Name, propOptions...))
		case "boolean":
			options = append(options, mcp.WithBoolean(param.Name, propOptions...))
		case "array":
			options = append(options, mcp.WithArray(param.Name, propOptions...))
		default:
			options = append(options, mcp.WithString(param.Name, propOptions...))
		}
	}
	return options
}

func buildEnrichedDescription(config *QueryConfig) string {
	description := config.Description
	if config.Intent != "" {
		description += "\n\n**WHEN TO USE:**\n" + config.Intent
	}
	description += fmt.Sprintf("\n\nRuns a pre-defined read-only query over the %s collection.", config.Collection)
	return description
}

// GetCategory returns the category for a given saved query name
func (r *QueryRegistry) GetCategory(queryName string) string {
	for _, config := range r.configs {
		if config.Name == queryName {
			return config.Category
		}
	}
	return "unknown"
}

// GetQueriesByCategory returns all saved queries in a specific category
func (r *QueryRegistry) GetQueriesByCategory(category string) []*QueryConfig {
	matching := make([]*QueryConfig, 0)
	for _, config := range r.configs {
		if config.Category == category {
			matching = append(matching, config)
		}
	}
	return matching
}
