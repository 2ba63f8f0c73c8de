// Package aqlquery implements the read-aql MCP tool: it runs a raw
// read-only AQL statement and returns the full result set as JSON.
package aqlquery

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arangoql/arangoql/aql"
	"github.com/arangoql/arangoql/internal/tools"
)

// AQL data modification keywords. Statements containing any of these
// as a standalone token are rejected by read-aql.
var writeKeywords = []string{"INSERT", "UPDATE", "REPLACE", "REMOVE", "UPSERT"}

// ReadAQLHandler returns the tool handler function for read-aql
func ReadAQLHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleReadAQL(ctx, request, deps)
	}
}

func handleReadAQL(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.DB == nil {
		errMessage := "Database service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args ReadAQLInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if strings.TrimSpace(args.Query) == "" {
		errMessage := "query parameter is required"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	if keyword, found := findWriteKeyword(args.Query); found {
		errMessage := fmt.Sprintf("read-aql cannot run data modification queries (found %s). Statements must be read-only.", keyword)
		slog.Error("rejected write statement", "keyword", keyword)
		return mcp.NewToolResultError(errMessage), nil
	}

	batchSize := args.BatchSize
	if batchSize == 0 {
		batchSize = deps.DefaultBatchSize
	}

	slog.Info("executing read-aql query", "batchSize", batchSize)

	first, handle, err := deps.DB.Execute(ctx, args.Query, batchSize)
	if err != nil {
		slog.Error("error executing aql query", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	all, err := aql.NewCursor(deps.DB, first, handle, batchSize).All(ctx)
	if err != nil {
		slog.Error("error draining query cursor", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	response, err := tools.ResultSetToJSON(all)
	if err != nil {
		slog.Error("error formatting query results", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(response), nil
}

// findWriteKeyword scans the statement for AQL data modification
// keywords. AQL keywords are case-insensitive, so the scan is too.
func findWriteKeyword(query string) (string, bool) {
	for _, token := range strings.FieldsFunc(query, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '(' || r == ')'
	}) {
		upper := strings.ToUpper(token)
		for _, keyword := range writeKeywords {
			if upper == keyword {
				return keyword, true
			}
		}
	}
	return "", false
}
