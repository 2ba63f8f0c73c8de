// Package saved turns YAML query definitions into MCP tools. Each
// definition is compiled through the query builder at call time, with
// filter values optionally taken from tool parameters.
package saved

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arangoql/arangoql/internal/tools"
	"github.com/arangoql/arangoql/internal/tools/find"
)

// NewSavedQueryHandler creates the handler function for one saved query
func NewSavedQueryHandler(config *QueryConfig, deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSavedQuery(ctx, request, config, deps)
	}
}

func handleSavedQuery(ctx context.Context, request mcp.CallToolRequest, config *QueryConfig, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.DB == nil {
		errMessage := "Database service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args map[string]any
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "tool", config.Name, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	input, err := resolveInput(config, args)
	if err != nil {
		slog.Error("error resolving saved query input", "tool", config.Name, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	query, err := find.BuildQuery(input)
	if err != nil {
		slog.Error("invalid saved query definition", "tool", config.Name, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	slog.Info("executing saved query", "tool", config.Name, "collection", config.Collection)
	slog.Debug("compiled saved query statement", "tool", config.Name, "query", query.AQLString())

	cursor, err := query.CallInBatches(ctx, deps.DB, deps.DefaultBatchSize)
	if err != nil {
		slog.Error("error executing saved query", "tool", config.Name, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	all, err := cursor.All(ctx)
	if err != nil {
		slog.Error("error draining saved query cursor", "tool", config.Name, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	response, err := tools.ResultSetToJSON(all)
	if err != nil {
		slog.Error("error formatting saved query results", "tool", config.Name, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(response), nil
}

// resolveInput materializes the structured query input: constant filter
// values are normalized, parameter references are replaced by the bound
// argument (or the parameter default).
func resolveInput(config *QueryConfig, args map[string]any) (find.FindDocumentsInput, error) {
	input := find.FindDocumentsInput{
		Collection: config.Collection,
		Limit:      config.Limit,
		Distinct:   config.Distinct,
	}

	for _, filter := range config.Filters {
		value := normalizeValue(filter.Value)
		if filter.Param != "" {
			resolved, err := resolveParameter(config, filter.Param, args)
			if err != nil {
				return find.FindDocumentsInput{}, err
			}
			value = resolved
		}
		input.Filters = append(input.Filters, find.Predicate{
			Field:      filter.Field,
			Quantifier: filter.Quantifier,
			Operator:   filter.Operator,
			Value:      value,
			Connector:  filter.Connector,
		})
	}

	for _, key := range config.Sort {
		input.Sort = append(input.Sort, find.SortKey{Field: key.Field, Direction: key.Direction})
	}

	return input, nil
}

func resolveParameter(config *QueryConfig, name string, args map[string]any) (any, error) {
	if value, ok := args[name]; ok && value != nil {
		return normalizeValue(value), nil
	}
	for _, param := range config.Parameters {
		if param.Name != name {
			continue
		}
		if param.Default != nil {
			return normalizeValue(param.Default), nil
		}
		if param.Required {
			return nil, fmt.Errorf("parameter %q is required", name)
		}
		return nil, nil
	}
	return nil, fmt.Errorf("parameter %q is not declared", name)
}

// normalizeValue maps YAML scalar types onto the JSON types the query
// compiler expects: every number becomes float64, arrays are normalized
// element-wise.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	case []any:
		normalized := make([]any, len(v))
		for i, element := range v {
			normalized[i] = normalizeValue(element)
		}
		return normalized
	default:
		return value
	}
}
