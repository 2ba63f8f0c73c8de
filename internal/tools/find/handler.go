// Package find implements the find-documents MCP tool: a structured,
// always read-only alternative to raw AQL. The input is compiled
// through the query builder, so the resulting statement cannot contain
// data modification operations.
package find

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arangoql/arangoql/aql"
	"github.com/arangoql/arangoql/internal/tools"
)

// FindDocumentsHandler returns the tool handler function for find-documents
func FindDocumentsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleFindDocuments(ctx, request, deps)
	}
}

func handleFindDocuments(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.DB == nil {
		errMessage := "Database service is not initialized"
		slog.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	var args FindDocumentsInput
	if err := request.BindArguments(&args); err != nil {
		slog.Error("error binding arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	query, err := BuildQuery(args)
	if err != nil {
		slog.Error("invalid find-documents input", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	batchSize := args.BatchSize
	if batchSize == 0 {
		batchSize = deps.DefaultBatchSize
	}

	slog.Info("executing find-documents query",
		"collection", args.Collection,
		"filters", len(args.Filters),
		"batchSize", batchSize)
	slog.Debug("compiled find-documents statement", "query", query.AQLString())

	cursor, err := query.CallInBatches(ctx, deps.DB, batchSize)
	if err != nil {
		slog.Error("error executing find-documents query", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	all, err := cursor.All(ctx)
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

// BuildQuery compiles the structured input into a query value.
func BuildQuery(args FindDocumentsInput) (aql.Query, error) {
	if args.Collection == "" {
		return aql.Query{}, fmt.Errorf("collection parameter is required")
	}

	query := aql.New(args.Collection)

	if len(args.Filters) > 0 {
		filter, err := buildFilter(args.Filters)
		if err != nil {
			return aql.Query{}, err
		}
		query = query.Filter(filter)
	}

	for _, key := range args.Sort {
		direction, err := sortDirection(key.Direction)
		if err != nil {
			return aql.Query{}, err
		}
		if key.Field == "" {
			return aql.Query{}, fmt.Errorf("sort key field is required")
		}
		query = query.Sort(key.Field, direction)
	}

	switch {
	case args.Offset > 0 && args.Limit == 0:
		return aql.Query{}, fmt.Errorf("offset requires a limit")
	case args.Offset > 0:
		query = query.LimitWithOffset(args.Offset, args.Limit)
	case args.Limit > 0:
		query = query.Limit(args.Limit)
	}

	if args.Distinct {
		query = query.Distinct()
	}

	if args.Traverse != nil {
		traverse := args.Traverse
		if traverse.Target == "" {
			return aql.Query{}, fmt.Errorf("traverse.target is required")
		}
		child := aql.New(traverse.Target)
		switch traverse.Direction {
		case "outbound":
			query = query.JoinOutbound(traverse.MinDepth, traverse.MaxDepth, traverse.NamedGraph, child)
		case "inbound":
			query = query.JoinInbound(traverse.MinDepth, traverse.MaxDepth, traverse.NamedGraph, child)
		case "any":
			query = query.JoinAny(traverse.MinDepth, traverse.MaxDepth, traverse.NamedGraph, child)
		default:
			return aql.Query{}, fmt.Errorf("unknown traversal direction %q", traverse.Direction)
		}
	}

	return query, nil
}

func sortDirection(raw string) (aql.SortDirection, error) {
	switch raw {
	case "", "ASC":
		return aql.SortAsc, nil
	case "DESC":
		return aql.SortDesc, nil
	default:
		return "", fmt.Errorf("unknown sort direction %q", raw)
	}
}

func buildFilter(predicates []Predicate) (aql.Filter, error) {
	var filter aql.Filter
	for i, predicate := range predicates {
		comparison, err := buildComparison(predicate)
		if err != nil {
			return aql.Filter{}, fmt.Errorf("filters[%d]: %w", i, err)
		}

		if i == 0 {
			filter = aql.NewFilter(comparison)
			continue
		}
		switch predicate.Connector {
		case "", "and":
			filter = filter.And(comparison)
		case "or":
			filter = filter.Or(comparison)
		default:
			return aql.Filter{}, fmt.Errorf("filters[%d]: unknown connector %q", i, predicate.Connector)
		}
	}
	return filter, nil
}

func buildComparison(predicate Predicate) (aql.Comparison, error) {
	if predicate.Field == "" {
		return aql.Comparison{}, fmt.Errorf("field is required")
	}

	var builder aql.ComparisonBuilder
	switch predicate.Quantifier {
	case "":
		builder = aql.Field(predicate.Field)
	case "all":
		builder = aql.All(predicate.Field)
	case "any":
		builder = aql.Any(predicate.Field)
	case "none":
		builder = aql.None(predicate.Field)
	default:
		return aql.Comparison{}, fmt.Errorf("unknown quantifier %q", predicate.Quantifier)
	}

	switch predicate.Operator {
	case "eq":
		return equality(builder, predicate.Value, false)
	case "neq":
		return equality(builder, predicate.Value, true)
	case "gt", "gte", "lt", "lte":
		number, ok := predicate.Value.(float64)
		if !ok {
			return aql.Comparison{}, fmt.Errorf("operator %s requires a numeric value", predicate.Operator)
		}
		switch predicate.Operator {
		case "gt":
			return builder.GreaterThan(number), nil
		case "gte":
			return builder.GreaterOrEqual(number), nil
		case "lt":
			return builder.LesserThan(number), nil
		default:
			return builder.LesserOrEqual(number), nil
		}
	case "in", "not_in":
		values, ok := predicate.Value.([]any)
		if !ok {
			return aql.Comparison{}, fmt.Errorf("operator %s requires an array value", predicate.Operator)
		}
		if strValues, allStrings := stringValues(values); allStrings {
			if predicate.Operator == "in" {
				return builder.InStrArray(strValues...), nil
			}
			return builder.NotInStrArray(strValues...), nil
		}
		if predicate.Operator == "in" {
			return builder.InArray(values...), nil
		}
		return builder.NotInArray(values...), nil
	case "like", "not_like", "matches", "not_matches":
		pattern, ok := predicate.Value.(string)
		if !ok {
			return aql.Comparison{}, fmt.Errorf("operator %s requires a string value", predicate.Operator)
		}
		switch predicate.Operator {
		case "like":
			return builder.Like(pattern), nil
		case "not_like":
			return builder.NotLike(pattern), nil
		case "matches":
			return builder.Matches(pattern), nil
		default:
			return builder.DoesNotMatch(pattern), nil
		}
	case "is_null":
		return builder.EqNull(), nil
	case "not_null":
		return builder.NotNull(), nil
	case "is_true":
		return builder.EqTrue(), nil
	case "is_false":
		return builder.EqFalse(), nil
	default:
		return aql.Comparison{}, fmt.Errorf("unknown operator %q", predicate.Operator)
	}
}

// equality picks the rendering by the JSON type of the value: strings
// are quoted, numbers and booleans render bare, null becomes a null
// check.
func equality(builder aql.ComparisonBuilder, value any, negated bool) (aql.Comparison, error) {
	switch v := value.(type) {
	case nil:
		if negated {
			return builder.NotNull(), nil
		}
		return builder.EqNull(), nil
	case string:
		if negated {
			return builder.DifferentThanStr(v), nil
		}
		return builder.EqualsStr(v), nil
	case float64, bool:
		if negated {
			return builder.DifferentThan(v), nil
		}
		return builder.Equals(v), nil
	default:
		return aql.Comparison{}, fmt.Errorf("unsupported value type %T for equality", value)
	}
}

func stringValues(values []any) ([]string, bool) {
	strValues := make([]string, 0, len(values))
	for _, value := range values {
		str, ok := value.(string)
		if !ok {
			return nil, false
		}
		strValues = append(strValues, str)
	}
	return strValues, len(strValues) > 0
}
