package find

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/arangoql/arangoql/aql"
	aql_mocks "github.com/arangoql/arangoql/aql/mocks"
	"github.com/arangoql/arangoql/internal/tools"
)

func TestBuildFindQuery(t *testing.T) {
	tests := []struct {
		name  string
		input FindDocumentsInput
		want  string
	}{
		{
			name:  "bare collection scan",
			input: FindDocumentsInput{Collection: "Users"},
			want:  "FOR a in Users return a",
		},
		{
			name: "numeric and string predicates",
			input: FindDocumentsInput{
				Collection: "Users",
				Filters: []Predicate{
					{Field: "age", Operator: "gte", Value: float64(18)},
					{Field: "username", Operator: "in", Value: []any{"felix", "gerard"}},
				},
			},
			want: `FOR a in Users FILTER a.age >= 18 && a.username IN ["felix", "gerard"] return a`,
		},
		{
			name: "or connector",
			input: FindDocumentsInput{
				Collection: "Users",
				Filters: []Predicate{
					{Field: "role", Operator: "eq", Value: "admin"},
					{Field: "role", Operator: "eq", Value: "owner", Connector: "or"},
				},
			},
			want: `FOR a in Users FILTER a.role == "admin" || a.role == "owner" return a`,
		},
		{
			name: "array quantifier",
			input: FindDocumentsInput{
				Collection: "Users",
				Filters: []Predicate{
					{Field: "emails", Quantifier: "none", Operator: "is_null"},
				},
			},
			want: "FOR a in Users FILTER a.emails NONE == null return a",
		},
		{
			name: "null and boolean checks",
			input: FindDocumentsInput{
				Collection: "Users",
				Filters: []Predicate{
					{Field: "deletedAt", Operator: "is_null"},
					{Field: "active", Operator: "is_true"},
				},
			},
			want: "FOR a in Users FILTER a.deletedAt == null && a.active == true return a",
		},
		{
			name: "like pattern",
			input: FindDocumentsInput{
				Collection: "Users",
				Filters: []Predicate{
					{Field: "last_name", Operator: "like", Value: "de %"},
				},
			},
			want: `FOR a in Users FILTER a.last_name LIKE "de %" return a`,
		},
		{
			name: "sort limit and distinct",
			input: FindDocumentsInput{
				Collection: "Users",
				Sort:       []SortKey{{Field: "age", Direction: "DESC"}, {Field: "name"}},
				Limit:      10,
				Distinct:   true,
			},
			want: "FOR a in Users SORT a.age DESC, a.name ASC LIMIT 10 return DISTINCT a",
		},
		{
			name: "offset pagination",
			input: FindDocumentsInput{
				Collection: "Users",
				Limit:      5,
				Offset:     20,
			},
			want: "FOR a in Users LIMIT 20, 5 return a",
		},
		{
			name: "outbound traversal from matches",
			input: FindDocumentsInput{
				Collection: "Users",
				Filters: []Predicate{
					{Field: "age", Operator: "gt", Value: float64(10)},
				},
				Traverse: &Traversal{Direction: "outbound", MinDepth: 1, MaxDepth: 2, Target: "MemberOf"},
			},
			want: "FOR b in Users FILTER b.age > 10 FOR a in 1..2 OUTBOUND b MemberOf return a",
		},
		{
			name: "named graph traversal",
			input: FindDocumentsInput{
				Collection: "Users",
				Traverse:   &Traversal{Direction: "any", MinDepth: 1, MaxDepth: 1, Target: "SomeGraph", NamedGraph: true},
			},
			want: "FOR b in Users FOR a in 1..1 ANY b GRAPH SomeGraph return a",
		},
		{
			name: "mixed value in array renders bare",
			input: FindDocumentsInput{
				Collection: "Users",
				Filters: []Predicate{
					{Field: "age", Operator: "in", Value: []any{float64(1), float64(11), float64(18)}},
				},
			},
			want: "FOR a in Users FILTER a.age IN [1, 11, 18] return a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := BuildQuery(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query.AQLString())
		})
	}
}

func TestBuildFindQuery_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input FindDocumentsInput
	}{
		{"missing collection", FindDocumentsInput{}},
		{
			"offset without limit",
			FindDocumentsInput{Collection: "Users", Offset: 10},
		},
		{
			"unknown operator",
			FindDocumentsInput{Collection: "Users", Filters: []Predicate{{Field: "age", Operator: "between", Value: float64(1)}}},
		},
		{
			"unknown quantifier",
			FindDocumentsInput{Collection: "Users", Filters: []Predicate{{Field: "emails", Quantifier: "some", Operator: "is_null"}}},
		},
		{
			"unknown connector",
			FindDocumentsInput{Collection: "Users", Filters: []Predicate{
				{Field: "age", Operator: "is_null"},
				{Field: "age", Operator: "not_null", Connector: "xor"},
			}},
		},
		{
			"ordering operator with string value",
			FindDocumentsInput{Collection: "Users", Filters: []Predicate{{Field: "age", Operator: "gt", Value: "18"}}},
		},
		{
			"in operator with scalar value",
			FindDocumentsInput{Collection: "Users", Filters: []Predicate{{Field: "age", Operator: "in", Value: float64(18)}}},
		},
		{
			"missing field",
			FindDocumentsInput{Collection: "Users", Filters: []Predicate{{Operator: "is_null"}}},
		},
		{
			"missing sort field",
			FindDocumentsInput{Collection: "Users", Sort: []SortKey{{Direction: "ASC"}}},
		},
		{
			"bad sort direction",
			FindDocumentsInput{Collection: "Users", Sort: []SortKey{{Field: "age", Direction: "UPWARD"}}},
		},
		{
			"traversal without target",
			FindDocumentsInput{Collection: "Users", Traverse: &Traversal{Direction: "outbound", MinDepth: 1, MaxDepth: 1}},
		},
		{
			"traversal with unknown direction",
			FindDocumentsInput{Collection: "Users", Traverse: &Traversal{Direction: "sideways", MinDepth: 1, MaxDepth: 1, Target: "MemberOf"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildQuery(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestFindDocumentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)

	request := func(args map[string]any) mcp.CallToolRequest {
		return mcp.CallToolRequest{
			Params: mcp.CallToolParams{Arguments: args},
		}
	}

	t.Run("compiles and executes the query", func(t *testing.T) {
		executor := aql_mocks.NewMockExecutor(ctrl)
		executor.EXPECT().
			Execute(gomock.Any(), `FOR a in Users FILTER a.age >= 18 LIMIT 10 return a`, 100).
			Return(aql.ResultSet{json.RawMessage(`{"name": "felix"}`)}, "", nil)

		deps := &tools.ToolDependencies{DB: executor, DefaultBatchSize: 100}
		handler := FindDocumentsHandler(deps)

		result, err := handler(context.Background(), request(map[string]any{
			"collection": "Users",
			"filters": []any{
				map[string]any{"field": "age", "operator": "gte", "value": 18},
			},
			"limit": 10,
		}))
		require.NoError(t, err)
		require.False(t, result.IsError)

		textContent, ok := result.Content[0].(mcp.TextContent)
		require.True(t, ok)
		assert.Contains(t, textContent.Text, "felix")
	})

	t.Run("invalid input becomes a tool error", func(t *testing.T) {
		deps := &tools.ToolDependencies{DB: aql_mocks.NewMockExecutor(ctrl)}
		handler := FindDocumentsHandler(deps)

		result, err := handler(context.Background(), request(map[string]any{}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})

	t.Run("nil database service", func(t *testing.T) {
		handler := FindDocumentsHandler(&tools.ToolDependencies{})

		result, err := handler(context.Background(), request(map[string]any{"collection": "Users"}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})

	t.Run("database error becomes a tool error", func(t *testing.T) {
		executor := aql_mocks.NewMockExecutor(ctrl)
		executor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, "", assert.AnError)

		deps := &tools.ToolDependencies{DB: executor, DefaultBatchSize: 10}
		handler := FindDocumentsHandler(deps)

		result, err := handler(context.Background(), request(map[string]any{"collection": "Users"}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}
