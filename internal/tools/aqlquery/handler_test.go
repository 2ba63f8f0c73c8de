package aqlquery_test

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
	"github.com/arangoql/arangoql/internal/tools/aqlquery"
)

func callRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return textContent.Text
}

func TestReadAQLHandler(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("executes query and drains all batches", func(t *testing.T) {
		executor := aql_mocks.NewMockExecutor(ctrl)
		executor.EXPECT().
			Execute(gomock.Any(), "FOR a in Dish return a", 2).
			Return(aql.ResultSet{json.RawMessage(`{"name": "Pizza"}`)}, "cursor-1", nil)
		executor.EXPECT().
			FetchNext(gomock.Any(), "cursor-1", 2).
			Return(aql.ResultSet{json.RawMessage(`{"name": "Wine"}`)}, "", nil)

		deps := &tools.ToolDependencies{DB: executor, DefaultBatchSize: 2}
		handler := aqlquery.ReadAQLHandler(deps)

		result, err := handler(context.Background(), callRequest(map[string]any{
			"query": "FOR a in Dish return a",
		}))
		require.NoError(t, err)
		require.False(t, result.IsError)

		var docs []map[string]any
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &docs))
		assert.Len(t, docs, 2)
		assert.Equal(t, "Pizza", docs[0]["name"])
	})

	t.Run("explicit batch size overrides the default", func(t *testing.T) {
		executor := aql_mocks.NewMockExecutor(ctrl)
		executor.EXPECT().
			Execute(gomock.Any(), "FOR a in Dish return a", 7).
			Return(aql.ResultSet{}, "", nil)

		deps := &tools.ToolDependencies{DB: executor, DefaultBatchSize: 2}
		handler := aqlquery.ReadAQLHandler(deps)

		result, err := handler(context.Background(), callRequest(map[string]any{
			"query":     "FOR a in Dish return a",
			"batchSize": 7,
		}))
		require.NoError(t, err)
		assert.False(t, result.IsError)
	})

	t.Run("rejects write statements", func(t *testing.T) {
		executor := aql_mocks.NewMockExecutor(ctrl)
		deps := &tools.ToolDependencies{DB: executor}
		handler := aqlquery.ReadAQLHandler(deps)

		result, err := handler(context.Background(), callRequest(map[string]any{
			"query": `FOR a in Dish REMOVE a in Dish`,
		}))
		require.NoError(t, err)
		require.True(t, result.IsError)
		assert.Contains(t, resultText(t, result), "REMOVE")
	})

	t.Run("write keyword in an identifier is not a write", func(t *testing.T) {
		executor := aql_mocks.NewMockExecutor(ctrl)
		executor.EXPECT().
			Execute(gomock.Any(), "FOR a in Updates return a", 0).
			Return(aql.ResultSet{}, "", nil)

		deps := &tools.ToolDependencies{DB: executor}
		handler := aqlquery.ReadAQLHandler(deps)

		result, err := handler(context.Background(), callRequest(map[string]any{
			"query": "FOR a in Updates return a",
		}))
		require.NoError(t, err)
		assert.False(t, result.IsError)
	})

	t.Run("empty query", func(t *testing.T) {
		deps := &tools.ToolDependencies{DB: aql_mocks.NewMockExecutor(ctrl)}
		handler := aqlquery.ReadAQLHandler(deps)

		result, err := handler(context.Background(), callRequest(map[string]any{}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})

	t.Run("nil database service", func(t *testing.T) {
		handler := aqlquery.ReadAQLHandler(&tools.ToolDependencies{})

		result, err := handler(context.Background(), callRequest(map[string]any{
			"query": "FOR a in Dish return a",
		}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})

	t.Run("database error becomes a tool error", func(t *testing.T) {
		executor := aql_mocks.NewMockExecutor(ctrl)
		executor.EXPECT().
			Execute(gomock.Any(), gomock.Any(), 0).
			Return(nil, "", assert.AnError)

		deps := &tools.ToolDependencies{DB: executor}
		handler := aqlquery.ReadAQLHandler(deps)

		result, err := handler(context.Background(), callRequest(map[string]any{
			"query": "FOR a in Dish return a",
		}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}
