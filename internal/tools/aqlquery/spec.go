package aqlquery

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type ReadAQLInput struct {
	Query     string `json:"query" jsonschema:"default=FOR doc in collection return doc,description=The AQL query to execute"`
	BatchSize int    `json:"batchSize,omitempty" jsonschema:"default=0,description=Cursor batch size. 0 uses the server default."`
}

func ReadAQLSpec() mcp.Tool {
	return mcp.NewTool("read-aql",
		mcp.WithDescription("read-aql can run only read-only AQL statements. Data modification operations (INSERT, UPDATE, REPLACE, REMOVE, UPSERT) are rejected."),
		mcp.WithInputSchema[ReadAQLInput](),
		mcp.WithTitleAnnotation("Read AQL"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
