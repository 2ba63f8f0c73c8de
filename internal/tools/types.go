package tools

import (
	"github.com/arangoql/arangoql/aql"
)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	// DB executes AQL statements and pages cursor batches.
	DB aql.Executor
	// DefaultBatchSize is used when a tool call does not ask for a
	// specific batch size.
	DefaultBatchSize int
}
