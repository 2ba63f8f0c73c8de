package aql

import "context"

//go:generate mockgen -destination=mocks/mock_executor.go -package=aql_mocks -typed github.com/arangoql/arangoql/aql Executor

// Executor runs rendered AQL text against a database and pages through
// the results. The continuation handle is opaque to this package: an
// empty handle means the batch returned was the last one.
//
// Implementations live outside the builder; see the arango package for
// the HTTP cursor API client.
type Executor interface {
	// Execute runs a statement and returns the first batch together
	// with the continuation handle. A batchSize of zero or less leaves
	// the page size to the server.
	Execute(ctx context.Context, statement string, batchSize int) (ResultSet, string, error)

	// FetchNext exchanges a continuation handle for the next batch and
	// the handle that follows it.
	FetchNext(ctx context.Context, handle string, batchSize int) (ResultSet, string, error)
}
