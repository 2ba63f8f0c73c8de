package aql

import "context"

// Call renders the query, executes it and drains every batch into one
// ResultSet.
func (q Query) Call(ctx context.Context, executor Executor) (ResultSet, error) {
	cursor, err := q.CallInBatches(ctx, executor, 0)
	if err != nil {
		return nil, err
	}
	return cursor.All(ctx)
}

// CallInBatches renders the query, executes it and returns a cursor
// over the paged results. A batchSize of zero or less leaves the page
// size to the server.
func (q Query) CallInBatches(ctx context.Context, executor Executor, batchSize int) (*Cursor, error) {
	first, handle, err := executor.Execute(ctx, q.AQLString(), batchSize)
	if err != nil {
		return nil, err
	}
	return NewCursor(executor, first, handle, batchSize), nil
}
