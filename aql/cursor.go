package aql

import "context"

// Cursor pages through the results of one executed statement. It holds
// the current batch and the continuation handle the executor returned
// with it; each NextBatch call trades the handle for the next batch
// until the executor reports no continuation.
//
// A cursor is forward-only and not restartable. Batch fetches must be
// issued sequentially: each fetch consumes and replaces the handle, so
// concurrent NextBatch calls on one cursor are a caller error.
type Cursor struct {
	executor  Executor
	batchSize int
	current   ResultSet
	handle    string
	err       error
}

// NewCursor wraps the first batch of an execution together with its
// continuation handle. An empty handle produces an already-exhausted
// cursor whose Result still holds the first batch.
func NewCursor(executor Executor, first ResultSet, handle string, batchSize int) *Cursor {
	return &Cursor{
		executor:  executor,
		batchSize: batchSize,
		current:   first,
		handle:    handle,
	}
}

// Result returns the current batch: the initial one until NextBatch is
// called, then the batch the last successful NextBatch returned.
func (c *Cursor) Result() ResultSet {
	return c.current
}

// HasMore reports whether the executor announced further batches.
func (c *Cursor) HasMore() bool {
	return c.handle != "" && c.err == nil
}

// NextBatch fetches the next batch and makes it current. It returns
// false once the cursor is exhausted, after which further calls are
// no-ops. A fetch error is terminal: the cursor transitions to
// exhausted and the error is available through Err.
func (c *Cursor) NextBatch(ctx context.Context) (ResultSet, bool) {
	if !c.HasMore() {
		return nil, false
	}
	batch, handle, err := c.executor.FetchNext(ctx, c.handle, c.batchSize)
	if err != nil {
		c.err = err
		c.handle = ""
		return nil, false
	}
	c.current = batch
	c.handle = handle
	return batch, true
}

// Err returns the error that terminated iteration, if any. A nil error
// after NextBatch returned false means the executor reported the normal
// end of the result.
func (c *Cursor) Err() error {
	return c.err
}

// All eagerly drains the cursor: the current batch plus every remaining
// one, flattened in batch order. It does not reset the cursor, so
// batches already consumed through NextBatch are not refetched. After
// All the cursor is exhausted.
func (c *Cursor) All(ctx context.Context) (ResultSet, error) {
	out := make(ResultSet, 0, len(c.current))
	out = append(out, c.current...)
	for {
		batch, ok := c.NextBatch(ctx)
		if !ok {
			break
		}
		out = append(out, batch...)
	}
	if c.err != nil {
		return nil, c.err
	}
	return out, nil
}
