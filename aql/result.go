package aql

import (
	"encoding/json"
	"errors"
)

// ErrNotFound is returned by ResultSet.Uniq when the result does not
// hold exactly one document.
var ErrNotFound = errors.New("aql: query did not return exactly one document")

// ResultSet is the ordered raw documents of one execution batch, or of
// a fully drained query.
type ResultSet []json.RawMessage

// First returns the first document of the result, if any.
func (rs ResultSet) First() (json.RawMessage, bool) {
	if len(rs) == 0 {
		return nil, false
	}
	return rs[0], true
}

// Uniq returns the only document of the result and ErrNotFound when the
// result is empty or holds more than one document.
func (rs ResultSet) Uniq() (json.RawMessage, error) {
	if len(rs) != 1 {
		return nil, ErrNotFound
	}
	return rs[0], nil
}

// Documents projects the raw documents into typed values. Documents
// that do not decode into T are silently dropped, so a traversal that
// returns mixed vertex types can be projected once per type.
func Documents[T any](rs ResultSet) []T {
	out := make([]T, 0, len(rs))
	for _, raw := range rs {
		var doc T
		if err := json.Unmarshal(raw, &doc); err != nil {
			continue
		}
		out = append(out, doc)
	}
	return out
}
