package aql

import "strings"

const (
	andConnector = "&&"
	orConnector  = "||"
)

type filterEntry struct {
	comparison Comparison
	// connector joining this entry to the previous one; empty on the
	// first entry.
	connector string
}

// Filter is an ordered chain of comparisons joined by AND/OR connectors.
// Rendering concatenates the predicates strictly left to right with no
// added parentheses, matching AQL's own evaluation order; grouping is
// the caller's responsibility.
//
// The zero value is an empty filter: it renders to the empty string and
// queries omit the clause entirely.
type Filter struct {
	entries []filterEntry
}

// NewFilter starts a filter with a single comparison.
func NewFilter(comparison Comparison) Filter {
	return Filter{entries: []filterEntry{{comparison: comparison}}}
}

// And returns a new Filter with the comparison appended behind an `&&`
// connector. The receiver is not modified.
func (f Filter) And(comparison Comparison) Filter {
	return f.push(andConnector, comparison)
}

// Or returns a new Filter with the comparison appended behind a `||`
// connector. The receiver is not modified.
func (f Filter) Or(comparison Comparison) Filter {
	return f.push(orConnector, comparison)
}

func (f Filter) push(connector string, comparison Comparison) Filter {
	if len(f.entries) == 0 {
		// An empty chain has no previous predicate to connect to.
		return NewFilter(comparison)
	}
	entries := make([]filterEntry, len(f.entries), len(f.entries)+1)
	copy(entries, f.entries)
	return Filter{entries: append(entries, filterEntry{comparison: comparison, connector: connector})}
}

func (f Filter) isEmpty() bool {
	return len(f.entries) == 0
}

// AQLString renders the chain bound to the given iteration variable.
//
// Example:
//
//	Field("age").GreaterThan(10).And(Field("age").LesserOrEqual(18)).AQLString("i")
//	// Renders: i.age > 10 && i.age <= 18
func (f Filter) AQLString(bindVar string) string {
	var b strings.Builder
	for i, entry := range f.entries {
		if i > 0 {
			b.WriteString(" " + entry.connector + " ")
		}
		b.WriteString(entry.comparison.AQLString(bindVar))
	}
	return b.String()
}
