package find

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Predicate is one FILTER condition on the iterated document.
type Predicate struct {
	// Field is the document field path the condition applies to (e.g. "name", "address.city").
	Field string `json:"field" jsonschema:"description=Document field path the condition applies to (e.g. name, address.city)"`

	// Quantifier applies the condition to an array field: "all", "any" or "none".
	Quantifier string `json:"quantifier,omitempty" jsonschema:"description=Array quantifier: all, any or none. Leave empty for scalar fields.,enum=,enum=all,enum=any,enum=none"`

	// Operator selects the comparison.
	Operator string `json:"operator" jsonschema:"description=Comparison operator,enum=eq,enum=neq,enum=gt,enum=gte,enum=lt,enum=lte,enum=in,enum=not_in,enum=like,enum=not_like,enum=matches,enum=not_matches,enum=is_null,enum=not_null,enum=is_true,enum=is_false"`

	// Value is the right-hand side. Omitted for is_null, not_null, is_true and is_false.
	Value any `json:"value,omitempty" jsonschema:"description=Right-hand value. A string or number for scalar operators, an array for in/not_in, omitted for null/boolean checks."`

	// Connector joins this predicate to the previous one: "and" (default) or "or".
	Connector string `json:"connector,omitempty" jsonschema:"default=and,description=How this predicate attaches to the previous one,enum=and,enum=or"`
}

// SortKey is one SORT key.
type SortKey struct {
	Field     string `json:"field" jsonschema:"description=Field to sort by"`
	Direction string `json:"direction,omitempty" jsonschema:"default=ASC,description=Sort direction,enum=ASC,enum=DESC"`
}

// Traversal walks the graph from each matched document and returns the
// reached documents instead of the matches themselves.
type Traversal struct {
	// Direction of the edge walk.
	Direction string `json:"direction" jsonschema:"description=Edge direction to walk,enum=outbound,enum=inbound,enum=any"`

	// MinDepth and MaxDepth bound the walk.
	MinDepth uint `json:"minDepth" jsonschema:"description=Minimum traversal depth"`
	MaxDepth uint `json:"maxDepth" jsonschema:"description=Maximum traversal depth"`

	// Target is the edge collection to walk, or the graph name when
	// namedGraph is true.
	Target string `json:"target" jsonschema:"description=Edge collection to walk, or graph name when namedGraph is set"`

	// NamedGraph interprets target as a pre-declared named graph.
	NamedGraph bool `json:"namedGraph,omitempty" jsonschema:"description=Interpret target as a named graph"`
}

// FindDocumentsInput defines the input parameters for the find-documents tool
type FindDocumentsInput struct {
	// Collection is the collection to iterate (required).
	Collection string `json:"collection" jsonschema:"description=Collection to query (required)"`

	// Filters are applied in order, joined left to right by each predicate's connector.
	Filters []Predicate `json:"filters,omitempty" jsonschema:"description=Filter predicates, evaluated left to right"`

	// Sort keys merge into a single SORT clause.
	Sort []SortKey `json:"sort,omitempty" jsonschema:"description=Sort keys, applied in order"`

	// Limit restricts the number of returned documents. 0 means no limit.
	Limit uint `json:"limit,omitempty" jsonschema:"description=Maximum number of documents to return. 0 means no limit."`

	// Offset skips documents before returning. Requires a limit.
	Offset uint `json:"offset,omitempty" jsonschema:"description=Number of documents to skip. Only valid together with limit."`

	// Distinct deduplicates returned documents.
	Distinct bool `json:"distinct,omitempty" jsonschema:"description=Return only distinct documents"`

	// Traverse optionally walks the graph from each matched document.
	Traverse *Traversal `json:"traverse,omitempty" jsonschema:"description=Optional graph traversal from each matched document. The traversed documents are returned instead of the matches."`

	// BatchSize is the cursor batch size. 0 uses the server default.
	BatchSize int `json:"batchSize,omitempty" jsonschema:"default=0,description=Cursor batch size. 0 uses the server default."`
}

// FindDocumentsSpec returns the MCP tool specification for find-documents
func FindDocumentsSpec() mcp.Tool {
	return mcp.NewTool("find-documents",
		mcp.WithDescription(`Finds documents in a collection using a structured query instead of raw AQL.

Predicates are compiled into FILTER clauses, joined left to right with the connector of each predicate ("and" by default). Sort keys become a single SORT clause, limit/offset become a LIMIT clause and distinct deduplicates the returned documents.

**EXAMPLE:**
{
  "collection": "Users",
  "filters": [
    {"field": "age", "operator": "gte", "value": 18},
    {"field": "username", "operator": "in", "value": ["felix", "gerard"], "connector": "and"}
  ],
  "sort": [{"field": "age", "direction": "DESC"}],
  "limit": 10
}

compiles to:
FOR a in Users FILTER a.age >= 18 && a.username IN ["felix", "gerard"] SORT a.age DESC LIMIT 10 return a

**WHEN TO USE THIS TOOL:**
- Retrieving documents by field conditions without writing AQL by hand
- Paginating through a collection with limit/offset
- Safe, read-only data retrieval: the compiled statement can never modify data

For arbitrary statements (aggregations, traversals, subqueries), use read-aql instead.`),
		mcp.WithInputSchema[FindDocumentsInput](),
		mcp.WithTitleAnnotation("Find Documents"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
