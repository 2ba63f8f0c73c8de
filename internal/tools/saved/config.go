package saved

// QueryConfig represents the YAML definition of a saved query tool.
// Each file under the queries config directory becomes one MCP tool
// whose statement is compiled through the query builder, so saved
// queries are always read-only.
type QueryConfig struct {
	// Name is the unique tool identifier (e.g., "list-adult-users")
	Name string `yaml:"name"`

	// Description provides the operational description of the tool
	Description string `yaml:"description"`

	// Intent provides semantic understanding for agents - WHEN to use this tool
	Intent string `yaml:"intent,omitempty"`

	// Collection is the collection the query iterates
	Collection string `yaml:"collection"`

	// Filters are the filter predicates, in evaluation order
	Filters []FilterConfig `yaml:"filters,omitempty"`

	// Sort keys, applied in order
	Sort []SortConfig `yaml:"sort,omitempty"`

	// Limit caps the number of returned documents (0 = no limit)
	Limit uint `yaml:"limit,omitempty"`

	// Distinct deduplicates returned documents
	Distinct bool `yaml:"distinct,omitempty"`

	// Parameters defines typed input parameters referenced by filters
	Parameters []ParameterConfig `yaml:"parameters,omitempty"`

	// Category is derived from the folder structure (e.g., "reports")
	// This is an internal field, not from YAML
	Category string `yaml:"-"`
}

// FilterConfig describes one filter predicate. Exactly one of Value
// and Param should be set: Value inlines a constant, Param takes the
// right-hand side from the named tool parameter at call time.
type FilterConfig struct {
	// Field is the document field path the condition applies to
	Field string `yaml:"field"`

	// Quantifier applies the condition to an array field: all, any or none
	Quantifier string `yaml:"quantifier,omitempty"`

	// Operator selects the comparison (eq, neq, gt, gte, lt, lte, in,
	// not_in, like, not_like, matches, not_matches, is_null, not_null,
	// is_true, is_false)
	Operator string `yaml:"operator"`

	// Value is a constant right-hand side
	Value any `yaml:"value,omitempty"`

	// Param names the tool parameter providing the right-hand side
	Param string `yaml:"param,omitempty"`

	// Connector joins this predicate to the previous one: and (default) or or
	Connector string `yaml:"connector,omitempty"`
}

// SortConfig is one sort key.
type SortConfig struct {
	Field     string `yaml:"field"`
	Direction string `yaml:"direction,omitempty"`
}

// ParameterConfig defines a typed input parameter
type ParameterConfig struct {
	// Name is the parameter identifier
	Name string `yaml:"name"`

	// Type is the JSON Schema type (string, integer, number, boolean, array)
	Type string `yaml:"type"`

	// Description explains the parameter's purpose
	Description string `yaml:"description,omitempty"`

	// Default value (type depends on Type field)
	Default any `yaml:"default,omitempty"`

	// Required indicates if this parameter must be provided
	Required bool `yaml:"required,omitempty"`
}
