package tools

import (
	"encoding/json"
	"fmt"

	"github.com/arangoql/arangoql/aql"
)

// ResultSetToJSON renders a result set as an indented JSON array for
// the tool response. An empty or nil result set renders as [].
func ResultSetToJSON(rs aql.ResultSet) (string, error) {
	if rs == nil {
		rs = aql.ResultSet{}
	}
	out, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding result set: %w", err)
	}
	return string(out), nil
}
