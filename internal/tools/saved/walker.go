package saved

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EmbeddedFS is a package-level variable that can be set with embedded query files
var EmbeddedFS embed.FS

// WalkQueryDirectory walks the query directory and loads all YAML saved
// query definitions. It first attempts to load from the embedded
// filesystem, falling back to the OS filesystem if needed.
func WalkQueryDirectory(queryDir string) ([]*QueryConfig, error) {
	configs, err := walkEmbeddedQueries()
	if err == nil && len(configs) > 0 {
		slog.Info("loaded saved queries from embedded filesystem", "count", len(configs))
		return configs, nil
	}

	// Fall back to OS filesystem (for development/testing)
	return walkOSFilesystem(queryDir)
}

func walkEmbeddedQueries() ([]*QueryConfig, error) {
	var configs []*QueryConfig

	// Probe whether the embedded FS was populated at all.
	if _, err := fs.Stat(EmbeddedFS, "."); err != nil {
		return nil, fmt.Errorf("embedded FS not available")
	}

	err := fs.WalkDir(EmbeddedFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isYAMLFile(d.Name()) {
			return nil
		}

		data, err := EmbeddedFS.ReadFile(path)
		if err != nil {
			slog.Error("failed to read embedded query file", "path", path, "error", err)
			return err
		}

		config, err := parseQueryConfig(data, path)
		if err != nil {
			slog.Error("failed to parse embedded saved query", "path", path, "error", err)
			return err
		}

		configs = append(configs, config)
		slog.Info("loaded saved query from embedded FS", "tool", config.Name, "category", config.Category, "path", path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk embedded queries: %w", err)
	}

	return configs, nil
}

func walkOSFilesystem(queryDir string) ([]*QueryConfig, error) {
	var configs []*QueryConfig

	if _, err := os.Stat(queryDir); os.IsNotExist(err) {
		slog.Warn("query directory does not exist", "dir", queryDir)
		return configs, nil // Return empty slice, not an error
	}

	err := filepath.Walk(queryDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Error("error accessing path", "path", path, "error", err)
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !isYAMLFile(info.Name()) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			slog.Error("failed to read query file", "path", path, "error", err)
			return err
		}

		// Relative path keeps category derivation stable regardless of
		// where the walk started.
		relPath, _ := filepath.Rel(queryDir, path)

		config, err := parseQueryConfig(data, relPath)
		if err != nil {
			slog.Error("failed to parse saved query", "path", path, "error", err)
			return err
		}

		configs = append(configs, config)
		slog.Info("loaded saved query from filesystem", "tool", config.Name, "category", config.Category, "path", path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk query directory: %w", err)
	}

	return configs, nil
}

func isYAMLFile(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

// parseQueryConfig parses and validates a YAML saved query definition
func parseQueryConfig(data []byte, path string) (*QueryConfig, error) {
	var config QueryConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config.Category = deriveCategoryFromPath(path)

	if config.Name == "" {
		return nil, fmt.Errorf("query name is required in file: %s", path)
	}
	if config.Description == "" {
		return nil, fmt.Errorf("query description is required in file: %s", path)
	}
	if config.Collection == "" {
		return nil, fmt.Errorf("query collection is required in file: %s", path)
	}

	if err := validateParameters(config.Parameters); err != nil {
		return nil, fmt.Errorf("invalid parameters in %s: %w", path, err)
	}
	if err := validateFilters(config); err != nil {
		return nil, fmt.Errorf("invalid filters in %s: %w", path, err)
	}

	return &config, nil
}

func validateParameters(params []ParameterConfig) error {
	validTypes := map[string]bool{
		"string": true, "integer": true, "number": true,
		"boolean": true, "array": true,
	}
	names := make(map[string]bool)

	for i, param := range params {
		if param.Name == "" {
			return fmt.Errorf("parameter[%d] name is required", i)
		}
		if names[param.Name] {
			return fmt.Errorf("duplicate parameter name '%s'", param.Name)
		}
		names[param.Name] = true

		if param.Type != "" && !validTypes[param.Type] {
			return fmt.Errorf("parameter '%s' has invalid type '%s'", param.Name, param.Type)
		}
	}

	return nil
}

// validateFilters checks that every filter referencing a parameter
// names one that is declared, and that no filter sets both a constant
// value and a parameter reference.
func validateFilters(config QueryConfig) error {
	declared := make(map[string]bool, len(config.Parameters))
	for _, param := range config.Parameters {
		declared[param.Name] = true
	}

	for i, filter := range config.Filters {
		if filter.Field == "" {
			return fmt.Errorf("filter[%d] field is required", i)
		}
		if filter.Operator == "" {
			return fmt.Errorf("filter[%d] operator is required", i)
		}
		if filter.Param != "" && filter.Value != nil {
			return fmt.Errorf("filter[%d] sets both value and param", i)
		}
		if filter.Param != "" && !declared[filter.Param] {
			return fmt.Errorf("filter[%d] references undeclared parameter '%s'", i, filter.Param)
		}
	}

	return nil
}

// deriveCategoryFromPath extracts the category from the file path
// Example: "queries/config/reports/list-adult-users.yaml" -> "reports"
func deriveCategoryFromPath(path string) string {
	path = filepath.ToSlash(path)
	parts := strings.Split(path, "/")

	// Find "config" in the path and take the next component
	for i, part := range parts {
		if part == "config" && i+1 < len(parts) {
			return parts[i+1]
		}
	}

	if len(parts) >= 2 {
		// Skip queries/ if present
		if parts[0] == "queries" && len(parts) >= 3 {
			return parts[1]
		}
		return parts[0]
	}

	return "general"
}
