// Package yaml provides the YAML parser for the config loader.
//
// This package uses github.com/goccy/go-yaml. The document root must be a
// mapping; nested mappings come back as map[string]any and sequences as []any.
//
// Usage:
//
//	parser := yaml.NewParser()
//	doc, err := parser.Parse(data, "config.yaml")
package yaml
