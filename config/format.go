package config

import (
	"path/filepath"
	"strings"
)

// Format identifies the syntax of a configuration file.
type Format int

const (
	// FormatUnknown is the zero value and never selects a parser.
	FormatUnknown Format = iota
	// FormatJSON is a JSON object document.
	FormatJSON
	// FormatINI is an INI document whose sections become one level of nesting.
	FormatINI
	// FormatScript is a JavaScript data script evaluated in a sandbox.
	FormatScript
	// FormatYAML is a YAML mapping document.
	FormatYAML
)

var formatsByExtension = map[string]Format{
	"json": FormatJSON,
	"ini":  FormatINI,
	"js":   FormatScript,
	"yaml": FormatYAML,
	"yml":  FormatYAML,
}

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatINI:
		return "ini"
	case FormatScript:
		return "script"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath selects the Format for path from its extension, ignoring case.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	format, ok := formatsByExtension[strings.ToLower(ext)]
	if !ok {
		return FormatUnknown, &UnsupportedFormatError{Path: path, Extension: ext}
	}

	return format, nil
}
