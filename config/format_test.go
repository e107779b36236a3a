package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected Format
	}{
		{path: "config.json", expected: FormatJSON},
		{path: "CONFIG.JSON", expected: FormatJSON},
		{path: "/etc/app/config.Json", expected: FormatJSON},
		{path: "config.ini", expected: FormatINI},
		{path: "config.INI", expected: FormatINI},
		{path: "config.js", expected: FormatScript},
		{path: "config.yaml", expected: FormatYAML},
		{path: "config.yml", expected: FormatYAML},
		{path: "archive.tar.json", expected: FormatJSON},
		{path: "dir.json/config.ini", expected: FormatINI},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			format, err := FormatFromPath(tt.path)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestFormatFromPath_Unsupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path      string
		extension string
	}{
		{path: "config.xml", extension: "xml"},
		{path: "config.php", extension: "php"},
		{path: "config.json.bak", extension: "bak"},
		{path: "Makefile", extension: ""},
		{path: "config.", extension: ""},
		{path: "", extension: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			format, err := FormatFromPath(tt.path)

			assert.Equal(t, FormatUnknown, format)
			require.ErrorIs(t, err, ErrUnsupportedFormat)

			var formatErr *UnsupportedFormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, tt.extension, formatErr.Extension)
		})
	}
}

func TestFormat_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "ini", FormatINI.String())
	assert.Equal(t, "script", FormatScript.String())
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
	assert.Equal(t, "unknown", Format(99).String())
}
