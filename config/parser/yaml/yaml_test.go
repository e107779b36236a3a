package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_Mapping(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`
name: test-app
version: "1.0"
api:
  host: localhost
  port: 8080
  hosts:
    - host1.example.com
    - host2.example.com
`)

	result, err := parser.Parse(data, "config.yaml")

	require.NoError(t, err)
	assert.Equal(t, "test-app", result["name"])
	assert.Equal(t, "1.0", result["version"])

	api, ok := result["api"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "localhost", api["host"])
	assert.EqualValues(t, 8080, api["port"])
	assert.Equal(t, []any{"host1.example.com", "host2.example.com"}, api["hosts"])
}

func TestParser_Parse_BoolAndFloatValues(t *testing.T) {
	t.Parallel()

	data := []byte(`
config:
  enabled: true
  disabled: false
  ratio: 3.14159
`)

	result, err := NewParser().Parse(data, "config.yaml")
	require.NoError(t, err)

	cfg, ok := result["config"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, cfg["enabled"])
	assert.Equal(t, false, cfg["disabled"])
	assert.InDelta(t, 3.14159, cfg["ratio"], 0.00001)
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "no bytes", data: ""},
		{name: "comment only", data: "# nothing configured\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := NewParser().Parse([]byte(tt.data), "empty.yaml")

			require.ErrorIs(t, err, ErrEmptyData)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), "empty data")
		})
	}
}

func TestParser_Parse_NotMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "scalar", data: "just a string\n"},
		{name: "sequence", data: "- a\n- b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := NewParser().Parse([]byte(tt.data), "list.yaml")

			require.ErrorIs(t, err, ErrNotMapping)
			assert.Nil(t, result)
		})
	}
}

func TestParser_Parse_InvalidYAML(t *testing.T) {
	t.Parallel()

	data := []byte(`
invalid: yaml: content: [
`)

	result, err := NewParser().Parse(data, "invalid.yaml")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "invalid.yaml")
}
