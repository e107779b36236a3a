package yaml

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input holds no YAML document.
var ErrEmptyData = errors.New("empty data")

// ErrNotMapping is returned when the document root is not a mapping.
var ErrNotMapping = errors.New("document root is not a mapping")

// Parser implements config.Parser for YAML data.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data into a nested mapping. name is only used in error messages.
func (p *Parser) Parse(data []byte, name string) (map[string]any, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("parsing %q: %w", name, ErrEmptyData)
	}

	var value any

	err := yaml.Unmarshal(data, &value)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: unmarshal error: %w", name, err)
	}

	if value == nil {
		return nil, fmt.Errorf("parsing %q: %w", name, ErrEmptyData)
	}

	root, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parsing %q: %w (got %T)", name, ErrNotMapping, value)
	}

	return root, nil
}
