package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotObject is returned when the document root is not a JSON object.
var ErrNotObject = errors.New("document root is not an object")

// ErrTrailingData is returned when more content follows the first JSON value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// Parser implements config.Parser for JSON documents.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data into a nested mapping. name is only used in error messages.
func (p *Parser) Parse(data []byte, name string) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var value any

	err := decoder.Decode(&value)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", name, err)
	}

	_, err = decoder.Token()
	if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding %q: %w", name, ErrTrailingData)
	}

	root, ok := convertNumbers(value).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decoding %q: %w (got %s)", name, ErrNotObject, kindOf(value))
	}

	return root, nil
}

func convertNumbers(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for key, child := range typed {
			typed[key] = convertNumbers(child)
		}

		return typed
	case []any:
		for i, child := range typed {
			typed[i] = convertNumbers(child)
		}

		return typed
	case json.Number:
		if i, err := typed.Int64(); err == nil {
			return i
		}

		f, err := typed.Float64()
		if err != nil {
			return typed.String()
		}

		return f
	default:
		return value
	}
}

func kindOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", value)
	}
}
