package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

var errUnknownOutput = errors.New("unknown output format")

func validateOutput(format string) error {
	switch format {
	case outputYAML, outputJSON:
		return nil
	default:
		return fmt.Errorf("%w %q (expected yaml or json)", errUnknownOutput, format)
	}
}

// writeValue prints strings as-is and encodes everything else in the given format.
func writeValue(w io.Writer, value any, format string) error {
	if text, ok := value.(string); ok {
		_, err := fmt.Fprintln(w, text)

		return err
	}

	var (
		data []byte
		err  error
	)

	switch format {
	case outputJSON:
		data, err = json.MarshalIndent(value, "", "  ")
	default:
		data, err = yaml.Marshal(value)
	}

	if err != nil {
		return fmt.Errorf("encoding %s output: %w", format, err)
	}

	_, err = fmt.Fprintln(w, strings.TrimRight(string(data), "\n"))

	return err
}
