package config

import (
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"
)

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that decodes the subtree at path into target,
// sets defaults, and validates it. An empty path decodes the whole document.
//
// Decoding goes through YAML, so target fields use `yaml:"..."` tags.
func Provider[T any](target *T, path string) func(*Config) (*T, error) {
	return func(cfg *Config) (*T, error) {
		var subtree any

		if path == "" {
			subtree = cfg.Data()
		} else {
			value, ok := cfg.Lookup(path)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
			}

			subtree = value
		}

		err := decode(subtree, target)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

func decode(value, target any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
