package config

import (
	"errors"
	"fmt"
	"log/slog"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when a named module is created without a name.
var ErrEmptyName = errors.New("config module name must not be empty")

// Module creates an Fx module that loads the file at path once and provides it as *Config.
// The *slog.Logger already in the container is used for load diagnostics.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(path string, opts ...LoaderOption) fx.Option {
	return fx.Module("config",
		fx.Provide(newConstructor(path, opts)),
	)
}

// NamedModule is like Module but provides *Config under the `name:"<name>"` tag,
// so several configuration files can live in one container.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NamedModule(name, path string, opts ...LoaderOption) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				newConstructor(path, opts),
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}

func newConstructor(path string, opts []LoaderOption) func(*slog.Logger) (*Config, error) {
	return func(logger *slog.Logger) (*Config, error) {
		loaderOpts := append([]LoaderOption{WithLogger(logger)}, opts...)

		cfg, err := NewLoader(loaderOpts...).Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading configuration: %w", err)
		}

		return cfg, nil
	}
}
