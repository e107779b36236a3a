package hjarta

import (
	"github.com/0xalexb/hjarta-config/config"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFile loads the configuration file at path and provides it as *config.Config.
// The format is picked from the file extension.
func WithConfigFile(path string, opts ...config.LoaderOption) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, config.Module(path, opts...))
	}
}

// WithNamedConfigFile is like WithConfigFile but provides the *config.Config under
// the `name:"<name>"` tag. Call it multiple times with different names to load several files.
func WithNamedConfigFile(name, path string, opts ...config.LoaderOption) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, config.NamedModule(name, path, opts...))
	}
}

// WithConfigSection decodes the subtree at path of the unnamed *config.Config into *T
// and provides it. An empty path decodes the whole document.
// Defaults and validation run when T implements config.Defaulter or config.Validator.
func WithConfigSection[T any](path string) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, fx.Provide(config.Provider(new(T), path)))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects the log handler: "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
