package config

import (
	"errors"
	"log/slog"

	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	iniparser "github.com/0xalexb/hjarta-config/config/parser/ini"
	jsonparser "github.com/0xalexb/hjarta-config/config/parser/json"
	scriptparser "github.com/0xalexb/hjarta-config/config/parser/script"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
)

var errNoMapping = errors.New("parser returned no mapping")

// Parser turns raw file content into a nested mapping.
// name identifies the source (usually the file path) for error messages.
type Parser interface {
	Parse(data []byte, name string) (map[string]any, error)
}

// ParserFunc adapts a function to Parser.
type ParserFunc func(data []byte, name string) (map[string]any, error)

// Parse implements Parser.
func (f ParserFunc) Parse(data []byte, name string) (map[string]any, error) {
	return f(data, name)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used for load diagnostics. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithParser registers parser for format, replacing any built-in parser.
// A nil parser removes support for the format.
func WithParser(format Format, parser Parser) LoaderOption {
	return func(l *Loader) {
		if parser == nil {
			delete(l.parsers, format)

			return
		}

		l.parsers[format] = parser
	}
}

// Loader dispatches configuration files to a parser chosen by extension.
type Loader struct {
	parsers map[Format]Parser
	logger  *slog.Logger
}

// NewLoader creates a Loader with the JSON, INI, script and YAML parsers registered.
func NewLoader(opts ...LoaderOption) *Loader {
	loader := &Loader{
		parsers: map[Format]Parser{
			FormatJSON:   jsonparser.NewParser(),
			FormatINI:    iniparser.NewParser(),
			FormatScript: scriptparser.NewParser(),
			FormatYAML:   yamlparser.NewParser(),
		},
		logger: slog.Default(),
	}

	for _, apply := range opts {
		if apply != nil {
			apply(loader)
		}
	}

	return loader
}

// Load reads the file at path with a default Loader.
func Load(path string) (*Config, error) {
	return NewLoader().Load(path)
}

// Load reads and parses the file at path. It returns either a complete Config
// or an *UnsupportedFormatError, *IOError or *ParseError.
func (l *Loader) Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	if _, ok := l.parsers[format]; !ok {
		return nil, &UnsupportedFormatError{Path: path, Extension: format.String()}
	}

	fetcher, err := filefetcher.Read(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	return l.LoadFrom(format, fetcher, path)
}

// LoadFrom parses the data returned by fetcher as format.
func (l *Loader) LoadFrom(format Format, fetcher DataFetcher, name string) (*Config, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, &IOError{Path: name, Err: err}
	}

	return l.Parse(format, data, name)
}

// Parse parses data as format without touching the filesystem.
func (l *Loader) Parse(format Format, data []byte, name string) (*Config, error) {
	parser, ok := l.parsers[format]
	if !ok {
		return nil, &UnsupportedFormatError{Path: name, Extension: format.String()}
	}

	document, err := parser.Parse(data, name)
	if err != nil {
		return nil, &ParseError{Format: format, Path: name, Err: err}
	}

	if document == nil {
		return nil, &ParseError{Format: format, Path: name, Err: errNoMapping}
	}

	cfg := New(document)

	l.logger.Debug("configuration loaded",
		slog.String("path", name),
		slog.String("format", format.String()),
		slog.Int("keys", len(document)),
	)

	return cfg, nil
}
