// Package config loads a configuration file into a nested mapping and
// addresses it with dot-separated paths.
//
// # Loading
//
// Load picks a parser from the file extension (case-insensitive):
//
//	.json        JSON object
//	.ini         INI, each [section] becomes one level of nesting
//	.js          data script evaluated in a goja sandbox
//	.yaml, .yml  YAML mapping
//
// Any other extension fails with an *UnsupportedFormatError. Unreadable files
// fail with an *IOError and malformed content with a *ParseError; use
// errors.Is with ErrUnsupportedFormat, ErrIO or ErrParse to classify them.
// Loading never returns a partially populated Config.
//
// # Paths
//
// A path is split on "." with no normalisation, so "db.host" addresses
// config["db"]["host"] and "a..b" addresses config["a"][""]["b"].
//
//	cfg, err := config.Load("app.json")
//	if err != nil {
//	    return err
//	}
//	host := cfg.Get("db.host", "localhost")
//
// Get returns the supplied default whenever a segment is missing. Set creates
// missing intermediate mappings, ignores nil values, and never overwrites a
// value that is already present at the final segment:
//
//	cfg.Set("db.port", 5432)
//	cfg.Set("db.port", 6543) // no effect, 5432 stays
//
// The asymmetry is deliberate: the first Set at a leaf wins, while
// intermediate segments always follow the newest Set and replace scalars with
// mappings when they need to descend through them.
//
// # Structs and Fx
//
// Provider decodes a subtree into a struct and applies the Defaulter and
// Validator hooks. Module and NamedModule expose a loaded *Config to an Fx
// container.
package config
