// Package json provides the JSON parser for the config loader.
//
// The whole input must be a single JSON object. Scalars, arrays and null at the
// root are rejected because configuration data has to be key-addressable.
// Numbers decode as int64 when they are integral and fit, otherwise as float64.
//
// Usage:
//
//	parser := json.NewParser()
//	doc, err := parser.Parse(data, "config.json")
package json
