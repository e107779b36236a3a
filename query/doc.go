// Package query evaluates expr-lang expressions against a loaded configuration.
//
// Every root key of the document is bound as a variable, so nested values are
// reached with member access:
//
//	query.Evaluate(cfg, `db.port > 1024 && server.host != ""`)
//
// The get(path, default) function exposes config.Config.Get for dotted paths
// that are not valid identifiers, e.g. get("feature-flags.beta", false).
package query
