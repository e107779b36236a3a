// Package logging builds the structured loggers used across hjarta-config.
//
// Loggers are plain log/slog loggers. The fx application writes JSON to stderr,
// while the command line tool uses the text handler so diagnostics stay readable
// next to the values it prints on stdout.
package logging
