// Package ini provides the INI parser for the config loader, built on gopkg.in/ini.v1.
//
// Keys that appear before the first section header become root keys. Every
// [section] header becomes one level of nesting holding that section's keys:
//
//	timeout = 30
//
//	[db]
//	host = localhost
//	replicas[] = r1
//	replicas[] = r2
//
// yields {"timeout": "30", "db": {"host": "localhost", "replicas": ["r1", "r2"]}}.
//
// Values are kept as strings; the parser never coerces types. When a key is
// repeated the last value wins, except for keys written with a trailing "[]",
// which collect every value into a list.
package ini
