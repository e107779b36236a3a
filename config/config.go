package config

import (
	"sort"
	"strings"
)

// PathSeparator splits a path into segments.
const PathSeparator = "."

// Config owns a configuration document and addresses it with dotted paths.
//
// A Config is not safe for concurrent use; callers sharing one across
// goroutines must serialise access themselves.
type Config struct {
	data map[string]any
}

// New wraps data in a Config. The Config takes ownership of data: callers must
// not modify it afterwards. A nil map yields an empty document.
func New(data map[string]any) *Config {
	if data == nil {
		data = make(map[string]any)
	}

	return &Config{data: normalizeMapping(data)}
}

// Get returns the value at path, or def when any segment is missing or a
// segment has to be looked up in something that is not a mapping.
// Mappings and lists are returned as copies.
func (c *Config) Get(path string, def any) any {
	value, ok := c.Lookup(path)
	if !ok {
		return def
	}

	return value
}

// Lookup returns a copy of the value at path and whether it was present.
func (c *Config) Lookup(path string) (any, bool) {
	var node any = c.root()

	for _, segment := range splitPath(path) {
		mapping, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}

		child, ok := mapping[segment]
		if !ok {
			return nil, false
		}

		node = child
	}

	return cloneValue(node), true
}

// Set stores value at path, creating intermediate mappings as needed.
//
// A nil value is ignored. Intermediate segments that are missing, or that
// hold a non-mapping value, are replaced by a new empty mapping, so structure
// follows the most recent Set. The final segment is only written when it is
// absent: an existing value is never overwritten. Mappings and slices are
// copied before they are stored.
func (c *Config) Set(path string, value any) {
	if isNil(value) {
		return
	}

	segments := splitPath(path)
	last := len(segments) - 1

	node := c.root()
	for _, segment := range segments[:last] {
		node = childMapping(node, segment)
	}

	if _, exists := node[segments[last]]; exists {
		return
	}

	node[segments[last]] = normalizeValue(cloneValue(value))
}

// Data returns a deep copy of the whole document.
func (c *Config) Data() map[string]any {
	mapping, _ := cloneValue(c.root()).(map[string]any)

	return mapping
}

// Keys lists the dotted path of every leaf, sorted. Empty mappings are leaves.
func (c *Config) Keys() []string {
	keys := collectKeys(c.root(), "", false, nil)
	sort.Strings(keys)

	return keys
}

func (c *Config) root() map[string]any {
	if c.data == nil {
		c.data = make(map[string]any)
	}

	return c.data
}

// splitPath keeps empty segments: "a..b" addresses the "" key under "a".
func splitPath(path string) []string {
	return strings.Split(path, PathSeparator)
}

// childMapping returns the mapping under key, storing a new one there first
// when the key is absent or holds anything other than a mapping.
func childMapping(node map[string]any, key string) map[string]any {
	if child, ok := node[key].(map[string]any); ok && child != nil {
		return child
	}

	child := make(map[string]any)
	node[key] = child

	return child
}

// collectKeys appends the path of every leaf under node. nested is false only
// for the document root, so an empty key still produces its own segment.
func collectKeys(node map[string]any, prefix string, nested bool, keys []string) []string {
	if len(node) == 0 && nested {
		return append(keys, prefix)
	}

	for key, value := range node {
		path := key
		if nested {
			path = prefix + PathSeparator + key
		}

		if child, ok := value.(map[string]any); ok {
			keys = collectKeys(child, path, true, keys)

			continue
		}

		keys = append(keys, path)
	}

	return keys
}
