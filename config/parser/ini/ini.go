package ini

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// ErrNoData is returned when the input parses but contains no keys or sections.
var ErrNoData = errors.New("no data")

const (
	listSuffix = "[]"
	// defaultAlias stands in for an explicit [DEFAULT] header, which ini.v1
	// would otherwise merge into the section holding keys before any header.
	defaultAlias = "hjarta:default"
)

// Parser implements config.Parser for INI documents.
type Parser struct {
	options ini.LoadOptions
}

// NewParser creates a new INI parser instance.
func NewParser() *Parser {
	return &Parser{
		options: ini.LoadOptions{
			AllowShadows:               true,
			AllowDuplicateShadowValues: true,
			KeyValueDelimiters:         "=",
		},
	}
}

// Parse decodes data into a nested mapping. name is only used in error messages.
func (p *Parser) Parse(data []byte, name string) (map[string]any, error) {
	data, alias := renameDefaultHeaders(data)

	file, err := ini.LoadSources(p.options, data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", name, err)
	}

	root := make(map[string]any)

	for _, section := range file.Sections() {
		sectionName := section.Name()

		switch sectionName {
		case ini.DefaultSection:
			collectKeys(section, root)

			continue
		case alias:
			sectionName = ini.DefaultSection
		}

		values := make(map[string]any, len(section.Keys()))
		collectKeys(section, values)
		root[sectionName] = values
	}

	if len(root) == 0 {
		return nil, fmt.Errorf("parsing %q: %w", name, ErrNoData)
	}

	return root, nil
}

func collectKeys(section *ini.Section, target map[string]any) {
	for _, key := range section.Keys() {
		values := key.ValueWithShadows()

		if listName, isList := strings.CutSuffix(key.Name(), listSuffix); isList {
			list := make([]any, 0, len(values))
			for _, value := range values {
				list = append(list, value)
			}

			target[listName] = list

			continue
		}

		if len(values) == 0 {
			target[key.Name()] = key.Value()

			continue
		}

		target[key.Name()] = values[len(values)-1]
	}
}

// renameDefaultHeaders rewrites every [DEFAULT] header line to a section name
// that does not occur in data and returns that name.
func renameDefaultHeaders(data []byte) ([]byte, string) {
	alias := defaultAlias
	for bytes.Contains(data, []byte(alias)) {
		alias += "_"
	}

	lines := bytes.Split(data, []byte("\n"))
	for i, line := range lines {
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) < 2 || trimmed[0] != '[' {
			continue
		}

		end := bytes.IndexByte(trimmed, ']')
		if end < 0 || string(bytes.TrimSpace(trimmed[1:end])) != ini.DefaultSection {
			continue
		}

		lines[i] = []byte("[" + alias + "]")
	}

	return bytes.Join(lines, []byte("\n")), alias
}
