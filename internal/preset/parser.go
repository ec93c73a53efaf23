package preset

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	quarkerrors "github.com/alexisbeaulieu97/quark/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseFile loads a preset from disk, validates it and returns the result.
func ParseFile(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, quarkerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates preset YAML. source names the document in errors.
func Parse(source string, data []byte) (*Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, quarkerrors.NewParseError(source, extractLine(err), err)
	}

	if err := Validate(&p); err != nil {
		return nil, err
	}

	return &p, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
