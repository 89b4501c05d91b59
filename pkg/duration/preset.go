package duration

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts the boolean spellings true/false as well as the
// string "leading", so a preset file can say `hideZero: leading`.
func (m *ZeroMode) UnmarshalYAML(value *yaml.Node) error {
	var b bool
	if err := value.Decode(&b); err == nil {
		if b {
			*m = ZeroHide
		} else {
			*m = ZeroShow
		}
		return nil
	}

	var s string
	if err := value.Decode(&s); err == nil && s == "leading" {
		*m = ZeroHideLeading
		return nil
	}
	return fmt.Errorf("invalid hideZero value %q: expected true, false, or \"leading\"", value.Value)
}

// MarshalYAML emits the spelling UnmarshalYAML accepts.
func (m ZeroMode) MarshalYAML() (any, error) {
	switch m {
	case ZeroHide:
		return true, nil
	case ZeroHideLeading:
		return "leading", nil
	default:
		return false, nil
	}
}

// ParsePreset parses a FormatOptions preset from YAML bytes, e.g.:
//
//	hideZero: leading
//	maxEntries: 3
//	noSpaceBeforeUnit: true
//	separator: " "
//	names:
//	  years: {singular: y, plural: y}
//
// Option values are validated the same way Format validates them, so a
// bad maxEntries is reported here rather than at first use.
func ParsePreset(data []byte) (*FormatOptions, error) {
	var opts FormatOptions
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("parsing format preset: %w", err)
	}
	if err := opts.validate("preset"); err != nil {
		return nil, err
	}
	return &opts, nil
}

// LoadPreset loads and parses a format preset from a YAML file.
func LoadPreset(path string) (*FormatOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParsePreset(data)
}
