package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sheet is a collection of named styles loaded from YAML.
//
// Stylesheet format:
//
//	title:
//	  color: white
//	  background: "#336699"
//	  fontSize: 24
//	  fontWeight: bold
//	body:
//	  color: "#333"
//	  fontSize: 14
type Sheet struct {
	styles map[string]Style
}

// LoadSheet parses a YAML stylesheet.
func LoadSheet(data []byte) (*Sheet, error) {
	styles := make(map[string]Style)
	if err := yaml.Unmarshal(data, &styles); err != nil {
		return nil, fmt.Errorf("style: invalid stylesheet: %w", err)
	}
	return &Sheet{styles: styles}, nil
}

// LoadSheetFile reads and parses a YAML stylesheet from disk.
func LoadSheetFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("style: read stylesheet: %w", err)
	}
	return LoadSheet(data)
}

// Resolve returns the named style. The second result is false if the
// sheet has no style under that name.
func (s *Sheet) Resolve(name string) (Style, bool) {
	if s == nil {
		return Style{}, false
	}
	st, ok := s.styles[name]
	return st, ok
}

// MustResolve returns the named style, panicking if it is absent.
// Intended for test fixtures where a missing name is a programming error.
func (s *Sheet) MustResolve(name string) Style {
	st, ok := s.Resolve(name)
	if !ok {
		panic(fmt.Sprintf("style: no style named %q in sheet", name))
	}
	return st
}

// Names returns the defined style names in unspecified order.
func (s *Sheet) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.styles))
	for name := range s.styles {
		names = append(names, name)
	}
	return names
}
