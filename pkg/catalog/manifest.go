package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var manifestYAML []byte

// Pattern is one manifest entry.
type Pattern struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Summary  string `yaml:"summary"`
	// Doc is a markdown write-up of the pattern (problem, applicability,
	// trade-offs), rendered by the CLI's describe command.
	Doc string `yaml:"doc"`
}

// Manifest is the full pattern listing, in catalogue order.
type Manifest struct {
	Patterns []Pattern `yaml:"patterns"`
}

// LoadManifest parses the embedded manifest.
func LoadManifest() (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(manifestYAML, &m); err != nil {
		return nil, fmt.Errorf("parse embedded manifest: %w", err)
	}
	return &m, nil
}

// Lookup returns the entry named name.
func (m *Manifest) Lookup(name string) (Pattern, bool) {
	for _, p := range m.Patterns {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// Categories returns the distinct categories in first-appearance order.
func (m *Manifest) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range m.Patterns {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// ByCategory returns the entries belonging to category, in manifest order.
func (m *Manifest) ByCategory(category string) []Pattern {
	var out []Pattern
	for _, p := range m.Patterns {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
