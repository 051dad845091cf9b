// Package manifest reads quill.yaml, the per-package manifest the compiler
// driver consumes: package identity, documentation, and the dependency
// order establishing the compile-order DAG. Dependencies listed here must
// already be fully analysed before this package's call sites that reference
// them are analysed; the analysis core itself assumes that ordering and
// does not re-validate it.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the top-level quill.yaml document.
type Manifest struct {
	// Package is the package name. Required.
	Package string `yaml:"package"`

	// Version is the package version string.
	Version string `yaml:"version,omitempty"`

	// Documentation is the package-level documentation carried into the
	// exported interface document.
	Documentation string `yaml:"documentation,omitempty"`

	// Dependencies lists the packages this one depends on, in compile
	// order.
	Dependencies []Dependency `yaml:"dependencies,omitempty"`

	// Interface configures the package interface export.
	Interface InterfaceConfig `yaml:"interface,omitempty"`
}

// Dependency names one package this package depends on.
type Dependency struct {
	Package string `yaml:"package"`
	Version string `yaml:"version,omitempty"`
}

// InterfaceConfig configures the interface exporter.
type InterfaceConfig struct {
	// Out is the output path for the interface document. Empty means
	// standard output.
	Out string `yaml:"out,omitempty"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates manifest data.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest for structural problems.
func (m *Manifest) Validate() error {
	if m.Package == "" {
		return fmt.Errorf("manifest: package name is required")
	}
	seen := make(map[string]bool, len(m.Dependencies))
	for _, dep := range m.Dependencies {
		if dep.Package == "" {
			return fmt.Errorf("manifest: dependency without a package name")
		}
		if dep.Package == m.Package {
			return fmt.Errorf("manifest: package %s cannot depend on itself", m.Package)
		}
		if seen[dep.Package] {
			return fmt.Errorf("manifest: duplicate dependency %s", dep.Package)
		}
		seen[dep.Package] = true
	}
	return nil
}
