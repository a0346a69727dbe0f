package vdmodel

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/openvd/vdkit/format"
)

// Manifest describes the human-readable side of a model blob: the model
// identity and, for each table, its name, dimensionality, output unit, and
// axis labels. Manifests travel as YAML next to the binary blob.
//
// Example:
//
//	model: demo-gt
//	version: "2026.1"
//	tables:
//	  - name: engine.torque
//	    kind: 1d
//	    unit: N*m
//	    axes: [rpm]
//	  - name: tire.grip
//	    kind: 2d
//	    unit: ""
//	    axes: [slip_angle_deg, load_n]
type Manifest struct {
	Model   string      `yaml:"model"`
	Version string      `yaml:"version"`
	Tables  []TableInfo `yaml:"tables"`
}

// TableInfo is one table's manifest entry.
type TableInfo struct {
	Name string   `yaml:"name"`
	Kind string   `yaml:"kind"`
	Unit string   `yaml:"unit"`
	Axes []string `yaml:"axes"`
}

// TableKind maps the manifest kind string to a format.TableKind.
// Returns false for unknown kinds.
func (ti TableInfo) TableKind() (format.TableKind, bool) {
	switch ti.Kind {
	case "1d":
		return format.Kind1D, true
	case "2d":
		return format.Kind2D, true
	case "3d":
		return format.Kind3D, true
	default:
		return 0, false
	}
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate checks structural rules: a model name, unique non-empty table
// names, known kinds, and one axis label per dimension.
func (m *Manifest) Validate() error {
	if m.Model == "" {
		return fmt.Errorf("manifest: missing model name")
	}
	if len(m.Tables) == 0 {
		return fmt.Errorf("manifest: no tables declared")
	}

	seen := make(map[string]struct{}, len(m.Tables))
	for i, ti := range m.Tables {
		if ti.Name == "" {
			return fmt.Errorf("manifest table %d: missing name", i)
		}
		if _, dup := seen[ti.Name]; dup {
			return fmt.Errorf("manifest table %q: duplicate name", ti.Name)
		}
		seen[ti.Name] = struct{}{}

		kind, ok := ti.TableKind()
		if !ok {
			return fmt.Errorf("manifest table %q: unknown kind %q", ti.Name, ti.Kind)
		}
		if len(ti.Axes) != kind.Dims() {
			return fmt.Errorf("manifest table %q: %d axis labels for a %s table",
				ti.Name, len(ti.Axes), kind)
		}
	}

	return nil
}

// Info returns the manifest entry for the given table name.
func (m *Manifest) Info(name string) (TableInfo, bool) {
	for _, ti := range m.Tables {
		if ti.Name == name {
			return ti, true
		}
	}

	return TableInfo{}, false
}
