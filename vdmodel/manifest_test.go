package vdmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testManifestYAML = `
model: demo-car
version: "1.2.0"
tables:
  - name: engine.torque
    kind: 1d
    unit: "N*m"
    axes: [rpm]
  - name: tire.grip
    kind: 2d
    unit: mu
    axes: [slip_deg, load_n]
  - name: aero.cd
    kind: 3d
    unit: coefficient
    axes: [speed_mps, ride_height_mm, yaw_rad]
`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(testManifestYAML))
	require.NoError(t, err)

	require.Equal(t, "demo-car", m.Model)
	require.Equal(t, "1.2.0", m.Version)
	require.Len(t, m.Tables, 3)

	info, ok := m.Info("tire.grip")
	require.True(t, ok)
	require.Equal(t, "2d", info.Kind)
	require.Equal(t, []string{"slip_deg", "load_n"}, info.Axes)

	_, ok = m.Info("no.such.table")
	require.False(t, ok)
}

func TestParseManifestInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "not yaml",
			yaml: "{{{",
		},
		{
			name: "missing model name",
			yaml: "tables:\n  - name: t\n    kind: 1d\n    axes: [x]\n",
		},
		{
			name: "no tables",
			yaml: "model: demo-car\n",
		},
		{
			name: "missing table name",
			yaml: "model: demo-car\ntables:\n  - kind: 1d\n    axes: [x]\n",
		},
		{
			name: "duplicate table name",
			yaml: "model: demo-car\ntables:\n  - name: t\n    kind: 1d\n    axes: [x]\n  - name: t\n    kind: 1d\n    axes: [x]\n",
		},
		{
			name: "unknown kind",
			yaml: "model: demo-car\ntables:\n  - name: t\n    kind: 4d\n    axes: [x]\n",
		},
		{
			name: "axis count mismatch",
			yaml: "model: demo-car\ntables:\n  - name: t\n    kind: 2d\n    axes: [x]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}
