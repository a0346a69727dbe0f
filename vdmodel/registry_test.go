package vdmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openvd/vdkit/errs"
)

func TestRegistryLoad(t *testing.T) {
	reg, err := NewRegistry(WithLogger(zap.NewNop()))
	require.NoError(t, err)

	require.NoError(t, reg.Load([]byte(testManifestYAML), encodeTestBlob(t)))

	require.Equal(t, "demo-car", reg.Manifest().Model)

	torque, err := reg.Table1D("engine.torque")
	require.NoError(t, err)
	require.InDelta(t, 302.0, torque.Lookup(4200), 1e-9)

	grip, err := reg.Table2D("tire.grip")
	require.NoError(t, err)
	require.InDelta(t, 0.5625, grip.Lookup(2.5, 3000), 1e-12)

	aero, err := reg.Table3D("aero.cd")
	require.NoError(t, err)
	require.Equal(t, 0.30, aero.Lookup(0, 0, 0))

	info, ok := reg.Info("engine.torque")
	require.True(t, ok)
	require.Equal(t, "N*m", info.Unit)
}

func TestRegistryNilLogger(t *testing.T) {
	_, err := NewRegistry(WithLogger(nil))
	require.Error(t, err)
}

func TestRegistryBeforeLoad(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	require.Nil(t, reg.Manifest())

	_, ok := reg.Info("engine.torque")
	require.False(t, ok)

	_, err = reg.Table1D("engine.torque")
	require.Error(t, err)
}

func TestRegistryUndeclaredTable(t *testing.T) {
	// Manifest that publishes only the torque table; the blob carries three.
	manifest := []byte(`
model: demo-car
tables:
  - name: engine.torque
    kind: 1d
    axes: [rpm]
`)

	reg, err := NewRegistry()
	require.NoError(t, err)
	require.NoError(t, reg.Load(manifest, encodeTestBlob(t)))

	_, err = reg.Table1D("engine.torque")
	require.NoError(t, err)

	// Present in the blob but not published by the manifest.
	_, err = reg.Table2D("tire.grip")
	require.ErrorIs(t, err, errs.ErrTableNotFound)
}

func TestRegistryLoadManifestBlobConflicts(t *testing.T) {
	t.Run("manifest table missing from blob", func(t *testing.T) {
		manifest := []byte("model: demo-car\ntables:\n  - name: brakes.fade\n    kind: 1d\n    axes: [temp_c]\n")

		reg, err := NewRegistry()
		require.NoError(t, err)

		err = reg.Load(manifest, encodeTestBlob(t))
		require.ErrorIs(t, err, errs.ErrTableNotFound)
	})

	t.Run("kind disagreement", func(t *testing.T) {
		manifest := []byte("model: demo-car\ntables:\n  - name: engine.torque\n    kind: 2d\n    axes: [rpm, throttle]\n")

		reg, err := NewRegistry()
		require.NoError(t, err)

		err = reg.Load(manifest, encodeTestBlob(t))
		require.ErrorIs(t, err, errs.ErrTableKindMismatch)
	})

	t.Run("corrupt blob", func(t *testing.T) {
		reg, err := NewRegistry()
		require.NoError(t, err)

		err = reg.Load([]byte(testManifestYAML), []byte("not a blob"))
		require.Error(t, err)
	})
}
