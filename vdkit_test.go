package vdkit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openvd/vdkit/lut"
)

func TestTableID(t *testing.T) {
	require.Equal(t, TableID("engine.torque"), TableID("engine.torque"))
	require.NotEqual(t, TableID("engine.torque"), TableID("engine.torque2"))
}

func TestTorqueCurve(t *testing.T) {
	table, err := lut.New1D(
		[]float64{1000, 3000, 5000, 7000},
		[]float64{180, 320, 290, 220},
	)
	require.NoError(t, err)

	curve := NewTorqueCurve(table)
	require.InDelta(t, 302.0, float64(curve.At(4200)), 1e-9)

	// P = tau * omega at the same operating point.
	power := curve.PowerAt(4200)
	require.InDelta(t, 132.82, power.Kilowatts(), 0.01)
}

func TestGripSurface(t *testing.T) {
	table, err := lut.New2D(
		[]float64{0, 0.05, 0.10},
		[]float64{2000, 4000},
		[]float64{0.2, 0.15, 1.0, 0.9, 0.8, 0.7},
	)
	require.NoError(t, err)

	grip := NewGripSurface(table)
	mu := grip.At(0.025, 3000)
	require.InDelta(t, 0.5625, mu, 1e-12)

	force := grip.LateralForce(0.025, 3000)
	require.InDelta(t, mu*3000, float64(force), 1e-9)
}

func TestAeroMap(t *testing.T) {
	table, err := lut.New3D(
		[]float64{0, 50},
		[]float64{0, 0.1},
		[]float64{0, 0.2},
		[]float64{0.30, 0.28, 0.40, 0.38, 0.35, 0.33, 0.45, 0.43},
	)
	require.NoError(t, err)

	aero := NewAeroMap(table)
	require.Equal(t, 0.30, aero.At(0, 0, 0))

	// Straight-line drag at 50 m/s, max ride height, 2.2 m^2 frontal area.
	cd := aero.At(50, 0.1, 0)
	require.Equal(t, 0.45, cd)

	drag := aero.DragForce(50, 0.1, 0, 2.2)
	require.InDelta(t, 0.5*1.225*cd*2.2*2500, float64(drag), 1e-9)
}
