package linear

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestVectorHelpers(t *testing.T) {
	v := V(1, 2, 3)
	require.Equal(t, Vec{X: 1, Y: 2, Z: 3}, v)
	require.Equal(t, Vec{}, Zero())

	require.InDelta(t, 5.0, r3.Norm(V(3, 4, 0)), 1e-12)
	require.InDelta(t, 0.0, r3.Dot(UnitX(), UnitY()), 1e-12)

	// Right-handed frame: X x Y = Z.
	cross := r3.Cross(UnitX(), UnitY())
	require.InDelta(t, 0.0, r3.Norm(r3.Sub(cross, UnitZ())), 1e-12)
}

func TestIdentity(t *testing.T) {
	v := V(1, 2, 3)
	require.Equal(t, v, Identity().MulVec(v))
	require.Equal(t, v, RotationIdentity().Rotate(v))
}

func TestRotationAxisAngle(t *testing.T) {
	// A quarter turn about Z carries X onto Y.
	rot := RotationFromAxisAngle(UnitZ(), math.Pi/2)
	got := rot.Rotate(UnitX())

	require.InDelta(t, 0.0, got.X, 1e-12)
	require.InDelta(t, 1.0, got.Y, 1e-12)
	require.InDelta(t, 0.0, got.Z, 1e-12)
}

func TestRotationFromEuler(t *testing.T) {
	// Pure yaw reduces to a rotation about Z.
	yawOnly := RotationFromEuler(0, 0, math.Pi/2)
	got := yawOnly.Rotate(UnitX())
	require.InDelta(t, 0.0, got.X, 1e-12)
	require.InDelta(t, 1.0, got.Y, 1e-12)

	// Composition order is ZYX: roll applied first, yaw last.
	rot := RotationFromEuler(0.3, 0.2, 0.1)
	step := RotationFromAxisAngle(UnitZ(), 0.1).Rotate(
		RotationFromAxisAngle(UnitY(), 0.2).Rotate(
			RotationFromAxisAngle(UnitX(), 0.3).Rotate(V(1, 2, 3))))
	require.InDelta(t, 0.0, r3.Norm(r3.Sub(rot.Rotate(V(1, 2, 3)), step)), 1e-12)
}

func TestRotationMatAgreesWithRotation(t *testing.T) {
	rot := RotationFromEuler(0.3, -0.2, 1.1)
	m := RotationMat(rot)

	for _, v := range []Vec{UnitX(), V(1, 2, 3), V(-0.5, 4, 0)} {
		require.InDelta(t, 0.0, r3.Norm(r3.Sub(m.MulVec(v), rot.Rotate(v))), 1e-12)
	}

	// Rotation matrices preserve length.
	require.InDelta(t, r3.Norm(V(1, 2, 3)), r3.Norm(m.MulVec(V(1, 2, 3))), 1e-12)

	require.Equal(t, m, EulerMat(0.3, -0.2, 1.1))
}
