// Package linear provides the 3D linear algebra vocabulary used across the
// vehicle dynamics packages: vectors, 3x3 matrices, and unit quaternion
// rotations, as thin aliases and helpers over gonum's spatial/r3 types.
//
// Chassis and tire code works in the vehicle frame with Z up; Euler angle
// helpers use the automotive ZYX (yaw, pitch, roll) convention.
package linear

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a 3D vector with float64 components. It aliases r3.Vec, so the
// r3 package functions (Add, Sub, Scale, Dot, Cross, Norm, Unit) apply
// directly.
type Vec = r3.Vec

// Mat is a 3x3 matrix, aliasing r3.Mat.
type Mat = r3.Mat

// Rotation is a unit quaternion rotation, aliasing r3.Rotation.
type Rotation = r3.Rotation

// V constructs a vector from its components.
func V(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// Zero returns the zero vector.
func Zero() Vec {
	return Vec{}
}

// UnitX returns the unit vector along the X axis.
func UnitX() Vec {
	return Vec{X: 1}
}

// UnitY returns the unit vector along the Y axis.
func UnitY() Vec {
	return Vec{Y: 1}
}

// UnitZ returns the unit vector along the Z axis.
func UnitZ() Vec {
	return Vec{Z: 1}
}

// Identity returns the identity matrix.
func Identity() *Mat {
	return r3.NewMat([]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// RotationIdentity returns the no-op rotation.
func RotationIdentity() Rotation {
	return Rotation{Real: 1}
}

// RotationFromAxisAngle returns the rotation of angle radians about the
// given axis. The axis need not be normalized.
func RotationFromAxisAngle(axis Vec, angle float64) Rotation {
	return r3.NewRotation(angle, axis)
}

// RotationFromEuler returns the rotation for the given Euler angles in
// radians, composed in ZYX order: yaw about Z, then pitch about Y, then
// roll about X.
func RotationFromEuler(roll, pitch, yaw float64) Rotation {
	rz := quat.Number(r3.NewRotation(yaw, UnitZ()))
	ry := quat.Number(r3.NewRotation(pitch, UnitY()))
	rx := quat.Number(r3.NewRotation(roll, UnitX()))

	return Rotation(quat.Mul(rz, quat.Mul(ry, rx)))
}

// RotationMat returns the rotation as a 3x3 matrix whose columns are the
// rotated basis vectors.
func RotationMat(rot Rotation) *Mat {
	cx := rot.Rotate(UnitX())
	cy := rot.Rotate(UnitY())
	cz := rot.Rotate(UnitZ())

	return r3.NewMat([]float64{
		cx.X, cy.X, cz.X,
		cx.Y, cy.Y, cz.Y,
		cx.Z, cy.Z, cz.Z,
	})
}

// EulerMat returns the ZYX Euler rotation matrix for the given angles in
// radians.
func EulerMat(roll, pitch, yaw float64) *Mat {
	return RotationMat(RotationFromEuler(roll, pitch, yaw))
}
