// Package vdkit is a lookup-table toolkit for real-time vehicle dynamics
// simulation.
//
// The sub-packages split along the data path:
//
//   - lut holds the interpolation core: monotonic axes and immutable 1D, 2D
//     and 3D tables with clamped linear lookup.
//   - vdmodel persists sets of tables as a compact binary blob with a YAML
//     manifest describing the published surface.
//   - units provides typed physical quantities so table inputs and outputs
//     carry their dimension in the type system.
//   - telemetry records simulation channels into pre-allocated ring buffers.
//
// This package adds thin typed wrappers over the raw tables for the common
// vehicle maps, so call sites read in physical units:
//
//	curve := vdkit.NewTorqueCurve(table)
//	tq := curve.At(units.RPM(4200)) // units.NewtonMeters
package vdkit

import (
	"github.com/openvd/vdkit/lut"
	"github.com/openvd/vdkit/units"
	"github.com/openvd/vdkit/vdmodel"
)

// TableID returns the stable 64-bit identifier a table name maps to inside
// a model blob.
func TableID(name string) uint64 {
	return vdmodel.TableID(name)
}

// TorqueCurve is an engine torque map over engine speed.
type TorqueCurve struct {
	table *lut.Table1D
}

// NewTorqueCurve wraps a 1D table whose axis is engine speed in rpm and
// whose values are torque in newton meters.
func NewTorqueCurve(table *lut.Table1D) TorqueCurve {
	return TorqueCurve{table: table}
}

// At returns the engine torque at the given speed.
func (c TorqueCurve) At(speed units.RPM) units.NewtonMeters {
	return units.NewtonMeters(c.table.Lookup(float64(speed)))
}

// PowerAt returns the engine power output at the given speed.
func (c TorqueCurve) PowerAt(speed units.RPM) units.Watts {
	return c.At(speed).AtSpeed(speed.RadiansPerSecond())
}

// GripSurface is a tire friction map over slip angle and vertical load.
type GripSurface struct {
	table *lut.Table2D
}

// NewGripSurface wraps a 2D table whose axes are slip angle in radians and
// vertical load in newtons, and whose values are the friction coefficient.
func NewGripSurface(table *lut.Table2D) GripSurface {
	return GripSurface{table: table}
}

// At returns the friction coefficient at the given slip angle and load.
func (g GripSurface) At(slip units.Radians, load units.Newtons) float64 {
	return g.table.Lookup(float64(slip), float64(load))
}

// LateralForce returns the lateral tire force at the given slip and load.
func (g GripSurface) LateralForce(slip units.Radians, load units.Newtons) units.Newtons {
	return units.Newtons(g.At(slip, load) * float64(load))
}

// AeroMap is a drag coefficient map over speed, ride height and yaw angle.
type AeroMap struct {
	table *lut.Table3D
}

// NewAeroMap wraps a 3D table whose axes are vehicle speed in m/s, ride
// height in meters and yaw angle in radians, and whose values are the drag
// coefficient.
func NewAeroMap(table *lut.Table3D) AeroMap {
	return AeroMap{table: table}
}

// At returns the drag coefficient for the given operating point.
func (a AeroMap) At(speed units.MetersPerSecond, rideHeight units.Meters, yaw units.Radians) float64 {
	return a.table.Lookup(float64(speed), float64(rideHeight), float64(yaw))
}

// DragForce returns the aerodynamic drag force for the given operating
// point and frontal area, using standard sea-level air density.
func (a AeroMap) DragForce(speed units.MetersPerSecond, rideHeight units.Meters, yaw units.Radians, frontalArea float64) units.Newtons {
	cd := a.At(speed, rideHeight, yaw)
	v := float64(speed)

	return units.Newtons(0.5 * units.AirDensity * cd * frontalArea * v * v)
}
