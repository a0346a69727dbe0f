// Package units provides strongly typed physical quantities for vehicle
// dynamics code.
//
// Each quantity is a distinct float64 type carrying its SI unit in the type
// name, so a torque cannot be passed where an angular velocity is expected.
// Conversions to and from non-SI units (km/h, mph, bar, psi, degrees, rpm)
// go through explicit methods. The types compile down to plain float64
// arithmetic with no runtime cost.
package units
