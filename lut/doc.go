// Package lut provides 1D, 2D, and 3D lookup tables with linear, bilinear,
// and trilinear interpolation for real-time vehicle-dynamics simulation.
//
// Lookup tables are the standard representation of sampled nonlinear
// physical relationships: engine torque over RPM, tire grip over slip and
// load, aerodynamic coefficients over speed, yaw, and ride height. A table
// is built once from validated sample data and then queried millions of
// times from the simulation loop.
//
// # Construction
//
// Each table kind has a single constructor that validates its inputs and
// returns a distinguishable error on malformed data:
//
//	torque, err := lut.New1D(
//	    []float64{1000, 3000, 5000, 7000}, // RPM breakpoints
//	    []float64{180, 320, 290, 220},     // Nm
//	)
//	if err != nil {
//	    return err
//	}
//	nm := torque.Lookup(4200) // 302.0
//
// Axes must be strictly increasing, at least 2 points long, and finite.
// Value collections must match the axis length (1D) or the product of axis
// lengths (2D/3D) and be finite. All failure modes are construction-time;
// see the errs package for the taxonomy.
//
// # Queries
//
// Lookup is a total function over all float64 inputs: out-of-range queries
// clamp to the nearest boundary rather than extrapolating, so a sensor
// reading beyond the sampled domain can never produce a nonsensical
// extrapolated physical quantity. Lookup never fails, never allocates, and
// completes in O(log n) per axis plus O(1) arithmetic, which makes it safe
// inside hard real-time control loops.
//
// # Grid layout
//
// 2D and 3D tables take their grid as a flat row-major slice with the x
// index outermost: grid[ix*ny+iy] is the value at (xAxis[ix], yAxis[iy]),
// and grid[(ix*ny+iy)*nz+iz] is the value at (xAxis[ix], yAxis[iy],
// zAxis[iz]).
//
// # Concurrency
//
// Tables are immutable after construction. Constructors copy their input
// slices, so callers may reuse their buffers. A table published to other
// goroutines after construction may be queried concurrently without
// synchronization.
//
// # Instrumentation
//
// An Observer can be attached at construction with WithObserver to watch
// lookup inputs and outputs, e.g. for telemetry capture during a simulation
// run. The default is no observer, which costs a single nil check per
// lookup.
package lut
