package lut

import (
	"fmt"
	"math"

	"github.com/openvd/vdkit/errs"
)

// Axis is an immutable, strictly increasing sequence of independent-variable
// breakpoints. It owns the bounded interval search shared by all table
// kinds.
//
// The zero Axis is not usable; axes are obtained from NewAxis or built
// internally by the table constructors.
type Axis struct {
	points []float64
}

// NewAxis validates and copies the given breakpoints into a new Axis.
//
// Returns an error matching errs.ErrInvalidAxis when the breakpoints are
// fewer than 2, not strictly increasing, or not finite. The specific
// sentinels errs.ErrAxisTooShort, errs.ErrNonMonotonicAxis, and
// errs.ErrNonFiniteBreakpoint identify the exact violation.
func NewAxis(points []float64) (Axis, error) {
	if len(points) < 2 {
		return Axis{}, fmt.Errorf("%d breakpoints: %w", len(points), errs.ErrAxisTooShort)
	}

	for i, p := range points {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return Axis{}, fmt.Errorf("breakpoint %d: %w", i, errs.ErrNonFiniteBreakpoint)
		}
		if i > 0 && p <= points[i-1] {
			return Axis{}, fmt.Errorf("breakpoint %d: %w", i, errs.ErrNonMonotonicAxis)
		}
	}

	cp := make([]float64, len(points))
	copy(cp, points)

	return Axis{points: cp}, nil
}

// newNamedAxis builds an axis and prefixes validation errors with the axis
// name, so a failed 3D construction reports which of x/y/z was rejected.
func newNamedAxis(name string, points []float64) (Axis, error) {
	ax, err := NewAxis(points)
	if err != nil {
		return Axis{}, fmt.Errorf("%s axis: %w", name, err)
	}

	return ax, nil
}

// Len returns the number of breakpoints.
func (a Axis) Len() int {
	return len(a.points)
}

// Min returns the first breakpoint.
func (a Axis) Min() float64 {
	return a.points[0]
}

// Max returns the last breakpoint.
func (a Axis) Max() float64 {
	return a.points[len(a.points)-1]
}

// Points returns the breakpoint slice as a read-only view.
// Callers must not modify the returned slice.
func (a Axis) Points() []float64 {
	return a.points
}

// Locate finds the interval enclosing q and the normalized position within
// it. The returned lower index i satisfies 0 <= i <= Len()-2, and the
// fraction f is in [0, 1] with q ≈ points[i] + f*(points[i+1]-points[i])
// for in-range queries.
//
// Locate is total over all float64 inputs. Out-of-range queries clamp:
// q below the first breakpoint yields (0, 0.0) and q above the last yields
// (Len()-2, 1.0). ±Inf clamp like any other out-of-range value. A NaN query
// cannot be ordered against the breakpoints at all and is clamped to the
// low boundary, keeping repeated lookups bit-identical.
//
// Runs in O(log n) with no allocation.
func (a Axis) Locate(q float64) (int, float64) {
	pts := a.points
	n := len(pts)

	// Boundary cases (clamping). The NaN test must come first: every
	// ordered comparison against NaN is false, so NaN would otherwise fall
	// through both boundary checks into the search with an undefined result.
	if math.IsNaN(q) || q <= pts[0] {
		return 0, 0.0
	}
	if q >= pts[n-1] {
		return n - 2, 1.0
	}

	// Binary search for the largest i with pts[i] <= q.
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if pts[mid] <= q {
			lo = mid
		} else {
			hi = mid
		}
	}

	// The interval width is strictly positive (strict monotonicity) and q
	// is strictly inside [pts[lo], pts[hi]), so the fraction is finite and
	// in [0, 1).
	return lo, (q - pts[lo]) / (pts[hi] - pts[lo])
}
