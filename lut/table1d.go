package lut

import (
	"fmt"

	"github.com/openvd/vdkit/errs"
	"github.com/openvd/vdkit/internal/options"
)

// Table1D is an immutable 1D lookup table for y = f(x) with linear
// interpolation, e.g. an engine torque curve over RPM.
type Table1D struct {
	axis     Axis
	values   []float64
	observer Observer
}

// New1D creates a 1D lookup table from an axis and its index-aligned value
// sequence: values[i] is the dependent value at axis[i]. Both slices are
// copied.
//
// Errors (all construction-time, matching under errors.Is):
//   - errs.ErrInvalidAxis (ErrAxisTooShort, ErrNonMonotonicAxis,
//     ErrNonFiniteBreakpoint) on a bad axis
//   - errs.ErrLengthMismatch when len(values) != len(axis)
//   - errs.ErrNonFiniteValue on a NaN or infinite value
func New1D(axis, values []float64, opts ...Option) (*Table1D, error) {
	ax, err := newNamedAxis("x", axis)
	if err != nil {
		return nil, err
	}

	if len(values) != ax.Len() {
		return nil, fmt.Errorf("%d values for %d breakpoints: %w",
			len(values), ax.Len(), errs.ErrLengthMismatch)
	}

	if err := checkValues(values); err != nil {
		return nil, err
	}

	var cfg tableOptions
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Table1D{
		axis:     ax,
		values:   copyValues(values),
		observer: cfg.observer,
	}, nil
}

// Lookup returns the linearly interpolated value at x.
//
// Out-of-range queries clamp to the boundary values. Lookup is exact at the
// knots, never fails, and performs no allocation.
func (t *Table1D) Lookup(x float64) float64 {
	i, f := t.axis.Locate(x)
	v := lerp(t.values[i], t.values[i+1], f)

	if t.observer != nil {
		t.observer.Observe1D(x, v)
	}

	return v
}

// XAxis returns the table's axis.
func (t *Table1D) XAxis() Axis {
	return t.axis
}

// Values returns the dependent values as a read-only view.
// Callers must not modify the returned slice.
func (t *Table1D) Values() []float64 {
	return t.values
}

// Len returns the number of sample points.
func (t *Table1D) Len() int {
	return len(t.values)
}
