package lut

import (
	"fmt"

	"github.com/openvd/vdkit/errs"
	"github.com/openvd/vdkit/internal/options"
)

// Table2D is an immutable 2D lookup table for z = f(x, y) with bilinear
// interpolation, e.g. a tire grip map over slip angle and vertical load.
//
// The grid is stored flat in row-major order with the x index outermost:
// grid[ix*ny+iy] is the value at (xAxis[ix], yAxis[iy]).
type Table2D struct {
	xAxis    Axis
	yAxis    Axis
	values   []float64
	ny       int
	observer Observer
}

// New2D creates a 2D lookup table from two axes and a flat value grid of
// size len(xAxis)*len(yAxis). All slices are copied.
//
// Errors (all construction-time, matching under errors.Is):
//   - errs.ErrInvalidAxis on a bad x or y axis (the message names which)
//   - errs.ErrGridSizeMismatch when the grid size is not the axis-length
//     product
//   - errs.ErrNonFiniteValue on a NaN or infinite grid value
func New2D(xAxis, yAxis, grid []float64, opts ...Option) (*Table2D, error) {
	xs, err := newNamedAxis("x", xAxis)
	if err != nil {
		return nil, err
	}
	ys, err := newNamedAxis("y", yAxis)
	if err != nil {
		return nil, err
	}

	expected := xs.Len() * ys.Len()
	if len(grid) != expected {
		return nil, fmt.Errorf("%d grid values, expected %d (%dx%d): %w",
			len(grid), expected, xs.Len(), ys.Len(), errs.ErrGridSizeMismatch)
	}

	if err := checkValues(grid); err != nil {
		return nil, err
	}

	var cfg tableOptions
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Table2D{
		xAxis:    xs,
		yAxis:    ys,
		values:   copyValues(grid),
		ny:       ys.Len(),
		observer: cfg.observer,
	}, nil
}

// Lookup returns the bilinearly interpolated value at (x, y).
//
// Each axis is located independently; the four surrounding grid corners are
// combined with products of the per-axis interpolation weights. Exact at
// any grid node, clamping at the boundaries, never fails, no allocation.
func (t *Table2D) Lookup(x, y float64) float64 {
	ix, fx := t.xAxis.Locate(x)
	iy, fy := t.yAxis.Locate(y)

	base := ix*t.ny + iy
	v00 := t.values[base]
	v01 := t.values[base+1]
	v10 := t.values[base+t.ny]
	v11 := t.values[base+t.ny+1]

	gx, gy := 1-fx, 1-fy
	v := v00*gx*gy + v10*fx*gy + v01*gx*fy + v11*fx*fy

	if t.observer != nil {
		t.observer.Observe2D(x, y, v)
	}

	return v
}

// XAxis returns the first axis.
func (t *Table2D) XAxis() Axis {
	return t.xAxis
}

// YAxis returns the second axis.
func (t *Table2D) YAxis() Axis {
	return t.yAxis
}

// Values returns the flat grid as a read-only view.
// Callers must not modify the returned slice.
func (t *Table2D) Values() []float64 {
	return t.values
}

// Dims returns the grid dimensions (nx, ny).
func (t *Table2D) Dims() (int, int) {
	return t.xAxis.Len(), t.yAxis.Len()
}
