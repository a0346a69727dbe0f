package lut

import (
	"fmt"

	"github.com/openvd/vdkit/errs"
	"github.com/openvd/vdkit/internal/options"
)

// Table3D is an immutable 3D lookup table for w = f(x, y, z) with trilinear
// interpolation, e.g. an aerodynamic coefficient over speed, yaw angle, and
// ride height.
//
// The grid is stored flat with the x index outermost and the z index
// innermost: grid[(ix*ny+iy)*nz+iz] is the value at (xAxis[ix], yAxis[iy],
// zAxis[iz]).
type Table3D struct {
	xAxis    Axis
	yAxis    Axis
	zAxis    Axis
	values   []float64
	ny       int
	nz       int
	observer Observer
}

// New3D creates a 3D lookup table from three axes and a flat value grid of
// size len(xAxis)*len(yAxis)*len(zAxis). All slices are copied.
//
// Errors (all construction-time, matching under errors.Is):
//   - errs.ErrInvalidAxis on a bad x, y, or z axis (the message names which)
//   - errs.ErrGridSizeMismatch when the grid size is not the axis-length
//     product
//   - errs.ErrNonFiniteValue on a NaN or infinite grid value
func New3D(xAxis, yAxis, zAxis, grid []float64, opts ...Option) (*Table3D, error) {
	xs, err := newNamedAxis("x", xAxis)
	if err != nil {
		return nil, err
	}
	ys, err := newNamedAxis("y", yAxis)
	if err != nil {
		return nil, err
	}
	zs, err := newNamedAxis("z", zAxis)
	if err != nil {
		return nil, err
	}

	expected := xs.Len() * ys.Len() * zs.Len()
	if len(grid) != expected {
		return nil, fmt.Errorf("%d grid values, expected %d (%dx%dx%d): %w",
			len(grid), expected, xs.Len(), ys.Len(), zs.Len(), errs.ErrGridSizeMismatch)
	}

	if err := checkValues(grid); err != nil {
		return nil, err
	}

	var cfg tableOptions
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Table3D{
		xAxis:    xs,
		yAxis:    ys,
		zAxis:    zs,
		values:   copyValues(grid),
		ny:       ys.Len(),
		nz:       zs.Len(),
		observer: cfg.observer,
	}, nil
}

// Lookup returns the trilinearly interpolated value at (x, y, z).
//
// Each axis is located independently; the eight surrounding grid corners
// are combined with products of the three per-axis interpolation weights.
// Exact at any grid node, clamping at the boundaries, never fails, no
// allocation.
func (t *Table3D) Lookup(x, y, z float64) float64 {
	ix, fx := t.xAxis.Locate(x)
	iy, fy := t.yAxis.Locate(y)
	iz, fz := t.zAxis.Locate(z)

	// Strides: +1 in y moves nz values, +1 in x moves ny*nz values.
	sy := t.nz
	sx := t.ny * t.nz
	base := ix*sx + iy*sy + iz

	c000 := t.values[base]
	c001 := t.values[base+1]
	c010 := t.values[base+sy]
	c011 := t.values[base+sy+1]
	c100 := t.values[base+sx]
	c101 := t.values[base+sx+1]
	c110 := t.values[base+sx+sy]
	c111 := t.values[base+sx+sy+1]

	gx, gy, gz := 1-fx, 1-fy, 1-fz
	v := c000*gx*gy*gz + c100*fx*gy*gz +
		c010*gx*fy*gz + c110*fx*fy*gz +
		c001*gx*gy*fz + c101*fx*gy*fz +
		c011*gx*fy*fz + c111*fx*fy*fz

	if t.observer != nil {
		t.observer.Observe3D(x, y, z, v)
	}

	return v
}

// XAxis returns the first axis.
func (t *Table3D) XAxis() Axis {
	return t.xAxis
}

// YAxis returns the second axis.
func (t *Table3D) YAxis() Axis {
	return t.yAxis
}

// ZAxis returns the third axis.
func (t *Table3D) ZAxis() Axis {
	return t.zAxis
}

// Values returns the flat grid as a read-only view.
// Callers must not modify the returned slice.
func (t *Table3D) Values() []float64 {
	return t.values
}

// Dims returns the grid dimensions (nx, ny, nz).
func (t *Table3D) Dims() (int, int, int) {
	return t.xAxis.Len(), t.yAxis.Len(), t.zAxis.Len()
}
