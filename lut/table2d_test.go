package lut

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openvd/vdkit/errs"
)

// TestTable2DBilinearCenter covers the reference surface scenario: a 2x2
// grid queried at the cell center weights all four corners by 0.25.
func TestTable2DBilinearCenter(t *testing.T) {
	table, err := New2D(
		[]float64{0, 10},
		[]float64{0, 10},
		[]float64{
			0, 10, // x=0 row: values at y=0, y=10
			10, 20, // x=10 row
		},
	)
	require.NoError(t, err)

	require.Equal(t, 10.0, table.Lookup(5, 5))
}

// TestTable2DGridSizeMismatch verifies a 2x3 grid against 2x2 axes is
// rejected rather than silently truncated or padded.
func TestTable2DGridSizeMismatch(t *testing.T) {
	table, err := New2D(
		[]float64{0, 1},
		[]float64{0, 1},
		make([]float64, 6),
	)
	require.ErrorIs(t, err, errs.ErrGridSizeMismatch)
	require.Nil(t, table)
}

func TestNew2DValidation(t *testing.T) {
	goodAxis := []float64{0, 1}
	goodGrid := []float64{0, 1, 2, 3}

	tests := []struct {
		name    string
		xAxis   []float64
		yAxis   []float64
		grid    []float64
		wantErr error
	}{
		{
			name:    "bad x axis",
			xAxis:   []float64{1, 1},
			yAxis:   goodAxis,
			grid:    goodGrid,
			wantErr: errs.ErrNonMonotonicAxis,
		},
		{
			name:    "bad y axis",
			xAxis:   goodAxis,
			yAxis:   []float64{2, 1},
			grid:    goodGrid,
			wantErr: errs.ErrNonMonotonicAxis,
		},
		{
			name:    "nan grid value",
			xAxis:   goodAxis,
			yAxis:   goodAxis,
			grid:    []float64{0, 1, math.NaN(), 3},
			wantErr: errs.ErrNonFiniteValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New2D(tt.xAxis, tt.yAxis, tt.grid)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestNew2DNamesFailingAxis verifies the error message identifies which axis
// was rejected.
func TestNew2DNamesFailingAxis(t *testing.T) {
	_, err := New2D([]float64{0, 1}, []float64{3, 2}, make([]float64, 4))
	require.ErrorContains(t, err, "y axis")

	_, err = New2D([]float64{1}, []float64{2, 3}, make([]float64, 2))
	require.ErrorContains(t, err, "x axis")
}

// TestTable2DExactAtGridNodes checks every node of a non-square grid,
// which also pins down the x-major flat layout grid[ix*ny+iy].
func TestTable2DExactAtGridNodes(t *testing.T) {
	xAxis := []float64{0, 1, 2}
	yAxis := []float64{10, 20, 30, 40}
	grid := make([]float64, len(xAxis)*len(yAxis))
	for ix := range xAxis {
		for iy := range yAxis {
			grid[ix*len(yAxis)+iy] = float64(100*ix + iy)
		}
	}

	table, err := New2D(xAxis, yAxis, grid)
	require.NoError(t, err)

	for ix, x := range xAxis {
		for iy, y := range yAxis {
			require.Equal(t, float64(100*ix+iy), table.Lookup(x, y), "node (%d,%d)", ix, iy)
		}
	}
}

func TestTable2DClamping(t *testing.T) {
	table, err := New2D(
		[]float64{0, 1},
		[]float64{0, 1},
		[]float64{1, 2, 3, 4},
	)
	require.NoError(t, err)

	// Both coordinates out of range on all four sides.
	require.Equal(t, table.Lookup(0, 0), table.Lookup(-5, -5))
	require.Equal(t, table.Lookup(1, 0), table.Lookup(9, -5))
	require.Equal(t, table.Lookup(0, 1), table.Lookup(-5, 9))
	require.Equal(t, table.Lookup(1, 1), table.Lookup(9, 9))

	// One coordinate in range, one clamped.
	require.Equal(t, table.Lookup(0.5, 1), table.Lookup(0.5, 7))
}

// TestTable2DGripMap interpolates a small tire grip surface and checks a
// hand-computed bilinear blend.
func TestTable2DGripMap(t *testing.T) {
	// slip angle (deg) x vertical load (kN) -> grip coefficient
	table, err := New2D(
		[]float64{0, 5, 10},
		[]float64{2, 4},
		[]float64{
			0.2, 0.15, // slip 0
			1.0, 0.9, // slip 5
			0.8, 0.7, // slip 10
		},
	)
	require.NoError(t, err)

	// At slip=2.5, load=3: corners 0.2/0.15/1.0/0.9, all weights 0.25.
	require.InDelta(t, 0.5625, table.Lookup(2.5, 3), 1e-12)
}

func TestTable2DDims(t *testing.T) {
	table, err := New2D([]float64{0, 1, 2}, []float64{0, 1}, make([]float64, 6))
	require.NoError(t, err)

	nx, ny := table.Dims()
	require.Equal(t, 3, nx)
	require.Equal(t, 2, ny)
}
