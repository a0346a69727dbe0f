package lut

import (
	"fmt"
	"math"

	"github.com/openvd/vdkit/errs"
)

// lerp linearly interpolates between a and b using the weighted form
// a*(1-f) + b*f. Unlike a+f*(b-a), the weighted form is exact at both
// endpoints (f=0 yields a, f=1 yields b bit-for-bit), which keeps lookups
// exact at the knots.
func lerp(a, b, f float64) float64 {
	return a*(1-f) + b*f
}

// checkValues rejects NaN and infinite dependent values.
func checkValues(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("value %d: %w", i, errs.ErrNonFiniteValue)
		}
	}

	return nil
}

// copyValues copies a value collection into table-owned storage.
func copyValues(values []float64) []float64 {
	cp := make([]float64, len(values))
	copy(cp, values)

	return cp
}
