package lut

import (
	"errors"

	"github.com/openvd/vdkit/internal/options"
)

// Observer watches lookup inputs and outputs.
//
// Implementations must not allocate or block: the observer runs inside the
// simulation hot path. The per-dimensionality methods take fixed scalar
// arguments so no coordinate slice needs to be built per call.
//
// Observers are instrumentation only; they cannot affect the lookup result.
type Observer interface {
	// Observe1D is called after a 1D lookup with the query and its result.
	Observe1D(x, result float64)

	// Observe2D is called after a 2D lookup with the query and its result.
	Observe2D(x, y, result float64)

	// Observe3D is called after a 3D lookup with the query and its result.
	Observe3D(x, y, z, result float64)
}

// NopObserver is an Observer that does nothing. Useful as an embedding base
// for observers that only care about one dimensionality.
type NopObserver struct{}

var _ Observer = NopObserver{}

func (NopObserver) Observe1D(_, _ float64)       {}
func (NopObserver) Observe2D(_, _, _ float64)    {}
func (NopObserver) Observe3D(_, _, _, _ float64) {}

// tableOptions holds the optional construction parameters shared by all
// table kinds.
type tableOptions struct {
	observer Observer
}

// Option configures a table at construction time.
type Option = options.Option[*tableOptions]

// WithObserver attaches an observer to the table being constructed.
// The observer is fixed for the table's lifetime; tables are immutable
// after construction.
func WithObserver(obs Observer) Option {
	return options.New(func(o *tableOptions) error {
		if obs == nil {
			return errors.New("observer must not be nil")
		}
		o.observer = obs

		return nil
	})
}
