package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// tableConfig stands in for the construction-time option targets used by
// the lut and vdmodel packages.
type tableConfig struct {
	capacity int
	label    string
}

func withCapacity(n int) Option[*tableConfig] {
	return New(func(c *tableConfig) error {
		if n <= 0 {
			return errors.New("capacity must be positive")
		}
		c.capacity = n

		return nil
	})
}

func withLabel(label string) Option[*tableConfig] {
	return NoError(func(c *tableConfig) {
		c.label = label
	})
}

func TestNew(t *testing.T) {
	cfg := &tableConfig{}

	require.NoError(t, withCapacity(64).apply(cfg))
	require.Equal(t, 64, cfg.capacity)

	err := withCapacity(-1).apply(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "capacity must be positive")
	require.Equal(t, 64, cfg.capacity)
}

func TestNoError(t *testing.T) {
	cfg := &tableConfig{}

	require.NoError(t, withLabel("engine.torque").apply(cfg))
	require.Equal(t, "engine.torque", cfg.label)
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &tableConfig{}

		err := Apply(cfg,
			withCapacity(8),
			withLabel("first"),
			withLabel("second"),
		)
		require.NoError(t, err)
		require.Equal(t, 8, cfg.capacity)
		require.Equal(t, "second", cfg.label)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &tableConfig{}

		err := Apply(cfg,
			withCapacity(8),
			withCapacity(0),
			withLabel("unreached"),
		)
		require.Error(t, err)
		require.Equal(t, 8, cfg.capacity)
		require.Empty(t, cfg.label)
	})

	t.Run("no options is a no-op", func(t *testing.T) {
		cfg := &tableConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, tableConfig{}, *cfg)
	})
}

func TestGenericTargets(t *testing.T) {
	var n int
	opt := NoError(func(p *int) { *p = 42 })

	require.NoError(t, opt.apply(&n))
	require.Equal(t, 42, n)

	var cfg struct{ strict bool }
	require.NoError(t, NoError(func(c *struct{ strict bool }) { c.strict = true }).apply(&cfg))
	require.True(t, cfg.strict)
}
