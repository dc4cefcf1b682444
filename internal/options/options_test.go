package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// solverConfig mimics the fit configuration structs options are applied to.
type solverConfig struct {
	MaxIterations int
	Tolerance     float64
	Verbose       bool
}

func (c *solverConfig) setMaxIterations(n int) error {
	if n <= 0 {
		return errors.New("max iterations must be positive")
	}
	c.MaxIterations = n

	return nil
}

func TestOption_New(t *testing.T) {
	t.Run("creates option that can return error", func(t *testing.T) {
		cfg := &solverConfig{}
		opt := New(func(c *solverConfig) error {
			return c.setMaxIterations(50)
		})

		require.NoError(t, opt.apply(cfg))
		require.Equal(t, 50, cfg.MaxIterations)
	})

	t.Run("propagates errors from option function", func(t *testing.T) {
		cfg := &solverConfig{}
		opt := New(func(c *solverConfig) error {
			return c.setMaxIterations(0)
		})

		err := opt.apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "must be positive")
	})
}

func TestOption_NoError(t *testing.T) {
	cfg := &solverConfig{}
	opt := NoError(func(c *solverConfig) {
		c.Tolerance = 1e-8
	})

	require.NoError(t, opt.apply(cfg))
	require.Equal(t, 1e-8, cfg.Tolerance)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &solverConfig{}
		err := Apply(cfg,
			New(func(c *solverConfig) error { return c.setMaxIterations(100) }),
			NoError(func(c *solverConfig) { c.Tolerance = 1e-10 }),
			NoError(func(c *solverConfig) { c.Verbose = true }),
		)

		require.NoError(t, err)
		require.Equal(t, 100, cfg.MaxIterations)
		require.Equal(t, 1e-10, cfg.Tolerance)
		require.True(t, cfg.Verbose)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &solverConfig{}
		err := Apply(cfg,
			New(func(c *solverConfig) error { return c.setMaxIterations(10) }),
			New(func(c *solverConfig) error { return c.setMaxIterations(-1) }),
			NoError(func(c *solverConfig) { c.Verbose = true }),
		)

		require.Error(t, err)
		require.Equal(t, 10, cfg.MaxIterations)
		require.False(t, cfg.Verbose) // Later options must not run
	})

	t.Run("works with empty options slice", func(t *testing.T) {
		cfg := &solverConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, solverConfig{}, *cfg)
	})
}

func TestOption_GenericsWithDifferentTypes(t *testing.T) {
	var num int
	opt := NoError(func(n *int) {
		*n = 42
	})

	require.NoError(t, opt.apply(&num))
	require.Equal(t, 42, num)
}
