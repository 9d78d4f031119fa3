package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type windowConfig struct {
	Capacity int
	Running  bool
	Label    string
}

func withCapacity(n int) Option[*windowConfig] {
	return New(func(cfg *windowConfig) error {
		if n < 1 {
			return errors.New("capacity must be at least 1")
		}
		cfg.Capacity = n

		return nil
	})
}

func withRunning(r bool) Option[*windowConfig] {
	return NoError(func(cfg *windowConfig) {
		cfg.Running = r
	})
}

func TestApply(t *testing.T) {
	cfg := &windowConfig{Capacity: 20}

	err := Apply(cfg, withCapacity(64), withRunning(true))
	require.NoError(t, err)
	require.Equal(t, 64, cfg.Capacity)
	require.True(t, cfg.Running)
}

func TestApplyNoOptions(t *testing.T) {
	cfg := &windowConfig{Capacity: 20}

	err := Apply(cfg)
	require.NoError(t, err)
	require.Equal(t, 20, cfg.Capacity)
}

func TestApplyStopsAtFirstError(t *testing.T) {
	cfg := &windowConfig{}

	err := Apply(cfg,
		withRunning(true),
		withCapacity(0), // fails
		NoError(func(c *windowConfig) { c.Label = "never set" }),
	)
	require.Error(t, err)
	require.True(t, cfg.Running, "options before the failing one must be applied")
	require.Empty(t, cfg.Label, "options after the failing one must not run")
}

func TestNoErrorNeverFails(t *testing.T) {
	cfg := &windowConfig{}

	opt := NoError(func(c *windowConfig) { c.Label = "set" })
	require.NoError(t, opt.apply(cfg))
	require.Equal(t, "set", cfg.Label)
}
