package montecarlo

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())

	require.Equal(t, 10_000, config.Target)
	require.Equal(t, RateMedium, config.Rate)

	domain := config.Domain()
	require.Equal(t, 500.0, domain.Width())
	require.Equal(t, 500.0, domain.Height())
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]func(c *Config){
		"negative target":   func(c *Config) { c.Target = -5 },
		"rate too low":      func(c *Config) { c.Rate = 0 },
		"rate too high":     func(c *Config) { c.Rate = 6 },
		"zero width":        func(c *Config) { c.Width = 0 },
		"negative height":   func(c *Config) { c.Height = -1 },
		"zero diameter":     func(c *Config) { c.Diameter = 0 },
		"diameter is a NaN": func(c *Config) { c.Diameter = nan() },
	}

	for name, modify := range cases {
		t.Run(name, func(t *testing.T) {
			config := DefaultConfig()
			modify(&config)

			err := config.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidConfiguration))
		})
	}

	t.Run("zero target is valid", func(t *testing.T) {
		config := DefaultConfig()
		config.Target = 0
		require.NoError(t, config.Validate())
	})
}

func nan() float64 {
	var zero float64
	return zero / zero
}
