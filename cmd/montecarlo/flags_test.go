package main

import (
	"flag"
	"log/slog"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/oliverbestmann/montecarlo"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func contextWithArgs(t *testing.T, args ...string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range app.Flags {
		require.NoError(t, f.Apply(set))
	}

	require.NoError(t, set.Parse(args))

	return cli.NewContext(app, set, nil)
}

func TestConfigFromFlags_Defaults(t *testing.T) {
	config, err := configFromFlags(contextWithArgs(t))
	require.NoError(t, err)

	require.Equal(t, montecarlo.DefaultConfig(), config)
}

func TestConfigFromFlags(t *testing.T) {
	ctx := contextWithArgs(t, "--target", "500", "--rate", "very-fast", "--seed", "3", "--size", "300")

	config, err := configFromFlags(ctx)
	require.NoError(t, err)

	require.Equal(t, 500, config.Target)
	require.Equal(t, montecarlo.RateVeryFast, config.Rate)
	require.Equal(t, uint64(3), config.Seed)
	require.Equal(t, 300.0, config.Width)
	require.Equal(t, 300.0, config.Height)
	require.Equal(t, 300.0, config.Diameter)
}

func TestConfigFromFlags_Invalid(t *testing.T) {
	cases := map[string][]string{
		"negative target": {"--target", "-1"},
		"unknown rate":    {"--rate", "warp"},
		"rate too high":   {"--rate", "9"},
		"zero size":       {"--size", "0"},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := configFromFlags(contextWithArgs(t, args...))
			require.True(t, errors.Is(err, montecarlo.ErrInvalidConfiguration))
			require.NotEmpty(t, errors.FlattenHints(err))
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	level, err := parseLogLevel("debug")
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, level)

	level, err = parseLogLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, level)

	_, err = parseLogLevel("loud")
	require.Error(t, err)
	require.NotEmpty(t, errors.FlattenHints(err))
}
