package montecarlo

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestRateLevel_BatchSize(t *testing.T) {
	expected := map[RateLevel]int{1: 1, 2: 5, 3: 10, 4: 50, 5: 200}

	for level, batchSize := range expected {
		require.True(t, level.Valid())
		require.Equal(t, batchSize, level.BatchSize())
		require.LessOrEqual(t, level.BatchSize(), MaxBatchSize)
	}

	require.False(t, RateLevel(0).Valid())
	require.Equal(t, 0, RateLevel(6).BatchSize())
}

func TestRateLevel_String(t *testing.T) {
	require.Equal(t, "Very Slow", RateVerySlow.String())
	require.Equal(t, "Medium", RateMedium.String())
	require.Equal(t, "Very Fast", RateVeryFast.String())
	require.Equal(t, "RateLevel(7)", RateLevel(7).String())
}

func TestParseRateLevel(t *testing.T) {
	valid := map[string]RateLevel{
		"1":         RateVerySlow,
		" 4 ":       RateFast,
		"medium":    RateMedium,
		"Very Fast": RateVeryFast,
		"very-slow": RateVerySlow,
		"very_fast": RateVeryFast,
		"SLOW":      RateSlow,
	}

	for value, expected := range valid {
		level, err := ParseRateLevel(value)
		require.NoError(t, err, value)
		require.Equal(t, expected, level, value)
	}

	for _, value := range []string{"0", "6", "", "ludicrous"} {
		_, err := ParseRateLevel(value)
		require.True(t, errors.Is(err, ErrInvalidConfiguration), value)
		require.NotEmpty(t, errors.FlattenHints(err))
	}
}
