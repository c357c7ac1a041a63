package montecarlo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeStats_Empty(t *testing.T) {
	stats := computeStats(0, 0, 100, false)

	require.Equal(t, 0.0, stats.PiEstimate)
	require.Equal(t, math.Pi, stats.AbsoluteError)
	require.Equal(t, 0.0, stats.InsidePercent)
	require.Equal(t, 0.0, stats.Progress)
	require.Equal(t, 0.0, stats.StdError)
}

func TestComputeStats_Estimate(t *testing.T) {
	stats := computeStats(4, 3, 8, false)

	require.Equal(t, 3.0, stats.PiEstimate)
	require.Equal(t, 75.0, stats.InsidePercent)
	require.Equal(t, 0.5, stats.Progress)
	require.InDelta(t, math.Pi-3, stats.AbsoluteError, 1e-12)

	// p = 0.75, n = 4
	require.InDelta(t, 4*math.Sqrt(0.75*0.25/4), stats.StdError, 1e-12)
	require.InDelta(t, 3-1.959964*stats.StdError, stats.Confidence95[0], 1e-5)
	require.InDelta(t, 3+1.959964*stats.StdError, stats.Confidence95[1], 1e-5)
}

func TestComputeStats_ZeroTarget(t *testing.T) {
	stats := computeStats(0, 0, 0, true)
	require.Equal(t, 1.0, stats.Progress)
	require.True(t, stats.Complete)
}
