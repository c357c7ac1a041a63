package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/oliverbestmann/montecarlo"
	"github.com/stretchr/testify/require"
)

func newSampler(t *testing.T, target int) *montecarlo.Sampler {
	t.Helper()

	config := montecarlo.DefaultConfig()
	config.Target = target
	config.Rate = montecarlo.RateFast
	config.Seed = 7

	sampler, err := montecarlo.New(config, nil)
	require.NoError(t, err)

	return sampler
}

func TestRecorder_Decimates(t *testing.T) {
	recorder := NewRecorder(8)

	for idx := 1; idx <= 100; idx++ {
		recorder.Observe(montecarlo.Stats{Generated: idx})
		require.Less(t, len(recorder.Points()), 8)
	}

	points := recorder.Points()
	require.NotEmpty(t, points)

	for idx := 1; idx < len(points); idx++ {
		require.Greater(t, points[idx].Generated, points[idx-1].Generated)
	}
}

func TestRunHeadless(t *testing.T) {
	sampler := newSampler(t, 1_000)
	recorder := NewRecorder(100)

	result, err := RunHeadless(context.Background(), sampler, recorder)
	require.NoError(t, err)

	require.True(t, result.Stats.Complete)
	require.Equal(t, 1_000, result.Stats.Generated)
	require.Equal(t, 20, result.Ticks)
	require.Equal(t, 20, result.Timings.ByName["advance"].Count)
	require.Len(t, recorder.Points(), 20)
}

func TestRunHeadless_ResumesPausedSampler(t *testing.T) {
	sampler := newSampler(t, 100)
	sampler.Pause()

	result, err := RunHeadless(context.Background(), sampler, nil)
	require.NoError(t, err)
	require.True(t, result.Stats.Complete)
}

func TestRunHeadless_Cancelled(t *testing.T) {
	sampler := newSampler(t, 1_000)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := RunHeadless(ctx, sampler, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, result.Stats.Complete)
	require.Equal(t, 0, result.Ticks)
}

func TestWriteSummary(t *testing.T) {
	sampler := newSampler(t, 500)

	result, err := RunHeadless(context.Background(), sampler, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteSummary(&buf, result)

	output := buf.String()
	require.Contains(t, output, "Monte Carlo estimate of π")
	require.Contains(t, output, "π estimate")
	require.Contains(t, output, "500")
	require.Contains(t, output, "tick avg")
}

func TestWriteChart(t *testing.T) {
	sampler := newSampler(t, 500)
	recorder := NewRecorder(50)

	_, err := RunHeadless(context.Background(), sampler, recorder)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, recorder.Points()))

	output := buf.String()
	require.Contains(t, output, "<html")
	require.Contains(t, output, "Convergence of the")
	require.Contains(t, output, "Estimate")
}
