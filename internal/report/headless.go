package report

import (
	"context"
	"log/slog"

	"github.com/oliverbestmann/montecarlo"
)

// Result of a run without a window.
type Result struct {
	Stats   montecarlo.Stats
	Ticks   int
	Timings montecarlo.TimingStats
}

// RunHeadless advances the sampler tick by tick as fast as possible until it
// completes. A paused sampler is resumed first. Cancelling ctx stops the run between two ticks; the partial
// result is returned together with the context error.
func RunHeadless(ctx context.Context, sampler *montecarlo.Sampler, recorder *Recorder) (Result, error) {
	result := Result{Timings: montecarlo.NewTimingStats()}

	reader := sampler.Messages().Reader()

	if sampler.Paused() {
		sampler.Resume()
	}

	for !sampler.Complete() {
		if err := ctx.Err(); err != nil {
			result.Stats = sampler.Stats()
			return result, err
		}

		stopwatch := result.Timings.Measure("advance")
		stats := sampler.Advance()
		stopwatch.Stop()

		result.Ticks += 1

		if recorder != nil {
			recorder.Observe(stats)
		}

		for _, msg := range reader.Read() {
			slog.Debug("Phase changed",
				slog.String("from", msg.From.String()),
				slog.String("to", msg.To.String()),
				slog.Int("tick", result.Ticks))
		}

		sampler.Messages().Update()
	}

	result.Stats = sampler.Stats()
	return result, nil
}
