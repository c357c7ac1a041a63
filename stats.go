package montecarlo

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// z-score of the two sided 95% interval of the normal distribution
var z95 = distuv.UnitNormal.Quantile(0.975)

// Stats is a snapshot of the running statistics of a Sampler.
type Stats struct {
	Generated int
	Inside    int
	Target    int

	// PiEstimate is 4 * Inside / Generated, or 0 if nothing was generated yet.
	PiEstimate float64

	// AbsoluteError is |π - PiEstimate|.
	AbsoluteError float64

	// InsidePercent is 100 * Inside / Generated, or 0 if nothing was generated yet.
	InsidePercent float64

	// Progress is Generated / Target. It is 1 for a target of zero.
	Progress float64

	// StdError is the standard error of PiEstimate, treating every sample as an
	// independent bernoulli trial.
	StdError float64

	// Confidence95 is the 95% confidence interval around PiEstimate.
	Confidence95 [2]float64

	Complete bool
}

func computeStats(generated, inside, target int, complete bool) Stats {
	stats := Stats{
		Generated: generated,
		Inside:    inside,
		Target:    target,
		Complete:  complete,
		Progress:  1,
	}

	if generated > 0 {
		n := float64(generated)
		p := float64(inside) / n

		stats.PiEstimate = 4 * float64(inside) / n
		stats.InsidePercent = 100 * float64(inside) / n
		stats.StdError = 4 * math.Sqrt(p*(1-p)/n)
	}

	if target > 0 {
		stats.Progress = float64(generated) / float64(target)
	}

	stats.AbsoluteError = math.Abs(math.Pi - stats.PiEstimate)

	stats.Confidence95 = [2]float64{
		stats.PiEstimate - z95*stats.StdError,
		stats.PiEstimate + z95*stats.StdError,
	}

	return stats
}
