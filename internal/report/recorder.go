package report

import (
	"github.com/oliverbestmann/montecarlo"
)

// Point is a single observation of the estimate during a run.
type Point struct {
	Generated int
	Estimate  float64

	// bounds of the 95% confidence interval
	Lower, Upper float64
}

// Recorder keeps a decimated series of the estimate of a run. It never holds
// more than the configured number of points: once full, every other point is
// dropped and only every second following observation is recorded.
type Recorder struct {
	maxPoints int
	stride    int
	seen      int

	points []Point
}

func NewRecorder(maxPoints int) *Recorder {
	return &Recorder{
		maxPoints: max(2, maxPoints),
		stride:    1,
	}
}

// Observe records the given stats if they fall on the current stride.
func (r *Recorder) Observe(stats montecarlo.Stats) {
	r.seen += 1
	if r.seen%r.stride != 0 {
		return
	}

	r.points = append(r.points, Point{
		Generated: stats.Generated,
		Estimate:  stats.PiEstimate,
		Lower:     stats.Confidence95[0],
		Upper:     stats.Confidence95[1],
	})

	if len(r.points) >= r.maxPoints {
		r.decimate()
	}
}

func (r *Recorder) decimate() {
	kept := r.points[:0]
	for idx, point := range r.points {
		if idx%2 == 1 {
			kept = append(kept, point)
		}
	}

	clear(r.points[len(kept):])
	r.points = kept
	r.stride *= 2
}

// Points returns the recorded series, oldest first.
func (r *Recorder) Points() []Point {
	return r.points
}
