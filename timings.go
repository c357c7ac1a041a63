package montecarlo

import (
	"time"
)

// Timings aggregates measured durations of a repeated operation.
type Timings struct {
	Count         int
	Latest        time.Duration
	MovingAverage time.Duration
	Min, Max      time.Duration
}

func (t Timings) Add(d time.Duration) Timings {
	t.Latest = d

	if t.Count == 0 {
		t.Min = d
		t.Max = d
		t.MovingAverage = d
	} else {
		t.Min = min(t.Min, d)
		t.Max = max(t.Max, d)
		t.MovingAverage = (95*t.MovingAverage + 5*d) / 100
	}

	t.Count += 1

	return t
}

// TimingStats keeps Timings by name, in the order the names were first measured.
type TimingStats struct {
	ByName map[string]Timings
	Order  []string
}

func NewTimingStats() TimingStats {
	return TimingStats{
		ByName: map[string]Timings{},
	}
}

// Measure starts a stopwatch for the named operation. Calling Stop on the
// returned value records the elapsed time.
func (t *TimingStats) Measure(name string) TimingStopwatch {
	startTime := time.Now()

	if _, ok := t.ByName[name]; !ok {
		t.Order = append(t.Order, name)
	}

	return TimingStopwatch{
		Stop: func() {
			duration := time.Since(startTime)
			t.ByName[name] = t.ByName[name].Add(duration)
		},
	}
}

type TimingStopwatch struct {
	Stop func()
}
