package montecarlo

import (
	"math"
	"time"
)

type TimerMode uint8

const TimerModeOnce TimerMode = 0
const TimerModeRepeating TimerMode = 1

// Timer is either a one shot or a repeating timer, advanced by explicit calls
// to Tick. The presentation uses it to pace toasts and blinking labels with
// the tick rate of the game loop.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration

	finishedCountInTick uint32
	finished            bool
	mode                TimerMode
}

func NewTimer(duration time.Duration, mode TimerMode) Timer {
	return Timer{
		duration: duration,
		mode:     mode,
	}
}

func NewTimerFromSeconds(seconds float64, mode TimerMode) Timer {
	return NewTimer(time.Duration(seconds*float64(time.Second)), mode)
}

// Tick adds the given amount of time to the Timer.
func (t *Timer) Tick(delta time.Duration) *Timer {
	t.finishedCountInTick = 0

	if t.finished && t.mode == TimerModeOnce {
		return t
	}

	t.elapsed += delta

	if t.elapsed < t.duration || t.duration <= 0 {
		return t
	}

	switch t.mode {
	case TimerModeOnce:
		t.elapsed = t.duration
		t.finished = true
		t.finishedCountInTick = 1

	case TimerModeRepeating:
		t.finishedCountInTick = uint32(min(math.MaxUint32, t.elapsed/t.duration))
		t.elapsed = t.elapsed % t.duration
	}

	return t
}

func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Fraction returns how far the timer has progressed towards its duration,
// starting at 0.
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}

	return float64(t.elapsed) / float64(t.duration)
}

// FractionRemaining is the inverse of Fraction.
func (t *Timer) FractionRemaining() float64 {
	return 1 - t.Fraction()
}

// Finished returns true once a TimerModeOnce timer has reached its duration.
// Repeating timers never finish.
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished returns true if the timer reached its duration during the previous call to Tick.
func (t *Timer) JustFinished() bool {
	return t.finishedCountInTick > 0
}

// TimesFinishedThisTick returns how often the timer reached its duration during the previous call to Tick.
func (t *Timer) TimesFinishedThisTick() int {
	return int(t.finishedCountInTick)
}

func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.finishedCountInTick = 0
}
