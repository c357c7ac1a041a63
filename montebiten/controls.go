package montebiten

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/montecarlo"
)

// TargetPresets are the target sample counts the up and down keys step through.
var TargetPresets = []int{100, 500, 1_000, 5_000, 10_000, 50_000, 100_000}

var rateKeys = map[montecarlo.RateLevel][]ebiten.Key{
	montecarlo.RateVerySlow: {ebiten.KeyDigit1, ebiten.KeyNumpad1},
	montecarlo.RateSlow:     {ebiten.KeyDigit2, ebiten.KeyNumpad2},
	montecarlo.RateMedium:   {ebiten.KeyDigit3, ebiten.KeyNumpad3},
	montecarlo.RateFast:     {ebiten.KeyDigit4, ebiten.KeyNumpad4},
	montecarlo.RateVeryFast: {ebiten.KeyDigit5, ebiten.KeyNumpad5},
}

// controls translates key presses into calls on the Sampler.
type controls struct {
	sampler *montecarlo.Sampler

	// set once the user asked to quit
	exit bool

	showTimings bool

	// notify is called with a short user facing message for every applied or
	// rejected change.
	notify func(message string)
}

func (c *controls) Apply(input KeyInput) {
	if input.IsJustPressed(ebiten.KeyEscape) {
		c.exit = true
		return
	}

	if input.IsJustPressed(ebiten.KeySpace) {
		c.sampler.TogglePause()

		if c.sampler.Paused() {
			c.notify("Paused")
		} else {
			c.notify("Resumed")
		}
	}

	if input.IsJustPressed(ebiten.KeyR) {
		c.sampler.Reset()
		c.notify("Restarted")
	}

	if input.IsJustPressed(ebiten.KeyD) {
		c.showTimings = !c.showTimings
	}

	for _, level := range montecarlo.RateLevels {
		if AnyJustPressed(input, rateKeys[level]...) {
			c.setRate(level)
		}
	}

	switch {
	case input.IsJustPressed(ebiten.KeyArrowUp):
		c.setTarget(StepTarget(c.sampler.Target(), +1))

	case input.IsJustPressed(ebiten.KeyArrowDown):
		c.setTarget(StepTarget(c.sampler.Target(), -1))
	}
}

func (c *controls) setRate(level montecarlo.RateLevel) {
	if err := c.sampler.SetRate(level); err != nil {
		c.reject(err)
		return
	}

	c.notify("Speed: " + level.String())
}

func (c *controls) setTarget(target int) {
	if target == c.sampler.Target() {
		return
	}

	if err := c.sampler.SetTarget(target); err != nil {
		c.reject(err)
		return
	}

	message := "Target: " + formatCount(c.sampler.Target())
	if c.sampler.Complete() {
		message += " (press R to restart)"
	}

	c.notify(message)
}

func (c *controls) reject(err error) {
	slog.Warn("Rejected configuration change", slog.String("error", err.Error()))

	hint := errors.FlattenHints(err)
	if hint == "" {
		hint = err.Error()
	}

	c.notify(hint)
}

// StepTarget returns the next larger (direction > 0) or smaller (direction < 0)
// preset relative to current. It returns current if there is no preset in the
// given direction.
func StepTarget(current, direction int) int {
	if direction > 0 {
		for _, preset := range TargetPresets {
			if preset > current {
				return preset
			}
		}

		return current
	}

	for idx := len(TargetPresets) - 1; idx >= 0; idx-- {
		if TargetPresets[idx] < current {
			return TargetPresets[idx]
		}
	}

	return current
}
