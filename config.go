package montecarlo

import (
	"github.com/oliverbestmann/montecarlo/gm"
)

// Config holds the initial configuration of a Sampler.
type Config struct {
	// Target is the number of samples a run generates before it completes.
	Target int

	// Rate selects the batch size per tick.
	Rate RateLevel

	// Width and Height define the sampling domain [0, Width) × [0, Height).
	Width  float64
	Height float64

	// Diameter of the circle inscribed in the domain. Points with a distance of at
	// most Diameter/2 to the domain center are classified as inside.
	Diameter float64

	// Seed of the default random source. A zero value picks a random seed.
	Seed uint64
}

// DefaultConfig returns a 500×500 domain with an inscribed circle of the same
// diameter, sampling 10,000 points at medium rate.
func DefaultConfig() Config {
	return Config{
		Target:   10_000,
		Rate:     RateMedium,
		Width:    500,
		Height:   500,
		Diameter: 500,
	}
}

// Domain returns the sampling domain described by this config.
func (c Config) Domain() gm.Rect {
	return gm.RectWithSize(gm.Vec{X: c.Width, Y: c.Height})
}

func (c Config) Validate() error {
	if err := validateTarget(c.Target); err != nil {
		return err
	}

	if err := validateRate(c.Rate); err != nil {
		return err
	}

	if !(c.Width > 0) || !(c.Height > 0) {
		return invalidConfiguration(
			"the sampling domain needs a positive width and height",
			"domain size %vx%v", c.Width, c.Height,
		)
	}

	if !(c.Diameter > 0) {
		return invalidConfiguration(
			"the circle needs a positive diameter",
			"diameter %v", c.Diameter,
		)
	}

	return nil
}

func validateTarget(target int) error {
	if target >= 0 {
		return nil
	}

	return invalidConfiguration(
		"the target sample count must not be negative",
		"target %d", target,
	)
}
