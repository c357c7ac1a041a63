package montecarlo

import (
	"strconv"
	"strings"
)

// RateLevel selects how many samples are generated per tick.
type RateLevel int

const (
	RateVerySlow RateLevel = 1
	RateSlow     RateLevel = 2
	RateMedium   RateLevel = 3
	RateFast     RateLevel = 4
	RateVeryFast RateLevel = 5
)

// RateLevels lists all valid levels, slowest first.
var RateLevels = []RateLevel{RateVerySlow, RateSlow, RateMedium, RateFast, RateVeryFast}

var batchSizes = map[RateLevel]int{
	RateVerySlow: 1,
	RateSlow:     5,
	RateMedium:   10,
	RateFast:     50,
	RateVeryFast: 200,
}

var rateLabels = map[RateLevel]string{
	RateVerySlow: "Very Slow",
	RateSlow:     "Slow",
	RateMedium:   "Medium",
	RateFast:     "Fast",
	RateVeryFast: "Very Fast",
}

// MaxBatchSize bounds the number of samples a single tick can generate.
const MaxBatchSize = 200

func (r RateLevel) Valid() bool {
	_, ok := batchSizes[r]
	return ok
}

// BatchSize returns the number of samples generated per tick at this level.
// Invalid levels have a batch size of zero.
func (r RateLevel) BatchSize() int {
	return batchSizes[r]
}

func (r RateLevel) String() string {
	label, ok := rateLabels[r]
	if !ok {
		return "RateLevel(" + strconv.Itoa(int(r)) + ")"
	}

	return label
}

func validateRate(level RateLevel) error {
	if level.Valid() {
		return nil
	}

	return invalidConfiguration(
		"use a level between 1 (very slow) and 5 (very fast)",
		"rate level %d", int(level),
	)
}

// ParseRateLevel parses either the numeric level ("3") or its label
// ("medium", "very-fast", "Very Fast").
func ParseRateLevel(value string) (RateLevel, error) {
	value = strings.TrimSpace(value)

	if n, err := strconv.Atoi(value); err == nil {
		level := RateLevel(n)
		if err := validateRate(level); err != nil {
			return 0, err
		}

		return level, nil
	}

	normalized := normalizeLabel(value)
	for _, level := range RateLevels {
		if normalizeLabel(level.String()) == normalized {
			return level, nil
		}
	}

	return 0, invalidConfiguration(
		"use one of: very-slow, slow, medium, fast, very-fast",
		"rate level %q", value,
	)
}

func normalizeLabel(value string) string {
	value = strings.ToLower(value)
	value = strings.ReplaceAll(value, "-", "")
	value = strings.ReplaceAll(value, "_", "")
	value = strings.ReplaceAll(value, " ", "")
	return value
}
