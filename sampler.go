package montecarlo

import (
	"log/slog"

	"github.com/oliverbestmann/montecarlo/gm"
)

// Sample is a single point drawn from the sampling domain.
type Sample struct {
	Position gm.Vec

	// Inside is true if Position lies within the inscribed circle.
	Inside bool
}

// Sampler estimates π by drawing uniformly distributed points from a square
// domain and counting the ones that fall into the inscribed circle.
//
// A Sampler is driven by calling Advance once per tick. It is not safe for
// concurrent use: all calls, including reads of History, must happen on the
// goroutine that calls Advance.
type Sampler struct {
	_ noCopy

	source Source
	domain gm.Rect
	circle gm.Circle

	target int
	rate   RateLevel

	run       int
	generated int
	inside    int
	history   []Sample

	paused        bool
	complete      bool
	justCompleted bool

	messages Messages[PhaseChanged]
}

// New creates a Sampler from the given config. If source is nil, a Source
// seeded with config.Seed is used.
func New(config Config, source Source) (*Sampler, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if source == nil {
		source = NewSource(config.Seed)
	}

	domain := config.Domain()

	return &Sampler{
		source: source,
		domain: domain,
		circle: domain.InscribedCircle(config.Diameter),
		target: config.Target,
		rate:   config.Rate,
	}, nil
}

// Advance generates the next batch of samples and returns the statistics after
// the batch. It does nothing while the Sampler is paused or complete.
//
// A batch holds at most Rate().BatchSize() samples and never exceeds the target.
// Once the target is reached, the Sampler latches as complete and sends a
// PhaseChanged message.
func (s *Sampler) Advance() Stats {
	s.justCompleted = false

	if s.paused || s.complete {
		return s.Stats()
	}

	count := min(s.rate.BatchSize(), s.target-s.generated)

	for range count {
		s.sample()
	}

	if s.generated == s.target {
		previous := s.Phase()
		s.complete = true
		s.justCompleted = true

		stats := s.Stats()

		slog.Debug("Sampling complete",
			slog.Int("generated", stats.Generated),
			slog.Int("inside", stats.Inside),
			slog.Float64("estimate", stats.PiEstimate))

		s.messages.Send(PhaseChanged{From: previous, To: PhaseComplete, Stats: stats})

		return stats
	}

	return s.Stats()
}

func (s *Sampler) sample() {
	position := gm.RandomIn(s.source, s.domain)

	sample := Sample{
		Position: position,
		Inside:   s.circle.Contains(position),
	}

	s.history = append(s.history, sample)
	s.generated += 1

	if sample.Inside {
		s.inside += 1
	}
}

// SetTarget changes the number of samples a run generates, starting with the
// next batch. A negative target is rejected with ErrInvalidConfiguration.
//
// Lowering the target below the number of already generated samples clamps it
// to that number, so that the next call to Advance completes the run.
// Changing the target of a complete run does not resume sampling; the new
// target applies once the Sampler is Reset.
func (s *Sampler) SetTarget(target int) error {
	if err := validateTarget(target); err != nil {
		return err
	}

	if !s.complete && target < s.generated {
		slog.Debug("Clamp target to generated samples",
			slog.Int("requested", target),
			slog.Int("generated", s.generated))

		target = s.generated
	}

	s.target = target
	return nil
}

// SetRate changes the batch size, starting with the next call to Advance.
// Levels outside of RateLevels are rejected with ErrInvalidConfiguration.
func (s *Sampler) SetRate(level RateLevel) error {
	if err := validateRate(level); err != nil {
		return err
	}

	s.rate = level
	return nil
}

// Pause suspends sampling. Pausing a paused Sampler has no effect.
func (s *Sampler) Pause() {
	s.setPaused(true)
}

// Resume continues sampling after Pause. Resuming a running Sampler has no effect.
func (s *Sampler) Resume() {
	s.setPaused(false)
}

// TogglePause pauses a running Sampler and resumes a paused one.
func (s *Sampler) TogglePause() {
	s.setPaused(!s.paused)
}

func (s *Sampler) setPaused(paused bool) {
	previous := s.Phase()
	s.paused = paused
	s.sendPhaseChange(previous)
}

// Reset discards all samples and restarts sampling. Target and rate are kept.
func (s *Sampler) Reset() {
	previous := s.Phase()

	s.run += 1
	s.generated = 0
	s.inside = 0
	s.history = nil
	s.paused = false
	s.complete = false
	s.justCompleted = false

	slog.Debug("Sampler reset",
		slog.Int("target", s.target),
		slog.String("rate", s.rate.String()))

	s.sendPhaseChange(previous)
}

func (s *Sampler) sendPhaseChange(previous Phase) {
	current := s.Phase()
	if current == previous {
		return
	}

	s.messages.Send(PhaseChanged{From: previous, To: current, Stats: s.Stats()})
}

// Stats returns a snapshot of the current statistics.
func (s *Sampler) Stats() Stats {
	return computeStats(s.generated, s.inside, s.target, s.complete)
}

// History returns all samples of the current run in the order they were
// generated. The slice is shared with the Sampler and must not be modified.
// It is only appended to until the next Reset.
func (s *Sampler) History() []Sample {
	return s.history
}

// Run identifies the current run. It starts at zero and is incremented by
// every call to Reset.
func (s *Sampler) Run() int {
	return s.run
}

// Phase returns the current phase, derived from the paused and complete flags.
func (s *Sampler) Phase() Phase {
	return phaseOf(s.paused, s.complete)
}

func (s *Sampler) Paused() bool {
	return s.paused
}

func (s *Sampler) Complete() bool {
	return s.complete
}

// JustCompleted returns true if the previous call to Advance completed the run.
func (s *Sampler) JustCompleted() bool {
	return s.justCompleted
}

func (s *Sampler) Target() int {
	return s.target
}

func (s *Sampler) Rate() RateLevel {
	return s.rate
}

// Domain returns the rectangle samples are drawn from.
func (s *Sampler) Domain() gm.Rect {
	return s.domain
}

// Circle returns the inscribed circle used to classify samples.
func (s *Sampler) Circle() gm.Circle {
	return s.circle
}

// Messages returns the queue of phase changes. The driver of the Sampler is
// expected to call Update on it once per tick.
func (s *Sampler) Messages() *Messages[PhaseChanged] {
	return &s.messages
}
