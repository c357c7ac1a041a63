package montebiten

import (
	"time"

	"github.com/oliverbestmann/montecarlo"
)

const toastDuration = 1500 * time.Millisecond

// toast is a short message that fades out after toastDuration.
type toast struct {
	message string
	timer   montecarlo.Timer
}

func (t *toast) Show(message string) {
	t.message = message
	t.timer = montecarlo.NewTimer(toastDuration, montecarlo.TimerModeOnce)
}

func (t *toast) Tick(delta time.Duration) {
	if t.message == "" {
		return
	}

	if t.timer.Tick(delta).Finished() {
		t.message = ""
	}
}

// Visible returns the current message and its opacity.
func (t *toast) Visible() (string, float32, bool) {
	if t.message == "" {
		return "", 0, false
	}

	// fade out during the last third
	alpha := min(1, 3*t.timer.FractionRemaining())
	return t.message, float32(alpha), true
}

// blinker toggles on and off with a fixed period.
type blinker struct {
	timer montecarlo.Timer
	on    bool
}

func newBlinker(period time.Duration) blinker {
	return blinker{
		timer: montecarlo.NewTimer(period, montecarlo.TimerModeRepeating),
		on:    true,
	}
}

func (b *blinker) Tick(delta time.Duration) {
	if b.timer.Tick(delta).TimesFinishedThisTick()%2 == 1 {
		b.on = !b.on
	}
}

func (b *blinker) Reset() {
	b.timer.Reset()
	b.on = true
}
