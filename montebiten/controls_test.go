package montebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/montecarlo"
	"github.com/stretchr/testify/require"
)

type pressedKeys []ebiten.Key

func (p pressedKeys) IsJustPressed(key ebiten.Key) bool {
	for _, pressed := range p {
		if pressed == key {
			return true
		}
	}

	return false
}

func newControls(t *testing.T, target int) (*controls, *[]string) {
	t.Helper()

	config := montecarlo.DefaultConfig()
	config.Target = target
	config.Seed = 1

	sampler, err := montecarlo.New(config, nil)
	require.NoError(t, err)

	var messages []string

	c := &controls{
		sampler: sampler,
		notify: func(message string) {
			messages = append(messages, message)
		},
	}

	return c, &messages
}

func TestControls_Pause(t *testing.T) {
	c, messages := newControls(t, 1000)

	c.Apply(pressedKeys{ebiten.KeySpace})
	require.True(t, c.sampler.Paused())

	c.sampler.Advance()
	require.Equal(t, 0, c.sampler.Stats().Generated)

	c.Apply(pressedKeys{ebiten.KeySpace})
	require.False(t, c.sampler.Paused())

	require.Equal(t, []string{"Paused", "Resumed"}, *messages)
}

func TestControls_Reset(t *testing.T) {
	c, _ := newControls(t, 1000)

	c.sampler.Advance()
	c.sampler.Pause()

	c.Apply(pressedKeys{ebiten.KeyR})

	require.Equal(t, 0, c.sampler.Stats().Generated)
	require.False(t, c.sampler.Paused())
}

func TestControls_Rate(t *testing.T) {
	c, messages := newControls(t, 1000)

	c.Apply(pressedKeys{ebiten.KeyDigit5})
	require.Equal(t, montecarlo.RateVeryFast, c.sampler.Rate())

	c.Apply(pressedKeys{ebiten.KeyNumpad1})
	require.Equal(t, montecarlo.RateVerySlow, c.sampler.Rate())

	require.Equal(t, []string{"Speed: Very Fast", "Speed: Very Slow"}, *messages)
}

func TestControls_Target(t *testing.T) {
	c, messages := newControls(t, 10_000)

	c.Apply(pressedKeys{ebiten.KeyArrowUp})
	require.Equal(t, 50_000, c.sampler.Target())

	c.Apply(pressedKeys{ebiten.KeyArrowDown})
	c.Apply(pressedKeys{ebiten.KeyArrowDown})
	require.Equal(t, 5_000, c.sampler.Target())

	require.Equal(t, []string{"Target: 50,000", "Target: 10,000", "Target: 5,000"}, *messages)
}

func TestControls_TargetAfterCompletion(t *testing.T) {
	c, messages := newControls(t, 100)
	require.NoError(t, c.sampler.SetRate(montecarlo.RateVeryFast))

	c.sampler.Advance()
	require.True(t, c.sampler.Complete())

	c.Apply(pressedKeys{ebiten.KeyArrowUp})
	require.Equal(t, 500, c.sampler.Target())
	require.True(t, c.sampler.Complete())

	require.Equal(t, []string{"Target: 500 (press R to restart)"}, *messages)
}

func TestControls_ExitAndTimings(t *testing.T) {
	c, _ := newControls(t, 100)

	c.Apply(pressedKeys{ebiten.KeyD})
	require.True(t, c.showTimings)
	require.False(t, c.exit)

	c.Apply(pressedKeys{ebiten.KeyEscape})
	require.True(t, c.exit)
}

func TestStepTarget(t *testing.T) {
	require.Equal(t, 500, StepTarget(100, +1))
	require.Equal(t, 1_000, StepTarget(700, +1))
	require.Equal(t, 500, StepTarget(700, -1))
	require.Equal(t, 100, StepTarget(100, -1))
	require.Equal(t, 100, StepTarget(50, +1))
	require.Equal(t, 100_000, StepTarget(100_000, +1))
	require.Equal(t, 100_000, StepTarget(250_000, -1))
	require.Equal(t, 250_000, StepTarget(250_000, +1))
}
