package montecarlo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimer_Once(t *testing.T) {
	timer := NewTimer(time.Second, TimerModeOnce)

	timer.Tick(400 * time.Millisecond)
	require.False(t, timer.Finished())
	require.InDelta(t, 0.4, timer.Fraction(), 1e-9)

	timer.Tick(700 * time.Millisecond)
	require.True(t, timer.Finished())
	require.True(t, timer.JustFinished())
	require.Equal(t, 1.0, timer.Fraction())

	timer.Tick(time.Second)
	require.True(t, timer.Finished())
	require.False(t, timer.JustFinished())

	timer.Reset()
	require.False(t, timer.Finished())
	require.Equal(t, 0.0, timer.Fraction())
}

func TestTimer_Repeating(t *testing.T) {
	timer := NewTimerFromSeconds(0.5, TimerModeRepeating)

	require.Equal(t, 3, timer.Tick(1750*time.Millisecond).TimesFinishedThisTick())
	require.False(t, timer.Finished())
	require.InDelta(t, 0.5, timer.Fraction(), 1e-9)

	require.False(t, timer.Tick(100*time.Millisecond).JustFinished())
	require.True(t, timer.Tick(200*time.Millisecond).JustFinished())
}
