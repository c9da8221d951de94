package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestZeroTimer(t *testing.T) {
	var tm Timer
	assert.Zero(t, tm.Elapsed())
	tm.Stop()
	assert.Zero(t, tm.Duration())
}

func TestElapsedNonNegative(t *testing.T) {
	var tm Timer
	tm.Start()
	tm.Stop()
	assert.GreaterOrEqual(t, tm.Elapsed(), 0.0)
}

func TestElapsedMeasuresInterval(t *testing.T) {
	var tm Timer
	tm.Start()
	time.Sleep(10 * time.Millisecond)
	tm.Stop()

	first := tm.Elapsed()
	assert.GreaterOrEqual(t, first, 0.010)

	// A stopped timer keeps its reading.
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, first, tm.Elapsed())
}

func TestRunningTimerAdvances(t *testing.T) {
	var tm Timer
	tm.Start()
	a := tm.Duration()
	time.Sleep(time.Millisecond)
	assert.Greater(t, tm.Duration(), a)
}

func TestRestartDiscardsPreviousInterval(t *testing.T) {
	var tm Timer
	tm.Start()
	time.Sleep(20 * time.Millisecond)
	tm.Stop()
	tm.Start()
	tm.Stop()
	assert.Less(t, tm.Elapsed(), 0.020)
}

func TestTime(t *testing.T) {
	called := false
	secs := Time(func() { called = true })
	assert.True(t, called)
	assert.GreaterOrEqual(t, secs, 0.0)
}
