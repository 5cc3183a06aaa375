package tap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_FirstPressNeverFires(t *testing.T) {
	d := NewDetector(400 * time.Millisecond)

	assert.False(t, d.Press(time.Now()))
}

func TestDetector_SecondPressWithinThreshold(t *testing.T) {
	d := NewDetector(400 * time.Millisecond)
	base := time.Now()

	require.False(t, d.Press(base))
	assert.True(t, d.Press(base.Add(200*time.Millisecond)))
}

func TestDetector_SecondPressOutsideThreshold(t *testing.T) {
	d := NewDetector(400 * time.Millisecond)
	base := time.Now()

	require.False(t, d.Press(base))
	assert.False(t, d.Press(base.Add(500*time.Millisecond)))
}

func TestDetector_ExactThresholdDoesNotFire(t *testing.T) {
	d := NewDetector(400 * time.Millisecond)
	base := time.Now()

	require.False(t, d.Press(base))
	assert.False(t, d.Press(base.Add(400*time.Millisecond)))
}

func TestDetector_EveryPressResetsTheClock(t *testing.T) {
	d := NewDetector(400 * time.Millisecond)
	base := time.Now()

	// A miss still updates lastPress: the window restarts from it
	require.False(t, d.Press(base))
	require.False(t, d.Press(base.Add(500*time.Millisecond)))
	assert.True(t, d.Press(base.Add(800*time.Millisecond)))
}

func TestDetector_RapidTripleTapFiresTwice(t *testing.T) {
	d := NewDetector(400 * time.Millisecond)
	base := time.Now()

	require.False(t, d.Press(base))
	assert.True(t, d.Press(base.Add(300*time.Millisecond)))
	assert.True(t, d.Press(base.Add(600*time.Millisecond)))
}

func TestDetector_ZeroThresholdFallsBackToDefault(t *testing.T) {
	d := NewDetector(0)
	base := time.Now()

	require.False(t, d.Press(base))
	assert.True(t, d.Press(base.Add(DefaultThreshold/2)))
}

func TestDetector_SetThreshold(t *testing.T) {
	d := NewDetector(400 * time.Millisecond)
	base := time.Now()

	require.False(t, d.Press(base))
	d.SetThreshold(100 * time.Millisecond)
	assert.False(t, d.Press(base.Add(200*time.Millisecond)))
	assert.True(t, d.Press(base.Add(250*time.Millisecond)))
}

func TestMonitor_PressSendsSingleToggle(t *testing.T) {
	toggle := make(chan struct{}, 1)
	m := NewMonitor(toggle, 400*time.Millisecond)
	base := time.Now()

	m.press(base)
	m.press(base.Add(100 * time.Millisecond))

	select {
	case <-toggle:
	default:
		t.Fatal("expected a toggle signal")
	}
}

func TestMonitor_DisabledSendsNothing(t *testing.T) {
	toggle := make(chan struct{}, 1)
	m := NewMonitor(toggle, 400*time.Millisecond)
	m.SetEnabled(false)
	base := time.Now()

	m.press(base)
	m.press(base.Add(100 * time.Millisecond))

	select {
	case <-toggle:
		t.Fatal("disabled monitor must not signal")
	default:
	}
}

func TestMonitor_FullChannelDropsSignal(t *testing.T) {
	toggle := make(chan struct{}, 1)
	m := NewMonitor(toggle, 400*time.Millisecond)
	base := time.Now()

	m.press(base)
	m.press(base.Add(50 * time.Millisecond))
	// Channel already holds a signal; the next double tap must not block
	m.press(base.Add(100 * time.Millisecond))
	m.press(base.Add(150 * time.Millisecond))

	assert.Len(t, toggle, 1)
}
