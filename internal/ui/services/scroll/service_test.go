package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed(s *Service, startMs int64, positions ...float64) int64 {
	now := startMs
	for _, y := range positions {
		s.OnScroll(y, now)
		now += 16
	}
	return now
}

func TestSmoothedVelocityIsMeanOfLastFiveDeltas(t *testing.T) {
	s := NewService(DefaultConfig())

	v := s.OnScroll(0, 0)
	assert.Equal(t, 0.0, v.Smoothed)
	assert.Equal(t, DirectionNone, v.Direction)

	v = s.OnScroll(4, 16)
	assert.Equal(t, 4.0, v.Instantaneous)
	assert.Equal(t, 2.0, v.Smoothed) // (0 + 4) / 2
	assert.Equal(t, DirectionDown, v.Direction)

	feed(s, 32, 8, 12, 16, 20)
	// window now holds 4,4,4,4,4
	assert.InDelta(t, 4.0, s.Velocity().Smoothed, 1e-9)

	v = s.OnScroll(10, 200)
	assert.Equal(t, DirectionUp, v.Direction)
	assert.Equal(t, 10.0, v.Instantaneous)
	assert.InDelta(t, (4+4+4+4+10)/5.0, v.Smoothed, 1e-9)
}

func TestClearZeroesWindowButKeepsPosition(t *testing.T) {
	s := NewService(DefaultConfig())
	feed(s, 0, 0, 3, 6)
	require.Greater(t, s.Velocity().Smoothed, 0.0)

	s.Clear(100)
	assert.Equal(t, 0.0, s.Velocity().Smoothed)

	v := s.OnScroll(9, 200)
	assert.Equal(t, 3.0, v.Instantaneous, "first delta after clear is measured from the last position")
	assert.Equal(t, 3.0, v.Smoothed)
}

func TestIdleDue(t *testing.T) {
	s := NewService(DefaultConfig())
	assert.False(t, s.IdleDue(1000), "nothing to clear before any scroll")

	s.OnScroll(5, 1000)
	assert.False(t, s.IdleDue(1050))
	assert.True(t, s.IdleDue(1100))

	s.Clear(1100)
	assert.False(t, s.IdleDue(5000))
}

func TestMomentumHysteresis(t *testing.T) {
	cfg := Config{MomentumThreshold: 10, CooldownMs: 150, IdleClearMs: 100}
	s := NewService(cfg)

	// fast fling: 30 lines per frame
	now := feed(s, 0, 0, 30, 60, 90)
	require.True(t, s.InMomentum(now))

	// decaying but still above half the threshold: held, no release scheduled
	s.OnScroll(96, now)
	s.OnScroll(102, now+16)
	s.OnScroll(108, now+32)
	s.OnScroll(114, now+48)
	s.OnScroll(120, now+64)
	assert.InDelta(t, 6.0, s.Velocity().Smoothed, 1e-9)
	assert.True(t, s.InMomentum(now+64))
	assert.Zero(t, s.CooldownUntil())

	// below half but still moving: held, no release scheduled
	s.OnScroll(121, now+80)
	s.OnScroll(122, now+96)
	s.OnScroll(123, now+112)
	require.Less(t, s.Velocity().Smoothed, 5.0)
	assert.Zero(t, s.CooldownUntil())
	assert.True(t, s.InMomentum(now+10_000))

	// settled: the cooldown starts
	s.Clear(now + 200)
	release := s.CooldownUntil()
	require.Equal(t, now+200+150, release)
	assert.True(t, s.InMomentum(release-1))
	assert.False(t, s.InMomentum(release))
}

func TestSlowScrollAfterFlingHoldsMomentum(t *testing.T) {
	s := NewService(Config{MomentumThreshold: 8, CooldownMs: 150, IdleClearMs: 100})

	y := 0.0
	now := int64(0)
	step := func(delta float64) {
		y += delta
		s.OnScroll(y, now)
		now += 16
	}
	for i := 0; i < 6; i++ {
		step(20)
	}
	require.True(t, s.InMomentum(now))

	// steady reading speed, one line per frame, well past any cooldown
	for i := 0; i < 40; i++ {
		step(1)
		assert.True(t, s.InMomentum(now), "frame %d: velocity %.2f", i, s.Velocity().Smoothed)
	}
	assert.Zero(t, s.CooldownUntil())

	// five still frames bring the mean to zero
	for i := 0; i < WindowSize; i++ {
		step(0)
	}
	require.Equal(t, 0.0, s.Velocity().Smoothed)
	release := s.CooldownUntil()
	require.NotZero(t, release)

	// movement during the cooldown cancels it
	step(1)
	assert.Zero(t, s.CooldownUntil())
	assert.True(t, s.InMomentum(release+1000))

	s.Clear(now)
	assert.True(t, s.InMomentum(now+149))
	assert.False(t, s.InMomentum(now+150))
}

func TestMomentumReenteredDuringCooldownCancelsRelease(t *testing.T) {
	s := NewService(Config{MomentumThreshold: 10, CooldownMs: 150, IdleClearMs: 100})
	now := feed(s, 0, 0, 40, 80)
	require.True(t, s.InMomentum(now))

	s.Clear(now)
	require.NotZero(t, s.CooldownUntil())

	s.OnScroll(200, now+20) // single huge delta, mean 120 > 10
	assert.Zero(t, s.CooldownUntil())
	assert.True(t, s.InMomentum(now+10_000))
}

func TestSlowScrollNeverEntersMomentum(t *testing.T) {
	s := NewService(DefaultConfig())
	now := int64(0)
	y := 0.0
	for i := 0; i < 50; i++ {
		y += 3
		s.OnScroll(y, now)
		assert.False(t, s.InMomentum(now))
		now += 16
	}
}
