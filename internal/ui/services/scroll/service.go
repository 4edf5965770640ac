package scroll

import "math"

// Service turns a stream of coalesced scroll positions into a smoothed velocity
// and a momentum flag. It is a pure function of its window and the input stream.
type Service struct {
	cfg   Config
	state *State
}

// NewService creates a new scroll signal processor
func NewService(cfg Config) *Service {
	return &Service{
		cfg:   cfg.applyDefaults(),
		state: &State{},
	}
}

// OnScroll processes one frame's scroll position.
// Callers coalesce all events of a frame into a single call with the latest position.
func (s *Service) OnScroll(scrollY float64, nowMs int64) Velocity {
	st := s.state

	var delta float64
	direction := DirectionNone
	if st.HasLast {
		diff := scrollY - st.LastY
		delta = math.Abs(diff)
		switch {
		case diff > 0:
			direction = DirectionDown
		case diff < 0:
			direction = DirectionUp
		}
	}
	st.LastY = scrollY
	st.HasLast = true
	st.LastEventMs = nowMs

	st.Deltas[st.Next] = delta
	st.Next = (st.Next + 1) % WindowSize
	if st.Count < WindowSize {
		st.Count++
	}

	st.Velocity = Velocity{
		Instantaneous: delta,
		Smoothed:      s.mean(),
		Direction:     direction,
	}
	s.updateMomentum(nowMs)

	return st.Velocity
}

// Clear empties the window and zeroes the smoothed velocity: scrolling has stopped.
// The last position is kept so the next burst measures its first delta correctly.
func (s *Service) Clear(nowMs int64) {
	st := s.state
	st.Deltas = [WindowSize]float64{}
	st.Count = 0
	st.Next = 0
	st.Velocity = Velocity{}
	s.updateMomentum(nowMs)
}

// IdleDue reports whether the idle period has elapsed since the last processed frame
func (s *Service) IdleDue(nowMs int64) bool {
	return s.state.Count > 0 && nowMs-s.state.LastEventMs >= s.cfg.IdleClearMs
}

// InMomentum reports the momentum flag at nowMs, releasing it once the cooldown has elapsed
func (s *Service) InMomentum(nowMs int64) bool {
	st := s.state
	if st.Momentum && st.CooldownUntilMs > 0 && nowMs >= st.CooldownUntilMs {
		st.Momentum = false
		st.CooldownUntilMs = 0
	}
	return st.Momentum
}

// CooldownUntil returns when a pending momentum release completes, or 0
func (s *Service) CooldownUntil() int64 {
	return s.state.CooldownUntilMs
}

// Velocity returns the last computed velocity
func (s *Service) Velocity() Velocity {
	return s.state.Velocity
}

// Reset forgets all history, including the last position
func (s *Service) Reset() {
	s.state = &State{}
}

// Config returns the effective configuration
func (s *Service) Config() Config {
	return s.cfg
}

func (s *Service) mean() float64 {
	st := s.state
	if st.Count == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < st.Count; i++ {
		sum += st.Deltas[i]
	}
	return sum / float64(st.Count)
}

// updateMomentum applies the hysteresis band: enter above the threshold,
// hold until velocity is under half of it and has settled to zero, then
// release after the cooldown. Movement during the cooldown restarts it at
// the next standstill.
func (s *Service) updateMomentum(nowMs int64) {
	st := s.state
	smoothed := st.Velocity.Smoothed

	switch {
	case smoothed > s.cfg.MomentumThreshold:
		st.Momentum = true
		st.CooldownUntilMs = 0
	case !st.Momentum:
	case smoothed == 0:
		if st.CooldownUntilMs == 0 {
			st.CooldownUntilMs = nowMs + s.cfg.CooldownMs
		}
	default:
		st.CooldownUntilMs = 0
	}
}
