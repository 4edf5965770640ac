package interaction

// Service is the interaction state machine. All state changes go through Apply.
type Service struct {
	cfg      Config
	state    State
	focused  bool
	hovering bool
	progress float64
}

// NewService creates a state machine in the normal state
func NewService(cfg Config) *Service {
	d := DefaultConfig()
	if cfg.InflectionPoint <= 0 || cfg.InflectionPoint >= 1 {
		cfg.InflectionPoint = d.InflectionPoint
	}
	if cfg.HysteresisBuffer < 0 || cfg.HysteresisBuffer >= cfg.InflectionPoint {
		cfg.HysteresisBuffer = d.HysteresisBuffer
	}
	return &Service{cfg: cfg, state: StateNormal}
}

// State returns the active state
func (s *Service) State() State { return s.state }

// Focused reports whether the input currently holds focus
func (s *Service) Focused() bool { return s.focused }

// PointerInside reports whether the pointer is over the bar
func (s *Service) PointerInside() bool { return s.hovering }

// Progress returns the last scroll progress seen
func (s *Service) Progress() float64 { return s.progress }

// Config returns the thresholds in use
func (s *Service) Config() Config { return s.cfg }

// Apply feeds one signal through the transition table.
// It returns the transition and true when the state changed.
func (s *Service) Apply(sig Signal) (Transition, bool) {
	from := s.state

	switch sig := sig.(type) {
	case FocusGained:
		s.focused = true
		s.state = StateFocused

	case FocusLost:
		s.focused = false
		if s.progress >= s.cfg.InflectionPoint {
			s.state = StateScrolled
		} else {
			s.state = StateNormal
		}

	case PointerEnter:
		s.hovering = true
		if !s.focused && s.state == StateScrolled {
			s.state = StateHovering
		}

	case PointerLeave:
		s.hovering = false
		if !s.focused && s.state == StateHovering {
			s.state = StateScrolled
		}

	case ScrollTick:
		s.progress = clamp01(sig.Progress)
		if sig.Momentum {
			// no scroll-driven transition during a momentum burst
			break
		}
		s.applyThreshold()

	case ExternalShrinkRequest:
		if !s.focused {
			s.state = StateScrolled
		}
	}

	if s.state == from {
		return Transition{}, false
	}
	return Transition{From: from, To: s.state, Cause: sig.String()}, true
}

// applyThreshold crosses normal/scrolled only outside the hysteresis band
func (s *Service) applyThreshold() {
	enter := s.cfg.InflectionPoint + s.cfg.HysteresisBuffer
	leave := s.cfg.InflectionPoint - s.cfg.HysteresisBuffer

	switch s.state {
	case StateNormal:
		if s.progress >= enter {
			s.state = StateScrolled
		}
	case StateScrolled:
		if s.progress <= leave && !s.hovering {
			s.state = StateNormal
		}
	}
}

// IconOpacity is the opacity of the secondary icons.
// Full while focused or hovered, fading to 0 between 30% and 70% of the way to the inflection point.
func (s *Service) IconOpacity() float64 {
	if s.state == StateFocused || s.state == StateHovering || s.hovering {
		return 1
	}
	t := s.progress / s.cfg.InflectionPoint
	switch {
	case t <= iconFadeStart:
		return 1
	case t >= iconFadeEnd:
		return 0
	default:
		return 1 - (t-iconFadeStart)/(iconFadeEnd-iconFadeStart)
	}
}

// Container returns the bar's scale and opacity.
// Full size while focused, hovered or while a dropdown is open; otherwise it
// shrinks with progress down to MinScale and MinOpacity.
func (s *Service) Container(dropdownOpen bool) (scale, opacity float64) {
	if s.state == StateFocused || s.state == StateHovering || s.hovering || dropdownOpen {
		return 1, 1
	}
	t := clamp01(s.progress / s.cfg.InflectionPoint)
	return 1 - (1-MinScale)*t, 1 - (1-MinOpacity)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
