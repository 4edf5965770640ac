package dropdown

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Service coordinates the controls and results panels
type Service struct {
	cfg   Config
	state *State
}

// NewService creates a coordinator with both panels closed
func NewService(cfg Config) *Service {
	if cfg.ControlsPadding < 0 {
		cfg.ControlsPadding = 0
	}
	if cfg.MinQueryLength < 1 {
		cfg.MinQueryLength = DefaultConfig().MinQueryLength
	}
	return &Service{cfg: cfg, state: &State{}}
}

// Visibility derives which panels are shown
func (s *Service) Visibility(in Inputs) Visibility {
	return Visibility{
		Controls: s.state.Controls,
		Results:  s.resultsVisible(in),
	}
}

func (s *Service) resultsVisible(in Inputs) bool {
	if s.state.ResultsDismissed || !in.Focused || in.Query == "" {
		return false
	}
	return in.Results > 0 || in.Pending || utf8.RuneCountInString(in.Query) >= s.cfg.MinQueryLength
}

// ToggleControls flips the controls panel
func (s *Service) ToggleControls() bool {
	s.state.Controls = !s.state.Controls
	return s.state.Controls
}

// Controls reports whether the controls panel is open
func (s *Service) Controls() bool { return s.state.Controls }

// RestoreResults lets the derived results visibility apply again
func (s *Service) RestoreResults() {
	s.state.ResultsDismissed = false
}

// Close collapses every open panel. With nothing open it changes nothing.
func (s *Service) Close(in Inputs) CloseOutcome {
	var out CloseOutcome
	if s.state.Controls {
		s.state.Controls = false
		out.Controls = true
	}
	if s.resultsVisible(in) {
		s.state.ResultsDismissed = true
		out.Results = true
	}
	return out
}

// TargetOffset is where the results panel should sit below the bar
func (s *Service) TargetOffset(controlsHeight int) float64 {
	if !s.state.Controls {
		return 0
	}
	return float64(controlsHeight + s.cfg.ControlsPadding)
}

// Step advances the offset animation one frame toward target.
// It reports whether another frame is needed.
func (s *Service) Step(target float64) bool {
	d := target - s.state.Offset
	if math.Abs(d) <= offsetSnap {
		s.state.Offset = target
		return false
	}
	s.state.Offset += d * offsetLerp
	if math.Abs(target-s.state.Offset) <= offsetSnap {
		s.state.Offset = target
		return false
	}
	return true
}

// Offset returns the current offset rounded to whole rows
func (s *Service) Offset() int {
	return int(math.Round(s.state.Offset))
}

// ArmGuard marks the pointer as interacting with the dropdown.
// The returned sequence must be passed to ReleaseGuard.
func (s *Service) ArmGuard() int {
	s.state.GuardSeq++
	s.state.Guard = true
	return s.state.GuardSeq
}

// ReleaseGuard clears the guard unless it was re-armed since seq
func (s *Service) ReleaseGuard(seq int) {
	if seq == s.state.GuardSeq {
		s.state.Guard = false
	}
}

// Guarded reports whether blur-triggered closing is suppressed
func (s *Service) Guarded() bool { return s.state.Guard }

// Message is the status line under the results panel
func (s *Service) Message(query string, results int, searching bool) string {
	n := utf8.RuneCountInString(query)
	switch {
	case n == 0:
		return ""
	case n < s.cfg.MinQueryLength:
		return fmt.Sprintf(MessageTooShort, s.cfg.MinQueryLength)
	case searching:
		return MessageSearching
	case results == 0:
		return MessageNoMatches
	default:
		return ""
	}
}
