package navigation

import (
	"strings"

	"lexibar/internal/domain"
)

// Service handles selection over the result list
type Service struct {
	state   *State
	results []domain.SearchResult
}

// NewService creates a new navigation service showing height rows
func NewService(height int) *Service {
	if height < 1 {
		height = 1
	}
	return &Service{
		state: &State{ViewportHeight: height},
	}
}

// Reset installs a new result list. The selection always returns to 0.
func (s *Service) Reset(results []domain.SearchResult) {
	s.results = results
	s.state.Count = len(results)
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

// Results returns the list being navigated
func (s *Service) Results() []domain.SearchResult {
	return s.results
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns current viewport offset
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns current viewport height
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates viewport height
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.ensureVisible()
}

// Move shifts the selection by one row and scrolls it into view.
// It reports whether the viewport offset changed.
func (s *Service) Move(direction Direction) bool {
	if s.state.Count == 0 {
		return false
	}
	s.state.Cursor = s.clampIndex(s.state.Cursor + int(direction))
	return s.ensureVisible()
}

// SelectCurrent returns the selected result, or false when the list is empty
func (s *Service) SelectCurrent() (domain.SearchResult, bool) {
	if s.state.Cursor < 0 || s.state.Cursor >= len(s.results) {
		return domain.SearchResult{}, false
	}
	return s.results[s.state.Cursor], true
}

// SelectByPointer sets the selection directly without a lookup.
// Out of range indexes are ignored.
func (s *Service) SelectByPointer(index int) bool {
	if index < 0 || index >= s.state.Count {
		return false
	}
	s.state.Cursor = index
	s.ensureVisible()
	return true
}

// Enter resolves the layered Enter key: completion first, then the
// selected result if the list is shown, then the raw query.
func (s *Service) Enter(completion, query string, listShown bool) Action {
	switch {
	case completion != "":
		return ActionAccept
	case listShown && s.state.Count > 0:
		return ActionSelect
	case strings.TrimSpace(query) != "":
		return ActionLookupRaw
	default:
		return ActionNone
	}
}

// Visible returns the index range [start, end) currently in view
func (s *Service) Visible() (int, int) {
	start := s.state.ViewportOffset
	end := start + s.state.ViewportHeight
	if end > s.state.Count {
		end = s.state.Count
	}
	return start, end
}

// Helper methods
func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > s.state.Count-1 {
		return s.state.Count - 1
	}
	return index
}

func (s *Service) ensureVisible() bool {
	old := s.state.ViewportOffset
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
	return old != s.state.ViewportOffset
}
