package autocomplete

import (
	"strings"
	"unicode/utf8"

	"lexibar/internal/domain"
)

// Service computes ghost-text completions and applies accept/fill commands.
// It reads results but never changes them.
type Service struct {
	state *State
}

// NewService creates an autocomplete service with no completion
func NewService() *Service {
	return &Service{state: &State{}}
}

// Compute returns the top result's word when it case-insensitively extends
// query, or "" otherwise.
func Compute(query string, results []domain.SearchResult) string {
	if utf8.RuneCountInString(query) < MinQueryLength || len(results) == 0 {
		return ""
	}
	top := results[0].Word
	if utf8.RuneCountInString(top) <= utf8.RuneCountInString(query) {
		return ""
	}
	if !strings.HasPrefix(strings.ToLower(top), strings.ToLower(query)) {
		return ""
	}
	return top
}

// Refresh recomputes the completion after the query or result list changed
func (s *Service) Refresh(query string, results []domain.SearchResult) {
	s.state.Text = Compute(query, results)
	s.state.Dismissed = false
}

// Text returns the active completion, "" when none is shown
func (s *Service) Text() string {
	if s.state.Dismissed {
		return ""
	}
	return s.state.Text
}

// Active reports whether a completion is shown
func (s *Service) Active() bool {
	return s.Text() != ""
}

// Ghost returns the part of the completion past query, for dimmed rendering
func (s *Service) Ghost(query string) string {
	text := s.Text()
	if text == "" {
		return ""
	}
	r := []rune(text)
	n := utf8.RuneCountInString(query)
	if n >= len(r) {
		return ""
	}
	return string(r[n:])
}

// Dismiss hides the completion without changing the query
func (s *Service) Dismiss() {
	s.state.Dismissed = true
}

// Clear drops the completion entirely
func (s *Service) Clear() {
	s.state.Text = ""
	s.state.Dismissed = false
}

// Accept replaces the query with the completion and asks for a lookup
func (s *Service) Accept(query string) (Outcome, bool) {
	out, ok := s.Fill(query)
	if !ok {
		return Outcome{Query: query}, false
	}
	out.Lookup = true
	return out, true
}

// Fill replaces the query with the completion without a lookup
func (s *Service) Fill(query string) (Outcome, bool) {
	text := s.Text()
	if text == "" {
		return Outcome{Query: query}, false
	}
	s.Clear()
	return Outcome{Query: text}, true
}

// Space fills the completion and appends a single space.
// It reports false when there is no completion, in which case the key is not consumed.
func (s *Service) Space(query string) (Outcome, bool) {
	out, ok := s.Fill(query)
	if !ok {
		return out, false
	}
	out.Query += " "
	return out, true
}

// RequestCursor handles a cursor move to pos, counted in runes.
// A position past the end of query lies inside the ghost text and fills it.
func (s *Service) RequestCursor(query string, pos int) (Outcome, bool) {
	if pos <= utf8.RuneCountInString(query) {
		return Outcome{Query: query}, false
	}
	return s.Fill(query)
}
