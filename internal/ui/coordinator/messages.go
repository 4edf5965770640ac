package coordinator

import (
	"lexibar/internal/domain"
)

// SearchResultMsg carries a search response back to the controller
type SearchResultMsg struct {
	ID      int
	Query   string
	Results []domain.SearchResult
	Err     error
}

// LookupResultMsg carries a definition lookup back to the controller
type LookupResultMsg struct {
	ID     int
	Word   string
	Source domain.LookupSource
	Entry  domain.Entry
	Err    error
}

// SuggestionsMsg carries the history-based suggestions loaded at mount
type SuggestionsMsg struct {
	Words []string
	Err   error
}

// RestoreMsg carries the last persisted query, read once at mount
type RestoreMsg struct {
	Query  string
	Cursor int
	Err    error
}

// Timer messages. Each carries the generation it was scheduled under and
// is ignored once that generation has been superseded.
type (
	debounceMsg struct {
		seq   int
		query string
	}
	frameMsg    struct{ seq int }
	idleMsg     struct{ seq int }
	cooldownMsg struct{ seq int }
	blurMsg     struct{ seq int }
	guardMsg    struct{ seq int }
	offsetMsg   struct{ seq int }
)
