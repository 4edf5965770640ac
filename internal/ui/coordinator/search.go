package coordinator

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"lexibar/internal/domain"
	"lexibar/internal/eventbus"
)

// SetQuery is called whenever the input text changes.
// The query is mirrored to the bus on every change and a search is debounced.
func (c *Controller) SetQuery(query string, cursor int) tea.Cmd {
	if query == c.query {
		c.cursor = clampCursor(query, cursor)
		return nil
	}
	c.query = query
	c.cursor = clampCursor(query, cursor)
	c.publish(eventbus.QueryChangedEvent{Query: c.query, Cursor: c.cursor})

	c.Dropdown.RestoreResults()
	c.Autocomplete.Refresh(c.query, c.Results())

	// every keystroke supersedes the pending dispatch
	c.debounceSeq++

	if utf8.RuneCountInString(strings.TrimSpace(query)) < c.cfg.Search.MinQueryLength {
		c.cancelInFlightSearch()
		c.searching = false
		c.setResults(nil)
		return nil
	}

	c.searching = true
	return c.after(c.cfg.Search.Debounce(), debounceMsg{seq: c.debounceSeq, query: c.query})
}

// SetCursor moves the input cursor without changing the query
func (c *Controller) SetCursor(cursor int) {
	c.cursor = clampCursor(c.query, cursor)
}

func (c *Controller) handleDebounce(msg debounceMsg) tea.Cmd {
	if msg.seq != c.debounceSeq || msg.query != c.query {
		return nil
	}
	return c.dispatchSearch(msg.query)
}

// dispatchSearch issues a new request and cancels the one in flight
func (c *Controller) dispatchSearch(query string) tea.Cmd {
	if c.searcher == nil {
		c.searching = false
		return nil
	}
	c.cancelInFlightSearch()
	c.searchSeq++
	id := c.searchSeq
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelSearch = cancel
	c.searching = true

	searcher := c.searcher
	return func() tea.Msg {
		results, err := searcher.Search(ctx, query)
		return SearchResultMsg{ID: id, Query: query, Results: results, Err: err}
	}
}

func (c *Controller) cancelInFlightSearch() {
	if c.cancelSearch != nil {
		c.cancelSearch()
		c.cancelSearch = nil
	}
	c.searchSeq++
}

func (c *Controller) handleSearchResult(msg SearchResultMsg) {
	if msg.ID != c.searchSeq || msg.Query != c.query {
		log.Printf("Discarding stale results for %q (request %d, current %d)", msg.Query, msg.ID, c.searchSeq)
		c.publish(eventbus.StaleResultDiscardedEvent{Query: msg.Query, RequestID: msg.ID})
		return
	}
	if c.cancelSearch != nil {
		c.cancelSearch()
		c.cancelSearch = nil
	}
	c.searching = false

	results := msg.Results
	if msg.Err != nil {
		if !errors.Is(msg.Err, context.Canceled) {
			log.Printf("Search for %q failed: %v", msg.Query, msg.Err)
			c.publish(eventbus.SearchFailedEvent{Query: msg.Query, Err: msg.Err})
		}
		results = nil
	}
	if limit := c.cfg.Search.MaxResults; limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	c.setResults(results)
	c.publish(eventbus.SearchCompletedEvent{Query: msg.Query, Count: len(results)})
}

// setResults replaces the result list wholesale
func (c *Controller) setResults(results []domain.SearchResult) {
	var owned []domain.SearchResult
	if len(results) > 0 {
		owned = append(owned, results...)
	}
	c.Navigation.Reset(owned)
	c.Autocomplete.Refresh(c.query, owned)
}

// lookup dispatches a definition lookup and clears the result list
func (c *Controller) lookup(word string, source domain.LookupSource) tea.Cmd {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil
	}

	c.debounceSeq++
	c.cancelInFlightSearch()
	c.searching = false
	c.setResults(nil)
	c.Autocomplete.Clear()
	c.lookupErr = nil

	log.Printf("Lookup %q (%s)", word, source)
	c.publish(eventbus.LookupRequestedEvent{Word: word, Source: source})

	if c.definer == nil {
		return nil
	}
	if c.cancelLookup != nil {
		c.cancelLookup()
	}
	c.lookupSeq++
	id := c.lookupSeq
	ctx, cancel := context.WithCancel(c.ctx)
	c.cancelLookup = cancel

	definer := c.definer
	return func() tea.Msg {
		entry, err := definer.Define(ctx, word)
		return LookupResultMsg{ID: id, Word: word, Source: source, Entry: entry, Err: err}
	}
}

// Lookup looks a word up directly, bypassing the input. The word becomes the query.
func (c *Controller) Lookup(word string, source domain.LookupSource) tea.Cmd {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil
	}
	c.setQueryQuiet(word)
	return c.lookup(word, source)
}

func (c *Controller) handleLookupResult(msg LookupResultMsg) tea.Cmd {
	if msg.ID != c.lookupSeq {
		return nil
	}
	if c.cancelLookup != nil {
		c.cancelLookup()
		c.cancelLookup = nil
	}

	if msg.Err != nil {
		log.Printf("Lookup %q failed: %v", msg.Word, msg.Err)
		c.lookupErr = msg.Err
		c.publish(eventbus.LookupFailedEvent{Word: msg.Word, Err: msg.Err})
		return nil
	}

	entry := msg.Entry
	c.entry = &entry
	c.publish(eventbus.LookupCompletedEvent{Entry: entry})

	// the definition takes over the screen: collapse an unfocused bar
	if !c.inputFocused {
		return c.requestShrink()
	}
	return nil
}

func (c *Controller) handleRestore(msg RestoreMsg) tea.Cmd {
	if msg.Err != nil {
		log.Printf("Failed to restore last query: %v", msg.Err)
		return nil
	}
	if c.query != "" || msg.Query == "" {
		return nil
	}
	// seeded from the store: not mirrored back and not searched until focus
	c.query = msg.Query
	c.cursor = clampCursor(msg.Query, msg.Cursor)
	c.Autocomplete.Refresh(c.query, nil)
	return nil
}

func clampCursor(query string, cursor int) int {
	n := utf8.RuneCountInString(query)
	if cursor < 0 {
		return 0
	}
	if cursor > n {
		return n
	}
	return cursor
}
