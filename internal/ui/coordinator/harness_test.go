package coordinator

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lexibar/internal/config"
	"lexibar/internal/domain"
)

type fakeSearcher struct {
	mu      sync.Mutex
	calls   []string
	results map[string][]domain.SearchResult
	err     error
}

func (f *fakeSearcher) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[query], nil
}

type fakeDefiner struct {
	words []string
	err   error
}

func (f *fakeDefiner) Define(ctx context.Context, word string) (domain.Entry, error) {
	f.words = append(f.words, word)
	if f.err != nil {
		return domain.Entry{}, f.err
	}
	return domain.Entry{Word: word, Senses: []domain.Sense{{PartOfSpeech: "noun", Definition: "a test word"}}}, nil
}

type fakeHistory struct {
	suggestions []string
	query       string
	cursor      int
	err         error
}

func (f *fakeHistory) Suggestions(ctx context.Context, limit int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.suggestions, nil
}

func (f *fakeHistory) LastQuery(ctx context.Context) (string, int, error) {
	if f.err != nil {
		return "", 0, f.err
	}
	return f.query, f.cursor, nil
}

type timer struct {
	at  time.Time
	seq int
	msg tea.Msg
}

// harness drives a Controller with a fake clock. Timers fire only when the
// clock is advanced; commands run synchronously.
type harness struct {
	t        *testing.T
	c        *Controller
	now      time.Time
	timers   []timer
	timerSeq int
	searcher *fakeSearcher
	definer  *fakeDefiner

	holdSearches bool
	held         []SearchResultMsg
}

func newHarness(t *testing.T, mutate ...func(*Options)) *harness {
	t.Helper()
	h := &harness{
		t:   t,
		now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		searcher: &fakeSearcher{results: map[string][]domain.SearchResult{
			"ser": results("serene", "serenity", "sergeant"),
			"cat": results("cat", "catalog"),
			"dog": results("dog", "dogma"),
			"flo": results("flourish", "flow", "floe"),
		}},
		definer: &fakeDefiner{},
	}
	opts := Options{
		Config:   config.DefaultConfig(),
		Searcher: h.searcher,
		Definer:  h.definer,
		Now:      func() time.Time { return h.now },
		After: func(d time.Duration, msg tea.Msg) tea.Cmd {
			h.timerSeq++
			h.timers = append(h.timers, timer{at: h.now.Add(d), seq: h.timerSeq, msg: msg})
			return nil
		},
	}
	for _, m := range mutate {
		m(&opts)
	}
	h.c = New(opts)
	t.Cleanup(h.c.Shutdown)
	return h
}

func results(words ...string) []domain.SearchResult {
	out := make([]domain.SearchResult, len(words))
	for i, w := range words {
		out[i] = domain.SearchResult{Word: w, Method: domain.MethodPrefix, Score: 1 - float64(i)*0.1}
	}
	return out
}

func (h *harness) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			h.run(c)
		}
	case SearchResultMsg:
		if h.holdSearches {
			h.held = append(h.held, msg)
			return
		}
		h.deliver(msg)
	default:
		h.deliver(msg)
	}
}

func (h *harness) deliver(msg tea.Msg) {
	cmd, handled := h.c.Update(msg)
	if !handled {
		h.t.Fatalf("controller did not handle %T", msg)
	}
	h.run(cmd)
}

// advance moves the clock forward, firing due timers in order
func (h *harness) advance(d time.Duration) {
	target := h.now.Add(d)
	for {
		sort.SliceStable(h.timers, func(i, j int) bool {
			if h.timers[i].at.Equal(h.timers[j].at) {
				return h.timers[i].seq < h.timers[j].seq
			}
			return h.timers[i].at.Before(h.timers[j].at)
		})
		if len(h.timers) == 0 || h.timers[0].at.After(target) {
			break
		}
		next := h.timers[0]
		h.timers = h.timers[1:]
		if next.at.After(h.now) {
			h.now = next.at
		}
		h.deliver(next.msg)
	}
	h.now = target
}

// typeText types s one character at a time, gap apart
func (h *harness) typeText(s string, gap time.Duration) {
	var b strings.Builder
	for _, r := range s {
		b.WriteRune(r)
		h.run(h.c.SetQuery(b.String(), len([]rune(b.String()))))
		h.advance(gap)
	}
}

func (h *harness) words() []string {
	var out []string
	for _, r := range h.c.Results() {
		out = append(out, r.Word)
	}
	return out
}

var errBackend = errors.New("backend unavailable")
