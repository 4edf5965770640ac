package dictionary

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/sahilm/fuzzy"

	"lexibar/internal/domain"
)

var (
	// ErrNotFound is returned by Define for unknown words
	ErrNotFound = errors.New("word not found")
	// ErrEmptyWord is returned by Define for blank input
	ErrEmptyWord = errors.New("empty word")
)

//go:embed words.toml
var defaultWords []byte

// file is the on-disk dictionary format
type file struct {
	Entries []domain.Entry `toml:"entry"`
}

// Dictionary is an in-memory word list. It is safe for concurrent use and
// can be swapped out wholesale by Replace.
type Dictionary struct {
	mu         sync.RWMutex
	entries    map[string]domain.Entry // keyed by lower-case word
	words      []string                // lower-case, sorted
	maxResults int
}

// New creates a dictionary over entries. maxResults <= 0 means unlimited.
func New(entries []domain.Entry, maxResults int) *Dictionary {
	d := &Dictionary{maxResults: maxResults}
	d.Replace(entries)
	return d
}

// Parse decodes a TOML dictionary
func Parse(data []byte) ([]domain.Entry, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary: %w", err)
	}
	return f.Entries, nil
}

// LoadFile reads a TOML dictionary from path
func LoadFile(path string) ([]domain.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return Parse(data)
}

// LoadDefault returns the built-in word list
func LoadDefault() ([]domain.Entry, error) {
	return Parse(defaultWords)
}

// Open loads path, or the built-in list when path is empty
func Open(path string, maxResults int) (*Dictionary, error) {
	var (
		entries []domain.Entry
		err     error
	)
	if path == "" {
		entries, err = LoadDefault()
	} else {
		entries, err = LoadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return New(entries, maxResults), nil
}

// Replace swaps the word list. Entries with a blank word are skipped; later
// duplicates win.
func (d *Dictionary) Replace(entries []domain.Entry) {
	m := make(map[string]domain.Entry, len(entries))
	for _, e := range entries {
		key := normalize(e.Word)
		if key == "" {
			continue
		}
		e.Word = strings.TrimSpace(e.Word)
		m[key] = e
	}
	words := make([]string, 0, len(m))
	for w := range m {
		words = append(words, w)
	}
	sort.Strings(words)

	d.mu.Lock()
	d.entries = m
	d.words = words
	d.mu.Unlock()
}

// Len returns the number of words
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}

// Words returns the sorted word list
func (d *Dictionary) Words() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, len(d.words))
	for i, w := range d.words {
		out[i] = d.entries[w].Word
	}
	return out
}

// Define returns the entry for word
func (d *Dictionary) Define(ctx context.Context, word string) (domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return domain.Entry{}, err
	}
	key := normalize(word)
	if key == "" {
		return domain.Entry{}, ErrEmptyWord
	}

	d.mu.RLock()
	e, ok := d.entries[key]
	d.mu.RUnlock()
	if !ok {
		return domain.Entry{}, fmt.Errorf("%w: %q", ErrNotFound, strings.TrimSpace(word))
	}
	return e, nil
}

// Search ranks words against query: exact matches score 1, prefix matches
// between 0.5 and 1 by how much of the word the query covers, and fuzzy
// matches up to 0.5 in fuzzy rank order.
func (d *Dictionary) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := normalize(query)
	if q == "" {
		return nil, nil
	}

	d.mu.RLock()
	words := d.words
	entries := d.entries
	d.mu.RUnlock()

	var results []domain.SearchResult
	var rest []string
	for _, w := range words {
		switch {
		case w == q:
			results = append(results, domain.SearchResult{Word: entries[w].Word, Method: domain.MethodExact, Score: 1})
		case strings.HasPrefix(w, q):
			coverage := float64(len(q)) / float64(len(w))
			results = append(results, domain.SearchResult{Word: entries[w].Word, Method: domain.MethodPrefix, Score: 0.5 + 0.5*coverage})
		default:
			rest = append(rest, w)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matches := fuzzy.Find(q, rest)
	for i, m := range matches {
		score := 0.5 * float64(len(matches)-i) / float64(len(matches))
		results = append(results, domain.SearchResult{Word: entries[m.Str].Word, Method: domain.MethodFuzzy, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Word < results[j].Word
	})
	if d.maxResults > 0 && len(results) > d.maxResults {
		results = results[:d.maxResults]
	}
	return results, nil
}

func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
