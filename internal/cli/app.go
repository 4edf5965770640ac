package cli

import (
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"lexibar/internal/config"
	"lexibar/internal/dictionary"
	"lexibar/internal/eventbus"
	"lexibar/internal/history"
)

// app holds the collaborators every command needs
type app struct {
	bus     eventbus.EventBus
	cfg     *config.Config
	dict    *dictionary.Dictionary
	definer *dictionary.CachedDefiner
	history *history.Store
}

// openApp loads the config, then opens the dictionary and the history
// database concurrently. Flags override the config file.
func openApp(opts *options) (*app, error) {
	bus := eventbus.New()

	cfg, err := config.NewConfigServiceWithBus(bus, opts.configPath).Load()
	if err != nil {
		bus.Close()
		return nil, err
	}
	if opts.dictPath != "" {
		cfg.DictionaryPath = opts.dictPath
	}
	if opts.historyPath != "" {
		cfg.HistoryPath = opts.historyPath
	}

	a := &app{bus: bus, cfg: cfg}

	var g errgroup.Group
	g.Go(func() error {
		d, err := dictionary.Open(cfg.DictionaryPath, cfg.Search.MaxResults)
		if err != nil {
			return fmt.Errorf("failed to open dictionary: %w", err)
		}
		a.dict = d
		return nil
	})
	g.Go(func() error {
		s, err := history.Open(cfg.HistoryPath)
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		a.history = s
		return nil
	})
	if err := g.Wait(); err != nil {
		a.Close()
		return nil, err
	}

	a.definer = dictionary.NewCachedDefiner(
		a.dict,
		cfg.Search.CacheTTL(),
		float64(cfg.Search.LookupsPerSecond),
		cfg.Search.LookupBurst,
	)
	log.Printf("Dictionary loaded: %d words from %s", a.dict.Len(), sourceName(cfg.DictionaryPath))
	return a, nil
}

// Close stops the bus, letting queued events reach the history, then closes the database
func (a *app) Close() {
	a.bus.Close()
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			log.Printf("Failed to close history: %v", err)
		}
	}
}

func sourceName(path string) string {
	if path == "" {
		return "built-in list"
	}
	return path
}
