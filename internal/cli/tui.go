package cli

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"lexibar/internal/dictionary"
	"lexibar/internal/ui"
	"lexibar/internal/ui/coordinator"
)

// runTUI wires the collaborators to the search bar controller and runs the program
func runTUI(ctx context.Context, opts *options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a, err := openApp(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	// one-way mirrors: query and lookups go to the history store.
	// Closing the bus flushes what is still queued.
	a.history.Attach(a.bus)
	a.definer.Attach(a.bus)

	if a.cfg.DictionaryPath != "" {
		w, err := dictionary.NewWatcher(a.dict, a.cfg.DictionaryPath, a.bus)
		if err != nil {
			log.Printf("Dictionary hot reload disabled: %v", err)
		} else {
			defer w.Close()
			go func() {
				if err := w.Run(ctx); err != nil {
					log.Printf("Dictionary watcher stopped: %v", err)
				}
			}()
		}
	}

	ctrl := coordinator.New(coordinator.Options{
		Config:   a.cfg,
		Searcher: a.dict,
		Definer:  a.definer,
		History:  a.history,
		Bus:      a.bus,
	})
	defer ctrl.Shutdown()

	model := ui.NewModel(a.bus, a.cfg, ctrl)
	model.SetInitialWord(opts.word)

	log.Printf("Starting TUI...")
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	model.SetProgram(p)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
