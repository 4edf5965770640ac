package coordinator

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lexibar/internal/config"
	"lexibar/internal/domain"
	"lexibar/internal/eventbus"
	"lexibar/internal/ui/services/autocomplete"
	"lexibar/internal/ui/services/dropdown"
	"lexibar/internal/ui/services/interaction"
	"lexibar/internal/ui/services/navigation"
	"lexibar/internal/ui/services/scroll"
)

// Searcher is the search collaborator
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

// Definer is the lookup collaborator
type Definer interface {
	Define(ctx context.Context, word string) (domain.Entry, error)
}

// History seeds the bar at mount time
type History interface {
	Suggestions(ctx context.Context, limit int) ([]string, error)
	LastQuery(ctx context.Context) (string, int, error)
}

// Scheduler delivers msg after d. tea.Tick in production, a fake clock in tests.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

// Options configures a Controller
type Options struct {
	Config   *config.Config
	Searcher Searcher
	Definer  Definer
	History  History           // optional
	Bus      eventbus.EventBus // optional
	Now      func() time.Time
	After    Scheduler
}

// Controller is the search bar controller. It composes the scroll, interaction,
// autocomplete, navigation and dropdown services and owns the query.
// All methods must be called from the Bubble Tea update loop.
type Controller struct {
	// Services
	Scroll       *scroll.Service
	Interaction  *interaction.Service
	Autocomplete *autocomplete.Service
	Navigation   *navigation.Service
	Dropdown     *dropdown.Service

	// Dependencies
	cfg      *config.Config
	searcher Searcher
	definer  Definer
	history  History
	bus      eventbus.EventBus
	now      func() time.Time
	after    Scheduler

	// Query state, single writer
	query        string
	cursor       int
	searching    bool
	inputFocused bool
	pointerIn    bool
	suggestions  []string
	entry        *domain.Entry
	lookupErr    error

	// Scroll sampling
	pendingY      float64
	maxScroll     float64
	frameInFlight bool

	// Timer generations
	debounceSeq int
	searchSeq   int
	lookupSeq   int
	frameSeq    int
	idleSeq     int
	cooldownSeq int
	blurSeq     int
	offsetSeq   int

	controlsHeight int

	ctx          context.Context
	stop         context.CancelFunc
	cancelSearch context.CancelFunc
	cancelLookup context.CancelFunc
}

// New creates a controller. Missing clock and scheduler default to real time.
func New(opts Options) *Controller {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	after := opts.After
	if after == nil {
		after = func(d time.Duration, msg tea.Msg) tea.Cmd {
			return tea.Tick(d, func(time.Time) tea.Msg { return msg })
		}
	}

	ctx, stop := context.WithCancel(context.Background())
	return &Controller{
		Scroll: scroll.NewService(scroll.Config{
			MomentumThreshold: cfg.Scroll.MomentumThreshold,
			CooldownMs:        int64(cfg.Scroll.MomentumCooldownMs),
			IdleClearMs:       int64(cfg.Scroll.IdleClearMs),
		}),
		Interaction: interaction.NewService(interaction.Config{
			InflectionPoint:  cfg.Scroll.InflectionPoint,
			HysteresisBuffer: cfg.Scroll.HysteresisBuffer,
		}),
		Autocomplete: autocomplete.NewService(),
		Navigation:   navigation.NewService(cfg.UI.ResultsRows),
		Dropdown: dropdown.NewService(dropdown.Config{
			ControlsPadding: cfg.UI.ControlsPadding,
			MinQueryLength:  cfg.Search.MinQueryLength,
		}),
		cfg:            cfg,
		searcher:       opts.Searcher,
		definer:        opts.Definer,
		history:        opts.History,
		bus:            opts.Bus,
		now:            now,
		after:          after,
		controlsHeight: 1,
		ctx:            ctx,
		stop:           stop,
	}
}

// Init loads history suggestions and the last query
func (c *Controller) Init() tea.Cmd {
	if c.history == nil {
		return nil
	}
	h := c.history
	ctx := c.ctx
	limit := c.cfg.UI.SuggestionCount

	suggestions := func() tea.Msg {
		words, err := h.Suggestions(ctx, limit)
		return SuggestionsMsg{Words: words, Err: err}
	}
	restore := func() tea.Msg {
		q, cur, err := h.LastQuery(ctx)
		return RestoreMsg{Query: q, Cursor: cur, Err: err}
	}
	return tea.Batch(suggestions, restore)
}

// Update handles the controller's own messages.
// It reports false for messages that belong to someone else.
func (c *Controller) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case debounceMsg:
		return c.handleDebounce(msg), true
	case SearchResultMsg:
		c.handleSearchResult(msg)
		return nil, true
	case LookupResultMsg:
		return c.handleLookupResult(msg), true
	case SuggestionsMsg:
		if msg.Err != nil {
			log.Printf("Failed to load suggestions: %v", msg.Err)
			c.suggestions = nil
		} else {
			c.suggestions = msg.Words
		}
		return nil, true
	case RestoreMsg:
		return c.handleRestore(msg), true
	case frameMsg:
		return c.handleFrame(msg), true
	case idleMsg:
		return c.handleIdle(msg), true
	case cooldownMsg:
		return c.handleCooldown(msg), true
	case blurMsg:
		return c.handleBlur(msg), true
	case guardMsg:
		c.Dropdown.ReleaseGuard(msg.seq)
		return nil, true
	case offsetMsg:
		return c.handleOffset(msg), true
	}
	return nil, false
}

// Shutdown cancels in-flight work and invalidates every pending timer
func (c *Controller) Shutdown() {
	c.stop()
	c.debounceSeq++
	c.searchSeq++
	c.lookupSeq++
	c.frameSeq++
	c.idleSeq++
	c.cooldownSeq++
	c.blurSeq++
	c.offsetSeq++
	c.frameInFlight = false
}

// Query returns the current query
func (c *Controller) Query() string { return c.query }

// Cursor returns the input cursor in runes
func (c *Controller) Cursor() int { return c.cursor }

// Results returns the current result list
func (c *Controller) Results() []domain.SearchResult { return c.Navigation.Results() }

// Selection returns the selection index
func (c *Controller) Selection() int { return c.Navigation.GetCursor() }

// Searching reports whether a search is debouncing or in flight
func (c *Controller) Searching() bool { return c.searching }

// InputFocused reports whether the input field holds focus right now.
// The interaction state follows it after the blur debounce.
func (c *Controller) InputFocused() bool { return c.inputFocused }

// State returns the interaction state
func (c *Controller) State() interaction.State { return c.Interaction.State() }

// Suggestions returns the history-based suggestions loaded at mount
func (c *Controller) Suggestions() []string { return c.suggestions }

// Entry returns the last looked up entry, nil before the first lookup
func (c *Controller) Entry() *domain.Entry { return c.entry }

// LookupError returns the last lookup failure, cleared by the next lookup
func (c *Controller) LookupError() error { return c.lookupErr }

// Ghost returns the ghost-text suffix to render after the query
func (c *Controller) Ghost() string { return c.Autocomplete.Ghost(c.query) }

// Visibility returns which dropdown panels are shown
func (c *Controller) Visibility() dropdown.Visibility {
	return c.Dropdown.Visibility(c.inputs())
}

// Message is the status line under the results panel
func (c *Controller) Message() string {
	return c.Dropdown.Message(c.query, len(c.Results()), c.searching)
}

// IconOpacity returns the secondary icon opacity
func (c *Controller) IconOpacity() float64 { return c.Interaction.IconOpacity() }

// Container returns the bar's scale and opacity
func (c *Controller) Container() (float64, float64) {
	return c.Interaction.Container(c.Visibility().Any())
}

// SetControlsHeight tells the controller how tall the controls panel renders
func (c *Controller) SetControlsHeight(h int) {
	if h < 0 {
		h = 0
	}
	c.controlsHeight = h
}

func (c *Controller) inputs() dropdown.Inputs {
	return dropdown.Inputs{
		Focused: c.Interaction.State() == interaction.StateFocused,
		Query:   c.query,
		Results: len(c.Results()),
		Pending: c.searching,
	}
}

// apply feeds one signal to the state machine and handles the transition side effects.
// A frame scheduled under the previous state is superseded by a fresh one, so
// the latest scroll sample is still evaluated under the new state.
func (c *Controller) apply(sig interaction.Signal) tea.Cmd {
	tr, changed := c.Interaction.Apply(sig)
	if !changed {
		return nil
	}
	var frame tea.Cmd
	if c.frameInFlight {
		c.frameSeq++
		frame = c.after(c.cfg.Scroll.Frame(), frameMsg{seq: c.frameSeq})
	}
	log.Printf("Interaction: %s -> %s (%s)", tr.From, tr.To, tr.Cause)
	c.publish(eventbus.InteractionChangedEvent{
		From:  tr.From.String(),
		To:    tr.To.String(),
		Cause: tr.Cause,
	})
	return frame
}

func (c *Controller) publish(e eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}

func (c *Controller) nowMs() int64 {
	return c.now().UnixMilli()
}
