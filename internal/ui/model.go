package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"lexibar/internal/config"
	"lexibar/internal/domain"
	"lexibar/internal/eventbus"
	"lexibar/internal/ui/coordinator"
	"lexibar/internal/ui/services/navigation"
	"lexibar/internal/ui/views"
)

const (
	placeholder   = "Search words…"
	statusTimeout = 3 * time.Second
)

// swapped in tests
var (
	writeClipboard = clipboard.WriteAll
	statusAfter    = func(d time.Duration, msg tea.Msg) tea.Cmd {
		return tea.Tick(d, func(time.Time) tea.Msg { return msg })
	}
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	ctrl   *coordinator.Controller

	// UI-specific state not owned by the controller
	width       int
	height      int
	input       textinput.Model
	pane        viewport.Model
	help        help.Model
	keys        keyMap
	inPagerMode bool

	status        string
	statusIsError bool
	statusSeq     int

	// what the definition pane currently shows
	shownEntry *domain.Entry
	shownErr   error

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	pager        *Pager
	unsubscribe  []func()

	// looked up once by Init
	initialWord string

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model around a controller
func NewModel(bus eventbus.EventBus, cfg *config.Config, ctrl *coordinator.Controller) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	// the bar draws its own cursor
	ti.Cursor.SetMode(cursor.CursorStatic)

	m := &Model{
		bus:          bus,
		config:       cfg,
		ctrl:         ctrl,
		input:        ti,
		pane:         viewport.New(80, 20),
		help:         help.New(),
		keys:         newKeyMap(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
	}
	ctrl.SetControlsHeight(views.ControlsHeight)
	m.pane.SetContent(m.renderer.RenderWelcome())
	return m
}

// SetProgram sets the program reference for terminal management
// and forwards the domain events the status line reports.
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPager(p)
	if m.bus == nil || p == nil {
		return
	}
	forward := func(e eventbus.DomainEvent) { p.Send(EventMsg{Event: e}) }
	for _, t := range []eventbus.EventType{eventbus.EventDictionaryReloaded, eventbus.EventSearchFailed} {
		m.unsubscribe = append(m.unsubscribe, m.bus.Subscribe(t, forward))
	}
}

// SetInitialWord sets a word to look up as soon as the program starts
func (m *Model) SetInitialWord(word string) {
	m.initialWord = word
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if m.initialWord == "" {
		return m.ctrl.Init()
	}
	return tea.Batch(m.ctrl.Init(), m.ctrl.Lookup(m.initialWord, domain.LookupFromCommandLine))
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		if m.ctrl.InputFocused() {
			return m, m.sync(m.handleFocusedKey(msg))
		}
		return m, m.sync(m.handleKey(msg))

	case tea.MouseMsg:
		if m.inPagerMode {
			return m, nil
		}
		return m, m.sync(m.handleMouse(msg))

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, m.statusTimer()

	case pagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err), true)
			return m, m.statusTimer()
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Copy failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("Copied %q", msg.word), false)
		}
		return m, m.statusTimer()

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusIsError = false
		}
		return m, nil
	}

	if cmd, ok := m.ctrl.Update(msg); ok {
		return m, m.sync(cmd)
	}

	// cursor blink and anything else the input wants
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	scale, opacity := m.ctrl.Container()
	vis := m.ctrl.Visibility()
	start, end := m.ctrl.Navigation.Visible()

	var suggestions []string
	if m.config.UI.ShowSuggestions {
		suggestions = m.ctrl.Suggestions()
	}

	return views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Query:         m.ctrl.Query(),
		Cursor:        m.ctrl.Cursor(),
		Ghost:         m.ctrl.Ghost(),
		Focused:       m.ctrl.InputFocused(),
		Placeholder:   placeholder,
		Scale:         scale,
		Opacity:       opacity,
		IconOpacity:   m.ctrl.IconOpacity(),
		ShowResults:   vis.Results,
		ShowControls:  vis.Controls,
		Offset:        m.ctrl.Dropdown.Offset(),
		Results:       m.ctrl.Results(),
		Selected:      m.ctrl.Selection(),
		VisibleStart:  start,
		VisibleEnd:    end,
		Message:       m.ctrl.Message(),
		Suggestions:   suggestions,
		KeyHints:      m.help.View(m.keys),
		Definition:    m.pane.View(),
		StatusMessage: m.status,
		StatusIsError: m.statusIsError,
		StateLabel:    m.ctrl.State().String(),
		Progress:      m.ctrl.Progress(),
	}
}

// handleFocusedKey routes keys while the search bar holds focus
func (m *Model) handleFocusedKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.Escape):
		return m.ctrl.Escape()
	case key.Matches(msg, m.keys.Up):
		m.ctrl.Move(navigation.DirectionUp)
		return nil
	case key.Matches(msg, m.keys.Down):
		m.ctrl.Move(navigation.DirectionDown)
		return nil
	case key.Matches(msg, m.keys.Enter):
		return m.ctrl.Enter()
	case key.Matches(msg, m.keys.Tab):
		cmd, _ := m.ctrl.Tab()
		return cmd
	case key.Matches(msg, m.keys.Controls):
		return m.ctrl.ToggleControls()
	case key.Matches(msg, m.keys.Space):
		if cmd, ok := m.ctrl.Space(); ok {
			return cmd
		}
	case key.Matches(msg, m.keys.Right):
		if cmd, ok := m.ctrl.Right(); ok {
			return cmd
		}
	case msg.String() == "pgup":
		return m.scrollTo(m.pane.YOffset - m.pane.Height)
	case msg.String() == "pgdown":
		return m.scrollTo(m.pane.YOffset + m.pane.Height)
	}
	return m.typeKey(msg)
}

// typeKey lets the text input edit the query and reports the change to the controller
func (m *Model) typeKey(msg tea.KeyMsg) tea.Cmd {
	before := m.input.Value()
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)

	if value := m.input.Value(); value != before {
		return tea.Batch(inputCmd, m.ctrl.SetQuery(value, m.input.Position()))
	}
	if m.input.Position() != m.ctrl.Cursor() {
		m.ctrl.SetCursor(m.input.Position())
	}
	return inputCmd
}

// handleKey routes keys while the definition pane has focus
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.ForceQuit):
		return m.quit()
	case key.Matches(msg, m.keys.Focus):
		return m.ctrl.Focus()
	case key.Matches(msg, m.keys.Escape):
		return m.ctrl.Escape()
	case key.Matches(msg, m.keys.ScrollUp):
		return m.scrollTo(m.pane.YOffset - 1)
	case key.Matches(msg, m.keys.ScrollDown):
		return m.scrollTo(m.pane.YOffset + 1)
	case key.Matches(msg, m.keys.PageUp):
		return m.scrollTo(m.pane.YOffset - m.pane.Height)
	case key.Matches(msg, m.keys.PageDown):
		return m.scrollTo(m.pane.YOffset + m.pane.Height)
	case key.Matches(msg, m.keys.Top):
		return m.scrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		return m.scrollTo(m.pane.TotalLineCount())
	case key.Matches(msg, m.keys.Pager):
		if e := m.ctrl.Entry(); e != nil {
			return m.openPager(m.renderer.RenderEntry(*e, m.width))
		}
		m.setStatus("Nothing to page yet", false)
		return m.statusTimer()
	case key.Matches(msg, m.keys.Copy):
		return m.copyWord()
	case key.Matches(msg, m.keys.Help):
		return m.openPager(m.helpRenderer.RenderHelpContent(m.keys))
	}
	return nil
}

// scrollTo moves the definition pane and reports the new position to the controller
func (m *Model) scrollTo(y int) tea.Cmd {
	before := m.pane.YOffset
	m.pane.SetYOffset(y)
	if m.pane.YOffset == before {
		return nil
	}
	return m.reportScroll()
}

func (m *Model) reportScroll() tea.Cmd {
	return m.ctrl.OnScroll(float64(m.pane.YOffset), m.pane.TotalLineCount(), m.pane.Height)
}

// sync copies the controller's query, cursor and focus into the input and refreshes the pane
func (m *Model) sync(cmd tea.Cmd) tea.Cmd {
	if m.input.Value() != m.ctrl.Query() {
		m.input.SetValue(m.ctrl.Query())
	}
	if m.input.Position() != m.ctrl.Cursor() {
		m.input.SetCursor(m.ctrl.Cursor())
	}

	var focusCmd tea.Cmd
	switch {
	case m.ctrl.InputFocused() && !m.input.Focused():
		focusCmd = m.input.Focus()
	case !m.ctrl.InputFocused() && m.input.Focused():
		m.input.Blur()
	}

	m.refreshPane(false)
	return tea.Batch(cmd, focusCmd)
}

// refreshPane re-renders the definition pane when the entry or the width changed
func (m *Model) refreshPane(force bool) {
	entry, err := m.ctrl.Entry(), m.ctrl.LookupError()
	if !force && entry == m.shownEntry && err == m.shownErr {
		return
	}
	changed := entry != m.shownEntry || err != m.shownErr
	m.shownEntry, m.shownErr = entry, err

	switch {
	case err != nil:
		m.pane.SetContent(m.renderer.RenderLookupError(m.ctrl.Query(), err))
	case entry != nil:
		m.pane.SetContent(m.renderer.RenderEntry(*entry, m.width))
	default:
		m.pane.SetContent(m.renderer.RenderWelcome())
	}
	if changed {
		m.pane.GotoTop()
	}
}

func (m *Model) resize() {
	l := views.ComputeLayout(views.ViewState{Width: m.width, Height: m.height, Scale: 1})
	m.pane.Width = m.width
	m.pane.Height = l.PaneHeight
	m.refreshPane(true)
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.DictionaryReloadedEvent:
		m.setStatus(fmt.Sprintf("Dictionary reloaded: %d words", e.Words), false)
	case eventbus.SearchFailedEvent:
		m.setStatus(fmt.Sprintf("Search failed: %v", e.Err), true)
	}
}

func (m *Model) setStatus(msg string, isError bool) {
	m.status = msg
	m.statusIsError = isError
	m.statusSeq++
}

func (m *Model) statusTimer() tea.Cmd {
	return statusAfter(statusTimeout, statusClearMsg{seq: m.statusSeq})
}

func (m *Model) openPager(content string) tea.Cmd {
	m.inPagerMode = true
	pager := m.pager
	return func() tea.Msg {
		return pagerMsg{err: pager.Show(content)}
	}
}

func (m *Model) copyWord() tea.Cmd {
	e := m.ctrl.Entry()
	if e == nil {
		m.setStatus("Nothing to copy yet", false)
		return m.statusTimer()
	}
	word := e.Word
	return func() tea.Msg {
		return clipboardMsg{word: word, err: writeClipboard(word)}
	}
}

func (m *Model) quit() tea.Cmd {
	m.ctrl.Shutdown()
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
	m.unsubscribe = nil
	return tea.Quit
}
