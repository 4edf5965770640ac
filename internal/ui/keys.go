package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings for both input modes.
// While the bar is focused most keys are typed into the query.
type keyMap struct {
	// Focused bar
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Tab      key.Binding
	Space    key.Binding
	Right    key.Binding
	Escape   key.Binding
	Controls key.Binding

	// Definition pane
	Focus      key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Pager      key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev")),
		Down:       key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "look up")),
		Tab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
		Space:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "complete + space")),
		Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "complete at end")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Controls:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "recent")),
		Focus:      key.NewBinding(key.WithKeys("/", "i"), key.WithHelp("/", "search")),
		ScrollUp:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down")),
		Top:        key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Pager:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in pager")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy word")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp is shown in the controls panel
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Up, k.Down, k.Escape, k.Controls}
}

// FullHelp is rendered into the help pager
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter, k.Tab, k.Space, k.Right, k.Escape, k.Controls},
		{k.Focus, k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Pager, k.Copy, k.Help, k.Quit, k.ForceQuit},
	}
}
