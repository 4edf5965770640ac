package ui

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"lexibar/internal/ui/views"
)

const wheelLines = 3

// handleMouse maps pointer events onto the bar, the panels and the definition pane
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return m.scrollTo(m.pane.YOffset - wheelLines)
	case tea.MouseButtonWheelDown:
		return m.scrollTo(m.pane.YOffset + wheelLines)
	}

	l := views.ComputeLayout(m.viewState())
	x, y := msg.X, msg.Y

	switch msg.Action {
	case tea.MouseActionMotion:
		cmd := m.ctrl.PointerMove(l.InBar(x, y) || l.InControls(x, y) || l.InResults(x, y))
		if i, ok := l.ResultAt(x, y); ok {
			m.ctrl.HoverResult(i)
		}
		return cmd

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		return m.handleClick(l, x, y)
	}
	return nil
}

func (m *Model) handleClick(l views.Layout, x, y int) tea.Cmd {
	if i, ok := l.ResultAt(x, y); ok {
		return m.ctrl.PressResult(i)
	}
	if word, ok := l.SuggestionAt(x, y); ok {
		return tea.Batch(m.ctrl.PressDropdown(), m.ctrl.SetQuery(word, utf8.RuneCountInString(word)))
	}
	if l.InResults(x, y) || l.InControls(x, y) {
		return m.ctrl.PressDropdown()
	}

	if !l.InBar(x, y) {
		return m.ctrl.ClickOutside()
	}

	var focus tea.Cmd
	if !m.ctrl.InputFocused() {
		focus = m.ctrl.Focus()
	}
	if l.OnToggle(x, y) {
		return tea.Batch(focus, m.ctrl.ToggleControls())
	}

	pos := l.InputColumn(x, views.InputScroll(m.ctrl.Cursor(), l.InputWidth()))
	if cmd, ok := m.ctrl.MoveCursor(pos); ok {
		return tea.Batch(focus, cmd)
	}
	m.ctrl.SetCursor(pos)
	return focus
}
