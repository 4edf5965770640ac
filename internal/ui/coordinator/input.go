package coordinator

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"lexibar/internal/domain"
	"lexibar/internal/eventbus"
	"lexibar/internal/ui/services/autocomplete"
	"lexibar/internal/ui/services/navigation"
)

// Tab fills the ghost text into the query.
// It reports false when there was nothing to fill.
func (c *Controller) Tab() (tea.Cmd, bool) {
	out, ok := c.Autocomplete.Fill(c.query)
	if !ok {
		return nil, false
	}
	return c.applyOutcome(out), true
}

// Space fills the ghost text and appends a space.
// It reports false when the key should be typed normally.
func (c *Controller) Space() (tea.Cmd, bool) {
	out, ok := c.Autocomplete.Space(c.query)
	if !ok {
		return nil, false
	}
	return c.applyOutcome(out), true
}

// Right moves the cursor one position right. Past the end of the typed text it fills the ghost text.
func (c *Controller) Right() (tea.Cmd, bool) {
	return c.MoveCursor(c.cursor + 1)
}

// MoveCursor requests a cursor position, e.g. from a click in the input.
// A position inside the ghost text fills it; otherwise it reports false
// and the input handles the move itself.
func (c *Controller) MoveCursor(pos int) (tea.Cmd, bool) {
	out, ok := c.Autocomplete.RequestCursor(c.query, pos)
	if !ok {
		return nil, false
	}
	return c.applyOutcome(out), true
}

// Move moves the selection. The ghost text is dismissed so Enter picks the selected row.
func (c *Controller) Move(direction navigation.Direction) bool {
	if len(c.Results()) == 0 {
		return false
	}
	c.Navigation.Move(direction)
	c.Autocomplete.Dismiss()
	return true
}

// HoverResult previews a row under the pointer without looking it up
func (c *Controller) HoverResult(index int) {
	if c.Navigation.SelectByPointer(index) {
		c.Autocomplete.Dismiss()
	}
}

// PressResult handles a pointer press on a result row: the guard is armed,
// the row selected and looked up.
func (c *Controller) PressResult(index int) tea.Cmd {
	guard := c.PressDropdown()
	if !c.Navigation.SelectByPointer(index) {
		return guard
	}
	return tea.Batch(guard, c.selectCurrent())
}

// Enter is layered: completion, then the selected row while the results are
// shown, then the raw query.
func (c *Controller) Enter() tea.Cmd {
	switch c.Navigation.Enter(c.Autocomplete.Text(), c.query, c.Visibility().Results) {
	case navigation.ActionAccept:
		out, ok := c.Autocomplete.Accept(c.query)
		if !ok {
			return nil
		}
		return c.applyOutcome(out)
	case navigation.ActionSelect:
		return c.selectCurrent()
	case navigation.ActionLookupRaw:
		return tea.Batch(c.lookup(c.query, domain.LookupFromRawQuery), c.Blur())
	}
	return nil
}

func (c *Controller) selectCurrent() tea.Cmd {
	r, ok := c.Navigation.SelectCurrent()
	if !ok {
		return nil
	}
	c.setQueryQuiet(r.Word)
	return tea.Batch(c.lookup(r.Word, domain.LookupFromSelection), c.Blur())
}

// applyOutcome installs a query produced by an autocomplete command
func (c *Controller) applyOutcome(out autocomplete.Outcome) tea.Cmd {
	if out.Lookup {
		c.setQueryQuiet(out.Query)
		return tea.Batch(c.lookup(out.Query, domain.LookupFromAutocomplete), c.Blur())
	}
	return c.SetQuery(out.Query, utf8.RuneCountInString(out.Query))
}

// setQueryQuiet sets the query for a lookup without scheduling a search
func (c *Controller) setQueryQuiet(query string) {
	if query == c.query {
		return
	}
	c.query = query
	c.cursor = utf8.RuneCountInString(query)
	c.publish(eventbus.QueryChangedEvent{Query: c.query, Cursor: c.cursor})
}
