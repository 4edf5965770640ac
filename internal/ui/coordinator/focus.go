package coordinator

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"lexibar/internal/ui/services/dropdown"
	"lexibar/internal/ui/services/interaction"
)

// Focus gives the input focus. The state becomes focused immediately,
// whatever scroll or momentum is doing.
func (c *Controller) Focus() tea.Cmd {
	c.inputFocused = true
	c.blurSeq++ // a pending blur is abandoned
	c.Dropdown.RestoreResults()
	frame := c.apply(interaction.FocusGained{})

	// a restored query has no results yet
	if len(c.Results()) == 0 && !c.searching &&
		utf8.RuneCountInString(c.query) >= c.cfg.Search.MinQueryLength {
		c.debounceSeq++
		c.searching = true
		return tea.Batch(frame, c.after(c.cfg.Search.Debounce(), debounceMsg{seq: c.debounceSeq, query: c.query}))
	}
	return frame
}

// Blur removes input focus. Open panels close right away unless the pointer
// is interacting with them; the state follows after the blur debounce
// unless focus returns first.
func (c *Controller) Blur() tea.Cmd {
	if !c.inputFocused {
		return nil
	}
	c.inputFocused = false

	var closeCmd tea.Cmd
	if !c.Dropdown.Guarded() {
		_, closeCmd = c.Close()
	}

	c.blurSeq++
	return tea.Batch(closeCmd, c.after(c.cfg.Focus.BlurDebounce(), blurMsg{seq: c.blurSeq}))
}

func (c *Controller) handleBlur(msg blurMsg) tea.Cmd {
	if msg.seq != c.blurSeq || c.inputFocused {
		return nil
	}
	return c.apply(interaction.FocusLost{})
}

// PointerMove reports whether the pointer is over the bar's hit region
func (c *Controller) PointerMove(inside bool) tea.Cmd {
	if inside == c.pointerIn {
		return nil
	}
	c.pointerIn = inside
	if inside {
		return c.apply(interaction.PointerEnter{})
	}
	return c.apply(interaction.PointerLeave{})
}

// requestShrink collapses an unfocused bar
func (c *Controller) requestShrink() tea.Cmd {
	return c.apply(interaction.ExternalShrinkRequest{})
}

// Close collapses the open panels. It never blurs the input.
func (c *Controller) Close() (dropdown.CloseOutcome, tea.Cmd) {
	out := c.Dropdown.Close(c.inputs())
	if out.Controls {
		return out, c.animateOffset()
	}
	return out, nil
}

// Escape closes the open panels, or blurs the input when nothing was open
func (c *Controller) Escape() tea.Cmd {
	out, cmd := c.Close()
	if out.Closed() {
		return cmd
	}
	return c.Blur()
}

// ClickOutside handles a pointer press outside the bar and its panels
func (c *Controller) ClickOutside() tea.Cmd {
	_, cmd := c.Close()
	return tea.Batch(cmd, c.Blur())
}

// ToggleControls opens or closes the controls panel and animates the results offset
func (c *Controller) ToggleControls() tea.Cmd {
	c.Dropdown.ToggleControls()
	return c.animateOffset()
}

// PressDropdown arms the guard for a pointer press inside either panel
func (c *Controller) PressDropdown() tea.Cmd {
	seq := c.Dropdown.ArmGuard()
	return c.after(c.cfg.Focus.InteractionGuard(), guardMsg{seq: seq})
}

func (c *Controller) animateOffset() tea.Cmd {
	c.offsetSeq++
	return c.after(c.cfg.Scroll.Frame(), offsetMsg{seq: c.offsetSeq})
}

func (c *Controller) handleOffset(msg offsetMsg) tea.Cmd {
	if msg.seq != c.offsetSeq {
		return nil
	}
	if !c.Dropdown.Step(c.Dropdown.TargetOffset(c.controlsHeight)) {
		return nil
	}
	return c.after(c.cfg.Scroll.Frame(), offsetMsg{seq: c.offsetSeq})
}
