package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	searchIcon = "⌕"
	toggleIcon = "≡"
	// below this opacity an icon is not drawn at all
	iconCutoff = 0.05
)

// InputScroll returns the first visible rune of a query so the cursor stays in view
func InputScroll(cursor, width int) int {
	if width < 1 || cursor < width {
		return 0
	}
	return cursor - width + 1
}

// renderBar draws the three bar rows
func (r *Renderer) renderBar(state ViewState, l Layout) []string {
	opacity := state.Opacity
	if opacity <= 0 {
		opacity = 1
	}

	border := r.styles.BorderInactive
	if state.Focused {
		border = r.styles.BorderFocused
	}
	edge := lipgloss.NewStyle().Foreground(border)
	text := lipgloss.NewStyle().Foreground(Fade(opacity))

	inner := l.BarWidth - 2
	indent := strings.Repeat(" ", l.BarLeft)

	top := indent + edge.Render("╭"+strings.Repeat("─", inner)+"╮")
	bottom := indent + edge.Render("╰"+strings.Repeat("─", inner)+"╯")

	icon := text.Render(searchIcon)
	toggle := " "
	if state.IconOpacity > iconCutoff {
		toggle = lipgloss.NewStyle().Foreground(Fade(state.IconOpacity)).Render(toggleIcon)
	}

	input := r.renderInput(state, l.InputWidth(), text)
	gap := l.ToggleX - l.InputX - lipgloss.Width(input)
	if gap < 0 {
		gap = 0
	}

	middle := indent + edge.Render("│") + " " + icon + " " + input +
		strings.Repeat(" ", gap) + toggle + " " + edge.Render("│")

	return []string{top, middle, bottom}
}

// renderInput draws the query with its cursor and the dim ghost completion
func (r *Renderer) renderInput(state ViewState, width int, text lipgloss.Style) string {
	query := []rune(state.Query)
	if len(query) == 0 && !state.Focused {
		return r.styles.Ghost.Render(truncate(state.Placeholder, width))
	}

	cursor := state.Cursor
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(query) {
		cursor = len(query)
	}

	start := InputScroll(cursor, width)
	visible := query[start:]
	cursor -= start

	var b strings.Builder
	used := 0
	for i, ch := range visible {
		if used >= width {
			break
		}
		if state.Focused && i == cursor {
			b.WriteString(r.styles.Cursor.Render(string(ch)))
		} else {
			b.WriteString(text.Render(string(ch)))
		}
		used++
	}

	ghost := []rune(state.Ghost)
	if cursor == len(visible) {
		if state.Focused && used < width {
			if len(ghost) > 0 {
				b.WriteString(r.styles.Cursor.Inherit(r.styles.Ghost).Render(string(ghost[0])))
				ghost = ghost[1:]
			} else {
				b.WriteString(r.styles.Cursor.Render(" "))
			}
			used++
		}
		if len(ghost) > 0 && used < width {
			b.WriteString(r.styles.Ghost.Render(truncate(string(ghost), width-used)))
		}
	}
	return b.String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}
