package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ControlsHeight is the number of rows the controls panel occupies
const ControlsHeight = 2

const (
	panelInset      = 1
	recentLabel     = "Recent: "
	recentSeparator = " · "
)

// renderControls draws the recent-lookups row and the key hints row
func (r *Renderer) renderControls(state ViewState, l Layout) []string {
	width := l.BarWidth - panelInset

	var recent string
	if len(state.Suggestions) == 0 {
		recent = r.styles.Dim.Render(recentLabel + "none yet")
	} else {
		words := make([]string, len(state.Suggestions))
		for i, w := range state.Suggestions {
			words[i] = r.styles.Highlight.Render(w)
		}
		recent = r.styles.Dim.Render(recentLabel) + strings.Join(words, r.styles.Dim.Render(recentSeparator))
	}

	pad := strings.Repeat(" ", panelInset)
	return []string{
		pad + fit(recent, width),
		pad + fit(state.KeyHints, width),
	}
}

// renderResults draws the visible result rows followed by the message line
func (r *Renderer) renderResults(state ViewState, l Layout) []string {
	width := l.BarWidth - panelInset
	lines := make([]string, 0, l.ResultRows+1)

	for i := l.FirstResult; i < l.FirstResult+l.ResultRows && i < len(state.Results); i++ {
		res := state.Results[i]
		selected := i == state.Selected

		marker := "  "
		if selected {
			marker = "› "
		}
		word := highlightMatch(res.Word, state.Query, r.styles.Highlight, lipgloss.NewStyle())
		badge := lipgloss.NewStyle().Foreground(lipgloss.Color(MethodColor(res.Method))).Render(res.Method)

		left := marker + word
		gap := width - lipgloss.Width(left) - lipgloss.Width(badge) - 1
		if gap < 1 {
			gap = 1
		}
		line := left + strings.Repeat(" ", gap) + badge + " "

		if selected {
			line = r.styles.SelectionBg.Render(line)
		}
		lines = append(lines, strings.Repeat(" ", panelInset)+line)
	}

	if state.Message != "" {
		lines = append(lines, strings.Repeat(" ", panelInset)+r.styles.Message.Render(state.Message))
	}
	return lines
}

// highlightMatch highlights the first case-insensitive occurrence of query within text
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	if query == "" {
		return normalStyle.Render(text)
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(strings.TrimSpace(query))

	index := strings.Index(lowerText, lowerQuery)
	if index == -1 || lowerQuery == "" || len(lowerText) != len(text) {
		return normalStyle.Render(text)
	}

	before := text[:index]
	match := text[index : index+len(lowerQuery)]
	after := text[index+len(lowerQuery):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}
	return strings.Join(result, "")
}

// fit pads or clips a styled line to width columns
func fit(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return s + strings.Repeat(" ", width-w)
}
