package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lexibar/internal/domain"
)

// RenderEntry renders a dictionary entry for the definition pane and the pager
func (r *Renderer) RenderEntry(entry domain.Entry, width int) string {
	if width <= 0 {
		width = 80
	}
	body := lipgloss.NewStyle().Width(width - 4)

	var b strings.Builder
	b.WriteString(r.styles.Word.Render(entry.Word))
	b.WriteString("\n\n")

	// senses are grouped under their part of speech, in first-seen order
	var order []string
	groups := make(map[string][]domain.Sense)
	for _, s := range entry.Senses {
		if _, ok := groups[s.PartOfSpeech]; !ok {
			order = append(order, s.PartOfSpeech)
		}
		groups[s.PartOfSpeech] = append(groups[s.PartOfSpeech], s)
	}

	for _, pos := range order {
		if pos != "" {
			b.WriteString(r.styles.PartOfSpeech.Render(pos))
			b.WriteString("\n")
		}
		for i, s := range groups[pos] {
			b.WriteString(fmt.Sprintf("  %d. ", i+1))
			b.WriteString(body.Render(s.Definition))
			b.WriteString("\n")
			if s.Example != "" {
				b.WriteString("     ")
				b.WriteString(r.styles.Example.Render(fmt.Sprintf("%q", s.Example)))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if len(entry.Synonyms) > 0 {
		b.WriteString(r.styles.Section.Render("Synonyms"))
		b.WriteString("\n  ")
		b.WriteString(body.Render(strings.Join(entry.Synonyms, ", ")))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderWelcome is shown in the definition pane before the first lookup
func (r *Renderer) RenderWelcome() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.styles.Title.Render("  lexibar"))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("  Type to search the dictionary. Tab completes, Enter looks up."))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("  Press / to focus the search bar, ctrl+o for recent words."))
	return b.String()
}

// RenderLookupError renders a failed lookup in the definition pane
func (r *Renderer) RenderLookupError(word string, err error) string {
	return r.styles.StatusError.Render(fmt.Sprintf("No definition for %q: %v", word, err))
}
