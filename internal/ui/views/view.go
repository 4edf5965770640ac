package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lexibar/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	// Bar
	Query       string
	Cursor      int
	Ghost       string
	Focused     bool
	Placeholder string
	Scale       float64
	Opacity     float64
	IconOpacity float64

	// Dropdown
	ShowResults  bool
	ShowControls bool
	Offset       int
	Results      []domain.SearchResult
	Selected     int
	VisibleStart int
	VisibleEnd   int
	Message      string
	Suggestions  []string
	KeyHints     string

	// Definition pane and status line
	Definition    string
	StatusMessage string
	StatusIsError bool
	StateLabel    string
	Progress      float64
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	l := ComputeLayout(state)

	lines := make([]string, 0, l.Height)
	lines = append(lines, r.renderBar(state, l)...)

	pane := strings.Split(state.Definition, "\n")
	if len(pane) > l.PaneHeight {
		pane = pane[:l.PaneHeight]
	}
	for len(pane) < l.PaneHeight {
		pane = append(pane, "")
	}

	indent := strings.Repeat(" ", l.BarLeft)
	if l.ControlsHeight > 0 {
		overlay(pane, l.ControlsTop-l.PaneTop, indent, r.renderControls(state, l))
	}
	if state.ShowResults {
		overlay(pane, l.ResultsTop-l.PaneTop, indent, r.renderResults(state, l))
	}

	lines = append(lines, pane...)
	lines = append(lines, r.renderStatus(state, l))
	return strings.Join(lines, "\n")
}

// overlay replaces pane rows starting at top with the panel lines, clipped to the pane
func overlay(pane []string, top int, indent string, panel []string) {
	for i, line := range panel {
		row := top + i
		if row < 0 || row >= len(pane) {
			continue
		}
		pane[row] = indent + line
	}
}

func (r *Renderer) renderStatus(state ViewState, l Layout) string {
	left := ""
	if state.StatusMessage != "" {
		if state.StatusIsError {
			left = r.styles.StatusError.Render(state.StatusMessage)
		} else {
			left = r.styles.Status.Render(state.StatusMessage)
		}
	}

	right := r.styles.Help.Render(fmt.Sprintf("%s %3.0f%%  ? help", state.StateLabel, state.Progress*100))

	gap := l.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}
