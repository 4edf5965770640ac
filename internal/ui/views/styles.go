package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Ghost          lipgloss.Style
	Cursor         lipgloss.Style
	Status         lipgloss.Style
	Panel          lipgloss.Style
	Message        lipgloss.Style
	Help           lipgloss.Style
	Highlight      lipgloss.Style
	SelectionBg    lipgloss.Style
	Method         lipgloss.Style
	Section        lipgloss.Style
	Word           lipgloss.Style
	PartOfSpeech   lipgloss.Style
	Example        lipgloss.Style
	StatusError    lipgloss.Style
	StatusSuccess  lipgloss.Style
	StatusLoading  lipgloss.Style
	BorderFocused  lipgloss.Color
	BorderInactive lipgloss.Color
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Ghost:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Cursor: lipgloss.NewStyle().Reverse(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Message:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:           lipgloss.NewStyle().Faint(true),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Method:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Section:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Word:           lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		PartOfSpeech:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
		Example:        lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		StatusError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusLoading:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		BorderFocused:  lipgloss.Color("99"),
		BorderInactive: lipgloss.Color("241"),
	}
}

// Fade maps an opacity in [0, 1] onto the 256-colour grey ramp.
// Terminals have no alpha channel, so translucency is approximated by brightness.
func Fade(opacity float64) lipgloss.Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return lipgloss.Color(fmt.Sprintf("%d", 232+int(opacity*23+0.5)))
}

// MethodColor returns the colour for a match method badge
func MethodColor(method string) string {
	switch method {
	case "exact":
		return "78" // green
	case "prefix":
		return "33" // blue
	default:
		return "214" // yellow for fuzzy
	}
}
