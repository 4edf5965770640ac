package views

import "math"

const (
	barHeight   = 3
	minBarWidth = 24
	// columns taken by the border, the padding and the search icon
	inputInset = 4
)

// Span is a clickable horizontal range on one row
type Span struct {
	Start, End int // [Start, End)
	Word       string
}

// Layout is the screen geometry of one frame, shared by the renderer and mouse hit testing
type Layout struct {
	Width, Height int

	BarLeft  int
	BarWidth int
	InputX   int
	InputEnd int
	ToggleX  int

	ControlsTop    int
	ControlsHeight int // 0 when hidden
	Suggestions    []Span

	ResultsTop  int
	ResultRows  int
	FirstResult int
	MessageRow  int // -1 when there is no message line

	PaneTop    int
	PaneHeight int
	StatusRow  int
}

// ComputeLayout derives the frame geometry from the view state
func ComputeLayout(state ViewState) Layout {
	w := state.Width
	if w <= 0 {
		w = 80
	}
	h := state.Height
	if h <= 0 {
		h = 24
	}

	scale := state.Scale
	if scale <= 0 {
		scale = 1
	}
	bw := int(math.Round(float64(w) * scale))
	if bw < minBarWidth {
		bw = minBarWidth
	}
	if bw > w {
		bw = w
	}

	l := Layout{
		Width:      w,
		Height:     h,
		BarLeft:    (w - bw) / 2,
		BarWidth:   bw,
		PaneTop:    barHeight,
		StatusRow:  h - 1,
		MessageRow: -1,
	}
	l.InputX = l.BarLeft + inputInset
	l.ToggleX = l.BarLeft + bw - 3
	l.InputEnd = l.ToggleX - 1
	l.PaneHeight = l.StatusRow - l.PaneTop
	if l.PaneHeight < 0 {
		l.PaneHeight = 0
	}

	if state.ShowControls {
		l.ControlsTop = l.PaneTop
		l.ControlsHeight = ControlsHeight
		l.Suggestions = suggestionSpans(l.BarLeft+panelInset, state.Suggestions)
	}

	if state.ShowResults {
		l.ResultsTop = l.PaneTop + state.Offset
		l.FirstResult = state.VisibleStart
		l.ResultRows = state.VisibleEnd - state.VisibleStart
		if l.ResultRows < 0 {
			l.ResultRows = 0
		}
		if state.Message != "" {
			l.MessageRow = l.ResultsTop + l.ResultRows
		}
	}
	return l
}

// InBar reports whether (x, y) falls on the search bar
func (l Layout) InBar(x, y int) bool {
	return y >= 0 && y < barHeight && x >= l.BarLeft && x < l.BarLeft+l.BarWidth
}

// OnToggle reports whether (x, y) is the controls toggle icon
func (l Layout) OnToggle(x, y int) bool {
	return y == 1 && x >= l.ToggleX-1 && x <= l.ToggleX+1
}

// InControls reports whether (x, y) falls on the controls panel
func (l Layout) InControls(x, y int) bool {
	return l.ControlsHeight > 0 &&
		y >= l.ControlsTop && y < l.ControlsTop+l.ControlsHeight &&
		x >= l.BarLeft && x < l.BarLeft+l.BarWidth
}

// InResults reports whether (x, y) falls on the results panel, message line included
func (l Layout) InResults(x, y int) bool {
	last := l.ResultsTop + l.ResultRows
	if l.MessageRow >= 0 {
		last++
	}
	return last > l.ResultsTop &&
		y >= l.ResultsTop && y < last &&
		x >= l.BarLeft && x < l.BarLeft+l.BarWidth
}

// ResultAt maps a point to a result index
func (l Layout) ResultAt(x, y int) (int, bool) {
	if !l.InResults(x, y) {
		return 0, false
	}
	row := y - l.ResultsTop
	if row >= l.ResultRows {
		return 0, false
	}
	return l.FirstResult + row, true
}

// SuggestionAt maps a point on the controls panel to a recent word
func (l Layout) SuggestionAt(x, y int) (string, bool) {
	if !l.InControls(x, y) || y != l.ControlsTop {
		return "", false
	}
	for _, s := range l.Suggestions {
		if x >= s.Start && x < s.End {
			return s.Word, true
		}
	}
	return "", false
}

// InputColumn converts a screen column on the bar into a rune offset in the query
func (l Layout) InputColumn(x, scroll int) int {
	col := x - l.InputX
	if col < 0 {
		col = 0
	}
	return col + scroll
}

// InputWidth is the number of columns available to the query
func (l Layout) InputWidth() int {
	n := l.InputEnd - l.InputX
	if n < 1 {
		return 1
	}
	return n
}

func suggestionSpans(x int, words []string) []Span {
	spans := make([]Span, 0, len(words))
	x += len([]rune(recentLabel))
	for i, w := range words {
		if i > 0 {
			x += len([]rune(recentSeparator))
		}
		n := len([]rune(w))
		spans = append(spans, Span{Start: x, End: x + n, Word: w})
		x += n
	}
	return spans
}
