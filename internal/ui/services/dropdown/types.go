package dropdown

// State holds the explicit dropdown state. Results visibility itself is derived.
type State struct {
	Controls         bool    // user toggle, default closed
	ResultsDismissed bool    // results closed by close() until the query changes or focus returns
	Offset           float64 // animated vertical offset of the results panel, in rows
	Guard            bool    // pointer is interacting with the dropdown
	GuardSeq         int
}

// Config holds layout parameters
type Config struct {
	ControlsPadding int // extra rows between the controls panel and the results panel
	MinQueryLength  int
}

// DefaultConfig returns layout defaults
func DefaultConfig() Config {
	return Config{ControlsPadding: 2, MinQueryLength: 2}
}

// Inputs are the values results visibility is derived from
type Inputs struct {
	Focused bool
	Query   string
	Results int
	Pending bool
}

// Visibility is which panels are shown
type Visibility struct {
	Controls bool
	Results  bool
}

// Any reports whether at least one panel is shown
func (v Visibility) Any() bool { return v.Controls || v.Results }

// CloseOutcome reports which panels close() collapsed
type CloseOutcome struct {
	Controls bool
	Results  bool
}

// Closed reports whether close() collapsed anything
func (c CloseOutcome) Closed() bool { return c.Controls || c.Results }

// offset animation parameters
const (
	offsetLerp = 0.5
	offsetSnap = 0.05
)

// Status messages under the results panel
const (
	MessageTooShort  = "Type at least %d characters"
	MessageSearching = "Searching..."
	MessageNoMatches = "No matches found"
)
