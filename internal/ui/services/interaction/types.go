package interaction

// State is the coarse visual state of the search bar. Exactly one is active.
type State int

const (
	StateNormal State = iota
	StateScrolled
	StateHovering
	StateFocused
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateScrolled:
		return "scrolled"
	case StateHovering:
		return "hovering"
	case StateFocused:
		return "focused"
	default:
		return "unknown"
	}
}

// Signal is one input to the transition function
type Signal interface {
	signal()
	String() string
}

// ScrollTick carries the latest scroll progress and the momentum flag for that frame
type ScrollTick struct {
	Progress float64
	Momentum bool
}

// FocusGained is sent when the input receives focus
type FocusGained struct{}

// FocusLost is sent once the blur debounce has elapsed without focus returning
type FocusLost struct{}

// PointerEnter is sent when the pointer enters the bar's hit region
type PointerEnter struct{}

// PointerLeave is sent when the pointer leaves the bar's hit region
type PointerLeave struct{}

// ExternalShrinkRequest asks an unfocused bar to collapse
type ExternalShrinkRequest struct{}

func (ScrollTick) signal()            {}
func (FocusGained) signal()           {}
func (FocusLost) signal()             {}
func (PointerEnter) signal()          {}
func (PointerLeave) signal()          {}
func (ExternalShrinkRequest) signal() {}

func (ScrollTick) String() string            { return "scroll" }
func (FocusGained) String() string           { return "focus" }
func (FocusLost) String() string             { return "blur" }
func (PointerEnter) String() string          { return "pointer-enter" }
func (PointerLeave) String() string          { return "pointer-leave" }
func (ExternalShrinkRequest) String() string { return "shrink" }

// Transition describes one state change
type Transition struct {
	From  State
	To    State
	Cause string
}

// Config holds the threshold parameters
type Config struct {
	InflectionPoint  float64
	HysteresisBuffer float64
}

// DefaultConfig returns the threshold defaults
func DefaultConfig() Config {
	return Config{
		InflectionPoint:  0.35,
		HysteresisBuffer: 0.05,
	}
}

// Minimum container scale and opacity so the bar always stays legible and clickable
const (
	MinScale   = 0.85
	MinOpacity = 0.9
)

// Icon fade band as fractions of the way to the inflection point
const (
	iconFadeStart = 0.3
	iconFadeEnd   = 0.7
)
