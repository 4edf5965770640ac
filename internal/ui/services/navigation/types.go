package navigation

// State holds the selection over the current result list
type State struct {
	Cursor         int // SelectionIndex
	ViewportOffset int // first visible row
	ViewportHeight int
	Count          int // number of results
}

// Direction represents movement directions
type Direction int

const (
	DirectionUp   Direction = -1
	DirectionDown Direction = 1
)

// Action is what Enter resolved to
type Action int

const (
	ActionNone      Action = iota
	ActionAccept           // accept the ghost-text completion
	ActionSelect           // look up the selected result
	ActionLookupRaw        // look up the raw query text
)

func (a Action) String() string {
	switch a {
	case ActionAccept:
		return "accept"
	case ActionSelect:
		return "select"
	case ActionLookupRaw:
		return "lookup"
	default:
		return "none"
	}
}
