package autocomplete

// MinQueryLength is the shortest query that can produce a completion
const MinQueryLength = 2

// State holds the cached completion
type State struct {
	Text      string // full word of the top result, empty when there is no completion
	Dismissed bool   // hidden until the query or results change
}

// Outcome is the result of a command that may rewrite the query
type Outcome struct {
	Query  string
	Lookup bool // caller should look up Query now
}
