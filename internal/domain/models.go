package domain

// SearchResult is one ranked hit returned by the search collaborator
type SearchResult struct {
	Word   string  `json:"word"`
	Method string  `json:"method"` // exact, prefix or fuzzy
	Score  float64 `json:"score"`  // 0..1, higher is better
}

// Match methods reported in SearchResult.Method
const (
	MethodExact  = "exact"
	MethodPrefix = "prefix"
	MethodFuzzy  = "fuzzy"
)

// Sense is a single meaning of a word
type Sense struct {
	PartOfSpeech string `toml:"part_of_speech" json:"part_of_speech"`
	Definition   string `toml:"definition" json:"definition"`
	Example      string `toml:"example,omitempty" json:"example,omitempty"`
}

// Entry is a dictionary entry returned by getDefinition
type Entry struct {
	Word     string   `toml:"word" json:"word"`
	Senses   []Sense  `toml:"senses" json:"senses"`
	Synonyms []string `toml:"synonyms,omitempty" json:"synonyms,omitempty"`
}

// LookupSource tells which input path triggered a lookup
type LookupSource string

const (
	LookupFromAutocomplete LookupSource = "autocomplete"
	LookupFromSelection    LookupSource = "selection"
	LookupFromRawQuery     LookupSource = "query"
	LookupFromCommandLine  LookupSource = "cli"
)
