package model

// DateLayout is the calendar-day format used for cache keys and headings.
const DateLayout = "2006-01-02"

// Persona is one analytical viewpoint: a display name and the system prompt
// that establishes it. Loaded at process start, never mutated.
type Persona struct {
	Name         string
	SystemPrompt string
}

// PersonaAnalysis is one persona's take for one cycle. Text is either
// generated prose or a displayable error string; both are valid results.
type PersonaAnalysis struct {
	PersonaName string
	Text        string
}

// DailyResult is the output of one full analysis cycle. It is immutable once
// produced; a new day's cycle replaces it wholesale.
//
// Failed marks the one case where the whole cycle failed (the quote batch
// was unreachable); per-persona and per-symbol problems degrade in place
// instead.
type DailyResult struct {
	GeneratedOn   string
	Quotes        []TickerQuote
	Analyses      []PersonaAnalysis
	Failed        bool
	FailureReason string
}
