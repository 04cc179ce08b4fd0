package domain

import "time"

// LogRecord is one raw CloudWatch message reshaped into its fields
type LogRecord struct {
	Timestamp   string   `json:"timestamp"`
	ExecutionID string   `json:"executionId"`
	Tokens      []string `json:"tokens"`
}

// ErrorIndex lists the distinct execution ids seen on error lines,
// in first-occurrence order. Count always equals len(IDs).
type ErrorIndex struct {
	Count int      `json:"count"`
	IDs   []string `json:"ids"`
}

// IsEmpty returns true when no error lines were found
func (e ErrorIndex) IsEmpty() bool {
	return e.Count == 0
}

// Analysis is the parsed view of one query result
type Analysis struct {
	Records []LogRecord `json:"records"`
	Errors  ErrorIndex  `json:"errors"`
}

// LogEvent is a single event as delivered by the log backend
type LogEvent struct {
	ID        string    `json:"id"`
	Stream    string    `json:"stream"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Messages extracts the raw message strings from events, preserving order
func Messages(events []LogEvent) []string {
	messages := make([]string, len(events))
	for i, ev := range events {
		messages[i] = ev.Message
	}
	return messages
}

// RecordFilter defines criteria for narrowing parsed records before display
type RecordFilter struct {
	ExecutionIDs []string // Keep only these execution ids
	Pattern      string   // Keep records with a field matching the pattern
	IsRegex      bool     // If true, Pattern is a regex; otherwise substring match
}

// IsEmpty returns true if no filters are set
func (f RecordFilter) IsEmpty() bool {
	return len(f.ExecutionIDs) == 0 && f.Pattern == ""
}

// MatchesExecutionID returns true if the id passes the id filter
func (f RecordFilter) MatchesExecutionID(id string) bool {
	if len(f.ExecutionIDs) == 0 {
		return true
	}
	for _, want := range f.ExecutionIDs {
		if want == id {
			return true
		}
	}
	return false
}
