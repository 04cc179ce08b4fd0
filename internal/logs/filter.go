package logs

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charliek/cwlog/internal/domain"
)

// MaxPatternLength is the maximum allowed length for filter patterns
// to prevent potential DoS attacks from excessively complex patterns
const MaxPatternLength = 256

// Filter applies a RecordFilter to parsed records
type Filter struct {
	filter domain.RecordFilter
	regex  *regexp.Regexp
}

// NewFilter creates a new filter from a RecordFilter
func NewFilter(filter domain.RecordFilter) (*Filter, error) {
	f := &Filter{filter: filter}

	// Validate pattern length to prevent DoS
	if len(filter.Pattern) > MaxPatternLength {
		return nil, fmt.Errorf("%w: pattern exceeds maximum length of %d characters", domain.ErrInvalidPattern, MaxPatternLength)
	}

	if filter.Pattern != "" && filter.IsRegex {
		re, err := regexp.Compile(filter.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPattern, err)
		}
		f.regex = re
	}

	return f, nil
}

// Matches returns true if the record matches the filter criteria
func (f *Filter) Matches(record domain.LogRecord) bool {
	if !f.filter.MatchesExecutionID(record.ExecutionID) {
		return false
	}

	if f.filter.Pattern == "" {
		return true
	}
	if f.matchText(record.Timestamp) || f.matchText(record.ExecutionID) {
		return true
	}
	for _, tok := range record.Tokens {
		if f.matchText(tok) {
			return true
		}
	}
	return false
}

func (f *Filter) matchText(s string) bool {
	if f.regex != nil {
		return f.regex.MatchString(s)
	}
	return strings.Contains(s, f.filter.Pattern)
}

// FilterRecords filters a slice of records
func FilterRecords(records []domain.LogRecord, filter domain.RecordFilter) ([]domain.LogRecord, error) {
	if filter.IsEmpty() {
		return records, nil
	}

	f, err := NewFilter(filter)
	if err != nil {
		return nil, err
	}

	result := make([]domain.LogRecord, 0, len(records))
	for _, record := range records {
		if f.Matches(record) {
			result = append(result, record)
		}
	}

	return result, nil
}

// FilterRecordsLimit filters records and returns at most limit records
func FilterRecordsLimit(records []domain.LogRecord, filter domain.RecordFilter, limit int) ([]domain.LogRecord, int, error) {
	filtered, err := FilterRecords(records, filter)
	if err != nil {
		return nil, 0, err
	}

	total := len(filtered)
	if limit > 0 && len(filtered) > limit {
		// Return last 'limit' records
		filtered = filtered[len(filtered)-limit:]
	}

	return filtered, total, nil
}
