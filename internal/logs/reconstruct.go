// Package logs turns raw CloudWatch messages into structured records and
// indexes the execution ids that appear on error lines.
package logs

import (
	"strings"

	"github.com/charliek/cwlog/internal/domain"
)

// Lambda runtime marker prefixes
const (
	startPrefix  = "START RequestId:"
	endPrefix    = "END RequestId:"
	reportPrefix = "REPORT RequestId:"
)

// ParseBatch reconstructs one record per message, in input order
func ParseBatch(messages []string) []domain.LogRecord {
	records := make([]domain.LogRecord, 0, len(messages))
	for _, msg := range messages {
		records = append(records, ParseMessage(msg))
	}
	return records
}

// ParseMessage reconstructs a single record. It never fails; fields that
// are missing from a malformed message come back as empty strings.
func ParseMessage(message string) domain.LogRecord {
	switch {
	case strings.HasPrefix(message, startPrefix), strings.HasPrefix(message, endPrefix):
		return parseMarker(message)
	case strings.HasPrefix(message, reportPrefix):
		return parseReport(message)
	default:
		return parseEntry(message)
	}
}

// parseMarker handles "START RequestId: <id> ..." and "END RequestId: <id>".
// The id is the third space-separated word, trimmed of any trailing tab or
// newline segments.
func parseMarker(message string) domain.LogRecord {
	word := field(strings.Split(message, " "), 2)
	return domain.LogRecord{
		Timestamp:   "",
		ExecutionID: field(nonEmpty(splitFields(word)), 0),
		Tokens:      nonEmpty(splitFields(message)),
	}
}

// parseReport handles "REPORT RequestId: <id>\tDuration: ...". The first
// tab field holds the marker and the id; the second is the first metric.
// Both stay in the tokens and the id is re-read from the first field.
func parseReport(message string) domain.LogRecord {
	fields := splitFields(message)
	head := field(fields, 0)
	second := field(fields, 1)

	tokens := make([]string, 0, len(fields))
	tokens = append(tokens, head, second)
	if len(fields) > 2 {
		tokens = append(tokens, fields[2:]...)
	}

	return domain.LogRecord{
		Timestamp:   "",
		ExecutionID: field(strings.Split(head, " "), 2),
		Tokens:      nonEmpty(tokens),
	}
}

// parseEntry handles "<timestamp>\t<id>\t<level>\t<message...>"
func parseEntry(message string) domain.LogRecord {
	fields := splitFields(message)
	var rest []string
	if len(fields) > 2 {
		rest = fields[2:]
	}
	return domain.LogRecord{
		Timestamp:   field(fields, 0),
		ExecutionID: field(fields, 1),
		Tokens:      nonEmpty(rest),
	}
}

// splitFields splits on tab or newline, keeping empty fields in place
func splitFields(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\n", "\t"), "\t")
}

// field returns fields[i], or "" when out of range
func field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

// nonEmpty returns the non-empty elements of fields. The result is never nil.
func nonEmpty(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
