package logs

import (
	"strings"

	"github.com/charliek/cwlog/internal/domain"
)

// IsErrorLine reports whether a message is flagged as an error line.
// Only the three literal spellings match, anywhere in the text, so
// "Errorx" and "xerror" count while "eRRoR" does not.
func IsErrorLine(message string) bool {
	return strings.Contains(message, "ERROR") ||
		strings.Contains(message, "Error") ||
		strings.Contains(message, "error")
}

// BuildErrorIndex collects the execution ids of all error lines in the
// batch. The id is always the second tab/newline field, whatever the line
// shape; a line without one contributes the empty id.
func BuildErrorIndex(messages []string) domain.ErrorIndex {
	ids := make([]string, 0)
	seen := make(map[string]bool)

	for _, msg := range messages {
		if !IsErrorLine(msg) {
			continue
		}
		id := field(splitFields(msg), 1)
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	return domain.ErrorIndex{
		Count: len(ids),
		IDs:   ids,
	}
}
