package logs

import "strings"

// ExecutionIDPattern builds a CloudWatch filter pattern matching any of
// the given ids: each id is quoted and prefixed with "?" so the terms are
// OR'd. Ids are not validated or escaped.
func ExecutionIDPattern(ids []string) string {
	terms := make([]string, len(ids))
	for i, id := range ids {
		terms[i] = `?"` + id + `"`
	}
	return strings.Join(terms, " ")
}

// ParseIDList splits an operator's space-separated id selection
func ParseIDList(input string) []string {
	return strings.Fields(input)
}
