package logs

import (
	"strings"
	"testing"

	"github.com/charliek/cwlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecord(id string, tokens ...string) domain.LogRecord {
	return domain.LogRecord{
		Timestamp:   "2022-10-19T04:51:28.355Z",
		ExecutionID: id,
		Tokens:      tokens,
	}
}

func TestFilter_MatchesExecutionID(t *testing.T) {
	filter, err := NewFilter(domain.RecordFilter{
		ExecutionIDs: []string{"a", "b"},
	})
	require.NoError(t, err)

	assert.True(t, filter.Matches(makeRecord("a", "hello")))
	assert.True(t, filter.Matches(makeRecord("b", "hello")))
	assert.False(t, filter.Matches(makeRecord("c", "hello")))
}

func TestFilter_MatchesSubstring(t *testing.T) {
	filter, err := NewFilter(domain.RecordFilter{
		Pattern: "ERROR",
	})
	require.NoError(t, err)

	assert.True(t, filter.Matches(makeRecord("a", "ERROR", "something went wrong")))
	assert.True(t, filter.Matches(makeRecord("a", "INFO", "An ERROR occurred")))
	assert.False(t, filter.Matches(makeRecord("a", "INFO", "All good")))
	assert.False(t, filter.Matches(makeRecord("a", "error lowercase")))
}

func TestFilter_MatchesIDAndTimestamp(t *testing.T) {
	filter, err := NewFilter(domain.RecordFilter{Pattern: "d6521fa6"})
	require.NoError(t, err)
	assert.True(t, filter.Matches(makeRecord("d6521fa6-5e45", "INFO")))

	filter, err = NewFilter(domain.RecordFilter{Pattern: "2022-10-19"})
	require.NoError(t, err)
	assert.True(t, filter.Matches(makeRecord("x")))
}

func TestFilter_MatchesRegex(t *testing.T) {
	filter, err := NewFilter(domain.RecordFilter{
		Pattern: "(?i)error|warn",
		IsRegex: true,
	})
	require.NoError(t, err)

	assert.True(t, filter.Matches(makeRecord("a", "ERROR: something")))
	assert.True(t, filter.Matches(makeRecord("a", "error lowercase")))
	assert.True(t, filter.Matches(makeRecord("a", "WARN: something")))
	assert.False(t, filter.Matches(makeRecord("a", "All good")))
}

func TestFilter_InvalidRegex(t *testing.T) {
	_, err := NewFilter(domain.RecordFilter{
		Pattern: "[invalid",
		IsRegex: true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPattern)
}

func TestFilter_PatternTooLong(t *testing.T) {
	_, err := NewFilter(domain.RecordFilter{
		Pattern: strings.Repeat("a", MaxPatternLength+1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPattern)
}

func TestFilterRecords(t *testing.T) {
	records := []domain.LogRecord{
		makeRecord("a", "INFO", "request 1"),
		makeRecord("b", "ERROR", "failed"),
		makeRecord("a", "ERROR", "timeout"),
		makeRecord("c", "INFO", "processing"),
	}

	t.Run("empty filter returns all", func(t *testing.T) {
		result, err := FilterRecords(records, domain.RecordFilter{})
		require.NoError(t, err)
		assert.Len(t, result, 4)
	})

	t.Run("filter by execution id", func(t *testing.T) {
		result, err := FilterRecords(records, domain.RecordFilter{
			ExecutionIDs: []string{"a"},
		})
		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("combined filters", func(t *testing.T) {
		result, err := FilterRecords(records, domain.RecordFilter{
			ExecutionIDs: []string{"a"},
			Pattern:      "ERROR",
		})
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, []string{"ERROR", "timeout"}, result[0].Tokens)
	})
}

func TestFilterRecordsLimit(t *testing.T) {
	records := make([]domain.LogRecord, 10)
	for i := 0; i < 10; i++ {
		records[i] = makeRecord(string(rune('0' + i)))
	}

	result, total, err := FilterRecordsLimit(records, domain.RecordFilter{}, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, total)
	require.Len(t, result, 3)
	assert.Equal(t, "7", result[0].ExecutionID)
	assert.Equal(t, "9", result[2].ExecutionID)
}
