package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsErrorLine(t *testing.T) {
	tests := []struct {
		message string
		want    bool
	}{
		{"ERROR something", true},
		{"an Error occurred", true},
		{"error lowercase", true},
		{"Errorx", true},
		{"xerror", true},
		{"TypeError: undefined", true},
		{"eRRoR mixed", false},
		{"ERR short", false},
		{"All good", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, IsErrorLine(tt.message))
		})
	}
}

func TestBuildErrorIndex(t *testing.T) {
	t.Run("mixed batch", func(t *testing.T) {
		index := BuildErrorIndex([]string{
			"2022-10-19T04:51:28.355Z\t" + testID + "\tERROR\tsomething failed",
		})
		assert.Equal(t, 1, index.Count)
		assert.Equal(t, []string{testID}, index.IDs)
	})

	t.Run("deduplicates by execution id", func(t *testing.T) {
		index := BuildErrorIndex([]string{
			"ts\treq-1\tERROR\tfirst",
			"ts\treq-2\tINFO\tfine",
			"ts\treq-1\tERROR\tsecond",
		})
		assert.Equal(t, 1, index.Count)
		assert.Equal(t, []string{"req-1"}, index.IDs)
	})

	t.Run("first occurrence order", func(t *testing.T) {
		index := BuildErrorIndex([]string{
			"ts\treq-3\terror",
			"ts\treq-1\tError",
			"ts\treq-3\tERROR",
			"ts\treq-2\tERROR",
		})
		assert.Equal(t, 3, index.Count)
		assert.Equal(t, []string{"req-3", "req-1", "req-2"}, index.IDs)
	})

	t.Run("no errors", func(t *testing.T) {
		index := BuildErrorIndex([]string{"ts\treq-1\tINFO\tok"})
		assert.True(t, index.IsEmpty())
		assert.Equal(t, 0, index.Count)
		assert.Empty(t, index.IDs)
	})

	t.Run("empty batch", func(t *testing.T) {
		index := BuildErrorIndex(nil)
		assert.Equal(t, 0, index.Count)
		assert.NotNil(t, index.IDs)
	})

	t.Run("uses the plain second field for marker lines", func(t *testing.T) {
		index := BuildErrorIndex([]string{
			"REPORT RequestId: req-9\tError: Runtime exited\t\n",
		})
		assert.Equal(t, []string{"Error: Runtime exited"}, index.IDs)
	})

	t.Run("line without second field contributes empty id", func(t *testing.T) {
		index := BuildErrorIndex([]string{
			"unstructured error",
			"another error line",
		})
		assert.Equal(t, 1, index.Count)
		assert.Equal(t, []string{""}, index.IDs)
	})
}

func TestBuildErrorIndex_CountMatchesIDs(t *testing.T) {
	batches := [][]string{
		{},
		{"a\tb\terror", "a\tb\terror", "a\tc\tERROR"},
		{"x", "y\tz\tError", "y\tz\tfine"},
	}
	for _, batch := range batches {
		index := BuildErrorIndex(batch)
		assert.Equal(t, len(index.IDs), index.Count)

		seen := map[string]bool{}
		for _, id := range index.IDs {
			assert.False(t, seen[id], "duplicate id %q", id)
			seen[id] = true
		}
	}
}
