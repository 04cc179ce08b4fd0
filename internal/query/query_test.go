package query

import (
	"testing"
	"time"

	"github.com/charliek/cwlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jst = time.FixedZone("JST", 9*60*60)

func newTestBuilder() *Builder {
	now := time.Date(2022, 10, 19, 12, 0, 0, 0, time.UTC)
	return NewBuilder(jst, 0).WithClock(func() time.Time { return now })
}

func TestParseLocalTime(t *testing.T) {
	got, err := ParseLocalTime("2022-10-18 00:00:00", jst)
	require.NoError(t, err)
	assert.Equal(t, int64(1666018800000), got.UnixMilli())

	invalid := []string{
		"",
		"2022-10-18",
		"2022/10/18 00:00:00",
		"2022-10-18T00:00:00",
		" 2022-10-18 00:00:00",
		"2022-13-40 00:00:00",
	}
	for _, s := range invalid {
		t.Run(s, func(t *testing.T) {
			_, err := ParseLocalTime(s, jst)
			assert.ErrorIs(t, err, domain.ErrInvalidDate)
		})
	}
}

func TestParseSince(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"1w", 7 * 24 * time.Hour},
		{"2d", 48 * time.Hour},
		{"12h", 12 * time.Hour},
		{"30m", 30 * time.Minute},
		{"45s", 45 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSince(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "1", "h", "100h", "1y", "1h ", "-1h", "1.5h"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, err := ParseSince(bad)
			assert.ErrorIs(t, err, domain.ErrInvalidSince)
		})
	}
}

func TestBuilder_Keyword(t *testing.T) {
	b := newTestBuilder()

	q, err := b.Keyword("/aws/lambda/api-dev", "timeout")
	require.NoError(t, err)
	assert.Equal(t, "/aws/lambda/api-dev", q.Group)
	assert.Equal(t, "timeout", q.FilterPattern)
	assert.Equal(t, time.Date(2022, 10, 18, 12, 0, 0, 0, time.UTC), q.Start.UTC())
	assert.True(t, q.End.IsZero())

	_, err = b.Keyword("g", "")
	assert.ErrorIs(t, err, domain.ErrEmptyKeyword)
}

func TestBuilder_Range(t *testing.T) {
	b := newTestBuilder()

	q, err := b.Range("g", "2022-10-18 00:00:00", "2022-10-19 00:00:00")
	require.NoError(t, err)
	assert.Equal(t, int64(1666018800000), q.StartMillis())
	assert.Equal(t, int64(1666105200000), q.EndMillis())
	assert.Empty(t, q.FilterPattern)

	_, err = b.Range("g", "bad", "2022-10-19 00:00:00")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	_, err = b.Range("g", "2022-10-19 00:00:00", "2022-10-18 00:00:00")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestBuilder_KeywordRange(t *testing.T) {
	b := newTestBuilder()

	q, err := b.KeywordRange("g", "ERROR", "2022-10-18 00:00:00", "2022-10-19 00:00:00")
	require.NoError(t, err)
	assert.Equal(t, "ERROR", q.FilterPattern)
	assert.False(t, q.Start.IsZero())
	assert.False(t, q.End.IsZero())

	_, err = b.KeywordRange("g", "", "2022-10-18 00:00:00", "2022-10-19 00:00:00")
	assert.ErrorIs(t, err, domain.ErrEmptyKeyword)
}

func TestBuilder_ExecutionIDs(t *testing.T) {
	b := newTestBuilder()
	ids := []string{"a", "b"}

	t.Run("no range", func(t *testing.T) {
		q, err := b.ExecutionIDs("g", ids, "", "")
		require.NoError(t, err)
		assert.Equal(t, `?"a" ?"b"`, q.FilterPattern)
		assert.True(t, q.Start.IsZero())
		assert.True(t, q.End.IsZero())
	})

	t.Run("from only", func(t *testing.T) {
		q, err := b.ExecutionIDs("g", ids, "2022-10-18 00:00:00", "")
		require.NoError(t, err)
		assert.False(t, q.Start.IsZero())
		assert.True(t, q.End.IsZero())
	})

	t.Run("to without from is ignored", func(t *testing.T) {
		q, err := b.ExecutionIDs("g", ids, "", "2022-10-19 00:00:00")
		require.NoError(t, err)
		assert.True(t, q.Start.IsZero())
		assert.True(t, q.End.IsZero())
	})

	t.Run("full range", func(t *testing.T) {
		q, err := b.ExecutionIDs("g", ids, "2022-10-18 00:00:00", "2022-10-19 00:00:00")
		require.NoError(t, err)
		assert.Equal(t, int64(1666105200000), q.EndMillis())
	})

	t.Run("no ids", func(t *testing.T) {
		_, err := b.ExecutionIDs("g", nil, "", "")
		assert.ErrorIs(t, err, domain.ErrNoIDsSelected)
	})
}

func TestBuilder_Since(t *testing.T) {
	b := newTestBuilder()

	q, err := b.Since("g", "1h")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 10, 19, 11, 0, 0, 0, time.UTC), q.Start.UTC())

	_, err = b.Since("g", "1y")
	assert.ErrorIs(t, err, domain.ErrInvalidSince)
}

func TestNewBuilder_Defaults(t *testing.T) {
	b := NewBuilder(nil, 0)
	assert.Equal(t, time.UTC, b.Location())
}
