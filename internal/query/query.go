// Package query builds CloudWatch filter parameters for each search mode.
package query

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/charliek/cwlog/internal/constants"
	"github.com/charliek/cwlog/internal/domain"
	"github.com/charliek/cwlog/internal/logs"
)

// DateLayout is the local date-time format accepted for range searches
const DateLayout = "2006-01-02 15:04:05"

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	sincePattern = regexp.MustCompile(`^(\d{1,2})([wdhms])$`)
)

// ParseLocalTime parses "yyyy-mm-dd hh:mm:ss" as wall-clock time in loc
func ParseLocalTime(s string, loc *time.Location) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: %q (expected yyyy-mm-dd hh:mm:ss)", domain.ErrInvalidDate, s)
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidDate, err)
	}
	return t, nil
}

// ParseSince parses a relative window such as 1w, 3d, 12h, 30m or 45s
func ParseSince(s string) (time.Duration, error) {
	m := sincePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q (e.g. 1w, 1d, 1h, 1m, 1s)", domain.ErrInvalidSince, s)
	}
	n, _ := strconv.Atoi(m[1])

	var unit time.Duration
	switch m[2] {
	case "w":
		unit = 7 * 24 * time.Hour
	case "d":
		unit = 24 * time.Hour
	case "h":
		unit = time.Hour
	case "m":
		unit = time.Minute
	case "s":
		unit = time.Second
	}
	return time.Duration(n) * unit, nil
}

// Builder turns operator input into backend queries
type Builder struct {
	loc           *time.Location
	keywordWindow time.Duration
	now           func() time.Time
}

// NewBuilder creates a Builder interpreting dates in loc.
// A non-positive keywordWindow uses the default.
func NewBuilder(loc *time.Location, keywordWindow time.Duration) *Builder {
	if loc == nil {
		loc = time.UTC
	}
	if keywordWindow <= 0 {
		keywordWindow = constants.DefaultKeywordWindow
	}
	return &Builder{
		loc:           loc,
		keywordWindow: keywordWindow,
		now:           time.Now,
	}
}

// WithClock returns a copy of the builder using now as its clock
func (b *Builder) WithClock(now func() time.Time) *Builder {
	c := *b
	c.now = now
	return &c
}

// Location returns the zone dates are interpreted in
func (b *Builder) Location() *time.Location {
	return b.loc
}

// Keyword searches the keyword window ending now
func (b *Builder) Keyword(group, keyword string) (domain.Query, error) {
	if keyword == "" {
		return domain.Query{}, domain.ErrEmptyKeyword
	}
	return domain.Query{
		Group:         group,
		FilterPattern: keyword,
		Start:         b.now().Add(-b.keywordWindow),
	}, nil
}

// Range searches between two local date-times
func (b *Builder) Range(group, from, to string) (domain.Query, error) {
	start, end, err := b.parseRange(from, to)
	if err != nil {
		return domain.Query{}, err
	}
	return domain.Query{Group: group, Start: start, End: end}, nil
}

// KeywordRange searches a date range for a keyword
func (b *Builder) KeywordRange(group, keyword, from, to string) (domain.Query, error) {
	if keyword == "" {
		return domain.Query{}, domain.ErrEmptyKeyword
	}
	q, err := b.Range(group, from, to)
	if err != nil {
		return domain.Query{}, err
	}
	q.FilterPattern = keyword
	return q, nil
}

// ExecutionIDs searches for any of the given ids. The range is optional:
// from bounds the start when set, and to bounds the end only when from is
// also set.
func (b *Builder) ExecutionIDs(group string, ids []string, from, to string) (domain.Query, error) {
	if len(ids) == 0 {
		return domain.Query{}, domain.ErrNoIDsSelected
	}

	q := domain.Query{
		Group:         group,
		FilterPattern: logs.ExecutionIDPattern(ids),
	}
	if from == "" {
		return q, nil
	}

	start, err := ParseLocalTime(from, b.loc)
	if err != nil {
		return domain.Query{}, fmt.Errorf("from: %w", err)
	}
	q.Start = start

	if to != "" {
		end, err := ParseLocalTime(to, b.loc)
		if err != nil {
			return domain.Query{}, fmt.Errorf("to: %w", err)
		}
		q.End = end
	}
	return q, nil
}

// Since fetches everything in the relative window ending now
func (b *Builder) Since(group, since string) (domain.Query, error) {
	d, err := ParseSince(since)
	if err != nil {
		return domain.Query{}, err
	}
	return domain.Query{Group: group, Start: b.now().Add(-d)}, nil
}

func (b *Builder) parseRange(from, to string) (time.Time, time.Time, error) {
	start, err := ParseLocalTime(from, b.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("from: %w", err)
	}
	end, err := ParseLocalTime(to, b.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("to: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end %s is before start %s", domain.ErrInvalidDate, to, from)
	}
	return start, end, nil
}
