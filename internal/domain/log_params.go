package domain

import "time"

// Query holds the parameters for a single filter-log-events call.
//
// Fields:
//   - Group: Log group name. Required.
//   - FilterPattern: Backend filter expression. Empty string means no pattern.
//   - Start: Inclusive lower bound. Zero value means the parameter is not sent.
//   - End: Inclusive upper bound. Zero value means the parameter is not sent.
type Query struct {
	Group         string
	FilterPattern string
	Start         time.Time
	End           time.Time
}

// StartMillis returns Start as epoch milliseconds, or 0 when unset
func (q Query) StartMillis() int64 {
	if q.Start.IsZero() {
		return 0
	}
	return q.Start.UnixMilli()
}

// EndMillis returns End as epoch milliseconds, or 0 when unset
func (q Query) EndMillis() int64 {
	if q.End.IsZero() {
		return 0
	}
	return q.End.UnixMilli()
}
