// Package cloudwatch implements log group listing, filtered search and
// follow polling against the CloudWatch Logs API.
package cloudwatch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"

	"github.com/charliek/cwlog/internal/constants"
	"github.com/charliek/cwlog/internal/domain"
	"github.com/charliek/cwlog/internal/logs"
)

// API is the subset of the CloudWatch Logs client used here
type API interface {
	cloudwatchlogs.DescribeLogGroupsAPIClient
	cloudwatchlogs.FilterLogEventsAPIClient
}

// Options configures a Client
type Options struct {
	Profile      string // shared config profile; empty uses the SDK default chain
	Region       string // empty uses the profile/env region
	MaxEvents    int    // cap on events returned by one search
	PollInterval time.Duration
	SeenBuffer   int           // recent event ids remembered while following
	Lookback     time.Duration // how far behind the newest seen event each poll starts
	Logger       *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxEvents <= 0 {
		o.MaxEvents = constants.DefaultMaxEvents
	}
	if o.PollInterval <= 0 {
		o.PollInterval = constants.DefaultPollInterval
	}
	if o.SeenBuffer <= 0 {
		o.SeenBuffer = constants.DefaultSeenBuffer
	}
	if o.Lookback <= 0 {
		o.Lookback = constants.DefaultFollowLookback
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// Client queries CloudWatch Logs
type Client struct {
	api  API
	opts Options
	now  func() time.Time
}

// New creates a Client from the shared AWS configuration
func New(ctx context.Context, opts Options) (*Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(opts.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewWithAPI(cloudwatchlogs.NewFromConfig(awsCfg), opts), nil
}

// NewWithAPI creates a Client backed by the given API implementation
func NewWithAPI(api API, opts Options) *Client {
	return &Client{
		api:  api,
		opts: opts.withDefaults(),
		now:  time.Now,
	}
}

// ListLogGroups returns the names of groups starting with prefix and
// containing the substring contains. Empty arguments do not filter.
func (c *Client) ListLogGroups(ctx context.Context, prefix, contains string) ([]string, error) {
	input := &cloudwatchlogs.DescribeLogGroupsInput{}
	if prefix != "" {
		input.LogGroupNamePrefix = aws.String(prefix)
	}

	var names []string
	p := cloudwatchlogs.NewDescribeLogGroupsPaginator(c.api, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("describe log groups: %w", err)
		}
		for _, g := range page.LogGroups {
			name := aws.ToString(g.LogGroupName)
			if strings.Contains(name, contains) {
				names = append(names, name)
			}
		}
	}

	c.opts.Logger.Debug("listed log groups", "prefix", prefix, "contains", contains, "count", len(names))
	return names, nil
}

// FilterEvents runs a filter-log-events query, following pagination until
// the result is exhausted or MaxEvents is reached
func (c *Client) FilterEvents(ctx context.Context, q domain.Query) ([]domain.LogEvent, error) {
	input := &cloudwatchlogs.FilterLogEventsInput{
		LogGroupName: aws.String(q.Group),
	}
	if q.FilterPattern != "" {
		input.FilterPattern = aws.String(q.FilterPattern)
	}
	if ms := q.StartMillis(); ms != 0 {
		input.StartTime = aws.Int64(ms)
	}
	if ms := q.EndMillis(); ms != 0 {
		input.EndTime = aws.Int64(ms)
	}

	c.opts.Logger.Debug("filter log events",
		"group", q.Group,
		"pattern", q.FilterPattern,
		"start", q.StartMillis(),
		"end", q.EndMillis(),
	)

	var events []domain.LogEvent
	p := cloudwatchlogs.NewFilterLogEventsPaginator(c.api, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("filter log events in %s: %w", q.Group, err)
		}
		for _, ev := range page.Events {
			events = append(events, toLogEvent(ev))
			if len(events) >= c.opts.MaxEvents {
				c.opts.Logger.Warn("result truncated", "group", q.Group, "max_events", c.opts.MaxEvents)
				return events, nil
			}
		}
	}

	return events, nil
}

// Tail returns the events in the window ending now
func (c *Client) Tail(ctx context.Context, group string, since time.Duration) ([]domain.LogEvent, error) {
	return c.FilterEvents(ctx, domain.Query{
		Group: group,
		Start: c.now().Add(-since),
	})
}

// Follow polls the group for new events and passes each one to fn, in
// order, until ctx is cancelled. Poll failures are logged and retried on
// the next tick.
func (c *Client) Follow(ctx context.Context, group string, fn func(domain.LogEvent)) error {
	f := &follower{
		client: c,
		group:  group,
		seen:   logs.NewRingBuffer(c.opts.SeenBuffer),
		floor:  c.now(),
		fn:     fn,
	}
	f.newest = f.floor

	ticker := time.NewTicker(c.opts.PollInterval)
	defer ticker.Stop()

	for {
		f.poll(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// follower holds the state of one Follow call
type follower struct {
	client *Client
	group  string
	seen   *logs.RingBuffer
	floor  time.Time // follow start; nothing older is delivered
	newest time.Time // newest event timestamp delivered so far
	fn     func(domain.LogEvent)
}

// start is the StartTime of the next poll. CloudWatch can ingest events
// from other streams after newer ones are visible, so each poll reaches
// back Lookback behind the newest event. Repeats are skipped via the seen
// buffer, which must hold at least the events of one lookback window.
func (f *follower) start() time.Time {
	start := f.newest.Add(-f.client.opts.Lookback)
	if start.Before(f.floor) {
		return f.floor
	}
	return start
}

func (f *follower) poll(ctx context.Context) {
	events, err := f.client.FilterEvents(ctx, domain.Query{Group: f.group, Start: f.start()})
	if err != nil {
		if ctx.Err() == nil {
			f.client.opts.Logger.Warn("poll error", "group", f.group, "error", err)
		}
		return
	}

	for _, ev := range events {
		if !f.seen.WriteIfNew(ev) {
			continue
		}
		f.fn(ev)
		if ev.Timestamp.After(f.newest) {
			f.newest = ev.Timestamp
		}
	}
}

func toLogEvent(ev types.FilteredLogEvent) domain.LogEvent {
	return domain.LogEvent{
		ID:        aws.ToString(ev.EventId),
		Stream:    aws.ToString(ev.LogStreamName),
		Timestamp: time.UnixMilli(aws.ToInt64(ev.Timestamp)),
		Message:   aws.ToString(ev.Message),
	}
}
