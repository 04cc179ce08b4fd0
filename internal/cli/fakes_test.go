package cli

import (
	"context"
	"time"

	"github.com/charliek/cwlog/internal/domain"
)

const (
	testGroup = "/aws/lambda/api-dev"
	testID    = "d6521fa6-5e45-4c9b-9f00-1a8b3b5065dc"
	otherID   = "ab6119a5-f022-4ca2-bd3c-249f36e15edd"
)

// fakeBackend records queries and serves canned events
type fakeBackend struct {
	groups  []string
	listErr error

	events    []domain.LogEvent
	filterErr error

	followEvents []domain.LogEvent

	listArgs  [][2]string
	queries   []domain.Query
	tailCalls []time.Duration
	followed  []string
}

func (f *fakeBackend) ListLogGroups(ctx context.Context, prefix, contains string) ([]string, error) {
	f.listArgs = append(f.listArgs, [2]string{prefix, contains})
	return f.groups, f.listErr
}

func (f *fakeBackend) FilterEvents(ctx context.Context, q domain.Query) ([]domain.LogEvent, error) {
	f.queries = append(f.queries, q)
	if f.filterErr != nil {
		return nil, f.filterErr
	}
	return f.events, nil
}

func (f *fakeBackend) Tail(ctx context.Context, group string, since time.Duration) ([]domain.LogEvent, error) {
	f.tailCalls = append(f.tailCalls, since)
	if f.filterErr != nil {
		return nil, f.filterErr
	}
	return f.events, nil
}

func (f *fakeBackend) Follow(ctx context.Context, group string, fn func(domain.LogEvent)) error {
	f.followed = append(f.followed, group)
	for _, ev := range f.followEvents {
		fn(ev)
	}
	return nil
}

// scriptedPrompter replays canned answers. Running out of answers behaves
// like the operator pressing Esc.
type scriptedPrompter struct {
	selects  []string
	inputs   []string
	confirms []bool

	prompts []string
}

func (p *scriptedPrompter) Select(title string, options []string) (string, error) {
	p.prompts = append(p.prompts, title)
	if len(p.selects) == 0 {
		return "", domain.ErrAborted
	}
	v := p.selects[0]
	p.selects = p.selects[1:]
	return v, nil
}

func (p *scriptedPrompter) Input(prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if len(p.inputs) == 0 {
		return "", domain.ErrAborted
	}
	v := p.inputs[0]
	p.inputs = p.inputs[1:]
	return v, nil
}

func (p *scriptedPrompter) Confirm(question string) (bool, error) {
	p.prompts = append(p.prompts, question)
	if len(p.confirms) == 0 {
		return false, domain.ErrAborted
	}
	v := p.confirms[0]
	p.confirms = p.confirms[1:]
	return v, nil
}

func event(id, stream string, ts int64, msg string) domain.LogEvent {
	return domain.LogEvent{ID: id, Stream: stream, Timestamp: time.UnixMilli(ts), Message: msg}
}

// searchEvents is a short invocation with one error line
func searchEvents() []domain.LogEvent {
	return []domain.LogEvent{
		event("1", "s1", 1666145367000, "START RequestId: "+testID+" Version: $LATEST\n"),
		event("2", "s1", 1666145367443, "2022-10-19T02:09:27.443Z\t"+testID+"\tINFO\tprocessing order\n"),
		event("3", "s1", 1666145367500, "2022-10-19T02:09:27.500Z\t"+testID+"\tERROR\tpayment failed\n"),
		event("4", "s1", 1666145367600, "END RequestId: "+testID+"\n"),
	}
}
