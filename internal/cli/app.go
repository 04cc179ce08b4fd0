package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/charliek/cwlog/internal/constants"
	"github.com/charliek/cwlog/internal/domain"
	"github.com/charliek/cwlog/internal/logs"
	"github.com/charliek/cwlog/internal/query"
	"github.com/charliek/cwlog/internal/session"
	"github.com/charliek/cwlog/internal/tui"
)

// Backend is the log store the CLI queries
type Backend interface {
	ListLogGroups(ctx context.Context, prefix, contains string) ([]string, error)
	FilterEvents(ctx context.Context, q domain.Query) ([]domain.LogEvent, error)
	Tail(ctx context.Context, group string, since time.Duration) ([]domain.LogEvent, error)
	Follow(ctx context.Context, group string, fn func(domain.LogEvent)) error
}

// App runs the interactive menu against one log group
type App struct {
	backend  Backend
	prompter session.Prompter
	resolver *session.Resolver
	builder  *query.Builder
	printer  *LogPrinter
	errOut   io.Writer
	logger   *slog.Logger

	prefix string
	stage  string
	group  string

	session    session.Session
	lastErrors domain.ErrorIndex

	requestTimeout time.Duration
}

// AppConfig holds the dependencies of an App
type AppConfig struct {
	Backend  Backend
	Prompter session.Prompter
	Builder  *query.Builder
	Printer  *LogPrinter
	ErrOut   io.Writer
	Logger   *slog.Logger

	Prefix string // log group name prefix
	Stage  string // substring listed groups must contain
}

// NewApp creates an App
func NewApp(cfg AppConfig) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	errOut := cfg.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}
	return &App{
		backend:        cfg.Backend,
		prompter:       cfg.Prompter,
		resolver:       session.NewResolver(cfg.Prompter),
		builder:        cfg.Builder,
		printer:        cfg.Printer,
		errOut:         errOut,
		logger:         logger,
		prefix:         cfg.Prefix,
		stage:          cfg.Stage,
		requestTimeout: constants.DefaultRequestTimeout,
	}
}

// Run selects a log group and then serves menu commands until exit.
// Input and backend failures are reported and the menu continues; an
// aborted prompt ends the session.
func (a *App) Run(ctx context.Context) error {
	groups, err := a.backend.ListLogGroups(ctx, a.prefix, a.stage)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		return fmt.Errorf("%w: please set %s and %s in .env", domain.ErrNoLogGroups, constants.EnvLogPrefix, constants.EnvStage)
	}

	a.group, err = a.prompter.Select("Select log group", groups)
	if err != nil {
		return err
	}
	a.logger.Debug("log group selected", "group", a.group)

	names := make([]string, len(domain.Commands))
	for i, c := range domain.Commands {
		names[i] = c.String()
	}

	for {
		name, err := a.prompter.Select("Select command", names)
		if err != nil {
			return err
		}
		cmd, ok := domain.ParseCommand(name)
		if !ok {
			continue
		}
		if cmd == domain.CommandExit {
			return nil
		}

		if err := a.Dispatch(ctx, cmd); err != nil {
			if errors.Is(err, domain.ErrAborted) || ctx.Err() != nil {
				return err
			}
			a.reportError(err)
		}
	}
}

// Dispatch runs one menu command against the selected group
func (a *App) Dispatch(ctx context.Context, cmd domain.Command) error {
	switch cmd {
	case domain.CommandFollow:
		return a.follow(ctx)
	case domain.CommandTail:
		return a.tail(ctx)
	case domain.CommandKeywordSearch:
		if err := a.resolver.ResolveKeyword(&a.session); err != nil {
			return err
		}
		return a.searchWith(ctx, func() (domain.Query, error) {
			return a.builder.Keyword(a.group, a.session.Keyword)
		})
	case domain.CommandRangeSearch:
		if err := a.resolver.ResolveRange(&a.session); err != nil {
			return err
		}
		return a.searchWith(ctx, func() (domain.Query, error) {
			return a.builder.Range(a.group, a.session.From, a.session.To)
		})
	case domain.CommandKeywordRangeSearch:
		if err := a.resolver.ResolveKeyword(&a.session); err != nil {
			return err
		}
		if err := a.resolver.ResolveRange(&a.session); err != nil {
			return err
		}
		return a.searchWith(ctx, func() (domain.Query, error) {
			return a.builder.KeywordRange(a.group, a.session.Keyword, a.session.From, a.session.To)
		})
	case domain.CommandErrorIDSearch:
		return a.errorIDSearch(ctx)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// Session returns the current search settings
func (a *App) Session() session.Session {
	return a.session
}

// LastErrors returns the error index of the most recent search
func (a *App) LastErrors() domain.ErrorIndex {
	return a.lastErrors
}

// Group returns the selected log group
func (a *App) Group() string {
	return a.group
}

func (a *App) follow(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Fprintln(a.errOut, tui.DimStyle.Render("Following "+a.group+" (Ctrl+C to stop)"))
	return a.backend.Follow(ctx, a.group, a.printer.PrintEvent)
}

func (a *App) tail(ctx context.Context) error {
	if err := a.resolver.ResolveSince(&a.session); err != nil {
		return err
	}
	since, err := query.ParseSince(a.session.Since)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()

	events, err := a.backend.Tail(ctx, a.group, since)
	if err != nil {
		return err
	}
	a.printer.PrintEvents(events)
	return nil
}

func (a *App) errorIDSearch(ctx context.Context) error {
	if a.lastErrors.IsEmpty() {
		a.printer.PrintNoErrors()
		return nil
	}

	a.printer.PrintErrorIndex(a.lastErrors)
	answer, err := a.prompter.Input("Execution ids (space separated, from the list above): ")
	if err != nil {
		return err
	}

	ids := logs.ParseIDList(answer)
	return a.searchWith(ctx, func() (domain.Query, error) {
		return a.builder.ExecutionIDs(a.group, ids, a.session.From, a.session.To)
	})
}

// searchWith builds a query, runs it, prints the parsed records and
// replaces the remembered error index
func (a *App) searchWith(ctx context.Context, build func() (domain.Query, error)) error {
	q, err := build()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, a.requestTimeout)
	defer cancel()

	events, err := a.backend.FilterEvents(ctx, q)
	if err != nil {
		return err
	}

	analysis := logs.Analyze(domain.Messages(events))
	a.lastErrors = analysis.Errors

	a.printer.PrintRecords(analysis.Records)
	if !analysis.Errors.IsEmpty() {
		a.printer.PrintErrorCount(analysis.Errors)
	}
	return nil
}

func (a *App) reportError(err error) {
	msg := "Error: " + err.Error()
	if domain.IsInputError(err) {
		msg = "Invalid input: " + err.Error()
	}
	fmt.Fprintln(a.errOut, tui.ErrorStyle.Render(msg))
}
