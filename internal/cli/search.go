package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/charliek/cwlog/internal/constants"
	"github.com/charliek/cwlog/internal/domain"
	"github.com/charliek/cwlog/internal/logs"
	"github.com/charliek/cwlog/internal/query"
)

// searchFlags select the query mode of search and errors
type searchFlags struct {
	group   string
	keyword string
	from    string
	to      string
	ids     string
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.group, "group", "g", "", "Log group name")
	cmd.Flags().StringVarP(&f.keyword, "keyword", "k", "", "Filter pattern to search for")
	cmd.Flags().StringVar(&f.from, "from", "", "Range start (yyyy-mm-dd hh:mm:ss, local time)")
	cmd.Flags().StringVar(&f.to, "to", "", "Range end (yyyy-mm-dd hh:mm:ss, local time)")
	cmd.Flags().StringVar(&f.ids, "ids", "", "Space separated execution ids to search for")
	_ = cmd.MarkFlagRequired("group")
}

// build picks the query mode from the flags that were given
func (f *searchFlags) build(b *query.Builder) (domain.Query, error) {
	hasRange := f.from != "" || f.to != ""
	switch {
	case f.ids != "":
		return b.ExecutionIDs(f.group, logs.ParseIDList(f.ids), f.from, f.to)
	case f.keyword != "" && hasRange:
		return b.KeywordRange(f.group, f.keyword, f.from, f.to)
	case f.keyword != "":
		return b.Keyword(f.group, f.keyword)
	case hasRange:
		return b.Range(f.group, f.from, f.to)
	default:
		return domain.Query{}, fmt.Errorf("%w: pass --keyword, --from/--to or --ids", domain.ErrNoSearchMode)
	}
}

// runSearch executes the query described by flags and analyzes the result
func (a *appContext) runSearch(ctx context.Context, flags *searchFlags) (domain.Analysis, error) {
	q, err := flags.build(a.builder)
	if err != nil {
		return domain.Analysis{}, err
	}

	be, err := a.Backend(ctx)
	if err != nil {
		return domain.Analysis{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	events, err := be.FilterEvents(ctx, q)
	if err != nil {
		return domain.Analysis{}, err
	}
	return logs.Analyze(domain.Messages(events)), nil
}

func newSearchCmd(app *appContext) *cobra.Command {
	flags := &searchFlags{}
	var (
		grep       string
		isRegex    bool
		errorsOnly bool
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search a log group and print parsed records",
		Long: `Search a log group and print parsed records.

The mode follows the flags given:
  --keyword              keyword search over the keyword window (default 24h)
  --from/--to            date range search
  --keyword --from/--to  keyword search within a date range
  --ids                  search by execution ids (range optional)`,
		Example: `  cwlog search -g /aws/lambda/api-dev -k timeout
  cwlog search -g /aws/lambda/api-dev --from "2022-10-18 00:00:00" --to "2022-10-19 00:00:00"
  cwlog search -g /aws/lambda/api-dev --ids "d6521fa6-5e45-4c9b-9f00-1a8b3b5065dc" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := app.runSearch(cmd.Context(), flags)
			if err != nil {
				return err
			}

			filter := domain.RecordFilter{Pattern: grep, IsRegex: isRegex}
			if errorsOnly {
				filter.ExecutionIDs = analysis.Errors.IDs
			}
			switch {
			case errorsOnly && analysis.Errors.IsEmpty():
				// an empty id list would match every record
				analysis.Records = []domain.LogRecord{}
			case !filter.IsEmpty() || limit > 0:
				records, total, err := logs.FilterRecordsLimit(analysis.Records, filter, limit)
				if err != nil {
					return err
				}
				app.logger.Debug("records filtered", "matched", total, "shown", len(records))
				analysis.Records = records
			}

			if app.jsonOutput {
				return app.printer.PrintJSON(analysis)
			}
			app.printer.PrintRecords(analysis.Records)
			switch {
			case !analysis.Errors.IsEmpty():
				app.printer.PrintErrorCount(analysis.Errors)
			case errorsOnly:
				app.printer.PrintNoErrors()
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&grep, "grep", "", "Only print records with a field containing this text")
	cmd.Flags().BoolVar(&isRegex, "regex", false, "Treat --grep as a regular expression")
	cmd.Flags().BoolVar(&errorsOnly, "errors-only", false, "Only print records of execution ids seen on error lines")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Print at most the last n records")
	return cmd
}

func newErrorsCmd(app *appContext) *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "errors",
		Short: "Search a log group and print only the error execution ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			analysis, err := app.runSearch(cmd.Context(), flags)
			if err != nil {
				return err
			}

			if app.jsonOutput {
				return app.printer.PrintJSON(analysis.Errors)
			}
			if analysis.Errors.IsEmpty() {
				app.printer.PrintNoErrors()
				return nil
			}
			app.printer.PrintErrorIndex(analysis.Errors)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
