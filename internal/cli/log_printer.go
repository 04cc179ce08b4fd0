package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/charliek/cwlog/internal/domain"
	"github.com/charliek/cwlog/internal/tui"
)

// eventTimeLayout is used for tail and follow output
const eventTimeLayout = "2006-01-02 15:04:05"

// LogPrinter handles consistent log formatting and color assignment
type LogPrinter struct {
	w          io.Writer
	loc        *time.Location
	styles     map[string]lipgloss.Style
	colorIndex int
}

// NewLogPrinter creates a LogPrinter writing to w. Event times are shown
// in loc.
func NewLogPrinter(w io.Writer, loc *time.Location) *LogPrinter {
	if loc == nil {
		loc = time.Local
	}
	return &LogPrinter{
		w:      w,
		loc:    loc,
		styles: make(map[string]lipgloss.Style),
	}
}

// PrintEvent prints a raw event as "time stream | message"
func (lp *LogPrinter) PrintEvent(ev domain.LogEvent) {
	ts := ev.Timestamp.In(lp.loc).Format(eventTimeLayout)
	fmt.Fprintf(lp.w, "%s %s | %s\n", tui.DimStyle.Render(ts), lp.style(ev.Stream).Render(ev.Stream), trimNewline(ev.Message))
}

// PrintEvents prints events in order
func (lp *LogPrinter) PrintEvents(events []domain.LogEvent) {
	for _, ev := range events {
		lp.PrintEvent(ev)
	}
}

// PrintRecord prints a header line with the timestamp and execution id,
// then each token on its own indexed line
func (lp *LogPrinter) PrintRecord(r domain.LogRecord) {
	id := r.ExecutionID
	if id == "" {
		id = "-"
	}
	header := lp.style(r.ExecutionID).Render(id)
	if r.Timestamp != "" {
		header = tui.DimStyle.Render(r.Timestamp) + " " + header
	}
	fmt.Fprintln(lp.w, header)

	for i, tok := range r.Tokens {
		fmt.Fprintf(lp.w, "  [%d] %s\n", i, tok)
	}
}

// PrintRecords prints records in order
func (lp *LogPrinter) PrintRecords(records []domain.LogRecord) {
	for _, r := range records {
		lp.PrintRecord(r)
	}
}

// PrintErrorCount prints the summary line shown after a search
func (lp *LogPrinter) PrintErrorCount(idx domain.ErrorIndex) {
	fmt.Fprintln(lp.w, tui.ErrorStyle.Render(fmt.Sprintf("%d errors detected", idx.Count)))
}

// PrintNoErrors tells the operator there is nothing to drill into
func (lp *LogPrinter) PrintNoErrors() {
	fmt.Fprintln(lp.w, "no errors detected")
}

// PrintErrorIndex lists the error execution ids, one per line
func (lp *LogPrinter) PrintErrorIndex(idx domain.ErrorIndex) {
	for _, id := range idx.IDs {
		fmt.Fprintln(lp.w, lp.style(id).Render(id))
	}
}

// PrintLines prints plain lines
func (lp *LogPrinter) PrintLines(lines []string) {
	for _, l := range lines {
		fmt.Fprintln(lp.w, l)
	}
}

// PrintJSON writes v as indented JSON
func (lp *LogPrinter) PrintJSON(v any) error {
	enc := json.NewEncoder(lp.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// PrintJSONLine writes v as a single line of JSON
func (lp *LogPrinter) PrintJSONLine(v any) error {
	if err := json.NewEncoder(lp.w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func (lp *LogPrinter) style(key string) lipgloss.Style {
	s, ok := lp.styles[key]
	if !ok {
		s = tui.PaletteStyle(lp.colorIndex)
		lp.styles[key] = s
		lp.colorIndex++
	}
	return s
}

func trimNewline(s string) string {
	return strings.TrimRight(s, "\r\n")
}
