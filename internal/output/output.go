// Package output provides consistent CLI output formatting.
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pathmark-dev/pathmark/internal/alias"
	"github.com/pathmark-dev/pathmark/internal/history"
	"github.com/pathmark-dev/pathmark/internal/quickaccess"
	"github.com/pathmark-dev/pathmark/internal/search"
)

// Writer renders pathmark entities for the terminal.
type Writer struct {
	out io.Writer
}

// New creates a Writer targeting out.
func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Status prints a message with an icon prefix. Write errors are ignored
// for console output.
func (w *Writer) Status(icon, msg string) {
	if icon != "" {
		_, _ = fmt.Fprintf(w.out, "%s %s\n", icon, msg)
	} else {
		_, _ = fmt.Fprintf(w.out, "   %s\n", msg)
	}
}

// Success prints a success message.
func (w *Writer) Success(msg string) {
	w.Status("✅", msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warning prints a warning message.
func (w *Writer) Warning(msg string) {
	w.Status("⚠️ ", msg)
}

// Error prints an error message.
func (w *Writer) Error(msg string) {
	w.Status("❌", msg)
}

// Errorf prints a formatted error message.
func (w *Writer) Errorf(format string, args ...any) {
	w.Error(fmt.Sprintf(format, args...))
}

// Results renders ranked search results, one per line with score and
// matched field.
func (w *Writer) Results(results []search.Result) {
	if len(results) == 0 {
		_, _ = fmt.Fprintln(w.out, "no matches")
		return
	}

	tw := tabwriter.NewWriter(w.out, 2, 4, 2, ' ', 0)
	for i, r := range results {
		marker := " "
		if r.Alias.IsFavorite {
			marker = "★"
		}
		_, _ = fmt.Fprintf(tw, "%2d. %s %s\t%s\t%.2f (%s)\n",
			i+1, marker, r.Alias.Name, r.Alias.Path, r.Score, r.MatchedField)
	}
	_ = tw.Flush()
}

// Aliases renders the alias collection as a table.
func (w *Writer) Aliases(aliases []alias.Alias) {
	if len(aliases) == 0 {
		_, _ = fmt.Fprintln(w.out, "no aliases")
		return
	}

	tw := tabwriter.NewWriter(w.out, 2, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tPATH\tTAGS\tFAV")
	for _, a := range aliases {
		fav := ""
		if a.IsFavorite {
			fav = "★"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			a.Name, a.Path, strings.Join(a.Tags, ","), fav)
	}
	_ = tw.Flush()
}

// History renders recent history entries, newest first.
func (w *Writer) History(entries []history.Entry) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w.out, "no history")
		return
	}

	tw := tabwriter.NewWriter(w.out, 2, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PATH\tACCESSED\tCOUNT")
	for _, e := range entries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\n",
			e.Path, e.AccessedAt.Format("2006-01-02 15:04"), e.AccessCount)
	}
	_ = tw.Flush()
}

// QuickAccess renders the pinned directory list in order.
func (w *Writer) QuickAccess(entries []quickaccess.Entry) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w.out, "no pinned directories")
		return
	}

	tw := tabwriter.NewWriter(w.out, 2, 4, 2, ' ', 0)
	for _, e := range entries {
		kind := ""
		if e.IsSystem {
			kind = "(system)"
		}
		_, _ = fmt.Fprintf(tw, "%d. %s\t%s\t%s\n", e.Order+1, e.Name, e.Path, kind)
	}
	_ = tw.Flush()
}
