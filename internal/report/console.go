package report

import (
	"fmt"
	"strings"

	"github.com/IvanShishkin/filehound/pkg/models"
	"github.com/fatih/color"
)

// consoleScheme holds the colors used for console output
type consoleScheme struct {
	title   *color.Color
	label   *color.Color
	value   *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
	dim     *color.Color
}

func newConsoleScheme() *consoleScheme {
	return &consoleScheme{
		title:   color.New(color.Bold, color.FgYellow),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgWhite),
		success: color.New(color.Bold, color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		dim:     color.New(color.Faint),
	}
}

const ruleWidth = 63

// printConsole prints the results table to the configured writer
func (g *Generator) printConsole(results *models.SearchResults) {
	s := newConsoleScheme()
	w := g.out
	st := stats(results)

	fmt.Fprintln(w)
	s.title.Fprintln(w, "SEARCH COMPLETE")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s      %s\n", s.label.Sprint("Root:"), results.Query.Root)
	fmt.Fprintf(w, "  %s   %s\n", s.label.Sprint("Filters:"), describeQuery(results.Query))
	fmt.Fprintf(w, "  %s     %d\n", s.label.Sprint("Files:"), st.FilesVisited)
	fmt.Fprintf(w, "  %s  %s\n", s.label.Sprint("Duration:"), FormatDuration(results.Duration))
	if st.Inaccessible > 0 {
		fmt.Fprintf(w, "  %s  %s\n", s.label.Sprint("Skipped:"), s.warn.Sprintf("%d inaccessible entries", st.Inaccessible))
	}
	if results.Canceled {
		fmt.Fprintf(w, "  %s\n", s.fail.Sprint("Search canceled, results are partial"))
	}
	fmt.Fprintln(w)

	if results.Count() == 0 {
		fmt.Fprintf(w, "  %s\n\n", s.warn.Sprint("No matching files"))
		return
	}

	s.success.Fprintf(w, "  MATCHES: %d\n", results.Count())
	fmt.Fprintln(w)
	s.dim.Fprintln(w, strings.Repeat("─", ruleWidth))

	fmt.Fprintf(w, "  %s  %s  %s  %s\n",
		s.label.Sprintf("%-24s", "Name"),
		s.label.Sprintf("%10s", "Size (KB)"),
		s.label.Sprintf("%-19s", "Created"),
		s.label.Sprint("Path"))

	for _, rec := range results.Records {
		fmt.Fprintf(w, "  %s  %10d  %-19s  %s\n",
			s.value.Sprintf("%-24s", rec.Name),
			rec.SizeKB(),
			g.formatTime(rec.CreatedAt),
			s.dim.Sprint(truncatePath(rec.Path, g.config.MaxPathWidth)))
	}

	s.dim.Fprintln(w, strings.Repeat("─", ruleWidth))
	fmt.Fprintln(w)
}
