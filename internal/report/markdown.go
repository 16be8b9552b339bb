package report

import (
	"fmt"
	"strings"

	"github.com/IvanShishkin/filehound/pkg/models"
)

// mdEscape makes file names render literally inside table cells
var mdEscape = strings.NewReplacer(
	"\\", "\\\\",
	"|", "\\|",
	"`", "\\`",
	"*", "\\*",
	"_", "\\_",
	"<", "\\<",
	">", "\\>",
	"[", "\\[",
	"]", "\\]",
	"&", "\\&",
	"#", "\\#",
	"\n", " ",
	"\r", " ",
)

// renderMarkdown renders a Markdown report
func (g *Generator) renderMarkdown(results *models.SearchResults) []byte {
	var sb strings.Builder
	st := stats(results)

	sb.WriteString(fmt.Sprintf("# Filehound Search Report v%s\n\n", results.Version))

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Parameter | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Search Root | %s |\n", mdEscape.Replace(results.Query.Root)))
	sb.WriteString(fmt.Sprintf("| Filters | %s |\n", mdEscape.Replace(describeQuery(results.Query))))
	sb.WriteString(fmt.Sprintf("| Start Time | %s |\n", g.formatTime(results.StartTime)))
	sb.WriteString(fmt.Sprintf("| Duration | %s |\n", FormatDuration(results.Duration)))
	sb.WriteString(fmt.Sprintf("| Directories | %d |\n", st.DirsVisited))
	sb.WriteString(fmt.Sprintf("| Files Visited | %d |\n", st.FilesVisited))
	sb.WriteString(fmt.Sprintf("| Inaccessible | %d |\n", st.Inaccessible))
	sb.WriteString(fmt.Sprintf("| **Matches** | **%d** |\n", results.Count()))
	sb.WriteString("\n")

	if results.Canceled {
		sb.WriteString("> **Search canceled**, results are partial\n\n")
	}

	if results.Count() == 0 {
		sb.WriteString("> No matching files\n\n")
	} else {
		sb.WriteString("## Matching Files\n\n")
		sb.WriteString("| # | Name | Path | Size (KB) | Created |\n")
		sb.WriteString("|---|------|------|-----------|---------|\n")
		for i, rec := range results.Records {
			sb.WriteString(fmt.Sprintf("| %d | %s | %s | %d | %s |\n",
				i+1, mdEscape.Replace(rec.Name), mdEscape.Replace(rec.Path), rec.SizeKB(), g.formatTime(rec.CreatedAt)))
		}
		sb.WriteString("\n")
	}

	if len(st.Omitted) > 0 {
		sb.WriteString("## Omitted Entries\n\n")
		sb.WriteString("| Reason | Count |\n")
		sb.WriteString("|--------|-------|\n")
		for _, reason := range sortedReasons(st.Omitted) {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", reason, st.Omitted[models.OmitReason(reason)]))
		}
		sb.WriteString("\n")
	}

	if len(st.InaccessiblePaths) > 0 {
		sb.WriteString("## Inaccessible Entries\n\n")
		for _, p := range st.InaccessiblePaths {
			sb.WriteString(fmt.Sprintf("- %s\n", mdEscape.Replace(p)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("---\n\n")
	sb.WriteString("*Generated by Filehound*\n")

	return []byte(sb.String())
}
