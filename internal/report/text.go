package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/IvanShishkin/filehound/pkg/models"
)

// renderText renders a plain text report
func (g *Generator) renderText(results *models.SearchResults) []byte {
	var sb strings.Builder
	st := stats(results)

	// Header
	sb.WriteString(strings.Repeat("=", 79) + "\n")
	sb.WriteString(fmt.Sprintf("  FILEHOUND SEARCH REPORT v%s\n", results.Version))
	sb.WriteString(strings.Repeat("=", 79) + "\n\n")

	// Summary
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 79) + "\n")
	sb.WriteString(fmt.Sprintf("Search Root:      %s\n", results.Query.Root))
	sb.WriteString(fmt.Sprintf("Filters:          %s\n", describeQuery(results.Query)))
	sb.WriteString(fmt.Sprintf("Start Time:       %s\n", g.formatTime(results.StartTime)))
	sb.WriteString(fmt.Sprintf("End Time:         %s\n", g.formatTime(results.EndTime)))
	sb.WriteString(fmt.Sprintf("Duration:         %s\n", FormatDuration(results.Duration)))
	sb.WriteString(fmt.Sprintf("Directories:      %d\n", st.DirsVisited))
	sb.WriteString(fmt.Sprintf("Files Visited:    %d\n", st.FilesVisited))
	sb.WriteString(fmt.Sprintf("Inaccessible:     %d\n", st.Inaccessible))
	sb.WriteString(fmt.Sprintf("MATCHES:          %d\n", results.Count()))
	if results.Canceled {
		sb.WriteString("Status:           canceled (partial results)\n")
	}
	sb.WriteString("\n")

	if results.Count() == 0 {
		sb.WriteString("No matching files.\n\n")
	} else {
		sb.WriteString("MATCHING FILES\n")
		sb.WriteString(strings.Repeat("-", 79) + "\n")
		sb.WriteString(fmt.Sprintf("%-24s  %10s  %-19s  %s\n", "NAME", "SIZE (KB)", "CREATED", "PATH"))
		for _, rec := range results.Records {
			sb.WriteString(fmt.Sprintf("%-24s  %10d  %-19s  %s\n",
				rec.Name, rec.SizeKB(), g.formatTime(rec.CreatedAt), rec.Path))
		}
		sb.WriteString("\n")
	}

	// Omitted entries by reason
	if len(st.Omitted) > 0 {
		sb.WriteString("OMITTED ENTRIES\n")
		sb.WriteString(strings.Repeat("-", 79) + "\n")
		for _, reason := range sortedReasons(st.Omitted) {
			sb.WriteString(fmt.Sprintf("  %-20s %d\n", reason+":", st.Omitted[models.OmitReason(reason)]))
		}
		sb.WriteString("\n")
	}

	if len(st.InaccessiblePaths) > 0 {
		sb.WriteString("INACCESSIBLE ENTRIES\n")
		sb.WriteString(strings.Repeat("-", 79) + "\n")
		for _, p := range st.InaccessiblePaths {
			sb.WriteString("  " + p + "\n")
		}
		sb.WriteString("\n")
	}

	// Footer
	sb.WriteString(strings.Repeat("=", 79) + "\n")
	sb.WriteString("End of Report\n")
	sb.WriteString(strings.Repeat("=", 79) + "\n")

	return []byte(sb.String())
}

// sortedReasons returns the omit reasons in stable order
func sortedReasons(omitted map[models.OmitReason]int) []string {
	reasons := make([]string, 0, len(omitted))
	for r := range omitted {
		reasons = append(reasons, string(r))
	}
	sort.Strings(reasons)
	return reasons
}
