package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/IvanShishkin/filehound/internal/config"
	"github.com/IvanShishkin/filehound/internal/filelock"
	"github.com/IvanShishkin/filehound/pkg/models"
	"go.uber.org/zap"
)

// FormatDuration formats duration to a human-readable string with max 2 decimal places
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	} else if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	} else if d < time.Hour {
		mins := int(d.Minutes())
		secs := d.Seconds() - float64(mins*60)
		return fmt.Sprintf("%dm%.2fs", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) - hours*60
	secs := d.Seconds() - float64(hours*3600) - float64(mins*60)
	return fmt.Sprintf("%dh%dm%.2fs", hours, mins, secs)
}

// extensions maps file report formats to their file extension
var extensions = map[string]string{
	config.FormatText:     "txt",
	config.FormatJSON:     "json",
	config.FormatYAML:     "yaml",
	config.FormatMarkdown: "md",
	config.FormatHTML:     "html",
}

// DefaultFileName returns the report file name used when no output file is set
func DefaultFileName(format string, t time.Time) (string, error) {
	ext, ok := extensions[config.NormalizeFormat(format)]
	if !ok {
		return "", fmt.Errorf("unknown report format: %s", format)
	}
	return fmt.Sprintf("FILEHOUND-REPORT-%s.%s", t.Format("20060102-150405"), ext), nil
}

// Generator renders search results in various formats
type Generator struct {
	config *config.Config
	logger *zap.Logger
	out    io.Writer
}

// NewGenerator creates a new report generator
func NewGenerator(cfg *config.Config, logger *zap.Logger) (*Generator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("report generator requires a config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		config: cfg,
		logger: logger,
		out:    os.Stdout,
	}, nil
}

// SetOutput redirects console output
func (g *Generator) SetOutput(w io.Writer) {
	g.out = w
}

// Generate prints the results to the console or writes a report file. For
// file formats it returns the absolute path of the written report.
func (g *Generator) Generate(results *models.SearchResults) (string, error) {
	format := config.NormalizeFormat(g.config.ReportFormat)

	if format == config.FormatConsole {
		g.printConsole(results)
		return "", nil
	}

	outputFile := g.config.OutputFile
	if outputFile == "" {
		name, err := DefaultFileName(format, time.Now())
		if err != nil {
			return "", err
		}
		outputFile = name
	}

	g.logger.Info("Generating report",
		zap.String("format", format),
		zap.String("output", outputFile))

	data, err := g.Render(results, format)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s report: %w", format, err)
	}

	if err := filelock.WriteFile(outputFile, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s report: %w", format, err)
	}

	absPath, err := filepath.Abs(outputFile)
	if err != nil {
		absPath = outputFile
	}
	results.ReportPath = absPath
	return absPath, nil
}

// Render produces the report bytes for a file format
func (g *Generator) Render(results *models.SearchResults, format string) ([]byte, error) {
	switch config.NormalizeFormat(format) {
	case config.FormatText:
		return g.renderText(results), nil
	case config.FormatJSON:
		return renderJSON(results)
	case config.FormatYAML:
		return renderYAML(results)
	case config.FormatMarkdown:
		return g.renderMarkdown(results), nil
	case config.FormatHTML:
		return g.renderHTML(results)
	default:
		return nil, fmt.Errorf("unknown report format: %s", format)
	}
}

// describeQuery renders the active filters on one line
func describeQuery(q models.Query) string {
	var parts []string
	if q.Name != "" {
		parts = append(parts, fmt.Sprintf("name contains %q", q.Name))
	}
	if q.Extension != "" {
		parts = append(parts, fmt.Sprintf("name ends with %q", q.Extension))
	}
	if q.MinSize != nil {
		parts = append(parts, fmt.Sprintf("size >= %d B", *q.MinSize))
	}
	if q.MaxSize != nil {
		parts = append(parts, fmt.Sprintf("size <= %d B", *q.MaxSize))
	}
	if q.Content != "" {
		parts = append(parts, fmt.Sprintf("content contains %q", q.Content))
	}
	if len(parts) == 0 {
		return "none (all regular files)"
	}
	return strings.Join(parts, ", ")
}

// truncatePath shortens a path from the left to fit width
func truncatePath(path string, width int) string {
	if width <= 0 || len(path) <= width {
		return path
	}
	if width <= 3 {
		return path[len(path)-width:]
	}
	return "..." + path[len(path)-(width-3):]
}

func (g *Generator) formatTime(t time.Time) string {
	layout := g.config.TimeFormat
	if layout == "" {
		layout = "2006-01-02 15:04:05"
	}
	return t.Format(layout)
}

// stats returns non-nil statistics
func stats(results *models.SearchResults) *models.ScanStatistics {
	if results.Stats == nil {
		return &models.ScanStatistics{}
	}
	return results.Stats
}
