package tui

import (
	"fmt"
	"strings"

	"github.com/IvanShishkin/filehound/internal/actions"
	"github.com/IvanShishkin/filehound/internal/filesystem"
	"github.com/charmbracelet/lipgloss"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#D97706")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4")).
			Width(18)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2"))

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50FA7B")).
			Background(lipgloss.Color("#282A36")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#44475A")).
			Foreground(lipgloss.Color("#F8F8F2")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB86C")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4")).
			Italic(true)
)

// Lines used by everything except the table rows
const chromeLines = 16

// pageSize returns the number of table rows that fit on screen
func (m Model) pageSize() int {
	size := 15
	if m.cfg != nil && m.cfg.TUI.PageSize > 0 {
		size = m.cfg.TUI.PageSize
	}
	if m.height > chromeLines {
		size = m.height - chromeLines
	}
	return size
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Filehound"))
	b.WriteString("\n\n")

	b.WriteString(m.viewForm())
	b.WriteString("\n")
	b.WriteString(m.viewTable())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
	} else {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder
	for i := 0; i < fieldCount; i++ {
		value := m.fields[i]
		style := inputStyle
		if m.mode == formMode && m.focus == i {
			style = focusedStyle
			value += "_"
		}
		b.WriteString(labelStyle.Render(fieldLabels[i]+":") + " " + style.Render(value) + "\n")
	}
	return b.String()
}

func (m Model) viewTable() string {
	if m.last == nil {
		return ""
	}
	if m.results.Len() == 0 {
		return helpStyle.Render("No matching files") + "\n"
	}

	nameW, pathW := 24, 48
	if m.width > 0 {
		pathW = m.width - nameW - 10 - 19 - 8
		if pathW < 20 {
			pathW = 20
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-*s  %-*s  %9s  %-19s",
		nameW, "File Name", pathW, "File Path", "Size (KB)", "Creation Date")))
	b.WriteString("\n")

	start, end := m.results.Window(m.pageSize())
	records := m.results.Records()
	for i := start; i < end; i++ {
		rec := records[i]
		row := fmt.Sprintf("  %-*s  %-*s  %9d  %-19s",
			nameW, clip(rec.Name, nameW),
			pathW, clip(rec.Path, pathW),
			rec.SizeKB(),
			rec.CreatedAt.Format(m.timeFormat()))
		if i == m.results.Cursor() && m.mode != formMode {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row + "\n")
	}

	if m.results.Len() > end-start {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  rows %d-%d of %d", start+1, end, m.results.Len())))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) help() string {
	switch m.mode {
	case formMode:
		return "tab/↑↓: field • enter: search • esc: results • ctrl+c: quit"
	case confirmMode:
		return "y: delete • any other key: cancel"
	default:
		return "↑↓: move • enter/o: open • d: delete • r: reveal • i: info • /: edit search • q: quit"
	}
}

func (m Model) timeFormat() string {
	if m.cfg != nil && m.cfg.TimeFormat != "" {
		return m.cfg.TimeFormat
	}
	return "2006-01-02 15:04:05"
}

// clip shortens s to width runes, keeping the tail
func clip(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[len(r)-width:])
	}
	return "…" + string(r[len(r)-width+1:])
}

// describeDetails renders inspect output for the status line
func describeDetails(d *actions.Details) string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf("%s  %s  %s  %s  modified %s",
		d.Path, d.MIMEType, filesystem.FormatSize(d.Size), d.Mode, d.ModTime.Format("2006-01-02 15:04:05"))
}
