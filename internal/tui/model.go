// Package tui implements the interactive search window: a query form, a
// results table and row actions on the selected file.
package tui

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/IvanShishkin/filehound/internal/actions"
	"github.com/IvanShishkin/filehound/internal/config"
	"github.com/IvanShishkin/filehound/pkg/models"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Searcher runs one complete search
type Searcher interface {
	Run(ctx context.Context, q models.Query) *models.SearchResults
}

// RowActions are the operations available on a result row
type RowActions interface {
	Open(path string) error
	Remove(path string) error
	Reveal(path string) error
	Inspect(path string) (*actions.Details, error)
}

// mode is the part of the window that receives key presses
type mode int

const (
	formMode mode = iota
	resultsMode
	confirmMode
)

// Form field indexes
const (
	fieldDir = iota
	fieldName
	fieldContent
	fieldExt
	fieldMinKB
	fieldMaxKB
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldDir:     "Directory",
	fieldName:    "Name contains",
	fieldContent: "Content contains",
	fieldExt:     "Extension",
	fieldMinKB:   "Min size (KB)",
	fieldMaxKB:   "Max size (KB)",
}

// Messages delivered back to Update by commands
type (
	scanDoneMsg struct {
		seq     int
		results *models.SearchResults
	}

	actionDoneMsg struct {
		action  string
		path    string
		details *actions.Details
		err     error
	}
)

// Model is the bubbletea model of the search window
type Model struct {
	searcher Searcher
	actions  RowActions
	cfg      *config.Config
	logger   *zap.Logger

	mode   mode
	fields [fieldCount]string
	focus  int

	results  ResultSet
	last     *models.SearchResults
	scanning bool
	scanSeq  int
	cancel   context.CancelFunc

	pending string // path awaiting delete confirmation

	status   string
	errMsg   string
	width    int
	height   int
	quitting bool
}

// New creates the window with the directory field set to root
func New(searcher Searcher, acts RowActions, cfg *config.Config, root string, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := Model{
		searcher: searcher,
		actions:  acts,
		cfg:      cfg,
		logger:   logger,
		mode:     formMode,
		status:   "Fill in the filters and press enter to search",
	}
	m.fields[fieldDir] = root
	return m
}

// Results returns the current result set
func (m Model) Results() *ResultSet {
	return &m.results
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	nm := next.(Model)
	nm.results.Follow(nm.pageSize())
	return nm, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case scanDoneMsg:
		return m.handleScanDone(msg)

	case actionDoneMsg:
		return m.handleActionDone(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if m.cancel != nil {
				m.cancel()
			}
			m.quitting = true
			return m, tea.Quit
		}

		switch m.mode {
		case formMode:
			return m.updateForm(msg)
		case resultsMode:
			return m.updateResults(msg)
		case confirmMode:
			return m.updateConfirm(msg)
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.startScan()

	case "tab", "down":
		m.focus = (m.focus + 1) % fieldCount

	case "shift+tab", "up":
		m.focus = (m.focus + fieldCount - 1) % fieldCount

	case "esc":
		if m.scanning && m.cancel != nil {
			m.cancel()
			m.status = "Canceling search..."
			return m, nil
		}
		if m.last != nil {
			m.mode = resultsMode
		}

	case "backspace":
		v := []rune(m.fields[m.focus])
		if len(v) > 0 {
			m.fields[m.focus] = string(v[:len(v)-1])
		}

	case "ctrl+u":
		m.fields[m.focus] = ""

	default:
		switch msg.Type {
		case tea.KeyRunes:
			m.fields[m.focus] += string(msg.Runes)
		case tea.KeySpace:
			m.fields[m.focus] += " "
		}
	}

	return m, nil
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		m.results.Move(-1)
	case "down", "j":
		m.results.Move(1)
	case "pgup":
		m.results.Move(-m.pageSize())
	case "pgdown":
		m.results.Move(m.pageSize())
	case "home", "g":
		m.results.Home()
	case "end", "G":
		m.results.End()

	case "/", "s", "esc":
		m.mode = formMode

	case "enter", "o":
		return m.runAction("open")
	case "r":
		return m.runAction("reveal")
	case "i":
		return m.runAction("inspect")
	case "d", "delete":
		rec, ok := m.results.Selected()
		if !ok {
			return m, nil
		}
		if m.cfg != nil && m.cfg.TUI.ConfirmDelete {
			m.pending = rec.Path
			m.mode = confirmMode
			m.status = fmt.Sprintf("Delete %s? (y/n)", rec.Path)
			m.errMsg = ""
			return m, nil
		}
		return m.runAction("remove")
	}

	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	path := m.pending
	m.pending = ""
	m.mode = resultsMode

	switch msg.String() {
	case "y", "Y":
		return m, m.actionCmd("remove", path)
	default:
		m.status = "Delete canceled"
		return m, nil
	}
}

// startScan validates the form and starts the search in a command
func (m Model) startScan() (tea.Model, tea.Cmd) {
	if m.scanning {
		m.errMsg = "A search is already running"
		return m, nil
	}

	q, err := m.query()
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.scanning = true
	m.scanSeq++
	m.errMsg = ""
	m.status = fmt.Sprintf("Searching %s...", q.Root)

	m.logger.Debug("Starting search from form", zap.String("root", q.Root))

	seq := m.scanSeq
	searcher := m.searcher
	return m, func() tea.Msg {
		return scanDoneMsg{seq: seq, results: searcher.Run(ctx, q)}
	}
}

// query builds a Query from the form fields. Sizes are whole kilobytes and an
// empty size field means no bound.
func (m Model) query() (models.Query, error) {
	q := models.Query{
		Root:      strings.TrimSpace(m.fields[fieldDir]),
		Name:      m.fields[fieldName],
		Content:   m.fields[fieldContent],
		Extension: m.fields[fieldExt],
	}

	var err error
	if q.MinSize, err = parseKB(fieldLabels[fieldMinKB], m.fields[fieldMinKB]); err != nil {
		return q, err
	}
	if q.MaxSize, err = parseKB(fieldLabels[fieldMaxKB], m.fields[fieldMaxKB]); err != nil {
		return q, err
	}

	if err := q.Validate(); err != nil {
		return q, err
	}
	return q, nil
}

func parseKB(label, value string) (*int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	kb, err := strconv.ParseInt(value, 10, 64)
	if err != nil || kb < 0 {
		return nil, fmt.Errorf("%s: %q is not a whole number of kilobytes", label, value)
	}
	if kb > math.MaxInt64/1024 {
		return nil, fmt.Errorf("%s: %q is too large", label, value)
	}
	return models.Bytes(kb * 1024), nil
}

func (m Model) handleScanDone(msg scanDoneMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.scanSeq {
		return m, nil
	}
	m.scanning = false
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	m.last = msg.results
	m.results.Replace(msg.results.Records)
	m.mode = resultsMode
	m.errMsg = ""
	m.status = summary(msg.results)

	m.logger.Info("Search finished",
		zap.Int("matches", msg.results.Count()),
		zap.Bool("canceled", msg.results.Canceled))
	return m, nil
}

// summary returns the status line for a completed scan
func summary(r *models.SearchResults) string {
	s := fmt.Sprintf("%d files found", r.Count())
	if r.Stats != nil && r.Stats.Inaccessible > 0 {
		s += fmt.Sprintf(", %d inaccessible entries skipped", r.Stats.Inaccessible)
	}
	if r.Canceled {
		s += " (canceled)"
	}
	return s
}

// runAction starts action on the selected row
func (m Model) runAction(action string) (tea.Model, tea.Cmd) {
	rec, ok := m.results.Selected()
	if !ok {
		return m, nil
	}
	m.errMsg = ""
	return m, m.actionCmd(action, rec.Path)
}

func (m Model) actionCmd(action, path string) tea.Cmd {
	acts := m.actions
	return func() tea.Msg {
		msg := actionDoneMsg{action: action, path: path}
		switch action {
		case "open":
			msg.err = acts.Open(path)
		case "reveal":
			msg.err = acts.Reveal(path)
		case "remove":
			msg.err = acts.Remove(path)
		case "inspect":
			msg.details, msg.err = acts.Inspect(path)
		}
		return msg
	}
}

func (m Model) handleActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("Action failed",
			zap.String("action", msg.action),
			zap.String("path", msg.path),
			zap.Error(msg.err))
		if errors.Is(msg.err, actions.ErrStale) {
			m.errMsg = fmt.Sprintf("%s: %s no longer exists, search again to refresh", msg.action, msg.path)
		} else {
			m.errMsg = fmt.Sprintf("%s failed: %v", msg.action, msg.err)
		}
		return m, nil
	}

	m.errMsg = ""
	switch msg.action {
	case "open":
		m.status = "Opened " + msg.path
	case "reveal":
		m.status = "Revealed " + msg.path
	case "remove":
		m.results.RemovePath(msg.path)
		m.status = "Deleted " + msg.path
	case "inspect":
		m.status = describeDetails(msg.details)
	}
	return m, nil
}
