// Package actions implements the operations a user can run against a file
// returned by a search: open, remove, reveal in the file manager and inspect.
package actions

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// ErrStale is returned when the file behind a record moved or was deleted
// after the search that produced it
var ErrStale = errors.New("file no longer exists")

// ErrUnsupportedPlatform is returned when no opener is known for the OS
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Runner starts an external command without waiting for it to exit
type Runner func(name string, args ...string) error

// StartCommand is the default Runner
func StartCommand(name string, args ...string) error {
	cmd := newCommand(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the handler process in the background
	go cmd.Wait()
	return nil
}

// selectPrefix is the explorer switch that highlights a file
const selectPrefix = "/select,"

// selectCmdLine is the raw explorer command line selecting path. Explorer
// parses its own command line and needs the path quoted after the comma.
func selectCmdLine(path string) string {
	return `explorer ` + selectPrefix + `"` + path + `"`
}

// Details describes a file for the inspect action
type Details struct {
	Path     string      `json:"path" yaml:"path"`
	Size     int64       `json:"size" yaml:"size"`
	Mode     fs.FileMode `json:"mode" yaml:"mode"`
	ModTime  time.Time   `json:"mod_time" yaml:"mod_time"`
	MIMEType string      `json:"mime_type" yaml:"mime_type"`
}

// Actions runs row actions against paths on the host filesystem
type Actions struct {
	run    Runner
	goos   string
	logger *zap.Logger
}

// Option configures Actions
type Option func(*Actions)

// WithRunner replaces the command runner
func WithRunner(run Runner) Option {
	return func(a *Actions) {
		a.run = run
	}
}

// WithGOOS overrides the detected operating system
func WithGOOS(goos string) Option {
	return func(a *Actions) {
		a.goos = goos
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(a *Actions) {
		a.logger = logger
	}
}

// New creates Actions for the current platform
func New(opts ...Option) *Actions {
	a := &Actions{
		run:    StartCommand,
		goos:   runtime.GOOS,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Open hands the file to the OS default handler
func (a *Actions) Open(path string) error {
	if _, err := a.check(path); err != nil {
		return err
	}

	var err error
	switch a.goos {
	case "windows":
		// No shell: cmd.exe would run anything after & in the file name
		err = a.run("rundll32", "url.dll,FileProtocolHandler", path)
	case "darwin":
		err = a.run("open", path)
	case "linux", "freebsd", "openbsd", "netbsd":
		err = a.run("xdg-open", path)
	default:
		return fmt.Errorf("open %s: %w: %s", path, ErrUnsupportedPlatform, a.goos)
	}
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	a.logger.Debug("Opened file", zap.String("path", path))
	return nil
}

// Remove deletes the file. There is no confirmation and no recycle bin.
func (a *Actions) Remove(path string) error {
	if _, err := a.check(path); err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	a.logger.Info("Removed file", zap.String("path", path))
	return nil
}

// Reveal shows the file in the OS file manager. On platforms without a way to
// highlight a single file the containing directory is opened instead.
func (a *Actions) Reveal(path string) error {
	if _, err := a.check(path); err != nil {
		return err
	}

	var err error
	switch a.goos {
	case "windows":
		err = a.run("explorer", selectPrefix+path)
	case "darwin":
		err = a.run("open", "-R", path)
	case "linux", "freebsd", "openbsd", "netbsd":
		err = a.run("xdg-open", filepath.Dir(path))
	default:
		return fmt.Errorf("reveal %s: %w: %s", path, ErrUnsupportedPlatform, a.goos)
	}
	if err != nil {
		return fmt.Errorf("failed to reveal %s: %w", path, err)
	}

	a.logger.Debug("Revealed file", zap.String("path", path))
	return nil
}

// Inspect returns the current metadata and the sniffed MIME type of the file
func (a *Actions) Inspect(path string) (*Details, error) {
	info, err := a.check(path)
	if err != nil {
		return nil, err
	}

	details := &Details{
		Path:    path,
		Size:    info.Size(),
		Mode:    info.Mode(),
		ModTime: info.ModTime(),
	}

	if info.Mode().IsRegular() {
		mtype, err := mimetype.DetectFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to detect type of %s: %w", path, err)
		}
		details.MIMEType = mtype.String()
	}

	return details, nil
}

// check stats the path so stale records fail before any command is started
func (a *Actions) check(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrStale, err)
		}
		return nil, fmt.Errorf("failed to access %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return info, nil
}
