package core

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"strings"
	"time"

	"github.com/IvanShishkin/filehound/internal/filesystem"
	"github.com/IvanShishkin/filehound/pkg/models"
	"github.com/go-git/go-billy/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Version is reported in every result set
const Version = "0.1.0"

// ErrRootNotDirectory is recorded when the query root is not a directory
var ErrRootNotDirectory = errors.New("root is not a directory")

// errStopped ends a walk early when the consumer of a sequence stops pulling
var errStopped = errors.New("iteration stopped")

// ProgressCallback is called to report scan progress
type ProgressCallback func(phase string, visited, matched int, path string)

// FilesystemFactory opens the filesystem a query root is walked on
type FilesystemFactory func(root string) billy.Filesystem

// Option configures a Scanner
type Option func(*Scanner)

// WithFilesystem replaces the host filesystem, mostly for tests
func WithFilesystem(factory FilesystemFactory) Option {
	return func(s *Scanner) {
		s.newFS = factory
	}
}

// WithProgressCallback sets the progress callback function
func WithProgressCallback(cb ProgressCallback) Option {
	return func(s *Scanner) {
		s.progressCallback = cb
	}
}

// Scanner walks a directory tree and filters its files against a query.
// It holds no per-scan state, so one Scanner may serve any number of scans.
type Scanner struct {
	logger           *zap.Logger
	newFS            FilesystemFactory
	progressCallback ProgressCallback
}

// NewScanner creates a new scanner instance
func NewScanner(logger *zap.Logger, opts ...Option) *Scanner {
	s := &Scanner{
		logger: logger,
		newFS:  filesystem.NewOSFilesystem,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// reportProgress calls the progress callback if set
func (s *Scanner) reportProgress(phase string, visited, matched int, path string) {
	if s.progressCallback != nil {
		s.progressCallback(phase, visited, matched, path)
	}
}

// Outcomes lazily yields one outcome per visited file or inaccessible entry.
// Every call performs a fresh traversal.
func (s *Scanner) Outcomes(ctx context.Context, q models.Query) iter.Seq[models.Outcome] {
	return func(yield func(models.Outcome) bool) {
		if err := s.walk(ctx, q, nil, yield); err != nil {
			s.logger.Debug("Walk stopped", zap.String("root", q.Root), zap.Error(err))
		}
	}
}

// Search lazily yields the records of matching files in traversal order
func (s *Scanner) Search(ctx context.Context, q models.Query) iter.Seq[models.FileRecord] {
	return func(yield func(models.FileRecord) bool) {
		for outcome := range s.Outcomes(ctx, q) {
			if !outcome.IsMatch() {
				continue
			}
			if !yield(*outcome.Record) {
				return
			}
		}
	}
}

// Run performs a complete scan and returns the result as one batch.
// Per-entry failures never abort the scan; they are counted in the statistics.
func (s *Scanner) Run(ctx context.Context, q models.Query) *models.SearchResults {
	results := models.NewSearchResults(uuid.NewString(), q)
	results.StartTime = time.Now()
	results.Version = Version

	s.logger.Info("Starting search",
		zap.String("id", results.ID),
		zap.String("root", q.Root),
		zap.String("name", q.Name),
		zap.String("extension", q.Extension),
		zap.Bool("content", q.NeedsContent()))

	if q.InvertedRange() {
		s.logger.Warn("Minimum size is greater than maximum size, nothing can match",
			zap.Int64("min_size", *q.MinSize),
			zap.Int64("max_size", *q.MaxSize))
	}

	s.reportProgress("started", 0, 0, q.Root)

	lastReport := time.Now()
	onDir := func() {
		results.Stats.DirsVisited++
	}
	err := s.walk(ctx, q, onDir, func(outcome models.Outcome) bool {
		results.Add(outcome)

		// Report progress every 100ms
		if time.Since(lastReport) > 100*time.Millisecond {
			s.reportProgress("walking", results.Stats.FilesVisited, results.Stats.Matched, outcome.Path)
			lastReport = time.Now()
		}
		return true
	})
	if err != nil {
		results.Canceled = true
		s.logger.Warn("Search canceled", zap.String("id", results.ID), zap.Error(err))
	}

	results.EndTime = time.Now()
	results.Duration = results.EndTime.Sub(results.StartTime)

	s.reportProgress("complete", results.Stats.FilesVisited, results.Stats.Matched, q.Root)

	s.logger.Info("Search completed",
		zap.String("id", results.ID),
		zap.Duration("duration", results.Duration),
		zap.Int("files_visited", results.Stats.FilesVisited),
		zap.Int("matched", results.Stats.Matched),
		zap.Int("inaccessible", results.Stats.Inaccessible))

	return results
}

// walk drives the walker and turns each entry into an outcome.
// It returns a non-nil error only when ctx ends the walk.
func (s *Scanner) walk(ctx context.Context, q models.Query, onDir func(), yield func(models.Outcome) bool) error {
	fs := s.newFS(walkRoot(q.Root))
	walker := filesystem.NewWalker(fs, s.logger)

	err := walker.Walk(func(info *models.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		var outcome models.Outcome
		switch {
		case err != nil:
			outcome = models.Outcome{
				Path:   fullPath(q.Root, info.RelPath),
				Reason: models.OmitAccessError,
				Err:    err,
			}
		case info.RelPath == "." && !info.IsDir:
			outcome = models.Outcome{
				Path:   q.Root,
				Reason: models.OmitAccessError,
				Err:    fmt.Errorf("%w: %s", ErrRootNotDirectory, q.Root),
			}
		case info.IsDir:
			if onDir != nil {
				onDir()
			}
			return nil
		default:
			outcome = s.evaluate(fs, q, info)
		}

		if !yield(outcome) {
			return errStopped
		}
		return nil
	})

	if errors.Is(err, errStopped) {
		return nil
	}
	return err
}

// evaluate runs the filter pipeline for one entry. Cheap metadata checks come
// first and the first failing filter decides the outcome.
func (s *Scanner) evaluate(fs billy.Filesystem, q models.Query, info *models.FileInfo) models.Outcome {
	outcome := models.Outcome{Path: fullPath(q.Root, info.RelPath)}

	if !info.IsRegular() {
		outcome.Reason = models.OmitNotRegular
		return outcome
	}

	if q.Name != "" && !strings.Contains(info.Name, q.Name) {
		outcome.Reason = models.OmitName
		return outcome
	}

	if q.Extension != "" && !strings.HasSuffix(info.Name, q.Extension) {
		outcome.Reason = models.OmitExtension
		return outcome
	}

	if q.MinSize != nil && info.Size < *q.MinSize {
		outcome.Reason = models.OmitBelowMinSize
		return outcome
	}
	if q.MaxSize != nil && info.Size > *q.MaxSize {
		outcome.Reason = models.OmitAboveMaxSize
		return outcome
	}

	if q.NeedsContent() {
		text, err := filesystem.ReadText(fs, info.Path)
		if err != nil {
			s.logger.Debug("Skipping unreadable file",
				zap.String("path", outcome.Path),
				zap.Error(err))
			outcome.Reason = models.OmitReadError
			outcome.Err = err
			return outcome
		}
		if !strings.Contains(text, q.Content) {
			outcome.Reason = models.OmitContent
			return outcome
		}
	}

	outcome.Record = &models.FileRecord{
		Name:      info.Name,
		Path:      outcome.Path,
		Size:      info.Size,
		CreatedAt: info.CreatedAt,
	}
	return outcome
}

// walkRoot resolves a symlinked root so the walk starts in its target
// directory. Records keep the root as given.
func walkRoot(root string) string {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return root
	}
	return resolved
}

// fullPath joins the query root with a path relative to it
func fullPath(root, rel string) string {
	if rel == "" || rel == "." {
		return root
	}
	return filepath.Join(root, rel)
}
