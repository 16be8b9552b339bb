package filesystem

import (
	"os"
	"path/filepath"

	"github.com/IvanShishkin/filehound/pkg/models"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"
)

// WalkFunc is called for every visited entry. When err is non-nil the entry
// could not be stat'ed or, for a directory, could not be listed.
type WalkFunc func(info *models.FileInfo, err error) error

// Walker walks a filesystem tree
type Walker struct {
	fs     billy.Filesystem
	logger *zap.Logger
}

// NewWalker creates a new walker over fs
func NewWalker(fs billy.Filesystem, logger *zap.Logger) *Walker {
	return &Walker{
		fs:     fs,
		logger: logger,
	}
}

// NewOSFilesystem returns a billy filesystem rooted at root on the host OS
func NewOSFilesystem(root string) billy.Filesystem {
	return osfs.New(root)
}

// Walk recursively walks the tree from the filesystem root.
// Symlinks are reported but never followed; hidden directories are descended into.
func (w *Walker) Walk(callback WalkFunc) error {
	return util.Walk(w.fs, ".", func(path string, info os.FileInfo, err error) error {
		fileInfo := w.newFileInfo(path, info)

		if err != nil {
			w.logger.Warn("Error accessing path", zap.String("path", path), zap.Error(err))
			// Returning nil here skips the children of an unreadable directory
			return callback(fileInfo, err)
		}

		return callback(fileInfo, nil)
	})
}

func (w *Walker) newFileInfo(path string, info os.FileInfo) *models.FileInfo {
	rel := filepath.Clean(path)
	fileInfo := &models.FileInfo{
		Path:    rel,
		RelPath: rel,
		Name:    filepath.Base(rel),
	}
	if info == nil {
		return fileInfo
	}

	fileInfo.Name = info.Name()
	fileInfo.Size = info.Size()
	fileInfo.ModTime = info.ModTime()
	fileInfo.Mode = info.Mode()
	fileInfo.IsDir = info.IsDir()
	fileInfo.CreatedAt = getCreationTime(info)

	return fileInfo
}
