package models

import (
	"io/fs"
	"time"
)

// FileRecord is the immutable summary of one matching file
type FileRecord struct {
	Name      string    `json:"name" yaml:"name"`             // Base name
	Path      string    `json:"path" yaml:"path"`             // Full path (root joined with the relative path)
	Size      int64     `json:"size" yaml:"size"`             // Size in bytes at the moment of the check
	CreatedAt time.Time `json:"created_at" yaml:"created_at"` // Platform-reported creation time
}

// SizeKB returns the size in whole kilobytes, rounded down
func (r FileRecord) SizeKB() int64 {
	return r.Size / 1024
}

// FileInfo contains basic file information produced by the walker
type FileInfo struct {
	Path      string // Path as seen by the walked filesystem
	RelPath   string // Path relative to the scan root
	Name      string
	Size      int64
	ModTime   time.Time
	CreatedAt time.Time
	Mode      fs.FileMode
	IsDir     bool
}

// IsRegular reports whether the entry is a regular file
func (f *FileInfo) IsRegular() bool {
	return f.Mode.IsRegular()
}
