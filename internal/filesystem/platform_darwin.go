//go:build darwin

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// getCreationTime returns the birth time (macOS)
func getCreationTime(info os.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(stat.Birthtimespec.Unix())
}
