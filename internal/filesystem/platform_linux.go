//go:build linux

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// getCreationTime returns the inode change time, the closest Linux exposes through stat
func getCreationTime(info os.FileInfo) time.Time {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(stat.Ctim.Unix())
}
