//go:build !linux && !darwin && !windows

package filesystem

import (
	"os"
	"time"
)

func getCreationTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
