package filesystem

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// ReadText reads the whole file as text. Byte sequences that are not valid
// UTF-8 are dropped rather than failing the read.
func ReadText(fs billy.Filesystem, path string) (string, error) {
	content, err := util.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return strings.ToValidUTF8(string(content), ""), nil
}

// ParseSize parses size string (e.g., "650K", "1M", "2GB", "100") to bytes
func ParseSize(sizeStr string) (int64, error) {
	s := strings.TrimSpace(sizeStr)
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	upper := strings.ToUpper(s)
	upper = strings.TrimSuffix(upper, "B")
	if upper == "" {
		return 0, fmt.Errorf("invalid size %q", sizeStr)
	}

	var multiplier int64 = 1
	switch upper[len(upper)-1] {
	case 'K':
		multiplier = 1024
		upper = upper[:len(upper)-1]
	case 'M':
		multiplier = 1024 * 1024
		upper = upper[:len(upper)-1]
	case 'G':
		multiplier = 1024 * 1024 * 1024
		upper = upper[:len(upper)-1]
	}

	size, err := strconv.ParseInt(strings.TrimSpace(upper), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", sizeStr, err)
	}
	if size < 0 {
		return 0, fmt.Errorf("size must not be negative: %q", sizeStr)
	}

	if size > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("size too large: %q", sizeStr)
	}

	return size * multiplier, nil
}

// FormatSize formats a byte count for humans
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
