package filesystem

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/IvanShishkin/filehound/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestWalker_VisitsEveryEntry(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"a.txt":               "a",
		"sub/b.txt":           "bb",
		"sub/deeper/c.txt":    "ccc",
		".hidden/d.txt":       "dddd",
		"node_modules/e.json": "{}",
	})

	walker := NewWalker(NewOSFilesystem(tmpDir), zap.NewNop())

	var files []string
	dirs := 0
	err := walker.Walk(func(info *models.FileInfo, err error) error {
		require.NoError(t, err)
		if info.IsDir {
			dirs++
			return nil
		}
		files = append(files, filepath.ToSlash(info.RelPath))
		return nil
	})
	require.NoError(t, err)

	sort.Strings(files)
	assert.Equal(t, []string{
		".hidden/d.txt",
		"a.txt",
		"node_modules/e.json",
		"sub/b.txt",
		"sub/deeper/c.txt",
	}, files)
	// root, sub, sub/deeper, .hidden, node_modules
	assert.Equal(t, 5, dirs)
}

func TestWalker_FileInfo(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"dir/file.txt": "hello"})

	walker := NewWalker(NewOSFilesystem(tmpDir), zap.NewNop())

	var got *models.FileInfo
	require.NoError(t, walker.Walk(func(info *models.FileInfo, err error) error {
		if info.Name == "file.txt" {
			got = info
		}
		return nil
	}))

	require.NotNil(t, got)
	assert.Equal(t, filepath.Join("dir", "file.txt"), got.RelPath)
	assert.Equal(t, int64(5), got.Size)
	assert.True(t, got.IsRegular())
	assert.False(t, got.IsDir)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.ModTime.IsZero())
}

func TestWalker_Symlink(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{"target.txt": "x"})
	if err := os.Symlink(filepath.Join(tmpDir, "target.txt"), filepath.Join(tmpDir, "link.txt")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	walker := NewWalker(NewOSFilesystem(tmpDir), zap.NewNop())

	modes := make(map[string]os.FileMode)
	require.NoError(t, walker.Walk(func(info *models.FileInfo, err error) error {
		modes[info.Name] = info.Mode
		return nil
	}))

	assert.True(t, modes["target.txt"].IsRegular())
	assert.True(t, modes["link.txt"]&os.ModeSymlink != 0)
}

func TestWalker_UnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	tmpDir := t.TempDir()
	writeTree(t, tmpDir, map[string]string{
		"open/a.txt":   "a",
		"locked/b.txt": "b",
	})
	locked := filepath.Join(tmpDir, "locked")
	require.NoError(t, os.Chmod(locked, 0000))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	walker := NewWalker(NewOSFilesystem(tmpDir), zap.NewNop())

	var errs []string
	var files []string
	require.NoError(t, walker.Walk(func(info *models.FileInfo, err error) error {
		if err != nil {
			errs = append(errs, info.RelPath)
			return nil
		}
		if !info.IsDir {
			files = append(files, info.Name)
		}
		return nil
	}))

	assert.Equal(t, []string{"locked"}, errs)
	assert.Equal(t, []string{"a.txt"}, files)
}
