package tui

import (
	"testing"

	"github.com/IvanShishkin/filehound/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(paths ...string) []models.FileRecord {
	out := make([]models.FileRecord, 0, len(paths))
	for _, p := range paths {
		out = append(out, models.FileRecord{Name: p, Path: "/root/" + p})
	}
	return out
}

func TestResultSet_Navigation(t *testing.T) {
	var rs ResultSet
	_, ok := rs.Selected()
	assert.False(t, ok)

	rs.Replace(records("a", "b", "c"))
	assert.Equal(t, 3, rs.Len())

	rec, ok := rs.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", rec.Name)

	rs.Move(1)
	assert.Equal(t, 1, rs.Cursor())
	rs.Move(10)
	assert.Equal(t, 2, rs.Cursor())
	rs.Move(-10)
	assert.Equal(t, 0, rs.Cursor())
	rs.End()
	assert.Equal(t, 2, rs.Cursor())
	rs.Home()
	assert.Equal(t, 0, rs.Cursor())
}

func TestResultSet_ReplaceCopies(t *testing.T) {
	src := records("a", "b")
	var rs ResultSet
	rs.Replace(src)
	rs.RemovePath("/root/a")

	assert.Equal(t, "a", src[0].Name, "caller slice must not change")
	assert.Equal(t, 1, rs.Len())
}

func TestResultSet_RemovePath(t *testing.T) {
	tests := []struct {
		name     string
		cursor   int
		remove   string
		expected []string
		cursorAt int
	}{
		{"before cursor", 2, "/root/a", []string{"b", "c"}, 1},
		{"at cursor", 1, "/root/b", []string{"a", "c"}, 1},
		{"last row at cursor", 2, "/root/c", []string{"a", "b"}, 1},
		{"after cursor", 0, "/root/c", []string{"a", "b"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rs ResultSet
			rs.Replace(records("a", "b", "c"))
			rs.Move(tt.cursor)

			require.True(t, rs.RemovePath(tt.remove))

			var names []string
			for _, r := range rs.Records() {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.expected, names)
			assert.Equal(t, tt.cursorAt, rs.Cursor())
		})
	}
}

func TestResultSet_RemoveMissing(t *testing.T) {
	var rs ResultSet
	rs.Replace(records("a"))
	assert.False(t, rs.RemovePath("/root/zzz"))
	assert.Equal(t, 1, rs.Len())

	require.True(t, rs.RemovePath("/root/a"))
	assert.Equal(t, 0, rs.Len())
	_, ok := rs.Selected()
	assert.False(t, ok)
}

func TestResultSet_Window(t *testing.T) {
	var rs ResultSet
	rs.Replace(records("a", "b", "c", "d", "e"))

	start, end := rs.Window(2)
	assert.Equal(t, [2]int{0, 2}, [2]int{start, end})

	rs.Move(3)
	rs.Follow(2)
	start, end = rs.Window(2)
	assert.Equal(t, [2]int{2, 4}, [2]int{start, end})

	// Moving up inside the page keeps the page in place
	rs.Move(-1)
	rs.Follow(2)
	start, end = rs.Window(2)
	assert.Equal(t, [2]int{2, 4}, [2]int{start, end})

	rs.Move(-1)
	rs.Follow(2)
	start, end = rs.Window(2)
	assert.Equal(t, [2]int{1, 3}, [2]int{start, end})

	rs.Home()
	start, end = rs.Window(10)
	assert.Equal(t, [2]int{0, 5}, [2]int{start, end})
}

func TestResultSet_WindowIsReadOnly(t *testing.T) {
	var rs ResultSet
	rs.Replace(records("a", "b", "c", "d", "e"))
	rs.Move(4)

	start, _ := rs.Window(2)
	assert.Equal(t, 3, start)
	assert.Equal(t, 0, rs.offset, "only Follow moves the offset")
}
