package tui

import "github.com/IvanShishkin/filehound/pkg/models"

// ResultSet is the list of records currently shown in the table together
// with the cursor position. It is owned by the Model and replaced wholesale
// by each completed scan.
type ResultSet struct {
	records []models.FileRecord
	cursor  int
	offset  int
}

// Replace swaps in the records of a new scan and resets the cursor
func (rs *ResultSet) Replace(records []models.FileRecord) {
	rs.records = append([]models.FileRecord(nil), records...)
	rs.cursor = 0
	rs.offset = 0
}

// Len returns the number of rows
func (rs *ResultSet) Len() int {
	return len(rs.records)
}

// Records returns the rows in display order
func (rs *ResultSet) Records() []models.FileRecord {
	return rs.records
}

// Cursor returns the selected row index
func (rs *ResultSet) Cursor() int {
	return rs.cursor
}

// Selected returns the record under the cursor
func (rs *ResultSet) Selected() (models.FileRecord, bool) {
	if rs.cursor < 0 || rs.cursor >= len(rs.records) {
		return models.FileRecord{}, false
	}
	return rs.records[rs.cursor], true
}

// Move shifts the cursor by delta, clamped to the rows
func (rs *ResultSet) Move(delta int) {
	rs.cursor += delta
	rs.clamp()
}

// Home moves the cursor to the first row
func (rs *ResultSet) Home() {
	rs.cursor = 0
	rs.offset = 0
}

// End moves the cursor to the last row
func (rs *ResultSet) End() {
	rs.cursor = len(rs.records) - 1
	rs.clamp()
}

// RemovePath drops the row for path. It reports whether a row was removed.
func (rs *ResultSet) RemovePath(path string) bool {
	for i, rec := range rs.records {
		if rec.Path != path {
			continue
		}
		rs.records = append(rs.records[:i], rs.records[i+1:]...)
		if rs.cursor > i {
			rs.cursor--
		}
		rs.clamp()
		return true
	}
	return false
}

// Window returns the first and one-past-last row visible in a page of height
// rows, scrolling from the current offset only as far as the cursor needs
func (rs *ResultSet) Window(height int) (int, int) {
	if height <= 0 {
		height = 1
	}
	start := rs.offset
	if rs.cursor < start {
		start = rs.cursor
	} else if rs.cursor >= start+height {
		start = rs.cursor - height + 1
	}
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > len(rs.records) {
		end = len(rs.records)
	}
	return start, end
}

// Follow stores the scroll offset for the current cursor
func (rs *ResultSet) Follow(height int) {
	rs.offset, _ = rs.Window(height)
}

func (rs *ResultSet) clamp() {
	if rs.cursor >= len(rs.records) {
		rs.cursor = len(rs.records) - 1
	}
	if rs.cursor < 0 {
		rs.cursor = 0
	}
}
