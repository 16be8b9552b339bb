package models

import "time"

// SearchResults contains one completed scan
type SearchResults struct {
	// Summary
	ID        string        `json:"id" yaml:"id"`
	Query     Query         `json:"query" yaml:"query"`
	StartTime time.Time     `json:"start_time" yaml:"start_time"`
	EndTime   time.Time     `json:"end_time" yaml:"end_time"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	Canceled  bool          `json:"canceled,omitempty" yaml:"canceled,omitempty"`
	Version   string        `json:"version" yaml:"version"`

	// Matches in traversal order
	Records []FileRecord `json:"records" yaml:"records"`

	// Statistics
	Stats *ScanStatistics `json:"statistics" yaml:"statistics"`

	// Report path
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}

// ScanStatistics contains counters gathered during a scan
type ScanStatistics struct {
	FilesVisited int   `json:"files_visited" yaml:"files_visited"`
	DirsVisited  int   `json:"dirs_visited" yaml:"dirs_visited"`
	Matched      int   `json:"matched" yaml:"matched"`
	TotalSize    int64 `json:"total_size" yaml:"total_size"`

	// Entries left out of the result set, keyed by reason
	Omitted map[OmitReason]int `json:"omitted,omitempty" yaml:"omitted,omitempty"`

	// Errors
	Inaccessible      int      `json:"inaccessible" yaml:"inaccessible"`
	InaccessiblePaths []string `json:"inaccessible_paths,omitempty" yaml:"inaccessible_paths,omitempty"`
}

// NewSearchResults creates an empty result set for q
func NewSearchResults(id string, q Query) *SearchResults {
	return &SearchResults{
		ID:      id,
		Query:   q,
		Records: make([]FileRecord, 0),
		Stats: &ScanStatistics{
			Omitted: make(map[OmitReason]int),
		},
	}
}

// Add folds one outcome into the results
func (r *SearchResults) Add(o Outcome) {
	if r.Stats == nil {
		r.Stats = &ScanStatistics{}
	}
	if r.Stats.Omitted == nil {
		r.Stats.Omitted = make(map[OmitReason]int)
	}

	if o.Reason != OmitAccessError {
		r.Stats.FilesVisited++
	}

	if o.IsMatch() {
		r.Records = append(r.Records, *o.Record)
		r.Stats.Matched++
		r.Stats.TotalSize += o.Record.Size
		return
	}

	r.Stats.Omitted[o.Reason]++
	if o.IsError() {
		r.Stats.Inaccessible++
		r.Stats.InaccessiblePaths = append(r.Stats.InaccessiblePaths, o.Path)
	}
}

// Count returns the number of matching records
func (r *SearchResults) Count() int {
	return len(r.Records)
}
