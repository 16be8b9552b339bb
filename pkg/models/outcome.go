package models

// OmitReason explains why an entry did not make it into the result set
type OmitReason string

const (
	Matched          OmitReason = ""
	OmitNotRegular   OmitReason = "not_regular"
	OmitName         OmitReason = "name_mismatch"
	OmitExtension    OmitReason = "extension_mismatch"
	OmitBelowMinSize OmitReason = "below_min_size"
	OmitAboveMaxSize OmitReason = "above_max_size"
	OmitContent      OmitReason = "content_mismatch"
	OmitReadError    OmitReason = "read_error"
	OmitAccessError  OmitReason = "access_error"
)

// Outcome is the verdict of the filter pipeline for one visited entry
type Outcome struct {
	Path   string
	Record *FileRecord // Set only when Reason is Matched
	Reason OmitReason
	Err    error // Underlying error for read_error and access_error
}

// IsMatch reports whether the entry passed every active filter
func (o Outcome) IsMatch() bool {
	return o.Reason == Matched && o.Record != nil
}

// IsError reports whether the entry was dropped because it could not be read
func (o Outcome) IsError() bool {
	return o.Reason == OmitReadError || o.Reason == OmitAccessError
}
