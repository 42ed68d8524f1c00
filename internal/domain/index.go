package domain

import "time"

// IndexMatch is a mapping row returned by an index query
type IndexMatch struct {
	ID          string
	DebugName   string
	SourceCount int
}

// SharedName is a debug name asserted for more than one opaque ID
type SharedName struct {
	DebugName string
	IDs       []string // sorted
}

// SyncStats holds statistics from an index rebuild
type SyncStats struct {
	EntriesWritten int
	SourcesWritten int
	SharedNames    int
	Duration       time.Duration
}
