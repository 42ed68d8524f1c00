package application

import "wemtool/internal/domain"

// Re-export relocation directions for use by adapters
type Direction = domain.Direction

const (
	Forward = domain.Forward
	Reverse = domain.Reverse
)

// Re-export domain types for use by adapters
type (
	Mapping        = domain.Mapping
	MappingEntry   = domain.MappingEntry
	ScanStats      = domain.ScanStats
	RunSummary     = domain.RunSummary
	CopyFailure    = domain.CopyFailure
	CategoryReport = domain.CategoryReport
	CategoryRecord = domain.CategoryRecord
	IndexMatch     = domain.IndexMatch
	SharedName     = domain.SharedName
)

// ParseDirection accepts "forward"/"unobfuscate" and "reverse"/"obfuscate"
func ParseDirection(s string) (Direction, error) {
	d, err := domain.ParseDirection(s)
	if err != nil {
		return 0, &ValidationError{Field: "direction", Message: err.Error()}
	}
	return d, nil
}
