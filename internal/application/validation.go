package application

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		// Format field name with spaces for error message (e.g., "srcRoot" -> "source root")
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "dstRoot" -> "destination root")
func formatFieldName(fieldName string) string {
	// Handle common patterns directly
	replacements := map[string]string{
		"root":         "root",
		"srcRoot":      "source root",
		"dstRoot":      "destination root",
		"mappingPath":  "mapping path",
		"analysisPath": "analysis path",
		"outDir":       "output directory",
		"query":        "query",
		"direction":    "direction",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	// Fallback: just return the field name as-is
	return fieldName
}

// ValidateDirectory checks that path names an existing directory.
// Returns a RootError otherwise.
func ValidateDirectory(fieldName, path string) error {
	if err := ValidateRequired(fieldName, path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		reason := "cannot be read"
		if errors.Is(err, fs.ErrNotExist) {
			reason = "does not exist"
		}
		return &RootError{Field: fieldName, Path: path, Reason: reason, Err: err}
	}
	if !info.IsDir() {
		return &RootError{Field: fieldName, Path: path, Reason: "is not a directory"}
	}
	return nil
}

// ValidateDistinctRoots rejects a destination that resolves to the source
func ValidateDistinctRoots(src, dst string) error {
	a, errA := filepath.Abs(src)
	b, errB := filepath.Abs(dst)
	if errA != nil || errB != nil {
		return nil
	}
	if filepath.Clean(a) == filepath.Clean(b) {
		return &RootError{Field: "dstRoot", Path: dst, Reason: "must differ from the source root", Err: ErrSameRoot}
	}
	return nil
}
