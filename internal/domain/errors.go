package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the mapping and relocation pipeline
var (
	ErrMappingNotFound = errors.New("mapping not found")
	ErrSourceMissing   = errors.New("source file missing")
	ErrUnsafePath      = errors.New("path escapes its root")
	ErrNotDispatched   = errors.New("task not dispatched")
	ErrSharedTarget    = errors.New("destination claimed by another ID")
)

// ParseError is a metadata or mapping document that could not be decoded
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CopyError is an I/O failure while copying an existing source file
type CopyError struct {
	Source      string
	Destination string
	Err         error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s -> %s: %v", e.Source, e.Destination, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// AmbiguousInverse records a debug name shared by several opaque IDs.
// Kept is the ID that survived inversion.
type AmbiguousInverse struct {
	DebugName string
	Kept      string
	Discarded string
}

func (a AmbiguousInverse) String() string {
	return fmt.Sprintf("debug name %s maps to %s and %s; keeping %s", a.DebugName, a.Discarded, a.Kept, a.Kept)
}
