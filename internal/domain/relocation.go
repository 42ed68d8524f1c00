package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Direction selects which naming scheme files are relocated into
type Direction int

const (
	// Forward renames opaque IDs to debug names ("unobfuscate")
	Forward Direction = iota
	// Reverse renames debug names back to opaque IDs ("obfuscate")
	Reverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "unobfuscate"
	case Reverse:
		return "obfuscate"
	default:
		return "unknown"
	}
}

// ErrorLogName is the file a run's failures are written to
func (d Direction) ErrorLogName() string {
	return d.String() + "_errors.log"
}

// ParseDirection accepts "forward"/"unobfuscate" and "reverse"/"obfuscate"
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "unobfuscate":
		return Forward, nil
	case "reverse", "obfuscate":
		return Reverse, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// CopyTask is a single file copy
type CopyTask struct {
	Source      string
	Destination string
}

// CopyResult is the outcome of one CopyTask; Err is nil on success
type CopyResult struct {
	Task CopyTask
	Err  error
}

// CopyFailure is a failed task with a human-readable reason
type CopyFailure struct {
	Task   CopyTask
	Reason string
	Err    error
}

// Line formats the failure for the error log
func (f CopyFailure) Line() string {
	return fmt.Sprintf("%s: %s", f.Task.Source, f.Reason)
}

// FailureFromResult classifies a failed result
func FailureFromResult(r CopyResult) CopyFailure {
	reason := r.Err.Error()
	var copyErr *CopyError
	switch {
	case errors.Is(r.Err, ErrSourceMissing):
		reason = ErrSourceMissing.Error()
	case errors.As(r.Err, &copyErr):
		reason = copyErr.Err.Error()
	}
	return CopyFailure{Task: r.Task, Reason: reason, Err: r.Err}
}

// RunSummary aggregates a relocation run
type RunSummary struct {
	Direction Direction
	Attempted int
	Succeeded int
	Failures  []CopyFailure      // in task order
	Discarded []AmbiguousInverse // reverse runs only
	ErrorLog  string             // path of the written error log, empty when none
	Elapsed   time.Duration
}

// Failed returns the number of failed tasks
func (s *RunSummary) Failed() int {
	return len(s.Failures)
}

// ErrorLines returns one formatted line per failure
func (s *RunSummary) ErrorLines() []string {
	lines := make([]string, len(s.Failures))
	for i, f := range s.Failures {
		lines[i] = f.Line()
	}
	return lines
}

// Message is a one-line human summary
func (s *RunSummary) Message() string {
	msg := fmt.Sprintf("%s: %d/%d files copied", s.Direction, s.Succeeded, s.Attempted)
	if n := s.Failed(); n > 0 {
		msg += fmt.Sprintf(", %d failed", n)
		if s.ErrorLog != "" {
			msg += fmt.Sprintf(" (see %s)", s.ErrorLog)
		}
	}
	if n := len(s.Discarded); n > 0 {
		msg += fmt.Sprintf(", %d ambiguous debug names", n)
	}
	return msg
}

// DialogueStats counts what a dialogue organizer plan looked at
type DialogueStats struct {
	FilesScanned int
	ParseErrors  int
	Matched      int
	Unsafe       int // object paths escaping the destination
}
