package filesystem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wemtool/internal/domain"
	"wemtool/internal/ports"
)

// Relocator copies asset files between the opaque and debug naming schemes
type Relocator struct {
	logger *slog.Logger
	pool   *Pool
	logDir string
}

// Ensure Relocator implements Relocator
var _ ports.Relocator = (*Relocator)(nil)

// NewRelocator creates a relocator running at most workers copies at once.
// Error logs go to logDir, or to the destination root when logDir is empty.
func NewRelocator(logger *slog.Logger, workers int, logDir string) *Relocator {
	return &Relocator{logger: logger, pool: NewPool(workers), logDir: logDir}
}

// planned is a task or the reason it could not be built
type planned struct {
	id   string
	task domain.CopyTask
	err  error
}

// Relocate plans every copy for the mapping, runs them on the pool and
// returns the summary. Per-file failures never abort the run; they are
// collected in the summary and written to the direction's error log.
func (r *Relocator) Relocate(ctx context.Context, m *domain.Mapping, srcRoot, dstRoot string, dir domain.Direction) (*domain.RunSummary, error) {
	start := time.Now()
	srcRoot = ExpandHome(srcRoot)
	dstRoot = ExpandHome(dstRoot)
	if err := requireDir(srcRoot); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dstRoot, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dstRoot, err)
	}

	var plan []planned
	var discarded []domain.AmbiguousInverse
	switch dir {
	case domain.Forward:
		plan = planForward(m, srcRoot, dstRoot)
		for _, p := range plan {
			if errors.Is(p.err, domain.ErrSharedTarget) {
				r.logger.Warn("skipping ID with shared destination",
					"id", p.id,
					"destination", p.task.Destination,
					"error", p.err)
			}
		}
	case domain.Reverse:
		plan, discarded = planReverse(m, srcRoot, dstRoot)
		for _, a := range discarded {
			r.logger.Warn("ambiguous debug name",
				"debug_name", a.DebugName,
				"kept", a.Kept,
				"discarded", a.Discarded)
		}
	default:
		return nil, fmt.Errorf("unknown direction %d", dir)
	}

	var tasks []domain.CopyTask
	for _, p := range plan {
		if p.err == nil {
			tasks = append(tasks, p.task)
		}
	}
	r.prepareDirs(tasks)

	r.logger.Info("relocating",
		"direction", dir.String(),
		"tasks", len(plan),
		"workers", r.pool.Workers())

	results := r.Execute(ctx, tasks)

	summary := &domain.RunSummary{Direction: dir, Attempted: len(plan), Discarded: discarded}
	next := 0
	for _, p := range plan {
		res := domain.CopyResult{Task: p.task, Err: p.err}
		if p.err == nil {
			res = results[next]
			next++
		}
		if res.Err != nil {
			summary.Failures = append(summary.Failures, domain.FailureFromResult(res))
			continue
		}
		summary.Succeeded++
	}

	if summary.Failed() > 0 {
		logPath, err := r.writeErrorLog(dir, dstRoot, summary.ErrorLines())
		if err != nil {
			r.logger.Error("failed to write error log", "error", err)
		} else {
			summary.ErrorLog = logPath
		}
	}
	summary.Elapsed = time.Since(start)

	r.logger.Info("relocation complete",
		"direction", dir.String(),
		"succeeded", summary.Succeeded,
		"failed", summary.Failed(),
		"elapsed", summary.Elapsed.Round(time.Millisecond))
	return summary, nil
}

// Execute copies every task on the pool and returns results in task order.
// Tasks not yet dispatched when ctx is done fail with domain.ErrNotDispatched.
func (r *Relocator) Execute(ctx context.Context, tasks []domain.CopyTask) []domain.CopyResult {
	return Run(ctx, r.pool, len(tasks),
		func(i int) domain.CopyResult {
			t := tasks[i]
			err := CopyFile(t.Source, t.Destination)
			if err != nil {
				r.logger.Debug("copy failed", "source", t.Source, "error", err)
			} else {
				r.logger.Debug("copied", "source", t.Source, "destination", t.Destination)
			}
			return domain.CopyResult{Task: t, Err: err}
		},
		func(i int) domain.CopyResult {
			return domain.CopyResult{Task: tasks[i], Err: domain.ErrNotDispatched}
		})
}

// prepareDirs creates every destination parent once before dispatch
func (r *Relocator) prepareDirs(tasks []domain.CopyTask) {
	seen := make(map[string]bool)
	for _, t := range tasks {
		d := filepath.Dir(t.Destination)
		if seen[d] {
			continue
		}
		seen[d] = true
		if err := os.MkdirAll(d, 0755); err != nil {
			r.logger.Warn("failed to create destination directory", "path", d, "error", err)
		}
	}
}

func (r *Relocator) writeErrorLog(dir domain.Direction, dstRoot string, lines []string) (string, error) {
	logDir := r.logDir
	if logDir == "" {
		logDir = dstRoot
	}
	logDir = ExpandHome(logDir)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", logDir, err)
	}

	p := filepath.Join(logDir, dir.ErrorLogName())
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", p, err)
	}
	return p, nil
}

// under joins a slash-separated relative path onto root, refusing paths
// that escape it
func under(root, rel string) (string, error) {
	clean, err := domain.CleanRel(rel)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, filepath.FromSlash(clean)), nil
}

func planForward(m *domain.Mapping, srcRoot, dstRoot string) []planned {
	plan := make([]planned, 0, m.Len())
	for _, e := range m.Entries {
		p := planned{id: e.ID}
		src, err := under(srcRoot, e.ID)
		if err != nil {
			p.task = domain.CopyTask{Source: e.ID}
			p.err = err
			plan = append(plan, p)
			continue
		}
		p.task.Source = src
		dst, err := under(dstRoot, domain.ForwardRelPath(e.ID, e.DebugName))
		if err != nil {
			p.err = err
		}
		p.task.Destination = dst
		plan = append(plan, p)
	}
	failSharedTargets(plan)
	return plan
}

// failSharedTargets keeps one task per destination, the one with the
// greatest ID, and fails the others with domain.ErrSharedTarget
func failSharedTargets(plan []planned) {
	winner := make(map[string]int)
	for i, p := range plan {
		if p.err != nil {
			continue
		}
		j, ok := winner[p.task.Destination]
		if !ok || plan[j].id < p.id {
			winner[p.task.Destination] = i
		}
	}
	for i, p := range plan {
		if p.err != nil {
			continue
		}
		if j := winner[p.task.Destination]; j != i {
			plan[i].err = fmt.Errorf("%s shares its destination with %s, which is kept: %w", p.id, plan[j].id, domain.ErrSharedTarget)
		}
	}
}

func planReverse(m *domain.Mapping, srcRoot, dstRoot string) ([]planned, []domain.AmbiguousInverse) {
	inverse, discarded := m.Invert()
	plan := make([]planned, 0, len(inverse))
	for _, inv := range inverse {
		var p planned
		p.task.Source = inv.DebugName

		var candidates []string
		for _, rel := range domain.ReverseCandidates(inv.ID, inv.DebugName) {
			c, err := under(srcRoot, rel)
			if err != nil {
				p.err = err
				break
			}
			candidates = append(candidates, c)
		}
		if p.err == nil {
			p.task.Source = pickExisting(candidates)
			p.task.Destination, p.err = under(dstRoot, inv.ID)
		}
		plan = append(plan, p)
	}
	return plan, discarded
}

// pickExisting returns the first candidate that exists, or the first
// candidate when none do so the copy reports it missing
func pickExisting(candidates []string) string {
	for _, c := range candidates {
		if fileExists(c) {
			return c
		}
	}
	return candidates[0]
}
