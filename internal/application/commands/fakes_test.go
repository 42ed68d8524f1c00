package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"wemtool/internal/domain"
)

type fakeScanner struct {
	mapping *domain.Mapping
	stats   *domain.ScanStats
	err     error
}

func (f *fakeScanner) Scan(ctx context.Context, root string) (*domain.Mapping, *domain.ScanStats, error) {
	return f.mapping, f.stats, f.err
}

// fakeStore keeps snapshots in memory keyed by path
type fakeStore struct {
	saved map[string]*domain.Mapping
}

func newFakeStore() *fakeStore {
	return &fakeStore{saved: make(map[string]*domain.Mapping)}
}

func (f *fakeStore) Load(path string) (*domain.Mapping, error) {
	m, ok := f.saved[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrMappingNotFound)
	}
	return m, nil
}

func (f *fakeStore) Save(m *domain.Mapping, path string) error {
	f.saved[path] = m
	return nil
}

type fakeRelocator struct {
	calls   []domain.Direction
	summary *domain.RunSummary
	failing map[string]bool // sources that fail in Execute
}

func (f *fakeRelocator) Relocate(ctx context.Context, m *domain.Mapping, src, dst string, dir domain.Direction) (*domain.RunSummary, error) {
	f.calls = append(f.calls, dir)
	if f.summary != nil {
		return f.summary, nil
	}
	return &domain.RunSummary{Direction: dir, Attempted: m.Len(), Succeeded: m.Len()}, nil
}

func (f *fakeRelocator) Execute(ctx context.Context, tasks []domain.CopyTask) []domain.CopyResult {
	results := make([]domain.CopyResult, len(tasks))
	for i, t := range tasks {
		results[i] = domain.CopyResult{Task: t}
		if f.failing[t.Source] {
			results[i].Err = fmt.Errorf("%s: %w", t.Source, domain.ErrSourceMissing)
		}
	}
	return results
}

type fakeAnalyzer struct {
	report *domain.CategoryReport
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, root string) (*domain.CategoryReport, error) {
	return f.report, nil
}

type fakeReports struct {
	written  map[string]*domain.CategoryReport
	exported []string
}

func newFakeReports() *fakeReports {
	return &fakeReports{written: make(map[string]*domain.CategoryReport)}
}

func (f *fakeReports) Write(r *domain.CategoryReport, path string) error {
	f.written[path] = r
	return nil
}

func (f *fakeReports) Read(path string) (*domain.CategoryReport, error) {
	r, ok := f.written[path]
	if !ok {
		return nil, fmt.Errorf("%s: no such report", path)
	}
	return r, nil
}

func (f *fakeReports) ExportCSV(r *domain.CategoryReport, dir string) ([]string, error) {
	for _, s := range r.Sections {
		f.exported = append(f.exported, dir+"/"+s.Name+".csv")
	}
	return f.exported, nil
}

// fakeIndex answers queries from an in-memory mapping
type fakeIndex struct {
	entries []domain.MappingEntry
}

func (f *fakeIndex) Open(string) error { return nil }
func (f *fakeIndex) Close() error      { return nil }

func (f *fakeIndex) Rebuild(m *domain.Mapping) (*domain.SyncStats, error) {
	f.entries = m.Entries
	sources := 0
	for _, e := range m.Entries {
		sources += len(e.SourceFiles)
	}
	shared, _ := f.SharedNames()
	return &domain.SyncStats{EntriesWritten: len(m.Entries), SourcesWritten: sources, SharedNames: len(shared)}, nil
}

func (f *fakeIndex) match(e domain.MappingEntry) domain.IndexMatch {
	return domain.IndexMatch{ID: e.ID, DebugName: e.DebugName, SourceCount: len(e.SourceFiles)}
}

func (f *fakeIndex) LookupID(id string) (*domain.IndexMatch, error) {
	for _, e := range f.entries {
		if e.ID == id {
			m := f.match(e)
			return &m, nil
		}
	}
	return nil, nil
}

func (f *fakeIndex) LookupDebugName(name string) ([]domain.IndexMatch, error) {
	var out []domain.IndexMatch
	for _, e := range f.entries {
		if e.DebugName == name {
			out = append(out, f.match(e))
		}
	}
	return out, nil
}

func (f *fakeIndex) Search(query string, limit int) ([]domain.IndexMatch, error) {
	q := strings.ToLower(query)
	var out []domain.IndexMatch
	for _, e := range f.entries {
		if strings.Contains(strings.ToLower(e.DebugName), q) || strings.Contains(strings.ToLower(e.ID), q) {
			out = append(out, f.match(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DebugName < out[j].DebugName })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeIndex) SharedNames() ([]domain.SharedName, error) {
	ids := make(map[string][]string)
	for _, e := range f.entries {
		ids[e.DebugName] = append(ids[e.DebugName], e.ID)
	}
	var out []domain.SharedName
	for name, list := range ids {
		if len(list) > 1 {
			sort.Strings(list)
			out = append(out, domain.SharedName{DebugName: name, IDs: list})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DebugName < out[j].DebugName })
	return out, nil
}

func (f *fakeIndex) SourcesFor(id string) ([]string, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e.SourceFiles, nil
		}
	}
	return nil, nil
}

func (f *fakeIndex) Count() (int, error) {
	return len(f.entries), nil
}

type fakePlanner struct {
	tasks []domain.CopyTask
}

func (f *fakePlanner) Plan(ctx context.Context, src, dst string) ([]domain.CopyTask, *domain.DialogueStats, error) {
	return f.tasks, &domain.DialogueStats{FilesScanned: len(f.tasks), Matched: len(f.tasks)}, nil
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
