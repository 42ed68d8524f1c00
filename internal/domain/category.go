package domain

import (
	"slices"
	"sort"
	"strings"
)

// DefaultCatchAll is the category for files matching no prefix
const DefaultCatchAll = "Other"

// DefaultCategoryPrefixes is the ordered prefix list; first match wins
var DefaultCategoryPrefixes = []string{
	"Act_",
	"Ambience_",
	"Amb_",
	"Char_",
	"Cine_",
	"Dialogue_",
	"Foley_",
	"Music_",
	"SFX_",
	"UI_",
	"VO_",
}

// Categorizer assigns a category from a file's immediate parent directory name.
// Deeper ancestors are not consulted.
type Categorizer struct {
	prefixes []string
	lower    []string
	catchAll string
}

// NewCategorizer creates a categorizer; an empty catchAll uses DefaultCatchAll
func NewCategorizer(prefixes []string, catchAll string) *Categorizer {
	if catchAll == "" {
		catchAll = DefaultCatchAll
	}
	lower := make([]string, len(prefixes))
	for i, p := range prefixes {
		lower[i] = strings.ToLower(p)
	}
	return &Categorizer{prefixes: slices.Clone(prefixes), lower: lower, catchAll: catchAll}
}

// CatchAll returns the catch-all category name
func (c *Categorizer) CatchAll() string {
	return c.catchAll
}

// Category matches parentDir case-insensitively against the prefixes
func (c *Categorizer) Category(parentDir string) string {
	name := strings.ToLower(parentDir)
	for i, p := range c.lower {
		if strings.HasPrefix(name, p) {
			return c.prefixes[i]
		}
	}
	return c.catchAll
}

// CategoryRecord is a filename with every location and category it occurs under
type CategoryRecord struct {
	Filename      string
	Paths         []string
	AllCategories []string
	TotalBytes    int64
}

// IsDuplicate reports whether the filename occurs in more than one location
func (r CategoryRecord) IsDuplicate() bool {
	return len(r.Paths) > 1
}

// CategorySection is one category and the records listed under it
type CategorySection struct {
	Name    string
	Records []CategoryRecord
}

// CategoryReport lists sections sorted by name with the catch-all last
type CategoryReport struct {
	Sections []CategorySection
	Files    int
}

// Section returns the named section
func (r *CategoryReport) Section(name string) (CategorySection, bool) {
	for _, s := range r.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return CategorySection{}, false
}

// Duplicates returns every distinct record found in more than one location
func (r *CategoryReport) Duplicates() []CategoryRecord {
	seen := make(map[string]bool)
	var out []CategoryRecord
	for _, s := range r.Sections {
		for _, rec := range s.Records {
			if rec.IsDuplicate() && !seen[rec.Filename] {
				seen[rec.Filename] = true
				out = append(out, rec)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Filename < out[j].Filename })
	return out
}

type reportEntry struct {
	paths      []string
	categories map[string]struct{}
	bytes      int64
}

// ReportBuilder groups observed files by filename
type ReportBuilder struct {
	categorizer *Categorizer
	files       map[string]*reportEntry
	count       int
}

// NewReportBuilder creates a builder using c for category assignment
func NewReportBuilder(c *Categorizer) *ReportBuilder {
	return &ReportBuilder{categorizer: c, files: make(map[string]*reportEntry)}
}

// Observe records a file by its slash-separated path relative to the analyzed root
func (b *ReportBuilder) Observe(relPath string, size int64) {
	relPath = NormalizeSlashes(relPath)
	parts := strings.Split(relPath, "/")
	filename := parts[len(parts)-1]
	parent := ""
	if len(parts) > 1 {
		parent = parts[len(parts)-2]
	}

	e, ok := b.files[filename]
	if !ok {
		e = &reportEntry{categories: make(map[string]struct{})}
		b.files[filename] = e
	}
	e.paths = append(e.paths, relPath)
	e.categories[b.categorizer.Category(parent)] = struct{}{}
	e.bytes += size
	b.count++
}

// Finalize returns the sorted report. Each record is replicated verbatim
// under every category it belongs to.
func (b *ReportBuilder) Finalize() *CategoryReport {
	byCategory := make(map[string][]CategoryRecord)
	for name, e := range b.files {
		paths := slices.Clone(e.paths)
		sort.Strings(paths)
		cats := make([]string, 0, len(e.categories))
		for c := range e.categories {
			cats = append(cats, c)
		}
		sort.Strings(cats)

		rec := CategoryRecord{Filename: name, Paths: paths, AllCategories: cats, TotalBytes: e.bytes}
		for _, c := range cats {
			byCategory[c] = append(byCategory[c], rec)
		}
	}

	catchAll := b.categorizer.CatchAll()
	names := make([]string, 0, len(byCategory))
	for c := range byCategory {
		names = append(names, c)
	}
	sort.Slice(names, func(i, j int) bool {
		if (names[i] == catchAll) != (names[j] == catchAll) {
			return names[j] == catchAll
		}
		return names[i] < names[j]
	})

	report := &CategoryReport{Files: b.count}
	for _, c := range names {
		recs := byCategory[c]
		sort.Slice(recs, func(i, j int) bool { return recs[i].Filename < recs[j].Filename })
		report.Sections = append(report.Sections, CategorySection{Name: c, Records: recs})
	}
	return report
}
