package filesystem

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"wemtool/internal/domain"
	"wemtool/internal/ports"
)

type reportRecord struct {
	Paths         []string `json:"paths"`
	AllCategories []string `json:"all_categories"`
	TotalBytes    int64    `json:"total_bytes,omitempty"`
}

type reportSection = orderedmap.OrderedMap[string, reportRecord]

// EncodeReport renders the category report as nested JSON objects whose key
// order follows the report: categories with the catch-all last, then filenames.
func EncodeReport(r *domain.CategoryReport) ([]byte, error) {
	top := orderedmap.New[string, *reportSection]()
	for _, s := range r.Sections {
		section := orderedmap.New[string, reportRecord]()
		for _, rec := range s.Records {
			section.Set(rec.Filename, reportRecord{
				Paths:         rec.Paths,
				AllCategories: rec.AllCategories,
				TotalBytes:    rec.TotalBytes,
			})
		}
		top.Set(s.Name, section)
	}

	data, err := json.MarshalIndent(top, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteReport writes the category report to path
func WriteReport(r *domain.CategoryReport, path string) error {
	data, err := EncodeReport(r)
	if err != nil {
		return err
	}
	return writeFileAtomic(ExpandHome(path), data)
}

// ReadReport loads a category report, keeping the file's section and
// filename order
func ReadReport(path string) (*domain.CategoryReport, error) {
	path = ExpandHome(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	top := orderedmap.New[string, *reportSection]()
	if err := json.Unmarshal(data, top); err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}

	report := &domain.CategoryReport{}
	counted := make(map[string]bool)
	for pair := top.Oldest(); pair != nil; pair = pair.Next() {
		section := domain.CategorySection{Name: pair.Key}
		if pair.Value != nil {
			for rec := pair.Value.Oldest(); rec != nil; rec = rec.Next() {
				section.Records = append(section.Records, domain.CategoryRecord{
					Filename:      rec.Key,
					Paths:         rec.Value.Paths,
					AllCategories: rec.Value.AllCategories,
					TotalBytes:    rec.Value.TotalBytes,
				})
				if !counted[rec.Key] {
					counted[rec.Key] = true
					report.Files += len(rec.Value.Paths)
				}
			}
		}
		report.Sections = append(report.Sections, section)
	}
	return report, nil
}

// SanitizeSheetName makes a category usable as a spreadsheet sheet or file name
func SanitizeSheetName(name string) string {
	name = strings.NewReplacer(":", "_", "/", "_", `\`, "_").Replace(name)
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	return name
}

// ExportCSV writes one CSV per non-empty category into outDir with one row
// per file location, and returns the written paths in report order.
func ExportCSV(r *domain.CategoryReport, outDir string) ([]string, error) {
	outDir = ExpandHome(outDir)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	var written []string
	for _, s := range r.Sections {
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write([]string{"Filename", "Relative Path", "All Categories"}); err != nil {
			return written, err
		}
		rows := 0
		for _, rec := range s.Records {
			cats := strings.Join(rec.AllCategories, ", ")
			for _, p := range rec.Paths {
				if err := w.Write([]string{rec.Filename, p, cats}); err != nil {
					return written, err
				}
				rows++
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return written, fmt.Errorf("failed to encode %s: %w", s.Name, err)
		}
		if rows == 0 {
			continue
		}

		p := filepath.Join(outDir, SanitizeSheetName(s.Name)+".csv")
		if err := writeFileAtomic(p, buf.Bytes()); err != nil {
			return written, err
		}
		written = append(written, p)
	}
	return written, nil
}

// ReportStore implements ports.ReportStore on the local filesystem
type ReportStore struct{}

// Ensure ReportStore implements ReportStore
var _ ports.ReportStore = (*ReportStore)(nil)

// NewReportStore creates a new report store
func NewReportStore() *ReportStore {
	return &ReportStore{}
}

// Write saves r to path
func (s *ReportStore) Write(r *domain.CategoryReport, path string) error {
	return WriteReport(r, path)
}

// Read loads the report at path
func (s *ReportStore) Read(path string) (*domain.CategoryReport, error) {
	return ReadReport(path)
}

// ExportCSV writes one CSV per category into dir
func (s *ReportStore) ExportCSV(r *domain.CategoryReport, dir string) ([]string, error) {
	return ExportCSV(r, dir)
}
