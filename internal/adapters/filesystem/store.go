package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"wemtool/internal/domain"
	"wemtool/internal/ports"
)

// mappingRecord is the on-disk shape of one mapping entry
type mappingRecord struct {
	DebugName   string   `json:"DebugName"`
	SourceJsons []string `json:"SourceJsons"`
}

// MappingStore implements ports.MappingStore as a flat JSON table keyed by ID
type MappingStore struct{}

// Ensure MappingStore implements MappingStore
var _ ports.MappingStore = (*MappingStore)(nil)

// NewMappingStore creates a new JSON mapping store
func NewMappingStore() *MappingStore {
	return &MappingStore{}
}

// Load reads a mapping snapshot
func (s *MappingStore) Load(path string) (*domain.Mapping, error) {
	path = ExpandHome(path)
	data, err := os.ReadFile(path)
	if err != nil {
		if isNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrMappingNotFound)
		}
		return nil, fmt.Errorf("failed to read mapping: %w", err)
	}

	var table map[string]mappingRecord
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}

	entries := make([]domain.MappingEntry, 0, len(table))
	for id, rec := range table {
		sources := slices.Clone(rec.SourceJsons)
		sort.Strings(sources)
		entries = append(entries, domain.MappingEntry{
			ID:          id,
			DebugName:   rec.DebugName,
			SourceFiles: sources,
		})
	}
	slices.SortFunc(entries, func(a, b domain.MappingEntry) int {
		return strings.Compare(a.ID, b.ID)
	})
	return &domain.Mapping{Entries: entries}, nil
}

// Save writes the mapping with sorted keys and source lists. The file is
// replaced atomically so an interrupted save never leaves a truncated table.
func (s *MappingStore) Save(m *domain.Mapping, path string) error {
	path = ExpandHome(path)
	data, err := EncodeMapping(m)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

// EncodeMapping renders the mapping in its persisted JSON form
func EncodeMapping(m *domain.Mapping) ([]byte, error) {
	table := make(map[string]mappingRecord, m.Len())
	if m != nil {
		for _, e := range m.Entries {
			sources := slices.Clone(e.SourceFiles)
			if sources == nil {
				sources = []string{}
			}
			sort.Strings(sources)
			table[e.ID] = mappingRecord{DebugName: e.DebugName, SourceJsons: sources}
		}
	}

	// encoding/json writes map keys in sorted order
	data, err := json.MarshalIndent(table, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode mapping: %w", err)
	}
	return append(data, '\n'), nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
