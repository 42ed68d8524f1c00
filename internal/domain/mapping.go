package domain

import (
	"slices"
	"sort"
	"strings"
)

// MappingEntry associates an opaque media ID with its debug name
type MappingEntry struct {
	ID          string   // MediaPathName, e.g. "Media/123456.wem"
	DebugName   string   // e.g. "Events/Act_01/Line_01.wav"
	SourceFiles []string // metadata documents that asserted this pair, sorted
}

// Mapping is an ID-sorted table of entries with unique IDs
type Mapping struct {
	Entries []MappingEntry
}

// Len returns the number of entries
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Entries)
}

// Get returns the entry for id
func (m *Mapping) Get(id string) (MappingEntry, bool) {
	i := sort.Search(len(m.Entries), func(i int) bool {
		return m.Entries[i].ID >= id
	})
	if i < len(m.Entries) && m.Entries[i].ID == id {
		return m.Entries[i], true
	}
	return MappingEntry{}, false
}

// Merge returns a new mapping holding m overlaid with other. Debug names from
// other win on collision and source files are unioned.
func (m *Mapping) Merge(other *Mapping) *Mapping {
	b := NewMappingBuilder()
	b.Seed(m)
	if other != nil {
		for _, e := range other.Entries {
			for _, src := range e.SourceFiles {
				b.Observe(e.ID, e.DebugName, src)
			}
			if len(e.SourceFiles) == 0 {
				b.Observe(e.ID, e.DebugName, "")
			}
		}
	}
	return b.Finalize()
}

// InverseEntry is one surviving debug name -> ID association
type InverseEntry struct {
	DebugName string
	ID        string
}

// Invert builds the debug name -> ID table used for reverse relocation.
//
// Debug names are not unique, so inversion is lossy: entries are visited in
// ascending ID order and the last ID seen for a debug name is kept. Every
// displaced ID is reported, so N IDs sharing one name yield N-1 records.
func (m *Mapping) Invert() ([]InverseEntry, []AmbiguousInverse) {
	entries := slices.Clone(m.Entries)
	slices.SortStableFunc(entries, func(a, b MappingEntry) int {
		return strings.Compare(a.ID, b.ID)
	})

	kept := make(map[string]string, len(entries))
	for _, e := range entries {
		kept[e.DebugName] = e.ID
	}

	var ambiguous []AmbiguousInverse
	for _, e := range entries {
		if survivor := kept[e.DebugName]; survivor != e.ID {
			ambiguous = append(ambiguous, AmbiguousInverse{
				DebugName: e.DebugName,
				Kept:      survivor,
				Discarded: e.ID,
			})
		}
	}

	out := make([]InverseEntry, 0, len(kept))
	for name, id := range kept {
		out = append(out, InverseEntry{DebugName: name, ID: id})
	}
	slices.SortFunc(out, func(a, b InverseEntry) int {
		return strings.Compare(a.DebugName, b.DebugName)
	})
	return out, ambiguous
}

// Conflict describes an ID observed with a different debug name than before
type Conflict struct {
	ID       string
	Previous string
	Current  string
	Source   string
}

type builderEntry struct {
	debugName string
	sources   map[string]struct{}
}

// MappingBuilder accumulates observations during a scan. Later observations
// of an ID overwrite its debug name; source files always accumulate.
type MappingBuilder struct {
	entries map[string]*builderEntry
}

// NewMappingBuilder creates an empty builder
func NewMappingBuilder() *MappingBuilder {
	return &MappingBuilder{entries: make(map[string]*builderEntry)}
}

// Seed loads an existing mapping as prior observations
func (b *MappingBuilder) Seed(m *Mapping) {
	if m == nil {
		return
	}
	for _, e := range m.Entries {
		be := b.entry(e.ID, e.DebugName)
		for _, src := range e.SourceFiles {
			be.sources[src] = struct{}{}
		}
	}
}

func (b *MappingBuilder) entry(id, debugName string) *builderEntry {
	be, ok := b.entries[id]
	if !ok {
		be = &builderEntry{debugName: debugName, sources: make(map[string]struct{})}
		b.entries[id] = be
	}
	return be
}

// Observe records that source asserted id -> debugName. It returns the
// conflict when id was previously mapped to a different debug name; the new
// name replaces the old one either way. An empty source is not recorded.
func (b *MappingBuilder) Observe(id, debugName, source string) (Conflict, bool) {
	be, existed := b.entries[id]
	if !existed {
		be = b.entry(id, debugName)
	}

	var conflict Conflict
	conflicted := existed && be.debugName != debugName
	if conflicted {
		conflict = Conflict{ID: id, Previous: be.debugName, Current: debugName, Source: source}
	}
	be.debugName = debugName
	if source != "" {
		be.sources[source] = struct{}{}
	}
	return conflict, conflicted
}

// Len returns the number of distinct IDs observed so far
func (b *MappingBuilder) Len() int {
	return len(b.entries)
}

// Finalize returns a sorted snapshot. The builder stays usable.
func (b *MappingBuilder) Finalize() *Mapping {
	entries := make([]MappingEntry, 0, len(b.entries))
	for id, be := range b.entries {
		sources := make([]string, 0, len(be.sources))
		for src := range be.sources {
			sources = append(sources, src)
		}
		sort.Strings(sources)
		entries = append(entries, MappingEntry{
			ID:          id,
			DebugName:   be.debugName,
			SourceFiles: sources,
		})
	}
	slices.SortFunc(entries, func(a, b MappingEntry) int {
		return strings.Compare(a.ID, b.ID)
	})
	return &Mapping{Entries: entries}
}

// ScanStats counts what a metadata scan visited
type ScanStats struct {
	FilesScanned int
	ParseErrors  int
	MediaFound   int
	Conflicts    int
	Skipped      int // excluded or filtered out
}
