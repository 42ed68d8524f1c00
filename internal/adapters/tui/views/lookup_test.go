package views

import (
	"strings"
	"testing"

	"wemtool/internal/application/commands"
	"wemtool/internal/domain"
)

// fakeIndex serves a fixed set of entries
type fakeIndex struct {
	entries []domain.IndexMatch
}

func (f *fakeIndex) Open(string) error { return nil }

func (f *fakeIndex) Close() error { return nil }

func (f *fakeIndex) Count() (int, error) {
	return len(f.entries), nil
}

func (f *fakeIndex) Rebuild(*domain.Mapping) (*domain.SyncStats, error) {
	return &domain.SyncStats{}, nil
}

func (f *fakeIndex) SharedNames() ([]domain.SharedName, error) { return nil, nil }

func (f *fakeIndex) SourcesFor(string) ([]string, error) { return nil, nil }

func (f *fakeIndex) LookupID(id string) (*domain.IndexMatch, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeIndex) LookupDebugName(name string) ([]domain.IndexMatch, error) {
	var out []domain.IndexMatch
	for _, e := range f.entries {
		if e.DebugName == name {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeIndex) Search(query string, limit int) ([]domain.IndexMatch, error) {
	var out []domain.IndexMatch
	q := strings.ToLower(query)
	for _, e := range f.entries {
		if strings.Contains(strings.ToLower(e.ID+" "+e.DebugName), q) && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func newTestLookup(entries ...domain.IndexMatch) (*LookupModel, *[]string) {
	m := NewLookupModel(&fakeIndex{entries: entries})
	var copied []string
	m.copy = func(s string) error {
		copied = append(copied, s)
		return nil
	}
	return m, &copied
}

func TestLookup_TypingSearchesAndCopies(t *testing.T) {
	m, copied := newTestLookup(
		domain.IndexMatch{ID: "Media/1.wem", DebugName: "Act_01/Line_01.wav"},
		domain.IndexMatch{ID: "Media/2.wem", DebugName: "Act_01/Line_02.wav"},
		domain.IndexMatch{ID: "Media/3.wem", DebugName: "Act_02/Door.wav"},
	)

	for _, r := range "line" {
		m.Update(runes(string(r)))
	}
	if m.input.Value() != "line" {
		t.Fatalf("input = %q", m.input.Value())
	}
	// Update batches the lookup with the cursor blink; run it directly
	m.Update(exec(m.lookup("line")))

	if len(m.results) != 2 {
		t.Fatalf("results = %d, want 2", len(m.results))
	}

	m.Update(keyDown)
	m.Update(keyEnter)
	if len(*copied) != 1 || (*copied)[0] != m.results[1].ID {
		t.Errorf("copied %v, want the second result's ID", *copied)
	}
	if m.Message != "Copied "+m.results[1].ID {
		t.Errorf("Message = %q", m.Message)
	}
}

func TestLookup_DropsStaleResults(t *testing.T) {
	m, _ := newTestLookup(domain.IndexMatch{ID: "Media/1.wem", DebugName: "Door.wav"})
	m.input.SetValue("door")

	m.Update(lookupResultsMsg{query: "do", results: []commands.LookupResult{{Score: 1}}})
	if m.results != nil {
		t.Errorf("stale results were applied")
	}
}

func TestLookup_EmptyIndex(t *testing.T) {
	m, _ := newTestLookup()
	m.input.SetValue("door")

	m.Update(exec(m.lookup("door")))
	if !m.MessageErr || !strings.Contains(m.Message, "rebuild it from the menu first") {
		t.Errorf("Message = %q (err=%v)", m.Message, m.MessageErr)
	}
}
