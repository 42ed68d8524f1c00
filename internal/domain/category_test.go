package domain

import (
	"slices"
	"testing"
)

func TestCategorizer_Category(t *testing.T) {
	c := NewCategorizer(DefaultCategoryPrefixes, "")

	tests := []struct {
		parent string
		want   string
	}{
		{"Act_Foo", "Act_"},
		{"act_boss01", "Act_"},
		{"AMBIENCE_forest", "Ambience_"},
		{"Amb_Wind", "Amb_"},
		{"Misc", "Other"},
		{"", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.parent, func(t *testing.T) {
			if got := c.Category(tt.parent); got != tt.want {
				t.Errorf("Category(%q) = %q, want %q", tt.parent, got, tt.want)
			}
		})
	}
}

func TestCategorizer_FirstMatchWins(t *testing.T) {
	c := NewCategorizer([]string{"Act", "Act_"}, "Rest")
	if got := c.Category("Act_01"); got != "Act" {
		t.Errorf("expected first prefix to win, got %s", got)
	}
	if got := c.Category("zzz"); got != "Rest" {
		t.Errorf("expected custom catch-all, got %s", got)
	}
}

func TestReportBuilder_CrossListsDuplicates(t *testing.T) {
	b := NewReportBuilder(NewCategorizer(DefaultCategoryPrefixes, ""))
	b.Observe("Act_Foo/line.wem", 10)
	b.Observe("Ambience_Bar/line.wem", 20)
	b.Observe("Act_Foo/solo.wem", 5)

	report := b.Finalize()

	if report.Files != 3 {
		t.Errorf("expected 3 files, got %d", report.Files)
	}

	wantCats := []string{"Act_", "Ambience_"}
	for _, cat := range wantCats {
		section, ok := report.Section(cat)
		if !ok {
			t.Fatalf("missing section %s", cat)
		}
		idx := slices.IndexFunc(section.Records, func(r CategoryRecord) bool { return r.Filename == "line.wem" })
		if idx < 0 {
			t.Fatalf("line.wem not listed under %s", cat)
		}
		rec := section.Records[idx]
		if !slices.Equal(rec.AllCategories, wantCats) {
			t.Errorf("%s: all_categories = %v, want %v", cat, rec.AllCategories, wantCats)
		}
		if !slices.Equal(rec.Paths, []string{"Act_Foo/line.wem", "Ambience_Bar/line.wem"}) {
			t.Errorf("%s: unexpected paths %v", cat, rec.Paths)
		}
		if rec.TotalBytes != 30 {
			t.Errorf("%s: expected 30 bytes, got %d", cat, rec.TotalBytes)
		}
	}

	dups := report.Duplicates()
	if len(dups) != 1 || dups[0].Filename != "line.wem" {
		t.Errorf("expected one duplicate, got %+v", dups)
	}
}

func TestReportBuilder_CatchAllLast(t *testing.T) {
	b := NewReportBuilder(NewCategorizer(DefaultCategoryPrefixes, ""))
	b.Observe("Zzz/a.wem", 0)
	b.Observe("VO_Main/b.wem", 0)
	b.Observe("Act_1/c.wem", 0)
	b.Observe("top.wem", 0)

	report := b.Finalize()

	var names []string
	for _, s := range report.Sections {
		names = append(names, s.Name)
	}
	want := []string{"Act_", "VO_", "Other"}
	if !slices.Equal(names, want) {
		t.Errorf("section order = %v, want %v", names, want)
	}
	other, _ := report.Section("Other")
	if len(other.Records) != 2 || other.Records[0].Filename != "a.wem" || other.Records[1].Filename != "top.wem" {
		t.Errorf("unexpected catch-all records: %+v", other.Records)
	}
}

func TestReportBuilder_ImmediateParentOnly(t *testing.T) {
	b := NewReportBuilder(NewCategorizer(DefaultCategoryPrefixes, ""))
	b.Observe("Act_Foo/Nested/deep.wem", 0)

	report := b.Finalize()

	if _, ok := report.Section("Act_"); ok {
		t.Error("deep file must not be categorized by an ancestor")
	}
	if _, ok := report.Section("Other"); !ok {
		t.Error("deep file should fall into the catch-all")
	}
}
