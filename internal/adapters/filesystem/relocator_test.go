package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wemtool/internal/domain"
	"wemtool/internal/logging"
)

func newTestRelocator() *Relocator {
	return NewRelocator(logging.Discard(), 4, "")
}

func TestRelocate_ForwardCopiesToDebugNames(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, src, "Foo/123.wem", "audio-123")

	m := &domain.Mapping{Entries: []domain.MappingEntry{
		{ID: "Foo/123.wem", DebugName: "Bar/Line_01.wav"},
	}}

	summary, err := newTestRelocator().Relocate(context.Background(), m, src, dst, domain.Forward)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Succeeded)
	assert.Zero(t, summary.Failed())
	assert.Empty(t, summary.ErrorLog)
	assert.Equal(t, "audio-123", readFile(t, filepath.Join(dst, "Bar", "Line_01.wem")))
	assert.NoFileExists(t, filepath.Join(dst, domain.Forward.ErrorLogName()))
}

func TestRelocate_MissingSourcesAreCounted(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()

	m := &domain.Mapping{}
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("Media/%02d.wem", i)
		m.Entries = append(m.Entries, domain.MappingEntry{ID: id, DebugName: fmt.Sprintf("Act_01/Line_%02d.wav", i)})
		if i%4 != 1 {
			writeFile(t, src, id, id)
		}
	}

	summary, err := newTestRelocator().Relocate(context.Background(), m, src, dst, domain.Forward)
	require.NoError(t, err)

	assert.Equal(t, 10, summary.Attempted)
	assert.Equal(t, 7, summary.Succeeded)
	require.Equal(t, 3, summary.Failed())
	for _, f := range summary.Failures {
		assert.ErrorIs(t, f.Err, domain.ErrSourceMissing)
	}

	require.Equal(t, filepath.Join(dst, "unobfuscate_errors.log"), summary.ErrorLog)
	lines := strings.Split(strings.TrimSpace(readFile(t, summary.ErrorLog)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, filepath.Join(src, "Media", "01.wem")+": source file missing", lines[0])
}

func TestRelocate_ErrorLogDirOverride(t *testing.T) {
	src, dst, logs := t.TempDir(), t.TempDir(), t.TempDir()
	m := &domain.Mapping{Entries: []domain.MappingEntry{{ID: "missing.wem", DebugName: "Missing.wav"}}}

	summary, err := NewRelocator(logging.Discard(), 1, logs).Relocate(context.Background(), m, src, dst, domain.Reverse)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(logs, "obfuscate_errors.log"), summary.ErrorLog)
	assert.FileExists(t, summary.ErrorLog)
}

func TestRelocate_RoundTrip(t *testing.T) {
	original, named, restored := t.TempDir(), t.TempDir(), t.TempDir()

	m := &domain.Mapping{Entries: []domain.MappingEntry{
		{ID: "Media/1.wem", DebugName: "Act_01/Line_01.wav"},
		{ID: "Media/2.wem", DebugName: "Ambience_Cave/Drip"},
		{ID: "3.wem", DebugName: "UI/Click.wav"},
	}}
	for _, e := range m.Entries {
		writeFile(t, original, e.ID, "payload of "+e.ID)
	}

	r := newTestRelocator()
	fwd, err := r.Relocate(context.Background(), m, original, named, domain.Forward)
	require.NoError(t, err)
	require.Equal(t, 3, fwd.Succeeded)

	rev, err := r.Relocate(context.Background(), m, named, restored, domain.Reverse)
	require.NoError(t, err)
	require.Equal(t, 3, rev.Succeeded)

	for _, e := range m.Entries {
		assert.Equal(t, "payload of "+e.ID, readFile(t, filepath.Join(restored, filepath.FromSlash(e.ID))))
	}
}

func TestRelocate_ReverseFindsFlatLayout(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, src, "Line_01.wav", "flat")

	m := &domain.Mapping{Entries: []domain.MappingEntry{{ID: "Media/1.wem", DebugName: "Act_01/Line_01.wav"}}}

	summary, err := newTestRelocator().Relocate(context.Background(), m, src, dst, domain.Reverse)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, "flat", readFile(t, filepath.Join(dst, "Media", "1.wem")))
}

func TestRelocate_ReversePrefersNestedRealExtension(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, src, "Act_01/Line_01.wem", "nested-real")
	writeFile(t, src, "Act_01/Line_01.wav", "nested-placeholder")
	writeFile(t, src, "Line_01.wem", "flat-real")

	m := &domain.Mapping{Entries: []domain.MappingEntry{{ID: "1.wem", DebugName: "Act_01/Line_01.wav"}}}

	_, err := newTestRelocator().Relocate(context.Background(), m, src, dst, domain.Reverse)
	require.NoError(t, err)

	assert.Equal(t, "nested-real", readFile(t, filepath.Join(dst, "1.wem")))
}

func TestRelocate_ReverseAmbiguousDebugNames(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, src, "Shared/Line.wem", "shared")

	m := &domain.Mapping{Entries: []domain.MappingEntry{
		{ID: "1.wem", DebugName: "Shared/Line.wav"},
		{ID: "2.wem", DebugName: "Shared/Line.wav"},
		{ID: "3.wem", DebugName: "Shared/Line.wav"},
	}}

	summary, err := newTestRelocator().Relocate(context.Background(), m, src, dst, domain.Reverse)
	require.NoError(t, err)

	require.Len(t, summary.Discarded, 2)
	for _, a := range summary.Discarded {
		assert.Equal(t, "3.wem", a.Kept, "record for %s", a.Discarded)
	}
	assert.Equal(t, 1, summary.Attempted)
	assert.FileExists(t, filepath.Join(dst, "3.wem"))
	assert.NoFileExists(t, filepath.Join(dst, "1.wem"))
}

func TestRelocate_ForwardSharedDestinationKeepsGreatestID(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, src, "1.wem", strings.Repeat("A", 4<<20))
	writeFile(t, src, "2.wem", strings.Repeat("B", 1<<20))
	writeFile(t, src, "3.wem", "unique")

	m := &domain.Mapping{Entries: []domain.MappingEntry{
		{ID: "1.wem", DebugName: "Shared/Line.wav"},
		{ID: "2.wem", DebugName: "Shared/Line.wav"},
		{ID: "3.wem", DebugName: "Other/Line.wav"},
	}}

	summary, err := NewRelocator(logging.Discard(), 4, "").Relocate(context.Background(), m, src, dst, domain.Forward)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Attempted)
	assert.Equal(t, 2, summary.Succeeded)
	require.Equal(t, 1, summary.Failed())
	assert.ErrorIs(t, summary.Failures[0].Err, domain.ErrSharedTarget)
	assert.Contains(t, summary.Failures[0].Err.Error(), "1.wem shares its destination with 2.wem")
	assert.Equal(t, strings.Repeat("B", 1<<20), readFile(t, filepath.Join(dst, "Shared", "Line.wem")))
	assert.FileExists(t, summary.ErrorLog)
}

func TestRelocate_UnsafePathsFailPerTask(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, src, "ok.wem", "ok")

	m := &domain.Mapping{Entries: []domain.MappingEntry{
		{ID: "../escape.wem", DebugName: "Escape.wav"},
		{ID: "evil.wem", DebugName: "../../Evil.wav"},
		{ID: "ok.wem", DebugName: "Fine/Ok.wav"},
	}}

	summary, err := newTestRelocator().Relocate(context.Background(), m, src, dst, domain.Forward)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Attempted)
	assert.Equal(t, 1, summary.Succeeded)
	require.Equal(t, 2, summary.Failed())
	for _, f := range summary.Failures {
		assert.ErrorIs(t, f.Err, domain.ErrUnsafePath)
	}
	assert.NoFileExists(t, filepath.Join(filepath.Dir(dst), "Evil.wem"))
}

func TestRelocate_MissingSourceRoot(t *testing.T) {
	_, err := newTestRelocator().Relocate(context.Background(), &domain.Mapping{}, filepath.Join(t.TempDir(), "nope"), t.TempDir(), domain.Forward)
	assert.Error(t, err)
}

func TestExecute_CancelledContextMarksTasksNotDispatched(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "a.wem", "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tasks := []domain.CopyTask{{Source: filepath.Join(src, "a.wem"), Destination: filepath.Join(src, "out", "a.wem")}}
	results := newTestRelocator().Execute(ctx, tasks)

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, domain.ErrNotDispatched)
	_, statErr := os.Stat(tasks[0].Destination)
	assert.True(t, os.IsNotExist(statErr))
}
