package commands

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"wemtool/internal/application"
	"wemtool/internal/domain"
)

func TestRelocateCommand_Validate(t *testing.T) {
	src := t.TempDir()

	tests := []struct {
		name    string
		src     string
		dst     string
		dir     domain.Direction
		wantErr error
		errMsg  string
	}{
		{name: "valid forward", src: src, dst: filepath.Join(src, "out"), dir: domain.Forward},
		{name: "valid reverse", src: src, dst: t.TempDir(), dir: domain.Reverse},
		{name: "bad direction", src: src, dst: t.TempDir(), dir: domain.Direction(7), errMsg: "invalid direction"},
		{name: "missing source", src: filepath.Join(src, "nope"), dst: t.TempDir(), dir: domain.Forward, errMsg: "source root"},
		{name: "empty destination", src: src, dst: "", dir: domain.Forward, errMsg: "destination root is required"},
		{name: "same roots", src: src, dst: src, dir: domain.Forward, wantErr: application.ErrSameRoot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &RelocateCommand{MappingPath: "map.json", SrcRoot: tt.src, DstRoot: tt.dst, Direction: tt.dir}
			err := cmd.Validate()

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
			case tt.errMsg != "":
				if err == nil || !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %v", tt.errMsg, err)
				}
			default:
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestRelocateCommand_MissingMapping(t *testing.T) {
	relocator := &fakeRelocator{}
	cmd := NewRelocateCommand(newFakeStore(), relocator, "map.json", t.TempDir(), t.TempDir(), domain.Forward)

	_, err := cmd.Execute(context.Background())

	if !errors.Is(err, application.ErrMappingNotFound) {
		t.Errorf("expected ErrMappingNotFound, got %v", err)
	}
	if len(relocator.calls) != 0 {
		t.Error("relocator should not run without a mapping")
	}
}

func TestRelocateCommand_Execute(t *testing.T) {
	store := newFakeStore()
	store.saved["map.json"] = &domain.Mapping{Entries: []domain.MappingEntry{{ID: "1.wem", DebugName: "One.wav"}}}
	relocator := &fakeRelocator{summary: &domain.RunSummary{
		Direction: domain.Reverse,
		Attempted: 3,
		Succeeded: 2,
		Failures:  []domain.CopyFailure{{Task: domain.CopyTask{Source: "x"}, Reason: "source file missing"}},
		ErrorLog:  "/out/obfuscate_errors.log",
	}}

	result, err := NewRelocateCommand(store, relocator, "map.json", t.TempDir(), t.TempDir(), domain.Reverse).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(relocator.calls) != 1 || relocator.calls[0] != domain.Reverse {
		t.Errorf("unexpected relocator calls %v", relocator.calls)
	}
	want := "obfuscate: 2/3 files copied, 1 failed (see /out/obfuscate_errors.log)"
	if result.Message != want {
		t.Errorf("expected message %q, got %q", want, result.Message)
	}
}
