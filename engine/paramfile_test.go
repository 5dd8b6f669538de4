package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParamFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "params.yaml")

	original := DefaultParams()
	if err := SaveParamFile(path, original); err != nil {
		t.Fatalf("SaveParamFile: %v", err)
	}

	loaded, err := LoadParamFile(path)
	if err != nil {
		t.Fatalf("LoadParamFile: %v", err)
	}

	if loaded.Start != original.Start {
		t.Errorf("Start round-tripped as %+v, want %+v", loaded.Start, original.Start)
	}
	if loaded.End != original.End {
		t.Errorf("End round-tripped as %+v, want %+v", loaded.End, original.End)
	}
}

func TestLoadParamFileRejectsMismatchedTypeValueCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	contents := "start:\n  self_weight: 1\n  type_values: [1, 2]\n  pawn_row_value: 0\n  move_count_value: 0\nend:\n  self_weight: 1\n  type_values: [1, 2]\n  pawn_row_value: 0\n  move_count_value: 0\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := LoadParamFile(path); err == nil {
		t.Error("expected LoadParamFile to reject a type_values list of the wrong length")
	}
}
