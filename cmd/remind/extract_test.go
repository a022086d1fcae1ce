package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestResolveToday(t *testing.T) {
	got, err := resolveToday("2025-01-01")
	if err != nil {
		t.Fatalf("resolveToday failed: %v", err)
	}
	want := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("resolveToday = %v, want %v", got, want)
	}

	if _, err := resolveToday("01/01/2025"); err == nil {
		t.Error("resolveToday should reject non-canonical input")
	}

	got, err = resolveToday("")
	if err != nil {
		t.Fatalf("resolveToday(\"\") failed: %v", err)
	}
	if time.Since(got) > time.Minute {
		t.Errorf("resolveToday(\"\") should be now, got %v", got)
	}
}

func TestReadInput(t *testing.T) {
	if got, err := readInput(nil, "some text"); err != nil || got != "some text" {
		t.Errorf("readInput --text: got %q, err %v", got, err)
	}

	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("file contents"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := readInput([]string{path}, ""); err != nil || got != "file contents" {
		t.Errorf("readInput file: got %q, err %v", got, err)
	}

	if _, err := readInput([]string{filepath.Join(t.TempDir(), "missing.txt")}, ""); err == nil {
		t.Error("readInput should fail on a missing file")
	}
}
