package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestCountLinesTerminated(t *testing.T) {
	root := t.TempDir()
	p := write(t, root, "a.c", "one\ntwo\nthree\n")

	var errOut bytes.Buffer
	if got := countLinesInFile(p, &errOut); got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}
	if errOut.Len() != 0 {
		t.Fatalf("unexpected error output: %q", errOut.String())
	}
}

func TestCountLinesUnterminatedFinalLine(t *testing.T) {
	root := t.TempDir()

	// A trailing line without a newline still counts as a line.
	if got := countLinesInFile(write(t, root, "a.c", "abc"), &bytes.Buffer{}); got != 1 {
		t.Fatalf("count(%q) = %d, want 1", "abc", got)
	}
	if got := countLinesInFile(write(t, root, "b.c", "abc\n"), &bytes.Buffer{}); got != 1 {
		t.Fatalf("count(%q) = %d, want 1", "abc\\n", got)
	}
	if got := countLinesInFile(write(t, root, "c.c", "a\nb\nc"), &bytes.Buffer{}); got != 3 {
		t.Fatalf("count(%q) = %d, want 3", "a\\nb\\nc", got)
	}
}

func TestCountLinesEmptyFile(t *testing.T) {
	root := t.TempDir()
	if got := countLinesInFile(write(t, root, "empty.c", ""), &bytes.Buffer{}); got != 0 {
		t.Fatalf("count of empty file = %d, want 0", got)
	}
}

func TestCountLinesOnlyNewlines(t *testing.T) {
	root := t.TempDir()
	if got := countLinesInFile(write(t, root, "nl.c", "\n\n\n"), &bytes.Buffer{}); got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}
}

func TestCountLinesOpenFailure(t *testing.T) {
	var errOut bytes.Buffer
	missing := filepath.Join(t.TempDir(), "nope.c")
	if got := countLinesInFile(missing, &errOut); got != 0 {
		t.Fatalf("count of missing file = %d, want 0", got)
	}
	if errOut.Len() == 0 {
		t.Fatal("expected an error report for missing file")
	}
}
