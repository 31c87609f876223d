package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteRecordFormat(t *testing.T) {
	var out bytes.Buffer
	writeRecord(&out, 3, "src/a.c")
	if got := out.String(); got != "     3 lines  src/a.c\n" {
		t.Fatalf("record = %q", got)
	}

	out.Reset()
	writeRecord(&out, 1234567, "big.c")
	if got := out.String(); got != "1234567 lines  big.c\n" {
		t.Fatalf("record = %q", got)
	}
}

func TestWriteSummary(t *testing.T) {
	var out bytes.Buffer
	writeSummary(&out, nil, 42, nil)

	s := out.String()
	if !strings.Contains(s, "=============================") {
		t.Fatalf("missing separator:\n%s", s)
	}
	if !strings.Contains(s, "Total lines: 42") {
		t.Fatalf("missing total:\n%s", s)
	}
	if strings.Contains(s, "By language") {
		t.Fatalf("breakdown printed without language data:\n%s", s)
	}
}

func TestWriteSummaryLanguageBreakdown(t *testing.T) {
	langData := &LoadedLanguageData{
		extensionMap: map[string]string{".c": "C", ".h": "C"},
	}
	files := []FileCount{
		{Path: "a.c", Ext: ".c", Lines: 3},
		{Path: "b.h", Ext: ".h", Lines: 1},
		{Path: "z.zig", Ext: ".zig", Lines: 5},
	}

	var out bytes.Buffer
	writeSummary(&out, files, 9, langData)

	s := out.String()
	if !strings.Contains(s, "By language:") {
		t.Fatalf("missing breakdown:\n%s", s)
	}
	if !strings.Contains(s, "C (2 files)") {
		t.Fatalf("missing C row:\n%s", s)
	}
	// Unknown extensions are grouped under the extension itself, and a
	// single-file row uses the singular unit.
	if !strings.Contains(s, ".zig (1 file)") {
		t.Fatalf("missing .zig row:\n%s", s)
	}
	if strings.Contains(s, "(1 files)") {
		t.Fatalf("unpluralized single-file row:\n%s", s)
	}
	// Sorted by line count, descending: .zig (5) before C (4).
	if strings.Index(s, ".zig") > strings.Index(s, "C (2 files)") {
		t.Fatalf("rows not sorted by lines:\n%s", s)
	}
}
