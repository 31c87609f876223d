package main

import (
	"testing"
)

const testLanguagesYAML = `C:
  type: programming
  extensions:
    - ".c"
    - ".h"
Go:
  type: programming
  extensions:
    - ".go"
`

func TestLoadLanguageData(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "languages.yml", testLanguagesYAML)

	data, err := loadLanguageDataFrom([]string{dir})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data == nil {
		t.Fatal("expected language data")
	}

	if name, ok := data.LanguageForExt(".c"); !ok || name != "C" {
		t.Fatalf("LanguageForExt(.c) = %q, %v", name, ok)
	}
	if name, ok := data.LanguageForExt(".go"); !ok || name != "Go" {
		t.Fatalf("LanguageForExt(.go) = %q, %v", name, ok)
	}
	if _, ok := data.LanguageForExt(".zig"); ok {
		t.Fatal("unexpected mapping for .zig")
	}
}

func TestLoadLanguageDataMissingIsSilent(t *testing.T) {
	data, err := loadLanguageDataFrom([]string{t.TempDir()})
	if err != nil {
		t.Fatalf("missing languages.yml should not be an error: %v", err)
	}
	if data != nil {
		t.Fatal("expected nil data when languages.yml is absent")
	}
}

func TestLoadLanguageDataMalformed(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "languages.yml", "::: not yaml {{{")

	if _, err := loadLanguageDataFrom([]string{dir}); err == nil {
		t.Fatal("expected a parse error")
	}
}
