package main

import (
	"fmt"
	"io"
	"sort"
)

// writeRecord emits one per-file output record in the fixed
// "<right-aligned count> lines  <path>" form.
func writeRecord(out io.Writer, lines int64, path string) {
	fmt.Fprintf(out, "%6d lines  %s\n", lines, path)
}

// languageTotal is one row of the per-language breakdown.
type languageTotal struct {
	Name  string
	Files int
	Lines int64
}

// writeSummary prints the separator and the grand total, plus a per-language
// breakdown when language definitions were loaded. The printed total is by
// construction the sum of the printed per-file counts.
func writeSummary(out io.Writer, files []FileCount, total int64, langData *LoadedLanguageData) {
	fmt.Fprintf(out, "\n=============================\n")
	fmt.Fprintf(out, "Total lines: %d\n", total)

	if langData == nil || len(files) == 0 {
		return
	}

	byLang := make(map[string]*languageTotal)
	for _, f := range files {
		name, ok := langData.LanguageForExt(f.Ext)
		if !ok {
			// Extensions outside the language map are grouped verbatim.
			name = f.Ext
		}
		lt := byLang[name]
		if lt == nil {
			lt = &languageTotal{Name: name}
			byLang[name] = lt
		}
		lt.Files++
		lt.Lines += f.Lines
	}

	rows := make([]languageTotal, 0, len(byLang))
	for _, lt := range byLang {
		rows = append(rows, *lt)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Lines != rows[j].Lines {
			return rows[i].Lines > rows[j].Lines
		}
		return rows[i].Name < rows[j].Name
	})

	fmt.Fprintf(out, "\nBy language:\n")
	for _, row := range rows {
		unit := "files"
		if row.Files == 1 {
			unit = "file"
		}
		fmt.Fprintf(out, "%6d lines  %s (%d %s)\n", row.Lines, row.Name, row.Files, unit)
	}
}
