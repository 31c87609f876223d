package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// countLinesInFile returns the number of lines in the file at path: the
// number of newline bytes, plus one when the file is non-empty and its final
// byte is not a newline. An unterminated last line still counts as a line.
//
// The file is streamed through a buffered reader one byte at a time, so
// memory use stays constant regardless of file size.
//
// If the file cannot be opened (or reading fails partway), the error is
// reported to errOut and the bytes seen so far determine the count — an open
// failure therefore contributes 0. The overall walk is never aborted for a
// single unreadable file.
func countLinesInFile(path string, errOut io.Writer) int64 {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", path, err)
		return 0
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var lines int64
	hasContent := false
	lastWasNewline := false

	for {
		b, err := r.ReadByte()
		if err != nil {
			if err != io.EOF {
				fmt.Fprintf(errOut, "%s: %v\n", path, err)
			}
			break
		}
		hasContent = true
		if b == '\n' {
			lines++
			lastWasNewline = true
		} else {
			lastWasNewline = false
		}
	}

	if hasContent && !lastWasNewline {
		lines++
	}
	return lines
}
