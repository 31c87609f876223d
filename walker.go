package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
)

// defaultExcludedDirs are pruned wholesale wherever they appear in a tree:
// version-control metadata, build output, and editor configuration.
// Matching is exact and case-sensitive, on the base name only.
var defaultExcludedDirs = []string{".git", ".svn", "build", "bin", ".vscode", "obj"}

// defaultStackCapacity bounds the pending-directory worklist. When a push
// would exceed it, the subtree is reported and skipped rather than walked.
const defaultStackCapacity = 200000

// WalkOptions configures a Walker. Use newWalker to apply defaults.
type WalkOptions struct {
	Extensions    []string // filename suffixes to count, e.g. ".c", ".h"
	ExcludedDirs  []string // directory base names to prune; nil means defaultExcludedDirs
	StackCapacity int      // max pending directories; 0 means unbounded
	NoIgnore      bool     // don't consult .gitignore at the walk root

	Out    io.Writer // per-file records, one line per counted file
	ErrOut io.Writer // error reports
}

// Walker owns all traversal state for a run: the pending-directory worklist,
// the running line total, and the per-file results. A single Walker may walk
// several roots; the total and results accumulate across them.
type Walker struct {
	opts     WalkOptions
	excluded map[string]struct{}
	stack    []string
	total    int64
	files    []FileCount
}

func newWalker(opts WalkOptions) *Walker {
	if opts.Extensions == nil {
		opts.Extensions = []string{".c", ".h"}
	}
	if opts.ExcludedDirs == nil {
		opts.ExcludedDirs = defaultExcludedDirs
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}
	w := &Walker{
		opts:     opts,
		excluded: make(map[string]struct{}, len(opts.ExcludedDirs)),
	}
	for _, name := range opts.ExcludedDirs {
		w.excluded[name] = struct{}{}
	}
	return w
}

// Total returns the running line total across everything counted so far.
func (w *Walker) Total() int64 { return w.total }

// Files returns the per-file results collected so far.
func (w *Walker) Files() []FileCount { return w.files }

// shouldExcludeDir reports whether a directory base name is in the exclusion
// set. A nested directory named exactly "build" is pruned at any depth.
func (w *Walker) shouldExcludeDir(name string) bool {
	_, ok := w.excluded[name]
	return ok
}

// shouldCountFile reports whether a filename matches one of the configured
// extensions. The name must be strictly longer than the extension, so a file
// named exactly ".c" is not counted, while "ab.c" is.
func (w *Walker) shouldCountFile(name string) bool {
	for _, ext := range w.opts.Extensions {
		if len(name) > len(ext) && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// push adds a directory to the worklist, enforcing the capacity bound.
// On overflow the path is reported to ErrOut and the subtree is skipped;
// the walk itself carries on.
func (w *Walker) push(path string) {
	if w.opts.StackCapacity > 0 && len(w.stack) >= w.opts.StackCapacity {
		fmt.Fprintf(w.opts.ErrOut, "%s: pending-directory stack is full (capacity %d), skipping subtree\n",
			path, w.opts.StackCapacity)
		return
	}
	w.stack = append(w.stack, path)
}

// Walk traverses the tree rooted at root depth-first using an explicit
// worklist: pop a directory, count its matching files immediately, push its
// non-excluded subdirectories. Because subdirectories are pushed before any
// is popped, siblings are visited in reverse listing order.
//
// Every filesystem error is local: it is reported to ErrOut and the offending
// path skipped, and the walk continues with whatever remains pending.
func (w *Walker) Walk(root string) {
	var matcher gitignore.IgnoreMatcher
	if !w.opts.NoIgnore {
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			m, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				fmt.Fprintf(w.opts.ErrOut, "%s: %v\n", gitIgnorePath, err)
			} else {
				matcher = m
			}
		}
	}

	w.push(root)

	for len(w.stack) > 0 {
		dir := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			fmt.Fprintf(w.opts.ErrOut, "%s: %v\n", dir, err)
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			full := filepath.Join(dir, name)

			isDir := entry.IsDir()
			isRegular := entry.Type().IsRegular()
			if entry.Type()&fs.ModeSymlink != 0 {
				// Follow symlinks to regular files only; symlinked
				// directories are skipped to keep the walk cycle-free.
				info, err := os.Stat(full)
				if err != nil {
					fmt.Fprintf(w.opts.ErrOut, "%s: %v\n", full, err)
					continue
				}
				isRegular = info.Mode().IsRegular()
			}

			// The matcher resolves paths against the .gitignore's own
			// directory, so it gets the joined path as built.
			if matcher != nil && matcher.Match(full, isDir) {
				continue
			}

			if isDir {
				if w.shouldExcludeDir(name) {
					continue
				}
				w.push(full)
			} else if isRegular {
				if w.shouldCountFile(name) {
					w.countAndEmit(full)
				}
			}
			// Sockets, pipes and devices fall through uncounted.
		}
	}
}

// CountFile counts a single explicitly named regular file, applying the same
// include filter the walk does.
func (w *Walker) CountFile(path string) {
	if !w.shouldCountFile(filepath.Base(path)) {
		fmt.Fprintf(w.opts.ErrOut, "%s: skipped, name does not match %s\n",
			path, strings.Join(w.opts.Extensions, ","))
		return
	}
	w.countAndEmit(path)
}

// countAndEmit counts one file, records the result, and emits the per-file
// record immediately, interleaved with traversal rather than buffered.
func (w *Walker) countAndEmit(path string) {
	lines := countLinesInFile(path, w.opts.ErrOut)
	writeRecord(w.opts.Out, lines, path)
	w.total += lines
	w.files = append(w.files, FileCount{
		Path:  path,
		Ext:   strings.ToLower(filepath.Ext(path)),
		Lines: lines,
	})
}
