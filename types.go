package main

// FileCount holds the result for one counted file.
type FileCount struct {
	Path  string
	Ext   string // lowercased extension, e.g. ".c"; used for the language breakdown
	Lines int64
}

// Summary holds aggregated information about the whole run.
type Summary struct {
	TotalFiles  int
	TotalLines  int64
	FailedRoots int // root paths that could not be processed at all
}
