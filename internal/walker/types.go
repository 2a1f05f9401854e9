package walker

import "time"

// FileType classifies a directory entry by its mode bits.
type FileType string

// File type classifications, derived from the mode's file-type field.
const (
	TypeRegular   FileType = "regular"
	TypeDirectory FileType = "directory"
	TypeSymlink   FileType = "symlink"
	TypeBlock     FileType = "block"
	TypeChar      FileType = "char"
	TypeFifo      FileType = "fifo"
	TypeSocket    FileType = "socket"
	TypeUnknown   FileType = "unknown"
)

// FileRecord is the immutable result of probing a single directory entry.
type FileRecord struct {
	Path        string
	ParentPath  string
	Name        string
	Extension   string
	Type        FileType
	Permissions string
	Size        int64
}

// DirRecord aggregates one directory's immediate entries and, once the
// coordinator has propagated descendant totals, its full subtree size.
//
// fileTotalSize and numFiles are set once by the scanner. subDirTotalSize
// and totalSize may be mutated after the scanner returns, by the
// coordinator, as children complete or deferred credits are applied —
// see coordinator for the locking discipline that makes this safe.
type DirRecord struct {
	Path       string
	ParentPath string

	Files       []FileRecord
	SubDirPaths []string

	FileTotalSize   int64
	SubDirTotalSize int64
	TotalSize       int64
	NumFiles        int

	TopExtension string
}

// AverageFileSize returns FileTotalSize / NumFiles, or 0 if there are no files.
func (d *DirRecord) AverageFileSize() float64 {
	if d.NumFiles == 0 {
		return 0
	}

	return float64(d.FileTotalSize) / float64(d.NumFiles)
}

// AverageDirectorySize returns SubDirTotalSize / len(SubDirPaths), or 0 if there are none.
func (d *DirRecord) AverageDirectorySize() float64 {
	if len(d.SubDirPaths) == 0 {
		return 0
	}

	return float64(d.SubDirTotalSize) / float64(len(d.SubDirPaths))
}

// Options configures a traversal.
type Options struct {
	// Root is the absolute path of the directory to walk.
	Root string
	// SkipSubstrings causes any directory whose path contains one of these
	// substrings to be excluded from traversal (see scan's skip predicate).
	SkipSubstrings []string
	// NumWorkers is the worker-pool size. Defaults to 200 if <= 0.
	NumWorkers int
	// Debug enables verbose scan tracing.
	Debug bool
	// ProgressInterval controls how often ProgressHook is invoked, if set.
	ProgressInterval time.Duration
	// ProgressHook, if non-nil, is invoked periodically with the running
	// directory count, file count, and byte total observed so far.
	ProgressHook func(dirs, files, bytes int64)
}

// Result is the outcome of a completed traversal.
type Result struct {
	// Completed maps an absolute directory path to its final DirRecord.
	Completed map[string]*DirRecord
	// Errors collects every DirOpenError encountered. StatErrors are not
	// collected here; they are only written to the debug log.
	Errors []error
	// Elapsed is the total wall-clock time spent traversing.
	Elapsed time.Duration
}

// Failed reports whether any error was recorded during the traversal.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}
