package render

import (
	"sort"
	"strings"

	"github.com/idelchi/dirscan/internal/walker"
)

// Paths returns every directory path reachable from root in the
// completed map, in pre-order (root first, then each subdirectory in
// discovery order). A subdirectory path absent from completed — its scan
// failed — is omitted along with everything beneath it.
func Paths(completed map[string]*walker.DirRecord, root string) []string {
	var out []string

	collectPaths(completed, root, &out)

	return out
}

func collectPaths(completed map[string]*walker.DirRecord, path string, out *[]string) {
	record, ok := completed[path]
	if !ok {
		return
	}

	*out = append(*out, path)

	for _, sub := range record.SubDirPaths {
		collectPaths(completed, sub, out)
	}
}

// SortedPaths returns the same set of paths as Paths, sorted
// lexicographically.
func SortedPaths(completed map[string]*walker.DirRecord, root string) []string {
	paths := Paths(completed, root)
	sort.Strings(paths)

	return paths
}

// PathsText joins paths with newlines, one per line, with a trailing
// newline.
func PathsText(paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	return strings.Join(paths, "\n") + "\n"
}
