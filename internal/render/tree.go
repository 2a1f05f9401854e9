package render

import (
	"strings"

	"github.com/idelchi/dirscan/internal/walker"
)

const (
	branch       = "├─ "
	lastBranch   = "└─ "
	continuation = "│  "
	blank        = "   "
)

// UnlimitedDepth means "no depth limit" for Tree and Info.
const UnlimitedDepth = -1

// Tree renders the completed map as a box-drawing tree rooted at root.
// maxDepth limits recursion to that many levels below root; pass
// UnlimitedDepth (-1) for no limit. A child path absent from completed
// is silently omitted — its subtree was unreadable.
func Tree(completed map[string]*walker.DirRecord, root string, maxDepth int) string {
	var b strings.Builder

	b.WriteString(root)
	b.WriteString("\n")

	writeChildren(&b, completed, root, "", 0, maxDepth)

	return b.String()
}

// writeChildren writes dirPath's subdirectories (recursively) followed by
// its files, each prefixed per its depth and position among siblings.
func writeChildren(b *strings.Builder, completed map[string]*walker.DirRecord, dirPath, prefix string, depth, maxDepth int) {
	record, ok := completed[dirPath]
	if !ok {
		return
	}

	if maxDepth >= 0 && depth >= maxDepth {
		return
	}

	var presentSubDirs []string

	for _, sub := range record.SubDirPaths {
		if _, ok := completed[sub]; ok {
			presentSubDirs = append(presentSubDirs, sub)
		}
	}

	total := len(presentSubDirs) + len(record.Files)
	index := 0

	for _, sub := range presentSubDirs {
		last := index == total-1
		writeEntry(b, prefix, sub, last)
		writeChildren(b, completed, sub, childPrefix(prefix, last), depth+1, maxDepth)
		index++
	}

	for _, file := range record.Files {
		last := index == total-1
		writeEntry(b, prefix, file.Path, last)
		index++
	}
}

func writeEntry(b *strings.Builder, prefix, path string, last bool) {
	b.WriteString(prefix)

	if last {
		b.WriteString(lastBranch)
	} else {
		b.WriteString(branch)
	}

	b.WriteString(path)
	b.WriteString("\n")
}

func childPrefix(prefix string, parentWasLast bool) string {
	if parentWasLast {
		return prefix + blank
	}

	return prefix + continuation
}
