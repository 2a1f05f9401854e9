package render

import (
	"fmt"
	"strings"

	"github.com/idelchi/dirscan/internal/walker"
)

const separatorWidth = 80

// Info renders one block per directory reachable from root, each
// preceded by a separator row of 80 underscores, in pre-order. maxDepth
// limits how many levels below root are included; pass UnlimitedDepth
// (-1) for no limit.
func Info(completed map[string]*walker.DirRecord, root string, maxDepth int) string {
	var b strings.Builder

	writeInfoBlocks(&b, completed, root, 0, maxDepth)

	return b.String()
}

func writeInfoBlocks(b *strings.Builder, completed map[string]*walker.DirRecord, path string, depth, maxDepth int) {
	record, ok := completed[path]
	if !ok {
		return
	}

	if maxDepth >= 0 && depth > maxDepth {
		return
	}

	writeInfoBlock(b, record)

	for _, sub := range record.SubDirPaths {
		writeInfoBlocks(b, completed, sub, depth+1, maxDepth)
	}
}

func writeInfoBlock(b *strings.Builder, record *walker.DirRecord) {
	b.WriteString(strings.Repeat("_", separatorWidth))
	b.WriteString("\n")

	fmt.Fprintf(b, "%s\n", record.Path)
	fmt.Fprintf(b, "Directories: %d\n", len(record.SubDirPaths))
	fmt.Fprintf(b, "Total size: %d\n", record.TotalSize)
	fmt.Fprintf(b, "Average sub-directory size: %s\n", formatAverage(record.AverageDirectorySize()))
	fmt.Fprintf(b, "Files: %d\n", record.NumFiles)
	fmt.Fprintf(b, "Average file size: %s\n", formatAverage(record.AverageFileSize()))
	fmt.Fprintf(b, "Most common extension: %s\n", record.TopExtension)
	b.WriteString("\n")
}

// formatAverage renders an average as an integer, truncating any
// fractional part, matching the plain byte-count style of the rest of the
// info block.
func formatAverage(avg float64) string {
	return fmt.Sprintf("%d", int64(avg))
}
