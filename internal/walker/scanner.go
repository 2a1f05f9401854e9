package walker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// logger provides conditional debug output, gated by Options.Debug.
type logger struct {
	enabled bool
}

func (l logger) printf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// containsSkipSubstring returns the first of substrings found anywhere
// within path, or "" if none is. The match is substring-based, not prefix-strict:
// a skip entry of "/mnt/" also matches "/x/mnt//y" (see SPEC_FULL.md §9
// Open Questions — intentional, documented operator-facing behavior).
func containsSkipSubstring(path string, substrings []string) string {
	for _, s := range substrings {
		if s != "" && strings.Contains(path, s) {
			return s
		}
	}

	return ""
}

// joinEntry builds the full path of a directory entry, special-casing the
// filesystem root so "/" does not become "//name".
func joinEntry(dir, name string) string {
	if dir == string(filepath.Separator) {
		return dir + name
	}

	return filepath.Join(dir, name)
}

// scan enumerates path's immediate entries and builds its DirRecord. It
// never recurses: subdirectories are recorded by path only, for the
// coordinator to push onto the frontier.
func scan(ctx context.Context, path, parentPath string, skip []string, log logger) (*DirRecord, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &DirOpenError{Path: path, Cause: err}
	}

	record := &DirRecord{
		Path:        path,
		ParentPath:  parentPath,
		Files:       make([]FileRecord, 0, len(entries)),
		SubDirPaths: make([]string, 0, len(entries)),
	}

	extCounts := make(map[string]int)
	extFirstSeen := make(map[string]int)

	for _, entry := range entries {
		if ctx != nil {
			select {
			case <-ctx.Done():
				record.TotalSize = record.FileTotalSize

				return record, nil
			default:
			}
		}

		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}

		fullPath := joinEntry(path, name)

		fileRecord, err := probeEntry(fullPath, path)
		if err != nil {
			log.printf("[debug]: stat error, skipping %s: %v\n", fullPath, err)

			continue
		}

		if fileRecord.Type == TypeSymlink {
			log.printf("[debug]: skipping symlink: %s\n", fullPath)

			continue
		}

		if fileRecord.Type == TypeDirectory {
			if matched := containsSkipSubstring(fullPath, skip); matched != "" {
				log.printf("[debug]: skipping directory %s (matched skip substring %q)\n", fullPath, matched)

				continue
			}

			record.SubDirPaths = append(record.SubDirPaths, fullPath)

			continue
		}

		if info, err := entry.Info(); err == nil {
			if dev, ino, ok := entryIdentity(info); ok {
				log.printf("[debug]: file %s dev=%d ino=%d\n", fullPath, dev, ino)
			}
		}

		record.Files = append(record.Files, fileRecord)
		record.FileTotalSize += fileRecord.Size
		record.NumFiles++

		if fileRecord.Extension != "" {
			if _, seen := extFirstSeen[fileRecord.Extension]; !seen {
				extFirstSeen[fileRecord.Extension] = len(extFirstSeen)
			}

			extCounts[fileRecord.Extension]++
		}
	}

	record.TopExtension = topExtension(extCounts, extFirstSeen)
	record.TotalSize = record.FileTotalSize

	return record, nil
}

// topExtension picks the most frequent extension, breaking ties by which
// extension was first seen during the scan.
func topExtension(counts map[string]int, firstSeen map[string]int) string {
	best := ""
	bestCount := 0
	bestOrder := -1

	for ext, count := range counts {
		order := firstSeen[ext]

		switch {
		case count > bestCount:
			best, bestCount, bestOrder = ext, count, order
		case count == bestCount && order < bestOrder:
			best, bestOrder = ext, order
		}
	}

	return best
}
