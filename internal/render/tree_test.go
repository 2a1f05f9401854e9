package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirscan/internal/walker"
)

// buildTwoLevelTree builds a small two-level tree in the spirit of
// SPEC_FULL.md §8 scenario 3/6 (not the same entries): /tmp/c has one
// file "s" and one subdirectory "d", "d" has one file.
func buildTwoLevelTree(root string) map[string]*walker.DirRecord {
	return map[string]*walker.DirRecord{
		root: {
			Path:        root,
			Files:       []walker.FileRecord{{Path: root + "/s"}},
			SubDirPaths: []string{root + "/d"},
		},
		root + "/d": {
			Path:       root + "/d",
			ParentPath: root,
			Files:      []walker.FileRecord{{Path: root + "/d/f"}},
		},
	}
}

func TestTree_TwoLevel(t *testing.T) {
	completed := buildTwoLevelTree("/tmp/c")

	got := Tree(completed, "/tmp/c", UnlimitedDepth)

	want := "/tmp/c\n" +
		"├─ /tmp/c/d\n" +
		"│  └─ /tmp/c/d/f\n" +
		"└─ /tmp/c/s\n"

	assert.Equal(t, want, got)
}

func TestTree_DepthLimitStopsBeforeGrandchildren(t *testing.T) {
	completed := buildTwoLevelTree("/tmp/c")

	got := Tree(completed, "/tmp/c", 1)

	want := "/tmp/c\n" +
		"├─ /tmp/c/d\n" +
		"└─ /tmp/c/s\n"

	assert.Equal(t, want, got)
}

func TestTree_MissingSubtreeOmitted(t *testing.T) {
	completed := map[string]*walker.DirRecord{
		"/r": {
			Path:        "/r",
			SubDirPaths: []string{"/r/unreadable", "/r/ok"},
		},
		"/r/ok": {Path: "/r/ok"},
	}

	got := Tree(completed, "/r", UnlimitedDepth)

	assert.Equal(t, "/r\n└─ /r/ok\n", got)
}

func TestTree_IsIdempotent(t *testing.T) {
	completed := buildTwoLevelTree("/tmp/c")

	first := Tree(completed, "/tmp/c", UnlimitedDepth)
	second := Tree(completed, "/tmp/c", UnlimitedDepth)

	require.Equal(t, first, second)
}
