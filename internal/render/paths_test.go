package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idelchi/dirscan/internal/walker"
)

func TestPaths_PreOrder(t *testing.T) {
	completed := buildTwoLevelTree("/tmp/c")

	assert.Equal(t, []string{"/tmp/c", "/tmp/c/d"}, Paths(completed, "/tmp/c"))
}

func TestSortedPaths_Sorted(t *testing.T) {
	completed := map[string]*walker.DirRecord{
		"/r":      {Path: "/r", SubDirPaths: []string{"/r/zeta", "/r/alpha"}},
		"/r/zeta": {Path: "/r/zeta"},
		"/r/alpha": {
			Path: "/r/alpha",
		},
	}

	assert.Equal(t, []string{"/r", "/r/alpha", "/r/zeta"}, SortedPaths(completed, "/r"))
}

func TestPaths_MissingChildOmitsSubtree(t *testing.T) {
	completed := map[string]*walker.DirRecord{
		"/r": {Path: "/r", SubDirPaths: []string{"/r/gone"}},
	}

	assert.Equal(t, []string{"/r"}, Paths(completed, "/r"))
}

func TestPathsText_EmptyWhenNoPaths(t *testing.T) {
	assert.Equal(t, "", PathsText(nil))
}

func TestPathsText_JoinsWithTrailingNewline(t *testing.T) {
	assert.Equal(t, "/a\n/b\n", PathsText([]string{"/a", "/b"}))
}
