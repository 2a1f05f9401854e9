//go:build !windows

package walker

import (
	"os"

	"golang.org/x/sys/unix"
)

// entryIdentity returns the device and inode numbers backing info, for
// debug tracing only. The engine never uses these to coalesce hardlinks:
// the invariants in SPEC_FULL.md §3 are defined per filesystem entry, not
// per inode, so identity has no bearing on correctness here.
func entryIdentity(info os.FileInfo) (dev, ino uint64, ok bool) {
	stat, ok := info.Sys().(*unix.Stat_t)
	if !ok {
		return 0, 0, false
	}

	return uint64(stat.Dev), stat.Ino, true //nolint:unconvert // Dev is int64 on darwin, uint64 on linux
}
