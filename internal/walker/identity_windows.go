//go:build windows

package walker

import "os"

// entryIdentity has no portable equivalent on Windows; see identity_unix.go.
func entryIdentity(_ os.FileInfo) (dev, ino uint64, ok bool) {
	return 0, 0, false
}
