package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// rwxTriplet renders the three permission bits for one of user/group/other.
func rwxTriplet(bits fs.FileMode, shift uint) string {
	const (
		r = 0o4
		w = 0o2
		x = 0o1
	)

	triplet := [3]byte{'-', '-', '-'}
	bit := fs.FileMode(uint32(bits) >> (shift * 3))

	if bit&r != 0 {
		triplet[0] = 'r'
	}

	if bit&w != 0 {
		triplet[1] = 'w'
	}

	if bit&x != 0 {
		triplet[2] = 'x'
	}

	return string(triplet[:])
}

// permissionString renders mode's permission bits as a nine-character
// ugo/rwx string, e.g. "rwxr-xr--".
func permissionString(mode fs.FileMode) string {
	perm := mode.Perm()

	var b strings.Builder

	b.WriteString(rwxTriplet(perm, 2))
	b.WriteString(rwxTriplet(perm, 1))
	b.WriteString(rwxTriplet(perm, 0))

	return b.String()
}

// classify maps a FileMode's type bits to a FileType.
func classify(mode fs.FileMode) FileType {
	switch {
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	case mode.IsDir():
		return TypeDirectory
	case mode&fs.ModeNamedPipe != 0:
		return TypeFifo
	case mode&fs.ModeSocket != 0:
		return TypeSocket
	case mode&fs.ModeCharDevice != 0:
		return TypeChar
	case mode&fs.ModeDevice != 0:
		return TypeBlock
	case mode.IsRegular():
		return TypeRegular
	default:
		return TypeUnknown
	}
}

// extensionOf returns the substring after the final "." in name, or "" if
// name has none (a leading dot, e.g. ".bashrc", is not an extension).
func extensionOf(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return ""
	}

	return name[idx+1:]
}

// probeEntry stats path (without following symlinks) and builds its
// FileRecord. It does not open regular files.
func probeEntry(path, parentPath string) (FileRecord, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return FileRecord{}, &StatError{Path: path, Cause: err}
	}

	name := filepath.Base(path)

	return FileRecord{
		Path:        path,
		ParentPath:  parentPath,
		Name:        name,
		Extension:   extensionOf(name),
		Type:        classify(info.Mode()),
		Permissions: permissionString(info.Mode()),
		Size:        info.Size(),
	}, nil
}
