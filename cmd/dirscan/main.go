// Command dirscan concurrently inventories a directory tree and renders
// one or more reports against the result.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/dirscan/internal/cli"
)

// version is overridden at build time via -ldflags.
//
//nolint:gochecknoglobals // set by the release build
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cmd := cli.New(version, os.Args[1:])

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cli.ErrScanFailures) {
			return 1
		}

		fmt.Fprintf(os.Stderr, "dirscan: %v\n", err)

		return 1
	}

	return 0
}
