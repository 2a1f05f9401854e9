// Package cli wires the cobra command surface onto the walker engine and
// the render package.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultSkipSubstrings contains the build-in skip-list entries. Giving
// --skip replaces this list for that run rather than adding to it.
//
//nolint:gochecknoglobals // Config constant
var DefaultSkipSubstrings = []string{"/proc/", "/sys/"}

// reportFlags collects every §6 report-flag value after parsing.
type reportFlags struct {
	tree          bool
	treeToFile    bool
	paths         bool
	pathsSorted   bool
	pathsToFile   bool
	pathsSortedTF bool
	info          bool
	infoToFile    bool
	infoDepth     int
	infoDepthFile int
	treeDepth     int
	treeDepthFile int
}

// anyRequested reports whether at least one report flag was set.
func (f reportFlags) anyRequested() bool {
	return f.tree || f.treeToFile || f.paths || f.pathsSorted || f.pathsToFile || f.pathsSortedTF ||
		f.info || f.infoToFile || f.infoDepth >= 0 || f.infoDepthFile >= 0 || f.treeDepth >= 0 || f.treeDepthFile >= 0
}

// runOptions holds every parsed option needed to execute one invocation.
type runOptions struct {
	root       string
	outputFile string

	skip       []string
	numWorkers int
	debug      bool

	flags reportFlags

	// rawArgs is the exact argument slice cobra was told to parse — set
	// alongside cmd.SetArgs so warnUnknownFlags inspects what this
	// invocation actually received instead of the process's os.Args,
	// which diverges from it under SetArgs (embedding, tests).
	rawArgs []string
}

// New builds the root command for the dirscan binary. rawArgs is the
// argument slice to parse — pass os.Args[1:] in production.
func New(version string, rawArgs []string) *cobra.Command {
	opts := &runOptions{rawArgs: rawArgs}

	cmd := &cobra.Command{
		Use:           "dirscan <root_directory> <output_file> [flags]",
		Short:         "Concurrently inventory a directory tree and report on it",
		Version:       version,
		Args:          cobra.ExactArgs(numPositionalArgs),
		Long:          helpText(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.root = args[0]
			opts.outputFile = args[1]

			warnUnknownFlags(cmd, opts.rawArgs)

			return run(cmd, opts)
		},
	}

	cmd.SetArgs(rawArgs)
	cmd.Flags().SortFlags = false
	cmd.FParseErrWhitelist.UnknownFlags = true

	registerReportFlags(cmd, opts)

	cmd.Flags().StringSliceVar(&opts.skip, "skip", DefaultSkipSubstrings,
		"Path substrings causing a directory to be skipped (repeatable)")
	cmd.Flags().IntVar(&opts.numWorkers, "workers", defaultNumWorkers, "Worker-pool size for the traversal")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable verbose scan tracing to stderr")

	return cmd
}

const (
	numPositionalArgs = 2
	defaultNumWorkers = 200
	unsetDepth        = -1
)

func registerReportFlags(cmd *cobra.Command, opts *runOptions) {
	cmd.Flags().BoolVarP(&opts.flags.tree, "t", "t", false, "Print tree to stdout")
	cmd.Flags().BoolVar(&opts.flags.treeToFile, "ts", false, "Write tree to output file")
	cmd.Flags().BoolVarP(&opts.flags.paths, "p", "p", false, "Print paths to stdout")
	cmd.Flags().BoolVar(&opts.flags.pathsSorted, "pa", false, "Print paths sorted lexicographically to stdout")
	cmd.Flags().BoolVar(&opts.flags.pathsToFile, "ps", false, "Write paths to output file")
	cmd.Flags().BoolVar(&opts.flags.pathsSortedTF, "psa", false, "Write sorted paths to output file")
	cmd.Flags().BoolVarP(&opts.flags.info, "i", "i", false, "Print per-directory info block to stdout")
	cmd.Flags().BoolVar(&opts.flags.infoToFile, "is", false, "Write per-directory info block to output file")
	cmd.Flags().IntVar(&opts.flags.infoDepth, "li", unsetDepth, "Info to stdout, limited to N levels below root")
	cmd.Flags().IntVar(&opts.flags.infoDepthFile, "lis", unsetDepth, "Info to output file, limited to N levels below root")
	cmd.Flags().IntVar(&opts.flags.treeDepth, "lt", unsetDepth, "Tree to stdout, limited to N levels below root")
	cmd.Flags().IntVar(&opts.flags.treeDepthFile, "lts", unsetDepth, "Tree to output file, limited to N levels below root")
}

func helpText() string {
	return heredoc.Doc(`
		dirscan walks a rooted filesystem subtree with a concurrent worker
		pool, aggregates per-directory file counts and sizes up the
		ancestry chain, and renders one or more reports against the
		result: a box-drawing tree, a path listing, or a per-directory
		statistics block — printed to stdout or written to the given
		output file.

		Usage:

		  dirscan <root_directory> <output_file> [flags]

		Report flags: -t/--t, --ts, -p/--p, --pa, --ps, --psa, -i/--i,
		--is, --li N, --lis N, --lt N, --lts N. Single-character flags
		accept either a bare dash or a double dash; multi-character
		report flags require a double dash, since pflag reserves bare
		single-dash tokens for clustered single-letter shorthands.

		At least one report flag should be given; if none is given, no
		report is produced but the traversal still runs (useful to check
		the exit code of a scan alone).
	`)
}

// warnUnknownFlags logs any token in args that looks like a flag but was
// not registered, per SPEC_FULL.md §7 UnknownArgument: logged, but every
// recognized flag still runs — cobra's FParseErrWhitelist.UnknownFlags
// already lets parsing continue past it; this only adds the visible
// warning. args must be the exact slice this invocation parsed (see
// runOptions.rawArgs), not os.Args, so the warning tracks SetArgs callers
// (tests, embedding) as well as the real process invocation.
func warnUnknownFlags(cmd *cobra.Command, args []string) {
	known := map[string]bool{"-h": true, "--help": true, "--version": true}

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		known["--"+f.Name] = true

		if f.Shorthand != "" {
			known["-"+f.Shorthand] = true
		}
	})

	for _, arg := range args {
		if len(arg) < 2 || arg[0] != '-' {
			continue
		}

		name, _, _ := strings.Cut(arg, "=")
		if !known[name] {
			fmt.Fprintf(os.Stderr, "[warn]: unrecognized argument %q, ignoring\n", arg)
		}
	}
}
