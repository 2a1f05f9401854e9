package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirscan/internal/render"
	"github.com/idelchi/dirscan/internal/walker"
)

// ErrScanFailures is returned by Execute's command when the traversal
// completed but recorded one or more per-directory errors; the caller
// maps it to a nonzero exit code without printing an additional message,
// since run already logged each underlying error as it was found.
var ErrScanFailures = fmt.Errorf("one or more directories failed to scan")

// run executes one parsed invocation: it walks opts.root, renders every
// requested report, and prints a summary line to stderr.
func run(cmd *cobra.Command, opts *runOptions) error {
	if opts.numWorkers < 0 {
		return fmt.Errorf("workers cannot be negative")
	}

	info, err := os.Stat(opts.root)
	if err != nil {
		return fmt.Errorf("accessing root %q: %w", opts.root, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("root %q is not a directory", opts.root)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	enableProgress := !opts.debug && isatty.IsTerminal(os.Stderr.Fd())

	var progressHook func(dirs, files, bytes int64)

	if enableProgress {
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(dirs, files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d dirs, %d files, %s",
				dirs, files, humanize.IBytes(uint64(bytes))) //nolint:gosec // bytes is always non-negative
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	root, err := resolveRoot(opts.root)
	if err != nil {
		return err
	}

	result, err := walker.Walk(ctx, walker.Options{
		Root:           root,
		SkipSubstrings: opts.skip,
		NumWorkers:     opts.numWorkers,
		Debug:          opts.debug,
		ProgressHook:   progressHook,
	})
	if err != nil {
		return err
	}

	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	for _, scanErr := range result.Errors {
		fmt.Fprintf(os.Stderr, "[error]: %v\n", scanErr)
	}

	if !opts.flags.anyRequested() {
		fmt.Fprintln(os.Stderr, "[info]: no report flag given, scan ran without producing output")
	}

	if err := renderReports(result, opts, root); err != nil {
		return err
	}

	printSummary(result, root)

	if result.Failed() {
		return ErrScanFailures
	}

	return nil
}

// resolveRoot mirrors walker.Walk's own filepath.Abs resolution so report
// rendering looks up the same map keys walker.Walk populated.
func resolveRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving root %q: %w", root, err)
	}

	return abs, nil
}

// renderReports dispatches every requested report flag against the
// completed map, writing to stdout or opts.outputFile as directed.
func renderReports(result *walker.Result, opts *runOptions, root string) error {
	completed := result.Completed
	f := opts.flags

	type job struct {
		enabled  bool
		toFile   bool
		maxDepth int
		render   func(map[string]*walker.DirRecord, string, int) string
	}

	jobs := []job{
		{f.tree, false, render.UnlimitedDepth, render.Tree},
		{f.treeToFile, true, render.UnlimitedDepth, render.Tree},
		{f.treeDepth >= 0, false, f.treeDepth, render.Tree},
		{f.treeDepthFile >= 0, true, f.treeDepthFile, render.Tree},
		{f.info, false, render.UnlimitedDepth, render.Info},
		{f.infoToFile, true, render.UnlimitedDepth, render.Info},
		{f.infoDepth >= 0, false, f.infoDepth, render.Info},
		{f.infoDepthFile >= 0, true, f.infoDepthFile, render.Info},
	}

	for _, j := range jobs {
		if !j.enabled {
			continue
		}

		out := j.render(completed, root, j.maxDepth)
		if err := emit(out, j.toFile, opts.outputFile); err != nil {
			return err
		}
	}

	pathJobs := []struct {
		enabled bool
		toFile  bool
		paths   func(map[string]*walker.DirRecord, string) []string
	}{
		{f.paths, false, render.Paths},
		{f.pathsSorted, false, render.SortedPaths},
		{f.pathsToFile, true, render.Paths},
		{f.pathsSortedTF, true, render.SortedPaths},
	}

	for _, j := range pathJobs {
		if !j.enabled {
			continue
		}

		out := render.PathsText(j.paths(completed, root))
		if err := emit(out, j.toFile, opts.outputFile); err != nil {
			return err
		}
	}

	return nil
}

// emit writes content to stdout or appends it to outputFile.
func emit(content string, toFile bool, outputFile string) error {
	if !toFile {
		fmt.Fprint(os.Stdout, content)

		return nil
	}

	f, err := os.OpenFile(outputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:mnd // report file, not secret
	if err != nil {
		return &walker.RenderError{Target: outputFile, Cause: err}
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return &walker.RenderError{Target: outputFile, Cause: err}
	}

	return nil
}

// printSummary writes one informational line to stderr after every
// report has been rendered. It is never mixed into report bodies, so it
// cannot affect the idempotence of the reports themselves.
func printSummary(result *walker.Result, root string) {
	var totalSize int64
	if record := result.Completed[root]; record != nil {
		totalSize = record.TotalSize
	}

	fmt.Fprintf(os.Stderr, "Walked %s in %v: %d directories, %s, %d error(s)\n",
		root, result.Elapsed.Round(time.Millisecond), len(result.Completed),
		humanize.IBytes(uint64(totalSize)), len(result.Errors)) //nolint:gosec // totalSize is non-negative
}
