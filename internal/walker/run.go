package walker

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// DefaultNumWorkers is the worker-pool size used when Options.NumWorkers
// is unset.
const DefaultNumWorkers = 200

// DefaultProgressInterval is the default cadence for Options.ProgressHook.
const DefaultProgressInterval = 500 * time.Millisecond

// Walk traverses the directory tree rooted at opt.Root and returns the
// completed aggregate map. The traversal can be aborted early via ctx;
// an aborted traversal still returns a Result built from whatever was
// merged before cancellation, consistent with there being no partial or
// half-inserted DirRecord (drainRemaining only discards unscanned
// frontier entries, never a record already merged).
func Walk(ctx context.Context, opt Options) (*Result, error) {
	root, err := filepath.Abs(opt.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %q: %w", opt.Root, err)
	}

	opt.Root = root

	if opt.NumWorkers <= 0 {
		opt.NumWorkers = DefaultNumWorkers
	}

	start := time.Now()

	c := newCoordinator(opt)

	stopProgress := startProgressReporter(c, opt.ProgressHook, opt.ProgressInterval)
	defer stopProgress()

	result := c.run(ctx, opt.Root)
	result.Elapsed = time.Since(start)

	return result, nil
}

// startProgressReporter invokes hook on a ticker with the coordinator's
// running totals until the returned stop function is called.
func startProgressReporter(c *coordinator, hook func(dirs, files, bytes int64), interval time.Duration) func() {
	if hook == nil {
		return func() {}
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	done := make(chan struct{})
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				dirs, files, bytes := c.snapshotProgress()
				hook(dirs, files, bytes)
			case <-done:
				return
			}
		}
	}()

	var closed bool

	return func() {
		if !closed {
			closed = true

			close(done)
		}
	}
}
